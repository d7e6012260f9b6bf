package main

import (
	"fmt"
	"os"
	"time"

	"github.com/kelseyhightower/envconfig"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"

	"cs50ai/pagerank"
)

type config struct {
	Damping  float64 `envconfig:"PAGERANK_DAMPING" default:"0.85"`
	Samples  int     `envconfig:"PAGERANK_SAMPLES" default:"10000"`
	Seed     uint64  `envconfig:"PAGERANK_SEED"`
	LogLevel string  `envconfig:"LOG_LEVEL" default:"warn"`
}

func main() {
	var cfg config
	if err := envconfig.Process("", &cfg); err != nil {
		log.Fatal().Err(err).Msg("failed to process configuration")
	}
	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		log.Fatal().Err(err).Msg("invalid LOG_LEVEL")
	}
	zerolog.SetGlobalLevel(level)

	if len(os.Args) != 2 {
		log.Fatal().Msg("usage: pagerank corpus-directory")
	}

	corpus, err := pagerank.Crawl(os.Args[1])
	if err != nil {
		log.Fatal().Err(err).Msg("failed to crawl corpus")
	}
	log.Info().Int("pages", len(corpus)).Msg("crawled corpus")

	seed := cfg.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	rng := rand.New(rand.NewSource(seed))

	sampled := pagerank.Sample(corpus, cfg.Damping, cfg.Samples, rng)
	fmt.Printf("PageRank Results from Sampling (n = %d)\n", cfg.Samples)
	printRanks(corpus, sampled)

	iterated := pagerank.Iterate(corpus, cfg.Damping)
	fmt.Println("PageRank Results from Iteration")
	printRanks(corpus, iterated)
}

func printRanks(corpus pagerank.Corpus, ranks map[string]float64) {
	for _, page := range corpus.Pages() {
		fmt.Printf("  %s: %.4f\n", page, ranks[page])
	}
}
