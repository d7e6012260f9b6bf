package main

import (
	"fmt"
	"os"

	"github.com/kelseyhightower/envconfig"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"cs50ai/heredity"
)

type config struct {
	Goroutines int    `envconfig:"HEREDITY_GOROUTINES" default:"1"`
	LogLevel   string `envconfig:"LOG_LEVEL" default:"warn"`
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
		log.Fatal().Msg("usage: heredity data.csv")
	}

	pop, err := heredity.LoadFile(os.Args[1])
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load pedigree")
	}
	log.Info().
		Int("people", pop.Size()).
		Int("goroutines", cfg.Goroutines).
		Msg("enumerating worlds")

	results, err := heredity.Infer(pop, heredity.WithGoroutines(cfg.Goroutines))
	if err != nil {
		log.Fatal().Err(err).Msg("inference failed")
	}

	fmt.Print(results)
}
