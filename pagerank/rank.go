// Package pagerank estimates the importance of pages in a hyperlink corpus,
// both by sampling a random surfer and by iterating the PageRank formula to
// convergence.
package pagerank

import (
	"math"

	"golang.org/x/exp/rand"
)

const (
	// DefaultDamping is the probability of following a link instead of
	// jumping to a random page.
	DefaultDamping = 0.85
	// DefaultSamples is the random-surfer walk length.
	DefaultSamples = 10000

	// convergence threshold for Iterate, on the largest per-page change
	convergence = 0.001
)

// TransitionModel returns the distribution over which page a random surfer
// visits next from the given page: with probability damping a random outgoing
// link, otherwise a random corpus page. A page with no outgoing links is
// treated as linking to every page, so the distribution is uniform.
func TransitionModel(corpus Corpus, page string, damping float64) map[string]float64 {
	distribution := make(map[string]float64, len(corpus))
	links := corpus[page]

	if len(links) == 0 {
		for p := range corpus {
			distribution[p] = 1 / float64(len(corpus))
		}
		return distribution
	}

	randomProb := (1 - damping) / float64(len(corpus))
	linkProb := damping / float64(len(links))
	for p := range corpus {
		distribution[p] = randomProb
		if links[p] {
			distribution[p] += linkProb
		}
	}
	return distribution
}

// Sample estimates ranks by walking the corpus for n steps, starting from a
// uniformly random page, and normalizing the visit counts.
func Sample(corpus Corpus, damping float64, n int, rng *rand.Rand) map[string]float64 {
	pages := corpus.Pages()
	counts := make(map[string]int, len(pages))

	page := pages[rng.Intn(len(pages))]
	counts[page]++

	for i := 1; i < n; i++ {
		page = pickWeighted(pages, TransitionModel(corpus, page, damping), rng)
		counts[page]++
	}

	ranks := make(map[string]float64, len(pages))
	for _, p := range pages {
		ranks[p] = float64(counts[p]) / float64(n)
	}
	return ranks
}

func pickWeighted(pages []string, weights map[string]float64, rng *rand.Rand) string {
	target := rng.Float64()
	cumulative := 0.0
	for _, page := range pages {
		cumulative += weights[page]
		if target < cumulative {
			return page
		}
	}
	// Rounding can leave the target past the final cumulative weight.
	return pages[len(pages)-1]
}

// Iterate computes ranks by repeatedly applying the PageRank formula until no
// page's rank changes by more than the convergence threshold, then normalizes
// so the ranks sum to 1.
func Iterate(corpus Corpus, damping float64) map[string]float64 {
	pages := corpus.Pages()
	n := float64(len(pages))

	ranks := make(map[string]float64, len(pages))
	for _, page := range pages {
		ranks[page] = 1 / n
	}

	// Reverse index: which pages link to each page.
	incoming := make(map[string][]string, len(pages))
	for _, page := range pages {
		for link := range corpus[page] {
			incoming[link] = append(incoming[link], page)
		}
	}

	for {
		maxChange := 0.0
		for _, page := range pages {
			linkSum := 0.0
			for _, linker := range incoming[page] {
				linkSum += ranks[linker] / float64(len(corpus[linker]))
			}
			// A page without outgoing links contributes to every page as if
			// it linked everywhere.
			for _, p := range pages {
				if len(corpus[p]) == 0 {
					linkSum += ranks[p] / n
				}
			}

			newRank := (1-damping)/n + damping*linkSum
			if change := math.Abs(ranks[page] - newRank); change > maxChange {
				maxChange = change
			}
			ranks[page] = newRank
		}
		if maxChange < convergence {
			break
		}
	}

	total := 0.0
	for _, rank := range ranks {
		total += rank
	}
	for page := range ranks {
		ranks[page] /= total
	}
	return ranks
}
