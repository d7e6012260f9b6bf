package heredity

import "sync"

type config struct {
	goroutines int
}

// Option configures a call to Infer.
type Option func(*config)

// WithGoroutines splits the enumeration across n workers. Each worker folds
// worlds into its own partial accumulator; the partials are merged pointwise
// before normalization, so the result is identical to a serial run.
func WithGoroutines(n int) Option {
	return func(c *config) {
		c.goroutines = n
	}
}

// Infer computes every person's marginal gene and trait distributions by
// exhaustive enumeration: every consistent world's joint probability is
// accumulated into per-person tables, which are then normalized.
func Infer(pop *Population, options ...Option) (*Results, error) {
	cfg := config{goroutines: 1}
	for _, option := range options {
		option(&cfg)
	}

	var results *Results
	if cfg.goroutines > 1 {
		results = inferParallel(pop, cfg.goroutines)
	} else {
		results = newResults(pop)
		forEachWorld(pop, func(w world) {
			results.accumulate(w, jointProbability(pop, w))
		})
	}

	if err := results.normalize(); err != nil {
		return nil, err
	}
	return results, nil
}

// inferParallel fans trait assignments out to workers. Gene enumeration for
// a single trait assignment stays on one worker, so no two workers ever
// touch the same world.
func inferParallel(pop *Population, goroutines int) *Results {
	full := set(1)<<pop.Size() - 1

	traits := make(chan set, goroutines)
	partials := make([]*Results, goroutines)
	var wg sync.WaitGroup

	for i := 0; i < goroutines; i++ {
		partial := newResults(pop)
		partials[i] = partial
		wg.Add(1)
		go func() {
			defer wg.Done()
			for hasTrait := range traits {
				forEachGeneSplit(full, hasTrait, func(w world) {
					partial.accumulate(w, jointProbability(pop, w))
				})
			}
		}()
	}

	for hasTrait := set(0); ; hasTrait++ {
		if pop.consistent(hasTrait) {
			traits <- hasTrait
		}
		if hasTrait == full {
			break
		}
	}
	close(traits)
	wg.Wait()

	results := partials[0]
	for _, partial := range partials[1:] {
		results.merge(partial)
	}
	return results
}
