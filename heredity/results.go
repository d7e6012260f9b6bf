package heredity

import (
	"fmt"
	"strings"
)

// Distribution holds one person's marginal probabilities: Gene is indexed by
// copy count, Trait by traitIndex (0 = false, 1 = true).
type Distribution struct {
	Gene  [3]float64
	Trait [2]float64
}

// Results maps every person in a population to their marginal distributions.
// It doubles as the accumulator during enumeration: worlds are folded in
// unnormalized and divided out once at the end.
type Results struct {
	pop   *Population
	dists []Distribution
}

func newResults(pop *Population) *Results {
	return &Results{pop: pop, dists: make([]Distribution, pop.Size())}
}

// accumulate folds one world's joint probability into every person's gene
// and trait cells. Exactly one call per enumerated world.
func (r *Results) accumulate(w world, p float64) {
	for i := range r.dists {
		r.dists[i].Gene[w.geneCount(i)] += p
		r.dists[i].Trait[traitIndex(w.hasTrait.contains(i))] += p
	}
}

// merge adds another partial accumulator pointwise. Folding is associative
// and commutative, so partials from parallel workers can merge in any order.
func (r *Results) merge(other *Results) {
	for i := range r.dists {
		for g := range r.dists[i].Gene {
			r.dists[i].Gene[g] += other.dists[i].Gene[g]
		}
		for t := range r.dists[i].Trait {
			r.dists[i].Trait[t] += other.dists[i].Trait[t]
		}
	}
}

// normalize scales each distribution to sum to 1, in place. A zero sum
// cannot happen for a valid population (every world has strictly positive
// mass) but is surfaced as an error rather than dividing through to NaN.
func (r *Results) normalize() error {
	for i := range r.dists {
		if err := scale(r.dists[i].Gene[:]); err != nil {
			return fmt.Errorf("gene distribution for %q: %w", r.pop.people[i].Name, err)
		}
		if err := scale(r.dists[i].Trait[:]); err != nil {
			return fmt.Errorf("trait distribution for %q: %w", r.pop.people[i].Name, err)
		}
	}
	return nil
}

func scale(values []float64) error {
	sum := 0.0
	for _, v := range values {
		sum += v
	}
	if sum <= 0 {
		return fmt.Errorf("cannot normalize: total mass is %v", sum)
	}
	for i := range values {
		values[i] /= sum
	}
	return nil
}

// Get returns the distribution for the named person.
func (r *Results) Get(name string) (Distribution, bool) {
	i, ok := r.pop.index[name]
	if !ok {
		return Distribution{}, false
	}
	return r.dists[i], true
}

// String renders every person's distributions, four decimal places each.
func (r *Results) String() string {
	var b strings.Builder
	for i, p := range r.pop.people {
		d := r.dists[i]
		fmt.Fprintf(&b, "%s:\n", p.Name)
		fmt.Fprintf(&b, "  Gene:\n")
		for _, g := range []int{2, 1, 0} {
			fmt.Fprintf(&b, "    %d: %.4f\n", g, d.Gene[g])
		}
		fmt.Fprintf(&b, "  Trait:\n")
		fmt.Fprintf(&b, "    True: %.4f\n", d.Trait[1])
		fmt.Fprintf(&b, "    False: %.4f\n", d.Trait[0])
	}
	return b.String()
}
