package heredity

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestProbabilityTables(t *testing.T) {
	t.Run("gene prior sums to 1", func(t *testing.T) {
		require.InDelta(t, 1.0, genePrior[0]+genePrior[1]+genePrior[2], 1e-12)
	})

	t.Run("trait rows sum to 1", func(t *testing.T) {
		for genes, row := range traitProb {
			require.InDelta(t, 1.0, row[0]+row[1], 1e-12,
				"Trait probabilities for %d copies should sum to 1", genes)
		}
	})
}

func TestJointProbability(t *testing.T) {
	t.Run("single founder without trait", func(t *testing.T) {
		pop := mustPopulation(t, []Person{{Name: "Harry"}})

		got := jointProbability(pop, world{})

		require.InDelta(t, 0.96*0.99, got, 1e-12,
			"Zero copies and no trait should be prior times trait-given-zero")
	})

	t.Run("child inherits from both parents", func(t *testing.T) {
		pop := mustPopulation(t, []Person{
			{Name: "Harry", Mother: "Lily", Father: "James"},
			{Name: "James", Trait: ObservedTrue},
			{Name: "Lily", Trait: ObservedFalse},
		})

		// Harry one copy, James two copies and the trait, Lily neither.
		w := world{
			oneGene:  set(1) << pop.index["Harry"],
			twoGenes: set(1) << pop.index["James"],
			hasTrait: set(1) << pop.index["James"],
		}

		require.InDelta(t, 0.0026643247488, jointProbability(pop, w), 1e-12,
			"Joint should combine priors, transmission and trait factors")
	})

	t.Run("stays within [0, 1]", func(t *testing.T) {
		pop := mustPopulation(t, []Person{
			{Name: "Child", Mother: "Mom", Father: "Dad"},
			{Name: "Mom"},
			{Name: "Dad"},
		})

		forEachWorld(pop, func(w world) {
			p := jointProbability(pop, w)
			require.Greater(t, p, 0.0, "All factors are strictly positive")
			require.LessOrEqual(t, p, 1.0)
		})
	})

	t.Run("symmetric under relabeling unrelated people", func(t *testing.T) {
		// Two founders with identical structure, opposite labels.
		first := mustPopulation(t, []Person{
			{Name: "Alice", Trait: ObservedTrue},
			{Name: "Bob"},
		})
		second := mustPopulation(t, []Person{
			{Name: "Bob", Trait: ObservedTrue},
			{Name: "Alice"},
		})

		sum := func(pop *Population) float64 {
			total := 0.0
			forEachWorld(pop, func(w world) { total += jointProbability(pop, w) })
			return total
		}

		require.InDelta(t, sum(first), sum(second), 1e-15,
			"Swapping the roles of unrelated people should not change total mass")
	})
}
