package heredity

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func mustPopulation(t *testing.T, people []Person) *Population {
	t.Helper()
	pop, err := NewPopulation(people)
	require.NoError(t, err)
	return pop
}

func TestForEachWorld(t *testing.T) {
	t.Run("counts 3^n gene by 2^n trait assignments without evidence", func(t *testing.T) {
		pop := mustPopulation(t, []Person{
			{Name: "Harry"},
			{Name: "Lily"},
		})

		count := 0
		forEachWorld(pop, func(world) { count++ })

		require.Equal(t, 9*4, count,
			"Two people should yield 3^2 gene partitions times 2^2 trait assignments")
	})

	t.Run("discards trait assignments violating evidence", func(t *testing.T) {
		pop := mustPopulation(t, []Person{
			{Name: "Harry"},
			{Name: "Lily", Trait: ObservedTrue},
		})

		count := 0
		forEachWorld(pop, func(w world) {
			count++
			require.True(t, w.hasTrait.contains(pop.index["Lily"]),
				"Every enumerated world should respect Lily's observed trait")
		})

		require.Equal(t, 9*2, count,
			"Observed trait should halve the trait assignments")
	})

	t.Run("keeps one and two gene groups disjoint", func(t *testing.T) {
		pop := mustPopulation(t, []Person{
			{Name: "Harry"},
			{Name: "Lily"},
			{Name: "James"},
		})

		forEachWorld(pop, func(w world) {
			require.Zero(t, w.oneGene&w.twoGenes,
				"No person can carry one and two copies at once")
		})
	})
}

func TestWorldGeneCount(t *testing.T) {
	w := world{oneGene: 0b001, twoGenes: 0b010}

	require.Equal(t, 1, w.geneCount(0), "Person 0 is in the one-copy group")
	require.Equal(t, 2, w.geneCount(1), "Person 1 is in the two-copy group")
	require.Equal(t, 0, w.geneCount(2), "Person 2 defaults to zero copies")
}

func TestConsistent(t *testing.T) {
	pop := mustPopulation(t, []Person{
		{Name: "Harry", Trait: ObservedTrue},
		{Name: "Lily", Trait: ObservedFalse},
	})
	harry := set(1) << pop.index["Harry"]
	lily := set(1) << pop.index["Lily"]

	require.True(t, pop.consistent(harry), "Harry with trait matches the evidence")
	require.False(t, pop.consistent(harry|lily), "Lily with trait contradicts her observation")
	require.False(t, pop.consistent(0), "Harry without trait contradicts his observation")
}
