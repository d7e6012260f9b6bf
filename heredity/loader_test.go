package heredity

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	t.Run("parses a valid pedigree", func(t *testing.T) {
		csv := "name,mother,father,trait\n" +
			"Harry,Lily,James,\n" +
			"James,,,1\n" +
			"Lily,,,0\n"

		pop, err := Load(strings.NewReader(csv))
		require.NoError(t, err)

		require.Equal(t, 3, pop.Size())
		require.Equal(t, []string{"Harry", "James", "Lily"}, pop.Names(),
			"Names should come back in sorted enumeration order")

		harry := pop.people[pop.index["Harry"]]
		require.Equal(t, Unknown, harry.Trait)
		require.Equal(t, pop.index["Lily"], harry.mother)
		require.Equal(t, pop.index["James"], harry.father)

		james := pop.people[pop.index["James"]]
		require.Equal(t, ObservedTrue, james.Trait)
		require.Equal(t, -1, james.mother, "Founders have no parent indices")
	})

	t.Run("loads a pedigree file", func(t *testing.T) {
		pop, err := LoadFile("testdata/family0.csv")
		require.NoError(t, err)
		require.Equal(t, []string{"Harry", "James", "Lily"}, pop.Names())
	})

	t.Run("fails on a missing file", func(t *testing.T) {
		_, err := LoadFile("testdata/missing.csv")
		require.Error(t, err)
	})

	t.Run("rejects an unresolvable parent", func(t *testing.T) {
		csv := "name,mother,father,trait\n" +
			"Harry,Lily,James,\n" +
			"James,,,1\n"

		_, err := Load(strings.NewReader(csv))

		require.ErrorContains(t, err, "unknown parent")
	})

	t.Run("rejects a single parent", func(t *testing.T) {
		csv := "name,mother,father,trait\n" +
			"Harry,Lily,,\n" +
			"Lily,,,0\n"

		_, err := Load(strings.NewReader(csv))

		require.ErrorContains(t, err, "need both or neither")
	})

	t.Run("rejects duplicate names", func(t *testing.T) {
		csv := "name,mother,father,trait\n" +
			"Harry,,,\n" +
			"Harry,,,1\n"

		_, err := Load(strings.NewReader(csv))

		require.ErrorContains(t, err, "duplicate name")
	})

	t.Run("rejects an invalid trait value", func(t *testing.T) {
		csv := "name,mother,father,trait\nHarry,,,maybe\n"

		_, err := Load(strings.NewReader(csv))

		require.ErrorContains(t, err, "invalid trait value")
	})

	t.Run("rejects a missing column", func(t *testing.T) {
		csv := "name,mother,father\nHarry,,\n"

		_, err := Load(strings.NewReader(csv))

		require.ErrorContains(t, err, `missing required column "trait"`)
	})

	t.Run("rejects an empty pedigree", func(t *testing.T) {
		_, err := Load(strings.NewReader("name,mother,father,trait\n"))

		require.Error(t, err)
	})
}

func TestNewPopulation(t *testing.T) {
	t.Run("rejects self-parenting", func(t *testing.T) {
		_, err := NewPopulation([]Person{
			{Name: "Harry", Mother: "Harry", Father: "Harry"},
		})

		require.ErrorContains(t, err, "their own parent")
	})

	t.Run("rejects ancestry cycles", func(t *testing.T) {
		_, err := NewPopulation([]Person{
			{Name: "A", Mother: "B", Father: "B"},
			{Name: "B", Mother: "A", Father: "A"},
		})

		require.ErrorContains(t, err, "ancestry cycle")
	})

	t.Run("rejects oversized populations", func(t *testing.T) {
		people := make([]Person, MaxPopulation+1)
		for i := range people {
			people[i].Name = string(rune('A' + i))
		}

		_, err := NewPopulation(people)

		require.ErrorContains(t, err, "max is")
	})
}
