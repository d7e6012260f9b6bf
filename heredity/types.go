package heredity

import (
	"fmt"
	"sort"
)

// MaxPopulation caps the pedigree size. The enumeration visits every
// gene/trait partition of the population (3^n x 2^n worlds), so anything
// beyond a small family is intractable by construction.
const MaxPopulation = 16

// Evidence is a tri-state observation of a person's trait.
type Evidence int

const (
	Unknown Evidence = iota
	ObservedFalse
	ObservedTrue
)

// Person is one row of a pedigree. Mother and Father are either both empty
// (a founder) or both name other people in the same population.
type Person struct {
	Name   string
	Mother string
	Father string
	Trait  Evidence

	mother int // parent indices into the population order, -1 for founders
	father int
}

// Population is an immutable, validated pedigree. People are kept in sorted
// name order so that subset enumeration is deterministic.
type Population struct {
	people []*Person
	index  map[string]int
}

// NewPopulation validates the given people and fixes their enumeration
// order. It fails on duplicate names, dangling or one-sided parent
// references, self-parenting, ancestry cycles, and oversized pedigrees.
func NewPopulation(people []Person) (*Population, error) {
	if len(people) == 0 {
		return nil, fmt.Errorf("population is empty")
	}
	if len(people) > MaxPopulation {
		return nil, fmt.Errorf("population has %d people, max is %d", len(people), MaxPopulation)
	}

	sorted := make([]*Person, len(people))
	for i := range people {
		p := people[i]
		sorted[i] = &p
	}
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Name < sorted[j].Name })

	index := make(map[string]int, len(sorted))
	for i, p := range sorted {
		if p.Name == "" {
			return nil, fmt.Errorf("person with empty name")
		}
		if _, ok := index[p.Name]; ok {
			return nil, fmt.Errorf("duplicate name %q", p.Name)
		}
		index[p.Name] = i
	}

	pop := &Population{people: sorted, index: index}
	for _, p := range sorted {
		if err := pop.resolveParents(p); err != nil {
			return nil, err
		}
	}
	if err := pop.checkAcyclic(); err != nil {
		return nil, err
	}
	return pop, nil
}

func (pop *Population) resolveParents(p *Person) error {
	if (p.Mother == "") != (p.Father == "") {
		return fmt.Errorf("person %q has exactly one parent, need both or neither", p.Name)
	}
	p.mother, p.father = -1, -1
	if p.Mother == "" {
		return nil
	}
	for _, parent := range []string{p.Mother, p.Father} {
		if parent == p.Name {
			return fmt.Errorf("person %q is their own parent", p.Name)
		}
		if _, ok := pop.index[parent]; !ok {
			return fmt.Errorf("person %q references unknown parent %q", p.Name, parent)
		}
	}
	p.mother = pop.index[p.Mother]
	p.father = pop.index[p.Father]
	return nil
}

// checkAcyclic verifies the parent graph is a forest.
func (pop *Population) checkAcyclic() error {
	const (
		unvisited = iota
		visiting
		done
	)
	state := make([]int, len(pop.people))

	var visit func(i int) error
	visit = func(i int) error {
		switch state[i] {
		case done:
			return nil
		case visiting:
			return fmt.Errorf("ancestry cycle involving %q", pop.people[i].Name)
		}
		state[i] = visiting
		if p := pop.people[i]; p.mother >= 0 {
			if err := visit(p.mother); err != nil {
				return err
			}
			if err := visit(p.father); err != nil {
				return err
			}
		}
		state[i] = done
		return nil
	}

	for i := range pop.people {
		if err := visit(i); err != nil {
			return err
		}
	}
	return nil
}

// Size returns the number of people in the population.
func (pop *Population) Size() int {
	return len(pop.people)
}

// Names returns the people's names in enumeration order.
func (pop *Population) Names() []string {
	names := make([]string, len(pop.people))
	for i, p := range pop.people {
		names[i] = p.Name
	}
	return names
}
