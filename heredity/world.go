package heredity

// set is a subset of the population, one bit per person in enumeration order.
type set uint32

func (s set) contains(i int) bool {
	return s&(1<<i) != 0
}

// world is one fully specified assignment: everyone in oneGene carries one
// copy, everyone in twoGenes carries two, everyone else carries none, and
// hasTrait marks who expresses the trait. oneGene and twoGenes are disjoint.
type world struct {
	oneGene  set
	twoGenes set
	hasTrait set
}

// geneCount returns how many gene copies person i carries in this world.
func (w world) geneCount(i int) int {
	switch {
	case w.oneGene.contains(i):
		return 1
	case w.twoGenes.contains(i):
		return 2
	default:
		return 0
	}
}

// consistent reports whether a trait assignment agrees with every observed
// trait value in the population.
func (pop *Population) consistent(hasTrait set) bool {
	for i, p := range pop.people {
		switch p.Trait {
		case ObservedTrue:
			if !hasTrait.contains(i) {
				return false
			}
		case ObservedFalse:
			if hasTrait.contains(i) {
				return false
			}
		}
	}
	return true
}

// forEachWorld calls fn once for every (gene assignment, trait assignment)
// pair consistent with the observed evidence. Trait assignments violating
// evidence are discarded before any gene enumeration. Gene assignments are
// every partition of the population into one-copy, two-copy and zero-copy
// groups: all subsets S1, crossed with all subsets S2 of the complement.
func forEachWorld(pop *Population, fn func(world)) {
	full := set(1)<<pop.Size() - 1
	for hasTrait := set(0); ; hasTrait++ {
		if pop.consistent(hasTrait) {
			forEachGeneSplit(full, hasTrait, fn)
		}
		if hasTrait == full {
			break
		}
	}
}

func forEachGeneSplit(full, hasTrait set, fn func(world)) {
	for oneGene := set(0); ; oneGene++ {
		rest := full &^ oneGene
		// Enumerate subsets of the complement: standard submask walk.
		twoGenes := rest
		for {
			fn(world{oneGene: oneGene, twoGenes: twoGenes, hasTrait: hasTrait})
			if twoGenes == 0 {
				break
			}
			twoGenes = (twoGenes - 1) & rest
		}
		if oneGene == full {
			break
		}
	}
}
