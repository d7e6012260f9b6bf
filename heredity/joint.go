package heredity

// jointProbability computes the probability mass of one world: the product,
// over every person, of the probability of their gene copy count times the
// probability of their trait value given that count.
//
// Founders draw their copy count from the unconditional prior. A child's
// count is determined by what each parent passes: a parent with 0 copies
// passes one only by mutation, a parent with 1 copy passes one with
// probability 0.5, and a parent with 2 copies fails to pass one only by
// mutation.
func jointProbability(pop *Population, w world) float64 {
	joint := 1.0
	for i, p := range pop.people {
		genes := w.geneCount(i)

		var geneP float64
		if p.mother < 0 {
			geneP = genePrior[genes]
		} else {
			fromMother := passProb[w.geneCount(p.mother)]
			fromFather := passProb[w.geneCount(p.father)]
			switch genes {
			case 0:
				geneP = (1 - fromMother) * (1 - fromFather)
			case 1:
				geneP = fromMother*(1-fromFather) + (1-fromMother)*fromFather
			case 2:
				geneP = fromMother * fromFather
			}
		}

		joint *= geneP * traitProb[genes][traitIndex(w.hasTrait.contains(i))]
	}
	return joint
}
