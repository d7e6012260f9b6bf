package heredity

import "math"

// MutationRate is the probability that a transmitted allele flips state
// during inheritance.
const MutationRate = 0.01

// genePrior is the unconditional distribution over gene copy counts for a
// person with no parents in the pedigree, indexed by copy count.
var genePrior = [3]float64{0.96, 0.03, 0.01}

// traitProb[genes][traitIndex(t)] is the probability of expressing (or not
// expressing) the trait given a gene copy count.
var traitProb = [3][2]float64{
	0: {0.99, 0.01},
	1: {0.44, 0.56},
	2: {0.35, 0.65},
}

// passProb[genes] is the probability that a parent with the given copy count
// passes the gene to a child. The heterozygous case is exactly 0.5: the model
// does not compound mutation onto the coin flip.
var passProb = [3]float64{MutationRate, 0.5, 1 - MutationRate}

// traitIndex maps a trait value onto distribution index 0 (false) or 1 (true).
func traitIndex(hasTrait bool) int {
	if hasTrait {
		return 1
	}
	return 0
}

func init() {
	mustSumToOne(genePrior[:], "gene prior")
	for _, row := range traitProb {
		mustSumToOne(row[:], "trait probabilities")
	}
}

func mustSumToOne(values []float64, what string) {
	sum := 0.0
	for _, v := range values {
		sum += v
	}
	if math.Abs(sum-1) > 1e-12 {
		panic(what + " does not sum to 1")
	}
}
