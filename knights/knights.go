// Package knights solves knights-and-knaves puzzles: every character is
// either a knight (always truthful) or a knave (always lying), and each
// statement a character makes is true exactly when they are a knight.
package knights

import "cs50ai/logic"

// Character symbols shared by the puzzles.
var (
	AKnight = logic.Symbol("A is a Knight")
	AKnave  = logic.Symbol("A is a Knave")
	BKnight = logic.Symbol("B is a Knight")
	BKnave  = logic.Symbol("B is a Knave")
	CKnight = logic.Symbol("C is a Knight")
	CKnave  = logic.Symbol("C is a Knave")
)

// Puzzle pairs a knowledge base with the symbols worth querying.
type Puzzle struct {
	Name      string
	Knowledge logic.Sentence
	Symbols   []logic.Symbol
}

// isEither encodes that a character is a knight or a knave, never both.
func isEither(knight, knave logic.Symbol) logic.Sentence {
	return logic.Biconditional(knight, logic.Not(knave))
}

// says encodes a statement: a character is a knight exactly when what they
// said is true.
func says(knight logic.Symbol, statement logic.Sentence) logic.Sentence {
	return logic.Biconditional(knight, statement)
}

// Puzzles returns the four standard puzzles.
func Puzzles() []Puzzle {
	two := []logic.Symbol{AKnight, AKnave, BKnight, BKnave}
	three := append(two, CKnight, CKnave)

	return []Puzzle{
		{
			// A says "I am both a knight and a knave."
			Name: "Puzzle 0",
			Knowledge: logic.And(
				isEither(AKnight, AKnave),
				says(AKnight, logic.And(AKnight, AKnave)),
			),
			Symbols: []logic.Symbol{AKnight, AKnave},
		},
		{
			// A says "We are both knaves." B says nothing.
			Name: "Puzzle 1",
			Knowledge: logic.And(
				isEither(AKnight, AKnave),
				isEither(BKnight, BKnave),
				says(AKnight, logic.And(AKnave, BKnave)),
			),
			Symbols: two,
		},
		{
			// A says "We are the same kind." B says "We are of different kinds."
			Name: "Puzzle 2",
			Knowledge: logic.And(
				isEither(AKnight, AKnave),
				isEither(BKnight, BKnave),
				says(AKnight, logic.Or(
					logic.And(AKnight, BKnight),
					logic.And(AKnave, BKnave),
				)),
				says(BKnight, logic.Or(
					logic.And(AKnight, BKnave),
					logic.And(AKnave, BKnight),
				)),
			),
			Symbols: two,
		},
		{
			// A says either "I am a knight." or "I am a knave.", unknown which.
			// B says "A said 'I am a knave'." and "C is a knave."
			// C says "A is a knight."
			Name: "Puzzle 3",
			Knowledge: logic.And(
				isEither(AKnight, AKnave),
				isEither(BKnight, BKnave),
				isEither(CKnight, CKnave),
				says(BKnight, logic.Biconditional(AKnight, AKnave)),
				says(BKnight, CKnave),
				says(CKnight, AKnight),
			),
			Symbols: three,
		},
	}
}

// Solve returns the symbols entailed by the puzzle's knowledge base.
func Solve(p Puzzle) []logic.Symbol {
	var entailed []logic.Symbol
	for _, symbol := range p.Symbols {
		if logic.ModelCheck(p.Knowledge, symbol) {
			entailed = append(entailed, symbol)
		}
	}
	return entailed
}
