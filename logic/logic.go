// Package logic provides propositional-logic sentences and entailment
// checking by model enumeration.
package logic

import (
	"fmt"
	"sort"
	"strings"
)

// Model assigns a truth value to every symbol under consideration.
type Model map[Symbol]bool

// Sentence is a propositional formula.
type Sentence interface {
	// Evaluate returns the sentence's truth value in the given model.
	Evaluate(model Model) bool
	// Symbols returns every symbol appearing in the sentence.
	Symbols() map[Symbol]bool
	fmt.Stringer
}

// Symbol is an atomic proposition.
type Symbol string

func (s Symbol) Evaluate(model Model) bool {
	return model[s]
}

func (s Symbol) Symbols() map[Symbol]bool {
	return map[Symbol]bool{s: true}
}

func (s Symbol) String() string {
	return string(s)
}

type not struct {
	operand Sentence
}

// Not negates a sentence.
func Not(operand Sentence) Sentence {
	return not{operand: operand}
}

func (n not) Evaluate(model Model) bool {
	return !n.operand.Evaluate(model)
}

func (n not) Symbols() map[Symbol]bool {
	return n.operand.Symbols()
}

func (n not) String() string {
	return "¬" + n.operand.String()
}

type conjunction []Sentence

// And is true when every conjunct is true.
func And(conjuncts ...Sentence) Sentence {
	return conjunction(conjuncts)
}

func (c conjunction) Evaluate(model Model) bool {
	for _, s := range c {
		if !s.Evaluate(model) {
			return false
		}
	}
	return true
}

func (c conjunction) Symbols() map[Symbol]bool {
	return unionSymbols(c)
}

func (c conjunction) String() string {
	return joinSentences(c, " ∧ ")
}

type disjunction []Sentence

// Or is true when at least one disjunct is true.
func Or(disjuncts ...Sentence) Sentence {
	return disjunction(disjuncts)
}

func (d disjunction) Evaluate(model Model) bool {
	for _, s := range d {
		if s.Evaluate(model) {
			return true
		}
	}
	return false
}

func (d disjunction) Symbols() map[Symbol]bool {
	return unionSymbols(d)
}

func (d disjunction) String() string {
	return joinSentences(d, " ∨ ")
}

type implication struct {
	antecedent, consequent Sentence
}

// Implication is false only when the antecedent holds and the consequent
// does not.
func Implication(antecedent, consequent Sentence) Sentence {
	return implication{antecedent: antecedent, consequent: consequent}
}

func (i implication) Evaluate(model Model) bool {
	return !i.antecedent.Evaluate(model) || i.consequent.Evaluate(model)
}

func (i implication) Symbols() map[Symbol]bool {
	return unionSymbols([]Sentence{i.antecedent, i.consequent})
}

func (i implication) String() string {
	return fmt.Sprintf("(%s → %s)", i.antecedent, i.consequent)
}

type biconditional struct {
	left, right Sentence
}

// Biconditional is true when both sides have the same truth value.
func Biconditional(left, right Sentence) Sentence {
	return biconditional{left: left, right: right}
}

func (b biconditional) Evaluate(model Model) bool {
	return b.left.Evaluate(model) == b.right.Evaluate(model)
}

func (b biconditional) Symbols() map[Symbol]bool {
	return unionSymbols([]Sentence{b.left, b.right})
}

func (b biconditional) String() string {
	return fmt.Sprintf("(%s ↔ %s)", b.left, b.right)
}

func unionSymbols(sentences []Sentence) map[Symbol]bool {
	symbols := map[Symbol]bool{}
	for _, s := range sentences {
		for symbol := range s.Symbols() {
			symbols[symbol] = true
		}
	}
	return symbols
}

func joinSentences(sentences []Sentence, separator string) string {
	parts := make([]string, len(sentences))
	for i, s := range sentences {
		parts[i] = s.String()
	}
	return "(" + strings.Join(parts, separator) + ")"
}

// ModelCheck reports whether the knowledge base entails the query: the query
// must hold in every model in which the knowledge base holds. All truth
// assignments over the combined symbols are enumerated.
func ModelCheck(knowledge, query Sentence) bool {
	symbols := unionSymbols([]Sentence{knowledge, query})

	ordered := make([]Symbol, 0, len(symbols))
	for symbol := range symbols {
		ordered = append(ordered, symbol)
	}
	sort.Slice(ordered, func(i, j int) bool { return ordered[i] < ordered[j] })

	model := make(Model, len(ordered))
	return checkAll(knowledge, query, ordered, model)
}

func checkAll(knowledge, query Sentence, remaining []Symbol, model Model) bool {
	if len(remaining) == 0 {
		if knowledge.Evaluate(model) {
			return query.Evaluate(model)
		}
		return true // vacuously satisfied outside the knowledge base
	}

	symbol, rest := remaining[0], remaining[1:]
	for _, value := range []bool{true, false} {
		model[symbol] = value
		if !checkAll(knowledge, query, rest, model) {
			return false
		}
	}
	delete(model, symbol)
	return true
}
