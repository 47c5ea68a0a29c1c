// Package spellcheck wires a dictionary trie to a pluggable correction
// strategy, the way the membership check and the suggestion search are
// two independently swappable concerns of the spec.
package spellcheck

import (
	"github.com/LapingMiklos/lev-automaton/intersect"
	"github.com/LapingMiklos/lev-automaton/levenshtein"
	"github.com/LapingMiklos/lev-automaton/trie"
)

// Strategy proposes candidate corrections for word against the
// dictionary. It is called only when word is not itself a dictionary
// member.
type Strategy func(word string, t *trie.Trie) []string

// Checker checks individual words against a dictionary, falling back
// to its Strategy for misses.
type Checker struct {
	trie     *trie.Trie
	strategy Strategy
}

// New builds a Checker over t using strategy to propose corrections.
func New(t *trie.Trie, strategy Strategy) *Checker {
	return &Checker{trie: t, strategy: strategy}
}

// Check reports whether word is a dictionary member. When it is not,
// candidates holds the strategy's proposed corrections (possibly
// empty, if the strategy finds none).
func (c *Checker) Check(word string) (ok bool, candidates []string) {
	if c.trie.Contains(word) {
		return true, nil
	}
	return false, c.strategy(word, c.trie)
}

// EditDistanceStrategy returns a Strategy that proposes every
// dictionary word within edit distance k of the misspelled word, found
// by intersecting the word's Levenshtein DFA with the dictionary's
// trie automaton.
func EditDistanceStrategy(k int) Strategy {
	return func(word string, t *trie.Trie) []string {
		lev := levenshtein.BuildDFA(word, k)
		return intersect.Intersect(lev, t.Automaton())
	}
}
