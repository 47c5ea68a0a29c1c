// Package trie builds a dictionary word list into a deterministic
// automaton whose language is exactly that word list.
package trie

import (
	"sort"

	"github.com/LapingMiklos/lev-automaton/automaton"
)

// Trie is a dictionary represented as a DFA: Contains(w) iff w is a
// member of the word list the Trie was built from.
type Trie struct {
	d *automaton.DFA
}

// Build sorts words and constructs the trie. The input slice is not
// mutated; words is copied before sorting.
func Build(words []string) *Trie {
	sorted := make([]string, len(words))
	copy(sorted, words)
	sort.Strings(sorted)

	d := automaton.NewDFA()
	start := d.AddState()
	d.SetStart(start)
	if len(sorted) > 0 && sorted[0] == "" {
		d.MakeFinal(start)
	}

	addTrieStates(d, start, sorted)

	return &Trie{d: d}
}

// Contains reports whether word is a member of the dictionary the trie
// was built from.
func (t *Trie) Contains(word string) bool {
	return t.d.Recognizes(word)
}

// Automaton exposes the underlying DFA, for the intersect package to
// traverse alongside a Levenshtein DFA.
func (t *Trie) Automaton() *automaton.DFA {
	return t.d
}

// addTrieStates groups words by leading rune (words is already sorted,
// so equal leading runes are contiguous) and recurses on the
// code-point-sliced suffixes of each group. A trie never needs an
// IsNot edge: every child of a state is reached by a distinct Is(c),
// since words sharing a prefix differ at the next rune by definition
// of the grouping.
func addTrieStates(d *automaton.DFA, from automaton.StateID, words []string) {
	i := 0
	for i < len(words) {
		runes := []rune(words[i])
		if len(runes) == 0 {
			i++
			continue
		}
		c := runes[0]

		j := i
		var suffixes []string
		for j < len(words) {
			wr := []rune(words[j])
			if len(wr) == 0 || wr[0] != c {
				break
			}
			suffixes = append(suffixes, string(wr[1:]))
			j++
		}

		to := d.AddState()
		if !d.AddIs(from, to, c) {
			panic("trie: leading rune groups must be disjoint by construction")
		}
		for _, s := range suffixes {
			if s == "" {
				d.MakeFinal(to)
				break
			}
		}
		addTrieStates(d, to, suffixes)

		i = j
	}
}
