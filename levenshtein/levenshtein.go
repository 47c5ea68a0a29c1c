// Package levenshtein builds the nondeterministic finite automaton that
// recognizes every string within edit distance k of a fixed word, and
// its determinized form.
package levenshtein

import "github.com/LapingMiklos/lev-automaton/automaton"

// Build constructs the Levenshtein NFA for word at budget k: an
// (|word|+1)x(k+1) grid of states, states[i][e] meaning "i symbols of
// word consumed, e edits spent so far". Row i carries a match edge
// Is(word[i]) advancing i without spending an edit, and (while budget
// remains) an insertion self-loop, a deletion epsilon diagonal, and a
// substitution diagonal. The final row adds a trailing insertion loop
// so that once word is fully consumed, any further inserted symbols
// still cost edits. Every state[len(word)][e] for 0<=e<=k is final.
func Build(word string, k int) *automaton.NFA {
	n := automaton.NewNFA()

	runes := []rune(word)
	wordLen := len(runes)

	states := make([][]automaton.StateID, wordLen+1)
	for i := range states {
		states[i] = make([]automaton.StateID, k+1)
		for e := range states[i] {
			states[i][e] = n.AddState()
		}
	}
	n.SetStart(states[0][0])

	for i, c := range runes {
		for e := 0; e <= k; e++ {
			n.AddEdge(states[i][e], states[i+1][e], automaton.Is(c))
			if e < k {
				n.AddEdge(states[i][e], states[i][e+1], automaton.Star())
				n.AddEdge(states[i][e], states[i+1][e+1], automaton.Epsilon())
				n.AddEdge(states[i][e], states[i+1][e+1], automaton.Star())
			}
		}
	}

	for e := 0; e <= k; e++ {
		if e < k {
			n.AddEdge(states[wordLen][e], states[wordLen][e+1], automaton.Star())
		}
		n.MakeFinal(states[wordLen][e])
	}

	return n
}

// BuildDFA builds the Levenshtein NFA for word at budget k and
// determinizes it.
func BuildDFA(word string, k int) *automaton.DFA {
	return automaton.Determinize(Build(word, k))
}
