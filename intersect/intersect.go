// Package intersect enumerates the intersection of two deterministic
// automata's languages by walking the product automaton.
package intersect

import "github.com/LapingMiklos/lev-automaton/automaton"

// frame is the traversal state pushed on the work stack: the prefix
// accumulated so far and the pair of DFA states reached by consuming
// it, one per operand.
type frame struct {
	prefix []rune
	pA, pB automaton.StateID
}

// Intersect returns every string accepted by both a and b. The walk is
// a depth-first traversal of pairs of states reachable from (start(a),
// start(b)): at each pair, every pair of outgoing edges that Merge
// agree on a concrete witnessing symbol extends the prefix by that
// symbol and pushes the successor pair. A pair where both sides are
// final yields the accumulated prefix as a result.
//
// Intersect does not bound the number of results; callers with a
// budget on the number of candidates should stop reading past what
// they need, or wrap Intersect with their own cap.
func Intersect(a, b *automaton.DFA) []string {
	if a.NumStates() == 0 || b.NumStates() == 0 {
		return nil
	}
	startA, ok := a.Start()
	if !ok {
		startA = 0
	}
	startB, ok := b.Start()
	if !ok {
		startB = 0
	}

	var results []string
	stack := []frame{{pA: startA, pB: startB}}

	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if a.IsFinal(f.pA) && b.IsFinal(f.pB) {
			results = append(results, string(f.prefix))
		}

		for _, eA := range a.Edges(f.pA) {
			for _, eB := range b.Edges(f.pB) {
				c, ok := automaton.Merge(eA.Class, eB.Class)
				if !ok {
					continue
				}
				next := make([]rune, len(f.prefix)+1)
				copy(next, f.prefix)
				next[len(f.prefix)] = c
				stack = append(stack, frame{prefix: next, pA: eA.To, pB: eB.To})
			}
		}
	}

	return results
}
