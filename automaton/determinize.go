package automaton

import (
	"sort"
	"strconv"
	"strings"
)

// Determinize converts an NFA into an equivalent DFA via subset
// construction: L(Determinize(n)) == L(n). An empty NFA determinizes to
// an empty DFA.
//
// The "everything else" default arc is represented as a single IsNot(C)
// edge rather than one edge per symbol actually reached via Star, where
// C is the set of symbols already dispatched by an Is edge from the same
// subset. This is what keeps the DFA's transition table bounded despite
// a Unicode alphabet: see spec.md §4.2 step 3c.
func Determinize(n *NFA) *DFA {
	d := NewDFA()
	if n.NumStates() == 0 {
		return d
	}

	start, ok := n.Start()
	if !ok {
		start = 0
	}
	startSubset := n.EpsilonClosure([]StateID{start})

	subsetToDFA := make(map[string]StateID)
	allocate := func(subset []StateID) (StateID, bool) {
		key := subsetKey(subset)
		if id, ok := subsetToDFA[key]; ok {
			return id, false
		}
		id := d.AddState()
		subsetToDFA[key] = id
		if hasFinal(n, subset) {
			d.MakeFinal(id)
		}
		return id, true
	}

	startID, _ := allocate(startSubset)
	d.SetStart(startID)

	type work struct {
		subset []StateID
		id     StateID
	}
	queue := []work{{subset: startSubset, id: startID}}

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]

		// C = symbols reachable via an explicit Is(c) edge from this subset.
		chars := make(map[rune]struct{})
		for _, s := range cur.subset {
			for _, e := range n.Edges(s) {
				if c, isIs := e.Class.IsIs(); isIs {
					chars[c] = struct{}{}
				}
			}
		}
		sortedChars := make([]rune, 0, len(chars))
		for c := range chars {
			sortedChars = append(sortedChars, c)
		}
		sort.Slice(sortedChars, func(i, j int) bool { return sortedChars[i] < sortedChars[j] })

		for _, c := range sortedChars {
			var targets []StateID
			for _, s := range cur.subset {
				for _, e := range n.Edges(s) {
					if e.Class.Allows(c) && !e.Class.IsEpsilon() {
						targets = append(targets, e.To)
					}
				}
			}
			if len(targets) == 0 {
				continue
			}
			closure := n.EpsilonClosure(targets)
			toID, isNew := allocate(closure)
			if isNew {
				queue = append(queue, work{subset: closure, id: toID})
			}
			d.addEdgeUnchecked(cur.id, toID, Is(c))
		}

		// U = states reachable only via Star, for the default arc.
		var starTargets []StateID
		for _, s := range cur.subset {
			for _, e := range n.Edges(s) {
				if e.Class.IsStar() {
					starTargets = append(starTargets, e.To)
				}
			}
		}
		if len(starTargets) == 0 {
			continue
		}
		closure := n.EpsilonClosure(starTargets)
		toID, isNew := allocate(closure)
		if isNew {
			queue = append(queue, work{subset: closure, id: toID})
		}
		d.addEdgeUnchecked(cur.id, toID, IsNot(chars))
	}

	return d
}

// subsetKey canonicalizes a subset of NFA state ids (already sorted by
// EpsilonClosure) into a comparable string, so that equal subsets map to
// the same DFA state instead of duplicating work forever on ε-cycles.
func subsetKey(subset []StateID) string {
	parts := make([]string, len(subset))
	for i, s := range subset {
		parts[i] = strconv.Itoa(int(s))
	}
	return strings.Join(parts, ",")
}

func hasFinal(n *NFA, subset []StateID) bool {
	for _, s := range subset {
		if n.IsFinal(s) {
			return true
		}
	}
	return false
}
