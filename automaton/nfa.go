package automaton

import "sort"

// NFA is a nondeterministic finite automaton: Epsilon and Star edges are
// permitted, and a state may carry multiple edges for the same symbol.
type NFA struct {
	a arena
}

// NewNFA returns an empty NFA with no states.
func NewNFA() *NFA { return &NFA{a: newArena()} }

// AddState allocates and returns a new state id.
func (n *NFA) AddState() StateID { return n.a.addState() }

// SetStart sets the NFA's unique start state.
func (n *NFA) SetStart(id StateID) { n.a.setStart(id) }

// MakeFinal marks id as an accepting state. Idempotent.
func (n *NFA) MakeFinal(id StateID) { n.a.makeFinal(id) }

// NumStates returns the number of allocated states.
func (n *NFA) NumStates() int { return n.a.numStates() }

// IsFinal reports whether id is an accepting state.
func (n *NFA) IsFinal(id StateID) bool { return n.a.isFinal(id) }

// Start returns the start state and whether one has been set.
func (n *NFA) Start() (StateID, bool) { return n.a.start, n.a.hasStart }

// Edges returns id's outgoing edges.
func (n *NFA) Edges(id StateID) []Edge { return n.a.edgesOf(id) }

// AddEdge unconditionally appends an edge from -> to labeled class. NFAs
// place no determinism constraint on insertion.
func (n *NFA) AddEdge(from, to StateID, class Transition) {
	n.a.checkAllocated(from)
	n.a.checkAllocated(to)
	n.a.states[from].edges = append(n.a.states[from].edges, Edge{Class: class, To: to})
}

// EpsilonClosure returns the transitive closure of states over Epsilon
// edges, as a canonically sorted, duplicate-free slice of ids. Sorting
// makes equal subsets compare and key equal in the subset-construction
// work list; without it, cyclic ε-graphs would make the memo table
// compare unordered sets by reference and the construction would never
// terminate.
func (n *NFA) EpsilonClosure(states []StateID) []StateID {
	seen := make(map[StateID]struct{}, len(states))
	stack := make([]StateID, 0, len(states))
	for _, s := range states {
		if _, ok := seen[s]; !ok {
			seen[s] = struct{}{}
			stack = append(stack, s)
		}
	}
	for len(stack) > 0 {
		s := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for _, e := range n.Edges(s) {
			if !e.Class.IsEpsilon() {
				continue
			}
			if _, ok := seen[e.To]; !ok {
				seen[e.To] = struct{}{}
				stack = append(stack, e.To)
			}
		}
	}
	out := make([]StateID, 0, len(seen))
	for s := range seen {
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Recognizes reports whether the NFA accepts word, by simulating the
// active-state set: ε-closure, then breadth over each symbol in turn. An
// empty automaton rejects every word, including the empty string.
func (n *NFA) Recognizes(word string) bool {
	if n.a.numStates() == 0 {
		return false
	}
	start, ok := n.Start()
	if !ok {
		start = 0
	}
	active := n.EpsilonClosure([]StateID{start})

	for _, c := range word {
		next := make(map[StateID]struct{})
		for _, s := range active {
			for _, e := range n.Edges(s) {
				if e.Class.Allows(c) {
					next[e.To] = struct{}{}
				}
			}
		}
		if len(next) == 0 {
			return false
		}
		flat := make([]StateID, 0, len(next))
		for s := range next {
			flat = append(flat, s)
		}
		active = n.EpsilonClosure(flat)
	}

	for _, s := range active {
		if n.IsFinal(s) {
			return true
		}
	}
	return false
}
