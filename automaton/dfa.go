package automaton

// DFA is a deterministic finite automaton: at most one outgoing edge of
// a state admits any given symbol, no Epsilon edges are permitted, and
// Star never appears (see DESIGN.md's Open Question decision — the
// only edge constructors a DFA exposes are Is and IsNot, so a Star edge
// can never be attached to one).
type DFA struct {
	a arena
}

// NewDFA returns an empty DFA with no states.
func NewDFA() *DFA { return &DFA{a: newArena()} }

// AddState allocates and returns a new state id.
func (d *DFA) AddState() StateID { return d.a.addState() }

// SetStart sets the DFA's unique start state.
func (d *DFA) SetStart(id StateID) { d.a.setStart(id) }

// MakeFinal marks id as an accepting state. Idempotent.
func (d *DFA) MakeFinal(id StateID) { d.a.makeFinal(id) }

// NumStates returns the number of allocated states.
func (d *DFA) NumStates() int { return d.a.numStates() }

// IsFinal reports whether id is an accepting state.
func (d *DFA) IsFinal(id StateID) bool { return d.a.isFinal(id) }

// Start returns the start state and whether one has been set.
func (d *DFA) Start() (StateID, bool) { return d.a.start, d.a.hasStart }

// Edges returns id's outgoing edges.
func (d *DFA) Edges(id StateID) []Edge { return d.a.edgesOf(id) }

// AddIs adds an Is(c) edge from -> to, rejecting the insertion (and
// returning false) if c overlaps any existing outgoing class from
// from. This is the primitive ordinary callers (the trie builder) use;
// it can never introduce non-determinism.
func (d *DFA) AddIs(from, to StateID, c rune) bool {
	return d.addEdgeChecked(from, to, Is(c))
}

// AddIsNot adds the "everything else" default edge from -> to, rejecting
// the insertion if it overlaps any existing outgoing class from from.
func (d *DFA) AddIsNot(from, to StateID, excluded map[rune]struct{}) bool {
	return d.addEdgeChecked(from, to, IsNot(excluded))
}

func (d *DFA) addEdgeChecked(from, to StateID, class Transition) bool {
	d.a.checkAllocated(from)
	d.a.checkAllocated(to)
	for _, e := range d.a.states[from].edges {
		if Overlap(e.Class, class) {
			return false
		}
	}
	d.a.states[from].edges = append(d.a.states[from].edges, Edge{Class: class, To: to})
	return true
}

// addEdgeUnchecked appends an edge without the overlap check. Only
// subset construction may call this: it has already proven determinism
// by construction (each symbol dispatches to exactly one successor
// subset), so re-checking overlap on every insertion would be wasted
// work. A caller that is wrong about determinism corrupts the DFA
// silently — this is the Go analogue of the Rust original's `unsafe
// add_transition_unchecked`.
func (d *DFA) addEdgeUnchecked(from, to StateID, class Transition) {
	d.a.checkAllocated(from)
	d.a.checkAllocated(to)
	d.a.states[from].edges = append(d.a.states[from].edges, Edge{Class: class, To: to})
}

// Recognizes reports whether the DFA accepts word, scanning
// deterministically by selecting the unique applicable edge per symbol.
// An empty automaton rejects every word, including the empty string.
func (d *DFA) Recognizes(word string) bool {
	if d.a.numStates() == 0 {
		return false
	}
	active, ok := d.Start()
	if !ok {
		active = 0
	}

	for _, c := range word {
		next, found := d.step(active, c)
		if !found {
			return false
		}
		active = next
	}
	return d.IsFinal(active)
}

func (d *DFA) step(from StateID, c rune) (StateID, bool) {
	for _, e := range d.Edges(from) {
		if e.Class.Allows(c) {
			return e.To, true
		}
	}
	return 0, false
}
