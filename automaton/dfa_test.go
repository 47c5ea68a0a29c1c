package automaton

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_DFA_Recognizes_Empty(t *testing.T) {
	d := NewDFA()
	assert.False(t, d.Recognizes(""))
	assert.False(t, d.Recognizes("a"))
}

func Test_DFA_AddIs_RejectsOverlap(t *testing.T) {
	d := NewDFA()
	s0 := d.AddState()
	s1 := d.AddState()
	s2 := d.AddState()

	assert.True(t, d.AddIs(s0, s1, 'a'))
	assert.False(t, d.AddIs(s0, s2, 'a'))
}

func Test_DFA_AddIsNot_RejectsOverlap(t *testing.T) {
	d := NewDFA()
	s0 := d.AddState()
	s1 := d.AddState()
	s2 := d.AddState()

	assert.True(t, d.AddIs(s0, s1, 'a'))
	assert.False(t, d.AddIsNot(s0, s2, map[rune]struct{}{}))

	other := map[rune]struct{}{'a': {}}
	assert.True(t, d.AddIsNot(s0, s2, other))
}

func Test_DFA_Recognizes_Deterministic(t *testing.T) {
	d := NewDFA()
	s0 := d.AddState()
	s1 := d.AddState()
	s2 := d.AddState()
	d.SetStart(s0)
	d.MakeFinal(s2)
	d.AddIs(s0, s1, 'a')
	d.AddIs(s1, s2, 'b')

	assert.True(t, d.Recognizes("ab"))
	assert.False(t, d.Recognizes("a"))
	assert.False(t, d.Recognizes("ac"))
}

func Test_DFA_Recognizes_DefaultArc(t *testing.T) {
	d := NewDFA()
	s0 := d.AddState()
	s1 := d.AddState()
	d.SetStart(s0)
	d.MakeFinal(s1)
	d.AddIsNot(s0, s1, map[rune]struct{}{})

	assert.True(t, d.Recognizes("x"))
	assert.True(t, d.Recognizes("9"))
	assert.False(t, d.Recognizes("xy"))
}
