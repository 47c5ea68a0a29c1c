package spellcheck

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/LapingMiklos/lev-automaton/trie"
)

func Test_Check_DictionaryHit(t *testing.T) {
	tr := trie.Build([]string{"cat", "car", "bat"})
	c := New(tr, EditDistanceStrategy(1))

	ok, candidates := c.Check("cat")
	assert.True(t, ok)
	assert.Nil(t, candidates)
}

func Test_Check_SuggestsEditDistance1(t *testing.T) {
	tr := trie.Build([]string{"cat", "car", "bat"})
	c := New(tr, EditDistanceStrategy(1))

	ok, candidates := c.Check("cot")
	assert.False(t, ok)
	assert.ElementsMatch(t, []string{"cat"}, candidates)
}

func Test_Check_NoCandidatesWithinBudget(t *testing.T) {
	tr := trie.Build([]string{"a"})
	c := New(tr, EditDistanceStrategy(1))

	ok, candidates := c.Check("zzzzz")
	assert.False(t, ok)
	assert.Empty(t, candidates)
}

func Test_Check_EmptyQueryWord(t *testing.T) {
	tr := trie.Build([]string{"a"})
	c := New(tr, EditDistanceStrategy(1))

	ok, candidates := c.Check("")
	assert.False(t, ok)
	assert.ElementsMatch(t, []string{"a"}, candidates)
}

func Test_Check_CustomStrategy(t *testing.T) {
	tr := trie.Build([]string{"cat"})
	called := false
	c := New(tr, func(word string, t *trie.Trie) []string {
		called = true
		return []string{"fixed"}
	})

	ok, candidates := c.Check("dog")
	assert.False(t, ok)
	assert.True(t, called)
	assert.Equal(t, []string{"fixed"}, candidates)
}
