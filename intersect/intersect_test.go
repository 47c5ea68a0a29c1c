package intersect

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/LapingMiklos/lev-automaton/automaton"
	"github.com/LapingMiklos/lev-automaton/levenshtein"
	"github.com/LapingMiklos/lev-automaton/trie"
)

func Test_Intersect_EmptyQueryWord(t *testing.T) {
	tr := trie.Build([]string{"a", "ab", "abc", "abcd"})
	lev := levenshtein.BuildDFA("", 2)

	got := Intersect(lev, tr.Automaton())
	assert.ElementsMatch(t, []string{"a", "ab"}, got)
}

func Test_Intersect_Unicode(t *testing.T) {
	tr := trie.Build([]string{"café", "cafe", "cafes", "coffee"})
	lev := levenshtein.BuildDFA("cafe", 1)

	// "café" is one substitution away, "cafes" is one trailing insertion
	// away (mirrors the "food" -> "food." case in the Levenshtein test
	// vectors); "coffee" is too far at budget 1.
	got := Intersect(lev, tr.Automaton())
	assert.ElementsMatch(t, []string{"café", "cafe", "cafes"}, got)
}

func Test_Intersect_NoOverlap(t *testing.T) {
	tr := trie.Build([]string{"zebra", "zephyr"})
	lev := levenshtein.BuildDFA("cat", 1)

	got := Intersect(lev, tr.Automaton())
	assert.Empty(t, got)
}

func Test_Intersect_EmptyOperand(t *testing.T) {
	tr := trie.Build([]string{"cat"})

	got := Intersect(automaton.NewDFA(), tr.Automaton())
	assert.Nil(t, got)
}
