package trie

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_Build_Contains(t *testing.T) {
	tr := Build([]string{"asd", "bin", "bing", "bong"})

	assert.True(t, tr.Contains("bing"))
	assert.True(t, tr.Contains("bong"))
	assert.True(t, tr.Contains("bin"))
	assert.True(t, tr.Contains("asd"))
	assert.False(t, tr.Contains("asdf"))
	assert.False(t, tr.Contains("bi"))
	assert.False(t, tr.Contains(""))
}

func Test_Build_Empty(t *testing.T) {
	tr := Build(nil)
	assert.False(t, tr.Contains("anything"))
	assert.False(t, tr.Contains(""))
}

func Test_Build_ContainsEmptyWord(t *testing.T) {
	tr := Build([]string{"", "cat"})
	assert.True(t, tr.Contains(""))
	assert.True(t, tr.Contains("cat"))
}

func Test_Build_PrefixWordIsFinal(t *testing.T) {
	// "car" is both a word and a prefix of "cart".
	tr := Build([]string{"car", "cart"})
	assert.True(t, tr.Contains("car"))
	assert.True(t, tr.Contains("cart"))
	assert.False(t, tr.Contains("ca"))
}

func Test_Build_Unicode(t *testing.T) {
	tr := Build([]string{"café", "naïve"})
	assert.True(t, tr.Contains("café"))
	assert.True(t, tr.Contains("naïve"))
	assert.False(t, tr.Contains("cafe"))
}
