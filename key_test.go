package suffixtree

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func view(s string, b, e int) key[byte] {
	return key[byte]{s: []byte(s), b: b, e: e}
}

func TestKeyView(t *testing.T) {
	k := view("libertypike", 0, 11)
	assert.Equal(t, 11, k.size())
	assert.False(t, k.empty())
	assert.Equal(t, byte('l'), k.at(0))
	assert.Equal(t, byte('e'), k.at(10))

	sub := k.substr(7)
	assert.Equal(t, 4, sub.size())
	assert.Equal(t, byte('p'), sub.at(0))

	// Clamped to the original end.
	assert.Equal(t, 0, k.substr(100).size())
	assert.True(t, k.substr(11).empty())
	assert.Equal(t, 3, k.substrLen(0, 3).size())
	assert.Equal(t, 11, k.substrLen(0, 100).size())
	assert.Equal(t, 0, view("abc", 2, 1).size())
}

func TestKeyCutLast(t *testing.T) {
	k := view("abc", 0, 3)
	assert.Equal(t, 2, cutLast(k).size())
	assert.Equal(t, 0, cutLast(view("abc", 1, 1)).size())
}

func TestKeyPrefixAndEquality(t *testing.T) {
	tr := New[byte, int]()
	k := view("bethesda", 0, 8)

	assert.True(t, tr.hasPrefix(k, view("bethesda", 0, 4)))
	assert.True(t, tr.hasPrefix(k, view("xxbexx", 2, 4)))
	assert.False(t, tr.hasPrefix(k, view("eth", 0, 3)))
	assert.False(t, tr.hasPrefix(view("be", 0, 2), k))
	assert.True(t, tr.hasPrefix(k, view("", 0, 0)))

	assert.True(t, tr.keyEq(view("da", 0, 2), view("bethesda", 6, 8)))
	assert.False(t, tr.keyEq(k, view("bethesd", 0, 7)))
}
