package radix

import (
	"testing"

	"github.com/rohanthewiz/assert"
)

func TestKeyPriority(t *testing.T) {
	cases := []struct {
		key  string
		want int
	}{
		{"", 0},
		{"abc", 3},
		{":id", 1},
		{"*filepath", 0},
		{"posts/:id", 1},
		{"a*b", 0},
	}

	for _, c := range cases {
		assert.Equal(t, keyPriority(c.key), c.want)
	}
}

func TestSortChildrenDescendingPriority(t *testing.T) {
	n := &node[string]{}
	n.addChild(newNode(":id", "param"))
	n.addChild(newNode("bc", "literal-2"))
	n.addChild(newNode("*rest", "catch-all"))
	n.addChild(newNode("a", "literal-1"))

	assert.Equal(t, len(n.children), 4)
	assert.Equal(t, n.children[0].key, "bc")
	assert.Equal(t, n.children[1].key, ":id")
	assert.Equal(t, n.children[2].key, "a")
	assert.Equal(t, n.children[3].key, "*rest")
}

func TestClearPayload(t *testing.T) {
	n := newNode("abc", "value")
	assert.True(t, n.hasPayload)

	n.clearPayload()
	assert.False(t, n.hasPayload)
	assert.Equal(t, n.payload, "")
}

func TestCommonPrefixPlain(t *testing.T) {
	p, conflict, _, _ := commonPrefix("abc", "axyz")
	assert.Equal(t, p, 1)
	assert.False(t, conflict)
}

func TestCommonPrefixNamedParameterAtomic(t *testing.T) {
	// Same parameter name ":id" on both sides advances as one atomic
	// unit, so the literal suffixes are compared starting right after it.
	p, conflict, existing, want := commonPrefix(":id/edit", ":id/view")
	assert.Equal(t, p, 4)
	assert.False(t, conflict)
	assert.Equal(t, existing, "")
	assert.Equal(t, want, "")

	p, conflict, existing, want = commonPrefix(":post", ":category")
	assert.Equal(t, p, 0)
	assert.True(t, conflict)
	assert.Equal(t, existing, "post")
	assert.Equal(t, want, "category")
}

func TestNamedParamToken(t *testing.T) {
	name, tokenLen := namedParamToken(":id/comments")
	assert.Equal(t, name, "id")
	assert.Equal(t, tokenLen, 3)

	name, tokenLen = namedParamToken(":id")
	assert.Equal(t, name, "id")
	assert.Equal(t, tokenLen, 3)
}
