package main

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMatchChar(t *testing.T) {
	group := &charClassNode{set: set("abc")}
	negated := &charClassNode{set: set("abc"), negated: true}

	tests := []struct {
		name string
		n    node
		hit  string
		miss string
	}{
		{"literal", &literalNode{char: 'x'}, "x", "Xy1 "},
		{"digit", &digitNode{}, "0123456789", "aZ _-٣"},
		{"alnum", &alnumNode{}, "aZ09éß", "_ -!$"},
		{"group", group, "abc", "dA "},
		{"negated group", negated, "dA 1", "abc"},
		{"start anchor", &startAnchorNode{char: 'J'}, "J", "jK"},
		{"end anchor", &endAnchorNode{child: &digitNode{}}, "7", "x"},
		{"one or more", &repNode{child: group}, "b", "z"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, c := range tt.hit {
				require.True(t, matchChar(tt.n, c), "%q", c)
			}
			for _, c := range tt.miss {
				require.False(t, matchChar(tt.n, c), "%q", c)
			}
		})
	}
}

func TestMatchCharUnknownNode(t *testing.T) {
	require.False(t, matchChar(struct{}{}, 'a'))
	require.False(t, matchChar(nil, 'a'))
}

func TestConsumeRepeats(t *testing.T) {
	runes := []rune("aaab")
	rep := &repNode{child: &literalNode{char: 'a'}}

	require.Equal(t, 3, consumeRepeats(rep, runes, 1))
	require.Equal(t, 3, consumeRepeats(rep, runes, 3))
	require.Equal(t, 4, consumeRepeats(rep, runes, 4))
	// Only repeat nodes consume anything.
	require.Equal(t, 1, consumeRepeats(&literalNode{char: 'a'}, runes, 1))
	require.Equal(t, 1, consumeRepeats(&endAnchorNode{child: rep.child}, runes, 1))
	require.Equal(t, 3, consumeRepeats(&endAnchorNode{child: rep}, runes, 1))
	// Nested repeats consume the same run as a single one.
	require.Equal(t, 3, consumeRepeats(&repNode{child: rep}, runes, 0))
}

func TestHasStartAnchor(t *testing.T) {
	sa := &startAnchorNode{char: 'a'}
	require.True(t, hasStartAnchor(sa))
	require.True(t, hasStartAnchor(&repNode{child: sa}))
	require.True(t, hasStartAnchor(&endAnchorNode{child: sa}))
	require.False(t, hasStartAnchor(&literalNode{char: 'a'}))
	require.False(t, hasStartAnchor(&repNode{child: &literalNode{char: 'a'}}))
}
