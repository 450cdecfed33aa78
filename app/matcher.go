package main

import "unicode"

// matchChar reports whether a single rune satisfies n. Wrapper nodes
// delegate to whatever they wrap.
func matchChar(n node, c rune) bool {
	switch x := n.(type) {
	case *literalNode:
		return c == x.char
	case *digitNode:
		return c >= '0' && c <= '9'
	case *alnumNode:
		return unicode.IsLetter(c) || unicode.IsNumber(c)
	case *charClassNode:
		return x.set[c] != x.negated
	case *startAnchorNode:
		return c == x.char
	case *endAnchorNode:
		return matchChar(x.child, c)
	case *repNode:
		return matchChar(x.child, c)
	default:
		return false
	}
}

// consumeRepeats returns the position just past every rune from pos onwards
// that still satisfies a one-or-more node's child. Runes taken here are never
// given back to later nodes. An end anchor around a one-or-more node repeats
// too. For any other node pos is returned unchanged.
func consumeRepeats(n node, runes []rune, pos int) int {
	if ea, ok := n.(*endAnchorNode); ok {
		n = ea.child
	}
	r, ok := n.(*repNode)
	if !ok {
		return pos
	}
	for pos < len(runes) && matchChar(r.child, runes[pos]) {
		pos++
	}
	return pos
}

// hasStartAnchor reports whether n is, or wraps, a start anchor.
func hasStartAnchor(n node) bool {
	switch x := n.(type) {
	case *startAnchorNode:
		return true
	case *endAnchorNode:
		return hasStartAnchor(x.child)
	case *repNode:
		return hasStartAnchor(x.child)
	}
	return false
}
