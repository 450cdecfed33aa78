package main

// node is one compiled element of a pattern.
type node interface{}

type literalNode struct{ char rune }
type digitNode struct{}
type alnumNode struct{}
type charClassNode struct {
	set     map[rune]bool
	negated bool
}

// startAnchorNode is only ever element 0; its payload is a single rune.
type startAnchorNode struct{ char rune }

// endAnchorNode is only ever the last element.
type endAnchorNode struct{ child node }

// repNode is the one-or-more quantifier.
type repNode struct{ child node }

