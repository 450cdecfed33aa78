package main

import (
	"go.uber.org/zap"
)

// matchLine compiles pattern and reports whether it occurs anywhere in line.
// A malformed pattern is returned as an error, never as a mismatch.
func matchLine(line, pattern string) (bool, error) {
	matchLog.Debug("raw pattern", zap.String("pattern", pattern))

	nodes, err := compile(pattern)
	if err != nil {
		return false, err
	}
	if ce := matchLog.Check(zap.DebugLevel, "compiled pattern"); ce != nil {
		ce.Write(zap.Strings("nodes", formatNodes(nodes)))
	}

	return matchRunes([]rune(line), nodes), nil
}

// matchRunes tries every start offset in turn and stops at the first one
// from which the whole node sequence is satisfied.
func matchRunes(runes []rune, nodes []node) bool {
	if len(nodes) == 0 {
		return true
	}
	if len(runes) == 0 {
		return false
	}

	first, last := nodes[0], nodes[len(nodes)-1]
	if hasStartAnchor(first) && !matchChar(first, runes[0]) {
		return false
	}
	if _, ok := last.(*endAnchorNode); ok && !matchChar(last, runes[len(runes)-1]) {
		return false
	}

	for start := range runes {
		if end, ok := matchFrom(runes, start, nodes); ok {
			matchLog.Debug("matched",
				zap.Int("start", start), zap.Int("end", end))
			return true
		}
	}
	return false
}

// matchFrom walks nodes left to right starting at runes[start]. It returns
// the position just past the match and whether the walk succeeded.
func matchFrom(runes []rune, start int, nodes []node) (int, bool) {
	pos, idx := start, 0
	for pos < len(runes) {
		n := nodes[idx]
		if !matchChar(n, runes[pos]) {
			return 0, false
		}
		pos = consumeRepeats(n, runes, pos+1)

		if idx == len(nodes)-1 {
			if _, ok := n.(*endAnchorNode); ok && pos < len(runes) {
				return 0, false
			}
			return pos, true
		}
		idx++
	}
	return 0, false
}
