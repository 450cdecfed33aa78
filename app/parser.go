package main

import (
	"fmt"

	"github.com/pkg/errors"
)

type parser struct {
	pattern []rune
	pos     int
	nodes   []node
}

func newParser(p string) *parser {
	return &parser{pattern: []rune(p), pos: 0}
}

// compile turns a pattern into its node sequence. The sequence is built
// fresh on every call and never shared.
func compile(pattern string) ([]node, error) {
	p := newParser(pattern)
	if err := p.parse(); err != nil {
		return nil, err
	}
	return p.nodes, nil
}

func (p *parser) errorf(pos int, format string, args ...interface{}) error {
	return errors.WithStack(&CompileError{
		Pattern: string(p.pattern),
		Pos:     pos,
		Reason:  fmt.Sprintf(format, args...),
	})
}

func (p *parser) eof() bool {
	return p.pos >= len(p.pattern)
}

// next returns the current rune and advances past it.
func (p *parser) next() (rune, bool) {
	if p.eof() {
		return 0, false
	}
	ch := p.pattern[p.pos]
	p.pos++
	return ch, true
}

func (p *parser) peek() (rune, bool) {
	if p.eof() {
		return 0, false
	}
	return p.pattern[p.pos], true
}

func (p *parser) push(n node) {
	p.nodes = append(p.nodes, n)
}

// pop removes the most recently compiled node.
func (p *parser) pop() node {
	last := p.nodes[len(p.nodes)-1]
	p.nodes = p.nodes[:len(p.nodes)-1]
	return last
}

func (p *parser) parse() error {
	for !p.eof() {
		start := p.pos
		ch, _ := p.next()
		var err error
		switch ch {
		case '\\':
			err = p.parseEscape(start)
		case '[':
			err = p.parseGroup(start)
		case '^':
			err = p.parseStartAnchor(start)
		case '$':
			err = p.parseEndAnchor(start)
		case '+':
			err = p.parseOneOrMore(start)
		default:
			p.push(&literalNode{char: ch})
		}
		if err != nil {
			return err
		}
	}
	return nil
}

func (p *parser) parseEscape(start int) error {
	esc, ok := p.next()
	if !ok {
		return p.errorf(start, "trailing backslash")
	}
	switch esc {
	case 'd':
		p.push(&digitNode{})
	case 'w':
		p.push(&alnumNode{})
	case '\\', '[', '^', '$', '+':
		p.push(&literalNode{char: esc})
	default:
		return p.errorf(start, "unsupported escape \\%c", esc)
	}
	return nil
}

func (p *parser) parseGroup(start int) error {
	negated := false
	if ch, ok := p.peek(); ok && ch == '^' {
		negated = true
		p.pos++
	}
	set := make(map[rune]bool)
	for {
		ch, ok := p.next()
		if !ok {
			return p.errorf(start, "unterminated character group, expected ']'")
		}
		if ch == ']' {
			break
		}
		set[ch] = true
	}
	p.push(&charClassNode{set: set, negated: negated})
	return nil
}

func (p *parser) parseStartAnchor(start int) error {
	if start != 0 {
		return p.errorf(start, "start anchor (^) must be the first element")
	}
	ch, ok := p.next()
	if !ok {
		return p.errorf(start, "start anchor (^) needs a character to anchor")
	}
	p.push(&startAnchorNode{char: ch})
	return nil
}

func (p *parser) parseEndAnchor(start int) error {
	if !p.eof() {
		return p.errorf(start, "end anchor ($) must be the last element")
	}
	if len(p.nodes) == 0 {
		return p.errorf(start, "end anchor ($) needs a preceding element")
	}
	p.push(&endAnchorNode{child: p.pop()})
	return nil
}

func (p *parser) parseOneOrMore(start int) error {
	if len(p.nodes) == 0 {
		return p.errorf(start, "quantifier (+) needs a preceding element")
	}
	p.push(&repNode{child: p.pop()})
	return nil
}
