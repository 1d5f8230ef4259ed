package syntax

import (
	"strconv"
	"strings"
)

// parser holds the state of one left-to-right scan over a pattern.
type parser struct {
	pattern string
	pos     int

	// nodes is the in-progress flat sequence. Closing a group splices its
	// tail into a single Group node.
	nodes []Node

	// frames is the stack of open groups, innermost last.
	frames []groupFrame

	// closed counts every group closed so far, nested closures included.
	// Backreference numbers are validated against it: the capture buffer is
	// appended to once per group closure at match time, in the same order
	// the ) tokens appear here.
	closed int

	anchoredStart bool
	anchoredEnd   bool
}

// groupFrame records where an open group's node sequence begins and, once
// an alternation bar is seen, where its right-hand branch begins.
type groupFrame struct {
	start int
	alt   int // index into nodes, -1 before any |
}

// Parse compiles a pattern into an Expression.
//
// The pattern is scanned left to right; at each position the first matching
// form is taken, in priority order: ^, $, \d, \w, \<digits>, [^...], [...],
// +, ?, ., (, ), |, then a single literal byte. All errors are returned as
// a *ParseError wrapping one of the sentinel errors in this package.
//
// Example:
//
//	expr, err := syntax.Parse(`(cat|dog)\1`)
//	if err != nil {
//	    log.Fatal(err)
//	}
func Parse(pattern string) (*Expression, error) {
	p := &parser{pattern: pattern}
	for p.pos < len(p.pattern) {
		if err := p.step(); err != nil {
			return nil, &ParseError{Pattern: pattern, Pos: p.pos, Err: err}
		}
	}
	if len(p.frames) > 0 {
		return nil, &ParseError{Pattern: pattern, Pos: len(pattern), Err: ErrUnclosedGroup}
	}
	return &Expression{
		Nodes:         p.nodes,
		AnchoredStart: p.anchoredStart,
		AnchoredEnd:   p.anchoredEnd,
	}, nil
}

// step recognizes one token at the current position and advances past it.
func (p *parser) step() error {
	rest := p.pattern[p.pos:]
	switch {
	case rest[0] == '^':
		p.anchoredStart = true
		p.pos++

	case rest[0] == '$':
		p.anchoredEnd = true
		p.pos++

	case strings.HasPrefix(rest, `\d`):
		p.push(Digit{}, 2)

	case strings.HasPrefix(rest, `\w`):
		p.push(Word{}, 2)

	case rest[0] == '\\' && len(rest) > 1 && isDigit(rest[1]):
		return p.backreference(rest)

	case rest[0] == '[':
		return p.bracketClass(rest)

	case rest[0] == '+':
		return p.wrapLast(func(inner Node) Node { return Repeat1{Inner: inner} })

	case rest[0] == '?':
		return p.wrapLast(func(inner Node) Node { return Optional{Inner: inner} })

	case rest[0] == '.':
		p.push(Wildcard{}, 1)

	case rest[0] == '(':
		p.frames = append(p.frames, groupFrame{start: len(p.nodes), alt: -1})
		p.pos++

	case rest[0] == ')':
		return p.closeGroup()

	case rest[0] == '|':
		return p.alternate()

	default:
		// Anything else, including a backslash not followed by d, w or a
		// digit, is a single literal byte.
		p.push(Literal{Ch: rest[0]}, 1)
	}
	return nil
}

// push appends a node and advances the scan by width bytes.
func (p *parser) push(n Node, width int) {
	p.nodes = append(p.nodes, n)
	p.pos += width
}

// backreference parses \<digits>, consuming the digits greedily.
func (p *parser) backreference(rest string) error {
	end := 1
	for end < len(rest) && isDigit(rest[end]) {
		end++
	}
	n, err := strconv.Atoi(rest[1:end])
	if err != nil || n < 1 || n > p.closed {
		return ErrInvalidBackreference
	}
	p.push(Backref{Index: n}, end)
	return nil
}

// bracketClass parses [...] or [^...] up to the next ], expanding a-z
// ranges into the member set.
func (p *parser) bracketClass(rest string) error {
	body := rest[1:]
	negated := false
	if strings.HasPrefix(body, "^") {
		negated = true
		body = body[1:]
	}
	end := strings.IndexByte(body, ']')
	if end < 0 {
		return ErrMalformedPattern
	}
	set, err := expandClass(body[:end])
	if err != nil {
		return err
	}
	p.push(Class{Set: set, Negated: negated}, len(rest)-len(body)+end+1)
	return nil
}

// expandClass expands range shorthand in a bracket class body into the full
// member set. A - at the start or end of the body is a literal.
func expandClass(body string) (string, error) {
	var set strings.Builder
	for i := 0; i < len(body); i++ {
		if i+2 < len(body) && body[i+1] == '-' {
			lo, hi := body[i], body[i+2]
			if lo > hi {
				return "", ErrMalformedPattern
			}
			for c := lo; ; c++ {
				set.WriteByte(c)
				if c == hi {
					break
				}
			}
			i += 2
			continue
		}
		set.WriteByte(body[i])
	}
	return set.String(), nil
}

// wrapLast replaces the most recently compiled node with a quantifier
// wrapping it.
func (p *parser) wrapLast(wrap func(Node) Node) error {
	if len(p.nodes) == 0 {
		return ErrDanglingQuantifier
	}
	p.nodes[len(p.nodes)-1] = wrap(p.nodes[len(p.nodes)-1])
	p.pos++
	return nil
}

// alternate records the split point of the innermost open group.
func (p *parser) alternate() error {
	if len(p.frames) == 0 {
		// Alternation is only supported inside a group.
		return ErrMalformedPattern
	}
	frame := &p.frames[len(p.frames)-1]
	if frame.alt >= 0 {
		return ErrDoubleAlternation
	}
	frame.alt = len(p.nodes)
	p.pos++
	return nil
}

// closeGroup pops the innermost frame and splices the nodes compiled since
// its open into a single Group node.
func (p *parser) closeGroup() error {
	if len(p.frames) == 0 {
		return ErrStrayGroupClose
	}
	frame := p.frames[len(p.frames)-1]
	p.frames = p.frames[:len(p.frames)-1]

	alt := frame.alt
	if alt < 0 {
		alt = len(p.nodes)
	}
	left := append([]Node(nil), p.nodes[frame.start:alt]...)
	right := append([]Node(nil), p.nodes[alt:]...)
	p.nodes = append(p.nodes[:frame.start], Group{Left: left, Right: right})
	p.closed++
	p.pos++
	return nil
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}
