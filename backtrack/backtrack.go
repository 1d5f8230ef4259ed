// Package backtrack implements the matcher engine that walks a compiled
// expression against a subject.
//
// The engine tries the pattern at each candidate offset of the subject
// (only offset 0 when the expression is start-anchored). One attempt walks
// the top-level node sequence in order with a cursor into the subject; each
// node either consumes a fixed number of bytes or fails the attempt.
//
// Quantifiers are greedy and never backtrack across node boundaries: once
// Repeat1 stops consuming it does not give bytes back to let a later node
// succeed. Group alternatives are tried left then right. Captures are
// recorded in group-closure order into a buffer that is created fresh for
// every offset attempt, so a failed attempt never leaks captures into the
// next one.
package backtrack

import (
	"bytes"
	"strings"

	"github.com/coregx/relite/syntax"
)

// Matcher matches subjects against one compiled expression.
//
// A Matcher holds no per-search state and is safe for concurrent use.
type Matcher struct {
	expr *syntax.Expression
}

// New creates a Matcher for the given expression.
func New(expr *syntax.Expression) *Matcher {
	return &Matcher{expr: expr}
}

// IsMatch reports whether the subject contains a match of the expression.
//
// Without a start anchor every offset from 0 through len(subject) is tried
// in increasing order; the first successful attempt wins.
func (m *Matcher) IsMatch(subject []byte) bool {
	if m.expr.AnchoredStart {
		return m.MatchAt(subject, 0)
	}
	for offset := 0; offset <= len(subject); offset++ {
		if m.MatchAt(subject, offset) {
			return true
		}
	}
	return false
}

// MatchAt attempts a single match with the expression aligned at start.
// An end-anchored expression must additionally consume the subject through
// its last byte.
func (m *Matcher) MatchAt(subject []byte, start int) bool {
	if start < 0 || start > len(subject) {
		return false
	}
	var captures [][]byte
	consumed, ok := matchSeq(m.expr.Nodes, subject[start:], &captures)
	if !ok {
		return false
	}
	if m.expr.AnchoredEnd {
		return start+consumed == len(subject)
	}
	return true
}

// matchSeq walks a node sequence against the tail, accumulating consumed
// length. It fails as soon as any node fails.
func matchSeq(nodes []syntax.Node, tail []byte, captures *[][]byte) (int, bool) {
	consumed := 0
	for _, n := range nodes {
		width, ok := matchNode(n, tail[consumed:], captures)
		if !ok {
			return 0, false
		}
		consumed += width
	}
	return consumed, true
}

// matchNode matches a single node against the tail, returning the number of
// bytes consumed. This is the engine's only dispatch point; every composite
// node recurses through it.
func matchNode(n syntax.Node, tail []byte, captures *[][]byte) (int, bool) {
	switch n := n.(type) {
	case syntax.Literal:
		if len(tail) > 0 && tail[0] == n.Ch {
			return 1, true
		}

	case syntax.Digit:
		if len(tail) > 0 && tail[0] >= '0' && tail[0] <= '9' {
			return 1, true
		}

	case syntax.Word:
		if len(tail) > 0 && isWordByte(tail[0]) {
			return 1, true
		}

	case syntax.Wildcard:
		if len(tail) > 0 {
			return 1, true
		}

	case syntax.Class:
		if len(tail) > 0 && (strings.IndexByte(n.Set, tail[0]) >= 0) != n.Negated {
			return 1, true
		}

	case syntax.Repeat1:
		total, matched := 0, false
		for {
			width, ok := matchNode(n.Inner, tail[total:], captures)
			if !ok {
				break
			}
			matched = true
			total += width
			if width == 0 {
				// A zero-width repetition cannot make progress.
				break
			}
		}
		if matched {
			return total, true
		}

	case syntax.Optional:
		if width, ok := matchNode(n.Inner, tail, captures); ok {
			return width, true
		}
		return 0, true

	case syntax.Group:
		if width, ok := matchBranch(n.Left, tail, captures); ok {
			return width, true
		}
		if width, ok := matchBranch(n.Right, tail, captures); ok {
			return width, true
		}

	case syntax.Backref:
		if span, ok := capture(captures, n.Index); ok && bytes.HasPrefix(tail, span) {
			return len(span), true
		}
	}
	return 0, false
}

// matchBranch matches one alternative of a group. An empty alternative
// never matches. On success the consumed span is appended to the capture
// buffer; inner groups have already appended theirs, so closure order is
// innermost first.
func matchBranch(nodes []syntax.Node, tail []byte, captures *[][]byte) (int, bool) {
	if len(nodes) == 0 {
		return 0, false
	}
	consumed, ok := matchSeq(nodes, tail, captures)
	if !ok {
		return 0, false
	}
	*captures = append(*captures, tail[:consumed])
	return consumed, true
}

// capture returns the span recorded for 1-based group index n. The compiler
// validates indices against closed groups, but a group under ? or | may
// legitimately not have run; the caller treats that as a failed match.
func capture(captures *[][]byte, n int) ([]byte, bool) {
	if n < 1 || n > len(*captures) {
		return nil, false
	}
	return (*captures)[n-1], true
}

func isWordByte(c byte) bool {
	return c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' || c >= '0' && c <= '9' || c == '_'
}
