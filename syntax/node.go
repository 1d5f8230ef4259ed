// Package syntax compiles pattern strings into matcher trees.
//
// A pattern is scanned left to right and compiled into a flat sequence of
// Node values plus two anchor flags. Groups and alternation are handled with
// a stack of open-group frames: closing a group splices the nodes compiled
// since the matching open back out of the sequence and replaces them with a
// single Group node. The resulting Expression is immutable and can be
// matched concurrently.
//
// Syntax is a small ASCII subset of the usual notation:
//
//	^ $        anchors (recorded as Expression flags, not nodes)
//	\d \w      digit and word classes
//	.          any single byte
//	[abc]      bracket class, [^abc] negated, a-z ranges supported
//	x+ x?      one-or-more and zero-or-one of the preceding node
//	(ab|cd)    capturing group with at most one alternation bar
//	\1 .. \n   backreference to an already-closed group
package syntax

// Node is one element of a compiled pattern. The set of implementations is
// closed: Literal, Digit, Word, Wildcard, Class, Repeat1, Optional, Group
// and Backref.
//
// Matching a node against a subject tail either consumes a fixed number of
// bytes or fails; that dispatch lives in the backtrack package.
type Node interface {
	node()
}

// Literal matches exactly one byte equal to Ch.
type Literal struct {
	Ch byte
}

// Digit matches one byte in 0-9.
type Digit struct{}

// Word matches one byte in A-Za-z0-9_.
type Word struct{}

// Wildcard matches any single byte.
type Wildcard struct{}

// Class matches one byte whose membership in Set equals !Negated.
// Ranges in the pattern are expanded into Set at compile time, so Set holds
// every member byte explicitly.
type Class struct {
	Set     string
	Negated bool
}

// Repeat1 matches Inner one or more times, greedily. Once it stops
// consuming it never gives bytes back to later nodes.
type Repeat1 struct {
	Inner Node
}

// Optional matches Inner zero or one time. It never fails.
type Optional struct {
	Inner Node
}

// Group is an alternation of two sub-sequences. Right is empty when the
// group had no alternation bar; an empty branch never matches. On a
// successful match the consumed span is recorded as a capture.
type Group struct {
	Left  []Node
	Right []Node
}

// Backref matches the exact text captured by group number Index (1-based,
// in group-closure order). Index is validated at compile time against the
// number of groups already closed.
type Backref struct {
	Index int
}

func (Literal) node()  {}
func (Digit) node()    {}
func (Word) node()     {}
func (Wildcard) node() {}
func (Class) node()    {}
func (Repeat1) node()  {}
func (Optional) node() {}
func (Group) node()    {}
func (Backref) node()  {}

// Expression is a compiled pattern: the top-level node sequence plus the
// anchor flags. It is immutable after Parse and safe for concurrent use.
type Expression struct {
	// Nodes is the top-level matcher sequence in pattern order.
	Nodes []Node

	// AnchoredStart restricts matching to start at offset 0.
	AnchoredStart bool

	// AnchoredEnd requires a match to consume the subject to its end.
	AnchoredEnd bool
}
