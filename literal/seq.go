// Package literal extracts required literal prefixes from compiled
// expressions for prefilter construction.
package literal

// Seq is an ordered set of literals of which at least one must appear at
// the start of any match of the expression it was extracted from.
//
// An empty Seq means no such guarantee could be established and no
// prefilter should be built.
type Seq struct {
	literals [][]byte
	complete bool
}

// EmptySeq returns a Seq with no literals.
func EmptySeq() *Seq {
	return &Seq{}
}

// NewSeq returns a Seq over the given literals. The slices are retained,
// not copied.
func NewSeq(literals [][]byte) *Seq {
	return &Seq{literals: literals}
}

// Len returns the number of literals.
func (s *Seq) Len() int {
	return len(s.literals)
}

// Get returns the i-th literal.
func (s *Seq) Get(i int) []byte {
	return s.literals[i]
}

// IsEmpty reports whether the Seq holds no literals.
func (s *Seq) IsEmpty() bool {
	return len(s.literals) == 0
}

// IsComplete reports whether finding any literal of the Seq is already a
// full match of the expression, so no verification is needed.
func (s *Seq) IsComplete() bool {
	return s.complete
}
