// Package prefilter provides fast candidate filtering for matching, using
// literal prefixes extracted from a compiled expression.
//
// A prefilter scans the subject for positions where a required literal
// occurs; only those positions need a full match attempt. The filter is
// chosen by literal shape:
//   - single 1-byte literal → byte scan
//   - single substring → substring scan
//   - multiple literals (group alternation) → Aho-Corasick automaton
//
// When the extracted literals cover the whole expression the prefilter is
// complete: a candidate position is already a match and needs no
// verification.
package prefilter

import (
	"bytes"

	"github.com/coregx/ahocorasick"

	"github.com/coregx/relite/literal"
)

// Prefilter finds candidate match positions in a subject.
type Prefilter interface {
	// Find returns the first candidate position at or after start, or -1
	// if there is none. A candidate is a position where one of the
	// prefilter's literals occurs; unless IsComplete reports true the
	// caller must verify it with the full matcher.
	Find(haystack []byte, start int) int

	// IsComplete reports whether a candidate is guaranteed to be a full
	// match, making verification unnecessary.
	IsComplete() bool
}

// FromSeq builds the cheapest applicable prefilter for the literal
// sequence. It returns nil when the sequence is empty or no filter could
// be constructed; the caller then falls back to the plain offset scan.
func FromSeq(seq *literal.Seq) Prefilter {
	if seq == nil || seq.IsEmpty() {
		return nil
	}
	if seq.Len() == 1 {
		lit := seq.Get(0)
		if len(lit) == 1 {
			return &bytePrefilter{needle: lit[0], complete: seq.IsComplete()}
		}
		return &substringPrefilter{needle: lit, complete: seq.IsComplete()}
	}

	builder := ahocorasick.NewBuilder()
	for i := 0; i < seq.Len(); i++ {
		builder.AddPattern(seq.Get(i))
	}
	auto, err := builder.Build()
	if err != nil {
		return nil
	}
	return &ahoCorasickPrefilter{auto: auto, complete: seq.IsComplete()}
}

// bytePrefilter scans for a single required byte.
type bytePrefilter struct {
	needle   byte
	complete bool
}

func (p *bytePrefilter) Find(haystack []byte, start int) int {
	if start >= len(haystack) {
		return -1
	}
	i := bytes.IndexByte(haystack[start:], p.needle)
	if i < 0 {
		return -1
	}
	return start + i
}

func (p *bytePrefilter) IsComplete() bool {
	return p.complete
}

// substringPrefilter scans for a single required substring.
type substringPrefilter struct {
	needle   []byte
	complete bool
}

func (p *substringPrefilter) Find(haystack []byte, start int) int {
	if start > len(haystack) {
		return -1
	}
	i := bytes.Index(haystack[start:], p.needle)
	if i < 0 {
		return -1
	}
	return start + i
}

func (p *substringPrefilter) IsComplete() bool {
	return p.complete
}

// ahoCorasickPrefilter scans for any of several required literals with one
// automaton pass per call.
type ahoCorasickPrefilter struct {
	auto     *ahocorasick.Automaton
	complete bool
}

func (p *ahoCorasickPrefilter) Find(haystack []byte, start int) int {
	if start >= len(haystack) {
		return -1
	}
	m := p.auto.Find(haystack, start)
	if m == nil {
		return -1
	}
	return m.Start
}

func (p *ahoCorasickPrefilter) IsComplete() bool {
	return p.complete
}
