package literal

import (
	"github.com/coregx/relite/syntax"
)

// ExtractorConfig configures extraction limits.
//
// The limits keep prefilter literals cheap:
//   - MaxLiterals caps how many alternative prefixes are reported
//   - MaxLiteralLen caps the length of each extracted prefix
type ExtractorConfig struct {
	// MaxLiterals limits the number of literals in an extracted Seq.
	// Default: 8.
	MaxLiterals int

	// MaxLiteralLen limits the length of each extracted literal. A longer
	// required prefix is truncated, which keeps the Seq valid but marks it
	// incomplete. Default: 64.
	MaxLiteralLen int
}

// DefaultConfig returns the default extraction limits.
func DefaultConfig() ExtractorConfig {
	return ExtractorConfig{
		MaxLiterals:   8,
		MaxLiteralLen: 64,
	}
}

// Extractor computes required literal prefixes of compiled expressions.
type Extractor struct {
	config ExtractorConfig
}

// New creates an Extractor with the given limits.
func New(config ExtractorConfig) *Extractor {
	return &Extractor{config: config}
}

// ExtractPrefixes returns literals of which one must appear at the start of
// any match of expr.
//
// Two shapes produce literals: a run of Literal nodes at the head of the
// expression yields a single prefix, and a leading Group whose branches
// each begin with a literal run yields one prefix per branch. Anything else
// yields an empty Seq.
//
// The Seq is complete when its literals cover the whole unanchored
// expression, so finding one is already a match.
func (e *Extractor) ExtractPrefixes(expr *syntax.Expression) *Seq {
	if len(expr.Nodes) == 0 {
		return EmptySeq()
	}
	anchored := expr.AnchoredStart || expr.AnchoredEnd

	switch first := expr.Nodes[0].(type) {
	case syntax.Literal:
		run, covered := e.literalRun(expr.Nodes)
		seq := NewSeq([][]byte{run})
		seq.complete = !anchored && covered == len(expr.Nodes)
		return seq

	case syntax.Group:
		branches := [][]syntax.Node{first.Left}
		if len(first.Right) > 0 {
			branches = append(branches, first.Right)
		}
		if len(branches) > e.config.MaxLiterals {
			return EmptySeq()
		}
		literals := make([][]byte, 0, len(branches))
		wholeBranches := true
		for _, branch := range branches {
			run, covered := e.literalRun(branch)
			if len(run) == 0 {
				// The branch has no guaranteed first byte.
				return EmptySeq()
			}
			literals = append(literals, run)
			wholeBranches = wholeBranches && covered == len(branch)
		}
		seq := NewSeq(literals)
		seq.complete = !anchored && wholeBranches && len(expr.Nodes) == 1
		return seq
	}
	return EmptySeq()
}

// literalRun collects the leading run of Literal nodes, bounded by
// MaxLiteralLen. It returns the run and how many nodes it covers.
func (e *Extractor) literalRun(nodes []syntax.Node) ([]byte, int) {
	var run []byte
	covered := 0
	for _, n := range nodes {
		lit, ok := n.(syntax.Literal)
		if !ok || len(run) >= e.config.MaxLiteralLen {
			break
		}
		run = append(run, lit.Ch)
		covered++
	}
	return run, covered
}
