// Package relite provides a small backtracking regex engine.
//
// relite compiles a pattern once into an immutable matcher tree and then
// tests whether subject lines contain a match. The feature set is an ASCII
// subset of the usual notation: anchors, \d and \w, bracket classes with
// ranges, wildcard, greedy + and ?, single-alternation capturing groups and
// backreferences.
//
// Basic usage:
//
//	re, err := relite.Compile(`(cat|dog)`)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	re.MatchString("I have a dog") // true
//
// Matching semantics are deliberately simple: quantifiers are greedy and
// never give back bytes once they stop consuming, and group alternatives
// are tried strictly left then right. Patterns with a literal prefix are
// accelerated with a prefilter that skips offsets where no match can start.
//
// Limitations:
//   - No lazy quantifiers, bounded repetition, lookaround or flags
//   - No match-position reporting, only yes/no
//   - Byte (ASCII) semantics, no Unicode classes
package relite

import (
	"github.com/coregx/relite/backtrack"
	"github.com/coregx/relite/literal"
	"github.com/coregx/relite/prefilter"
	"github.com/coregx/relite/syntax"
)

// Regex is a compiled pattern.
//
// A Regex is immutable and safe for concurrent use.
type Regex struct {
	expr    *syntax.Expression
	matcher *backtrack.Matcher
	pre     prefilter.Prefilter
	pattern string
}

// Config controls compilation.
//
// Example:
//
//	config := relite.DefaultConfig()
//	config.EnablePrefilter = false // always use the plain offset scan
//	re, err := relite.CompileWithConfig(`abc`, config)
type Config struct {
	// EnablePrefilter enables literal-prefix candidate filtering for
	// unanchored patterns. Disabling it never changes match results, only
	// how candidate offsets are found. Default: true.
	EnablePrefilter bool

	// MaxLiterals limits the number of alternative prefixes extracted for
	// the prefilter. Default: 8.
	MaxLiterals int

	// MaxLiteralLen limits the length of each extracted prefix.
	// Default: 64.
	MaxLiteralLen int
}

// DefaultConfig returns the default compilation configuration.
func DefaultConfig() Config {
	lit := literal.DefaultConfig()
	return Config{
		EnablePrefilter: true,
		MaxLiterals:     lit.MaxLiterals,
		MaxLiteralLen:   lit.MaxLiteralLen,
	}
}

// Compile compiles a pattern with the default configuration.
//
// Compilation errors are *syntax.ParseError values wrapping the sentinel
// errors of the syntax package; a failed compile is distinct from a
// non-matching subject.
func Compile(pattern string) (*Regex, error) {
	return CompileWithConfig(pattern, DefaultConfig())
}

// CompileWithConfig compiles a pattern with a custom configuration.
func CompileWithConfig(pattern string, config Config) (*Regex, error) {
	expr, err := syntax.Parse(pattern)
	if err != nil {
		return nil, err
	}
	r := &Regex{
		expr:    expr,
		matcher: backtrack.New(expr),
		pattern: pattern,
	}
	// A start anchor pins the only candidate offset to 0, so a prefilter
	// has nothing to skip.
	if config.EnablePrefilter && !expr.AnchoredStart {
		extractor := literal.New(literal.ExtractorConfig{
			MaxLiterals:   config.MaxLiterals,
			MaxLiteralLen: config.MaxLiteralLen,
		})
		r.pre = prefilter.FromSeq(extractor.ExtractPrefixes(expr))
	}
	return r, nil
}

// MustCompile compiles a pattern and panics if it fails.
//
// Useful for patterns known to be valid at compile time:
//
//	var wordRun = relite.MustCompile(`\w+`)
func MustCompile(pattern string) *Regex {
	re, err := Compile(pattern)
	if err != nil {
		panic("relite: Compile(`" + pattern + "`): " + err.Error())
	}
	return re
}

// Match reports whether the subject contains a match of the pattern.
func (r *Regex) Match(subject []byte) bool {
	if r.expr.AnchoredStart {
		return r.matcher.MatchAt(subject, 0)
	}
	if r.pre != nil {
		return r.matchPrefiltered(subject)
	}
	return r.matcher.IsMatch(subject)
}

// MatchString reports whether the subject string contains a match.
func (r *Regex) MatchString(subject string) bool {
	return r.Match([]byte(subject))
}

// matchPrefiltered tries only offsets where a required literal occurs.
func (r *Regex) matchPrefiltered(subject []byte) bool {
	for pos := 0; pos <= len(subject); {
		candidate := r.pre.Find(subject, pos)
		if candidate < 0 {
			return false
		}
		if r.pre.IsComplete() || r.matcher.MatchAt(subject, candidate) {
			return true
		}
		pos = candidate + 1
	}
	return false
}

// String returns the source pattern.
func (r *Regex) String() string {
	return r.pattern
}
