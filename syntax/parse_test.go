package syntax

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestParseStructure(t *testing.T) {
	tests := []struct {
		name    string
		pattern string
		want    *Expression
	}{
		{
			"empty pattern",
			"",
			&Expression{},
		},
		{
			"literal run",
			"ab",
			&Expression{Nodes: []Node{Literal{'a'}, Literal{'b'}}},
		},
		{
			"classes and wildcard",
			`\d\w.`,
			&Expression{Nodes: []Node{Digit{}, Word{}, Wildcard{}}},
		},
		{
			"anchors become flags",
			"^ab$",
			&Expression{
				Nodes:         []Node{Literal{'a'}, Literal{'b'}},
				AnchoredStart: true,
				AnchoredEnd:   true,
			},
		},
		{
			"bracket class",
			"[abc]",
			&Expression{Nodes: []Node{Class{Set: "abc"}}},
		},
		{
			"negated bracket class",
			"[^xy]",
			&Expression{Nodes: []Node{Class{Set: "xy", Negated: true}}},
		},
		{
			"range expansion",
			"[a-d]",
			&Expression{Nodes: []Node{Class{Set: "abcd"}}},
		},
		{
			"leading dash is literal",
			"[-a]",
			&Expression{Nodes: []Node{Class{Set: "-a"}}},
		},
		{
			"quantifiers wrap the previous node",
			"a+b?",
			&Expression{Nodes: []Node{
				Repeat1{Inner: Literal{'a'}},
				Optional{Inner: Literal{'b'}},
			}},
		},
		{
			"quantified class",
			"[0-9]+",
			&Expression{Nodes: []Node{
				Repeat1{Inner: Class{Set: "0123456789"}},
			}},
		},
		{
			"group without alternation",
			"(ab)",
			&Expression{Nodes: []Node{
				Group{Left: []Node{Literal{'a'}, Literal{'b'}}},
			}},
		},
		{
			"group with alternation",
			"(a|b)",
			&Expression{Nodes: []Node{
				Group{Left: []Node{Literal{'a'}}, Right: []Node{Literal{'b'}}},
			}},
		},
		{
			"empty right alternative",
			"(a|)",
			&Expression{Nodes: []Node{
				Group{Left: []Node{Literal{'a'}}},
			}},
		},
		{
			"nested groups splice innermost first",
			"a(b(c|d))e",
			&Expression{Nodes: []Node{
				Literal{'a'},
				Group{Left: []Node{
					Literal{'b'},
					Group{Left: []Node{Literal{'c'}}, Right: []Node{Literal{'d'}}},
				}},
				Literal{'e'},
			}},
		},
		{
			"quantified group",
			"(ab)+",
			&Expression{Nodes: []Node{
				Repeat1{Inner: Group{Left: []Node{Literal{'a'}, Literal{'b'}}}},
			}},
		},
		{
			"backreference",
			`(a)\1`,
			&Expression{Nodes: []Node{
				Group{Left: []Node{Literal{'a'}}},
				Backref{Index: 1},
			}},
		},
		{
			"multi digit backreference",
			`(a)(b)(c)(d)(e)(f)(g)(h)(i)(j)\10`,
			&Expression{Nodes: []Node{
				Group{Left: []Node{Literal{'a'}}},
				Group{Left: []Node{Literal{'b'}}},
				Group{Left: []Node{Literal{'c'}}},
				Group{Left: []Node{Literal{'d'}}},
				Group{Left: []Node{Literal{'e'}}},
				Group{Left: []Node{Literal{'f'}}},
				Group{Left: []Node{Literal{'g'}}},
				Group{Left: []Node{Literal{'h'}}},
				Group{Left: []Node{Literal{'i'}}},
				Group{Left: []Node{Literal{'j'}}},
				Backref{Index: 10},
			}},
		},
		{
			"nested closures count for backreferences",
			`(a(b))\2`,
			&Expression{Nodes: []Node{
				Group{Left: []Node{
					Literal{'a'},
					Group{Left: []Node{Literal{'b'}}},
				}},
				Backref{Index: 2},
			}},
		},
		{
			"lone backslash is a literal",
			`a\b`,
			&Expression{Nodes: []Node{Literal{'a'}, Literal{'\\'}, Literal{'b'}}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.pattern)
			if err != nil {
				t.Fatalf("Parse(%q) returned error: %v", tt.pattern, err)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Parse(%q) mismatch (-want +got):\n%s", tt.pattern, diff)
			}
		})
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		pattern string
		want    error
	}{
		{"(abc", ErrUnclosedGroup},
		{"((a)", ErrUnclosedGroup},
		{")", ErrStrayGroupClose},
		{"abc)", ErrStrayGroupClose},
		{"(a|b|c)", ErrDoubleAlternation},
		{"+", ErrDanglingQuantifier},
		{"?a", ErrDanglingQuantifier},
		{`\1`, ErrInvalidBackreference},
		{`(a)\2`, ErrInvalidBackreference},
		// Repetition of a group multiplies captures at match time only;
		// the compile-time count is one per ) token.
		{`(\d)+x\2`, ErrInvalidBackreference},
		{`(a)\0`, ErrInvalidBackreference},
		{`\1(a)`, ErrInvalidBackreference}, // forward reference
		{`(a\1)`, ErrInvalidBackreference}, // self reference inside the group
		{"[abc", ErrMalformedPattern},
		{"[z-a]", ErrMalformedPattern},
		{"a|b", ErrMalformedPattern}, // alternation outside a group
	}

	for _, tt := range tests {
		t.Run(tt.pattern, func(t *testing.T) {
			_, err := Parse(tt.pattern)
			if err == nil {
				t.Fatalf("Parse(%q): expected error, got nil", tt.pattern)
			}
			if !errors.Is(err, tt.want) {
				t.Errorf("Parse(%q): got %v, want %v", tt.pattern, err, tt.want)
			}
			var perr *ParseError
			if !errors.As(err, &perr) {
				t.Fatalf("Parse(%q): error %v is not a *ParseError", tt.pattern, err)
			}
			if perr.Pattern != tt.pattern {
				t.Errorf("Parse(%q): ParseError.Pattern = %q", tt.pattern, perr.Pattern)
			}
		})
	}
}

func TestParseErrorPosition(t *testing.T) {
	_, err := Parse("ab)")
	var perr *ParseError
	if !errors.As(err, &perr) {
		t.Fatalf("expected *ParseError, got %v", err)
	}
	if perr.Pos != 2 {
		t.Errorf("ParseError.Pos = %d, want 2", perr.Pos)
	}
}

// Compiling the same pattern twice must yield identical trees.
func TestParseDeterministic(t *testing.T) {
	patterns := []string{
		"",
		"abc",
		`^(\w+)@([a-z]+)\.\1$`,
		"(a|b)+c?[^0-9]",
	}

	for _, pattern := range patterns {
		t.Run(pattern, func(t *testing.T) {
			first, err := Parse(pattern)
			if err != nil {
				t.Fatalf("Parse(%q): %v", pattern, err)
			}
			second, err := Parse(pattern)
			if err != nil {
				t.Fatalf("Parse(%q): %v", pattern, err)
			}
			if diff := cmp.Diff(first, second); diff != "" {
				t.Errorf("Parse(%q) is not deterministic (-first +second):\n%s", pattern, diff)
			}
		})
	}
}
