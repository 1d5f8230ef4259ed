package literal

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/coregx/relite/syntax"
)

func extract(t *testing.T, pattern string, config ExtractorConfig) *Seq {
	t.Helper()
	expr, err := syntax.Parse(pattern)
	if err != nil {
		t.Fatalf("Parse(%q): %v", pattern, err)
	}
	return New(config).ExtractPrefixes(expr)
}

func TestExtractPrefixes(t *testing.T) {
	tests := []struct {
		name         string
		pattern      string
		want         []string
		wantComplete bool
	}{
		{"pure literal", "hello", []string{"hello"}, true},
		{"literal prefix before class", `err: \d+`, []string{"err: "}, false},
		{"literal prefix before optional", "colou?r", []string{"colo"}, false},
		{"end anchor forces verification", "hello$", []string{"hello"}, false},
		{"literal alternation", "(cat|dog)", []string{"cat", "dog"}, true},
		{"alternation with suffix", "(cat|dog)s", []string{"cat", "dog"}, false},
		{"partially literal branch", "(ca+t|dog)", []string{"ca", "dog"}, false},
		{"group without alternation", "(abc)", []string{"abc"}, true},
		{"no leading literal", `\d+`, nil, false},
		{"leading optional", "a?bc", nil, false},
		{"leading class", "[ab]c", nil, false},
		{"branch without literal head", `(\da|dog)`, nil, false},
		{"empty branch", "(|dog)", nil, false},
		{"empty pattern", "", nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			seq := extract(t, tt.pattern, DefaultConfig())

			var got []string
			for i := 0; i < seq.Len(); i++ {
				got = append(got, string(seq.Get(i)))
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("ExtractPrefixes(%q) literals mismatch (-want +got):\n%s", tt.pattern, diff)
			}
			if seq.IsComplete() != tt.wantComplete {
				t.Errorf("ExtractPrefixes(%q).IsComplete() = %v, want %v",
					tt.pattern, seq.IsComplete(), tt.wantComplete)
			}
		})
	}
}

func TestExtractPrefixesTruncates(t *testing.T) {
	config := ExtractorConfig{MaxLiterals: 8, MaxLiteralLen: 3}
	seq := extract(t, "abcdef", config)

	if seq.Len() != 1 || string(seq.Get(0)) != "abc" {
		t.Fatalf("expected single literal \"abc\", got %d literals", seq.Len())
	}
	if seq.IsComplete() {
		t.Error("truncated prefix must not be complete")
	}
}
