package prompt_test

// Notes:
// - We check the contract (transcript embedded, four requested sections,
//   language line), not the exact wording of the template.

import (
	"strings"
	"testing"

	"github.com/alnah/notegpt/internal/lang"
	"github.com/alnah/notegpt/internal/prompt"
)

func TestSummary_EmbedsTranscript(t *testing.T) {
	t.Parallel()

	p := prompt.Summary("Hello world", lang.Language{})

	if !strings.Contains(p, "\n\nHello world\n\n") {
		t.Errorf("Summary() does not embed the transcript on its own paragraph:\n%s", p)
	}
	for _, section := range []string{
		"1. Main topic/theme",
		"2. Key points",
		"3. Important details",
		"4. Conclusion/takeaways",
	} {
		if !strings.Contains(p, section) {
			t.Errorf("Summary() missing section %q", section)
		}
	}
}

func TestSummary_EmptyTranscript(t *testing.T) {
	t.Parallel()

	if p := prompt.Summary("", lang.Language{}); !strings.HasPrefix(p, "Please provide") {
		t.Errorf("Summary(\"\") = %q, want the bare template", p)
	}
}

func TestSummary_OutputLanguage(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		code       string
		wantPrefix string
	}{
		{"unspecified", "", "Please provide"},
		{"english", "en", "Please provide"},
		{"british english", "en-GB", "Please provide"},
		{"french", "fr", "Respond in French.\n\nPlease provide"},
		{"brazilian portuguese", "pt-BR", "Respond in Brazilian Portuguese.\n\nPlease provide"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			l, err := lang.Parse(tt.code)
			if err != nil {
				t.Fatalf("lang.Parse(%q): %v", tt.code, err)
			}
			if p := prompt.Summary("text", l); !strings.HasPrefix(p, tt.wantPrefix) {
				t.Errorf("Summary() = %q, want prefix %q", p, tt.wantPrefix)
			}
		})
	}
}

func TestExcerpt(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   string
		n    int
		want string
	}{
		{"short", "hello", 10, "hello"},
		{"collapses whitespace", "a\n\n  b", 10, "a b"},
		{"truncates", "abcdefghij", 4, "abcd..."},
		{"runes not bytes", "héllo wörld", 5, "héllo..."},
		{"non-positive keeps all", "abc", 0, "abc"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := prompt.Excerpt(tt.in, tt.n); got != tt.want {
				t.Errorf("Excerpt(%q, %d) = %q, want %q", tt.in, tt.n, got, tt.want)
			}
		})
	}
}
