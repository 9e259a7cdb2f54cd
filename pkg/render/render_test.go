package render

import (
	"strings"
	"testing"
)

func TestHTML(t *testing.T) {
	out, err := HTML("# My Life Principles\n\n1. Be honest.")
	if err != nil {
		t.Fatalf("HTML: %v", err)
	}
	if !strings.Contains(out, "<h1>My Life Principles</h1>") {
		t.Errorf("missing heading: %q", out)
	}
	if !strings.Contains(out, "<li>Be honest.</li>") {
		t.Errorf("missing list item: %q", out)
	}
}

func TestExcerpt(t *testing.T) {
	tests := []struct {
		name string
		in   string
		max  int
		want string
	}{
		{"empty", "   ", 10, ""},
		{"strips markup", "# Title\n\nSome **bold** text.", 100, "Title Some bold text."},
		{"list", "- one\n- two", 100, "one two"},
		{"nested list", "- one\n  - inner\n- two", 100, "one inner two"},
		{"truncates", "abcdefghij", 4, "abcd…"},
		{"runes", "ชีวิตดี", 3, "ชีว…"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Excerpt(tt.in, tt.max); got != tt.want {
				t.Errorf("Excerpt(%q, %d) = %q, want %q", tt.in, tt.max, got, tt.want)
			}
		})
	}
}
