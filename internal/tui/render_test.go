package tui

import (
	"strings"
	"testing"
)

func TestRenderMarkdown_Basic(t *testing.T) {
	input := "# Worksheet\n\n1. 25 + 37\n2. 12 × 4"
	result := RenderMarkdown(input, 80)
	if result == "" {
		t.Fatal("RenderMarkdown returned empty")
	}
	if !strings.Contains(result, "Worksheet") {
		t.Fatalf("result should contain 'Worksheet': %q", result)
	}
}

func TestRenderMarkdown_Empty(t *testing.T) {
	if RenderMarkdown("", 80) != "" {
		t.Fatal("empty input should return empty")
	}
	if RenderMarkdown("  ", 80) != "" {
		t.Fatal("whitespace input should return empty")
	}
}

func TestRenderMarkdown_Bold(t *testing.T) {
	input := "**x = 5 (example solution)**"
	result := RenderMarkdown(input, 80)
	if !strings.Contains(result, "x = 5") {
		t.Fatalf("bold text should survive rendering: %q", result)
	}
}

func TestCategoryStyle(t *testing.T) {
	theme := DarkTheme()
	for _, c := range []string{"class", "meeting", "personal", "unknown"} {
		if got := categoryStyle(theme, c); !strings.Contains(got, c) {
			t.Errorf("categoryStyle(%q)=%q should contain the name", c, got)
		}
	}
}
