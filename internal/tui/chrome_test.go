package tui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
)

func TestJoinHeaderFitsWidth(t *testing.T) {
	t.Parallel()
	cases := []struct {
		left, center, right string
		width               int
	}{
		{"Aksel Dadayev", "[terminal] about skills", "backend engineer", 80},
		{"left", "center", "right", 20},
		{"a very long left side that dwarfs the width", "c", "r", 10},
		{"left", "", "", 0},
	}
	for _, tc := range cases {
		got := joinHeader(tc.left, tc.center, tc.right, tc.width)
		if tc.width > 0 && lipgloss.Width(got) > tc.width {
			t.Fatalf("joinHeader(%q,%q,%q,%d) overflows: %q", tc.left, tc.center, tc.right, tc.width, got)
		}
	}
}

func TestTruncate(t *testing.T) {
	t.Parallel()
	cases := []struct {
		in    string
		width int
		want  string
	}{
		{"short", 10, "short"},
		{"exactly10!", 10, "exactly10!"},
		{"this is too long", 10, "this is t…"},
		{"x", 0, "x"},
	}
	for _, tc := range cases {
		if got := truncate(tc.in, tc.width); got != tc.want {
			t.Fatalf("truncate(%q,%d)=%q want %q", tc.in, tc.width, got, tc.want)
		}
	}
}

func TestIsErrorOutput(t *testing.T) {
	t.Parallel()
	errs := []string{
		"command not found: wat",
		"no such file or directory: attic",
		"could not connect to host: example.com",
	}
	for _, out := range errs {
		if !isErrorOutput(out) {
			t.Fatalf("isErrorOutput(%q)=false", out)
		}
	}
	for _, out := range []string{"", "hello", "commands: help"} {
		if isErrorOutput(out) {
			t.Fatalf("isErrorOutput(%q)=true", out)
		}
	}
}

func TestPromptPrefixTracksSection(t *testing.T) {
	t.Parallel()
	m := testModel(t)

	if got := m.promptPrefix(); !strings.Contains(got, "~") {
		t.Fatalf("terminal prompt missing ~: %q", got)
	}
	m.enterSection("about")
	if got := m.promptPrefix(); !strings.Contains(got, "~/about") {
		t.Fatalf("about prompt missing path: %q", got)
	}
}
