// Package render turns apply results into unified-diff text for preview
// display and for the copy-diff action.
package render

import (
	"strings"

	"github.com/fatih/color"
	"github.com/pmezard/go-difflib/difflib"
)

// Unified generates unified-diff text between the old and new buffer, with
// three lines of context around each hunk. The output is conventional
// ---/+++/@@ format so it interoperates with anything that consumes diffs.
func Unified(oldBuffer, newBuffer []string, path string) (string, error) {
	diff := difflib.UnifiedDiff{
		A:        withNewlines(oldBuffer),
		B:        withNewlines(newBuffer),
		FromFile: path,
		ToFile:   path,
		Context:  3,
	}
	return difflib.GetUnifiedDiffString(diff)
}

// withNewlines converts a line buffer to difflib's newline-terminated form.
func withNewlines(lines []string) []string {
	out := make([]string, len(lines))
	for i, line := range lines {
		out[i] = line + "\n"
	}
	return out
}

var (
	addColor    = color.New(color.FgGreen)
	delColor    = color.New(color.FgRed)
	hunkColor   = color.New(color.FgCyan)
	headerColor = color.New(color.FgYellow, color.Bold)
)

// Colorize applies ANSI colors to unified-diff text line by line. With
// colors globally disabled (color.NoColor) the text passes through
// unchanged.
func Colorize(diff string) string {
	lines := strings.Split(diff, "\n")
	for i, line := range lines {
		switch {
		case strings.HasPrefix(line, "+++"), strings.HasPrefix(line, "---"):
			lines[i] = headerColor.Sprint(line)
		case strings.HasPrefix(line, "@@"):
			lines[i] = hunkColor.Sprint(line)
		case strings.HasPrefix(line, "+"):
			lines[i] = addColor.Sprint(line)
		case strings.HasPrefix(line, "-"):
			lines[i] = delColor.Sprint(line)
		}
	}
	return strings.Join(lines, "\n")
}
