package ui

import (
	"fmt"
	"strings"

	"github.com/fatih/color"

	"github.com/patchpick/patchpick/internal/patch"
)

var (
	kindColor = map[patch.Kind]*color.Color{
		patch.Replacement: color.New(color.FgYellow),
		patch.Addition:    color.New(color.FgGreen),
		patch.Deletion:    color.New(color.FgRed),
	}
	dimColor = color.New(color.Faint)
)

// ChunkSummary renders a one-line description of a chunk for lists and
// prompts, using 1-based chunk numbering as shown to the operator.
func ChunkSummary(c patch.Chunk) string {
	label := kindColor[c.Kind].Sprintf("%-11s", c.Kind.String())
	var detail string
	switch c.Kind {
	case patch.Replacement:
		detail = fmt.Sprintf("-%d +%d", len(c.Removed), len(c.Added))
	case patch.Addition:
		detail = fmt.Sprintf("+%d", len(c.Added))
	case patch.Deletion:
		detail = fmt.Sprintf("-%d", len(c.Removed))
	}
	anchor := dimColor.Sprint(firstLine(c))
	return fmt.Sprintf("Chunk #%d  %s %-8s %s", c.Order+1, label, detail, anchor)
}

// firstLine is the most recognizable line of the chunk: the last context
// line when there is one, otherwise the first changed line.
func firstLine(c patch.Chunk) string {
	var line string
	if len(c.Context) > 0 {
		line = c.Context[len(c.Context)-1]
	} else if len(c.Removed) > 0 {
		line = c.Removed[0]
	} else if len(c.Added) > 0 {
		line = c.Added[0]
	}
	line = strings.TrimSpace(line)
	if len(line) > 60 {
		line = line[:57] + "..."
	}
	return line
}
