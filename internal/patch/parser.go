package patch

import "strings"

// MaxContextSize caps how many preceding context lines a chunk may carry.
const MaxContextSize = 3

// Parser splits raw unified-diff text into an ordered chunk sequence.
// Parsing never fails: unrecognized lines become context candidates or are
// skipped, and problems are reported as Warnings alongside the result.
type Parser struct {
	// ContextSize is how many non-blank context lines to bind to each chunk,
	// clamped to [1, MaxContextSize].
	ContextSize int
}

// NewParser returns a Parser with the context size clamped to [1, MaxContextSize].
func NewParser(contextSize int) *Parser {
	if contextSize < 1 {
		contextSize = 1
	}
	if contextSize > MaxContextSize {
		contextSize = MaxContextSize
	}
	return &Parser{ContextSize: contextSize}
}

// headerPrefixes are diff metadata lines that never count as context or
// changed lines.
var headerPrefixes = []string{
	"diff --git",
	"Index:",
	"index ",
	"--- ",
	"+++ ",
	"*** ",
	"new file mode",
	"deleted file mode",
	"old mode",
	"new mode",
	"rename from",
	"rename to",
	"similarity index",
	"Binary files",
	"\\ No newline",
}

func isFileHeader(line string) bool {
	for _, p := range headerPrefixes {
		if strings.HasPrefix(line, p) {
			return true
		}
	}
	return false
}

func isHunkHeader(line string) bool { return strings.HasPrefix(line, "@@") }

func isAdd(line string) bool {
	return strings.HasPrefix(line, "+") && !strings.HasPrefix(line, "+++")
}

func isDel(line string) bool {
	return strings.HasPrefix(line, "-") && !strings.HasPrefix(line, "---")
}

// contextText strips the single leading space a unified diff puts in front of
// context lines. Lines without the prefix are taken verbatim.
func contextText(line string) string {
	if strings.HasPrefix(line, " ") {
		return line[1:]
	}
	return line
}

// Parse scans the diff text top to bottom and closes a chunk on every
// contiguous run of '-' lines optionally followed immediately by a run of
// '+' lines, or a '+' run on its own. Each chunk is bound to up to
// ContextSize non-blank context lines seen since the previous chunk or
// header; blank context lines are skipped, not barriers.
func (p *Parser) Parse(diffText string) ([]Chunk, []Warning) {
	lines := strings.Split(diffText, "\n")

	var chunks []Chunk
	var warnings []Warning

	// Rolling window of the last ContextSize non-blank context lines.
	var window []string
	pushContext := func(text string) {
		window = append(window, text)
		if len(window) > p.ContextSize {
			window = window[len(window)-p.ContextSize:]
		}
	}

	i := 0
	for i < len(lines) {
		line := lines[i]

		if isHunkHeader(line) || isFileHeader(line) {
			window = nil
			i++
			continue
		}

		if !isDel(line) && !isAdd(line) {
			text := contextText(line)
			if strings.TrimSpace(text) != "" {
				pushContext(text)
			}
			i++
			continue
		}

		// Changed run: '-' lines first, then adjacent '+' lines.
		diffLine := i + 1
		var removed, added []string
		for i < len(lines) && isDel(lines[i]) {
			removed = append(removed, lines[i][1:])
			i++
		}
		for i < len(lines) && isAdd(lines[i]) {
			added = append(added, lines[i][1:])
			i++
		}

		// Both runs empty cannot happen here; guard against future edits.
		if len(removed) == 0 && len(added) == 0 {
			warnings = append(warnings, Warning{Line: diffLine, Message: "empty change run"})
			continue
		}

		kind := Replacement
		switch {
		case len(removed) == 0:
			kind = Addition
		case len(added) == 0:
			kind = Deletion
		}

		context := make([]string, len(window))
		copy(context, window)
		if len(context) == 0 {
			warnings = append(warnings, Warning{
				Line:    diffLine,
				Message: "chunk has no preceding context; it cannot be located automatically",
			})
		}

		chunks = append(chunks, Chunk{
			Kind:     kind,
			Context:  context,
			Removed:  removed,
			Added:    added,
			Order:    len(chunks),
			DiffLine: diffLine,
		})
		window = nil
	}

	return chunks, warnings
}

// TargetPath extracts the target file path from the diff's file headers.
// The "+++" side wins; "---" is the fallback when the new side is /dev/null.
// Returns "" when the diff carries no usable header.
func TargetPath(diffText string) string {
	var oldPath, newPath string
	for _, line := range strings.Split(diffText, "\n") {
		switch {
		case strings.HasPrefix(line, "+++ "):
			if newPath == "" {
				newPath = headerPath(line[4:])
			}
		case strings.HasPrefix(line, "--- "):
			if oldPath == "" {
				oldPath = headerPath(line[4:])
			}
		}
	}
	if newPath != "" {
		return newPath
	}
	return oldPath
}

// headerPath cleans one side of a ---/+++ header: the optional tab-separated
// timestamp goes, as do git's a/ and b/ prefixes and /dev/null.
func headerPath(s string) string {
	if idx := strings.IndexByte(s, '\t'); idx >= 0 {
		s = s[:idx]
	}
	s = strings.TrimSpace(s)
	if s == "/dev/null" {
		return ""
	}
	if strings.HasPrefix(s, "a/") || strings.HasPrefix(s, "b/") {
		s = s[2:]
	}
	return s
}
