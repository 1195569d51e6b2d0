// Package patch implements the chunk engine: parsing a unified diff into
// independently applicable chunks, locating each chunk in a drifted buffer
// via fuzzy context matching, detecting already-applied chunks, and applying
// a chunk to produce a new buffer.
package patch

// Kind classifies the shape of a chunk.
type Kind int

const (
	// Replacement removes a block of lines and inserts another in its place.
	Replacement Kind = iota
	// Addition inserts lines without removing any.
	Addition
	// Deletion removes lines without inserting any.
	Deletion
)

// String returns the lowercase name of the kind.
func (k Kind) String() string {
	switch k {
	case Replacement:
		return "replacement"
	case Addition:
		return "addition"
	case Deletion:
		return "deletion"
	default:
		return "unknown"
	}
}

// Chunk is one self-contained edit extracted from a unified diff.
// Chunks are immutable after parsing; re-parsing the diff text replaces the
// whole sequence.
type Chunk struct {
	Kind Kind

	// Context holds up to contextSize non-blank lines that immediately
	// precede the changed run in the diff. Context is used only to locate
	// the chunk in a buffer; it is never applied itself.
	Context []string

	// Removed lines (empty for Addition).
	Removed []string

	// Added lines (empty for Deletion).
	Added []string

	// Order is the chunk's 0-based position within the parsed diff. It is
	// stable display ordering, not a matching input.
	Order int

	// DiffLine is the 1-based line number in the diff text of the chunk's
	// first changed line.
	DiffLine int
}

// Candidate is one plausible anchor position for a chunk's context.
// Anchor is the buffer line index immediately following the matched context
// block, i.e. where the chunk's changed region is expected to begin.
type Candidate struct {
	Anchor int
	Score  float64

	// Tied is set on a resolved candidate when another candidate scored the
	// same; the earlier anchor won. Informational, never an error.
	Tied bool
}

// Range is a half-open line range [Start, End) in a buffer produced by an
// apply. A deletion yields an empty range (Start == End) marking the removal
// point.
type Range struct {
	Start int
	End   int
}

// Empty reports whether the range covers no lines.
func (r Range) Empty() bool { return r.Start == r.End }
