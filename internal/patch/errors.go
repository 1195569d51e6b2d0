package patch

import (
	"errors"
	"fmt"
)

// ErrNoMatch is returned when no buffer position meets the match threshold
// for a chunk's context. The buffer is left untouched; the chunk simply is
// not applicable where it was looked for.
var ErrNoMatch = errors.New("no match for chunk context in buffer")

// ErrAlreadyApplied is a control signal, not a failure: the chunk's effect is
// already present near the resolved anchor and the apply was skipped.
var ErrAlreadyApplied = errors.New("chunk already applied")

// ApplyError reports that a resolved anchor exists but the chunk could not be
// applied there: the anchor is out of bounds, or the removed block cannot be
// confirmed within the tolerance window (typically because the buffer changed
// between match and apply). The buffer is unchanged.
type ApplyError struct {
	Chunk  int // chunk Order
	Anchor int
	Reason string
}

func (e *ApplyError) Error() string {
	return fmt.Sprintf("apply chunk %d at line %d: %s", e.Chunk+1, e.Anchor+1, e.Reason)
}

// Warning records a non-fatal problem encountered while parsing diff text.
// Parsing always continues; affected chunks are omitted or kept with reduced
// confidence.
type Warning struct {
	Line    int // 1-based line in the diff text
	Message string
}

func (w Warning) String() string {
	return fmt.Sprintf("line %d: %s", w.Line, w.Message)
}
