package patch

// DefaultTolerance is how many lines away from the resolved anchor the
// removed block may sit and still be accepted at apply time.
const DefaultTolerance = 3

// Applier mutates nothing in place: every Apply builds a fresh buffer, so
// the caller can keep the previous value and discard the result to undo.
type Applier struct {
	// MinScore is the threshold for confirming the removed block near the
	// anchor.
	MinScore float64
	// Tolerance is the search radius, in lines, around the anchor.
	Tolerance int
}

// Apply produces a new buffer with the chunk applied at the resolved anchor
// and the line range the edit covers in the new buffer. For a Deletion the
// range is empty, positioned at the removal site.
//
// It fails with *ApplyError when the anchor is outside the buffer or when a
// non-empty removed block cannot be confirmed within the tolerance window,
// usually because the buffer changed between match and apply.
func (a Applier) Apply(buffer []string, c Chunk, anchor int) ([]string, Range, error) {
	if anchor < 0 || anchor > len(buffer) {
		return nil, Range{}, &ApplyError{Chunk: c.Order, Anchor: anchor, Reason: "anchor outside buffer bounds"}
	}

	if c.Kind == Addition {
		out, r := splice(buffer, anchor, anchor, c.Added)
		return out, r, nil
	}

	pos := nearestBlockWithin(buffer, c.Removed, anchor, a.Tolerance, a.MinScore)
	if pos == -1 {
		return nil, Range{}, &ApplyError{Chunk: c.Order, Anchor: anchor, Reason: "removed block not found near anchor"}
	}

	out, r := splice(buffer, pos, pos+len(c.Removed), c.Added)
	return out, r, nil
}

// splice copies buffer with lines [start, end) replaced by insert, returning
// the new buffer and the range insert occupies in it.
func splice(buffer []string, start, end int, insert []string) ([]string, Range) {
	out := make([]string, 0, len(buffer)-(end-start)+len(insert))
	out = append(out, buffer[:start]...)
	out = append(out, insert...)
	out = append(out, buffer[end:]...)
	return out, Range{Start: start, End: start + len(insert)}
}
