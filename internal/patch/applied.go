package patch

// DefaultAppliedScore is the near-exact threshold used to recognize a
// chunk's added block as already present. Like the match threshold it is
// empirically chosen, so it stays configuration rather than a constant in
// the detection logic.
const DefaultAppliedScore = 90

// Detector decides whether a chunk's effect is already present near a
// candidate anchor, so the caller can skip a double application. The
// heuristic can false-positive on independently duplicated content and
// false-negative on formatting drift; both are surfaced to the operator as a
// status, never silently swallowed.
type Detector struct {
	// AppliedScore is the near-exact threshold for both presence checks.
	// The looser match threshold cannot be used for the removed block: a
	// sibling line one edit away (bar vs baz) clears it and masks a genuine
	// already-applied state.
	AppliedScore float64
	// MinScore is kept for parity with the matcher configuration; the
	// detector itself only consults AppliedScore.
	MinScore float64
}

// AlreadyApplied scans a bounded neighborhood of the buffer around anchor:
// the chunk counts as applied when its added block is present near-exactly
// and, for shapes that remove lines, the removed block is no longer. For a
// pure Deletion the check reduces to the removed block being absent from the
// neighborhood.
func (d Detector) AlreadyApplied(buffer []string, c Chunk, anchor int) bool {
	radius := len(c.Added) + len(c.Removed)
	lo := anchor - radius
	if lo < 0 {
		lo = 0
	}
	hi := anchor + radius + len(c.Added)
	if hi > len(buffer) {
		hi = len(buffer)
	}
	neighborhood := buffer[lo:hi]

	removedPresent := len(c.Removed) > 0 &&
		nearestBlock(neighborhood, c.Removed, anchor-lo, d.AppliedScore) != -1

	if c.Kind == Deletion {
		return !removedPresent
	}

	addedPresent := nearestBlock(neighborhood, c.Added, anchor-lo, d.AppliedScore) != -1
	if !addedPresent {
		return false
	}
	if c.Kind == Addition {
		return true
	}
	return !removedPresent
}
