package patch

// Resolve picks the winning candidate: highest score, ties broken by the
// smallest anchor (earliest occurrence). The returned candidate has Tied set
// when the runner-up scored the same; that is a confidence signal for the
// caller, never an error. Returns false when there are no candidates.
//
// This deliberately does no semantic disambiguation: files with many
// near-identical regions can resolve to a wrong-but-plausible anchor, and the
// mitigation is the operator refining context, not the engine guessing
// harder.
func Resolve(candidates []Candidate) (Candidate, bool) {
	if len(candidates) == 0 {
		return Candidate{}, false
	}
	best := candidates[0]
	for _, c := range candidates[1:] {
		if c.Score > best.Score || (c.Score == best.Score && c.Anchor < best.Anchor) {
			best = c
		}
	}
	for _, c := range candidates {
		if c.Anchor != best.Anchor && c.Score == best.Score {
			best.Tied = true
			break
		}
	}
	return best, true
}

// nearestBlock finds the occurrence of block in buffer closest to anchor,
// scanning windows of len(block) lines and keeping those scoring at least
// minScore. When a block matches at several positions the one nearest the
// anchor wins; equal distances resolve to the earlier position. Returns -1
// when the block is nowhere to be found.
func nearestBlock(buffer, block []string, anchor int, minScore float64) int {
	n := len(block)
	if n == 0 || n > len(buffer) {
		return -1
	}

	best := -1
	bestDist := 0
	for i := 0; i+n <= len(buffer); i++ {
		if BlockScore(buffer[i:i+n], block) < minScore {
			continue
		}
		dist := i - anchor
		if dist < 0 {
			dist = -dist
		}
		if best == -1 || dist < bestDist {
			best = i
			bestDist = dist
		}
	}
	return best
}

// nearestBlockWithin is nearestBlock restricted to positions at most
// tolerance lines away from the anchor.
func nearestBlockWithin(buffer, block []string, anchor, tolerance int, minScore float64) int {
	pos := nearestBlock(buffer, block, anchor, minScore)
	if pos == -1 {
		return -1
	}
	dist := pos - anchor
	if dist < 0 {
		dist = -dist
	}
	if dist > tolerance {
		return -1
	}
	return pos
}
