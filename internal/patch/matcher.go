package patch

import "sort"

// DefaultMinScore is the default fuzzy threshold for context matching.
const DefaultMinScore = 60

// Matcher locates a chunk's context inside a buffer by sliding a window of
// len(context) lines across it and scoring each window. Locate is pure and
// side-effect-free, so it is safe to call on every hover or for precomputing
// all chunk positions in parallel over a shared buffer.
type Matcher struct {
	// MinScore is the minimum similarity (0-100) for a window to qualify.
	MinScore float64
}

// lengthRatio gates the cheap pre-filter: windows whose normalized length
// differs from the context by more than this factor skip the edit-distance
// computation entirely.
const lengthRatio = 4

// Locate returns candidate anchors ordered by descending score, earliest
// anchor first among equals. An empty context yields no candidates: with
// zero-length context there is no positional constraint and the caller must
// supply an explicit anchor instead.
func (m Matcher) Locate(buffer, context []string) []Candidate {
	n := len(context)
	if n == 0 || n > len(buffer) {
		return nil
	}

	want := blockLen(context)
	var out []Candidate
	for i := 0; i+n <= len(buffer); i++ {
		window := buffer[i : i+n]
		got := blockLen(window)
		if got > lengthRatio*(want+1) || want > lengthRatio*(got+1) {
			continue
		}
		score := BlockScore(window, context)
		if score >= m.MinScore {
			out = append(out, Candidate{Anchor: i + n, Score: score})
		}
	}

	sort.SliceStable(out, func(a, b int) bool {
		if out[a].Score != out[b].Score {
			return out[a].Score > out[b].Score
		}
		return out[a].Anchor < out[b].Anchor
	})
	return out
}
