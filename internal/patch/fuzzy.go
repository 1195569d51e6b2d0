package patch

import "strings"

// levenshtein calculates the edit distance between two strings.
func levenshtein(s1, s2 string) int {
	if len(s1) == 0 {
		return len(s2)
	}
	if len(s2) == 0 {
		return len(s1)
	}

	d := make([][]int, len(s1)+1)
	for i := range d {
		d[i] = make([]int, len(s2)+1)
		d[i][0] = i
	}
	for j := range d[0] {
		d[0][j] = j
	}

	for i := 1; i <= len(s1); i++ {
		for j := 1; j <= len(s2); j++ {
			cost := 0
			if s1[i-1] != s2[j-1] {
				cost = 1
			}
			d[i][j] = min(
				d[i-1][j]+1,      // deletion
				d[i][j-1]+1,      // insertion
				d[i-1][j-1]+cost, // substitution
			)
		}
	}

	return d[len(s1)][len(s2)]
}

// Score returns the similarity between two strings on a 0-100 scale:
// 100 * (1 - distance / max(len(s1), len(s2))). Two empty strings score 100.
func Score(s1, s2 string) float64 {
	if len(s1) == 0 && len(s2) == 0 {
		return 100
	}
	distance := levenshtein(s1, s2)
	maxLen := max(len(s1), len(s2))
	return 100 * (1 - float64(distance)/float64(maxLen))
}

// BlockScore scores two line blocks against each other. Lines are stripped of
// leading and trailing whitespace before comparison so that indentation drift
// does not dominate the edit distance.
func BlockScore(a, b []string) float64 {
	return Score(normalizeBlock(a), normalizeBlock(b))
}

// normalizeBlock joins lines with each line's surrounding whitespace removed.
func normalizeBlock(lines []string) string {
	trimmed := make([]string, len(lines))
	for i, line := range lines {
		trimmed[i] = strings.TrimSpace(line)
	}
	return strings.Join(trimmed, "\n")
}

// blockLen is the normalized character length of a block, used for cheap
// window pruning before computing edit distance.
func blockLen(lines []string) int {
	n := 0
	for i, line := range lines {
		n += len(strings.TrimSpace(line))
		if i > 0 {
			n++ // joining newline
		}
	}
	return n
}
