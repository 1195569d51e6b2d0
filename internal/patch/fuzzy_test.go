package patch

import "testing"

func TestScore(t *testing.T) {
	tests := []struct {
		name    string
		s1, s2  string
		wantMin float64
		wantMax float64
	}{
		{
			name:    "identical",
			s1:      "hello world",
			s2:      "hello world",
			wantMin: 100,
			wantMax: 100,
		},
		{
			name:    "both empty",
			s1:      "",
			s2:      "",
			wantMin: 100,
			wantMax: 100,
		},
		{
			name:    "one empty",
			s1:      "hello",
			s2:      "",
			wantMin: 0,
			wantMax: 0,
		},
		{
			name:    "completely different",
			s1:      "abc",
			s2:      "xyz",
			wantMin: 0,
			wantMax: 10,
		},
		{
			name:    "one char changed",
			s1:      "return x + 1",
			s2:      "return x + 2",
			wantMin: 90,
			wantMax: 99,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Score(tt.s1, tt.s2)
			if got < tt.wantMin || got > tt.wantMax {
				t.Errorf("Score(%q, %q) = %.1f, want [%.1f, %.1f]",
					tt.s1, tt.s2, got, tt.wantMin, tt.wantMax)
			}
		})
	}
}

func TestScoreSymmetric(t *testing.T) {
	a, b := "func greet() string {", "func greet() (string, error) {"
	if Score(a, b) != Score(b, a) {
		t.Errorf("Score is not symmetric: %.2f vs %.2f", Score(a, b), Score(b, a))
	}
}

func TestBlockScoreIgnoresIndentation(t *testing.T) {
	a := []string{"  bar  "}
	b := []string{"bar"}
	if got := BlockScore(a, b); got != 100 {
		t.Errorf("BlockScore with whitespace padding = %.1f, want 100", got)
	}

	a = []string{"\tif x {", "\t\treturn", "\t}"}
	b = []string{"if x {", "    return", "}"}
	if got := BlockScore(a, b); got != 100 {
		t.Errorf("BlockScore with indent drift = %.1f, want 100", got)
	}
}

func TestBlockScoreUnrelated(t *testing.T) {
	if got := BlockScore([]string{"completely unrelated"}, []string{"bar"}); got >= DefaultMinScore {
		t.Errorf("unrelated block scored %.1f, want below %d", got, DefaultMinScore)
	}
}

func TestLevenshtein(t *testing.T) {
	tests := []struct {
		s1, s2 string
		want   int
	}{
		{"", "", 0},
		{"abc", "", 3},
		{"", "abc", 3},
		{"kitten", "sitting", 3},
		{"same", "same", 0},
	}
	for _, tt := range tests {
		if got := levenshtein(tt.s1, tt.s2); got != tt.want {
			t.Errorf("levenshtein(%q, %q) = %d, want %d", tt.s1, tt.s2, got, tt.want)
		}
	}
}
