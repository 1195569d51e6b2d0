package patch

import (
	"strings"
	"testing"
)

const sampleDiff = `diff --git a/greet.go b/greet.go
index 83db48f..bf269f4 100644
--- a/greet.go
+++ b/greet.go
@@ -1,5 +1,6 @@
 package main

 func greet() string {
-	return "hello"
+	return "hello, world"
+	// revised greeting
 }
`

func TestParseReplacement(t *testing.T) {
	p := NewParser(3)
	chunks, warnings := p.Parse(sampleDiff)

	if len(warnings) != 0 {
		t.Fatalf("unexpected warnings: %v", warnings)
	}
	if len(chunks) != 1 {
		t.Fatalf("expected 1 chunk, got %d", len(chunks))
	}

	c := chunks[0]
	if c.Kind != Replacement {
		t.Errorf("kind = %v, want replacement", c.Kind)
	}
	if want := []string{"package main", "func greet() string {"}; !equalLines(c.Context, want) {
		t.Errorf("context = %q, want %q", c.Context, want)
	}
	if want := []string{"\treturn \"hello\""}; !equalLines(c.Removed, want) {
		t.Errorf("removed = %q, want %q", c.Removed, want)
	}
	if len(c.Added) != 2 {
		t.Errorf("added = %q, want 2 lines", c.Added)
	}
	if c.Order != 0 {
		t.Errorf("order = %d, want 0", c.Order)
	}
}

func TestParseChunkShapes(t *testing.T) {
	tests := []struct {
		name     string
		diff     string
		kind     Kind
		removed  int
		added    int
		context  []string
	}{
		{
			name:    "addition without deletions",
			diff:    " alpha\n beta\n+gamma\n",
			kind:    Addition,
			removed: 0,
			added:   1,
			context: []string{"alpha", "beta"},
		},
		{
			name:    "deletion without additions",
			diff:    " alpha\n-beta\n-gamma\n delta\n",
			kind:    Deletion,
			removed: 2,
			added:   0,
			context: []string{"alpha"},
		},
		{
			name:    "replacement",
			diff:    " alpha\n-beta\n+gamma\n",
			kind:    Replacement,
			removed: 1,
			added:   1,
			context: []string{"alpha"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			chunks, _ := NewParser(3).Parse(tt.diff)
			if len(chunks) != 1 {
				t.Fatalf("expected 1 chunk, got %d", len(chunks))
			}
			c := chunks[0]
			if c.Kind != tt.kind {
				t.Errorf("kind = %v, want %v", c.Kind, tt.kind)
			}
			if len(c.Removed) != tt.removed || len(c.Added) != tt.added {
				t.Errorf("removed/added = %d/%d, want %d/%d",
					len(c.Removed), len(c.Added), tt.removed, tt.added)
			}
			if !equalLines(c.Context, tt.context) {
				t.Errorf("context = %q, want %q", c.Context, tt.context)
			}
		})
	}
}

func TestParseContextWindow(t *testing.T) {
	// Only the last N non-blank context lines bind to the chunk; blank
	// context lines are skipped, not barriers.
	diff := " one\n two\n \n three\n+new\n"

	for _, n := range []int{1, 2, 3} {
		chunks, _ := NewParser(n).Parse(diff)
		if len(chunks) != 1 {
			t.Fatalf("context %d: expected 1 chunk, got %d", n, len(chunks))
		}
		ctx := chunks[0].Context
		if len(ctx) != n {
			t.Fatalf("context %d: got %d lines %q", n, len(ctx), ctx)
		}
		if ctx[len(ctx)-1] != "three" {
			t.Errorf("context %d: last line = %q, want %q", n, ctx[len(ctx)-1], "three")
		}
	}
}

func TestParseContextSizeClamped(t *testing.T) {
	if got := NewParser(0).ContextSize; got != 1 {
		t.Errorf("ContextSize(0) = %d, want 1", got)
	}
	if got := NewParser(9).ContextSize; got != MaxContextSize {
		t.Errorf("ContextSize(9) = %d, want %d", got, MaxContextSize)
	}
}

func TestParseEmptyContextWarns(t *testing.T) {
	// Chunk at the very start of a hunk has nothing to bind to.
	chunks, warnings := NewParser(3).Parse("@@ -1 +1 @@\n-old\n+new\n")
	if len(chunks) != 1 {
		t.Fatalf("expected 1 chunk, got %d", len(chunks))
	}
	if len(chunks[0].Context) != 0 {
		t.Errorf("context = %q, want empty", chunks[0].Context)
	}
	if len(warnings) != 1 {
		t.Errorf("expected a low-confidence warning, got %v", warnings)
	}
}

func TestParseContiguousHunks(t *testing.T) {
	// The window resets after each chunk, so a run immediately following
	// another gets no context.
	diff := " ctx\n-a\n+b\n-c\n+d\n"
	chunks, warnings := NewParser(3).Parse(diff)
	if len(chunks) != 2 {
		t.Fatalf("expected 2 chunks, got %d", len(chunks))
	}
	if len(chunks[0].Context) != 1 || len(chunks[1].Context) != 0 {
		t.Errorf("contexts = %q / %q", chunks[0].Context, chunks[1].Context)
	}
	if len(warnings) != 1 {
		t.Errorf("expected 1 warning for the contextless chunk, got %v", warnings)
	}
	if chunks[0].Order != 0 || chunks[1].Order != 1 {
		t.Errorf("orders = %d, %d", chunks[0].Order, chunks[1].Order)
	}
}

func TestParseSkipsHeaders(t *testing.T) {
	headers := []string{
		"diff --git a/x b/x",
		"index 0000000..1111111 100644",
		"--- a/x",
		"+++ b/x",
		"@@ -1,2 +1,2 @@",
		"\\ No newline at end of file",
		"Binary files a/x and b/x differ",
	}
	diff := strings.Join(headers, "\n") + "\n ctx\n+added\n"
	chunks, _ := NewParser(3).Parse(diff)
	if len(chunks) != 1 {
		t.Fatalf("expected 1 chunk, got %d", len(chunks))
	}
	if !equalLines(chunks[0].Context, []string{"ctx"}) {
		t.Errorf("headers leaked into context: %q", chunks[0].Context)
	}
}

func TestParseNeverProducesEmptyChunk(t *testing.T) {
	inputs := []string{
		"",
		"just some text\nwith no diff markers\n",
		"--- a/x\n+++ b/x\n",
		"@@ garbage @@\n@@ more @@\n",
	}
	for _, in := range inputs {
		chunks, _ := NewParser(3).Parse(in)
		for _, c := range chunks {
			if len(c.Removed) == 0 && len(c.Added) == 0 {
				t.Fatalf("input %q produced a chunk with no changes", in)
			}
		}
	}
}

func TestParseMalformedInputNeverPanics(t *testing.T) {
	inputs := []string{
		"+\n-\n",
		"+++\n---\n",
		"@@\n+x",
		strings.Repeat("+a\n-b\n", 100),
	}
	for _, in := range inputs {
		NewParser(2).Parse(in) // must not panic
	}
}

func TestTargetPath(t *testing.T) {
	tests := []struct {
		name string
		diff string
		want string
	}{
		{
			name: "git style prefixes",
			diff: "--- a/src/main.go\n+++ b/src/main.go\n",
			want: "src/main.go",
		},
		{
			name: "timestamp suffix",
			diff: "--- src/old.go\t2024-01-01 00:00:00\n+++ src/new.go\t2024-01-02 00:00:00\n",
			want: "src/new.go",
		},
		{
			name: "deleted file falls back to old side",
			diff: "--- a/gone.go\n+++ /dev/null\n",
			want: "gone.go",
		},
		{
			name: "no headers",
			diff: " ctx\n+added\n",
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := TargetPath(tt.diff); got != tt.want {
				t.Errorf("TargetPath = %q, want %q", got, tt.want)
			}
		})
	}
}

func equalLines(got, want []string) bool {
	if len(got) != len(want) {
		return false
	}
	for i := range got {
		if got[i] != want[i] {
			return false
		}
	}
	return true
}
