package patch

import "testing"

func defaultDetector() Detector {
	return Detector{AppliedScore: DefaultAppliedScore, MinScore: DefaultMinScore}
}

func TestAlreadyAppliedReplacement(t *testing.T) {
	c := Chunk{
		Kind:    Replacement,
		Context: []string{"foo"},
		Removed: []string{"bar"},
		Added:   []string{"qux", "quux"},
	}
	d := defaultDetector()

	before := []string{"foo", "bar", "baz"}
	if d.AlreadyApplied(before, c, 1) {
		t.Error("unapplied replacement reported as applied")
	}

	after := []string{"foo", "qux", "quux", "baz"}
	if !d.AlreadyApplied(after, c, 1) {
		t.Error("applied replacement not detected")
	}
}

func TestAlreadyAppliedAddition(t *testing.T) {
	c := Chunk{Kind: Addition, Context: []string{"x"}, Added: []string{"z"}}
	d := defaultDetector()

	if d.AlreadyApplied([]string{"x", "y"}, c, 1) {
		t.Error("unapplied addition reported as applied")
	}
	if !d.AlreadyApplied([]string{"x", "z", "y"}, c, 1) {
		t.Error("applied addition not detected")
	}
}

func TestAlreadyAppliedDeletion(t *testing.T) {
	c := Chunk{Kind: Deletion, Context: []string{"a"}, Removed: []string{"b", "c"}}
	d := defaultDetector()

	if d.AlreadyApplied([]string{"a", "b", "c", "d"}, c, 1) {
		t.Error("pending deletion reported as applied")
	}
	if !d.AlreadyApplied([]string{"a", "d"}, c, 1) {
		t.Error("completed deletion not detected")
	}
}

func TestAlreadyAppliedIdempotence(t *testing.T) {
	// Applying a chunk and re-running detection on the result at the
	// recomputed anchor must report applied, for replacements and additions.
	engine := New(DefaultOptions())

	tests := []struct {
		name   string
		buffer []string
		chunk  Chunk
	}{
		{
			name:   "replacement",
			buffer: []string{"foo", "bar", "baz"},
			chunk: Chunk{
				Kind:    Replacement,
				Context: []string{"foo"},
				Removed: []string{"bar"},
				Added:   []string{"qux", "quux"},
			},
		},
		{
			name:   "addition",
			buffer: []string{"x", "y"},
			chunk:  Chunk{Kind: Addition, Context: []string{"x"}, Added: []string{"z"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, _, _, err := engine.Apply(tt.buffer, tt.chunk)
			if err != nil {
				t.Fatalf("first apply: %v", err)
			}
			_, _, _, err = engine.Apply(out, tt.chunk)
			if !IsSkip(err) {
				t.Fatalf("second apply: err = %v, want ErrAlreadyApplied", err)
			}
		})
	}
}

func TestAlreadyAppliedNearBufferEdges(t *testing.T) {
	// Neighborhood clamping near the start and end of the buffer.
	d := defaultDetector()

	c := Chunk{Kind: Addition, Context: []string{"first"}, Added: []string{"inserted"}}
	if !d.AlreadyApplied([]string{"first", "inserted"}, c, 1) {
		t.Error("addition at buffer start not detected")
	}

	c = Chunk{Kind: Addition, Context: []string{"last"}, Added: []string{"tail"}}
	if !d.AlreadyApplied([]string{"x", "last", "tail"}, c, 3) {
		t.Error("addition at buffer end not detected")
	}
}
