// Package session owns the target buffer while chunks are being applied to
// it. The engine is pure; the session is where buffer ownership, apply
// serialization, undo history and per-chunk status live.
package session

import (
	"errors"
	"fmt"
	"sync"

	"github.com/patchpick/patchpick/internal/logging"
	"github.com/patchpick/patchpick/internal/patch"
	"github.com/patchpick/patchpick/internal/render"
)

// State tracks what has happened to a chunk within this session.
type State int

const (
	Pending State = iota
	Applied
	Skipped // already applied, or skipped by the operator
	Failed
)

// String returns a short display label for the state.
func (s State) String() string {
	switch s {
	case Pending:
		return "pending"
	case Applied:
		return "applied"
	case Skipped:
		return "skipped"
	case Failed:
		return "failed"
	default:
		return "unknown"
	}
}

// undoEntry captures everything needed to roll back one apply.
type undoEntry struct {
	buffer    []string
	chunk     int
	prevState State
	prevNote  string
}

// Session applies chunks of one diff to one buffer. All mutating methods
// serialize on an internal mutex: matching is read-only and safe to run
// concurrently, but adopting a new buffer value is not.
type Session struct {
	mu sync.Mutex

	engine *patch.Engine
	log    *logging.Logger

	path     string
	original []string
	buffer   []string
	undo     []undoEntry

	chunks   []patch.Chunk
	warnings []patch.Warning
	states   []State
	notes    []string
}

// New parses the diff text and wraps the buffer in a session. The buffer is
// adopted as-is; callers must not retain and mutate it.
func New(engine *patch.Engine, log *logging.Logger, path string, buffer []string, diffText string) *Session {
	chunks, warnings := engine.Parse(diffText)
	s := &Session{
		engine:   engine,
		log:      log,
		path:     path,
		original: buffer,
		buffer:   buffer,
		chunks:   chunks,
		warnings: warnings,
		states:   make([]State, len(chunks)),
		notes:    make([]string, len(chunks)),
	}
	log.DiffParsed(path, len(chunks), len(warnings))
	return s
}

// Path returns the target file path the session was opened for.
func (s *Session) Path() string { return s.path }

// Chunks returns the parsed chunk sequence in source order.
func (s *Session) Chunks() []patch.Chunk { return s.chunks }

// Warnings returns parse warnings, if any.
func (s *Session) Warnings() []patch.Warning { return s.warnings }

// Buffer returns a copy of the current buffer.
func (s *Session) Buffer() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]string, len(s.buffer))
	copy(out, s.buffer)
	return out
}

// State returns the chunk's state and its status note.
func (s *Session) State(i int) (State, string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if i < 0 || i >= len(s.states) {
		return Pending, ""
	}
	return s.states[i], s.notes[i]
}

// Dirty reports whether any chunk has been applied and not undone.
func (s *Session) Dirty() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.undo) > 0
}

// Apply runs chunk i against the current buffer and, on success, adopts the
// resulting buffer as the new current value. The previous value goes on the
// undo stack. Failures leave the buffer untouched and record the reason in
// the chunk's status note.
func (s *Session) Apply(i int) (patch.Range, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if i < 0 || i >= len(s.chunks) {
		return patch.Range{}, fmt.Errorf("chunk %d out of range", i+1)
	}
	c := s.chunks[i]

	out, r, winner, err := s.engine.Apply(s.buffer, c)
	if err != nil {
		switch {
		case patch.IsSkip(err):
			s.states[i] = Skipped
			s.notes[i] = "already applied"
			s.log.ChunkSkipped(c.Order, "already applied")
		case errors.Is(err, patch.ErrNoMatch):
			s.states[i] = Failed
			s.notes[i] = "context not found"
			s.log.ChunkSkipped(c.Order, "no match")
		default:
			s.states[i] = Failed
			s.notes[i] = err.Error()
			s.log.Error("apply failed", err)
		}
		return patch.Range{}, err
	}

	s.undo = append(s.undo, undoEntry{
		buffer:    s.buffer,
		chunk:     i,
		prevState: s.states[i],
		prevNote:  s.notes[i],
	})
	s.buffer = out
	s.states[i] = Applied
	if winner.Tied {
		s.notes[i] = "applied (ambiguous match)"
	} else {
		s.notes[i] = fmt.Sprintf("applied at line %d", r.Start+1)
	}
	s.log.ChunkApplied(c.Order, winner.Anchor, winner.Score, winner.Tied)
	return r, nil
}

// Preview runs a speculative apply of chunk i and renders the would-be
// change as unified-diff text. Nothing is committed, so it is safe to call
// on every selection change.
func (s *Session) Preview(i int) (string, error) {
	s.mu.Lock()
	buffer := s.buffer
	s.mu.Unlock()

	if i < 0 || i >= len(s.chunks) {
		return "", fmt.Errorf("chunk %d out of range", i+1)
	}

	out, _, _, err := s.engine.Apply(buffer, s.chunks[i])
	if err != nil {
		return "", err
	}
	return render.Unified(buffer, out, s.path)
}

// Undo reverts the most recent apply, restoring the prior buffer value and
// the chunk's previous state. Returns false when there is nothing to undo.
func (s *Session) Undo() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.undo) == 0 {
		return false
	}
	last := s.undo[len(s.undo)-1]
	s.undo = s.undo[:len(s.undo)-1]
	s.buffer = last.buffer
	s.states[last.chunk] = last.prevState
	s.notes[last.chunk] = last.prevNote
	s.log.Info("undo")
	return true
}

// FullDiff renders the accumulated difference between the buffer as loaded
// and its current value.
func (s *Session) FullDiff() (string, error) {
	s.mu.Lock()
	original, current := s.original, s.buffer
	s.mu.Unlock()
	return render.Unified(original, current, s.path)
}
