package patch

import "errors"

// Options are the tunable thresholds the engine consumes. The zero value is
// not useful; call DefaultOptions or fill every field.
type Options struct {
	// ContextSize is how many preceding context lines to bind per chunk (1-3).
	ContextSize int
	// MinScore is the fuzzy threshold (0-100) for context and removed-block
	// matching.
	MinScore float64
	// AppliedScore is the near-exact threshold (0-100) for already-applied
	// detection.
	AppliedScore float64
	// Tolerance is the apply-time search radius around the anchor, in lines.
	Tolerance int
}

// DefaultOptions returns the empirically chosen defaults.
func DefaultOptions() Options {
	return Options{
		ContextSize:  MaxContextSize,
		MinScore:     DefaultMinScore,
		AppliedScore: DefaultAppliedScore,
		Tolerance:    DefaultTolerance,
	}
}

// Engine bundles the parser, matcher, detector and applier behind one
// configuration. It holds no buffer state of its own: every method is a pure
// function over explicit inputs, so concurrent read-only use (locating many
// chunks against one buffer) is safe, and only the caller's adoption of an
// apply result needs serializing.
type Engine struct {
	parser   *Parser
	matcher  Matcher
	detector Detector
	applier  Applier
}

// New builds an Engine, clamping out-of-range options to their defaults.
func New(opts Options) *Engine {
	if opts.MinScore <= 0 || opts.MinScore > 100 {
		opts.MinScore = DefaultMinScore
	}
	if opts.AppliedScore <= 0 || opts.AppliedScore > 100 {
		opts.AppliedScore = DefaultAppliedScore
	}
	if opts.Tolerance <= 0 {
		opts.Tolerance = DefaultTolerance
	}
	return &Engine{
		parser:   NewParser(opts.ContextSize),
		matcher:  Matcher{MinScore: opts.MinScore},
		detector: Detector{AppliedScore: opts.AppliedScore, MinScore: opts.MinScore},
		applier:  Applier{MinScore: opts.MinScore, Tolerance: opts.Tolerance},
	}
}

// Parse splits diff text into chunks. See Parser.Parse.
func (e *Engine) Parse(diffText string) ([]Chunk, []Warning) {
	return e.parser.Parse(diffText)
}

// Locate returns ranked candidate anchors for the chunk's context.
func (e *Engine) Locate(buffer []string, c Chunk) []Candidate {
	return e.matcher.Locate(buffer, c.Context)
}

// Resolve runs Locate and picks the winning anchor. Returns ErrNoMatch when
// no window meets the threshold, which includes chunks with empty context.
func (e *Engine) Resolve(buffer []string, c Chunk) (Candidate, error) {
	winner, ok := Resolve(e.matcher.Locate(buffer, c.Context))
	if !ok {
		return Candidate{}, ErrNoMatch
	}
	return winner, nil
}

// Apply runs the full pipeline for one chunk: locate the context, resolve an
// anchor, skip when the chunk is already applied, then apply. The input
// buffer is never mutated; on success the new buffer and the edited range
// come back along with the anchor that was used.
//
// Errors are all local and recoverable: ErrNoMatch, ErrAlreadyApplied (a
// skip signal, check with errors.Is), or *ApplyError.
func (e *Engine) Apply(buffer []string, c Chunk) ([]string, Range, Candidate, error) {
	winner, err := e.Resolve(buffer, c)
	if err != nil {
		return nil, Range{}, Candidate{}, err
	}
	if e.detector.AlreadyApplied(buffer, c, winner.Anchor) {
		return nil, Range{}, winner, ErrAlreadyApplied
	}
	out, r, err := e.applier.Apply(buffer, c, winner.Anchor)
	if err != nil {
		return nil, Range{}, winner, err
	}
	return out, r, winner, nil
}

// ApplyAt applies the chunk at an explicit anchor, bypassing context
// matching. This is the fallback path for chunks parsed with empty context,
// where the caller supplies the target location.
func (e *Engine) ApplyAt(buffer []string, c Chunk, anchor int) ([]string, Range, error) {
	return e.applier.Apply(buffer, c, anchor)
}

// IsSkip reports whether err is the already-applied control signal rather
// than a failure.
func IsSkip(err error) bool { return errors.Is(err, ErrAlreadyApplied) }
