// Package gesture turns per-frame hand observations into discrete pointer
// events: a debounced one-shot click and a level-triggered drag.
package gesture

import (
	"errors"
	"fmt"

	"github.com/renderix/airpoint/internal/detector"
)

// ErrInvalidParameter is returned when a Recognizer is constructed with an
// out-of-range configuration value.
var ErrInvalidParameter = errors.New("invalid parameter")

// Default tuning values. Hold durations are whole frames, not wall-clock
// time, so effective timing scales with camera frame rate.
const (
	DefaultPinchThreshold  = 40.0
	DefaultClickHoldFrames = 3
	DefaultDragHoldFrames  = 10

	// HysteresisBand is the conventional widening applied to the release
	// threshold when hysteresis is enabled.
	HysteresisBand = 25.0
)

// Config holds the tuning parameters for a Recognizer. All values are
// validated once at construction; a Recognizer never fails at runtime.
type Config struct {
	// PinchThreshold is the thumb-to-index distance in frame pixels at or
	// below which a pinch engages.
	PinchThreshold float64

	// ReleaseThreshold, when non-zero, is a wider distance the pinch must
	// exceed before an active episode releases. Zero disables hysteresis
	// and the single PinchThreshold is used for both edges.
	ReleaseThreshold float64

	// ClickHoldFrames is the number of consecutive pinch frames before the
	// one-shot click fires.
	ClickHoldFrames int

	// DragHoldFrames is the number of consecutive pinch frames before drag
	// engages. Must exceed ClickHoldFrames so a short pinch stays a click.
	DragHoldFrames int
}

// DefaultConfig returns a Config with the stock tuning values and
// hysteresis disabled.
func DefaultConfig() Config {
	return Config{
		PinchThreshold:  DefaultPinchThreshold,
		ClickHoldFrames: DefaultClickHoldFrames,
		DragHoldFrames:  DefaultDragHoldFrames,
	}
}

// Recognizer is the pinch click/drag state machine. It owns three pieces of
// state: the pinch hold counter, the per-episode click latch, and the drag
// latch. It is not safe for concurrent use; the frame loop is the single
// caller.
type Recognizer struct {
	config Config

	pinchFrames int
	clickFired  bool
	dragging    bool
}

// NewRecognizer creates a Recognizer, validating the configuration.
func NewRecognizer(config Config) (*Recognizer, error) {
	if config.PinchThreshold <= 0 {
		return nil, fmt.Errorf("%w: pinch threshold must be positive, got %v", ErrInvalidParameter, config.PinchThreshold)
	}
	if config.ClickHoldFrames <= 0 {
		return nil, fmt.Errorf("%w: click hold frames must be positive, got %d", ErrInvalidParameter, config.ClickHoldFrames)
	}
	if config.DragHoldFrames <= config.ClickHoldFrames {
		return nil, fmt.Errorf("%w: drag hold frames (%d) must exceed click hold frames (%d)", ErrInvalidParameter, config.DragHoldFrames, config.ClickHoldFrames)
	}
	if config.ReleaseThreshold != 0 && config.ReleaseThreshold <= config.PinchThreshold {
		return nil, fmt.Errorf("%w: release threshold (%v) must exceed pinch threshold (%v)", ErrInvalidParameter, config.ReleaseThreshold, config.PinchThreshold)
	}

	return &Recognizer{config: config}, nil
}

// Config returns the recognizer's tuning parameters.
func (r *Recognizer) Config() Config {
	return r.config
}

// IsPinch reports whether the observation shows an active pinch. A missing
// or empty observation, or one lacking either tip, is never a pinch. While
// an episode is live and hysteresis is enabled, the wider release threshold
// applies so the pinch does not flicker at the boundary.
func (r *Recognizer) IsPinch(landmarks []detector.Landmark) bool {
	dist, ok := detector.TipDistance(landmarks)
	if !ok {
		return false
	}

	threshold := r.config.PinchThreshold
	if r.config.ReleaseThreshold > 0 && r.episodeActive() {
		threshold = r.config.ReleaseThreshold
	}
	return dist <= threshold
}

// Step evaluates one full frame: pinch classification, a single hold-counter
// advance, the click one-shot, and the drag latch. It is the entry point for
// an integrated frame loop, which must call it exactly once per frame.
// Returns true on the frame where the click fires.
func (r *Recognizer) Step(landmarks []detector.Landmark) bool {
	if !r.observe(landmarks) {
		return false
	}
	r.advance()
	clicked := r.fireClick()
	r.latchDrag()
	return clicked
}

// DetectClickEvent runs the pinch/click portion of the transition rules for
// one frame. It returns true exactly once per pinch episode, on the frame
// where the hold counter first reaches ClickHoldFrames with drag not yet
// engaged. A hand-absent or pinch-inactive frame resets all state and
// returns false.
//
// Callers driving the machine through DetectClickEvent and UpdateDragState
// must feed both the same observation each frame; each call performs its
// own hold-counter bookkeeping, so mixing them with Step in the same frame
// double-counts. An integrated loop should prefer Step.
func (r *Recognizer) DetectClickEvent(landmarks []detector.Landmark) bool {
	if !r.observe(landmarks) {
		return false
	}
	r.advance()
	return r.fireClick()
}

// UpdateDragState runs the hold-counter/drag portion of the transition
// rules for one frame. Drag latches once the counter reaches DragHoldFrames
// and stays latched until the pinch releases or the hand is lost.
func (r *Recognizer) UpdateDragState(landmarks []detector.Landmark) {
	if !r.observe(landmarks) {
		return
	}
	r.advance()
	r.latchDrag()
}

// IsDragging returns the current latched drag state.
func (r *Recognizer) IsDragging() bool {
	return r.dragging
}

// ResetState forces all state back to zero/false. Called internally on
// pinch release and tracking loss, and externally when pointer control is
// disabled mid-episode.
func (r *Recognizer) ResetState() {
	r.pinchFrames = 0
	r.clickFired = false
	r.dragging = false
}

// observe classifies the frame, resetting every latch on hand loss or pinch
// release so tracking loss can never leave stale state behind. Returns true
// only while the pinch is active.
func (r *Recognizer) observe(landmarks []detector.Landmark) bool {
	if len(landmarks) == 0 || !r.IsPinch(landmarks) {
		r.ResetState()
		return false
	}
	return true
}

// advance bumps the hold counter, saturating at DragHoldFrames. Past that
// point nothing depends on the count, and saturation keeps arbitrarily long
// holds from overflowing.
func (r *Recognizer) advance() {
	if r.pinchFrames < r.config.DragHoldFrames {
		r.pinchFrames++
	}
}

// fireClick reports the one-shot click. The >= comparison plus the latch
// makes the single-shot property hold no matter how many advances the
// caller performed this frame; once drag engages, no further click can fire
// within the episode.
func (r *Recognizer) fireClick() bool {
	if r.pinchFrames >= r.config.ClickHoldFrames && !r.clickFired && !r.dragging {
		r.clickFired = true
		return true
	}
	return false
}

func (r *Recognizer) latchDrag() {
	if r.pinchFrames >= r.config.DragHoldFrames {
		r.dragging = true
	}
}

func (r *Recognizer) episodeActive() bool {
	return r.pinchFrames > 0 || r.dragging
}
