package gesture

import (
	"errors"
	"testing"

	"github.com/renderix/airpoint/internal/detector"
)

func newTestRecognizer(t *testing.T, config Config) *Recognizer {
	t.Helper()
	r, err := NewRecognizer(config)
	if err != nil {
		t.Fatalf("NewRecognizer() error = %v", err)
	}
	return r
}

func TestNewRecognizer_Validation(t *testing.T) {
	cases := []struct {
		name   string
		config Config
	}{
		{"zero pinch threshold", Config{PinchThreshold: 0, ClickHoldFrames: 3, DragHoldFrames: 10}},
		{"negative pinch threshold", Config{PinchThreshold: -5, ClickHoldFrames: 3, DragHoldFrames: 10}},
		{"zero click hold", Config{PinchThreshold: 40, ClickHoldFrames: 0, DragHoldFrames: 10}},
		{"drag not beyond click", Config{PinchThreshold: 40, ClickHoldFrames: 5, DragHoldFrames: 5}},
		{"release inside engage", Config{PinchThreshold: 40, ReleaseThreshold: 30, ClickHoldFrames: 3, DragHoldFrames: 10}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := NewRecognizer(tc.config); !errors.Is(err, ErrInvalidParameter) {
				t.Errorf("NewRecognizer() error = %v, want ErrInvalidParameter", err)
			}
		})
	}

	if _, err := NewRecognizer(DefaultConfig()); err != nil {
		t.Errorf("NewRecognizer(DefaultConfig()) error = %v", err)
	}
}

func TestIsPinch(t *testing.T) {
	r := newTestRecognizer(t, Config{PinchThreshold: 50, ClickHoldFrames: 3, DragHoldFrames: 10})

	if !r.IsPinch(detector.PinchLandmarks()) {
		t.Error("expected pinch for close tips")
	}
	if r.IsPinch(detector.ApartLandmarks()) {
		t.Error("expected no pinch for separated tips")
	}
	if r.IsPinch(nil) {
		t.Error("expected no pinch for empty observation")
	}
	if r.IsPinch(detector.MissingTipLandmarks()) {
		t.Error("expected no pinch when a tip is missing")
	}
}

func TestDetectClickEvent_SingleShot(t *testing.T) {
	const clickHold = 3
	r := newTestRecognizer(t, Config{PinchThreshold: 50, ClickHoldFrames: clickHold, DragHoldFrames: 10})

	pinch := detector.PinchLandmarks()

	// Click fires exactly on the ClickHoldFrames-th consecutive pinch frame
	// and on no other frame of the episode.
	for frame := 1; frame <= 8; frame++ {
		got := r.DetectClickEvent(pinch)
		want := frame == clickHold
		if got != want {
			t.Errorf("frame %d: DetectClickEvent = %v, want %v", frame, got, want)
		}
	}
}

func TestDetectClickEvent_ResetOnRelease(t *testing.T) {
	r := newTestRecognizer(t, Config{PinchThreshold: 50, ClickHoldFrames: 1, DragHoldFrames: 10})

	pinch := detector.PinchLandmarks()
	apart := detector.ApartLandmarks()

	// Two separate episodes produce two independent clicks.
	got := []bool{
		r.DetectClickEvent(apart),
		r.DetectClickEvent(pinch),
		r.DetectClickEvent(pinch),
		r.DetectClickEvent(apart),
		r.DetectClickEvent(pinch),
	}
	want := []bool{false, true, false, false, true}

	for i := range want {
		if got[i] != want[i] {
			t.Errorf("call %d: DetectClickEvent = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestDetectClickEvent_HandLossResets(t *testing.T) {
	const clickHold = 4
	r := newTestRecognizer(t, Config{PinchThreshold: 50, ClickHoldFrames: clickHold, DragHoldFrames: 10})

	pinch := detector.PinchLandmarks()

	// Two pinch frames, then tracking loss: the counter must restart.
	r.DetectClickEvent(pinch)
	r.DetectClickEvent(pinch)
	if r.DetectClickEvent(nil) {
		t.Error("empty observation must not fire a click")
	}

	for frame := 1; frame <= clickHold; frame++ {
		got := r.DetectClickEvent(pinch)
		want := frame == clickHold
		if got != want {
			t.Errorf("frame %d after reset: DetectClickEvent = %v, want %v", frame, got, want)
		}
	}
}

func TestDetectClickEvent_MissingTipIsHandAbsent(t *testing.T) {
	r := newTestRecognizer(t, Config{PinchThreshold: 50, ClickHoldFrames: 2, DragHoldFrames: 10})

	pinch := detector.PinchLandmarks()

	r.DetectClickEvent(pinch)
	r.DetectClickEvent(detector.MissingTipLandmarks()) // resets like an empty set

	if got := r.DetectClickEvent(pinch); got {
		t.Error("counter must restart after a missing-tip frame")
	}
	if got := r.DetectClickEvent(pinch); !got {
		t.Error("click must fire on the second pinch frame of the new episode")
	}
}

func TestUpdateDragState_EngagementThreshold(t *testing.T) {
	const dragHold = 6
	r := newTestRecognizer(t, Config{PinchThreshold: 50, ClickHoldFrames: 2, DragHoldFrames: dragHold})

	pinch := detector.PinchLandmarks()

	for frame := 1; frame <= dragHold+3; frame++ {
		r.UpdateDragState(pinch)
		want := frame >= dragHold
		if got := r.IsDragging(); got != want {
			t.Errorf("frame %d: IsDragging = %v, want %v", frame, got, want)
		}
	}
}

func TestUpdateDragState_ReleaseEndsDrag(t *testing.T) {
	r := newTestRecognizer(t, Config{PinchThreshold: 50, ClickHoldFrames: 2, DragHoldFrames: 4})

	pinch := detector.PinchLandmarks()
	apart := detector.ApartLandmarks()

	for i := 0; i < 4; i++ {
		r.UpdateDragState(pinch)
	}
	if !r.IsDragging() {
		t.Fatal("expected drag to engage after hold")
	}

	r.UpdateDragState(apart)
	if r.IsDragging() {
		t.Error("expected drag to release when pinch opens")
	}
}

func TestUpdateDragState_HandLossResets(t *testing.T) {
	r := newTestRecognizer(t, Config{PinchThreshold: 50, ClickHoldFrames: 2, DragHoldFrames: 4})

	pinch := detector.PinchLandmarks()
	for i := 0; i < 4; i++ {
		r.UpdateDragState(pinch)
	}
	if !r.IsDragging() {
		t.Fatal("expected drag to engage")
	}

	r.UpdateDragState(nil)
	if r.IsDragging() {
		t.Error("expected tracking loss to clear the drag latch")
	}
}

func TestStep_ClickThenDrag(t *testing.T) {
	const (
		clickHold = 3
		dragHold  = 7
	)
	r := newTestRecognizer(t, Config{PinchThreshold: 50, ClickHoldFrames: clickHold, DragHoldFrames: dragHold})

	pinch := detector.PinchLandmarks()

	for frame := 1; frame <= dragHold+2; frame++ {
		clicked := r.Step(pinch)
		if wantClick := frame == clickHold; clicked != wantClick {
			t.Errorf("frame %d: Step click = %v, want %v", frame, clicked, wantClick)
		}
		if wantDrag := frame >= dragHold; r.IsDragging() != wantDrag {
			t.Errorf("frame %d: IsDragging = %v, want %v", frame, r.IsDragging(), wantDrag)
		}
	}
}

func TestStep_DragSuppressesLateClick(t *testing.T) {
	// With the click unfired when drag engages (it cannot happen under
	// validated configs via normal stepping, but ResetState mid-episode or
	// external drag latching must never allow a click during drag), verify
	// the suppression directly after drag engagement.
	r := newTestRecognizer(t, Config{PinchThreshold: 50, ClickHoldFrames: 2, DragHoldFrames: 4})

	pinch := detector.PinchLandmarks()
	for i := 0; i < 6; i++ {
		r.Step(pinch)
	}
	if !r.IsDragging() {
		t.Fatal("expected drag to be engaged")
	}
	if r.Step(pinch) {
		t.Error("no click may fire while dragging")
	}
}

func TestStep_SaturatingCounter(t *testing.T) {
	r := newTestRecognizer(t, Config{PinchThreshold: 50, ClickHoldFrames: 2, DragHoldFrames: 5})

	pinch := detector.PinchLandmarks()
	// A very long hold must neither overflow nor re-fire anything.
	for i := 0; i < 10000; i++ {
		if r.Step(pinch) && i != 1 {
			t.Fatalf("frame %d: unexpected click during long hold", i)
		}
	}
	if !r.IsDragging() {
		t.Error("expected drag to remain latched through a long hold")
	}
	if r.pinchFrames != 5 {
		t.Errorf("pinchFrames = %d, want saturation at 5", r.pinchFrames)
	}
}

func TestHysteresis_ReleaseThreshold(t *testing.T) {
	// Engage at <= 40, release only above 65.
	r := newTestRecognizer(t, Config{PinchThreshold: 40, ReleaseThreshold: 65, ClickHoldFrames: 2, DragHoldFrames: 4})

	near := []detector.Landmark{
		{ID: detector.ThumbTip, X: 100, Y: 100},
		{ID: detector.IndexTip, X: 130, Y: 100}, // 30 px: engages
	}
	band := []detector.Landmark{
		{ID: detector.ThumbTip, X: 100, Y: 100},
		{ID: detector.IndexTip, X: 150, Y: 100}, // 50 px: inside hysteresis band
	}
	wide := []detector.Landmark{
		{ID: detector.ThumbTip, X: 100, Y: 100},
		{ID: detector.IndexTip, X: 180, Y: 100}, // 80 px: releases
	}

	// Before any episode the band distance must not engage.
	if r.IsPinch(band) {
		t.Fatal("50 px must not engage at a 40 px threshold")
	}

	// Engage, then wander into the band: the episode must survive.
	r.UpdateDragState(near)
	if !r.IsPinch(band) {
		t.Error("expected hysteresis to hold the pinch inside the band")
	}
	r.UpdateDragState(band)
	if r.pinchFrames == 0 {
		t.Error("expected episode to continue inside the band")
	}

	// Beyond the release threshold the episode ends.
	r.UpdateDragState(wide)
	if r.pinchFrames != 0 || r.IsDragging() {
		t.Error("expected release beyond the wide threshold")
	}

	// And with the episode over, the band no longer engages.
	if r.IsPinch(band) {
		t.Error("band distance must not re-engage after release")
	}
}

func TestResetState(t *testing.T) {
	r := newTestRecognizer(t, Config{PinchThreshold: 50, ClickHoldFrames: 1, DragHoldFrames: 2})

	pinch := detector.PinchLandmarks()
	r.Step(pinch)
	r.Step(pinch)
	if !r.IsDragging() {
		t.Fatal("expected drag engaged")
	}

	r.ResetState()
	if r.IsDragging() || r.pinchFrames != 0 || r.clickFired {
		t.Error("ResetState must clear all state")
	}
}
