package cursor

import (
	"errors"
	"math"
	"testing"
)

const (
	screenW = 1920
	screenH = 1080
	frameW  = 640
	frameH  = 480
)

func near(a, b float64) bool {
	return math.Abs(a-b) <= 1.0
}

func TestMapper_Linearity(t *testing.T) {
	m := NewMapper(screenW, screenH, nil)

	cases := []struct {
		name           string
		xFrame, yFrame int
		wantX, wantY   float64
	}{
		{"origin", 0, 0, 0, 0},
		{"bottom right", frameW, frameH, screenW, screenH},
		{"center", frameW / 2, frameH / 2, screenW / 2.0, screenH / 2.0},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := m.MapAndMove(tc.xFrame, tc.yFrame, frameW, frameH)
			if err != nil {
				t.Fatalf("MapAndMove() error = %v", err)
			}
			if !near(got.X, tc.wantX) || !near(got.Y, tc.wantY) {
				t.Errorf("MapAndMove(%d, %d) = %+v, want within 1 of (%v, %v)",
					tc.xFrame, tc.yFrame, got, tc.wantX, tc.wantY)
			}
		})
	}
}

func TestMapper_InvalidFrameGeometry(t *testing.T) {
	m := NewMapper(screenW, screenH, nil)

	cases := []struct {
		name   string
		fw, fh int
	}{
		{"zero width", 0, frameH},
		{"zero height", frameW, 0},
		{"negative width", -640, frameH},
		{"negative height", frameW, -480},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := m.MapAndMove(100, 100, tc.fw, tc.fh); !errors.Is(err, ErrInvalidFrameGeometry) {
				t.Errorf("MapAndMove error = %v, want ErrInvalidFrameGeometry", err)
			}
		})
	}
}

func TestMapper_NoClamping(t *testing.T) {
	m := NewMapper(screenW, screenH, nil)

	// Landmarks can land outside the frame; the mapped point lands outside
	// the screen without correction.
	got, err := m.MapAndMove(-64, frameH+48, frameW, frameH)
	if err != nil {
		t.Fatalf("MapAndMove() error = %v", err)
	}
	if got.X >= 0 {
		t.Errorf("X = %v, want negative for an out-of-frame landmark", got.X)
	}
	if got.Y <= screenH {
		t.Errorf("Y = %v, want beyond the screen height", got.Y)
	}
}

func TestMapper_WithSmoother(t *testing.T) {
	s, _ := NewSmoother(0.5)
	m := NewMapper(screenW, screenH, s)

	// First frame seeds the smoother, so mapping is exact.
	first, err := m.MapAndMove(0, 0, frameW, frameH)
	if err != nil {
		t.Fatalf("MapAndMove() error = %v", err)
	}
	if first.X != 0 || first.Y != 0 {
		t.Fatalf("first mapped point = %+v, want (0, 0)", first)
	}

	// Second frame blends halfway toward the new target.
	second, err := m.MapAndMove(frameW, frameH, frameW, frameH)
	if err != nil {
		t.Fatalf("MapAndMove() error = %v", err)
	}
	if !near(second.X, screenW/2.0) || !near(second.Y, screenH/2.0) {
		t.Errorf("second mapped point = %+v, want ~(%v, %v)", second, screenW/2.0, screenH/2.0)
	}

	// Reset drops smoothing history; the next mapping is exact again.
	m.Reset()
	third, err := m.MapAndMove(frameW, frameH, frameW, frameH)
	if err != nil {
		t.Fatalf("MapAndMove() error = %v", err)
	}
	if !near(third.X, screenW) || !near(third.Y, screenH) {
		t.Errorf("post-reset mapped point = %+v, want ~(%v, %v)", third, float64(screenW), float64(screenH))
	}
}

func TestMapper_SmootherStateUntouchedOnGeometryError(t *testing.T) {
	s, _ := NewSmoother(0.5)
	m := NewMapper(screenW, screenH, s)

	m.MapAndMove(320, 240, frameW, frameH)
	if _, err := m.MapAndMove(320, 240, 0, 0); err == nil {
		t.Fatal("expected geometry error")
	}

	// The failed call must not have advanced the smoother.
	got, err := m.MapAndMove(320, 240, frameW, frameH)
	if err != nil {
		t.Fatalf("MapAndMove() error = %v", err)
	}
	if !near(got.X, 960) || !near(got.Y, 540) {
		t.Errorf("mapped point after skipped frame = %+v, want ~(960, 540)", got)
	}
}
