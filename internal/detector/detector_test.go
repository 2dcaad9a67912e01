package detector

import (
	"errors"
	"math"
	"testing"
)

func TestPointOf(t *testing.T) {
	landmarks := []Landmark{
		{ID: Wrist, X: 320, Y: 400},
		{ID: ThumbTip, X: 100, Y: 100},
		{ID: IndexTip, X: 120, Y: 110},
	}

	x, y, ok := PointOf(landmarks, IndexTip)
	if !ok {
		t.Fatal("expected index tip to be found")
	}
	if x != 120 || y != 110 {
		t.Errorf("PointOf(IndexTip) = (%d, %d), want (120, 110)", x, y)
	}

	if _, _, ok := PointOf(landmarks, PinkyTip); ok {
		t.Error("expected missing landmark to report ok=false")
	}

	if _, _, ok := PointOf(nil, ThumbTip); ok {
		t.Error("expected empty observation to report ok=false")
	}
}

func TestTipDistance(t *testing.T) {
	landmarks := []Landmark{
		{ID: ThumbTip, X: 0, Y: 0},
		{ID: IndexTip, X: 3, Y: 4},
	}

	dist, ok := TipDistance(landmarks)
	if !ok {
		t.Fatal("expected both tips to be found")
	}
	if math.Abs(dist-5.0) > 1e-9 {
		t.Errorf("TipDistance = %f, want 5.0", dist)
	}
}

func TestTipDistance_MissingTips(t *testing.T) {
	cases := []struct {
		name      string
		landmarks []Landmark
	}{
		{"empty", nil},
		{"no thumb", []Landmark{{ID: IndexTip, X: 10, Y: 10}}},
		{"no index", []Landmark{{ID: ThumbTip, X: 10, Y: 10}}},
		{"neither tip", MissingTipLandmarks()[1:]},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, ok := TipDistance(tc.landmarks); ok {
				t.Error("expected ok=false for observation lacking a tip")
			}
		})
	}
}

func TestMockDetector_Sequence(t *testing.T) {
	mock := NewMockDetector()
	mock.SetFrames([][]Landmark{
		PinchLandmarks(),
		nil,
		ApartLandmarks(),
	})

	first, err := mock.Detect(nil)
	if err != nil {
		t.Fatalf("Detect() error = %v", err)
	}
	if _, _, ok := PointOf(first, ThumbTip); !ok {
		t.Error("expected first frame to contain the thumb tip")
	}

	second, _ := mock.Detect(nil)
	if len(second) != 0 {
		t.Errorf("expected empty second frame, got %d landmarks", len(second))
	}

	// Last frame is held once the script runs out.
	for i := 0; i < 3; i++ {
		last, _ := mock.Detect(nil)
		if _, _, ok := PointOf(last, IndexTip); !ok {
			t.Fatalf("call %d: expected held last frame with index tip", i)
		}
	}
}

func TestMockDetector_Error(t *testing.T) {
	mock := NewMockDetector()
	wantErr := errors.New("detector offline")
	mock.SetError(wantErr)

	if _, err := mock.Detect(nil); !errors.Is(err, wantErr) {
		t.Errorf("Detect() error = %v, want %v", err, wantErr)
	}
}

func TestFullHandLandmarks(t *testing.T) {
	landmarks := FullHandLandmarks(320, 240, 15, -10)

	if len(landmarks) != NumLandmarks {
		t.Fatalf("expected %d landmarks, got %d", NumLandmarks, len(landmarks))
	}

	ix, iy, ok := PointOf(landmarks, IndexTip)
	if !ok || ix != 320 || iy != 240 {
		t.Errorf("index tip = (%d, %d, %v), want (320, 240, true)", ix, iy, ok)
	}

	tx, ty, ok := PointOf(landmarks, ThumbTip)
	if !ok || tx != 335 || ty != 230 {
		t.Errorf("thumb tip = (%d, %d, %v), want (335, 230, true)", tx, ty, ok)
	}
}
