package detector

import (
	"gocv.io/x/gocv"
)

// MockDetector is a test implementation of the Detector interface.
// It plays back a scripted sequence of observations, one per Detect call,
// holding the last observation once the script runs out.
type MockDetector struct {
	frames [][]Landmark
	index  int
	err    error
}

// NewMockDetector creates a new MockDetector instance.
func NewMockDetector() *MockDetector {
	return &MockDetector{}
}

// SetFrames sets the observation sequence returned by successive Detect calls.
func (m *MockDetector) SetFrames(frames [][]Landmark) {
	m.frames = frames
	m.index = 0
}

// SetHand sets a single observation repeated for every Detect call.
func (m *MockDetector) SetHand(landmarks []Landmark) {
	m.SetFrames([][]Landmark{landmarks})
}

// SetError sets the error that will be returned by Detect.
func (m *MockDetector) SetError(err error) {
	m.err = err
}

// Detect returns the next scripted observation or the configured error.
func (m *MockDetector) Detect(frame *gocv.Mat) ([]Landmark, error) {
	if m.err != nil {
		return nil, m.err
	}
	if len(m.frames) == 0 {
		return nil, nil
	}
	obs := m.frames[m.index]
	if m.index < len(m.frames)-1 {
		m.index++
	}
	return obs, nil
}

// Close is a no-op for the mock detector.
func (m *MockDetector) Close() error {
	return nil
}

// PinchLandmarks returns an observation with thumb and index tips close
// enough together to register as a pinch at the default threshold.
func PinchLandmarks() []Landmark {
	return []Landmark{
		{ID: ThumbTip, X: 100, Y: 100},
		{ID: IndexTip, X: 120, Y: 110},
	}
}

// ApartLandmarks returns an observation with the tips well separated,
// so no pinch registers.
func ApartLandmarks() []Landmark {
	return []Landmark{
		{ID: ThumbTip, X: 100, Y: 100},
		{ID: IndexTip, X: 250, Y: 250},
	}
}

// MissingTipLandmarks returns an observation that lacks the index tip.
// Gesture logic must treat it the same as an empty observation.
func MissingTipLandmarks() []Landmark {
	return []Landmark{
		{ID: ThumbTip, X: 100, Y: 100},
		{ID: MiddleTip, X: 140, Y: 90},
	}
}

// FullHandLandmarks returns a complete 21-point observation with the index
// tip at the given position and the thumb tip at the given offset from it.
// The remaining points are filled in around the wrist; only the two tips
// matter to the pointer logic.
func FullHandLandmarks(indexX, indexY, thumbDX, thumbDY int) []Landmark {
	landmarks := make([]Landmark, 0, NumLandmarks)
	for id := 0; id < NumLandmarks; id++ {
		switch id {
		case IndexTip:
			landmarks = append(landmarks, Landmark{ID: id, X: indexX, Y: indexY})
		case ThumbTip:
			landmarks = append(landmarks, Landmark{ID: id, X: indexX + thumbDX, Y: indexY + thumbDY})
		default:
			landmarks = append(landmarks, Landmark{ID: id, X: indexX + 5*id, Y: indexY + 3*id})
		}
	}
	return landmarks
}
