// Package detector provides hand detection interfaces and types for the
// airpoint touchless pointer.
package detector

import "math"

// Hand landmark indices following MediaPipe convention.
// See: https://developers.google.com/mediapipe/solutions/vision/hand_landmarker
const (
	Wrist        = 0
	ThumbCMC     = 1
	ThumbMCP     = 2
	ThumbIP      = 3
	ThumbTip     = 4
	IndexMCP     = 5
	IndexPIP     = 6
	IndexDIP     = 7
	IndexTip     = 8
	MiddleMCP    = 9
	MiddlePIP    = 10
	MiddleDIP    = 11
	MiddleTip    = 12
	RingMCP      = 13
	RingPIP      = 14
	RingDIP      = 15
	RingTip      = 16
	PinkyMCP     = 17
	PinkyPIP     = 18
	PinkyDIP     = 19
	PinkyTip     = 20
	NumLandmarks = 21
)

// Landmark is a single tracked hand point in camera-frame pixel coordinates.
type Landmark struct {
	ID int `json:"id"`
	X  int `json:"x"`
	Y  int `json:"y"`
}

// PointOf returns the pixel coordinates of the landmark with the given id.
// Observations hold at most 21 entries and are unordered, so a linear scan
// is fine.
func PointOf(landmarks []Landmark, id int) (x, y int, ok bool) {
	for _, lm := range landmarks {
		if lm.ID == id {
			return lm.X, lm.Y, true
		}
	}
	return 0, 0, false
}

// TipDistance returns the Euclidean distance in pixels between the thumb tip
// and the index tip of an observation. The second return value is false when
// either tip is missing, which gesture logic treats the same as no hand.
func TipDistance(landmarks []Landmark) (float64, bool) {
	tx, ty, ok := PointOf(landmarks, ThumbTip)
	if !ok {
		return 0, false
	}
	ix, iy, ok := PointOf(landmarks, IndexTip)
	if !ok {
		return 0, false
	}
	dx := float64(ix - tx)
	dy := float64(iy - ty)
	return math.Sqrt(dx*dx + dy*dy), true
}
