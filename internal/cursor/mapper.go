package cursor

import (
	"errors"
	"fmt"
)

// ErrInvalidFrameGeometry is returned for zero or negative frame dimensions.
// The error is local to the offending call; the caller skips the frame and
// the pipeline self-heals on the next valid one.
var ErrInvalidFrameGeometry = errors.New("invalid frame geometry")

// Mapper projects a fingertip position from camera-frame pixel space into
// screen pixel space: normalize by the frame dimensions, scale by the
// screen dimensions, then optionally smooth. It is a direct linear mapping
// with no region-of-interest cropping or aspect correction.
type Mapper struct {
	screenWidth  int
	screenHeight int
	smoother     *Smoother
}

// NewMapper creates a Mapper targeting the given screen resolution. A nil
// smoother skips smoothing and returns raw mapped coordinates.
func NewMapper(screenWidth, screenHeight int, smoother *Smoother) *Mapper {
	return &Mapper{
		screenWidth:  screenWidth,
		screenHeight: screenHeight,
		smoother:     smoother,
	}
}

// MapAndMove converts a frame-space position into a screen-space cursor
// target. Landmark detection can report positions outside the frame, and
// those map to positions outside the screen rectangle without clamping;
// callers needing bounds must clamp the returned point themselves. The
// Mapper computes the target only — actual pointer movement belongs to the
// actuator.
func (m *Mapper) MapAndMove(xFrame, yFrame, frameWidth, frameHeight int) (Point, error) {
	if frameWidth <= 0 || frameHeight <= 0 {
		return Point{}, fmt.Errorf("%w: %dx%d", ErrInvalidFrameGeometry, frameWidth, frameHeight)
	}

	p := Point{
		X: float64(xFrame) / float64(frameWidth) * float64(m.screenWidth),
		Y: float64(yFrame) / float64(frameHeight) * float64(m.screenHeight),
	}

	if m.smoother != nil {
		p = m.smoother.Smooth(p)
	}
	return p, nil
}

// Reset clears the attached smoother, if any. Called on tracking loss.
func (m *Mapper) Reset() {
	if m.smoother != nil {
		m.smoother.Reset()
	}
}
