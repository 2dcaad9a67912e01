// Package cursor converts fingertip positions in camera-frame space into
// smoothed absolute cursor positions in screen space.
package cursor

import (
	"errors"
	"fmt"
)

// ErrInvalidParameter is returned when a Smoother is constructed with an
// out-of-range smoothing factor.
var ErrInvalidParameter = errors.New("invalid parameter")

// Point is a 2D position. Coordinates stay sub-pixel floats end to end;
// an actuator rounds to device pixels if it must.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Smoother is an exponential moving average filter over a 2D point stream.
// Each axis updates independently as new = prev + alpha*(target - prev).
// Smaller alpha smooths harder and lags more; alpha = 1 is pass-through.
type Smoother struct {
	alpha       float64
	prev        Point
	initialized bool
}

// NewSmoother creates a Smoother with the given factor, which must lie in
// (0, 1].
func NewSmoother(alpha float64) (*Smoother, error) {
	if alpha <= 0 || alpha > 1 {
		return nil, fmt.Errorf("%w: alpha must be in (0, 1], got %v", ErrInvalidParameter, alpha)
	}
	return &Smoother{alpha: alpha}, nil
}

// Smooth blends the target with the previous output and returns the result.
// The first call after construction or Reset returns the target unchanged
// and seeds the internal state with it.
func (s *Smoother) Smooth(target Point) Point {
	if !s.initialized {
		s.prev = target
		s.initialized = true
		return target
	}

	s.prev.X += s.alpha * (target.X - s.prev.X)
	s.prev.Y += s.alpha * (target.Y - s.prev.Y)
	return s.prev
}

// Reset clears the filter state; the next Smooth call behaves as a first
// call. Used when hand tracking is lost so reacquisition does not glide the
// cursor across the screen.
func (s *Smoother) Reset() {
	s.initialized = false
}
