//go:build !linux

package actuator

import "errors"

// Uinput is only available on Linux.
type Uinput struct{}

// NewUinput reports that the uinput backend is unsupported on this platform.
func NewUinput(screenWidth, screenHeight int) (*Uinput, error) {
	return nil, errors.New("uinput is only supported on linux")
}

func (u *Uinput) MoveTo(x, y float64) error { return errors.New("uinput unsupported") }
func (u *Uinput) Click() error              { return errors.New("uinput unsupported") }
func (u *Uinput) Press() error              { return errors.New("uinput unsupported") }
func (u *Uinput) Release() error            { return errors.New("uinput unsupported") }
func (u *Uinput) Close() error              { return nil }
