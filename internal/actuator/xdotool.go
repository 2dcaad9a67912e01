package actuator

import (
	"context"
	"fmt"
	"os/exec"
	"strconv"
	"strings"
	"time"
)

// Xdotool drives the pointer through the xdotool command-line utility. It is
// the fallback backend where /dev/uinput is unavailable or unwritable. Every
// call runs a short subprocess under a deadline so a wedged X session cannot
// stall the frame loop indefinitely.
type Xdotool struct {
	binary  string
	timeout time.Duration
}

// NewXdotool creates the backend, verifying the binary is on PATH.
func NewXdotool() (*Xdotool, error) {
	path, err := exec.LookPath("xdotool")
	if err != nil {
		return nil, fmt.Errorf("xdotool not found: %w", err)
	}
	return &Xdotool{
		binary:  path,
		timeout: 2 * time.Second,
	}, nil
}

func (x *Xdotool) run(args ...string) error {
	ctx, cancel := context.WithTimeout(context.Background(), x.timeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, x.binary, args...)
	out, err := cmd.CombinedOutput()

	if ctx.Err() == context.DeadlineExceeded {
		return fmt.Errorf("xdotool timeout after %v", x.timeout)
	}
	if err != nil {
		if len(out) > 0 {
			return fmt.Errorf("xdotool %s: %w: %s", args[0], err, strings.TrimSpace(string(out)))
		}
		return fmt.Errorf("xdotool %s: %w", args[0], err)
	}
	return nil
}

// MoveTo positions the pointer at absolute screen coordinates.
func (x *Xdotool) MoveTo(xPos, yPos float64) error {
	return x.run("mousemove",
		strconv.Itoa(int(xPos+0.5)),
		strconv.Itoa(int(yPos+0.5)),
	)
}

// Click issues a full left-button down+up pulse.
func (x *Xdotool) Click() error {
	return x.run("click", "1")
}

// Press holds the left button down.
func (x *Xdotool) Press() error {
	return x.run("mousedown", "1")
}

// Release lets the left button up.
func (x *Xdotool) Release() error {
	return x.run("mouseup", "1")
}

// Close is a no-op; each call is its own subprocess.
func (x *Xdotool) Close() error { return nil }

// DisplaySize queries the primary display geometry via xdotool. Returns an
// error when the binary is missing or the display cannot be queried; the
// caller falls back to configured dimensions.
func DisplaySize() (width, height int, err error) {
	path, err := exec.LookPath("xdotool")
	if err != nil {
		return 0, 0, fmt.Errorf("xdotool not found: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	out, err := exec.CommandContext(ctx, path, "getdisplaygeometry").Output()
	if err != nil {
		return 0, 0, fmt.Errorf("query display geometry: %w", err)
	}

	fields := strings.Fields(strings.TrimSpace(string(out)))
	if len(fields) != 2 {
		return 0, 0, fmt.Errorf("unexpected geometry output %q", strings.TrimSpace(string(out)))
	}

	width, err = strconv.Atoi(fields[0])
	if err != nil {
		return 0, 0, fmt.Errorf("parse display width: %w", err)
	}
	height, err = strconv.Atoi(fields[1])
	if err != nil {
		return 0, 0, fmt.Errorf("parse display height: %w", err)
	}
	return width, height, nil
}
