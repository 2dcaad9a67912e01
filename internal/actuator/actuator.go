// Package actuator abstracts OS-level pointer injection. The core pipeline
// never calls an actuator directly; the frame loop translates mapper output
// and gesture events into these four operations.
package actuator

import "sync"

// Actuator is the pointer backend contract. MoveTo receives continuous
// screen coordinates; Click is an instantaneous down+up pulse; Press and
// Release are the level transitions used for dragging.
type Actuator interface {
	MoveTo(x, y float64) error
	Click() error
	Press() error
	Release() error

	// Close releases any resources held by the backend.
	Close() error
}

// Move is a recorded MoveTo call.
type Move struct {
	X, Y float64
}

// Mock records every call for tests. It is safe for concurrent use so an
// integration test can inspect it while the frame loop runs.
type Mock struct {
	mu       sync.Mutex
	moves    []Move
	clicks   int
	presses  int
	releases int
}

// NewMock creates an empty Mock actuator.
func NewMock() *Mock {
	return &Mock{}
}

func (m *Mock) MoveTo(x, y float64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.moves = append(m.moves, Move{X: x, Y: y})
	return nil
}

func (m *Mock) Click() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.clicks++
	return nil
}

func (m *Mock) Press() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.presses++
	return nil
}

func (m *Mock) Release() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.releases++
	return nil
}

func (m *Mock) Close() error { return nil }

// Moves returns a copy of the recorded MoveTo calls.
func (m *Mock) Moves() []Move {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]Move, len(m.moves))
	copy(out, m.moves)
	return out
}

// Clicks returns the number of recorded Click calls.
func (m *Mock) Clicks() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.clicks
}

// Presses returns the number of recorded Press calls.
func (m *Mock) Presses() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.presses
}

// Releases returns the number of recorded Release calls.
func (m *Mock) Releases() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.releases
}
