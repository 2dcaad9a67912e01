package actuator

import (
	"sync"
	"testing"
)

func TestMock_RecordsCalls(t *testing.T) {
	m := NewMock()

	m.MoveTo(100.5, 200.25)
	m.MoveTo(101, 201)
	m.Click()
	m.Press()
	m.Release()
	m.Release()

	moves := m.Moves()
	if len(moves) != 2 {
		t.Fatalf("expected 2 moves, got %d", len(moves))
	}
	if moves[0] != (Move{X: 100.5, Y: 200.25}) {
		t.Errorf("first move = %+v", moves[0])
	}
	if m.Clicks() != 1 {
		t.Errorf("Clicks = %d, want 1", m.Clicks())
	}
	if m.Presses() != 1 {
		t.Errorf("Presses = %d, want 1", m.Presses())
	}
	if m.Releases() != 2 {
		t.Errorf("Releases = %d, want 2", m.Releases())
	}
}

func TestMock_ConcurrentAccess(t *testing.T) {
	m := NewMock()

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				m.MoveTo(float64(n), float64(j))
				m.Click()
			}
		}(i)
	}
	wg.Wait()

	if got := len(m.Moves()); got != 800 {
		t.Errorf("moves = %d, want 800", got)
	}
	if got := m.Clicks(); got != 800 {
		t.Errorf("clicks = %d, want 800", got)
	}
}

// Interface conformance checks for the real backends.
var (
	_ Actuator = (*Mock)(nil)
	_ Actuator = (*Xdotool)(nil)
	_ Actuator = (*Uinput)(nil)
)
