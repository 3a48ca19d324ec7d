// Package hid samples the console's buttons.
//
// Scanning the hardware is done elsewhere once per frame, consumers only
// see the latched result of the most recent scan.
package hid

import "sync"

type Keys uint32

const (
	KeyA Keys = 1 << iota
	KeyB
	KeySelect
	KeyStart
	KeyRight
	KeyLeft
	KeyUp
	KeyDown
	KeyR
	KeyL
	KeyX
	KeyY
)

// Sampler reports the button state of the most recent scan.
type Sampler interface {
	// Down returns the keys currently held.
	Down() Keys
	// Pressed returns the keys that transitioned to held with the most
	// recent scan.
	Pressed() Keys
}

// Sim is a Sampler fed by calls to Set. Each Set is one scan.
type Sim struct {
	mu      sync.Mutex
	down    Keys
	pressed Keys
}

// Set latches a new scan result. Edges are computed against the previous
// scan, so holding a key across scans reports it Down but not Pressed.
func (s *Sim) Set(held Keys) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pressed = held &^ s.down
	s.down = held
}

func (s *Sim) Down() Keys {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.down
}

func (s *Sim) Pressed() Keys {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.pressed
}
