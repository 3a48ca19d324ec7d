package gfx

import "sync/atomic"

// Sim is a simulated Display. It keeps one buffer pair per LCD and tracks
// which half is being scanned out. The swap flips an atomic index, like
// the single framebuffer address register write on hardware.
//
// Stereoscopic mode is not simulated, both sides alias the same pair.
type Sim struct {
	bufs    [2][2][]byte
	visible [2]atomic.Int32

	lutIndex int
	lut      [256]uint32

	forcedBlackTop, forcedBlackBottom bool
	backlightOff                      [2]bool
	swaps                             atomic.Int32
}

func NewSim() *Sim {
	s := &Sim{}
	for i := range 2 {
		s.bufs[Top][i] = make([]byte, TopWidth*TopHeight*BytesPerPixel)
		s.bufs[Bottom][i] = make([]byte, BottomWidth*BottomHeight*BytesPerPixel)
	}
	return s
}

func (s *Sim) Buffer(lcd LCD, side Side) []byte {
	return s.bufs[lcd][1-s.visible[lcd].Load()]
}

func (s *Sim) Swap() {
	for lcd := LCD(0); lcd <= Bottom; lcd++ {
		s.visible[lcd].Store(1 - s.visible[lcd].Load())
	}
	s.swaps.Add(1)
}

// Visible returns the half currently scanned out. The pixel data may be
// overwritten concurrently after the next swap, callers should copy.
func (s *Sim) Visible(lcd LCD) []byte {
	return s.bufs[lcd][s.visible[lcd].Load()]
}

// Swaps returns the number of buffer swaps so far.
func (s *Sim) Swaps() int {
	return int(s.swaps.Load())
}

func (s *Sim) SetForceBlack(top, bottom bool) {
	s.forcedBlackTop, s.forcedBlackBottom = top, bottom
}

func (s *Sim) PowerOffBacklight(lcd LCD) {
	s.backlightOff[lcd] = true
}

// ForcedBlack reports the force-black state of both panels.
func (s *Sim) ForcedBlack() (top, bottom bool) {
	return s.forcedBlackTop, s.forcedBlackBottom
}

// BacklightOff reports whether an LCD's backlight was powered off.
func (s *Sim) BacklightOff(lcd LCD) bool {
	return s.backlightOff[lcd]
}

func (s *Sim) SetColorLUTIndex(i int) {
	s.lutIndex = i & 0xff
}

func (s *Sim) WriteColorLUT(v uint32) {
	s.lut[s.lutIndex] = v
	s.lutIndex = (s.lutIndex + 1) & 0xff
}

// ColorLUT returns the current color lookup table contents.
func (s *Sim) ColorLUT() [256]uint32 {
	return s.lut
}
