// Package lgycap drives the legacy video capture peripheral, which ingests
// frames from the GBA subsystem into the GPU's frame texture. The hardware
// optionally applies a separable polyphase up-scaling filter while
// capturing.
package lgycap

import "github.com/Exagone313/open-agb-firm/kev"

// Cnt holds the peripheral's control register flags.
type Cnt uint32

const (
	FmtABGR8 Cnt = iota << 0 // output pixel format field
	FmtA1BGR5
	FmtABGR4
	FmtRGB565
)

const (
	RotNone Cnt = iota << 2 // output rotation field
	Rot90
	Rot180
	Rot270
)

const (
	Swizzle  Cnt = 1 << 4 // write output in 8x8 tiled order
	VScaleEn Cnt = 1 << 5
	HScaleEn Cnt = 1 << 6
)

// Config fully describes a capture session. Width and Height are the
// dimensions written out per frame, after scaling if enabled.
type Config struct {
	Cnt    Cnt
	Width  uint16
	Height uint16

	// Scaling filter setup. Len taps are active per output pixel,
	// selected by the pattern bits.
	VLen, HLen   uint8
	VPatt, HPatt uint8
	Matrix       Matrix
}

// Device is the capture peripheral. Init configures the hardware, starts
// capture and returns the frame-ready event. Init is not reentrant, it
// must be called exactly once per capture session, balanced by Deinit.
// Deinit stops capture and closes the ready event, which terminates any
// task waiting on it.
type Device interface {
	Init(cfg *Config) (*kev.Event, error)
	Start()
	Stop()
	Deinit()
}
