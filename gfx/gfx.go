// Package gfx manages the display subsystem: the double buffered LCD
// framebuffers, buffer swapping, panel power control and the display
// controller's color lookup table.
//
// Framebuffers are stored rotated by 90 degrees, matching the panels'
// native scan direction: the top LCD buffer is 240 pixels wide and 400
// pixels tall in BGR8.
package gfx

type LCD uint8

const (
	Top LCD = iota
	Bottom
)

type Side uint8

const (
	Left Side = iota
	Right // right eye buffer, only scanned out in stereoscopic mode
)

// Framebuffer dimensions per LCD, rotated.
const (
	TopWidth  = 240
	TopHeight = 400

	BottomWidth  = 240
	BottomHeight = 320

	BytesPerPixel = 3 // BGR8
)

// Display is the display subsystem.
//
// Buffer returns the currently hidden half of an LCD's buffer pair. The
// returned slice is only valid as scratch or transfer target until the
// next Swap, it must never be retained across one. Swap is the sole
// publication point: it atomically makes the hidden half visible to the
// scan-out hardware.
type Display interface {
	Buffer(lcd LCD, side Side) []byte
	Swap()

	SetForceBlack(top, bottom bool)
	PowerOffBacklight(lcd LCD)

	// Color lookup table port of the top display controller. Writes go
	// to the current index, which auto-increments. The table is applied
	// to every pixel during scan-out.
	SetColorLUTIndex(i int)
	WriteColorLUT(v uint32)
}
