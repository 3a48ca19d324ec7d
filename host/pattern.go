package host

import "encoding/binary"

// TestFrame renders frame t of a moving color gradient as w x h A1BGR5
// pixels. It stands in for the GBA subsystem's video output when no real
// source is attached.
func TestFrame(t, w, h int) []byte {
	pix := make([]byte, w*h*2)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			r := uint16(x * 31 / (w - 1))
			g := uint16(y * 31 / (h - 1))
			b := uint16((x + y + t) / 8 % 32)
			v := r<<11 | g<<6 | b<<1 | 1
			binary.LittleEndian.PutUint16(pix[(y*w+x)*2:], v)
		}
	}
	return pix
}
