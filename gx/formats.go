package gx

import "encoding/binary"

// Pixel accessors used by the simulated transfer engine. Only the formats
// exercised by the firmware are implemented.

func loadPx(buf []byte, fmt PixFmt, i int) (r, g, b uint8) {
	switch fmt {
	case A1BGR5:
		v := binary.LittleEndian.Uint16(buf[2*i:])
		return expand5(uint8(v >> 11 & 0x1f)), expand5(uint8(v >> 6 & 0x1f)), expand5(uint8(v >> 1 & 0x1f))
	case BGR8:
		return buf[3*i+2], buf[3*i+1], buf[3*i]
	}
	panic("gx: unsupported transfer input format")
}

func storePx(buf []byte, fmt PixFmt, i int, r, g, b uint8) {
	switch fmt {
	case A1BGR5:
		v := uint16(r>>3)<<11 | uint16(g>>3)<<6 | uint16(b>>3)<<1 | 1
		binary.LittleEndian.PutUint16(buf[2*i:], v)
	case BGR8:
		buf[3*i], buf[3*i+1], buf[3*i+2] = b, g, r
	default:
		panic("gx: unsupported transfer output format")
	}
}

func expand5(v uint8) uint8 {
	return v<<3 | v>>2
}
