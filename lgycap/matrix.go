package lgycap

import (
	"encoding/binary"
	"fmt"
)

// MatrixLen is the number of filter taps per axis: 6 lines of 8
// coefficients in 1.1.14 fixed point.
const MatrixLen = 6 * 8

// Matrix holds the vertical and horizontal scaling filter coefficients.
type Matrix struct {
	V [MatrixLen]int16
	H [MatrixLen]int16
}

// DefaultMatrix is a sharp bilinear x1.5 kernel with slight ringing,
// matching the GBA's 240x160 to 360x240 upscale.
var DefaultMatrix = Matrix{
	V: [MatrixLen]int16{
		0, 0, 0, 0, 0, 0, 0, 0,
		0, 0, 0, 0, 0, 0, 0, 0,
		0, 0x24B0, 0x4000, 0, 0x24B0, 0x4000, 0, 0,
		0x4000, 0x2000, 0, 0x4000, 0x2000, 0, 0, 0,
		0, -0x4B0, 0, 0, -0x4B0, 0, 0, 0,
		0, 0, 0, 0, 0, 0, 0, 0,
	},
	H: [MatrixLen]int16{
		0, 0, 0, 0, 0, 0, 0, 0,
		0, 0, 0, 0, 0, 0, 0, 0,
		0, 0, 0x24B0, 0, 0, 0x24B0, 0, 0,
		0x4000, 0x4000, 0x2000, 0x4000, 0x4000, 0x2000, 0, 0,
		0, 0, -0x4B0, 0, 0, -0x4B0, 0, 0,
		0, 0, 0, 0, 0, 0, 0, 0,
	},
}

// ParseMatrix decodes a matrix override file: exactly 96 little endian
// signed 16-bit values, vertical taps first. Anything else is rejected.
func ParseMatrix(data []byte) (*Matrix, error) {
	if len(data) != 2*2*MatrixLen {
		return nil, fmt.Errorf("scaler matrix: got %d bytes, want %d", len(data), 2*2*MatrixLen)
	}
	m := &Matrix{}
	for i := range m.V {
		m.V[i] = int16(binary.LittleEndian.Uint16(data[2*i:]))
	}
	data = data[2*MatrixLen:]
	for i := range m.H {
		m.H[i] = int16(binary.LittleEndian.Uint16(data[2*i:]))
	}
	return m, nil
}
