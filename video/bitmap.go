package video

import "encoding/binary"

// Dump artifact layout: BITMAPFILEHEADER, BITMAPINFOHEADER with
// BI_BITFIELDS channel masks, then the raw 16 bit pixel payload. The
// pixel data starts at a transfer-friendly 128 byte offset, the gap after
// the masks is zero.

const (
	bmpMagic    = 0x4D42 // "BM"
	biBitfields = 3

	dumpPixelOffset = 0x80

	// A1BGR5 channel masks, alpha ignored.
	maskR = 0xF800
	maskG = 0x07C0
	maskB = 0x003E
)

// putBmpHeader writes the headers for a w x h top-down 16bpp dump into
// b[:dumpPixelOffset]. The negative height declares top-down row order.
func putBmpHeader(b []byte, w, h int) {
	imageSize := w * h * 2

	for i := range b[:dumpPixelOffset] {
		b[i] = 0
	}

	// BITMAPFILEHEADER
	binary.LittleEndian.PutUint16(b[0:], bmpMagic)
	binary.LittleEndian.PutUint32(b[2:], uint32(dumpPixelOffset+imageSize))
	binary.LittleEndian.PutUint32(b[10:], dumpPixelOffset)

	// BITMAPINFOHEADER
	binary.LittleEndian.PutUint32(b[14:], 40)
	binary.LittleEndian.PutUint32(b[18:], uint32(w))
	binary.LittleEndian.PutUint32(b[22:], uint32(-int32(h)))
	binary.LittleEndian.PutUint16(b[26:], 1) // color planes
	binary.LittleEndian.PutUint16(b[28:], 16)
	binary.LittleEndian.PutUint32(b[30:], biBitfields)
	binary.LittleEndian.PutUint32(b[34:], uint32(imageSize))

	// Channel bit masks
	binary.LittleEndian.PutUint32(b[54:], maskR)
	binary.LittleEndian.PutUint32(b[58:], maskG)
	binary.LittleEndian.PutUint32(b[62:], maskB)
}
