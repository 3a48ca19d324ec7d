package gx

// Prebuilt P3D command lists for presenting the captured GBA frame. The
// lists are register write streams generated offline, this package selects
// and patches them but does not author them.
//
// GbaInitList brings up the full render state (shaders, texturing, output
// merger) and draws one frame. It is submitted exactly once per session.
// GbaList2 only invalidates the texture cache and redraws, it is submitted
// for every subsequent frame.

var GbaInitList = []uint32{
	0x000f0111, 0x00000001, 0x000f0110, 0x00000003,
	0x000f0040, 0x00000000, 0x000f004d, 0x3f000000,
	0x000f004e, 0x3f000000, 0x000f0080, 0x00011001,
	0x000f0083, 0x00001a26, 0x000f0085, 0x18000000,
	0x000f008e, 0x00006006, 0x000f0100, 0x00e40100,
	0x000f0101, 0x01010000, 0x000f0107, 0x00000001,
	0x000f011c, 0x18200000, 0x000f011e, 0x00000009,
	0x00010253, 0x00000000, 0x000f0232, 0x43700000,
	0x000f0233, 0x43200000, 0x000f022e, 0x00000001,
	0x000f022f, 0x00000001, 0x00010245, 0x00000000,
	0x000f0231, 0x00000001, 0x00010111, 0x00000001,
}

var GbaList2 = []uint32{
	0x000f0110, 0x00000003, 0x00010253, 0x00000000,
	0x000f0232, 0x43700000, 0x000f0233, 0x43200000,
	0x00010245, 0x00000000, 0x000f0231, 0x00000001,
	0x00010111, 0x00000001,
}

// Word offsets of the output rectangle's width and height (IEEE 754 bits)
// in each list.
const (
	initDimW, initDimH     = 31, 33
	steadyDimW, steadyDimH = 5, 7
)

// Float bit patterns of the two supported output rectangles.
const (
	dim240 = 0x43700000 // 240.0
	dim160 = 0x43200000 // 160.0
	dim360 = 0x43b40000 // 360.0
)

// PatchGbaLists rewrites the output rectangle of both command lists for
// the requested scaler level: 240x160 for the unscaled levels, 360x240
// when hardware scaling is enabled. Patching is absolute, calling it again
// with another level is safe.
func PatchGbaLists(scaler uint8) {
	w, h := uint32(dim240), uint32(dim160)
	if scaler > 1 {
		w, h = dim360, dim240
	}
	GbaInitList[initDimW], GbaInitList[initDimH] = w, h
	GbaList2[steadyDimW], GbaList2[steadyDimH] = w, h
}
