// Package gx exposes the GPU complex: the P3D command list processor and
// the PPF transfer engine.
//
// The P3D executes prebuilt command lists against the internal render
// buffer. The PPF copies between buffers while converting pixel formats,
// cropping and optionally tiling the output. Both are separate hardware
// execution contexts, callers submit work and then block on the matching
// wait call. Waits must be issued in submission order since later stages
// consume earlier output.
package gx

// PixFmt enumerates the transfer engine's pixel formats.
type PixFmt uint32

const (
	ABGR8 PixFmt = iota
	BGR8
	RGB565
	A1BGR5
	ABGR4
)

// TransferFlags control a single PPF transfer.
type TransferFlags uint32

const (
	CropEn   TransferFlags = 1 << 0 // read only the output rectangle from the source
	OutTiled TransferFlags = 1 << 1 // write output in 8x8 tiled order
)

func InFmt(f PixFmt) TransferFlags  { return TransferFlags(f) << 8 }
func OutFmt(f PixFmt) TransferFlags { return TransferFlags(f) << 12 }

func (f TransferFlags) InFmt() PixFmt  { return PixFmt(f >> 8 & 0x7) }
func (f TransferFlags) OutFmt() PixFmt { return PixFmt(f >> 12 & 0x7) }

// Dim is a packed width/height pair as written to the PPF dimension
// registers.
type Dim uint32

func MakeDim(w, h int) Dim {
	return Dim(uint32(w)&0xffff | uint32(h)<<16)
}

func (d Dim) W() int { return int(d & 0xffff) }
func (d Dim) H() int { return int(d >> 16) }

// Geometry of the GPU's capture-side memory. The capture peripheral writes
// frames into the frame texture, the P3D renders them into the render
// buffer, which has the top LCD's rotated layout.
const (
	TexDim  = 512 // frame texture is TexDim x TexDim A1BGR5
	RenderW = 240 // render buffer width, BGR8
	RenderH = 400
)

// Engine is the GPU complex.
type Engine interface {
	// ProcessCommandList submits an opaque prebuilt command list to the
	// P3D. Completion must be awaited with WaitP3D before the render
	// buffer is read.
	ProcessCommandList(list []uint32)
	WaitP3D()

	// DisplayTransfer starts a PPF copy from src to dst with format
	// conversion. With CropEn, only the dstDim rectangle is read from
	// the srcDim-shaped source. Completion must be awaited with
	// WaitPPF.
	DisplayTransfer(src []byte, srcDim Dim, dst []byte, dstDim Dim, flags TransferFlags)
	WaitPPF()

	// FrameTex returns the capture frame texture, RenderBuf the render
	// buffer. Both stay valid for the engine's lifetime.
	FrameTex() []byte
	RenderBuf() []byte
}
