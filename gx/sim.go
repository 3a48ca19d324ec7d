package gx

import (
	"encoding/binary"
	"math"
)

// Sim is a simulated Engine. Submitted work completes synchronously, the
// wait calls exist to satisfy the submission protocol and are counted so
// ordering can be inspected.
//
// Tiled output (OutTiled) is recorded in the transfer flags but stored
// linear, the tiling layout is an internal representation detail with no
// observable effect on the simulated paths.
type Sim struct {
	tex    []byte
	render []byte

	lists, transfers int
	lastFlags        TransferFlags
}

func NewSim() *Sim {
	return &Sim{
		tex:    make([]byte, TexDim*TexDim*2),
		render: make([]byte, RenderW*RenderH*3),
	}
}

func (s *Sim) FrameTex() []byte  { return s.tex }
func (s *Sim) RenderBuf() []byte { return s.render }

// ProcessCommandList executes a register write stream. The only semantics
// the simulation implements is the final draw: the frame rectangle
// configured by the stream is read from the frame texture and composited
// centered and display-rotated over the render buffer. Pixels outside the
// rectangle (the border) are left intact.
func (s *Sim) ProcessCommandList(list []uint32) {
	s.lists++
	w, h := listDims(list)
	sx0, sy0 := (RenderH-w)/2, (RenderW-h)/2
	for fy := 0; fy < h; fy++ {
		for fx := 0; fx < w; fx++ {
			v := binary.LittleEndian.Uint16(s.tex[(fy*TexDim+fx)*2:])
			r := expand5(uint8(v >> 11 & 0x1f))
			g := expand5(uint8(v >> 6 & 0x1f))
			b := expand5(uint8(v >> 1 & 0x1f))
			sx, sy := sx0+fx, sy0+fy
			off := (sx*RenderW + RenderW - 1 - sy) * 3
			s.render[off], s.render[off+1], s.render[off+2] = b, g, r
		}
	}
}

// listDims extracts the output rectangle from the register write stream.
func listDims(list []uint32) (w, h int) {
	w, h = 240, 160
	for i := 0; i+1 < len(list); i += 2 {
		switch list[i] {
		case 0x000f0232:
			w = int(math.Float32frombits(list[i+1]))
		case 0x000f0233:
			h = int(math.Float32frombits(list[i+1]))
		}
	}
	return
}

func (s *Sim) WaitP3D() {}

func (s *Sim) DisplayTransfer(src []byte, srcDim Dim, dst []byte, dstDim Dim, flags TransferFlags) {
	s.transfers++
	s.lastFlags = flags
	w, h := dstDim.W(), dstDim.H()
	stride := srcDim.W()
	in, out := flags.InFmt(), flags.OutFmt()
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			r, g, b := loadPx(src, in, y*stride+x)
			storePx(dst, out, y*w+x, r, g, b)
		}
	}
}

func (s *Sim) WaitPPF() {}

// Lists returns the number of command lists processed.
func (s *Sim) Lists() int { return s.lists }

// Transfers returns the number of display transfers performed and the
// flags of the most recent one.
func (s *Sim) Transfers() (int, TransferFlags) { return s.transfers, s.lastFlags }
