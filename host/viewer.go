// Package host runs the simulated console hardware on a desktop machine:
// an ebiten window stands in for the top LCD's scan-out and the keyboard
// for the button hardware.
package host

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/Exagone313/open-agb-firm/gfx"
	"github.com/Exagone313/open-agb-firm/hid"
)

// Screen dimensions of the top LCD, unrotated.
const (
	ScreenW = gfx.TopHeight
	ScreenH = gfx.TopWidth
)

var keymap = map[ebiten.Key]hid.Keys{
	ebiten.KeyX:          hid.KeyA,
	ebiten.KeyZ:          hid.KeyB,
	ebiten.KeyS:          hid.KeyX,
	ebiten.KeyA:          hid.KeyY,
	ebiten.KeyQ:          hid.KeyL,
	ebiten.KeyW:          hid.KeyR,
	ebiten.KeyEnter:      hid.KeyStart,
	ebiten.KeyShiftRight: hid.KeySelect,
	ebiten.KeyRight:      hid.KeyRight,
	ebiten.KeyLeft:       hid.KeyLeft,
	ebiten.KeyUp:         hid.KeyUp,
	ebiten.KeyDown:       hid.KeyDown,
}

// Viewer presents the visible framebuffer half and feeds keyboard state
// into the input sampler, once per display refresh.
type Viewer struct {
	disp *gfx.Sim
	in   *hid.Sim
	pix  []byte // RGBA scratch, ScreenW x ScreenH
}

func NewViewer(disp *gfx.Sim, in *hid.Sim) *Viewer {
	return &Viewer{
		disp: disp,
		in:   in,
		pix:  make([]byte, ScreenW*ScreenH*4),
	}
}

func (v *Viewer) Update() error {
	var held hid.Keys
	for key, mask := range keymap {
		if ebiten.IsKeyPressed(key) {
			held |= mask
		}
	}
	v.in.Set(held)
	return nil
}

// Draw performs the scan-out: it unrotates the visible buffer half and
// applies the display controller's color lookup table, like the PDC does
// per pixel on hardware.
func (v *Viewer) Draw(screen *ebiten.Image) {
	buf := v.disp.Visible(gfx.Top)
	lut := v.disp.ColorLUT()
	for sy := 0; sy < ScreenH; sy++ {
		for sx := 0; sx < ScreenW; sx++ {
			off := (sx*gfx.TopWidth + gfx.TopWidth - 1 - sy) * 3
			b, g, r := buf[off], buf[off+1], buf[off+2]
			out := v.pix[(sy*ScreenW+sx)*4:]
			out[0] = uint8(lut[r] >> 16)
			out[1] = uint8(lut[g] >> 8)
			out[2] = uint8(lut[b])
			out[3] = 0xff
		}
	}
	screen.WritePixels(v.pix)
}

func (v *Viewer) Layout(outsideWidth, outsideHeight int) (int, int) {
	return ScreenW, ScreenH
}

// Run opens the window and blocks until it is closed.
func Run(v *Viewer, title string) error {
	ebiten.SetWindowSize(ScreenW*2, ScreenH*2)
	ebiten.SetWindowTitle(title)
	return ebiten.RunGame(v)
}
