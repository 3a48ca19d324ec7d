package video

import (
	"encoding/binary"
	"errors"
	"testing"

	"github.com/Exagone313/open-agb-firm/gfx"
	"github.com/Exagone313/open-agb-firm/mcu"
)

func TestInitSequence(t *testing.T) {
	r := newRig()
	startPipeline(t, r, DefaultConfig())

	if top, bottom := r.disp.ForcedBlack(); top || !bottom {
		t.Errorf("forced black top=%t bottom=%t, want only bottom", top, bottom)
	}
	if !r.disp.BacklightOff(gfx.Bottom) {
		t.Error("bottom backlight still on")
	}
	if r.disp.BacklightOff(gfx.Top) {
		t.Error("top backlight powered off")
	}

	events := r.events()
	last := -1
	for _, ev := range []string{"force black", "backlight off", "cap init", "lut index"} {
		i := index(events, ev)
		if i < 0 {
			t.Fatalf("missing %q in %v", ev, events)
		}
		if i < last {
			t.Fatalf("%q out of order in %v", ev, events)
		}
		last = i
	}
	if !r.capt.Running() {
		t.Error("capture not running after init")
	}
}

func TestInit2DSKeepsBacklight(t *testing.T) {
	r := newRig()
	r.clock.Model = mcu.Model2DS
	startPipeline(t, r, DefaultConfig())

	if index(r.events(), "backlight off") >= 0 {
		t.Error("backlight power-off issued on a single panel model")
	}
	if top, bottom := r.disp.ForcedBlack(); top || !bottom {
		t.Errorf("forced black top=%t bottom=%t, want only bottom", top, bottom)
	}
}

func TestInitCaptureFailure(t *testing.T) {
	r := newRig()
	initErr := errors.New("peripheral busy")
	r.capt.InitErr = initErr

	p, err := Init(DefaultConfig(), r.hardware(), r.storage(), discard())
	if !errors.Is(err, initErr) {
		t.Fatalf("got %v, want the capture error", err)
	}
	if p != nil {
		t.Fatal("got a pipeline despite failed init")
	}
}

func TestInitBorder(t *testing.T) {
	const borderSize = gfx.TopWidth * gfx.TopHeight * gfx.BytesPerPixel

	tests := []struct {
		name   string
		scaler uint8
		border []byte
		loaded bool
	}{
		{"unscaled with border", 0, make([]byte, borderSize), true},
		{"unscaled without border", 0, nil, false},
		{"unscaled wrong size", 0, make([]byte, borderSize-1), false},
		{"scaled ignores border", 2, make([]byte, borderSize), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := newRig()
			if tt.border != nil {
				if err := r.store.WriteFile("border.bgr", tt.border); err != nil {
					t.Fatal(err)
				}
			}
			cfg := DefaultConfig()
			cfg.Scaler = tt.scaler
			startPipeline(t, r, cfg)

			loaded := index(r.events(), "ppf tiled") >= 0
			if loaded != tt.loaded {
				t.Errorf("border loaded=%t, want %t", loaded, tt.loaded)
			}
			n, _ := r.engine.Transfers()
			want := 0
			if tt.loaded {
				want = 1
			}
			if n != want {
				t.Errorf("got %d transfers during init, want %d", n, want)
			}
		})
	}
}

func TestBorderSurroundsFrame(t *testing.T) {
	const borderSize = gfx.TopWidth * gfx.TopHeight * gfx.BytesPerPixel
	border := make([]byte, borderSize)
	for i := range border {
		border[i] = 0x55
	}

	r := newRig()
	if err := r.store.WriteFile("border.bgr", border); err != nil {
		t.Fatal(err)
	}
	p := startPipeline(t, r, DefaultConfig())

	// Solid white frame: all five bit channels saturated.
	r.capt.Feed(framePix(240, 160, 0xFFFF))
	r.waitSwap(t)
	p.Exit()

	visible := r.disp.Visible(gfx.Top)

	// Top-left screen corner lies outside the centered 240x160 frame and
	// keeps the border pixel. Rotated layout: column sx, row sy maps to
	// (sx*240 + 239 - sy) * 3.
	corner := visible[(0*gfx.TopWidth + gfx.TopWidth - 1 - 0) * gfx.BytesPerPixel:]
	if corner[0] != 0x55 || corner[1] != 0x55 || corner[2] != 0x55 {
		t.Errorf("border corner overwritten: % x", corner[:3])
	}

	// Screen center is inside the frame and shows the captured pixel.
	center := visible[(200*gfx.TopWidth + gfx.TopWidth - 1 - 120) * gfx.BytesPerPixel:]
	if center[0] != 0xFF || center[1] != 0xFF || center[2] != 0xFF {
		t.Errorf("frame pixel not composited: % x", center[:3])
	}
}

func TestScaledFrameFillsScreen(t *testing.T) {
	r := newRig()
	cfg := DefaultConfig()
	cfg.Scaler = 2
	p := startPipeline(t, r, cfg)

	px := make([]byte, 360*240*2)
	for i := 0; i < 360*240; i++ {
		binary.LittleEndian.PutUint16(px[2*i:], 0xFFFF)
	}
	r.capt.Feed(px)
	r.waitSwap(t)
	p.Exit()

	visible := r.disp.Visible(gfx.Top)
	// 360x240 centered on the 400x240 panel: 20 column margins, no rows
	// to spare. Column 19 is outside, column 20 inside.
	out := visible[(19*gfx.TopWidth + gfx.TopWidth - 1 - 0) * gfx.BytesPerPixel:]
	if out[0] != 0 || out[1] != 0 || out[2] != 0 {
		t.Errorf("margin column written: % x", out[:3])
	}
	in := visible[(20*gfx.TopWidth + gfx.TopWidth - 1 - 0) * gfx.BytesPerPixel:]
	if in[0] != 0xFF || in[1] != 0xFF || in[2] != 0xFF {
		t.Errorf("scaled frame missing at screen edge: % x", in[:3])
	}
}
