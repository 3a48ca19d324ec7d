package video

import (
	"encoding/binary"
	"testing"

	"github.com/Exagone313/open-agb-firm/lgycap"
)

func testPipeline(r *rig, cfg Config) *Pipeline {
	return &Pipeline{
		cfg: cfg,
		hw:  r.hardware(),
		st:  r.storage(),
		log: discard(),
	}
}

func TestScalerMatrixDefaultWhenAbsent(t *testing.T) {
	r := newRig()
	p := testPipeline(r, DefaultConfig())
	if got := p.loadScalerMatrix(); got != lgycap.DefaultMatrix {
		t.Error("missing override file: want the default matrix")
	}
}

func TestScalerMatrixOverride(t *testing.T) {
	r := newRig()
	data := make([]byte, 2*2*lgycap.MatrixLen)
	for i := 0; i < 2*lgycap.MatrixLen; i++ {
		binary.LittleEndian.PutUint16(data[2*i:], uint16(int16(i-lgycap.MatrixLen)))
	}
	if err := r.store.WriteFile(matrixFile, data); err != nil {
		t.Fatal(err)
	}

	p := testPipeline(r, DefaultConfig())
	m := p.loadScalerMatrix()
	for i := range m.V {
		if want := int16(i - lgycap.MatrixLen); m.V[i] != want {
			t.Fatalf("V[%d]: got %d, want %d", i, m.V[i], want)
		}
	}
	for i := range m.H {
		if want := int16(i); m.H[i] != want {
			t.Fatalf("H[%d]: got %d, want %d", i, m.H[i], want)
		}
	}
}

func TestScalerMatrixMalformedFallsBack(t *testing.T) {
	for _, size := range []int{0, 191, 193, 384} {
		r := newRig()
		if err := r.store.WriteFile(matrixFile, make([]byte, size)); err != nil {
			t.Fatal(err)
		}
		p := testPipeline(r, DefaultConfig())
		if got := p.loadScalerMatrix(); got != lgycap.DefaultMatrix {
			t.Errorf("%d byte override file: want the default matrix", size)
		}
	}
}

func TestSetupFrameCapture(t *testing.T) {
	tests := []struct {
		scaler uint8
		w, h   uint16
		scaled bool
	}{
		{0, 240, 160, false},
		{1, 240, 160, false},
		{2, 360, 240, true},
		{3, 360, 240, true},
	}
	for _, tt := range tests {
		r := newRig()
		cfg := DefaultConfig()
		cfg.Scaler = tt.scaler
		p := testPipeline(r, cfg)

		ev, err := p.setupFrameCapture()
		if err != nil {
			t.Fatalf("scaler %d: %v", tt.scaler, err)
		}
		if ev == nil {
			t.Fatalf("scaler %d: no frame-ready event", tt.scaler)
		}

		got := r.capt.Config()
		if got.Width != tt.w || got.Height != tt.h {
			t.Errorf("scaler %d: got %dx%d, want %dx%d",
				tt.scaler, got.Width, got.Height, tt.w, tt.h)
		}
		scaleFlags := got.Cnt & (lgycap.HScaleEn | lgycap.VScaleEn)
		if tt.scaled && scaleFlags != lgycap.HScaleEn|lgycap.VScaleEn {
			t.Errorf("scaler %d: hardware scaling not enabled", tt.scaler)
		}
		if !tt.scaled && scaleFlags != 0 {
			t.Errorf("scaler %d: hardware scaling enabled", tt.scaler)
		}
		if got.Cnt&lgycap.Swizzle == 0 {
			t.Errorf("scaler %d: swizzled output not enabled", tt.scaler)
		}
		if fmt := got.Cnt & 0b11; fmt != lgycap.FmtA1BGR5 {
			t.Errorf("scaler %d: got pixel format %d, want A1BGR5", tt.scaler, fmt)
		}
		if got.VLen != 6 || got.HLen != 6 || got.VPatt != 0b00011011 || got.HPatt != 0b00011011 {
			t.Errorf("scaler %d: wrong filter setup: %+v", tt.scaler, got)
		}
		if got.Matrix != lgycap.DefaultMatrix {
			t.Errorf("scaler %d: matrix differs from default", tt.scaler)
		}
	}
}
