package video

import (
	"errors"
	"io/fs"

	"github.com/Exagone313/open-agb-firm/kev"
	"github.com/Exagone313/open-agb-firm/lgycap"
)

// matrixFile is the optional scaler coefficient override on storage.
const matrixFile = "gba_scaler_matrix.bin"

// tolerable reports whether a storage error means the optional file is
// simply absent.
func tolerable(err error) bool {
	return errors.Is(err, fs.ErrNotExist)
}

// loadScalerMatrix returns the filter matrix to capture with: the override
// file if present and well-formed, the built-in default otherwise. Only
// the tolerated absence stays silent.
func (p *Pipeline) loadScalerMatrix() lgycap.Matrix {
	data, err := p.st.ReadFile(matrixFile)
	if err != nil {
		if !tolerable(err) {
			p.log.Warn("failed to load hardware scaling matrix", "error", err)
		}
		return lgycap.DefaultMatrix
	}
	m, err := lgycap.ParseMatrix(data)
	if err != nil {
		p.log.Warn("failed to load hardware scaling matrix", "error", err)
		return lgycap.DefaultMatrix
	}
	return *m
}

// setupFrameCapture configures the capture peripheral for the requested
// scaler level and starts it. The returned event fires once per captured
// frame.
func (p *Pipeline) setupFrameCapture() (*kev.Event, error) {
	is240x160 := p.cfg.Scaler < 2

	cnt := lgycap.Swizzle | lgycap.RotNone | lgycap.FmtA1BGR5
	w, h := uint16(240), uint16(160)
	if !is240x160 {
		cnt |= lgycap.HScaleEn | lgycap.VScaleEn
		w, h = 360, 240
	}

	cfg := lgycap.Config{
		Cnt:    cnt,
		Width:  w,
		Height: h,
		VLen:   6,
		VPatt:  0b00011011,
		HLen:   6,
		HPatt:  0b00011011,
		Matrix: p.loadScalerMatrix(),
	}
	return p.hw.Cap.Init(&cfg)
}
