package video

import (
	"fmt"

	"github.com/Exagone313/open-agb-firm/gfx"
	"github.com/Exagone313/open-agb-firm/gx"
)

const (
	screenshotDir = "screenshots"

	// yearBias maps the BCD year-of-century into the filename's four
	// digit field, keeping names sortable across the century.
	yearBias = 0x3000
)

// dumpFrame writes the currently held frame as a bitmap file to storage.
//
// Capture is stopped first so the peripheral cannot write the frame
// texture mid-read, and restarted unconditionally afterwards, even when
// the write fails, so live capture is never lost. The currently hidden
// framebuffer half is reused as scratch for header and pixel data. That
// half races the upcoming swap; it is safe exactly because the stopped
// peripheral produces no new frame until restart and the hidden half is
// not the one being scanned out.
//
// On the very first frame, before any capture completed, the dump contains
// whatever the frame texture last held.
func (p *Pipeline) dumpFrame() error {
	p.hw.Cap.Stop()
	defer p.hw.Cap.Start()

	w, h := 240, 160
	if p.cfg.Scaler > 1 {
		w, h = 360, 240
	}
	fileSize := dumpPixelOffset + w*h*2

	// Transfer the frame out of the texture, cropped to the active
	// rectangle, just past the header area.
	buf := p.hw.GFX.Buffer(gfx.Top, gfx.Left)[:fileSize]
	p.hw.GX.DisplayTransfer(p.hw.GX.FrameTex(), gx.MakeDim(gx.TexDim, 240),
		buf[dumpPixelOffset:], gx.MakeDim(w, h),
		gx.OutFmt(gx.A1BGR5)|gx.InFmt(gx.A1BGR5)|gx.CropEn)
	putBmpHeader(buf, w, h)
	p.hw.GX.WaitPPF()

	td := p.hw.MCU.RtcTimeDate()
	name := fmt.Sprintf("%s/%04X_%02X_%02X_%02X_%02X_%02X.bmp", screenshotDir,
		uint16(td.Year)+yearBias, td.Mon, td.Day, td.Hour, td.Min, td.Sec)

	return p.st.WriteFile(name, buf)
}
