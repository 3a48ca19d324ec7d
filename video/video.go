// Package video implements the real-time GBA frame display pipeline.
//
// Captured frames flow one direction: the capture peripheral writes into
// the GPU's frame texture, a prebuilt command list renders it into the
// render buffer, a display transfer converts it into the hidden half of
// the top LCD's buffer pair and a swap publishes it. A long-lived task
// drives one such cycle per frame-ready signal. Dumping a frame to
// storage is a side-tap on the same task, bracketed by a capture stop and
// restart.
package video

import (
	"fmt"
	"log/slog"

	"github.com/Exagone313/open-agb-firm/fsutil"
	"github.com/Exagone313/open-agb-firm/gfx"
	"github.com/Exagone313/open-agb-firm/gx"
	"github.com/Exagone313/open-agb-firm/hid"
	"github.com/Exagone313/open-agb-firm/kev"
	"github.com/Exagone313/open-agb-firm/lgycap"
	"github.com/Exagone313/open-agb-firm/mcu"
)

// Config holds the user settings consumed by the pipeline. Gamma values
// and contrast must be positive, this is a caller contract.
type Config struct {
	// Scaler selects the output size: levels 0 and 1 display native
	// 240x160, levels 2 and 3 enable the hardware bilinear upscale to
	// 360x240. Level 0 additionally loads a border image.
	Scaler uint8

	GbaGamma   float64 // gamma the source material targets
	LcdGamma   float64 // gamma of the console's panel
	Contrast   float64
	Brightness float64
}

// DefaultConfig returns the stock display settings.
func DefaultConfig() Config {
	return Config{
		Scaler:   0,
		GbaGamma: 2.2,
		LcdGamma: 1.54,
		Contrast: 1.0,
	}
}

// Hardware bundles the hardware units the pipeline drives.
type Hardware struct {
	GX  gx.Engine
	GFX gfx.Display
	Cap lgycap.Device
	HID hid.Sampler
	MCU mcu.Device
}

// Pipeline is the running video pipeline. Create one with Init, tear it
// down with Exit.
type Pipeline struct {
	cfg Config
	hw  Hardware
	st  fsutil.Storage
	log *slog.Logger

	state      taskState
	frameReady *kev.Event
	done       chan struct{}
}

// Init brings up the video pipeline: blanks the bottom screen, configures
// and starts frame capture, patches the command lists for the requested
// scaler level, starts the frame display task, uploads the gamma corrected
// color lookup table and, when running unscaled, loads the border image.
//
// A capture initialization failure is fatal and returned, every storage
// problem is tolerated. log may be nil.
func Init(cfg Config, hw Hardware, st fsutil.Storage, log *slog.Logger) (*Pipeline, error) {
	if log == nil {
		log = slog.Default()
	}
	p := &Pipeline{
		cfg:  cfg,
		hw:   hw,
		st:   st,
		log:  log,
		done: make(chan struct{}),
	}

	// Force black and turn the backlight off on the bottom screen.
	// Single panel models have no separate bottom backlight.
	hw.GFX.SetForceBlack(false, true)
	if hw.MCU.SystemModel() != mcu.Model2DS {
		hw.GFX.PowerOffBacklight(gfx.Bottom)
	}

	ev, err := p.setupFrameCapture()
	if err != nil {
		return nil, fmt.Errorf("video: frame capture init: %w", err)
	}
	p.frameReady = ev
	gx.PatchGbaLists(cfg.Scaler)
	go p.frameTask()

	BuildGammaTable(hw.GFX, cfg.GbaGamma, cfg.LcdGamma, cfg.Contrast, cfg.Brightness)

	if cfg.Scaler == 0 { // no borders for scaled modes
		p.loadBorder()
	}

	return p, nil
}

// Exit deinitializes the capture peripheral and waits for the display task
// to terminate. The task is not killed, closing its frame-ready event is
// its sole termination path.
func (p *Pipeline) Exit() {
	p.hw.Cap.Deinit()
	<-p.done
}

// loadBorder reads the optional border image and places it tile-swizzled
// in the render buffer, where the frame is later composited over it. The
// currently hidden framebuffer half is used as transfer scratch. A missing
// file is not an error.
func (p *Pipeline) loadBorder() {
	const borderSize = gfx.TopWidth * gfx.TopHeight * gfx.BytesPerPixel
	data, err := p.st.ReadFile("border.bgr")
	if err != nil {
		if !tolerable(err) {
			p.log.Warn("failed to load border", "error", err)
		}
		return
	}
	if len(data) != borderSize {
		p.log.Warn("border has wrong size", "got", len(data), "want", borderSize)
		return
	}
	buf := p.hw.GFX.Buffer(gfx.Top, gfx.Left)
	copy(buf, data)
	p.hw.GX.DisplayTransfer(buf, gx.MakeDim(gfx.TopWidth, gfx.TopHeight),
		p.hw.GX.RenderBuf(), gx.MakeDim(gfx.TopWidth, gfx.TopHeight),
		gx.OutFmt(gx.BGR8)|gx.InFmt(gx.BGR8)|gx.OutTiled)
	p.hw.GX.WaitPPF()
}
