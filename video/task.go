package video

import (
	"github.com/Exagone313/open-agb-firm/gfx"
	"github.com/Exagone313/open-agb-firm/gx"
	"github.com/Exagone313/open-agb-firm/hid"
)

// taskState tracks the display task's one-way state machine. The first
// signaled frame must run the full initialization command list, every
// later frame only the steady-state list.
type taskState uint8

const (
	stateUninitialized taskState = iota
	stateSteady
)

// dumpHotkey must be held exactly, with any key newly pressed in the same
// sample, to trigger a frame dump.
const dumpHotkey = hid.KeyY | hid.KeySelect

// frameTask runs one display cycle per frame-ready signal. It terminates
// when the wait fails because the event was closed during teardown, there
// is no other exit path.
func (p *Pipeline) frameTask() {
	defer close(p.done)

	for p.frameReady.Wait() {
		p.displayFrame()

		// Trigger only if both hotkeys are held and at least one key
		// is detected as newly pressed down.
		if p.hw.HID.Down() == dumpHotkey && p.hw.HID.Pressed() != 0 {
			// Runs on this task: the next frame's capture stalls
			// for the dump's duration, acceptable for a manual
			// debug action.
			if err := p.dumpFrame(); err != nil {
				p.log.Warn("frame dump failed", "error", err)
			}
		}
	}
}

// displayFrame renders the captured frame and publishes it: submit the
// state-appropriate command list, await the P3D, convert the render buffer
// into the hidden framebuffer half, await the PPF, then swap.
func (p *Pipeline) displayFrame() {
	list := gx.GbaList2
	if p.state == stateUninitialized {
		p.state = stateSteady
		list = gx.GbaInitList
	}

	p.hw.GX.ProcessCommandList(list)
	p.hw.GX.WaitP3D()
	p.hw.GX.DisplayTransfer(p.hw.GX.RenderBuf(), gx.MakeDim(gfx.TopWidth, gfx.TopHeight),
		p.hw.GFX.Buffer(gfx.Top, gfx.Left), gx.MakeDim(gfx.TopWidth, gfx.TopHeight),
		gx.OutFmt(gx.BGR8)|gx.InFmt(gx.BGR8))
	p.hw.GX.WaitPPF()
	p.hw.GFX.Swap()
}
