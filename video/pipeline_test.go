package video

import (
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/Exagone313/open-agb-firm/fsutil"
	"github.com/Exagone313/open-agb-firm/gfx"
	"github.com/Exagone313/open-agb-firm/gx"
	"github.com/Exagone313/open-agb-firm/hid"
	"github.com/Exagone313/open-agb-firm/kev"
	"github.com/Exagone313/open-agb-firm/lgycap"
	"github.com/Exagone313/open-agb-firm/mcu"
)

// rig wires simulated hardware with call recording wrappers, so tests can
// assert the ordering contracts of the pipeline.
type rig struct {
	engine *gx.Sim
	capt   *lgycap.Sim
	disp   *gfx.Sim
	keys   *hid.Sim
	clock  *mcu.Sim
	store  *fsutil.Mem

	mu  sync.Mutex
	log []string

	swapped chan struct{}
}

func newRig() *rig {
	r := &rig{
		engine:  gx.NewSim(),
		disp:    gfx.NewSim(),
		keys:    &hid.Sim{},
		clock:   &mcu.Sim{Model: mcu.Model3DS},
		store:   &fsutil.Mem{},
		swapped: make(chan struct{}, 64),
	}
	r.capt = lgycap.NewSim(r.engine.FrameTex())
	return r
}

func (r *rig) record(ev string) {
	r.mu.Lock()
	r.log = append(r.log, ev)
	r.mu.Unlock()
}

func (r *rig) events() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.log...)
}

func (r *rig) hardware() Hardware {
	return Hardware{
		GX:  &recEngine{r.engine, r},
		GFX: &recDisplay{r.disp, r},
		Cap: &recCapture{r.capt, r},
		HID: r.keys,
		MCU: r.clock,
	}
}

func (r *rig) storage() fsutil.Storage {
	return &recStorage{r.store, r}
}

// waitSwap blocks until the display task published a frame.
func (r *rig) waitSwap(t *testing.T) {
	t.Helper()
	select {
	case <-r.swapped:
	case <-time.After(time.Second):
		t.Fatal("no buffer swap within a second")
	}
}

type recEngine struct {
	*gx.Sim
	r *rig
}

func (e *recEngine) ProcessCommandList(list []uint32) {
	name := "p3d steady"
	if &list[0] == &gx.GbaInitList[0] {
		name = "p3d init"
	}
	e.r.record(name)
	e.Sim.ProcessCommandList(list)
}

func (e *recEngine) WaitP3D() {
	e.r.record("wait p3d")
	e.Sim.WaitP3D()
}

func (e *recEngine) DisplayTransfer(src []byte, srcDim gx.Dim, dst []byte, dstDim gx.Dim, flags gx.TransferFlags) {
	if flags&gx.OutTiled != 0 {
		e.r.record("ppf tiled")
	} else {
		e.r.record("ppf")
	}
	e.Sim.DisplayTransfer(src, srcDim, dst, dstDim, flags)
}

func (e *recEngine) WaitPPF() {
	e.r.record("wait ppf")
	e.Sim.WaitPPF()
}

type recDisplay struct {
	*gfx.Sim
	r *rig
}

func (d *recDisplay) Swap() {
	d.r.record("swap")
	d.Sim.Swap()
	d.r.swapped <- struct{}{}
}

func (d *recDisplay) SetForceBlack(top, bottom bool) {
	d.r.record("force black")
	d.Sim.SetForceBlack(top, bottom)
}

func (d *recDisplay) PowerOffBacklight(lcd gfx.LCD) {
	d.r.record("backlight off")
	d.Sim.PowerOffBacklight(lcd)
}

func (d *recDisplay) SetColorLUTIndex(i int) {
	d.r.record("lut index")
	d.Sim.SetColorLUTIndex(i)
}

type recCapture struct {
	*lgycap.Sim
	r *rig
}

func (c *recCapture) Init(cfg *lgycap.Config) (*kev.Event, error) {
	c.r.record("cap init")
	return c.Sim.Init(cfg)
}

func (c *recCapture) Start() {
	c.r.record("cap start")
	c.Sim.Start()
}

func (c *recCapture) Stop() {
	c.r.record("cap stop")
	c.Sim.Stop()
}

func (c *recCapture) Deinit() {
	c.r.record("cap deinit")
	c.Sim.Deinit()
}

type recStorage struct {
	*fsutil.Mem
	r *rig
}

func (s *recStorage) WriteFile(name string, data []byte) error {
	s.r.record("write " + name)
	return s.Mem.WriteFile(name, data)
}

func discard() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

// index returns the position of the first event equal to ev, or -1.
func index(events []string, ev string) int {
	for i, e := range events {
		if e == ev {
			return i
		}
	}
	return -1
}
