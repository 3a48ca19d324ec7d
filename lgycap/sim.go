package lgycap

import (
	"errors"
	"sync"

	"github.com/Exagone313/open-agb-firm/kev"
)

// TexStride is the row length in pixels of the frame texture the
// peripheral captures into.
const TexStride = 512

// Sim is a simulated capture Device. Frames are pushed in by calling Feed,
// which stands in for the GBA subsystem emitting a frame. While stopped,
// fed frames are dropped, matching hardware that only raises the ready
// signal while capture runs.
type Sim struct {
	tex []byte // destination frame texture, A1BGR5

	mu      sync.Mutex
	cfg     Config
	ev      *kev.Event
	running bool

	// InitErr, if set, is returned by Init to exercise the fatal
	// initialization path.
	InitErr error
}

// NewSim returns a capture device writing into tex, which must be an
// A1BGR5 texture with TexStride pixels per row, typically the GPU's frame
// texture.
func NewSim(tex []byte) *Sim {
	return &Sim{tex: tex}
}

func (s *Sim) Init(cfg *Config) (*kev.Event, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.InitErr != nil {
		return nil, s.InitErr
	}
	if s.ev != nil {
		return nil, errors.New("lgycap: already initialized")
	}
	s.cfg = *cfg
	s.ev = kev.NewEvent()
	s.running = true
	return s.ev, nil
}

func (s *Sim) Start() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.ev != nil {
		s.running = true
	}
}

func (s *Sim) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.running = false
}

func (s *Sim) Deinit() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.ev == nil {
		return
	}
	s.running = false
	s.ev.Close()
	s.ev = nil
}

// Running reports whether the peripheral is currently capturing.
func (s *Sim) Running() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.running
}

// Config returns the configuration passed to Init.
func (s *Sim) Config() Config {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cfg
}

// Feed captures one frame of Width*Height A1BGR5 pixels into the frame
// texture and signals the ready event. Returns false if the frame was
// dropped because capture is stopped.
func (s *Sim) Feed(pix []byte) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.running {
		return false
	}
	w, h := int(s.cfg.Width), int(s.cfg.Height)
	for y := 0; y < h; y++ {
		copy(s.tex[y*TexStride*2:], pix[y*w*2:(y+1)*w*2])
	}
	s.ev.Signal()
	return true
}
