package host

import (
	"context"
	"io"

	"github.com/charmbracelet/log"

	"multisim/internal/core"
)

const titlePrefix = "MultiSim - "

// Options configures a Selector.
type Options struct {
	// Logger receives state transitions. Nil discards them.
	Logger *log.Logger
	// SimConfig is handed to every simulation factory.
	SimConfig map[string]string
	// Splash is shown under the menu title.
	Splash string
	// Terminal marks a front end without a window: F3 and F11 are ignored
	// and left out of the help text.
	Terminal bool
}

// Selector is the top-level state machine: it owns the active simulation and
// the overlay state, and routes every frame to them.
type Selector struct {
	ctx      context.Context
	logger   *log.Logger
	registry map[string]core.Factory
	simCfg   map[string]string
	splash   string
	terminal bool

	selected Selected
	state    GameState
	resume   GameState
	sim      core.Simulation

	window     core.Size
	menuCursor int
	showFPS    bool
	fullscreen bool
}

// New returns a Selector showing the menu. ctx cancellation ends the frame
// loop at the next Update.
func New(ctx context.Context, registry map[string]core.Factory, opts Options) *Selector {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Selector{
		ctx:      ctx,
		logger:   logger,
		registry: registry,
		simCfg:   opts.SimConfig,
		splash:   opts.Splash,
		terminal: opts.Terminal,
	}
}

// Selected returns the active simulation variant.
func (s *Selector) Selected() Selected { return s.selected }

// State returns the overlay state.
func (s *Selector) State() GameState { return s.state }

// Simulation returns the active simulation, nil on the menu.
func (s *Selector) Simulation() core.Simulation { return s.sim }

// ShowFPS reports whether the FPS readout is enabled.
func (s *Selector) ShowFPS() bool { return s.showFPS }

// Fullscreen reports whether fullscreen was requested.
func (s *Selector) Fullscreen() bool { return s.fullscreen }

// Title returns the window title for the active simulation.
func (s *Selector) Title() string {
	if s.sim == nil {
		return titlePrefix + "menu"
	}
	return titlePrefix + s.sim.Name()
}

// Update runs one frame of host logic. f must already hold this frame's
// input. A returned error ends the frame loop: core.ErrInterrupted after
// cancellation, *core.FatalError for a broken invariant.
func (s *Selector) Update(f *core.Frame) error {
	select {
	case <-s.ctx.Done():
		return core.ErrInterrupted
	default:
	}

	if err := s.handleHotkeys(f); err != nil {
		return err
	}

	resized := f.Global.Window != s.window
	s.window = f.Global.Window
	if s.sim == nil {
		return nil
	}
	if resized {
		s.logger.Debug("window resized", "w", s.window.W, "h", s.window.H)
		s.sim.OnResize(f)
	}

	if st, ok := s.sim.(core.Settler); ok {
		st.Settle(f)
	}
	switch s.state {
	case Running:
		s.sim.Update(f)
	case Paused:
		if ed, ok := s.sim.(core.Editor); ok {
			ed.Edit(f)
		}
	case Help:
	default:
		return core.Fatalf("host.Selector.Update", "unknown game state %d", uint8(s.state))
	}
	return nil
}

func (s *Selector) handleHotkeys(f *core.Frame) error {
	for _, k := range []core.Key{core.KeyF3, core.KeyF11} {
		if !f.Pressed(k) {
			continue
		}
		f.Consume(k)
		switch {
		case s.terminal:
			s.logger.Debug("window key ignored in terminal", "key", k)
		case k == core.KeyF3:
			s.showFPS = !s.showFPS
		default:
			s.fullscreen = !s.fullscreen
		}
	}

	if s.selected == None {
		if sel, ok := s.menuInput(f); ok {
			return s.Select(sel, f.Global.Window)
		}
		return nil
	}

	switch {
	case f.Pressed(core.KeyEscape):
		f.Consume(core.KeyEscape)
		s.BackToMenu()
	case f.Pressed(core.KeyH):
		f.Consume(core.KeyH)
		if s.state == Help {
			s.setState(s.resume)
		} else {
			s.resume = s.state
			s.setState(Help)
		}
	case s.state == Help && f.Pressed(core.KeyEnter):
		f.Consume(core.KeyEnter)
		s.setState(s.resume)
	case f.Pressed(core.KeySpace):
		f.Consume(core.KeySpace)
		switch s.state {
		case Running:
			s.setState(Paused)
		case Paused:
			s.setState(Running)
		case Help:
			s.resume = flip(s.resume)
		}
	}
	return nil
}

func flip(g GameState) GameState {
	if g == Running {
		return Paused
	}
	return Running
}

func (s *Selector) setState(g GameState) {
	if g == s.state {
		return
	}
	s.logger.Debug("overlay", "from", s.state, "to", g)
	s.state = g
	if p, ok := s.sim.(core.Pauser); ok {
		p.SetPaused(g != Running)
	}
}

// Select discards any active simulation and starts sel sized for window. The
// new simulation opens on its help overlay. Selecting a variant without a
// registered factory is fatal.
func (s *Selector) Select(sel Selected, window core.Size) error {
	if sel == None {
		s.BackToMenu()
		return nil
	}
	factory, ok := s.registry[sel.Key()]
	if !ok || factory == nil {
		return core.Fatalf("host.Selector.Select", "no simulation registered for %s", sel)
	}
	s.sim = nil
	sim := factory(window, s.simCfg)
	if sim == nil {
		return core.Fatalf("host.Selector.Select", "factory for %s returned nil", sel)
	}
	s.logger.Info("selected simulation", "sim", sim.Name())
	s.sim = sim
	s.selected = sel
	s.window = window
	s.state = Running
	s.resume = Running
	if _, ok := sim.(core.Editor); ok {
		s.resume = Paused
	}
	s.setState(Help)
	return nil
}

// BackToMenu drops the active simulation and its state.
func (s *Selector) BackToMenu() {
	if s.sim != nil {
		s.logger.Info("back to menu", "sim", s.sim.Name())
	}
	s.sim = nil
	s.selected = None
	s.state = Running
	s.resume = Running
}

// Close releases the active simulation.
func (s *Selector) Close() {
	s.sim = nil
	s.selected = None
}
