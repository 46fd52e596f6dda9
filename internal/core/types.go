package core

// Size describes the dimensions of a grid or window.
type Size struct {
	W int
	H int
}

// StatusBarHeight is the pixel height reserved at the bottom of the window
// for simulations that expose parameters.
const StatusBarHeight = 40

// Simulation defines the per-frame contract every hosted simulation implements.
// OnResize is called when the window size differs from the previous frame,
// Update only while the host is running, and Draw every frame.
type Simulation interface {
	Name() string
	Update(f *Frame)
	Draw(dst Canvas, f *Frame)
	OnResize(f *Frame)
}

// Editor is implemented by simulations that accept input while paused.
type Editor interface {
	Edit(f *Frame)
}

// Settler is implemented by simulations with deferred work that is polled
// once per frame whatever the overlay state.
type Settler interface {
	Settle(f *Frame)
}

// Pauser is told when the host stops or resumes advancing simulation time.
type Pauser interface {
	SetPaused(paused bool)
}

// Helper supplies the lines shown on the help overlay.
type Helper interface {
	Help() []string
}

// Factory constructs a Simulation sized for the given window using an
// optional configuration map.
type Factory func(window Size, cfg map[string]string) Simulation

var sims = map[string]Factory{}

// Register adds a simulation factory under the provided name.
func Register(name string, f Factory) {
	if name == "" || f == nil {
		return
	}
	sims[name] = f
}

// Sims exposes the registry of available simulation factories.
func Sims() map[string]Factory {
	return sims
}
