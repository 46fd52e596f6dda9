package term

import (
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gdamore/tcell/v2"

	"multisim/internal/core"
	"multisim/internal/host"
)

// Options configures Run.
type Options struct {
	// TPS is the number of frames per second.
	TPS int
	// Interrupt is called on Ctrl-C. The host observes it through its
	// context at the next frame.
	Interrupt func()
	Logger    *log.Logger
}

// Run drives sel on screen until a frame returns an error, and returns that
// error. screen must be initialized; Run does not finalize it.
func Run(screen tcell.Screen, sel *host.Selector, opts Options) error {
	tps := opts.TPS
	if tps <= 0 {
		tps = 60
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	screen.EnableMouse()
	screen.HideCursor()

	events := make(chan tcell.Event, 64)
	quit := make(chan struct{})
	go screen.ChannelEvents(events, quit)
	defer close(quit)

	cols, rows := screen.Size()
	in := NewInput(cols, rows, opts.Interrupt)
	canvas := NewCanvas(cols, rows)
	frame := &core.Frame{}

	ticker := time.NewTicker(time.Second / time.Duration(tps))
	defer ticker.Stop()
	start := time.Now()
	title := ""

	for {
		select {
		case ev, ok := <-events:
			if !ok {
				return core.ErrInterrupted
			}
			in.Handle(ev, time.Since(start))
		case <-ticker.C:
			frame.Begin(time.Since(start))
			in.Fill(frame)
			if err := step(sel, frame); err != nil {
				return err
			}
			if t := sel.Title(); t != title {
				title = t
				logger.Debug("title", "title", t)
			}

			canvas.Resize(in.Size())
			if err := draw(sel, canvas, frame); err != nil {
				return err
			}
			canvas.Flush(screen)
			screen.Show()
		}
	}
}

func step(sel *host.Selector, f *core.Frame) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = core.Fatalf("term.Run", "panic: %v", r)
		}
	}()
	return sel.Update(f)
}

func draw(sel *host.Selector, canvas *Canvas, f *core.Frame) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = core.Fatalf("term.Run", "panic while drawing: %v", r)
		}
	}()
	sel.Draw(canvas, f)
	return nil
}
