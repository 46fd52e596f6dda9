package term

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"

	"multisim/internal/core"
	"multisim/internal/host"
	_ "multisim/internal/sims/bounce"
)

func TestRunStopsOnCtrlC(t *testing.T) {
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatal(err)
	}
	defer screen.Fini()
	screen.SetSize(100, 41)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	sel := host.New(ctx, core.Sims(), host.Options{})
	if err := sel.Select(host.BounceDemo, core.Size{W: 800, H: 656}); err != nil {
		t.Fatal(err)
	}

	done := make(chan error, 1)
	go func() { done <- Run(screen, sel, Options{TPS: 200, Interrupt: cancel}) }()

	time.Sleep(50 * time.Millisecond)
	screen.InjectKey(tcell.KeyCtrlC, 0, tcell.ModCtrl)

	select {
	case err := <-done:
		if !errors.Is(err, core.ErrInterrupted) {
			t.Fatalf("Run = %v, want ErrInterrupted", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("Run did not stop")
	}
}

type brokenDraw struct{ cells []int }

func (b *brokenDraw) Name() string                  { return "broken" }
func (b *brokenDraw) Update(*core.Frame)            {}
func (b *brokenDraw) OnResize(*core.Frame)          {}
func (b *brokenDraw) Draw(core.Canvas, *core.Frame) { _ = b.cells[3] }

func TestRunReportsPanicInDraw(t *testing.T) {
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatal(err)
	}
	defer screen.Fini()
	screen.SetSize(100, 41)

	registry := map[string]core.Factory{
		"life": func(core.Size, map[string]string) core.Simulation { return &brokenDraw{} },
	}
	sel := host.New(context.Background(), registry, host.Options{})
	if err := sel.Select(host.Automaton, core.Size{W: 800, H: 656}); err != nil {
		t.Fatal(err)
	}

	done := make(chan error, 1)
	go func() { done <- Run(screen, sel, Options{TPS: 200}) }()

	select {
	case err := <-done:
		var fatal *core.FatalError
		if !errors.As(err, &fatal) {
			t.Fatalf("Run = %v, want *core.FatalError", err)
		}
		if fatal.Location != "term.Run" {
			t.Fatalf("location = %q", fatal.Location)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("Run did not stop")
	}
}
