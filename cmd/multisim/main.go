//go:build ebiten

package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"

	"github.com/hajimehoshi/ebiten/v2"

	"multisim/internal/app"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	s, err := setup(ctx, os.Stderr, false)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	game := app.New(s.host, s.cfg.Window(), s.logger)
	ebiten.SetWindowTitle(s.host.Title())
	ebiten.SetTPS(s.cfg.TPS)
	ebiten.SetWindowSize(s.cfg.Width, s.cfg.Height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	err = ebiten.RunGame(game)
	if errors.Is(err, ebiten.Termination) {
		err = nil
	}
	code := s.finish(err)
	stop()
	os.Exit(code)
}
