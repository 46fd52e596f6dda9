//go:build !ebiten

package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/gdamore/tcell/v2"

	"multisim/internal/term"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	// The screen owns the terminal until Fini; logs without -log are dropped.
	s, err := setup(ctx, io.Discard, true)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	screen, err := tcell.NewScreen()
	if err == nil {
		err = screen.Init()
	}
	if err != nil {
		s.logger.SetOutput(os.Stderr)
		s.logger.Error("terminal unavailable", "err", err)
		s.finish(nil)
		os.Exit(1)
	}

	err = term.Run(screen, s.host, term.Options{TPS: s.cfg.TPS, Interrupt: stop, Logger: s.logger})
	screen.Fini()
	if s.cfg.LogFile == "" {
		s.logger.SetOutput(os.Stderr)
	}
	code := s.finish(err)
	stop()
	os.Exit(code)
}
