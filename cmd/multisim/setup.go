package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"

	"multisim/internal/app"
	"multisim/internal/core"
	"multisim/internal/crash"
	"multisim/internal/host"
	"multisim/internal/logging"
	_ "multisim/internal/sims/bounce"
	_ "multisim/internal/sims/life"
	_ "multisim/internal/sims/minesweeper"
	_ "multisim/internal/sims/paddle"
	"multisim/internal/splash"
)

// session is everything both front ends share.
type session struct {
	cfg     *app.Config
	logger  *log.Logger
	logFile *os.File
	host    *host.Selector
}

// setup parses flags, opens the log and builds the host showing the menu or
// the simulation named by -sim. console is where logs go without -log;
// terminal is set by the front end without a window.
func setup(ctx context.Context, console io.Writer, terminal bool) (*session, error) {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	s := &session{cfg: cfg}
	out := console
	if cfg.LogFile != "" {
		f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return nil, fmt.Errorf("open log: %w", err)
		}
		s.logFile = f
		out = f
	}
	s.logger = logging.New(out, cfg.Debug)

	initial, ok := host.ParseSelected(cfg.Sim)
	if !ok {
		s.close()
		return nil, fmt.Errorf("unknown sim %q", cfg.Sim)
	}
	s.host = host.New(ctx, core.Sims(), host.Options{
		Logger:    s.logger,
		SimConfig: cfg.SimConfig(),
		Splash:    splash.Pick(core.NewRNG(time.Now().UnixNano())),
		Terminal:  terminal,
	})
	if initial != host.None {
		if err := s.host.Select(initial, cfg.Window()); err != nil {
			s.close()
			return nil, err
		}
	}
	s.logger.Debug("started", "sim", s.host.Title(), "window", fmt.Sprintf("%dx%d", cfg.Width, cfg.Height))
	return s, nil
}

// finish reports how the loop ended and returns the exit code.
func (s *session) finish(err error) int {
	s.host.Close()
	code := crash.Report(s.logger, err, s.cfg.CrashDir, time.Now())
	s.close()
	return code
}

func (s *session) close() {
	if s.logFile != nil {
		s.logFile.Close()
		s.logFile = nil
	}
}
