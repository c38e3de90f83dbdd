package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/getsentry/sentry-go"
	"github.com/go-echarts/statsview"
	"github.com/go-echarts/statsview/viewer"
	"github.com/oomph-ac/blockgame/audio"
	"github.com/oomph-ac/blockgame/input"
	"github.com/oomph-ac/blockgame/metrics"
	"github.com/oomph-ac/blockgame/render/terminal"
	"github.com/oomph-ac/blockgame/session"
	"github.com/oomph-ac/blockgame/settings"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/sirupsen/logrus"
)

// The following program runs a single player session in the terminal, drawing a top-down map of the
// world around the player.
func main() {
	path := "config.toml"
	if len(os.Args) > 1 {
		path = os.Args[1]
	}
	if err := run(path); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(path string) error {
	conf, err := settings.LoadOrCreate(path)
	if err != nil {
		return fmt.Errorf("load settings: %w", err)
	}

	log, closeLog, err := newLogger(conf)
	if err != nil {
		return err
	}
	defer closeLog()

	if conf.Sentry.DSN != "" {
		if err := sentry.Init(sentry.ClientOptions{
			Dsn:              conf.Sentry.DSN,
			AttachStacktrace: true,
		}); err != nil {
			log.Warnf("unable to initialize sentry: %v", err)
		}
		defer sentry.Flush(2 * time.Second)
	}

	if os.Getenv("PPROF_ENABLED") != "" {
		// set configurations before calling `statsview.New()` method
		viewer.SetConfiguration(viewer.WithTheme(viewer.ThemeWesteros), viewer.WithAddr("localhost:8080"))

		mgr := statsview.New()
		go mgr.Start()
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	m := metrics.New(reg)
	if addr := conf.Metrics.Address; addr != "" {
		go func() {
			if err := metrics.Serve(ctx, addr, reg); err != nil {
				log.Errorf("metrics server stopped: %v", err)
			}
		}()
	}

	sessConf, err := session.ConfigFromSettings(conf, log)
	if err != nil {
		return err
	}
	sessConf.Metrics = m
	s := session.New(sessConf)

	if conf.Audio.Enabled {
		sounds := audio.NewManager()
		if err := sounds.Initialize(); err != nil {
			log.Warnf("audio disabled: %v", err)
		} else {
			defer sounds.Close()
			s.Handle(soundHandler{sounds: sounds})
		}
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	screen.EnableMouse()
	defer screen.Fini()

	q := input.NewQueue(256)
	go terminal.Pump(ctx, screen, q)

	err = s.Run(ctx, q, terminal.New(screen))
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

// newLogger creates the logger of the program. The terminal is taken by the screen, so logs are
// only kept when a log file is configured.
func newLogger(conf settings.Settings) (*logrus.Logger, func(), error) {
	log := logrus.New()
	log.SetFormatter(&logrus.TextFormatter{
		ForceColors:     false,
		TimestampFormat: "2006-01-02 15:04:05",
		FullTimestamp:   true,
	})
	level, err := logrus.ParseLevel(conf.Log.Level)
	if err != nil {
		return nil, nil, fmt.Errorf("parse log level: %w", err)
	}
	log.SetLevel(level)

	if conf.Log.File == "" {
		log.SetOutput(io.Discard)
		return log, func() {}, nil
	}
	f, err := os.OpenFile(conf.Log.File, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}
	log.SetOutput(f)
	return log, func() { _ = f.Close() }, nil
}
