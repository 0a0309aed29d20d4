package main

import (
	"bytes"
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"rgbpick/blocks"
	"rgbpick/clicks"
	"rgbpick/config"
	"rgbpick/picker"
	"rgbpick/settings"
)

func main() {
	log := logrus.New()
	log.SetOutput(os.Stderr)
	if err := godotenv.Load(); err != nil {
		log.Debug("no .env file")
	}
	cfg, err := config.Load("")
	if err != nil {
		log.WithError(err).Info("config")
	}
	cfg.ApplyEnv()
	log.SetLevel(cfg.Level())

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	writer := settings.NewWriter(settings.Open(cfg.SettingsFile()), log.WithField("component", "settings"))
	bar := blocks.NewBar(cfg)
	ctl := picker.New(writer, bar, picker.WithLogger(log.WithField("component", "controller")))
	ctl.Init(cfg.InitialEnabled())
	dispatch := clicks.NewDispatcher(ctl, cfg, log.WithField("component", "clicks"))

	if err := blocks.WriteHeader(os.Stdout); err != nil {
		log.WithError(err).Fatal("write header")
	}

	clickCh := make(chan clicks.Click, 16)
	go clicks.Read(os.Stdin, clickCh, log.WithField("component", "clicks"))

	interval := time.Second / time.Duration(cfg.TickHz)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error { return writer.Run(gctx) })
	g.Go(func() error {
		defer cancel() // stdin closed or signal: stop the writer too
		return run(gctx, bar, dispatch, clickCh, interval)
	})
	if err := g.Wait(); err != nil {
		log.WithError(err).Error("exit")
		os.Exit(1)
	}
}

// run emits the initial row, then one row per tick in which a block changed.
func run(ctx context.Context, bar *blocks.Bar, d *clicks.Dispatcher, clickCh <-chan clicks.Click, interval time.Duration) error {
	buf := bytes.NewBuffer(nil)
	row, _ := bar.Row()
	if err := blocks.WriteRow(os.Stdout, buf, row); err != nil {
		return err
	}
	for waitUntilNextTickInterval(ctx, interval, clickCh, d) {
		if err := renderOnce(buf, bar); err != nil {
			return err
		}
	}
	return nil
}

// renderOnce refreshes providers and emits a JSON row if any block changed.
func renderOnce(buf *bytes.Buffer, bar *blocks.Bar) error {
	row, changed := bar.Row()
	if !changed {
		return nil
	}
	return blocks.WriteRow(os.Stdout, buf, row)
}

// waitUntilNextTickInterval blocks until the next multiple of interval,
// applying clicks as they arrive. It returns false once ctx is done or the
// click stream has ended.
func waitUntilNextTickInterval(ctx context.Context, interval time.Duration, clickCh <-chan clicks.Click, d *clicks.Dispatcher) bool {
	now := time.Now()
	next := now.Truncate(interval).Add(interval)
	timer := time.NewTimer(time.Until(next))
	defer timer.Stop()
	for {
		select {
		case <-ctx.Done():
			return false
		case ev, ok := <-clickCh:
			if !ok {
				return false
			}
			d.Handle(ev)
		case <-timer.C:
			return true
		}
	}
}
