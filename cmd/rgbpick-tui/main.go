package main

import (
	"context"
	"errors"
	"io"
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"rgbpick/config"
	"rgbpick/picker"
	"rgbpick/settings"
	"rgbpick/tui"
)

func main() {
	log := logrus.New()
	log.SetOutput(io.Discard) // the terminal belongs to the UI
	_ = godotenv.Load()
	cfg, cfgErr := config.Load("")
	cfg.ApplyEnv()
	log.SetLevel(cfg.Level())
	if cfg.LogFile != "" {
		f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			logrus.WithError(err).Fatal("open log file")
		}
		defer f.Close()
		log.SetOutput(f)
	}
	if cfgErr != nil {
		log.WithError(cfgErr).Info("config")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	writer := settings.NewWriter(settings.Open(cfg.SettingsFile()), log.WithField("component", "settings"))
	model := tui.New(cfg, writer, picker.WithLogger(log.WithField("component", "controller")))

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error { return writer.Run(gctx) })
	g.Go(func() error {
		defer cancel()
		_, err := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(gctx)).Run()
		if errors.Is(err, tea.ErrProgramKilled) {
			return nil
		}
		return err
	})
	if err := g.Wait(); err != nil {
		logrus.WithError(err).Error("exit")
		os.Exit(1)
	}
}
