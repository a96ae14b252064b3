package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/tmpim/rascii/server"
	"github.com/tmpim/rascii/termcolor"
)

// ServeCmd runs the conversion server.
type ServeCmd struct {
	Target  `embed:""`
	Filter  Filter `embed:"" prefix:"filter."`
	Mode    string `help:"Default color mode: none, 16, 256, truecolor." default:"none" short:"m" env:"RASCII_MODE"`
	Addr    string `help:"Listen address." default:":9999" env:"RASCII_ADDR"`
	MaxBody int64  `help:"Largest accepted image in bytes." default:"16777216" env:"RASCII_MAX_BODY"`
}

// Run is called by Kong when the serve command is executed.
func (s *ServeCmd) Run(logger *slog.Logger) error {
	mode, err := termcolor.ParseMode(s.Mode)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	srv := server.New(server.Options{
		Defaults:     s.config(),
		Mode:         mode,
		Prepare:      s.Filter.options(),
		MaxBodyBytes: s.MaxBody,
		Logger:       logger,
	})

	logger.Info("starting rascii server", "addr", s.Addr)

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Start(s.Addr)
	}()

	select {
	case <-ctx.Done():
		logger.Info("shutting down server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return err
		}
		return <-errCh
	case err := <-errCh:
		return err
	}
}
