package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/sync/errgroup"

	"github.com/openadas/adas-display/internal/controller"
	"github.com/openadas/adas-display/internal/feed"
	"github.com/openadas/adas-display/internal/httpapi"
	"github.com/openadas/adas-display/internal/tui"
	"github.com/openadas/adas-display/internal/uplink"
)

// run wires the controller, display, and optional collaborators together
// and blocks until the display exits or a signal arrives.
func run(cfg appConfig) error {
	cleanupLogger := configureRuntimeLogger()
	defer cleanupLogger()

	if err := tui.InitializeSkin(cfg.Skin, configDir()); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: Failed to load skin '%s': %v (using default)\n", cfg.Skin, err)
	}

	ctrl := controller.New(nil)
	hub := feed.NewHub()
	hub.Publish(ctrl.Snapshot())

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)

	if cfg.APIEnabled {
		api := httpapi.NewServer(cfg.APIAddr, hub)
		if err := api.Start(); err != nil {
			return fmt.Errorf("starting state API on %s: %w", cfg.APIAddr, err)
		}
		log.Printf("state API listening on %s", cfg.APIAddr)
		g.Go(func() error {
			<-ctx.Done()
			return api.Stop()
		})
	}

	if cfg.UplinkBroker != "" {
		upCfg := uplink.Config{
			BrokerURL: cfg.UplinkBroker,
			Topic:     cfg.UplinkTopic,
			ClientID:  cfg.UplinkClientID,
			QoS:       byte(cfg.UplinkQoS),
			Interval:  cfg.UplinkInterval,
		}
		pub, closePub, err := uplink.Dial(upCfg)
		if err != nil {
			return fmt.Errorf("starting uplink: %w", err)
		}
		defer closePub()
		up := uplink.New(upCfg, pub, hub)
		log.Printf("uplink publishing to %s every %s", cfg.UplinkBroker, upCfg.Interval)
		g.Go(func() error {
			return up.Run(ctx)
		})
	}

	p := tea.NewProgram(
		tui.NewDisplayModel(ctrl, hub, cfg.TickInterval),
		tea.WithAltScreen(),
	)

	// Signals and controller exit requests both end the program.
	g.Go(func() error {
		select {
		case <-ctx.Done():
		case <-ctrl.Done():
		}
		p.Quit()
		return nil
	})

	g.Go(func() error {
		defer stop()
		defer ctrl.RequestExit()
		if _, err := p.Run(); err != nil {
			if strings.Contains(err.Error(), "TTY") || strings.Contains(err.Error(), "/dev/tty") {
				return fmt.Errorf("the display requires a real terminal")
			}
			return fmt.Errorf("running display: %w", err)
		}
		return nil
	})

	return g.Wait()
}

// configureRuntimeLogger redirects the standard logger to a state file so
// background subsystems do not write over the terminal the TUI owns.
func configureRuntimeLogger() func() {
	log.SetFlags(log.LstdFlags | log.Lmicroseconds)

	home, err := os.UserHomeDir()
	if err != nil {
		log.SetOutput(os.Stderr)
		return func() {}
	}

	logDir := filepath.Join(home, ".local", "state", "adas-display")
	if err := os.MkdirAll(logDir, 0755); err != nil {
		log.SetOutput(os.Stderr)
		return func() {}
	}

	f, err := os.OpenFile(filepath.Join(logDir, "runtime.log"), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		log.SetOutput(os.Stderr)
		return func() {}
	}

	log.SetOutput(f)
	return func() {
		log.SetOutput(os.Stderr)
		_ = f.Close()
	}
}
