package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/nstehr/rampart/rampart-core/agent"
	"github.com/nstehr/rampart/rampart-core/ipc"
	"github.com/nstehr/rampart/rampart-core/rules"
)

const banner = `
█▀█ ▄▀█ █▀▄▀█ █▀█ ▄▀█ █▀█ ▀█▀
█▀▄ █▀█ █ ▀ █ █▀▀ █▀█ █▀▄  █

Rule-Driven Tower Defense`

func main() {
	posturePath := flag.String("posture", "", "JSON file overriding the default posture")
	debug := flag.Bool("debug", false, "log every rule firing")
	flag.Parse()

	level := slog.LevelInfo
	if *debug {
		level = slog.LevelDebug
	}
	// stdout carries the game protocol, so everything else goes to stderr.
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)

	fmt.Fprintln(os.Stderr, banner)

	posture := rules.DefaultPosture()
	if *posturePath != "" {
		p, err := rules.LoadPosture(*posturePath)
		if err != nil {
			slog.Error("failed to load posture", "path", *posturePath, "error", err)
			os.Exit(1)
		}
		posture = p
	}
	slog.Info("starting rampart", "posture", fmt.Sprintf("%+v", posture))

	a, err := agent.New(posture)
	if err != nil {
		slog.Error("failed to build rule engines", "error", err)
		os.Exit(1)
	}

	c := ipc.NewConnection(os.Stdin, os.Stdout, nil)
	c.RegisterHandler(ipc.TypeConfig, a.HandleConfig)
	c.RegisterHandler(ipc.TypeTurn, a.HandleTurn)
	c.RegisterHandler(ipc.TypeActionFrame, a.HandleActionFrame)
	c.RegisterHandler(ipc.TypeEndGame, a.HandleEndGame)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	done := make(chan error, 1)
	go func() { done <- c.ReadLoop() }()

	select {
	case err := <-done:
		if err != nil {
			slog.Error("connection failed", "error", err)
			stop()
			os.Exit(1)
		}
	case <-ctx.Done():
		slog.Info("interrupted")
	}
	slog.Info("shutting down")
}
