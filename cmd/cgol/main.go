package main

import (
	"context"
	"flag"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"

	"cgol/internal/app"
	"cgol/internal/core"
	"cgol/internal/term"
	"cgol/internal/ui"
)

func main() {
	cfg := app.NewConfig()
	flag.Usage = func() {
		app.WriteUsage(flag.CommandLine.Output(), flag.CommandLine)
	}
	if err := cfg.Parse(flag.CommandLine, os.Args[1:]); err != nil {
		log.Fatal(err)
	}

	logger, closeLog, err := openLog(cfg.LogPath)
	if err != nil {
		log.Fatalf("open log: %v", err)
	}
	defer closeLog()

	screen, err := term.OpenTerminal(cfg.Glyph)
	if err != nil {
		log.Fatal(err)
	}
	defer func() {
		if r := recover(); r != nil {
			screen.Close()
			panic(r)
		}
	}()

	ctrl, err := app.NewController(cfg, screen, logger)
	if err != nil {
		screen.Close()
		log.Fatal(err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	err = app.Run(ctx, ctrl, screen, screen, core.NewPacer(cfg.FPS))
	screen.Close()
	if err != nil {
		log.Fatal(err)
	}
	for _, line := range ui.Lines(ctrl.Parameters()) {
		logger.Print(line)
	}
}

func openLog(path string) (*log.Logger, func(), error) {
	if path == "" {
		return log.New(io.Discard, "", 0), func() {}, nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, nil, err
	}
	return log.New(f, "cgol ", log.LstdFlags), func() { f.Close() }, nil
}
