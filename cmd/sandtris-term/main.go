package main

import (
	"context"
	"flag"
	"io"
	"log/slog"
	"os"
	"os/signal"

	"github.com/gdamore/tcell/v2"

	"sandtris/internal/app"
	"sandtris/internal/render"
	"sandtris/internal/sound"
	"sandtris/internal/term"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	logPath := flag.String("log", "", "write logs to this file (stdout belongs to the terminal UI)")
	mute := flag.Bool("mute", false, "disable sound")
	debug := flag.Bool("debug", false, "log at debug level")
	flag.Parse()

	logger, closeLog, err := openLogger(*logPath, *debug)
	if err != nil {
		slog.Error("open log", "err", err)
		os.Exit(1)
	}
	defer closeLog()

	b, err := app.NewBoard(cfg)
	if err != nil {
		slog.Error("build board", "err", err)
		os.Exit(1)
	}

	var player sound.Player = sound.Nop{}
	if !*mute {
		if sp, err := sound.NewSpeaker(); err != nil {
			logger.Warn("audio unavailable", "err", err)
		} else {
			player = sp
		}
	}
	defer player.Close()

	screen, err := tcell.NewScreen()
	if err != nil {
		slog.Error("create screen", "err", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		slog.Error("init screen", "err", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	ui := term.New(screen, b, term.Options{
		Rate:    cfg.Rate,
		Seed:    cfg.Seed,
		Palette: render.DefaultPalette(),
		Sound:   player,
		Logger:  logger,
	})
	err = ui.Run(ctx)
	screen.Fini()
	if err != nil && ctx.Err() == nil {
		slog.Error("session", "err", err)
		os.Exit(1)
	}
}

func openLogger(path string, debug bool) (*slog.Logger, func(), error) {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}
	if path == "" {
		return slog.New(slog.NewTextHandler(io.Discard, nil)), func() {}, nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, err
	}
	logger := slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: level}))
	return logger, func() { f.Close() }, nil
}
