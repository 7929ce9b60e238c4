package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"

	"snake-classic/config"
	"snake-classic/game"
	"snake-classic/game/entity"
	"snake-classic/game/manager"
	"snake-classic/terminal"
	"snake-classic/ui"
)

func main() {
	cfg, err := config.Load(os.Args[1:])
	if errors.Is(err, flag.ErrHelp) {
		os.Exit(0)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "snake: %v\n", err)
		os.Exit(2)
	}

	logger, closeLog, err := newLogger(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "snake: %v\n", err)
		os.Exit(1)
	}
	defer closeLog()

	state := manager.NewStateManager(cfg.DataDir, logger)
	stats := manager.NewGameStats(cfg.DataDir, manager.GroupSize, logger)
	opts := game.Options{
		Store:     state,
		Listeners: []game.GameOverListener{state, stats},
		Random:    entity.NewRandomSource(cfg.Seed),
		Logger:    logger,
	}

	switch cfg.UI {
	case config.UITerminal:
		err = runTerminal(cfg, opts, stats)
	default:
		runWindow(cfg, opts, stats, logger)
	}
	if err != nil {
		logger.Printf("exiting: %v", err)
		fmt.Fprintf(os.Stderr, "snake: %v\n", err)
		closeLog()
		os.Exit(1)
	}
}

// newLogger writes to the -log file when given. The terminal UI owns the
// screen, so without a file its logs are dropped.
func newLogger(cfg *config.Config) (*log.Logger, func(), error) {
	flags := log.LstdFlags | log.Lmicroseconds
	if cfg.LogFile != "" {
		f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			return nil, nil, fmt.Errorf("open log file: %w", err)
		}
		return log.New(f, "snake: ", flags), func() { f.Close() }, nil
	}
	if cfg.UI == config.UITerminal {
		return log.New(io.Discard, "", 0), func() {}, nil
	}
	return log.New(os.Stderr, "snake: ", flags), func() {}, nil
}

func runWindow(cfg *config.Config, opts game.Options, stats *manager.GameStats, logger *log.Logger) {
	rules := cfg.Rules()
	renderer := ui.NewRenderer(rules.Grid, cfg.CellSize, stats)

	width, height := renderer.WindowSize()
	rl.SetTraceLogLevel(rl.LogWarning)
	rl.InitWindow(width, height, "Snake")
	defer rl.CloseWindow()
	rl.SetExitKey(rl.KeyEscape)
	rl.SetTargetFPS(60)

	sched := game.NewFrameScheduler(time.Now)
	opts.Scheduler = sched
	opts.Renderer = renderer
	opts.Overlay = renderer

	var sound *ui.SoundPlayer
	if !cfg.Mute {
		sound = ui.NewSoundPlayer(cfg.SoundsDir, logger)
		defer sound.Close()
		opts.Audio = sound
	}

	ctrl := game.NewController(rules, opts)
	mapper := game.NewInputMapper(ctrl)
	ctrl.ShowWelcome()

	for !rl.WindowShouldClose() {
		mapper.HandleAll(ui.ReadCommands())
		if sched.Due() {
			ctrl.Tick()
		}
		if sound != nil {
			sound.Update()
		}
		renderer.Draw()
	}
}

func runTerminal(cfg *config.Config, opts game.Options, stats *manager.GameStats) error {
	tty, err := terminal.Open()
	if err != nil {
		return err
	}

	rules := cfg.Rules()
	view := terminal.NewScreen(tty, rules.Grid, stats)
	ticks := game.NewTickerScheduler()
	opts.Scheduler = ticks
	opts.Renderer = view
	opts.Overlay = view

	if !cfg.Mute {
		tones := terminal.NewTonePlayer(opts.Logger)
		defer tones.Close()
		opts.Audio = tones
	}

	ctrl := game.NewController(rules, opts)
	app := terminal.NewApp(tty, view, ctrl, ticks)
	defer app.Close()

	ctrl.ShowWelcome()
	app.Run()
	return nil
}
