package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"snake-classic/game"
	"snake-classic/game/types"
)

const (
	UIWindow   = "window"
	UITerminal = "terminal"

	envPrefix = "SNAKE_"
)

// usageOutput receives the flag list when -h is given.
var usageOutput io.Writer = os.Stderr

type Config struct {
	Cols     int
	Rows     int
	CellSize int // pixels per cell in the window frontend

	InitialSpeed     time.Duration
	SpeedStep        time.Duration
	MinSpeed         time.Duration
	SpeedUpEvery     int
	AchievementEvery int

	StartBody      []types.Point
	StartDirection types.Point

	DataDir   string
	SoundsDir string
	Seed      uint64
	UI        string
	LogFile   string
	Mute      bool
}

// Default mirrors the classic 400x400 canvas split into 20px cells.
func Default() *Config {
	rules := game.DefaultRules()
	return &Config{
		Cols:             rules.Grid.Width,
		Rows:             rules.Grid.Height,
		CellSize:         20,
		InitialSpeed:     rules.InitialSpeed,
		SpeedStep:        rules.SpeedStep,
		MinSpeed:         rules.MinSpeed,
		SpeedUpEvery:     rules.SpeedUpEvery,
		AchievementEvery: rules.AchievementEvery,
		StartBody:        rules.StartBody,
		StartDirection:   rules.StartDirection,
		DataDir:          "data",
		SoundsDir:        "sounds",
		UI:               UIWindow,
	}
}

// Load builds the configuration from defaults, an optional .env file,
// SNAKE_* environment variables and finally the command line, in that order.
func Load(args []string, envFiles ...string) (*Config, error) {
	cfg := Default()

	if len(envFiles) == 0 {
		envFiles = []string{".env"}
	}
	for _, f := range envFiles {
		// godotenv never overrides variables already set in the environment
		if err := godotenv.Load(f); err != nil && !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("load %s: %w", f, err)
		}
	}
	if err := cfg.applyEnv(os.LookupEnv); err != nil {
		return nil, err
	}

	fs := flag.NewFlagSet("snake", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.IntVar(&cfg.Cols, "cols", cfg.Cols, "board width in cells")
	fs.IntVar(&cfg.Rows, "rows", cfg.Rows, "board height in cells")
	fs.IntVar(&cfg.CellSize, "cell", cfg.CellSize, "cell size in pixels (window UI)")
	fs.DurationVar(&cfg.InitialSpeed, "speed", cfg.InitialSpeed, "initial tick interval")
	fs.DurationVar(&cfg.SpeedStep, "speed-step", cfg.SpeedStep, "tick interval decrease per speed-up")
	fs.DurationVar(&cfg.MinSpeed, "min-speed", cfg.MinSpeed, "fastest tick interval")
	fs.StringVar(&cfg.DataDir, "data", cfg.DataDir, "directory for the high score and game records")
	fs.StringVar(&cfg.SoundsDir, "sounds", cfg.SoundsDir, "directory holding eat.wav, lose.wav, achievement.wav, music.mp3")
	fs.Uint64Var(&cfg.Seed, "seed", cfg.Seed, "fruit placement seed, 0 picks one from the clock")
	fs.StringVar(&cfg.UI, "ui", cfg.UI, "frontend: window or terminal")
	fs.StringVar(&cfg.LogFile, "log", cfg.LogFile, "write logs to this file instead of stderr")
	fs.BoolVar(&cfg.Mute, "mute", cfg.Mute, "disable audio")
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			fmt.Fprintln(usageOutput, "Usage of snake:")
			fs.SetOutput(usageOutput)
			fs.PrintDefaults()
		}
		return nil, fmt.Errorf("parse flags: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) applyEnv(lookup func(string) (string, bool)) error {
	ints := map[string]*int{
		"COLS":              &c.Cols,
		"ROWS":              &c.Rows,
		"CELL_SIZE":         &c.CellSize,
		"SPEED_UP_EVERY":    &c.SpeedUpEvery,
		"ACHIEVEMENT_EVERY": &c.AchievementEvery,
	}
	for name, dst := range ints {
		v, ok := lookup(envPrefix + name)
		if !ok || v == "" {
			continue
		}
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return fmt.Errorf("%s%s: %w", envPrefix, name, err)
		}
		*dst = n
	}

	durations := map[string]*time.Duration{
		"INITIAL_SPEED": &c.InitialSpeed,
		"SPEED_STEP":    &c.SpeedStep,
		"MIN_SPEED":     &c.MinSpeed,
	}
	for name, dst := range durations {
		v, ok := lookup(envPrefix + name)
		if !ok || v == "" {
			continue
		}
		d, err := time.ParseDuration(strings.TrimSpace(v))
		if err != nil {
			return fmt.Errorf("%s%s: %w", envPrefix, name, err)
		}
		*dst = d
	}

	strs := map[string]*string{
		"DATA_DIR":   &c.DataDir,
		"SOUNDS_DIR": &c.SoundsDir,
		"UI":         &c.UI,
		"LOG_FILE":   &c.LogFile,
	}
	for name, dst := range strs {
		if v, ok := lookup(envPrefix + name); ok && v != "" {
			*dst = v
		}
	}

	if v, ok := lookup(envPrefix + "SEED"); ok && v != "" {
		seed, err := strconv.ParseUint(strings.TrimSpace(v), 10, 64)
		if err != nil {
			return fmt.Errorf("%sSEED: %w", envPrefix, err)
		}
		c.Seed = seed
	}
	if v, ok := lookup(envPrefix + "MUTE"); ok && v != "" {
		mute, err := strconv.ParseBool(strings.TrimSpace(v))
		if err != nil {
			return fmt.Errorf("%sMUTE: %w", envPrefix, err)
		}
		c.Mute = mute
	}
	return nil
}

// Validate checks that a game can actually be played with these settings.
func (c *Config) Validate() error {
	if c.Cols < 1 || c.Rows < 1 {
		return fmt.Errorf("board must be at least 1x1, got %dx%d", c.Cols, c.Rows)
	}
	if c.CellSize < 1 {
		return fmt.Errorf("cell size must be positive, got %d", c.CellSize)
	}
	if c.MinSpeed <= 0 || c.InitialSpeed < c.MinSpeed {
		return fmt.Errorf("need 0 < min speed (%v) <= initial speed (%v)", c.MinSpeed, c.InitialSpeed)
	}
	if c.SpeedStep < 0 {
		return fmt.Errorf("speed step must not be negative, got %v", c.SpeedStep)
	}
	if c.SpeedUpEvery < 1 || c.AchievementEvery < 1 {
		return fmt.Errorf("score intervals must be positive, got %d and %d", c.SpeedUpEvery, c.AchievementEvery)
	}
	if types.FromPoint(c.StartDirection) == types.NONE {
		return fmt.Errorf("start direction %v is not a unit vector", c.StartDirection)
	}
	if len(c.StartBody) == 0 {
		return errors.New("start body is empty")
	}

	grid := types.Grid{Width: c.Cols, Height: c.Rows}
	for i, p := range c.StartBody {
		if !grid.Contains(p) {
			return fmt.Errorf("start segment %v lies outside the %dx%d board", p, c.Cols, c.Rows)
		}
		if i > 0 && !types.Adjacent(c.StartBody[i-1], p) {
			return fmt.Errorf("start segments %v and %v are not adjacent", c.StartBody[i-1], p)
		}
	}
	if len(c.StartBody) >= grid.Cells() {
		return errors.New("start body leaves no room for fruit")
	}

	switch c.UI {
	case UIWindow, UITerminal:
	default:
		return fmt.Errorf("unknown ui %q, want %s or %s", c.UI, UIWindow, UITerminal)
	}
	return nil
}

// Rules converts the configuration into controller tuning.
func (c *Config) Rules() game.Rules {
	body := make([]types.Point, len(c.StartBody))
	copy(body, c.StartBody)
	return game.Rules{
		Grid:             types.Grid{Width: c.Cols, Height: c.Rows},
		InitialSpeed:     c.InitialSpeed,
		SpeedStep:        c.SpeedStep,
		MinSpeed:         c.MinSpeed,
		SpeedUpEvery:     c.SpeedUpEvery,
		AchievementEvery: c.AchievementEvery,
		StartBody:        body,
		StartDirection:   c.StartDirection,
	}
}
