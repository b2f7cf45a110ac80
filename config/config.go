// Package config loads the game settings from .env files and the environment.
//
// Every key is optional, missing ones keep their default. Values set in the
// process environment win over the ones read from files.
package config

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"maps"
	"os"
	"reflect"
	"strconv"
	"strings"
	"time"

	"github.com/alvaroalonsobabbel/srs-tetris/tetris"
	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

const (
	KeyTickRate          = "TETRIS_TICK_RATE"
	KeySeed              = "TETRIS_SEED"
	KeyLogLevel          = "TETRIS_LOG_LEVEL"
	KeyLogFormat         = "TETRIS_LOG_FORMAT"
	KeyLogFile           = "TETRIS_LOG_FILE"
	KeyNoGhost           = "TETRIS_NO_GHOST"
	KeyDASDelay          = "TETRIS_DAS_DELAY"
	KeyDASRate           = "TETRIS_DAS_RATE"
	KeyDropMultiplier    = "TETRIS_DROP_MULTIPLIER"
	KeyLockDelay         = "TETRIS_LOCK_DELAY"
	KeyLockResets        = "TETRIS_LOCK_RESETS"
	KeyLinesPerLevel     = "TETRIS_LINES_PER_LEVEL"
	KeyLinesPerLevelStep = "TETRIS_LINES_PER_LEVEL_STEP"
	KeyLineScores        = "TETRIS_LINE_SCORES"
)

var ErrInvalidConfig = errors.New("invalid config")

// Config fields are decoded by their env tag, the ruleset ones are tagged in package tetris.
type Config struct {
	Ruleset tetris.Ruleset

	TickRate int    `env:"TETRIS_TICK_RATE"` // game ticks per second
	Seed     uint64 `env:"TETRIS_SEED"`      // 0 draws a random piece sequence
	NoGhost  bool   `env:"TETRIS_NO_GHOST"`

	LogLevel  slog.Level `env:"TETRIS_LOG_LEVEL"`
	LogFormat string     `env:"TETRIS_LOG_FORMAT"` // text or json
	LogFile   string     `env:"TETRIS_LOG_FILE"`   // empty discards the logs
}

func Default() *Config {
	return &Config{
		Ruleset:   tetris.DefaultRuleset(),
		TickRate:  60,
		LogLevel:  slog.LevelInfo,
		LogFormat: "text",
	}
}

// Load reads the given .env files in order, later files overriding earlier
// ones. Files that don't exist are skipped.
func Load(files ...string) (*Config, error) {
	vars := map[string]string{}
	for _, f := range files {
		vals, err := godotenv.Read(f)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", f, err)
		}
		maps.Copy(vars, vals)
	}
	maps.Copy(vars, env.ToMap(os.Environ()))
	return parse(vars)
}

func parse(vars map[string]string) (*Config, error) {
	c := Default()
	opts := env.Options{
		Environment: vars,
		FuncMap: map[reflect.Type]env.ParserFunc{
			reflect.TypeOf([5]int{}): parseLineScores,
		},
	}
	if err := env.ParseWithOptions(c, opts); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

func (c *Config) Validate() error {
	if c.TickRate < 1 || c.TickRate > int(time.Second) {
		return fmt.Errorf("%w: %s %d must be between 1 and %d", ErrInvalidConfig, KeyTickRate, c.TickRate, int(time.Second))
	}
	if c.LogFormat != "text" && c.LogFormat != "json" {
		return fmt.Errorf("%w: %s %q must be text or json", ErrInvalidConfig, KeyLogFormat, c.LogFormat)
	}
	if err := c.Ruleset.Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	return nil
}

// TickInterval is the time between two game ticks.
func (c *Config) TickInterval() time.Duration {
	return time.Second / time.Duration(c.TickRate)
}

// NewLogger builds a logger writing to w with the configured format and level.
func (c *Config) NewLogger(w io.Writer) *slog.Logger {
	opts := &slog.HandlerOptions{Level: c.LogLevel}
	if c.LogFormat == "json" {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}

// parseLineScores reads a comma separated list with the points of 0 to 4 lines.
func parseLineScores(v string) (any, error) {
	var scores [5]int
	fields := strings.Split(v, ",")
	if len(fields) != len(scores) {
		return nil, fmt.Errorf("%s %q: wanted %d scores, got %d", KeyLineScores, v, len(scores), len(fields))
	}
	for i, f := range fields {
		s, err := strconv.Atoi(strings.TrimSpace(f))
		if err != nil {
			return nil, fmt.Errorf("%s: %w", KeyLineScores, err)
		}
		scores[i] = s
	}
	return scores, nil
}
