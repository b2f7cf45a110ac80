package config

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/alvaroalonsobabbel/srs-tetris/tetris"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeEnv(t *testing.T, content string) string {
	t.Helper()
	f := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(f, []byte(content), 0o600))
	return f
}

func TestLoadDefaults(t *testing.T) {
	c, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)
	assert.Equal(t, Default(), c)
	assert.Equal(t, tetris.DefaultRuleset(), c.Ruleset)
	assert.Equal(t, time.Second/60, c.TickInterval())
}

func TestLoadFile(t *testing.T) {
	f := writeEnv(t, `
# tuned for a faster game
TETRIS_TICK_RATE=120
TETRIS_SEED=42
TETRIS_NO_GHOST=true
TETRIS_LOG_LEVEL=debug
TETRIS_LOG_FORMAT=json
TETRIS_LOG_FILE=tetris.log
TETRIS_DAS_DELAY=10
TETRIS_DAS_RATE=1
TETRIS_DROP_MULTIPLIER=40
TETRIS_LOCK_DELAY=30
TETRIS_LOCK_RESETS=15
TETRIS_LINES_PER_LEVEL=5
TETRIS_LINES_PER_LEVEL_STEP=5
TETRIS_LINE_SCORES="0, 40, 100, 300, 1200"
`)
	c, err := Load(f)
	require.NoError(t, err)

	want := &Config{
		Ruleset: tetris.Ruleset{
			DASDelay:          10,
			DASRate:           1,
			DropMultiplier:    40,
			LockDelay:         30,
			LockResets:        15,
			LinesPerLevel:     5,
			LinesPerLevelStep: 5,
			LineScores:        [5]int{0, 40, 100, 300, 1200},
		},
		TickRate:  120,
		Seed:      42,
		NoGhost:   true,
		LogLevel:  slog.LevelDebug,
		LogFormat: "json",
		LogFile:   "tetris.log",
	}
	assert.Equal(t, want, c)
}

func TestLoadOverrides(t *testing.T) {
	base := writeEnv(t, "TETRIS_TICK_RATE=30\nTETRIS_LOCK_DELAY=20\nTETRIS_SEED=1\n")
	local := writeEnv(t, "TETRIS_LOCK_DELAY=25\n")
	t.Setenv(KeySeed, "99")

	c, err := Load(base, local)
	require.NoError(t, err)
	assert.Equal(t, 30, c.TickRate, "first file")
	assert.Equal(t, 25, c.Ruleset.LockDelay, "later file wins")
	assert.Equal(t, uint64(99), c.Seed, "environment wins")
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr error
		wantMsg string
	}{
		{
			name:    "bad int",
			content: "TETRIS_LOCK_DELAY=soon",
			wantErr: ErrInvalidConfig,
			wantMsg: "soon",
		},
		{
			name:    "bad float",
			content: "TETRIS_DAS_RATE=fast",
			wantErr: ErrInvalidConfig,
			wantMsg: "fast",
		},
		{
			name:    "negative seed",
			content: "TETRIS_SEED=-1",
			wantErr: ErrInvalidConfig,
			wantMsg: "-1",
		},
		{
			name:    "short line scores",
			content: "TETRIS_LINE_SCORES=0,100,300",
			wantErr: ErrInvalidConfig,
			wantMsg: KeyLineScores,
		},
		{
			name:    "bad line score",
			content: "TETRIS_LINE_SCORES=0,100,300,500,lots",
			wantErr: ErrInvalidConfig,
			wantMsg: "lots",
		},
		{
			name:    "zero tick rate",
			content: "TETRIS_TICK_RATE=0",
			wantErr: ErrInvalidConfig,
			wantMsg: KeyTickRate,
		},
		{
			name:    "tick rate with a zero interval",
			content: "TETRIS_TICK_RATE=2000000000",
			wantErr: ErrInvalidConfig,
			wantMsg: KeyTickRate,
		},
		{
			name:    "unknown log format",
			content: "TETRIS_LOG_FORMAT=xml",
			wantErr: ErrInvalidConfig,
			wantMsg: KeyLogFormat,
		},
		{
			name:    "unknown log level",
			content: "TETRIS_LOG_LEVEL=loud",
			wantErr: ErrInvalidConfig,
			wantMsg: "loud",
		},
		{
			name:    "invalid ruleset",
			content: "TETRIS_LOCK_DELAY=0",
			wantErr: tetris.ErrInvalidRuleset,
			wantMsg: "lock delay",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeEnv(t, tt.content))
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.ErrorContains(t, err, tt.wantMsg)
		})
	}
}

func TestTickRateBounds(t *testing.T) {
	c := Default()
	c.TickRate = int(time.Second)
	require.NoError(t, c.Validate())
	assert.Equal(t, time.Nanosecond, c.TickInterval())

	c.TickRate++
	assert.ErrorIs(t, c.Validate(), ErrInvalidConfig)
}

func TestNewLogger(t *testing.T) {
	c := Default()
	c.LogFormat = "json"
	c.LogLevel = slog.LevelWarn

	var buf bytes.Buffer
	l := c.NewLogger(&buf)
	l.Info("hidden")
	l.Warn("shown", slog.String("game_id", "abc"))

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "shown", line["msg"])
	assert.Equal(t, "abc", line["game_id"])

	buf.Reset()
	c.LogFormat = "text"
	c.NewLogger(&buf).Error("boom")
	assert.Contains(t, buf.String(), "level=ERROR msg=boom")
}
