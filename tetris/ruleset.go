package tetris

import (
	"errors"
	"fmt"
)

var ErrInvalidRuleset = errors.New("invalid ruleset")

// Ruleset holds the tuning of the game. Times are expressed in ticks.
// The env tags name the keys package config reads them from.
type Ruleset struct {
	DASDelay       int     `env:"TETRIS_DAS_DELAY"`       // ticks a direction is held before auto shift starts
	DASRate        float64 `env:"TETRIS_DAS_RATE"`        // cells per tick once auto shift started
	DropMultiplier float64 `env:"TETRIS_DROP_MULTIPLIER"` // gravity multiplier while soft drop is held
	LockDelay      int     `env:"TETRIS_LOCK_DELAY"`      // ticks a grounded piece waits before locking
	LockResets     int     `env:"TETRIS_LOCK_RESETS"`     // lock delay resets granted per piece

	// A level is gained every LinesPerLevel + level*LinesPerLevelStep lines.
	// 10 and 0 for a fixed goal, 5 and 5 for a variable one.
	LinesPerLevel     int `env:"TETRIS_LINES_PER_LEVEL"`
	LinesPerLevelStep int `env:"TETRIS_LINES_PER_LEVEL_STEP"`

	// LineScores are the points of clearing 0 to 4 lines at once, multiplied by level+1.
	LineScores [5]int `env:"TETRIS_LINE_SCORES"`
}

// DefaultRuleset is tuned for 60 ticks per second.
func DefaultRuleset() Ruleset {
	return Ruleset{
		DASDelay:          18,  // 300ms
		DASRate:           0.5, // 1 cell every 2 ticks
		DropMultiplier:    20,
		LockDelay:         60, // 1s
		LockResets:        25,
		LinesPerLevel:     10,
		LinesPerLevelStep: 0,
		LineScores:        [5]int{0, 100, 300, 500, 800},
	}
}

// Validate returns an error wrapping ErrInvalidRuleset for the first bad value.
func (r Ruleset) Validate() error {
	switch {
	case r.DASDelay < 0:
		return fmt.Errorf("%w: das delay %d is negative", ErrInvalidRuleset, r.DASDelay)
	case r.DASRate <= 0:
		return fmt.Errorf("%w: das rate %v must be positive", ErrInvalidRuleset, r.DASRate)
	case r.DropMultiplier < 1:
		return fmt.Errorf("%w: drop multiplier %v is lower than 1", ErrInvalidRuleset, r.DropMultiplier)
	case r.LockDelay < 1:
		return fmt.Errorf("%w: lock delay %d must be positive", ErrInvalidRuleset, r.LockDelay)
	case r.LockResets < 0:
		return fmt.Errorf("%w: lock resets %d is negative", ErrInvalidRuleset, r.LockResets)
	case r.LinesPerLevel < 1:
		return fmt.Errorf("%w: lines per level %d must be positive", ErrInvalidRuleset, r.LinesPerLevel)
	case r.LinesPerLevelStep < 0:
		return fmt.Errorf("%w: lines per level step %d is negative", ErrInvalidRuleset, r.LinesPerLevelStep)
	}
	return nil
}
