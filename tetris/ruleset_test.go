package tetris

import (
	"errors"
	"testing"
)

func TestRulesetValidate(t *testing.T) {
	tests := []struct {
		name    string
		update  func(r *Ruleset)
		wantErr bool
	}{
		{name: "default ruleset", update: func(*Ruleset) {}},
		{name: "variable goal", update: func(r *Ruleset) { r.LinesPerLevel, r.LinesPerLevelStep = 5, 5 }},
		{name: "instant das", update: func(r *Ruleset) { r.DASDelay = 0 }},
		{name: "negative das delay", update: func(r *Ruleset) { r.DASDelay = -1 }, wantErr: true},
		{name: "zero das rate", update: func(r *Ruleset) { r.DASRate = 0 }, wantErr: true},
		{name: "drop slower than gravity", update: func(r *Ruleset) { r.DropMultiplier = 0.5 }, wantErr: true},
		{name: "zero lock delay", update: func(r *Ruleset) { r.LockDelay = 0 }, wantErr: true},
		{name: "negative lock resets", update: func(r *Ruleset) { r.LockResets = -1 }, wantErr: true},
		{name: "zero lines per level", update: func(r *Ruleset) { r.LinesPerLevel = 0 }, wantErr: true},
		{name: "negative lines step", update: func(r *Ruleset) { r.LinesPerLevelStep = -5 }, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			r := DefaultRuleset()
			tt.update(&r)
			err := r.Validate()
			if tt.wantErr && !errors.Is(err, ErrInvalidRuleset) {
				t.Errorf("wanted ErrInvalidRuleset, got %v", err)
			}
			if !tt.wantErr && err != nil {
				t.Errorf("wanted no error, got %v", err)
			}
		})
	}
}
