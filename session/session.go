// Package session runs a game at a fixed tick rate, confining the engine to a
// single goroutine that serializes ticks and player actions.
package session

import (
	"log/slog"
	"sync"
	"time"

	"github.com/alvaroalonsobabbel/srs-tetris/config"
	"github.com/alvaroalonsobabbel/srs-tetris/tetris"
	"github.com/google/uuid"
)

type Action string

const (
	MoveLeft    Action = "left"      // Moves the Tetromino one step to the left.
	MoveRight   Action = "right"     // Moves the Tetromino one step to the right.
	SoftDrop    Action = "down"      // Speeds up gravity for a few ticks.
	HardDrop    Action = "drop"      // Drops the Tetromino down the stack and locks it.
	RotateRight Action = "rotatecw"  // Rotates the Tetromino clockwise.
	RotateLeft  Action = "rotateccw" // Rotates the Tetromino counter-clockwise.
	Hold        Action = "hold"      // Swaps the Tetromino with the held one.
)

// softDropTicks is how long a single down press keeps soft drop on.
// Terminals don't report key releases, key repeats extend it.
const softDropTicks = 10

type Ticker interface {
	C() <-chan time.Time
	Reset(time.Duration)
	Stop()
}

type wrappedTicker struct {
	ticker *time.Ticker
}

func newWrappedTicker(d time.Duration) *wrappedTicker {
	return &wrappedTicker{ticker: time.NewTicker(d)}
}

func (t *wrappedTicker) C() <-chan time.Time   { return t.ticker.C }
func (t *wrappedTicker) Stop()                 { t.ticker.Stop() }
func (t *wrappedTicker) Reset(d time.Duration) { t.ticker.Reset(d) }

type Session struct {
	ID uuid.UUID

	updateCh chan tetris.Snapshot
	actionCh chan Action
	doneCh   chan struct{}
	stopOnce sync.Once

	game      *tetris.Game
	ticker    Ticker
	interval  time.Duration
	logger    *slog.Logger
	dropTicks int
}

// New creates a session with a fresh game built from the config.
func New(l *slog.Logger, c *config.Config) *Session {
	opts := []tetris.Option{tetris.WithRuleset(c.Ruleset)}
	if c.Seed != 0 {
		opts = append(opts, tetris.WithRandomizer(tetris.NewSeededBag(c.Seed)))
	}
	s := NewConfigurable(l, newWrappedTicker(c.TickInterval()), tetris.New(opts...))
	s.interval = c.TickInterval()
	return s
}

// NewConfigurable creates a session around an existing game and ticker.
func NewConfigurable(l *slog.Logger, ticker Ticker, game *tetris.Game) *Session {
	id := uuid.New()
	return &Session{
		ID:       id,
		updateCh: make(chan tetris.Snapshot),
		actionCh: make(chan Action),
		doneCh:   make(chan struct{}),
		game:     game,
		ticker:   ticker,
		interval: time.Second / 60,
		logger:   l.With(slog.String("game_id", id.String())),
	}
}

// Start publishes the initial state and starts ticking.
func (s *Session) Start() {
	s.ticker.Reset(s.interval)
	s.logger.Info("game started")
	go s.listen()
}

// Stop ends the session. It is safe to call more than once.
func (s *Session) Stop() {
	s.stopOnce.Do(func() { close(s.doneCh) })
}

// Action sends a player action to the game. It doesn't block once the session ended.
func (s *Session) Action(a Action) {
	select {
	case s.actionCh <- a:
	case <-s.doneCh:
	}
}

// Updates returns a snapshot after every tick and action. It's closed when the session ends.
func (s *Session) Updates() <-chan tetris.Snapshot { return s.updateCh }

func (s *Session) listen() {
	defer func() {
		s.ticker.Stop()
		s.Stop()
		close(s.updateCh)
	}()

	if !s.publish() {
		return
	}
	for {
		select {
		case <-s.ticker.C():
			s.tick()
		case a := <-s.actionCh:
			s.apply(a)
		case <-s.doneCh:
			return
		}
		if !s.publish() {
			return
		}
		if !s.game.Running() {
			s.logger.Info("game over",
				slog.String("reason", s.game.EndReason().String()),
				slog.Int("score", s.game.Score()),
				slog.Int("lines", s.game.Lines()),
				slog.Int("level", s.game.Level()),
			)
			return
		}
	}
}

// publish returns false if the session was stopped while waiting for a reader.
func (s *Session) publish() bool {
	select {
	case s.updateCh <- s.game.Snapshot():
		return true
	case <-s.doneCh:
		return false
	}
}

func (s *Session) tick() {
	lines, level := s.game.Lines(), s.game.Level()
	s.game.Update()
	if n := s.game.Lines() - lines; n > 0 {
		s.logger.Debug("lines cleared", slog.Int("lines", n), slog.Int("total", s.game.Lines()))
	}
	if s.game.Level() > level {
		s.logger.Info("level up", slog.Int("level", s.game.Level()))
	}

	if s.dropTicks > 0 {
		s.dropTicks--
		if s.dropTicks == 0 {
			s.game.SetDrop(false)
		}
	}
}

func (s *Session) apply(a Action) {
	switch a {
	case MoveLeft:
		s.game.MoveLeft()
	case MoveRight:
		s.game.MoveRight()
	case RotateRight:
		s.game.RotateRight()
	case RotateLeft:
		s.game.RotateLeft()
	case Hold:
		s.game.Hold()
	case HardDrop:
		s.game.HardDrop()
	case SoftDrop:
		s.game.SetDrop(true)
		s.dropTicks = softDropTicks
	default:
		s.logger.Debug("unknown action", slog.String("action", string(a)))
	}
}
