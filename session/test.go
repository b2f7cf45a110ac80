package session

import (
	"log/slog"
	"sync"
	"time"

	"github.com/alvaroalonsobabbel/srs-tetris/tetris"
)

// MockTicker is a Ticker that only ticks when told to.
type MockTicker struct {
	ch          chan time.Time
	stop, reset bool
	mu          sync.Mutex
}

func NewMockTicker() *MockTicker          { return &MockTicker{ch: make(chan time.Time)} }
func (m *MockTicker) C() <-chan time.Time { return m.ch }
func (m *MockTicker) Tick()               { m.ch <- time.Now() }
func (m *MockTicker) Stop() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.stop = true
}
func (m *MockTicker) Reset(time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.reset = true
}
func (m *MockTicker) IsReset() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.reset
}
func (m *MockTicker) IsStop() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.stop
}

// NewTestSession creates a session for the given game driven by a manual ticker.
func NewTestSession(l *slog.Logger, g *tetris.Game) (*Session, *MockTicker) {
	ticker := NewMockTicker()
	return NewConfigurable(l, ticker, g), ticker
}
