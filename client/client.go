// Package client plays a game in the terminal, reading the keyboard and
// drawing every snapshot the session publishes.
package client

import (
	"fmt"
	"log/slog"
	"os"
	"sync"

	"github.com/alvaroalonsobabbel/srs-tetris/config"
	"github.com/alvaroalonsobabbel/srs-tetris/input"
	"github.com/alvaroalonsobabbel/srs-tetris/session"
	"github.com/alvaroalonsobabbel/srs-tetris/tetris"
	"github.com/eiannone/keyboard"
)

type clientState int

const (
	lobby clientState = iota
	playing
)

type state struct {
	current clientState
	mu      sync.Mutex
}

func (s *state) get() clientState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current
}

func (s *state) set(c clientState) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.current = c
}

type gameSession interface {
	Start()
	Stop()
	Action(session.Action)
	Updates() <-chan tetris.Snapshot
}

type renderer interface {
	game(*tetris.Snapshot)
	lobby(msg ...string)
	reset()
}

type Client struct {
	newSession func() gameSession
	session    gameSession
	render     renderer
	logger     *slog.Logger
	kbCh       <-chan keyboard.KeyEvent
	state      *state
}

// New opens the keyboard, the caller is responsible for calling keyboard.Close.
func New(l *slog.Logger, c *config.Config) (*Client, error) {
	r, err := newRender(os.Stdout, l, c.NoGhost)
	if err != nil {
		return nil, fmt.Errorf("failed to load renderer: %w", err)
	}
	kb, err := keyboard.GetKeys(20)
	if err != nil {
		return nil, fmt.Errorf("failed to open keyboard: %w", err)
	}
	return &Client{
		newSession: func() gameSession { return session.New(l, c) },
		render:     r,
		logger:     l,
		kbCh:       kb,
		state:      &state{current: lobby},
	}, nil
}

// Start blocks until the player quits.
func (c *Client) Start() {
	c.render.lobby(welcome()...)
	var wg sync.WaitGroup
	wg.Add(1)
	go c.listenKB(&wg)
	wg.Wait()
}

func (c *Client) listenKB(wg *sync.WaitGroup) {
	defer wg.Done()
	defer func() {
		if c.session != nil {
			c.session.Stop()
		}
	}()
	for {
		event, ok := <-c.kbCh
		if !ok {
			c.logger.Error("keyboard events channel closed unexpectedly")
			return
		}
		if event.Err != nil {
			c.logger.Error("keysEvents error", slog.String("error", event.Err.Error()))
			return
		}
		if input.IsQuit(event) {
			return
		}
		switch c.state.get() {
		case lobby:
			switch event.Rune {
			case 'p':
				c.session = c.newSession()
				c.state.set(playing)
				c.render.reset()
				go c.listenGame(c.session)
			case 'q':
				return
			}
		case playing:
			if a, ok := input.Translate(event); ok {
				c.session.Action(a)
			}
		}
	}
}

func (c *Client) listenGame(s gameSession) {
	defer c.state.set(lobby)
	s.Start()
	for snap := range s.Updates() {
		c.render.game(&snap)
		if !snap.Running {
			c.render.lobby(gameOver(&snap)...)
		}
	}
}

func welcome() []string {
	return []string{
		"Welcome to Terminal Tetris",
		"",
		"(p)lay   (q)uit",
	}
}

func gameOver(s *tetris.Snapshot) []string {
	return []string{
		fmt.Sprintf("Game Over :) %s", s.EndReason),
		fmt.Sprintf("score %d  lines %d  level %d", s.Score, s.Lines, s.Level),
		"(p)lay   (q)uit",
	}
}
