// Package tetris contains the rules of the game
// based on https://tetris.wiki/Tetris_Guideline
//
// The engine does no I/O and keeps no clock: the host calls the intent
// methods as input arrives and Update once per tick, usually 60 times per
// second, then reads the state back to render it.
package tetris

import "math"

// NextSize is the length of the preview queue.
const NextSize = 6

// maxGravity caps the fall speed in rows per tick (20G).
const maxGravity = 20

// EndReason tells why the game is over.
type EndReason int

const (
	NotEnded EndReason = iota
	LockOut            // a piece locked above the visible stack
	BlockOut           // a new piece spawned overlapping the stack
)

func (e EndReason) String() string {
	switch e {
	case LockOut:
		return "lock out"
	case BlockOut:
		return "block out"
	default:
		return "not ended"
	}
}

type direction int

const (
	none direction = iota
	left
	right
)

type Game struct {
	rules      Ruleset
	randomizer Randomizer
	rotator    Rotator

	ended     EndReason
	tetromino Tetromino
	ghost     Tetromino
	next      [NextSize]Shape
	held      Shape
	holdLock  bool

	// playfield and colors always have the same cells set.
	playfield Playfield
	colors    [Rows][Columns]Color

	level      int
	levelLines int // lines towards the next level
	lines      int
	score      int

	gravity    float64 // rows per tick at the current level
	movement   float64
	lockTicks  int
	lockResets int

	dasMovement float64
	dasTicks    int
	leftHeld    bool
	rightHeld   bool
	direction   direction
	dropHeld    bool

	// rows waiting to be removed, lowest first.
	clears     [4]int
	clearCount int
}

type Option func(*Game)

func WithRandomizer(r Randomizer) Option {
	return func(g *Game) { g.randomizer = r }
}

func WithRotator(r Rotator) Option {
	return func(g *Game) { g.rotator = r }
}

// WithRuleset replaces the default ruleset. It is expected to be valid, see Ruleset.Validate.
func WithRuleset(r Ruleset) Option {
	return func(g *Game) { g.rules = r }
}

func New(opts ...Option) *Game {
	g := &Game{
		rules:     DefaultRuleset(),
		rotator:   SRS{},
		playfield: emptyPlayfield(),
	}
	for _, opt := range opts {
		opt(g)
	}
	if g.randomizer == nil {
		g.randomizer = NewRandomBag()
	}

	g.tetromino = g.randomizer.Next().Spawn()
	for i := range g.next {
		g.next[i] = g.randomizer.Next()
	}
	g.setGhost()
	g.setGravity()
	return g
}

func (g *Game) Running() bool               { return g.ended == NotEnded }
func (g *Game) EndReason() EndReason        { return g.ended }
func (g *Game) Current() Tetromino          { return g.tetromino }
func (g *Game) Ghost() Tetromino            { return g.ghost }
func (g *Game) Next() [NextSize]Shape       { return g.next }
func (g *Game) Board() [Rows][Columns]Color { return g.colors }
func (g *Game) Playfield() Playfield        { return g.playfield }
func (g *Game) Level() int                  { return g.level }
func (g *Game) Lines() int                  { return g.lines }
func (g *Game) Score() int                  { return g.score }

// Clearing reports whether full rows are waiting to be removed on the next tick.
func (g *Game) Clearing() bool { return g.clearCount > 0 }

// Held returns the held shape, if any.
func (g *Game) Held() (Shape, bool) { return g.held, g.held != "" }

// Visible returns the colors of the shown rows, row 0 at the bottom.
func (g *Game) Visible() [ShownRows][Columns]Color {
	var v [ShownRows][Columns]Color
	copy(v[:], g.colors[:ShownRows])
	return v
}

func (g *Game) MoveLeft() {
	if g.Running() {
		g.shift(-1)
	}
}

func (g *Game) MoveRight() {
	if g.Running() {
		g.shift(1)
	}
}

func (g *Game) shift(dx int) {
	t := g.tetromino
	t.X += dx
	if g.playfield.Collides(t) {
		return
	}
	g.tetromino = t
	g.resetLock()
	g.setGhost()
}

// SetLeft sets whether left is held down. Pressing it shifts once right away,
// holding it auto shifts after the DAS delay.
func (g *Game) SetLeft(held bool) {
	if !g.Running() || held == g.leftHeld {
		return
	}
	if held {
		g.shift(-1)
	}
	g.leftHeld = held
	g.setDirection(held, left, g.rightHeld, right)
}

// SetRight sets whether right is held down, see SetLeft.
func (g *Game) SetRight(held bool) {
	if !g.Running() || held == g.rightHeld {
		return
	}
	if held {
		g.shift(1)
	}
	g.rightHeld = held
	g.setDirection(held, right, g.leftHeld, left)
}

// setDirection picks the auto shift direction after an input changed.
// The last pressed side wins, releasing it hands over to the other one if still held.
func (g *Game) setDirection(held bool, d direction, otherHeld bool, other direction) {
	g.dasTicks = 0
	g.dasMovement = 0
	switch {
	case held:
		g.direction = d
	case otherHeld:
		g.direction = other
	default:
		g.direction = none
	}
}

func (g *Game) RotateLeft() {
	if !g.Running() {
		return
	}
	if t, ok := g.rotator.RotateLeft(g.tetromino, g.playfield); ok {
		g.rotated(t)
	}
}

func (g *Game) RotateRight() {
	if !g.Running() {
		return
	}
	if t, ok := g.rotator.RotateRight(g.tetromino, g.playfield); ok {
		g.rotated(t)
	}
}

func (g *Game) rotated(t Tetromino) {
	g.tetromino = t
	g.resetLock()
	g.setGhost()
}

// Hold swaps the falling piece with the held one, or with the next piece if
// nothing is held. It can be used once until the next piece locks.
func (g *Game) Hold() {
	if !g.Running() || g.holdLock {
		return
	}
	shape := g.held
	if shape == "" {
		shape = g.dequeue()
	}
	g.held = g.tetromino.Shape
	g.spawn(shape)
	g.holdLock = true
}

// SetDrop sets whether soft drop is held down.
func (g *Game) SetDrop(held bool) {
	if g.Running() {
		g.dropHeld = held
	}
}

// HardDrop locks the piece at the ghost position.
func (g *Game) HardDrop() {
	if !g.Running() {
		return
	}
	g.score += 2 * (g.tetromino.Y - g.ghost.Y)
	g.lock(g.ghost)
}

// Update advances the game one tick.
func (g *Game) Update() {
	if !g.Running() {
		return
	}

	// a tick with full rows pending only removes them.
	if g.clearCount > 0 {
		g.clearLines()
		return
	}

	gravity := g.gravity
	if g.dropHeld {
		gravity *= g.rules.DropMultiplier
	}
	g.movement += gravity
	for g.movement >= 1 {
		g.fall()
		g.movement--
	}

	if g.direction != none {
		if g.dasTicks < g.rules.DASDelay {
			g.dasTicks++
		} else {
			g.dasMovement += g.rules.DASRate
			for g.dasMovement >= 1 {
				if g.direction == left {
					g.shift(-1)
				} else {
					g.shift(1)
				}
				g.dasMovement--
			}
		}
	}

	if g.ghost.Y == g.tetromino.Y {
		g.lockTicks++
	}
	if g.lockTicks >= g.rules.LockDelay {
		g.lock(g.tetromino)
		if !g.Running() {
			return
		}
	}

	g.findLines()
}

func (g *Game) fall() {
	t := g.tetromino
	t.Y--
	if g.playfield.Collides(t) {
		return
	}
	g.tetromino = t
	if g.dropHeld {
		g.score++
	}
}

// lock moves t into the stack and spawns the next piece.
func (g *Game) lock(t Tetromino) {
	c := t.Color()
	for i, m := range t.Mask() {
		y := t.Y + i
		g.playfield[y] |= m
		for x := range Columns {
			if m&(1<<x) != 0 {
				g.colors[y][x] = c
			}
		}
	}

	if t.Y > VisibleRows {
		g.ended = LockOut
		return
	}

	g.spawn(g.dequeue())
	g.holdLock = false
}

// dequeue pops the next shape and refills the queue from the randomizer.
func (g *Game) dequeue() Shape {
	s := g.next[0]
	copy(g.next[:], g.next[1:])
	g.next[len(g.next)-1] = g.randomizer.Next()
	return s
}

func (g *Game) spawn(s Shape) {
	g.tetromino = s.Spawn()
	if g.playfield.Collides(g.tetromino) {
		g.ended = BlockOut
	}
	g.movement = 0
	g.lockTicks = 0
	g.lockResets = 0
	g.setGhost()
}

// resetLock restarts the lock delay of a grounded piece after a move or
// rotation, up to LockResets times per piece.
func (g *Game) resetLock() {
	if g.lockTicks > 0 && g.lockResets < g.rules.LockResets {
		g.lockResets++
		g.lockTicks = 0
	}
}

// setGhost drops a copy of the tetromino down until it lands.
func (g *Game) setGhost() {
	g.ghost = g.tetromino
	for g.ghost.Y > 0 {
		t := g.ghost
		t.Y--
		if g.playfield.Collides(t) {
			return
		}
		g.ghost = t
	}
}

// findLines buffers up to 4 full rows, the most a single piece can complete.
func (g *Game) findLines() {
	for y := range g.playfield {
		if !g.playfield.full(y) {
			continue
		}
		g.clears[g.clearCount] = y
		g.clearCount++
		if g.clearCount == len(g.clears) {
			return
		}
	}
}

func (g *Game) clearLines() {
	n := g.clearCount
	g.score += g.rules.LineScores[n] * (g.level + 1)
	g.lines += n
	g.levelLines += n
	if goal := g.rules.LinesPerLevel + g.level*g.rules.LinesPerLevelStep; g.levelLines >= goal {
		g.levelLines -= goal
		g.level++
		g.setGravity()
	}

	// remove rows top to bottom so the pending indexes don't shift.
	for i := n - 1; i >= 0; i-- {
		y := g.clears[i]
		g.playfield.remove(y)
		copy(g.colors[y:], g.colors[y+1:])
		g.colors[Rows-1] = [Columns]Color{}
	}
	g.clearCount = 0
	g.setGhost()
}

// setGravity sets the fall speed for the current level.
// Based on https://tetris.wiki/Marathon
//
// Time = (0.8-(Level*0.007))^Level seconds per row, at 60 ticks per second.
func (g *Game) setGravity() {
	seconds := math.Pow(0.8-float64(g.level)*0.007, float64(g.level))
	g.gravity = maxGravity
	if seconds > 0 {
		g.gravity = math.Min(1/(seconds*60), maxGravity)
	}
}
