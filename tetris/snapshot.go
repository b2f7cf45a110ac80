package tetris

// Snapshot is a copy of everything a renderer needs. It shares no memory with the game.
type Snapshot struct {
	Tetromino Tetromino
	Ghost     Tetromino
	Stack     [ShownRows][Columns]Color
	Held      Shape // empty when nothing is held
	Next      [NextSize]Shape
	Level     int
	Lines     int
	Score     int
	Running   bool
	EndReason EndReason
}

// Snapshot returns a copy of the current state that's safe to hand to another goroutine.
func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		Tetromino: g.tetromino,
		Ghost:     g.ghost,
		Stack:     g.Visible(),
		Held:      g.held,
		Next:      g.next,
		Level:     g.level,
		Lines:     g.lines,
		Score:     g.score,
		Running:   g.Running(),
		EndReason: g.ended,
	}
}
