package tetris

// Sequence is a Randomizer that cycles over a fixed list of shapes.
type Sequence struct {
	shapes []Shape
	i      int
}

func NewSequence(shapes ...Shape) *Sequence {
	if len(shapes) == 0 {
		shapes = Shapes[:]
	}
	return &Sequence{shapes: shapes}
}

func (s *Sequence) Next() Shape {
	shape := s.shapes[s.i%len(s.shapes)]
	s.i++
	return shape
}

// NewTestGame creates a game with an empty stack whose pieces come in the given order.
// Without shapes it cycles I, J, L, O, S, T, Z.
func NewTestGame(shapes ...Shape) *Game {
	return New(WithRandomizer(NewSequence(shapes...)))
}

// NewTestGameWithRuleset is NewTestGame with a custom ruleset.
func NewTestGameWithRuleset(r Ruleset, shapes ...Shape) *Game {
	return New(WithRandomizer(NewSequence(shapes...)), WithRuleset(r))
}
