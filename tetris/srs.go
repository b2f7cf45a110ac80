package tetris

// Rotator attempts to rotate a tetromino against the playfield.
// It returns false when the rotation is rejected.
type Rotator interface {
	RotateLeft(t Tetromino, p Playfield) (Tetromino, bool)
	RotateRight(t Tetromino, p Playfield) (Tetromino, bool)
}

type offset struct{ x, y int }

// Wall kick tests based on https://tetris.wiki/Super_Rotation_System
// indexed by the rotation a clockwise turn starts from. Counter-clockwise
// turns use the entry of the rotation they end in, negated.
//
// .		J, L, O, S, T, Z
// 0->R		( 0, 0)	(-1, 0)	(-1, 1)	( 0,-2)	(-1,-2)
// R->2		( 0, 0)	( 1, 0)	( 1,-1)	( 0, 2)	( 1, 2)
// 2->L		( 0, 0)	( 1, 0)	( 1, 1)	( 0,-2)	( 1,-2)
// L->0		( 0, 0)	(-1, 0)	(-1,-1)	( 0, 2)	(-1, 2)
var kicks = [4][5]offset{
	{{0, 0}, {-1, 0}, {-1, 1}, {0, -2}, {-1, -2}},
	{{0, 0}, {1, 0}, {1, -1}, {0, 2}, {1, 2}},
	{{0, 0}, {1, 0}, {1, 1}, {0, -2}, {1, -2}},
	{{0, 0}, {-1, 0}, {-1, -1}, {0, 2}, {-1, 2}},
}

// .		I
// 0->R		( 0, 0)	(-2, 0)	( 1, 0)	(-2,-1)	( 1, 2)
// R->2		( 0, 0)	(-1, 0)	( 2, 0)	(-1, 2)	( 2,-1)
// 2->L		( 0, 0)	( 2, 0)	(-1, 0)	( 2, 1)	(-1,-2)
// L->0		( 0, 0)	( 1, 0)	(-2, 0)	( 1,-2)	(-2, 1)
var kicksI = [4][5]offset{
	{{0, 0}, {-2, 0}, {1, 0}, {-2, -1}, {1, 2}},
	{{0, 0}, {-1, 0}, {2, 0}, {-1, 2}, {2, -1}},
	{{0, 0}, {2, 0}, {-1, 0}, {2, 1}, {-1, -2}},
	{{0, 0}, {1, 0}, {-2, 0}, {1, -2}, {-2, 1}},
}

// pivots moves the masks' origin so the piece turns around its SRS center.
// Masks are anchored at their lowest row and leftmost column, which shifts
// between rotations.
var pivots = map[Shape][4]offset{
	I: {{2, -2}, {-2, 1}, {1, -1}, {-1, 2}},
	J: {{1, -1}, {-1, 0}, {0, 0}, {0, 1}},
	L: {{1, -1}, {-1, 0}, {0, 0}, {0, 1}},
	O: {},
	S: {{1, -1}, {-1, 0}, {0, 0}, {0, 1}},
	T: {{1, -1}, {-1, 0}, {0, 0}, {0, 1}},
	Z: {{1, -1}, {-1, 0}, {0, 0}, {0, 1}},
}

// SRS is the Super Rotation System.
type SRS struct{}

func (SRS) RotateLeft(t Tetromino, p Playfield) (Tetromino, bool) {
	return rotate(t, &p, false)
}

func (SRS) RotateRight(t Tetromino, p Playfield) (Tetromino, bool) {
	return rotate(t, &p, true)
}

func rotate(t Tetromino, p *Playfield, clockwise bool) (Tetromino, bool) {
	rotated := t
	key := t.Rotation
	sign := 1
	if clockwise {
		rotated.Rotation = t.Rotation.Right()
	} else {
		rotated.Rotation = t.Rotation.Left()
		key = rotated.Rotation
		sign = -1
	}

	tests := kicks[key]
	if t.Shape == I {
		tests = kicksI[key]
	}
	pivot := pivots[t.Shape][key]
	x := t.X + pivot.x*sign
	y := t.Y + pivot.y*sign

	// the first test that fits wins even if a later one would too.
	for _, k := range tests {
		rotated.X = x + k.x*sign
		rotated.Y = y + k.y*sign
		if rotated.X < 0 || rotated.Y < 0 {
			continue
		}
		if !p.Collides(rotated) {
			return rotated, true
		}
	}
	return t, false
}
