package tetris

import "strings"

const (
	Columns     = 10 // playable columns, bits 0 to 9 of a row
	Rows        = 40 // full buffer including the hidden rows above the field
	VisibleRows = 20
	ShownRows   = VisibleRows + 2 // the visible rows plus the two rows pieces spawn in

	// rowMargin marks bits 10 to 15 as occupied so the right wall needs no bounds check.
	rowMargin uint16 = 0b1111110000000000
)

// Playfield is the collision mask of the stack, one uint16 per row, row 0 at the bottom.
type Playfield [Rows]uint16

func emptyPlayfield() Playfield {
	var p Playfield
	for i := range p {
		p[i] = rowMargin
	}
	return p
}

// Collides reports whether t overlaps the stack or leaves the buffer.
func (p *Playfield) Collides(t Tetromino) bool {
	// 		0 1 2 3 4 5 6 7 8 9 | margin
	// 21	O . . . . . . . . . | X X X X X X
	// 20	O O O . . . . . . . | X X X X X X
	//
	// t.Y addresses the lowest row of the mask, the mask spans 4 rows up.
	if t.X < 0 || t.X >= Columns || t.Y < 0 || t.Y >= Rows-4 {
		return true
	}
	for i, m := range t.Mask() {
		if m&p[t.Y+i] != 0 {
			return true
		}
	}
	return false
}

// full reports whether row y has every playable column occupied.
func (p *Playfield) full(y int) bool {
	return ^p[y] == 0
}

// remove deletes row y shifting every row above it down by one.
func (p *Playfield) remove(y int) {
	copy(p[y:], p[y+1:])
	p[Rows-1] = rowMargin
}

// String draws the visible rows top to bottom, O for occupied cells.
func (p Playfield) String() string {
	var b strings.Builder
	for y := VisibleRows - 1; y >= 0; y-- {
		for x := range Columns {
			if p[y]&(1<<x) != 0 {
				b.WriteString("O")
			} else {
				b.WriteString(".")
			}
		}
		b.WriteString("\n")
	}
	return b.String()
}
