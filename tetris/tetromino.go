package tetris

type Shape string

const (
	I Shape = "I"
	J Shape = "J"
	L Shape = "L"
	O Shape = "O"
	S Shape = "S"
	T Shape = "T"
	Z Shape = "Z"
)

// Shapes lists every tetromino in bag order.
var Shapes = [7]Shape{I, J, L, O, S, T, Z}

// Color is the RGB color a cell is rendered with.
type Color struct {
	R, G, B uint8
}

// Background is the color of an empty cell.
var Background = Color{}

var colorMap = map[Shape]Color{
	I: {0, 255, 255}, // cyan
	J: {0, 0, 255},   // blue
	L: {255, 127, 0}, // orange
	O: {255, 255, 0}, // yellow
	S: {0, 255, 0},   // green
	T: {255, 0, 255}, // purple
	Z: {255, 0, 0},   // red
}

// Color returns the color the shape is painted with.
func (s Shape) Color() Color {
	return colorMap[s]
}

// Spawn returns the shape at its spawn location, just above the visible stack.
func (s Shape) Spawn() Tetromino {
	x := 3
	if s == O {
		x = 4
	}
	return Tetromino{
		Shape:    s,
		X:        x,
		Y:        VisibleRows,
		Rotation: Rotate0,
	}
}

type Rotation int

const (
	Rotate0 Rotation = iota
	Rotate90
	Rotate180
	Rotate270
)

// Right returns the rotation one step clockwise.
func (r Rotation) Right() Rotation { return (r + 1) % 4 }

// Left returns the rotation one step counter-clockwise.
func (r Rotation) Left() Rotation { return (r + 3) % 4 }

// Tetromino is the falling piece.
// X is the column of the leftmost cell and Y the row of the lowest cell.
type Tetromino struct {
	Shape    Shape
	X, Y     int
	Rotation Rotation
}

// Mask returns the tetromino's row masks, lowest row first.
func (t Tetromino) Mask() [4]uint16 {
	return MaskFor(t.Shape, t.Rotation, t.X)
}

// Color returns the color of the tetromino's shape.
func (t Tetromino) Color() Color {
	return t.Shape.Color()
}

/*
masks holds every shape in every rotation with the leftmost column at bit 0.
Index 0 is the lowest row. For example J at Rotate0:

.	3	. . . .
.	2	. . . .
.	1	O . . .		0b001
.	0	O O O .		0b111
*/
var masks = map[Shape][4][4]uint16{
	I: {
		{0b1111, 0, 0, 0},
		{0b1, 0b1, 0b1, 0b1},
		{0b1111, 0, 0, 0},
		{0b1, 0b1, 0b1, 0b1},
	},
	J: {
		{0b111, 0b1, 0, 0},
		{0b1, 0b1, 0b11, 0},
		{0b100, 0b111, 0, 0},
		{0b11, 0b10, 0b10, 0},
	},
	L: {
		{0b111, 0b100, 0, 0},
		{0b11, 0b1, 0b1, 0},
		{0b1, 0b111, 0, 0},
		{0b10, 0b10, 0b11, 0},
	},
	O: {
		{0b11, 0b11, 0, 0},
		{0b11, 0b11, 0, 0},
		{0b11, 0b11, 0, 0},
		{0b11, 0b11, 0, 0},
	},
	S: {
		{0b11, 0b110, 0, 0},
		{0b10, 0b11, 0b1, 0},
		{0b11, 0b110, 0, 0},
		{0b10, 0b11, 0b1, 0},
	},
	T: {
		{0b111, 0b10, 0, 0},
		{0b1, 0b11, 0b1, 0},
		{0b10, 0b111, 0, 0},
		{0b10, 0b11, 0b10, 0},
	},
	Z: {
		{0b110, 0b11, 0, 0},
		{0b1, 0b11, 0b10, 0},
		{0b110, 0b11, 0, 0},
		{0b1, 0b11, 0b10, 0},
	},
}

// MaskFor returns the row masks of shape s in rotation r shifted to column x.
// x must be within [0, Columns) for the mask to fit in 16 bits.
func MaskFor(s Shape, r Rotation, x int) [4]uint16 {
	m := masks[s][r]
	for i := range m {
		m[i] <<= x
	}
	return m
}
