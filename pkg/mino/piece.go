package mino

import (
	"fmt"
)

const (
	Rotation0 = 0
	RotationR = 1
	Rotation2 = 2
	RotationL = 3

	RotationStates = 4

	// ShapeSize is the edge of the square box every rotation state fits in.
	ShapeSize = 4
)

// SpawnPoint is where new pieces are placed: column 4 of the top hidden row.
var SpawnPoint = Point{4, 0}

type PieceType int

const (
	PieceNone PieceType = iota - 1
	PieceI
	PieceO
	PieceT
	PieceS
	PieceZ
	PieceJ
	PieceL

	PieceTypes = 7
)

func (t PieceType) String() string {
	switch t {
	case PieceI:
		return "I"
	case PieceO:
		return "O"
	case PieceT:
		return "T"
	case PieceS:
		return "S"
	case PieceZ:
		return "Z"
	case PieceJ:
		return "J"
	case PieceL:
		return "L"
	default:
		return "none"
	}
}

// Valid reports whether t names one of the seven tetrominoes.
func (t PieceType) Valid() bool {
	return t >= PieceI && t <= PieceL
}

// Block returns the cell value a piece of this type locks into the board with.
func (t PieceType) Block() Block {
	if !t.Valid() {
		return BlockNone
	}

	return Block(t) + 1
}

// shapeRows lists every rotation state of every piece as four rows of four
// cells, top row first. Rotation states advance clockwise.
var shapeRows = [PieceTypes][RotationStates][ShapeSize]string{
	PieceI: {
		{"....", "XXXX", "....", "...."},
		{"..X.", "..X.", "..X.", "..X."},
		{"....", "....", "XXXX", "...."},
		{".X..", ".X..", ".X..", ".X.."},
	},
	PieceO: {
		{".XX.", ".XX.", "....", "...."},
		{".XX.", ".XX.", "....", "...."},
		{".XX.", ".XX.", "....", "...."},
		{".XX.", ".XX.", "....", "...."},
	},
	PieceT: {
		{".X..", "XXX.", "....", "...."},
		{".X..", ".XX.", ".X..", "...."},
		{"....", "XXX.", ".X..", "...."},
		{".X..", "XX..", ".X..", "...."},
	},
	PieceS: {
		{".XX.", "XX..", "....", "...."},
		{".X..", ".XX.", "..X.", "...."},
		{"....", ".XX.", "XX..", "...."},
		{"X...", "XX..", ".X..", "...."},
	},
	PieceZ: {
		{"XX..", ".XX.", "....", "...."},
		{"..X.", ".XX.", ".X..", "...."},
		{"....", "XX..", ".XX.", "...."},
		{".X..", "XX..", "X...", "...."},
	},
	PieceJ: {
		{"X...", "XXX.", "....", "...."},
		{".XX.", ".X..", ".X..", "...."},
		{"....", "XXX.", "..X.", "...."},
		{".X..", ".X..", "XX..", "...."},
	},
	PieceL: {
		{"..X.", "XXX.", "....", "...."},
		{".X..", ".X..", ".XX.", "...."},
		{"....", "XXX.", "X...", "...."},
		{"XX..", ".X..", ".X..", "...."},
	},
}

// rotations is indexed by [type][rotation][row][column].
var rotations = buildRotations()

func buildRotations() [PieceTypes][RotationStates][ShapeSize][ShapeSize]bool {
	var r [PieceTypes][RotationStates][ShapeSize][ShapeSize]bool
	for t := range shapeRows {
		for rot := range shapeRows[t] {
			for y, row := range shapeRows[t][rot] {
				for x, c := range row {
					r[t][rot][y][x] = c == 'X'
				}
			}
		}
	}

	return r
}

// Shape returns the cells of a rotation state relative to the top-left corner
// of its 4x4 box, scanned row by row.
func Shape(t PieceType, rotation int) []Point {
	if !t.Valid() {
		return nil
	}

	rotation = normalizeRotation(rotation)

	var points []Point
	for y := 0; y < ShapeSize; y++ {
		for x := 0; x < ShapeSize; x++ {
			if rotations[t][rotation][y][x] {
				points = append(points, Point{x, y})
			}
		}
	}

	return points
}

func normalizeRotation(r int) int {
	r %= RotationStates
	if r < 0 {
		r += RotationStates
	}

	return r
}

// Piece is a tetromino placed somewhere relative to a board. The embedded
// Point is the top-left corner of the piece's 4x4 box.
type Piece struct {
	Point
	Type     PieceType
	Rotation int
}

// NewPiece returns a piece of type t at the spawn point in rotation state 0.
// A PieceNone placeholder sits at the origin.
func NewPiece(t PieceType) *Piece {
	if !t.Valid() {
		return &Piece{Type: PieceNone}
	}

	return &Piece{Point: SpawnPoint, Type: t}
}

func (p *Piece) String() string {
	return fmt.Sprintf("%s@%s/%d", p.Type, p.Point, p.Rotation)
}

// Move translates the piece. It never fails; validity is up to the board.
func (p *Piece) Move(dx, dy int) {
	p.X += dx
	p.Y += dy
}

// Rotate advances the rotation state by one step: 1 is clockwise, -1 is
// counter-clockwise.
func (p *Piece) Rotate(direction int) {
	p.Rotation = normalizeRotation(p.Rotation + direction)
}

// Blocks returns the board coordinates covered by the piece.
func (p *Piece) Blocks() []Point {
	shape := Shape(p.Type, p.Rotation)
	for i := range shape {
		shape[i] = shape[i].Add(p.Point)
	}

	return shape
}

// Block is the colour the piece locks into the board with.
func (p *Piece) Block() Block {
	return p.Type.Block()
}
