package mino

import (
	"strings"
)

const (
	Width      = 10
	Height     = 20
	HiddenRows = 2
)

// I returns the index of (x, y) in a row-major grid of width w.
func I(x int, y int, w int) int {
	return (y * w) + x
}

// Board holds the locked cells of the well. Row 0 is the topmost hidden row
// and y grows downward; the first B rows are a spawn buffer that is never
// drawn. The board knows nothing about the falling piece.
type Board struct {
	W int // Width
	H int // Visible height
	B int // Hidden buffer height

	M []Block
}

// NewBoard returns an empty standard board.
func NewBoard() *Board {
	return NewBoardSize(Width, Height, HiddenRows)
}

func NewBoardSize(w int, h int, b int) *Board {
	return &Board{W: w, H: h, B: b, M: make([]Block, w*(h+b))}
}

// Rows is the total number of rows, hidden ones included.
func (b *Board) Rows() int {
	return b.H + b.B
}

func (b *Board) inBounds(x int, y int) bool {
	return x >= 0 && x < b.W && y >= 0 && y < b.Rows()
}

// Cell returns the value at (x, y), or BlockInvalid outside the board.
func (b *Board) Cell(x int, y int) Block {
	if !b.inBounds(x, y) {
		return BlockInvalid
	}

	return b.M[I(x, y, b.W)]
}

// SetCell writes block at (x, y). Out of bounds writes are dropped.
func (b *Board) SetCell(x int, y int, block Block) bool {
	if !b.inBounds(x, y) {
		return false
	}

	b.M[I(x, y, b.W)] = block
	return true
}

// Occupied treats the side walls and the floor as solid and everything above
// row 0 as open, so a piece may poke out of the top while it enters.
func (b *Board) Occupied(x int, y int) bool {
	if x < 0 || x >= b.W || y >= b.Rows() {
		return true
	} else if y < 0 {
		return false
	}

	return b.M[I(x, y, b.W)] != BlockNone
}

// CanPlace reports whether every block of p lies on an open cell.
func (b *Board) CanPlace(p *Piece) bool {
	for _, pt := range p.Blocks() {
		if b.Occupied(pt.X, pt.Y) {
			return false
		}
	}

	return true
}

// Place writes the blocks of p into the board with the piece's colour and
// returns how many were written. Blocks outside the board are skipped.
func (b *Board) Place(p *Piece) int {
	var (
		block   = p.Block()
		written int
	)
	for _, pt := range p.Blocks() {
		if b.SetCell(pt.X, pt.Y, block) {
			written++
		}
	}

	return written
}

// LineComplete reports whether every column of row y is filled.
func (b *Board) LineComplete(y int) bool {
	if y < 0 || y >= b.Rows() {
		return false
	}

	for x := 0; x < b.W; x++ {
		if b.M[I(x, y, b.W)] == BlockNone {
			return false
		}
	}

	return true
}

// ClearLines removes every complete row, working from the floor up. Rows above
// a removed row drop by one and an empty row appears at the top, so the same
// row index is checked again before moving on.
func (b *Board) ClearLines() int {
	cleared := 0

	for y := b.Rows() - 1; y >= 0; {
		if !b.LineComplete(y) {
			y--
			continue
		}

		b.removeLine(y)
		cleared++
	}

	return cleared
}

func (b *Board) removeLine(y int) {
	copy(b.M[b.W:I(0, y+1, b.W)], b.M[:I(0, y, b.W)])

	for x := 0; x < b.W; x++ {
		b.M[x] = BlockNone
	}
}

// Clear empties every cell.
func (b *Board) Clear() {
	for i := range b.M {
		b.M[i] = BlockNone
	}
}

// Filled counts the occupied cells.
func (b *Board) Filled() int {
	filled := 0
	for _, block := range b.M {
		if block != BlockNone {
			filled++
		}
	}

	return filled
}

// Copy returns an independent copy of the board.
func (b *Board) Copy() *Board {
	c := &Board{W: b.W, H: b.H, B: b.B, M: make([]Block, len(b.M))}
	copy(c.M, b.M)

	return c
}

// Visible returns the drawable rows, top first, without the hidden buffer.
func (b *Board) Visible() [][]Block {
	rows := make([][]Block, b.H)
	for y := range rows {
		rows[y] = make([]Block, b.W)
		copy(rows[y], b.M[I(0, y+b.B, b.W):I(0, y+b.B+1, b.W)])
	}

	return rows
}

// Render dumps the visible rows as text, one line per row.
func (b *Board) Render() string {
	var s strings.Builder

	for y := b.B; y < b.Rows(); y++ {
		for x := 0; x < b.W; x++ {
			s.WriteRune(b.M[I(x, y, b.W)].Rune())
		}

		if y < b.Rows()-1 {
			s.WriteRune('\n')
		}
	}

	return s.String()
}
