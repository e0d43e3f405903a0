package game

import (
	"time"

	"github.com/qnkhuat/tetterm/pkg/mino"
)

// Snapshot is a read-only copy of everything a renderer needs. It shares no
// memory with the game and can be handed to another goroutine.
//
// Piece and ghost coordinates are in visible space: row 0 is the first drawn
// row. Blocks still inside the hidden rows are left out.
type Snapshot struct {
	Width  int
	Height int
	Cells  [][]mino.Block

	Piece      []mino.Point
	PieceBlock mino.Block
	Ghost      []mino.Point

	Next      mino.PieceType
	NextShape []mino.Point

	Score        int
	Level        int
	Lines        int
	Pieces       int
	State        State
	FallInterval time.Duration
}

// Cell returns the colour to draw at visible (x, y), the falling piece on top
// of the locked cells. Ghost cells are not included.
func (s *Snapshot) Cell(x int, y int) mino.Block {
	if y < 0 || y >= len(s.Cells) || x < 0 || x >= len(s.Cells[y]) {
		return mino.BlockInvalid
	}

	for _, p := range s.Piece {
		if p.X == x && p.Y == y {
			return s.PieceBlock
		}
	}

	return s.Cells[y][x]
}

// IsGhost reports whether visible (x, y) is part of the landing preview.
func (s *Snapshot) IsGhost(x int, y int) bool {
	for _, p := range s.Ghost {
		if p.X == x && p.Y == y {
			return true
		}
	}

	return false
}

func (g *Game) Snapshot() *Snapshot {
	s := &Snapshot{
		Width:        g.board.W,
		Height:       g.board.H,
		Cells:        g.board.Visible(),
		Next:         mino.PieceNone,
		Score:        g.score,
		Level:        g.level,
		Lines:        g.lines,
		Pieces:       g.Pieces(),
		State:        g.state,
		FallInterval: g.fallInterval,
	}

	if g.current != nil {
		s.Piece = g.visible(g.current.Blocks())
		s.PieceBlock = g.current.Block()
	}

	// The landing preview is only shown while the piece can still move.
	if g.current != nil && g.state == StateActive {
		ghost := *g.current
		ghost.Move(0, g.dropDistance(&ghost))
		s.Ghost = g.visible(ghost.Blocks())
	}

	if g.next != nil {
		s.Next = g.next.Type
		s.NextShape = mino.Shape(g.next.Type, mino.Rotation0)
	}

	return s
}

// visible shifts board coordinates into visible space, dropping hidden ones.
func (g *Game) visible(points []mino.Point) []mino.Point {
	out := make([]mino.Point, 0, len(points))
	for _, p := range points {
		if p.Y < g.board.B {
			continue
		}

		out = append(out, mino.Point{X: p.X, Y: p.Y - g.board.B})
	}

	return out
}
