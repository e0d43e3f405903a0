package mino

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShapesHaveFourCells(t *testing.T) {
	for pt := PieceI; pt <= PieceL; pt++ {
		for r := 0; r < RotationStates; r++ {
			assert.Lenf(t, Shape(pt, r), 4, "piece %s rotation %d", pt, r)
		}
	}
}

func TestShapeRotationIsClockwise(t *testing.T) {
	// Rotating a shape's cells by 90 degrees clockwise within its bounding box
	// has to land on the next rotation state, up to a translation.
	normalize := func(ps []Point) map[Point]bool {
		minX, minY := ps[0].X, ps[0].Y
		for _, p := range ps {
			if p.X < minX {
				minX = p.X
			}
			if p.Y < minY {
				minY = p.Y
			}
		}

		out := make(map[Point]bool, len(ps))
		for _, p := range ps {
			out[Point{p.X - minX, p.Y - minY}] = true
		}
		return out
	}

	for pt := PieceI; pt <= PieceL; pt++ {
		for r := 0; r < RotationStates; r++ {
			var turned []Point
			for _, p := range Shape(pt, r) {
				turned = append(turned, Point{-p.Y, p.X})
			}

			assert.Equalf(t, normalize(Shape(pt, r+1)), normalize(turned), "piece %s rotation %d", pt, r)
		}
	}
}

func TestNewPiece(t *testing.T) {
	p := NewPiece(PieceT)
	assert.Equal(t, SpawnPoint, p.Point)
	assert.Equal(t, Rotation0, p.Rotation)
	assert.Equal(t, BlockMagenta, p.Block())

	none := NewPiece(PieceNone)
	assert.Empty(t, none.Blocks())
	assert.Equal(t, BlockNone, none.Block())
}

func TestPieceColors(t *testing.T) {
	want := map[PieceType]Block{
		PieceI: BlockCyan,
		PieceO: BlockYellow,
		PieceT: BlockMagenta,
		PieceS: BlockGreen,
		PieceZ: BlockRed,
		PieceJ: BlockBlue,
		PieceL: BlockOrange,
	}

	seen := make(map[Block]bool)
	for pt, b := range want {
		assert.Equal(t, b, NewPiece(pt).Block())
		assert.True(t, b.Solid())
		seen[b] = true
	}
	assert.Len(t, seen, PieceTypes)
}

func TestPieceMove(t *testing.T) {
	p := NewPiece(PieceI)
	p.Move(-10, 30)

	assert.Equal(t, Point{-6, 30}, p.Point)
	assert.Equal(t, []Point{{-6, 31}, {-5, 31}, {-4, 31}, {-3, 31}}, p.Blocks())
}

func TestPieceRotate(t *testing.T) {
	p := NewPiece(PieceL)

	p.Rotate(-1)
	assert.Equal(t, RotationL, p.Rotation)

	for i := 0; i < 9; i++ {
		p.Rotate(1)
		require.GreaterOrEqual(t, p.Rotation, 0)
		require.Less(t, p.Rotation, RotationStates)
	}
	assert.Equal(t, Rotation0, p.Rotation)

	p.Rotate(1)
	p.Rotate(-1)
	assert.Equal(t, Rotation0, p.Rotation)
}

func TestPieceBlocks(t *testing.T) {
	p := NewPiece(PieceI)
	assert.Equal(t, []Point{{4, 1}, {5, 1}, {6, 1}, {7, 1}}, p.Blocks())

	p.Rotate(1)
	assert.Equal(t, []Point{{6, 0}, {6, 1}, {6, 2}, {6, 3}}, p.Blocks())

	o := NewPiece(PieceO)
	assert.Equal(t, []Point{{5, 0}, {6, 0}, {5, 1}, {6, 1}}, o.Blocks())
}

func TestPieceString(t *testing.T) {
	p := NewPiece(PieceZ)
	p.Rotate(1)
	assert.Equal(t, "Z@(4,0)/1", p.String())
}
