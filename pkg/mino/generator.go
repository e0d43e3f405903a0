package mino

import (
	"math/rand"
	"time"
)

// Generator hands out pieces chosen uniformly among the seven tetrominoes.
// There is no bag: the same type may come up any number of times in a row.
type Generator struct {
	Seed int64

	randomizer *rand.Rand
}

// NewGenerator returns a generator seeded with seed. A zero seed is replaced
// by the current time.
func NewGenerator(seed int64) *Generator {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	return &Generator{Seed: seed, randomizer: rand.New(rand.NewSource(seed))}
}

// Next returns the type of the next piece.
func (g *Generator) Next() PieceType {
	return PieceType(g.randomizer.Intn(PieceTypes))
}

// Take returns a new piece at the spawn point.
func (g *Generator) Take() *Piece {
	return NewPiece(g.Next())
}
