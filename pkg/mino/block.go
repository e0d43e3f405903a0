package mino

// Block is the value held by a single board cell. Locked cells carry the
// colour of the piece they came from.
type Block int

func (b Block) String() string {
	return string(b.Rune())
}

// Rune is the glyph used when dumping a board as text.
func (b Block) Rune() rune {
	switch b {
	case BlockNone:
		return '.'
	case BlockCyan:
		return 'I'
	case BlockYellow:
		return 'O'
	case BlockMagenta:
		return 'T'
	case BlockGreen:
		return 'S'
	case BlockRed:
		return 'Z'
	case BlockBlue:
		return 'J'
	case BlockOrange:
		return 'L'
	default:
		return '?'
	}
}

// Solid reports whether the block counts as occupied.
func (b Block) Solid() bool {
	return b > BlockNone && b <= BlockOrange
}

const (
	// BlockInvalid is returned for coordinates outside the board.
	BlockInvalid Block = -1

	BlockNone Block = iota - 1
	BlockCyan
	BlockYellow
	BlockMagenta
	BlockGreen
	BlockRed
	BlockBlue
	BlockOrange
)
