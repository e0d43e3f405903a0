package gui

import (
	"github.com/gdamore/tcell/v2"

	"github.com/qnkhuat/tetterm/pkg/mino"
)

// Theme is the palette the well and side panel are drawn with. Colours stay
// inside the xterm 256 colour chart so they survive any terminal.
type Theme struct {
	Name   string
	Blocks [mino.PieceTypes + 1]tcell.Color // Indexed by mino.Block, BlockNone first
	Empty  tcell.Color                      // Dot marking an empty cell
	Border tcell.Color
	Label  tcell.Color
	Value  tcell.Color
	Banner tcell.Color // Paused and game over overlays
}

// Block returns the colour of a locked or falling block.
func (t Theme) Block(b mino.Block) tcell.Color {
	if !b.Solid() || int(b) >= len(t.Blocks) {
		return tcell.ColorDefault
	}

	return t.Blocks[b]
}

// ThemeBasic is the default theme
var ThemeBasic = Theme{
	Name: "basic",
	Blocks: [...]tcell.Color{
		mino.BlockNone:    tcell.ColorDefault,
		mino.BlockCyan:    tcell.Color51,
		mino.BlockYellow:  tcell.Color226,
		mino.BlockMagenta: tcell.Color165,
		mino.BlockGreen:   tcell.Color46,
		mino.BlockRed:     tcell.Color196,
		mino.BlockBlue:    tcell.Color27,
		mino.BlockOrange:  tcell.Color208,
	},
	Empty:  tcell.Color240,
	Border: tcell.Color247,
	Label:  tcell.Color247,
	Value:  tcell.ColorDefault,
	Banner: tcell.Color160,
}
