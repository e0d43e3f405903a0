package gui

import (
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/qnkhuat/tetterm/pkg"
	"github.com/qnkhuat/tetterm/pkg/game"
	"github.com/qnkhuat/tetterm/pkg/mino"
)

const (
	// cellWidth is the number of terminal columns per board cell, which
	// keeps cells roughly square.
	cellWidth = 2

	WellWidth  = mino.Width*cellWidth + 2
	WellHeight = mino.Height + 2
	SideWidth  = 16

	statValueColumn = 7
)

// drawText places text at the specified coordinates with the provided style
func drawText(s tcell.Screen, x, y int, style tcell.Style, text string) {
	for _, r := range []rune(text) {
		s.SetContent(x, y, r, nil, style)
		x++
	}
}

// drawRune places a rune at the specified coordinates with the provided style
func drawRune(s tcell.Screen, x, y int, style tcell.Style, r rune) {
	s.SetContent(x, y, r, nil, style)
}

// DefStyle is the default style for tcell rendering
var DefStyle = tcell.StyleDefault.Background(tcell.ColorReset).Foreground(tcell.ColorReset)

// drawCell fills one board cell, cellWidth columns wide.
func drawCell(s tcell.Screen, x, y int, r rune, style tcell.Style) {
	for i := 0; i < cellWidth; i++ {
		drawRune(s, x+i, y, style, r)
	}
}

// drawWell draws the visible rows of the board with the falling piece and
// its ghost, x and y being the top-left of the first cell.
func drawWell(s tcell.Screen, x, y int, snap *game.Snapshot, t Theme) {
	ghostStyle := DefStyle.Foreground(t.Block(snap.PieceBlock))
	emptyStyle := DefStyle.Foreground(t.Empty)

	for row := 0; row < snap.Height; row++ {
		for col := 0; col < snap.Width; col++ {
			cx := x + col*cellWidth

			block := snap.Cell(col, row)
			switch {
			case block.Solid():
				drawCell(s, cx, y+row, ' ', DefStyle.Background(t.Block(block)))
			case snap.IsGhost(col, row):
				drawCell(s, cx, y+row, '░', ghostStyle)
			default:
				drawRune(s, cx, y+row, emptyStyle, ' ')
				drawRune(s, cx+1, y+row, emptyStyle, '.')
			}
		}
	}

	var banner string
	switch snap.State {
	case game.StatePaused:
		banner = " PAUSED "
	case game.StateOver:
		banner = " GAME OVER "
	}

	if banner != "" {
		bx := x + (snap.Width*cellWidth-len(banner))/2
		drawText(s, bx, y+snap.Height/2, DefStyle.Foreground(t.Banner).Bold(true), banner)
	}
}

// drawNext draws the upcoming piece in its spawn orientation.
func drawNext(s tcell.Screen, x, y int, snap *game.Snapshot, t Theme) {
	drawText(s, x, y, DefStyle.Foreground(t.Label), "NEXT")

	style := DefStyle.Background(t.Block(snap.Next.Block()))
	for _, p := range snap.NextShape {
		drawCell(s, x+p.X*cellWidth, y+1+p.Y, ' ', style)
	}
}

// drawStats writes the player name and then one label and value per row,
// returning the row after the last one.
func drawStats(s tcell.Screen, x, y int, snap *game.Snapshot, nick string, played time.Duration, t Theme) int {
	labelStyle := DefStyle.Foreground(t.Label)
	valueStyle := DefStyle.Foreground(t.Value)

	drawText(s, x, y, valueStyle.Bold(true), nick)
	y += 2

	stats := []struct {
		label string
		value string
	}{
		{"SCORE", fmt.Sprint(snap.Score)},
		{"LEVEL", fmt.Sprint(snap.Level)},
		{"LINES", fmt.Sprint(snap.Lines)},
		{"PIECES", fmt.Sprint(snap.Pieces)},
		{"SPEED", fmt.Sprintf("%dms", snap.FallInterval.Milliseconds())},
		{"TIME", pkg.FormatDuration(played)},
	}

	for _, stat := range stats {
		drawText(s, x, y, labelStyle, stat.label)
		drawText(s, x+statValueColumn, y, valueStyle, stat.value)
		y++
	}

	return y
}

// drawSide draws the next piece preview and the stats.
func drawSide(s tcell.Screen, x, y int, snap *game.Snapshot, nick string, played time.Duration, t Theme) {
	drawNext(s, x, y, snap, t)
	drawStats(s, x, y+4, snap, nick, played, t)
}
