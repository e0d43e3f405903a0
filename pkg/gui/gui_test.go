package gui

import (
	"bytes"
	"testing"

	"github.com/fatih/color"
	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"

	"github.com/qnkhuat/tetterm/pkg/event"
)

func TestActionFor(t *testing.T) {
	tests := []struct {
		name string
		ev   *tcell.EventKey
		want event.GameAction
	}{
		{"left arrow", tcell.NewEventKey(tcell.KeyLeft, 0, tcell.ModNone), event.ActionMoveLeft},
		{"a", tcell.NewEventKey(tcell.KeyRune, 'a', tcell.ModNone), event.ActionMoveLeft},
		{"upper case A", tcell.NewEventKey(tcell.KeyRune, 'A', tcell.ModShift), event.ActionMoveLeft},
		{"l", tcell.NewEventKey(tcell.KeyRune, 'l', tcell.ModNone), event.ActionMoveRight},
		{"down arrow", tcell.NewEventKey(tcell.KeyDown, 0, tcell.ModNone), event.ActionSoftDrop},
		{"up arrow", tcell.NewEventKey(tcell.KeyUp, 0, tcell.ModNone), event.ActionRotateCW},
		{"x", tcell.NewEventKey(tcell.KeyRune, 'x', tcell.ModNone), event.ActionRotateCW},
		{"z", tcell.NewEventKey(tcell.KeyRune, 'z', tcell.ModNone), event.ActionRotateCCW},
		{"space", tcell.NewEventKey(tcell.KeyRune, ' ', tcell.ModNone), event.ActionHardDrop},
		{"p", tcell.NewEventKey(tcell.KeyRune, 'p', tcell.ModNone), event.ActionPause},
		{"r", tcell.NewEventKey(tcell.KeyRune, 'r', tcell.ModNone), event.ActionRestart},
		{"escape", tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone), event.ActionQuit},
		{"q", tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone), event.ActionQuit},
		{"ctrl-c", tcell.NewEventKey(tcell.KeyCtrlC, 0, tcell.ModCtrl), event.ActionQuit},
		{"unbound rune", tcell.NewEventKey(tcell.KeyRune, 'k', tcell.ModNone), event.ActionNone},
		{"unbound key", tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone), event.ActionNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ActionFor(tt.ev))
		})
	}
}

func TestPrintControls(t *testing.T) {
	noColor := color.NoColor
	color.NoColor = true
	defer func() { color.NoColor = noColor }()

	var buf bytes.Buffer
	PrintControls(&buf)

	out := buf.String()
	assert.Contains(t, out, "Controls\n")
	assert.Contains(t, out, "  move-left   Left, a, h\n")
	assert.Contains(t, out, "  hard-drop   Space\n")
	assert.Contains(t, out, "  quit        Esc, q, Ctrl-C\n")
}
