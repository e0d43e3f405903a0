package gui

import (
	"fmt"
	"io"
	"strings"
	"unicode"

	"github.com/fatih/color"
	"github.com/gdamore/tcell/v2"

	"github.com/qnkhuat/tetterm/pkg/event"
)

// Keybinding maps a key, a rune or both (with optional modifiers) to an
// action. Zero fields match anything.
type Keybinding struct {
	k tcell.Key
	r rune
	m tcell.ModMask

	a event.GameAction
}

func (b *Keybinding) matches(ev *tcell.EventKey) bool {
	if b.k != 0 && b.k != ev.Key() {
		return false
	}
	if b.r != 0 && b.r != ev.Rune() {
		return false
	}
	if b.m != 0 && b.m != ev.Modifiers() {
		return false
	}

	return true
}

// String names the key for the controls help.
func (b *Keybinding) String() string {
	switch {
	case b.r == ' ':
		return "Space"
	case b.r != 0:
		return string(b.r)
	}

	if name, ok := tcell.KeyNames[b.k]; ok {
		return name
	}

	return fmt.Sprintf("Key(%d)", b.k)
}

var Keybindings = []*Keybinding{
	{k: tcell.KeyLeft, a: event.ActionMoveLeft},
	{r: 'a', a: event.ActionMoveLeft},
	{r: 'h', a: event.ActionMoveLeft},
	{k: tcell.KeyRight, a: event.ActionMoveRight},
	{r: 'd', a: event.ActionMoveRight},
	{r: 'l', a: event.ActionMoveRight},
	{k: tcell.KeyDown, a: event.ActionSoftDrop},
	{r: 's', a: event.ActionSoftDrop},
	{r: 'j', a: event.ActionSoftDrop},
	{k: tcell.KeyUp, a: event.ActionRotateCW},
	{r: 'w', a: event.ActionRotateCW},
	{r: 'x', a: event.ActionRotateCW},
	{r: 'z', a: event.ActionRotateCCW},
	{r: ' ', a: event.ActionHardDrop},
	{r: 'p', a: event.ActionPause},
	{r: 'r', a: event.ActionRestart},
	{k: tcell.KeyEscape, a: event.ActionQuit},
	{r: 'q', a: event.ActionQuit},
	{k: tcell.KeyCtrlC, a: event.ActionQuit},
}

// ActionFor returns the action bound to ev, or ActionNone. Letters match in
// either case.
func ActionFor(ev *tcell.EventKey) event.GameAction {
	if ev.Key() == tcell.KeyRune {
		lower := unicode.ToLower(ev.Rune())
		if lower != ev.Rune() {
			ev = tcell.NewEventKey(tcell.KeyRune, lower, ev.Modifiers())
		}
	}

	for _, bind := range Keybindings {
		if bind.matches(ev) {
			return bind.a
		}
	}

	return event.ActionNone
}

var controlOrder = []event.GameAction{
	event.ActionMoveLeft,
	event.ActionMoveRight,
	event.ActionSoftDrop,
	event.ActionHardDrop,
	event.ActionRotateCW,
	event.ActionRotateCCW,
	event.ActionPause,
	event.ActionRestart,
	event.ActionQuit,
}

// PrintControls writes the key map, one action per line.
func PrintControls(w io.Writer) {
	title := color.New(color.FgCyan, color.Bold)
	action := color.New(color.FgYellow)

	title.Fprintln(w, "Controls")
	for _, a := range controlOrder {
		var keys []string
		for _, bind := range Keybindings {
			if bind.a == a {
				keys = append(keys, bind.String())
			}
		}

		action.Fprintf(w, "  %-12s", a)
		fmt.Fprintln(w, strings.Join(keys, ", "))
	}
}
