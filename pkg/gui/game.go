package gui

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"github.com/qnkhuat/tetterm/pkg"
	"github.com/qnkhuat/tetterm/pkg/event"
	"github.com/qnkhuat/tetterm/pkg/game"
)

const (
	ActionQueueSize = 10

	sideHeight = 13
)

type Config struct {
	Nick   string
	Tick   time.Duration
	Theme  Theme
	Logger *log.Logger
}

// Session runs one game in a terminal. The loop goroutine is the only one
// touching the engine; the tview goroutine only queues actions and draws
// the latest snapshot it was handed.
type Session struct {
	App   *tview.Application
	Game  *game.Game
	Clock *pkg.Clock

	nick   string
	theme  Theme
	logger *log.Logger

	actions chan event.GameAction
	played  time.Duration // Loop goroutine only

	// queue hands a function to the tview goroutine.
	queue func(func())

	// Owned by the tview goroutine.
	well     *tview.Box
	side     *tview.Box
	messages *tview.TextView
	layout   *tview.Grid
	shown    *game.Snapshot
	shownFor time.Duration
}

func NewSession(g *game.Game, cfg Config) *Session {
	if cfg.Tick <= 0 {
		cfg.Tick = 16 * time.Millisecond
	}
	if cfg.Logger == nil {
		cfg.Logger = log.New(io.Discard)
	}
	if cfg.Theme.Name == "" {
		cfg.Theme = ThemeBasic
	}

	app := tview.NewApplication()

	s := &Session{
		App:     app,
		Game:    g,
		Clock:   pkg.NewClock(cfg.Tick),
		nick:    cfg.Nick,
		theme:   cfg.Theme,
		logger:  cfg.Logger,
		actions: make(chan event.GameAction, ActionQueueSize),
		queue: func(f func()) {
			app.QueueUpdateDraw(f)
		},
		shown: g.Snapshot(),
	}

	s.well = tview.NewBox().
		SetBorder(true).
		SetBorderColor(s.theme.Border).
		SetTitle(" tetterm ")
	s.well.SetDrawFunc(s.drawWell)

	s.side = tview.NewBox()
	s.side.SetDrawFunc(s.drawSide)

	s.messages = tview.NewTextView().
		SetScrollable(true).
		SetWrap(true).
		SetWordWrap(true).
		SetMaxLines(100)

	s.layout = tview.NewGrid().
		SetRows(-1, WellHeight, -1).
		SetColumns(-1, WellWidth, 1, SideWidth, -1).
		AddItem(tview.NewBox(), 0, 0, 1, 5, 0, 0, false).
		AddItem(tview.NewBox(), 2, 0, 1, 5, 0, 0, false).
		AddItem(tview.NewBox(), 1, 0, 1, 1, 0, 0, false).
		AddItem(tview.NewBox(), 1, 4, 1, 1, 0, 0, false).
		AddItem(s.well, 1, 1, 1, 1, 0, 0, true).
		AddItem(tview.NewGrid().
			SetRows(sideHeight, -1).
			AddItem(s.side, 0, 0, 1, 1, 0, 0, false).
			AddItem(s.messages, 1, 0, 1, 1, 0, 0, false), 1, 3, 1, 1, 0, 0, false)

	app.SetRoot(s.layout, true).SetInputCapture(s.handleKey)

	return s
}

func (s *Session) drawWell(screen tcell.Screen, x, y, width, height int) (int, int, int, int) {
	if s.shown != nil {
		drawWell(screen, x+1, y+1, s.shown, s.theme)
	}

	return x + 1, y + 1, width - 2, height - 2
}

func (s *Session) drawSide(screen tcell.Screen, x, y, width, height int) (int, int, int, int) {
	if s.shown != nil {
		drawSide(screen, x, y+1, s.shown, s.nick, s.shownFor, s.theme)
	}

	return x, y, width, height
}

func (s *Session) handleKey(ev *tcell.EventKey) *tcell.EventKey {
	a := ActionFor(ev)
	if a == event.ActionNone {
		return ev
	}

	s.Enqueue(a)
	return nil
}

// Enqueue hands an action to the loop. It never blocks: when the queue is
// full the action is dropped.
func (s *Session) Enqueue(a event.GameAction) bool {
	select {
	case s.actions <- a:
		return true
	default:
		s.logger.Debug("dropped action", "action", a)
		return false
	}
}

// Step runs one loop iteration: at most one queued action, then elapsed
// time, then a snapshot for the screen. It returns false once the player
// quits.
func (s *Session) Step(elapsed time.Duration) bool {
	select {
	case a := <-s.actions:
		if a == event.ActionQuit {
			s.logger.Info("quit", "score", s.Game.Score())
			return false
		}

		s.Game.ApplyAction(a)
	default:
	}

	if s.Game.State() == game.StateActive {
		s.played += elapsed
	}
	s.Game.Advance(elapsed)

	var msgs []string
	for _, e := range s.Game.Events() {
		if _, ok := e.(*event.LockEvent); ok {
			continue
		}
		msgs = append(msgs, event.Describe(e))
	}

	snap := s.Game.Snapshot()
	played := s.played
	s.queue(func() {
		s.shown = snap
		s.shownFor = played
		for _, msg := range msgs {
			fmt.Fprintln(s.messages, msg)
		}
		if len(msgs) > 0 {
			s.messages.ScrollToEnd()
		}
	})

	return true
}

// Played is the time spent with the game active.
func (s *Session) Played() time.Duration {
	return s.played
}

// Run shows the game and blocks until the player quits, ctx is done or the
// terminal fails.
func (s *Session) Run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	loopDone := make(chan struct{})
	go func() {
		defer close(loopDone)

		s.Clock.Run(ctx, s.Step)
		s.App.Stop()
	}()

	err := s.App.Run()
	cancel()
	<-loopDone

	if err != nil {
		return fmt.Errorf("run terminal ui: %w", err)
	}

	return nil
}
