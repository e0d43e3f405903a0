package game

import (
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/kamstrup/intmap"

	"github.com/qnkhuat/tetterm/pkg/event"
	"github.com/qnkhuat/tetterm/pkg/mino"
)

const LinesPerLevel = 10

// Points awarded per lock, indexed by the number of rows cleared together,
// before the level multiplier.
var lineScores = [...]int{0, 100, 300, 500, 800}

// Horizontal offsets tried in order, from the rotated position, when a
// rotation collides.
var wallKicks = [...]int{-1, 1}

// PieceSource supplies the pieces a session plays with.
type PieceSource interface {
	Take() *mino.Piece
}

type Option func(*Game)

func WithLogger(logger *log.Logger) Option {
	return func(g *Game) {
		if logger != nil {
			g.logger = logger
		}
	}
}

// WithSource replaces the seeded random generator.
func WithSource(source PieceSource) Option {
	return func(g *Game) {
		if source != nil {
			g.source = source
		}
	}
}

// Game is a single player session. It is not safe for concurrent use: one
// goroutine owns it and feeds it actions and elapsed time.
type Game struct {
	cfg    Config
	board  *mino.Board
	source PieceSource
	seed   int64

	current *mino.Piece
	next    *mino.Piece

	score int
	level int
	lines int

	fallTimer    time.Duration
	fallInterval time.Duration

	state State

	// Pieces spawned this session, by type.
	spawned *intmap.Map[mino.PieceType, int]

	events []interface{}

	logger *log.Logger
}

// New starts a session: the board is empty, a first piece is spawned and the
// game is active.
func New(cfg Config, opts ...Option) (*Game, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	g := &Game{
		cfg:     cfg,
		board:   mino.NewBoard(),
		spawned: intmap.New[mino.PieceType, int](mino.PieceTypes),
	}

	for _, opt := range opts {
		opt(g)
	}

	if g.logger == nil {
		g.logger = log.New(io.Discard)
	}

	if g.source == nil {
		gen := mino.NewGenerator(cfg.Seed)
		g.seed = gen.Seed
		g.source = gen
	}

	g.reset()

	return g, nil
}

func (g *Game) reset() {
	g.board.Clear()

	g.score = 0
	g.level = 1
	g.lines = 0
	g.fallTimer = 0
	g.fallInterval = g.cfg.BaseFallInterval
	g.state = StateActive
	g.spawned.Clear()

	g.current = nil
	g.next = g.source.Take()
	g.spawn()
}

func (g *Game) push(e interface{}) {
	g.events = append(g.events, e)
}

// Events returns the notifications queued since the last call.
func (g *Game) Events() []interface{} {
	events := g.events
	g.events = nil

	return events
}

// CanPlace reports whether p fits on the board: inside the walls, above the
// floor and clear of locked cells. Rows above the top never collide.
func (g *Game) CanPlace(p *mino.Piece) bool {
	return g.board.CanPlace(p)
}

func (g *Game) spawn() {
	g.current = g.next
	g.next = g.source.Take()

	if !g.CanPlace(g.current) {
		g.state = StateOver
		g.push(&event.GameOverEvent{Score: g.score, Lines: g.lines, Level: g.level})

		g.logger.Info("game over", "score", g.score, "lines", g.lines, "level", g.level)
		return
	}

	n, _ := g.spawned.Get(g.current.Type)
	g.spawned.Put(g.current.Type, n+1)
}

// ApplyAction handles one discrete player action and reports whether it
// changed anything. Pause is honoured in every state; it restarts a finished
// game. Everything else is ignored unless the game is active.
func (g *Game) ApplyAction(a event.GameAction) bool {
	switch a {
	case event.ActionPause:
		switch g.state {
		case StateActive:
			g.state = StatePaused
			g.push(&event.PauseEvent{Paused: true})
		case StatePaused:
			g.state = StateActive
			g.push(&event.PauseEvent{Paused: false})
		case StateOver:
			g.Restart()
		}
		return true
	case event.ActionRestart:
		if g.state != StateOver {
			return false
		}

		g.Restart()
		return true
	}

	if g.state != StateActive || g.current == nil {
		return false
	}

	switch a {
	case event.ActionMoveLeft:
		return g.shift(-1)
	case event.ActionMoveRight:
		return g.shift(1)
	case event.ActionSoftDrop:
		g.softDrop()
		return true
	case event.ActionRotateCW:
		return g.rotate(1)
	case event.ActionRotateCCW:
		return g.rotate(-1)
	case event.ActionHardDrop:
		g.hardDrop()
		return true
	default:
		return false
	}
}

// Restart wipes the session and starts over. It only applies to a finished
// game.
func (g *Game) Restart() {
	if g.state != StateOver {
		return
	}

	g.reset()
	g.push(&event.RestartEvent{})

	g.logger.Info("restarted")
}

func (g *Game) shift(dx int) bool {
	g.current.Move(dx, 0)
	if !g.CanPlace(g.current) {
		g.current.Move(-dx, 0)
		return false
	}

	return true
}

func (g *Game) softDrop() {
	g.score += g.cfg.SoftDropScore

	g.current.Move(0, 1)
	if !g.CanPlace(g.current) {
		g.current.Move(0, -1)
		g.lock()
	}
}

func (g *Game) rotate(direction int) bool {
	p := g.current

	p.Rotate(direction)
	if g.CanPlace(p) {
		return true
	}

	for _, dx := range wallKicks {
		p.Move(dx, 0)
		if g.CanPlace(p) {
			return true
		}
		p.Move(-dx, 0)
	}

	p.Rotate(-direction)
	return false
}

func (g *Game) hardDrop() {
	rows := g.dropDistance(g.current)

	g.current.Move(0, rows)
	g.score += rows * g.cfg.HardDropScore

	g.lock()
}

// dropDistance is how many rows p can fall before it collides.
func (g *Game) dropDistance(p *mino.Piece) int {
	probe := *p

	rows := 0
	for {
		probe.Move(0, 1)
		if !g.CanPlace(&probe) {
			return rows
		}
		rows++
	}
}

// Advance feeds elapsed time to an active game. Once the accumulated time
// reaches the fall interval the piece drops one row, locking if it cannot.
func (g *Game) Advance(dt time.Duration) {
	if g.state != StateActive || g.current == nil {
		return
	}

	g.fallTimer += dt
	if g.fallTimer < g.fallInterval {
		return
	}
	g.fallTimer = 0

	g.current.Move(0, 1)
	if !g.CanPlace(g.current) {
		g.current.Move(0, -1)
		g.lock()
	}
}

func (g *Game) lock() {
	p := g.current

	g.board.Place(p)
	g.push(&event.LockEvent{Piece: p.String()})

	cleared := g.board.ClearLines()
	g.logger.Debug("locked piece", "piece", p, "cleared", cleared)

	if cleared > 0 {
		g.updateScore(cleared)
		g.updateLevel()
	}

	g.spawn()
}

func (g *Game) updateScore(cleared int) {
	if cleared >= len(lineScores) {
		cleared = len(lineScores) - 1
	}

	points := lineScores[cleared] * g.level
	g.score += points
	g.lines += cleared

	g.push(&event.LinesClearedEvent{Lines: cleared, Points: points, Total: g.lines})
}

func (g *Game) updateLevel() {
	level := 1 + g.lines/LinesPerLevel
	if level <= g.level {
		return
	}

	g.level = level
	g.fallInterval = g.cfg.FallInterval(level)
	g.push(&event.LevelUpEvent{Level: level, FallInterval: g.fallInterval})

	g.logger.Info("level up", "level", level, "interval", g.fallInterval)
}

func (g *Game) State() State {
	return g.state
}

func (g *Game) Score() int {
	return g.score
}

func (g *Game) Level() int {
	return g.level
}

func (g *Game) Lines() int {
	return g.lines
}

func (g *Game) FallInterval() time.Duration {
	return g.fallInterval
}

// Seed is the seed of the built-in generator, zero when a custom source is in
// use.
func (g *Game) Seed() int64 {
	return g.seed
}

// Current returns a copy of the falling piece, nil before the first spawn.
func (g *Game) Current() *mino.Piece {
	if g.current == nil {
		return nil
	}

	p := *g.current
	return &p
}

// Next returns a copy of the upcoming piece.
func (g *Game) Next() *mino.Piece {
	if g.next == nil {
		return nil
	}

	p := *g.next
	return &p
}

// Spawned returns how many pieces of type t entered play this session.
func (g *Game) Spawned(t mino.PieceType) int {
	n, _ := g.spawned.Get(t)
	return n
}

// Pieces returns how many pieces entered play this session.
func (g *Game) Pieces() int {
	total := 0
	for t := mino.PieceI; t <= mino.PieceL; t++ {
		total += g.Spawned(t)
	}

	return total
}

// Board returns a copy of the locked cells.
func (g *Game) Board() *mino.Board {
	return g.board.Copy()
}
