package game

import (
	"log"
	"time"

	"github.com/qnkhuat/blockterm/pkg/board"
	"github.com/qnkhuat/blockterm/pkg/event"
	"github.com/qnkhuat/blockterm/pkg/mino"
)

// PointsPerRow is awarded for every row removed by a single lock.
const PointsPerRow = 100

// DefaultSpawn is where every new piece's bounding box starts.
var DefaultSpawn = mino.Point{X: 3, Y: 0}

type State int

const (
	StateAwaitingSpawn State = iota
	StateActive
	StateLocking
	StateGameOver
)

func (s State) String() string {
	switch s {
	case StateAwaitingSpawn:
		return "AwaitingSpawn"
	case StateActive:
		return "Active"
	case StateLocking:
		return "Locking"
	case StateGameOver:
		return "GameOver"
	default:
		return "Unknown"
	}
}

// Engine owns the board, the active piece and the score. It is not safe for
// concurrent use: callers serialize every command and tick, see Loop.
type Engine struct {
	SpawnPoint mino.Point

	Logger   *log.Logger
	LogLevel int
	Listener event.Listener

	board    *board.Board
	rand     *mino.Randomizer
	shape    mino.Shape
	position mino.Point
	state    State

	score  int
	lines  int
	pieces int
}

// NewEngine takes ownership of b. A nil board is replaced by an empty board
// of the default size, a nil randomizer by one seeded from the clock.
func NewEngine(b *board.Board, r *mino.Randomizer) *Engine {
	if b == nil {
		b = board.New(board.DefaultWidth, board.DefaultHeight)
	}
	if r == nil {
		r = mino.NewRandomizer(time.Now().UTC().UnixNano())
	}

	return &Engine{
		SpawnPoint: DefaultSpawn,
		board:      b,
		rand:       r,
		state:      StateAwaitingSpawn,
	}
}

func (e *Engine) State() State         { return e.state }
func (e *Engine) Terminal() bool       { return e.state == StateGameOver }
func (e *Engine) Score() int           { return e.score }
func (e *Engine) Lines() int           { return e.lines }
func (e *Engine) Pieces() int          { return e.pieces }
func (e *Engine) Position() mino.Point { return e.position }

// Shape returns the active shape and whether there is one.
func (e *Engine) Shape() (mino.Shape, bool) {
	if e.state != StateActive {
		return mino.Shape{}, false
	}

	return e.shape, true
}

// Board returns a copy of the locked cells. The active piece is not included.
func (e *Engine) Board() *board.Board {
	return e.board.Clone()
}

// Spawn picks a random catalog shape and places it at the spawn coordinate.
func (e *Engine) Spawn() {
	if e.state != StateAwaitingSpawn && e.state != StateLocking {
		return
	}

	e.SpawnShape(e.rand.Next())
}

// SpawnShape places s at the spawn coordinate. When the spawn position
// collides the game is over and nothing is placed.
func (e *Engine) SpawnShape(s mino.Shape) {
	if e.state != StateAwaitingSpawn && e.state != StateLocking {
		return
	}

	if board.HasCollision(s, e.SpawnPoint, e.board) {
		e.state = StateGameOver
		e.shape = mino.Shape{}

		e.Logf(LogStandard, "game over: no room to spawn %s, score %d", s, e.score)
		e.emit(event.GameOverEvent{Score: e.score})
		return
	}

	e.shape = s
	e.position = e.SpawnPoint
	e.state = StateActive

	e.Logf(LogDebug, "spawned %s at %s", s, e.position)
	e.emit(event.SpawnEvent{Shape: s.String(), X: e.position.X, Y: e.position.Y})
}

// MoveHorizontal shifts the active piece one column left (-1) or right (+1).
// It reports whether the piece moved; a blocked move is not an error.
func (e *Engine) MoveHorizontal(direction int) bool {
	if e.state != StateActive || (direction != -1 && direction != 1) {
		return false
	}

	return e.move(direction, 0)
}

// SoftDrop lowers the active piece by one row, landing it when it cannot
// fall further.
func (e *Engine) SoftDrop() {
	if e.state != StateActive {
		return
	}

	if !e.move(0, 1) {
		e.land()
	}
}

// GravityTick is the timer-driven form of SoftDrop.
func (e *Engine) GravityTick() {
	e.SoftDrop()
}

// Rotate turns the active piece clockwise in place. There is no kick search:
// a colliding rotation is rejected.
func (e *Engine) Rotate() bool {
	if e.state != StateActive {
		return false
	}

	rotated := e.shape.RotateCW()
	if board.HasCollision(rotated, e.position, e.board) {
		e.Logf(LogVerbose, "rotation of %s rejected at %s", e.shape, e.position)
		return false
	}

	e.shape = rotated
	return true
}

// ProcessAction maps the four piece commands onto the engine. Anything else is
// ignored.
func (e *Engine) ProcessAction(a event.GameAction) {
	if e.state == StateGameOver {
		return
	}

	e.Logf(LogVerbose, "process %s", a)

	switch a {
	case event.ActionMoveLeft:
		e.MoveHorizontal(-1)
	case event.ActionMoveRight:
		e.MoveHorizontal(1)
	case event.ActionSoftDrop:
		e.SoftDrop()
	case event.ActionRotateCW:
		e.Rotate()
	}
}

// Reset starts a new game on an empty board of the same size. The randomizer
// keeps its sequence.
func (e *Engine) Reset() {
	e.board.Clear()
	e.shape = mino.Shape{}
	e.position = mino.Point{}
	e.state = StateAwaitingSpawn
	e.score = 0
	e.lines = 0
	e.pieces = 0

	e.Log(LogDebug, "reset")
}

func (e *Engine) move(x, y int) bool {
	p := e.position.Add(mino.Point{X: x, Y: y})
	if board.HasCollision(e.shape, p, e.board) {
		return false
	}

	e.position = p
	return true
}

func (e *Engine) land() {
	e.state = StateLocking

	e.board.Merge(e.shape, e.position)
	e.pieces++

	cleared := e.board.ClearCompletedRows()
	e.lines += cleared
	e.score += cleared * PointsPerRow

	e.Logf(LogDebug, "locked %s at %s, cleared %d", e.shape, e.position, cleared)
	e.emit(event.LockEvent{Cleared: cleared, Score: e.score})

	e.shape = mino.Shape{}
	e.Spawn()
}

func (e *Engine) emit(ev event.Event) {
	if e.Listener == nil {
		return
	}

	e.Listener(ev)
}
