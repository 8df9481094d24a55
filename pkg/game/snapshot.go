package game

import (
	"strings"

	"github.com/qnkhuat/blockterm/pkg/board"
	"github.com/qnkhuat/blockterm/pkg/mino"
)

// Snapshot is a read-only copy of the game for display. Cells has the active
// piece composited in; Active marks which of those cells belong to it.
type Snapshot struct {
	W, H   int
	Cells  [][]board.Cell
	Active [][]bool

	Shape    string
	Position mino.Point

	Score    int
	Lines    int
	Pieces   int
	Terminal bool
	State    State
}

func (e *Engine) Snapshot() Snapshot {
	snap := Snapshot{
		W:        e.board.W,
		H:        e.board.H,
		Cells:    e.board.Rows(),
		Active:   make([][]bool, e.board.H),
		Position: e.position,
		Score:    e.score,
		Lines:    e.lines,
		Pieces:   e.pieces,
		Terminal: e.Terminal(),
		State:    e.state,
	}

	for y := range snap.Active {
		snap.Active[y] = make([]bool, e.board.W)
	}

	s, ok := e.Shape()
	if !ok {
		return snap
	}

	snap.Shape = s.String()
	for _, p := range s.Points() {
		x, y := e.position.X+p.X, e.position.Y+p.Y
		if x < 0 || x >= snap.W || y < 0 || y >= snap.H {
			continue
		}

		snap.Cells[y][x] = board.CellFilled
		snap.Active[y][x] = true
	}

	return snap
}

func (s Snapshot) Filled(x, y int) bool {
	if y < 0 || y >= len(s.Cells) || x < 0 || x >= len(s.Cells[y]) {
		return false
	}

	return s.Cells[y][x] != board.CellEmpty
}

func (s Snapshot) IsActive(x, y int) bool {
	if y < 0 || y >= len(s.Active) || x < 0 || x >= len(s.Active[y]) {
		return false
	}

	return s.Active[y][x]
}

// Render draws the composited cells as text; active cells are '@'.
func (s Snapshot) Render() string {
	var b strings.Builder
	for y := range s.Cells {
		for x, c := range s.Cells[y] {
			if s.Active[y][x] {
				b.WriteRune('@')
			} else {
				b.WriteRune(c.Rune())
			}
		}

		if y < len(s.Cells)-1 {
			b.WriteRune('\n')
		}
	}

	return b.String()
}
