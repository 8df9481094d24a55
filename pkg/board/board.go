package board

import (
	"strings"

	"github.com/qnkhuat/blockterm/pkg/mino"
)

const (
	DefaultWidth  = 10
	DefaultHeight = 20
)

type Cell int

const (
	CellEmpty Cell = iota
	CellFilled
)

func (c Cell) Rune() rune {
	switch c {
	case CellEmpty:
		return '.'
	case CellFilled:
		return '#'
	default:
		return '?'
	}
}

func (c Cell) String() string { return string(c.Rune()) }

// Board is the fixed-size playfield. Row 0 is the top. Its dimensions never
// change after New.
type Board struct {
	W int // Width
	H int // Height

	cells [][]Cell
}

// New returns an empty board. Non-positive dimensions fall back to the
// defaults.
func New(w, h int) *Board {
	if w <= 0 {
		w = DefaultWidth
	}
	if h <= 0 {
		h = DefaultHeight
	}

	b := &Board{W: w, H: h, cells: make([][]Cell, h)}
	for y := range b.cells {
		b.cells[y] = make([]Cell, w)
	}

	return b
}

func (b *Board) InBounds(x, y int) bool {
	return x >= 0 && x < b.W && y >= 0 && y < b.H
}

// Get returns the cell at (x, y). Cells outside the board read as empty.
func (b *Board) Get(x, y int) Cell {
	if !b.InBounds(x, y) {
		return CellEmpty
	}

	return b.cells[y][x]
}

func (b *Board) Filled(x, y int) bool {
	return b.Get(x, y) != CellEmpty
}

// Set writes a cell and reports whether (x, y) was inside the board.
func (b *Board) Set(x, y int, c Cell) bool {
	if !b.InBounds(x, y) {
		return false
	}

	b.cells[y][x] = c
	return true
}

func (b *Board) RowFilled(y int) bool {
	if y < 0 || y >= b.H {
		return false
	}

	for _, c := range b.cells[y] {
		if c == CellEmpty {
			return false
		}
	}

	return true
}

// Merge writes every occupied cell of s at pos into the board. Targets
// outside the board are skipped; legality is the caller's concern.
func (b *Board) Merge(s mino.Shape, pos mino.Point) {
	for _, p := range s.Points() {
		b.Set(pos.X+p.X, pos.Y+p.Y, CellFilled)
	}
}

// ClearCompletedRows removes every complete row at once and inserts as many
// empty rows at the top, keeping the order of the remaining rows and the
// board height. The board is modified in place. It returns the number of rows
// removed.
func (b *Board) ClearCompletedRows() int {
	kept := make([][]Cell, 0, b.H)
	for y := 0; y < b.H; y++ {
		if b.RowFilled(y) {
			continue
		}

		kept = append(kept, b.cells[y])
	}

	cleared := b.H - len(kept)
	if cleared == 0 {
		return 0
	}

	cells := make([][]Cell, 0, b.H)
	for i := 0; i < cleared; i++ {
		cells = append(cells, make([]Cell, b.W))
	}
	b.cells = append(cells, kept...)

	return cleared
}

// Clear empties every cell in place.
func (b *Board) Clear() {
	for y := range b.cells {
		for x := range b.cells[y] {
			b.cells[y][x] = CellEmpty
		}
	}
}

// Rows returns a deep copy of the cell matrix.
func (b *Board) Rows() [][]Cell {
	rows := make([][]Cell, b.H)
	for y := range b.cells {
		rows[y] = make([]Cell, b.W)
		copy(rows[y], b.cells[y])
	}

	return rows
}

func (b *Board) Clone() *Board {
	return &Board{W: b.W, H: b.H, cells: b.Rows()}
}

func (b *Board) Equal(other *Board) bool {
	if b.W != other.W || b.H != other.H {
		return false
	}

	for y := range b.cells {
		for x := range b.cells[y] {
			if b.cells[y][x] != other.cells[y][x] {
				return false
			}
		}
	}

	return true
}

// Render draws the board top to bottom, one line per row.
func (b *Board) Render() string {
	var s strings.Builder
	for y := range b.cells {
		for _, c := range b.cells[y] {
			s.WriteRune(c.Rune())
		}

		if y < b.H-1 {
			s.WriteRune('\n')
		}
	}

	return s.String()
}

func (b *Board) String() string { return b.Render() }

// FillRow sets every cell of row y. Used to build boards for tests and for
// prefilled starts.
func (b *Board) FillRow(y int) {
	for x := 0; x < b.W; x++ {
		b.Set(x, y, CellFilled)
	}
}
