package mino

import (
	"fmt"
	"strings"
)

// Shape is an immutable rectangular matrix of occupied and empty cells. Rows
// are ordered top to bottom. The zero value is an empty 0x0 shape.
type Shape struct {
	cells [][]bool
}

// NewShape copies rows into a new shape. Every row must have the same length.
func NewShape(rows [][]bool) (Shape, error) {
	if len(rows) == 0 {
		return Shape{}, nil
	}

	w := len(rows[0])
	cells := make([][]bool, len(rows))
	for y := range rows {
		if len(rows[y]) != w {
			return Shape{}, fmt.Errorf("failed to create shape: row %d has %d cells, want %d", y, len(rows[y]), w)
		}

		cells[y] = make([]bool, w)
		copy(cells[y], rows[y])
	}

	return Shape{cells: cells}, nil
}

// ParseShape reads a shape written as rows separated by '/', where 'X' marks
// an occupied cell and '.' an empty one, e.g. ".X./XXX".
func ParseShape(s string) (Shape, error) {
	if s == "" {
		return Shape{}, nil
	}

	lines := strings.Split(s, "/")
	rows := make([][]bool, len(lines))
	for y, line := range lines {
		rows[y] = make([]bool, len(line))
		for x, r := range line {
			switch r {
			case 'X':
				rows[y][x] = true
			case '.':
			default:
				return Shape{}, fmt.Errorf("failed to parse shape %q: unexpected %q at (%d,%d)", s, r, x, y)
			}
		}
	}

	return NewShape(rows)
}

// MustParseShape is like ParseShape but panics on malformed input. It is meant
// for the fixed catalog.
func MustParseShape(s string) Shape {
	sh, err := ParseShape(s)
	if err != nil {
		panic(err)
	}

	return sh
}

func (s Shape) Height() int { return len(s.cells) }

func (s Shape) Width() int {
	if len(s.cells) == 0 {
		return 0
	}

	return len(s.cells[0])
}

func (s Shape) Size() (int, int) { return s.Width(), s.Height() }

// Occupied reports whether the local cell (x, y) is filled. Cells outside the
// bounding box are empty.
func (s Shape) Occupied(x, y int) bool {
	if y < 0 || y >= len(s.cells) || x < 0 || x >= len(s.cells[y]) {
		return false
	}

	return s.cells[y][x]
}

// Points lists the occupied local cells in row-major order.
func (s Shape) Points() []Point {
	var points []Point
	for y := range s.cells {
		for x, filled := range s.cells[y] {
			if filled {
				points = append(points, Point{x, y})
			}
		}
	}

	return points
}

// Rows returns a copy of the underlying matrix.
func (s Shape) Rows() [][]bool {
	rows := make([][]bool, len(s.cells))
	for y := range s.cells {
		rows[y] = make([]bool, len(s.cells[y]))
		copy(rows[y], s.cells[y])
	}

	return rows
}

func (s Shape) Equal(other Shape) bool {
	if s.Width() != other.Width() || s.Height() != other.Height() {
		return false
	}

	for y := range s.cells {
		for x := range s.cells[y] {
			if s.cells[y][x] != other.cells[y][x] {
				return false
			}
		}
	}

	return true
}

// RotateCW returns the shape turned 90 degrees clockwise: the transpose with
// each row reversed. An RxC shape becomes CxR.
func (s Shape) RotateCW() Shape {
	h, w := s.Height(), s.Width()

	cells := make([][]bool, w)
	for y := 0; y < w; y++ {
		cells[y] = make([]bool, h)
		for x := 0; x < h; x++ {
			cells[y][x] = s.cells[h-1-x][y]
		}
	}

	return Shape{cells: cells}
}

// RotateCW is the free-function form of Shape.RotateCW.
func RotateCW(s Shape) Shape { return s.RotateCW() }

func (s Shape) String() string {
	var b strings.Builder
	for y := range s.cells {
		if y > 0 {
			b.WriteRune('/')
		}

		for _, filled := range s.cells[y] {
			if filled {
				b.WriteRune('X')
			} else {
				b.WriteRune('.')
			}
		}
	}

	return b.String()
}

// Render draws the shape on multiple lines, for logs and test failures.
func (s Shape) Render() string {
	return strings.ReplaceAll(s.String(), "/", "\n") + "\n"
}
