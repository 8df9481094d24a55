package config

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/qnkhuat/blockterm/pkg/board"
	"github.com/qnkhuat/blockterm/pkg/mino"
)

// ParseCells reads a comma separated list of x,y pairs, e.g. "0,19,1,19".
func ParseCells(s string) ([]mino.Point, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}

	tokens := strings.Split(s, ",")
	if len(tokens)%2 != 0 {
		return nil, fmt.Errorf("config: cells: odd number of coordinates (%d)", len(tokens))
	}

	points := make([]mino.Point, 0, len(tokens)/2)
	for i := 0; i < len(tokens); i += 2 {
		x, err := strconv.Atoi(strings.TrimSpace(tokens[i]))
		if err != nil {
			return nil, fmt.Errorf("config: cells: bad x %q: %w", tokens[i], err)
		}

		y, err := strconv.Atoi(strings.TrimSpace(tokens[i+1]))
		if err != nil {
			return nil, fmt.Errorf("config: cells: bad y %q: %w", tokens[i+1], err)
		}

		points = append(points, mino.Point{X: x, Y: y})
	}

	return points, nil
}

// ApplyCells fills every point on b. It fails on the first point outside the
// board and leaves the earlier points set.
func ApplyCells(b *board.Board, points []mino.Point) error {
	for _, p := range points {
		if !b.Set(p.X, p.Y, board.CellFilled) {
			return fmt.Errorf("config: cells: %s is outside the %dx%d board", p, b.W, b.H)
		}
	}

	return nil
}
