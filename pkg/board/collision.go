package board

import (
	"github.com/qnkhuat/blockterm/pkg/mino"
)

// HasCollision reports whether placing s at pos is illegal on b. A cell is in
// collision when it lies left or right of the board, at or below the bottom
// row, or on an occupied cell. Cells above row 0 only have their columns
// checked, which lets pieces sit partially above the top.
func HasCollision(s mino.Shape, pos mino.Point, b *Board) bool {
	var x, y int
	for _, p := range s.Points() {
		x = pos.X + p.X
		y = pos.Y + p.Y

		if x < 0 || x >= b.W || y >= b.H {
			return true
		}

		if y >= 0 && b.cells[y][x] != CellEmpty {
			return true
		}
	}

	return false
}

// CanPlace is the negation of HasCollision.
func (b *Board) CanPlace(s mino.Shape, pos mino.Point) bool {
	return !HasCollision(s, pos, b)
}
