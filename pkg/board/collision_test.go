package board

import (
	"testing"

	"github.com/qnkhuat/blockterm/pkg/mino"
	"github.com/stretchr/testify/assert"
)

var spawnPoint = mino.Point{X: 3, Y: 0}

func TestHasCollisionEmptyBoardSpawn(t *testing.T) {
	b := New(DefaultWidth, DefaultHeight)

	for i, s := range mino.Catalog() {
		assert.False(t, HasCollision(s, spawnPoint, b), "catalog shape %s collides at spawn", mino.ShapeType(i))
	}
}

func TestHasCollisionBounds(t *testing.T) {
	b := New(10, 20)

	tests := []struct {
		name      string
		shape     mino.Shape
		pos       mino.Point
		collision bool
	}{
		{"left edge", mino.Bar, mino.Point{X: 0, Y: 0}, false},
		{"past left edge", mino.Bar, mino.Point{X: -1, Y: 0}, true},
		{"right edge", mino.Bar, mino.Point{X: 6, Y: 0}, false},
		{"past right edge", mino.Bar, mino.Point{X: 7, Y: 0}, true},
		{"bottom row", mino.Bar, mino.Point{X: 3, Y: 19}, false},
		{"below bottom", mino.Bar, mino.Point{X: 3, Y: 20}, true},
		{"square on floor", mino.Square, mino.Point{X: 0, Y: 18}, false},
		{"square through floor", mino.Square, mino.Point{X: 0, Y: 19}, true},
		{"above top", mino.Square, mino.Point{X: 4, Y: -1}, false},
		{"far above top", mino.Bar, mino.Point{X: 4, Y: -10}, false},
		{"above top past left", mino.Bar, mino.Point{X: -1, Y: -5}, true},
		{"above top past right", mino.Bar.RotateCW(), mino.Point{X: 10, Y: -5}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.collision, HasCollision(tt.shape, tt.pos, b))
			assert.Equal(t, !tt.collision, b.CanPlace(tt.shape, tt.pos))
		})
	}
}

func TestHasCollisionOccupied(t *testing.T) {
	b := New(10, 20)
	b.Set(4, 1, CellFilled)

	// T at (3,0) covers (4,0),(3,1),(4,1),(5,1).
	assert.True(t, HasCollision(mino.T, spawnPoint, b))
	// Its empty corner does not collide with a filled cell.
	b.Set(4, 1, CellEmpty)
	b.Set(3, 0, CellFilled)
	assert.False(t, HasCollision(mino.T, spawnPoint, b))
}

func TestHasCollisionIsPure(t *testing.T) {
	b := New(10, 20)
	b.FillRow(19)
	before := b.Clone()

	HasCollision(mino.Bar, mino.Point{X: 3, Y: 19}, b)
	HasCollision(mino.Bar, mino.Point{X: 3, Y: 18}, b)

	assert.True(t, before.Equal(b))
}
