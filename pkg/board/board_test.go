package board

import (
	"strings"
	"testing"

	"github.com/qnkhuat/blockterm/pkg/mino"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fromRows builds a board from '#'/'.' rows, top first.
func fromRows(t *testing.T, rows ...string) *Board {
	t.Helper()

	b := New(len(rows[0]), len(rows))
	for y, row := range rows {
		require.Len(t, row, b.W, "row %d", y)
		for x, r := range row {
			if r == '#' {
				b.Set(x, y, CellFilled)
			}
		}
	}

	return b
}

func TestNew(t *testing.T) {
	b := New(10, 20)
	assert.Equal(t, 10, b.W)
	assert.Equal(t, 20, b.H)

	rows := b.Rows()
	require.Len(t, rows, 20)
	for y := range rows {
		assert.Len(t, rows[y], 10)
		for x := range rows[y] {
			assert.Equal(t, CellEmpty, rows[y][x])
		}
	}

	d := New(0, -1)
	assert.Equal(t, DefaultWidth, d.W)
	assert.Equal(t, DefaultHeight, d.H)
}

func TestSetGet(t *testing.T) {
	b := New(4, 4)

	assert.True(t, b.Set(1, 2, CellFilled))
	assert.True(t, b.Filled(1, 2))
	assert.False(t, b.Filled(2, 1))

	assert.False(t, b.Set(-1, 0, CellFilled))
	assert.False(t, b.Set(0, 4, CellFilled))
	assert.Equal(t, CellEmpty, b.Get(10, 10))
}

func TestClearCompletedRowsSingle(t *testing.T) {
	b := New(10, 20)
	b.Set(2, 17, CellFilled)
	b.FillRow(18)
	b.Set(5, 19, CellFilled)

	cleared := b.ClearCompletedRows()
	assert.Equal(t, 1, cleared)
	assert.Equal(t, 20, b.H)
	assert.Len(t, b.Rows(), 20)

	// Row above the clear shifts down by one, row below stays put.
	assert.True(t, b.Filled(2, 18))
	assert.False(t, b.Filled(2, 17))
	assert.True(t, b.Filled(5, 19))
	assert.False(t, b.RowFilled(0))
	for x := 0; x < b.W; x++ {
		assert.False(t, b.Filled(x, 0))
	}
}

func TestClearCompletedRowsSimultaneous(t *testing.T) {
	b := fromRows(t,
		"....",
		"#...",
		"####",
		".#..",
		"####",
		"####",
		"..#.",
	)

	cleared := b.ClearCompletedRows()
	assert.Equal(t, 3, cleared)

	expected := fromRows(t,
		"....",
		"....",
		"....",
		"....",
		"#...",
		".#..",
		"..#.",
	)
	assert.True(t, expected.Equal(b), "got\n%s", b)
}

func TestClearCompletedRowsNone(t *testing.T) {
	b := fromRows(t,
		"#.#",
		".#.",
	)
	before := b.Clone()

	assert.Equal(t, 0, b.ClearCompletedRows())
	assert.True(t, before.Equal(b))
}

func TestClear(t *testing.T) {
	b := fromRows(t,
		"#..#",
		"####",
	)
	b.Clear()

	assert.True(t, b.Equal(New(4, 2)))
	assert.Zero(t, b.ClearCompletedRows())
}

func TestClearedRowsAreIndependent(t *testing.T) {
	b := fromRows(t,
		"##",
		"##",
	)
	assert.Equal(t, 2, b.ClearCompletedRows())

	b.Set(0, 0, CellFilled)
	assert.False(t, b.Filled(0, 1), "inserted rows must not share storage")
}

func TestMerge(t *testing.T) {
	b := New(10, 20)
	b.Merge(mino.T, mino.Point{X: 3, Y: 18})

	assert.True(t, b.Filled(4, 18))
	assert.True(t, b.Filled(3, 19))
	assert.True(t, b.Filled(4, 19))
	assert.True(t, b.Filled(5, 19))
	assert.False(t, b.Filled(3, 18))
	assert.False(t, b.Filled(5, 18))
}

func TestMergeSkipsOutOfBounds(t *testing.T) {
	b := New(4, 4)
	b.Merge(mino.Bar, mino.Point{X: 2, Y: -1})
	b.Merge(mino.Bar, mino.Point{X: 2, Y: 3})

	expected := fromRows(t,
		"....",
		"....",
		"....",
		"..##",
	)
	assert.True(t, expected.Equal(b), "got\n%s", b)
}

func TestCloneIsDeep(t *testing.T) {
	b := New(3, 3)
	c := b.Clone()
	c.Set(1, 1, CellFilled)

	assert.False(t, b.Filled(1, 1))
	assert.False(t, b.Equal(c))
}

func TestRender(t *testing.T) {
	b := fromRows(t,
		"#..",
		".##",
	)

	assert.Equal(t, "#..\n.##", b.Render())
	assert.Equal(t, 3, strings.Count(b.String(), "#"))
}

func BenchmarkClearCompletedRows(b *testing.B) {
	b.ReportAllocs()

	for n := 0; n < b.N; n++ {
		brd := New(10, 20)
		for y := 16; y < 20; y++ {
			brd.FillRow(y)
		}

		brd.ClearCompletedRows()
	}
}
