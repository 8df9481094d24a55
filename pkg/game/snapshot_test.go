package game

import (
	"testing"

	"github.com/qnkhuat/blockterm/pkg/board"
	"github.com/qnkhuat/blockterm/pkg/mino"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSnapshotComposite(t *testing.T) {
	b := board.New(6, 4)
	b.Set(0, 3, board.CellFilled)

	e := newTestEngine(t, b)
	e.SpawnPoint = mino.Point{X: 1, Y: 0}
	e.SpawnShape(mino.T)

	snap := e.Snapshot()
	require.Equal(t, 6, snap.W)
	require.Equal(t, 4, snap.H)

	want := "..@...\n.@@@..\n......\n#....."
	assert.Equal(t, want, snap.Render())
	assert.Equal(t, ".X./XXX", snap.Shape)
	assert.Equal(t, mino.Point{X: 1, Y: 0}, snap.Position)
	assert.Equal(t, StateActive, snap.State)
	assert.False(t, snap.Terminal)

	assert.True(t, snap.Filled(2, 0))
	assert.True(t, snap.IsActive(2, 0))
	assert.True(t, snap.Filled(0, 3))
	assert.False(t, snap.IsActive(0, 3))
	assert.False(t, snap.Filled(-1, 0))
	assert.False(t, snap.IsActive(6, 0))

	// Composited cells never reach board storage.
	assert.False(t, e.Board().Filled(2, 0))
}

func TestSnapshotIsCopy(t *testing.T) {
	e := newTestEngine(t, nil)
	e.SpawnShape(mino.Square)

	snap := e.Snapshot()
	snap.Cells[19][0] = board.CellFilled
	snap.Active[0][3] = false

	again := e.Snapshot()
	assert.False(t, again.Filled(0, 19))
	assert.True(t, again.IsActive(3, 0))
	assert.False(t, e.Board().Filled(0, 19))
}

func TestSnapshotPartiallyAbove(t *testing.T) {
	e := newTestEngine(t, board.New(10, 4))
	e.SpawnPoint = mino.Point{X: 3, Y: -1}
	e.SpawnShape(mino.Square)
	require.Equal(t, StateActive, e.State())

	snap := e.Snapshot()
	assert.True(t, snap.IsActive(3, 0))
	assert.True(t, snap.IsActive(4, 0))
	assert.False(t, snap.IsActive(3, 1))
}

func TestSnapshotGameOver(t *testing.T) {
	b := board.New(10, 20)
	b.FillRow(0)

	e := newTestEngine(t, b)
	e.SpawnShape(mino.Bar)

	snap := e.Snapshot()
	assert.True(t, snap.Terminal)
	assert.Equal(t, StateGameOver, snap.State)
	assert.Empty(t, snap.Shape)
	for y := range snap.Active {
		for x := range snap.Active[y] {
			assert.False(t, snap.Active[y][x])
		}
	}
}
