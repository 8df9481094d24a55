package gui

import (
	"sync"

	"github.com/gdamore/tcell/v2"
	"github.com/qnkhuat/blockterm/pkg/game"
)

// View holds what the board area shows between redraws. The game loop
// updates it and the UI goroutine draws it, so access is locked.
type View struct {
	mu     sync.Mutex
	snap   game.Snapshot
	theme  Theme
	paused bool
}

func NewView(t Theme) *View {
	return &View{theme: t}
}

func (v *View) Update(snap game.Snapshot) {
	v.mu.Lock()
	v.snap = snap
	v.mu.Unlock()
}

func (v *View) SetPaused(paused bool) {
	v.mu.Lock()
	v.paused = paused
	v.mu.Unlock()
}

func (v *View) Snapshot() game.Snapshot {
	v.mu.Lock()
	defer v.mu.Unlock()

	return v.snap
}

// Draw renders the board centered in the given rectangle. It matches the
// tview draw func signature and returns the area left inside the rectangle.
func (v *View) Draw(s tcell.Screen, x, y, width, height int) (int, int, int, int) {
	v.mu.Lock()
	snap, theme, paused := v.snap, v.theme, v.paused
	v.mu.Unlock()

	if snap.W == 0 || snap.H == 0 {
		return x, y, width, height
	}

	w, h := Size(snap.W, snap.H)
	if width > w {
		x += (width - w) / 2
	}
	if height > h {
		y += (height - h) / 2
	}

	Render(s, x, y, snap, theme)
	if paused && !snap.Terminal {
		DrawMsgLabel(s, x, y, snap.W, snap.H, PausedText, theme)
	}

	return x, y, width, height
}
