package gui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/qnkhuat/blockterm/pkg/game"
)

const (
	// CellWidth is the number of screen columns used per board cell.
	CellWidth = 2

	GameOverText = "Game Over"
	PausedText   = "Paused"
)

// drawText places text at the specified coordinates with the provided style
func drawText(s tcell.Screen, x, y int, style tcell.Style, text string) {
	for _, r := range []rune(text) {
		s.SetContent(x, y, r, nil, style)
		x++
	}
}

// drawRune places a rune at the specified coordinates with the provided style
func drawRune(s tcell.Screen, x, y int, style tcell.Style, r rune) {
	s.SetContent(x, y, r, nil, style)
}

// DefStyle is the default style for tcell rendering
var DefStyle = tcell.StyleDefault.Background(tcell.ColorReset).Foreground(tcell.ColorReset)

// Size returns the footprint of Render for a w by h board: the bordered
// grid plus the score line.
func Size(w, h int) (int, int) {
	return w*CellWidth + 2, h + 3
}

// drawCell draws one board cell two columns wide
func drawCell(s tcell.Screen, col, row int, filled, active bool, t Theme) {
	switch {
	case active:
		style := DefStyle.Foreground(t.Active)
		drawText(s, col, row, style, "██")
	case filled:
		style := DefStyle.Foreground(t.Filled)
		drawText(s, col, row, style, "██")
	default:
		style := DefStyle.Foreground(t.Empty)
		drawText(s, col, row, style, " .")
	}
}

// drawBorder draws the frame around a w by h board with its top left corner
// at x, y
func drawBorder(s tcell.Screen, x, y, w, h int, t Theme) {
	style := DefStyle.Foreground(t.Border)
	inner := w * CellWidth

	drawRune(s, x, y, style, '┏')
	drawRune(s, x+inner+1, y, style, '┓')
	drawRune(s, x, y+h+1, style, '┗')
	drawRune(s, x+inner+1, y+h+1, style, '┛')

	for i := 1; i <= inner; i++ {
		drawRune(s, x+i, y, style, '━')
		drawRune(s, x+i, y+h+1, style, '━')
	}

	for j := 1; j <= h; j++ {
		drawRune(s, x, y+j, style, '┃')
		drawRune(s, x+inner+1, y+j, style, '┃')
	}
}

// drawBoard draws the composited cells inside the border
func drawBoard(s tcell.Screen, x, y int, snap game.Snapshot, t Theme) {
	for row := 0; row < snap.H; row++ {
		col := x + 1
		for c := 0; c < snap.W; c++ {
			drawCell(s, col, y+1+row, snap.Filled(c, row), snap.IsActive(c, row), t)
			col += CellWidth
		}
	}
}

// DrawMsgLabel centers msg over the middle row of the board
func DrawMsgLabel(s tcell.Screen, x, y, w, h int, msg string, t Theme) {
	label := " " + msg + " "
	inner := w * CellWidth

	col := x + 1
	if len(label) < inner {
		col += (inner - len(label)) / 2
	}

	labelStyle := DefStyle.Foreground(t.Msg).Bold(true)
	drawText(s, col, y+1+h/2, labelStyle, label)
}

// drawScore displays the score under the board
func drawScore(s tcell.Screen, x, y int, snap game.Snapshot, t Theme) {
	scoreStyle := DefStyle.Foreground(t.Score)
	drawText(s, x, y+snap.H+2, scoreStyle, fmt.Sprintf("Score: %-8d", snap.Score))
}

// Render draws snap with its top left corner at x, y. It does not call Show.
func Render(s tcell.Screen, x, y int, snap game.Snapshot, t Theme) {
	drawBorder(s, x, y, snap.W, snap.H, t)
	drawBoard(s, x, y, snap, t)
	drawScore(s, x, y, snap, t)

	if snap.Terminal {
		DrawMsgLabel(s, x, y, snap.W, snap.H, GameOverText, t)
	}
}
