package pkg

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/qnkhuat/blockterm/pkg/board"
	"github.com/qnkhuat/blockterm/pkg/config"
	"github.com/qnkhuat/blockterm/pkg/event"
	"github.com/qnkhuat/blockterm/pkg/game"
	"github.com/qnkhuat/blockterm/pkg/gui"
	"github.com/qnkhuat/blockterm/pkg/mino"
	"github.com/qnkhuat/blockterm/pkg/sound"
	"github.com/rivo/tview"
)

const (
	pageGame     = "game"
	pageGameOver = "gameover"
	sideWidth    = 24
)

type Keybinding struct {
	k tcell.Key
	r rune

	a event.GameAction
}

var keybindings = []*Keybinding{
	{k: tcell.KeyLeft, a: event.ActionMoveLeft},
	{r: 'h', a: event.ActionMoveLeft},
	{r: 'H', a: event.ActionMoveLeft},
	{k: tcell.KeyRight, a: event.ActionMoveRight},
	{r: 'l', a: event.ActionMoveRight},
	{r: 'L', a: event.ActionMoveRight},
	{k: tcell.KeyDown, a: event.ActionSoftDrop},
	{r: 'j', a: event.ActionSoftDrop},
	{r: 'J', a: event.ActionSoftDrop},
	{k: tcell.KeyUp, a: event.ActionRotateCW},
	{r: 'k', a: event.ActionRotateCW},
	{r: 'K', a: event.ActionRotateCW},
	{r: 'x', a: event.ActionRotateCW},
	{r: 'X', a: event.ActionRotateCW},
	{r: 'p', a: event.ActionPause},
	{r: 'P', a: event.ActionPause},
	{r: 'r', a: event.ActionRestart},
	{r: 'R', a: event.ActionRestart},
	{r: 'q', a: event.ActionQuit},
	{r: 'Q', a: event.ActionQuit},
	{k: tcell.KeyEscape, a: event.ActionQuit},
	{k: tcell.KeyCtrlC, a: event.ActionQuit},
}

// ActionForKey looks a key event up in the keybindings table. Unbound keys
// map to ActionUnknown.
func ActionForKey(k tcell.Key, r rune) event.GameAction {
	for _, bind := range keybindings {
		if bind.k != 0 {
			if bind.k == k {
				return bind.a
			}
			continue
		}

		if k == tcell.KeyRune && bind.r == r {
			return bind.a
		}
	}

	return event.ActionUnknown
}

type Client struct {
	App    *tview.Application
	Board  *tview.Box
	Side   *tview.TextView
	Layout *tview.Grid
	Pages  *tview.Pages
	Modal  *tview.Modal

	Player *Player
	Engine *game.Engine
	Loop   *game.Loop
	Clock  *Clock
	View   *gui.View
	Sound  sound.Effects

	gameOver bool
}

// NewClient builds the engine for cfg and the UI around it. prefill cells are
// set on the first board only.
func NewClient(cfg config.Config, theme gui.Theme, player *Player, fx sound.Effects, prefill []mino.Point) (*Client, error) {
	b := board.New(cfg.Width, cfg.Height)
	if err := config.ApplyCells(b, prefill); err != nil {
		return nil, err
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UTC().UnixNano()
	}

	if fx == nil {
		fx = sound.Nop{}
	}

	e := game.NewEngine(b, mino.NewRandomizer(seed))
	e.Logger = log.Default()
	e.LogLevel = cfg.LogLevel

	playSound := sound.Listener(fx)
	e.Listener = func(ev event.Event) {
		e.Log(game.LogVerbose, "event: ", ev)
		playSound(ev)
	}

	clock := NewClock(cfg.Tick)

	cl := &Client{
		App:    tview.NewApplication(),
		Player: player,
		Engine: e,
		Loop:   game.NewLoop(e, clock.C),
		Clock:  clock,
		View:   gui.NewView(theme),
		Sound:  fx,
	}
	cl.initLayout(cfg.Width, cfg.Height)
	cl.initLoop()

	log.Printf("new client for %s, seed %d, board %dx%d, tick %s", player.Name, seed, cfg.Width, cfg.Height, clock)
	return cl, nil
}

func (cl *Client) initLayout(w, h int) {
	boardW, boardH := gui.Size(w, h)

	cl.Board = tview.NewBox()
	cl.Board.SetDrawFunc(cl.View.Draw)

	cl.Side = tview.NewTextView().
		SetDynamicColors(true).
		SetWrap(false)

	cl.Layout = tview.NewGrid().
		SetRows(-1, boardH, -1).
		SetColumns(-1, boardW, sideWidth, -1).
		AddItem(tview.NewBox(), 0, 0, 1, 4, 0, 0, false).
		AddItem(tview.NewBox(), 2, 0, 1, 4, 0, 0, false).
		AddItem(tview.NewBox(), 1, 0, 1, 1, 0, 0, false).
		AddItem(tview.NewBox(), 1, 3, 1, 1, 0, 0, false).
		AddItem(cl.Board, 1, 1, 1, 1, 0, 0, true).
		AddItem(cl.Side, 1, 2, 1, 1, 0, 0, false)

	cl.Modal = tview.NewModal().
		SetText(string(ActionNewGamePrompt)).
		AddButtons([]string{ActionNewGameOffer, ActionExit}).
		SetDoneFunc(func(_ int, label string) {
			switch label {
			case ActionNewGameOffer:
				cl.send(event.ActionRestart)
			default:
				cl.send(event.ActionQuit)
			}
		})

	cl.Pages = tview.NewPages().
		AddPage(pageGame, cl.Layout, true, true).
		AddPage(pageGameOver, cl.Modal, false, false)

	cl.App.SetRoot(cl.Pages, true).
		SetInputCapture(cl.handleKeypress)
}

func (cl *Client) initLoop() {
	cl.Loop.Draw = func(snap game.Snapshot) {
		cl.View.Update(snap)
		paused := cl.Loop.Paused()
		// Player is written on the loop goroutine; the UI gets a copy.
		player := *cl.Player
		cl.App.QueueUpdateDraw(func() {
			cl.Side.SetText(SidePanel(&player, snap, paused))
		})
	}

	cl.Loop.OnPause = func(paused bool) {
		cl.View.SetPaused(paused)
		if paused {
			cl.Clock.Pause()
		} else {
			cl.Clock.Resume()
		}
	}

	cl.Loop.OnGameOver = func(snap game.Snapshot) {
		cl.Clock.Pause()

		best := cl.Player.Record(snap.Score)
		player := *cl.Player
		log.Printf("game over for %s: score %d, lines %d, pieces %d", player.Name, snap.Score, snap.Lines, snap.Pieces)

		text := fmt.Sprintf("%s\n\nScore %d", ActionNewGamePrompt, snap.Score)
		if best && snap.Score > 0 {
			text += "\n" + ActionBest
		}

		cl.App.QueueUpdateDraw(func() {
			cl.gameOver = true
			cl.Side.SetText(SidePanel(&player, snap, false))
			cl.Modal.SetText(text)
			cl.Pages.ShowPage(pageGameOver)
			cl.App.SetFocus(cl.Modal)
		})
	}

	cl.Loop.OnRestart = func() {
		cl.View.SetPaused(false)
		cl.Clock.Reset()
		cl.Clock.Resume()

		cl.App.QueueUpdateDraw(func() {
			cl.gameOver = false
			cl.Pages.HidePage(pageGameOver)
			cl.App.SetFocus(cl.Board)
		})
	}
}

// handleKeypress runs on the UI goroutine. While the game over prompt is up
// keys go to the modal, except quit.
func (cl *Client) handleKeypress(ev *tcell.EventKey) *tcell.EventKey {
	a := ActionForKey(ev.Key(), ev.Rune())

	if cl.gameOver {
		switch a {
		case event.ActionQuit, event.ActionRestart:
			cl.send(a)
			return nil
		}
		return ev
	}

	if a == event.ActionUnknown {
		return ev
	}

	cl.send(a)
	return nil
}

// send hands an action to the loop without blocking the UI. When the queue
// is full the key press is dropped.
func (cl *Client) send(a event.GameAction) {
	select {
	case cl.Loop.Actions <- a:
	default:
		log.Printf("dropped %s: action queue full", a)
	}
}

// Run starts a game and blocks until the player quits or ctx is done.
func (cl *Client) Run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	defer cl.Clock.Stop()
	defer cl.Sound.Close()

	cl.Engine.Spawn()
	cl.Clock.Resume()

	loopErr := make(chan error, 1)
	go func() {
		err := cl.Loop.Run(ctx)
		cl.App.Stop()
		loopErr <- err
	}()

	if err := cl.App.Run(); err != nil {
		return err
	}

	cancel()
	if err := <-loopErr; err != nil && !errors.Is(err, context.Canceled) {
		return err
	}

	if !cl.Engine.Terminal() {
		cl.Player.Record(cl.Engine.Score())
	}

	return nil
}

// SidePanel is the text next to the board.
func SidePanel(p *Player, snap game.Snapshot, paused bool) string {
	var b strings.Builder

	fmt.Fprintf(&b, "[::b]%s[::-]\n\n", tview.Escape(p.Name))
	fmt.Fprintf(&b, "Score  %d\n", snap.Score)
	fmt.Fprintf(&b, "Lines  %d\n", snap.Lines)
	fmt.Fprintf(&b, "Pieces %d\n", snap.Pieces)
	fmt.Fprintf(&b, "Best   %d\n", p.Best)

	if paused {
		fmt.Fprintf(&b, "\n[yellow]%s[-]\n", ActionPausePrompt)
	}

	b.WriteString("\n")
	b.WriteString("←→ h l  move\n")
	b.WriteString("↓  j    drop\n")
	b.WriteString("↑  k x  rotate\n")
	b.WriteString("p pause  r restart\n")
	b.WriteString("q quit\n")

	return b.String()
}
