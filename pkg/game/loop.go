package game

import (
	"context"
	"time"

	"github.com/qnkhuat/blockterm/pkg/event"
)

const CommandQueueSize = 10

// Loop is the single goroutine allowed to touch an Engine. Key actions and
// gravity ticks arrive on separate channels and are applied one at a time;
// each step, including a lock and respawn, completes before the next starts.
type Loop struct {
	Engine  *Engine
	Actions chan event.GameAction
	Ticks   <-chan time.Time

	// Draw is called with a fresh snapshot after every step.
	Draw func(Snapshot)
	// OnGameOver is called once per game, after the engine turns terminal.
	OnGameOver func(Snapshot)
	OnPause    func(paused bool)
	OnRestart  func()

	paused       bool
	reportedOver bool
}

func NewLoop(e *Engine, ticks <-chan time.Time) *Loop {
	return &Loop{
		Engine:  e,
		Actions: make(chan event.GameAction, CommandQueueSize),
		Ticks:   ticks,
	}
}

func (l *Loop) Paused() bool { return l.paused }

// Run processes actions and ticks until ctx is done, the actions channel is
// closed or ActionQuit is received.
func (l *Loop) Run(ctx context.Context) error {
	l.after()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case a, ok := <-l.Actions:
			if !ok {
				return nil
			}

			if quit := l.Step(a); quit {
				return nil
			}
		case <-l.Ticks:
			l.Tick()
		}
	}
}

// Step applies one action and reports whether the loop should stop.
func (l *Loop) Step(a event.GameAction) bool {
	switch a {
	case event.ActionQuit:
		return true
	case event.ActionPause:
		if l.Engine.Terminal() {
			return false
		}

		l.paused = !l.paused
		l.Engine.Logf(LogDebug, "paused: %v", l.paused)
		if l.OnPause != nil {
			l.OnPause(l.paused)
		}
	case event.ActionRestart:
		l.restart()
	default:
		if l.paused || !a.IsCommand() {
			return false
		}

		l.Engine.ProcessAction(a)
	}

	l.after()
	return false
}

// Tick applies one gravity step. Ticks are dropped while paused and after
// the game is over.
func (l *Loop) Tick() {
	if l.paused || l.Engine.Terminal() {
		return
	}

	l.Engine.GravityTick()
	l.after()
}

func (l *Loop) restart() {
	l.Engine.Reset()
	l.Engine.Spawn()

	l.paused = false
	l.reportedOver = false

	if l.OnRestart != nil {
		l.OnRestart()
	}
}

func (l *Loop) after() {
	snap := l.draw()

	if l.Engine.Terminal() && !l.reportedOver {
		l.reportedOver = true
		if l.OnGameOver != nil {
			l.OnGameOver(snap)
		}
	}
}

func (l *Loop) draw() Snapshot {
	snap := l.Engine.Snapshot()
	if l.Draw != nil {
		l.Draw(snap)
	}

	return snap
}
