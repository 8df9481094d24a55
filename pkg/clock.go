package pkg

import (
	"sync"
	"time"

	"github.com/qnkhuat/blockterm/pkg/config"
)

// Clock delivers gravity ticks on C while running. Ticks that the reader
// does not pick up in time are dropped, never queued.
type Clock struct {
	Interval time.Duration
	C        <-chan time.Time

	c      chan time.Time
	mu     sync.Mutex
	paused bool
	ticker *time.Ticker
	done   chan struct{}
	stop   sync.Once
}

// NewClock returns a paused clock; call Resume to start ticking.
func NewClock(interval time.Duration) *Clock {
	if interval <= 0 {
		interval = config.DefaultTick
	}

	c := make(chan time.Time, 1)
	cl := &Clock{
		Interval: interval,
		C:        c,
		c:        c,
		paused:   true,
		ticker:   time.NewTicker(interval),
		done:     make(chan struct{}),
	}
	go cl.Run()
	return cl
}

func (cl *Clock) String() string {
	return cl.Interval.String()
}

func (cl *Clock) Run() {
	for {
		select {
		case <-cl.done:
			return
		case t := <-cl.ticker.C:
			if cl.Paused() {
				continue
			}

			select {
			case cl.c <- t:
			default:
			}
		}
	}
}

func (cl *Clock) Paused() bool {
	cl.mu.Lock()
	defer cl.mu.Unlock()

	return cl.paused
}

func (cl *Clock) Pause() {
	cl.mu.Lock()
	cl.paused = true
	cl.mu.Unlock()
}

// Resume restarts the interval so the first tick comes a full interval later.
func (cl *Clock) Resume() {
	cl.mu.Lock()
	cl.paused = false
	cl.ticker.Reset(cl.Interval)
	cl.mu.Unlock()
}

// Reset drops a pending tick and restarts the interval.
func (cl *Clock) Reset() {
	cl.mu.Lock()
	cl.ticker.Reset(cl.Interval)
	cl.mu.Unlock()

	select {
	case <-cl.c:
	default:
	}
}

func (cl *Clock) Stop() {
	cl.stop.Do(func() {
		cl.ticker.Stop()
		close(cl.done)
	})
}
