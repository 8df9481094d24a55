package sound

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
	"github.com/qnkhuat/blockterm/pkg/event"
)

// Effects is what the client plays on engine events.
type Effects interface {
	Lock()
	Clear(rows int)
	GameOver()
	Close()
}

// Speaker plays effects on the default audio device through one mixer.
type Speaker struct {
	mu     sync.Mutex
	mixer  *beep.Mixer
	rate   beep.SampleRate
	volume float64
	closed bool
}

// NewSpeaker opens the audio device. Only one Speaker may exist per process.
func NewSpeaker() (*Speaker, error) {
	s := &Speaker{
		mixer:  &beep.Mixer{},
		rate:   SampleRate,
		volume: defaultVolume,
	}

	if err := speaker.Init(s.rate, s.rate.N(100*time.Millisecond)); err != nil {
		return nil, err
	}

	speaker.Play(s.mixer)
	return s, nil
}

func (s *Speaker) play(st beep.Streamer) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return
	}

	speaker.Lock()
	s.mixer.Add(st)
	speaker.Unlock()
}

func (s *Speaker) Lock()          { s.play(LockSound(s.rate, s.volume)) }
func (s *Speaker) Clear(rows int) { s.play(ClearSound(s.rate, s.volume, rows)) }
func (s *Speaker) GameOver()      { s.play(GameOverSound(s.rate, s.volume)) }

func (s *Speaker) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return
	}
	s.closed = true

	speaker.Lock()
	s.mixer.Clear()
	speaker.Unlock()
	speaker.Close()
}

// Nop is used when sound is disabled.
type Nop struct{}

func (Nop) Lock()     {}
func (Nop) Clear(int) {}
func (Nop) GameOver() {}
func (Nop) Close()    {}

// Listener turns engine events into effects.
func Listener(fx Effects) event.Listener {
	return func(e event.Event) {
		switch e := e.(type) {
		case event.LockEvent:
			if e.Cleared > 0 {
				fx.Clear(e.Cleared)
			} else {
				fx.Lock()
			}
		case event.GameOverEvent:
			fx.GameOver()
		}
	}
}
