package sound

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

const (
	SampleRate = beep.SampleRate(44100)

	LockDuration  = 40 * time.Millisecond
	NoteDuration  = 70 * time.Millisecond
	OverDuration  = 180 * time.Millisecond
	attack        = 5 * time.Millisecond
	release       = 30 * time.Millisecond
	defaultVolume = 0.4
)

// Notes of the clear chime, one per removed row, and the falling game over
// tones.
var (
	clearNotes    = []float64{523.25, 659.25, 783.99, 1046.50}
	gameOverNotes = []float64{392.00, 311.13, 261.63}
)

type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
)

// oscillator generates a fixed length wave
type oscillator struct {
	freq     float64
	phase    float64
	duration int
	position int
	wave     WaveType
	rate     beep.SampleRate
}

func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		freq:     freq,
		duration: rate.N(duration),
		wave:     wave,
		rate:     rate,
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, i > 0
		}

		var val float64
		switch o.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			val = -1
			if o.phase < 0.5 {
				val = 1
			}
		}

		samples[i][0] = val
		samples[i][1] = val

		o.phase += o.freq / float64(o.rate)
		o.phase -= math.Floor(o.phase)
		o.position++
	}

	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope fades a stream in and out
type envelope struct {
	streamer beep.Streamer
	position int
	attack   int
	release  int
	total    int
}

func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	return &envelope{
		streamer: s,
		attack:   rate.N(attack),
		release:  rate.N(release),
		total:    rate.N(duration),
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)

	for i := 0; i < n; i++ {
		vol := 1.0
		if e.position < e.attack {
			vol = float64(e.position) / float64(e.attack)
		}
		if remaining := e.total - e.position; remaining < e.release {
			vol = math.Max(0, float64(remaining)/float64(e.release))
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}

	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// math.Log2(0) is -Inf, so zero volume is silent instead
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}

	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}

func note(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	osc := NewOscillator(freq, duration, wave, rate)
	return NewEnvelope(osc, duration, attack, release, rate)
}

// LockSound is a short low click
func LockSound(rate beep.SampleRate, vol float64) beep.Streamer {
	return newVolume(note(110, LockDuration, WaveSquare, rate), vol*0.5)
}

// ClearSound plays one rising note per cleared row
func ClearSound(rate beep.SampleRate, vol float64, rows int) beep.Streamer {
	if rows < 1 {
		rows = 1
	}
	if rows > len(clearNotes) {
		rows = len(clearNotes)
	}

	notes := make([]beep.Streamer, 0, rows)
	for _, f := range clearNotes[:rows] {
		notes = append(notes, note(f, NoteDuration, WaveSine, rate))
	}

	return newVolume(beep.Seq(notes...), vol)
}

// GameOverSound is three falling tones
func GameOverSound(rate beep.SampleRate, vol float64) beep.Streamer {
	notes := make([]beep.Streamer, 0, len(gameOverNotes))
	for _, f := range gameOverNotes {
		notes = append(notes, note(f, OverDuration, WaveSquare, rate))
	}

	return newVolume(beep.Seq(notes...), vol*0.6)
}
