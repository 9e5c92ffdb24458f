package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveTriangle
)

// sweep is an oscillator gliding linearly from one frequency to another
// over its duration, with a short attack and an exponential tail.
type sweep struct {
	from, to float64
	wave     WaveType
	rate     beep.SampleRate
	total    int
	attack   int
	decay    float64 // Tail time constant in seconds
	phase    float64
	pos      int
}

// NewSweep creates a gliding tone. A fixed pitch is a sweep with from == to.
func NewSweep(from, to float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &sweep{
		from:   from,
		to:     to,
		wave:   wave,
		rate:   rate,
		total:  rate.N(duration),
		attack: rate.N(5 * time.Millisecond),
		decay:  duration.Seconds() / 3,
	}
}

func (s *sweep) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if s.pos >= s.total {
			return i, i > 0
		}

		frac := float64(s.pos) / float64(s.total)
		freq := s.from + (s.to-s.from)*frac

		var val float64
		switch s.wave {
		case WaveSquare:
			if s.phase < 0.5 {
				val = 0.6
			} else {
				val = -0.6
			}
		case WaveTriangle:
			val = 4*math.Abs(s.phase-0.5) - 1
		default:
			val = math.Sin(2 * math.Pi * s.phase)
		}

		env := 1.0
		if s.pos < s.attack {
			env = float64(s.pos) / float64(s.attack)
		}
		if s.decay > 0 {
			env *= math.Exp(-float64(s.pos) / float64(s.rate) / s.decay)
		}
		val *= env

		samples[i][0] = val
		samples[i][1] = val

		s.phase += freq / float64(s.rate)
		s.phase -= math.Floor(s.phase)
		s.pos++
	}
	return len(samples), true
}

func (s *sweep) Err() error { return nil }

// Note is one step of a melody. A zero frequency is a rest.
type Note struct {
	Freq     float64
	Duration time.Duration
}

// melody plays notes back to back as plucked triangle tones.
type melody struct {
	notes []Note
	rate  beep.SampleRate
	index int
	cur   beep.Streamer
	rest  int
}

// NewMelody creates a streamer that plays notes once.
func NewMelody(notes []Note, rate beep.SampleRate) beep.Streamer {
	return &melody{notes: notes, rate: rate}
}

func (m *melody) next() bool {
	if m.index >= len(m.notes) {
		return false
	}
	n := m.notes[m.index]
	m.index++
	if n.Freq <= 0 {
		m.cur = nil
		m.rest = m.rate.N(n.Duration)
		return true
	}
	m.cur = NewSweep(n.Freq, n.Freq, n.Duration, WaveTriangle, m.rate)
	m.rest = 0
	return true
}

func (m *melody) Stream(samples [][2]float64) (n int, ok bool) {
	for n < len(samples) {
		if m.cur == nil && m.rest == 0 && !m.next() {
			return n, n > 0
		}
		if m.cur == nil {
			k := min(m.rest, len(samples)-n)
			for i := n; i < n+k; i++ {
				samples[i] = [2]float64{}
			}
			m.rest -= k
			n += k
			continue
		}
		k, more := m.cur.Stream(samples[n:])
		n += k
		if !more || k == 0 {
			m.cur = nil
		}
	}
	return n, true
}

func (m *melody) Err() error { return nil }

// Helper to create a volume effect safely
// math.Log2(0) is -Inf, so we handle 0 volume by making it silent
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

// Sound effect generators

// CreateServeSound is a short rising squeal.
func CreateServeSound(rate beep.SampleRate) beep.Streamer {
	return newVolume(NewSweep(300, 900, 180*time.Millisecond, WaveSine, rate), 0.5)
}

// CreateHitSound is the paddle thump. The alternate variant is a lower
// grunt played on roughly one hit in seven.
func CreateHitSound(alternate bool, rate beep.SampleRate) beep.Streamer {
	if alternate {
		return newVolume(NewSweep(220, 90, 160*time.Millisecond, WaveSquare, rate), 0.35)
	}
	return newVolume(NewSweep(520, 380, 90*time.Millisecond, WaveSquare, rate), 0.3)
}

// CreateCheerSound is a rising major arpeggio for a human winner.
func CreateCheerSound(rate beep.SampleRate) beep.Streamer {
	notes := []Note{
		{Freq: 523.25, Duration: 120 * time.Millisecond},
		{Freq: 659.25, Duration: 120 * time.Millisecond},
		{Freq: 783.99, Duration: 120 * time.Millisecond},
		{Freq: 1046.5, Duration: 400 * time.Millisecond},
	}
	return newVolume(NewMelody(notes, rate), 0.6)
}

// gameTune is the bouncy loop played during a match.
var gameTune = []Note{
	{Freq: 392.00, Duration: 150 * time.Millisecond},
	{Freq: 0, Duration: 50 * time.Millisecond},
	{Freq: 392.00, Duration: 150 * time.Millisecond},
	{Freq: 523.25, Duration: 200 * time.Millisecond},
	{Freq: 0, Duration: 50 * time.Millisecond},
	{Freq: 440.00, Duration: 150 * time.Millisecond},
	{Freq: 349.23, Duration: 150 * time.Millisecond},
	{Freq: 392.00, Duration: 300 * time.Millisecond},
	{Freq: 0, Duration: 200 * time.Millisecond},
}

// CreateGameTune returns one pass of the match tune.
func CreateGameTune(rate beep.SampleRate) beep.Streamer {
	return newVolume(NewMelody(gameTune, rate), 0.25)
}
