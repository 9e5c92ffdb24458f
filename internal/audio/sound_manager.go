// Package audio plays synthesized Pig Pong cues through the system speaker.
// Every cue is generated in code; there are no sound assets. When the
// speaker cannot be initialized all calls are silent no-ops.
package audio

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/vovakirdan/pigpong/internal/games/pigpong"
)

const (
	sampleRate = beep.SampleRate(48000)
)

// Cue identifies a sound the game asks for.
type Cue int

const (
	CueServe Cue = iota
	CueHit
	CueHitAlternate
	CueCheer
	CueTuneStart
	CueTuneStop
)

func (c Cue) String() string {
	switch c {
	case CueServe:
		return "serve"
	case CueHit:
		return "hit"
	case CueHitAlternate:
		return "hit-alternate"
	case CueCheer:
		return "cheer"
	case CueTuneStart:
		return "tune-start"
	case CueTuneStop:
		return "tune-stop"
	default:
		return "unknown"
	}
}

// CuesFor maps a game event to the cues it triggers. Rim clips and score
// changes are silent.
func CuesFor(evt pigpong.Event) []Cue {
	switch e := evt.(type) {
	case pigpong.ServeEvent:
		return []Cue{CueServe}
	case pigpong.PaddleHitEvent:
		if e.Variant == pigpong.HitAlternate {
			return []Cue{CueHitAlternate}
		}
		return []Cue{CueHit}
	case pigpong.MatchEndedEvent:
		if e.WasHuman {
			return []Cue{CueTuneStop, CueCheer}
		}
		return []Cue{CueTuneStop}
	case pigpong.PhaseChangedEvent:
		switch e.Phase {
		case pigpong.PhaseStartup:
			return []Cue{CueTuneStart}
		case pigpong.PhaseWaiting:
			return []Cue{CueTuneStop}
		}
	}
	return nil
}

// SoundManager manages all game audio
type SoundManager struct {
	mu          sync.Mutex
	tune        *beep.Ctrl
	mixer       *beep.Mixer
	initialized bool
}

// NewSoundManager creates a new sound manager
func NewSoundManager() *SoundManager {
	return &SoundManager{
		mixer: &beep.Mixer{},
	}
}

// Initialize sets up the audio system
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}

	// Initialize speaker with sample rate and buffer size
	err := speaker.Init(sampleRate, sampleRate.N(time.Millisecond*100))
	if err != nil {
		return err
	}

	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Initialized reports whether sound is playing through a device.
func (sm *SoundManager) Initialized() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.initialized
}

// Cleanup stops all sounds
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	speaker.Lock()
	if sm.tune != nil {
		sm.tune.Paused = true
		sm.tune = nil
	}
	sm.mixer.Clear()
	speaker.Unlock()

	// beep has no way to close the speaker; an empty mixer plays silence
	sm.initialized = false
}

// HandleEvent plays the cues for a game event. It has the shape of a
// pigpong.Listener.
func (sm *SoundManager) HandleEvent(evt pigpong.Event) {
	for _, cue := range CuesFor(evt) {
		sm.Play(cue)
	}
}

// Play plays a single cue.
func (sm *SoundManager) Play(cue Cue) {
	switch cue {
	case CueServe:
		sm.add(CreateServeSound(sampleRate))
	case CueHit:
		sm.add(CreateHitSound(false, sampleRate))
	case CueHitAlternate:
		sm.add(CreateHitSound(true, sampleRate))
	case CueCheer:
		sm.add(CreateCheerSound(sampleRate))
	case CueTuneStart:
		sm.StartTune()
	case CueTuneStop:
		sm.StopTune()
	}
}

func (sm *SoundManager) add(s beep.Streamer) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	speaker.Lock()
	sm.mixer.Add(s)
	speaker.Unlock()
}

// StartTune starts the looping match tune
func (sm *SoundManager) StartTune() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	speaker.Lock()
	defer speaker.Unlock()

	// If already playing, don't restart
	if sm.tune != nil && !sm.tune.Paused {
		return
	}

	loop := beep.Iterate(func() beep.Streamer {
		return CreateGameTune(sampleRate)
	})
	sm.tune = &beep.Ctrl{Streamer: loop, Paused: false}
	sm.mixer.Add(sm.tune)
}

// StopTune stops the match tune
func (sm *SoundManager) StopTune() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.tune == nil {
		return
	}

	speaker.Lock()
	sm.tune.Paused = true
	// Dropping the streamer lets the mixer remove it
	sm.tune.Streamer = nil
	sm.tune = nil
	speaker.Unlock()
}
