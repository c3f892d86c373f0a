// Package audio plays the game's sound effects through the system audio
// device. Playback is fire-and-forget: Play returns immediately and the
// speaker goroutine mixes every active effect.
package audio

import (
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/speaker"

	"github.com/vovakirdan/tui-artillery/internal/assets"
	"github.com/vovakirdan/tui-artillery/internal/core"
)

// bufferLatency is the speaker buffer length.
const bufferLatency = 100 * time.Millisecond

// Speaker plays sound effects from an asset registry.
type Speaker struct {
	mu          sync.Mutex
	format      beep.Format
	buffers     map[core.Sound]*beep.Buffer
	volume      float64
	mixer       *beep.Mixer
	initialized bool
	logger      *log.Logger
}

// NewSpeaker creates a speaker for the sounds in reg. Volume ranges from
// 0 (silent) to 1 (unchanged). Init must be called before sounds are heard.
func NewSpeaker(reg *assets.Registry, volume float64, logger *log.Logger) *Speaker {
	return &Speaker{
		format: reg.Format,
		buffers: map[core.Sound]*beep.Buffer{
			core.SoundLaunch:    reg.Launch,
			core.SoundExplosion: reg.Explosion,
		},
		volume: volume,
		mixer:  &beep.Mixer{},
		logger: logger,
	}
}

// Init opens the audio device.
func (s *Speaker) Init() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.initialized {
		return nil
	}

	rate := s.format.SampleRate
	if err := speaker.Init(rate, rate.N(bufferLatency)); err != nil {
		return fmt.Errorf("audio: init speaker: %w", err)
	}
	speaker.Play(s.mixer)
	s.initialized = true
	return nil
}

// Play starts a sound effect. It is a no-op before Init or after Close.
func (s *Speaker) Play(snd core.Sound) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.initialized {
		return
	}
	st := s.streamer(snd)
	if st == nil {
		return
	}

	speaker.Lock()
	s.mixer.Add(st)
	speaker.Unlock()

	if s.logger != nil {
		s.logger.Debug("sound", "name", snd)
	}
}

// Close stops playback and releases the audio device.
func (s *Speaker) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.initialized {
		return
	}
	speaker.Clear()
	speaker.Close()
	s.initialized = false
}

// streamer returns a fresh, volume-adjusted stream of the sound, or nil if
// the sound has no buffer.
func (s *Speaker) streamer(snd core.Sound) beep.Streamer {
	buf, ok := s.buffers[snd]
	if !ok || buf == nil {
		return nil
	}
	return withVolume(buf.Streamer(0, buf.Len()), s.volume)
}

// withVolume scales a stream by a linear gain in [0, 1].
func withVolume(st beep.Streamer, gain float64) beep.Streamer {
	if gain >= 1 {
		return st
	}
	if gain <= 0 {
		return &effects.Volume{Streamer: st, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: st, Base: 2, Volume: math.Log2(gain)}
}

// Silent is a SoundPlayer that discards every sound.
type Silent struct{}

// Play does nothing.
func (Silent) Play(core.Sound) {}
