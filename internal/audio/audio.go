// Package audio plays the game's sound cues through the system speaker.
// Sounds are synthesized at startup time; no audio files are shipped.
package audio

import (
	"errors"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/vovakirdan/tui-asteroids/internal/config"
	"github.com/vovakirdan/tui-asteroids/internal/games/asteroids/core"
)

// ErrDisabled is returned by Init when audio is turned off in config.
var ErrDisabled = errors.New("audio: disabled")

// speakerLock serializes access to streamers the speaker is playing.
type speakerLock struct{}

func (speakerLock) Lock()   { speaker.Lock() }
func (speakerLock) Unlock() { speaker.Unlock() }

// Engine turns simulation events into sound. It implements the game's
// event sink and never blocks the game loop for longer than a mixer update.
type Engine struct {
	mu     sync.Mutex
	lock   sync.Locker
	cfg    config.AudioConfig
	rate   beep.SampleRate
	mixer  *beep.Mixer
	music  *beep.Ctrl
	logger *log.Logger

	initialized bool
}

// New creates an engine. Nothing plays until Init succeeds.
func New(cfg config.AudioConfig, logger *log.Logger) *Engine {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Engine{
		lock:   speakerLock{},
		cfg:    cfg,
		rate:   beep.SampleRate(cfg.SampleRate),
		mixer:  &beep.Mixer{},
		logger: logger,
	}
}

// Init opens the speaker and starts the mixer.
func (e *Engine) Init() error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if !e.cfg.Enabled {
		return ErrDisabled
	}
	if e.initialized {
		return nil
	}

	// Initialize speaker with sample rate and buffer size
	if err := speaker.Init(e.rate, e.rate.N(100*time.Millisecond)); err != nil {
		return fmt.Errorf("audio: speaker init: %w", err)
	}
	speaker.Play(volume(e.mixer, e.cfg.Volume))
	e.initialized = true
	return nil
}

// Close stops every sound and releases the speaker.
func (e *Engine) Close() {
	e.mu.Lock()
	defer e.mu.Unlock()

	if !e.initialized {
		return
	}
	speaker.Clear()
	speaker.Close()
	e.initialized = false
}

// HandleEvent plays the cue for a simulation event.
func (e *Engine) HandleEvent(ev core.Event) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if !e.initialized {
		return
	}
	e.logger.Debug("sound cue", "event", ev)

	e.lock.Lock()
	defer e.lock.Unlock()
	e.apply(ev)
}

// apply updates the mixer. Callers hold both locks.
func (e *Engine) apply(ev core.Event) {
	switch ev {
	case core.EventFired:
		e.mixer.Add(LaserSound(e.rate))
	case core.EventExplosion:
		e.mixer.Add(ExplosionSound(e.rate))
	case core.EventShipDestroyed:
		e.mixer.Add(GameOverSound(e.rate))
	case core.EventMusicStart:
		if e.music == nil {
			e.music = &beep.Ctrl{Streamer: MusicTrack(e.rate)}
			e.mixer.Add(e.music)
		}
		e.music.Paused = false
	case core.EventMusicStop:
		if e.music != nil {
			e.music.Paused = true
		}
	}
}
