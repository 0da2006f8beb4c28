// Package sound plays short synthesized effects for simulation events.
// Everything is generated on the fly with beep; there are no asset files.
package sound

import (
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/vovakirdan/tui-flappy/internal/core"
)

// SampleRate is the output rate of every effect.
const SampleRate = beep.SampleRate(44100)

// Options configure a Player.
type Options struct {
	Volume float64 // Linear gain, 1 is unity, 0 mutes
	Mute   bool
	Logger *log.Logger
}

// voices maps events to effects. Events without a voice are silent.
var voices = map[core.Event][]tone{
	// Wing: a quick upward chirp.
	core.EventJump: {
		{from: 420, to: 780, length: 70 * time.Millisecond, attack: 5 * time.Millisecond, release: 40 * time.Millisecond, wave: WaveSquare},
	},
	// Point: two-note coin.
	core.EventScore: {
		{from: 987.77, to: 987.77, length: 60 * time.Millisecond, attack: 2 * time.Millisecond, release: 20 * time.Millisecond, wave: WaveSquare},
		{from: 1318.51, to: 1318.51, length: 140 * time.Millisecond, attack: 2 * time.Millisecond, release: 100 * time.Millisecond, wave: WaveSquare},
	},
	// Hit: short noise burst.
	core.EventCollision: {
		{length: 90 * time.Millisecond, attack: 1 * time.Millisecond, release: 70 * time.Millisecond, wave: WaveNoise},
	},
	// Die: falling saw.
	core.EventSessionEnd: {
		{from: 440, to: 110, length: 400 * time.Millisecond, attack: 5 * time.Millisecond, release: 250 * time.Millisecond, wave: WaveSaw},
	},
}

// Voice builds the streamer for an event. ok is false for silent events.
func Voice(e core.Event, rate beep.SampleRate) (s beep.Streamer, ok bool) {
	tones, found := voices[e]
	if !found {
		return nil, false
	}
	parts := make([]beep.Streamer, 0, len(tones))
	for _, t := range tones {
		parts = append(parts, t.streamer(rate))
	}
	return beep.Seq(parts...), true
}

// Player sends effects to the system speaker.
type Player struct {
	volume float64
	logger *log.Logger

	mu      sync.Mutex
	enabled bool
}

// NewPlayer opens the speaker. When no audio device is available the
// player logs a warning and stays silent.
func NewPlayer(opts Options) *Player {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	p := &Player{
		volume: core.ClampF(opts.Volume, 0, 2),
		logger: logger.WithPrefix("sound"),
	}
	if opts.Mute || opts.Volume <= 0 {
		p.logger.Debug("sound muted")
		return p
	}

	if err := speaker.Init(SampleRate, SampleRate.N(time.Second/20)); err != nil {
		p.logger.Warn("audio unavailable, continuing without sound", "error", fmt.Errorf("sound: speaker init: %w", err))
		return p
	}
	p.enabled = true
	return p
}

// Enabled reports whether effects reach the speaker.
func (p *Player) Enabled() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.enabled
}

// Play starts the effect for an event and returns immediately.
func (p *Player) Play(e core.Event) {
	if !p.Enabled() {
		return
	}
	s, ok := Voice(e, SampleRate)
	if !ok {
		return
	}
	speaker.Play(withVolume(s, p.volume))
}

// Close stops playback and releases the device.
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.enabled {
		return
	}
	p.enabled = false
	speaker.Clear()
	speaker.Close()
}

// Nop discards every event. Used where no speaker is reachable,
// such as sessions served over SSH.
type Nop struct{}

// Play does nothing.
func (Nop) Play(core.Event) {}
