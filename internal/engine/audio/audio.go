// Package audio provides short sound effects for UI feedback.
package audio

import (
	"bytes"
	"fmt"
	"io"
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/effects"
	"github.com/gopxl/beep/v2/speaker"
	"github.com/gopxl/beep/v2/wav"
)

// DefaultSampleRate is the default sample rate for audio playback.
const DefaultSampleRate = beep.SampleRate(44100)

// Manager mixes sound effects onto the speaker.
type Manager struct {
	mu sync.RWMutex

	initialized bool
	sampleRate  beep.SampleRate

	// Volume settings (0.0 to 1.0)
	sfxVolLevel float64
	muted       bool

	// SFX mixer for concurrent sound effects
	sfxMixer *beep.Mixer

	// switchSound, when set, replaces the generated blip.
	switchSound []byte
}

// New creates a new audio manager.
func New() *Manager {
	return &Manager{
		sfxVolLevel: 1.0,
		sfxMixer:    &beep.Mixer{},
		sampleRate:  DefaultSampleRate,
	}
}

// Init opens the speaker.
func (m *Manager) Init() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.initialized {
		return nil
	}

	if err := speaker.Init(m.sampleRate, m.sampleRate.N(time.Second/30)); err != nil {
		return fmt.Errorf("init speaker: %w", err)
	}
	speaker.Play(m.sfxMixer)

	m.initialized = true
	return nil
}

// Close shuts down the audio system.
func (m *Manager) Close() {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.initialized {
		return
	}
	speaker.Clear()
	speaker.Close()
	m.initialized = false
}

// SetSFXVolume sets the SFX volume (0.0 to 1.0).
func (m *Manager) SetSFXVolume(vol float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sfxVolLevel = clamp(vol, 0, 1)
}

// SetMuted silences every effect without touching the volume levels.
func (m *Manager) SetMuted(muted bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.muted = muted
}

// SetSwitchSound uses WAV data for PlaySwitch instead of the generated blip.
// nil restores the blip. Data that does not decode is rejected and the
// current sound is kept.
func (m *Manager) SetSwitchSound(data []byte) error {
	if data != nil {
		if _, _, err := decode(data); err != nil {
			return err
		}
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.switchSound = data
	return nil
}

// PlaySwitch plays the model switch cue.
func (m *Manager) PlaySwitch() error {
	m.mu.RLock()
	custom := m.switchSound
	sr := m.sampleRate
	m.mu.RUnlock()

	if custom != nil {
		return m.PlaySFX(custom)
	}
	return m.play(Blip(sr, 660, 990, 90*time.Millisecond))
}

// PlaySFX plays a sound effect from WAV data.
func (m *Manager) PlaySFX(data []byte) error {
	streamer, format, err := decode(data)
	if err != nil {
		return err
	}

	var resampled beep.Streamer = streamer
	if format.SampleRate != m.sampleRate {
		resampled = beep.Resample(4, format.SampleRate, m.sampleRate, streamer)
	}
	return m.play(resampled)
}

func (m *Manager) play(s beep.Streamer) error {
	m.mu.RLock()
	initialized := m.initialized
	vol := m.sfxVolLevel
	muted := m.muted
	m.mu.RUnlock()

	if !initialized {
		return fmt.Errorf("audio not initialized")
	}
	if muted || vol <= 0 {
		return nil
	}

	speaker.Lock()
	m.sfxMixer.Add(&effects.Volume{
		Streamer: s,
		Base:     2,
		Volume:   volumeToDb(vol),
	})
	speaker.Unlock()
	return nil
}

func decode(data []byte) (beep.StreamSeekCloser, beep.Format, error) {
	streamer, format, err := wav.Decode(io.NopCloser(bytes.NewReader(data)))
	if err != nil {
		return nil, beep.Format{}, fmt.Errorf("decode wav: %w", err)
	}
	return streamer, format, nil
}

// Blip returns a short sine sweep from one frequency to another with a
// smooth attack and release.
func Blip(sr beep.SampleRate, fromHz, toHz float64, d time.Duration) beep.Streamer {
	total := sr.N(d)
	i := 0
	phase := 0.0
	return beep.StreamerFunc(func(samples [][2]float64) (n int, ok bool) {
		for n < len(samples) && i < total {
			t := float64(i) / float64(total)
			freq := fromHz + (toHz-fromHz)*t
			phase += 2 * math.Pi * freq / float64(sr)
			v := 0.3 * math.Sin(math.Pi*t) * math.Sin(phase)
			samples[n] = [2]float64{v, v}
			n++
			i++
		}
		return n, n > 0
	})
}

// volumeToDb converts a 0-1 volume to the base-2 exponent effects.Volume
// expects: 1 -> 0, 0.5 -> -1, 0.25 -> -2.
func volumeToDb(vol float64) float64 {
	if vol <= 0 {
		return -100
	}
	return math.Log2(vol)
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}
