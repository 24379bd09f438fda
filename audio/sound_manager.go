// Package audio plays short synthesized cues for rail navigation
package audio

import (
	"sync"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/marquee/constants"
)

// SoundManager owns the speaker and mixes cue streams into it
type SoundManager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	rate        beep.SampleRate
	volume      float64
	enabled     bool
	initialized bool
	played      int
}

// NewSoundManager creates a manager; a disabled manager never opens the speaker
func NewSoundManager(enabled bool, volume float64) *SoundManager {
	return &SoundManager{
		mixer:   &beep.Mixer{},
		rate:    beep.SampleRate(constants.AudioSampleRate),
		volume:  volume,
		enabled: enabled,
	}
}

// Initialize opens the speaker, idempotent and a no-op when disabled
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized || !sm.enabled {
		return nil
	}

	if err := speaker.Init(sm.rate, sm.rate.N(constants.AudioBufferDuration)); err != nil {
		return err
	}

	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Cleanup silences all queued cues
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	// beep has no speaker Close; clearing the mixer under the speaker lock stops output
	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()
	sm.initialized = false
}

// Ready reports whether cues reach the speaker
func (sm *SoundManager) Ready() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.initialized
}

// Played returns the number of cues queued since creation
func (sm *SoundManager) Played() int {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.played
}

// PlayTick plays the settle click for the item at index
func (sm *SoundManager) PlayTick(index int) {
	sm.play(func() beep.Streamer { return CreateTickSound(index, sm.volume, sm.rate) })
}

// PlayBurst plays the wheel burst whoosh in the given direction
func (sm *SoundManager) PlayBurst(direction float64) {
	sm.play(func() beep.Streamer { return CreateBurstSound(direction, sm.volume, sm.rate) })
}

func (sm *SoundManager) play(build func() beep.Streamer) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	s := build()
	speaker.Lock()
	sm.mixer.Add(s)
	speaker.Unlock()
	sm.played++
}
