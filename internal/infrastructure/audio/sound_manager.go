// Package audio synthesises the game's sound effects with beep and plays
// them through the speaker.
package audio

import (
	"fmt"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

const (
	sampleRate = beep.SampleRate(44100)
)

// SoundManager plays one-shot effects through a shared mixer. Every Play
// method is a no-op until Initialize succeeds.
type SoundManager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	volume      float64
	muted       bool
	initialized bool
}

// NewSoundManager creates a new sound manager; volume is 0..1
func NewSoundManager(volume float64, muted bool) *SoundManager {
	return &SoundManager{
		mixer:  &beep.Mixer{},
		volume: volume,
		muted:  muted,
	}
}

// Initialize sets up the audio device
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}

	if err := speaker.Init(sampleRate, sampleRate.N(time.Millisecond*100)); err != nil {
		return fmt.Errorf("failed to init speaker: %w", err)
	}

	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Cleanup stops all sounds
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}
	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()
	sm.initialized = false
}

// SetVolume changes the master volume for sounds started afterwards
func (sm *SoundManager) SetVolume(volume float64) {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	sm.volume = volume
}

// SetMuted mutes or unmutes sounds started afterwards
func (sm *SoundManager) SetMuted(muted bool) {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	sm.muted = muted
}

// PlayJump plays a short rising blip
func (sm *SoundManager) PlayJump() { sm.play(jumpSound) }

// PlayHit plays a crunch for an enemy hit
func (sm *SoundManager) PlayHit() { sm.play(hitSound) }

// PlayFall plays a falling whistle
func (sm *SoundManager) PlayFall() { sm.play(fallSound) }

// PlayCollect plays a two-note chime
func (sm *SoundManager) PlayCollect() { sm.play(collectSound) }

// PlayChoice plays a soft confirmation ding
func (sm *SoundManager) PlayChoice() { sm.play(choiceSound) }

func (sm *SoundManager) play(build func(beep.SampleRate) beep.Streamer) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized || sm.muted {
		return
	}

	s := withVolume(build(sampleRate), sm.volume)
	speaker.Lock()
	sm.mixer.Add(s)
	speaker.Unlock()
}
