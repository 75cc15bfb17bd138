package audio

import (
	"errors"
	"fmt"
	"sync"

	rl "github.com/gen2brain/raylib-go/raylib"
)

var ErrInvalidSound = errors.New("invalid sound")

// RaylibBackend plays clips on the raylib audio device. The device must be
// initialized with NewRaylibBackend before any other raylib audio call.
type RaylibBackend struct {
	mu     sync.Mutex
	sounds map[Cue]rl.Sound
	loop   Cue
	volume float32
}

func NewRaylibBackend() *RaylibBackend {
	rl.InitAudioDevice()
	return &RaylibBackend{
		sounds: make(map[Cue]rl.Sound),
		volume: 1,
	}
}

func (b *RaylibBackend) Load(cue Cue, path string) error {
	sound := rl.LoadSound(path)
	if !rl.IsSoundValid(sound) {
		return fmt.Errorf("%s: %w", path, ErrInvalidSound)
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	if old, ok := b.sounds[cue]; ok {
		rl.UnloadSound(old)
	}
	b.sounds[cue] = sound
	return nil
}

func (b *RaylibBackend) PlayOneShot(cue Cue) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if s, ok := b.sounds[cue]; ok {
		rl.PlaySound(s)
	}
}

func (b *RaylibBackend) PlayLoop(cue Cue) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if s, ok := b.sounds[b.loop]; ok {
		rl.StopSound(s)
	}
	b.loop = cue
	if s, ok := b.sounds[cue]; ok {
		rl.PlaySound(s)
	}
}

func (b *RaylibBackend) StopLoop() {
	b.mu.Lock()
	defer b.mu.Unlock()
	if s, ok := b.sounds[b.loop]; ok {
		rl.StopSound(s)
	}
	b.loop = CueNone
}

func (b *RaylibBackend) SetMasterVolume(volume float32) {
	b.volume = volume
	rl.SetMasterVolume(volume)
}

// Update restarts the music track when it runs out.
func (b *RaylibBackend) Update() {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.loop == CueNone {
		return
	}
	if s, ok := b.sounds[b.loop]; ok && !rl.IsSoundPlaying(s) {
		rl.PlaySound(s)
	}
}

// Close unloads every clip and shuts down the device.
func (b *RaylibBackend) Close() {
	b.mu.Lock()
	for _, s := range b.sounds {
		rl.UnloadSound(s)
	}
	b.sounds = nil
	b.mu.Unlock()
	rl.CloseAudioDevice()
}
