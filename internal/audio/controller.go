package audio

import (
	"errors"
	"fmt"
	"log"
	"sort"
	"sync"
)

// CuePlayer is what gameplay code sees of the audio system. Play is
// fire-and-forget.
type CuePlayer interface {
	Play(cue Cue)
}

// Backend is the device side of the controller.
type Backend interface {
	Load(cue Cue, path string) error
	PlayOneShot(cue Cue)
	PlayLoop(cue Cue)
	StopLoop()
	SetMasterVolume(volume float32)
	Update()
	Close()
}

// Controller queues cues during a simulation step and hands them to the
// backend on Flush, once per rendered frame.
type Controller struct {
	mu      sync.Mutex
	backend Backend
	queue   []Cue
	music   Cue
	muted   bool
	volume  float32
	// headless controllers have no device and drop cues instead of queueing.
	headless bool
}

// NewController wraps backend. A nil backend gives a headless controller
// whose Play is a no-op.
func NewController(backend Backend) *Controller {
	c := &Controller{backend: backend, volume: 1}
	if backend == nil {
		c.backend = NopBackend{}
		c.headless = true
	}
	return c
}

// Play queues a one-shot cue.
func (c *Controller) Play(cue Cue) {
	if cue == CueNone || c.headless {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.queue = append(c.queue, cue)
}

// Pending returns a copy of the queued cues.
func (c *Controller) Pending() []Cue {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]Cue(nil), c.queue...)
}

// Flush plays queued cues in order. The same cue queued more than once in
// a frame plays once.
func (c *Controller) Flush() {
	c.mu.Lock()
	queue := c.queue
	c.queue = nil
	muted := c.muted
	c.mu.Unlock()

	if !muted {
		played := make(map[Cue]bool, len(queue))
		for _, cue := range queue {
			if played[cue] {
				continue
			}
			played[cue] = true
			c.backend.PlayOneShot(cue)
		}
	}
	c.backend.Update()
}

// PlayMusic loops cue until another track is started or StopMusic.
func (c *Controller) PlayMusic(cue Cue) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.music == cue {
		return
	}
	c.music = cue
	if cue == CueNone {
		c.backend.StopLoop()
		return
	}
	c.backend.PlayLoop(cue)
}

func (c *Controller) StopMusic() {
	c.PlayMusic(CueNone)
}

func (c *Controller) SetMuted(muted bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.muted = muted
	c.applyVolume()
}

// SetVolume sets the master volume. While muted it is kept and applied on
// unmute.
func (c *Controller) SetVolume(volume float32) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.volume = volume
	c.applyVolume()
}

func (c *Controller) Volume() float32 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.volume
}

// applyVolume needs c.mu held.
func (c *Controller) applyVolume() {
	if c.muted {
		c.backend.SetMasterVolume(0)
		return
	}
	c.backend.SetMasterVolume(c.volume)
}

// LoadClips loads every clip and reports all failures together. Cues that
// failed to load stay silent.
func (c *Controller) LoadClips(clips map[string]string) error {
	names := make([]string, 0, len(clips))
	for name := range clips {
		names = append(names, name)
	}
	sort.Strings(names)

	var errs []error
	loaded := 0
	for _, name := range names {
		cue, err := ParseCue(name)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		if err := c.backend.Load(cue, clips[name]); err != nil {
			errs = append(errs, fmt.Errorf("load %s: %w", name, err))
			continue
		}
		loaded++
	}
	log.Printf("Audio: loaded %d/%d clips", loaded, len(clips))
	return errors.Join(errs...)
}

func (c *Controller) Close() {
	c.backend.Close()
}

// NopBackend discards everything. Used headless and in tests.
type NopBackend struct{}

func (NopBackend) Load(Cue, string) error  { return nil }
func (NopBackend) PlayOneShot(Cue)         {}
func (NopBackend) PlayLoop(Cue)            {}
func (NopBackend) StopLoop()               {}
func (NopBackend) SetMasterVolume(float32) {}
func (NopBackend) Update()                 {}
func (NopBackend) Close()                  {}
