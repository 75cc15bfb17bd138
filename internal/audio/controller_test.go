package audio

import (
	"errors"
	"testing"
)

type recordingBackend struct {
	played  []Cue
	loops   []Cue
	stopped int
	volume  float32
	updates int
	failOn  map[string]bool
	loaded  map[Cue]string
}

func (r *recordingBackend) Load(cue Cue, path string) error {
	if r.failOn[path] {
		return errors.New("missing file")
	}
	if r.loaded == nil {
		r.loaded = make(map[Cue]string)
	}
	r.loaded[cue] = path
	return nil
}
func (r *recordingBackend) PlayOneShot(cue Cue)       { r.played = append(r.played, cue) }
func (r *recordingBackend) PlayLoop(cue Cue)          { r.loops = append(r.loops, cue) }
func (r *recordingBackend) StopLoop()                 { r.stopped++ }
func (r *recordingBackend) SetMasterVolume(v float32) { r.volume = v }
func (r *recordingBackend) Update()                   { r.updates++ }
func (r *recordingBackend) Close()                    {}

func TestParseCueRoundTrip(t *testing.T) {
	for cue, name := range cueNames {
		got, err := ParseCue(name)
		if err != nil {
			t.Errorf("ParseCue(%q) failed: %v", name, err)
		}
		if got != cue {
			t.Errorf("Expected %v, got %v", cue, got)
		}
	}
	if _, err := ParseCue("kazoo"); err == nil {
		t.Error("Expected error for unknown cue")
	}
}

func TestControllerQueuesUntilFlush(t *testing.T) {
	backend := &recordingBackend{}
	c := NewController(backend)

	c.Play(CueEnemyShoot)
	c.Play(CueNone)
	c.Play(CueTakeDamage)
	c.Play(CueEnemyShoot)

	if len(backend.played) != 0 {
		t.Fatal("Expected nothing played before Flush")
	}
	if len(c.Pending()) != 3 {
		t.Errorf("Expected 3 pending cues, got %d", len(c.Pending()))
	}

	c.Flush()

	want := []Cue{CueEnemyShoot, CueTakeDamage}
	if len(backend.played) != len(want) {
		t.Fatalf("Expected %v, got %v", want, backend.played)
	}
	for i := range want {
		if backend.played[i] != want[i] {
			t.Errorf("Expected %v at %d, got %v", want[i], i, backend.played[i])
		}
	}
	if backend.updates != 1 {
		t.Errorf("Expected 1 backend update, got %d", backend.updates)
	}
	if len(c.Pending()) != 0 {
		t.Error("Expected queue drained")
	}
}

func TestControllerMutedDropsCues(t *testing.T) {
	backend := &recordingBackend{}
	c := NewController(backend)
	c.SetMuted(true)
	c.Play(CueGameOver)
	c.Flush()

	if len(backend.played) != 0 {
		t.Error("Expected muted controller to drop cues")
	}
	if backend.volume != 0 {
		t.Errorf("Expected volume 0, got %f", backend.volume)
	}
}

func TestControllerMusic(t *testing.T) {
	backend := &recordingBackend{}
	c := NewController(backend)

	c.PlayMusic(CueBackground1)
	c.PlayMusic(CueBackground1)
	c.PlayMusic(CueBackground2)
	c.StopMusic()

	if len(backend.loops) != 2 {
		t.Errorf("Expected 2 loop starts, got %v", backend.loops)
	}
	if backend.stopped != 1 {
		t.Errorf("Expected 1 stop, got %d", backend.stopped)
	}
}

func TestLoadClipsJoinsErrors(t *testing.T) {
	backend := &recordingBackend{failOn: map[string]bool{"missing.wav": true}}
	c := NewController(backend)

	err := c.LoadClips(map[string]string{
		"enemy-shoot": "shoot.wav",
		"game-over":   "missing.wav",
		"kazoo":       "kazoo.wav",
	})

	if err == nil {
		t.Fatal("Expected an error")
	}
	if backend.loaded[CueEnemyShoot] != "shoot.wav" {
		t.Error("Expected valid clip to load despite other failures")
	}
	if len(backend.loaded) != 1 {
		t.Errorf("Expected 1 clip loaded, got %d", len(backend.loaded))
	}
}

func TestControllerVolumeSurvivesUnmute(t *testing.T) {
	backend := &recordingBackend{}
	c := NewController(backend)

	c.SetVolume(0.8)
	c.SetMuted(false)
	if backend.volume != 0.8 {
		t.Errorf("Expected volume 0.8 after unmute, got %f", backend.volume)
	}

	c.SetMuted(true)
	if backend.volume != 0 {
		t.Errorf("Expected silence while muted, got %f", backend.volume)
	}
	c.SetVolume(0.5)
	if backend.volume != 0 {
		t.Errorf("Expected volume change held while muted, got %f", backend.volume)
	}
	c.SetMuted(false)
	if backend.volume != 0.5 {
		t.Errorf("Expected volume 0.5 restored, got %f", backend.volume)
	}
	if c.Volume() != 0.5 {
		t.Errorf("Expected stored volume 0.5, got %f", c.Volume())
	}
}

func TestHeadlessControllerDropsCues(t *testing.T) {
	c := NewController(nil)

	for i := 0; i < 100; i++ {
		c.Play(CueEnemyShoot)
	}
	if len(c.Pending()) != 0 {
		t.Errorf("Expected headless controller to drop cues, got %d pending", len(c.Pending()))
	}
	c.Flush()
}
