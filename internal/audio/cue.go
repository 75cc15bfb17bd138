package audio

import "fmt"

// Cue names a sound effect. The simulation emits cues; the frontend maps
// them to clips.
type Cue int

const (
	CueNone Cue = iota
	CueTakeDamage
	CuePlayerCharging
	CuePlayerAttack
	CuePlayerAttackCharged
	CueGameOver
	CueEnemyShoot
	CueEnemyDeath
	CueBombArmed
	CueExplosion
	CueDoorOpen
	CueBackground1
	CueBackground2
	CueBackground3
	CueStartUp
)

var cueNames = map[Cue]string{
	CueNone:                "none",
	CueTakeDamage:          "take-damage",
	CuePlayerCharging:      "player-charging",
	CuePlayerAttack:        "player-attack",
	CuePlayerAttackCharged: "player-attack-charged",
	CueGameOver:            "game-over",
	CueEnemyShoot:          "enemy-shoot",
	CueEnemyDeath:          "enemy-death",
	CueBombArmed:           "bomb-armed",
	CueExplosion:           "explosion",
	CueDoorOpen:            "door-open",
	CueBackground1:         "background-1",
	CueBackground2:         "background-2",
	CueBackground3:         "background-3",
	CueStartUp:             "start-up",
}

func (c Cue) String() string {
	if name, ok := cueNames[c]; ok {
		return name
	}
	return fmt.Sprintf("cue(%d)", int(c))
}

// ParseCue maps a config key like "enemy-shoot" back to its cue.
func ParseCue(name string) (Cue, error) {
	for c, n := range cueNames {
		if n == name {
			return c, nil
		}
	}
	return CueNone, fmt.Errorf("unknown cue %q", name)
}

// BackgroundCues are the music tracks, in rotation order.
func BackgroundCues() []Cue {
	return []Cue{CueBackground1, CueBackground2, CueBackground3}
}
