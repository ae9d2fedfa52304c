package combat

import (
	"math/rand"

	"github.com/charmbracelet/log"
)

// VoiceCategory selects the pool a boss line is drawn from.
type VoiceCategory string

const (
	VoiceIntro     VoiceCategory = "intro"
	VoiceWrongEasy VoiceCategory = "wrongEasy"
	VoiceWrongHard VoiceCategory = "wrongHard"
	VoiceStreak    VoiceCategory = "streak"
	VoiceWin       VoiceCategory = "win"
	VoiceLose      VoiceCategory = "lose"
)

// CaptionColor is the color of boss speech captions.
const CaptionColor = "#ff0033"

// maxPickAttempts bounds the search for a line different from the last one.
const maxPickAttempts = 10

var bossLines = map[VoiceCategory][]string{
	VoiceIntro: {
		"INTRUDER DETECTED. PREPARING TO DELETE.",
		"YOUR CLOUD SKILLS WILL BE TESTED.",
		"I AM THE ROOT USER HERE.",
	},
	VoiceWrongEasy: {
		"MY MICROCHIP IS SMARTER THAN YOU",
		"LATENCY DETECTED IN YOUR BRAIN",
		"WASTE OF RAM",
		"BOLD CHOICE FOR DYING EARLY",
	},
	VoiceWrongHard: {
		"SCALING DOWN YOUR LIFE EXPECTANCY",
		"DEPLOYMENT FAILED",
		"BRAIN MISSING",
	},
	VoiceStreak: {
		"WARNING. TRAFFIC SPIKE DETECTED.",
		"REROUTING POWER TO DEFENSES.",
		"YOU ARE CONSUMING TOO MANY RESOURCES.",
		"DO NOT THINK YOU CAN SCALE PAST ME.",
	},
	VoiceWin: {
		"SYSTEM... SHUTTING... DOWN...",
		"CRITICAL... FAILURE...",
		"YOU HAVE... ROOT... ACCESS...",
	},
	VoiceLose: {
		"GARBAGE COLLECTION COMPLETE.",
		"BRAIN CACHE CLEARED",
		"YOUR SESSION HAS EXPIRED",
	},
}

// Captioner shows a spoken line on screen.
type Captioner interface {
	ShowCaption(text string, color string)
}

// VoicePlayer plays the audio for a line.
type VoicePlayer interface {
	PlayVoice(line string) error
}

// Voice picks boss taunts, captions them and plays them.
type Voice struct {
	rng     *rand.Rand
	caption Captioner
	player  VoicePlayer
	log     *log.Logger
	last    string
	Muted   bool
}

// NewVoice creates a voice. player may be nil for captions only.
func NewVoice(rng *rand.Rand, caption Captioner, player VoicePlayer, logger *log.Logger) *Voice {
	if logger == nil {
		logger = log.Default()
	}
	return &Voice{rng: rng, caption: caption, player: player, log: logger.WithPrefix("voice")}
}

// Speak says a random line from category, never repeating the previous line
// when the category offers an alternative. Unknown categories are ignored.
func (v *Voice) Speak(category VoiceCategory) {
	if v.Muted {
		return
	}
	lines := bossLines[category]
	if len(lines) == 0 {
		return
	}

	var line string
	for attempt := 0; attempt < maxPickAttempts; attempt++ {
		line = lines[v.rng.Intn(len(lines))]
		if line != v.last || len(lines) == 1 {
			break
		}
	}
	v.last = line

	if v.caption != nil {
		v.caption.ShowCaption(line, CaptionColor)
	}
	if v.player == nil {
		return
	}
	if err := v.player.PlayVoice(line); err != nil {
		v.log.Debug("voice playback failed", "line", line, "err", err)
	}
}

// Last returns the most recently spoken line.
func (v *Voice) Last() string {
	return v.last
}
