package loop

import (
	"math"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"
	"github.com/tomz197/quizboss/internal/audio"
	"github.com/tomz197/quizboss/internal/combat"
	"github.com/tomz197/quizboss/internal/input"
	"github.com/tomz197/quizboss/internal/loop/config"
	"github.com/tomz197/quizboss/internal/quiz"
)

// Audio is the sound device behind a game.
type Audio interface {
	combat.Sound
	combat.VoicePlayer
	StartMusic()
	StopMusic()
	SetMuted(muted bool)
}

// GameState represents the current screen.
type GameState int

const (
	GameStateStart   GameState = iota // Title screen
	GameStatePlaying                  // Fight in progress
	GameStateOver                     // Victory or defeat
)

// Game owns one fight and its quiz session.
type Game struct {
	State GameState
	Muted bool

	audio  Audio
	rng    *rand.Rand
	log    *log.Logger
	width  float64
	height float64

	fight   *combat.Fight
	session *quiz.Session
	voice   *combat.Voice
}

// GameOptions configures a game.
type GameOptions struct {
	Width  float64 // Logical width; zero means combat.LogicalWidth
	Audio  Audio   // nil plays nothing
	Rand   *rand.Rand
	Logger *log.Logger
}

// NewGame creates a game on the title screen. The fight behind the title is
// live so the backdrop moves.
func NewGame(opts GameOptions) *Game {
	if opts.Width <= 0 {
		opts.Width = combat.LogicalWidth
	}
	if opts.Audio == nil {
		opts.Audio = audio.Nop{}
	}
	if opts.Rand == nil {
		opts.Rand = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if opts.Logger == nil {
		opts.Logger = log.Default()
	}
	g := &Game{
		audio:  opts.Audio,
		rng:    opts.Rand,
		log:    opts.Logger,
		width:  opts.Width,
		height: config.LogicalHeight,
	}
	g.newFight()
	return g
}

// newFight wires a fresh fight, voice and quiz session together.
func (g *Game) newFight() {
	g.fight = combat.New(combat.Options{
		Width:  g.width,
		Height: g.height,
		Rand:   g.rng,
		Sound:  g.audio,
		Logger: g.log,
	})
	g.voice = combat.NewVoice(g.rng, g.fight, g.audio, g.log)
	g.voice.Muted = g.Muted
	g.session = quiz.NewSession(g.fight, g.audio, g.voice, g.rng, g.log)
	g.fight.SetQuiz(g.session)
}

// Restart throws the current fight away and starts a new one.
func (g *Game) Restart() {
	g.audio.StopLaserBeam()
	g.newFight()
	g.audio.StartMusic()
	g.session.Start()
	g.State = GameStatePlaying
	g.log.Info("fight started", "width", g.width)
}

// SetMuted silences sound effects and the boss voice.
func (g *Game) SetMuted(muted bool) {
	g.Muted = muted
	g.voice.Muted = muted
	g.audio.SetMuted(muted)
}

// Resize re-lays out the fight for a new logical width.
func (g *Game) Resize(width float64) {
	width = math.Max(config.MinLogicalWidth, math.Min(width, config.MaxLogicalWidth))
	if width == g.width {
		return
	}
	g.width = width
	g.fight.Resize(g.width, g.height)
}

// Update applies one frame of input and advances the fight by dt. It returns
// false once the player quits.
func (g *Game) Update(dt time.Duration, in input.Input) bool {
	if in.Quit {
		return false
	}
	if in.Mute {
		g.SetMuted(!g.Muted)
	}

	switch g.State {
	case GameStateStart:
		if in.Space || in.Enter {
			g.Restart()
		}
		g.fight.Tick(dt, combat.Input{})
		return true

	case GameStateOver:
		if in.Space || in.Enter || in.Restart {
			g.Restart()
			return true
		}
	}

	if g.State == GameStatePlaying {
		switch {
		case in.Restart:
			g.Restart()
		case in.Number >= 1 && in.Number <= 4:
			g.session.Answer(in.Number - 1)
		case in.Space:
			g.fight.ActivateShield()
		}
	}

	x, y := in.Axis()
	g.fight.Tick(dt, combat.Input{X: x, Y: y})

	if g.State == GameStatePlaying && g.session.Result() != nil {
		g.audio.StopMusic()
		g.State = GameStateOver
	}
	return true
}

// Silence stops every looping sound.
func (g *Game) Silence() {
	g.audio.StopLaserBeam()
	g.audio.StopMusic()
}

// Fight returns the running fight.
func (g *Game) Fight() *combat.Fight {
	return g.fight
}

// Session returns the quiz session of the running fight.
func (g *Game) Session() *quiz.Session {
	return g.session
}

// Width returns the logical width.
func (g *Game) Width() float64 {
	return g.width
}
