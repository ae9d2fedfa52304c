// Package combat is the boss fight simulation: ship and boss, projectile and
// particle pools, timed effects and the scripted hero and boss attacks that the
// quiz triggers.
package combat

import (
	"errors"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/tomz197/quizboss/internal/draw"
	"github.com/tomz197/quizboss/internal/object"
)

// ErrBusy is returned by attack triggers while another sequence is running.
var ErrBusy = errors.New("combat: attack sequence in progress")

// Phase gates which attack trigger is currently allowed.
type Phase int

const (
	AwaitingAnswer Phase = iota
	HeroSequence
	BossSequence
	Over
)

func (p Phase) String() string {
	switch p {
	case HeroSequence:
		return "hero"
	case BossSequence:
		return "boss"
	case Over:
		return "over"
	default:
		return "awaiting-answer"
	}
}

// Sound receives fire-and-forget sound events.
type Sound interface {
	Correct()
	Wrong()
	Explosion()
	Rocket()
	BossCharge()
	BossFire()
	HeroCharge()
	StartLaserBeam()
	StopLaserBeam()
	PlayVictory()
	PlayLose()
}

// Quiz is called back when a sequence finishes.
type Quiz interface {
	ShowQuestion()
	EndGame(victory bool)
}

// State is the score sheet shared between the fight and the quiz.
type State struct {
	Score           int
	Lives           int
	BossHP          int
	MaxBossHP       int
	CurrentQuestion int
	Streak          int
	QuizActive      bool
	GameOver        bool
}

// Fight defaults.
const (
	StartingLives = 3
	MaxBossHP     = 100
)

// Input is the player's steering for one frame, each axis in -1..1.
type Input struct {
	X, Y float64
}

// Options configures a new fight.
type Options struct {
	Width, Height float64 // Logical surface; zero means 1200x800
	Rand          *rand.Rand
	Sound         Sound
	Quiz          Quiz
	Logger        *log.Logger
}

// Fight is the simulation context. All mutation happens through Tick, the
// triggers and the timeline actions they schedule, on one goroutine.
type Fight struct {
	state  State
	phase  Phase
	layout Layout
	rng    *rand.Rand
	sound  Sound
	quiz   Quiz
	log    *log.Logger

	timeline Timeline
	effects  Effects
	shake    Shake
	overlay  Overlay
	combo    bool

	ship     *object.Ship
	boss     *object.Boss
	backdrop *object.Backdrop

	trails    *object.Pool[*object.EngineTrail]
	rockets   *object.Pool[*object.Rocket]
	waves     *object.Pool[*object.PlasmaWave]
	particles *object.Pool[*object.Particle]
	energy    *object.Pool[*object.EnergyParticle]
}

// New creates a fight with full lives and a full-health boss.
func New(opts Options) *Fight {
	if opts.Width <= 0 || opts.Height <= 0 {
		opts.Width, opts.Height = LogicalWidth, LogicalHeight
	}
	if opts.Rand == nil {
		opts.Rand = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if opts.Sound == nil {
		opts.Sound = silent{}
	}
	if opts.Logger == nil {
		opts.Logger = log.Default()
	}

	f := &Fight{
		state: State{
			Lives:      StartingLives,
			BossHP:     MaxBossHP,
			MaxBossHP:  MaxBossHP,
			QuizActive: true,
		},
		rng:       opts.Rand,
		sound:     opts.Sound,
		quiz:      opts.Quiz,
		log:       opts.Logger.WithPrefix("combat"),
		effects:   newEffects(),
		trails:    object.NewPool[*object.EngineTrail](0),
		rockets:   object.NewPool[*object.Rocket](0),
		waves:     object.NewPool[*object.PlasmaWave](0),
		particles: object.NewPool[*object.Particle](object.MaxParticles),
		energy:    object.NewPool[*object.EnergyParticle](object.MaxEnergyParticles),
	}
	f.layout = NewLayout(opts.Width, opts.Height)
	sx, sy := f.layout.ShipHome()
	bx, by := f.layout.BossHome()
	f.ship = object.NewShip(sx, sy)
	f.boss = object.NewBoss(bx, by, MaxBossHP)
	f.backdrop = object.NewBackdrop(f.rng, f.screen())
	return f
}

// SetQuiz installs the quiz callbacks.
func (f *Fight) SetQuiz(q Quiz) {
	f.quiz = q
}

// State returns the shared score sheet.
func (f *Fight) State() *State {
	return &f.state
}

// Phase returns the current combat phase.
func (f *Fight) Phase() Phase {
	return f.phase
}

// Effects exposes the timed effects for rendering and inspection.
func (f *Fight) Effects() *Effects {
	return &f.effects
}

// Overlay returns the attack banner.
func (f *Fight) Overlay() *Overlay {
	return &f.overlay
}

// Shake returns the screen shake state.
func (f *Fight) Shake() *Shake {
	return &f.shake
}

// Layout returns the current layout.
func (f *Fight) Layout() Layout {
	return f.layout
}

// Ship returns the player ship.
func (f *Fight) Ship() *object.Ship {
	return f.ship
}

// Boss returns the boss.
func (f *Fight) Boss() *object.Boss {
	return f.boss
}

// Combo reports whether the last hero attack was a combo.
func (f *Fight) Combo() bool {
	return f.combo
}

// Counts returns live entity counts, for the HUD debug line and tests.
func (f *Fight) Counts() (particles, energy, rockets, waves, scorch int) {
	return f.particles.Len(), f.energy.Len(), f.rockets.Len(), f.waves.Len(), f.boss.Scorch.Len()
}

// After schedules fn on the fight clock. The quiz uses it for answer feedback
// delays so every scripted step shares one timeline.
func (f *Fight) After(d time.Duration, fn func()) {
	f.timeline.After(d, fn)
}

// ShowAttackName displays a hero attack banner.
func (f *Fight) ShowAttackName(kind AttackKind) {
	f.overlay.ShowAttack(kind)
}

// ShowCaption displays a caption banner.
func (f *Fight) ShowCaption(text string, color string) {
	f.overlay.ShowCaption(text, draw.Hex(color))
}

// ActivateShield raises the ship's shield bubble.
func (f *Fight) ActivateShield() {
	f.effects.Shield.Start()
}

// Resize re-lays out the fight for a new surface size.
func (f *Fight) Resize(width, height float64) {
	if width <= 0 || height <= 0 {
		return
	}
	f.layout = NewLayout(width, height)
	f.ship.X, f.ship.Y = f.layout.ShipHome()
	f.ship.VX, f.ship.VY = 0, 0
	bx, by := f.layout.BossHome()
	dx, dy := bx-f.boss.X, by-f.boss.Y
	f.boss.X, f.boss.Y = bx, by
	f.rockets.Each(func(r *object.Rocket) {
		if r.Target != nil {
			r.Target.X += dx
			r.Target.Y += dy
		}
	})
	f.backdrop = object.NewBackdrop(f.rng, f.screen())
	f.log.Debug("resized", "width", width, "height", height, "scale", f.layout.Scale)
}

// Tick advances the simulation by one frame of wall-clock time dt.
func (f *Fight) Tick(dt time.Duration, in Input) {
	step := object.Step(dt)
	ctx := object.UpdateContext{
		Delta:  dt,
		Step:   step,
		Screen: f.screen(),
		Scale:  f.layout.Scale,
		Rand:   f.rng,
	}

	f.timeline.Advance(dt)

	f.ship.Move(in.X, in.Y, step, f.layout.ShipBounds())
	ctx.ShipVX, ctx.ShipVY = f.ship.VX, f.ship.VY

	f.backdrop.Update(ctx)
	f.trails.Update(ctx)
	f.ship.EmitTrails(f.rng, f.trails)
	f.emitBossSmoke()

	f.rockets.Update(ctx)
	f.emitRocketExhaust()
	f.waves.Update(ctx)
	f.particles.Update(ctx)
	f.energy.Update(ctx)

	f.resolveCollisions()
	f.effects.advance(dt, &f.shake, f.sound)
	f.overlay.update(dt, step)
	f.shake.Update(step, f.rng)
}

// Draw renders the play field back to front.
func (f *Fight) Draw(c *draw.Canvas) {
	c.SetShift(f.shake.X, f.shake.Y)
	defer c.SetShift(0, 0)

	ctx := object.DrawContext{
		Canvas: c,
		Screen: f.screen(),
		Scale:  f.layout.Scale,
		Ship:   draw.Point{X: f.ship.X, Y: f.ship.Y},
		Boss:   draw.Point{X: f.boss.X, Y: f.boss.Y},
		Combo:  f.combo,
	}

	f.backdrop.Draw(ctx)

	f.boss.Glow = f.effects.BossGlow
	f.boss.Draw(ctx)
	f.boss.Scorch.Draw(ctx)

	f.trails.Draw(ctx)
	f.ship.Hidden = !f.effects.ShipVisible()
	f.ship.Glow = f.effects.LaserCharge.Elapsed.Seconds() / LaserChargeDuration.Seconds()
	if !f.effects.LaserCharge.Active {
		f.ship.Glow = 0
	}
	f.ship.GlowColor = laserPalette(f.combo).edge
	f.ship.Draw(ctx)
	f.drawShield(ctx)

	f.rockets.Draw(ctx)
	f.drawLaser(ctx)
	f.waves.Draw(ctx)
	f.particles.Draw(ctx)
	f.energy.Draw(ctx)
}

var shieldColor = draw.Hex("#4dabf7")

func (f *Fight) drawShield(ctx object.DrawContext) {
	if !f.effects.Shield.Active {
		return
	}
	left := f.effects.Shield.Remaining()
	ctx.Canvas.StrokeCircle(f.ship.X, f.ship.Y, 140, draw.Fade(shieldColor, left))
	ctx.Canvas.StrokeCircle(f.ship.X, f.ship.Y, 150, draw.Fade(shieldColor, left*0.6))
}

func (f *Fight) screen() object.Screen {
	return object.NewScreen(int(f.layout.Width), int(f.layout.Height))
}

// nextQuestion ends a sequence and hands control back to the quiz.
func (f *Fight) nextQuestion() {
	if f.phase == Over {
		return
	}
	f.phase = AwaitingAnswer
	if f.quiz != nil {
		f.quiz.ShowQuestion()
	}
}

func (f *Fight) endGame(victory bool) {
	if f.phase == Over {
		return
	}
	f.phase = Over
	f.state.GameOver = true
	f.state.QuizActive = false
	f.log.Info("fight over", "victory", victory, "score", f.state.Score)
	if f.quiz != nil {
		f.quiz.EndGame(victory)
	}
}

// spark is one color/speed pair of an explosion.
type spark struct {
	color colorful.Color
	speed float64
}

// burst spawns n rounds of sparks, one of each kind per round.
func (f *Fight) burst(x, y float64, n int, kinds ...spark) {
	for range n {
		for _, k := range kinds {
			f.particles.Spawn(object.NewSpark(f.rng, x, y, k.color, k.speed))
		}
	}
}

type silent struct{}

func (silent) Correct()        {}
func (silent) Wrong()          {}
func (silent) Explosion()      {}
func (silent) Rocket()         {}
func (silent) BossCharge()     {}
func (silent) BossFire()       {}
func (silent) HeroCharge()     {}
func (silent) StartLaserBeam() {}
func (silent) StopLaserBeam()  {}
func (silent) PlayVictory()    {}
func (silent) PlayLose()       {}
