package combat

import (
	"errors"
	"io"
	"math"
	"math/rand"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/tomz197/quizboss/internal/draw"
	"github.com/tomz197/quizboss/internal/object"
)

const frame = 10 * time.Millisecond

type recordingSound struct {
	events []string
}

func (s *recordingSound) record(name string) { s.events = append(s.events, name) }

func (s *recordingSound) Correct()        { s.record("correct") }
func (s *recordingSound) Wrong()          { s.record("wrong") }
func (s *recordingSound) Explosion()      { s.record("explosion") }
func (s *recordingSound) Rocket()         { s.record("rocket") }
func (s *recordingSound) BossCharge()     { s.record("bossCharge") }
func (s *recordingSound) BossFire()       { s.record("bossFire") }
func (s *recordingSound) HeroCharge()     { s.record("heroCharge") }
func (s *recordingSound) StartLaserBeam() { s.record("startLaserBeam") }
func (s *recordingSound) StopLaserBeam()  { s.record("stopLaserBeam") }
func (s *recordingSound) PlayVictory()    { s.record("victory") }
func (s *recordingSound) PlayLose()       { s.record("lose") }

func (s *recordingSound) count(name string) int {
	n := 0
	for _, e := range s.events {
		if e == name {
			n++
		}
	}
	return n
}

type recordingQuiz struct {
	questions int
	endings   []bool
}

func (q *recordingQuiz) ShowQuestion()        { q.questions++ }
func (q *recordingQuiz) EndGame(victory bool) { q.endings = append(q.endings, victory) }

func newTestFight(t *testing.T, seed int64) (*Fight, *recordingSound, *recordingQuiz) {
	t.Helper()
	sound := &recordingSound{}
	quiz := &recordingQuiz{}
	f := New(Options{
		Width:  LogicalWidth,
		Height: LogicalHeight,
		Rand:   rand.New(rand.NewSource(seed)),
		Sound:  sound,
		Quiz:   quiz,
		Logger: log.New(io.Discard),
	})
	return f, sound, quiz
}

// run ticks the fight in fixed frames for d.
func run(f *Fight, d time.Duration) {
	for elapsed := time.Duration(0); elapsed < d; elapsed += frame {
		f.Tick(frame, Input{})
	}
}

func TestCorrectAnswersDefeatBoss(t *testing.T) {
	f, _, quiz := newTestFight(t, 1)

	for i := 1; i <= 10; i++ {
		f.State().Streak = 1
		if err := f.TriggerHeroAttack(); err != nil {
			t.Fatalf("attack %d: %v", i, err)
		}
		run(f, HeroImpactDelay+HeroOutcomeDelay)

		if want := MaxBossHP - i*HeroDamage; f.State().BossHP != want {
			t.Fatalf("after attack %d boss HP = %d, want %d", i, f.State().BossHP, want)
		}
	}

	if len(quiz.endings) != 1 || !quiz.endings[0] {
		t.Fatalf("endings = %v, want one victory", quiz.endings)
	}
	if quiz.questions != 9 {
		t.Errorf("questions shown = %d, want 9", quiz.questions)
	}
	if f.Phase() != Over || !f.State().GameOver {
		t.Errorf("phase = %v, game over = %v", f.Phase(), f.State().GameOver)
	}
}

func TestWrongAnswersCostLives(t *testing.T) {
	f, _, quiz := newTestFight(t, 2)

	for i := 1; i <= StartingLives; i++ {
		if err := f.TriggerBossAttack(); err != nil {
			t.Fatalf("attack %d: %v", i, err)
		}
		run(f, BossFireDelay+BossImpactDelay+BossRecoverDelay)

		if want := StartingLives - i; f.State().Lives != want {
			t.Fatalf("after attack %d lives = %d, want %d", i, f.State().Lives, want)
		}
	}

	if len(quiz.endings) != 1 || quiz.endings[0] {
		t.Fatalf("endings = %v, want one defeat", quiz.endings)
	}
	if quiz.questions != StartingLives-1 {
		t.Errorf("questions shown = %d, want %d", quiz.questions, StartingLives-1)
	}
}

func TestBossAttackTiming(t *testing.T) {
	f, sound, _ := newTestFight(t, 3)
	if err := f.TriggerBossAttack(); err != nil {
		t.Fatal(err)
	}
	if f.Effects().BossPhase != BossCharging {
		t.Fatalf("phase = %v right after trigger, want charging", f.Effects().BossPhase)
	}

	run(f, 750*time.Millisecond)
	if glow := f.Effects().BossGlow; glow < 0.49 || glow > 0.51 {
		t.Errorf("glow at 750ms = %v, want 0.5", glow)
	}
	if _, energy, _, _, _ := f.Counts(); energy == 0 {
		t.Error("charge should feed energy particles into the core")
	}

	run(f, 740*time.Millisecond)
	if f.Effects().BossPhase != BossCharging || sound.count("bossFire") != 0 {
		t.Fatalf("boss fired before 1.5s")
	}
	run(f, frame)
	if f.Effects().BossPhase != BossFiring || sound.count("bossFire") != 1 {
		t.Fatalf("boss did not fire at 1.5s: phase %v", f.Effects().BossPhase)
	}
	if _, energy, _, waves, _ := f.Counts(); energy != 0 || waves != ringWaves {
		t.Errorf("after firing: energy = %d, waves = %d", energy, waves)
	}

	run(f, BossImpactDelay-frame)
	if f.State().Lives != StartingLives {
		t.Fatal("damage applied before 1.0s of firing")
	}
	run(f, frame)
	if f.State().Lives != StartingLives-1 {
		t.Fatalf("lives = %d at impact, want %d", f.State().Lives, StartingLives-1)
	}
	if !f.Effects().Blink.Active || f.Effects().BossPhase != BossIdle {
		t.Error("impact should start the blink and return the boss to idle")
	}
}

func TestComboFiresEveryWeapon(t *testing.T) {
	f, sound, _ := newTestFight(t, 4)
	f.State().Streak = 4

	if err := f.TriggerHeroAttack(); err != nil {
		t.Fatal(err)
	}
	if !f.Combo() {
		t.Fatal("streak of 4 should be a combo")
	}
	if f.Overlay().Text != "BEDROCK COMBO" {
		t.Errorf("overlay = %q", f.Overlay().Text)
	}
	if !f.Effects().LaserCharge.Active || sound.count("heroCharge") != 1 {
		t.Fatal("laser should charge immediately")
	}

	run(f, comboPlasmaDelay-frame)
	if f.Effects().PlasmaBurst.Active {
		t.Fatal("plasma burst before 600ms")
	}
	run(f, frame)
	if !f.Effects().PlasmaBurst.Active {
		t.Fatal("plasma burst missing at 600ms")
	}

	// Rockets are scheduled at 300ms and launch after their own 800ms delay.
	run(f, comboRocketDelay+rocketFirstDelay-comboPlasmaDelay-frame)
	if n := sound.count("rocket"); n != 0 {
		t.Fatalf("%d rockets launched before 1100ms", n)
	}
	run(f, frame)
	if n := sound.count("rocket"); n != 1 {
		t.Fatalf("%d rockets launched at 1100ms, want 1", n)
	}

	run(f, 11*rocketStagger)
	if n := sound.count("rocket"); n != comboRockets {
		t.Errorf("combo launched %d rockets, want %d", n, comboRockets)
	}
}

func TestSingleRocketSalvoHasSixRockets(t *testing.T) {
	for seed := int64(1); seed < 50; seed++ {
		f, sound, _ := newTestFight(t, seed)
		f.State().Streak = 3
		if err := f.TriggerHeroAttack(); err != nil {
			t.Fatal(err)
		}
		if f.Overlay().Text != "LAMBDA SWARM" {
			continue
		}
		run(f, HeroImpactDelay)
		if n := sound.count("rocket"); n != singleRockets {
			t.Fatalf("salvo launched %d rockets, want %d", n, singleRockets)
		}
		if f.Combo() {
			t.Error("streak of 3 is not a combo")
		}
		return
	}
	t.Fatal("no seed produced a rocket attack")
}

func TestTriggersRejectedWhileBusy(t *testing.T) {
	f, _, _ := newTestFight(t, 5)
	if err := f.TriggerHeroAttack(); err != nil {
		t.Fatal(err)
	}
	if err := f.TriggerHeroAttack(); !errors.Is(err, ErrBusy) {
		t.Errorf("second hero trigger: %v, want ErrBusy", err)
	}
	if err := f.TriggerBossAttack(); !errors.Is(err, ErrBusy) {
		t.Errorf("boss trigger during hero sequence: %v, want ErrBusy", err)
	}

	run(f, HeroImpactDelay+HeroOutcomeDelay)
	if f.Phase() != AwaitingAnswer {
		t.Fatalf("phase = %v after the sequence, want awaiting-answer", f.Phase())
	}
	if err := f.TriggerBossAttack(); err != nil {
		t.Errorf("boss trigger after the sequence: %v", err)
	}
}

func TestPoolsStayCappedUnderFire(t *testing.T) {
	f, _, _ := newTestFight(t, 6)
	f.State().Streak = 4
	if err := f.TriggerHeroAttack(); err != nil {
		t.Fatal(err)
	}
	for elapsed := time.Duration(0); elapsed < 4*time.Second; elapsed += frame {
		f.Tick(frame, Input{})
		particles, energy, _, _, scorch := f.Counts()
		if particles > object.MaxParticles || energy > object.MaxEnergyParticles || scorch > object.MaxScorchMarks {
			t.Fatalf("at %v: particles %d, energy %d, scorch %d", elapsed, particles, energy, scorch)
		}
	}
}

func TestRocketHitLeavesScorchMark(t *testing.T) {
	f, sound, _ := newTestFight(t, 7)
	target := &draw.Point{X: f.Boss().X + 80, Y: f.Boss().Y + 80}
	f.rockets.Spawn(&object.Rocket{X: target.X + 10, Y: target.Y + 10, Target: target})
	f.rockets.Spawn(&object.Rocket{X: f.Boss().X + 100, Y: f.Boss().Y + 50})
	f.rockets.Spawn(&object.Rocket{X: 50, Y: 700})

	f.resolveCollisions()

	if _, _, rockets, _, scorch := f.Counts(); rockets != 1 || scorch != 2 {
		t.Fatalf("rockets = %d, scorch = %d; want 1 and 2", rockets, scorch)
	}
	if sound.count("explosion") != 2 {
		t.Errorf("explosions = %d, want 2", sound.count("explosion"))
	}
	mark := f.Boss().Scorch.Items()[0]
	if x, y := f.Boss().ToScreen(mark.RelX, mark.RelY); math.Abs(x-target.X-10) > 1e-9 || math.Abs(y-target.Y-10) > 1e-9 {
		t.Errorf("scorch at (%v, %v), want the impact point", x, y)
	}
	if f.Shake().Amount != 20 {
		t.Errorf("shake = %v, want 20", f.Shake().Amount)
	}
}

func TestScorchMarksDropOldestAtCap(t *testing.T) {
	f, _, _ := newTestFight(t, 11)
	const hits = object.MaxScorchMarks + 10
	for i := 0; i < hits; i++ {
		r := &object.Rocket{X: f.Boss().X - 130 + 2*float64(i), Y: f.Boss().Y}
		if !f.rocketHit(r) {
			t.Fatalf("rocket %d missed the hull", i)
		}
	}

	marks := f.Boss().Scorch.Items()
	if len(marks) != object.MaxScorchMarks {
		t.Fatalf("scorch marks = %d, want %d", len(marks), object.MaxScorchMarks)
	}
	for i, want := range []int{10, hits - 1} {
		m := marks[i*(len(marks)-1)]
		wantX := (-130 + 2*float64(want)) / object.BossBaseScale
		if math.Abs(m.RelX-wantX) > 1e-9 {
			t.Errorf("mark %d at relX %v, want hit %d at %v", i*(len(marks)-1), m.RelX, want, wantX)
		}
	}
}

func TestLaserSparksWhileFiring(t *testing.T) {
	f, _, _ := newTestFight(t, 8)
	f.resolveCollisions()
	if particles, _, _, _, _ := f.Counts(); particles != 0 {
		t.Fatal("idle laser should not spark")
	}

	f.Effects().LaserFire.Start()
	f.resolveCollisions()
	if particles, _, _, _, _ := f.Counts(); particles < 8 {
		t.Errorf("firing laser spawned %d particles, want at least 8", particles)
	}

	// Far off to the side the beams miss the hull.
	f.particles.Clear()
	f.Ship().X = f.Boss().X + 1000
	f.resolveCollisions()
	if particles, _, _, _, _ := f.Counts(); particles != 0 {
		t.Errorf("missing laser spawned %d particles", particles)
	}
}

func TestShipStaysInBounds(t *testing.T) {
	f, _, _ := newTestFight(t, 9)
	bounds := f.Layout().ShipBounds()
	for i := 0; i < 300; i++ {
		f.Tick(object.RefFrame, Input{X: 1, Y: 1})
		s := f.Ship()
		if s.X > bounds.MaxX || s.Y > bounds.MaxY {
			t.Fatalf("frame %d: ship at (%v, %v) outside %+v", i, s.X, s.Y, bounds)
		}
	}
	if s := f.Ship(); s.X != bounds.MaxX || s.VX != 0 {
		t.Errorf("ship pinned at x = %v, vx = %v", s.X, s.VX)
	}
}

func TestResizeRelaysOut(t *testing.T) {
	f, _, _ := newTestFight(t, 10)
	f.Resize(600, 400)

	if got := f.Layout().Scale; got != 0.5 {
		t.Fatalf("scale = %v, want 0.5", got)
	}
	if s := f.Ship(); s.X != 300 || s.Y != 310 {
		t.Errorf("ship at (%v, %v), want (300, 310)", s.X, s.Y)
	}
	if b := f.Boss(); b.X != 300 || b.Y != 75 {
		t.Errorf("boss at (%v, %v), want (300, 75)", b.X, b.Y)
	}
}

func TestResizeCarriesRocketTargets(t *testing.T) {
	f, _, _ := newTestFight(t, 11)
	target := &draw.Point{X: f.Boss().X + 40, Y: f.Boss().Y + 20}
	f.rockets.Spawn(&object.Rocket{X: 600, Y: 700, Target: target})

	f.Resize(600, 400)
	if target.X != 340 || target.Y != 95 {
		t.Errorf("target at (%v, %v), want (340, 95)", target.X, target.Y)
	}
}

func TestGameScale(t *testing.T) {
	cases := []struct {
		width, want float64
	}{
		{2400, 1},
		{1200, 1},
		{600, 0.5},
		{390, 0.4},
		{100, 0.4},
	}
	for _, tc := range cases {
		if got := GameScale(tc.width); got != tc.want {
			t.Errorf("GameScale(%v) = %v, want %v", tc.width, got, tc.want)
		}
	}
}

func TestDrawDoesNotPanic(t *testing.T) {
	f, _, _ := newTestFight(t, 11)
	f.State().Streak = 4
	if err := f.TriggerHeroAttack(); err != nil {
		t.Fatal(err)
	}
	c := draw.NewScaledCanvas(120, 40, LogicalWidth, LogicalHeight)
	for i := 0; i < 200; i++ {
		f.Tick(object.RefFrame, Input{})
		c.Clear()
		f.Draw(c)
	}
	c.Render(io.Discard)
}
