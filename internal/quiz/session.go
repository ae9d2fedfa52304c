package quiz

import (
	"math/rand"
	"time"

	"github.com/charmbracelet/log"
	"github.com/tomz197/quizboss/internal/combat"
)

// Answer feedback delays before the attack starts.
const (
	HeroTriggerDelay = 1000 * time.Millisecond
	BossTriggerDelay = 1500 * time.Millisecond
	PointsPerAnswer  = 100
)

// Fight is the part of the combat core the quiz drives.
type Fight interface {
	TriggerHeroAttack() error
	TriggerBossAttack() error
	After(d time.Duration, fn func())
	State() *combat.State
}

// Speaker voices the boss.
type Speaker interface {
	Speak(category combat.VoiceCategory)
}

// Feedback is the line shown under the options after answering.
type Feedback struct {
	Text  string
	Color string
}

// Result is the outcome of a finished fight.
type Result struct {
	Victory bool
	Score   int
}

// Session deals questions and grades answers for one fight.
type Session struct {
	fight Fight
	sound combat.Sound
	voice Speaker
	rng   *rand.Rand
	log   *log.Logger

	deck     []Question
	current  Question
	visible  bool
	selected int
	feedback Feedback
	result   *Result
}

// NewSession creates a session with a fresh deck.
func NewSession(fight Fight, sound combat.Sound, voice Speaker, rng *rand.Rand, logger *log.Logger) *Session {
	if logger == nil {
		logger = log.Default()
	}
	return &Session{
		fight:    fight,
		sound:    sound,
		voice:    voice,
		rng:      rng,
		log:      logger.WithPrefix("quiz"),
		deck:     NewDeck(rng),
		selected: -1,
	}
}

// Start greets the player and shows the first question.
func (s *Session) Start() {
	s.fight.State().CurrentQuestion = 0
	s.ShowQuestion()
	s.speak(combat.VoiceIntro)
}

// ShowQuestion opens the next question, dealing a new deck once the current
// one is used up.
func (s *Session) ShowQuestion() {
	st := s.fight.State()
	if st.CurrentQuestion >= len(s.deck) {
		s.deck = NewDeck(s.rng)
		st.CurrentQuestion = 0
	}
	s.current = s.deck[st.CurrentQuestion]
	st.QuizActive = true
	s.visible = true
	s.selected = -1
	s.feedback = Feedback{}
}

// Answer grades option i. It returns false when no question is open or i is
// not an option.
func (s *Session) Answer(i int) bool {
	st := s.fight.State()
	if !st.QuizActive || st.GameOver || i < 0 || i >= len(s.current.Options) {
		return false
	}
	st.QuizActive = false
	s.selected = i

	if i == s.current.Answer {
		s.sound.Correct()
		st.Streak++
		if st.Streak%combat.ComboEvery == 0 {
			s.feedback = Feedback{"4 STREAK! COMBO ATTACK!", "#ff00ff"}
			s.speak(combat.VoiceStreak)
		} else {
			s.feedback = Feedback{"CORRECT! ATTACKING BOSS!", "#00ff88"}
		}
		st.Score += PointsPerAnswer
		s.fight.After(HeroTriggerDelay, func() { s.trigger(s.fight.TriggerHeroAttack) })
	} else {
		s.sound.Wrong()
		st.Streak = 0
		if s.current.Difficulty == Easy {
			s.speak(combat.VoiceWrongEasy)
		} else {
			s.speak(combat.VoiceWrongHard)
		}
		s.feedback = Feedback{"WRONG! INCOMING ATTACK!", "#ff4444"}
		s.fight.After(BossTriggerDelay, func() { s.trigger(s.fight.TriggerBossAttack) })
	}

	st.CurrentQuestion++
	s.log.Debug("answered", "correct", i == s.current.Answer, "streak", st.Streak, "score", st.Score)
	return true
}

func (s *Session) trigger(attack func() error) {
	s.visible = false
	if err := attack(); err != nil {
		s.log.Warn("attack not started, reopening the quiz", "err", err)
		if !s.fight.State().GameOver {
			s.ShowQuestion()
		}
	}
}

// EndGame records the outcome and plays the closing sound and taunt.
func (s *Session) EndGame(victory bool) {
	st := s.fight.State()
	st.GameOver = true
	st.QuizActive = false
	s.visible = false
	s.result = &Result{Victory: victory, Score: st.Score}

	if victory {
		s.sound.PlayVictory()
		s.speak(combat.VoiceWin)
	} else {
		s.sound.PlayLose()
		s.speak(combat.VoiceLose)
	}
}

func (s *Session) speak(category combat.VoiceCategory) {
	if s.voice != nil {
		s.voice.Speak(category)
	}
}

// Current returns the open or last graded question.
func (s *Session) Current() Question {
	return s.current
}

// Visible reports whether the question panel is shown.
func (s *Session) Visible() bool {
	return s.visible
}

// Selected returns the chosen option, or -1 before answering.
func (s *Session) Selected() int {
	return s.selected
}

// Feedback returns the grading line for the last answer.
func (s *Session) Feedback() Feedback {
	return s.feedback
}

// Result returns the outcome, or nil while the fight goes on.
func (s *Session) Result() *Result {
	return s.result
}
