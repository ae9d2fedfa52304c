// Package quiz runs the cloud trivia that gates the boss fight: it deals
// questions, grades answers and triggers the matching attack.
package quiz

import "math/rand"

// Difficulty grades a question.
type Difficulty int

const (
	Easy Difficulty = iota
	Medium
	Hard
)

func (d Difficulty) String() string {
	switch d {
	case Medium:
		return "MEDIUM"
	case Hard:
		return "HARD"
	default:
		return "EASY"
	}
}

// Question is one multiple-choice question.
type Question struct {
	Text       string
	Options    [4]string
	Answer     int // Index into Options
	Difficulty Difficulty
}

// Deck composition.
const (
	deckEasy   = 4
	deckMedium = 3
	deckHard   = 3
	DeckSize   = deckEasy + deckMedium + deckHard
)

// NewDeck deals a session deck: easy questions first, then medium, then hard,
// each drawn without repeats from its pool.
func NewDeck(rng *rand.Rand) []Question {
	deck := make([]Question, 0, DeckSize)
	deck = appendRandom(deck, rng, easyQuestions, deckEasy, Easy)
	deck = appendRandom(deck, rng, mediumQuestions, deckMedium, Medium)
	deck = appendRandom(deck, rng, hardQuestions, deckHard, Hard)
	return deck
}

func appendRandom(deck []Question, rng *rand.Rand, pool []Question, n int, d Difficulty) []Question {
	for _, i := range rng.Perm(len(pool))[:min(n, len(pool))] {
		q := pool[i]
		q.Difficulty = d
		deck = append(deck, q)
	}
	return deck
}
