package game

import (
	"strings"

	"github.com/wordrush/WordRush/internal/apperrors"
)

// Feedback symbols, one per letter of the guess.
const (
	FeedbackGreen   = 'G' // correct letter, correct position
	FeedbackPresent = 'O' // letter exists in the word, wrong position
	FeedbackAbsent  = 'R' // letter not in the word
)

// Feedback scores a guess against the target word and returns a 5-symbol
// string over {G, O, R}.
//
// The presence check is a plain containment test: a letter repeated in the
// guess more often than it appears in the target is still marked O for every
// non-green occurrence. This is intentionally not the frequency-conserving
// Wordle algorithm; stored feedback and reports depend on this behavior.
func Feedback(guess, target string) (string, error) {
	if len(guess) != WordLength || len(target) != WordLength {
		return "", apperrors.NewInvalidInput("feedback requires 5-letter words")
	}

	var b strings.Builder
	for i := 0; i < WordLength; i++ {
		switch {
		case guess[i] == target[i]:
			b.WriteByte(FeedbackGreen)
		case strings.IndexByte(target, guess[i]) >= 0:
			b.WriteByte(FeedbackPresent)
		default:
			b.WriteByte(FeedbackAbsent)
		}
	}
	return b.String(), nil
}
