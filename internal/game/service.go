package game

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/wordrush/WordRush/internal/apperrors"
	"github.com/wordrush/WordRush/internal/word"
)

var wordPattern = regexp.MustCompile(`^[A-Z]{5}$`)

type GameService struct {
	sessions SessionRepository
	guesses  GuessRepository
	words    word.Store
	limiter  DailyLimiter
}

func NewGameService(sessions SessionRepository, guesses GuessRepository, words word.Store, limiter DailyLimiter) *GameService {
	return &GameService{
		sessions: sessions,
		guesses:  guesses,
		words:    words,
		limiter:  limiter,
	}
}

// StartGame creates a session for the given user on the given calendar date.
// The date comes from the caller, not the clock, to keep the quota testable.
func (g *GameService) StartGame(username, date string) (*StartResponse, error) {
	ok, err := g.limiter.Reserve(username, date)
	if err != nil {
		return nil, apperrors.NewAppError(500, "error checking daily limit", err)
	}
	if !ok {
		return nil, apperrors.NewRuleViolation(
			fmt.Sprintf("you have reached the daily limit of %d games today, try again tomorrow", DailyGameLimit))
	}

	// Placeholder word only; the real target is drawn on the first guess.
	placeholder, err := g.words.Random()
	if err != nil {
		g.releaseSlot(username, date)
		return nil, apperrors.NewAppError(500, "error drawing word", err)
	}
	if placeholder == nil {
		g.releaseSlot(username, date)
		log.Error().Str("user", username).Msg("word pool is empty")
		return nil, apperrors.NewResourceExhausted("no words available")
	}

	session := &Session{
		ID:               uuid.New().String(),
		Owner:            username,
		DatePlayed:       date,
		WordID:           placeholder.ID,
		RemainingGuesses: InitialGuesses,
	}
	if err := g.sessions.Create(session); err != nil {
		g.releaseSlot(username, date)
		return nil, apperrors.NewAppError(500, "error creating game", err)
	}

	return &StartResponse{
		Message:          fmt.Sprintf("New Game Started! You have %d chances.", InitialGuesses),
		GameID:           session.ID,
		RemainingGuesses: session.RemainingGuesses,
	}, nil
}

func (g *GameService) releaseSlot(username, date string) {
	if err := g.limiter.Release(username, date); err != nil {
		log.Warn().Err(err).Str("user", username).Msg("failed to release daily slot")
	}
}

// SubmitGuess scores one guess. On the first guess the placeholder word is
// replaced by a freshly drawn target before scoring. A failed submission
// leaves the session and its guess history untouched.
func (g *GameService) SubmitGuess(username, sessionID, guessWord string) (*GuessResult, error) {
	normalized := strings.ToUpper(strings.TrimSpace(guessWord))
	if !wordPattern.MatchString(normalized) {
		return nil, apperrors.NewInvalidInput("guessed word must be exactly 5 letters")
	}

	session, err := g.sessions.Get(sessionID)
	if err != nil {
		return nil, apperrors.NewAppError(500, "error loading game", err)
	}
	if session == nil {
		return nil, apperrors.NewNotFound("game not found")
	}
	if session.Owner != username {
		return nil, apperrors.NewForbidden("you can only play your own games")
	}
	if session.Completed() {
		return nil, apperrors.NewRuleViolation("this game is already completed")
	}
	if session.RemainingGuesses <= 0 {
		return nil, apperrors.NewRuleViolation("no remaining guesses for this game")
	}

	count, err := g.guesses.CountBySession(session.ID)
	if err != nil {
		return nil, apperrors.NewAppError(500, "error counting guesses", err)
	}
	guessNumber := count + 1

	if !session.TargetBound {
		if err := g.bindTarget(session); err != nil {
			return nil, err
		}
	}
	target := session.Word.Text

	feedback, err := Feedback(normalized, target)
	if err != nil {
		return nil, err
	}

	session.RemainingGuesses--
	correct := normalized == target
	completed := false
	if correct {
		won := true
		session.Won = &won
		completed = true
	} else if session.RemainingGuesses <= 0 {
		won := false
		session.Won = &won
		completed = true
	}

	guess := &Guess{
		SessionID:   session.ID,
		GuessNumber: guessNumber,
		Word:        normalized,
		Feedback:    feedback,
	}
	if err := g.sessions.SaveWithGuess(session, guess); err != nil {
		if errors.Is(err, ErrVersionConflict) {
			return nil, apperrors.NewRuleViolation("another guess for this game is in flight, try again")
		}
		return nil, apperrors.NewAppError(500, "error saving guess", err)
	}

	history, err := g.guesses.ListBySession(session.ID)
	if err != nil {
		return nil, apperrors.NewAppError(500, "error loading guesses", err)
	}

	result := &GuessResult{
		Correct:          correct,
		GameCompleted:    completed,
		Won:              session.Won,
		GameID:           session.ID,
		RemainingGuesses: session.RemainingGuesses,
		Feedback:         feedback,
		CurrentGuess:     normalized,
		PreviousGuesses:  toGuessDetails(history),
	}
	switch {
	case correct:
		result.Message = "Congratulations! You guessed the word correctly! The word was: " + target
		result.TargetWord = target
	case completed:
		result.Message = "Better luck next time! The word was: " + target
		result.TargetWord = target
	default:
		result.Message = fmt.Sprintf("Try again! %d guesses remaining.", session.RemainingGuesses)
	}
	return result, nil
}

// bindTarget draws the permanent target word, redrawing a few times when the
// draw lands on the placeholder. Distinctness is best effort; after 5 draws
// whatever came up is accepted.
func (g *GameService) bindTarget(session *Session) error {
	drawn, err := g.words.Random()
	if err != nil {
		return apperrors.NewAppError(500, "error drawing word", err)
	}
	if drawn == nil {
		log.Error().Str("game", session.ID).Msg("word pool is empty")
		return apperrors.NewResourceExhausted("no words available")
	}

	for attempts := 0; drawn.ID == session.WordID && attempts < redrawAttempts; attempts++ {
		next, err := g.words.Random()
		if err != nil {
			return apperrors.NewAppError(500, "error drawing word", err)
		}
		if next == nil {
			break
		}
		drawn = next
	}

	session.WordID = drawn.ID
	session.Word = *drawn
	session.TargetBound = true
	return nil
}

// GetStatus reports the current state of a session. The target word stays
// hidden behind a sentinel until at least one guess exists.
func (g *GameService) GetStatus(username, sessionID string) (*StatusResponse, error) {
	session, err := g.sessions.Get(sessionID)
	if err != nil {
		return nil, apperrors.NewAppError(500, "error loading game", err)
	}
	if session == nil {
		return nil, apperrors.NewNotFound("game not found")
	}
	if session.Owner != username {
		return nil, apperrors.NewForbidden("you can only view your own games")
	}

	history, err := g.guesses.ListBySession(session.ID)
	if err != nil {
		return nil, apperrors.NewAppError(500, "error loading guesses", err)
	}

	status := &StatusResponse{
		GameID:           session.ID,
		RemainingGuesses: session.RemainingGuesses,
		Completed:        session.Completed(),
		Won:              session.Won,
		Guesses:          toGuessDetails(history),
	}
	switch {
	case len(history) == 0:
		status.TargetWord = HiddenWord
		status.Message = fmt.Sprintf("Game ready. %d guesses available.", session.RemainingGuesses)
	case session.Completed():
		status.TargetWord = session.Word.Text
		if *session.Won {
			status.Message = "Congratulations! You won this game!"
		} else {
			status.Message = "Game over. Better luck next time!"
		}
	default:
		status.TargetWord = session.Word.Text
		status.Message = fmt.Sprintf("Game in progress. %d guesses remaining.", session.RemainingGuesses)
	}
	return status, nil
}

// GetDailyStatus reports the quota for the given user and date.
func (g *GameService) GetDailyStatus(username, date string) (*DailyStatusResponse, error) {
	played, err := g.limiter.GamesPlayedOn(username, date)
	if err != nil {
		return nil, apperrors.NewAppError(500, "error checking daily limit", err)
	}
	remaining := DailyGameLimit - played
	if remaining < 0 {
		remaining = 0
	}
	canStart := played < DailyGameLimit

	var message string
	switch {
	case !canStart:
		message = "Daily limit reached. Try again tomorrow!"
	case played == 0:
		message = "Ready to start your first game today!"
	case remaining == 1:
		message = "You have 1 game remaining today."
	default:
		message = fmt.Sprintf("You have %d games remaining today.", remaining)
	}

	return &DailyStatusResponse{
		Username:         username,
		GamesPlayedToday: played,
		DailyLimit:       DailyGameLimit,
		RemainingGames:   remaining,
		CanStartNewGame:  canStart,
		Message:          message,
	}, nil
}

func toGuessDetails(guesses []Guess) []GuessDetail {
	details := make([]GuessDetail, 0, len(guesses))
	for _, g := range guesses {
		details = append(details, GuessDetail{
			GuessNumber: g.GuessNumber,
			Word:        g.Word,
			Feedback:    g.Feedback,
		})
	}
	return details
}
