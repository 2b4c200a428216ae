package game

import (
	"time"

	"github.com/wordrush/WordRush/internal/word"
)

const (
	WordLength     = 5
	InitialGuesses = 5
	DailyGameLimit = 3
	DateLayout     = "2006-01-02"
	HiddenWord     = "[Hidden until first guess]"
	redrawAttempts = 5
)

// Session is one playthrough: one target word, up to 5 guesses.
//
// The word attached at creation is only a placeholder to satisfy the NOT NULL
// word_id column; TargetBound stays false until the first guess draws the
// real target. The placeholder must never be shown to the player.
type Session struct {
	ID               string    `gorm:"primaryKey;size:36" json:"id"`
	Owner            string    `gorm:"index:idx_sessions_owner_date;not null" json:"owner"`
	DatePlayed       string    `gorm:"index:idx_sessions_owner_date;not null;size:10" json:"datePlayed"`
	WordID           uint      `gorm:"not null" json:"-"`
	Word             word.Word `gorm:"foreignKey:WordID" json:"-"`
	TargetBound      bool      `gorm:"not null;default:false" json:"-"`
	RemainingGuesses int       `gorm:"not null" json:"remainingGuesses"`
	Won              *bool     `json:"won"`
	Version          int       `gorm:"not null;default:0" json:"-"`
	CreatedAt        time.Time `json:"createdAt"`
}

func (Session) TableName() string {
	return "game_sessions"
}

// Completed reports whether the session reached a terminal outcome.
// Won stays nil while the game is in progress and is set exactly once.
func (s *Session) Completed() bool {
	return s.Won != nil
}

// Guess is one scored attempt. Append-only; GuessNumber is 1-based and
// gapless per session.
type Guess struct {
	ID          uint      `gorm:"primaryKey" json:"-"`
	SessionID   string    `gorm:"index;not null;size:36" json:"sessionId"`
	GuessNumber int       `gorm:"not null" json:"guessNumber"`
	Word        string    `gorm:"not null;size:5" json:"word"`
	Feedback    string    `gorm:"not null;size:5" json:"feedback"`
	CreatedAt   time.Time `json:"createdAt"`
}

func (Guess) TableName() string {
	return "guesses"
}

type GuessDetail struct {
	GuessNumber int    `json:"guessNumber"`
	Word        string `json:"word"`
	Feedback    string `json:"feedback"`
}

type StartResponse struct {
	Message          string `json:"message"`
	GameID           string `json:"gameId"`
	RemainingGuesses int    `json:"remainingGuesses"`
}

type GuessResult struct {
	Correct          bool          `json:"correct"`
	GameCompleted    bool          `json:"gameCompleted"`
	Won              *bool         `json:"won"`
	Message          string        `json:"message"`
	GameID           string        `json:"gameId"`
	RemainingGuesses int           `json:"remainingGuesses"`
	Feedback         string        `json:"feedback"`
	TargetWord       string        `json:"targetWord,omitempty"`
	CurrentGuess     string        `json:"currentGuess"`
	PreviousGuesses  []GuessDetail `json:"previousGuesses"`
}

type StatusResponse struct {
	GameID           string        `json:"gameId"`
	TargetWord       string        `json:"targetWord,omitempty"`
	RemainingGuesses int           `json:"remainingGuesses"`
	Completed        bool          `json:"completed"`
	Won              *bool         `json:"won"`
	Message          string        `json:"message"`
	Guesses          []GuessDetail `json:"guesses"`
}

type DailyStatusResponse struct {
	Username         string `json:"username"`
	GamesPlayedToday int    `json:"gamesPlayedToday"`
	DailyLimit       int    `json:"dailyLimit"`
	RemainingGames   int    `json:"remainingGames"`
	CanStartNewGame  bool   `json:"canStartNewGame"`
	Message          string `json:"message"`
}
