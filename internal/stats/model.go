package stats

import (
	"time"

	"github.com/wordrush/WordRush/internal/game"
	"github.com/wordrush/WordRush/internal/user"
)

type PlayerStatsResponse struct {
	TotalGames     int     `json:"totalGames"`
	GamesWon       int     `json:"gamesWon"`
	GamesLost      int     `json:"gamesLost"`
	WinRate        float64 `json:"winRate"`
	CurrentStreak  int     `json:"currentStreak"`
	LongestStreak  int     `json:"longestStreak"`
	AverageGuesses float64 `json:"averageGuesses"`
}

type GameDetails struct {
	GameID           string             `json:"gameId"`
	DatePlayed       string             `json:"datePlayed"`
	Word             string             `json:"word"`
	Completed        bool               `json:"completed"`
	Won              *bool              `json:"won"`
	RemainingGuesses int                `json:"remainingGuesses"`
	GuessesUsed      int                `json:"guessesUsed"`
	Guesses          []game.GuessDetail `json:"guesses"`
}

type GameHistoryResponse struct {
	Username       string        `json:"username"`
	TotalGames     int           `json:"totalGames"`
	CompletedGames int           `json:"completedGames"`
	WonGames       int           `json:"wonGames"`
	LostGames      int           `json:"lostGames"`
	Games          []GameDetails `json:"games"`
}

type DailyReportResponse struct {
	Date                  string  `json:"date"`
	TotalUsers            int     `json:"totalUsers"`
	TotalGames            int     `json:"totalGames"`
	GamesWon              int     `json:"gamesWon"`
	GamesLost             int     `json:"gamesLost"`
	GamesInProgress       int     `json:"gamesInProgress"`
	WinRate               float64 `json:"winRate"`
	TotalGuesses          int     `json:"totalGuesses"`
	AverageGuessesPerGame float64 `json:"averageGuessesPerGame"`
}

type UserGameDetail struct {
	GameID     string `json:"gameId"`
	Word       string `json:"word"`
	Won        bool   `json:"won"`
	GuessCount int    `json:"guessCount"`
	Date       string `json:"date"`
}

type UserGameReport struct {
	Date           string           `json:"date"`
	WordsAttempted int              `json:"wordsAttempted"`
	CorrectGuesses int              `json:"correctGuesses"`
	TotalGuesses   int              `json:"totalGuesses"`
	Games          []UserGameDetail `json:"games"`
}

type UserReportResponse struct {
	Username string           `json:"username"`
	Reports  []UserGameReport `json:"reports"`
}

type GuessCountWinners struct {
	GuessCount int `json:"guessCount"`
	Winners    int `json:"winners"`
}

type WinnerDetail struct {
	Username           string  `json:"username"`
	TotalGames         int     `json:"totalGames"`
	TotalWins          int     `json:"totalWins"`
	WinsWithGuessCount int     `json:"winsWithGuessCount"`
	WinRate            float64 `json:"winRate"`
}

type WinReportsResponse struct {
	TotalUsers        int                 `json:"totalUsers"`
	TotalWinners      int                 `json:"totalWinners"`
	WinsByGuessCount  []GuessCountWinners `json:"winsByGuessCount"`
	OneGuessWinners   []WinnerDetail      `json:"oneGuessWinners"`
	TwoGuessWinners   []WinnerDetail      `json:"twoGuessWinners"`
	ThreeGuessWinners []WinnerDetail      `json:"threeGuessWinners"`
}

type PlayerReport struct {
	Username   string    `json:"username"`
	Role       user.Role `json:"role"`
	CreatedAt  time.Time `json:"createdAt"`
	TotalGames int       `json:"totalGames"`
	WonGames   int       `json:"wonGames"`
	LastPlayed string    `json:"lastPlayed,omitempty"`
}

type GameReport struct {
	GameID     string `json:"gameId"`
	Username   string `json:"username"`
	Word       string `json:"word"`
	DatePlayed string `json:"datePlayed"`
	Completed  bool   `json:"completed"`
	Won        *bool  `json:"won"`
	GuessCount int    `json:"guessCount"`
}

type UserRegistration struct {
	Username   string    `json:"username"`
	Role       user.Role `json:"role"`
	CreatedAt  time.Time `json:"createdAt"`
	TotalGames int       `json:"totalGames"`
}

type SystemStatistics struct {
	TotalUsers     int     `json:"totalUsers"`
	TotalPlayers   int     `json:"totalPlayers"`
	TotalAdmins    int     `json:"totalAdmins"`
	TotalGames     int     `json:"totalGames"`
	CompletedGames int     `json:"completedGames"`
	WonGames       int     `json:"wonGames"`
	LostGames      int     `json:"lostGames"`
	OverallWinRate float64 `json:"overallWinRate"`
	GamesToday     int     `json:"gamesToday"`
	TotalWords     int64   `json:"totalWords"`
}

type AdminReportsResponse struct {
	Players             []PlayerReport     `json:"players"`
	Games               []GameReport       `json:"games"`
	RecentRegistrations []UserRegistration `json:"recentRegistrations"`
	SystemStats         SystemStatistics   `json:"systemStats"`
}
