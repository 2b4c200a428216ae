package stats

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/wordrush/WordRush/internal/apperrors"
	"github.com/wordrush/WordRush/internal/game"
	"github.com/wordrush/WordRush/internal/user"
	"github.com/wordrush/WordRush/internal/word"
)

func newTestStatsService() (*Service, *game.MockSessionRepository, *game.MockGuessRepository, *user.MockUserRepository, *game.MockWordStore) {
	sessions := new(game.MockSessionRepository)
	guesses := new(game.MockGuessRepository)
	users := new(user.MockUserRepository)
	words := new(game.MockWordStore)
	return NewService(sessions, guesses, users, words), sessions, guesses, users, words
}

func wonSession(id, owner, date string) game.Session {
	v := true
	return game.Session{ID: id, Owner: owner, DatePlayed: date, Won: &v, Word: word.Word{Text: "EARTH"}}
}

func lostSession(id, owner, date string) game.Session {
	v := false
	return game.Session{ID: id, Owner: owner, DatePlayed: date, Won: &v, Word: word.Word{Text: "EARTH"}}
}

func TestStatsService_GetPlayerStats(t *testing.T) {
	svc, sessions, guesses, users, _ := newTestStatsService()

	users.On("GetByUsername", "alice").Return(&user.User{Username: "alice"}, nil)
	sessions.On("ListByOwner", "alice").Return([]game.Session{
		wonSession("s1", "alice", "2026-08-01"),
		wonSession("s2", "alice", "2026-08-02"),
		lostSession("s3", "alice", "2026-08-03"),
		{ID: "s4", Owner: "alice", DatePlayed: "2026-08-04"}, // started, never played
	}, nil)
	guesses.On("CountBySession", "s1").Return(2, nil)
	guesses.On("CountBySession", "s2").Return(4, nil)
	guesses.On("CountBySession", "s3").Return(5, nil)
	guesses.On("CountBySession", "s4").Return(0, nil)

	stats, err := svc.GetPlayerStats("alice")
	assert.NoError(t, err)
	assert.Equal(t, 3, stats.TotalGames)
	assert.Equal(t, 2, stats.GamesWon)
	assert.Equal(t, 1, stats.GamesLost)
	assert.InDelta(t, 66.67, stats.WinRate, 0.001)
	assert.Equal(t, 0, stats.CurrentStreak) // most recent game is a loss
	assert.Equal(t, 2, stats.LongestStreak)
	assert.InDelta(t, 3.0, stats.AverageGuesses, 0.001)
}

func TestStatsService_GetPlayerStats_UnknownUser(t *testing.T) {
	svc, _, _, users, _ := newTestStatsService()

	users.On("GetByUsername", "ghost").Return(nil, nil)

	_, err := svc.GetPlayerStats("ghost")
	var appErr *apperrors.AppError
	assert.ErrorAs(t, err, &appErr)
	assert.Equal(t, apperrors.NotFound, appErr.Kind)
}

func TestStatsService_GetHistory_ExcludesUnplayedGames(t *testing.T) {
	svc, sessions, guesses, users, _ := newTestStatsService()

	users.On("GetByUsername", "alice").Return(&user.User{Username: "alice"}, nil)
	sessions.On("ListByOwner", "alice").Return([]game.Session{
		wonSession("s1", "alice", "2026-08-01"),
		{ID: "s2", Owner: "alice", DatePlayed: "2026-08-02"},
	}, nil)
	guesses.On("CountBySession", "s1").Return(3, nil)
	guesses.On("CountBySession", "s2").Return(0, nil)
	guesses.On("ListBySession", "s1").Return([]game.Guess{
		{SessionID: "s1", GuessNumber: 1, Word: "CRANE", Feedback: "ROORO"},
		{SessionID: "s1", GuessNumber: 2, Word: "STONE", Feedback: "RORRO"},
		{SessionID: "s1", GuessNumber: 3, Word: "EARTH", Feedback: "GGGGG"},
	}, nil)

	history, err := svc.GetHistory("alice")
	assert.NoError(t, err)
	assert.Equal(t, 1, history.TotalGames)
	assert.Equal(t, 1, history.WonGames)
	assert.Len(t, history.Games, 1)
	assert.Equal(t, "s1", history.Games[0].GameID)
	assert.Equal(t, 3, history.Games[0].GuessesUsed)
	assert.Len(t, history.Games[0].Guesses, 3)
}

func TestStatsService_GetSystemStats(t *testing.T) {
	svc, sessions, guesses, users, words := newTestStatsService()

	users.On("ListAll").Return([]user.User{
		{Username: "alice", Role: user.RolePlayer},
		{Username: "bob", Role: user.RolePlayer},
		{Username: "admin", Role: user.RoleAdmin},
	}, nil)
	sessions.On("ListAll").Return([]game.Session{
		wonSession("s1", "alice", "2026-09-01"),
		lostSession("s2", "bob", "2026-08-31"),
		{ID: "s3", Owner: "bob", DatePlayed: "2026-09-01", RemainingGuesses: 3},
		{ID: "s4", Owner: "alice", DatePlayed: "2026-09-01"},
	}, nil)
	guesses.On("CountBySession", "s1").Return(2, nil)
	guesses.On("CountBySession", "s2").Return(5, nil)
	guesses.On("CountBySession", "s3").Return(2, nil)
	guesses.On("CountBySession", "s4").Return(0, nil)
	words.On("Count").Return(int64(40), nil)

	stats, err := svc.GetSystemStats("2026-09-01")
	assert.NoError(t, err)
	assert.Equal(t, 3, stats.TotalUsers)
	assert.Equal(t, 2, stats.TotalPlayers)
	assert.Equal(t, 1, stats.TotalAdmins)
	assert.Equal(t, 3, stats.TotalGames) // s4 never played
	assert.Equal(t, 2, stats.CompletedGames)
	assert.Equal(t, 1, stats.WonGames)
	assert.Equal(t, 1, stats.LostGames)
	assert.InDelta(t, 50.0, stats.OverallWinRate, 0.001)
	assert.Equal(t, 2, stats.GamesToday)
	assert.Equal(t, int64(40), stats.TotalWords)
}

func TestStatsService_GetDailyReport(t *testing.T) {
	svc, sessions, guesses, _, _ := newTestStatsService()

	sessions.On("ListAll").Return([]game.Session{
		wonSession("s1", "alice", "2026-09-01"),
		lostSession("s2", "bob", "2026-09-01"),
		{ID: "s3", Owner: "alice", DatePlayed: "2026-09-01", RemainingGuesses: 4},
		wonSession("s4", "alice", "2026-08-30"),
	}, nil)
	guesses.On("CountBySession", "s1").Return(3, nil)
	guesses.On("CountBySession", "s2").Return(5, nil)
	guesses.On("CountBySession", "s3").Return(1, nil)
	guesses.On("CountBySession", "s4").Return(2, nil)

	report, err := svc.GetDailyReport("2026-09-01")
	assert.NoError(t, err)
	assert.Equal(t, 2, report.TotalUsers)
	assert.Equal(t, 3, report.TotalGames)
	assert.Equal(t, 1, report.GamesWon)
	assert.Equal(t, 1, report.GamesLost)
	assert.Equal(t, 1, report.GamesInProgress)
	assert.Equal(t, 9, report.TotalGuesses)
	assert.InDelta(t, 33.33, report.WinRate, 0.001)
	assert.InDelta(t, 4.5, report.AverageGuessesPerGame, 0.001) // 9 guesses / 2 completed
}

func TestStatsService_GetWinReports(t *testing.T) {
	svc, sessions, guesses, users, _ := newTestStatsService()

	users.On("Count").Return(int64(5), nil)
	sessions.On("ListAll").Return([]game.Session{
		wonSession("s1", "alice", "2026-08-01"),
		wonSession("s2", "alice", "2026-08-02"),
		wonSession("s3", "bob", "2026-08-02"),
		lostSession("s4", "carol", "2026-08-03"),
	}, nil)
	guesses.On("CountBySession", "s1").Return(1, nil)
	guesses.On("CountBySession", "s2").Return(3, nil)
	guesses.On("CountBySession", "s3").Return(3, nil)
	guesses.On("CountBySession", "s4").Return(5, nil)

	reports, err := svc.GetWinReports()
	assert.NoError(t, err)
	assert.Equal(t, 5, reports.TotalUsers)
	assert.Equal(t, 2, reports.TotalWinners)
	assert.Equal(t, []GuessCountWinners{
		{GuessCount: 1, Winners: 1},
		{GuessCount: 2, Winners: 0},
		{GuessCount: 3, Winners: 2},
		{GuessCount: 4, Winners: 0},
		{GuessCount: 5, Winners: 0},
	}, reports.WinsByGuessCount)

	assert.Len(t, reports.OneGuessWinners, 1)
	assert.Equal(t, "alice", reports.OneGuessWinners[0].Username)
	assert.Empty(t, reports.TwoGuessWinners)
	assert.Len(t, reports.ThreeGuessWinners, 2)
}

func TestStatsService_GetUserReport_GroupsByDate(t *testing.T) {
	svc, sessions, guesses, users, _ := newTestStatsService()

	users.On("GetByUsername", "alice").Return(&user.User{Username: "alice"}, nil)
	sessions.On("ListByOwner", "alice").Return([]game.Session{
		wonSession("s1", "alice", "2026-09-01"),
		lostSession("s2", "alice", "2026-09-01"),
		wonSession("s3", "alice", "2026-08-30"),
	}, nil)
	guesses.On("CountBySession", "s1").Return(2, nil)
	guesses.On("CountBySession", "s2").Return(5, nil)
	guesses.On("CountBySession", "s3").Return(4, nil)

	report, err := svc.GetUserReport("alice")
	assert.NoError(t, err)
	assert.Len(t, report.Reports, 2)
	assert.Equal(t, "2026-09-01", report.Reports[0].Date) // newest first
	assert.Equal(t, 2, report.Reports[0].WordsAttempted)
	assert.Equal(t, 1, report.Reports[0].CorrectGuesses)
	assert.Equal(t, 7, report.Reports[0].TotalGuesses)
	assert.Equal(t, "2026-08-30", report.Reports[1].Date)
}

func TestStatsService_GetAdminReports(t *testing.T) {
	svc, sessions, guesses, users, words := newTestStatsService()

	now := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)
	users.On("ListAll").Return([]user.User{
		{Username: "alice", Role: user.RolePlayer, CreatedAt: now.AddDate(0, 0, -10)},
		{Username: "bob", Role: user.RolePlayer, CreatedAt: now.AddDate(0, 0, -60)},
		{Username: "admin", Role: user.RoleAdmin, CreatedAt: now.AddDate(0, 0, -5)},
	}, nil)
	sessions.On("ListAll").Return([]game.Session{
		wonSession("s1", "alice", "2026-09-01"),
		{ID: "s2", Owner: "bob", DatePlayed: "2026-08-31"},
	}, nil)
	guesses.On("CountBySession", "s1").Return(2, nil)
	guesses.On("CountBySession", "s2").Return(0, nil)
	words.On("Count").Return(int64(40), nil)

	reports, err := svc.GetAdminReports(now)
	assert.NoError(t, err)

	// only users with played games appear as players
	assert.Len(t, reports.Players, 1)
	assert.Equal(t, "alice", reports.Players[0].Username)
	assert.Equal(t, "2026-09-01", reports.Players[0].LastPlayed)

	// only played games appear as game reports
	assert.Len(t, reports.Games, 1)
	assert.Equal(t, "s1", reports.Games[0].GameID)

	// registrations in the last 30 days, regardless of activity
	assert.Len(t, reports.RecentRegistrations, 2)

	assert.Equal(t, 3, reports.SystemStats.TotalUsers)
	assert.Equal(t, 1, reports.SystemStats.TotalGames)
}
