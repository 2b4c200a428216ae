package stats

import (
	"sort"
	"time"

	"github.com/samber/lo"
	"github.com/wordrush/WordRush/internal/apperrors"
	"github.com/wordrush/WordRush/internal/game"
	"github.com/wordrush/WordRush/internal/user"
	"github.com/wordrush/WordRush/internal/word"
)

// Service derives player and system reports from the session history. It
// only ever reads; sessions and guesses are never mutated here.
type Service struct {
	sessions game.SessionRepository
	guesses  game.GuessRepository
	users    user.UserRepository
	words    word.Store
}

func NewService(sessions game.SessionRepository, guesses game.GuessRepository, users user.UserRepository, words word.Store) *Service {
	return &Service{
		sessions: sessions,
		guesses:  guesses,
		users:    users,
		words:    words,
	}
}

func (s *Service) snapshot(sessions []game.Session) ([]Snapshot, error) {
	snapshots := make([]Snapshot, 0, len(sessions))
	for _, sess := range sessions {
		count, err := s.guesses.CountBySession(sess.ID)
		if err != nil {
			return nil, apperrors.NewAppError(500, "error counting guesses", err)
		}
		snapshots = append(snapshots, Snapshot{
			ID:               sess.ID,
			Owner:            sess.Owner,
			Date:             sess.DatePlayed,
			Word:             sess.Word.Text,
			Won:              sess.Won,
			GuessCount:       count,
			RemainingGuesses: sess.RemainingGuesses,
			CreatedAt:        sess.CreatedAt,
		})
	}
	return snapshots, nil
}

func (s *Service) playerSnapshots(username string) ([]Snapshot, error) {
	u, err := s.users.GetByUsername(username)
	if err != nil {
		return nil, apperrors.NewAppError(500, "error loading user", err)
	}
	if u == nil {
		return nil, apperrors.NewNotFound("user not found: " + username)
	}
	sessions, err := s.sessions.ListByOwner(username)
	if err != nil {
		return nil, apperrors.NewAppError(500, "error loading games", err)
	}
	return s.snapshot(sessions)
}

// GetPlayerStats computes win rate, streaks and average guesses over the
// user's completed games that have at least one guess.
func (s *Service) GetPlayerStats(username string) (*PlayerStatsResponse, error) {
	snapshots, err := s.playerSnapshots(username)
	if err != nil {
		return nil, err
	}

	completed := lo.Filter(WithGuesses(snapshots), func(sn Snapshot, _ int) bool {
		return sn.Completed()
	})
	wins := lo.CountBy(completed, Snapshot.IsWin)

	return &PlayerStatsResponse{
		TotalGames:     len(completed),
		GamesWon:       wins,
		GamesLost:      len(completed) - wins,
		WinRate:        WinRate(completed),
		CurrentStreak:  CurrentStreak(completed),
		LongestStreak:  LongestStreak(completed),
		AverageGuesses: AverageGuessesPerWin(completed),
	}, nil
}

// GetHistory returns the user's played games, newest first, with full guess
// detail. Sessions without guesses are omitted.
func (s *Service) GetHistory(username string) (*GameHistoryResponse, error) {
	snapshots, err := s.playerSnapshots(username)
	if err != nil {
		return nil, err
	}
	played := WithGuesses(snapshots)

	games := make([]GameDetails, 0, len(played))
	for _, sn := range played {
		guesses, err := s.guesses.ListBySession(sn.ID)
		if err != nil {
			return nil, apperrors.NewAppError(500, "error loading guesses", err)
		}
		details := make([]game.GuessDetail, 0, len(guesses))
		for _, g := range guesses {
			details = append(details, game.GuessDetail{
				GuessNumber: g.GuessNumber,
				Word:        g.Word,
				Feedback:    g.Feedback,
			})
		}
		games = append(games, GameDetails{
			GameID:           sn.ID,
			DatePlayed:       sn.Date,
			Word:             sn.Word,
			Completed:        sn.Completed(),
			Won:              sn.Won,
			RemainingGuesses: sn.RemainingGuesses,
			GuessesUsed:      sn.GuessCount,
			Guesses:          details,
		})
	}

	return &GameHistoryResponse{
		Username:       username,
		TotalGames:     len(played),
		CompletedGames: lo.CountBy(played, Snapshot.Completed),
		WonGames:       lo.CountBy(played, Snapshot.IsWin),
		LostGames:      lo.CountBy(played, Snapshot.IsLoss),
		Games:          games,
	}, nil
}

// GetSystemStats produces the system-wide counters for the given date.
func (s *Service) GetSystemStats(today string) (*SystemStatistics, error) {
	users, err := s.users.ListAll()
	if err != nil {
		return nil, apperrors.NewAppError(500, "error loading users", err)
	}
	sessions, err := s.sessions.ListAll()
	if err != nil {
		return nil, apperrors.NewAppError(500, "error loading games", err)
	}
	snapshots, err := s.snapshot(sessions)
	if err != nil {
		return nil, err
	}
	played := WithGuesses(snapshots)

	completed := lo.Filter(played, func(sn Snapshot, _ int) bool { return sn.Completed() })
	wins := lo.CountBy(played, Snapshot.IsWin)
	losses := lo.CountBy(played, Snapshot.IsLoss)

	overallWinRate := 0.0
	if len(completed) > 0 {
		overallWinRate = Round2(float64(wins) / float64(len(completed)) * 100)
	}

	totalWords, err := s.words.Count()
	if err != nil {
		return nil, apperrors.NewAppError(500, "error counting words", err)
	}

	return &SystemStatistics{
		TotalUsers:     len(users),
		TotalPlayers:   lo.CountBy(users, func(u user.User) bool { return u.Role == user.RolePlayer }),
		TotalAdmins:    lo.CountBy(users, func(u user.User) bool { return u.Role == user.RoleAdmin }),
		TotalGames:     len(played),
		CompletedGames: len(completed),
		WonGames:       wins,
		LostGames:      losses,
		OverallWinRate: overallWinRate,
		GamesToday: lo.CountBy(played, func(sn Snapshot) bool {
			return sn.Date == today
		}),
		TotalWords: totalWords,
	}, nil
}

// GetAdminReports builds the comprehensive admin view: per-player reports,
// per-game reports, registrations within the last 30 days and the system
// counters, all as of the supplied time.
func (s *Service) GetAdminReports(asOf time.Time) (*AdminReportsResponse, error) {
	users, err := s.users.ListAll()
	if err != nil {
		return nil, apperrors.NewAppError(500, "error loading users", err)
	}
	sessions, err := s.sessions.ListAll()
	if err != nil {
		return nil, apperrors.NewAppError(500, "error loading games", err)
	}
	snapshots, err := s.snapshot(sessions)
	if err != nil {
		return nil, err
	}
	played := WithGuesses(snapshots)
	byOwner := lo.GroupBy(played, func(sn Snapshot) string { return sn.Owner })

	players := make([]PlayerReport, 0, len(users))
	for _, u := range users {
		owned := byOwner[u.Username]
		if len(owned) == 0 {
			continue
		}
		lastPlayed := lo.MaxBy(owned, func(a, b Snapshot) bool { return a.Date > b.Date }).Date
		players = append(players, PlayerReport{
			Username:   u.Username,
			Role:       u.Role,
			CreatedAt:  u.CreatedAt,
			TotalGames: len(owned),
			WonGames:   lo.CountBy(owned, Snapshot.IsWin),
			LastPlayed: lastPlayed,
		})
	}

	games := make([]GameReport, 0, len(played))
	for _, sn := range played {
		games = append(games, GameReport{
			GameID:     sn.ID,
			Username:   sn.Owner,
			Word:       sn.Word,
			DatePlayed: sn.Date,
			Completed:  sn.Completed(),
			Won:        sn.Won,
			GuessCount: sn.GuessCount,
		})
	}

	cutoff := asOf.AddDate(0, 0, -30)
	recent := make([]UserRegistration, 0)
	for _, u := range users {
		if u.CreatedAt.Before(cutoff) {
			continue
		}
		allOwned := lo.CountBy(snapshots, func(sn Snapshot) bool { return sn.Owner == u.Username })
		recent = append(recent, UserRegistration{
			Username:   u.Username,
			Role:       u.Role,
			CreatedAt:  u.CreatedAt,
			TotalGames: allOwned,
		})
	}

	systemStats, err := s.GetSystemStats(asOf.Format(game.DateLayout))
	if err != nil {
		return nil, err
	}

	return &AdminReportsResponse{
		Players:             players,
		Games:               games,
		RecentRegistrations: recent,
		SystemStats:         *systemStats,
	}, nil
}

// GetDailyReport aggregates all played games on one calendar date.
func (s *Service) GetDailyReport(date string) (*DailyReportResponse, error) {
	sessions, err := s.sessions.ListAll()
	if err != nil {
		return nil, apperrors.NewAppError(500, "error loading games", err)
	}
	snapshots, err := s.snapshot(sessions)
	if err != nil {
		return nil, err
	}
	onDate := lo.Filter(WithGuesses(snapshots), func(sn Snapshot, _ int) bool {
		return sn.Date == date
	})

	wins := lo.CountBy(onDate, Snapshot.IsWin)
	losses := lo.CountBy(onDate, Snapshot.IsLoss)
	inProgress := len(onDate) - wins - losses
	totalGuesses := lo.SumBy(onDate, func(sn Snapshot) int { return sn.GuessCount })

	winRate := 0.0
	if len(onDate) > 0 {
		winRate = Round2(float64(wins) / float64(len(onDate)) * 100)
	}
	avgGuesses := 0.0
	if wins+losses > 0 {
		avgGuesses = Round2(float64(totalGuesses) / float64(wins+losses))
	}

	return &DailyReportResponse{
		Date:                  date,
		TotalUsers:            len(lo.UniqBy(onDate, func(sn Snapshot) string { return sn.Owner })),
		TotalGames:            len(onDate),
		GamesWon:              wins,
		GamesLost:             losses,
		GamesInProgress:       inProgress,
		WinRate:               winRate,
		TotalGuesses:          totalGuesses,
		AverageGuessesPerGame: avgGuesses,
	}, nil
}

// GetUserReport groups one user's played games by date, newest date first.
func (s *Service) GetUserReport(username string) (*UserReportResponse, error) {
	snapshots, err := s.playerSnapshots(username)
	if err != nil {
		return nil, err
	}
	played := WithGuesses(snapshots)
	byDate := lo.GroupBy(played, func(sn Snapshot) string { return sn.Date })

	reports := make([]UserGameReport, 0, len(byDate))
	for date, onDate := range byDate {
		games := make([]UserGameDetail, 0, len(onDate))
		for _, sn := range onDate {
			games = append(games, UserGameDetail{
				GameID:     sn.ID,
				Word:       sn.Word,
				Won:        sn.IsWin(),
				GuessCount: sn.GuessCount,
				Date:       sn.Date,
			})
		}
		reports = append(reports, UserGameReport{
			Date:           date,
			WordsAttempted: len(onDate),
			CorrectGuesses: lo.CountBy(onDate, Snapshot.IsWin),
			TotalGuesses:   lo.SumBy(onDate, func(sn Snapshot) int { return sn.GuessCount }),
			Games:          games,
		})
	}
	sort.Slice(reports, func(i, j int) bool { return reports[i].Date > reports[j].Date })

	return &UserReportResponse{Username: username, Reports: reports}, nil
}

// GetWinReports breaks wins down by the number of guesses they took.
func (s *Service) GetWinReports() (*WinReportsResponse, error) {
	totalUsers, err := s.users.Count()
	if err != nil {
		return nil, apperrors.NewAppError(500, "error counting users", err)
	}
	sessions, err := s.sessions.ListAll()
	if err != nil {
		return nil, apperrors.NewAppError(500, "error loading games", err)
	}
	snapshots, err := s.snapshot(sessions)
	if err != nil {
		return nil, err
	}
	played := WithGuesses(snapshots)

	distribution := WinsByGuessCount(played)
	winsByCount := make([]GuessCountWinners, 0, game.InitialGuesses)
	for n := 1; n <= game.InitialGuesses; n++ {
		winsByCount = append(winsByCount, GuessCountWinners{GuessCount: n, Winners: distribution[n]})
	}

	return &WinReportsResponse{
		TotalUsers:        int(totalUsers),
		TotalWinners:      DistinctWinners(played),
		WinsByGuessCount:  winsByCount,
		OneGuessWinners:   winnersWithGuessCount(played, 1),
		TwoGuessWinners:   winnersWithGuessCount(played, 2),
		ThreeGuessWinners: winnersWithGuessCount(played, 3),
	}, nil
}

func winnersWithGuessCount(played []Snapshot, guessCount int) []WinnerDetail {
	byOwner := lo.GroupBy(played, func(sn Snapshot) string { return sn.Owner })

	details := make([]WinnerDetail, 0)
	for owner, owned := range byOwner {
		winsWithCount := lo.CountBy(owned, func(sn Snapshot) bool {
			return sn.IsWin() && sn.GuessCount == guessCount
		})
		if winsWithCount == 0 {
			continue
		}
		totalWins := lo.CountBy(owned, Snapshot.IsWin)
		details = append(details, WinnerDetail{
			Username:           owner,
			TotalGames:         len(owned),
			TotalWins:          totalWins,
			WinsWithGuessCount: winsWithCount,
			WinRate:            Round2(float64(totalWins) / float64(len(owned)) * 100),
		})
	}
	sort.Slice(details, func(i, j int) bool { return details[i].Username < details[j].Username })
	return details
}
