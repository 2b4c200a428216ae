package stats

import (
	"math"
	"sort"
	"time"

	"github.com/samber/lo"
)

// Snapshot is a read-only view of one session plus its recorded guess count.
// Every aggregation in this package is a pure function of a snapshot slice.
type Snapshot struct {
	ID               string
	Owner            string
	Date             string
	Word             string
	Won              *bool
	GuessCount       int
	RemainingGuesses int
	CreatedAt        time.Time
}

func (s Snapshot) Completed() bool {
	return s.Won != nil
}

func (s Snapshot) IsWin() bool {
	return s.Won != nil && *s.Won
}

func (s Snapshot) IsLoss() bool {
	return s.Won != nil && !*s.Won
}

// WithGuesses drops sessions that never recorded a guess. Zero-guess
// sessions are abandoned slots and are excluded from every statistic.
func WithGuesses(snapshots []Snapshot) []Snapshot {
	return lo.Filter(snapshots, func(s Snapshot, _ int) bool {
		return s.GuessCount > 0
	})
}

func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// WinRate is wins over total as a percentage, 0 for an empty slice.
func WinRate(snapshots []Snapshot) float64 {
	if len(snapshots) == 0 {
		return 0
	}
	wins := lo.CountBy(snapshots, Snapshot.IsWin)
	return Round2(float64(wins) / float64(len(snapshots)) * 100)
}

// CurrentStreak counts consecutive wins from the most recent session
// backwards, stopping at the first non-win.
func CurrentStreak(snapshots []Snapshot) int {
	ordered := sortedByDate(snapshots, false)
	streak := 0
	for _, s := range ordered {
		if !s.IsWin() {
			break
		}
		streak++
	}
	return streak
}

// LongestStreak scans sessions oldest first, resetting on any non-win.
func LongestStreak(snapshots []Snapshot) int {
	ordered := sortedByDate(snapshots, true)
	longest, current := 0, 0
	for _, s := range ordered {
		if s.IsWin() {
			current++
			if current > longest {
				longest = current
			}
		} else {
			current = 0
		}
	}
	return longest
}

// AverageGuessesPerWin is the mean guess count over won sessions, 0 when
// there are no wins.
func AverageGuessesPerWin(snapshots []Snapshot) float64 {
	wins := lo.Filter(snapshots, func(s Snapshot, _ int) bool { return s.IsWin() })
	if len(wins) == 0 {
		return 0
	}
	total := lo.SumBy(wins, func(s Snapshot) int { return s.GuessCount })
	return Round2(float64(total) / float64(len(wins)))
}

// WinsByGuessCount groups won sessions by the number of guesses it took,
// keyed 1..5.
func WinsByGuessCount(snapshots []Snapshot) map[int]int {
	wins := lo.Filter(snapshots, func(s Snapshot, _ int) bool { return s.IsWin() })
	return lo.CountValuesBy(wins, func(s Snapshot) int { return s.GuessCount })
}

// DistinctWinners counts users with at least one win.
func DistinctWinners(snapshots []Snapshot) int {
	wins := lo.Filter(snapshots, func(s Snapshot, _ int) bool { return s.IsWin() })
	return len(lo.UniqBy(wins, func(s Snapshot) string { return s.Owner }))
}

func sortedByDate(snapshots []Snapshot, ascending bool) []Snapshot {
	ordered := make([]Snapshot, len(snapshots))
	copy(ordered, snapshots)
	sort.SliceStable(ordered, func(i, j int) bool {
		if ascending {
			return ordered[i].Date < ordered[j].Date
		}
		return ordered[i].Date > ordered[j].Date
	})
	return ordered
}
