package stats

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func win() *bool {
	v := true
	return &v
}

func loss() *bool {
	v := false
	return &v
}

func TestWithGuesses_DropsAbandonedSessions(t *testing.T) {
	snapshots := []Snapshot{
		{ID: "a", GuessCount: 3, Won: win()},
		{ID: "b", GuessCount: 0},
		{ID: "c", GuessCount: 5, Won: loss()},
	}
	played := WithGuesses(snapshots)
	assert.Len(t, played, 2)
	for _, s := range played {
		assert.NotEqual(t, "b", s.ID)
	}
}

func TestWinRate(t *testing.T) {
	assert.Equal(t, 0.0, WinRate(nil))

	snapshots := []Snapshot{
		{Won: win(), GuessCount: 2},
		{Won: win(), GuessCount: 3},
		{Won: loss(), GuessCount: 5},
	}
	assert.InDelta(t, 66.67, WinRate(snapshots), 0.001)
}

// Wins on days 1-3, loss on day 4: the most recent game is a loss, so the
// current streak is 0 while the longest streak stays 3.
func TestStreaks(t *testing.T) {
	snapshots := []Snapshot{
		{Date: "2026-08-01", Won: win(), GuessCount: 2},
		{Date: "2026-08-02", Won: win(), GuessCount: 3},
		{Date: "2026-08-03", Won: win(), GuessCount: 1},
		{Date: "2026-08-04", Won: loss(), GuessCount: 5},
	}
	assert.Equal(t, 0, CurrentStreak(snapshots))
	assert.Equal(t, 3, LongestStreak(snapshots))
}

func TestCurrentStreak_CountsLeadingWins(t *testing.T) {
	snapshots := []Snapshot{
		{Date: "2026-08-01", Won: loss(), GuessCount: 5},
		{Date: "2026-08-02", Won: win(), GuessCount: 2},
		{Date: "2026-08-03", Won: win(), GuessCount: 4},
	}
	assert.Equal(t, 2, CurrentStreak(snapshots))
}

func TestLongestStreak_ResetsOnLoss(t *testing.T) {
	snapshots := []Snapshot{
		{Date: "2026-08-01", Won: win(), GuessCount: 1},
		{Date: "2026-08-02", Won: loss(), GuessCount: 5},
		{Date: "2026-08-03", Won: win(), GuessCount: 2},
		{Date: "2026-08-04", Won: win(), GuessCount: 2},
	}
	assert.Equal(t, 2, LongestStreak(snapshots))
}

func TestAverageGuessesPerWin(t *testing.T) {
	assert.Equal(t, 0.0, AverageGuessesPerWin([]Snapshot{{Won: loss(), GuessCount: 5}}))

	snapshots := []Snapshot{
		{Won: win(), GuessCount: 2},
		{Won: win(), GuessCount: 5},
		{Won: loss(), GuessCount: 5},
	}
	assert.InDelta(t, 3.5, AverageGuessesPerWin(snapshots), 0.001)
}

func TestWinsByGuessCount(t *testing.T) {
	snapshots := []Snapshot{
		{Won: win(), GuessCount: 1},
		{Won: win(), GuessCount: 3},
		{Won: win(), GuessCount: 3},
		{Won: loss(), GuessCount: 5},
	}
	distribution := WinsByGuessCount(snapshots)
	assert.Equal(t, 1, distribution[1])
	assert.Equal(t, 2, distribution[3])
	assert.Equal(t, 0, distribution[5])
}

func TestDistinctWinners(t *testing.T) {
	snapshots := []Snapshot{
		{Owner: "alice", Won: win(), GuessCount: 2},
		{Owner: "alice", Won: win(), GuessCount: 3},
		{Owner: "bob", Won: win(), GuessCount: 1},
		{Owner: "carol", Won: loss(), GuessCount: 5},
	}
	assert.Equal(t, 2, DistinctWinners(snapshots))
}

func TestRound2(t *testing.T) {
	assert.Equal(t, 66.67, Round2(66.666666))
	assert.Equal(t, 0.0, Round2(0))
}
