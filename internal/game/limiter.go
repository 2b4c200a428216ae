package game

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/wordrush/WordRush/pkg/db"
)

// DailyLimiter enforces the per-user per-day session-start quota. Reserve is
// the atomic check-and-claim used by StartGame; CanStart and GamesPlayedOn
// are read-only so callers can report remaining quota without claiming one.
type DailyLimiter interface {
	CanStart(username, date string) (bool, error)
	GamesPlayedOn(username, date string) (int, error)
	Reserve(username, date string) (bool, error)
	Release(username, date string) error
}

// RedisDailyLimiter keeps one counter per (user, date). INCR makes the
// count-then-compare atomic, so two racing starts cannot both claim the
// third slot. Keys expire after two days; the quota only matters for the
// current calendar date.
type RedisDailyLimiter struct{}

func NewRedisDailyLimiter() *RedisDailyLimiter {
	return &RedisDailyLimiter{}
}

var limiterCtx = context.Background()

func dailyKey(username, date string) string {
	return fmt.Sprintf("daily_games:%s:%s", username, date)
}

func (l *RedisDailyLimiter) Reserve(username, date string) (bool, error) {
	key := dailyKey(username, date)
	n, err := db.Rdb.Incr(limiterCtx, key).Result()
	if err != nil {
		return false, err
	}
	if n == 1 {
		db.Rdb.Expire(limiterCtx, key, 48*time.Hour)
	}
	if n > DailyGameLimit {
		db.Rdb.Decr(limiterCtx, key)
		return false, nil
	}
	return true, nil
}

// Release gives a reserved slot back when session creation fails after the
// quota was claimed.
func (l *RedisDailyLimiter) Release(username, date string) error {
	return db.Rdb.Decr(limiterCtx, dailyKey(username, date)).Err()
}

func (l *RedisDailyLimiter) GamesPlayedOn(username, date string) (int, error) {
	n, err := db.Rdb.Get(limiterCtx, dailyKey(username, date)).Int()
	if err == redis.Nil {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}
	return n, nil
}

func (l *RedisDailyLimiter) CanStart(username, date string) (bool, error) {
	played, err := l.GamesPlayedOn(username, date)
	if err != nil {
		return false, err
	}
	return played < DailyGameLimit, nil
}
