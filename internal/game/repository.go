package game

import (
	"errors"

	"github.com/wordrush/WordRush/pkg/db"
	"gorm.io/gorm"
)

// ErrVersionConflict is returned when an optimistic-version save lost the
// race against a concurrent update of the same session.
var ErrVersionConflict = errors.New("session was modified concurrently")

type SessionRepository interface {
	Create(s *Session) error
	Get(id string) (*Session, error)
	// SaveWithGuess persists the mutated session and appends the new guess
	// in one transaction. The session row is updated only when its version
	// still matches, so two racing submissions cannot both apply.
	SaveWithGuess(s *Session, g *Guess) error
	ListByOwner(owner string) ([]Session, error)
	ListAll() ([]Session, error)
	CountStartedOn(owner, date string) (int, error)
}

type GuessRepository interface {
	ListBySession(sessionID string) ([]Guess, error)
	CountBySession(sessionID string) (int, error)
}

type GormSessionRepository struct{}

func NewGormSessionRepository() *GormSessionRepository {
	return &GormSessionRepository{}
}

func (r *GormSessionRepository) Create(s *Session) error {
	return db.DB.Create(s).Error
}

func (r *GormSessionRepository) Get(id string) (*Session, error) {
	var s Session
	result := db.DB.Preload("Word").First(&s, "id = ?", id)
	if errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if result.Error != nil {
		return nil, result.Error
	}
	return &s, nil
}

func (r *GormSessionRepository) SaveWithGuess(s *Session, g *Guess) error {
	return db.DB.Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&Session{}).
			Where("id = ? AND version = ?", s.ID, s.Version).
			Updates(map[string]interface{}{
				"word_id":           s.WordID,
				"target_bound":      s.TargetBound,
				"remaining_guesses": s.RemainingGuesses,
				"won":               s.Won,
				"version":           s.Version + 1,
			})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrVersionConflict
		}
		if err := tx.Create(g).Error; err != nil {
			return err
		}
		s.Version++
		return nil
	})
}

func (r *GormSessionRepository) ListByOwner(owner string) ([]Session, error) {
	var sessions []Session
	err := db.DB.Preload("Word").
		Where("owner = ?", owner).
		Order("date_played DESC, created_at DESC").
		Find(&sessions).Error
	if err != nil {
		return nil, err
	}
	return sessions, nil
}

func (r *GormSessionRepository) ListAll() ([]Session, error) {
	var sessions []Session
	err := db.DB.Preload("Word").
		Order("date_played DESC, created_at DESC").
		Find(&sessions).Error
	if err != nil {
		return nil, err
	}
	return sessions, nil
}

func (r *GormSessionRepository) CountStartedOn(owner, date string) (int, error) {
	var count int64
	err := db.DB.Model(&Session{}).
		Where("owner = ? AND date_played = ?", owner, date).
		Count(&count).Error
	if err != nil {
		return 0, err
	}
	return int(count), nil
}

type GormGuessRepository struct{}

func NewGormGuessRepository() *GormGuessRepository {
	return &GormGuessRepository{}
}

func (r *GormGuessRepository) ListBySession(sessionID string) ([]Guess, error) {
	var guesses []Guess
	err := db.DB.Where("session_id = ?", sessionID).
		Order("guess_number").
		Find(&guesses).Error
	if err != nil {
		return nil, err
	}
	return guesses, nil
}

func (r *GormGuessRepository) CountBySession(sessionID string) (int, error) {
	var count int64
	err := db.DB.Model(&Guess{}).
		Where("session_id = ?", sessionID).
		Count(&count).Error
	if err != nil {
		return 0, err
	}
	return int(count), nil
}
