package word

import (
	"errors"

	"github.com/wordrush/WordRush/pkg/db"
	"gorm.io/gorm"
)

// Store supplies puzzle words. Random returns (nil, nil) when the pool is
// empty; callers decide how fatal that is.
type Store interface {
	Random() (*Word, error)
	Exists(text string) (bool, error)
	Add(text string) (*Word, error)
	Count() (int64, error)
}

type GormStore struct{}

func NewGormStore() *GormStore {
	return &GormStore{}
}

func (s *GormStore) Random() (*Word, error) {
	var w Word
	result := db.DB.Order("RANDOM()").Limit(1).First(&w)
	if errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if result.Error != nil {
		return nil, result.Error
	}
	return &w, nil
}

func (s *GormStore) Exists(text string) (bool, error) {
	var count int64
	if err := db.DB.Model(&Word{}).Where("text = ?", text).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (s *GormStore) Add(text string) (*Word, error) {
	w := Word{Text: text}
	if err := db.DB.Create(&w).Error; err != nil {
		return nil, err
	}
	return &w, nil
}

func (s *GormStore) Count() (int64, error) {
	var count int64
	if err := db.DB.Model(&Word{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
