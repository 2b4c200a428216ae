package word

import (
	"regexp"
	"strings"

	"github.com/wordrush/WordRush/internal/apperrors"
)

var lettersOnly = regexp.MustCompile(`^[A-Z]+$`)

type Service struct {
	store Store
}

func NewService(store Store) *Service {
	return &Service{store: store}
}

// AddWord validates and stores a new 5-letter word. Admin-only at the API
// layer; the service only cares about the word itself.
func (s *Service) AddWord(text string) (*Word, error) {
	normalized := strings.ToUpper(strings.TrimSpace(text))
	if normalized == "" {
		return nil, apperrors.NewInvalidInput("word cannot be empty")
	}
	if len(normalized) != 5 {
		return nil, apperrors.NewInvalidInput("word must be exactly 5 letters long")
	}
	if !lettersOnly.MatchString(normalized) {
		return nil, apperrors.NewInvalidInput("word must contain only letters")
	}

	exists, err := s.store.Exists(normalized)
	if err != nil {
		return nil, apperrors.NewAppError(500, "error checking word existence", err)
	}
	if exists {
		return nil, apperrors.NewRuleViolation("word '" + normalized + "' already exists")
	}

	w, err := s.store.Add(normalized)
	if err != nil {
		return nil, apperrors.NewAppError(500, "error saving word", err)
	}
	return w, nil
}

func (s *Service) CountWords() (int64, error) {
	return s.store.Count()
}
