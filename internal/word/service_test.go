package word

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/wordrush/WordRush/internal/apperrors"
)

func assertKind(t *testing.T, err error, kind apperrors.Kind) {
	t.Helper()
	var appErr *apperrors.AppError
	assert.ErrorAs(t, err, &appErr)
	assert.Equal(t, kind, appErr.Kind)
}

func TestWordService_AddWord_NormalizesAndStores(t *testing.T) {
	store := &MockStore{}
	svc := NewService(store)

	store.On("Exists", "CRANE").Return(false, nil)
	store.On("Add", "CRANE").Return(&Word{ID: 1, Text: "CRANE"}, nil)

	w, err := svc.AddWord("  crane ")
	assert.NoError(t, err)
	assert.Equal(t, "CRANE", w.Text)
	store.AssertExpectations(t)
}

func TestWordService_AddWord_Validation(t *testing.T) {
	store := &MockStore{}
	svc := NewService(store)

	for _, bad := range []string{"", "   ", "CAT", "GUESSES", "CR4NE"} {
		_, err := svc.AddWord(bad)
		assertKind(t, err, apperrors.InvalidInput)
	}
	store.AssertNotCalled(t, "Add")
}

func TestWordService_AddWord_Duplicate(t *testing.T) {
	store := &MockStore{}
	svc := NewService(store)

	store.On("Exists", "CRANE").Return(true, nil)

	_, err := svc.AddWord("CRANE")
	assertKind(t, err, apperrors.RuleViolation)
	store.AssertNotCalled(t, "Add")
}

func TestSeed_SkipsNonEmptyPool(t *testing.T) {
	store := &MockStore{}
	store.On("Count").Return(int64(12), nil)

	err := Seed(store)
	assert.NoError(t, err)
	store.AssertNotCalled(t, "Add")
}

func TestSeed_FillsEmptyPool(t *testing.T) {
	store := &MockStore{}
	store.On("Count").Return(int64(0), nil)
	for _, text := range defaultWords {
		store.On("Add", text).Return(&Word{Text: text}, nil).Once()
	}

	err := Seed(store)
	assert.NoError(t, err)
	store.AssertExpectations(t)
}
