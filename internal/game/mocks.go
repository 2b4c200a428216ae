package game

import (
	"github.com/stretchr/testify/mock"
	"github.com/wordrush/WordRush/internal/word"
)

type MockSessionRepository struct {
	mock.Mock
}

func (m *MockSessionRepository) Create(s *Session) error {
	args := m.Called(s)
	return args.Error(0)
}

func (m *MockSessionRepository) Get(id string) (*Session, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Session), args.Error(1)
}

func (m *MockSessionRepository) SaveWithGuess(s *Session, g *Guess) error {
	args := m.Called(s, g)
	return args.Error(0)
}

func (m *MockSessionRepository) ListByOwner(owner string) ([]Session, error) {
	args := m.Called(owner)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]Session), args.Error(1)
}

func (m *MockSessionRepository) ListAll() ([]Session, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]Session), args.Error(1)
}

func (m *MockSessionRepository) CountStartedOn(owner, date string) (int, error) {
	args := m.Called(owner, date)
	return args.Int(0), args.Error(1)
}

type MockGuessRepository struct {
	mock.Mock
}

func (m *MockGuessRepository) ListBySession(sessionID string) ([]Guess, error) {
	args := m.Called(sessionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]Guess), args.Error(1)
}

func (m *MockGuessRepository) CountBySession(sessionID string) (int, error) {
	args := m.Called(sessionID)
	return args.Int(0), args.Error(1)
}

type MockWordStore struct {
	mock.Mock
}

func (m *MockWordStore) Random() (*word.Word, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*word.Word), args.Error(1)
}

func (m *MockWordStore) Exists(text string) (bool, error) {
	args := m.Called(text)
	return args.Bool(0), args.Error(1)
}

func (m *MockWordStore) Add(text string) (*word.Word, error) {
	args := m.Called(text)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*word.Word), args.Error(1)
}

func (m *MockWordStore) Count() (int64, error) {
	args := m.Called()
	return args.Get(0).(int64), args.Error(1)
}

type MockDailyLimiter struct {
	mock.Mock
}

func (m *MockDailyLimiter) CanStart(username, date string) (bool, error) {
	args := m.Called(username, date)
	return args.Bool(0), args.Error(1)
}

func (m *MockDailyLimiter) GamesPlayedOn(username, date string) (int, error) {
	args := m.Called(username, date)
	return args.Int(0), args.Error(1)
}

func (m *MockDailyLimiter) Reserve(username, date string) (bool, error) {
	args := m.Called(username, date)
	return args.Bool(0), args.Error(1)
}

func (m *MockDailyLimiter) Release(username, date string) error {
	args := m.Called(username, date)
	return args.Error(0)
}
