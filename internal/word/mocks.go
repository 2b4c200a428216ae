package word

import (
	"github.com/stretchr/testify/mock"
)

type MockStore struct {
	mock.Mock
}

func (m *MockStore) Random() (*Word, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Word), args.Error(1)
}

func (m *MockStore) Exists(text string) (bool, error) {
	args := m.Called(text)
	return args.Bool(0), args.Error(1)
}

func (m *MockStore) Add(text string) (*Word, error) {
	args := m.Called(text)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Word), args.Error(1)
}

func (m *MockStore) Count() (int64, error) {
	args := m.Called()
	return args.Get(0).(int64), args.Error(1)
}
