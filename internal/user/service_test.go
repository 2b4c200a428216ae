package user

import (
	"errors"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/wordrush/WordRush/internal/apperrors"
)

// mockGenerateJWT is a helper to override GenerateJWT in tests
var mockGenerateJWT func(username string, role Role) (string, error)

func TestMain(m *testing.M) {
	// Patch GenerateJWT for all tests
	orig := GenerateJWT
	GenerateJWT = func(username string, role Role) (string, error) {
		if mockGenerateJWT != nil {
			return mockGenerateJWT(username, role)
		}
		return orig(username, role)
	}
	code := m.Run()
	GenerateJWT = orig
	os.Exit(code)
}

func TestUserService_Register(t *testing.T) {
	mockRepo := &MockUserRepository{}
	service := NewUserService(mockRepo)

	created := &User{ID: 1, Username: "alice", Role: RolePlayer}
	mockRepo.On("CreateUser", "alice", "secret1", RolePlayer).Return(created, nil)
	mockGenerateJWT = func(username string, role Role) (string, error) { return "token123", nil }

	resp, err := service.Register(Credentials{Username: "alice", Password: "secret1"})
	assert.NoError(t, err)
	assert.Equal(t, "token123", resp.Token)
	assert.Equal(t, "alice", resp.Username)
	assert.Equal(t, RolePlayer, resp.Role)
	mockRepo.AssertExpectations(t)
}

func TestUserService_Register_ShortUsername(t *testing.T) {
	mockRepo := &MockUserRepository{}
	service := NewUserService(mockRepo)

	_, err := service.Register(Credentials{Username: "ab", Password: "secret1"})
	var appErr *apperrors.AppError
	assert.ErrorAs(t, err, &appErr)
	assert.Equal(t, apperrors.InvalidInput, appErr.Kind)
	mockRepo.AssertNotCalled(t, "CreateUser")
}

func TestUserService_Register_ShortPassword(t *testing.T) {
	mockRepo := &MockUserRepository{}
	service := NewUserService(mockRepo)

	_, err := service.Register(Credentials{Username: "alice", Password: "123"})
	var appErr *apperrors.AppError
	assert.ErrorAs(t, err, &appErr)
	assert.Equal(t, apperrors.InvalidInput, appErr.Kind)
}

func TestUserService_Register_DuplicateUsername(t *testing.T) {
	mockRepo := &MockUserRepository{}
	service := NewUserService(mockRepo)

	mockRepo.On("CreateUser", "alice", "secret1", RolePlayer).Return(nil, errors.New("user already exists"))

	_, err := service.Register(Credentials{Username: "alice", Password: "secret1"})
	var appErr *apperrors.AppError
	assert.ErrorAs(t, err, &appErr)
	assert.Equal(t, apperrors.RuleViolation, appErr.Kind)
	mockRepo.AssertExpectations(t)
}

func TestUserService_Login(t *testing.T) {
	mockRepo := &MockUserRepository{}
	service := NewUserService(mockRepo)

	u := &User{ID: 2, Username: "bob", Role: RoleAdmin}
	mockRepo.On("ValidateUser", "bob", "hunter22").Return(u, nil)
	mockGenerateJWT = func(username string, role Role) (string, error) { return "tok456", nil }

	resp, err := service.Login(Credentials{Username: "bob", Password: "hunter22"})
	assert.NoError(t, err)
	assert.Equal(t, "tok456", resp.Token)
	assert.Equal(t, RoleAdmin, resp.Role)
	mockRepo.AssertExpectations(t)
}

func TestUserService_Login_InvalidCredentials(t *testing.T) {
	mockRepo := &MockUserRepository{}
	service := NewUserService(mockRepo)

	mockRepo.On("ValidateUser", "bob", "wrong").Return(nil, errors.New("record not found"))

	_, err := service.Login(Credentials{Username: "bob", Password: "wrong"})
	var appErr *apperrors.AppError
	assert.ErrorAs(t, err, &appErr)
	assert.Equal(t, apperrors.Forbidden, appErr.Kind)
}

func TestUserService_EnsureAdmin_AlreadyExists(t *testing.T) {
	mockRepo := &MockUserRepository{}
	service := NewUserService(mockRepo)

	mockRepo.On("GetByUsername", "admin").Return(&User{Username: "admin", Role: RoleAdmin}, nil)

	err := service.EnsureAdmin("admin", "changeme")
	assert.NoError(t, err)
	mockRepo.AssertNotCalled(t, "CreateUser")
}

func TestUserService_EnsureAdmin_Creates(t *testing.T) {
	mockRepo := &MockUserRepository{}
	service := NewUserService(mockRepo)

	mockRepo.On("GetByUsername", "admin").Return(nil, nil)
	mockRepo.On("CreateUser", "admin", "changeme", RoleAdmin).Return(&User{Username: "admin", Role: RoleAdmin}, nil)

	err := service.EnsureAdmin("admin", "changeme")
	assert.NoError(t, err)
	mockRepo.AssertExpectations(t)
}
