package user

import (
	"errors"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/wordrush/WordRush/internal/apperrors"
)

type UserService struct {
	repo UserRepository
}

func NewUserService(repo UserRepository) *UserService {
	return &UserService{repo: repo}
}

func (u *UserService) Register(creds Credentials) (*AuthResponse, error) {
	username := strings.TrimSpace(creds.Username)
	if len(username) < 3 {
		return nil, apperrors.NewInvalidInput("username must be at least 3 characters")
	}
	if len(creds.Password) < 6 {
		return nil, apperrors.NewInvalidInput("password must be at least 6 characters")
	}

	created, err := u.repo.CreateUser(username, creds.Password, RolePlayer)
	if err != nil {
		return nil, apperrors.NewRuleViolation("username is already taken")
	}

	token, errJWT := GenerateJWT(created.Username, created.Role)
	if errJWT != nil {
		return nil, apperrors.NewAppError(500, "error creating jwt token", errJWT)
	}
	return &AuthResponse{Token: token, Username: created.Username, Role: created.Role}, nil
}

func (u *UserService) Login(creds Credentials) (*AuthResponse, error) {
	validated, err := u.repo.ValidateUser(creds.Username, creds.Password)
	if err != nil {
		return nil, apperrors.NewForbidden("invalid credentials")
	}
	token, errJWT := GenerateJWT(validated.Username, validated.Role)
	if errJWT != nil {
		return nil, apperrors.NewAppError(500, "error creating jwt token", errJWT)
	}
	return &AuthResponse{Token: token, Username: validated.Username, Role: validated.Role}, nil
}

// EnsureAdmin creates the bootstrap admin account when it does not exist yet.
func (u *UserService) EnsureAdmin(username, password string) error {
	if username == "" || password == "" {
		return nil
	}
	existing, err := u.repo.GetByUsername(username)
	if err != nil {
		return err
	}
	if existing != nil {
		return nil
	}
	if _, err := u.repo.CreateUser(username, password, RoleAdmin); err != nil {
		return errors.New("error creating admin user: " + err.Error())
	}
	log.Info().Str("username", username).Msg("created admin account")
	return nil
}
