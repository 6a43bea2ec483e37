package service

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"

	"task-tracker/internal/apperr"
	"task-tracker/internal/auth"
	"task-tracker/internal/domain"
	"task-tracker/internal/repository"
)

// UserService owns signup, signin and account deletion.
type UserService interface {
	SignUp(ctx context.Context, username, password string) error
	SignIn(ctx context.Context, username, password string) (string, error)
	GetByUsername(ctx context.Context, username string) (*domain.User, error)
	DeleteUser(ctx context.Context, user *domain.User) error
}

type userService struct {
	users  repository.UserRepository
	tokens *auth.TokenService
	logger *logrus.Logger
}

func NewUserService(users repository.UserRepository, tokens *auth.TokenService, logger *logrus.Logger) UserService {
	return &userService{
		users:  users,
		tokens: tokens,
		logger: logger,
	}
}

func (s *userService) SignUp(ctx context.Context, username, password string) error {
	username = strings.TrimSpace(username)
	password = strings.TrimSpace(password)

	if len(username) < 4 {
		return apperr.Validation("username must be at least 4 characters")
	}
	if len(username) > 20 {
		return apperr.Validation("username must be at most 20 characters")
	}
	if len(password) < 8 {
		return apperr.Validation("password must be at least 8 characters")
	}
	if len(password) > 32 {
		return apperr.Validation("password must be at most 32 characters")
	}

	salt, err := generateSalt()
	if err != nil {
		return fmt.Errorf("generate salt: %w", err)
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password+salt), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}

	user := &domain.User{
		ID:           uuid.NewString(),
		Username:     username,
		PasswordHash: string(hash),
		Salt:         salt,
	}

	if err := s.users.Create(ctx, user); err != nil {
		return err
	}

	s.logger.Debugf("registered user %s", username)
	return nil
}

func (s *userService) SignIn(ctx context.Context, username, password string) (string, error) {
	username = strings.TrimSpace(username)
	password = strings.TrimSpace(password)
	if username == "" || password == "" {
		return "", apperr.Unauthorized("Invalid credentials")
	}

	user, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		if apperr.IsKind(err, apperr.KindNotFound) {
			return "", apperr.Unauthorized("Invalid credentials")
		}
		return "", err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password+user.Salt)); err != nil {
		return "", apperr.Unauthorized("Invalid credentials")
	}

	token, err := s.tokens.Issue(user.Username)
	if err != nil {
		return "", err
	}

	s.logger.Debugf("issued token for user %s", username)
	return token, nil
}

func (s *userService) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	user, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	return sanitizeUser(user), nil
}

func (s *userService) DeleteUser(ctx context.Context, user *domain.User) error {
	if err := s.users.Delete(ctx, user.ID); err != nil {
		return err
	}
	s.logger.Debugf("deleted user with id: %s", user.ID)
	return nil
}

func generateSalt() (string, error) {
	buf := make([]byte, 16)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}

func sanitizeUser(user *domain.User) *domain.User {
	if user == nil {
		return nil
	}
	return &domain.User{
		ID:        user.ID,
		Username:  user.Username,
		CreatedAt: user.CreatedAt,
		UpdatedAt: user.UpdatedAt,
	}
}
