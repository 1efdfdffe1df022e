package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/mrios/tripbook/internal/domain"
	"github.com/mrios/tripbook/internal/repo"
)

// minPasswordLength is the minimum accepted password length at registration.
const minPasswordLength = 8

// AuthService implements account registration and credential verification.
// Session issuance lives in the auth package; this service only answers
// "is this email/password pair a registered account".
type AuthService struct {
	users repo.UserRepo
}

// NewAuthService constructs an AuthService backed by the provided UserRepo.
func NewAuthService(users repo.UserRepo) *AuthService {
	return &AuthService{users: users}
}

// Register creates a new account with a bcrypt-hashed password.
// Returns domain.ErrValidation for malformed input or an already-registered
// email. The plaintext password is never stored.
func (s *AuthService) Register(ctx context.Context, email, password string) (domain.User, error) {
	email = strings.TrimSpace(email)
	if email == "" || !strings.Contains(email, "@") {
		return domain.User{}, fmt.Errorf("%w: a valid email is required", domain.ErrValidation)
	}
	if len(password) < minPasswordLength {
		return domain.User{}, fmt.Errorf("%w: password must be at least %d characters", domain.ErrValidation, minPasswordLength)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return domain.User{}, fmt.Errorf("service.AuthService.Register: hash password: %w", err)
	}

	user, err := s.users.Create(ctx, domain.User{Email: email, PasswordHash: string(hash)})
	if err != nil {
		return domain.User{}, fmt.Errorf("service.AuthService.Register: %w", err)
	}
	return user, nil
}

// VerifyCredentials checks an email/password pair against the stored hash and
// returns the verified identity. An unknown email and a wrong password both
// return domain.ErrInvalidCredentials — callers cannot distinguish the two.
func (s *AuthService) VerifyCredentials(ctx context.Context, email, password string) (string, error) {
	user, err := s.users.GetByEmail(ctx, strings.TrimSpace(email))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return "", fmt.Errorf("service.AuthService.VerifyCredentials: %w", domain.ErrInvalidCredentials)
		}
		return "", fmt.Errorf("service.AuthService.VerifyCredentials: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", fmt.Errorf("service.AuthService.VerifyCredentials: %w", domain.ErrInvalidCredentials)
	}
	return user.Email, nil
}
