package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"skillswap_server/models"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// tokenTTL is how long an issued bearer token stays valid
const tokenTTL = 7 * 24 * time.Hour

// AuthService registers users and issues bearer tokens
type AuthService struct {
	Users  UserStore
	Secret []byte
	Now    func() time.Time
}

// RegisterInput carries a new account request
type RegisterInput struct {
	Name         string
	Email        string
	Password     string
	SkillsKnown  []string
	SkillsWanted []string
}

// AuthResult is a signed token plus the authenticated user
type AuthResult struct {
	Token string
	User  models.User
}

func (s *AuthService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

// Register creates a new user with a bcrypt-hashed credential and returns a
// signed token. The email must not already be registered.
func (s *AuthService) Register(ctx context.Context, input RegisterInput) (AuthResult, error) {
	name := strings.TrimSpace(input.Name)
	email := strings.ToLower(strings.TrimSpace(input.Email))
	if name == "" || email == "" || len(input.Password) < 6 {
		return AuthResult{}, fmt.Errorf("name, email and a password of at least 6 characters are required: %w", ErrValidation)
	}

	if _, err := s.Users.GetByEmail(ctx, email); err == nil {
		return AuthResult{}, fmt.Errorf("user already exists: %w", ErrConflict)
	} else if !errors.Is(err, ErrNotFound) {
		return AuthResult{}, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return AuthResult{}, fmt.Errorf("failed to hash password: %w", err)
	}

	user := models.User{
		UserID:       uuid.NewString(),
		Name:         name,
		Email:        email,
		PasswordHash: string(hash),
		SkillsKnown:  input.SkillsKnown,
		SkillsWanted: input.SkillsWanted,
		CreatedAt:    s.now().UTC().Format(time.RFC3339),
	}
	if err := s.Users.Create(ctx, user); err != nil {
		return AuthResult{}, err
	}

	token, err := s.issueToken(user.UserID)
	if err != nil {
		return AuthResult{}, err
	}
	return AuthResult{Token: token, User: user}, nil
}

// Login verifies the credential and returns a signed token. Unknown email
// and wrong password produce the same error.
func (s *AuthService) Login(ctx context.Context, email, password string) (AuthResult, error) {
	user, err := s.Users.GetByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return AuthResult{}, ErrInvalidCredentials
		}
		return AuthResult{}, err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return AuthResult{}, ErrInvalidCredentials
	}

	token, err := s.issueToken(user.UserID)
	if err != nil {
		return AuthResult{}, err
	}
	return AuthResult{Token: token, User: *user}, nil
}

func (s *AuthService) issueToken(userID string) (string, error) {
	now := s.now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"userId": userID,
		"iat":    now.Unix(),
		"exp":    now.Add(tokenTTL).Unix(),
	})

	signed, err := token.SignedString(s.Secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}
