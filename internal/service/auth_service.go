package service

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"

	"notesapi/internal/models"
	"notesapi/internal/repository"

	"golang.org/x/crypto/bcrypt"
)

// tokenKeyBytes is the entropy of a bearer key; rendered as 40 hex chars.
const tokenKeyBytes = 20

// Domain errors for auth flows.
var (
	ErrInvalidCredentials = errors.New("the user does not exist or the password is invalid")
	ErrTokenMissing       = errors.New("the user does not have a token")
	ErrUsernameTaken      = errors.New("a user with that username already exists")
	ErrInvalidToken       = errors.New("invalid token")
)

// AuthService handles user auth logic: signup, credential login and
// bearer-key resolution.
type AuthService struct {
	users  repository.Users
	tokens repository.Tokens
}

func NewAuthService(users repository.Users, tokens repository.Tokens) *AuthService {
	return &AuthService{users: users, tokens: tokens}
}

// SignUp hashes the password, creates the user and issues its token.
// The token is created exactly once here and never rotates.
func (s *AuthService) SignUp(p SignupParams) error {
	hash, err := hashPassword(p.Password)
	if err != nil {
		return fmt.Errorf("invalid password: %w", err)
	}

	existing, err := s.users.GetByUsername(p.Username)
	if err != nil {
		return err
	}
	if existing != nil {
		return ErrUsernameTaken
	}

	id, err := s.users.Create(models.User{
		Username:     p.Username,
		Email:        p.Email,
		PasswordHash: hash,
		FirstName:    p.FirstName,
		LastName:     p.LastName,
	})
	if err != nil {
		return err
	}

	key, err := newTokenKey()
	if err != nil {
		return err
	}
	return s.tokens.Create(id, key)
}

// Login validates credentials and returns the stored token key. The caller
// supplies either username+password or email+password.
func (s *AuthService) Login(username, email, password string) (string, error) {
	var (
		u   *models.User
		err error
	)
	switch {
	case username != "":
		u, err = s.users.GetByUsername(username)
	case email != "":
		u, err = s.users.GetByEmail(email)
	}
	if err != nil {
		return "", err
	}
	if u == nil {
		return "", ErrInvalidCredentials
	}

	if err := verifyPassword(u.PasswordHash, password); err != nil {
		return "", ErrInvalidCredentials
	}

	t, err := s.tokens.GetByUserID(u.ID)
	if err != nil {
		return "", err
	}
	if t == nil {
		// Signup always issues a token, so this is a defensive check.
		return "", ErrTokenMissing
	}
	return t.Key, nil
}

// Authenticate resolves a bearer key to a user ID.
func (s *AuthService) Authenticate(tokenKey string) (int, error) {
	if tokenKey == "" {
		return 0, ErrInvalidToken
	}
	t, err := s.tokens.GetByKey(tokenKey)
	if err != nil {
		return 0, err
	}
	if t == nil {
		return 0, ErrInvalidToken
	}
	return t.UserID, nil
}

// helper: hash password safely
func hashPassword(password string) (string, error) {
	if strings.TrimSpace(password) == "" {
		return "", errors.New("password is empty")
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(hash), nil
}

// helper: verify password against hash
func verifyPassword(hash, password string) error {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
}

// helper: mint an opaque bearer key from crypto/rand
func newTokenKey() (string, error) {
	buf := make([]byte, tokenKeyBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("generate token key: %w", err)
	}
	return hex.EncodeToString(buf), nil
}
