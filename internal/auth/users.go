// Package auth provides the in-memory user store and JWT issuance and
// verification for the HTTP layer. The game core never sees tokens, only
// already-verified identities.
package auth

import (
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"blackjackd/internal/apperrors"
)

// Sentinel errors returned by the user store.
var (
	ErrUserExists         = apperrors.New(apperrors.CodeUserExists, "a user with this email already exists")
	ErrInvalidEmail       = apperrors.New(apperrors.CodeInvalidEmail, "email is invalid")
	ErrInvalidPassword    = apperrors.New(apperrors.CodeInvalidPassword, "password must be at least 8 characters")
	ErrInvalidCredentials = apperrors.New(apperrors.CodeInvalidCredentials, "invalid email or password")
)

const minPasswordLen = 8

// User is a registered account. The password hash never leaves the store.
type User struct {
	ID        uuid.UUID
	Email     string
	CreatedAt time.Time

	passwordHash []byte
}

// UserStore holds registered users for the process lifetime.
type UserStore struct {
	mu      sync.RWMutex
	byEmail map[string]*User
	byID    map[uuid.UUID]*User
}

// NewUserStore creates an empty store.
func NewUserStore() *UserStore {
	return &UserStore{
		byEmail: make(map[string]*User),
		byID:    make(map[uuid.UUID]*User),
	}
}

// Register creates a user with a bcrypt-hashed password.
func (s *UserStore) Register(email, password string) (User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || !strings.Contains(email, "@") {
		return User{}, ErrInvalidEmail
	}
	if len(password) < minPasswordLen {
		return User{}, ErrInvalidPassword
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return User{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.byEmail[email]; exists {
		return User{}, ErrUserExists
	}

	user := &User{
		ID:           uuid.New(),
		Email:        email,
		CreatedAt:    time.Now().UTC(),
		passwordHash: hash,
	}
	s.byEmail[email] = user
	s.byID[user.ID] = user
	return *user, nil
}

// Authenticate verifies email and password, returning the matching user.
func (s *UserStore) Authenticate(email, password string) (User, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	s.mu.RLock()
	user, ok := s.byEmail[email]
	s.mu.RUnlock()
	if !ok {
		return User{}, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword(user.passwordHash, []byte(password)); err != nil {
		return User{}, ErrInvalidCredentials
	}
	return *user, nil
}

// Get looks up a user by id.
func (s *UserStore) Get(id uuid.UUID) (User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	user, ok := s.byID[id]
	if !ok {
		return User{}, false
	}
	return *user, true
}
