package game

import (
	"strconv"
	"sync"

	"github.com/google/uuid"

	"blackjackd/internal/apperrors"
)

// RegistryConfig bounds session creation.
type RegistryConfig struct {
	MinPlayers int
	MaxPlayers int
}

const (
	defaultMinPlayers = 1
	defaultMaxPlayers = 10
)

// Registry is the concurrency-safe collection of active sessions. The
// registry lock only guards the session table; each session carries its own
// lock, so two different games never block each other.
type Registry struct {
	mu       sync.RWMutex
	sessions map[uuid.UUID]*Session
	config   RegistryConfig
}

// NewRegistry creates an empty registry with defaults applied to the
// provided configuration.
func NewRegistry(cfg RegistryConfig) *Registry {
	if cfg.MinPlayers <= 0 {
		cfg.MinPlayers = defaultMinPlayers
	}
	if cfg.MaxPlayers <= 0 {
		cfg.MaxPlayers = defaultMaxPlayers
	}
	return &Registry{
		sessions: make(map[uuid.UUID]*Session),
		config:   cfg,
	}
}

// Config returns the participant bounds the registry enforces.
func (r *Registry) Config() RegistryConfig {
	return r.config
}

// Create allocates a new session with a fresh shuffled deck and turn order
// equal to emails in the given order.
func (r *Registry) Create(creatorID uuid.UUID, emails []string) (*Session, error) {
	if len(emails) < r.config.MinPlayers || len(emails) > r.config.MaxPlayers {
		return nil, apperrors.WithDetails(apperrors.CodeInvalidPlayerCount, "invalid number of players", map[string]string{
			"min":      strconv.Itoa(r.config.MinPlayers),
			"max":      strconv.Itoa(r.config.MaxPlayers),
			"provided": strconv.Itoa(len(emails)),
		})
	}
	seen := make(map[string]struct{}, len(emails))
	for _, email := range emails {
		if _, dup := seen[email]; dup {
			return nil, ErrDuplicatePlayer
		}
		seen[email] = struct{}{}
	}

	s := newSession(creatorID, emails)

	r.mu.Lock()
	r.sessions[s.ID] = s
	r.mu.Unlock()

	return s, nil
}

// Get looks up a session by id.
func (r *Registry) Get(id uuid.UUID) (*Session, error) {
	r.mu.RLock()
	s, ok := r.sessions[id]
	r.mu.RUnlock()
	if !ok {
		return nil, ErrGameNotFound
	}
	return s, nil
}

// AddParticipant appends email to the session's turn order. This is the only
// form of post-creation turn-order mutation and is how accepted invitations
// join a game.
func (r *Registry) AddParticipant(id uuid.UUID, email string) error {
	s, err := r.Get(id)
	if err != nil {
		return err
	}
	return s.AddPlayer(email)
}

// Remove drops a session from the registry.
func (r *Registry) Remove(id uuid.UUID) {
	r.mu.Lock()
	delete(r.sessions, id)
	r.mu.Unlock()
}

// Len reports the number of registered sessions.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.sessions)
}
