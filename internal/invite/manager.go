package invite

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
)

const defaultTTL = 10 * time.Minute

// GameJoiner is the slice of the session registry the manager needs: the
// ability to append an accepted invitee to a game's turn order.
type GameJoiner interface {
	AddParticipant(gameID uuid.UUID, email string) error
}

// Manager issues, tracks, expires, accepts, and declines invitations. A
// single lock guards the table, which also makes the accept/decline terminal
// transition atomic: exactly one caller wins a race on the same id.
type Manager struct {
	games GameJoiner
	ttl   time.Duration
	now   func() time.Time

	mu          sync.Mutex
	invitations map[uuid.UUID]*Invitation
}

// NewManager creates a manager with the given default TTL for invitations
// created without an explicit one.
func NewManager(games GameJoiner, ttl time.Duration) *Manager {
	if ttl <= 0 {
		ttl = defaultTTL
	}
	return &Manager{
		games:       games,
		ttl:         ttl,
		now:         time.Now,
		invitations: make(map[uuid.UUID]*Invitation),
	}
}

// Create issues a Pending invitation for invitee to join gameID. A zero ttl
// selects the manager's default.
func (m *Manager) Create(gameID uuid.UUID, inviterEmail, inviteeEmail string, ttl time.Duration) (Invitation, error) {
	if ttl <= 0 {
		ttl = m.ttl
	}
	now := m.now().UTC()
	inv := &Invitation{
		ID:           uuid.New(),
		GameID:       gameID,
		InviterEmail: inviterEmail,
		InviteeEmail: inviteeEmail,
		CreatedAt:    now,
		ExpiresAt:    now.Add(ttl),
		Status:       StatusPending,
	}

	m.mu.Lock()
	m.invitations[inv.ID] = inv
	m.mu.Unlock()

	return *inv, nil
}

// Get returns the invitation with the given id, lazily expiring it first.
func (m *Manager) Get(id uuid.UUID) (Invitation, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	inv, ok := m.invitations[id]
	if !ok {
		return Invitation{}, ErrNotFound
	}
	m.expireLocked(inv)
	return *inv, nil
}

// Accept marks the invitation accepted and adds the invitee to the game.
// If the game rejects the join (already finished, duplicate player) the
// invitation is left Pending and the game's error is returned.
func (m *Manager) Accept(id uuid.UUID) (Invitation, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	inv, ok := m.invitations[id]
	if !ok {
		return Invitation{}, ErrNotFound
	}
	m.expireLocked(inv)
	if inv.Status != StatusPending {
		return Invitation{}, ErrNotPending
	}
	if err := m.games.AddParticipant(inv.GameID, inv.InviteeEmail); err != nil {
		return Invitation{}, err
	}
	inv.Status = StatusAccepted
	return *inv, nil
}

// Decline marks the invitation declined.
func (m *Manager) Decline(id uuid.UUID) (Invitation, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	inv, ok := m.invitations[id]
	if !ok {
		return Invitation{}, ErrNotFound
	}
	m.expireLocked(inv)
	if inv.Status != StatusPending {
		return Invitation{}, ErrNotPending
	}
	inv.Status = StatusDeclined
	return *inv, nil
}

// PendingFor returns all currently-Pending invitations addressed to email,
// after lazy expiry.
func (m *Manager) PendingFor(email string) []Invitation {
	m.mu.Lock()
	defer m.mu.Unlock()

	var pending []Invitation
	for _, inv := range m.invitations {
		m.expireLocked(inv)
		if inv.Status == StatusPending && inv.InviteeEmail == email {
			pending = append(pending, *inv)
		}
	}
	return pending
}

// Sweep flips every lapsed Pending invitation to Expired and reports how
// many it touched. Purely an optimization: lazy expiry on read already
// guarantees correct behavior.
func (m *Manager) Sweep() int {
	m.mu.Lock()
	defer m.mu.Unlock()

	swept := 0
	for _, inv := range m.invitations {
		if inv.Status == StatusPending && m.now().After(inv.ExpiresAt) {
			inv.Status = StatusExpired
			swept++
		}
	}
	return swept
}

// StartSweeper runs Sweep on the given interval until ctx is canceled.
func (m *Manager) StartSweeper(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		return
	}
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				m.Sweep()
			}
		}
	}()
}

// expireLocked applies read-triggered expiry to a single invitation.
func (m *Manager) expireLocked(inv *Invitation) {
	if inv.Status == StatusPending && m.now().After(inv.ExpiresAt) {
		inv.Status = StatusExpired
	}
}
