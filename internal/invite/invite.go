// Package invite manages time-bounded game invitations.
package invite

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"blackjackd/internal/apperrors"
)

// Sentinel errors returned by the invitation manager.
var (
	ErrNotFound   = apperrors.New(apperrors.CodeInvitationNotFound, "invitation not found")
	ErrNotPending = apperrors.New(apperrors.CodeInvitationNotPending, "invitation is no longer pending")
)

// Status represents the lifecycle status of an invitation. Pending is the
// only non-terminal status.
type Status int

const (
	// StatusPending indicates the invitation awaits a response.
	StatusPending Status = iota
	// StatusAccepted indicates the invitee joined the game.
	StatusAccepted
	// StatusDeclined indicates the invitee rejected the invitation.
	StatusDeclined
	// StatusExpired indicates the invitation lapsed before a response.
	StatusExpired
)

// Label returns the string label for a status.
func (s Status) Label() string {
	switch s {
	case StatusPending:
		return "PENDING"
	case StatusAccepted:
		return "ACCEPTED"
	case StatusDeclined:
		return "DECLINED"
	case StatusExpired:
		return "EXPIRED"
	default:
		return "UNSPECIFIED"
	}
}

// StatusFromLabel converts a status label back to a Status value.
func StatusFromLabel(label string) (Status, bool) {
	switch strings.ToUpper(strings.TrimSpace(label)) {
	case "PENDING":
		return StatusPending, true
	case "ACCEPTED":
		return StatusAccepted, true
	case "DECLINED":
		return StatusDeclined, true
	case "EXPIRED":
		return StatusExpired, true
	default:
		return StatusPending, false
	}
}

// Invitation is a time-bounded offer for an identity to join a game.
// Accepted and Declined are terminal; Pending flips to Expired lazily once
// the current time passes ExpiresAt.
type Invitation struct {
	ID           uuid.UUID `json:"id"`
	GameID       uuid.UUID `json:"game_id"`
	InviterEmail string    `json:"inviter_email"`
	InviteeEmail string    `json:"invitee_email"`
	CreatedAt    time.Time `json:"created_at"`
	ExpiresAt    time.Time `json:"expires_at"`
	Status       Status    `json:"-"`
}
