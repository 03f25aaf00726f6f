package api

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"blackjackd/internal/apperrors"
	"blackjackd/internal/auth"
	"blackjackd/internal/invite"
	"blackjackd/pkg/bus"
)

// Sentinel errors for invitation access control.
var (
	errNotCreator = apperrors.New(apperrors.CodeNotCreator, "only the game creator can send invitations")
	errNotInvitee = apperrors.New(apperrors.CodeNotInvitee, "this invitation is not for you")
)

// invitationView is the client-facing shape of a pending invitation.
type invitationView struct {
	ID           uuid.UUID `json:"id"`
	GameID       uuid.UUID `json:"game_id"`
	InviterEmail string    `json:"inviter_email"`
	ExpiresAt    time.Time `json:"expires_at"`
}

func (a *API) handleCreateInvitation(w http.ResponseWriter, r *http.Request) {
	claims, ok := claimsFrom(r)
	if !ok {
		respondError(w, auth.ErrUnauthorized)
		return
	}
	session, ok := a.lookupGame(w, r)
	if !ok {
		return
	}

	creatorID, err := uuid.Parse(claims.UserID)
	if err != nil || !session.IsCreator(creatorID) {
		respondError(w, errNotCreator)
		return
	}

	var req struct {
		InviteeEmail   string `json:"invitee_email"`
		TimeoutSeconds int    `json:"timeout_seconds,omitempty"`
	}
	if err := decodeJSON(r, &req); err != nil {
		respondBadRequest(w, err.Error())
		return
	}
	if req.InviteeEmail == "" {
		respondBadRequest(w, "invitee_email is required")
		return
	}

	ttl := time.Duration(req.TimeoutSeconds) * time.Second
	if ttl <= 0 {
		ttl = a.config.InviteTTL
	}

	inv, err := a.invites.Create(session.ID, claims.Email, req.InviteeEmail, ttl)
	if err != nil {
		respondError(w, err)
		return
	}

	invitationsTotal.WithLabelValues(invite.StatusPending.Label()).Inc()
	log.Info().
		Str("invitation_id", inv.ID.String()).
		Str("game_id", session.ID.String()).
		Str("invitee", inv.InviteeEmail).
		Msg("invitation created")

	respondJSON(w, http.StatusOK, map[string]any{
		"invitation_id": inv.ID,
		"invitee_email": inv.InviteeEmail,
		"expires_at":    inv.ExpiresAt,
		"message":       "Invitation sent successfully",
	})
}

func (a *API) handlePendingInvitations(w http.ResponseWriter, r *http.Request) {
	claims, ok := claimsFrom(r)
	if !ok {
		respondError(w, auth.ErrUnauthorized)
		return
	}

	pending := a.invites.PendingFor(claims.Email)
	views := make([]invitationView, 0, len(pending))
	for _, inv := range pending {
		views = append(views, invitationView{
			ID:           inv.ID,
			GameID:       inv.GameID,
			InviterEmail: inv.InviterEmail,
			ExpiresAt:    inv.ExpiresAt,
		})
	}

	respondJSON(w, http.StatusOK, map[string]any{"invitations": views})
}

func (a *API) handleAcceptInvitation(w http.ResponseWriter, r *http.Request) {
	claims, invitationID, ok := a.invitationRequest(w, r)
	if !ok {
		return
	}

	inv, err := a.invites.Accept(invitationID)
	if err != nil {
		respondError(w, err)
		return
	}

	invitationsTotal.WithLabelValues(invite.StatusAccepted.Label()).Inc()
	log.Info().
		Str("invitation_id", inv.ID.String()).
		Str("game_id", inv.GameID.String()).
		Str("email", claims.Email).
		Msg("invitation accepted, player added to game")

	_ = a.bus.Publish(r.Context(), bus.SubjectInvitationAccepted, map[string]any{
		"invitation_id": inv.ID,
		"game_id":       inv.GameID,
		"invitee":       inv.InviteeEmail,
	})

	respondJSON(w, http.StatusOK, map[string]any{
		"game_id": inv.GameID,
		"message": "Invitation accepted, joined game successfully",
	})
}

func (a *API) handleDeclineInvitation(w http.ResponseWriter, r *http.Request) {
	claims, invitationID, ok := a.invitationRequest(w, r)
	if !ok {
		return
	}

	inv, err := a.invites.Decline(invitationID)
	if err != nil {
		respondError(w, err)
		return
	}

	invitationsTotal.WithLabelValues(invite.StatusDeclined.Label()).Inc()
	log.Info().
		Str("invitation_id", inv.ID.String()).
		Str("email", claims.Email).
		Msg("invitation declined")

	respondJSON(w, http.StatusOK, map[string]any{"message": "Invitation declined"})
}

// invitationRequest parses the invitation id and verifies the caller is the
// invitee before any terminal transition is attempted.
func (a *API) invitationRequest(w http.ResponseWriter, r *http.Request) (auth.Claims, uuid.UUID, bool) {
	claims, ok := claimsFrom(r)
	if !ok {
		respondError(w, auth.ErrUnauthorized)
		return auth.Claims{}, uuid.Nil, false
	}

	invitationID, err := uuid.Parse(chi.URLParam(r, "invitationID"))
	if err != nil {
		respondBadRequest(w, "valid invitation id is required")
		return auth.Claims{}, uuid.Nil, false
	}

	inv, err := a.invites.Get(invitationID)
	if err != nil {
		respondError(w, err)
		return auth.Claims{}, uuid.Nil, false
	}
	if inv.InviteeEmail != claims.Email {
		respondError(w, errNotInvitee)
		return auth.Claims{}, uuid.Nil, false
	}
	return claims, invitationID, true
}
