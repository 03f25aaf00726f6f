package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"blackjackd/internal/auth"
	"blackjackd/internal/game"
	"blackjackd/internal/ratelimit"
	"blackjackd/pkg/bus"
)

func (a *API) handleCreateGame(w http.ResponseWriter, r *http.Request) {
	claims, ok := claimsFrom(r)
	if !ok {
		respondError(w, auth.ErrUnauthorized)
		return
	}

	var req struct {
		Emails []string `json:"emails"`
	}
	if err := decodeJSON(r, &req); err != nil {
		respondBadRequest(w, err.Error())
		return
	}

	creatorID, err := uuid.Parse(claims.UserID)
	if err != nil {
		respondError(w, auth.ErrUnauthorized)
		return
	}

	session, err := a.games.Create(creatorID, req.Emails)
	if err != nil {
		respondError(w, err)
		return
	}

	gamesCreatedTotal.Inc()
	log.Info().
		Str("game_id", session.ID.String()).
		Int("player_count", len(req.Emails)).
		Msg("game created")

	_ = a.bus.Publish(r.Context(), bus.SubjectGameCreated, map[string]any{
		"game_id":      session.ID,
		"creator_id":   session.CreatorID,
		"player_count": len(req.Emails),
	})

	respondJSON(w, http.StatusOK, map[string]any{
		"game_id":      session.ID,
		"message":      "Game created successfully",
		"player_count": len(req.Emails),
	})
}

func (a *API) handleGameState(w http.ResponseWriter, r *http.Request) {
	session, ok := a.lookupGame(w, r)
	if !ok {
		return
	}
	respondJSON(w, http.StatusOK, session.State())
}

func (a *API) handleDraw(w http.ResponseWriter, r *http.Request) {
	claims, session, ok := a.playerRequest(w, r)
	if !ok {
		return
	}

	result, err := session.Draw(claims.Email)
	if err != nil {
		respondError(w, err)
		return
	}

	cardsDrawnTotal.Inc()
	respondJSON(w, http.StatusOK, result)
}

func (a *API) handleSetAce(w http.ResponseWriter, r *http.Request) {
	claims, session, ok := a.playerRequest(w, r)
	if !ok {
		return
	}

	var req struct {
		CardID   uuid.UUID `json:"card_id"`
		AsEleven bool      `json:"as_eleven"`
	}
	if err := decodeJSON(r, &req); err != nil {
		respondBadRequest(w, err.Error())
		return
	}

	result, err := session.SetAceValue(claims.Email, req.CardID, req.AsEleven)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, result)
}

func (a *API) handleStand(w http.ResponseWriter, r *http.Request) {
	claims, session, ok := a.playerRequest(w, r)
	if !ok {
		return
	}

	result, err := session.Stand(claims.Email)
	if err != nil {
		respondError(w, err)
		return
	}

	if result.GameFinished {
		a.gameFinished(r, session)
	}

	log.Info().
		Str("game_id", session.ID.String()).
		Str("email", claims.Email).
		Int("points", result.Points).
		Bool("game_finished", result.GameFinished).
		Msg("player stood")

	respondJSON(w, http.StatusOK, map[string]any{
		"points":        result.Points,
		"busted":        result.Busted,
		"message":       "Player stood successfully",
		"game_finished": result.GameFinished,
	})
}

func (a *API) handleFinish(w http.ResponseWriter, r *http.Request) {
	_, session, ok := a.playerRequest(w, r)
	if !ok {
		return
	}

	result, err := session.Finish()
	if err != nil {
		respondError(w, err)
		return
	}

	a.gameFinished(r, session)
	respondJSON(w, http.StatusOK, result)
}

func (a *API) handleResults(w http.ResponseWriter, r *http.Request) {
	session, ok := a.lookupGame(w, r)
	if !ok {
		return
	}

	result, err := session.Results()
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, result)
}

// lookupGame parses the gameID path parameter and resolves the session,
// responding on failure.
func (a *API) lookupGame(w http.ResponseWriter, r *http.Request) (*game.Session, bool) {
	gameID, err := uuid.Parse(chi.URLParam(r, "gameID"))
	if err != nil {
		respondBadRequest(w, "valid game id is required")
		return nil, false
	}
	session, err := a.games.Get(gameID)
	if err != nil {
		respondError(w, err)
		return nil, false
	}
	return session, true
}

// playerRequest resolves claims and session for a mutating game call and
// runs the per-(game,player) admission check.
func (a *API) playerRequest(w http.ResponseWriter, r *http.Request) (auth.Claims, *game.Session, bool) {
	claims, ok := claimsFrom(r)
	if !ok {
		respondError(w, auth.ErrUnauthorized)
		return auth.Claims{}, nil, false
	}
	session, ok := a.lookupGame(w, r)
	if !ok {
		return auth.Claims{}, nil, false
	}
	if !a.admit(w, ratelimit.Key(session.ID, claims.Email)) {
		return auth.Claims{}, nil, false
	}
	return claims, session, true
}

func (a *API) gameFinished(r *http.Request, session *game.Session) {
	gamesFinishedTotal.Inc()
	_ = a.bus.Publish(r.Context(), bus.SubjectGameFinished, map[string]any{
		"game_id": session.ID,
	})
}
