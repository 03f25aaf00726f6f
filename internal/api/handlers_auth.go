package api

import (
	"net/http"

	"github.com/rs/zerolog/log"
)

func (a *API) handleRegister(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := decodeJSON(r, &req); err != nil {
		respondBadRequest(w, err.Error())
		return
	}

	user, err := a.users.Register(req.Email, req.Password)
	if err != nil {
		respondError(w, err)
		return
	}

	log.Info().Str("user_id", user.ID.String()).Str("email", user.Email).Msg("user registered")

	respondJSON(w, http.StatusOK, map[string]any{
		"user_id": user.ID,
		"email":   user.Email,
		"message": "User registered successfully",
	})
}

func (a *API) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := decodeJSON(r, &req); err != nil {
		respondBadRequest(w, err.Error())
		return
	}

	user, err := a.users.Authenticate(req.Email, req.Password)
	if err != nil {
		log.Warn().Str("email", req.Email).Msg("failed login attempt")
		respondError(w, err)
		return
	}

	token, _, err := a.tokens.Issue(user)
	if err != nil {
		log.Error().Err(err).Msg("issue token")
		respondError(w, err)
		return
	}

	log.Info().Str("user_id", user.ID.String()).Str("email", user.Email).Msg("user authenticated")

	respondJSON(w, http.StatusOK, map[string]any{
		"token":      token,
		"expires_in": int(a.tokens.TTL().Seconds()),
	})
}
