package api

import (
	"context"
	"net/http"
	"strings"

	"blackjackd/internal/apperrors"
	"blackjackd/internal/auth"
)

type contextKey string

const claimsKey contextKey = "claims"

// requireAuth verifies the bearer token and stashes its claims in the
// request context. Failures short-circuit with a structured 401.
func (a *API) requireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok {
			respondError(w, auth.ErrUnauthorized)
			return
		}

		claims, err := a.tokens.Verify(token)
		if err != nil {
			respondError(w, err)
			return
		}

		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), claimsKey, claims)))
	})
}

// claimsFrom retrieves the verified claims requireAuth stored.
func claimsFrom(r *http.Request) (auth.Claims, bool) {
	claims, ok := r.Context().Value(claimsKey).(auth.Claims)
	return claims, ok
}

// ErrRateLimited is surfaced when the per-(game,player) window is full.
var ErrRateLimited = apperrors.New(apperrors.CodeRateLimitExceeded, "too many requests, slow down")

// admit runs the sliding-window check for a mutating game call. It reports
// whether the request may proceed, responding for the caller when not.
func (a *API) admit(w http.ResponseWriter, key string) bool {
	if a.limiter.Allow(key, a.config.RateLimitWindow, a.config.RateLimitRequests) {
		return true
	}
	rateLimitedTotal.Inc()
	respondError(w, ErrRateLimited)
	return false
}
