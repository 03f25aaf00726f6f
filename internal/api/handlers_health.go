package api

import (
	"net/http"
	"time"

	"blackjackd/internal/version"
)

func (a *API) handleHealth(w http.ResponseWriter, _ *http.Request) {
	respondJSON(w, http.StatusOK, map[string]any{
		"status":         "healthy",
		"uptime_seconds": int(time.Since(a.started).Seconds()),
		"version":        version.Version,
	})
}

func (a *API) handleReady(w http.ResponseWriter, _ *http.Request) {
	checks := map[string]string{
		"config":   "loaded",
		"registry": "ok",
	}
	if a.bus != nil {
		checks["bus"] = "connected"
	} else {
		checks["bus"] = "disabled"
	}

	respondJSON(w, http.StatusOK, map[string]any{
		"ready":  true,
		"checks": checks,
	})
}
