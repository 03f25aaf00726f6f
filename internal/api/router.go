package api

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Routes constructs the chi router containing all API endpoints.
func (a *API) Routes() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(60 * time.Second))

	allowed := a.config.AllowedOrigins
	if len(allowed) == 0 {
		allowed = []string{"*"}
	}
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   allowed,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           int((10 * time.Minute).Seconds()),
	}))

	if a.config.GlobalRateLimit > 0 {
		r.Use(httprate.Limit(a.config.GlobalRateLimit, time.Minute))
	}

	r.Get("/health", a.handleHealth)
	r.Get("/health/ready", a.handleReady)
	r.Method("GET", "/metrics", promhttp.Handler())

	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/auth/register", a.handleRegister)
		r.Post("/auth/login", a.handleLogin)

		r.Group(func(r chi.Router) {
			r.Use(a.requireAuth)

			r.Post("/games", a.handleCreateGame)
			r.Route("/games/{gameID}", func(r chi.Router) {
				r.Get("/", a.handleGameState)
				r.Post("/draw", a.handleDraw)
				r.Put("/ace", a.handleSetAce)
				r.Post("/stand", a.handleStand)
				r.Post("/finish", a.handleFinish)
				r.Get("/results", a.handleResults)
				r.Post("/invitations", a.handleCreateInvitation)
			})

			r.Get("/invitations/pending", a.handlePendingInvitations)
			r.Post("/invitations/{invitationID}/accept", a.handleAcceptInvitation)
			r.Post("/invitations/{invitationID}/decline", a.handleDeclineInvitation)
		})
	})

	return r
}
