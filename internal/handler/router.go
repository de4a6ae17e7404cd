/*
Package handler provides the HTTP handlers and routing setup for the chat service.

This file defines the main Router, applying middleware like logging, CORS, and
IP-based rate limiting before delegating requests to the page and API handlers.
*/
package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/cors"
	"golang.org/x/time/rate"

	"github.com/jazzyjasmine/multipage-group-chat-application/internal/pkg/auth"
	"github.com/jazzyjasmine/multipage-group-chat-application/internal/pkg/limiter"
	"github.com/jazzyjasmine/multipage-group-chat-application/internal/pkg/logx"
	"github.com/jazzyjasmine/multipage-group-chat-application/internal/pkg/resp"
)

const (
	// RegisterRate and RegisterBurst bound how fast one IP can mint new auth keys.
	RegisterRate  = 0.5
	RegisterBurst = 5

	// CreateRate and CreateBurst bound how fast one IP can create rooms.
	CreateRate  = 0.05
	CreateBurst = 2
)

// Router sets up the main HTTP routing table (chi.Router) for the application.
// It initializes IP-based rate limiters, configures CORS, and applies global and
// per-route middleware.
func Router(deps *AppDeps) http.Handler {
	registerLimiter := limiter.NewIPRateLimiter(rate.Limit(RegisterRate), RegisterBurst)
	createLimiter := limiter.NewIPRateLimiter(rate.Limit(CreateRate), CreateBurst)

	r := chi.NewRouter()

	corsAllowedOrigins := []string{}
	if deps.Config.Environment == "development" {
		corsAllowedOrigins = []string{"*"}
	} else if len(deps.Config.AllowedOrigins) > 0 {
		corsAllowedOrigins = deps.Config.AllowedOrigins
	}

	c := cors.New(cors.Options{
		AllowedOrigins:   corsAllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders:   []string{},
		AllowCredentials: true,
		MaxAge:           300,
	})
	r.Use(c.Handler)

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(logx.RequestLogger())
	r.Use(middleware.Recoverer)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		data := map[string]string{
			"status":  "ok",
			"service": "group-chat",
		}
		resp.RespondSuccess(w, r, data)
	})

	// Pages
	r.Get("/", HandleIndexPage(deps))
	r.Get("/username", HandleRegisterPage(deps))
	r.Get("/chat/{id}", HandleChatPage(deps))

	fileServer := http.StripPrefix("/static/", http.FileServer(http.Dir(deps.Config.StaticDir)))
	r.Get("/static/*", fileServer.ServeHTTP)

	// API
	r.Route("/api", func(api chi.Router) {
		api.Use(auth.CredentialExtractor())

		api.With(registerLimiter.Middleware).Post("/auth/register", HandleRegister(deps))

		api.With(createLimiter.Middleware).Post("/chat/create", HandleCreateRoom(deps))

		api.Route("/chat/{id}", func(room chi.Router) {
			room.Get("/messages", HandleFetchMessages(deps))
			room.Post("/messages", HandlePostMessage(deps))
			room.Post("/auth", HandleAuthenticate(deps))
		})
	})

	return r
}
