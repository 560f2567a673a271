package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/pribylovaa/go-tracks-api/internal/http/handlers"
	"github.com/pribylovaa/go-tracks-api/internal/http/middleware"
	"github.com/pribylovaa/go-tracks-api/internal/metrics"
	"github.com/pribylovaa/go-tracks-api/internal/pagination"
	"github.com/pribylovaa/go-tracks-api/internal/service"
	"github.com/pribylovaa/go-tracks-api/internal/token"
)

// Options — параметры сборки HTTP-роутера.
type Options struct {
	Logger     *slog.Logger
	Timeout    time.Duration
	BasePath   string // например, "/api"; если пустой — роуты регистрируются на корне.
	Metrics    *metrics.Metrics
	Pagination pagination.Defaults
}

// NewRouter собирает http.Handler с chi и подключёнными middleware/роутами.
func NewRouter(svc *service.Service, opts Options) http.Handler {
	root := chi.NewRouter()

	// Middleware (внешний -> внутренний).
	root.Use(
		middleware.Recover(),            // безопасно ловим паники
		middleware.RequestID(),          // формируем/прокидываем X-Request-Id (до логирования!)
		middleware.Logging(opts.Logger), // кладём request-scoped логгер в контекст и логируем
		middleware.Metrics(opts.Metrics),
	)
	if opts.Timeout > 0 {
		root.Use(middleware.Timeout(opts.Timeout)) // общий дедлайн запроса
	}

	h := handlers.New(svc, opts.Pagination)
	gates := authGates{
		access:  middleware.AuthGate(svc, token.Access, opts.Metrics),
		refresh: middleware.AuthGate(svc, token.Refresh, opts.Metrics),
		any:     middleware.AuthGate(svc, token.Any, opts.Metrics),
	}

	if opts.BasePath != "" && opts.BasePath != "/" {
		sub := chi.NewRouter()
		registerRoutes(sub, h, gates)
		root.Mount(opts.BasePath, sub)
		return root
	}

	registerRoutes(root, h, gates)
	return root
}

type authGates struct {
	access  middleware.Middleware
	refresh middleware.Middleware
	any     middleware.Middleware
}

// registerRoutes — единая точка регистрации всех REST-эндпойнтов.
func registerRoutes(r chi.Router, h *handlers.Handlers, g authGates) {
	r.Get("/health", h.Health)

	// auth
	r.Post("/register", h.Register)
	r.Post("/login", h.Login)
	r.With(g.refresh).Post("/refresh", h.Refresh)
	r.With(g.any).Post("/logout", h.Logout)

	// users
	r.With(g.access).Get("/users", h.ListUsers)
	r.With(g.access).Get("/users/{id}/tracks", h.UserTracks)

	// tracks
	r.Get("/tracks", h.ListTracks)
	r.Get("/tracks/search", h.SearchTracks)
	r.Get("/tracks/{id}", h.GetTrack)
	r.Get("/tracks/{id}/links", h.TrackLinks("id"))
	r.Group(func(r chi.Router) {
		r.Use(g.access)
		r.Post("/tracks", h.CreateTrack)
		r.Put("/tracks/{id}", h.UpdateTrack)
		r.Patch("/tracks/{id}", h.UpdateTrack)
		r.Delete("/tracks/{id}", h.DeleteTrack)

		r.Post("/tracks/{id}/links", h.CreateTrackLink)
		r.Put("/tracks/{id}/links/{link_id}", h.UpdateTrackLink)
		r.Patch("/tracks/{id}/links/{link_id}", h.UpdateTrackLink)
		r.Delete("/tracks/{id}/links/{link_id}", h.DeleteTrackLink)
	})

	// track links
	r.Get("/track_links", h.ListLinks)
	r.Get("/track_links/search", h.SearchLinks)
	// здесь {id} — идентификатор трека: имя параметра совпадает с PUT/DELETE на том же уровне дерева.
	r.Get("/track_links/{id}", h.TrackLinks("id"))
	r.Group(func(r chi.Router) {
		r.Use(g.access)
		r.Post("/track_links", h.CreateLink)
		r.Put("/track_links/{id}", h.UpdateLink)
		r.Patch("/track_links/{id}", h.UpdateLink)
		r.Delete("/track_links/{id}", h.DeleteLink)
	})
}
