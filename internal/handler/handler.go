// Package handler wires the HTTP surface: the JSON login/logout
// endpoints, the dashboard and login pages, and the store
// healthcheck.
package handler

import (
	"io"
	"log/slog"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/redisboard/redisboard/internal/auth"
	"github.com/redisboard/redisboard/internal/cookie"
	"github.com/redisboard/redisboard/internal/dashboard"
	"github.com/redisboard/redisboard/internal/environment"
	"github.com/redisboard/redisboard/internal/session"
	"github.com/redisboard/redisboard/internal/storage"
)

// Handler composes the application's HTTP endpoints.
type Handler struct {
	creds      *auth.Credentials
	sessions   *session.Manager
	loader     *dashboard.Loader
	store      storage.Store
	cookies    *cookie.Manager
	cookieName string
	logger     *slog.Logger
	env        environment.Environment
	reqTimeout time.Duration
}

// Option configures the Handler.
type Option func(*Handler)

// WithLogger supplies a logger for handler diagnostics.
func WithLogger(l *slog.Logger) Option {
	return func(h *Handler) {
		if l != nil {
			h.logger = l
		}
	}
}

// WithEnvironment sets the runtime environment. Outside production
// cookies lose the Secure flag and error responses carry detail.
func WithEnvironment(env environment.Environment) Option {
	return func(h *Handler) { h.env = env }
}

// WithCookieName overrides the session cookie name.
func WithCookieName(name string) Option {
	if name == "" {
		panic("WithCookieName: name cannot be empty")
	}
	return func(h *Handler) { h.cookieName = name }
}

// WithRequestTimeout bounds each request, and with it every store
// call made on its behalf.
func WithRequestTimeout(d time.Duration) Option {
	if d <= 0 {
		panic("WithRequestTimeout: duration must be > 0")
	}
	return func(h *Handler) { h.reqTimeout = d }
}

// New creates a Handler over the given collaborators.
func New(store storage.Store, creds *auth.Credentials, sessions *session.Manager, loader *dashboard.Loader, opts ...Option) *Handler {
	h := &Handler{
		creds:      creds,
		sessions:   sessions,
		loader:     loader,
		store:      store,
		cookieName: session.DefaultConfig().CookieName,
		logger:     slog.New(slog.NewTextHandler(io.Discard, nil)),
		env:        environment.Development,
		reqTimeout: 15 * time.Second,
	}
	for _, opt := range opts {
		opt(h)
	}

	h.cookies = cookie.New(cookie.WithSecure(!environment.IsDevelopment(h.env)))
	return h
}

// Router assembles the chi router for the whole application.
func (h *Handler) Router() chi.Router {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(h.reqTimeout))
	r.Use(requestLogger(h.logger))

	r.Post("/api/login", h.Login)
	r.Post("/api/logout", h.Logout)
	r.Get("/api/health", h.Health)

	r.Get("/login", h.LoginPage)
	r.With(auth.RequireSession(h.sessions, h.cookieName)).Get("/", h.Dashboard)

	return r
}
