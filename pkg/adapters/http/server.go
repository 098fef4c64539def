// Package http exposes the AromaTone backend over HTTP: the AI proxy routes,
// wizard sessions with a server-sent event stream, recipe suggestions,
// platform connections and ambience lookups.
package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/mughesh03/aromatone/internal/logging"
	"github.com/mughesh03/aromatone/pkg/oauth"
	"github.com/mughesh03/aromatone/pkg/ports"
	"github.com/mughesh03/aromatone/pkg/proxy"
	"github.com/mughesh03/aromatone/pkg/recipe"
	"github.com/mughesh03/aromatone/pkg/session"
)

// SessionHeader carries the session a request acts for.
const SessionHeader = "X-Session-ID"

// sessionCookie remembers the session across the OAuth provider redirect.
const sessionCookie = "aromatone_session"

// Server holds the collaborators behind the routes.
type Server struct {
	Engine   ports.WizardEngine
	Sessions *session.Manager
	Streams  *StreamManager

	forwarder *proxy.Forwarder
	generator recipe.Generator
	tracker   *recipe.Tracker
	oauth     *oauth.Client
	creds     *oauth.CredentialStore
	metrics   http.Handler
	observe   EventObserver
	logger    *slog.Logger
	version   string
}

// Option configures a Server.
type Option func(*Server)

// WithForwarder mounts the AI proxy routes.
func WithForwarder(f *proxy.Forwarder) Option {
	return func(s *Server) {
		s.forwarder = f
	}
}

// WithGenerator sets the recipe generator. Defaults to the mock catalogue.
func WithGenerator(g recipe.Generator) Option {
	return func(s *Server) {
		s.generator = g
	}
}

// WithOAuth mounts the platform connection routes.
func WithOAuth(client *oauth.Client, creds *oauth.CredentialStore) Option {
	return func(s *Server) {
		s.oauth = client
		s.creds = creds
	}
}

// WithMetrics mounts h on /metrics.
func WithMetrics(h http.Handler) Option {
	return func(s *Server) {
		s.metrics = h
	}
}

// EventObserver is told the variant, event type and outcome of every
// dispatched event.
type EventObserver func(variant, event, outcome string)

// WithEventObserver sets the dispatch observer.
func WithEventObserver(o EventObserver) Option {
	return func(s *Server) {
		s.observe = o
	}
}

// WithLogger sets the request logger.
func WithLogger(l *slog.Logger) Option {
	return func(s *Server) {
		s.logger = l
	}
}

// WithVersion sets the version reported by /info.
func WithVersion(v string) Option {
	return func(s *Server) {
		s.version = v
	}
}

// NewServer creates a server over the engine and session manager.
func NewServer(engine ports.WizardEngine, sessions *session.Manager, opts ...Option) *Server {
	s := &Server{
		Engine:    engine,
		Sessions:  sessions,
		Streams:   NewStreamManager(),
		generator: recipe.MockGenerator{},
		tracker:   recipe.NewTracker(),
		logger:    logging.NewNop(),
		version:   "dev",
	}
	for _, opt := range opts {
		opt(s)
	}
	s.Streams.logger = s.logger
	return s
}

// NewHandler creates the HTTP handler for the engine and session manager.
func NewHandler(engine ports.WizardEngine, sessions *session.Manager, opts ...Option) http.Handler {
	return NewServer(engine, sessions, opts...).Handler()
}

// Handler builds the router.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()

	r.Get("/health", s.GetHealth)
	r.Get("/info", s.GetInfo)
	if s.metrics != nil {
		r.Handle("/metrics", s.metrics)
	}

	r.Route("/api", func(r chi.Router) {
		r.Post("/chat/completions", s.proxyHandler(proxy.PathChatCompletions))
		r.Post("/txt2speech", s.proxyHandler(proxy.PathTextToSpeech))

		r.Get("/wizards", s.ListWizards)
		r.Get("/wizards/{variant}", s.GetWizard)
		r.Post("/wizards/{variant}/sessions", s.CreateSession)

		r.Get("/sessions/{id}", s.GetSession)
		r.Delete("/sessions/{id}", s.DeleteSession)
		r.Post("/sessions/{id}/events", s.DispatchEvent)
		r.Get("/sessions/{id}/stream", s.SubscribeEvents)

		r.Post("/recipes/generate", s.GenerateRecipes)
		r.Get("/ambience", s.GetAmbience)

		r.Get("/platforms", s.ListPlatforms)
		if s.oauth != nil {
			r.Get("/platforms/{platform}/profile", s.GetProfile)
			r.Get("/platforms/{platform}/playlists", s.GetPlaylists)
		}
	})

	if s.oauth != nil {
		r.Get("/auth/{platform}/authorize", s.Authorize)
		r.Get("/auth/callback/{platform}", s.Callback)
	}

	return enableCORS(r)
}

// proxyHandler relays path upstream. Without a forwarder the route still
// exists and answers with the generic proxy failure.
func (s *Server) proxyHandler(path string) http.HandlerFunc {
	if s.forwarder != nil {
		return s.forwarder.Handler(path)
	}
	return func(w http.ResponseWriter, r *http.Request) {
		s.logger.WarnContext(r.Context(), "proxy request without upstream", "path", path)
		proxy.WriteFailure(w)
	}
}

func enableCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization, "+SessionHeader)
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// GetHealth handles GET /health.
func (s *Server) GetHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// GetInfo handles GET /info.
func (s *Server) GetInfo(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"app":      "aromatone",
		"version":  strings.TrimSpace(s.version),
		"wizards":  s.Engine.Registry().Variants(),
		"proxy":    s.forwarder != nil,
		"oauth":    s.oauth != nil,
		"sessions": s.Sessions != nil,
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// sessionKey resolves the session a request acts for: the header first, then
// the session_id query parameter, then the cookie set by Authorize.
func sessionKey(r *http.Request) string {
	if id := strings.TrimSpace(r.Header.Get(SessionHeader)); id != "" {
		return id
	}
	if id := strings.TrimSpace(r.URL.Query().Get("session_id")); id != "" {
		return id
	}
	if c, err := r.Cookie(sessionCookie); err == nil {
		return c.Value
	}
	return ""
}
