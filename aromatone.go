package aromatone

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/mughesh03/aromatone/internal/adapters/file"
	"github.com/mughesh03/aromatone/internal/adapters/redis"
	"github.com/mughesh03/aromatone/internal/config"
	"github.com/mughesh03/aromatone/internal/logging"
	"github.com/mughesh03/aromatone/internal/metrics"
	httpadapter "github.com/mughesh03/aromatone/pkg/adapters/http"
	"github.com/mughesh03/aromatone/pkg/adapters/memory"
	"github.com/mughesh03/aromatone/pkg/domain"
	"github.com/mughesh03/aromatone/pkg/flows"
	"github.com/mughesh03/aromatone/pkg/novita"
	"github.com/mughesh03/aromatone/pkg/oauth"
	"github.com/mughesh03/aromatone/pkg/persistence/middleware"
	"github.com/mughesh03/aromatone/pkg/ports"
	"github.com/mughesh03/aromatone/pkg/proxy"
	"github.com/mughesh03/aromatone/pkg/recipe"
	"github.com/mughesh03/aromatone/pkg/session"
	"github.com/mughesh03/aromatone/pkg/wizard"
)

// lockPrefix namespaces session locks apart from session keys.
const lockPrefix = "aromatone:"

// App holds the wired components of one AromaTone process.
type App struct {
	Config    *config.Config
	Logger    *slog.Logger
	Registry  *wizard.Registry
	Engine    *wizard.Engine
	Sessions  *session.Manager
	Metrics   *metrics.Metrics
	Forwarder *proxy.Forwarder
	Generator recipe.Generator
	OAuth     *oauth.Client
	Creds     *oauth.CredentialStore

	store   ports.SessionStore
	closers []func() error
}

// Option configures an App.
type Option func(*App)

// WithLogger sets the application logger.
func WithLogger(l *slog.Logger) Option {
	return func(a *App) {
		a.Logger = l
	}
}

// WithStore replaces the store chosen by SESSION_BACKEND.
func WithStore(store ports.SessionStore) Option {
	return func(a *App) {
		a.store = store
	}
}

// New wires the application described by cfg. Extra wizard definitions are
// loaded from cfg.WizardDir when set.
func New(cfg *config.Config, opts ...Option) (*App, error) {
	a := &App{
		Config:   cfg,
		Logger:   logging.NewNop(),
		Registry: wizard.NewRegistry(),
		Metrics:  metrics.New(),
		Creds:    oauth.NewCredentialStore(),
	}
	for _, opt := range opts {
		opt(a)
	}

	if err := flows.Register(a.Registry); err != nil {
		return nil, fmt.Errorf("register built-in wizards: %w", err)
	}
	if cfg.WizardDir != "" {
		defs, err := wizard.LoadDir(cfg.WizardDir)
		if err != nil {
			return nil, fmt.Errorf("load wizards: %w", err)
		}
		for _, def := range defs {
			if err := a.Registry.Register(def); err != nil {
				return nil, err
			}
			a.Logger.Info("wizard loaded", "variant", def.Variant, "dir", cfg.WizardDir)
		}
	}

	a.Engine = wizard.NewEngine(a.Registry,
		wizard.WithHooks(a.Metrics.Hooks()),
		wizard.WithCompleter(wizard.LogCompleter{Logger: a.Logger}),
		wizard.WithLogger(a.Logger),
	)

	sessions, err := a.openSessions()
	if err != nil {
		a.Close()
		return nil, err
	}
	a.Sessions = sessions

	// An empty key is still forwarded so the upstream's auth error reaches
	// the client.
	if cfg.NovitaAPIKey == "" {
		a.Logger.Warn("VITE_NOVITA_API_KEY is not set; proxied calls will be rejected upstream")
	}
	a.Forwarder = proxy.New(cfg.NovitaBaseURL, cfg.NovitaAPIKey,
		proxy.WithObserver(a.Metrics.ObserveProxy),
		proxy.WithLogger(a.Logger),
	)

	switch cfg.RecipeGenerator {
	case config.GeneratorLLM:
		if cfg.NovitaAPIKey == "" {
			a.Close()
			return nil, errors.New("RECIPE_GENERATOR=llm requires VITE_NOVITA_API_KEY")
		}
		a.Generator = recipe.NewLLMGenerator(novita.New(a.Forwarder, cfg.NovitaModel))
	default:
		a.Generator = recipe.MockGenerator{}
	}

	a.OAuth = oauth.NewClient(cfg.PublicOrigin,
		oauth.WithProvider(domain.Spotify, cfg.SpotifyClientID, cfg.SpotifyClientSecret),
		oauth.WithProvider(domain.YouTube, cfg.YouTubeClientID, cfg.YouTubeClientSecret),
		oauth.WithLogger(a.Logger),
	)
	return a, nil
}

func (a *App) openSessions() (*session.Manager, error) {
	cfg := a.Config
	store := a.store
	mgrOpts := []session.Option{session.WithLogger(a.Logger)}
	switch {
	case store != nil:
	case cfg.SessionBackend == config.BackendFile:
		store = file.New(cfg.SessionDir)
	case cfg.SessionBackend == config.BackendRedis:
		rs := redis.New(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB, redis.WithTTL(cfg.SessionTTL))
		a.closers = append(a.closers, rs.Close)
		store = rs
		mgrOpts = append(mgrOpts, session.WithLocker(redis.NewLocker(rs.Client(), lockPrefix)))
	default:
		store = memory.NewStore()
	}

	active, fallback, err := cfg.EncryptionKeys()
	if err != nil {
		return nil, err
	}
	if active != nil {
		enc, err := middleware.NewEncryptionMiddleware(middleware.EncryptionConfig{ActiveKey: active, FallbackKeys: fallback})
		if err != nil {
			return nil, err
		}
		store = middleware.Chain(store, enc)
	}
	a.Logger.Info("session store ready", "backend", cfg.SessionBackend, "encrypted", active != nil)
	return session.NewManager(store, mgrOpts...), nil
}

// Handler builds the HTTP API.
func (a *App) Handler() http.Handler {
	opts := []httpadapter.Option{
		httpadapter.WithGenerator(a.Generator),
		httpadapter.WithOAuth(a.OAuth, a.Creds),
		httpadapter.WithMetrics(a.Metrics.Handler()),
		httpadapter.WithEventObserver(a.Metrics.ObserveEvent),
		httpadapter.WithLogger(a.Logger),
		httpadapter.WithVersion(strings.TrimSpace(Version)),
		httpadapter.WithForwarder(a.Forwarder),
	}
	return httpadapter.NewHandler(a.Engine, a.Sessions, opts...)
}

// Close releases backend connections.
func (a *App) Close() error {
	var errs []error
	for _, c := range a.closers {
		errs = append(errs, c())
	}
	a.closers = nil
	return errors.Join(errs...)
}
