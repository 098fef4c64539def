// Package config loads the server configuration from the environment.
package config

import (
	"encoding/base64"
	"errors"
	"fmt"
	"io/fs"
	"strconv"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Session backends.
const (
	BackendMemory = "memory"
	BackendFile   = "file"
	BackendRedis  = "redis"
)

// Recipe generators.
const (
	GeneratorMock = "mock"
	GeneratorLLM  = "llm"
)

// Config is the process configuration. Variable names keep the VITE_ prefix
// of the browser build so one .env serves both.
type Config struct {
	Port int `env:"PORT" envDefault:"3000"`

	NovitaAPIKey  string `env:"VITE_NOVITA_API_KEY"`
	NovitaBaseURL string `env:"NOVITA_BASE_URL" envDefault:"https://api.novita.ai/v3"`
	NovitaModel   string `env:"NOVITA_MODEL" envDefault:"meta-llama/llama-3.1-8b-instruct"`

	SpotifyClientID     string `env:"VITE_SPOTIFY_CLIENT_ID"`
	SpotifyClientSecret string `env:"VITE_SPOTIFY_CLIENT_SECRET"`
	YouTubeClientID     string `env:"VITE_YOUTUBE_CLIENT_ID"`
	YouTubeClientSecret string `env:"VITE_YOUTUBE_CLIENT_SECRET"`
	// PublicOrigin is the base of the OAuth redirect URIs.
	PublicOrigin string `env:"PUBLIC_ORIGIN" envDefault:"http://localhost:3000"`

	SessionBackend string        `env:"SESSION_BACKEND" envDefault:"memory"`
	SessionDir     string        `env:"SESSION_DIR" envDefault:".aromatone/sessions"`
	SessionTTL     time.Duration `env:"SESSION_TTL" envDefault:"24h"`
	RedisAddr      string        `env:"REDIS_ADDR" envDefault:"localhost:6379"`
	RedisPassword  string        `env:"REDIS_PASSWORD"`
	RedisDB        int           `env:"REDIS_DB" envDefault:"0"`
	// SessionKey is a base64 AES-256 key sealing form data at rest. Empty
	// disables encryption. SessionFallbackKeys still decrypt after rotation.
	SessionKey          string   `env:"SESSION_KEY"`
	SessionFallbackKeys []string `env:"SESSION_FALLBACK_KEYS" envSeparator:","`

	RecipeGenerator string `env:"RECIPE_GENERATOR" envDefault:"mock"`
	// WizardDir holds extra YAML wizard definitions loaded at startup.
	WizardDir string `env:"WIZARD_DIR"`
	LogLevel  string `env:"LOG_LEVEL" envDefault:"info"`
}

// Load reads the optional dotenv files (".env" when none are given), then
// parses the environment. Variables already set win over dotenv values.
func Load(files ...string) (*Config, error) {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("load %s: %w", f, err)
		}
	}
	return Parse()
}

// Parse reads the configuration from the environment only.
func Parse() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks the enumerated settings.
func (c *Config) Validate() error {
	var errs []error
	switch c.SessionBackend {
	case BackendMemory, BackendFile, BackendRedis:
	default:
		errs = append(errs, fmt.Errorf("SESSION_BACKEND: unknown backend %q", c.SessionBackend))
	}
	switch c.RecipeGenerator {
	case GeneratorMock, GeneratorLLM:
	default:
		errs = append(errs, fmt.Errorf("RECIPE_GENERATOR: unknown generator %q", c.RecipeGenerator))
	}
	if c.Port <= 0 || c.Port > 65535 {
		errs = append(errs, fmt.Errorf("PORT: %d out of range", c.Port))
	}
	if c.SessionTTL < 0 {
		errs = append(errs, fmt.Errorf("SESSION_TTL: must not be negative"))
	}
	if _, _, err := c.EncryptionKeys(); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

// Addr is the listen address for the HTTP server.
func (c *Config) Addr() string {
	return ":" + strconv.Itoa(c.Port)
}

// EncryptionKeys decodes the session keys. A nil active key means session
// encryption is off.
func (c *Config) EncryptionKeys() (active []byte, fallback [][]byte, err error) {
	if c.SessionKey == "" {
		if len(c.SessionFallbackKeys) > 0 {
			return nil, nil, errors.New("SESSION_FALLBACK_KEYS: set without SESSION_KEY")
		}
		return nil, nil, nil
	}
	if active, err = decodeKey(c.SessionKey); err != nil {
		return nil, nil, fmt.Errorf("SESSION_KEY: %w", err)
	}
	for i, k := range c.SessionFallbackKeys {
		key, err := decodeKey(k)
		if err != nil {
			return nil, nil, fmt.Errorf("SESSION_FALLBACK_KEYS[%d]: %w", i, err)
		}
		fallback = append(fallback, key)
	}
	return active, fallback, nil
}

func decodeKey(s string) ([]byte, error) {
	key, err := base64.StdEncoding.DecodeString(s)
	if err != nil {
		return nil, err
	}
	if len(key) != 32 {
		return nil, fmt.Errorf("decoded key is %d bytes, want 32", len(key))
	}
	return key, nil
}
