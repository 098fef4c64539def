package oauth

import (
	"context"
	"crypto/rand"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"golang.org/x/oauth2"

	"github.com/mughesh03/aromatone/internal/logging"
	"github.com/mughesh03/aromatone/pkg/domain"
)

// StateLength is the length of the generated anti-CSRF state.
const StateLength = 16

const stateAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

var (
	// ErrNotConfigured is returned when no client credentials are set for a platform.
	ErrNotConfigured = errors.New("oauth client not configured")
	// ErrExchange is returned when the token endpoint rejects a code.
	ErrExchange = errors.New("token exchange failed")
	// ErrFetch is returned when a platform API request fails.
	ErrFetch = errors.New("platform request failed")
)

type provider struct {
	clientID     string
	clientSecret string
}

// Client runs the authorization code flow against the platform table.
type Client struct {
	redirectBase string
	providers    map[domain.PlatformKind]provider
	overrides    map[domain.PlatformKind]Descriptor
	httpClient   *http.Client
	newState     func() (string, error)
	logger       *slog.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithProvider sets the client id and secret for a platform.
func WithProvider(p domain.Platform, clientID, clientSecret string) Option {
	return func(c *Client) {
		if clientID == "" {
			return
		}
		c.providers[p.Kind] = provider{clientID: clientID, clientSecret: clientSecret}
	}
}

// WithDescriptor replaces the table entry of d.Platform, typically to point
// the endpoints at a test server.
func WithDescriptor(d Descriptor) Option {
	return func(c *Client) {
		c.overrides[d.Platform.Kind] = d
	}
}

// WithHTTPClient sets the client used for token and API requests.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// WithStateGenerator replaces the random state source.
func WithStateGenerator(fn func() (string, error)) Option {
	return func(c *Client) {
		c.newState = fn
	}
}

// WithLogger sets the logger.
func WithLogger(l *slog.Logger) Option {
	return func(c *Client) {
		c.logger = l
	}
}

// NewClient creates a client whose redirect URIs are
// <redirectBase>/auth/callback/<platform>.
func NewClient(redirectBase string, opts ...Option) *Client {
	c := &Client{
		redirectBase: strings.TrimRight(redirectBase, "/"),
		providers:    make(map[domain.PlatformKind]provider),
		overrides:    make(map[domain.PlatformKind]Descriptor),
		newState:     RandomState,
		logger:       logging.NewNop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Descriptor returns the table entry the client uses for a platform.
func (c *Client) Descriptor(p domain.Platform) Descriptor {
	if d, ok := c.overrides[p.Kind]; ok && p.Supported() {
		return clone(d)
	}
	return Describe(p)
}

// Configured reports whether the platform can start an authorization.
func (c *Client) Configured(p domain.Platform) bool {
	_, err := c.config(p)
	return err == nil
}

// RedirectURL returns the callback URL registered for a platform.
func (c *Client) RedirectURL(p domain.Platform) string {
	return c.redirectBase + "/auth/callback/" + p.String()
}

func (c *Client) config(p domain.Platform) (*oauth2.Config, error) {
	d := c.Descriptor(p)
	if !p.Supported() || !d.SupportsOAuth() {
		return nil, fmt.Errorf("%w: %s", domain.ErrUnsupportedPlatform, p)
	}
	prov, ok := c.providers[p.Kind]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNotConfigured, p)
	}
	return &oauth2.Config{
		ClientID:     prov.clientID,
		ClientSecret: prov.clientSecret,
		RedirectURL:  c.RedirectURL(p),
		Scopes:       d.Scopes,
		Endpoint: oauth2.Endpoint{
			AuthURL:   d.AuthURL,
			TokenURL:  d.TokenURL,
			AuthStyle: oauth2.AuthStyleInParams,
		},
	}, nil
}

func (c *Client) context(ctx context.Context) context.Context {
	if c.httpClient == nil {
		return ctx
	}
	return context.WithValue(ctx, oauth2.HTTPClient, c.httpClient)
}

// AuthCodeURL records a fresh state in creds and returns the provider's
// consent URL.
func (c *Client) AuthCodeURL(p domain.Platform, creds *Credentials) (string, error) {
	cfg, err := c.config(p)
	if err != nil {
		return "", err
	}
	state, err := c.newState()
	if err != nil {
		return "", fmt.Errorf("generate state: %w", err)
	}
	creds.setState(p.String(), state)
	return cfg.AuthCodeURL(state), nil
}

// Exchange trades an authorization code for a token and stores it in creds.
// The state must match the one recorded by AuthCodeURL.
func (c *Client) Exchange(ctx context.Context, p domain.Platform, creds *Credentials, code, state string) (*oauth2.Token, error) {
	cfg, err := c.config(p)
	if err != nil {
		return nil, err
	}
	if !creds.consumeState(p.String(), state) {
		return nil, domain.ErrStateMismatch
	}
	tok, err := cfg.Exchange(c.context(ctx), code)
	if err != nil {
		c.logger.Warn("oauth exchange failed", "platform", p.String(), "err", err)
		return nil, fmt.Errorf("%w: %v", ErrExchange, err)
	}
	creds.SetToken(p.String(), tok)
	return tok, nil
}

// Profile fetches the user's profile from the platform.
func (c *Client) Profile(ctx context.Context, p domain.Platform, creds *Credentials) (json.RawMessage, error) {
	return c.fetch(ctx, p, creds, c.Descriptor(p).ProfileURL)
}

// Playlists fetches the user's playlists from the platform.
func (c *Client) Playlists(ctx context.Context, p domain.Platform, creds *Credentials) (json.RawMessage, error) {
	return c.fetch(ctx, p, creds, c.Descriptor(p).PlaylistsURL)
}

func (c *Client) fetch(ctx context.Context, p domain.Platform, creds *Credentials, endpoint string) (json.RawMessage, error) {
	cfg, err := c.config(p)
	if err != nil {
		return nil, err
	}
	tok, ok := creds.Token(p.String())
	if !ok {
		return nil, domain.ErrNoCredentials
	}

	ctx = c.context(ctx)
	src := cfg.TokenSource(ctx, tok)
	current, err := src.Token()
	if err != nil {
		return nil, fmt.Errorf("%w: refresh token: %v", ErrFetch, err)
	}
	if current.AccessToken != tok.AccessToken {
		creds.SetToken(p.String(), current)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}
	resp, err := oauth2.NewClient(ctx, oauth2.StaticTokenSource(current)).Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFetch, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: read body: %v", ErrFetch, err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("%w: %s returned %d", ErrFetch, p, resp.StatusCode)
	}
	if !json.Valid(body) {
		return nil, fmt.Errorf("%w: %s returned non-JSON body", ErrFetch, p)
	}
	return json.RawMessage(body), nil
}

// RandomState returns a StateLength-character alphanumeric string from
// crypto/rand.
func RandomState() (string, error) {
	return randomState(rand.Reader)
}

// stateCutoff is the largest multiple of len(stateAlphabet) that fits in a
// byte. Bytes at or above it are discarded so every character is equally likely.
const stateCutoff = 256 - 256%len(stateAlphabet)

func randomState(src io.Reader) (string, error) {
	out := make([]byte, 0, StateLength)
	buf := make([]byte, StateLength)
	for len(out) < StateLength {
		if _, err := io.ReadFull(src, buf); err != nil {
			return "", err
		}
		for _, b := range buf {
			if int(b) >= stateCutoff {
				continue
			}
			out = append(out, stateAlphabet[int(b)%len(stateAlphabet)])
			if len(out) == StateLength {
				break
			}
		}
	}
	return string(out), nil
}
