package oauth

import (
	"crypto/subtle"
	"sort"
	"sync"

	"golang.org/x/oauth2"
)

// Credentials holds the OAuth state of one session: the pending state per
// platform and the tokens obtained so far. Safe for concurrent use.
type Credentials struct {
	mu     sync.Mutex
	states map[string]string
	tokens map[string]*oauth2.Token
}

// NewCredentials returns an empty credentials object.
func NewCredentials() *Credentials {
	return &Credentials{
		states: make(map[string]string),
		tokens: make(map[string]*oauth2.Token),
	}
}

func (c *Credentials) setState(platform, state string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.states[platform] = state
}

// consumeState checks state against the pending one and clears it. A state
// can be used once.
func (c *Credentials) consumeState(platform, state string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	want, ok := c.states[platform]
	if !ok || state == "" {
		return false
	}
	delete(c.states, platform)
	return subtle.ConstantTimeCompare([]byte(want), []byte(state)) == 1
}

// PendingState returns the state recorded for the platform's last
// authorization request.
func (c *Credentials) PendingState(platform string) (string, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	s, ok := c.states[platform]
	return s, ok
}

// Token returns a copy of the token held for the platform.
func (c *Credentials) Token(platform string) (*oauth2.Token, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	tok, ok := c.tokens[platform]
	if !ok {
		return nil, false
	}
	cp := *tok
	return &cp, true
}

// SetToken stores a token for the platform.
func (c *Credentials) SetToken(platform string, tok *oauth2.Token) {
	if tok == nil {
		return
	}
	cp := *tok
	c.mu.Lock()
	defer c.mu.Unlock()
	c.tokens[platform] = &cp
}

// Connected reports whether a token is held for the platform.
func (c *Credentials) Connected(platform string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	_, ok := c.tokens[platform]
	return ok
}

// Disconnect drops the token and any pending state for the platform.
func (c *Credentials) Disconnect(platform string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.tokens, platform)
	delete(c.states, platform)
}

// ConnectedPlatforms returns the slugs of platforms with a token, sorted.
func (c *Credentials) ConnectedPlatforms() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]string, 0, len(c.tokens))
	for p := range c.tokens {
		out = append(out, p)
	}
	sort.Strings(out)
	return out
}

// CredentialStore maps session IDs to their credentials.
type CredentialStore struct {
	mu    sync.Mutex
	creds map[string]*Credentials
}

// NewCredentialStore returns an empty store.
func NewCredentialStore() *CredentialStore {
	return &CredentialStore{creds: make(map[string]*Credentials)}
}

// Get returns the credentials for a session, creating them on first use.
func (s *CredentialStore) Get(sessionID string) *Credentials {
	s.mu.Lock()
	defer s.mu.Unlock()
	c, ok := s.creds[sessionID]
	if !ok {
		c = NewCredentials()
		s.creds[sessionID] = c
	}
	return c
}

// Lookup returns the credentials for a session without creating them.
func (s *CredentialStore) Lookup(sessionID string) (*Credentials, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c, ok := s.creds[sessionID]
	return c, ok
}

// Delete forgets a session's credentials.
func (s *CredentialStore) Delete(sessionID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.creds, sessionID)
}
