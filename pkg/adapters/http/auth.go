package http

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/mughesh03/aromatone/pkg/domain"
	"github.com/mughesh03/aromatone/pkg/oauth"
)

// PlatformStatus is a platform descriptor plus its state for the caller.
type PlatformStatus struct {
	oauth.Descriptor
	Configured bool `json:"configured"`
	Connected  bool `json:"connected"`
}

// ListPlatforms handles GET /api/platforms.
func (s *Server) ListPlatforms(w http.ResponseWriter, r *http.Request) {
	var creds *oauth.Credentials
	if s.creds != nil {
		if key := sessionKey(r); key != "" {
			creds, _ = s.creds.Lookup(key)
		}
	}

	out := make([]PlatformStatus, 0, 2)
	for _, d := range oauth.Platforms() {
		st := PlatformStatus{Descriptor: d}
		if s.oauth != nil {
			st.Configured = s.oauth.Configured(d.Platform)
		}
		if creds != nil {
			st.Connected = creds.Connected(d.Slug)
		}
		out = append(out, st)
	}
	writeJSON(w, http.StatusOK, out)
}

// credentials returns the caller's credentials, creating them when create is
// set. Requests without a session key are rejected.
func (s *Server) credentials(r *http.Request, create bool) (*oauth.Credentials, error) {
	key := sessionKey(r)
	if key == "" {
		return nil, fmt.Errorf("%w: missing %s", errBadRequest, SessionHeader)
	}
	if create {
		return s.creds.Get(key), nil
	}
	creds, ok := s.creds.Lookup(key)
	if !ok {
		return nil, domain.ErrNoCredentials
	}
	return creds, nil
}

// Authorize handles GET /auth/{platform}/authorize. It remembers the session
// in a cookie and redirects to the provider's consent page.
func (s *Server) Authorize(w http.ResponseWriter, r *http.Request) {
	platform := domain.ParsePlatform(chi.URLParam(r, "platform"))
	creds, err := s.credentials(r, true)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	url, err := s.oauth.AuthCodeURL(platform, creds)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookie,
		Value:    sessionKey(r),
		Path:     "/auth",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	http.Redirect(w, r, url, http.StatusFound)
}

// Callback handles GET /auth/callback/{platform}.
func (s *Server) Callback(w http.ResponseWriter, r *http.Request) {
	platform := domain.ParsePlatform(chi.URLParam(r, "platform"))
	q := r.URL.Query()
	if e := q.Get("error"); e != "" {
		s.writeError(w, r, fmt.Errorf("%w: authorization denied: %s", errBadRequest, e))
		return
	}
	creds, err := s.credentials(r, false)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	if _, err := s.oauth.Exchange(r.Context(), platform, creds, q.Get("code"), q.Get("state")); err != nil {
		s.writeError(w, r, err)
		return
	}

	d := s.oauth.Descriptor(platform)
	s.logger.InfoContext(r.Context(), "platform connected", "platform", d.Slug)
	writeJSON(w, http.StatusOK, PlatformStatus{Descriptor: d, Configured: true, Connected: true})
}

// GetProfile handles GET /api/platforms/{platform}/profile.
func (s *Server) GetProfile(w http.ResponseWriter, r *http.Request) {
	s.relayPlatform(w, r, s.oauth.Profile)
}

// GetPlaylists handles GET /api/platforms/{platform}/playlists.
func (s *Server) GetPlaylists(w http.ResponseWriter, r *http.Request) {
	s.relayPlatform(w, r, s.oauth.Playlists)
}

func (s *Server) relayPlatform(w http.ResponseWriter, r *http.Request, fetch func(context.Context, domain.Platform, *oauth.Credentials) (json.RawMessage, error)) {
	platform := domain.ParsePlatform(chi.URLParam(r, "platform"))
	if !platform.Supported() {
		s.writeError(w, r, fmt.Errorf("%w: %s", domain.ErrUnsupportedPlatform, platform))
		return
	}
	creds, err := s.credentials(r, false)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	body, err := fetch(r.Context(), platform, creds)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(body)
}
