package http

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/mughesh03/aromatone/pkg/domain"
	"github.com/mughesh03/aromatone/pkg/wizard"
)

// WizardSummary is one entry of GET /api/wizards.
type WizardSummary struct {
	Variant    string `json:"variant"`
	Title      string `json:"title"`
	TotalSteps int    `json:"total_steps"`
}

// SessionResponse is returned when a session is created or read.
type SessionResponse struct {
	SessionID string      `json:"session_id"`
	View      wizard.View `json:"view"`
}

// ResultResponse is the redacted completion payload.
type ResultResponse struct {
	SessionID   string          `json:"session_id"`
	Variant     string          `json:"variant"`
	Data        domain.FormData `json:"data"`
	Redirect    string          `json:"redirect,omitempty"`
	CompletedAt time.Time       `json:"completed_at"`
}

// EventResponse is returned by POST /api/sessions/{id}/events.
type EventResponse struct {
	Outcome   wizard.OutcomeKind `json:"outcome"`
	Animation *wizard.Animation  `json:"animation,omitempty"`
	Unmet     []string           `json:"unmet,omitempty"`
	View      wizard.View        `json:"view"`
	Result    *ResultResponse    `json:"result,omitempty"`
}

// ListWizards handles GET /api/wizards.
func (s *Server) ListWizards(w http.ResponseWriter, r *http.Request) {
	reg := s.Engine.Registry()
	out := make([]WizardSummary, 0)
	for _, variant := range reg.Variants() {
		def, err := reg.Get(variant)
		if err != nil {
			continue
		}
		out = append(out, WizardSummary{Variant: def.Variant, Title: def.Title, TotalSteps: def.TotalSteps()})
	}
	writeJSON(w, http.StatusOK, out)
}

// GetWizard handles GET /api/wizards/{variant}.
func (s *Server) GetWizard(w http.ResponseWriter, r *http.Request) {
	def, err := s.Engine.Registry().Get(chi.URLParam(r, "variant"))
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, def)
}

// CreateSession handles POST /api/wizards/{variant}/sessions.
func (s *Server) CreateSession(w http.ResponseWriter, r *http.Request) {
	variant := chi.URLParam(r, "variant")
	sess, err := s.Engine.Start(r.Context(), variant, "")
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	if err := s.Sessions.Create(r.Context(), sess); err != nil {
		s.writeError(w, r, err)
		return
	}
	view, err := s.render(sess)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.logger.InfoContext(r.Context(), "session created", "session_id", sess.ID, "variant", variant)
	writeJSON(w, http.StatusCreated, SessionResponse{SessionID: sess.ID, View: view})
}

// GetSession handles GET /api/sessions/{id}.
func (s *Server) GetSession(w http.ResponseWriter, r *http.Request) {
	sess, err := s.Sessions.Load(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	view, err := s.render(sess)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, SessionResponse{SessionID: sess.ID, View: view})
}

// DeleteSession handles DELETE /api/sessions/{id}. Platform credentials of
// the session are dropped with it.
func (s *Server) DeleteSession(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := s.Sessions.Delete(r.Context(), id); err != nil {
		s.writeError(w, r, err)
		return
	}
	if s.creds != nil {
		s.creds.Delete(id)
	}
	s.Streams.Close(id)
	w.WriteHeader(http.StatusNoContent)
}

// DispatchEvent handles POST /api/sessions/{id}/events. Events for one session
// are serialized by the session manager. A completed session is saved as
// completed before it is removed, so a retry after a failed removal gets a
// conflict instead of a second completion.
func (s *Server) DispatchEvent(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var ev wizard.Event
	if err := json.NewDecoder(r.Body).Decode(&ev); err != nil {
		s.writeError(w, r, fmt.Errorf("%w: invalid event body: %v", errBadRequest, err))
		return
	}

	var (
		prev    *domain.Session
		next    *domain.Session
		outcome wizard.Outcome
		def     *wizard.Definition
	)
	_, err := s.Sessions.Update(r.Context(), id, func(sess *domain.Session) (*domain.Session, error) {
		var err error
		def, err = s.Engine.Registry().Get(sess.Variant)
		if err != nil {
			return nil, err
		}
		next, outcome, err = s.Engine.Dispatch(r.Context(), sess, ev)
		if err != nil {
			return nil, err
		}
		prev = sess
		return next, nil
	})
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	if outcome.Kind == wizard.OutcomeCompleted {
		if err := s.Sessions.Delete(r.Context(), id); err != nil {
			s.logger.WarnContext(r.Context(), "completed session not removed", "session_id", id, "err", err)
		}
	}

	s.publish(prev, next, def.SecretFields())
	if s.observe != nil {
		s.observe(def.Variant, string(ev.Type), string(outcome.Kind))
	}

	resp := EventResponse{
		Outcome:   outcome.Kind,
		Animation: outcome.Animation,
		View:      wizard.Render(def, next),
	}
	for _, rule := range outcome.Unmet {
		resp.Unmet = append(resp.Unmet, rule.Describe())
	}
	if res := outcome.Result; res != nil {
		resp.Result = &ResultResponse{
			SessionID:   res.SessionID,
			Variant:     res.Variant,
			Data:        res.Redacted(),
			Redirect:    res.Redirect,
			CompletedAt: res.CompletedAt,
		}
		s.Streams.Close(id)
		s.logger.InfoContext(r.Context(), "wizard completed", "session_id", id, "variant", res.Variant)
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) render(sess *domain.Session) (wizard.View, error) {
	def, err := s.Engine.Registry().Get(sess.Variant)
	if err != nil {
		return wizard.View{}, err
	}
	return wizard.Render(def, sess), nil
}
