package http

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/mughesh03/aromatone/pkg/cooking"
	"github.com/mughesh03/aromatone/pkg/domain"
	"github.com/mughesh03/aromatone/pkg/recipe"
)

// GenerateRecipes handles POST /api/recipes/generate. Requests sharing a
// session key race; only the most recent one is answered with recipes, older
// ones get 409. Requests without a session key are never superseded.
func (s *Server) GenerateRecipes(w http.ResponseWriter, r *http.Request) {
	var prefs recipe.Preferences
	if err := json.NewDecoder(r.Body).Decode(&prefs); err != nil {
		s.writeError(w, r, fmt.Errorf("%w: invalid preferences: %v", errBadRequest, err))
		return
	}

	key := sessionKey(r)
	if key == "" {
		recipes, err := s.generator.Generate(r.Context(), prefs)
		s.writeRecipes(w, r, recipes, err)
		return
	}

	token := s.tracker.Begin(key)
	recipes, err := s.generator.Generate(r.Context(), prefs)
	if !s.tracker.Accept(key, token) {
		s.writeError(w, r, domain.ErrStaleResponse)
		return
	}
	s.writeRecipes(w, r, recipes, err)
}

func (s *Server) writeRecipes(w http.ResponseWriter, r *http.Request, recipes []domain.Recipe, err error) {
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"recipes": recipes})
}

// GetAmbience handles GET /api/ambience?mood=.
func (s *Server) GetAmbience(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, cooking.AmbienceFor(r.URL.Query().Get("mood")))
}
