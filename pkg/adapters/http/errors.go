package http

import (
	"errors"
	"net/http"

	"github.com/mughesh03/aromatone/pkg/domain"
	"github.com/mughesh03/aromatone/pkg/novita"
	"github.com/mughesh03/aromatone/pkg/oauth"
	"github.com/mughesh03/aromatone/pkg/recipe"
	"github.com/mughesh03/aromatone/pkg/schema"
	"github.com/mughesh03/aromatone/pkg/wizard"
)

// errBadRequest marks malformed request bodies and parameters.
var errBadRequest = errors.New("bad request")

// statusFor maps an error to the response status.
func statusFor(err error) int {
	var validation *schema.ValidationError
	var upstream *novita.UpstreamError

	switch {
	case errors.Is(err, domain.ErrSessionNotFound),
		errors.Is(err, domain.ErrUnknownVariant),
		errors.Is(err, domain.ErrUnsupportedPlatform):
		return http.StatusNotFound
	case errors.Is(err, errBadRequest),
		errors.Is(err, domain.ErrUnknownField),
		errors.Is(err, domain.ErrFieldKind),
		errors.Is(err, domain.ErrNotAList),
		errors.Is(err, domain.ErrStateMismatch),
		errors.Is(err, wizard.ErrUnknownEvent),
		errors.As(err, &validation):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrNoCredentials):
		return http.StatusUnauthorized
	case errors.Is(err, domain.ErrSessionCompleted),
		errors.Is(err, domain.ErrStaleResponse):
		return http.StatusConflict
	case errors.Is(err, oauth.ErrNotConfigured):
		return http.StatusServiceUnavailable
	case errors.As(err, &upstream),
		errors.Is(err, novita.ErrNoChoices),
		errors.Is(err, recipe.ErrInvalidSuggestions),
		errors.Is(err, oauth.ErrExchange),
		errors.Is(err, oauth.ErrFetch):
		return http.StatusBadGateway
	}
	return http.StatusInternalServerError
}

// writeError renders err as {"error": "..."}. Internal errors are logged and
// answered with a generic message.
func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := statusFor(err)
	msg := err.Error()
	if status == http.StatusInternalServerError {
		s.logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "err", err)
		msg = "internal error"
	} else {
		s.logger.DebugContext(r.Context(), "request rejected", "path", r.URL.Path, "status", status, "err", err)
	}
	writeJSON(w, status, map[string]string{"error": msg})
}
