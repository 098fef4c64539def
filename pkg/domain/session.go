package domain

import "time"

// SessionStatus defines whether a wizard session still accepts events.
type SessionStatus string

const (
	StatusActive    SessionStatus = "active"    // Accepting events
	StatusCompleted SessionStatus = "completed" // Completion fired; no further events
)

// Session is the persisted snapshot of one wizard instance.
type Session struct {
	ID      string        `json:"id"`
	Variant string        `json:"variant"`
	State   WizardState   `json:"state"`
	Form    FormData      `json:"form"`
	Status  SessionStatus `json:"status"`

	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
}

// NewSession creates an active session on the first step with the given form.
func NewSession(id, variant string, totalSteps int, form FormData, now time.Time) *Session {
	return &Session{
		ID:        id,
		Variant:   variant,
		State:     NewWizardState(totalSteps),
		Form:      form,
		Status:    StatusActive,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// Snapshot returns a deep copy of the session so it can be mutated or handed
// off without aliasing the original form.
func (s *Session) Snapshot() *Session {
	if s == nil {
		return nil
	}
	next := *s
	next.Form = s.Form.Clone()
	if s.CompletedAt != nil {
		t := *s.CompletedAt
		next.CompletedAt = &t
	}
	return &next
}

// Completed reports whether the session reached its terminal action.
func (s *Session) Completed() bool {
	return s.Status == StatusCompleted
}
