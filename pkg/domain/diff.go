package domain

import (
	"reflect"
)

// SessionDiff represents the changes between two session snapshots.
// It is designed to be serialized to JSON for partial updates on the client.
type SessionDiff struct {
	// SessionID is always present to identify the target.
	SessionID string `json:"session_id"`

	CurrentStep *int           `json:"current_step,omitempty"`
	Progress    *float64       `json:"progress,omitempty"`
	Status      *SessionStatus `json:"status,omitempty"`

	// Form contains only changed, added or deleted keys.
	// For deletions, the key is present with a nil value.
	Form map[string]any `json:"form,omitempty"`
}

// Diff calculates the difference between oldSession and newSession.
// If oldSession is nil, it returns a diff representing the entire newSession (initial load).
func Diff(oldSession, newSession *Session) *SessionDiff {
	if newSession == nil {
		return nil
	}

	diff := &SessionDiff{
		SessionID: newSession.ID,
	}

	if oldSession == nil || oldSession.State.CurrentStep != newSession.State.CurrentStep {
		step := newSession.State.CurrentStep
		progress := newSession.State.Progress()
		diff.CurrentStep = &step
		diff.Progress = &progress
	}
	if oldSession == nil || oldSession.Status != newSession.Status {
		status := newSession.Status
		diff.Status = &status
	}

	diff.Form = diffForm(oldSession, newSession)

	if diff.IsEmpty() {
		return nil
	}
	return diff
}

func diffForm(old *Session, new *Session) map[string]any {
	delta := make(map[string]any)

	if old == nil {
		for k, v := range new.Form {
			delta[k] = v
		}
		return delta
	}

	for k, newVal := range new.Form {
		oldVal, exists := old.Form[k]
		if !exists || !reflect.DeepEqual(oldVal, newVal) {
			delta[k] = newVal
		}
	}

	for k := range old.Form {
		if _, exists := new.Form[k]; !exists {
			delta[k] = nil
		}
	}

	if len(delta) == 0 {
		return nil
	}
	return delta
}

// IsEmpty checks if the diff contains any actionable changes.
func (d *SessionDiff) IsEmpty() bool {
	return d.CurrentStep == nil &&
		d.Status == nil &&
		len(d.Form) == 0
}
