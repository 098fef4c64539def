package domain

import (
	"context"
	"time"
)

// EventType defines the category of a wizard lifecycle event.
type EventType string

const (
	EventStepEnter EventType = "step_enter"
	EventStepLeave EventType = "step_leave"
	EventBlocked   EventType = "blocked"
	EventComplete  EventType = "complete"
)

// StepEvent describes a sequencer movement (or a refused one).
type StepEvent struct {
	Timestamp time.Time `json:"timestamp"`
	Type      EventType `json:"type"`
	SessionID string    `json:"session_id"`
	Variant   string    `json:"variant"`
	Step      int       `json:"step"`
	StepID    string    `json:"step_id"`
}

// WizardHooks defines callbacks for engine observability.
type WizardHooks struct {
	OnStepEnter func(context.Context, *StepEvent)
	OnStepLeave func(context.Context, *StepEvent)
	OnBlocked   func(context.Context, *StepEvent)
	OnComplete  func(context.Context, *StepEvent)
}
