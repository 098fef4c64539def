package wizard

// EventType names an input accepted by the sequencer.
type EventType string

const (
	EventSetField    EventType = "set_field"
	EventToggleField EventType = "toggle_field"
	EventNext        EventType = "next"
	EventPrev        EventType = "prev"
)

// Event is one user interaction with a wizard.
type Event struct {
	Type  EventType `json:"type"`
	Field string    `json:"field,omitempty"`
	Value any       `json:"value,omitempty"`
}

// SetField builds a set_field event.
func SetField(field string, value any) Event {
	return Event{Type: EventSetField, Field: field, Value: value}
}

// ToggleField builds a toggle_field event.
func ToggleField(field, value string) Event {
	return Event{Type: EventToggleField, Field: field, Value: value}
}

// Next builds a next event.
func Next() Event { return Event{Type: EventNext} }

// Prev builds a prev event.
func Prev() Event { return Event{Type: EventPrev} }
