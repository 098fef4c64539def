package wizard

import "github.com/mughesh03/aromatone/pkg/domain"

// FieldStore holds the flat record of user answers. It performs no
// validation: callers decide which names and values are acceptable.
type FieldStore struct {
	data domain.FormData
}

// NewFieldStore wraps data. A nil record is replaced by an empty one.
func NewFieldStore(data domain.FormData) *FieldStore {
	if data == nil {
		data = make(domain.FormData)
	}
	return &FieldStore{data: data}
}

// Set replaces the value of a field unconditionally.
func (s *FieldStore) Set(name string, value any) {
	s.data[name] = value
}

// Toggle adds value to the named list when absent and removes it otherwise.
// Remaining elements keep their insertion order. A missing field starts as
// an empty list.
func (s *FieldStore) Toggle(name, value string) {
	current, _ := s.data[name].([]string)

	next := make([]string, 0, len(current)+1)
	found := false
	for _, item := range current {
		if item == value {
			found = true
			continue
		}
		next = append(next, item)
	}
	if !found {
		next = append(next, value)
	}
	s.data[name] = next
}

// Get returns the raw value of a field.
func (s *FieldStore) Get(name string) (any, bool) {
	v, ok := s.data[name]
	return v, ok
}

// Data returns the underlying record.
func (s *FieldStore) Data() domain.FormData {
	return s.data
}

// Snapshot returns a deep copy of the record.
func (s *FieldStore) Snapshot() domain.FormData {
	return s.data.Clone()
}
