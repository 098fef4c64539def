package schema

import (
	"fmt"

	"github.com/mughesh03/aromatone/pkg/domain"
)

// Type defines the contract for field validation.
type Type interface {
	// Name returns the human-readable name of the type (e.g., "string", "list").
	Name() string
	// Validate checks if a value conforms to this type.
	Validate(value any) error
}

// --- Built-in Type Implementations ---

// StringType validates string values.
type StringType struct{}

func (t *StringType) Name() string { return string(domain.KindString) }

func (t *StringType) Validate(value any) error {
	if _, ok := value.(string); !ok {
		return fmt.Errorf("expected string, got %T", value)
	}
	return nil
}

// BoolType validates boolean values.
type BoolType struct{}

func (t *BoolType) Name() string { return string(domain.KindBool) }

func (t *BoolType) Validate(value any) error {
	if _, ok := value.(bool); !ok {
		return fmt.Errorf("expected bool, got %T", value)
	}
	return nil
}

// NumberType validates numeric values. Integers are accepted alongside
// float64 since values may come from Go callers as well as JSON.
type NumberType struct{}

func (t *NumberType) Name() string { return string(domain.KindNumber) }

func (t *NumberType) Validate(value any) error {
	switch value.(type) {
	case float64, float32, int, int8, int16, int32, int64:
		return nil
	default:
		return fmt.Errorf("expected number, got %T", value)
	}
}

// ListType validates ordered lists of strings.
type ListType struct{}

func (t *ListType) Name() string { return string(domain.KindList) }

func (t *ListType) Validate(value any) error {
	switch v := value.(type) {
	case []string:
		return nil
	case []any:
		for i, item := range v {
			if _, ok := item.(string); !ok {
				return fmt.Errorf("element %d: expected string, got %T", i, item)
			}
		}
		return nil
	default:
		return fmt.Errorf("expected list of strings, got %T", value)
	}
}

// CustomType applies a user-defined validation function.
type CustomType struct {
	name     string
	validate func(any) error
}

func (t *CustomType) Name() string { return t.name }

func (t *CustomType) Validate(value any) error {
	return t.validate(value)
}

// --- Factory Functions ---

// String creates a string type validator.
func String() Type { return &StringType{} }

// Bool creates a boolean type validator.
func Bool() Type { return &BoolType{} }

// Number creates a numeric type validator.
func Number() Type { return &NumberType{} }

// List creates a list-of-strings type validator.
func List() Type { return &ListType{} }

// Custom creates a custom type validator with a user-defined function.
func Custom(name string, validate func(any) error) Type {
	return &CustomType{name: name, validate: validate}
}

// ForKind returns the validator for a field kind.
func ForKind(kind domain.Kind) (Type, error) {
	switch kind {
	case domain.KindString:
		return String(), nil
	case domain.KindBool:
		return Bool(), nil
	case domain.KindNumber:
		return Number(), nil
	case domain.KindList:
		return List(), nil
	default:
		return nil, fmt.Errorf("unsupported kind: %s", kind)
	}
}

// ParseKindMap converts a map of field names to kind names into a Schema.
// Example: {"name": "string", "genres": "list"}
func ParseKindMap(kinds map[string]string) (Schema, error) {
	result := make(Schema, len(kinds))
	for key, k := range kinds {
		t, err := ForKind(domain.Kind(k))
		if err != nil {
			return nil, fmt.Errorf("field %s: %w", key, err)
		}
		result[key] = t
	}
	return result, nil
}
