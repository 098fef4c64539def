package schema

import (
	"errors"
	"strings"
	"testing"

	"github.com/mughesh03/aromatone/pkg/domain"
)

func TestBuiltinTypes(t *testing.T) {
	tests := []struct {
		typ     Type
		value   any
		wantErr bool
	}{
		{String(), "hello", false},
		{String(), "", false},
		{String(), 42, true},
		{Bool(), true, false},
		{Bool(), "true", true},
		{Number(), 3.5, false},
		{Number(), 3, false},
		{Number(), "3", true},
		{List(), []string{"a"}, false},
		{List(), []any{"a", "b"}, false},
		{List(), []any{"a", 1}, true},
		{List(), "a", true},
	}

	for _, tt := range tests {
		err := tt.typ.Validate(tt.value)
		if (err != nil) != tt.wantErr {
			t.Errorf("%s.Validate(%v) error = %v, wantErr %v", tt.typ.Name(), tt.value, err, tt.wantErr)
		}
	}
}

func TestForKind(t *testing.T) {
	for _, k := range []domain.Kind{domain.KindString, domain.KindBool, domain.KindNumber, domain.KindList} {
		typ, err := ForKind(k)
		if err != nil {
			t.Fatalf("ForKind(%s) failed: %v", k, err)
		}
		if typ.Name() != string(k) {
			t.Errorf("ForKind(%s).Name() = %s", k, typ.Name())
		}
	}
	if _, err := ForKind("map"); err == nil {
		t.Error("expected error for unsupported kind")
	}
}

func TestValidate_AggregatesInKeyOrder(t *testing.T) {
	s := Schema{
		"name":   String(),
		"genres": List(),
		"budget": String(),
	}
	data := map[string]any{
		"name":   7,
		"genres": []string{},
	}

	err := Validate(s, data)
	if err == nil {
		t.Fatal("expected validation error")
	}
	errs := ValidationErrors(err)
	if len(errs) != 2 {
		t.Fatalf("expected 2 errors, got %d: %v", len(errs), err)
	}

	var first *ValidationError
	if !errors.As(errs[0], &first) || first.Key != "budget" || first.Reason != "required" {
		t.Errorf("unexpected first error: %v", errs[0])
	}
	if !strings.Contains(errs[1].Error(), `"name"`) {
		t.Errorf("unexpected second error: %v", errs[1])
	}
}

func TestValidateValue(t *testing.T) {
	s, err := ParseKindMap(map[string]string{"budget": "string"})
	if err != nil {
		t.Fatalf("ParseKindMap: %v", err)
	}
	if err := ValidateValue(s, "budget", "low"); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
	if err := ValidateValue(s, "budget", true); err == nil {
		t.Error("expected kind mismatch")
	}
	if err := ValidateValue(s, "missing", "x"); err == nil || !strings.Contains(err.Error(), "not defined") {
		t.Errorf("expected not defined error, got %v", err)
	}
}

func TestCustomType(t *testing.T) {
	email := Custom("email", func(v any) error {
		s, _ := v.(string)
		if !strings.Contains(s, "@") {
			return errors.New("must contain @")
		}
		return nil
	})
	if email.Validate("a@b.c") != nil {
		t.Error("valid email rejected")
	}
	if email.Validate("nope") == nil {
		t.Error("invalid email accepted")
	}
}
