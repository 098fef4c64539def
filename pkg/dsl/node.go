package dsl

import "github.com/mughesh03/aromatone/pkg/wizard"

// FieldBuilder configures a declared field.
type FieldBuilder struct {
	field wizard.Field
}

// Label sets the display label.
func (f *FieldBuilder) Label(label string) *FieldBuilder {
	f.field.Label = label
	return f
}

// Default sets the initial value.
func (f *FieldBuilder) Default(v any) *FieldBuilder {
	f.field.Default = v
	return f
}

// Options sets the choices offered for the field.
func (f *FieldBuilder) Options(options ...string) *FieldBuilder {
	f.field.Options = options
	return f
}

// Secret masks the field in views and logs.
func (f *FieldBuilder) Secret() *FieldBuilder {
	f.field.Secret = true
	return f
}

// StepBuilder provides a fluent API for configuring a step.
type StepBuilder struct {
	step wizard.Step
}

// Title sets the step heading.
func (s *StepBuilder) Title(title string) *StepBuilder {
	s.step.Title = title
	return s
}

// Description sets the step subheading.
func (s *StepBuilder) Description(text string) *StepBuilder {
	s.step.Description = text
	return s
}

// Fields lists the fields shown on the step.
func (s *StepBuilder) Fields(names ...string) *StepBuilder {
	s.step.Fields = append(s.step.Fields, names...)
	return s
}

// Require adds a required rule for each field.
func (s *StepBuilder) Require(fields ...string) *StepBuilder {
	for _, f := range fields {
		s.step.Rules = append(s.step.Rules, wizard.Required(f))
	}
	return s
}

// RequireWhen makes field required while when equals value.
func (s *StepBuilder) RequireWhen(field, when, value string) *StepBuilder {
	s.step.Rules = append(s.step.Rules, wizard.RequiredWhen(field, when, value))
	return s
}

// MinItems demands at least n selections in a list field.
func (s *StepBuilder) MinItems(field string, n int) *StepBuilder {
	s.step.Rules = append(s.step.Rules, wizard.MinItems(field, n))
	return s
}

// OneOf restricts a string field to values.
func (s *StepBuilder) OneOf(field string, values ...string) *StepBuilder {
	s.step.Rules = append(s.step.Rules, wizard.OneOf(field, values...))
	return s
}

// Build returns the underlying step.
func (s *StepBuilder) Build() wizard.Step {
	return s.step
}
