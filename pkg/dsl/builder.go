package dsl

import (
	"fmt"

	"github.com/mughesh03/aromatone/pkg/domain"
	"github.com/mughesh03/aromatone/pkg/wizard"
)

// Builder manages the definition construction. Fields and steps keep the
// order in which they were first added.
type Builder struct {
	def    wizard.Definition
	fields []*FieldBuilder
	steps  []*StepBuilder
}

// New creates a builder for the given variant.
func New(variant string) *Builder {
	return &Builder{def: wizard.Definition{Variant: variant}}
}

// Title sets the wizard title.
func (b *Builder) Title(title string) *Builder {
	b.def.Title = title
	return b
}

// Redirect sets the navigation target handed to the completer.
func (b *Builder) Redirect(path string) *Builder {
	b.def.Redirect = path
	return b
}

// Field declares a field of the given kind. If the field already exists, it
// returns the existing builder.
func (b *Builder) Field(name string, kind domain.Kind) *FieldBuilder {
	for _, fb := range b.fields {
		if fb.field.Name == name {
			return fb
		}
	}
	fb := &FieldBuilder{field: wizard.Field{Name: name, Kind: kind}}
	b.fields = append(b.fields, fb)
	return fb
}

// String declares a text field.
func (b *Builder) String(name string) *FieldBuilder { return b.Field(name, domain.KindString) }

// Bool declares a boolean field.
func (b *Builder) Bool(name string) *FieldBuilder { return b.Field(name, domain.KindBool) }

// Number declares a numeric field.
func (b *Builder) Number(name string) *FieldBuilder { return b.Field(name, domain.KindNumber) }

// List declares a multi-select field.
func (b *Builder) List(name string) *FieldBuilder { return b.Field(name, domain.KindList) }

// Step appends a step. If the step already exists, it returns the existing builder.
func (b *Builder) Step(id string) *StepBuilder {
	for _, sb := range b.steps {
		if sb.step.ID == id {
			return sb
		}
	}
	sb := &StepBuilder{step: wizard.Step{ID: id}}
	b.steps = append(b.steps, sb)
	return sb
}

// Build assembles and validates the definition.
func (b *Builder) Build() (*wizard.Definition, error) {
	def := b.def
	def.Fields = make([]wizard.Field, 0, len(b.fields))
	for _, fb := range b.fields {
		def.Fields = append(def.Fields, fb.field)
	}
	def.Steps = make([]wizard.Step, 0, len(b.steps))
	for _, sb := range b.steps {
		def.Steps = append(def.Steps, sb.step)
	}
	if err := def.Validate(); err != nil {
		return nil, fmt.Errorf("build %s: %w", def.Variant, err)
	}
	return &def, nil
}

// MustBuild is Build that panics on error.
func (b *Builder) MustBuild() *wizard.Definition {
	def, err := b.Build()
	if err != nil {
		panic(err)
	}
	return def
}
