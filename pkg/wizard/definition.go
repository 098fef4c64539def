package wizard

import (
	"fmt"

	"github.com/mughesh03/aromatone/pkg/domain"
	"github.com/mughesh03/aromatone/pkg/schema"
)

// Field declares one key of a wizard's form record.
type Field struct {
	Name    string      `json:"name" yaml:"name"`
	Kind    domain.Kind `json:"kind" yaml:"kind"`
	Label   string      `json:"label,omitempty" yaml:"label,omitempty"`
	Default any         `json:"default,omitempty" yaml:"default,omitempty"`
	Options []string    `json:"options,omitempty" yaml:"options,omitempty"`
	// Secret fields are masked in views and logs.
	Secret bool `json:"secret,omitempty" yaml:"secret,omitempty"`
}

// Step is one screen of a wizard: the fields it shows and the rules that
// gate "Continue".
type Step struct {
	ID          string   `json:"id" yaml:"id"`
	Title       string   `json:"title" yaml:"title"`
	Description string   `json:"description,omitempty" yaml:"description,omitempty"`
	Fields      []string `json:"fields" yaml:"fields"`
	Rules       []Rule   `json:"rules,omitempty" yaml:"rules,omitempty"`
}

// Definition describes a wizard variant.
type Definition struct {
	Variant string `json:"variant" yaml:"variant"`
	Title   string `json:"title" yaml:"title"`
	// Redirect is the navigation target handed to the completer.
	Redirect string  `json:"redirect,omitempty" yaml:"redirect,omitempty"`
	Fields   []Field `json:"fields" yaml:"fields"`
	Steps    []Step  `json:"steps" yaml:"steps"`
}

// TotalSteps returns the number of steps.
func (d *Definition) TotalSteps() int {
	return len(d.Steps)
}

// Step returns the 1-based step n.
func (d *Definition) Step(n int) (Step, bool) {
	if n < 1 || n > len(d.Steps) {
		return Step{}, false
	}
	return d.Steps[n-1], true
}

// Field looks up a declared field.
func (d *Definition) Field(name string) (Field, bool) {
	for _, f := range d.Fields {
		if f.Name == name {
			return f, true
		}
	}
	return Field{}, false
}

// Schema returns the kind schema of the declared fields.
func (d *Definition) Schema() schema.Schema {
	s := make(schema.Schema, len(d.Fields))
	for _, f := range d.Fields {
		if t, err := schema.ForKind(f.Kind); err == nil {
			s[f.Name] = t
		}
	}
	return s
}

// SecretFields returns the names of fields flagged as secret.
func (d *Definition) SecretFields() []string {
	var out []string
	for _, f := range d.Fields {
		if f.Secret {
			out = append(out, f.Name)
		}
	}
	return out
}

// NewForm returns a fresh record holding every declared field, seeded with
// its default or the zero value of its kind.
func (d *Definition) NewForm() domain.FormData {
	form := make(domain.FormData, len(d.Fields))
	for _, f := range d.Fields {
		if f.Default != nil {
			if v, err := domain.NormalizeValue(f.Default); err == nil {
				form[f.Name] = v
				continue
			}
		}
		form[f.Name] = f.Kind.Zero()
	}
	return form
}

// CanAdvance reports whether every rule of step n holds for form.
// A step without rules is always advanceable.
func (d *Definition) CanAdvance(n int, form domain.FormData) bool {
	return len(d.Unmet(n, form)) == 0
}

// Unmet returns the rules of step n that do not hold.
func (d *Definition) Unmet(n int, form domain.FormData) []Rule {
	step, ok := d.Step(n)
	if !ok {
		return nil
	}
	var unmet []Rule
	for _, r := range step.Rules {
		if !r.Holds(form) {
			unmet = append(unmet, r)
		}
	}
	return unmet
}

// Validate checks the definition for structural problems.
func (d *Definition) Validate() error {
	var problems []string
	addf := func(format string, args ...any) {
		problems = append(problems, fmt.Sprintf(format, args...))
	}

	if d.Variant == "" {
		addf("variant is required")
	}
	if len(d.Steps) == 0 {
		addf("at least one step is required")
	}

	fields := make(map[string]Field, len(d.Fields))
	for _, f := range d.Fields {
		if f.Name == "" {
			addf("field with empty name")
			continue
		}
		if _, dup := fields[f.Name]; dup {
			addf("duplicate field %q", f.Name)
		}
		if !f.Kind.Valid() {
			addf("field %q has unsupported kind %q", f.Name, f.Kind)
		}
		if f.Default != nil {
			if v, err := domain.NormalizeValue(f.Default); err != nil {
				addf("field %q default: %v", f.Name, err)
			} else if t, err := schema.ForKind(f.Kind); err == nil {
				if err := t.Validate(v); err != nil {
					addf("field %q default: %v", f.Name, err)
				}
			}
		}
		fields[f.Name] = f
	}

	steps := make(map[string]bool, len(d.Steps))
	for i, s := range d.Steps {
		label := s.ID
		if label == "" {
			label = fmt.Sprintf("#%d", i+1)
			addf("step %s has no id", label)
		} else if steps[s.ID] {
			addf("duplicate step %q", s.ID)
		}
		steps[s.ID] = true

		for _, name := range s.Fields {
			if _, ok := fields[name]; !ok {
				addf("step %s references undeclared field %q", label, name)
			}
		}
		for _, r := range s.Rules {
			if !r.Known() {
				addf("step %s has unknown rule %q", label, r.Kind)
				continue
			}
			f, ok := fields[r.Field]
			if !ok {
				addf("step %s rule %s targets undeclared field %q", label, r.Kind, r.Field)
				continue
			}
			switch r.Kind {
			case RuleMinItems:
				if f.Kind != domain.KindList {
					addf("step %s rule min_items needs a list field, %q is %s", label, r.Field, f.Kind)
				}
			case RuleOneOf:
				if f.Kind != domain.KindString {
					addf("step %s rule one_of needs a string field, %q is %s", label, r.Field, f.Kind)
				}
			case RuleRequiredWhen:
				if _, ok := fields[r.When]; !ok {
					addf("step %s rule required_when depends on undeclared field %q", label, r.When)
				}
			}
		}
	}

	if len(problems) > 0 {
		return &DefinitionError{Variant: d.Variant, Problems: problems}
	}
	return nil
}
