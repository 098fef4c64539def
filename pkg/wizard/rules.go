package wizard

import (
	"fmt"
	"slices"
	"strings"

	"github.com/mughesh03/aromatone/pkg/domain"
)

// RuleKind names a step validation policy.
type RuleKind string

const (
	// RuleRequired demands a non-empty value: non-blank string, non-empty
	// list, true bool or non-zero number.
	RuleRequired RuleKind = "required"
	// RuleRequiredWhen applies RuleRequired only while field When equals Equals.
	RuleRequiredWhen RuleKind = "required_when"
	// RuleMinItems demands at least Min entries in a list field.
	RuleMinItems RuleKind = "min_items"
	// RuleOneOf demands a string value from Values.
	RuleOneOf RuleKind = "one_of"
)

// Rule is one entry of a step's validation table.
type Rule struct {
	Kind   RuleKind `json:"rule" yaml:"rule" mapstructure:"rule"`
	Field  string   `json:"field" yaml:"field" mapstructure:"field"`
	When   string   `json:"when,omitempty" yaml:"when,omitempty" mapstructure:"when"`
	Equals string   `json:"equals,omitempty" yaml:"equals,omitempty" mapstructure:"equals"`
	Min    int      `json:"min,omitempty" yaml:"min,omitempty" mapstructure:"min"`
	Values []string `json:"values,omitempty" yaml:"values,omitempty" mapstructure:"values"`
}

type ruleCheck func(r Rule, form domain.FormData) bool

var ruleTable = map[RuleKind]ruleCheck{
	RuleRequired: func(r Rule, form domain.FormData) bool {
		return !form.IsEmpty(r.Field)
	},
	RuleRequiredWhen: func(r Rule, form domain.FormData) bool {
		if form.String(r.When) != r.Equals {
			return true
		}
		return !form.IsEmpty(r.Field)
	},
	RuleMinItems: func(r Rule, form domain.FormData) bool {
		return len(form.List(r.Field)) >= r.Min
	},
	RuleOneOf: func(r Rule, form domain.FormData) bool {
		return slices.Contains(r.Values, form.String(r.Field))
	},
}

// Required builds a RuleRequired entry.
func Required(field string) Rule {
	return Rule{Kind: RuleRequired, Field: field}
}

// RequiredWhen builds a RuleRequiredWhen entry.
func RequiredWhen(field, when, equals string) Rule {
	return Rule{Kind: RuleRequiredWhen, Field: field, When: when, Equals: equals}
}

// MinItems builds a RuleMinItems entry.
func MinItems(field string, min int) Rule {
	return Rule{Kind: RuleMinItems, Field: field, Min: min}
}

// OneOf builds a RuleOneOf entry.
func OneOf(field string, values ...string) Rule {
	return Rule{Kind: RuleOneOf, Field: field, Values: values}
}

// Known reports whether the rule kind is in the rule table.
func (r Rule) Known() bool {
	_, ok := ruleTable[r.Kind]
	return ok
}

// Holds evaluates the rule against the form. Unknown kinds never hold;
// Definition.Validate rejects them before a definition is used.
func (r Rule) Holds(form domain.FormData) bool {
	check, ok := ruleTable[r.Kind]
	if !ok {
		return false
	}
	return check(r, form)
}

// Describe returns a short human-readable statement of the rule.
func (r Rule) Describe() string {
	switch r.Kind {
	case RuleRequired:
		return fmt.Sprintf("%s is required", r.Field)
	case RuleRequiredWhen:
		return fmt.Sprintf("%s is required when %s is %q", r.Field, r.When, r.Equals)
	case RuleMinItems:
		return fmt.Sprintf("%s needs at least %d selection(s)", r.Field, r.Min)
	case RuleOneOf:
		return fmt.Sprintf("%s must be one of %s", r.Field, strings.Join(r.Values, ", "))
	}
	return fmt.Sprintf("unknown rule %q on %s", r.Kind, r.Field)
}
