package wizard_test

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/mughesh03/aromatone/pkg/domain"
	"github.com/mughesh03/aromatone/pkg/wizard"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefinition_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(d *wizard.Definition)
		problem string
	}{
		{"no steps", func(d *wizard.Definition) { d.Steps = nil }, "at least one step"},
		{"duplicate field", func(d *wizard.Definition) {
			d.Fields = append(d.Fields, wizard.Field{Name: "name", Kind: domain.KindString})
		}, `duplicate field "name"`},
		{"duplicate step", func(d *wizard.Definition) {
			d.Steps = append(d.Steps, wizard.Step{ID: "music"})
		}, `duplicate step "music"`},
		{"undeclared field", func(d *wizard.Definition) {
			d.Steps[0].Fields = append(d.Steps[0].Fields, "ghost")
		}, `undeclared field "ghost"`},
		{"min_items on string", func(d *wizard.Definition) {
			d.Steps[0].Rules = append(d.Steps[0].Rules, wizard.MinItems("name", 1))
		}, "min_items needs a list field"},
		{"unknown rule", func(d *wizard.Definition) {
			d.Steps[0].Rules = append(d.Steps[0].Rules, wizard.Rule{Kind: "regex", Field: "name"})
		}, `unknown rule "regex"`},
		{"bad kind", func(d *wizard.Definition) {
			d.Fields[0].Kind = "date"
		}, `unsupported kind "date"`},
		{"bad default", func(d *wizard.Definition) {
			d.Fields[4].Default = "yes"
		}, `field "notify" default`},
	}

	require.NoError(t, testDefinition().Validate())

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			def := testDefinition()
			tt.mutate(def)
			err := def.Validate()
			var defErr *wizard.DefinitionError
			require.True(t, errors.As(err, &defErr), "expected DefinitionError, got %v", err)
			assert.Contains(t, strings.Join(defErr.Problems, "\n"), tt.problem)
		})
	}
}

func TestDefinition_CanAdvance(t *testing.T) {
	def := testDefinition()
	form := def.NewForm()

	assert.False(t, def.CanAdvance(1, form))
	form["name"], form["password"] = "Ada", "pw"
	assert.True(t, def.CanAdvance(1, form))

	assert.False(t, def.CanAdvance(2, form))
	form["genres"] = []string{"Pop"}
	assert.True(t, def.CanAdvance(2, form))

	form["budget"] = "lavish"
	assert.False(t, def.CanAdvance(3, form))
}

func TestRequiredWhen(t *testing.T) {
	rule := wizard.RequiredWhen("customTheme", "theme", "custom")

	assert.True(t, rule.Holds(domain.FormData{"theme": "italian", "customTheme": ""}))
	assert.False(t, rule.Holds(domain.FormData{"theme": "custom", "customTheme": " "}))
	assert.True(t, rule.Holds(domain.FormData{"theme": "custom", "customTheme": "Noir"}))
}

func TestLoadDefinition(t *testing.T) {
	def, err := wizard.LoadDefinitionFile(filepath.Join("testdata", "pantry.yaml"))
	require.NoError(t, err)

	assert.Equal(t, "pantry", def.Variant)
	assert.Equal(t, 2, def.TotalSteps())
	assert.Equal(t, domain.FormData{"dish": "", "ingredients": []string{"salt"}, "servings": float64(2)}, def.NewForm())

	step, ok := def.Step(2)
	require.True(t, ok)
	assert.Equal(t, []wizard.Rule{wizard.MinItems("ingredients", 2)}, step.Rules)
}

func TestLoadDefinition_RejectsUnknownKeys(t *testing.T) {
	_, err := wizard.LoadDefinition(strings.NewReader("variant: x\ncolour: red\nsteps: [{id: a}]\n"))
	assert.Error(t, err)
}

func TestLoadDir(t *testing.T) {
	dir := t.TempDir()
	data, err := os.ReadFile(filepath.Join("testdata", "pantry.yaml"))
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "pantry.yaml"), data, 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("ignored"), 0o644))

	defs, err := wizard.LoadDir(dir)
	require.NoError(t, err)
	require.Len(t, defs, 1)
	assert.Equal(t, "pantry", defs[0].Variant)
}
