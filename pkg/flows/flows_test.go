package flows_test

import (
	"context"
	"testing"

	"github.com/mughesh03/aromatone/pkg/domain"
	"github.com/mughesh03/aromatone/pkg/flows"
	"github.com/mughesh03/aromatone/pkg/wizard"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newEngine(t *testing.T, opts ...wizard.Option) *wizard.Engine {
	t.Helper()
	reg := wizard.NewRegistry()
	require.NoError(t, flows.Register(reg))
	return wizard.NewEngine(reg, opts...)
}

func run(t *testing.T, e *wizard.Engine, sess *domain.Session, evs ...wizard.Event) (*domain.Session, wizard.Outcome) {
	t.Helper()
	var out wizard.Outcome
	for _, ev := range evs {
		var err error
		sess, out, err = e.Dispatch(context.Background(), sess, ev)
		require.NoError(t, err, "event %+v", ev)
	}
	return sess, out
}

func TestRegister(t *testing.T) {
	reg := wizard.NewRegistry()
	require.NoError(t, flows.Register(reg))
	assert.Equal(t, []string{"recipe-flow", "recipe-setup", "signup"}, reg.Variants())

	steps := map[string]int{flows.Signup: 6, flows.RecipeSetup: 3, flows.RecipeFlow: 4}
	for variant, n := range steps {
		def, err := reg.Get(variant)
		require.NoError(t, err)
		assert.Equal(t, n, def.TotalSteps(), variant)
	}
}

func TestSignup_InitialForm(t *testing.T) {
	def := flows.SignupDefinition()
	assert.Equal(t, domain.FormData{
		"name": "", "email": "", "password": "",
		"musicPlatform": "", "musicGenres": []string{}, "playlist": "",
		"recipeTypes": []string{}, "dietaryRestrictions": []string{},
		"budget":      "medium",
		"cookingMood": []string{},
		"location":    "",
	}, def.NewForm())
}

func TestSignup_EmptyGenresCompletes(t *testing.T) {
	rec := &wizard.Recorder{}
	e := newEngine(t, wizard.WithCompleter(rec))
	sess, err := e.Start(context.Background(), flows.Signup, "")
	require.NoError(t, err)

	sess, out := run(t, e, sess, wizard.Next())
	assert.Equal(t, wizard.OutcomeBlocked, out.Kind)

	sess, _ = run(t, e, sess,
		wizard.SetField("name", "A"),
		wizard.SetField("email", "a@b.c"),
		wizard.SetField("password", "x"),
	)
	for step := 1; step < 6; step++ {
		sess, out = run(t, e, sess, wizard.Next())
		require.Equal(t, wizard.OutcomeAdvanced, out.Kind, "step %d", step)
	}
	assert.Equal(t, float64(100), sess.State.Progress())

	_, out = run(t, e, sess, wizard.Next())
	require.Equal(t, wizard.OutcomeCompleted, out.Kind)

	results := rec.Results()
	require.Len(t, results, 1)
	assert.Equal(t, "/dashboard", results[0].Redirect)
	assert.Equal(t, []string{}, results[0].Data["musicGenres"])
	assert.Equal(t, "medium", results[0].Data["budget"])
	assert.Len(t, results[0].Data, 11)
}

func TestRecipeSetup_ConditionalRequirements(t *testing.T) {
	e := newEngine(t)
	sess, err := e.Start(context.Background(), flows.RecipeSetup, "")
	require.NoError(t, err)

	sess, out := run(t, e, sess,
		wizard.SetField("theme", "custom"),
		wizard.SetField("recipeType", "dinner"),
		wizard.Next(),
	)
	assert.Equal(t, wizard.OutcomeBlocked, out.Kind)

	sess, out = run(t, e, sess, wizard.SetField("customTheme", "Noir brunch"), wizard.Next())
	require.Equal(t, wizard.OutcomeAdvanced, out.Kind)

	sess, out = run(t, e, sess, wizard.SetField("store", "local"), wizard.Next())
	assert.Equal(t, wizard.OutcomeBlocked, out.Kind, "location is required too")
	assert.Equal(t, 2, sess.State.CurrentStep)

	sess, out = run(t, e, sess, wizard.SetField("location", "Lisbon"), wizard.Next())
	require.Equal(t, wizard.OutcomeAdvanced, out.Kind)

	// ambienceType defaults to music, so a genre is needed.
	sess, out = run(t, e, sess, wizard.Next())
	assert.Equal(t, wizard.OutcomeBlocked, out.Kind)

	sess, out = run(t, e, sess, wizard.SetField("ambienceType", "podcast"), wizard.SetField("podcastType", "news"), wizard.Next())
	assert.Equal(t, wizard.OutcomeCompleted, out.Kind)
	assert.True(t, sess.Completed())
}

func TestRecipeFlow_IngredientsNeedOne(t *testing.T) {
	e := newEngine(t)
	sess, err := e.Start(context.Background(), flows.RecipeFlow, "")
	require.NoError(t, err)

	sess, _ = run(t, e, sess,
		wizard.SetField("desiredDish", "pasta"), wizard.Next(),
		wizard.SetField("mood", "Relaxed"), wizard.Next(),
	)
	require.Equal(t, 3, sess.State.CurrentStep)

	sess, out := run(t, e, sess, wizard.Next())
	assert.Equal(t, wizard.OutcomeBlocked, out.Kind)

	sess, out = run(t, e, sess, wizard.ToggleField("availableIngredients", "garlic"), wizard.Next())
	assert.Equal(t, wizard.OutcomeAdvanced, out.Kind)
	assert.Equal(t, 4, sess.State.CurrentStep)
}
