package cli

import (
	"bytes"
	"context"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mughesh03/aromatone/pkg/adapters/memory"
	"github.com/mughesh03/aromatone/pkg/domain"
	"github.com/mughesh03/aromatone/pkg/flows"
	"github.com/mughesh03/aromatone/pkg/recipe"
	"github.com/mughesh03/aromatone/pkg/session"
	"github.com/mughesh03/aromatone/pkg/wizard"
)

func newEngine(t *testing.T) *wizard.Engine {
	t.Helper()
	reg := wizard.NewRegistry()
	require.NoError(t, flows.Register(reg))
	return wizard.NewEngine(reg)
}

func lines(ls ...string) *strings.Reader {
	return strings.NewReader(strings.Join(ls, "\n") + "\n")
}

func TestWizardRunner_RecipeFlow(t *testing.T) {
	// Each step asks its fields, then the navigation command. The first
	// advance is attempted with an empty dish and gets blocked.
	in := lines(
		"", "",
		"Pasta", "",
		"Relaxed", "",
		"tomato, , basil", "",
		"1", "",
	)
	var out bytes.Buffer
	runner := NewWizardRunner(newEngine(t), in, &out)

	res, err := runner.Run(context.Background(), flows.RecipeFlow, "")
	require.NoError(t, err)
	require.NotNil(t, res)

	assert.Equal(t, "Pasta", res.Data["desiredDish"])
	assert.Equal(t, []string{"tomato", "basil"}, res.Data["availableIngredients"])
	assert.Equal(t, "1", res.Data["selectedRecipe"])
	assert.Contains(t, out.String(), "! desiredDish is required")
	assert.Contains(t, out.String(), "## What are you craving?")
}

func TestWizardRunner_BackAndQuit(t *testing.T) {
	in := lines("Soup", "", "", "b", "", "q")
	var out bytes.Buffer
	store := memory.NewStore()
	mgr := session.NewManager(store)
	runner := NewWizardRunner(newEngine(t), in, &out, WithSessions(mgr))

	_, err := runner.Run(context.Background(), flows.RecipeFlow, "cli-1")
	assert.ErrorIs(t, err, ErrQuit)
	assert.True(t, Interrupted(err))

	sess, err := store.Load(context.Background(), "cli-1")
	require.NoError(t, err)
	assert.Equal(t, 1, sess.State.CurrentStep)
	assert.Equal(t, "Soup", sess.Form.String("desiredDish"))
}

func TestWizardRunner_Resume(t *testing.T) {
	engine := newEngine(t)
	mgr := session.NewManager(memory.NewStore())
	ctx := context.Background()

	sess, err := engine.Start(ctx, flows.RecipeFlow, "cli-2")
	require.NoError(t, err)
	sess, _, err = engine.Dispatch(ctx, sess, wizard.SetField("desiredDish", "Curry"))
	require.NoError(t, err)
	sess, _, err = engine.Dispatch(ctx, sess, wizard.Next())
	require.NoError(t, err)
	require.NoError(t, mgr.Save(ctx, sess))

	var out bytes.Buffer
	runner := NewWizardRunner(engine, lines("Focused", "", "rice", "", "2", ""), &out, WithSessions(mgr))
	res, err := runner.Run(ctx, flows.RecipeFlow, "cli-2")
	require.NoError(t, err)
	assert.Equal(t, "Curry", res.Data["desiredDish"])
	assert.Contains(t, out.String(), "Resuming session 'cli-2' at step 2")

	_, err = mgr.Load(ctx, "cli-2")
	assert.ErrorIs(t, err, domain.ErrSessionNotFound, "completed sessions are removed")

	_, err = NewWizardRunner(engine, lines(), &out).Run(ctx, flows.Signup, "")
	assert.True(t, Interrupted(err), "input ending early stops the run")
}

func TestWizardRunner_VariantMismatch(t *testing.T) {
	engine := newEngine(t)
	mgr := session.NewManager(memory.NewStore())
	ctx := context.Background()
	sess, err := engine.Start(ctx, flows.Signup, "s")
	require.NoError(t, err)
	require.NoError(t, mgr.Save(ctx, sess))

	_, err = NewWizardRunner(engine, lines(), &bytes.Buffer{}, WithSessions(mgr)).Run(ctx, flows.RecipeFlow, "s")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `belongs to wizard "signup"`)
}

func TestParseAnswer(t *testing.T) {
	v, err := parseAnswer(domain.KindBool, "Yes")
	require.NoError(t, err)
	assert.Equal(t, true, v)

	_, err = parseAnswer(domain.KindBool, "maybe")
	assert.Error(t, err)

	v, err = parseAnswer(domain.KindNumber, "2.5")
	require.NoError(t, err)
	assert.Equal(t, 2.5, v)

	_, err = parseAnswer(domain.KindNumber, "two")
	assert.Error(t, err)

	v, err = parseAnswer(domain.KindList, "-")
	require.NoError(t, err)
	assert.Equal(t, []string{}, v)
}

func TestPrompter_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	blocked, w := io.Pipe()
	defer w.Close()
	_, err := NewPrompter(blocked, &bytes.Buffer{}).Ask(ctx, "> ")
	assert.ErrorIs(t, err, context.Canceled)
}

func TestCook(t *testing.T) {
	r := recipe.Catalogue()[0]
	clock := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	now := func() time.Time {
		clock = clock.Add(30 * time.Second)
		return clock
	}

	answers := make([]string, 0, len(r.Steps)+1)
	answers = append(answers, "", "b")
	for range r.Steps {
		answers = append(answers, "")
	}
	var out bytes.Buffer
	elapsed, err := Cook(context.Background(), lines(answers...), &out, r, CookOptions{Mood: "energetic", Now: now})
	require.NoError(t, err)

	assert.Equal(t, 30*time.Second, elapsed)
	assert.Contains(t, out.String(), "Ambience: Energetic")
	assert.Contains(t, out.String(), "Step 1 of")
	assert.Contains(t, out.String(), "Cooked in 00:30.")
}

func TestCook_Quit(t *testing.T) {
	r := recipe.Catalogue()[1]
	_, err := Cook(context.Background(), lines("q"), &bytes.Buffer{}, r, CookOptions{})
	assert.ErrorIs(t, err, ErrQuit)

	_, err = Cook(context.Background(), lines(), &bytes.Buffer{}, domain.Recipe{Title: "Nothing"}, CookOptions{})
	assert.Error(t, err)
}
