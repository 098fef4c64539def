package wizard_test

import (
	"context"
	"testing"

	"github.com/mughesh03/aromatone/pkg/wizard"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRender(t *testing.T) {
	e := newEngine(t)
	def := testDefinition()
	sess, err := e.Start(context.Background(), "test", "s1")
	require.NoError(t, err)

	v := wizard.Render(def, sess)
	assert.Equal(t, "account", v.StepID)
	assert.False(t, v.CanAdvance)
	assert.False(t, v.CanGoBack)
	assert.Equal(t, []string{"name is required", "password is required"}, v.Unmet)
	require.Len(t, v.Fields, 2)
	assert.Equal(t, "", v.Fields[1].Value)

	sess, _ = dispatch(t, e, sess, wizard.SetField("name", "Ada"))
	sess, _ = dispatch(t, e, sess, wizard.SetField("password", "hunter2"))
	sess, _ = dispatch(t, e, sess, wizard.Next())

	v = wizard.Render(def, sess)
	assert.Equal(t, 2, v.Step)
	assert.True(t, v.CanGoBack)
	assert.Equal(t, float64(50), v.Progress)
	assert.Equal(t, []wizard.MarkerState{wizard.MarkerCompleted, wizard.MarkerActive, wizard.MarkerUpcoming},
		[]wizard.MarkerState{v.Markers[0].State, v.Markers[1].State, v.Markers[2].State})

	sess, _ = dispatch(t, e, sess, wizard.Prev())
	v = wizard.Render(def, sess)
	assert.Equal(t, "[REDACTED]", v.Fields[1].Value)
}

func TestPresent(t *testing.T) {
	fwd := wizard.Present(1, 2)
	assert.Equal(t, wizard.DirectionForward, fwd.Direction)
	assert.Equal(t, wizard.Frame{X: 100, Opacity: 0}, fwd.Initial)
	assert.Equal(t, wizard.Frame{X: 0, Opacity: 1}, fwd.Animate)
	assert.Equal(t, wizard.Frame{X: -100, Opacity: 0}, fwd.Exit)

	back := wizard.Present(3, 2)
	assert.Equal(t, wizard.DirectionBackward, back.Direction)
	assert.Equal(t, float64(-100), back.Initial.X)
	assert.Equal(t, float64(100), back.Exit.X)

	assert.Equal(t, wizard.DirectionNone, wizard.Present(2, 2).Direction)
}
