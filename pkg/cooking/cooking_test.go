package cooking_test

import (
	"testing"
	"time"

	"github.com/mughesh03/aromatone/pkg/cooking"
	"github.com/mughesh03/aromatone/pkg/domain"
	"github.com/mughesh03/aromatone/pkg/recipe"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSession_Bounds(t *testing.T) {
	r := recipe.Catalogue()[1]
	s, err := cooking.NewSession(r)
	require.NoError(t, err)

	assert.False(t, s.Prev())
	assert.Equal(t, 0, s.Index())
	assert.Equal(t, r.Steps[0], s.Current())

	for s.Next() {
	}
	assert.Equal(t, len(r.Steps)-1, s.Index())
	assert.True(t, s.Done())
	assert.Equal(t, float64(100), s.Progress())
	assert.False(t, s.Next())

	assert.True(t, s.Prev())
	assert.Equal(t, r.Steps[len(r.Steps)-2], s.Current())
}

func TestSession_EmptyRecipe(t *testing.T) {
	_, err := cooking.NewSession(domain.Recipe{Title: "Air"})
	assert.ErrorIs(t, err, cooking.ErrEmptyRecipe)
}

func TestAmbienceFor(t *testing.T) {
	assert.Equal(t, "https://example.com/upbeat-funk.mp3", cooking.AmbienceFor("energetic").AudioURL)
	assert.Equal(t, "Family-friendly", cooking.AmbienceFor("Family-friendly").Mood)
	fallback := cooking.AmbienceFor("grumpy")
	assert.Equal(t, "Relaxed", fallback.Mood)
	assert.Equal(t, "https://example.com/relaxing-jazz.mp3", fallback.AudioURL)
}

func TestFormatElapsed(t *testing.T) {
	cases := map[time.Duration]string{
		0:                              "00:00",
		59 * time.Second:               "00:59",
		61 * time.Second:               "01:01",
		75*time.Minute + 5*time.Second: "75:05",
		-3 * time.Second:               "00:00",
	}
	for d, want := range cases {
		assert.Equal(t, want, cooking.FormatElapsed(d), d.String())
	}
}

func TestRecorder(t *testing.T) {
	now := time.Unix(0, 0)
	rec := cooking.NewRecorder(func() time.Time { return now })

	rec.Start()
	now = now.Add(90 * time.Second)
	assert.True(t, rec.Recording())
	assert.Equal(t, "01:30", cooking.FormatElapsed(rec.Elapsed()))

	assert.Equal(t, 90*time.Second, rec.Stop())
	now = now.Add(time.Hour)
	assert.Equal(t, 90*time.Second, rec.Elapsed(), "stopped timer is frozen")

	rec.Start()
	assert.Zero(t, rec.Elapsed(), "new take clears the timer")
}
