package tui

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mughesh03/aromatone/pkg/domain"
	"github.com/mughesh03/aromatone/pkg/wizard"
)

func TestStepMarkdown(t *testing.T) {
	v := wizard.View{
		Step:        2,
		TotalSteps:  3,
		StepTitle:   "Your Music Taste",
		Description: "Pick genres.",
		Progress:    50,
		Fields: []wizard.FieldView{
			{Name: "musicGenres", Label: "Favorite Genres", Kind: domain.KindList, Value: []string{"Jazz", "Pop"}, Options: []string{"Jazz", "Pop", "Rock"}},
			{Name: "playlist", Kind: domain.KindString, Value: ""},
			{Name: "notify", Kind: domain.KindBool, Value: true},
		},
		Unmet: []string{"musicGenres needs at least 3 selection(s)"},
	}

	md := StepMarkdown(v)
	assert.Contains(t, md, "## Your Music Taste")
	assert.Contains(t, md, "*Step 2 of 3* · 50%")
	assert.Contains(t, md, "- **Favorite Genres**: Jazz, Pop")
	assert.Contains(t, md, "options: Jazz, Pop, Rock")
	assert.Contains(t, md, "- **playlist**: _empty_")
	assert.Contains(t, md, "- **notify**: yes")
	assert.Contains(t, md, "> musicGenres needs at least 3 selection(s)")
}

func TestRecipeMarkdown(t *testing.T) {
	md := RecipeMarkdown(domain.Recipe{
		Title:       "Soup",
		Difficulty:  "Easy",
		Servings:    2,
		Ingredients: []string{"water"},
		Steps:       []string{"Boil", "Serve"},
	})
	assert.Contains(t, md, "# Soup")
	assert.Contains(t, md, "| Easy |")
	assert.Contains(t, md, "- water")
	assert.Contains(t, md, "2. Serve")
}

func TestRenderers(t *testing.T) {
	out, err := PlainRenderer("# hi")
	require.NoError(t, err)
	assert.Equal(t, "# hi", out)

	out, err = NewRenderer(60)("# Hello")
	require.NoError(t, err)
	assert.Contains(t, out, "Hello")
}

func TestPrintBanner(t *testing.T) {
	var buf bytes.Buffer
	PrintBanner(&buf)
	assert.Equal(t, len(bannerLines)+2, strings.Count(buf.String(), "\n"))
	assert.Contains(t, Accent(&buf, "go"), "go")
}
