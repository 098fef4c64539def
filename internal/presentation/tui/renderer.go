package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"

	"github.com/mughesh03/aromatone/pkg/domain"
	"github.com/mughesh03/aromatone/pkg/wizard"
)

// Renderer turns markdown into terminal output.
type Renderer func(markdown string) (string, error)

// NewRenderer returns a glamour renderer with the background-detected
// style. When glamour cannot be initialised the markdown is returned as is.
func NewRenderer(width int) Renderer {
	opts := []glamour.TermRendererOption{glamour.WithAutoStyle()}
	if width > 0 {
		opts = append(opts, glamour.WithWordWrap(width))
	}
	r, err := glamour.NewTermRenderer(opts...)
	if err != nil {
		return PlainRenderer
	}
	return r.Render
}

// PlainRenderer returns the markdown unchanged.
func PlainRenderer(markdown string) (string, error) {
	return markdown, nil
}

// StepMarkdown describes the current step of a view.
func StepMarkdown(v wizard.View) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "## %s\n\n", v.StepTitle)
	fmt.Fprintf(&sb, "*Step %d of %d* · %.0f%%\n\n", v.Step, v.TotalSteps, v.Progress)
	if v.Description != "" {
		fmt.Fprintf(&sb, "%s\n\n", v.Description)
	}
	for _, f := range v.Fields {
		label := f.Label
		if label == "" {
			label = f.Name
		}
		fmt.Fprintf(&sb, "- **%s**: %s\n", label, formatValue(f.Value))
		if len(f.Options) > 0 {
			fmt.Fprintf(&sb, "  options: %s\n", strings.Join(f.Options, ", "))
		}
	}
	if len(v.Unmet) > 0 {
		sb.WriteString("\n")
		for _, u := range v.Unmet {
			fmt.Fprintf(&sb, "> %s\n", u)
		}
	}
	return sb.String()
}

// RecipeMarkdown describes a recipe with its ingredients and steps.
func RecipeMarkdown(r domain.Recipe) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "# %s\n\n%s\n\n", r.Title, r.Description)
	fmt.Fprintf(&sb, "| Difficulty | Prep | Cook | Servings |\n|---|---|---|---|\n| %s | %s | %s | %d |\n\n",
		r.Difficulty, r.PrepTime, r.CookTime, r.Servings)
	sb.WriteString("## Ingredients\n\n")
	for _, ing := range r.Ingredients {
		fmt.Fprintf(&sb, "- %s\n", ing)
	}
	sb.WriteString("\n## Steps\n\n")
	for i, step := range r.Steps {
		fmt.Fprintf(&sb, "%d. %s\n", i+1, step)
	}
	return sb.String()
}

func formatValue(v any) string {
	switch val := v.(type) {
	case nil:
		return "_empty_"
	case string:
		if val == "" {
			return "_empty_"
		}
		return val
	case bool:
		if val {
			return "yes"
		}
		return "no"
	case float64:
		return fmt.Sprintf("%g", val)
	case []string:
		if len(val) == 0 {
			return "_none_"
		}
		return strings.Join(val, ", ")
	}
	return fmt.Sprint(v)
}
