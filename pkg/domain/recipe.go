package domain

// Recipe is a generated recipe suggestion. Recipes are immutable once
// produced; they live in memory for the duration of a session.
type Recipe struct {
	ID          string   `json:"id" mapstructure:"id"`
	Title       string   `json:"title" mapstructure:"title"`
	Description string   `json:"description" mapstructure:"description"`
	Difficulty  string   `json:"difficulty" mapstructure:"difficulty"`
	PrepTime    string   `json:"prepTime" mapstructure:"prepTime"`
	CookTime    string   `json:"cookTime" mapstructure:"cookTime"`
	Servings    int      `json:"servings" mapstructure:"servings"`
	Ingredients []string `json:"ingredients" mapstructure:"ingredients"`
	Steps       []string `json:"steps" mapstructure:"steps"`
}

// Clone returns a copy with its own ingredient and step slices.
func (r Recipe) Clone() Recipe {
	out := r
	out.Ingredients = append([]string(nil), r.Ingredients...)
	out.Steps = append([]string(nil), r.Steps...)
	return out
}
