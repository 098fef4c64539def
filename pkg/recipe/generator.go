package recipe

import (
	"context"

	"github.com/mughesh03/aromatone/pkg/domain"
)

// SuggestionCount is how many recipes a generator returns.
const SuggestionCount = 3

// Generator produces recipe suggestions.
type Generator interface {
	Generate(ctx context.Context, prefs Preferences) ([]domain.Recipe, error)
}

// MockGenerator ignores preferences and returns the built-in catalogue.
type MockGenerator struct{}

func (MockGenerator) Generate(ctx context.Context, _ Preferences) ([]domain.Recipe, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return Catalogue(), nil
}

// Find looks a recipe up by ID in a suggestion list.
func Find(recipes []domain.Recipe, id string) (domain.Recipe, bool) {
	for _, r := range recipes {
		if r.ID == id {
			return r.Clone(), true
		}
	}
	return domain.Recipe{}, false
}
