package recipe

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/gosimple/slug"
	"github.com/mitchellh/mapstructure"
	"github.com/mughesh03/aromatone/pkg/domain"
	"github.com/mughesh03/aromatone/pkg/novita"
)

// ErrInvalidSuggestions is returned when the model reply cannot be read as recipes.
var ErrInvalidSuggestions = errors.New("failed to parse recipe suggestions")

const systemPrompt = "You are a helpful cooking assistant that generates personalized recipe suggestions based on user preferences, mood, and available ingredients. " +
	"You MUST respond with a valid JSON array containing exactly 3 recipe objects. " +
	"Each recipe object MUST have the following properties: id (number), title (string), description (string), difficulty (string), prepTime (string), cookTime (string), servings (number), ingredients (array of strings), steps (array of strings)."

// Chatter is the part of the model client the generator needs.
type Chatter interface {
	ChatCompletion(ctx context.Context, messages ...novita.Message) (string, error)
}

// LLMGenerator asks the chat model for suggestions.
type LLMGenerator struct {
	chat Chatter
}

// NewLLMGenerator wraps a chat client.
func NewLLMGenerator(chat Chatter) *LLMGenerator {
	return &LLMGenerator{chat: chat}
}

// Generate prompts the model and decodes its reply.
func (g *LLMGenerator) Generate(ctx context.Context, prefs Preferences) ([]domain.Recipe, error) {
	content, err := g.chat.ChatCompletion(ctx,
		novita.Message{Role: "system", Content: systemPrompt},
		novita.Message{Role: "user", Content: userPrompt(prefs)},
	)
	if err != nil {
		return nil, fmt.Errorf("generate recipes: %w", err)
	}
	return ParseSuggestions(content)
}

func userPrompt(p Preferences) string {
	return fmt.Sprintf("Generate 3 recipe suggestions for a %s cooking experience.\nDesired dish type: %s\nAvailable ingredients: %s",
		p.Mood, p.DesiredDish, strings.Join(p.AvailableIngredients, ", "))
}

// ParseSuggestions reads a model reply: a JSON array of recipes, optionally
// inside a markdown code fence or a {"recipes": [...]} wrapper. Numeric ids
// and string servings are accepted; a missing id is derived from the title.
func ParseSuggestions(content string) ([]domain.Recipe, error) {
	raw := stripFence(content)

	var items []map[string]any
	if err := json.Unmarshal([]byte(raw), &items); err != nil {
		var wrapped struct {
			Recipes []map[string]any `json:"recipes"`
		}
		if err2 := json.Unmarshal([]byte(raw), &wrapped); err2 != nil || wrapped.Recipes == nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidSuggestions, err)
		}
		items = wrapped.Recipes
	}
	if len(items) == 0 {
		return nil, fmt.Errorf("%w: no recipes", ErrInvalidSuggestions)
	}

	recipes := make([]domain.Recipe, 0, len(items))
	seen := make(map[string]bool, len(items))
	for i, item := range items {
		var r domain.Recipe
		dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
			Result:           &r,
			WeaklyTypedInput: true,
		})
		if err != nil {
			return nil, err
		}
		if err := dec.Decode(item); err != nil {
			return nil, fmt.Errorf("%w: recipe %d: %v", ErrInvalidSuggestions, i, err)
		}
		if strings.TrimSpace(r.Title) == "" {
			return nil, fmt.Errorf("%w: recipe %d has no title", ErrInvalidSuggestions, i)
		}
		if r.ID == "" {
			r.ID = slug.Make(r.Title)
		}
		if seen[r.ID] {
			r.ID = fmt.Sprintf("%s-%d", r.ID, i+1)
		}
		seen[r.ID] = true
		recipes = append(recipes, r)
	}
	return recipes, nil
}

func stripFence(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```")
	if nl := strings.IndexByte(s, '\n'); nl >= 0 {
		s = s[nl+1:]
	}
	return strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(s), "```"))
}
