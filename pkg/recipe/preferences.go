package recipe

import "github.com/mughesh03/aromatone/pkg/domain"

// Preferences drive a suggestion request.
type Preferences struct {
	Mood                 string   `json:"mood"`
	DesiredDish          string   `json:"desiredDish"`
	AvailableIngredients []string `json:"availableIngredients"`
}

// PreferencesFromForm reads the answers collected by the recipe flow wizard.
func PreferencesFromForm(form domain.FormData) Preferences {
	return Preferences{
		Mood:                 form.String("mood"),
		DesiredDish:          form.String("desiredDish"),
		AvailableIngredients: append([]string(nil), form.List("availableIngredients")...),
	}
}
