package recipe

import "github.com/mughesh03/aromatone/pkg/domain"

var catalogue = []domain.Recipe{
	{
		ID:          "1",
		Title:       "Creamy Garlic Parmesan Pasta",
		Description: "A rich and creamy pasta dish perfect for a relaxing evening.",
		Difficulty:  "Easy",
		PrepTime:    "10 mins",
		CookTime:    "20 mins",
		Servings:    4,
		Ingredients: []string{
			"8 oz fettuccine pasta",
			"2 tbsp olive oil",
			"4 cloves garlic, minced",
			"1 cup heavy cream",
			"1 cup grated Parmesan cheese",
			"Salt and pepper to taste",
			"Fresh parsley for garnish",
		},
		Steps: []string{
			"Bring a large pot of salted water to a boil. Add pasta and cook according to package directions until al dente.",
			"While pasta is cooking, heat olive oil in a large skillet over medium heat. Add minced garlic and sauté until fragrant, about 1 minute.",
			"Pour in heavy cream and bring to a simmer. Cook for 3-4 minutes until slightly thickened.",
			"Reduce heat to low and gradually whisk in Parmesan cheese until melted and smooth.",
			"Season with salt and pepper to taste.",
			"Drain pasta and add directly to the sauce, tossing to coat evenly.",
			"Serve immediately, garnished with fresh parsley and additional Parmesan if desired.",
		},
	},
	{
		ID:          "2",
		Title:       "Spicy Thai Basil Stir-Fry",
		Description: "An energetic fusion of Thai flavors with fresh vegetables.",
		Difficulty:  "Medium",
		PrepTime:    "15 mins",
		CookTime:    "10 mins",
		Servings:    4,
		Ingredients: []string{
			"1 lb chicken breast, sliced",
			"3 cloves garlic, minced",
			"2 Thai chilies, chopped",
			"1 cup Thai basil leaves",
			"2 tbsp soy sauce",
			"1 tbsp fish sauce",
			"1 tbsp oyster sauce",
			"Vegetable oil for cooking",
		},
		Steps: []string{
			"Heat oil in a wok or large skillet over high heat.",
			"Add garlic and chilies, stir-fry for 30 seconds until fragrant.",
			"Add chicken and stir-fry until nearly cooked through.",
			"Add soy sauce, fish sauce, and oyster sauce.",
			"Toss in Thai basil leaves and cook until just wilted.",
			"Serve hot with steamed rice.",
		},
	},
	{
		ID:          "3",
		Title:       "Mediterranean Quinoa Bowl",
		Description: "A healthy and colorful bowl packed with Mediterranean flavors.",
		Difficulty:  "Easy",
		PrepTime:    "10 mins",
		CookTime:    "15 mins",
		Servings:    4,
		Ingredients: []string{
			"1 cup quinoa",
			"2 cups water",
			"1 cucumber, diced",
			"1 cup cherry tomatoes, halved",
			"1/2 red onion, finely chopped",
			"1/2 cup Kalamata olives",
			"Feta cheese for topping",
			"Olive oil and lemon juice for dressing",
		},
		Steps: []string{
			"Rinse quinoa and combine with water in a pot.",
			"Bring to a boil, reduce heat, and simmer for 15 minutes.",
			"Let quinoa cool to room temperature.",
			"Combine quinoa with cucumber, tomatoes, and onion.",
			"Add olives and drizzle with olive oil and lemon juice.",
			"Top with crumbled feta cheese and serve.",
		},
	},
}

// Catalogue returns copies of the built-in recipes.
func Catalogue() []domain.Recipe {
	out := make([]domain.Recipe, len(catalogue))
	for i, r := range catalogue {
		out[i] = r.Clone()
	}
	return out
}
