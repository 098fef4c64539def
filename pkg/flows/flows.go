package flows

import (
	"github.com/mughesh03/aromatone/pkg/dsl"
	"github.com/mughesh03/aromatone/pkg/wizard"
)

// Variant names of the built-in wizards.
const (
	Signup      = "signup"
	RecipeSetup = "recipe-setup"
	RecipeFlow  = "recipe-flow"
)

// SignupDefinition is the six-step account wizard. Only the personal details
// step gates progress; the remaining steps accept any answer.
func SignupDefinition() *wizard.Definition {
	b := dsl.New(Signup).Title("Create your AromaTone account").Redirect("/dashboard")

	b.String("name").Label("Full Name")
	b.String("email").Label("Email Address")
	b.String("password").Label("Password").Secret()
	b.String("musicPlatform").Label("Music Platform").Options(MusicPlatforms...)
	b.List("musicGenres").Label("Favorite Genres").Options(MusicGenres...)
	b.String("playlist").Label("Playlist URL")
	b.List("recipeTypes").Label("Cuisines").Options(Cuisines...)
	b.List("dietaryRestrictions").Label("Dietary Restrictions").Options(DietaryRestrictions...)
	b.String("budget").Label("Budget").Default("medium").Options(Budgets...)
	b.List("cookingMood").Label("Cooking Mood").Options(Moods...)
	b.String("location").Label("City or Region")

	b.Step("personal").Title("Welcome to AromaTone").
		Description("Let's start with some basic information about you.").
		Fields("name", "email", "password").
		Require("name", "email", "password")
	b.Step("music").Title("Your Music Taste").
		Description("Connect a platform and pick the genres you cook to.").
		Fields("musicPlatform", "musicGenres", "playlist")
	b.Step("recipes").Title("Recipe Preferences").
		Description("Tell us what you like to cook and any dietary needs.").
		Fields("recipeTypes", "dietaryRestrictions")
	b.Step("budget").Title("Budget Preferences").
		Description("Let us know your budget range for cooking ingredients.").
		Fields("budget").
		OneOf("budget", Budgets...)
	b.Step("mood").Title("Cooking Mood").
		Description("How do you like to feel in the kitchen?").
		Fields("cookingMood")
	b.Step("location").Title("Your Location").
		Description("We use this to suggest local stores and seasonal ingredients.").
		Fields("location")

	return b.MustBuild()
}

// RecipeSetupDefinition configures a cooking session: theme, shopping and
// ambience. The ambience detail required depends on the ambience type.
func RecipeSetupDefinition() *wizard.Definition {
	b := dsl.New(RecipeSetup).Title("Set Up Your Cooking Experience").Redirect("/cooking")

	b.String("theme").Label("Cooking Theme").Options(Themes...)
	b.String("customTheme").Label("Custom Theme")
	b.String("recipeType").Label("Recipe Type").Options(RecipeTypes...)
	b.String("location").Label("Your Location")
	b.String("store").Label("Preferred Store").Options(Stores...)
	b.String("ambienceType").Label("Ambience").Default("music").Options(AmbienceTypes...)
	b.String("musicGenre").Label("Music Genre").Options(SetupGenres...)
	b.String("podcastType").Label("Podcast Type").Options(PodcastTypes...)
	b.String("soundType").Label("Ambient Sound").Options(AmbientSounds...)

	b.Step("theme").Title("Theme and Recipe").
		Fields("theme", "customTheme", "recipeType").
		Require("theme").
		RequireWhen("customTheme", "theme", "custom").
		Require("recipeType")
	b.Step("shopping").Title("Shopping").
		Fields("location", "store").
		Require("location").
		Require("store")
	b.Step("ambience").Title("Ambience").
		Fields("ambienceType", "musicGenre", "podcastType", "soundType").
		OneOf("ambienceType", AmbienceTypes...).
		RequireWhen("musicGenre", "ambienceType", "music").
		RequireWhen("podcastType", "ambienceType", "podcast").
		RequireWhen("soundType", "ambienceType", "ambient")

	return b.MustBuild()
}

// RecipeFlowDefinition walks the user from a craving to a chosen recipe.
func RecipeFlowDefinition() *wizard.Definition {
	b := dsl.New(RecipeFlow).Title("Find your recipe")

	b.String("desiredDish").Label("What would you like to cook?")
	b.String("mood").Label("Mood").Options(Moods...)
	b.List("availableIngredients").Label("Available Ingredients")
	b.String("selectedRecipe").Label("Recipe")

	b.Step("dish").Title("What are you craving?").
		Fields("desiredDish").
		Require("desiredDish")
	b.Step("mood").Title("How are you feeling?").
		Fields("mood").
		Require("mood")
	b.Step("ingredients").Title("What's in your kitchen?").
		Fields("availableIngredients").
		MinItems("availableIngredients", 1)
	b.Step("pick").Title("Pick a recipe").
		Fields("selectedRecipe").
		Require("selectedRecipe")

	return b.MustBuild()
}

// Definitions returns fresh copies of every built-in wizard.
func Definitions() []*wizard.Definition {
	return []*wizard.Definition{
		SignupDefinition(),
		RecipeSetupDefinition(),
		RecipeFlowDefinition(),
	}
}

// Register adds every built-in wizard to reg.
func Register(reg *wizard.Registry) error {
	for _, def := range Definitions() {
		if err := reg.Register(def); err != nil {
			return err
		}
	}
	return nil
}
