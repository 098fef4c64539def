package flows

// Choice lists shown by the built-in wizards.
var (
	MusicGenres = []string{"Pop", "Rock", "Hip Hop", "R&B", "Jazz", "Classical", "Electronic", "Country", "Folk", "Indie"}

	Cuisines = []string{"Italian", "Mexican", "Asian", "Mediterranean", "American", "Indian", "French", "Middle Eastern", "Vegetarian", "Desserts"}

	DietaryRestrictions = []string{"Vegetarian", "Vegan", "Gluten-Free", "Dairy-Free", "Nut-Free", "Low-Carb", "Keto", "Paleo"}

	Moods = []string{"Relaxed", "Energetic", "Focused", "Creative", "Celebratory", "Romantic", "Family-friendly", "Adventurous"}

	Budgets = []string{"low", "medium", "high"}

	MusicPlatforms = []string{"spotify", "youtube"}

	Themes = []string{"italian", "asian", "mediterranean", "comfort", "healthy", "custom"}

	RecipeTypes = []string{"main", "appetizer", "dessert", "breakfast", "lunch", "dinner"}

	Stores = []string{"wholefoods", "traderjoes", "safeway", "kroger", "target", "walmart", "local"}

	AmbienceTypes = []string{"music", "podcast", "ambient"}

	SetupGenres = []string{"jazz", "classical", "pop", "rock", "electronic", "hiphop", "country", "rnb"}

	PodcastTypes = []string{"cooking", "comedy", "news", "storytelling", "educational", "business", "technology"}

	AmbientSounds = []string{"rainforest", "ocean", "fireplace", "cafe", "rain", "whitenoise", "cityscape"}
)
