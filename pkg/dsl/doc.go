/*
Package dsl provides a fluent Go builder for wizard definitions.

It is the programmatic counterpart of the YAML definitions read by
wizard.LoadDefinition and is how the built-in flows are declared.

Example usage:

	b := dsl.New("newsletter").Title("Newsletter").Redirect("/thanks")

	b.String("email").Label("Email")
	b.List("topics").Options("Recipes", "Playlists")

	b.Step("contact").Title("How do we reach you?").
		Fields("email").
		Require("email")

	b.Step("topics").Title("What do you like?").
		Fields("topics").
		MinItems("topics", 1)

	def, err := b.Build()
*/
package dsl
