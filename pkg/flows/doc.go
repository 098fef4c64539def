// Package flows declares the built-in AromaTone wizards: account signup,
// cooking-session setup and the recipe recommendation flow.
package flows
