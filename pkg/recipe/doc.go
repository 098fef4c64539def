// Package recipe turns cooking preferences into recipe suggestions, either
// from a fixed catalogue or by prompting the chat model.
package recipe
