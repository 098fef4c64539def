package dsl

import (
	"errors"
	"testing"

	"github.com/mughesh03/aromatone/pkg/domain"
	"github.com/mughesh03/aromatone/pkg/wizard"
)

func TestBuilder_SimpleFlow(t *testing.T) {
	b := New("newsletter").Title("Newsletter").Redirect("/thanks")

	b.String("email").Label("Email")
	b.List("topics").Options("Recipes", "Playlists")
	b.String("freq").Default("weekly")

	b.Step("contact").Title("Contact").Fields("email").Require("email")
	b.Step("topics").Title("Topics").Fields("topics", "freq").
		MinItems("topics", 1).
		OneOf("freq", "daily", "weekly")

	def, err := b.Build()
	if err != nil {
		t.Fatalf("Build() failed: %v", err)
	}

	if def.TotalSteps() != 2 {
		t.Fatalf("Expected 2 steps, got %d", def.TotalSteps())
	}
	if def.Steps[0].ID != "contact" || def.Steps[1].ID != "topics" {
		t.Errorf("Steps out of order: %+v", def.Steps)
	}
	if len(def.Steps[1].Rules) != 2 {
		t.Errorf("Expected 2 rules on topics, got %d", len(def.Steps[1].Rules))
	}
	if def.Redirect != "/thanks" {
		t.Errorf("Expected redirect '/thanks', got '%s'", def.Redirect)
	}

	form := def.NewForm()
	if form["freq"] != "weekly" {
		t.Errorf("Expected default 'weekly', got %v", form["freq"])
	}
	if _, ok := form["topics"].([]string); !ok {
		t.Errorf("Expected topics to start as a list, got %T", form["topics"])
	}
}

func TestBuilder_ReusesExisting(t *testing.T) {
	b := New("x")
	b.String("a").Label("A")
	b.Field("a", domain.KindString).Secret()
	b.Step("s").Fields("a")
	b.Step("s").Require("a")

	def := b.MustBuild()
	if len(def.Fields) != 1 || !def.Fields[0].Secret || def.Fields[0].Label != "A" {
		t.Errorf("Expected a single merged field, got %+v", def.Fields)
	}
	if len(def.Steps) != 1 || len(def.Steps[0].Rules) != 1 {
		t.Errorf("Expected a single merged step, got %+v", def.Steps)
	}
}

func TestBuilder_InvalidDefinition(t *testing.T) {
	b := New("broken")
	b.Step("s").Fields("ghost")

	_, err := b.Build()
	var defErr *wizard.DefinitionError
	if !errors.As(err, &defErr) {
		t.Fatalf("Expected DefinitionError, got %v", err)
	}
}
