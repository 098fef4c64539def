// Package cooking models the guided cooking view: step-by-step navigation
// through a recipe, mood ambience and the recording timer.
package cooking

import (
	"errors"

	"github.com/mughesh03/aromatone/pkg/domain"
)

// ErrEmptyRecipe is returned for recipes without steps.
var ErrEmptyRecipe = errors.New("recipe has no steps")

// Session walks a recipe one instruction at a time. The step index is
// zero-based and never leaves [0, len(steps)-1].
type Session struct {
	recipe domain.Recipe
	step   int
}

// NewSession starts on the first instruction.
func NewSession(r domain.Recipe) (*Session, error) {
	if len(r.Steps) == 0 {
		return nil, ErrEmptyRecipe
	}
	return &Session{recipe: r.Clone()}, nil
}

// Recipe returns a copy of the recipe being cooked.
func (s *Session) Recipe() domain.Recipe { return s.recipe.Clone() }

// Index returns the zero-based instruction index.
func (s *Session) Index() int { return s.step }

// Current returns the instruction being shown.
func (s *Session) Current() string { return s.recipe.Steps[s.step] }

// Next moves forward and reports whether it moved.
func (s *Session) Next() bool {
	if s.step >= len(s.recipe.Steps)-1 {
		return false
	}
	s.step++
	return true
}

// Prev moves back and reports whether it moved.
func (s *Session) Prev() bool {
	if s.step == 0 {
		return false
	}
	s.step--
	return true
}

// Done reports whether the last instruction is showing.
func (s *Session) Done() bool { return s.step == len(s.recipe.Steps)-1 }

// Progress is the share of instructions reached, in percent.
func (s *Session) Progress() float64 {
	return float64(s.step+1) / float64(len(s.recipe.Steps)) * 100
}
