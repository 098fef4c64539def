package ports

import (
	"context"

	"github.com/mughesh03/aromatone/pkg/domain"
	"github.com/mughesh03/aromatone/pkg/wizard"
)

// WizardEngine is the stateless sequencer used by adapters (HTTP, CLI) that
// keep sessions externally.
type WizardEngine interface {
	// Start creates a session of the variant on its first step.
	Start(ctx context.Context, variant, sessionID string) (*domain.Session, error)

	// Dispatch applies an event and returns the next snapshot.
	Dispatch(ctx context.Context, sess *domain.Session, ev wizard.Event) (*domain.Session, wizard.Outcome, error)

	// Registry exposes the known definitions.
	Registry() *wizard.Registry
}

var _ WizardEngine = (*wizard.Engine)(nil)
