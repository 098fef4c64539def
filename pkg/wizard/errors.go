package wizard

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownEvent is returned when an event type is not understood by the sequencer.
var ErrUnknownEvent = errors.New("unknown event type")

// DefinitionError lists the structural problems of a wizard definition.
type DefinitionError struct {
	Variant  string
	Problems []string
}

func (e *DefinitionError) Error() string {
	return fmt.Sprintf("wizard %q is invalid: %s", e.Variant, strings.Join(e.Problems, "; "))
}
