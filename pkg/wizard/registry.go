package wizard

import (
	"fmt"
	"sort"
	"sync"

	"github.com/mughesh03/aromatone/pkg/domain"
)

// Registry holds the wizard definitions known to an engine.
type Registry struct {
	mu   sync.RWMutex
	defs map[string]*Definition
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{defs: make(map[string]*Definition)}
}

// Register validates and stores a definition, replacing any previous one
// with the same variant.
func (r *Registry) Register(def *Definition) error {
	if def == nil {
		return fmt.Errorf("register: nil definition")
	}
	if err := def.Validate(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.defs[def.Variant] = def
	return nil
}

// MustRegister is Register that panics on error. Meant for built-in definitions.
func (r *Registry) MustRegister(def *Definition) {
	if err := r.Register(def); err != nil {
		panic(err)
	}
}

// Get returns the definition of a variant.
func (r *Registry) Get(variant string) (*Definition, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	def, ok := r.defs[variant]
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrUnknownVariant, variant)
	}
	return def, nil
}

// Variants lists registered variants in lexical order.
func (r *Registry) Variants() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]string, 0, len(r.defs))
	for v := range r.defs {
		out = append(out, v)
	}
	sort.Strings(out)
	return out
}
