package growth

import (
	"fmt"
	"strings"

	apperrors "github.com/agbru/speedwatch/internal/errors"
)

// DefaultModelNames lists the models used when the caller picks none.
// The factorial model is registered but must be asked for explicitly.
var DefaultModelNames = []string{LinearName, NLog2NName, SquareName, CubeName, ExpName}

// Registry maps model names to models bound to a set of Limits.
type Registry struct {
	limits Limits
	models map[string]Model
	order  []string
}

// NewRegistry returns a registry holding the built-in models, in order of
// increasing growth, bound to limits.
func NewRegistry(limits Limits) *Registry {
	r := &Registry{limits: limits, models: make(map[string]Model)}
	r.Register(Model{Name: LinearName, Cost: Linear})
	r.Register(Model{Name: NLog2NName, Cost: limits.NLog2N})
	r.Register(Model{Name: SquareName, Cost: Square})
	r.Register(Model{Name: CubeName, Cost: limits.Cube})
	r.Register(Model{Name: ExpName, Cost: limits.Exp, Log2Cost: Log2Exp})
	r.Register(Model{Name: FactorialName, Cost: limits.Factorial, Log2Cost: Log2Factorial})
	return r
}

// Register adds or replaces a model. Replacing keeps the original position.
func (r *Registry) Register(m Model) {
	if _, exists := r.models[m.Name]; !exists {
		r.order = append(r.order, m.Name)
	}
	r.models[m.Name] = m
}

// Limits returns the limits the built-in models were bound to.
func (r *Registry) Limits() Limits { return r.limits }

// Get returns the model registered under name.
func (r *Registry) Get(name string) (Model, error) {
	m, ok := r.models[name]
	if !ok {
		return Model{}, apperrors.ValidationError{
			Field:   "models",
			Message: fmt.Sprintf("unknown model %q (available: %s)", name, strings.Join(r.List(), ", ")),
		}
	}
	return m, nil
}

// List returns the registered names in registration order.
func (r *Registry) List() []string {
	out := make([]string, len(r.order))
	copy(out, r.order)
	return out
}

// Lookup resolves names to models, preserving the order given. The single
// name "all" selects every registered model, and no names selects
// DefaultModelNames.
func (r *Registry) Lookup(names ...string) ([]Model, error) {
	switch {
	case len(names) == 0:
		names = DefaultModelNames
	case len(names) == 1 && names[0] == "all":
		names = r.List()
	}
	models := make([]Model, 0, len(names))
	for _, name := range names {
		m, err := r.Get(name)
		if err != nil {
			return nil, err
		}
		models = append(models, m)
	}
	return models, nil
}

// Names returns the names of models, in order.
func Names(models []Model) []string {
	names := make([]string, len(models))
	for i, m := range models {
		names[i] = m.Name
	}
	return names
}

