package routines

import (
	"fmt"
	"sort"
	"sync"

	apperrors "github.com/agbru/speedwatch/internal/errors"
	"github.com/agbru/speedwatch/internal/watch"
)

// Routine is a built-in workload with a known growth rate.
type Routine struct {
	// Name identifies the routine on the command line.
	Name string
	// Description is a one-line summary shown by --list.
	Description string
	// Growth names the model the routine is expected to follow.
	Growth string
	// DefaultSizes are used when no sizes are given; the last one is the final size.
	DefaultSizes []uint64
	// Func is the code being timed.
	Func watch.RoutineFunc
}

// Watch returns the routine in the form the watcher runs.
func (r Routine) Watch() watch.Routine {
	return watch.Routine{Name: r.Name, Func: r.Func}
}

// Registry holds routines by name.
type Registry struct {
	mu       sync.RWMutex
	routines map[string]Routine
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{routines: make(map[string]Routine)}
}

// NewDefaultRegistry creates a registry holding every built-in routine.
func NewDefaultRegistry() *Registry {
	r := NewRegistry()
	for _, rt := range builtins() {
		r.Register(rt)
	}
	return r
}

// Register adds or replaces a routine.
func (r *Registry) Register(rt Routine) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.routines[rt.Name] = rt
}

// Get returns the routine registered under name.
func (r *Registry) Get(name string) (Routine, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	rt, ok := r.routines[name]
	if !ok {
		return Routine{}, apperrors.ValidationError{
			Field:   "routine",
			Message: fmt.Sprintf("unknown routine %q", name),
		}
	}
	return rt, nil
}

// MustGet is like Get but panics on unknown names.
func (r *Registry) MustGet(name string) Routine {
	rt, err := r.Get(name)
	if err != nil {
		panic(err)
	}
	return rt
}

// List returns the registered names in lexical order.
func (r *Registry) List() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.routines))
	for name := range r.routines {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
