package profile

import (
	"fmt"
	"sort"
	"sync"

	"github.com/seqweaver/hintcfg/pkg/extrinsic"
)

// Factory builds a fresh copy of a built-in configuration table.
type Factory func() *extrinsic.Table

// Info describes a registered profile.
type Info struct {
	Name        string
	Description string
}

// Registry manages the built-in extrinsic configuration profiles.
type Registry struct {
	mu        sync.RWMutex
	factories map[string]Factory
	infos     map[string]Info
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		factories: make(map[string]Factory),
		infos:     make(map[string]Info),
	}
}

// Register adds a profile to the registry.
func (r *Registry) Register(name, description string, factory Factory) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.factories[name]; exists {
		return fmt.Errorf("profile %s already registered", name)
	}
	r.factories[name] = factory
	r.infos[name] = Info{Name: name, Description: description}
	return nil
}

// Get returns a fresh table for the named profile.
func (r *Registry) Get(name string) (*extrinsic.Table, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	factory, exists := r.factories[name]
	if !exists {
		return nil, fmt.Errorf("profile %s not found", name)
	}
	return factory(), nil
}

// List returns the registered profiles sorted by name.
func (r *Registry) List() []Info {
	r.mu.RLock()
	defer r.mu.RUnlock()

	infos := make([]Info, 0, len(r.infos))
	for _, info := range r.infos {
		infos = append(infos, info)
	}
	sort.Slice(infos, func(i, j int) bool { return infos[i].Name < infos[j].Name })
	return infos
}

// DefaultRegistry is the global profile registry. The built-in
// profiles register themselves here at init time.
var DefaultRegistry = NewRegistry()
