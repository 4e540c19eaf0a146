package devicefactory

import (
	"fmt"
	"sort"
	"sync"

	"github.com/larsks/appliances/internal/device"
	"github.com/larsks/appliances/internal/logging"
	"go.uber.org/zap"
)

// Factory creates a fully configured device
type Factory interface {
	Create() *device.Device
}

// Registry manages device factories by name
type Registry struct {
	factories map[string]Factory
	mu        sync.RWMutex
}

// NewRegistry creates a new factory registry
func NewRegistry() *Registry {
	return &Registry{
		factories: make(map[string]Factory),
	}
}

// Register adds a factory to the registry
func (r *Registry) Register(name string, factory Factory) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.factories[name]; exists {
		return fmt.Errorf("%w: %s", ErrFactoryExists, name)
	}

	r.factories[name] = factory
	return nil
}

// Create builds a device using the named factory
func (r *Registry) Create(name string) (*device.Device, error) {
	r.mu.RLock()
	factory, exists := r.factories[name]
	r.mu.RUnlock()

	if !exists {
		return nil, fmt.Errorf("%w: %s", ErrUnknownFactory, name)
	}

	d := factory.Create()
	logging.Debug("created device",
		zap.String("factory", name),
		zap.Stringer("kind", d.Kind()),
		zap.Stringer("family", d.Kind().Family()),
		zap.Stringer("device", d))
	return d, nil
}

// ListFactories returns the sorted names of all registered factories
func (r *Registry) ListFactories() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.factories))
	for name := range r.factories {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Default registry instance
var defaultRegistry = NewRegistry()

// Register adds a factory to the default registry
func Register(name string, factory Factory) error {
	return defaultRegistry.Register(name, factory)
}

// Create builds a device using the default registry
func Create(name string) (*device.Device, error) {
	return defaultRegistry.Create(name)
}

// ListFactories returns the names of all factories in the default registry
func ListFactories() []string {
	return defaultRegistry.ListFactories()
}
