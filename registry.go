package gdi

import (
	"fmt"
	"image/draw"
	"slices"
	"sync"
)

// DriverFactory creates a driver drawing onto target.
type DriverFactory func(target draw.Image) (Driver, error)

// registry holds registered driver factories.
var (
	registryMu sync.RWMutex
	factories  = make(map[string]DriverFactory)
)

// Register registers a driver factory with the given name.
// This is typically called from init() functions in driver packages.
// If a driver with the same name is already registered, it will be replaced.
func Register(name string, factory DriverFactory) {
	registryMu.Lock()
	defer registryMu.Unlock()
	factories[name] = factory
}

// Unregister removes a driver from the registry.
// This is useful for testing.
func Unregister(name string) {
	registryMu.Lock()
	defer registryMu.Unlock()
	delete(factories, name)
}

// Drivers returns the sorted names of the registered drivers.
func Drivers() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()

	names := make([]string, 0, len(factories))
	for name := range factories {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// IsRegistered checks if a driver with the given name is registered.
func IsRegistered(name string) bool {
	registryMu.RLock()
	defer registryMu.RUnlock()
	_, ok := factories[name]
	return ok
}

// Open creates a DC whose chain consists of the named drivers, top first,
// each created for target, above the fallback layer. Additional options
// are applied after the chain is installed.
//
// Example:
//
//	import _ "github.com/gogpu/gdi/driver/raster"
//
//	dc, err := gdi.Open(img, []string{"record", "raster"})
func Open(target draw.Image, names []string, opts ...DCOption) (*DC, error) {
	drivers := make([]Driver, 0, len(names))
	for _, name := range names {
		drv, err := NewDriver(name, target)
		if err != nil {
			return nil, err
		}
		drivers = append(drivers, drv)
	}
	return NewDC(append([]DCOption{WithDrivers(drivers...)}, opts...)...)
}

// NewDriver creates the named driver for target.
// Returns ErrUnknownDriver if no driver with that name is registered.
func NewDriver(name string, target draw.Image) (Driver, error) {
	registryMu.RLock()
	factory, ok := factories[name]
	registryMu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownDriver, name)
	}
	drv, err := factory(target)
	if err != nil {
		return nil, fmt.Errorf("gdi: create driver %q: %w", name, err)
	}
	return drv, nil
}
