// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package surface

import (
	"cmp"
	"errors"
	"slices"
	"strconv"
	"sync"
)

// Factory creates a new Surface with the given options.
type Factory func(opts Options) (Surface, error)

// Backend is a registered surface implementation.
type Backend struct {
	// Name is the unique identifier for this backend, e.g. "raster".
	Name string

	// Priority determines selection order (higher = preferred).
	Priority int

	// Factory creates surface instances.
	Factory Factory
}

var globalRegistry = NewRegistry()

// Registry maps backend names to factories.
//
// Backends register themselves from an init function:
//
//	func init() {
//	    surface.Register("raster", 10, func(o surface.Options) (surface.Surface, error) {
//	        return New(o.Width, o.Height)
//	    })
//	}
type Registry struct {
	mu      sync.RWMutex
	entries map[string]Backend
}

// NewRegistry creates a new empty registry.
// Most code should use the global registry via Register and NewSurface.
func NewRegistry() *Registry {
	return &Registry{entries: make(map[string]Backend)}
}

// Register adds a backend to the global registry. Registering a name that
// already exists replaces the previous entry.
func Register(name string, priority int, factory Factory) {
	globalRegistry.Register(name, priority, factory)
}

// List returns all registered backend names sorted by priority (highest first).
func List() []string {
	return globalRegistry.List()
}

// NewSurface creates a surface using the highest priority backend.
func NewSurface(width, height int) (Surface, error) {
	return globalRegistry.NewSurface(Options{Width: width, Height: height})
}

// NewSurfaceByName creates a surface using a specific named backend.
func NewSurfaceByName(name string, width, height int) (Surface, error) {
	return globalRegistry.NewSurfaceByName(name, Options{Width: width, Height: height})
}

// Register adds a backend to this registry.
func (r *Registry) Register(name string, priority int, factory Factory) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries[name] = Backend{Name: name, Priority: priority, Factory: factory}
}

// Unregister removes a backend from this registry.
func (r *Registry) Unregister(name string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.entries, name)
}

// Get returns the backend registered under name.
func (r *Registry) Get(name string) (Backend, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	b, ok := r.entries[name]
	return b, ok
}

// List returns all registered backend names sorted by priority, then name.
func (r *Registry) List() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	backends := make([]Backend, 0, len(r.entries))
	for _, b := range r.entries {
		backends = append(backends, b)
	}
	slices.SortFunc(backends, func(a, b Backend) int {
		if c := cmp.Compare(b.Priority, a.Priority); c != 0 {
			return c
		}
		return cmp.Compare(a.Name, b.Name)
	})

	names := make([]string, len(backends))
	for i, b := range backends {
		names[i] = b.Name
	}
	return names
}

// NewSurface tries each backend in priority order and returns the first
// surface that could be created.
func (r *Registry) NewSurface(opts Options) (Surface, error) {
	names := r.List()
	if len(names) == 0 {
		return nil, ErrNoBackend
	}
	var errs []error
	for _, name := range names {
		s, err := r.NewSurfaceByName(name, opts)
		if err == nil {
			return s, nil
		}
		errs = append(errs, err)
	}
	return nil, errors.Join(errs...)
}

// NewSurfaceByName creates a surface using a specific backend.
func (r *Registry) NewSurfaceByName(name string, opts Options) (Surface, error) {
	b, ok := r.Get(name)
	if !ok {
		return nil, &BackendNotFoundError{Name: name}
	}
	if _, ok := PixelBytes(opts.Width, opts.Height); !ok {
		return nil, &InvalidSizeError{Width: opts.Width, Height: opts.Height}
	}
	return b.Factory(opts)
}

// ErrNoBackend is returned when no surface backends are registered.
var ErrNoBackend = errors.New("surface: no backend registered")

// BackendNotFoundError indicates a named backend is not registered.
type BackendNotFoundError struct {
	Name string
}

func (e *BackendNotFoundError) Error() string {
	return "surface: backend not found: " + e.Name
}

// InvalidSizeError reports non-positive surface dimensions or an area
// above MaxPixels.
type InvalidSizeError struct {
	Width, Height int
}

func (e *InvalidSizeError) Error() string {
	return "surface: invalid size " + strconv.Itoa(e.Width) + "x" + strconv.Itoa(e.Height)
}
