package registry

import (
	"fmt"
	"os"
	"slices"
	"sync"

	"github.com/zeusync/entitystore/internal/core/models"
)

// SchemaRegistry resolves component kinds to their descriptors.
type SchemaRegistry interface {
	Register(*Descriptor) error
	Lookup(models.Kind) (*Descriptor, error)
	Kinds() []models.Kind
}

var _ SchemaRegistry = (*Registry)(nil)

// Registry is the in-memory SchemaRegistry. Kinds are registered once, before use,
// and never change afterward.
type Registry struct {
	mu    sync.RWMutex
	kinds map[models.Kind]*Descriptor
}

func New() *Registry {
	return &Registry{
		kinds: make(map[models.Kind]*Descriptor),
	}
}

func (r *Registry) Register(d *Descriptor) error {
	if d == nil {
		return fmt.Errorf("%w: nil descriptor", ErrInvalidDescriptor)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.kinds[d.Kind()]; exists {
		return fmt.Errorf("%w: %q", ErrKindExists, d.Kind())
	}
	r.kinds[d.Kind()] = d
	return nil
}

// RegisterAll registers every descriptor, stopping at the first failure.
func (r *Registry) RegisterAll(ds ...*Descriptor) error {
	for _, d := range ds {
		if err := r.Register(d); err != nil {
			return err
		}
	}
	return nil
}

func (r *Registry) Lookup(kind models.Kind) (*Descriptor, error) {
	r.mu.RLock()
	d, ok := r.kinds[kind]
	r.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownKind, kind)
	}
	return d, nil
}

// MustLookup panics for unknown kinds.
func (r *Registry) MustLookup(kind models.Kind) *Descriptor {
	d, err := r.Lookup(kind)
	if err != nil {
		panic(err)
	}
	return d
}

// Kinds returns the registered kinds sorted by name.
func (r *Registry) Kinds() []models.Kind {
	r.mu.RLock()
	out := make([]models.Kind, 0, len(r.kinds))
	for k := range r.kinds {
		out = append(out, k)
	}
	r.mu.RUnlock()

	slices.Sort(out)
	return out
}

// LoadFile reads a YAML schema document and registers all of its kinds.
func (r *Registry) LoadFile(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open schema %s: %w", path, err)
	}
	defer func() { _ = f.Close() }()

	ds, err := LoadYAML(f)
	if err != nil {
		return fmt.Errorf("load schema %s: %w", path, err)
	}
	return r.RegisterAll(ds...)
}
