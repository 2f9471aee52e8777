package registry

import (
	"fmt"
	"reflect"

	"github.com/zeusync/entitystore/internal/core/models"
)

// PropertySchema declares one named, typed property of a component kind.
type PropertySchema struct {
	Name        string
	Type        FieldType
	Description string
}

// Descriptor is the immutable schema of a component kind: the kind plus its ordered properties.
type Descriptor struct {
	kind        models.Kind
	description string
	properties  []PropertySchema
	index       map[string]int
}

// NewDescriptor builds a descriptor. Property names must be unique and non-empty.
func NewDescriptor(kind models.Kind, properties ...PropertySchema) (*Descriptor, error) {
	if kind == "" {
		return nil, fmt.Errorf("%w: empty kind", ErrInvalidDescriptor)
	}

	d := &Descriptor{
		kind:       kind,
		properties: make([]PropertySchema, 0, len(properties)),
		index:      make(map[string]int, len(properties)),
	}
	for _, p := range properties {
		if p.Name == "" {
			return nil, fmt.Errorf("%w: kind %q has a property without name", ErrInvalidDescriptor, kind)
		}
		if _, dup := d.index[p.Name]; dup {
			return nil, fmt.Errorf("%w: kind %q declares %q twice", ErrInvalidDescriptor, kind, p.Name)
		}
		d.index[p.Name] = len(d.properties)
		d.properties = append(d.properties, p)
	}

	return d, nil
}

// MustDescriptor is NewDescriptor that panics on error. Meant for package level schemas.
func MustDescriptor(kind models.Kind, properties ...PropertySchema) *Descriptor {
	d, err := NewDescriptor(kind, properties...)
	if err != nil {
		panic(err)
	}
	return d
}

// WithDescription returns d with a human readable description attached.
func (d *Descriptor) WithDescription(description string) *Descriptor {
	d.description = description
	return d
}

func (d *Descriptor) Kind() models.Kind {
	return d.kind
}

func (d *Descriptor) Description() string {
	return d.description
}

// Properties returns the declared properties in declaration order.
func (d *Descriptor) Properties() []PropertySchema {
	out := make([]PropertySchema, len(d.properties))
	copy(out, d.properties)
	return out
}

func (d *Descriptor) Property(name string) (PropertySchema, bool) {
	i, ok := d.index[name]
	if !ok {
		return PropertySchema{}, false
	}
	return d.properties[i], true
}

func (d *Descriptor) Has(name string) bool {
	_, ok := d.index[name]
	return ok
}

// CheckName resolves name as a read target.
func (d *Descriptor) CheckName(name string) error {
	if !d.Has(name) {
		return &UndeclaredPropertyError{Kind: d.kind, Property: name}
	}
	return nil
}

// Check resolves name as a write target for value.
func (d *Descriptor) Check(name string, value any) error {
	_, err := d.Coerce(name, value)
	return err
}

// Coerce is Check that also returns value normalized to the stored Go type.
func (d *Descriptor) Coerce(name string, value any) (any, error) {
	p, ok := d.Property(name)
	if !ok {
		return nil, &UndeclaredPropertyError{Kind: d.kind, Property: name}
	}
	normalized, ok := p.Type.Normalize(value)
	if !ok {
		return nil, &TypeMismatchError{Kind: d.kind, Property: name, Want: p.Type, Got: fmt.Sprintf("%T", value)}
	}
	return normalized, nil
}

// CheckType verifies that values of rt fit the property, used when binding typed accessors.
func (d *Descriptor) CheckType(name string, rt reflect.Type) error {
	p, ok := d.Property(name)
	if !ok {
		return &UndeclaredPropertyError{Kind: d.kind, Property: name}
	}
	if !p.Type.AcceptsType(rt) {
		return &TypeMismatchError{Kind: d.kind, Property: name, Want: p.Type, Got: rt.String()}
	}
	return nil
}
