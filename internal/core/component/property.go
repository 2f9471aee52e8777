package component

import (
	"fmt"
	"reflect"

	"github.com/zeusync/entitystore/internal/core/schema/registry"
)

// Property is a typed accessor for one property of a component kind. Generated views
// use one Property per declared property, so property names are checked once at init
// instead of at every call.
type Property[T any] struct {
	name string
}

func NewProperty[T any](name string) Property[T] {
	return Property[T]{name: name}
}

func (p Property[T]) Name() string {
	return p.name
}

// Bind validates p against d and panics if the property is undeclared or T does not
// match the declared type.
func (p Property[T]) Bind(d *registry.Descriptor) Property[T] {
	if err := d.CheckType(p.name, reflect.TypeFor[T]()); err != nil {
		panic(fmt.Sprintf("component: bind %s: %v", p.name, err))
	}
	return p
}

// Get returns the resolved value and whether it is present.
func (p Property[T]) Get(v *View) (T, bool) {
	var zero T
	value, ok, err := v.Lookup(p.name)
	if err != nil {
		panic(err)
	}
	if !ok {
		return zero, false
	}
	typed, ok := value.(T)
	if !ok {
		return zero, false
	}
	return typed, true
}

// Value is Get without the presence flag.
func (p Property[T]) Value(v *View) T {
	value, _ := p.Get(v)
	return value
}

func (p Property[T]) Set(v *View, value T) error {
	return v.Set(p.name, value)
}

func (p Property[T]) Clear(v *View) error {
	return v.Clear(p.name)
}

// Pending reports whether v has a staged write for the property.
func (p Property[T]) Pending(v *View) bool {
	return v.Pending(p.name).Touched()
}
