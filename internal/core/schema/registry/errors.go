package registry

import (
	"errors"
	"fmt"

	"github.com/zeusync/entitystore/internal/core/models"
)

var (
	// Registry errors

	ErrUnknownKind = errors.New("unknown component kind")
	ErrKindExists  = errors.New("component kind already registered")

	// Descriptor errors

	ErrInvalidDescriptor  = errors.New("invalid component descriptor")
	ErrUndeclaredProperty = errors.New("undeclared property")
	ErrTypeMismatch       = errors.New("property type mismatch")
)

// UndeclaredPropertyError reports a read or write of a property the kind does not declare.
// It is a schema error, callers are not expected to recover from it.
type UndeclaredPropertyError struct {
	Kind     models.Kind
	Property string
}

func (e *UndeclaredPropertyError) Error() string {
	return fmt.Sprintf("component %q has no property %q", e.Kind, e.Property)
}

func (e *UndeclaredPropertyError) Unwrap() error {
	return ErrUndeclaredProperty
}

// TypeMismatchError reports a value that does not satisfy the declared property type.
type TypeMismatchError struct {
	Kind     models.Kind
	Property string
	Want     FieldType
	Got      string
}

func (e *TypeMismatchError) Error() string {
	return fmt.Sprintf("component %q property %q: want %s (%s), got %s",
		e.Kind, e.Property, e.Want, e.Want.GoType(), e.Got)
}

func (e *TypeMismatchError) Unwrap() error {
	return ErrTypeMismatch
}
