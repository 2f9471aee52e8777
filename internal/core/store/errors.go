package store

import (
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/zeusync/entitystore/internal/core/models"
)

var (
	ErrAlreadyAttached = errors.New("component already attached")
	ErrNotAttached     = errors.New("component not attached")
	ErrStaleView       = errors.New("component view is stale")
	ErrViewMismatch    = errors.New("component view does not match entity and kind")
	ErrUnknownEntity   = errors.New("unknown entity")
)

// AlreadyAttachedError is returned when adding a kind the entity already has.
type AlreadyAttachedError struct {
	Entity models.EntityID
	Kind   models.Kind
}

func (e *AlreadyAttachedError) Error() string {
	return fmt.Sprintf("entity %d already has component %q", e.Entity, e.Kind)
}

func (e *AlreadyAttachedError) Unwrap() error {
	return ErrAlreadyAttached
}

// NotAttachedError is returned when removing or saving a kind the entity does not have.
type NotAttachedError struct {
	Entity models.EntityID
	Kind   models.Kind
}

func (e *NotAttachedError) Error() string {
	return fmt.Sprintf("entity %d has no component %q", e.Entity, e.Kind)
}

func (e *NotAttachedError) Unwrap() error {
	return ErrNotAttached
}

// StaleViewError is returned when saving a view whose table was detached, even if
// the kind has been attached again since.
type StaleViewError struct {
	Entity models.EntityID
	Kind   models.Kind
	View   uuid.UUID
}

func (e *StaleViewError) Error() string {
	return fmt.Sprintf("view %s of entity %d component %q was detached", e.View, e.Entity, e.Kind)
}

func (e *StaleViewError) Unwrap() error {
	return ErrStaleView
}
