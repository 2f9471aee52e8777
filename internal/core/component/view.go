package component

import (
	"errors"
	"maps"
	"sync/atomic"

	"github.com/google/uuid"

	"github.com/zeusync/entitystore/internal/core/fields"
	"github.com/zeusync/entitystore/internal/core/models"
	"github.com/zeusync/entitystore/internal/core/schema/registry"
	"github.com/zeusync/entitystore/pkg/generic"
)

// ErrViewClosed is returned for writes through a view that was committed or discarded.
var ErrViewClosed = errors.New("component view is closed")

var buffers = generic.NewPool(
	func() map[string]fields.Pending { return make(map[string]fields.Pending, 4) },
	func(m map[string]fields.Pending) { clear(m) },
)

// Source is the committed table a view reads through. Read must return the
// committed value at the moment of the call.
type Source interface {
	Read(name string) (value any, ok bool)
}

// View stages property writes for one (entity, kind) pair. Reads resolve against the
// view's own pending writes first and the live committed table second. Writes never
// reach the committed table until the store commits the view.
//
// A View is meant for a single goroutine. Claim is the only operation that may race
// with another Claim of the same view.
type View struct {
	id      uuid.UUID
	entity  models.EntityID
	desc    *registry.Descriptor
	source  Source
	changes map[string]fields.Pending
	closed  atomic.Bool
}

// New creates a view bound to entity and reading through source.
// A nil source makes a detached view that sees no committed state.
func New(entity models.EntityID, desc *registry.Descriptor, source Source) *View {
	return &View{
		id:      uuid.New(),
		entity:  entity,
		desc:    desc,
		source:  source,
		changes: buffers.Get(),
	}
}

func (v *View) ID() uuid.UUID {
	return v.id
}

func (v *View) Entity() models.EntityID {
	return v.entity
}

func (v *View) Kind() models.Kind {
	return v.desc.Kind()
}

func (v *View) Descriptor() *registry.Descriptor {
	return v.desc
}

// Source returns the committed table the view was created over, nil when detached.
func (v *View) Source() Source {
	return v.source
}

func (v *View) Detached() bool {
	return v.source == nil
}

func (v *View) Closed() bool {
	return v.closed.Load()
}

// Get returns the view's pending value for name if there is one (nil for an explicit
// null), otherwise the committed value, otherwise nil.
func (v *View) Get(name string) (any, error) {
	value, _, err := v.Lookup(name)
	return value, err
}

// Lookup is Get that also reports whether a value is present.
func (v *View) Lookup(name string) (value any, ok bool, err error) {
	if err = v.desc.CheckName(name); err != nil {
		return nil, false, err
	}

	if p, touched := v.changes[name]; touched {
		value, ok = p.Value()
		return value, ok, nil
	}

	if v.source == nil {
		return nil, false, nil
	}
	value, ok = v.source.Read(name)
	return value, ok, nil
}

// Set stages value for name, replacing any earlier pending write. A nil value is an
// explicit null.
func (v *View) Set(name string, value any) error {
	if v.closed.Load() {
		return ErrViewClosed
	}
	normalized, err := v.desc.Coerce(name, value)
	if err != nil {
		return err
	}
	v.changes[name] = fields.Assign(normalized)
	return nil
}

// Clear stages an explicit null for name.
func (v *View) Clear(name string) error {
	return v.Set(name, nil)
}

// Pending returns the buffered state of name. Untouched names return the zero Pending.
func (v *View) Pending(name string) fields.Pending {
	return v.changes[name]
}

// Changes returns a copy of the pending buffer.
func (v *View) Changes() map[string]fields.Pending {
	return maps.Clone(v.changes)
}

// Dirty reports whether the view has pending writes.
func (v *View) Dirty() bool {
	return len(v.changes) > 0
}

func (v *View) Len() int {
	return len(v.changes)
}

// Values resolves every declared property and returns the ones that are present.
func (v *View) Values() map[string]any {
	out := make(map[string]any)
	for _, p := range v.desc.Properties() {
		if value, ok, _ := v.Lookup(p.Name); ok {
			out[p.Name] = value
		}
	}
	return out
}

// Discard drops the pending buffer and closes the view. It does nothing on a view
// that is already closed or claimed.
func (v *View) Discard() {
	if v.closed.CompareAndSwap(false, true) {
		v.dropBuffer()
	}
}

// Claim closes the view for writes and reports whether this caller won it. Exactly
// one of any number of concurrent Claims succeeds. The winner either commits the
// buffer and calls Seal, or calls Release to reopen the view.
func (v *View) Claim() bool {
	return v.closed.CompareAndSwap(false, true)
}

// Release reopens a view claimed by a commit that did not go through.
func (v *View) Release() {
	v.closed.Store(false)
}

// Seal drops the buffer of a claimed view after it has been committed. Reads keep
// working against the committed table.
func (v *View) Seal() {
	v.closed.Store(true)
	v.dropBuffer()
}

func (v *View) dropBuffer() {
	if v.changes != nil {
		buffers.Put(v.changes)
		v.changes = nil
	}
}
