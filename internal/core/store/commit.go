package store

import (
	"context"
	"fmt"
	"maps"
	"slices"

	"github.com/zeusync/entitystore/internal/core/component"
	"github.com/zeusync/entitystore/internal/core/events/bus"
	"github.com/zeusync/entitystore/internal/core/fields"
	"github.com/zeusync/entitystore/internal/core/models"
	"github.com/zeusync/entitystore/internal/core/observability/log"
	"github.com/zeusync/entitystore/pkg/concurrent"
)

// Commit names one view to save in SaveAll.
type Commit struct {
	Entity models.EntityID
	Kind   models.Kind
	View   *component.View
}

// SaveComponent merges the pending writes of view into the committed table of kind.
// Assigned entries overwrite, cleared entries delete the property, everything else is
// left alone. The merge is applied whole under the entity lock, and the view is closed
// afterwards. A view is committed at most once: concurrent saves of the same view
// leave one winner and fail the rest with ErrViewClosed. The last committer wins;
// there is no conflict detection.
func (s *Store) SaveComponent(e models.EntityID, kind models.Kind, view *component.View) error {
	if err := s.checkView(e, kind, view); err != nil {
		s.logger.Warn("commit rejected", log.Entity(e), log.Kind(kind), log.Error(err))
		return err
	}
	if !view.Claim() {
		s.logger.Warn("commit rejected", log.Entity(e), log.Kind(kind), viewField(view.ID()),
			log.Error(component.ErrViewClosed))
		return component.ErrViewClosed
	}

	changes := view.Changes()
	sh := s.shardFor(e)

	sh.mu.Lock()
	var t *table
	if rec := sh.entities[e]; rec != nil {
		t = rec.tables[kind]
	}
	if t == nil {
		sh.mu.Unlock()
		view.Release()
		err := &NotAttachedError{Entity: e, Kind: kind}
		s.logger.Warn("commit rejected", log.Entity(e), log.Kind(kind), viewField(view.ID()), log.Error(err))
		return err
	}
	if view.Source() != component.Source(t) {
		sh.mu.Unlock()
		view.Release()
		err := &StaleViewError{Entity: e, Kind: kind, View: view.ID()}
		s.logger.Warn("commit rejected", log.Entity(e), log.Kind(kind), viewField(view.ID()), log.Error(err))
		return err
	}
	t.apply(changes)
	sh.mu.Unlock()

	view.Seal()

	names := changedNames(changes)
	s.logger.Debug("component saved",
		log.Entity(e), log.Kind(kind), viewField(view.ID()), log.Strings("properties", names))
	s.publish(bus.Event{Type: bus.ComponentSaved, Entity: e, Kind: kind, View: view.ID(), Properties: names})
	return nil
}

// SaveAll commits every view concurrently. Each commit is atomic on its own; the
// batch is not. Failures are joined. Commits of the same (entity, kind) race and the
// last one applied wins.
func (s *Store) SaveAll(ctx context.Context, commits ...Commit) error {
	return concurrent.ParallelCollect(ctx, commits, s.limit, func(_ context.Context, c Commit) error {
		return s.SaveComponent(c.Entity, c.Kind, c.View)
	})
}

// NewComponent returns a detached view of kind. It sees no committed state and is
// attached to an entity with AttachComponent.
func (s *Store) NewComponent(kind models.Kind) (*component.View, error) {
	desc, err := s.registry.Lookup(kind)
	if err != nil {
		return nil, err
	}
	return component.New(0, desc, nil), nil
}

// CopyComponent returns a detached view whose buffer holds the resolved values of
// view: its committed values overlaid with its pending writes.
func (s *Store) CopyComponent(view *component.View) (*component.View, error) {
	if view == nil {
		return nil, fmt.Errorf("%w: nil view", ErrViewMismatch)
	}

	out := component.New(0, view.Descriptor(), nil)
	for name, value := range view.Values() {
		if err := out.Set(name, value); err != nil {
			return nil, fmt.Errorf("copy %q: %w", view.Kind(), err)
		}
	}
	return out, nil
}

// AttachComponent attaches the kind of a detached view to e, with the view's pending
// writes as the initial table, and returns a live view over the new table.
func (s *Store) AttachComponent(e models.EntityID, view *component.View) (*component.View, error) {
	switch {
	case view == nil:
		return nil, fmt.Errorf("%w: nil view", ErrViewMismatch)
	case !view.Detached():
		return nil, fmt.Errorf("%w: view %s is bound to entity %d", ErrViewMismatch, view.ID(), view.Entity())
	}

	kind := view.Kind()
	desc, err := s.registry.Lookup(kind)
	if err != nil {
		return nil, err
	}
	if !view.Claim() {
		return nil, component.ErrViewClosed
	}

	changes := view.Changes()
	sh := s.shardFor(e)

	sh.mu.Lock()
	rec := sh.entities[e]
	if rec == nil {
		rec = newEntity()
		sh.entities[e] = rec
	}
	if _, attached := rec.tables[kind]; attached {
		sh.mu.Unlock()
		view.Release()
		return nil, &AlreadyAttachedError{Entity: e, Kind: kind}
	}
	t := newTable(&sh.mu)
	t.apply(changes)
	rec.tables[kind] = t
	sh.mu.Unlock()

	view.Seal()

	names := changedNames(changes)
	s.logger.Debug("component attached from view",
		log.Entity(e), log.Kind(kind), viewField(view.ID()), log.Strings("properties", names))
	s.publish(bus.Event{Type: bus.ComponentAdded, Entity: e, Kind: kind, View: view.ID(), Properties: names})

	return component.New(e, desc, t), nil
}

func (s *Store) checkView(e models.EntityID, kind models.Kind, view *component.View) error {
	switch {
	case view == nil:
		return fmt.Errorf("%w: nil view", ErrViewMismatch)
	case view.Detached():
		return fmt.Errorf("%w: view %s is detached, use AttachComponent", ErrViewMismatch, view.ID())
	case view.Entity() != e || view.Kind() != kind:
		return fmt.Errorf("%w: view %s belongs to entity %d component %q",
			ErrViewMismatch, view.ID(), view.Entity(), view.Kind())
	case view.Closed():
		return component.ErrViewClosed
	}
	return nil
}

func changedNames(changes map[string]fields.Pending) []string {
	return slices.Sorted(maps.Keys(changes))
}
