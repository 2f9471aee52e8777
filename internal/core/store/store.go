package store

import (
	"context"
	"slices"
	"sync/atomic"

	"github.com/google/uuid"

	"github.com/zeusync/entitystore/internal/core/component"
	"github.com/zeusync/entitystore/internal/core/events/bus"
	"github.com/zeusync/entitystore/internal/core/models"
	"github.com/zeusync/entitystore/internal/core/observability/log"
	"github.com/zeusync/entitystore/internal/core/schema/registry"
	"github.com/zeusync/entitystore/pkg/concurrent"
)

// Store owns the attached kinds and committed property tables of every entity.
// Component data is read and written only through views handed out by the store,
// and committed state changes only in SaveComponent and AttachComponent.
//
// Store is safe for concurrent use. Entities are spread across lock stripes; all
// tables of one entity share its stripe lock.
type Store struct {
	registry registry.SchemaRegistry
	shards   []*shard
	logger   log.Log
	bus      bus.EventBus
	limit    int
	nextID   atomic.Uint64
}

func New(reg registry.SchemaRegistry, opts ...Option) *Store {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	o.normalize()

	return &Store{
		registry: reg,
		shards:   newShards(o.Shards),
		logger:   o.Logger.With(log.String("component", "store")),
		bus:      o.Bus,
		limit:    o.CommitConcurrency,
	}
}

func (s *Store) Registry() registry.SchemaRegistry {
	return s.registry
}

func (s *Store) shardFor(e models.EntityID) *shard {
	return s.shards[shardIndex(e, len(s.shards))]
}

// CreateEntity allocates a fresh entity id and records the entity.
func (s *Store) CreateEntity() models.EntityID {
	for {
		id := models.EntityID(s.nextID.Add(1))
		sh := s.shardFor(id)

		sh.mu.Lock()
		if _, taken := sh.entities[id]; taken {
			sh.mu.Unlock()
			continue
		}
		rec := newEntity()
		rec.explicit = true
		sh.entities[id] = rec
		sh.mu.Unlock()

		return id
	}
}

// HasEntity reports whether the store holds a record for e.
func (s *Store) HasEntity(e models.EntityID) bool {
	sh := s.shardFor(e)
	sh.mu.RLock()
	defer sh.mu.RUnlock()
	_, ok := sh.entities[e]
	return ok
}

// Entities returns the known entity ids in ascending order.
func (s *Store) Entities() []models.EntityID {
	var out []models.EntityID
	for _, sh := range s.shards {
		sh.mu.RLock()
		for id := range sh.entities {
			out = append(out, id)
		}
		sh.mu.RUnlock()
	}
	slices.Sort(out)
	return out
}

// DestroyEntity detaches every kind of e and forgets the entity. Views on its tables
// become stale.
func (s *Store) DestroyEntity(e models.EntityID) error {
	sh := s.shardFor(e)

	sh.mu.Lock()
	rec, ok := sh.entities[e]
	if !ok {
		sh.mu.Unlock()
		return ErrUnknownEntity
	}
	kinds := make([]models.Kind, 0, len(rec.tables))
	for kind, t := range rec.tables {
		t.detach()
		kinds = append(kinds, kind)
	}
	delete(sh.entities, e)
	sh.mu.Unlock()

	slices.Sort(kinds)
	for _, kind := range kinds {
		s.publish(bus.Event{Type: bus.ComponentRemoved, Entity: e, Kind: kind})
	}
	s.publish(bus.Event{Type: bus.EntityDestroyed, Entity: e})
	s.logger.Debug("entity destroyed", log.Entity(e), log.Int("components", len(kinds)))
	return nil
}

// DestroyEntities destroys entities concurrently and stops at the first failure.
func (s *Store) DestroyEntities(ctx context.Context, ids ...models.EntityID) error {
	return concurrent.Concurrent(ctx, ids, s.limit, func(_ context.Context, id models.EntityID) error {
		return s.DestroyEntity(id)
	})
}

// HasComponent reports whether kind is attached to e.
func (s *Store) HasComponent(e models.EntityID, kind models.Kind) bool {
	return s.lookupTable(e, kind) != nil
}

// Kinds returns the kinds attached to e, sorted.
func (s *Store) Kinds(e models.EntityID) []models.Kind {
	sh := s.shardFor(e)
	sh.mu.RLock()
	rec, ok := sh.entities[e]
	if !ok {
		sh.mu.RUnlock()
		return nil
	}
	out := make([]models.Kind, 0, len(rec.tables))
	for kind := range rec.tables {
		out = append(out, kind)
	}
	sh.mu.RUnlock()

	slices.Sort(out)
	return out
}

// AddComponent attaches kind to e with an empty table and returns a view over it.
func (s *Store) AddComponent(e models.EntityID, kind models.Kind) (*component.View, error) {
	desc, err := s.registry.Lookup(kind)
	if err != nil {
		return nil, err
	}

	sh := s.shardFor(e)
	sh.mu.Lock()
	rec := sh.entities[e]
	if rec == nil {
		rec = newEntity()
		sh.entities[e] = rec
	}
	if _, attached := rec.tables[kind]; attached {
		sh.mu.Unlock()
		return nil, &AlreadyAttachedError{Entity: e, Kind: kind}
	}
	t := newTable(&sh.mu)
	rec.tables[kind] = t
	sh.mu.Unlock()

	view := component.New(e, desc, t)
	s.logger.Debug("component attached", log.Entity(e), log.Kind(kind), viewField(view.ID()))
	s.publish(bus.Event{Type: bus.ComponentAdded, Entity: e, Kind: kind, View: view.ID()})

	return view, nil
}

// GetComponent returns a fresh view over the committed table of kind, or nil and false
// when kind is not attached to e. The view reads the live table, so commits made
// through other views show up on its next read.
func (s *Store) GetComponent(e models.EntityID, kind models.Kind) (*component.View, bool) {
	desc, err := s.registry.Lookup(kind)
	if err != nil {
		return nil, false
	}
	t := s.lookupTable(e, kind)
	if t == nil {
		return nil, false
	}
	return component.New(e, desc, t), true
}

// RemoveComponent detaches kind from e and discards its table.
func (s *Store) RemoveComponent(e models.EntityID, kind models.Kind) error {
	sh := s.shardFor(e)

	sh.mu.Lock()
	rec := sh.entities[e]
	var t *table
	if rec != nil {
		t = rec.tables[kind]
	}
	if t == nil {
		sh.mu.Unlock()
		return &NotAttachedError{Entity: e, Kind: kind}
	}
	delete(rec.tables, kind)
	t.detach()
	if len(rec.tables) == 0 && !rec.explicit {
		delete(sh.entities, e)
	}
	sh.mu.Unlock()

	s.logger.Debug("component detached", log.Entity(e), log.Kind(kind))
	s.publish(bus.Event{Type: bus.ComponentRemoved, Entity: e, Kind: kind})
	return nil
}

// Snapshot copies the committed table of kind. Meant for collaborators that consume
// committed state, such as serializers.
func (s *Store) Snapshot(e models.EntityID, kind models.Kind) (map[string]any, bool) {
	sh := s.shardFor(e)
	sh.mu.RLock()
	defer sh.mu.RUnlock()

	rec := sh.entities[e]
	if rec == nil {
		return nil, false
	}
	t := rec.tables[kind]
	if t == nil {
		return nil, false
	}
	return t.snapshot(), true
}

func (s *Store) lookupTable(e models.EntityID, kind models.Kind) *table {
	sh := s.shardFor(e)
	sh.mu.RLock()
	defer sh.mu.RUnlock()

	rec := sh.entities[e]
	if rec == nil {
		return nil
	}
	return rec.tables[kind]
}

func (s *Store) publish(event bus.Event) {
	if s.bus == nil {
		return
	}
	if err := s.bus.Publish(event); err != nil {
		s.logger.Warn("event handler failed",
			log.String("event", string(event.Type)),
			log.Entity(event.Entity),
			log.Kind(event.Kind),
			log.Error(err),
		)
	}
}

func viewField(id uuid.UUID) log.Field {
	return log.Stringer("view", id)
}
