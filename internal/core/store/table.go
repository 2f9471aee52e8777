package store

import (
	"encoding/binary"
	"maps"
	"sync"

	"github.com/cespare/xxhash/v2"

	"github.com/zeusync/entitystore/internal/core/component"
	"github.com/zeusync/entitystore/internal/core/fields"
	"github.com/zeusync/entitystore/internal/core/models"
)

var _ component.Source = (*table)(nil)

// table is the committed property table of one (entity, kind). It is guarded by the
// lock of the shard that owns the entity.
type table struct {
	mu       *sync.RWMutex
	values   map[string]any
	detached bool
}

func newTable(mu *sync.RWMutex) *table {
	return &table{
		mu:     mu,
		values: make(map[string]any),
	}
}

func (t *table) Read(name string) (any, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	if t.detached {
		return nil, false
	}
	v, ok := t.values[name]
	return v, ok
}

// apply merges a view buffer. Callers hold the shard write lock.
func (t *table) apply(changes map[string]fields.Pending) {
	for name, p := range changes {
		if value, ok := p.Value(); ok {
			t.values[name] = value
		} else if p.IsCleared() {
			delete(t.values, name)
		}
	}
}

// detach drops the values. Callers hold the shard write lock.
func (t *table) detach() {
	t.detached = true
	t.values = nil
}

func (t *table) snapshot() map[string]any {
	return maps.Clone(t.values)
}

// entity owns one table per attached kind. An entity that was not created through
// CreateEntity is forgotten once its last kind is detached.
type entity struct {
	tables   map[models.Kind]*table
	explicit bool
}

func newEntity() *entity {
	return &entity{tables: make(map[models.Kind]*table)}
}

// shard is one lock stripe of the store.
type shard struct {
	mu       sync.RWMutex
	entities map[models.EntityID]*entity
}

func newShards(count int) []*shard {
	shards := make([]*shard, count)
	for i := range shards {
		shards[i] = &shard{entities: make(map[models.EntityID]*entity)}
	}
	return shards
}

func shardIndex(id models.EntityID, count int) int {
	var key [8]byte
	binary.LittleEndian.PutUint64(key[:], uint64(id))
	return int(xxhash.Sum64(key[:]) % uint64(count))
}
