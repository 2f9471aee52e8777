package store

import (
	"github.com/zeusync/entitystore/internal/core/events/bus"
	"github.com/zeusync/entitystore/internal/core/observability/log"
)

const (
	DefaultShards            = 32
	DefaultCommitConcurrency = 8
)

// Options configures a Store.
type Options struct {
	// Shards is the number of lock stripes entities are spread across.
	Shards int
	// CommitConcurrency bounds the goroutines used by SaveAll.
	CommitConcurrency int
	Logger            log.Log
	// Bus receives lifecycle events. Nil disables publishing.
	Bus bus.EventBus
}

type Option func(*Options)

func WithShards(n int) Option {
	return func(o *Options) { o.Shards = n }
}

func WithCommitConcurrency(n int) Option {
	return func(o *Options) { o.CommitConcurrency = n }
}

func WithLogger(l log.Log) Option {
	return func(o *Options) { o.Logger = l }
}

func WithBus(b bus.EventBus) Option {
	return func(o *Options) { o.Bus = b }
}

func defaultOptions() Options {
	return Options{
		Shards:            DefaultShards,
		CommitConcurrency: DefaultCommitConcurrency,
		Logger:            log.NewNop(),
	}
}

func (o *Options) normalize() {
	if o.Shards <= 0 {
		o.Shards = DefaultShards
	}
	if o.CommitConcurrency <= 0 {
		o.CommitConcurrency = DefaultCommitConcurrency
	}
	if o.Logger == nil {
		o.Logger = log.NewNop()
	}
}
