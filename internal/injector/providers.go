package injector

import (
	"github.com/google/wire"

	"github.com/zeusync/entitystore/internal/components"
	"github.com/zeusync/entitystore/internal/config"
	"github.com/zeusync/entitystore/internal/core/events/bus"
	"github.com/zeusync/entitystore/internal/core/observability/log"
	"github.com/zeusync/entitystore/internal/core/schema/registry"
	"github.com/zeusync/entitystore/internal/core/store"
)

// App is the wired object graph of a store process.
type App struct {
	Config   *config.Config
	Logger   *log.Logger
	Registry *registry.Registry
	Bus      bus.EventBus
	Store    *store.Store
}

var ProviderSet = wire.NewSet(
	ProvideLogger,
	ProvideRegistry,
	ProvideBus,
	ProvideStore,
	wire.Struct(new(App), "*"),
)

func ProvideLogger(cfg *config.Config) *log.Logger {
	return log.New(cfg.Level())
}

// ProvideRegistry registers the built-in components followed by every schema
// file named in the configuration.
func ProvideRegistry(cfg *config.Config) (*registry.Registry, error) {
	reg := registry.New()
	if err := components.Register(reg); err != nil {
		return nil, err
	}
	for _, path := range cfg.Schemas {
		if err := reg.LoadFile(path); err != nil {
			return nil, err
		}
	}
	return reg, nil
}

func ProvideBus() bus.EventBus {
	return bus.New()
}

func ProvideStore(cfg *config.Config, reg *registry.Registry, logger *log.Logger, b bus.EventBus) *store.Store {
	opts := append(cfg.StoreOptions(), store.WithLogger(logger), store.WithBus(b))
	return store.New(reg, opts...)
}
