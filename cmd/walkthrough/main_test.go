package main

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/zeusync/entitystore/internal/config"
	"github.com/zeusync/entitystore/internal/core/events/bus"
	"github.com/zeusync/entitystore/internal/injector"
)

func TestRun(t *testing.T) {
	cfg := config.Default()
	cfg.Log.Level = "error"
	app, err := injector.InitializeApp(cfg)
	require.NoError(t, err)

	var seen []bus.EventType
	_, err = app.Bus.SubscribeAll(func(event bus.Event) error {
		seen = append(seen, event.Type)
		return nil
	})
	require.NoError(t, err)

	require.NoError(t, run(app))
	require.Equal(t, []bus.EventType{bus.ComponentAdded, bus.ComponentSaved}, seen)
}
