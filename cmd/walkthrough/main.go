package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/zeusync/entitystore/internal/components"
	"github.com/zeusync/entitystore/internal/config"
	"github.com/zeusync/entitystore/internal/core/events/bus"
	"github.com/zeusync/entitystore/internal/core/observability/log"
	"github.com/zeusync/entitystore/internal/injector"
)

func main() {
	path := flag.String("config", "", "path to a YAML config file")
	flag.Parse()

	cfg, err := config.Load(*path)
	if err != nil {
		fmt.Println("Error loading config:", err)
		os.Exit(1)
	}

	app, err := injector.InitializeApp(cfg)
	if err != nil {
		fmt.Println("Error initializing store:", err)
		os.Exit(1)
	}
	defer func() { _ = app.Logger.Sync() }()

	if err = run(app); err != nil {
		app.Logger.Error("walkthrough failed", log.Error(err))
		os.Exit(1)
	}
}

// run attaches a location to a fresh entity, writes through one view and
// shows the committed value arriving in a second view only after save.
func run(app *injector.App) error {
	logger := app.Logger.With(log.String("component", "walkthrough"))

	sub, err := app.Bus.SubscribeAll(func(event bus.Event) error {
		logger.Info("event",
			log.String("type", string(event.Type)),
			log.Entity(event.Entity),
			log.Kind(event.Kind),
			log.Strings("properties", event.Properties),
		)
		return nil
	})
	if err != nil {
		return err
	}
	defer func() { _ = sub.Cancel() }()

	s := app.Store
	e := s.CreateEntity()

	original, err := components.AddLocation(s, e)
	if err != nil {
		return err
	}
	if err = original.SetLocation(mgl64.Vec3{1, 1, 1}); err != nil {
		return err
	}

	copied, ok := components.GetLocation(s, e)
	if !ok {
		return fmt.Errorf("entity %s has no location", e)
	}
	before, present := copied.Location()
	logger.Info("second view before save", log.Entity(e), log.Bool("present", present), log.Stringer("location", vec(before)))

	if err = original.Save(s); err != nil {
		return err
	}

	after, present := copied.Location()
	logger.Info("second view after save", log.Entity(e), log.Bool("present", present), log.Stringer("location", vec(after)))
	if !present || after != (mgl64.Vec3{1, 1, 1}) {
		return fmt.Errorf("committed location not visible: %v", after)
	}
	return nil
}

type vec mgl64.Vec3

func (v vec) String() string {
	return fmt.Sprintf("(%g, %g, %g)", v[0], v[1], v[2])
}
