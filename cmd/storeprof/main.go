// Profiling:
// go build ./cmd/storeprof
// ./storeprof -mode mem
// go tool pprof -http=":8000" -nodefraction=0.001 ./storeprof mem.pprof

package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/pkg/profile"

	"github.com/zeusync/entitystore/internal/components"
	"github.com/zeusync/entitystore/internal/core/models"
	"github.com/zeusync/entitystore/internal/core/schema/registry"
	"github.com/zeusync/entitystore/internal/core/store"
)

func main() {
	mode := flag.String("mode", "mem", "profile mode: mem or cpu")
	rounds := flag.Int("rounds", 20, "number of rounds")
	entities := flag.Int("entities", 1000, "entities per round")
	flag.Parse()

	var kind func(*profile.Profile)
	switch *mode {
	case "mem":
		kind = profile.MemProfileAllocs
	case "cpu":
		kind = profile.CPUProfile
	default:
		fmt.Fprintln(os.Stderr, "storeprof: unknown mode", *mode)
		os.Exit(2)
	}

	p := profile.Start(kind, profile.ProfilePath("."), profile.NoShutdownHook)
	err := run(context.Background(), *rounds, *entities)
	p.Stop()
	if err != nil {
		fmt.Fprintln(os.Stderr, "storeprof:", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, rounds, numEntities int) error {
	reg := registry.New()
	if err := components.Register(reg); err != nil {
		return err
	}

	for range rounds {
		s := store.New(reg)
		ids := make([]models.EntityID, 0, numEntities)
		commits := make([]store.Commit, 0, numEntities)

		for i := range numEntities {
			e := s.CreateEntity()
			ids = append(ids, e)

			loc, err := components.AddLocation(s, e)
			if err != nil {
				return err
			}
			if err = loc.SetLocation(mgl64.Vec3{float64(i), 0, 0}); err != nil {
				return err
			}
			commits = append(commits, store.Commit{Entity: e, Kind: components.LocationKind, View: loc.View()})
		}
		if err := s.SaveAll(ctx, commits...); err != nil {
			return err
		}

		for _, e := range ids {
			loc, ok := components.GetLocation(s, e)
			if !ok {
				return fmt.Errorf("entity %s lost its location", e)
			}
			v, _ := loc.Location()
			if err := loc.SetLocation(v.Add(mgl64.Vec3{0, 1, 0})); err != nil {
				return err
			}
			if err := loc.Save(s); err != nil {
				return err
			}
		}

		if err := s.DestroyEntities(ctx, ids...); err != nil {
			return err
		}
	}
	return nil
}
