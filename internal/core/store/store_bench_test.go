package store

import (
	"context"
	"strconv"
	"testing"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/zeusync/entitystore/internal/core/models"
)

func BenchmarkSaveComponent(b *testing.B) {
	s := New(newTestRegistry(b))
	e := s.CreateEntity()
	if _, err := s.AddComponent(e, locationKind); err != nil {
		b.Fatal(err)
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		v, _ := s.GetComponent(e, locationKind)
		_ = v.Set("location", mgl64.Vec3{float64(i), 0, 0})
		if err := s.SaveComponent(e, locationKind, v); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkReadThrough(b *testing.B) {
	s := New(newTestRegistry(b))
	e := s.CreateEntity()
	v, _ := s.AddComponent(e, locationKind)
	_ = v.Set("location", mgl64.Vec3{1, 1, 1})
	_ = s.SaveComponent(e, locationKind, v)
	reader, _ := s.GetComponent(e, locationKind)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = reader.Get("location")
	}
}

func BenchmarkSaveAll(b *testing.B) {
	for _, n := range []int{16, 256} {
		b.Run("views="+strconv.Itoa(n), func(b *testing.B) {
			s := New(newTestRegistry(b))
			ids := make([]models.EntityID, n)
			for i := range ids {
				ids[i] = s.CreateEntity()
				_, _ = s.AddComponent(ids[i], locationKind)
			}
			b.ReportAllocs()
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				commits := make([]Commit, n)
				for j, e := range ids {
					v, _ := s.GetComponent(e, locationKind)
					_ = v.Set("location", mgl64.Vec3{float64(j), 0, 0})
					commits[j] = Commit{Entity: e, Kind: locationKind, View: v}
				}
				if err := s.SaveAll(context.Background(), commits...); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}
