package bus

import (
	"errors"
	"strconv"
	"sync/atomic"
	"testing"
)

var errBench = errors.New("bench")

// counting handler so the delivery loop is not optimized away
func makeHandler(c *atomic.Int64, fail bool) EventHandler {
	return func(Event) error {
		c.Add(1)
		if fail {
			return errBench
		}
		return nil
	}
}

func benchEvent() Event {
	return Event{Type: ComponentSaved, Entity: 1, Kind: "location", Properties: []string{"location"}}
}

func BenchmarkPublishSingleSubscriber(b *testing.B) {
	bus := New()
	var c atomic.Int64
	_, _ = bus.Subscribe(ComponentSaved, makeHandler(&c, false))
	e := benchEvent()
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = bus.Publish(e)
	}
}

func BenchmarkPublishManySubscribers(b *testing.B) {
	for _, subs := range []int{1, 16, 256} {
		b.Run("subs="+strconv.Itoa(subs), func(b *testing.B) {
			bus := New()
			var c atomic.Int64
			for i := 0; i < subs; i++ {
				_, _ = bus.Subscribe(ComponentSaved, makeHandler(&c, false))
			}
			e := benchEvent()
			b.ReportAllocs()
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				_ = bus.Publish(e)
			}
		})
	}
}

func BenchmarkPublishWithErrors(b *testing.B) {
	bus := New()
	var c atomic.Int64
	_, _ = bus.Subscribe(ComponentSaved, makeHandler(&c, true))
	_, _ = bus.SubscribeAll(makeHandler(&c, false))
	e := benchEvent()
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = bus.Publish(e)
	}
}

func BenchmarkPublishParallel(b *testing.B) {
	bus := New()
	var c atomic.Int64
	_, _ = bus.Subscribe(ComponentSaved, makeHandler(&c, false))
	e := benchEvent()
	b.ReportAllocs()
	b.ResetTimer()
	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			_ = bus.Publish(e)
		}
	})
}
