package generic

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPool(t *testing.T) {
	t.Run("put resets values", func(t *testing.T) {
		p := NewPool(
			func() map[string]int { return make(map[string]int) },
			func(m map[string]int) { clear(m) },
		)
		m := p.Get()
		m["a"] = 1
		p.Put(m)
		require.Empty(t, m)
		require.NotNil(t, p.Get())
	})

	t.Run("nil reset", func(t *testing.T) {
		calls := 0
		p := NewHotPool(func() *int { calls++; return new(int) }, nil, 3)
		require.Equal(t, 3, calls)
		v := p.Get()
		require.NotNil(t, v)
		p.Put(v)
	})
}
