package components

import (
	"os"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/require"

	"github.com/zeusync/entitystore/internal/core/schema/registry"
	"github.com/zeusync/entitystore/internal/core/store"
)

func newStore(t *testing.T) *store.Store {
	t.Helper()
	reg := registry.New()
	require.NoError(t, Register(reg))
	return store.New(reg)
}

func TestGeneratedDescriptorsMatchSchema(t *testing.T) {
	f, err := os.Open("components.yaml")
	require.NoError(t, err)
	defer func() { _ = f.Close() }()

	fromYAML, err := registry.LoadYAML(f)
	require.NoError(t, err)

	generated := Descriptors()
	require.Len(t, generated, len(fromYAML))
	for i, want := range fromYAML {
		require.Equal(t, want.Kind(), generated[i].Kind())
		require.Equal(t, want.Description(), generated[i].Description())
		require.Equal(t, want.Properties(), generated[i].Properties())
	}
}

func TestLocationWalkthrough(t *testing.T) {
	s := newStore(t)
	e := s.CreateEntity()

	original, err := AddLocation(s, e)
	require.NoError(t, err)
	_, ok := original.Location()
	require.False(t, ok)

	require.NoError(t, original.SetLocation(mgl64.Vec3{1, 1, 1}))
	got, ok := original.Location()
	require.True(t, ok)
	require.Equal(t, mgl64.Vec3{1, 1, 1}, got)

	copied, ok := GetLocation(s, e)
	require.True(t, ok)
	_, ok = copied.Location()
	require.False(t, ok)

	require.NoError(t, original.Save(s))
	got, ok = copied.Location()
	require.True(t, ok)
	require.Equal(t, mgl64.Vec3{1, 1, 1}, got)
	require.Equal(t, e, copied.Entity())
}

func TestHealth(t *testing.T) {
	s := newStore(t)
	e := s.CreateEntity()

	h, err := AddHealth(s, e)
	require.NoError(t, err)
	require.NoError(t, h.SetCurrent(80))
	require.NoError(t, h.SetMax(100))
	require.NoError(t, h.SetRegenRate(1.5))
	require.NoError(t, h.Save(s))

	_, err = AddHealth(s, e)
	require.ErrorIs(t, err, store.ErrAlreadyAttached)

	h, ok := GetHealth(s, e)
	require.True(t, ok)
	current, _ := h.Current()
	maxHP, _ := h.Max()
	rate, _ := h.RegenRate()
	require.Equal(t, int64(80), current)
	require.Equal(t, int64(100), maxHP)
	require.Equal(t, 1.5, rate)

	require.NoError(t, h.ClearRegenRate())
	require.NoError(t, h.Save(s))

	snap, _ := s.Snapshot(e, HealthKind)
	require.Equal(t, map[string]any{"current": int64(80), "max": int64(100)}, snap)

	// untyped writes of Go ints land as int64 and stay readable through typed views
	h, _ = GetHealth(s, e)
	require.NoError(t, h.View().Set("max", 120))
	require.NoError(t, h.Save(s))
	maxHP, ok = h.Max()
	require.True(t, ok)
	require.Equal(t, int64(120), maxHP)
}

func TestNameplate(t *testing.T) {
	s := newStore(t)
	e := s.CreateEntity()

	_, ok := GetNameplate(s, e)
	require.False(t, ok)

	n, err := AddNameplate(s, e)
	require.NoError(t, err)
	require.NoError(t, n.SetText("shopkeeper"))
	require.NoError(t, n.SetVisible(true))
	require.NoError(t, n.ClearVisible())

	visible, ok := n.Visible()
	require.False(t, ok)
	require.False(t, visible)
	require.NoError(t, n.Save(s))

	again := AsNameplate(n.View())
	text, ok := again.Text()
	require.True(t, ok)
	require.Equal(t, "shopkeeper", text)
}

func TestAsPanicsOnWrongKind(t *testing.T) {
	s := newStore(t)
	e := s.CreateEntity()
	loc, err := AddLocation(s, e)
	require.NoError(t, err)

	require.Panics(t, func() { AsHealth(loc.View()) })
	require.Panics(t, func() { AsLocation(nil) })
	require.NotPanics(t, func() { AsLocation(loc.View()) })
}
