package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/zeusync/entitystore/internal/core/observability/log"
	"github.com/zeusync/entitystore/internal/core/store"
)

func TestLoadYAML(t *testing.T) {
	t.Run("full document", func(t *testing.T) {
		c, err := LoadYAML(strings.NewReader(`
log:
  level: debug
store:
  shards: 4
  commit_concurrency: 2
schemas:
  - extra.yaml
`))
		require.NoError(t, err)
		require.Equal(t, log.LevelDebug, c.Level())
		require.Equal(t, 4, c.Store.Shards)
		require.Equal(t, 2, c.Store.CommitConcurrency)
		require.Equal(t, []string{"extra.yaml"}, c.Schemas)
		require.Len(t, c.StoreOptions(), 2)
	})

	t.Run("partial document keeps defaults", func(t *testing.T) {
		c, err := LoadYAML(strings.NewReader("log:\n  level: warn\n"))
		require.NoError(t, err)
		require.Equal(t, log.LevelWarn, c.Level())
		require.Equal(t, store.DefaultShards, c.Store.Shards)
		require.Equal(t, store.DefaultCommitConcurrency, c.Store.CommitConcurrency)
	})

	t.Run("empty document", func(t *testing.T) {
		c, err := LoadYAML(strings.NewReader(""))
		require.NoError(t, err)
		require.Equal(t, Default(), c)
	})

	t.Run("invalid", func(t *testing.T) {
		_, err := LoadYAML(strings.NewReader("log:\n  level: loud\n"))
		require.Error(t, err)

		_, err = LoadYAML(strings.NewReader("store:\n  shards: -1\n"))
		require.ErrorContains(t, err, "store.shards")

		_, err = LoadYAML(strings.NewReader("store:\n  commit_concurrency: -3\n"))
		require.ErrorContains(t, err, "commit_concurrency")

		_, err = LoadYAML(strings.NewReader("store: [1, 2]\n"))
		require.Error(t, err)
	})
}

func TestLoad(t *testing.T) {
	c, err := Load("")
	require.NoError(t, err)
	require.Equal(t, Default(), c)

	path := filepath.Join(t.TempDir(), "store.yaml")
	require.NoError(t, os.WriteFile(path, []byte("store:\n  shards: 8\n"), 0o600))
	c, err = Load(path)
	require.NoError(t, err)
	require.Equal(t, 8, c.Store.Shards)

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
}
