// Package config holds the process configuration of the entity store binaries.
package config

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/zeusync/entitystore/internal/core/observability/log"
	"github.com/zeusync/entitystore/internal/core/store"
)

type Config struct {
	Log     LogConfig   `yaml:"log"`
	Store   StoreConfig `yaml:"store"`
	Schemas []string    `yaml:"schemas,omitempty"`
}

type LogConfig struct {
	Level string `yaml:"level"`
}

type StoreConfig struct {
	Shards            int `yaml:"shards"`
	CommitConcurrency int `yaml:"commit_concurrency"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{
		Log: LogConfig{Level: "info"},
		Store: StoreConfig{
			Shards:            store.DefaultShards,
			CommitConcurrency: store.DefaultCommitConcurrency,
		},
	}
}

// LoadYAML decodes a configuration over the defaults and validates it.
// An empty document yields the defaults.
func LoadYAML(r io.Reader) (*Config, error) {
	c := Default()
	if err := yaml.NewDecoder(r).Decode(c); err != nil && !errors.Is(err, io.EOF) {
		return nil, err
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// Load reads the configuration file at path. An empty path yields the defaults.
func Load(path string) (*Config, error) {
	if path == "" {
		return Default(), nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = f.Close() }()

	c, err := LoadYAML(f)
	if err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return c, nil
}

func (c *Config) Validate() error {
	if _, err := log.ParseLevel(c.Log.Level); err != nil {
		return err
	}
	if c.Store.Shards < 0 {
		return fmt.Errorf("store.shards must not be negative, got %d", c.Store.Shards)
	}
	if c.Store.CommitConcurrency < 0 {
		return fmt.Errorf("store.commit_concurrency must not be negative, got %d", c.Store.CommitConcurrency)
	}
	return nil
}

// Level is the parsed log level. Call Validate first.
func (c *Config) Level() log.Level {
	l, _ := log.ParseLevel(c.Log.Level)
	return l
}

// StoreOptions maps the store section onto store options.
func (c *Config) StoreOptions() []store.Option {
	return []store.Option{
		store.WithShards(c.Store.Shards),
		store.WithCommitConcurrency(c.Store.CommitConcurrency),
	}
}
