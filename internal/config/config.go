package config

import (
	"os"

	"gopkg.in/yaml.v3"

	"lrucache/pkg/errors"
)

const (
	DefaultCacheSize = 1024
	DefaultShards    = 16
	DefaultLogLevel  = "info"
)

// Config carries the cache construction and logging settings.
type Config struct {
	// Total number of entries the cache may hold
	CacheSize int `yaml:"cache_size"`

	// Shard count, rounded up to a power of two at construction
	Shards int `yaml:"shards"`

	// Logging Config
	LogLevel string `yaml:"log_level"`
	LogFile  string `yaml:"log_file"`
}

// DefaultConfig returns the settings used when no config file is given.
func DefaultConfig() *Config {
	return &Config{
		CacheSize: DefaultCacheSize,
		Shards:    DefaultShards,
		LogLevel:  DefaultLogLevel,
	}
}

// FromFile reads a yaml config file. Keys absent from the file keep their
// default values.
func FromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	conf := DefaultConfig()
	if err := yaml.Unmarshal(data, conf); err != nil {
		return nil, err
	}
	if err := conf.Validate(); err != nil {
		return nil, err
	}
	return conf, nil
}

// Validate rejects settings the cache constructors would refuse.
func (c *Config) Validate() error {
	if c.CacheSize < 1 {
		return errors.ErrInvalidCapacity
	}
	if c.Shards < 1 {
		return errors.ErrInvalidShardCount
	}
	return nil
}
