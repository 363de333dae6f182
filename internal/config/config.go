// Package config loads the optional cargoscope.toml workspace
// configuration. All values have working defaults; command-line flags
// override anything set in the file.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Filename is the configuration file looked up in the workspace root.
const Filename = "cargoscope.toml"

// Config holds the workspace configuration.
type Config struct {
	// Manifest is the manifest filename to discover.
	Manifest string `toml:"manifest"`

	// Ignore lists directory base names skipped during discovery.
	Ignore []string `toml:"ignore"`

	Server    Server    `toml:"server"`
	Snapshots Snapshots `toml:"snapshots"`
}

// Server configures the `serve` command.
type Server struct {
	// Addr is the listen address.
	Addr string `toml:"addr"`

	// Redis is the address of the Redis cache; empty disables the
	// shared cache and results are recomputed per request.
	Redis string `toml:"redis"`

	// CacheTTLSeconds bounds how long computed results are served from
	// cache before the workspace is rescanned.
	CacheTTLSeconds int `toml:"cache_ttl_seconds"`
}

// Snapshots configures the `snapshot` command.
type Snapshots struct {
	// MongoURI is the MongoDB connection string.
	MongoURI string `toml:"mongo_uri"`

	// Database is the MongoDB database name.
	Database string `toml:"database"`
}

// Default returns the configuration used when no file is present.
func Default() Config {
	return Config{
		Manifest: "Cargo.toml",
		Ignore:   []string{".git", "target"},
		Server: Server{
			Addr:            ":8422",
			CacheTTLSeconds: 60,
		},
		Snapshots: Snapshots{
			MongoURI: "mongodb://localhost:27017",
			Database: "cargoscope",
		},
	}
}

// Load reads cargoscope.toml from the workspace root, if present, on top
// of the defaults. A missing file is not an error; a malformed one is.
func Load(root string) (Config, error) {
	cfg := Default()

	path := filepath.Join(root, Filename)
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return Config{}, fmt.Errorf("read %s: %w", path, err)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse %s: %w", path, err)
	}
	return cfg, nil
}
