package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(t.TempDir())
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Manifest != "Cargo.toml" {
		t.Errorf("Manifest = %q", cfg.Manifest)
	}
	if len(cfg.Ignore) != 2 {
		t.Errorf("Ignore = %v", cfg.Ignore)
	}
	if cfg.Server.Addr == "" || cfg.Snapshots.Database == "" {
		t.Error("defaults should fill server and snapshot sections")
	}
}

func TestLoadOverrides(t *testing.T) {
	root := t.TempDir()
	content := `
manifest = "Crate.toml"
ignore = ["vendor"]

[server]
addr = ":9000"
redis = "localhost:6379"

[snapshots]
database = "audits"
`
	if err := os.WriteFile(filepath.Join(root, Filename), []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(root)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Manifest != "Crate.toml" {
		t.Errorf("Manifest = %q", cfg.Manifest)
	}
	if len(cfg.Ignore) != 1 || cfg.Ignore[0] != "vendor" {
		t.Errorf("Ignore = %v", cfg.Ignore)
	}
	if cfg.Server.Addr != ":9000" || cfg.Server.Redis != "localhost:6379" {
		t.Errorf("Server = %+v", cfg.Server)
	}
	if cfg.Snapshots.Database != "audits" {
		t.Errorf("Database = %q", cfg.Snapshots.Database)
	}
	// Values absent from the file keep their defaults.
	if cfg.Server.CacheTTLSeconds != 60 {
		t.Errorf("CacheTTLSeconds = %d, want default 60", cfg.Server.CacheTTLSeconds)
	}
	if cfg.Snapshots.MongoURI != "mongodb://localhost:27017" {
		t.Errorf("MongoURI = %q, want default", cfg.Snapshots.MongoURI)
	}
}

func TestLoadMalformed(t *testing.T) {
	root := t.TempDir()
	if err := os.WriteFile(filepath.Join(root, Filename), []byte("manifest = ["), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(root); err == nil {
		t.Fatal("malformed config should error")
	}
}
