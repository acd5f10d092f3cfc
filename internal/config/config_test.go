package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.json"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Server.Addr != ":8080" || cfg.Output.CurrencySuffix != "₫" {
		t.Errorf("unexpected defaults: %+v", cfg)
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "cfg.json")
	cfg := Default()
	cfg.Catalog.RemoteURL = "http://localhost:9000"
	cfg.Generator.Offline = true

	if err := cfg.Save(path); err != nil {
		t.Fatalf("Save: %v", err)
	}
	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if loaded.Catalog.RemoteURL != cfg.Catalog.RemoteURL || !loaded.Generator.Offline {
		t.Errorf("round trip lost fields: %+v", loaded)
	}
}

func TestPartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cfg.json")
	if err := os.WriteFile(path, []byte(`{"server":{"addr":":9999"}}`), 0600); err != nil {
		t.Fatal(err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Server.Addr != ":9999" {
		t.Errorf("addr = %q", cfg.Server.Addr)
	}
	if cfg.Server.Store != "sqlite" {
		t.Errorf("store default lost: %q", cfg.Server.Store)
	}
}

func TestApplyEnv(t *testing.T) {
	t.Setenv("PCBUILD_STORE", "memory")
	t.Setenv("ADMIN_PASSWORD", "s3cret")

	cfg := Default()
	if err := cfg.ApplyEnv(); err != nil {
		t.Fatalf("ApplyEnv: %v", err)
	}
	if cfg.Server.Store != "memory" || cfg.Server.AdminPassword != "s3cret" {
		t.Errorf("env not applied: %+v", cfg.Server)
	}
	if cfg.Server.Addr != ":8080" {
		t.Errorf("unset env should keep file value, got %q", cfg.Server.Addr)
	}
}

func TestCatalogTimeout(t *testing.T) {
	if got := (CatalogConfig{}).Timeout(); got != 10*time.Second {
		t.Errorf("default timeout = %v", got)
	}
	if got := (CatalogConfig{TimeoutSeconds: 3}).Timeout(); got != 3*time.Second {
		t.Errorf("timeout = %v", got)
	}
}
