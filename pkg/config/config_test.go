package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func write(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadFullConfig(t *testing.T) {
	path := write(t, `
[render]
backdrop = true
text     = false

[server]
addr = ":9000"

[cache]
backend    = "redis"
redis_addr = "redis.internal:6379"
ttl_hours  = 48
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !cfg.Render.Backdrop || cfg.Render.Text {
		t.Errorf("render section not applied: %+v", cfg.Render)
	}
	if cfg.Server.Addr != ":9000" {
		t.Errorf("server addr = %q", cfg.Server.Addr)
	}
	if cfg.Cache.Backend != BackendRedis || cfg.Cache.RedisAddr != "redis.internal:6379" {
		t.Errorf("cache section not applied: %+v", cfg.Cache)
	}
	if cfg.Cache.TTLHours != 48 {
		t.Errorf("ttl_hours = %d, want 48", cfg.Cache.TTLHours)
	}
}

func TestLoadPartialKeepsDefaults(t *testing.T) {
	path := write(t, "[server]\naddr = \":1234\"\n")
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	def := Default()
	if cfg.Server.Addr != ":1234" {
		t.Errorf("addr = %q", cfg.Server.Addr)
	}
	if cfg.Cache.Backend != def.Cache.Backend || cfg.Render.Text != def.Render.Text {
		t.Errorf("unset sections should keep defaults: %+v", cfg)
	}
}

func TestLoadMissingExplicitPath(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.toml")); err == nil {
		t.Error("explicitly named missing file should error")
	}
}

func TestLoadMalformed(t *testing.T) {
	path := write(t, "[render\nbackdrop =")
	if _, err := Load(path); err == nil {
		t.Error("malformed TOML should error")
	}
}

func TestLoadRejectsUnknownBackend(t *testing.T) {
	path := write(t, "[cache]\nbackend = \"memcached\"\n")
	_, err := Load(path)
	if err == nil || !strings.Contains(err.Error(), "unknown cache backend") {
		t.Errorf("unknown backend should be rejected, got %v", err)
	}
}

func TestDefaults(t *testing.T) {
	cfg := Default()
	if !cfg.Render.Text {
		t.Error("text rendering should default on")
	}
	if cfg.Render.Backdrop {
		t.Error("backdrop should default off")
	}
	if cfg.Server.Addr == "" {
		t.Error("server addr should have a default")
	}
	if cfg.Cache.Backend != BackendNone {
		t.Errorf("cache should default to %q, got %q", BackendNone, cfg.Cache.Backend)
	}
	if err := cfg.validate(); err != nil {
		t.Errorf("defaults must validate: %v", err)
	}
}

func TestCacheDirConfigured(t *testing.T) {
	c := CacheSettings{Dir: "/tmp/aasvg-cache"}
	dir, err := c.CacheDir()
	if err != nil || dir != "/tmp/aasvg-cache" {
		t.Errorf("CacheDir = %q, %v", dir, err)
	}
}
