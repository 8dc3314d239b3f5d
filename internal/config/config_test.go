package config

import (
	"os"
	"path/filepath"
	"testing"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"SUBLOC_LOCALES_DIR",
		"SUBLOC_FALLBACKS_FILE",
		"SUBLOC_DEFAULT_LOCALE",
		"DATABASE_URL",
		"SUBLOC_MIGRATIONS_DIR",
	} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}
}

func TestLoadRequiresASource(t *testing.T) {
	clearEnv(t)
	if _, err := Load(); err == nil {
		t.Fatal("expected error without locales dir or database url")
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)
	t.Setenv("SUBLOC_LOCALES_DIR", "assets/locales")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.DefaultLocale != "en" {
		t.Fatalf("default locale = %q, want en", cfg.DefaultLocale)
	}
}

func TestLoadRejectsInvalidDatabaseURL(t *testing.T) {
	clearEnv(t)
	t.Setenv("DATABASE_URL", "not-a-url")

	if _, err := Load(); err == nil {
		t.Fatal("expected error for database url without scheme or host")
	}
}

func TestLoadDatabaseURLDefaultsMigrationsDir(t *testing.T) {
	clearEnv(t)
	t.Setenv("DATABASE_URL", "postgres://localhost:5432/subloc?sslmode=disable")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.MigrationsDir != "migrations" {
		t.Fatalf("migrations dir = %q", cfg.MigrationsDir)
	}
}

func TestFallbacksWithoutFile(t *testing.T) {
	cfg := &Config{DefaultLocale: "en"}

	fb, err := cfg.Fallbacks()
	if err != nil {
		t.Fatalf("fallbacks: %v", err)
	}
	if fb.Default != "en" {
		t.Fatalf("default = %q", fb.Default)
	}
	if len(fb.Chains) != 0 {
		t.Fatalf("chains = %v, want none", fb.Chains)
	}
}

func TestFallbacksFromTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fallbacks.toml")
	content := "default = \"en\"\n\n[chains]\ncs = [\"sk\", \"en\"]\nfr = [\"en\"]\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write fallbacks file: %v", err)
	}

	cfg := &Config{DefaultLocale: "en", FallbacksFile: path}
	fb, err := cfg.Fallbacks()
	if err != nil {
		t.Fatalf("fallbacks: %v", err)
	}
	if fb.Default != "en" {
		t.Fatalf("default = %q", fb.Default)
	}
	chain := fb.ChainFor("cs")
	if len(chain) != 2 || chain[0] != "sk" || chain[1] != "en" {
		t.Fatalf("cs chain = %v", chain)
	}
	if len(fb.ChainFor("de")) != 0 {
		t.Fatalf("de chain = %v, want none", fb.ChainFor("de"))
	}
}
