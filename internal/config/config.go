package config

import (
	"fmt"
	"net/url"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/pelletier/go-toml/v2"

	"subloc/internal/domain"
)

type Config struct {
	LocalesDir    string
	FallbacksFile string
	DefaultLocale string
	DatabaseURL   string
	MigrationsDir string
}

// Load reads configuration from environment variables and validates it.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		// .env is optional when variables come from the environment (CI, containers).
	}

	cfg := &Config{
		LocalesDir:    os.Getenv("SUBLOC_LOCALES_DIR"),
		FallbacksFile: os.Getenv("SUBLOC_FALLBACKS_FILE"),
		DefaultLocale: os.Getenv("SUBLOC_DEFAULT_LOCALE"),
		DatabaseURL:   os.Getenv("DATABASE_URL"),
		MigrationsDir: os.Getenv("SUBLOC_MIGRATIONS_DIR"),
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// validate applies all the rules on the loaded configuration.
func (c *Config) validate() error {
	if strings.TrimSpace(c.DefaultLocale) == "" {
		c.DefaultLocale = "en"
	}

	if strings.TrimSpace(c.LocalesDir) == "" && strings.TrimSpace(c.DatabaseURL) == "" {
		return fmt.Errorf("config: either SUBLOC_LOCALES_DIR or DATABASE_URL is required")
	}

	if strings.TrimSpace(c.DatabaseURL) != "" {
		parsed, err := url.Parse(c.DatabaseURL)
		if err != nil {
			return fmt.Errorf("config: invalid DATABASE_URL (%q): %w", c.DatabaseURL, err)
		}
		if parsed.Scheme == "" || parsed.Host == "" {
			return fmt.Errorf("config: invalid DATABASE_URL (%q): missing scheme or host", c.DatabaseURL)
		}
		if strings.TrimSpace(c.MigrationsDir) == "" {
			c.MigrationsDir = "migrations"
		}
	}

	return nil
}

// fallbacksFile is the on-disk TOML shape of the fallback configuration:
//
//	default = "en"
//	[chains]
//	cs = ["en"]
type fallbacksFile struct {
	Default string              `toml:"default"`
	Chains  map[string][]string `toml:"chains"`
}

// Fallbacks loads the fallback-chain configuration. Without a configured
// file, every locale falls back straight to the default locale.
func (c *Config) Fallbacks() (domain.Fallbacks, error) {
	if strings.TrimSpace(c.FallbacksFile) == "" {
		return domain.Fallbacks{Default: c.DefaultLocale}, nil
	}

	data, err := os.ReadFile(c.FallbacksFile)
	if err != nil {
		return domain.Fallbacks{}, fmt.Errorf("config: read fallbacks file: %w", err)
	}

	var file fallbacksFile
	if err := toml.Unmarshal(data, &file); err != nil {
		return domain.Fallbacks{}, fmt.Errorf("config: parse fallbacks file %s: %w", c.FallbacksFile, err)
	}

	fb := domain.Fallbacks{Default: file.Default, Chains: file.Chains}
	if strings.TrimSpace(fb.Default) == "" {
		fb.Default = c.DefaultLocale
	}
	return fb, nil
}
