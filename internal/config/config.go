package config

import (
	"fmt"
	"net/url"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"golang.org/x/text/language"

	"bundlegen/internal/domain"
)

const (
	defaultExportDir     = "."
	defaultFormats       = "json"
	defaultConsoleLocale = "ja"
	discordWebhookPrefix = "/api/webhooks/"
)

type Config struct {
	ExportDir         string
	Formats           []string
	ConsoleLocale     string
	DatabaseURL       string
	DiscordWebhookURL string
}

// Load reads the configuration from the environment (and an optional .env)
// and validates it. With nothing set, every set is written as JSON into the
// working directory.
func Load() (*Config, error) {
	// .env is optional: variables may come from the environment directly.
	_ = godotenv.Load()

	cfg := &Config{
		ExportDir:         os.Getenv("EXPORT_DIR"),
		Formats:           splitList(os.Getenv("EXPORT_FORMATS")),
		ConsoleLocale:     os.Getenv("CONSOLE_LOCALE"),
		DatabaseURL:       os.Getenv("DATABASE_URL"),
		DiscordWebhookURL: os.Getenv("DISCORD_WEBHOOK_URL"),
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.ToLower(strings.TrimSpace(part)); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func (c *Config) validate() error {
	if strings.TrimSpace(c.ExportDir) == "" {
		c.ExportDir = defaultExportDir
	}
	// EXPORT_DIR is not checked here: a missing directory fails at write time
	// with the raw I/O error.

	if len(c.Formats) == 0 {
		c.Formats = []string{defaultFormats}
	}
	seen := map[string]bool{}
	for _, f := range c.Formats {
		if seen[f] {
			return fmt.Errorf("config: EXPORT_FORMATS lists %q twice: %w", f, domain.ErrInvalidConfig)
		}
		seen[f] = true
	}

	if strings.TrimSpace(c.ConsoleLocale) == "" {
		c.ConsoleLocale = defaultConsoleLocale
	}
	if _, err := language.Parse(c.ConsoleLocale); err != nil {
		return fmt.Errorf("config: CONSOLE_LOCALE %q: %v: %w", c.ConsoleLocale, err, domain.ErrInvalidConfig)
	}

	if c.DatabaseURL != "" {
		parsed, err := url.Parse(c.DatabaseURL)
		if err != nil {
			return fmt.Errorf("config: DATABASE_URL %q: %v: %w", c.DatabaseURL, err, domain.ErrInvalidConfig)
		}
		if parsed.Scheme == "" || parsed.Host == "" {
			return fmt.Errorf("config: DATABASE_URL %q: missing scheme or host: %w", c.DatabaseURL, domain.ErrInvalidConfig)
		}
	}

	if c.DiscordWebhookURL != "" {
		parsed, err := url.Parse(c.DiscordWebhookURL)
		if err != nil || parsed.Scheme != "https" || !strings.HasPrefix(parsed.Path, discordWebhookPrefix) {
			return fmt.Errorf("config: DISCORD_WEBHOOK_URL must look like https://discord.com/api/webhooks/<id>/<token>: %w", domain.ErrInvalidConfig)
		}
	}

	return nil
}
