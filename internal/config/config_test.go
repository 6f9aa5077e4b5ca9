package config

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"bundlegen/internal/domain"
)

func setEnv(t *testing.T, env map[string]string) {
	t.Helper()
	for _, k := range []string{"EXPORT_DIR", "EXPORT_FORMATS", "CONSOLE_LOCALE", "DATABASE_URL", "DISCORD_WEBHOOK_URL"} {
		t.Setenv(k, env[k])
	}
}

func TestLoadDefaults(t *testing.T) {
	setEnv(t, nil)

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, ".", cfg.ExportDir)
	require.Equal(t, []string{"json"}, cfg.Formats)
	require.Equal(t, "ja", cfg.ConsoleLocale)
	require.Empty(t, cfg.DatabaseURL)
	require.Empty(t, cfg.DiscordWebhookURL)
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	setEnv(t, map[string]string{
		"EXPORT_DIR":          dir,
		"EXPORT_FORMATS":      " JSON, toml ,",
		"CONSOLE_LOCALE":      "en",
		"DATABASE_URL":        "postgres://localhost:5432/bundlegen?sslmode=disable",
		"DISCORD_WEBHOOK_URL": "https://discord.com/api/webhooks/123/abc",
	})

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, dir, cfg.ExportDir)
	require.Equal(t, []string{"json", "toml"}, cfg.Formats)
	require.Equal(t, "en", cfg.ConsoleLocale)
}

func TestLoadMissingExportDir(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "missing")
	setEnv(t, map[string]string{"EXPORT_DIR": missing})

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, missing, cfg.ExportDir)
}

func TestLoadInvalid(t *testing.T) {
	for name, env := range map[string]map[string]string{
		"duplicate format": {"EXPORT_FORMATS": "json,json"},
		"bad locale":       {"CONSOLE_LOCALE": "not a locale"},
		"bad database":     {"DATABASE_URL": "localhost"},
		"bad webhook":      {"DISCORD_WEBHOOK_URL": "http://example.com/hook"},
	} {
		t.Run(name, func(t *testing.T) {
			setEnv(t, env)
			_, err := Load()
			require.ErrorIs(t, err, domain.ErrInvalidConfig)
		})
	}
}
