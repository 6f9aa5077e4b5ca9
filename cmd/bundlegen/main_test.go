package main

import (
	"bytes"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"bundlegen/internal/domain"
	"bundlegen/internal/domain/entities"
	"bundlegen/internal/infrastructure/encoding/jsonfile"
	"bundlegen/internal/infrastructure/i18n"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var buf bytes.Buffer
	a := newApp()
	a.Writer = &buf
	err := a.Run(append([]string{"bundlegen"}, args...))
	return buf.String(), err
}

func useEnv(t *testing.T, dir string) {
	t.Helper()
	t.Setenv("EXPORT_DIR", dir)
	t.Setenv("EXPORT_FORMATS", "")
	t.Setenv("CONSOLE_LOCALE", "en")
	t.Setenv("DATABASE_URL", "")
	t.Setenv("DISCORD_WEBHOOK_URL", "")
}

func TestExportCommand(t *testing.T) {
	dir := t.TempDir()
	useEnv(t, dir)

	_, err := run(t, "export", "guide", "final_pages")
	require.NoError(t, err)

	for _, name := range []string{"guide_ja.json", "guide_en.json", "privacy_ja.json", "terms_en.json", "mytemplates_ja.json"} {
		data, err := os.ReadFile(filepath.Join(dir, name))
		require.NoError(t, err, name)
		_, err = jsonfile.Decode(data)
		require.NoError(t, err, name)
	}
	_, err = os.Stat(filepath.Join(dir, "pages_ja.json"))
	require.True(t, os.IsNotExist(err))
}

func TestDefaultActionExportsEverySet(t *testing.T) {
	dir := t.TempDir()
	useEnv(t, dir)

	_, err := run(t)
	require.NoError(t, err)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 22)
}

func TestExportUnknownSet(t *testing.T) {
	useEnv(t, t.TempDir())

	_, err := run(t, "export", "nope")
	require.ErrorIs(t, err, domain.ErrSetNotFound)
	require.Contains(t, err.Error(), "The requested set does not exist.")
}

func TestCheckCommand(t *testing.T) {
	useEnv(t, t.TempDir())

	out, err := run(t, "check")
	require.NoError(t, err)
	require.Contains(t, out, "Check finished: 0 error(s)")
}

func TestListCommand(t *testing.T) {
	useEnv(t, t.TempDir())

	out, err := run(t, "list")
	require.NoError(t, err)
	require.Contains(t, out, "guide: Guide and tutorial page\n  guide (ja, en) keys: 122\n")
}

func TestExportMissingDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "missing")
	useEnv(t, dir)

	_, err := run(t, "export", "guide")
	require.ErrorIs(t, err, fs.ErrNotExist)
	require.NotErrorIs(t, err, domain.ErrInvalidConfig)
	require.Contains(t, err.Error(), "write "+filepath.Join(dir, "guide_ja.json"))
}

func TestPrintSetsSkipsTargetsWithoutLocales(t *testing.T) {
	sets := []entities.Set{{
		Name:        "legal",
		Description: "Legal pages",
		Targets: []entities.Target{
			{Stem: "draft"},
			{Stem: "terms", Locales: []entities.LocaleSources{
				{Locale: "ja", Sources: []entities.Bundle{{{Key: "title", Value: entities.Text("利用規約")}}}},
			}},
		},
	}}

	var buf bytes.Buffer
	require.NotPanics(t, func() {
		printSets(&buf, i18n.NewTranslator("en"), "en", sets)
	})
	require.Equal(t, "legal: Legal pages\n  terms (ja) keys: 1\n", buf.String())
}

func TestHistoryWithoutLedger(t *testing.T) {
	useEnv(t, t.TempDir())

	out, err := run(t, "history", "guide")
	require.NoError(t, err)
	require.Equal(t, "No export history for guide.\n", out)
}
