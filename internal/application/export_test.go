package application

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"bundlegen/internal/catalog"
	"bundlegen/internal/domain"
	"bundlegen/internal/domain/entities"
	"bundlegen/internal/infrastructure/encoding/jsonfile"
	"bundlegen/internal/infrastructure/encoding/tomlfile"
	"bundlegen/internal/ports/output"
)

var fixedNow = time.Date(2025, 1, 26, 9, 0, 0, 0, time.UTC)

func text(k, v string) entities.Entry { return entities.Entry{Key: k, Value: entities.Text(v)} }

func testSets() []entities.Set {
	return []entities.Set{
		{
			Name:        "pages",
			Description: "pages",
			Targets: []entities.Target{{
				Stem: "pages",
				Locales: []entities.LocaleSources{
					{Locale: "ja", Sources: []entities.Bundle{
						{text("a.title", "X")},
						{text("a.title", "Y"), text("a.desc", "{{count}}件")},
					}},
					{Locale: "en", Sources: []entities.Bundle{
						{text("a.title", "X")},
						{text("a.title", "Y"), text("a.desc", "{{count}} items")},
					}},
				},
			}},
		},
		{
			Name:        "legal",
			Description: "legal",
			Targets: []entities.Target{
				{Stem: "privacy", Locales: []entities.LocaleSources{
					{Locale: "ja", Sources: []entities.Bundle{{text("title", "プライバシー")}}},
					{Locale: "en", Sources: []entities.Bundle{{text("title", "Privacy")}}},
				}},
				{Stem: "terms", Locales: []entities.LocaleSources{
					{Locale: "ja", Sources: []entities.Bundle{{text("title", "利用規約")}}},
					{Locale: "en", Sources: []entities.Bundle{{text("title", "Terms")}}},
				}},
			},
		},
	}
}

type harness struct {
	svc      *ExportService
	sink     *memorySink
	runs     *memoryRuns
	notifier *recordingNotifier
	console  *bytes.Buffer
}

func newHarness(sets []entities.Set, encoders ...output.Encoder) *harness {
	if len(encoders) == 0 {
		encoders = []output.Encoder{jsonfile.New()}
	}
	h := &harness{
		sink:     newMemorySink(),
		runs:     &memoryRuns{},
		notifier: &recordingNotifier{},
		console:  &bytes.Buffer{},
	}
	h.svc = NewExportService(sets, encoders, h.sink, h.runs, h.notifier, echoT{}, ExportSettings{
		Dir:     "out",
		Locale:  "ja",
		Console: h.console,
	})
	h.svc.now = func() time.Time { return fixedNow }
	return h
}

func out(name string) string { return filepath.Join("out", name) }

func TestExportWritesEveryLocale(t *testing.T) {
	h := newHarness(testSets())

	summaries, err := h.svc.Export(context.Background())
	require.NoError(t, err)
	require.Len(t, summaries, 2)

	require.Equal(t, []string{
		out("pages_ja.json"),
		out("pages_en.json"),
		out("privacy_ja.json"),
		out("privacy_en.json"),
		out("terms_ja.json"),
		out("terms_en.json"),
	}, h.sink.order)

	require.Equal(t, "{\n  \"a.title\": \"Y\",\n  \"a.desc\": \"{{count}}件\"\n}", string(h.sink.files[out("pages_ja.json")]))
	require.Equal(t, "{\n  \"a.title\": \"Y\",\n  \"a.desc\": \"{{count}} items\"\n}", string(h.sink.files[out("pages_en.json")]))

	pages := summaries[0]
	require.Equal(t, "pages", pages.Set)
	require.Equal(t, fixedNow, pages.StartedAt)
	require.Len(t, pages.Outputs, 2)
	require.Equal(t, 2, pages.Outputs[0].Keys)
	require.Equal(t, "json", pages.Outputs[0].Format)
	require.Len(t, pages.Outputs[0].Digest, 64)

	require.Len(t, h.runs.records, 6)
	require.Equal(t, "legal", h.runs.records[5].set)
	require.Equal(t, fixedNow, h.runs.records[5].startedAt)
	require.Len(t, h.notifier.summaries, 2)
}

func TestExportConsoleSummary(t *testing.T) {
	h := newHarness(testSets())

	_, err := h.svc.Export(context.Background(), "legal")
	require.NoError(t, err)

	require.Equal(t, ""+
		"export.header Set=legal Summary=legal\n"+
		"export.saved Paths="+out("privacy_ja.json")+", "+out("privacy_en.json")+"\n"+
		"export.key_count Count=1 Language=ja:ja\n"+
		"export.key_count Count=1 Language=ja:en\n"+
		"export.saved Paths="+out("terms_ja.json")+", "+out("terms_en.json")+"\n"+
		"export.key_count Count=1 Language=ja:ja\n"+
		"export.key_count Count=1 Language=ja:en\n"+
		"export.done Sets=1\n", h.console.String())
}

func TestExportSeveralFormats(t *testing.T) {
	h := newHarness(testSets()[:1], jsonfile.New(), tomlfile.New())

	summaries, err := h.svc.Export(context.Background())
	require.NoError(t, err)
	require.Len(t, summaries[0].Outputs, 4)
	require.Contains(t, h.sink.files, out("pages_ja.toml"))
	require.Contains(t, h.sink.files, out("pages_en.toml"))

	lines := strings.Split(h.console.String(), "\n")
	require.Equal(t, "export.saved Paths="+
		out("pages_ja.json")+", "+out("pages_ja.toml")+", "+
		out("pages_en.json")+", "+out("pages_en.toml"), lines[1])
	// One key count line per locale, whatever the number of formats.
	require.Equal(t, "export.key_count Count=2 Language=ja:ja", lines[2])
	require.Equal(t, "export.key_count Count=2 Language=ja:en", lines[3])
}

func TestExportIsIdempotent(t *testing.T) {
	first := newHarness(testSets())
	_, err := first.svc.Export(context.Background())
	require.NoError(t, err)

	second := newHarness(testSets())
	_, err = second.svc.Export(context.Background())
	require.NoError(t, err)

	require.Equal(t, first.sink.files, second.sink.files)
}

func TestExportRoundTrip(t *testing.T) {
	h := newHarness(testSets())
	_, err := h.svc.Export(context.Background(), "pages")
	require.NoError(t, err)

	back, err := jsonfile.Decode(h.sink.files[out("pages_en.json")])
	require.NoError(t, err)
	want, _ := testSets()[0].Targets[0].Merged("en")
	require.Equal(t, want, back)
}

func TestExportUnknownSet(t *testing.T) {
	h := newHarness(testSets())

	_, err := h.svc.Export(context.Background(), "pages", "nope")
	require.ErrorIs(t, err, domain.ErrSetNotFound)
	require.Empty(t, h.sink.order)
}

func TestExportSurfacesWriteErrors(t *testing.T) {
	h := newHarness(testSets())
	h.sink.fail[out("privacy_en.json")] = errDiskFull

	summaries, err := h.svc.Export(context.Background())
	require.ErrorIs(t, err, errDiskFull)
	require.Contains(t, err.Error(), "export legal")
	// The pages set completed before the failure.
	require.Len(t, summaries, 1)
	require.Len(t, h.notifier.summaries, 1)
	require.NotContains(t, h.sink.files, out("terms_ja.json"))
}

func TestExportSurfacesLedgerErrors(t *testing.T) {
	h := newHarness(testSets())
	h.runs.err = errDiskFull

	_, err := h.svc.Export(context.Background())
	require.ErrorIs(t, err, errDiskFull)
}

func TestExportIgnoresNotifierErrors(t *testing.T) {
	h := newHarness(testSets())
	h.notifier.err = errDiskFull

	summaries, err := h.svc.Export(context.Background())
	require.NoError(t, err)
	require.Len(t, summaries, 2)
}

func TestHistory(t *testing.T) {
	h := newHarness(testSets())
	_, err := h.svc.Export(context.Background(), "legal")
	require.NoError(t, err)

	outs, err := h.svc.History(context.Background(), "legal")
	require.NoError(t, err)
	require.Len(t, outs, 4)

	_, err = h.svc.History(context.Background(), "nope")
	require.ErrorIs(t, err, domain.ErrSetNotFound)
}

// The catalog must render exactly as the original generators did.
func TestCatalogMatchesGoldenFiles(t *testing.T) {
	h := newHarness(catalog.Sets())
	_, err := h.svc.Export(context.Background())
	require.NoError(t, err)

	golden, err := filepath.Glob(filepath.Join("testdata", "*.json"))
	require.NoError(t, err)
	require.Len(t, golden, 22)
	require.Len(t, h.sink.order, len(golden))

	for _, path := range golden {
		name := filepath.Base(path)
		t.Run(name, func(t *testing.T) {
			want, err := os.ReadFile(path)
			require.NoError(t, err)
			got, ok := h.sink.files[out(name)]
			require.True(t, ok, "%s was not exported", name)
			require.Equal(t, string(want), string(got))
		})
	}
}
