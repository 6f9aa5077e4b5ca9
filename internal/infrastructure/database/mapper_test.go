package database

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"bundlegen/internal/domain/entities"
)

func TestOutputToDomain(t *testing.T) {
	got := outputToDomain(outputRow{
		Target:   "guide",
		Locale:   "ja",
		Format:   "json",
		Path:     "out/guide_ja.json",
		KeyCount: 122,
		Digest:   "abc",
	})
	require.Equal(t, entities.Output{
		Target: "guide",
		Locale: "ja",
		Format: "json",
		Path:   "out/guide_ja.json",
		Keys:   122,
		Digest: "abc",
	}, got)
}

func TestMigrationsEmbedded(t *testing.T) {
	entries, err := migrationsFS.ReadDir("migrations")
	require.NoError(t, err)
	require.Len(t, entries, 2)
}

func TestNopRunRepository(t *testing.T) {
	var repo NopRunRepository
	require.NoError(t, repo.Record(context.Background(), "guide", time.Time{}, entities.Output{}))
	outs, err := repo.LatestBySet(context.Background(), "guide")
	require.NoError(t, err)
	require.Empty(t, outs)
}
