package discord

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"bundlegen/internal/domain/entities"
)

func TestBuildSummaryEmbed(t *testing.T) {
	summary := entities.Summary{
		Set:       "guide",
		StartedAt: time.Date(2025, 1, 26, 3, 4, 0, 0, time.UTC),
		Outputs: []entities.Output{
			{Locale: "ja", Path: "out/guide_ja.json", Keys: 122, Digest: "0123456789abcdef"},
			{Locale: "en", Path: "out/guide_en.json", Keys: 122, Digest: "fedcba"},
		},
	}
	label := func(locale string, count int) string { return fmt.Sprintf("%s: %d", locale, count) }

	embed := BuildSummaryEmbed(summary, label)
	require.Equal(t, "📦 guide", embed.Title)
	require.Len(t, embed.Fields, 2)
	require.Equal(t, "out/guide_ja.json", embed.Fields[0].Name)
	require.Equal(t, "ja: 122\n`0123456789ab`", embed.Fields[0].Value)
	require.Equal(t, "en: 122\n`fedcba`", embed.Fields[1].Value)
	require.Equal(t, "2025/01/26 12:04 JST", embed.Footer.Text)
}

func TestBuildSummaryEmbedWithoutTime(t *testing.T) {
	embed := BuildSummaryEmbed(entities.Summary{Set: "terms"}, nil)
	require.Nil(t, embed.Footer)
	require.Empty(t, embed.Fields)
}

func TestTruncate(t *testing.T) {
	require.Equal(t, "abc", truncate("abc", 10))
	got := truncate(strings.Repeat("あ", 10), 10)
	require.LessOrEqual(t, len(got), 10)
	require.True(t, strings.HasSuffix(got, "…"))
}
