package tomlfile

import (
	"testing"

	"github.com/pelletier/go-toml/v2"
	"github.com/stretchr/testify/require"

	"bundlegen/internal/domain"
	"bundlegen/internal/domain/entities"
)

func TestEncode(t *testing.T) {
	b := entities.Bundle{
		{Key: "favorites.title", Value: entities.Text("お気に入り")},
		{Key: "favorites.count", Value: entities.Text("{{count}}件")},
		{Key: "article1", Value: entities.Bundle{
			{Key: "title", Value: entities.Text("第1条")},
			{Key: "items", Value: entities.List{"一", "二"}},
		}},
	}

	data, err := New().Encode(b)
	require.NoError(t, err)

	var got map[string]any
	require.NoError(t, toml.Unmarshal(data, &got))
	require.Equal(t, map[string]any{
		"favorites.title": "お気に入り",
		"favorites.count": "{{count}}件",
		"article1": map[string]any{
			"title": "第1条",
			"items": []any{"一", "二"},
		},
	}, got)
}

func TestEncodeRejectsNilValue(t *testing.T) {
	_, err := New().Encode(entities.Bundle{{Key: "broken"}})
	require.ErrorIs(t, err, domain.ErrUnsupportedValue)
}
