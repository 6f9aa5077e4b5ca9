package jsonfile

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"bundlegen/internal/domain"
	"bundlegen/internal/domain/entities"
)

var sample = entities.Bundle{
	{Key: "favorites.title", Value: entities.Text("お気に入り")},
	{Key: "favorites.count", Value: entities.Text("{{count}}件のパターン")},
	{Key: "guide.title", Value: entities.Text("Guide & Tutorial <beta>")},
	{Key: "home.confirm", Value: entities.Text("復元しますか？\n\"はい\"を選択")},
	{Key: "article1", Value: entities.Bundle{
		{Key: "title", Value: entities.Text("第1条")},
		{Key: "items", Value: entities.List{"一", "二"}},
		{Key: "empty", Value: entities.Bundle{}},
	}},
}

const sampleJSON = `{
  "favorites.title": "お気に入り",
  "favorites.count": "{{count}}件のパターン",
  "guide.title": "Guide & Tutorial <beta>",
  "home.confirm": "復元しますか？\n\"はい\"を選択",
  "article1": {
    "title": "第1条",
    "items": [
      "一",
      "二"
    ],
    "empty": {}
  }
}`

func TestEncode(t *testing.T) {
	got, err := New().Encode(sample)
	require.NoError(t, err)
	require.Equal(t, sampleJSON, string(got))
}

func TestEncodeEmpty(t *testing.T) {
	got, err := New().Encode(entities.Bundle{})
	require.NoError(t, err)
	require.Equal(t, "{}", string(got))

	got, err = New().Encode(entities.Bundle{{Key: "l", Value: entities.List{}}})
	require.NoError(t, err)
	require.Equal(t, "{\n  \"l\": []\n}", string(got))
}

func TestEncodeIsIdempotent(t *testing.T) {
	first, err := New().Encode(sample)
	require.NoError(t, err)
	second, err := New().Encode(sample)
	require.NoError(t, err)
	require.Equal(t, first, second)
}

func TestEncodeRejectsNilValue(t *testing.T) {
	_, err := New().Encode(entities.Bundle{{Key: "broken"}})
	require.ErrorIs(t, err, domain.ErrUnsupportedValue)
}

func TestRoundTrip(t *testing.T) {
	data, err := New().Encode(sample)
	require.NoError(t, err)

	back, err := Decode(data)
	require.NoError(t, err)
	if diff := cmp.Diff(sample, back); diff != "" {
		t.Fatalf("round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestDecodeRejects(t *testing.T) {
	for name, doc := range map[string]string{
		"array":    `["a"]`,
		"number":   `{"a": 1}`,
		"nested":   `{"a": [{"b": "c"}]}`,
		"trailing": `{"a": "b"} {}`,
		"broken":   `{"a": `,
	} {
		t.Run(name, func(t *testing.T) {
			_, err := Decode([]byte(doc))
			require.Error(t, err)
		})
	}
}
