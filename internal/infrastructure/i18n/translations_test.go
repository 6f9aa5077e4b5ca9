package i18n

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestT(t *testing.T) {
	tr := NewTranslator("ja")

	require.Equal(t, "翻訳キーをguide_ja.json, guide_en.jsonに保存しました。",
		tr.T("ja", "export.saved", map[string]any{"Paths": "guide_ja.json, guide_en.json"}))
	require.Equal(t, "English keys: 122",
		tr.T("en", "export.key_count", map[string]any{"Language": "English", "Count": 122}))
}

func TestTFallsBack(t *testing.T) {
	tr := NewTranslator("ja")

	// Unknown locales use the default one.
	require.Equal(t, "指定されたセットが見つかりません。", tr.T("fr", "error.set_not_found", nil))
	// Unknown keys render as themselves.
	require.Equal(t, "error.nope", tr.T("en", "error.nope", nil))
	require.Equal(t, "", tr.T("en", "", nil))
}

func TestLanguageName(t *testing.T) {
	tr := NewTranslator("ja")

	require.Equal(t, "日本語", tr.LanguageName("ja", "ja"))
	require.Equal(t, "英語", tr.LanguageName("ja", "en"))
	require.Equal(t, "Japanese", tr.LanguageName("en", "ja"))
	require.Equal(t, "!!", tr.LanguageName("en", "!!"))
}
