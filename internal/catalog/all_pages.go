package catalog

import "bundlegen/internal/domain/entities"

var allPagesFavoritesJA = entities.Bundle{
	text("favorites.title", "お気に入りパターン"),
	text("favorites.loginRequired", "ログインが必要です"),
	text("favorites.loginDescription", "ご利用にはManusアカウントでのログインが必要です"),
	text("favorites.loginButton", "ログインして開始"),
	text("favorites.compareMode", "比較モード"),
	text("favorites.compareModeEnd", "比較モード終了"),
	text("favorites.selectedCount", "{{count}}件選択中"),
	text("favorites.evaluationScore", "評価スコア: {{score}}点"),
	text("favorites.compareTitle", "パターン比較 ({{count}}件)"),
	text("favorites.differenceRate", "差異率: {{rate}}%"),
	text("favorites.patternDetails", "パターン詳細"),
	text("favorites.selectPattern", "左側からパターンを選択してください"),
	text("favorites.name", "名前"),
	text("favorites.notes", "メモ"),
	text("favorites.generatedContent", "生成内容"),
	text("favorites.edit", "編集"),
	text("favorites.delete", "削除"),
	text("favorites.copy", "コピー"),
	text("favorites.editDialog.title", "お気に入りパターンを編集"),
	text("favorites.editDialog.name", "名前"),
	text("favorites.editDialog.notes", "メモ"),
	text("favorites.editDialog.save", "保存"),
	text("favorites.editDialog.cancel", "キャンセル"),
	text("favorites.toast.deleted", "お気に入りパターンを削除しました"),
	text("favorites.toast.updated", "お気に入りパターンを更新しました"),
	text("favorites.toast.copied", "コピーしました"),
	text("favorites.toast.deleteFailed", "削除に失敗しました"),
	text("favorites.toast.updateFailed", "更新に失敗しました"),
	text("favorites.confirm.delete", "このお気に入りパターンを削除しますか？"),
	text("favorites.noFavorites", "お気に入りパターンがありません"),
	text("favorites.noFavoritesDescription", "生成結果画面でお気に入りに追加してください"),
}

var allPagesFavoritesEN = entities.Bundle{
	text("favorites.title", "Favorite Patterns"),
	text("favorites.loginRequired", "Login Required"),
	text("favorites.loginDescription", "You need to log in with your Manus account to use this feature"),
	text("favorites.loginButton", "Login to Start"),
	text("favorites.compareMode", "Compare Mode"),
	text("favorites.compareModeEnd", "End Compare Mode"),
	text("favorites.selectedCount", "{{count}} selected"),
	text("favorites.evaluationScore", "Score: {{score}}"),
	text("favorites.compareTitle", "Pattern Comparison ({{count}})"),
	text("favorites.differenceRate", "Difference: {{rate}}%"),
	text("favorites.patternDetails", "Pattern Details"),
	text("favorites.selectPattern", "Select a pattern from the left"),
	text("favorites.name", "Name"),
	text("favorites.notes", "Notes"),
	text("favorites.generatedContent", "Generated Content"),
	text("favorites.edit", "Edit"),
	text("favorites.delete", "Delete"),
	text("favorites.copy", "Copy"),
	text("favorites.editDialog.title", "Edit Favorite Pattern"),
	text("favorites.editDialog.name", "Name"),
	text("favorites.editDialog.notes", "Notes"),
	text("favorites.editDialog.save", "Save"),
	text("favorites.editDialog.cancel", "Cancel"),
	text("favorites.toast.deleted", "Favorite pattern deleted"),
	text("favorites.toast.updated", "Favorite pattern updated"),
	text("favorites.toast.copied", "Copied"),
	text("favorites.toast.deleteFailed", "Failed to delete"),
	text("favorites.toast.updateFailed", "Failed to update"),
	text("favorites.confirm.delete", "Are you sure you want to delete this favorite pattern?"),
	text("favorites.noFavorites", "No favorite patterns"),
	text("favorites.noFavoritesDescription", "Add favorites from the generation results screen"),
}

var allPagesApiSettingsJA = entities.Bundle{
	text("apiSettings.title", "API設定"),
	text("apiSettings.description", "OpenAI、Gemini、またはClaudeのAPIキーを設定してください。"),
	text("apiSettings.provider", "メインプロバイダー"),
	text("apiSettings.selectProvider", "プロバイダーを選択..."),
	text("apiSettings.openai", "OpenAI"),
	text("apiSettings.gemini", "Gemini"),
	text("apiSettings.claude", "Claude"),
	text("apiSettings.openaiKey", "OpenAI APIキー"),
	text("apiSettings.geminiKey", "Gemini APIキー"),
	text("apiSettings.claudeKey", "Claude APIキー (Coming Soon)"),
	text("apiSettings.keyPlaceholder", "APIキーを入力..."),
	text("apiSettings.save", "保存"),
	text("apiSettings.howToGet", "APIキーの取得方法"),
	text("apiSettings.openaiLink", "OpenAI APIキーを取得"),
	text("apiSettings.geminiLink", "Gemini APIキーを取得"),
	text("apiSettings.claudeLink", "Claude APIキーを取得"),
	text("apiSettings.toast.saved", "API設定を保存しました"),
	text("apiSettings.toast.saveFailed", "保存に失敗しました"),
	text("apiSettings.loginRequired", "ログインが必要です"),
	text("apiSettings.loginDescription", "ご利用にはManusアカウントでのログインが必要です"),
	text("apiSettings.loginButton", "ログインして開始"),
}

var allPagesApiSettingsEN = entities.Bundle{
	text("apiSettings.title", "API Settings"),
	text("apiSettings.description", "Set your API key for OpenAI, Gemini, or Claude."),
	text("apiSettings.provider", "Main Provider"),
	text("apiSettings.selectProvider", "Select provider..."),
	text("apiSettings.openai", "OpenAI"),
	text("apiSettings.gemini", "Gemini"),
	text("apiSettings.claude", "Claude"),
	text("apiSettings.openaiKey", "OpenAI API Key"),
	text("apiSettings.geminiKey", "Gemini API Key"),
	text("apiSettings.claudeKey", "Claude API Key (Coming Soon)"),
	text("apiSettings.keyPlaceholder", "Enter API key..."),
	text("apiSettings.save", "Save"),
	text("apiSettings.howToGet", "How to Get API Keys"),
	text("apiSettings.openaiLink", "Get OpenAI API Key"),
	text("apiSettings.geminiLink", "Get Gemini API Key"),
	text("apiSettings.claudeLink", "Get Claude API Key"),
	text("apiSettings.toast.saved", "API settings saved"),
	text("apiSettings.toast.saveFailed", "Failed to save"),
	text("apiSettings.loginRequired", "Login Required"),
	text("apiSettings.loginDescription", "You need to log in with your Manus account to use this feature"),
	text("apiSettings.loginButton", "Login to Start"),
}
