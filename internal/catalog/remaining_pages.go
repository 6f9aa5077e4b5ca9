package catalog

import "bundlegen/internal/domain/entities"

var remainingPagesFavoritesJA = entities.Bundle{
	text("favorites.title", "お気に入りパターン"),
	text("favorites.loginRequired", "ログインが必要です"),
	text("favorites.loginDescription", "ご利用にはManusアカウントでのログインが必要です"),
	text("favorites.loginButton", "ログインして開始"),
	text("favorites.compareMode", "比較モード"),
	text("favorites.compareModeEnd", "比較モード終了"),
	text("favorites.selectedCount", "{{count}}件選択中"),
	text("favorites.evaluationScore", "評価スコア: {{score}}点"),
	text("favorites.deleteConfirm", "このお気に入りパターンを削除しますか？"),
	text("favorites.toast.deleted", "お気に入りパターンを削除しました"),
	text("favorites.toast.deleteFailed", "削除に失敗しました"),
	text("favorites.toast.updated", "お気に入りパターンを更新しました"),
	text("favorites.toast.updateFailed", "更新に失敗しました"),
	text("favorites.toast.copied", "コピーしました"),
	text("favorites.edit", "編集"),
	text("favorites.delete", "削除"),
	text("favorites.copy", "コピー"),
	text("favorites.editDialog.title", "お気に入りパターンを編集"),
	text("favorites.editDialog.name", "パターン名"),
	text("favorites.editDialog.notes", "メモ"),
	text("favorites.editDialog.save", "保存"),
	text("favorites.editDialog.cancel", "キャンセル"),
	text("favorites.noFavorites", "お気に入りパターンがありません"),
	text("favorites.noFavoritesDescription", "ホーム画面で生成したパターンをお気に入りに登録すると、ここに表示されます。"),
	text("favorites.backToHome", "ホームに戻る"),
	text("favorites.patternDetails", "パターン詳細"),
	text("favorites.comparePatterns", "パターン比較"),
	text("favorites.selectToCompare", "比較するパターンを選択してください"),
	text("favorites.differenceRate", "差異率: {{rate}}%"),
}

var remainingPagesFavoritesEN = entities.Bundle{
	text("favorites.title", "Favorite Patterns"),
	text("favorites.loginRequired", "Login Required"),
	text("favorites.loginDescription", "You need to log in with a Manus account to use this feature"),
	text("favorites.loginButton", "Login to Start"),
	text("favorites.compareMode", "Compare Mode"),
	text("favorites.compareModeEnd", "End Compare Mode"),
	text("favorites.selectedCount", "{{count}} selected"),
	text("favorites.evaluationScore", "Score: {{score}} pts"),
	text("favorites.deleteConfirm", "Are you sure you want to delete this favorite pattern?"),
	text("favorites.toast.deleted", "Favorite pattern deleted"),
	text("favorites.toast.deleteFailed", "Failed to delete"),
	text("favorites.toast.updated", "Favorite pattern updated"),
	text("favorites.toast.updateFailed", "Failed to update"),
	text("favorites.toast.copied", "Copied"),
	text("favorites.edit", "Edit"),
	text("favorites.delete", "Delete"),
	text("favorites.copy", "Copy"),
	text("favorites.editDialog.title", "Edit Favorite Pattern"),
	text("favorites.editDialog.name", "Pattern Name"),
	text("favorites.editDialog.notes", "Notes"),
	text("favorites.editDialog.save", "Save"),
	text("favorites.editDialog.cancel", "Cancel"),
	text("favorites.noFavorites", "No favorite patterns"),
	text("favorites.noFavoritesDescription", "Patterns you save as favorites from the home screen will appear here."),
	text("favorites.backToHome", "Back to Home"),
	text("favorites.patternDetails", "Pattern Details"),
	text("favorites.comparePatterns", "Compare Patterns"),
	text("favorites.selectToCompare", "Select patterns to compare"),
	text("favorites.differenceRate", "Difference: {{rate}}%"),
}

var remainingPagesPrivacyJA = entities.Bundle{
	text("privacy.title", "プライバシーポリシー"),
	text("privacy.lastUpdated", "最終更新日: {{date}}"),
}

var remainingPagesPrivacyEN = entities.Bundle{
	text("privacy.title", "Privacy Policy"),
	text("privacy.lastUpdated", "Last updated: {{date}}"),
}

var remainingPagesTermsJA = entities.Bundle{
	text("terms.title", "利用規約"),
	text("terms.lastUpdated", "最終更新日: {{date}}"),
}

var remainingPagesTermsEN = entities.Bundle{
	text("terms.title", "Terms of Service"),
	text("terms.lastUpdated", "Last updated: {{date}}"),
}

var remainingPagesMyTemplatesJA = entities.Bundle{
	text("myTemplates.title", "マイテンプレート"),
	text("myTemplates.create", "新規作成"),
	text("myTemplates.edit", "編集"),
	text("myTemplates.delete", "削除"),
	text("myTemplates.noTemplates", "テンプレートがありません"),
	text("myTemplates.noTemplatesDescription", "新しいテンプレートを作成して、効率的に職務経歴書を生成しましょう。"),
	text("myTemplates.createDialog.title", "テンプレートを作成"),
	text("myTemplates.editDialog.title", "テンプレートを編集"),
	text("myTemplates.name", "テンプレート名"),
	text("myTemplates.description", "説明"),
	text("myTemplates.save", "保存"),
	text("myTemplates.cancel", "キャンセル"),
	text("myTemplates.toast.created", "テンプレートを作成しました"),
	text("myTemplates.toast.updated", "テンプレートを更新しました"),
	text("myTemplates.toast.deleted", "テンプレートを削除しました"),
	text("myTemplates.toast.failed", "操作に失敗しました"),
}

var remainingPagesMyTemplatesEN = entities.Bundle{
	text("myTemplates.title", "My Templates"),
	text("myTemplates.create", "Create New"),
	text("myTemplates.edit", "Edit"),
	text("myTemplates.delete", "Delete"),
	text("myTemplates.noTemplates", "No templates"),
	text("myTemplates.noTemplatesDescription", "Create a new template to efficiently generate resumes."),
	text("myTemplates.createDialog.title", "Create Template"),
	text("myTemplates.editDialog.title", "Edit Template"),
	text("myTemplates.name", "Template Name"),
	text("myTemplates.description", "Description"),
	text("myTemplates.save", "Save"),
	text("myTemplates.cancel", "Cancel"),
	text("myTemplates.toast.created", "Template created"),
	text("myTemplates.toast.updated", "Template updated"),
	text("myTemplates.toast.deleted", "Template deleted"),
	text("myTemplates.toast.failed", "Operation failed"),
}
