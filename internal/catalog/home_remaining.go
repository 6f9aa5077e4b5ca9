package catalog

import "bundlegen/internal/domain/entities"

var homeRemainingJA = entities.Bundle{
	text("home.toast.patternSelected", "パターン{{index}}を選択しました"),
	text("home.toast.templateSelected", "テンプレートを選択しました"),
	text("home.toast.patternNotFound", "パターンが見つかりません"),
	text("home.toast.myTemplateSelected", "マイテンプレートを選択しました"),
	text("home.confirm.deleteHistory", "この履歴を削除してもよろしいですか？"),
	text("home.toast.favoriteAdded", "お気に入りに登録しました"),
	text("home.toast.favoriteRemoved", "お気に入りを解除しました"),
	text("home.fileName.word", "職務経歴書.docx"),
	text("home.fileName.pdf", "職務経歴書.pdf"),
	text("home.fileName.text", "職務経歴書.txt"),
	text("home.fileName.markdown", "職務経歴書.md"),
	text("home.shortcut.generate", "生成開始"),
	text("home.shortcut.copyAll", "全項目をコピー"),
	text("home.shortcut.showHelp", "ショートカットヘルプを表示"),
	text("home.confirm.restoreData", "前回の入力内容が見つかりました。\n最終保存: {{timestamp}}\n\n復元しますか？"),
	text("home.confirm.clearData", "保存されたデータをクリアしますか？"),
	text("home.label.characters", "文字"),
	text("home.label.score", "点"),
	text("home.label.relevance", "関連性"),
	text("home.label.clarity", "明確さ"),
	text("home.label.impact", "インパクト"),
	text("home.label.completeness", "完成度"),
}

var homeRemainingEN = entities.Bundle{
	text("home.toast.patternSelected", "Pattern {{index}} selected"),
	text("home.toast.templateSelected", "Template selected"),
	text("home.toast.patternNotFound", "Pattern not found"),
	text("home.toast.myTemplateSelected", "My template selected"),
	text("home.confirm.deleteHistory", "Are you sure you want to delete this history?"),
	text("home.toast.favoriteAdded", "Added to favorites"),
	text("home.toast.favoriteRemoved", "Removed from favorites"),
	text("home.fileName.word", "resume.docx"),
	text("home.fileName.pdf", "resume.pdf"),
	text("home.fileName.text", "resume.txt"),
	text("home.fileName.markdown", "resume.md"),
	text("home.shortcut.generate", "Generate"),
	text("home.shortcut.copyAll", "Copy All"),
	text("home.shortcut.showHelp", "Show Shortcut Help"),
	text("home.confirm.restoreData", "Previous input found.\nLast saved: {{timestamp}}\n\nRestore?"),
	text("home.confirm.clearData", "Clear saved data?"),
	text("home.label.characters", "chars"),
	text("home.label.score", "pts"),
	text("home.label.relevance", "Relevance"),
	text("home.label.clarity", "Clarity"),
	text("home.label.impact", "Impact"),
	text("home.label.completeness", "Completeness"),
}
