package catalog

import "bundlegen/internal/domain/entities"

var mytemplatesCompleteMytemplatesJA = entities.Bundle{
	text("title", "マイテンプレート"),
	text("newButton", "新規作成"),
	text("description", "独自のテンプレートを作成・管理して、効率的に職務経歴書を最適化できます"),
	text("noTemplates", "まだテンプレートがありません"),
	text("createFirst", "最初のテンプレートを作成"),
	text("createdAt", "作成日: {date}"),
	group("loginRequired", entities.Bundle{
		text("title", "ログインが必要です"),
		text("description", "ご利用にはManusアカウントでのログインが必要です"),
		text("button", "ログインして開始"),
	}),
	group("createDialog", entities.Bundle{
		text("title", "新しいテンプレートを作成"),
		text("description", "独自のプロンプトテンプレートを作成して、繰り返し使用できます"),
		text("nameLabel", "テンプレート名"),
		text("namePlaceholder", "例: 外資系IT企業向けテンプレート"),
		text("descriptionLabel", "説明"),
		text("descriptionPlaceholder", "このテンプレートの用途や特徴を説明してください"),
		text("promptLabel", "プロンプトテンプレート"),
		text("promptPlaceholder", "あなたは職務経歴書最適化の専門家です。以下の点を重視して作成してください：\\n\\n1. ...\\n2. ...\\n\\n職務経歴書: {{resumeText}}\\n求人情報: {{jobDescription}}"),
		text("promptNote", "※ {{resumeText}} と {{jobDescription}} を使用すると、入力内容が自動的に埋め込まれます"),
		text("cancel", "キャンセル"),
		text("create", "作成"),
	}),
	group("editDialog", entities.Bundle{
		text("title", "テンプレートを編集"),
		text("description", "テンプレートの内容を更新できます"),
		text("nameLabel", "テンプレート名"),
		text("descriptionLabel", "説明"),
		text("promptLabel", "プロンプトテンプレート"),
		text("promptNote", "※ {{resumeText}} と {{jobDescription}} を使用すると、入力内容が自動的に埋め込まれます"),
		text("cancel", "キャンセル"),
		text("update", "更新"),
	}),
	group("validation", entities.Bundle{
		text("allFieldsRequired", "全ての項目を入力してください"),
	}),
	group("confirm", entities.Bundle{
		text("delete", "このテンプレートを削除してもよろしいですか？"),
	}),
}

var mytemplatesCompleteMytemplatesEN = entities.Bundle{
	text("title", "My Templates"),
	text("newButton", "New Template"),
	text("description", "Create and manage custom templates to efficiently optimize your resume"),
	text("noTemplates", "No templates yet"),
	text("createFirst", "Create your first template"),
	text("createdAt", "Created: {date}"),
	group("loginRequired", entities.Bundle{
		text("title", "Login Required"),
		text("description", "You need to log in with your Manus account to use this feature"),
		text("button", "Log in to get started"),
	}),
	group("createDialog", entities.Bundle{
		text("title", "Create New Template"),
		text("description", "Create a custom prompt template that you can reuse"),
		text("nameLabel", "Template Name"),
		text("namePlaceholder", "e.g., Template for Foreign IT Companies"),
		text("descriptionLabel", "Description"),
		text("descriptionPlaceholder", "Describe the purpose and features of this template"),
		text("promptLabel", "Prompt Template"),
		text("promptPlaceholder", "You are an expert in resume optimization. Please create with emphasis on the following points:\\n\\n1. ...\\n2. ...\\n\\nResume: {{resumeText}}\\nJob Posting: {{jobDescription}}"),
		text("promptNote", "※ Use {{resumeText}} and {{jobDescription}} to automatically embed input content"),
		text("cancel", "Cancel"),
		text("create", "Create"),
	}),
	group("editDialog", entities.Bundle{
		text("title", "Edit Template"),
		text("description", "Update the template content"),
		text("nameLabel", "Template Name"),
		text("descriptionLabel", "Description"),
		text("promptLabel", "Prompt Template"),
		text("promptNote", "※ Use {{resumeText}} and {{jobDescription}} to automatically embed input content"),
		text("cancel", "Cancel"),
		text("update", "Update"),
	}),
	group("validation", entities.Bundle{
		text("allFieldsRequired", "Please fill in all fields"),
	}),
	group("confirm", entities.Bundle{
		text("delete", "Are you sure you want to delete this template?"),
	}),
}
