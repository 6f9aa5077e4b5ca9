package catalog

import "bundlegen/internal/domain/entities"

var apiSettingsExtraJA = entities.Bundle{
	text("apiSettings.header.title", "職務経歴書最適化ツール"),
	text("apiSettings.header.backHome", "ホームに戻る"),
	text("apiSettings.selectProvider", "AIプロバイダーを選択"),
	text("apiSettings.openai.description", "GPT-4, GPT-3.5など"),
	text("apiSettings.gemini.description", "Gemini Pro, Gemini Ultraなど"),
	text("apiSettings.claude.description", "Claude 3 Opus, Claude 3 Sonnetなど"),
	text("apiSettings.apiKeyLabel", "{{provider}} APIキー"),
	text("apiSettings.getApiKey", "APIキーを取得"),
	text("apiSettings.apiKeyPlaceholderFull", "{{provider}} APIキーを入力してください"),
	text("apiSettings.apiKeyStorage", "APIキーはブラウザのlocalStorageに安全に保存されます"),
	text("apiSettings.save", "保存"),
	text("apiSettings.howToGetTitle", "APIキーの取得方法"),
	text("apiSettings.openai.step1", "にアクセス"),
	text("apiSettings.openai.step2", "「Create new secret key」をクリック"),
	text("apiSettings.openai.step3", "生成されたAPIキーをコピーして上記に貼り付け"),
	text("apiSettings.gemini.step1", "にアクセス"),
	text("apiSettings.gemini.step2", "「Get API key」をクリック"),
	text("apiSettings.gemini.step3", "生成されたAPIキーをコピーして上記に貼り付け"),
	text("apiSettings.claude.step1", "にアクセス"),
	text("apiSettings.claude.step2", "「Create Key」をクリック"),
	text("apiSettings.claude.step3", "生成されたAPIキーをコピーして上記に貼り付け"),
	text("apiSettings.warning", "注意: APIキーは第三者に共有しないでください。APIキーを使用すると、プロバイダーから料金が発生する場合があります。"),
	text("apiSettings.toast.enterApiKey", "APIキーを入力してください"),
}

var apiSettingsExtraEN = entities.Bundle{
	text("apiSettings.header.title", "AI Resume Optimizer Maker"),
	text("apiSettings.header.backHome", "Back to Home"),
	text("apiSettings.selectProvider", "Select AI Provider"),
	text("apiSettings.openai.description", "GPT-4, GPT-3.5, etc."),
	text("apiSettings.gemini.description", "Gemini Pro, Gemini Ultra, etc."),
	text("apiSettings.claude.description", "Claude 3 Opus, Claude 3 Sonnet, etc."),
	text("apiSettings.apiKeyLabel", "{{provider}} API Key"),
	text("apiSettings.getApiKey", "Get API Key"),
	text("apiSettings.apiKeyPlaceholderFull", "Enter {{provider}} API key"),
	text("apiSettings.apiKeyStorage", "API key is securely stored in browser localStorage"),
	text("apiSettings.save", "Save"),
	text("apiSettings.howToGetTitle", "How to Get API Keys"),
	text("apiSettings.openai.step1", "Visit"),
	text("apiSettings.openai.step2", "Click 'Create new secret key'"),
	text("apiSettings.openai.step3", "Copy the generated API key and paste it above"),
	text("apiSettings.gemini.step1", "Visit"),
	text("apiSettings.gemini.step2", "Click 'Get API key'"),
	text("apiSettings.gemini.step3", "Copy the generated API key and paste it above"),
	text("apiSettings.claude.step1", "Visit"),
	text("apiSettings.claude.step2", "Click 'Create Key'"),
	text("apiSettings.claude.step3", "Copy the generated API key and paste it above"),
	text("apiSettings.warning", "Warning: Do not share your API key with others. Using API keys may incur charges from the provider."),
	text("apiSettings.toast.enterApiKey", "Please enter an API key"),
}
