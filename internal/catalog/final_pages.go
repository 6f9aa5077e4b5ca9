package catalog

import "bundlegen/internal/domain/entities"

var finalPagesPrivacyJA = entities.Bundle{
	text("title", "プライバシーポリシー"),
	text("lastUpdated", "最終更新日: 2025年1月26日"),
	group("intro", entities.Bundle{
		text("title", "はじめに"),
		text("text1", "（以下「本サービス」といいます）は、ユーザーの皆様のプライバシーを尊重し、個人情報の保護に努めています。本プライバシーポリシーは、本サービスがどのような情報を収集し、どのように使用・保護するかを説明するものです。"),
		text("text2", "本サービスを利用することにより、本プライバシーポリシーに同意したものとみなされます。本プライバシーポリシーに同意できない場合は、本サービスの利用をお控えください。"),
	}),
	group("collection", entities.Bundle{
		text("title", "収集する情報"),
		group("account", entities.Bundle{
			text("title", "1. アカウント情報"),
			text("description", "本サービスでは、Manus OAuth認証を使用してログインします。ログイン時に、Manusアカウントから以下の情報を取得します。"),
			list("items",
				"ユーザーID（OpenID）",
				"ユーザー名",
				"メールアドレス",
				"ログイン方法",
			),
		}),
		group("inputData", entities.Bundle{
			text("title", "2. 入力データ"),
			text("description", "本サービスの機能を使用する際に、以下の情報を入力していただきます。"),
			list("items",
				"職務経歴書の内容",
				"求人情報",
				"カスタム項目の内容",
				"アップロードされたファイル（PDF、Word、画像）",
			),
		}),
		group("generatedData", entities.Bundle{
			text("title", "3. 生成データ"),
			text("description", "AIによって生成された以下のデータを保存します。"),
			list("items",
				"職務要約、志望動機、自己PRなどの生成された文書",
				"生成履歴",
				"お気に入りに保存されたパターン",
				"カスタムテンプレート",
			),
		}),
		group("apiKey", entities.Bundle{
			text("title", "4. APIキー"),
			text("description", "本サービスでは、OpenAIまたはGeminiのAPIキーを設定していただきます。APIキーは暗号化してデータベースに保存され、AI機能の実行時にのみ使用されます。"),
		}),
		group("usageData", entities.Bundle{
			text("title", "5. 利用状況データ"),
			text("description", "本サービスの改善のため、以下の利用状況データを収集する場合があります。"),
			list("items",
				"アクセス日時",
				"使用した機能",
				"エラーログ",
			),
		}),
	}),
	group("usage", entities.Bundle{
		text("title", "情報の使用目的"),
		text("description", "収集した情報は、以下の目的で使用します。"),
		group("service", entities.Bundle{
			text("title", "1. サービスの提供"),
			list("items",
				"AI機能による文書生成",
				"生成履歴の保存・管理",
				"テンプレートの保存・管理",
				"お気に入りパターンの保存・管理",
			),
		}),
		group("improvement", entities.Bundle{
			text("title", "2. サービスの改善"),
			list("items",
				"利用状況の分析",
				"エラーの検出と修正",
				"新機能の開発",
			),
		}),
		group("support", entities.Bundle{
			text("title", "3. ユーザーサポート"),
			list("items",
				"問い合わせへの対応",
				"技術的なサポート",
			),
		}),
	}),
	group("protection", entities.Bundle{
		text("title", "情報の保護"),
		text("description", "本サービスは、ユーザーの個人情報を保護するため、以下の対策を講じています。"),
		group("encryption", entities.Bundle{
			text("title", "1. データの暗号化"),
			text("description", "APIキーなどの機密情報は暗号化してデータベースに保存します。通信はHTTPSで暗号化されます。"),
		}),
		group("accessControl", entities.Bundle{
			text("title", "2. アクセス制限"),
			text("description", "ユーザーの個人情報には、本人のみがアクセスできます。他のユーザーや第三者がアクセスすることはできません。"),
		}),
		group("security", entities.Bundle{
			text("title", "3. セキュリティ対策"),
			text("description", "不正アクセス、改ざん、漏洩を防ぐため、適切なセキュリティ対策を実施しています。"),
		}),
	}),
	group("thirdParty", entities.Bundle{
		text("title", "第三者への情報提供"),
		text("description", "本サービスは、以下の場合を除き、ユーザーの個人情報を第三者に提供することはありません。"),
		group("aiProvider", entities.Bundle{
			text("title", "1. AI APIプロバイダー"),
			text("description1", "本サービスでは、OpenAIまたはGeminiのAI APIを使用して文書を生成します。入力された職務経歴書や求人情報は、AI APIプロバイダーに送信されます。"),
			text("description2", "各プロバイダーのプライバシーポリシーをご確認ください。"),
		}),
		group("legal", entities.Bundle{
			text("title", "2. 法的要請"),
			text("description", "法令に基づく開示要請があった場合、または裁判所の命令がある場合は、個人情報を開示することがあります。"),
		}),
		group("consent", entities.Bundle{
			text("title", "3. ユーザーの同意"),
			text("description", "ユーザーの同意がある場合は、個人情報を第三者に提供することがあります。"),
		}),
	}),
	group("retention", entities.Bundle{
		text("title", "データの保存期間"),
		text("description", "本サービスは、以下の期間、ユーザーのデータを保存します。"),
		group("account", entities.Bundle{
			text("title", "1. アカウント情報"),
			text("description", "アカウントが削除されるまで保存されます。"),
		}),
		group("generated", entities.Bundle{
			text("title", "2. 生成データ"),
			text("description", "ユーザーが削除するまで保存されます。"),
		}),
		group("apiKey", entities.Bundle{
			text("title", "3. APIキー"),
			text("description", "ユーザーが削除するまで保存されます。"),
		}),
	}),
	group("rights", entities.Bundle{
		text("title", "ユーザーの権利"),
		text("description", "ユーザーは、以下の権利を有します。"),
		group("access", entities.Bundle{
			text("title", "1. アクセス権"),
			text("description", "自分の個人情報にアクセスし、確認する権利"),
		}),
		group("correction", entities.Bundle{
			text("title", "2. 訂正権"),
			text("description", "個人情報の訂正を求める権利"),
		}),
		group("deletion", entities.Bundle{
			text("title", "3. 削除権"),
			text("description", "個人情報の削除を求める権利"),
		}),
		group("portability", entities.Bundle{
			text("title", "4. データポータビリティ権"),
			text("description", "個人情報を他のサービスに移行する権利"),
		}),
	}),
	group("cookies", entities.Bundle{
		text("title", "Cookieの使用"),
		text("description", "本サービスでは、以下の目的でCookieを使用します。"),
		list("items",
			"ログイン状態の維持",
			"ユーザー設定の保存",
			"サービスの改善",
		),
	}),
	group("changes", entities.Bundle{
		text("title", "プライバシーポリシーの変更"),
		text("description", "本プライバシーポリシーは、法令の変更やサービスの改善に伴い、予告なく変更されることがあります。変更後のプライバシーポリシーは、本ページに掲載された時点で効力を生じます。"),
	}),
	group("contact", entities.Bundle{
		text("title", "お問い合わせ"),
		text("description", "本プライバシーポリシーに関するお問い合わせは、以下の連絡先までお願いします。"),
	}),
	group("nav", entities.Bundle{
		text("home", "ホーム"),
		text("guide", "ガイド"),
		text("myTemplates", "マイテンプレート"),
		text("favorites", "お気に入り"),
	}),
}

var finalPagesPrivacyEN = entities.Bundle{
	text("title", "Privacy Policy"),
	text("lastUpdated", "Last Updated: January 26, 2025"),
	group("intro", entities.Bundle{
		text("title", "Introduction"),
		text("text1", "(hereinafter referred to as \"the Service\") respects the privacy of our users and is committed to protecting personal information. This Privacy Policy explains what information the Service collects and how it is used and protected."),
		text("text2", "By using the Service, you are deemed to have agreed to this Privacy Policy. If you do not agree with this Privacy Policy, please refrain from using the Service."),
	}),
	group("collection", entities.Bundle{
		text("title", "Information We Collect"),
		group("account", entities.Bundle{
			text("title", "1. Account Information"),
			text("description", "The Service uses Manus OAuth authentication for login. Upon login, the following information is obtained from your Manus account."),
			list("items",
				"User ID (OpenID)",
				"Username",
				"Email address",
				"Login method",
			),
		}),
		group("inputData", entities.Bundle{
			text("title", "2. Input Data"),
			text("description", "When using the Service's features, you will input the following information."),
			list("items",
				"Resume content",
				"Job posting information",
				"Custom item content",
				"Uploaded files (PDF, Word, images)",
			),
		}),
		group("generatedData", entities.Bundle{
			text("title", "3. Generated Data"),
			text("description", "The following data generated by AI is saved."),
			list("items",
				"Generated documents such as career summaries, motivation letters, and self-PR",
				"Generation history",
				"Favorite saved patterns",
				"Custom templates",
			),
		}),
		group("apiKey", entities.Bundle{
			text("title", "4. API Keys"),
			text("description", "The Service requires you to set an API key for OpenAI or Gemini. API keys are encrypted and stored in the database, and are only used when executing AI functions."),
		}),
		group("usageData", entities.Bundle{
			text("title", "5. Usage Data"),
			text("description", "To improve the Service, the following usage data may be collected."),
			list("items",
				"Access date and time",
				"Features used",
				"Error logs",
			),
		}),
	}),
	group("usage", entities.Bundle{
		text("title", "Purpose of Information Use"),
		text("description", "Collected information is used for the following purposes."),
		group("service", entities.Bundle{
			text("title", "1. Service Provision"),
			list("items",
				"Document generation by AI features",
				"Saving and managing generation history",
				"Saving and managing templates",
				"Saving and managing favorite patterns",
			),
		}),
		group("improvement", entities.Bundle{
			text("title", "2. Service Improvement"),
			list("items",
				"Usage analysis",
				"Error detection and correction",
				"New feature development",
			),
		}),
		group("support", entities.Bundle{
			text("title", "3. User Support"),
			list("items",
				"Responding to inquiries",
				"Technical support",
			),
		}),
	}),
	group("protection", entities.Bundle{
		text("title", "Information Protection"),
		text("description", "The Service takes the following measures to protect users' personal information."),
		group("encryption", entities.Bundle{
			text("title", "1. Data Encryption"),
			text("description", "Sensitive information such as API keys is encrypted and stored in the database. Communications are encrypted with HTTPS."),
		}),
		group("accessControl", entities.Bundle{
			text("title", "2. Access Control"),
			text("description", "Only the user can access their personal information. Other users or third parties cannot access it."),
		}),
		group("security", entities.Bundle{
			text("title", "3. Security Measures"),
			text("description", "Appropriate security measures are implemented to prevent unauthorized access, tampering, and leakage."),
		}),
	}),
	group("thirdParty", entities.Bundle{
		text("title", "Disclosure to Third Parties"),
		text("description", "The Service does not provide users' personal information to third parties except in the following cases."),
		group("aiProvider", entities.Bundle{
			text("title", "1. AI API Providers"),
			text("description1", "The Service uses OpenAI or Gemini AI APIs to generate documents. Entered resumes and job postings are sent to AI API providers."),
			text("description2", "Please review each provider's privacy policy."),
		}),
		group("legal", entities.Bundle{
			text("title", "2. Legal Requests"),
			text("description", "Personal information may be disclosed if there is a disclosure request based on laws or a court order."),
		}),
		group("consent", entities.Bundle{
			text("title", "3. User Consent"),
			text("description", "Personal information may be provided to third parties with user consent."),
		}),
	}),
	group("retention", entities.Bundle{
		text("title", "Data Retention Period"),
		text("description", "The Service retains user data for the following periods."),
		group("account", entities.Bundle{
			text("title", "1. Account Information"),
			text("description", "Retained until the account is deleted."),
		}),
		group("generated", entities.Bundle{
			text("title", "2. Generated Data"),
			text("description", "Retained until deleted by the user."),
		}),
		group("apiKey", entities.Bundle{
			text("title", "3. API Keys"),
			text("description", "Retained until deleted by the user."),
		}),
	}),
	group("rights", entities.Bundle{
		text("title", "User Rights"),
		text("description", "Users have the following rights."),
		group("access", entities.Bundle{
			text("title", "1. Right to Access"),
			text("description", "Right to access and review your personal information"),
		}),
		group("correction", entities.Bundle{
			text("title", "2. Right to Correction"),
			text("description", "Right to request correction of personal information"),
		}),
		group("deletion", entities.Bundle{
			text("title", "3. Right to Deletion"),
			text("description", "Right to request deletion of personal information"),
		}),
		group("portability", entities.Bundle{
			text("title", "4. Right to Data Portability"),
			text("description", "Right to transfer personal information to other services"),
		}),
	}),
	group("cookies", entities.Bundle{
		text("title", "Use of Cookies"),
		text("description", "The Service uses cookies for the following purposes."),
		list("items",
			"Maintaining login status",
			"Saving user settings",
			"Service improvement",
		),
	}),
	group("changes", entities.Bundle{
		text("title", "Changes to Privacy Policy"),
		text("description", "This Privacy Policy may be changed without notice due to changes in laws or service improvements. The revised Privacy Policy takes effect when posted on this page."),
	}),
	group("contact", entities.Bundle{
		text("title", "Contact Us"),
		text("description", "For inquiries regarding this Privacy Policy, please contact us at the following address."),
	}),
	group("nav", entities.Bundle{
		text("home", "Home"),
		text("guide", "Guide"),
		text("myTemplates", "My Templates"),
		text("favorites", "Favorites"),
	}),
}

var finalPagesTermsJA = entities.Bundle{
	text("title", "利用規約"),
	text("lastUpdated", "最終更新日: 2025年1月26日"),
	group("intro", entities.Bundle{
		text("title", "はじめに"),
		text("description", "この利用規約（以下「本規約」といいます）は、（以下「本サービス」といいます）の利用条件を定めるものです。本サービスを利用するすべてのユーザー（以下「ユーザー」といいます）は、本規約に同意したものとみなされます。"),
	}),
	group("service", entities.Bundle{
		text("title", "サービスの内容"),
		text("description", "本サービスは、AI技術を活用して職務経歴書を求人情報に最適化するWebアプリケーションです。"),
		group("features", entities.Bundle{
			text("title", "主な機能"),
			list("items",
				"職務経歴書と求人情報の入力",
				"AIによる最適化された文書の生成",
				"複数パターンの生成と比較",
				"生成履歴の保存と管理",
				"お気に入りパターンの保存",
				"カスタムテンプレートの作成",
			),
		}),
	}),
	group("registration", entities.Bundle{
		text("title", "アカウント登録"),
		text("description", "本サービスを利用するには、Manus OAuth認証を使用してログインする必要があります。"),
		group("requirements", entities.Bundle{
			text("title", "登録要件"),
			list("items",
				"Manusアカウントを持っていること",
				"本規約に同意すること",
				"正確な情報を提供すること",
			),
		}),
		group("responsibility", entities.Bundle{
			text("title", "アカウントの管理"),
			text("description", "ユーザーは、自身のアカウント情報を適切に管理する責任を負います。アカウント情報の不正使用により生じた損害について、本サービスは一切の責任を負いません。"),
		}),
	}),
	group("usage", entities.Bundle{
		text("title", "サービスの利用"),
		group("apiKey", entities.Bundle{
			text("title", "APIキーの設定"),
			text("description", "本サービスを利用するには、OpenAIまたはGeminiのAPIキーを設定する必要があります。APIキーの取得と管理は、ユーザーの責任で行ってください。"),
		}),
		group("prohibited", entities.Bundle{
			text("title", "禁止事項"),
			text("description", "ユーザーは、以下の行為を行ってはなりません。"),
			list("items",
				"法令または公序良俗に違反する行為",
				"犯罪行為に関連する行為",
				"本サービスの運営を妨害する行為",
				"他のユーザーや第三者の権利を侵害する行為",
				"虚偽の情報を登録する行為",
				"本サービスを商業目的で利用する行為（個人の転職活動を除く）",
				"本サービスのシステムに不正にアクセスする行為",
				"本サービスのコンテンツを無断で複製、転載、配布する行為",
			),
		}),
	}),
	group("intellectualProperty", entities.Bundle{
		text("title", "知的財産権"),
		group("service", entities.Bundle{
			text("title", "本サービスの知的財産権"),
			text("description", "本サービスに関する知的財産権は、本サービスの運営者に帰属します。"),
		}),
		group("generated", entities.Bundle{
			text("title", "生成されたコンテンツ"),
			text("description", "AIによって生成されたコンテンツの知的財産権は、ユーザーに帰属します。ただし、生成されたコンテンツの利用により生じた問題について、本サービスは一切の責任を負いません。"),
		}),
	}),
	group("disclaimer", entities.Bundle{
		text("title", "免責事項"),
		list("items",
			"本サービスは、AIによって生成されたコンテンツの正確性、完全性、有用性を保証しません。",
			"本サービスの利用により生じた損害について、本サービスは一切の責任を負いません。",
			"本サービスは、予告なく内容の変更や提供の中止を行うことがあります。",
			"本サービスは、外部APIプロバイダー（OpenAI、Gemini）のサービス停止や変更により、サービスを提供できなくなる場合があります。",
		),
	}),
	group("termination", entities.Bundle{
		text("title", "サービスの終了"),
		text("description", "本サービスは、以下の場合にユーザーのアカウントを停止または削除することがあります。"),
		list("items",
			"本規約に違反した場合",
			"長期間サービスを利用していない場合",
			"その他、本サービスの運営上必要と判断した場合",
		),
	}),
	group("changes", entities.Bundle{
		text("title", "利用規約の変更"),
		text("description", "本規約は、法令の変更やサービスの改善に伴い、予告なく変更されることがあります。変更後の利用規約は、本ページに掲載された時点で効力を生じます。"),
	}),
	group("governing", entities.Bundle{
		text("title", "準拠法と管轄裁判所"),
		text("law", "本規約は、日本法に準拠します。"),
		text("court", "本規約に関する紛争は、本サービスの運営者の所在地を管轄する裁判所を専属的合意管轄裁判所とします。"),
	}),
	group("contact", entities.Bundle{
		text("title", "お問い合わせ"),
		text("description", "本規約に関するお問い合わせは、以下の連絡先までお願いします。"),
	}),
	group("nav", entities.Bundle{
		text("home", "ホーム"),
		text("guide", "ガイド"),
		text("myTemplates", "マイテンプレート"),
		text("favorites", "お気に入り"),
	}),
}

var finalPagesTermsEN = entities.Bundle{
	text("title", "Terms of Service"),
	text("lastUpdated", "Last Updated: January 26, 2025"),
	group("intro", entities.Bundle{
		text("title", "Introduction"),
		text("description", "These Terms of Service (hereinafter referred to as \"the Terms\") set forth the conditions for using (hereinafter referred to as \"the Service\"). All users (hereinafter referred to as \"Users\") who use the Service are deemed to have agreed to these Terms."),
	}),
	group("service", entities.Bundle{
		text("title", "Service Content"),
		text("description", "The Service is a web application that optimizes resumes to job postings using AI technology."),
		group("features", entities.Bundle{
			text("title", "Main Features"),
			list("items",
				"Input resume and job posting information",
				"Generate optimized documents by AI",
				"Generate and compare multiple patterns",
				"Save and manage generation history",
				"Save favorite patterns",
				"Create custom templates",
			),
		}),
	}),
	group("registration", entities.Bundle{
		text("title", "Account Registration"),
		text("description", "To use the Service, you must log in using Manus OAuth authentication."),
		group("requirements", entities.Bundle{
			text("title", "Registration Requirements"),
			list("items",
				"Have a Manus account",
				"Agree to these Terms",
				"Provide accurate information",
			),
		}),
		group("responsibility", entities.Bundle{
			text("title", "Account Management"),
			text("description", "Users are responsible for properly managing their account information. The Service assumes no responsibility for damages caused by unauthorized use of account information."),
		}),
	}),
	group("usage", entities.Bundle{
		text("title", "Service Usage"),
		group("apiKey", entities.Bundle{
			text("title", "API Key Setup"),
			text("description", "To use the Service, you must set an API key for OpenAI or Gemini. Obtaining and managing API keys is the user's responsibility."),
		}),
		group("prohibited", entities.Bundle{
			text("title", "Prohibited Actions"),
			text("description", "Users must not engage in the following actions."),
			list("items",
				"Actions that violate laws or public order and morals",
				"Actions related to criminal activity",
				"Actions that interfere with the operation of the Service",
				"Actions that infringe on the rights of other users or third parties",
				"Registering false information",
				"Using the Service for commercial purposes (except for personal job search activities)",
				"Unauthorized access to the Service's systems",
				"Unauthorized reproduction, reposting, or distribution of the Service's content",
			),
		}),
	}),
	group("intellectualProperty", entities.Bundle{
		text("title", "Intellectual Property Rights"),
		group("service", entities.Bundle{
			text("title", "Intellectual Property Rights of the Service"),
			text("description", "Intellectual property rights related to the Service belong to the Service operator."),
		}),
		group("generated", entities.Bundle{
			text("title", "Generated Content"),
			text("description", "Intellectual property rights of content generated by AI belong to the user. However, the Service assumes no responsibility for problems arising from the use of generated content."),
		}),
	}),
	group("disclaimer", entities.Bundle{
		text("title", "Disclaimer"),
		list("items",
			"The Service does not guarantee the accuracy, completeness, or usefulness of content generated by AI.",
			"The Service assumes no responsibility for damages arising from the use of the Service.",
			"The Service may change content or discontinue provision without notice.",
			"The Service may be unable to provide services due to service suspension or changes by external API providers (OpenAI, Gemini).",
		),
	}),
	group("termination", entities.Bundle{
		text("title", "Service Termination"),
		text("description", "The Service may suspend or delete a user's account in the following cases."),
		list("items",
			"Violation of these Terms",
			"Not using the Service for an extended period",
			"Other cases deemed necessary for the operation of the Service",
		),
	}),
	group("changes", entities.Bundle{
		text("title", "Changes to Terms of Service"),
		text("description", "These Terms may be changed without notice due to changes in laws or service improvements. The revised Terms take effect when posted on this page."),
	}),
	group("governing", entities.Bundle{
		text("title", "Governing Law and Jurisdiction"),
		text("law", "These Terms are governed by Japanese law."),
		text("court", "Disputes regarding these Terms shall be subject to the exclusive jurisdiction of the court having jurisdiction over the location of the Service operator."),
	}),
	group("contact", entities.Bundle{
		text("title", "Contact Us"),
		text("description", "For inquiries regarding these Terms, please contact us at the following address."),
	}),
	group("nav", entities.Bundle{
		text("home", "Home"),
		text("guide", "Guide"),
		text("myTemplates", "My Templates"),
		text("favorites", "Favorites"),
	}),
}

var finalPagesMytemplatesJA = entities.Bundle{
	text("title", "マイテンプレート"),
	text("description", "カスタムテンプレートを作成・管理できます。"),
	text("createButton", "新規テンプレート作成"),
	text("noTemplates", "テンプレートがありません"),
	text("noTemplatesDescription", "新規テンプレートを作成して、よく使う設定を保存しましょう。"),
	group("edit", entities.Bundle{
		text("title", "テンプレート編集"),
	}),
	text("delete", "削除"),
	text("use", "使用"),
	text("confirmDelete", "このテンプレートを削除してもよろしいですか？"),
	group("create", entities.Bundle{
		text("title", "新規テンプレート作成"),
		text("nameLabel", "テンプレート名"),
		text("namePlaceholder", "例: IT業界向けテンプレート"),
		text("categoryLabel", "カテゴリ"),
		text("categoryPlaceholder", "例: IT・エンジニア"),
		text("descriptionLabel", "説明（任意）"),
		text("descriptionPlaceholder", "このテンプレートの用途を説明してください"),
		text("outputItemsLabel", "出力項目"),
		text("charLimitsLabel", "文字数設定"),
		text("chars", "文字"),
		text("saveButton", "保存"),
		text("cancelButton", "キャンセル"),
	}),
	group("toast", entities.Bundle{
		text("created", "テンプレートを作成しました"),
		text("updated", "テンプレートを更新しました"),
		text("deleted", "テンプレートを削除しました"),
		text("applied", "テンプレートを適用しました"),
	}),
	group("nav", entities.Bundle{
		text("home", "ホーム"),
		text("guide", "ガイド"),
		text("favorites", "お気に入り"),
	}),
}

var finalPagesMytemplatesEN = entities.Bundle{
	text("title", "My Templates"),
	text("description", "Create and manage custom templates."),
	text("createButton", "Create New Template"),
	text("noTemplates", "No templates"),
	text("noTemplatesDescription", "Create a new template to save frequently used settings."),
	group("edit", entities.Bundle{
		text("title", "Edit Template"),
	}),
	text("delete", "Delete"),
	text("use", "Use"),
	text("confirmDelete", "Are you sure you want to delete this template?"),
	group("create", entities.Bundle{
		text("title", "Create New Template"),
		text("nameLabel", "Template Name"),
		text("namePlaceholder", "e.g., IT Industry Template"),
		text("categoryLabel", "Category"),
		text("categoryPlaceholder", "e.g., IT・Engineer"),
		text("descriptionLabel", "Description (Optional)"),
		text("descriptionPlaceholder", "Describe the purpose of this template"),
		text("outputItemsLabel", "Output Items"),
		text("charLimitsLabel", "Character Settings"),
		text("chars", "chars"),
		text("saveButton", "Save"),
		text("cancelButton", "Cancel"),
	}),
	group("toast", entities.Bundle{
		text("created", "Template created"),
		text("updated", "Template updated"),
		text("deleted", "Template deleted"),
		text("applied", "Template applied"),
	}),
	group("nav", entities.Bundle{
		text("home", "Home"),
		text("guide", "Guide"),
		text("favorites", "Favorites"),
	}),
}
