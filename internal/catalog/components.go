package catalog

import "bundlegen/internal/domain/entities"

var componentsAnnouncementJA = entities.Bundle{
	text("announcement.title", "今後の機能追加予定"),
	text("announcement.description", "より便利で使いやすいサービスを目指して、以下の機能を実装予定です。"),
	text("announcement.feature1.title", "AIによる職務経歴書の添削・スコアリング機能"),
	text("announcement.feature1.description", "現在の職務経歴書を分析して、改善点を具体的に指摘。「読みやすさ」「具体性」「インパクト」などの項目別スコアを表示します。"),
	text("announcement.feature2.title", "AI面接対策機能（無料！）"),
	text("announcement.feature2.description", "求人情報と職務経歴書からAIが想定質問を自動生成し、あなたの経歴に基づいた回答例を提示します。面接前の準備が効率的に行えます。"),
	text("announcement.feature3.title", "LinkedIn人材検索機能"),
	text("announcement.feature3.description", "LinkedIn APIを使用して企業情報や人材情報を取得し、あなたの職務経歴書に基づいて関連企業を提案します。転職先の発見がスムーズになります。"),
	text("announcement.feature4.title", "バッチ一括応募機能"),
	text("announcement.feature4.description", "複数企業への応募を一括で行える機能。求人情報を選択し、最適化された職務経歴書を自動で送信します。比較を3社以上に同時応募でき、転職活動を大幅に効率化します。"),
	text("announcement.feature5.title", "職務経歴書のビフォー・アフター比較機能"),
	text("announcement.feature5.description", "最適化前と最適化後の職務経歴書を並べて比較表示。どこが改善されたかが一目瞭然です。"),
	text("announcement.feature6.title", "業界別テンプレート集"),
	text("announcement.feature6.description", "IT、営業、事務、クリエイティブなど、業界別に最適化されたテンプレートを提供します。"),
	text("announcement.feature7.title", "SNSシェア機能"),
	text("announcement.feature7.description", "生成した職務経歴書の一部をTwitter/LinkedInでシェアして、フィードバックを受け取れます。"),
	text("announcement.feature8.title", "プレミアムプラン（サブスクリプション）"),
	text("announcement.feature8.description", "月額課金で、無制限の生成回数、優先サポート、独自テンプレート作成などの特典を提供します。"),
	text("announcement.priority.high", "優先度: 高"),
	text("announcement.priority.medium", "優先度: 中"),
	text("announcement.priority.low", "優先度: 低"),
	text("announcement.status.implemented", "実装済み"),
	text("announcement.status.inProgress", "開発中"),
	text("announcement.status.planned", "予定"),
	text("announcement.schedule.title", "実装スケジュール"),
	text("announcement.schedule.description", "優先度の高い機能から順次実装していきます。実装完了次第、お知らせいたします。"),
	text("announcement.dismissForever", "今後表示しない"),
	text("announcement.close", "閉じる"),
}

var componentsAnnouncementEN = entities.Bundle{
	text("announcement.title", "Upcoming Features"),
	text("announcement.description", "We are planning to implement the following features to make our service more convenient and user-friendly."),
	text("announcement.feature1.title", "AI Resume Review & Scoring"),
	text("announcement.feature1.description", "Analyze your current resume and provide specific improvement suggestions. Display scores for categories like 'readability,' 'specificity,' and 'impact.'"),
	text("announcement.feature2.title", "AI Interview Preparation (Free!)"),
	text("announcement.feature2.description", "Automatically generate expected interview questions from job postings and resumes, and provide sample answers based on your experience. Prepare efficiently for interviews."),
	text("announcement.feature3.title", "LinkedIn Talent Search"),
	text("announcement.feature3.description", "Use LinkedIn API to retrieve company and talent information, and suggest relevant companies based on your resume. Discover job opportunities smoothly."),
	text("announcement.feature4.title", "Batch Application Feature"),
	text("announcement.feature4.description", "Apply to multiple companies at once. Select job postings and automatically send optimized resumes. Apply to 3+ companies simultaneously for comparison, significantly improving job search efficiency."),
	text("announcement.feature5.title", "Before & After Resume Comparison"),
	text("announcement.feature5.description", "Display optimized and original resumes side by side. See improvements at a glance."),
	text("announcement.feature6.title", "Industry-Specific Template Collection"),
	text("announcement.feature6.description", "Provide templates optimized for industries like IT, sales, administration, and creative fields."),
	text("announcement.feature7.title", "Social Media Sharing"),
	text("announcement.feature7.description", "Share parts of your generated resume on Twitter/LinkedIn to receive feedback."),
	text("announcement.feature8.title", "Premium Plan (Subscription)"),
	text("announcement.feature8.description", "Monthly subscription offering unlimited generations, priority support, custom template creation, and more."),
	text("announcement.priority.high", "Priority: High"),
	text("announcement.priority.medium", "Priority: Medium"),
	text("announcement.priority.low", "Priority: Low"),
	text("announcement.status.implemented", "Implemented"),
	text("announcement.status.inProgress", "In Progress"),
	text("announcement.status.planned", "Planned"),
	text("announcement.schedule.title", "Implementation Schedule"),
	text("announcement.schedule.description", "We will implement features in order of priority. We will notify you when each feature is completed."),
	text("announcement.dismissForever", "Don't show again"),
	text("announcement.close", "Close"),
}
