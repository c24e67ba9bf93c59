// 指示: miu200521358
package model

const (
	// RigWarningChainRoleSkipped は変形ボーンが見つからずチェーンの役割を省略した警告。
	RigWarningChainRoleSkipped = "RigWarningChainRoleSkipped"
	// RigWarningRenameSideLetter は先頭1文字の左右判定で改名した警告。
	RigWarningRenameSideLetter = "RigWarningRenameSideLetter"
	// RigWarningLowerAbdomenExists は下腹部ボーンが既に存在したため挿入しなかった警告。
	RigWarningLowerAbdomenExists = "RigWarningLowerAbdomenExists"
	// RigWarningCopyThroughUnmatched は層間コピー先が見つからなかった警告。
	RigWarningCopyThroughUnmatched = "RigWarningCopyThroughUnmatched"
	// RigWarningWidgetMissing はカスタムシェイプが見つからなかった警告。
	RigWarningWidgetMissing = "RigWarningWidgetMissing"
	// RigWarningBoneMissing は任意ボーンが見つからず処理を省略した警告。
	RigWarningBoneMissing = "RigWarningBoneMissing"
)
