// 指示: miu200521358
// Package messages はCLI表示に使うメッセージを提供する。
package messages

// メッセージ一覧。
const (
	AppName = "mu_poser2rig"

	HelpRootShort    = "Poserスケルトンからリグを生成する"
	HelpBuildShort   = "スケルトン文書からリグ文書を生成する"
	HelpHistoryShort = "リグ生成履歴を表示する"

	FlagConfig    = "設定ファイルパス"
	FlagIn        = "入力スケルトンファイルパス(.yaml/.json、.zst可)"
	FlagOut       = "出力リグファイルパス(省略時は入力名_rig)"
	FlagWidgets   = "ウィジェットライブラリパス"
	FlagCompress  = "出力をzstd圧縮する"
	FlagHistory   = "生成履歴DBパス"
	FlagNoHistory = "生成履歴を記録しない"
	FlagMetrics   = "計測値のtextfile出力パス"
	FlagLogLevel  = "ログレベル(debug/info/warn/error)"
	FlagLogFormat = "ログ形式(text/json)"
	FlagLimit     = "表示件数"

	MessageInputRequired  = "入力スケルトンファイルを指定してください (--in)"
	MessageBuildFailed    = "リグ生成に失敗しました"
	MessageHistoryFailed  = "生成履歴の取得に失敗しました"
	MessageMetricsFailed  = "計測値の出力に失敗しました"
	MessageHistoryEmpty   = "生成履歴はありません"
	MessageHistoryOpenErr = "生成履歴DBを開けませんでした"

	LogLoadStarted   = "[mu_poser2rig] 読み込み開始: %s"
	LogPhaseDone     = "[mu_poser2rig] 工程完了: %s (ボーン数=%d)"
	LogBuildSuccess  = "[mu_poser2rig] 生成完了: %s (ボーン数=%d, 警告数=%d)"
	LogBuildInMemory = "[mu_poser2rig] 生成完了(保存なし): ボーン数=%d, 警告数=%d"
	LogWarning       = "[mu_poser2rig] 警告 %s: %s"
	LogHistoryRow    = "%s\t%s\t%-7s\t%4d\t%s\t%s"
)
