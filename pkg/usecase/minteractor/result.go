// 指示: miu200521358
package minteractor

import (
	"github.com/miu200521358/mu_poser2rig/pkg/domain/model"
	"github.com/miu200521358/mu_poser2rig/pkg/usecase/port/moutput"
)

// SaveOptions は保存時オプションを表す。
type SaveOptions = moutput.SaveOptions

// BuildProgressEventType はリグ生成の進捗イベント種別を表す。
type BuildProgressEventType string

const (
	// BuildProgressEventTypeInputValidated は入力検証完了イベントを表す。
	BuildProgressEventTypeInputValidated BuildProgressEventType = "input_validated"
	// BuildProgressEventTypeOutputPathResolved は出力パス解決完了イベントを表す。
	BuildProgressEventTypeOutputPathResolved BuildProgressEventType = "output_path_resolved"
	// BuildProgressEventTypeWidgetsLoaded はウィジェット読み込み完了イベントを表す。
	BuildProgressEventTypeWidgetsLoaded BuildProgressEventType = "widgets_loaded"
	// BuildProgressEventTypePhaseStarted は工程開始イベントを表す。
	BuildProgressEventTypePhaseStarted BuildProgressEventType = "phase_started"
	// BuildProgressEventTypePhaseCompleted は工程完了イベントを表す。
	BuildProgressEventTypePhaseCompleted BuildProgressEventType = "phase_completed"
	// BuildProgressEventTypeRigSaved はリグ保存完了イベントを表す。
	BuildProgressEventTypeRigSaved BuildProgressEventType = "rig_saved"
)

// BuildProgressEvent はリグ生成の進捗イベントを表す。
type BuildProgressEvent struct {
	Type        BuildProgressEventType
	Phase       BuildPhase
	BoneCount   int
	WidgetCount int
}

// IBuildProgressReporter はリグ生成の進捗通知契約を表す。
type IBuildProgressReporter interface {
	// ReportBuildProgress はリグ生成進捗を通知する。
	ReportBuildProgress(event BuildProgressEvent)
}

// reportBuildProgress は進捗通知先が設定されている場合のみ通知する。
func reportBuildProgress(reporter IBuildProgressReporter, event BuildProgressEvent) {
	if reporter == nil {
		return
	}
	reporter.ReportBuildProgress(event)
}

// ConvertRequest はスケルトンからリグへの変換要求を表す。
type ConvertRequest struct {
	InputPath        string
	OutputPath       string
	WidgetPath       string
	RigData          *model.Rig
	Widgets          []string
	Reader           moutput.IRigReader
	Writer           moutput.IRigWriter
	SaveOptions      SaveOptions
	ProgressReporter IBuildProgressReporter
}

// ConvertResult はスケルトンからリグへの変換結果を表す。
type ConvertResult struct {
	BuildID    string
	Rig        *model.Rig
	OutputPath string
	Warnings   []model.RigWarning
}
