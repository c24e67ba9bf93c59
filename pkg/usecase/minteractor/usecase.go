// 指示: miu200521358
package minteractor

import "github.com/miu200521358/mu_poser2rig/pkg/usecase/port/moutput"

// Poser2RigUsecaseDeps はリグ生成ユースケースの依存を表す。
type Poser2RigUsecaseDeps struct {
	RigReader    moutput.IRigReader
	RigWriter    moutput.IRigWriter
	WidgetReader moutput.IWidgetLibraryReader
	Recorder     moutput.IBuildRecorder
	Metrics      moutput.IBuildMetrics
}

// Poser2RigUsecase はPoserスケルトンからリグを生成する処理をまとめたユースケースを表す。
type Poser2RigUsecase struct {
	rigReader    moutput.IRigReader
	rigWriter    moutput.IRigWriter
	widgetReader moutput.IWidgetLibraryReader
	recorder     moutput.IBuildRecorder
	metrics      moutput.IBuildMetrics
}

// NewPoser2RigUsecase はリグ生成ユースケースを生成する。
func NewPoser2RigUsecase(deps Poser2RigUsecaseDeps) *Poser2RigUsecase {
	return &Poser2RigUsecase{
		rigReader:    deps.RigReader,
		rigWriter:    deps.RigWriter,
		widgetReader: deps.WidgetReader,
		recorder:     deps.Recorder,
		metrics:      deps.Metrics,
	}
}
