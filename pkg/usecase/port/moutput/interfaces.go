// 指示: miu200521358
package moutput

import (
	"context"
	"time"

	"github.com/miu200521358/mu_poser2rig/pkg/domain/model"
)

// SaveOptions は保存時のオプションを表す。
type SaveOptions struct {
	// Compress はzstd圧縮して保存するか。
	Compress bool
}

// IRigReader はスケルトン文書の読み込み契約を表す。
type IRigReader interface {
	// CanLoad は読み込み可能なパスか判定する。
	CanLoad(path string) bool
	// Load はスケルトン文書を読み込む。
	Load(path string) (*model.Rig, error)
}

// IRigWriter はリグ文書の書き込み契約を表す。
type IRigWriter interface {
	// Save はリグ文書を保存する。
	Save(path string, rig *model.Rig, opts SaveOptions) error
}

// IWidgetLibraryReader はカスタムシェイプ一覧の読み込み契約を表す。
type IWidgetLibraryReader interface {
	// LoadWidgets はウィジェット名一覧を読み込む。
	LoadWidgets(path string) ([]string, error)
}

// BuildRecord はリグ生成1回分の履歴を表す。
type BuildRecord struct {
	ID           string
	InputPath    string
	OutputPath   string
	RigName      string
	Status       string
	Message      string
	BoneCount    int
	WarningCount int
	StartedAt    time.Time
	Elapsed      time.Duration
}

// IBuildRecorder はリグ生成履歴の記録契約を表す。
type IBuildRecorder interface {
	// Record は履歴を1件記録する。
	Record(ctx context.Context, record BuildRecord) error
}

// IBuildMetrics はリグ生成の計測契約を表す。
type IBuildMetrics interface {
	// ObservePhase は工程の所要時間を記録する。
	ObservePhase(phase string, elapsed time.Duration)
	// ObserveBuild は生成結果を記録する。
	ObserveBuild(status string)
}
