// 指示: miu200521358
package minteractor

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/miu200521358/mu_poser2rig/pkg/domain/model"
	"github.com/miu200521358/mu_poser2rig/pkg/usecase/port/moutput"
)

const (
	// BuildStatusSuccess は生成成功の履歴状態。
	BuildStatusSuccess = "success"
	// BuildStatusFailure は生成失敗の履歴状態。
	BuildStatusFailure = "failure"
	// defaultOutputSuffix は既定出力ファイル名へ付ける接尾辞。
	defaultOutputSuffix = "_rig"
	// compressedExt は圧縮保存時の拡張子。
	compressedExt = ".zst"
)

// Convert はスケルトンを読み込み、リグを生成して保存する。結果は履歴と計測へ記録する。
func (uc *Poser2RigUsecase) Convert(request ConvertRequest) (*ConvertResult, error) {
	buildID := uuid.NewString()
	started := time.Now()

	result, err := uc.convert(request, buildID)

	record := moutput.BuildRecord{
		ID:         buildID,
		InputPath:  request.InputPath,
		OutputPath: request.OutputPath,
		Status:     BuildStatusSuccess,
		StartedAt:  started,
		Elapsed:    time.Since(started),
	}
	if result != nil {
		record.OutputPath = result.OutputPath
		if result.Rig != nil {
			record.RigName = result.Rig.Name
			record.BoneCount = result.Rig.Bones.Len()
		}
		record.WarningCount = len(result.Warnings)
	}
	if err != nil {
		record.Status = BuildStatusFailure
		record.Message = err.Error()
	}
	uc.recordBuild(record)
	if err != nil {
		return nil, err
	}
	return result, nil
}

// convert は読み込みから保存までの一連の処理を行う。
func (uc *Poser2RigUsecase) convert(request ConvertRequest, buildID string) (*ConvertResult, error) {
	rig := request.RigData
	if rig == nil {
		if strings.TrimSpace(request.InputPath) == "" {
			return nil, fmt.Errorf("入力スケルトンパスが未指定です")
		}
		loaded, err := uc.LoadRig(request.Reader, request.InputPath)
		if err != nil {
			return nil, err
		}
		rig = loaded
	}
	reportBuildProgress(request.ProgressReporter, BuildProgressEvent{
		Type:      BuildProgressEventTypeInputValidated,
		BoneCount: boneCount(rig),
	})

	outputPath := strings.TrimSpace(request.OutputPath)
	if outputPath == "" {
		outputPath = defaultOutputPath(request.InputPath, request.SaveOptions.Compress)
	} else if request.SaveOptions.Compress && !strings.HasSuffix(strings.ToLower(outputPath), compressedExt) {
		outputPath += compressedExt
	}
	reportBuildProgress(request.ProgressReporter, BuildProgressEvent{
		Type: BuildProgressEventTypeOutputPathResolved,
	})

	widgets := request.Widgets
	if widgets == nil {
		loaded, err := uc.LoadWidgets(request.WidgetPath)
		if err != nil {
			return nil, err
		}
		widgets = loaded
	}
	reportBuildProgress(request.ProgressReporter, BuildProgressEvent{
		Type:        BuildProgressEventTypeWidgetsLoaded,
		WidgetCount: len(widgets),
	})

	logRigInfo("リグ生成開始: id=%s input=%s", buildID, request.InputPath)
	built, err := BuildRig(rig, widgets, request.ProgressReporter, uc.metrics)
	if err != nil {
		return nil, err
	}

	if outputPath != "" {
		if err := uc.SaveRig(request.Writer, outputPath, built, request.SaveOptions); err != nil {
			return nil, err
		}
		reportBuildProgress(request.ProgressReporter, BuildProgressEvent{
			Type:      BuildProgressEventTypeRigSaved,
			BoneCount: built.Bones.Len(),
		})
	}
	return &ConvertResult{
		BuildID:    buildID,
		Rig:        built,
		OutputPath: outputPath,
		Warnings:   append([]model.RigWarning(nil), built.Warnings...),
	}, nil
}

// recordBuild は履歴と計測へ生成結果を記録する。記録の失敗は生成結果へ影響させない。
func (uc *Poser2RigUsecase) recordBuild(record moutput.BuildRecord) {
	if uc.metrics != nil {
		uc.metrics.ObserveBuild(record.Status)
	}
	if uc.recorder == nil {
		return
	}
	if err := uc.recorder.Record(context.Background(), record); err != nil {
		logRigWarn("生成履歴の記録に失敗しました: %s", err.Error())
	}
}

// defaultOutputPath は入力パスから既定のリグ出力パスを生成する。入力が空の場合は空を返す。
func defaultOutputPath(inputPath string, compress bool) string {
	if strings.TrimSpace(inputPath) == "" {
		return ""
	}
	dir := filepath.Dir(inputPath)
	base := filepath.Base(inputPath)
	if strings.EqualFold(filepath.Ext(base), compressedExt) {
		base = strings.TrimSuffix(base, filepath.Ext(base))
	}
	ext := filepath.Ext(base)
	base = strings.TrimSuffix(base, ext)
	if strings.TrimSpace(base) == "" {
		return ""
	}
	if ext == "" {
		ext = ".yaml"
	}
	path := filepath.Join(dir, base+defaultOutputSuffix+ext)
	if compress {
		path += compressedExt
	}
	return path
}
