// 指示: miu200521358
package minteractor

import (
	"fmt"
	"time"

	"github.com/miu200521358/mu_poser2rig/pkg/domain/model"
	"github.com/miu200521358/mu_poser2rig/pkg/usecase/port/moutput"
)

// buildStep は1工程分のモードと処理を表す。
type buildStep struct {
	Phase BuildPhase
	Mode  EditMode
	Run   func(ctx *RigBuildContext) error
}

// buildSteps は検証後に複製したリグへ順に適用する工程一覧を返す。
func buildSteps(widgets []string) []buildStep {
	return []buildStep{
		{Phase: PHASE_NORMALIZE_TRANSFORMS, Mode: MODE_OBJECT, Run: normalizeTransforms},
		{Phase: PHASE_REPAIR, Mode: MODE_EDIT, Run: repairSkeleton},
		{Phase: PHASE_RENAME, Mode: MODE_EDIT, Run: renameDeformBones},
		{Phase: PHASE_CHAINS, Mode: MODE_EDIT, Run: buildParallelChains},
		{Phase: PHASE_CONTROLS, Mode: MODE_EDIT, Run: buildControls},
		{Phase: PHASE_CLEANUP, Mode: MODE_EDIT, Run: cleanupControls},
		{Phase: PHASE_ROTATION_MODES, Mode: MODE_POSE, Run: setRotationModes},
		{Phase: PHASE_SHAPES, Mode: MODE_POSE, Run: func(ctx *RigBuildContext) error {
			_, err := assignCustomShapes(ctx, widgets)
			return err
		}},
		{Phase: PHASE_CONSTRAINTS, Mode: MODE_POSE, Run: wireConstraints},
		{Phase: PHASE_MIRROR, Mode: MODE_EDIT, Run: mirrorLeftSide},
		{Phase: PHASE_DRIVERS, Mode: MODE_POSE, Run: wireFKIKDrivers},
		{Phase: PHASE_FINALIZE, Mode: MODE_POSE, Run: finalizeRig},
	}
}

// BuildRig はスケルトンからリグを生成する。入力は変更せず、全工程が成功した場合のみ複製側のリグを返す。
func BuildRig(rig *model.Rig, widgets []string, reporter IBuildProgressReporter, metrics moutput.IBuildMetrics) (*model.Rig, error) {
	ctx := NewRigBuildContext(rig)
	if err := runBuildStep(ctx, buildStep{
		Phase: PHASE_VALIDATE,
		Mode:  MODE_OBJECT,
		Run: func(ctx *RigBuildContext) error {
			return validateSkeleton(ctx.rig)
		},
	}, reporter, metrics); err != nil {
		return nil, err
	}

	working, err := rig.Clone()
	if err != nil {
		return nil, err
	}
	ctx.rig = working

	for _, step := range buildSteps(widgets) {
		if err := runBuildStep(ctx, step, reporter, metrics); err != nil {
			return nil, err
		}
	}
	if err := ctx.Advance(PHASE_DONE); err != nil {
		return nil, err
	}
	if err := enterMode(ctx, MODE_OBJECT); err != nil {
		return nil, err
	}
	logRigInfo("リグ生成完了: %s (ボーン数=%d, 警告数=%d)", working.Name, working.Bones.Len(), len(working.Warnings))
	return working, nil
}

// runBuildStep は工程を進め、モードを切り替えて処理を実行する。
func runBuildStep(ctx *RigBuildContext, step buildStep, reporter IBuildProgressReporter, metrics moutput.IBuildMetrics) error {
	if err := ctx.Advance(step.Phase); err != nil {
		return err
	}
	if err := enterMode(ctx, step.Mode); err != nil {
		return err
	}

	logRigInfo("工程開始: %s", step.Phase)
	reportBuildProgress(reporter, BuildProgressEvent{
		Type:      BuildProgressEventTypePhaseStarted,
		Phase:     step.Phase,
		BoneCount: boneCount(ctx.rig),
	})
	started := time.Now()
	if err := step.Run(ctx); err != nil {
		logRigWarn("工程失敗: %s: %s", step.Phase, err.Error())
		return fmt.Errorf("%s工程に失敗しました: %w", step.Phase, err)
	}
	elapsed := time.Since(started)
	if metrics != nil {
		metrics.ObservePhase(step.Phase.String(), elapsed)
	}
	logRigInfo("工程完了: %s (%s)", step.Phase, elapsed)
	reportBuildProgress(reporter, BuildProgressEvent{
		Type:      BuildProgressEventTypePhaseCompleted,
		Phase:     step.Phase,
		BoneCount: boneCount(ctx.rig),
	})
	return nil
}

// enterMode は現在と異なる場合のみモードを切り替える。
func enterMode(ctx *RigBuildContext, mode EditMode) error {
	if ctx.mode == mode {
		return nil
	}
	return ctx.SetMode(mode)
}

// boneCount はnilを許容してボーン数を返す。
func boneCount(rig *model.Rig) int {
	if rig == nil {
		return 0
	}
	return rig.Bones.Len()
}

// setRotationModes は全ポーズボーンの回転表現をXYZオイラーへ揃える。
func setRotationModes(ctx *RigBuildContext) error {
	if err := ctx.requireMode(MODE_POSE); err != nil {
		return err
	}
	for _, bone := range ctx.rig.Bones.Values {
		bone.RotationMode = model.ROTATION_XYZ
	}
	return nil
}

// finalizeRig は補助コレクションと臀部ボーンを隠し、シーン設定を戻してドライバーを再評価する。
func finalizeRig(ctx *RigBuildContext) error {
	if err := ctx.requireMode(MODE_POSE); err != nil {
		return err
	}
	rigging, err := ctx.rig.Collections.Get(COLLECTION_RIGGING)
	if err != nil {
		return err
	}
	rigging.Visible = false

	for _, layer := range []model.Layer{model.LAYER_FK, model.LAYER_IK} {
		for _, side := range []model.Side{model.SIDE_LEFT, model.SIDE_RIGHT} {
			name := layer.Name(model.ROLE_BUTTOCK, side)
			bone := ctx.rig.Bones.Find(name)
			if bone == nil {
				ctx.warn(model.RigWarningBoneMissing, "非表示対象のボーンが見つかりません: %s", name)
				continue
			}
			bone.Hidden = true
		}
	}

	ctx.rig.Scene.TransformOrientation = model.ORIENTATION_GLOBAL
	ctx.rig.Scene.PivotPoint = model.PIVOT_MEDIAN
	return ctx.rig.EvaluateDrivers()
}
