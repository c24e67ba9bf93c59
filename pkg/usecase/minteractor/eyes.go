// 指示: miu200521358
package minteractor

import (
	"github.com/miu200521358/mu_poser2rig/pkg/domain/mmath"
	"github.com/miu200521358/mu_poser2rig/pkg/domain/model"
)

const (
	eyeTargetName     = "CTRL-Eye_Target"
	eyeTargetHeadY    = -0.25
	eyeTargetTailY    = -0.27
	eyeMechanismNudge = 0.005
)

// eyeSideTargetName は左右の視線ターゲットのボーン名を返す。
func eyeSideTargetName(side model.Side) string {
	return eyeTargetName + side.String()
}

// createEyeControls は視線追従の機構ボーンと2段の視線ターゲットを生成する。
func createEyeControls(ctx *RigBuildContext, side model.Side) error {
	eye := ctx.rig.Bones.Find(model.LAYER_DEF.Name(model.ROLE_EYE, side))
	if eye == nil {
		ctx.warn(model.RigWarningBoneMissing, "目がないため視線コントロールを省略しました: %s", side)
		return nil
	}
	headName := model.LAYER_DEF.Name(model.ROLE_HEAD, model.SIDE_NONE)

	mechanism := newBoneSpec(model.LAYER_MCH.Name(model.ROLE_EYE, side), eye.BBoneZ*2, eye.Head,
		eye.Tail.Added(mmath.NewVec3(0, eyeMechanismNudge, 0)))
	mechanism.Parent = eye.ParentName
	mechanism.Collection = COLLECTION_EYES_CTRL
	if _, err := createBone(ctx, mechanism); err != nil {
		return err
	}

	z := eye.Head.Z
	center := newBoneSpec(eyeTargetName, eye.BBoneX, mmath.NewVec3(0, eyeTargetHeadY, z), mmath.NewVec3(0, eyeTargetTailY, z))
	center.Parent = headName
	center.Color = model.BrightBlue()
	center.Collection = COLLECTION_EYES_CTRL
	if _, err := createBone(ctx, center); err != nil {
		return err
	}

	sided := newBoneSpec(eyeSideTargetName(side), eye.BBoneX,
		mmath.NewVec3(eye.Head.X, eyeTargetHeadY, z), mmath.NewVec3(eye.Head.X, eyeTargetTailY, z))
	sided.Parent = eyeTargetName
	sided.Color = model.BrightYellow()
	sided.Collection = COLLECTION_EYES_CTRL
	_, err := createBone(ctx, sided)
	return err
}

// wireEyeConstraints は機構ボーンを視線ターゲットへ向け、変形用の目へ回転を写す。
func wireEyeConstraints(ctx *RigBuildContext, side model.Side) error {
	mechanism := model.LAYER_MCH.Name(model.ROLE_EYE, side)
	if !ctx.rig.Bones.Contains(mechanism) {
		return nil
	}
	eye := model.LAYER_DEF.Name(model.ROLE_EYE, side)
	if _, err := addConstraint(ctx, eye, newWorldConstraint(model.CONSTRAINT_COPY_ROTATION, "", mechanism)); err != nil {
		return err
	}
	_, err := addConstraint(ctx, mechanism, newWorldConstraint(model.CONSTRAINT_DAMPED_TRACK, "", eyeSideTargetName(side)))
	return err
}
