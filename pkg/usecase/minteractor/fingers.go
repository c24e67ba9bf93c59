// 指示: miu200521358
package minteractor

import (
	"github.com/miu200521358/mu_poser2rig/pkg/domain/mmath"
	"github.com/miu200521358/mu_poser2rig/pkg/domain/model"
)

// fingersControlName は手ごとの指コントロール親のボーン名を返す。
func fingersControlName(layer model.Layer, side model.Side) string {
	return layer.Prefix() + "Fingers-CTRL" + side.String()
}

// thumbJointControlName は親指付け根IKコントロールのボーン名を返す。
func thumbJointControlName(side model.Side) string {
	return ikControlName(model.FINGER_THUMB.Role()+"-Joint", side)
}

// nudgeFingerMidJoints はIK指の第2関節を曲げ方向へずらし、ポールなしでIKの曲がる向きを決める。
func nudgeFingerMidJoints(ctx *RigBuildContext) {
	bones := ctx.rig.Bones
	for _, finger := range model.Fingers {
		name := model.LAYER_IK.Name(finger.Joint(2), model.SIDE_LEFT)
		bone := bones.Find(name)
		if bone == nil {
			continue
		}
		if finger == model.FINGER_THUMB {
			setBoneHead(bones, bone, bone.Head.Added(mmath.NewVec3(0, -fingerNudge, 0)))
			setBoneTail(bones, bone, bone.Tail.Added(mmath.NewVec3(0, -fingerNudge, fingerNudge)))
			continue
		}
		setBoneHead(bones, bone, bone.Head.Added(mmath.NewVec3(0, 0, fingerNudge)))
		setBoneTail(bones, bone, bone.Tail.Added(mmath.NewVec3(0, 0, fingerNudge)))
	}
}

// createFingerControls は指コントロール親、指ごとのカールコントロール、親指付け根コントロールを生成する。
func createFingerControls(ctx *RigBuildContext, side model.Side) error {
	fkHand, err := ctx.bone(model.LAYER_FK.Name(model.ROLE_HAND, side))
	if err != nil {
		return err
	}
	ikHand, err := ctx.bone(model.LAYER_IK.Name(model.ROLE_HAND, side))
	if err != nil {
		return err
	}

	fkParent := newBoneSpec(fingersControlName(model.LAYER_FK, side), boneSizeDef, fkHand.Head, fkHand.Tail)
	fkParent.Length = fingersCtrlLength
	fkParent.Parent = fkHand.Name
	fkParent.Color = model.PaletteColor(model.PALETTE_THEME03)
	fkParent.Collection = COLLECTION_FINGERS_FK_CTRL
	if _, err := createBone(ctx, fkParent); err != nil {
		return err
	}
	ikParent := newBoneSpec(fingersControlName(model.LAYER_IK, side), boneSizeDef, ikHand.Head, ikHand.Tail)
	ikParent.Length = fingersCtrlLength
	ikParent.Parent = ikHand.Name
	ikParent.Color = model.PaletteColor(model.PALETTE_THEME09)
	ikParent.Collection = COLLECTION_FINGERS_IK_CTRL
	if _, err := createBone(ctx, ikParent); err != nil {
		return err
	}

	for _, finger := range model.Fingers {
		fkBase := ctx.rig.Bones.Find(model.LAYER_FK.Name(finger.Joint(1), side))
		ikTip := ctx.rig.Bones.Find(model.LAYER_IK.Name(finger.Joint(fingerTipJoint), side))
		if fkBase == nil || ikTip == nil {
			ctx.warn(model.RigWarningBoneMissing, "指コントロールを省略しました: %s%s", finger, side)
			continue
		}
		size := fkBase.BBoneX * fingerCtrlSizeMultiplier

		fkSpec := newBoneSpec(fkControlName(finger.Role(), side), size, fkBase.Head, fkBase.Tail)
		fkSpec.Length = fingerCtrlLength
		fkSpec.Parent = fkParent.Name
		fkSpec.Color = model.PaletteColor(model.PALETTE_THEME09)
		fkSpec.Collection = COLLECTION_FINGERS_FK_CTRL
		fkCtrl, err := createBone(ctx, fkSpec)
		if err != nil {
			return err
		}

		ikSpec := newBoneSpec(ikControlName(finger.Role(), side), size, ikTip.Head, ikTip.Tail)
		ikSpec.Length = fingerCtrlLength
		ikSpec.Parent = ikParent.Name
		ikSpec.Color = model.PaletteColor(model.PALETTE_THEME09)
		ikSpec.Collection = COLLECTION_FINGERS_IK_CTRL
		ikCtrl, err := createBone(ctx, ikSpec)
		if err != nil {
			return err
		}

		translateAlongOwnAxis(fkCtrl, -fingerCtrlLength)
		translateAlongOwnAxis(ikCtrl, fingerCtrlLength)
		ikCtrl.Head = ikTip.Tail
		ikCtrl.SetLength(fingerCtrlLength)
	}

	thumb, err := ctx.bone(model.LAYER_IK.Name(model.FINGER_THUMB.Joint(1), side))
	if err != nil {
		return err
	}
	jointSpec := newBoneSpec(thumbJointControlName(side), boneSizeFK, thumb.Tail, thumb.Head)
	jointSpec.Length = fingerCtrlLength
	jointSpec.Parent = ikParent.Name
	jointSpec.Color = model.PaletteColor(model.PALETTE_THEME09)
	jointSpec.Collection = COLLECTION_FINGERS_IK_CTRL
	joint, err := createBone(ctx, jointSpec)
	if err != nil {
		return err
	}
	alignOrientation(joint, thumb)
	return nil
}

// fingerTipJoint は指先関節の番号。
const fingerTipJoint = model.FingerJointCount

// lockFingerCurlControl はFKカールコントロールをY軸スケールだけで操作できるように制限する。
func lockFingerCurlControl(ctx *RigBuildContext, name string) error {
	bone, err := ctx.bone(name)
	if err != nil {
		return err
	}
	bone.LockLocation = [3]bool{true, true, true}
	bone.LockRotation[0] = true
	bone.LockRotation[1] = true
	bone.LockScale[0] = true
	bone.LockScale[2] = true

	c := newLocalConstraint(model.CONSTRAINT_LIMIT_SCALE, "", "")
	c.Limits[1] = model.AxisLimit{UseMin: true, UseMax: true, Min: 0.25, Max: 1.0}
	_, err = addConstraint(ctx, name, c)
	return err
}

// wireFingerControlConstraints はFK指関節とカールコントロールのコンストレイントを付与する。
func wireFingerControlConstraints(ctx *RigBuildContext) error {
	side := model.SIDE_LEFT
	for _, finger := range model.Fingers {
		ctrlName := fkControlName(finger.Role(), side)
		if !ctx.rig.Bones.Contains(ctrlName) {
			continue
		}
		if err := lockFingerCurlControl(ctx, ctrlName); err != nil {
			return err
		}
		for joint := 1; joint <= model.FingerJointCount; joint++ {
			role := finger.Joint(joint)
			boneName, ok := ctx.chains.Lookup(model.LAYER_FK, role, side)
			if !ok {
				continue
			}
			previous, _ := ctx.chains.Previous(model.CHAIN_FINGER, finger, model.LAYER_FK, side, role)
			var err error
			if finger == model.FINGER_THUMB {
				err = wireThumbJoint(ctx, boneName, ctrlName, previous, joint)
			} else {
				err = wireFingerJoint(ctx, boneName, ctrlName, previous, joint)
			}
			if err != nil {
				return err
			}
		}
	}
	return nil
}

// wireFingerJoint は人差し指から小指までの関節にカール伝播を付与する。
func wireFingerJoint(ctx *RigBuildContext, boneName string, ctrlName string, previous string, joint int) error {
	if joint == 1 {
		sideSide := newLocalConstraint(model.CONSTRAINT_COPY_ROTATION, "Copy Rotation (Side-Side)", ctrlName)
		sideSide.UseAxis[1] = false
		sideSide.MixMode = model.MIX_ADD
		if _, err := addConstraint(ctx, boneName, sideSide); err != nil {
			return err
		}
		curl := newWorldConstraint(model.CONSTRAINT_TRANSFORM, "Transformation (Curl)", ctrlName)
		curl.Transform.MapFrom = model.MAP_SCALE
		curl.Transform.MapTo = model.MAP_ROTATION
		curl.Transform.FromMin[1] = 0.25
		curl.Transform.FromMax[1] = 1.0
		curl.Transform.MapToFrom[0] = model.AXIS_Y
		curl.Transform.ToMin = degreesToRadians3(-70, 0, 0)
		curl.Transform.ToMax = degreesToRadians3(0, 0, 0)
		curl.Transform.MixMode = model.MIX_ADD
		_, err := addConstraint(ctx, boneName, curl)
		return err
	}
	if previous == "" {
		return nil
	}
	follow := newLocalConstraint(model.CONSTRAINT_COPY_ROTATION, "", previous)
	follow.UseAxis = [3]bool{true, false, false}
	_, err := addConstraint(ctx, boneName, follow)
	return err
}

// wireThumbJoint は親指の関節ごとに固有の範囲でカールを付与する。
func wireThumbJoint(ctx *RigBuildContext, boneName string, ctrlName string, previous string, joint int) error {
	switch joint {
	case 1:
		follow := newLocalConstraint(model.CONSTRAINT_COPY_ROTATION, "", ctrlName)
		follow.MixMode = model.MIX_ADD
		if _, err := addConstraint(ctx, boneName, follow); err != nil {
			return err
		}
		limit := newLocalConstraint(model.CONSTRAINT_LIMIT_ROTATION, "", "")
		limit.Limits = [3]model.AxisLimit{
			rotationLimit(-30, 10),
			rotationLimit(-10, -10),
			rotationLimit(-30, 10),
		}
		_, err := addConstraint(ctx, boneName, limit)
		return err
	case 2:
		curl := newWorldConstraint(model.CONSTRAINT_TRANSFORM, "", ctrlName)
		curl.Transform.MapFrom = model.MAP_SCALE
		curl.Transform.MapTo = model.MAP_ROTATION
		curl.Transform.FromMin[1] = 0.25
		curl.Transform.FromMax[1] = 1.0
		curl.Transform.MapToFrom[2] = model.AXIS_Y
		curl.Transform.ToMin = degreesToRadians3(0, 0, 62.2)
		curl.Transform.ToMax = degreesToRadians3(0, 0, 0)
		_, err := addConstraint(ctx, boneName, curl)
		return err
	default:
		if previous == "" {
			return nil
		}
		curl := newWorldConstraint(model.CONSTRAINT_TRANSFORM, "", previous)
		curl.Transform.MapFrom = model.MAP_ROTATION
		curl.Transform.MapTo = model.MAP_ROTATION
		curl.Transform.FromMin = degreesToRadians3(0, 0, 0)
		curl.Transform.FromMax = degreesToRadians3(0, 0, 25)
		curl.Transform.MapToFrom[1] = model.AXIS_Z
		curl.Transform.MapToFrom[2] = model.AXIS_Z
		curl.Transform.ToMin = degreesToRadians3(0, 0, 0)
		curl.Transform.ToMax = degreesToRadians3(0, 30, 73)
		_, err := addConstraint(ctx, boneName, curl)
		return err
	}
}
