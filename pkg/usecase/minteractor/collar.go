// 指示: miu200521358
package minteractor

import (
	"github.com/miu200521358/mu_poser2rig/pkg/domain/mmath"
	"github.com/miu200521358/mu_poser2rig/pkg/domain/model"
)

// collarTargetTailY は鎖骨追従ターゲットのテールY座標。
const collarTargetTailY = 0.1

// collarNames は鎖骨追従機構のボーン名を表す。
type collarNames struct {
	Collar      string
	DampedTrack string
	Target      string
}

// newCollarNames は左右ごとの鎖骨追従機構のボーン名を返す。
func newCollarNames(side model.Side) collarNames {
	collar := model.LAYER_MCH.Name(model.ROLE_COLLAR, side)
	return collarNames{
		Collar:      collar,
		DampedTrack: model.LAYER_MCH.Name(model.ROLE_COLLAR+"-DampedTrack", side),
		Target:      model.LAYER_MCH.Name(model.ROLE_COLLAR+"-Target", side),
	}
}

// createCollarMechanism は手のIKコントロールに鎖骨を滑らかに追従させる機構ボーンを生成する。
func createCollarMechanism(ctx *RigBuildContext, side model.Side) error {
	if _, err := ctx.rig.Collections.Ensure(COLLECTION_MCH_SHOULDER, COLLECTION_MCH); err != nil {
		return err
	}
	ikCollar, err := ctx.bone(model.LAYER_IK.Name(model.ROLE_COLLAR, side))
	if err != nil {
		return err
	}
	ikHand, err := ctx.bone(model.LAYER_IK.Name(model.ROLE_HAND, side))
	if err != nil {
		return err
	}
	handControl, err := ctx.bone(ikControlName(model.ROLE_HAND, side))
	if err != nil {
		return err
	}
	chestName := model.LAYER_DEF.Name(model.ROLE_CHEST, model.SIDE_NONE)
	names := newCollarNames(side)

	collarSpec := newBoneSpec(names.Collar, boneSizeDef, ikCollar.Head, ikCollar.Tail)
	collarSpec.Parent = chestName
	collarSpec.Display = model.DISPLAY_OCTAHEDRAL
	collarSpec.Color = model.BrightOrange()
	collarSpec.Collection = COLLECTION_MCH_SHOULDER
	if _, err := createBone(ctx, collarSpec); err != nil {
		return err
	}
	if err := ctx.rig.Bones.SetParent(ikCollar.Name, names.Collar); err != nil {
		return err
	}

	trackSpec := newBoneSpec(names.DampedTrack, boneSizeDef, ikCollar.Head, ikHand.Head)
	trackSpec.Parent = chestName
	trackSpec.Display = model.DISPLAY_STICK
	trackSpec.Color = model.BrightYellow()
	trackSpec.Collection = COLLECTION_MCH_SHOULDER
	track, err := createBone(ctx, trackSpec)
	if err != nil {
		return err
	}

	targetSpec := newBoneSpec(names.Target, boneSizeDef, mmath.ZERO_VEC3, mmath.ZERO_VEC3)
	targetSpec.Parent = model.ROLE_ROOT.String()
	targetSpec.Display = model.DISPLAY_OCTAHEDRAL
	targetSpec.Color = model.BrightOrange()
	targetSpec.Collection = COLLECTION_MCH_SHOULDER
	target, err := createBone(ctx, targetSpec)
	if err != nil {
		return err
	}

	alignOrientation(track, ikCollar)
	target.Head = track.Tail
	target.Tail = mmath.NewVec3(track.Tail.X, collarTargetTailY, track.Tail.Z)
	target.AxisZ = target.DefaultAxisZ()
	alignOrientation(target, handControl)
	return nil
}

// wireCollarConstraints は鎖骨追従機構のコンストレイントを付与する。
func wireCollarConstraints(ctx *RigBuildContext, side model.Side) error {
	names := newCollarNames(side)
	handControl := ikControlName(model.ROLE_HAND, side)

	if _, err := addConstraint(ctx, names.Collar, newWorldConstraint(model.CONSTRAINT_COPY_ROTATION, "", names.DampedTrack)); err != nil {
		return err
	}
	if _, err := addConstraint(ctx, names.DampedTrack, newWorldConstraint(model.CONSTRAINT_DAMPED_TRACK, "", names.Target)); err != nil {
		return err
	}

	plusZ := newLocalConstraint(model.CONSTRAINT_COPY_LOCATION, "Copy Location (+Z)", handControl)
	plusZ.UseAxis[1] = false
	if _, err := addConstraint(ctx, names.Target, plusZ); err != nil {
		return err
	}
	minusZ := newLocalConstraint(model.CONSTRAINT_COPY_LOCATION, "Copy Location (-Z)", handControl)
	minusZ.UseAxis[1] = false
	minusZ.Influence = 0
	if _, err := addConstraint(ctx, names.Target, minusZ); err != nil {
		return err
	}
	forward := newWorldConstraint(model.CONSTRAINT_COPY_LOCATION, "Copy Location (+/-Y)", handControl)
	forward.UseAxis = [3]bool{false, true, false}
	_, err := addConstraint(ctx, names.Target, forward)
	return err
}
