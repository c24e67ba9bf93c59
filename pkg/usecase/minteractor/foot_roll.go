// 指示: miu200521358
package minteractor

import (
	"github.com/miu200521358/mu_poser2rig/pkg/domain/mmath"
	"github.com/miu200521358/mu_poser2rig/pkg/domain/model"
)

// footRollNames はフットロール機構のボーン名を表す。
type footRollNames struct {
	Control  string
	RollFoot string
	Rollback string
	RollToe  string
	MchFoot  string
}

// newFootRollNames は左右ごとのフットロール機構のボーン名を返す。
func newFootRollNames(side model.Side) footRollNames {
	return footRollNames{
		Control:  model.LAYER_CTRL.Name(model.ROLE_FOOT+"-Roll", side),
		RollFoot: "Roll-" + model.ROLE_FOOT.String() + side.String(),
		Rollback: model.LAYER_MCH.Name(model.ROLE_FOOT+"-Rollback", side),
		RollToe:  model.LAYER_MCH.Name("Roll-"+model.ROLE_TOE, side),
		MchFoot:  model.LAYER_MCH.Name("Roll-"+model.ROLE_FOOT, side),
	}
}

// createFootRoll はつま先・かかと支点で足を転がす機構ボーンを生成し、IK足とつま先の親子を反転させる。
func createFootRoll(ctx *RigBuildContext, side model.Side) error {
	if _, err := ctx.rig.Collections.Ensure(COLLECTION_MCH_FOOTROLL, COLLECTION_MCH); err != nil {
		return err
	}
	if _, err := ctx.rig.Collections.Ensure(COLLECTION_FOOT_ROLL, COLLECTION_LEGS); err != nil {
		return err
	}
	ikToe := ctx.rig.Bones.Find(model.LAYER_IK.Name(model.ROLE_TOE, side))
	if ikToe == nil {
		ctx.warn(model.RigWarningBoneMissing, "つま先がないためフットロールを省略しました: %s", side)
		return nil
	}
	ikFoot, err := ctx.bone(model.LAYER_IK.Name(model.ROLE_FOOT, side))
	if err != nil {
		return err
	}
	footControl := ikControlName(model.ROLE_FOOT, side)
	if _, err := ctx.bone(footControl); err != nil {
		return err
	}
	names := newFootRollNames(side)
	h := ikFoot.Head

	specs := []BoneSpec{
		newBoneSpec(names.Control, boneSizeDef, mmath.NewVec3(h.X, h.Y+0.05, h.Z), mmath.NewVec3(h.X, h.Y+0.075, h.Z)),
		newBoneSpec(names.RollFoot, boneSizeDef, h, mmath.NewVec3(h.X, -0.05, h.Z)),
		newBoneSpec(names.Rollback, boneSizeDef, mmath.NewVec3(h.X, h.Y, 0.025), mmath.NewVec3(h.X, h.Y-0.025, 0.025)),
		newBoneSpec(names.RollToe, boneSizeDef, mmath.NewVec3(ikToe.Tail.X, ikToe.Tail.Y, 0), ikToe.Head),
		newBoneSpec(names.MchFoot, boneSizeDef, ikFoot.Tail, ikFoot.Head),
	}
	parents := []string{footControl, footControl, names.RollFoot, names.Rollback, names.Rollback}
	collections := []string{COLLECTION_FOOT_ROLL, COLLECTION_MCH_FOOTROLL, COLLECTION_MCH_FOOTROLL, COLLECTION_MCH_FOOTROLL, COLLECTION_MCH_FOOTROLL}
	for i, spec := range specs {
		spec.Parent = parents[i]
		spec.Display = model.DISPLAY_OCTAHEDRAL
		spec.Color = model.BrightBlue()
		spec.Collection = collections[i]
		if _, err := createBone(ctx, spec); err != nil {
			return err
		}
	}

	if err := ctx.rig.Bones.SetParent(ikToe.Name, names.RollToe); err != nil {
		return err
	}
	return ctx.rig.Bones.SetParent(ikFoot.Name, names.MchFoot)
}

// wireFootRollConstraints はフットロールの回転をかかと側とつま先側へ振り分けるコンストレイントを付与する。
func wireFootRollConstraints(ctx *RigBuildContext, side model.Side) error {
	names := newFootRollNames(side)
	control := ctx.rig.Bones.Find(names.Control)
	if control == nil {
		return nil
	}
	control.LockRotation = [3]bool{false, true, true}

	follow := newWorldConstraint(model.CONSTRAINT_COPY_LOCATION, "", names.RollToe)
	follow.HeadTail = 1.0
	if _, err := addConstraint(ctx, names.MchFoot, follow); err != nil {
		return err
	}

	toe := newLocalConstraint(model.CONSTRAINT_TRANSFORM, "", names.Control)
	toe.Transform.MapFrom = model.MAP_ROTATION
	toe.Transform.MapTo = model.MAP_ROTATION
	toe.Transform.FromMin = degreesToRadians3(90, 0, 0)
	toe.Transform.FromMax = degreesToRadians3(181, 0, 0)
	toe.Transform.ToMin = degreesToRadians3(0, 0, 0)
	toe.Transform.ToMax = degreesToRadians3(113, 0, 0)
	if _, err := addConstraint(ctx, names.RollToe, toe); err != nil {
		return err
	}

	heel := newLocalConstraint(model.CONSTRAINT_TRANSFORM, "", names.Control)
	heel.Transform.MapFrom = model.MAP_ROTATION
	heel.Transform.MapTo = model.MAP_ROTATION
	heel.Transform.FromMin = degreesToRadians3(0, 0, 0)
	heel.Transform.FromMax = degreesToRadians3(90, 0, 0)
	heel.Transform.ToMin = degreesToRadians3(0, 0, 0)
	heel.Transform.ToMax = degreesToRadians3(90, 0, 0)
	if _, err := addConstraint(ctx, names.MchFoot, heel); err != nil {
		return err
	}

	limit := newLocalConstraint(model.CONSTRAINT_LIMIT_ROTATION, "", "")
	limit.Limits[0] = rotationLimit(0, 179)
	_, err := addConstraint(ctx, names.Control, limit)
	return err
}
