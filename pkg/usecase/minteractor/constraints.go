// 指示: miu200521358
package minteractor

import (
	"github.com/miu200521358/mu_poser2rig/pkg/domain/mmath"
	"github.com/miu200521358/mu_poser2rig/pkg/domain/model"
	"github.com/miu200521358/mu_poser2rig/pkg/domain/model/merrors"
)

// degreesToRadians3 は3軸分の角度(度)をラジアンへ変換する。
func degreesToRadians3(x, y, z float64) [3]float64 {
	return [3]float64{mmath.DegToRad(x), mmath.DegToRad(y), mmath.DegToRad(z)}
}

// rotationLimit は角度(度)で指定した1軸分の回転制限を返す。
func rotationLimit(minDegrees float64, maxDegrees float64) model.AxisLimit {
	return model.AxisLimit{
		UseMin: true,
		UseMax: true,
		Min:    mmath.DegToRad(minDegrees),
		Max:    mmath.DegToRad(maxDegrees),
	}
}

// newLocalConstraint はローカル空間で評価するコンストレイントを生成する。
func newLocalConstraint(constraintType model.ConstraintType, name string, target string) *model.Constraint {
	c := model.NewConstraint(constraintType, name)
	c.Target = target
	c.OwnerSpace = model.SPACE_LOCAL
	c.TargetSpace = model.SPACE_LOCAL
	return c
}

// newWorldConstraint はワールド空間で評価するコンストレイントを生成する。
func newWorldConstraint(constraintType model.ConstraintType, name string, target string) *model.Constraint {
	c := model.NewConstraint(constraintType, name)
	c.Target = target
	return c
}

// addConstraint はポーズモードでボーンへコンストレイントを追加する。
func addConstraint(ctx *RigBuildContext, boneName string, c *model.Constraint) (*model.Constraint, error) {
	if err := ctx.requireMode(MODE_POSE); err != nil {
		return nil, err
	}
	bone, err := ctx.bone(boneName)
	if err != nil {
		return nil, err
	}
	if c.Target != "" && !ctx.rig.Bones.Contains(c.Target) {
		return nil, merrors.NewBoneNotFoundError(c.Target)
	}
	return bone.AddConstraint(c), nil
}

// addLayerCopyConstraints は fromLayer のボーンと同名の toLayer ボーンへ全トランスフォームコピーを付与する。
func addLayerCopyConstraints(ctx *RigBuildContext, fromLayer model.Layer, toLayer model.Layer, label string) (int, error) {
	name := model.NewConstraint(model.CONSTRAINT_COPY_TRANSFORMS, "").Name + " (" + label + ")"
	count := 0
	for _, boneName := range ctx.rig.Bones.Names() {
		targetName := fromLayer.Swap(boneName, toLayer)
		if targetName == "" {
			continue
		}
		if !ctx.rig.Bones.Contains(targetName) {
			logRigDebug("層コピー先がありません: %s -> %s", boneName, targetName)
			continue
		}
		c := newWorldConstraint(model.CONSTRAINT_COPY_TRANSFORMS, name, boneName)
		if _, err := addConstraint(ctx, targetName, c); err != nil {
			return count, err
		}
		count++
	}
	return count, nil
}

// ikRequest はIKソルバー付与要求を表す。
type ikRequest struct {
	Target    string
	Chain     []model.Role
	Side      model.Side
	Pole      string
	PoleAngle float64
}

// addIKConstraint はIKチェーン先頭のボーンへIKソルバーを付与する。
func addIKConstraint(ctx *RigBuildContext, request ikRequest) error {
	if len(request.Chain) == 0 {
		return nil
	}
	owner := model.LAYER_IK.Name(request.Chain[0], request.Side)
	c := newWorldConstraint(model.CONSTRAINT_IK, "", request.Target+request.Side.String())
	c.IK.ChainCount = len(request.Chain)
	if request.Pole != "" {
		c.IK.PoleTarget = ikPoleName(request.Pole, request.Side)
		c.IK.PoleAngle = mmath.DegToRad(request.PoleAngle)
	}
	added, err := addConstraint(ctx, owner, c)
	if err != nil {
		return err
	}
	added.Enabled = true
	return nil
}

// wireIKSolvers は腕・脚・背骨・指のIKソルバーを付与する。
func wireIKSolvers(ctx *RigBuildContext) error {
	requests := []ikRequest{
		{Target: ikControlName(model.ROLE_HAND, model.SIDE_NONE), Chain: []model.Role{model.ROLE_FOREARM, model.ROLE_SHOULDER}, Side: model.SIDE_LEFT, Pole: "Elbow", PoleAngle: 180},
		{Target: model.LAYER_IK.Name(model.ROLE_FOOT, model.SIDE_NONE), Chain: []model.Role{model.ROLE_SHIN, model.ROLE_THIGH}, Side: model.SIDE_LEFT, Pole: "Knee", PoleAngle: 90},
		{Target: ikControlName(model.ROLE_LOWER_ABDOMEN, model.SIDE_NONE), Chain: []model.Role{model.ROLE_LOWER_ABDOMEN, model.ROLE_HIP}, Pole: "Hip", PoleAngle: 90},
		{Target: ikControlName(model.ROLE_CHEST, model.SIDE_NONE), Chain: []model.Role{model.ROLE_CHEST, model.ROLE_ABDOMEN}, Pole: "Chest", PoleAngle: -90},
		{Target: ikControlName(model.ROLE_HEAD, model.SIDE_NONE), Chain: []model.Role{model.ROLE_HEAD, model.ROLE_NECK}, Pole: "Head", PoleAngle: 90},
		{Target: thumbJointControlName(model.SIDE_NONE), Chain: []model.Role{model.FINGER_THUMB.Joint(1)}, Side: model.SIDE_LEFT},
		{Target: ikControlName(model.FINGER_THUMB.Role(), model.SIDE_NONE), Chain: []model.Role{model.FINGER_THUMB.Joint(3), model.FINGER_THUMB.Joint(2)}, Side: model.SIDE_LEFT},
	}
	for _, finger := range model.Fingers[1:] {
		requests = append(requests, ikRequest{
			Target: ikControlName(finger.Role(), model.SIDE_NONE),
			Chain:  []model.Role{finger.Joint(3), finger.Joint(2), finger.Joint(1)},
			Side:   model.SIDE_LEFT,
		})
	}
	for _, request := range requests {
		if !ctx.rig.Bones.Contains(model.LAYER_IK.Name(request.Chain[0], request.Side)) {
			ctx.warn(model.RigWarningBoneMissing, "IKソルバーを省略しました: %s", model.LAYER_IK.Name(request.Chain[0], request.Side))
			continue
		}
		if err := addIKConstraint(ctx, request); err != nil {
			return err
		}
	}
	return nil
}

// wireConstraints は層コピー・IK・機構・カスタムプロパティを付与する。
func wireConstraints(ctx *RigBuildContext) error {
	if err := wireFingerControlConstraints(ctx); err != nil {
		return err
	}
	ikCount, err := addLayerCopyConstraints(ctx, model.LAYER_IK, model.LAYER_FK, model.LAYER_IK.Token())
	if err != nil {
		return err
	}
	fkCount, err := addLayerCopyConstraints(ctx, model.LAYER_FK, model.LAYER_DEF, model.LAYER_FK.Token())
	if err != nil {
		return err
	}
	logRigDebug("層コピー付与: IK->FK=%d FK->DEF=%d", ikCount, fkCount)
	if err := wireIKSolvers(ctx); err != nil {
		return err
	}
	if err := wireCollarConstraints(ctx, model.SIDE_LEFT); err != nil {
		return err
	}
	if err := wireFootRollConstraints(ctx, model.SIDE_LEFT); err != nil {
		return err
	}
	if err := wireEyeConstraints(ctx, model.SIDE_LEFT); err != nil {
		return err
	}
	return createCustomProperties(ctx)
}
