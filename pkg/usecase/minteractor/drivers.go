// 指示: miu200521358
package minteractor

import "github.com/miu200521358/mu_poser2rig/pkg/domain/model"

const (
	fkikDriverVariable = "fkik_switch"
	driverIDTypeObject = "OBJECT"
)

// newFKIKDriver はプロパティ値をそのまま影響度へ流すドライバーを生成する。
func newFKIKDriver(rig *model.Rig, boneName string, constraintName string, dataPath string) *model.Driver {
	return &model.Driver{
		BoneName:       boneName,
		ConstraintName: constraintName,
		Property:       model.DRIVER_PROPERTY_INFLUENCE,
		Type:           model.DRIVER_SCRIPTED,
		Expression:     fkikDriverVariable,
		Variables: []model.DriverVariable{
			{
				Name:     fkikDriverVariable,
				Type:     model.DRIVER_VAR_SINGLE_PROP,
				IDType:   driverIDTypeObject,
				ID:       rig.Name,
				DataPath: dataPath,
			},
		},
	}
}

// attachFKIKDrivers はボーンの層コピー制約すべてへドライバーを付与し、付与数を返す。
func attachFKIKDrivers(ctx *RigBuildContext, boneNames []string, dataPath string) (int, error) {
	count := 0
	for _, boneName := range boneNames {
		bone, err := ctx.bone(boneName)
		if err != nil {
			return count, err
		}
		for _, c := range bone.Constraints {
			if !c.IsLayerCopy() {
				continue
			}
			ctx.rig.AddDriver(newFKIKDriver(ctx.rig, bone.Name, c.Name, dataPath))
			count++
		}
	}
	return count, nil
}

// wireFKIKDrivers は背骨・腕・脚・指のFKボーンの層コピー影響度へFK/IK切り替えドライバーを付与する。左右とも明示的に処理する。
func wireFKIKDrivers(ctx *RigBuildContext) error {
	if err := ctx.requireMode(MODE_POSE); err != nil {
		return err
	}
	total := 0
	spine := ctx.chains.Chain(model.CHAIN_SPINE, "", model.LAYER_FK, model.SIDE_NONE)
	n, err := attachFKIKDrivers(ctx, spine, model.PropertyDataPath(PROP_SPINE_FKIK, -1))
	if err != nil {
		return err
	}
	total += n

	for _, side := range []model.Side{model.SIDE_LEFT, model.SIDE_RIGHT} {
		limbs := []struct {
			kind     model.ChainKind
			property string
		}{
			{kind: model.CHAIN_ARM, property: PROP_ARMS_FKIK},
			{kind: model.CHAIN_LEG, property: PROP_LEGS_FKIK},
		}
		for _, limb := range limbs {
			chain := ctx.chains.Chain(limb.kind, "", model.LAYER_FK, side)
			n, err := attachFKIKDrivers(ctx, chain, model.PropertyDataPath(limb.property, side.Index()))
			if err != nil {
				return err
			}
			total += n
		}
		for _, finger := range model.Fingers {
			chain := ctx.chains.Chain(model.CHAIN_FINGER, finger, model.LAYER_FK, side)
			n, err := attachFKIKDrivers(ctx, chain, model.PropertyDataPath(fingerFKIKProperty(side), finger.Index()))
			if err != nil {
				return err
			}
			total += n
		}
	}
	logRigDebug("FK/IK切り替えドライバー付与: %d", total)
	return nil
}
