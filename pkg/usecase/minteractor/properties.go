// 指示: miu200521358
package minteractor

import "github.com/miu200521358/mu_poser2rig/pkg/domain/model"

// PROPERTIESボーンのカスタムプロパティ名。
const (
	PROP_HEAD_TRACKING       = "head_tracking"
	PROP_COLLAR_TRACKING     = "collar_tracking_speed_multiplier"
	PROP_ARMS_FKIK           = "arms_fkik"
	PROP_LEGS_FKIK           = "legs_fkik"
	PROP_SPINE_FKIK          = "spine_fkik"
	PROP_FINGERS_FKIK_LEFT   = "fingers_fkik_l"
	PROP_FINGERS_FKIK_RIGHT  = "fingers_fkik_r"
	fkikDefault              = 1.0
	fkikMin                  = 0.0
	fkikMax                  = 1.0
	collarTrackingMultiplier = 0.05
)

// fingerFKIKProperty は左右ごとの指FK/IKプロパティ名を返す。
func fingerFKIKProperty(side model.Side) string {
	if side == model.SIDE_RIGHT {
		return PROP_FINGERS_FKIK_RIGHT
	}
	return PROP_FINGERS_FKIK_LEFT
}

// createCustomProperties はPROPERTIESボーンへFK/IK切り替えと追従設定のプロパティを作成する。
func createCustomProperties(ctx *RigBuildContext) error {
	if err := ctx.requireMode(MODE_POSE); err != nil {
		return err
	}
	bone, err := ctx.rig.PropertiesBone()
	if err != nil {
		return err
	}
	properties := []*model.CustomProperty{
		model.NewBoolProperty(PROP_HEAD_TRACKING, false),
		model.NewFloatProperty(PROP_COLLAR_TRACKING, collarTrackingMultiplier, fkikMin, fkikMax),
		model.NewFloatArrayProperty(PROP_ARMS_FKIK, 2, fkikDefault, fkikMin, fkikMax),
		model.NewFloatArrayProperty(PROP_LEGS_FKIK, 2, fkikDefault, fkikMin, fkikMax),
		model.NewFloatProperty(PROP_SPINE_FKIK, fkikDefault, fkikMin, fkikMax),
		model.NewFloatArrayProperty(PROP_FINGERS_FKIK_LEFT, len(model.Fingers), fkikDefault, fkikMin, fkikMax),
		model.NewFloatArrayProperty(PROP_FINGERS_FKIK_RIGHT, len(model.Fingers), fkikDefault, fkikMin, fkikMax),
	}
	for _, property := range properties {
		bone.SetProperty(property)
	}
	return nil
}
