// 指示: miu200521358
package minteractor

import (
	"strings"

	"github.com/miu200521358/mu_poser2rig/pkg/domain/model"
)

const (
	// widgetLibraryPrefix はウィジェットライブラリ側のシェイプ名プレフィックス。
	widgetLibraryPrefix = "WGT_Armature_"
	// widgetPrefix はリグへ取り込んだシェイプ名の共通プレフィックス。
	widgetPrefix = "WGT_"
)

// widgetName はアーマチュア名とボーン名からシェイプ名を組み立てる。
func widgetName(armatureName string, boneName string) string {
	return widgetPrefix + armatureName + "_" + boneName
}

// importWidgets はライブラリのシェイプ名をアーマチュア名付きへ改名して返す。
func importWidgets(armatureName string, names []string) []string {
	imported := make([]string, 0, len(names))
	for _, name := range names {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		imported = append(imported, strings.Replace(name, widgetLibraryPrefix, widgetPrefix+armatureName+"_", 1))
	}
	return imported
}

// isShapeExcluded は変形層と機構層のボーンか判定する。
func isShapeExcluded(name string) bool {
	return strings.Contains(name, model.LAYER_DEF.Token()) || strings.Contains(name, model.LAYER_MCH.Token())
}

// shapeTransformOverrides は指IKコントロールの表示位置を先端関節へ移す対応表を返す。
func shapeTransformOverrides() map[string]string {
	overrides := make(map[string]string, len(model.Fingers)*2)
	for _, side := range []model.Side{model.SIDE_LEFT, model.SIDE_RIGHT} {
		for _, finger := range model.Fingers {
			overrides[ikControlName(finger.Role(), side)] = model.LAYER_IK.Name(finger.Joint(fingerTipJoint), side)
		}
	}
	return overrides
}

// assignCustomShapes はウィジェットを取り込み、名前が一致するボーンへカスタムシェイプを割り当てる。
func assignCustomShapes(ctx *RigBuildContext, library []string) (int, error) {
	if err := ctx.requireMode(MODE_POSE); err != nil {
		return 0, err
	}
	if len(library) == 0 {
		ctx.warn(model.RigWarningWidgetMissing, "ウィジェットライブラリが空のためカスタムシェイプを割り当てません")
		return 0, nil
	}

	ctx.rig.Widgets = importWidgets(ctx.rig.Name, library)
	available := make(map[string]struct{}, len(ctx.rig.Widgets))
	for _, name := range ctx.rig.Widgets {
		available[name] = struct{}{}
	}

	overrides := shapeTransformOverrides()
	assigned := 0
	for _, bone := range ctx.rig.Bones.Values {
		if isShapeExcluded(bone.Name) {
			continue
		}
		shape := widgetName(ctx.rig.Name, bone.Name)
		if _, ok := available[shape]; !ok {
			continue
		}
		bone.CustomShape = shape
		bone.ShapeTransform = ""
		if override, ok := overrides[bone.Name]; ok && ctx.rig.Bones.Contains(override) {
			bone.ShapeTransform = override
		}
		assigned++
	}
	logRigDebug("カスタムシェイプ割り当て: %d/%d", assigned, len(ctx.rig.Widgets))
	return assigned, nil
}
