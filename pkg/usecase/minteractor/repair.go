// 指示: miu200521358
package minteractor

import (
	"strings"

	"github.com/miu200521358/mu_poser2rig/pkg/domain/mmath"
	"github.com/miu200521358/mu_poser2rig/pkg/domain/model"
	"github.com/miu200521358/mu_poser2rig/pkg/domain/model/merrors"
)

// validateSkeleton はリグ生成の前提条件を検証する。文書は変更しない。
func validateSkeleton(rig *model.Rig) error {
	if rig == nil {
		return merrors.NewNotArmatureError("")
	}
	if !rig.IsArmature() {
		return merrors.NewNotArmatureError(rig.ObjectType)
	}
	if rig.Bones.Contains(model.ROLE_PROPERTIES.String()) {
		return merrors.NewAlreadyRiggedError(model.ROLE_PROPERTIES.String())
	}
	missing := make([]string, 0)
	for _, name := range model.RequiredSourceBones {
		if !rig.Bones.Contains(name) {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		return merrors.NewMissingRequiredBonesError(missing)
	}
	return nil
}

// eulerDegreesToQuaternion はXYZオイラー角(度)を X→Y→Z の順に適用する回転へ変換する。
func eulerDegreesToQuaternion(degrees mmath.Vec3) mmath.Quaternion {
	qx := mmath.NewQuaternionFromAxisAngle(mmath.UNIT_X_VEC3, mmath.DegToRad(degrees.X))
	qy := mmath.NewQuaternionFromAxisAngle(mmath.UNIT_Y_VEC3, mmath.DegToRad(degrees.Y))
	qz := mmath.NewQuaternionFromAxisAngle(mmath.UNIT_Z_VEC3, mmath.DegToRad(degrees.Z))
	return qz.Muled(qy).Muled(qx)
}

// normalizeTransforms はオブジェクトの回転とスケールをボーン座標へ焼き込み、表示設定を生成用に切り替える。
func normalizeTransforms(ctx *RigBuildContext) error {
	if err := ctx.requireMode(MODE_OBJECT); err != nil {
		return err
	}
	rig := ctx.rig
	scale := rig.Transform.Scale
	rotation := eulerDegreesToQuaternion(rig.Transform.Rotation)
	apply := func(v mmath.Vec3) mmath.Vec3 {
		scaled := mmath.NewVec3(v.X*scale.X, v.Y*scale.Y, v.Z*scale.Z)
		return rotation.MulVec3(scaled)
	}
	for _, bone := range rig.Bones.Values {
		axisZ := bone.LocalAxisZ()
		bone.Head = apply(bone.Head)
		bone.Tail = apply(bone.Tail)
		bone.AxisZ = apply(axisZ).Normalized()
	}
	rig.Transform.Rotation = mmath.ZERO_VEC3
	rig.Transform.Scale = mmath.NewVec3(1, 1, 1)

	rig.Scene.TransformOrientation = model.ORIENTATION_NORMAL
	rig.Scene.PivotPoint = model.PIVOT_INDIVIDUAL
	rig.Display.ShowInFront = true
	rig.Display.ObjectDisplay = model.OBJECT_DISPLAY_WIRE
	rig.Display.BoneDisplayType = model.DISPLAY_BBONE
	return nil
}

// repairSkeleton は読み込み元スケルトンの不整合を補正し、root/PROPERTIES/下腹部を用意する。
func repairSkeleton(ctx *RigBuildContext) error {
	if err := ctx.requireMode(MODE_EDIT); err != nil {
		return err
	}
	if err := createCollections(ctx); err != nil {
		return err
	}
	if err := fixSourceBones(ctx); err != nil {
		return err
	}
	if err := createRoot(ctx); err != nil {
		return err
	}
	if err := createPropertiesBone(ctx); err != nil {
		return err
	}
	return createLowerAbdomen(ctx)
}

// fixSourceBones は頭の中心化、胸と首の継ぎ目、目とつま先の先端を補正する。
func fixSourceBones(ctx *RigBuildContext) error {
	bones := ctx.rig.Bones
	head, err := ctx.bone(model.ROLE_HEAD.String())
	if err != nil {
		return err
	}
	setBoneHead(bones, head, mmath.NewVec3(0, head.Head.Y, head.Head.Z))

	chest, err := ctx.bone(model.ROLE_CHEST.String())
	if err != nil {
		return err
	}
	neck, err := ctx.bone(model.ROLE_NECK.String())
	if err != nil {
		return err
	}
	midY := (chest.Tail.Y + neck.Head.Y) / 2
	midZ := (chest.Tail.Z + neck.Head.Z) / 2
	setBoneTail(bones, chest, mmath.NewVec3(chest.Tail.X, midY, midZ))
	setBoneHead(bones, neck, mmath.NewVec3(neck.Head.X, midY, midZ))

	extendTipPair(ctx, model.ROLE_EYE)
	extendTipPair(ctx, model.ROLE_TOE)
	return nil
}

// extendTipPair は左側を基準に左右のテールY座標を延長する。
func extendTipPair(ctx *RigBuildContext, role model.Role) {
	left := ctx.rig.Bones.Find(role.SourceLeft())
	if left == nil {
		ctx.warn(model.RigWarningBoneMissing, "先端補正を省略しました: %s", role.SourceLeft())
		return
	}
	tipY := left.Tail.Y + tipExtension
	left.Tail = mmath.NewVec3(left.Tail.X, tipY, left.Tail.Z)
	right := ctx.rig.Bones.Find(role.SourceRight())
	if right == nil {
		ctx.warn(model.RigWarningBoneMissing, "先端補正を省略しました: %s", role.SourceRight())
		return
	}
	right.Tail = mmath.NewVec3(right.Tail.X, tipY, right.Tail.Z)
}

// createRoot は読み込み元のBodyボーンをrootへ作り替える。
func createRoot(ctx *RigBuildContext) error {
	bones := ctx.rig.Bones
	hip, err := ctx.bone(model.ROLE_HIP.String())
	if err != nil {
		return err
	}
	hip.Connected = false

	body, err := ctx.bone(model.ROLE_BODY.String())
	if err != nil {
		return err
	}
	if err := bones.SetParent(body.Name, ""); err != nil {
		return err
	}
	body.Deform = false
	body.Head = mmath.ZERO_VEC3
	body.Tail = mmath.NewVec3(0, rootTailY, 0)
	body.AxisZ = body.DefaultAxisZ()
	body.Color = model.PaletteColor(model.PALETTE_THEME09)
	if err := ctx.rig.RenameBone(body.Name, model.ROLE_ROOT.String()); err != nil {
		return err
	}
	body.AssignCollection(COLLECTION_ROOT)
	return nil
}

// createPropertiesBone はカスタムプロパティを保持するPROPERTIESボーンを作る。
func createPropertiesBone(ctx *RigBuildContext) error {
	spec := newBoneSpec(model.ROLE_PROPERTIES.String(), boneSizeCtrl, mmath.ZERO_VEC3, mmath.NewVec3(0, propertiesTailY, 0))
	spec.Parent = model.ROLE_ROOT.String()
	spec.Color = model.PaletteColor(model.PALETTE_THEME03)
	spec.Collection = COLLECTION_ROOT
	_, err := createBone(ctx, spec)
	return err
}

// createLowerAbdomen はHipのテールとAbdomenのヘッドの間に下腹部ボーンを挿入する。既にある場合は何もしない。
func createLowerAbdomen(ctx *RigBuildContext) error {
	name := model.ROLE_LOWER_ABDOMEN.String()
	if ctx.rig.Bones.Contains(name) {
		ctx.warn(model.RigWarningLowerAbdomenExists, "下腹部ボーンは既に存在します: %s", name)
		return nil
	}
	hip, err := ctx.bone(model.ROLE_HIP.String())
	if err != nil {
		return err
	}
	abdomen, err := ctx.bone(model.ROLE_ABDOMEN.String())
	if err != nil {
		return err
	}
	spec := newBoneSpec(name, boneSizeDef, hip.Tail, abdomen.Head)
	spec.Parent = hip.Name
	spec.Deform = true
	if _, err := createBone(ctx, spec); err != nil {
		return err
	}
	return ctx.rig.Bones.SetParent(abdomen.Name, name)
}

// renameDeformBones は読み込み元ボーンを変形層の名前へ改名し、DEFコレクションへ入れる。
func renameDeformBones(ctx *RigBuildContext) error {
	if err := ctx.requireMode(MODE_EDIT); err != nil {
		return err
	}
	for _, name := range ctx.rig.Bones.Names() {
		renamed := renameForTarget(name, model.LAYER_DEF.Prefix())
		if renamed == "" {
			continue
		}
		if hasSideLetterPrefix(name) {
			ctx.warn(model.RigWarningRenameSideLetter, "先頭1文字で左右を判定して改名しました: %s -> %s", name, renamed)
		}
		if err := ctx.rig.RenameBone(name, renamed); err != nil {
			return err
		}
	}
	for _, bone := range ctx.rig.Bones.Values {
		if strings.HasPrefix(bone.Name, model.LAYER_DEF.Prefix()) {
			bone.AssignCollection(COLLECTION_DEF)
		}
	}
	return recalculateRoll(ctx)
}
