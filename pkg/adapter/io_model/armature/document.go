// 指示: miu200521358
package armature

import (
	"github.com/miu200521358/mu_poser2rig/pkg/domain/mmath"
	"github.com/miu200521358/mu_poser2rig/pkg/domain/model"
	"github.com/miu200521358/mu_poser2rig/pkg/domain/model/merrors"
)

// armatureDocument はスケルトン文書のファイル表現を表す。ボーンとコレクションは平坦な配列で持つ。
type armatureDocument struct {
	Name        string                  `json:"name" yaml:"name"`
	ObjectType  string                  `json:"object_type,omitempty" yaml:"object_type,omitempty"`
	Transform   *model.ObjectTransform  `json:"transform,omitempty" yaml:"transform,omitempty"`
	Scene       *model.SceneSettings    `json:"scene,omitempty" yaml:"scene,omitempty"`
	Display     *model.RigDisplay       `json:"display,omitempty" yaml:"display,omitempty"`
	Bones       []*model.Bone           `json:"bones" yaml:"bones"`
	Collections []*model.BoneCollection `json:"collections,omitempty" yaml:"collections,omitempty"`
	Drivers     []*model.Driver         `json:"drivers,omitempty" yaml:"drivers,omitempty"`
	Widgets     []string                `json:"widgets,omitempty" yaml:"widgets,omitempty"`
	Warnings    []model.RigWarning      `json:"warnings,omitempty" yaml:"warnings,omitempty"`
}

// newArmatureDocument はリグを文書表現へ変換する。
func newArmatureDocument(rig *model.Rig) armatureDocument {
	transform := rig.Transform
	scene := rig.Scene
	display := rig.Display
	doc := armatureDocument{
		Name:       rig.Name,
		ObjectType: rig.ObjectType,
		Transform:  &transform,
		Scene:      &scene,
		Display:    &display,
		Drivers:    rig.Drivers,
		Widgets:    rig.Widgets,
		Warnings:   rig.Warnings,
	}
	if rig.Bones != nil {
		doc.Bones = rig.Bones.Values
	}
	if rig.Collections != nil {
		doc.Collections = rig.Collections.Values
	}
	return doc
}

// toRig は文書表現をリグへ変換する。省略された設定はアーマチュアの既定値で補う。
func (doc armatureDocument) toRig(fallbackName string) (*model.Rig, error) {
	name := doc.Name
	if name == "" {
		name = fallbackName
	}
	rig := model.NewRig(name)
	if doc.ObjectType != "" {
		rig.ObjectType = doc.ObjectType
	}
	if doc.Transform != nil {
		rig.Transform = *doc.Transform
		if rig.Transform.Scale.IsZero() {
			rig.Transform.Scale = mmath.NewVec3(1, 1, 1)
		}
	}
	if doc.Scene != nil {
		rig.Scene = *doc.Scene
	}
	if doc.Display != nil {
		rig.Display = *doc.Display
	}

	for _, bone := range doc.Bones {
		if bone == nil {
			continue
		}
		if bone.Name == "" {
			return nil, merrors.NewIoParseFailed("名前のないボーンがあります", nil)
		}
		normalizeBone(bone)
		if err := rig.Bones.Append(bone); err != nil {
			return nil, err
		}
	}
	for _, bone := range rig.Bones.Values {
		if bone.ParentName != "" && !rig.Bones.Contains(bone.ParentName) {
			return nil, merrors.NewBoneNotFoundError(bone.ParentName)
		}
	}
	for _, c := range doc.Collections {
		if c == nil || c.Name == "" {
			continue
		}
		rig.Collections.Values = append(rig.Collections.Values, c)
	}
	rig.Drivers = doc.Drivers
	rig.Widgets = doc.Widgets
	rig.Warnings = doc.Warnings
	return rig, nil
}

// normalizeBone はファイルで省略されたボーンの既定値を補う。
func normalizeBone(bone *model.Bone) {
	if bone.AxisZ.IsZero() {
		bone.AxisZ = bone.DefaultAxisZ()
	}
	if bone.DisplayType == "" {
		bone.DisplayType = model.DISPLAY_ARMATURE_DEFINED
	}
	if bone.Color.Palette == "" {
		bone.Color = model.PaletteColor(model.PALETTE_DEFAULT)
	}
	if bone.RotationMode == "" {
		bone.RotationMode = model.ROTATION_QUATERNION
	}
}
