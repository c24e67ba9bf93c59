// 指示: miu200521358
package model

import (
	"fmt"
	"strings"

	"github.com/miu200521358/mu_poser2rig/pkg/domain/mmath"
	"github.com/miu200521358/mu_poser2rig/pkg/domain/model/merrors"
	"github.com/tiendc/go-deepcopy"
)

const (
	// OBJECT_TYPE_ARMATURE はアーマチュアオブジェクトの種別名。
	OBJECT_TYPE_ARMATURE = "ARMATURE"
)

// TransformOrientation はシーンの変換座標系を表す。
type TransformOrientation string

const (
	ORIENTATION_GLOBAL TransformOrientation = "GLOBAL"
	ORIENTATION_NORMAL TransformOrientation = "NORMAL"
)

// PivotPoint はシーンのピボット基準を表す。
type PivotPoint string

const (
	PIVOT_MEDIAN     PivotPoint = "MEDIAN_POINT"
	PIVOT_INDIVIDUAL PivotPoint = "INDIVIDUAL_ORIGINS"
)

// ObjectDisplay はオブジェクトの表示方法を表す。
type ObjectDisplay string

const (
	OBJECT_DISPLAY_SOLID ObjectDisplay = "SOLID"
	OBJECT_DISPLAY_WIRE  ObjectDisplay = "WIRE"
)

// ObjectTransform はアーマチュアオブジェクトのトランスフォームを表す。回転はXYZオイラー角(度)。
type ObjectTransform struct {
	Location mmath.Vec3 `json:"location" yaml:"location"`
	Rotation mmath.Vec3 `json:"rotation" yaml:"rotation"`
	Scale    mmath.Vec3 `json:"scale" yaml:"scale"`
}

// SceneSettings はリグ生成中に切り替えるシーン設定を表す。
type SceneSettings struct {
	TransformOrientation TransformOrientation `json:"transform_orientation" yaml:"transform_orientation"`
	PivotPoint           PivotPoint           `json:"pivot_point" yaml:"pivot_point"`
}

// RigDisplay はアーマチュアの表示設定を表す。
type RigDisplay struct {
	ShowInFront     bool            `json:"show_in_front" yaml:"show_in_front"`
	ObjectDisplay   ObjectDisplay   `json:"object_display" yaml:"object_display"`
	BoneDisplayType BoneDisplayType `json:"bone_display_type" yaml:"bone_display_type"`
}

// RigWarning はリグ生成中に記録した警告を表す。
type RigWarning struct {
	ID     string `json:"id" yaml:"id"`
	Detail string `json:"detail" yaml:"detail"`
}

// Rig はアーマチュアオブジェクトとそのボーン構成を表す。
type Rig struct {
	Name        string           `json:"name" yaml:"name"`
	ObjectType  string           `json:"object_type" yaml:"object_type"`
	Transform   ObjectTransform  `json:"transform" yaml:"transform"`
	Scene       SceneSettings    `json:"scene" yaml:"scene"`
	Display     RigDisplay       `json:"display" yaml:"display"`
	Bones       *Bones           `json:"bones" yaml:"bones"`
	Collections *BoneCollections `json:"collections" yaml:"collections"`
	Drivers     []*Driver        `json:"drivers,omitempty" yaml:"drivers,omitempty"`
	Widgets     []string         `json:"widgets,omitempty" yaml:"widgets,omitempty"`
	Warnings    []RigWarning     `json:"warnings,omitempty" yaml:"warnings,omitempty"`
}

// NewRig は空のアーマチュアを生成する。
func NewRig(name string) *Rig {
	return &Rig{
		Name:       name,
		ObjectType: OBJECT_TYPE_ARMATURE,
		Transform: ObjectTransform{
			Scale: mmath.NewVec3(1, 1, 1),
		},
		Scene: SceneSettings{
			TransformOrientation: ORIENTATION_GLOBAL,
			PivotPoint:           PIVOT_MEDIAN,
		},
		Display: RigDisplay{
			ObjectDisplay:   OBJECT_DISPLAY_SOLID,
			BoneDisplayType: DISPLAY_OCTAHEDRAL,
		},
		Bones:       NewBones(),
		Collections: NewBoneCollections(),
	}
}

// IsArmature はアーマチュアオブジェクトか判定する。
func (r *Rig) IsArmature() bool {
	return r != nil && r.ObjectType == OBJECT_TYPE_ARMATURE
}

// Clone はリグを深くコピーする。
func (r *Rig) Clone() (*Rig, error) {
	if r == nil {
		return nil, fmt.Errorf("複製対象のリグが未設定です")
	}
	cloned := &Rig{}
	if err := deepcopy.Copy(cloned, *r); err != nil {
		return nil, fmt.Errorf("リグの複製に失敗しました: %w", err)
	}
	if cloned.Bones == nil {
		cloned.Bones = NewBones()
	}
	if cloned.Collections == nil {
		cloned.Collections = NewBoneCollections()
	}
	cloned.Bones.invalidate()
	return cloned, nil
}

// Bone は名前でボーンを取得する。
func (r *Rig) Bone(name string) (*Bone, error) {
	return r.Bones.GetByName(name)
}

// RenameBone はボーン名を変更し、ドライバーの参照も追従させる。
func (r *Rig) RenameBone(oldName string, newName string) error {
	if err := r.Bones.Rename(oldName, newName); err != nil {
		return err
	}
	oldPath := propertyBonePath(oldName)
	for _, d := range r.Drivers {
		if d == nil {
			continue
		}
		if d.BoneName == oldName {
			d.BoneName = newName
		}
		for i := range d.Variables {
			if strings.HasPrefix(d.Variables[i].DataPath, oldPath) {
				d.Variables[i].DataPath = propertyBonePath(newName) + strings.TrimPrefix(d.Variables[i].DataPath, oldPath)
			}
		}
	}
	return nil
}

// AddWarning は警告を記録する。
func (r *Rig) AddWarning(id string, format string, params ...any) {
	detail := format
	if len(params) > 0 {
		detail = fmt.Sprintf(format, params...)
	}
	r.Warnings = append(r.Warnings, RigWarning{ID: id, Detail: detail})
}

// HasWarning は指定IDの警告が記録されているか判定する。
func (r *Rig) HasWarning(id string) bool {
	for _, w := range r.Warnings {
		if w.ID == id {
			return true
		}
	}
	return false
}

// PropertiesBone はカスタムプロパティを保持するPROPERTIESボーンを返す。
func (r *Rig) PropertiesBone() (*Bone, error) {
	return r.Bones.GetByName(ROLE_PROPERTIES.String())
}

// CustomPropertyValue はPROPERTIESボーンのプロパティ値を返す。スカラーは添字-1で参照する。
func (r *Rig) CustomPropertyValue(name string, index int) (float64, error) {
	property, err := r.customProperty(ROLE_PROPERTIES.String(), name)
	if err != nil {
		return 0, err
	}
	return property.Value(index)
}

// SetCustomPropertyValue はPROPERTIESボーンのプロパティ値を範囲内へ丸めて書き込む。
func (r *Rig) SetCustomPropertyValue(name string, index int, value float64) error {
	property, err := r.customProperty(ROLE_PROPERTIES.String(), name)
	if err != nil {
		return err
	}
	return property.SetValue(index, value)
}

func (r *Rig) customProperty(boneName string, name string) (*CustomProperty, error) {
	bone, err := r.Bones.GetByName(boneName)
	if err != nil {
		return nil, err
	}
	property := bone.Property(name)
	if property == nil {
		return nil, merrors.NewPropertyNotFoundError(name)
	}
	return property, nil
}

// ValidateTree は単一ルートの木構造であることを検証する。
func (r *Rig) ValidateTree() error {
	roots := r.Bones.Roots()
	if len(roots) != 1 {
		names := make([]string, 0, len(roots))
		for _, root := range roots {
			names = append(names, root.Name)
		}
		return fmt.Errorf("ルートボーンが1本ではありません: %s", strings.Join(names, ", "))
	}
	for _, bone := range r.Bones.Values {
		if bone.ParentName == "" {
			continue
		}
		if !r.Bones.Contains(bone.ParentName) {
			return fmt.Errorf("親ボーンが存在しません: bone=%s parent=%s: %w",
				bone.Name, bone.ParentName, merrors.NewBoneNotFoundError(bone.ParentName))
		}
		if r.Bones.IsAncestor(bone.Name, bone.ParentName) {
			return merrors.NewParentCycleError(bone.Name, bone.ParentName)
		}
	}
	return nil
}
