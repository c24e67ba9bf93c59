// 指示: miu200521358
package model

import (
	"fmt"
	"math"

	"github.com/miu200521358/mu_poser2rig/pkg/domain/mmath"
)

// BoneDisplayType はビューポート上のボーン表示形状を表す。
type BoneDisplayType string

const (
	DISPLAY_ARMATURE_DEFINED BoneDisplayType = "ARMATURE_DEFINED"
	DISPLAY_OCTAHEDRAL       BoneDisplayType = "OCTAHEDRAL"
	DISPLAY_STICK            BoneDisplayType = "STICK"
	DISPLAY_BBONE            BoneDisplayType = "BBONE"
	DISPLAY_WIRE             BoneDisplayType = "WIRE"
)

// RotationMode はポーズボーンの回転表現を表す。
type RotationMode string

const (
	ROTATION_QUATERNION RotationMode = "QUATERNION"
	ROTATION_XYZ        RotationMode = "XYZ"
)

// Bone はアーマチュア内の1ボーンを表す。親やターゲットは名前で参照する。
type Bone struct {
	Name           string            `json:"name" yaml:"name"`
	Head           mmath.Vec3        `json:"head" yaml:"head"`
	Tail           mmath.Vec3        `json:"tail" yaml:"tail"`
	AxisZ          mmath.Vec3        `json:"axis_z" yaml:"axis_z"`
	ParentName     string            `json:"parent,omitempty" yaml:"parent,omitempty"`
	Connected      bool              `json:"connected,omitempty" yaml:"connected,omitempty"`
	Deform         bool              `json:"deform" yaml:"deform"`
	BBoneX         float64           `json:"bbone_x" yaml:"bbone_x"`
	BBoneZ         float64           `json:"bbone_z" yaml:"bbone_z"`
	DisplayType    BoneDisplayType   `json:"display_type,omitempty" yaml:"display_type,omitempty"`
	Color          BoneColor         `json:"color" yaml:"color"`
	Collections    []string          `json:"collections,omitempty" yaml:"collections,omitempty"`
	RotationMode   RotationMode      `json:"rotation_mode,omitempty" yaml:"rotation_mode,omitempty"`
	LockLocation   [3]bool           `json:"lock_location" yaml:"lock_location"`
	LockRotation   [3]bool           `json:"lock_rotation" yaml:"lock_rotation"`
	LockScale      [3]bool           `json:"lock_scale" yaml:"lock_scale"`
	Hidden         bool              `json:"hidden,omitempty" yaml:"hidden,omitempty"`
	Constraints    []*Constraint     `json:"constraints,omitempty" yaml:"constraints,omitempty"`
	CustomShape    string            `json:"custom_shape,omitempty" yaml:"custom_shape,omitempty"`
	ShapeTransform string            `json:"shape_transform,omitempty" yaml:"shape_transform,omitempty"`
	Properties     []*CustomProperty `json:"properties,omitempty" yaml:"properties,omitempty"`
}

// NewBone は名前と位置からボーンを生成する。
func NewBone(name string, head mmath.Vec3, tail mmath.Vec3) *Bone {
	bone := &Bone{
		Name:         name,
		Head:         head,
		Tail:         tail,
		DisplayType:  DISPLAY_ARMATURE_DEFINED,
		Color:        PaletteColor(PALETTE_DEFAULT),
		RotationMode: ROTATION_QUATERNION,
	}
	bone.AxisZ = bone.DefaultAxisZ()
	return bone
}

// Side はボーン名末尾の左右を返す。
func (b *Bone) Side() Side {
	if b == nil {
		return SIDE_NONE
	}
	return SideOf(b.Name)
}

// Vector はヘッドからテールへのベクトルを返す。
func (b *Bone) Vector() mmath.Vec3 {
	return b.Tail.Subed(b.Head)
}

// Direction はヘッドからテールへの単位ベクトルを返す。
func (b *Bone) Direction() mmath.Vec3 {
	return b.Vector().Normalized()
}

// Length はボーン長を返す。
func (b *Bone) Length() float64 {
	return b.Vector().Length()
}

// SetLength はヘッドを固定し、向きを保ったままテール位置で長さを変える。長さ0のボーンは変更しない。
func (b *Bone) SetLength(length float64) {
	dir := b.Direction()
	if dir.IsZero() {
		return
	}
	b.Tail = b.Head.Added(dir.MuledScalar(length))
}

// SetBBoneSize は断面サイズを両軸同値で設定する。
func (b *Bone) SetBBoneSize(size float64) {
	b.BBoneX = size
	b.BBoneZ = size
}

// DefaultAxisZ はロール0のときのローカルZ軸を返す。
func (b *Bone) DefaultAxisZ() mmath.Vec3 {
	dir := b.Direction()
	if dir.IsZero() {
		return mmath.UNIT_Z_VEC3
	}
	return mmath.NewQuaternionBetween(mmath.UNIT_Y_VEC3, dir).MulVec3(mmath.UNIT_Z_VEC3).Normalized()
}

// LocalAxisZ はボーン方向と直交化したローカルZ軸を返す。
func (b *Bone) LocalAxisZ() mmath.Vec3 {
	dir := b.Direction()
	if dir.IsZero() {
		return mmath.UNIT_Z_VEC3
	}
	z := b.AxisZ.Subed(dir.MuledScalar(b.AxisZ.Dot(dir)))
	if z.Length() < 1e-6 {
		return b.DefaultAxisZ()
	}
	return z.Normalized()
}

// Roll はボーン方向まわりのロール角(ラジアン)を返す。
func (b *Bone) Roll() float64 {
	dir := b.Direction()
	if dir.IsZero() {
		return 0
	}
	base := b.DefaultAxisZ()
	actual := b.LocalAxisZ()
	return math.Atan2(base.Cross(actual).Dot(dir), base.Dot(actual))
}

// SetRoll はロール角(ラジアン)からローカルZ軸を設定する。
func (b *Bone) SetRoll(radians float64) {
	dir := b.Direction()
	if dir.IsZero() {
		return
	}
	b.AxisZ = mmath.NewQuaternionFromAxisAngle(dir, radians).MulVec3(b.DefaultAxisZ()).Normalized()
}

// AlignRollToAxis はローカルZ軸を指定軸へ最も近づけるロールに再計算する。
func (b *Bone) AlignRollToAxis(axis mmath.Vec3) {
	dir := b.Direction()
	if dir.IsZero() {
		return
	}
	z := axis.Subed(dir.MuledScalar(axis.Dot(dir)))
	if z.Length() < 1e-6 {
		b.AxisZ = b.DefaultAxisZ()
		return
	}
	b.AxisZ = z.Normalized()
}

// Rotate はヘッドを中心にボーンを回転させる。ローカルZ軸も同じ回転を受ける。
func (b *Bone) Rotate(q mmath.Quaternion) {
	b.AxisZ = q.MulVec3(b.LocalAxisZ()).Normalized()
	b.Tail = b.Head.Added(q.MulVec3(b.Vector()))
}

// Translate はヘッドとテールを同じだけ移動する。
func (b *Bone) Translate(offset mmath.Vec3) {
	b.Head = b.Head.Added(offset)
	b.Tail = b.Tail.Added(offset)
}

// AddConstraint はコンストレイントを追加する。同名がある場合は連番を付与する。
func (b *Bone) AddConstraint(c *Constraint) *Constraint {
	if c == nil {
		return nil
	}
	base := c.Name
	for i := 1; b.FindConstraint(c.Name) != nil; i++ {
		c.Name = fmt.Sprintf("%s.%03d", base, i)
	}
	b.Constraints = append(b.Constraints, c)
	return c
}

// FindConstraint は名前でコンストレイントを探す。
func (b *Bone) FindConstraint(name string) *Constraint {
	if b == nil {
		return nil
	}
	for _, c := range b.Constraints {
		if c != nil && c.Name == name {
			return c
		}
	}
	return nil
}

// ConstraintsByType は種類が一致するコンストレイントを返す。
func (b *Bone) ConstraintsByType(constraintType ConstraintType) []*Constraint {
	if b == nil {
		return nil
	}
	found := make([]*Constraint, 0)
	for _, c := range b.Constraints {
		if c != nil && c.Type == constraintType {
			found = append(found, c)
		}
	}
	return found
}

// InCollection はボーンコレクションへの所属を判定する。
func (b *Bone) InCollection(name string) bool {
	for _, collection := range b.Collections {
		if collection == name {
			return true
		}
	}
	return false
}

// AssignCollection はボーンコレクションへ所属させる。
func (b *Bone) AssignCollection(name string) {
	if name == "" || b.InCollection(name) {
		return
	}
	b.Collections = append(b.Collections, name)
}

// UnassignCollection はボーンコレクションから外す。
func (b *Bone) UnassignCollection(name string) {
	kept := b.Collections[:0]
	for _, collection := range b.Collections {
		if collection != name {
			kept = append(kept, collection)
		}
	}
	b.Collections = kept
}

// Property は名前でカスタムプロパティを探す。
func (b *Bone) Property(name string) *CustomProperty {
	if b == nil {
		return nil
	}
	for _, p := range b.Properties {
		if p != nil && p.Name == name {
			return p
		}
	}
	return nil
}

// SetProperty はカスタムプロパティを追加または置き換える。
func (b *Bone) SetProperty(property *CustomProperty) {
	if property == nil {
		return
	}
	for i, p := range b.Properties {
		if p != nil && p.Name == property.Name {
			b.Properties[i] = property
			return
		}
	}
	b.Properties = append(b.Properties, property)
}
