// 指示: miu200521358
package minteractor

import (
	"fmt"

	"github.com/miu200521358/mu_poser2rig/pkg/domain/model"
	"github.com/tiendc/go-deepcopy"
)

// MirrorRig は左側(.L)のボーンを右側(.R)へX反転で複製した新しいリグを返す。元のリグは変更しない。
// 既存の右側ボーンは左側の内容で上書きする。参照名は反対側が存在する場合のみ左右を入れ替える。
func MirrorRig(rig *model.Rig) (*model.Rig, error) {
	mirrored, err := rig.Clone()
	if err != nil {
		return nil, err
	}
	if err := mirrorInPlace(mirrored); err != nil {
		return nil, err
	}
	return mirrored, nil
}

// mirrorInPlace はリグの左側ボーンを右側へ反映する。
func mirrorInPlace(rig *model.Rig) error {
	lefts := make([]*model.Bone, 0)
	exists := make(map[string]struct{}, rig.Bones.Len())
	for _, bone := range rig.Bones.Values {
		exists[bone.Name] = struct{}{}
		if bone.Side() == model.SIDE_LEFT {
			lefts = append(lefts, bone)
		}
	}
	for _, bone := range lefts {
		exists[model.MirrorName(bone.Name)] = struct{}{}
	}
	for _, widget := range rig.Widgets {
		exists[widget] = struct{}{}
	}
	ref := func(name string) string {
		if name == "" || model.SideOf(name) == model.SIDE_NONE {
			return name
		}
		mirroredName := model.MirrorName(name)
		if _, ok := exists[mirroredName]; ok {
			return mirroredName
		}
		return name
	}

	for _, left := range lefts {
		right, err := mirrorBone(left, ref)
		if err != nil {
			return err
		}
		if existing := rig.Bones.Find(right.Name); existing != nil {
			*existing = *right
			continue
		}
		if err := rig.Bones.Append(right); err != nil {
			return err
		}
	}

	drivers := append([]*model.Driver(nil), rig.Drivers...)
	for _, d := range drivers {
		if d == nil || model.SideOf(d.BoneName) != model.SIDE_LEFT {
			continue
		}
		rig.AddDriver(mirrorDriver(d, ref))
	}
	return rig.ValidateTree()
}

// mirrorBone はボーンをX反転した右側の複製を作る。
func mirrorBone(left *model.Bone, ref func(string) string) (*model.Bone, error) {
	right := &model.Bone{}
	if err := deepcopy.Copy(right, *left); err != nil {
		return nil, fmt.Errorf("ボーンの複製に失敗しました: %s: %w", left.Name, err)
	}
	right.Name = model.MirrorName(left.Name)
	right.Head = left.Head.MirroredX()
	right.Tail = left.Tail.MirroredX()
	right.AxisZ = left.LocalAxisZ().MirroredX()
	right.ParentName = ref(left.ParentName)
	right.ShapeTransform = ref(left.ShapeTransform)
	right.CustomShape = ref(left.CustomShape)
	for _, c := range right.Constraints {
		mirrorConstraint(c, ref)
	}
	return right, nil
}

// mirrorConstraint はコンストレイントの参照名と左右で符号が反転する範囲を反映する。
func mirrorConstraint(c *model.Constraint, ref func(string) string) {
	if c == nil {
		return
	}
	c.Target = ref(c.Target)
	if c.IK != nil {
		c.IK.PoleTarget = ref(c.IK.PoleTarget)
	}
	switch c.Type {
	case model.CONSTRAINT_LIMIT_ROTATION:
		for _, axis := range []int{1, 2} {
			limit := c.Limits[axis]
			limit.Min, limit.Max = -c.Limits[axis].Max, -c.Limits[axis].Min
			limit.UseMin, limit.UseMax = c.Limits[axis].UseMax, c.Limits[axis].UseMin
			c.Limits[axis] = limit
		}
	case model.CONSTRAINT_TRANSFORM:
		if c.Transform == nil {
			return
		}
		negateMirroredAxes(c.Transform.MapFrom, &c.Transform.FromMin, &c.Transform.FromMax)
		negateMirroredAxes(c.Transform.MapTo, &c.Transform.ToMin, &c.Transform.ToMax)
	}
}

// negateMirroredAxes はX反転で符号が変わる軸の範囲を反転する。回転はY/Z、移動はXが対象。
func negateMirroredAxes(mapping model.TransformMap, min *[3]float64, max *[3]float64) {
	var axes []int
	switch mapping {
	case model.MAP_ROTATION:
		axes = []int{1, 2}
	case model.MAP_LOCATION:
		axes = []int{0}
	default:
		return
	}
	for _, axis := range axes {
		min[axis] = -min[axis]
		max[axis] = -max[axis]
	}
}

// mirrorDriver はドライバーの対象ボーン名を左右入れ替えた複製を作る。
func mirrorDriver(d *model.Driver, ref func(string) string) *model.Driver {
	mirrored := *d
	mirrored.BoneName = ref(d.BoneName)
	mirrored.Variables = append([]model.DriverVariable(nil), d.Variables...)
	return &mirrored
}

// mirrorLeftSide は生成中のリグを左右反転し、チェーン登録簿へ右側を追加する。
func mirrorLeftSide(ctx *RigBuildContext) error {
	if err := ctx.requireMode(MODE_EDIT); err != nil {
		return err
	}
	if err := mirrorInPlace(ctx.rig); err != nil {
		return err
	}
	ctx.chains.MirrorSide(model.SIDE_LEFT, ctx.rig.Bones.Contains)
	return nil
}
