// 指示: miu200521358
package minteractor

import (
	"strings"

	"github.com/miu200521358/mu_poser2rig/pkg/domain/mmath"
	"github.com/miu200521358/mu_poser2rig/pkg/domain/model"
)

const (
	sourceLeftToken  = "Left_"
	sourceRightToken = "Right_"
)

// renameForTarget は元スケルトンのボーン名をリグの命名規則へ変換する。変換対象外の場合は空文字を返す。
func renameForTarget(name string, prefix string) string {
	if strings.Contains(name, string(model.ROLE_ROOT)) || strings.Contains(name, string(model.ROLE_PROPERTIES)) {
		return ""
	}
	renamed := name
	// トークンの位置によらず先頭からトークン長だけ取り除く。
	if strings.Contains(name, sourceLeftToken) {
		renamed = name[len(sourceLeftToken):] + model.SIDE_LEFT.String()
	} else if strings.Contains(name, sourceRightToken) {
		renamed = name[len(sourceRightToken):] + model.SIDE_RIGHT.String()
	}
	// 先頭1文字の l/r 判定は元の名前に対して行い、上の結果を上書きする。
	if len(name) > 0 {
		switch name[0] {
		case 'l':
			renamed = name[1:] + model.SIDE_LEFT.String()
		case 'r':
			renamed = name[1:] + model.SIDE_RIGHT.String()
		}
	}
	return prefix + renamed
}

// hasSideLetterPrefix は先頭1文字の左右判定に該当する名前か判定する。
func hasSideLetterPrefix(name string) bool {
	return len(name) > 0 && (name[0] == 'l' || name[0] == 'r')
}

// BoneSpec はボーン生成パラメータを表す。
type BoneSpec struct {
	Name       string
	Size       float64
	Head       mmath.Vec3
	Tail       mmath.Vec3
	Length     float64
	Parent     string
	Display    model.BoneDisplayType
	Deform     bool
	Connected  bool
	Color      model.BoneColor
	Collection string
}

// newBoneSpec は既定値を埋めた生成パラメータを返す。
func newBoneSpec(name string, size float64, head mmath.Vec3, tail mmath.Vec3) BoneSpec {
	return BoneSpec{
		Name:    name,
		Size:    size,
		Head:    head,
		Tail:    tail,
		Display: model.DISPLAY_ARMATURE_DEFINED,
		Color:   model.PaletteColor(model.PALETTE_CUSTOM),
	}
}

// createBone は編集モードでボーンを1本生成して親子付けする。Length が正の場合はヘッドから長さを合わせる。
func createBone(ctx *RigBuildContext, spec BoneSpec) (*model.Bone, error) {
	if err := ctx.requireMode(MODE_EDIT); err != nil {
		return nil, err
	}
	bone := model.NewBone(spec.Name, spec.Head, spec.Tail)
	if spec.Length > 0 {
		bone.SetLength(spec.Length)
		bone.AxisZ = bone.DefaultAxisZ()
	}
	bone.SetBBoneSize(spec.Size)
	bone.Deform = spec.Deform
	bone.DisplayType = spec.Display
	bone.Color = spec.Color
	if err := ctx.rig.Bones.Append(bone); err != nil {
		return nil, err
	}
	if spec.Parent != "" {
		if err := ctx.rig.Bones.SetParent(spec.Name, spec.Parent); err != nil {
			return nil, err
		}
		if spec.Connected {
			// 接続時はヘッドを親のテールへ吸着させる。
			parent := ctx.rig.Bones.Parent(bone)
			bone.Head = parent.Tail
			bone.Connected = true
		}
	}
	if spec.Collection != "" {
		if _, err := ctx.rig.Collections.Get(spec.Collection); err != nil {
			return nil, err
		}
		bone.AssignCollection(spec.Collection)
	}
	return bone, nil
}

// alignOrientation は source をヘッド中心に回転させ、向きを target に揃える。既存のロール成分は保つ。
func alignOrientation(source *model.Bone, target *model.Bone) {
	if source == nil || target == nil {
		return
	}
	from := source.Direction()
	to := target.Direction()
	if from.IsZero() || to.IsZero() {
		return
	}
	length := source.Length()
	source.Rotate(mmath.NewQuaternionBetween(from, to))
	source.Tail = source.Head.Added(to.MuledScalar(length))
}

// translateAlongOwnAxis はボーンを自身の向きに沿って distance だけ平行移動する。
func translateAlongOwnAxis(bone *model.Bone, distance float64) {
	if bone == nil {
		return
	}
	bone.Translate(bone.Direction().MuledScalar(distance))
}

// setBoneHead はヘッドを移動する。接続中なら親のテールと兄弟の接続ヘッドも追従させる。
func setBoneHead(bones *model.Bones, bone *model.Bone, head mmath.Vec3) {
	bone.Head = head
	if !bone.Connected {
		return
	}
	if parent := bones.Parent(bone); parent != nil {
		setBoneTail(bones, parent, head)
	}
}

// setBoneTail はテールを移動する。接続中の子のヘッドも追従させる。
func setBoneTail(bones *model.Bones, bone *model.Bone, tail mmath.Vec3) {
	bone.Tail = tail
	for _, child := range bones.Children(bone.Name) {
		if child.Connected {
			child.Head = tail
		}
	}
}

// recalculateRoll は全ボーンのロールをグローバル+Z基準で再計算する。
func recalculateRoll(ctx *RigBuildContext) error {
	if err := ctx.requireMode(MODE_EDIT); err != nil {
		return err
	}
	for _, bone := range ctx.rig.Bones.Values {
		bone.AlignRollToAxis(mmath.UNIT_Z_VEC3)
	}
	return nil
}
