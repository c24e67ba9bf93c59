// 指示: miu200521358
package model

import (
	"github.com/miu200521358/mu_poser2rig/pkg/domain/model/merrors"
)

// Bones は名前で引けるボーンの順序付き集合を表す。
type Bones struct {
	Values []*Bone `json:"bones" yaml:"bones"`

	nameIndex map[string]int
}

// NewBones は空のボーン集合を生成する。
func NewBones() *Bones {
	return &Bones{Values: make([]*Bone, 0)}
}

// Len はボーン数を返す。
func (bs *Bones) Len() int {
	if bs == nil {
		return 0
	}
	return len(bs.Values)
}

// invalidate は名前索引を破棄する。
func (bs *Bones) invalidate() {
	bs.nameIndex = nil
}

// lookup は名前索引から位置を引く。索引が古い場合は作り直す。
func (bs *Bones) lookup(name string) (int, bool) {
	if bs.nameIndex == nil || len(bs.nameIndex) != len(bs.Values) {
		bs.rebuildIndex()
	}
	idx, ok := bs.nameIndex[name]
	if ok && (idx >= len(bs.Values) || bs.Values[idx] == nil || bs.Values[idx].Name != name) {
		bs.rebuildIndex()
		idx, ok = bs.nameIndex[name]
	}
	return idx, ok
}

func (bs *Bones) rebuildIndex() {
	bs.nameIndex = make(map[string]int, len(bs.Values))
	for i, bone := range bs.Values {
		if bone == nil {
			continue
		}
		bs.nameIndex[bone.Name] = i
	}
}

// Contains は名前のボーンが存在するか判定する。
func (bs *Bones) Contains(name string) bool {
	if bs == nil || name == "" {
		return false
	}
	_, ok := bs.lookup(name)
	return ok
}

// GetByName は名前でボーンを取得する。
func (bs *Bones) GetByName(name string) (*Bone, error) {
	if bs == nil {
		return nil, merrors.NewBoneNotFoundError(name)
	}
	idx, ok := bs.lookup(name)
	if !ok {
		return nil, merrors.NewBoneNotFoundError(name)
	}
	return bs.Values[idx], nil
}

// Find は名前でボーンを取得し、存在しない場合はnilを返す。
func (bs *Bones) Find(name string) *Bone {
	bone, err := bs.GetByName(name)
	if err != nil {
		return nil
	}
	return bone
}

// Append はボーンを末尾へ追加する。同名がある場合は失敗する。
func (bs *Bones) Append(bone *Bone) error {
	if bone == nil {
		return nil
	}
	if bs.Contains(bone.Name) {
		return merrors.NewNameConflictError(bone.Name)
	}
	bs.Values = append(bs.Values, bone)
	if bs.nameIndex != nil {
		bs.nameIndex[bone.Name] = len(bs.Values) - 1
	}
	return nil
}

// Names は登録順のボーン名を返す。
func (bs *Bones) Names() []string {
	names := make([]string, 0, bs.Len())
	for _, bone := range bs.Values {
		if bone != nil {
			names = append(names, bone.Name)
		}
	}
	return names
}

// Children は直下の子ボーンを登録順で返す。
func (bs *Bones) Children(name string) []*Bone {
	children := make([]*Bone, 0)
	for _, bone := range bs.Values {
		if bone != nil && bone.ParentName == name {
			children = append(children, bone)
		}
	}
	return children
}

// Parent は親ボーンを返す。親がない場合はnilを返す。
func (bs *Bones) Parent(bone *Bone) *Bone {
	if bone == nil || bone.ParentName == "" {
		return nil
	}
	return bs.Find(bone.ParentName)
}

// IsAncestor は ancestor が name の祖先(自身を含む)か判定する。
func (bs *Bones) IsAncestor(ancestor string, name string) bool {
	visited := make(map[string]struct{})
	for current := name; current != ""; {
		if current == ancestor {
			return true
		}
		if _, ok := visited[current]; ok {
			return false
		}
		visited[current] = struct{}{}
		bone := bs.Find(current)
		if bone == nil {
			return false
		}
		current = bone.ParentName
	}
	return false
}

// SetParent は親を付け替える。循環する親子関係は拒否する。
func (bs *Bones) SetParent(name string, parentName string) error {
	bone, err := bs.GetByName(name)
	if err != nil {
		return err
	}
	if parentName == "" {
		bone.ParentName = ""
		bone.Connected = false
		return nil
	}
	if !bs.Contains(parentName) {
		return merrors.NewBoneNotFoundError(parentName)
	}
	if bs.IsAncestor(name, parentName) {
		return merrors.NewParentCycleError(name, parentName)
	}
	if bone.ParentName != parentName {
		bone.Connected = false
	}
	bone.ParentName = parentName
	return nil
}

// Rename はボーン名を変更し、親子とコンストレイントの参照を追従させる。
func (bs *Bones) Rename(oldName string, newName string) error {
	if oldName == newName {
		return nil
	}
	bone, err := bs.GetByName(oldName)
	if err != nil {
		return err
	}
	if bs.Contains(newName) {
		return merrors.NewNameConflictError(newName)
	}
	bone.Name = newName
	for _, other := range bs.Values {
		if other == nil {
			continue
		}
		if other.ParentName == oldName {
			other.ParentName = newName
		}
		if other.ShapeTransform == oldName {
			other.ShapeTransform = newName
		}
		for _, c := range other.Constraints {
			if c != nil {
				c.renameReference(oldName, newName)
			}
		}
	}
	bs.invalidate()
	return nil
}

// Roots は親を持たないボーンを返す。
func (bs *Bones) Roots() []*Bone {
	roots := make([]*Bone, 0, 1)
	for _, bone := range bs.Values {
		if bone != nil && bone.ParentName == "" {
			roots = append(roots, bone)
		}
	}
	return roots
}
