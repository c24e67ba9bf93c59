// 指示: miu200521358
package model

import "github.com/miu200521358/mu_poser2rig/pkg/domain/model/merrors"

// BoneCollection は表示切り替え用のボーンのまとまりを表す。
type BoneCollection struct {
	Name       string `json:"name" yaml:"name"`
	ParentName string `json:"parent,omitempty" yaml:"parent,omitempty"`
	Visible    bool   `json:"visible" yaml:"visible"`
}

// BoneCollections は階層つきボーンコレクションの集合を表す。
type BoneCollections struct {
	Values []*BoneCollection `json:"collections" yaml:"collections"`
}

// NewBoneCollections は空のボーンコレクション集合を生成する。
func NewBoneCollections() *BoneCollections {
	return &BoneCollections{Values: make([]*BoneCollection, 0)}
}

// Get は名前でボーンコレクションを取得する。
func (cs *BoneCollections) Get(name string) (*BoneCollection, error) {
	if cs != nil {
		for _, c := range cs.Values {
			if c != nil && c.Name == name {
				return c, nil
			}
		}
	}
	return nil, merrors.NewCollectionNotFoundError(name)
}

// Contains は名前のボーンコレクションが存在するか判定する。
func (cs *BoneCollections) Contains(name string) bool {
	_, err := cs.Get(name)
	return err == nil
}

// Ensure はボーンコレクションを取得し、なければ親の下に作成する。
func (cs *BoneCollections) Ensure(name string, parentName string) (*BoneCollection, error) {
	if existing, err := cs.Get(name); err == nil {
		return existing, nil
	}
	if parentName != "" && !cs.Contains(parentName) {
		return nil, merrors.NewCollectionNotFoundError(parentName)
	}
	c := &BoneCollection{Name: name, ParentName: parentName, Visible: true}
	cs.Values = append(cs.Values, c)
	return c, nil
}

// Children は直下の子コレクションを返す。
func (cs *BoneCollections) Children(name string) []*BoneCollection {
	children := make([]*BoneCollection, 0)
	for _, c := range cs.Values {
		if c != nil && c.ParentName == name {
			children = append(children, c)
		}
	}
	return children
}

// IsVisible は祖先を含めて表示状態か判定する。
func (cs *BoneCollections) IsVisible(name string) bool {
	seen := make(map[string]struct{})
	for current := name; current != ""; {
		if _, ok := seen[current]; ok {
			return false
		}
		seen[current] = struct{}{}
		c, err := cs.Get(current)
		if err != nil || !c.Visible {
			return false
		}
		current = c.ParentName
	}
	return true
}
