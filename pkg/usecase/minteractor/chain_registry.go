// 指示: miu200521358
package minteractor

import "github.com/miu200521358/mu_poser2rig/pkg/domain/model"

// ChainKey は層・役割・左右でボーンを特定するキーを表す。
type ChainKey struct {
	Layer model.Layer
	Role  model.Role
	Side  model.Side
}

// chainID はチェーン単位の登録キーを表す。
type chainID struct {
	Kind   model.ChainKind
	Finger model.Finger
	Layer  model.Layer
	Side   model.Side
}

// ChainRegistry は生成したチェーンの役割からボーン名への対応を保持する。
type ChainRegistry struct {
	bones  map[ChainKey]string
	chains map[chainID][]model.Role
}

// NewChainRegistry は空の登録簿を生成する。
func NewChainRegistry() *ChainRegistry {
	return &ChainRegistry{
		bones:  make(map[ChainKey]string),
		chains: make(map[chainID][]model.Role),
	}
}

// Register はチェーンの生成結果を登録する。
func (r *ChainRegistry) Register(kind model.ChainKind, finger model.Finger, layer model.Layer, side model.Side, roles []model.Role, names []string) {
	id := chainID{Kind: kind, Finger: finger, Layer: layer, Side: side}
	r.chains[id] = append([]model.Role(nil), roles...)
	for i, role := range roles {
		if i < len(names) {
			r.bones[ChainKey{Layer: layer, Role: role, Side: side}] = names[i]
		}
	}
}

// Lookup は層・役割・左右からボーン名を引く。
func (r *ChainRegistry) Lookup(layer model.Layer, role model.Role, side model.Side) (string, bool) {
	name, ok := r.bones[ChainKey{Layer: layer, Role: role, Side: side}]
	return name, ok
}

// Chain は登録済みチェーンのボーン名を根元から順に返す。
func (r *ChainRegistry) Chain(kind model.ChainKind, finger model.Finger, layer model.Layer, side model.Side) []string {
	roles := r.chains[chainID{Kind: kind, Finger: finger, Layer: layer, Side: side}]
	names := make([]string, 0, len(roles))
	for _, role := range roles {
		if name, ok := r.Lookup(layer, role, side); ok {
			names = append(names, name)
		}
	}
	return names
}

// Previous はチェーン内で直前の関節のボーン名を返す。
func (r *ChainRegistry) Previous(kind model.ChainKind, finger model.Finger, layer model.Layer, side model.Side, role model.Role) (string, bool) {
	roles := r.chains[chainID{Kind: kind, Finger: finger, Layer: layer, Side: side}]
	for i, current := range roles {
		if current == role && i > 0 {
			return r.Lookup(layer, roles[i-1], side)
		}
	}
	return "", false
}

// MirrorSide は左側の登録内容を、存在するボーンに限り右側へ複製する。
func (r *ChainRegistry) MirrorSide(from model.Side, exists func(name string) bool) {
	to := from.Opposite()
	for id, roles := range r.chains {
		if id.Side != from {
			continue
		}
		mirroredRoles := make([]model.Role, 0, len(roles))
		mirroredNames := make([]string, 0, len(roles))
		for _, role := range roles {
			name, ok := r.Lookup(id.Layer, role, from)
			if !ok {
				continue
			}
			mirrored := model.MirrorName(name)
			if !exists(mirrored) {
				continue
			}
			mirroredRoles = append(mirroredRoles, role)
			mirroredNames = append(mirroredNames, mirrored)
		}
		r.Register(id.Kind, id.Finger, id.Layer, to, mirroredRoles, mirroredNames)
	}
}
