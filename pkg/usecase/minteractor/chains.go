// 指示: miu200521358
package minteractor

import (
	"github.com/miu200521358/mu_poser2rig/pkg/domain/model"
)

// chainStyle はチェーンボーンの表示設定を表す。
type chainStyle struct {
	Palette    model.ColorPalette
	Size       float64
	Connected  bool
	Collection string
}

// chainRequest はチェーン生成要求を表す。
type chainRequest struct {
	Kind   model.ChainKind
	Finger model.Finger
	Roles  []model.Role
	Anchor string
	Layer  model.Layer
	Side   model.Side
	Style  chainStyle
}

// synthesizeChain は変形ボーンに重なる並列チェーンを生成する。変形ボーンがない役割は省略する。
func synthesizeChain(ctx *RigBuildContext, request chainRequest) ([]*model.Bone, error) {
	if err := ctx.requireMode(MODE_EDIT); err != nil {
		return nil, err
	}
	roles := make([]model.Role, 0, len(request.Roles))
	sources := make([]*model.Bone, 0, len(request.Roles))
	for _, role := range request.Roles {
		deformName := model.LAYER_DEF.Name(role, request.Side)
		deform := ctx.rig.Bones.Find(deformName)
		if deform == nil {
			ctx.warn(model.RigWarningChainRoleSkipped, "変形ボーンがないためチェーンから省略しました: %s", deformName)
			continue
		}
		roles = append(roles, role)
		sources = append(sources, deform)
	}

	created := make([]*model.Bone, 0, len(sources))
	names := make([]string, 0, len(sources))
	for i, deform := range sources {
		parent := request.Anchor
		if i > 0 {
			parent = created[i-1].Name
		}
		spec := newBoneSpec(request.Layer.Name(roles[i], request.Side), request.Style.Size, deform.Head, deform.Tail)
		spec.Parent = parent
		spec.Connected = request.Style.Connected && i != 0
		spec.Color = model.PaletteColor(request.Style.Palette)
		spec.Collection = request.Style.Collection
		bone, err := createBone(ctx, spec)
		if err != nil {
			return nil, err
		}
		bone.AxisZ = deform.LocalAxisZ()
		created = append(created, bone)
		names = append(names, bone.Name)
	}
	ctx.chains.Register(request.Kind, request.Finger, request.Layer, request.Side, roles, names)
	return created, nil
}

// buildParallelChains は背骨・腕・脚・指のIK/FKチェーンを生成する。左右対象は左側のみ作る。
func buildParallelChains(ctx *RigBuildContext) error {
	requests := []chainRequest{
		{
			Kind: model.CHAIN_SPINE, Roles: model.SpineChain, Anchor: model.ROLE_ROOT.String(),
			Layer: model.LAYER_IK, Side: model.SIDE_NONE,
			Style: chainStyle{Palette: model.PALETTE_THEME09, Size: boneSizeIK, Connected: true, Collection: COLLECTION_SPINE_IK},
		},
		{
			Kind: model.CHAIN_SPINE, Roles: model.SpineChain, Anchor: model.ROLE_ROOT.String(),
			Layer: model.LAYER_FK, Side: model.SIDE_NONE,
			Style: chainStyle{Palette: model.PALETTE_THEME04, Size: boneSizeFK, Connected: true, Collection: COLLECTION_SPINE_FK},
		},
		{
			Kind: model.CHAIN_ARM, Roles: model.ArmChain, Anchor: model.LAYER_IK.Name(model.ROLE_CHEST, model.SIDE_NONE),
			Layer: model.LAYER_IK, Side: model.SIDE_LEFT,
			Style: chainStyle{Palette: model.PALETTE_THEME01, Size: boneSizeIK, Collection: COLLECTION_ARMS_IK},
		},
		{
			Kind: model.CHAIN_ARM, Roles: model.ArmChain, Anchor: model.LAYER_FK.Name(model.ROLE_CHEST, model.SIDE_NONE),
			Layer: model.LAYER_FK, Side: model.SIDE_LEFT,
			Style: chainStyle{Palette: model.PALETTE_THEME03, Size: boneSizeFK, Collection: COLLECTION_ARMS_FK},
		},
		{
			Kind: model.CHAIN_LEG, Roles: model.LegChain, Anchor: model.LAYER_IK.Name(model.ROLE_HIP, model.SIDE_NONE),
			Layer: model.LAYER_IK, Side: model.SIDE_LEFT,
			Style: chainStyle{Palette: model.PALETTE_THEME01, Size: boneSizeIK, Collection: COLLECTION_LEGS_IK},
		},
		{
			Kind: model.CHAIN_LEG, Roles: model.LegChain, Anchor: model.LAYER_FK.Name(model.ROLE_HIP, model.SIDE_NONE),
			Layer: model.LAYER_FK, Side: model.SIDE_LEFT,
			Style: chainStyle{Palette: model.PALETTE_THEME03, Size: boneSizeFK, Collection: COLLECTION_LEGS_FK},
		},
	}
	for _, finger := range model.Fingers {
		requests = append(requests,
			chainRequest{
				Kind: model.CHAIN_FINGER, Finger: finger, Roles: finger.Chain(),
				Anchor: model.LAYER_IK.Name(model.ROLE_HAND, model.SIDE_LEFT),
				Layer: model.LAYER_IK, Side: model.SIDE_LEFT,
				Style: chainStyle{Palette: model.PALETTE_THEME01, Size: boneSizeIK, Connected: true, Collection: COLLECTION_FINGERS_IK},
			},
		)
	}
	for _, finger := range model.Fingers {
		requests = append(requests,
			chainRequest{
				Kind: model.CHAIN_FINGER, Finger: finger, Roles: finger.Chain(),
				Anchor: model.LAYER_FK.Name(model.ROLE_HAND, model.SIDE_LEFT),
				Layer: model.LAYER_FK, Side: model.SIDE_LEFT,
				Style: chainStyle{Palette: model.PALETTE_THEME03, Size: boneSizeFK, Collection: COLLECTION_FINGERS_FK},
			},
		)
	}

	for _, request := range requests {
		created, err := synthesizeChain(ctx, request)
		if err != nil {
			return err
		}
		logRigDebug("チェーン生成: kind=%s finger=%s layer=%s side=%s bones=%d",
			request.Kind, request.Finger, request.Layer.Token(), request.Side, len(created))
	}
	nudgeFingerMidJoints(ctx)
	return nil
}
