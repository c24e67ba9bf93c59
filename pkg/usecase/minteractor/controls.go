// 指示: miu200521358
package minteractor

import (
	"github.com/miu200521358/mu_poser2rig/pkg/domain/mmath"
	"github.com/miu200521358/mu_poser2rig/pkg/domain/model"
)

const (
	ctrlTorsoName = "CTRL-Torso"
	ctrlHipName   = "CTRL-Hip"
	ctrlChestName = "CTRL-Chest"
)

// ikControlName はIKコントロールのボーン名を返す。
func ikControlName(role model.Role, side model.Side) string {
	return model.LAYER_CTRL.Prefix() + model.LAYER_IK.Name(role, side)
}

// fkControlName はFKコントロールのボーン名を返す。
func fkControlName(role model.Role, side model.Side) string {
	return model.LAYER_CTRL.Prefix() + model.LAYER_FK.Name(role, side)
}

// ikPoleName はIKポールのボーン名を返す。
func ikPoleName(pole string, side model.Side) string {
	return model.LAYER_CTRL.Prefix() + model.LAYER_IK.Prefix() + "Pole-" + pole + side.String()
}

// poleBasis はポールのZ座標を取る位置を表す。
type poleBasis int

const (
	POLE_BASIS_TAIL poleBasis = iota
	POLE_BASIS_HEAD
)

// ikControlRequest はIKコントロールとポールの生成要求を表す。
type ikControlRequest struct {
	Chain      []model.Role
	Side       model.Side
	Collection string
	Pole       string
	PoleY      float64
	PoleBasis  poleBasis
}

// createIKControl はIKチェーン先頭に重なるコントロールと、必要に応じてポールを生成する。
func createIKControl(ctx *RigBuildContext, request ikControlRequest) error {
	first, err := ctx.bone(model.LAYER_IK.Name(request.Chain[0], request.Side))
	if err != nil {
		return err
	}
	spec := newBoneSpec(ikControlName(request.Chain[0], request.Side), first.BBoneX*2, first.Head, first.Tail)
	spec.Length = first.Length() - ikControlShrink
	spec.Color = model.PaletteColor(model.PALETTE_THEME01)
	spec.Parent = model.ROLE_ROOT.String()
	spec.Collection = request.Collection
	control, err := createBone(ctx, spec)
	if err != nil {
		return err
	}
	if request.Pole == "" || len(request.Chain) < 2 {
		return nil
	}

	basis, err := ctx.bone(model.LAYER_IK.Name(request.Chain[1], request.Side))
	if err != nil {
		return err
	}
	z := basis.Tail.Z
	if request.PoleBasis == POLE_BASIS_HEAD {
		z = basis.Head.Z
	}
	poleSpec := newBoneSpec(
		ikPoleName(request.Pole, request.Side),
		basis.BBoneX*2,
		mmath.NewVec3(basis.Tail.X, request.PoleY-poleDepth, z),
		mmath.NewVec3(basis.Tail.X, request.PoleY, z),
	)
	poleSpec.Parent = control.Name
	poleSpec.Color = model.PaletteColor(model.PALETTE_THEME09)
	poleSpec.Collection = request.Collection
	_, err = createBone(ctx, poleSpec)
	return err
}

// createIKControls は腕・脚・背骨のIKコントロールとポールを生成する。
func createIKControls(ctx *RigBuildContext) error {
	requests := []ikControlRequest{
		{
			Chain: []model.Role{model.ROLE_HAND, model.ROLE_FOREARM, model.ROLE_SHOULDER}, Side: model.SIDE_LEFT,
			Collection: COLLECTION_ARMS_CTRL, Pole: "Elbow", PoleY: 0.625, PoleBasis: POLE_BASIS_TAIL,
		},
		{
			Chain: []model.Role{model.ROLE_FOOT, model.ROLE_SHIN, model.ROLE_THIGH}, Side: model.SIDE_LEFT,
			Collection: COLLECTION_LEGS_CTRL, Pole: "Knee", PoleY: -0.625, PoleBasis: POLE_BASIS_HEAD,
		},
		{
			Chain:      []model.Role{model.ROLE_LOWER_ABDOMEN, model.ROLE_HIP},
			Collection: COLLECTION_SPINE_CTRL, Pole: "Hip", PoleY: 0.625, PoleBasis: POLE_BASIS_TAIL,
		},
		{
			Chain:      []model.Role{model.ROLE_CHEST, model.ROLE_ABDOMEN},
			Collection: COLLECTION_SPINE_CTRL, Pole: "Chest", PoleY: 0.625, PoleBasis: POLE_BASIS_TAIL,
		},
		{
			Chain:      []model.Role{model.ROLE_HEAD, model.ROLE_NECK},
			Collection: COLLECTION_SPINE_CTRL, Pole: "Head", PoleY: 0.5, PoleBasis: POLE_BASIS_TAIL,
		},
	}
	for _, request := range requests {
		if err := createIKControl(ctx, request); err != nil {
			return err
		}
	}
	return nil
}

// createSpineControls は胴体・腰・胸の操作コントロールを生成する。
func createSpineControls(ctx *RigBuildContext) error {
	hip, err := ctx.bone(model.LAYER_DEF.Name(model.ROLE_HIP, model.SIDE_NONE))
	if err != nil {
		return err
	}
	lowerAbdomen, err := ctx.bone(model.LAYER_DEF.Name(model.ROLE_LOWER_ABDOMEN, model.SIDE_NONE))
	if err != nil {
		return err
	}
	chest, err := ctx.bone(model.LAYER_DEF.Name(model.ROLE_CHEST, model.SIDE_NONE))
	if err != nil {
		return err
	}
	specs := []BoneSpec{
		newBoneSpec(ctrlTorsoName, boneSizeDef, hip.Head, lowerAbdomen.Tail),
		newBoneSpec(ctrlHipName, boneSizeDef, hip.Head, hip.Tail),
		newBoneSpec(ctrlChestName, boneSizeDef, chest.Head, chest.Tail),
	}
	parents := []string{model.ROLE_ROOT.String(), ctrlTorsoName, ctrlTorsoName}
	for i, spec := range specs {
		spec.Parent = parents[i]
		spec.Color = model.PaletteColor(model.PALETTE_THEME09)
		spec.Display = model.DISPLAY_OCTAHEDRAL
		spec.Collection = COLLECTION_SPINE_CTRL
		if _, err := createBone(ctx, spec); err != nil {
			return err
		}
	}
	return nil
}

// buildControls はIKコントロール・機構・操作コントロールを生成する。
func buildControls(ctx *RigBuildContext) error {
	if err := createIKControls(ctx); err != nil {
		return err
	}
	if err := createCollarMechanism(ctx, model.SIDE_LEFT); err != nil {
		return err
	}
	if err := createSpineControls(ctx); err != nil {
		return err
	}
	if err := createFingerControls(ctx, model.SIDE_LEFT); err != nil {
		return err
	}
	if err := createFootRoll(ctx, model.SIDE_LEFT); err != nil {
		return err
	}
	return createEyeControls(ctx, model.SIDE_LEFT)
}

// spineCleanup は背骨IKコントロールの再配置先を表す。
type spineCleanup struct {
	Control string
	HeadOf  model.Role
	Parent  string
}

// cleanupControls は後から生成したボーンに依存する背骨コントロールの位置・親・色を整え、ロールを再計算する。
func cleanupControls(ctx *RigBuildContext) error {
	if err := ctx.requireMode(MODE_EDIT); err != nil {
		return err
	}
	cleanups := []spineCleanup{
		{Control: ikControlName(model.ROLE_LOWER_ABDOMEN, model.SIDE_NONE), HeadOf: model.ROLE_LOWER_ABDOMEN, Parent: ctrlHipName},
		{Control: ikControlName(model.ROLE_CHEST, model.SIDE_NONE), HeadOf: model.ROLE_CHEST, Parent: ctrlChestName},
		{Control: ikControlName(model.ROLE_HEAD, model.SIDE_NONE), HeadOf: model.ROLE_HEAD, Parent: ctrlChestName},
	}
	for _, cleanup := range cleanups {
		control, err := ctx.bone(cleanup.Control)
		if err != nil {
			return err
		}
		deform, err := ctx.bone(model.LAYER_DEF.Name(cleanup.HeadOf, model.SIDE_NONE))
		if err != nil {
			return err
		}
		control.Head = deform.Tail
		if err := ctx.rig.Bones.SetParent(control.Name, cleanup.Parent); err != nil {
			return err
		}
		control.Color = model.BrightGreen()
	}
	for _, pole := range []string{"Hip", "Chest", "Head"} {
		bone, err := ctx.bone(ikPoleName(pole, model.SIDE_NONE))
		if err != nil {
			return err
		}
		bone.Color = model.BrightBlue()
	}
	return recalculateRoll(ctx)
}
