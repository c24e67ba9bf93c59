// 指示: miu200521358
package minteractor

import (
	"strings"
	"testing"

	"github.com/miu200521358/mu_poser2rig/pkg/domain/mmath"
	"github.com/miu200521358/mu_poser2rig/pkg/domain/model"
	"github.com/miu200521358/mu_poser2rig/pkg/domain/model/merrors"
)

func TestRenameForTarget(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{name: "left token", in: "Left_Hand", want: "DEF-Hand.L"},
		{name: "right token", in: "Right_Foot", want: "DEF-Foot.R"},
		{name: "center", in: "Hip", want: "DEF-Hip"},
		{name: "root skipped", in: "root", want: ""},
		{name: "properties skipped", in: "PROPERTIES", want: ""},
		{name: "contains root skipped", in: "rootMotion", want: ""},
		{name: "left letter", in: "lShldr", want: "DEF-Shldr.L"},
		{name: "right letter", in: "rThigh", want: "DEF-Thigh.R"},
		{name: "token not at start slices fixed length", in: "Bone_Left_Hand", want: "DEF-Left_Hand.L"},
		{name: "letter rule overrides token", in: "lLeft_Hand", want: "DEF-Left_Hand.L"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := renameForTarget(tc.in, model.LAYER_DEF.Prefix()); got != tc.want {
				t.Fatalf("renameForTarget(%q): got=%q want=%q", tc.in, got, tc.want)
			}
		})
	}
}

func TestAlignOrientationKeepsHeadAndLength(t *testing.T) {
	source := model.NewBone("source", mmath.ZERO_VEC3, mmath.NewVec3(0, 0, 2))
	target := model.NewBone("target", mmath.NewVec3(1, 1, 1), mmath.NewVec3(2, 1, 1))

	alignOrientation(source, target)

	if !source.Head.NearEquals(mmath.ZERO_VEC3, 1e-9) {
		t.Fatalf("head moved: %v", source.Head)
	}
	if !source.Tail.NearEquals(mmath.NewVec3(2, 0, 0), 1e-9) {
		t.Fatalf("tail not aligned: %v", source.Tail)
	}
	if dot := source.LocalAxisZ().Dot(source.Direction()); dot > 1e-9 || dot < -1e-9 {
		t.Fatalf("axis z not orthogonal: dot=%v", dot)
	}
}

func TestAlignOrientationKeepsRoll(t *testing.T) {
	source := model.NewBone("source", mmath.ZERO_VEC3, mmath.NewVec3(0, 2, 0))
	source.SetRoll(0.3)
	target := model.NewBone("target", mmath.NewVec3(1, 1, 1), mmath.NewVec3(2, 1, 1))

	alignOrientation(source, target)

	if !source.Tail.NearEquals(mmath.NewVec3(2, 0, 0), 1e-9) {
		t.Fatalf("tail not aligned: %v", source.Tail)
	}
	if roll := source.Roll(); roll < 0.3-1e-9 || roll > 0.3+1e-9 {
		t.Fatalf("roll not kept: got=%v want=0.3", roll)
	}
}

func TestTranslateAlongOwnAxis(t *testing.T) {
	bone := model.NewBone("bone", mmath.ZERO_VEC3, mmath.NewVec3(0, 2, 0))
	translateAlongOwnAxis(bone, 0.5)
	if !bone.Head.NearEquals(mmath.NewVec3(0, 0.5, 0), 1e-9) || !bone.Tail.NearEquals(mmath.NewVec3(0, 2.5, 0), 1e-9) {
		t.Fatalf("unexpected translation: head=%v tail=%v", bone.Head, bone.Tail)
	}
	translateAlongOwnAxis(bone, -1)
	if !bone.Head.NearEquals(mmath.NewVec3(0, -0.5, 0), 1e-9) {
		t.Fatalf("unexpected negative translation: head=%v", bone.Head)
	}
}

func TestSetBoneHeadMovesConnectedNeighbors(t *testing.T) {
	rig := model.NewRig(testRigName)
	parent := model.NewBone("parent", mmath.ZERO_VEC3, mmath.NewVec3(0, 0, 1))
	child := model.NewBone("child", mmath.NewVec3(0, 0, 1), mmath.NewVec3(0, 0, 2))
	sibling := model.NewBone("sibling", mmath.NewVec3(0, 0, 1), mmath.NewVec3(1, 0, 1))
	loose := model.NewBone("loose", mmath.NewVec3(0, 0, 1), mmath.NewVec3(-1, 0, 1))
	for _, bone := range []*model.Bone{parent, child, sibling, loose} {
		if bone != parent {
			bone.ParentName = parent.Name
			bone.Connected = bone != loose
		}
		if err := rig.Bones.Append(bone); err != nil {
			t.Fatalf("append failed: %v", err)
		}
	}

	moved := mmath.NewVec3(0, 0, 1.5)
	setBoneHead(rig.Bones, child, moved)

	if !parent.Tail.NearEquals(moved, 1e-9) {
		t.Fatalf("parent tail not moved: %v", parent.Tail)
	}
	if !sibling.Head.NearEquals(moved, 1e-9) {
		t.Fatalf("connected sibling not moved: %v", sibling.Head)
	}
	if !loose.Head.NearEquals(mmath.NewVec3(0, 0, 1), 1e-9) {
		t.Fatalf("loose sibling moved: %v", loose.Head)
	}
}

func TestCreateBoneRequiresEditMode(t *testing.T) {
	ctx := NewRigBuildContext(model.NewRig(testRigName))
	_, err := createBone(ctx, newBoneSpec("bone", boneSizeDef, mmath.ZERO_VEC3, mmath.UNIT_Z_VEC3))
	if merrors.ExtractErrorID(err) != merrors.ErrorIDModeMismatch {
		t.Fatalf("expected mode mismatch, got %v", err)
	}
}

func TestCreateBoneConnectedSnapsToParentTail(t *testing.T) {
	ctx := NewRigBuildContext(model.NewRig(testRigName))
	if err := ctx.SetMode(MODE_EDIT); err != nil {
		t.Fatalf("set mode failed: %v", err)
	}
	if _, err := createBone(ctx, newBoneSpec("parent", boneSizeDef, mmath.ZERO_VEC3, mmath.NewVec3(0, 0, 1))); err != nil {
		t.Fatalf("create parent failed: %v", err)
	}
	spec := newBoneSpec("child", boneSizeIK, mmath.NewVec3(0, 0, 1.1), mmath.NewVec3(0, 0, 2))
	spec.Parent = "parent"
	spec.Connected = true
	child, err := createBone(ctx, spec)
	if err != nil {
		t.Fatalf("create child failed: %v", err)
	}
	if !child.Connected || !child.Head.NearEquals(mmath.NewVec3(0, 0, 1), 1e-9) {
		t.Fatalf("child not snapped: connected=%v head=%v", child.Connected, child.Head)
	}
	if child.BBoneX != boneSizeIK || child.BBoneZ != boneSizeIK {
		t.Fatalf("unexpected bbone size: %v/%v", child.BBoneX, child.BBoneZ)
	}

	_, err = createBone(ctx, newBoneSpec("child", boneSizeDef, mmath.ZERO_VEC3, mmath.UNIT_Z_VEC3))
	if !merrors.IsNameConflictError(err) {
		t.Fatalf("expected name conflict, got %v", err)
	}

	missing := newBoneSpec("orphan", boneSizeDef, mmath.ZERO_VEC3, mmath.UNIT_Z_VEC3)
	missing.Collection = "Nowhere"
	_, err = createBone(ctx, missing)
	if merrors.ExtractErrorID(err) != merrors.ErrorIDCollectionNotFound {
		t.Fatalf("expected collection not found, got %v", err)
	}
}

func TestCreateBoneAppliesLength(t *testing.T) {
	ctx := NewRigBuildContext(model.NewRig(testRigName))
	if err := ctx.SetMode(MODE_EDIT); err != nil {
		t.Fatalf("set mode failed: %v", err)
	}
	spec := newBoneSpec("short", boneSizeDef, mmath.ZERO_VEC3, mmath.NewVec3(0, 3, 0))
	spec.Length = 0.25
	bone, err := createBone(ctx, spec)
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if !bone.Tail.NearEquals(mmath.NewVec3(0, 0.25, 0), 1e-9) {
		t.Fatalf("length not applied: %v", bone.Tail)
	}
}

func TestRenameDeformBonesWarnsOnSideLetter(t *testing.T) {
	rig := model.NewRig(testRigName)
	for _, name := range []string{"lThumb", "Left_Hand", "root"} {
		if err := rig.Bones.Append(model.NewBone(name, mmath.ZERO_VEC3, mmath.UNIT_Z_VEC3)); err != nil {
			t.Fatalf("append %s failed: %v", name, err)
		}
	}
	ctx := NewRigBuildContext(rig)
	if err := ctx.SetMode(MODE_EDIT); err != nil {
		t.Fatalf("set mode failed: %v", err)
	}

	if err := renameDeformBones(ctx); err != nil {
		t.Fatalf("rename failed: %v", err)
	}

	for _, name := range []string{"DEF-Thumb.L", "DEF-Hand.L", "root"} {
		if !rig.Bones.Contains(name) {
			t.Fatalf("%s not found after rename: %v", name, rig.Bones.Names())
		}
	}
	if rig.Bones.Contains("lThumb") {
		t.Fatalf("lThumb should be renamed")
	}
	if !mustGetBone(t, rig, "DEF-Thumb.L").InCollection(COLLECTION_DEF) {
		t.Fatalf("renamed bone not in deform collection")
	}

	warnings := 0
	for _, warning := range rig.Warnings {
		if warning.ID != model.RigWarningRenameSideLetter {
			continue
		}
		warnings++
		if !strings.Contains(warning.Detail, "lThumb") || !strings.Contains(warning.Detail, "DEF-Thumb.L") {
			t.Fatalf("unexpected warning detail: %s", warning.Detail)
		}
	}
	if warnings != 1 {
		t.Fatalf("side letter warnings: got=%d want=1 (%v)", warnings, rig.Warnings)
	}
}
