// 指示: miu200521358
package armature

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/miu200521358/mu_poser2rig/pkg/domain/mmath"
	"github.com/miu200521358/mu_poser2rig/pkg/domain/model"
	"github.com/miu200521358/mu_poser2rig/pkg/domain/model/merrors"
	"github.com/miu200521358/mu_poser2rig/pkg/usecase/port/moutput"
)

const minimalSkeleton = `name: Figure
bones:
  - name: Body
    head: [0, 0, 0.9]
    tail: [0, 0, 1.0]
    deform: true
  - name: Hip
    head: [0, 0, 1.0]
    tail: [0, 0, 1.1]
    parent: Body
    connected: true
    deform: true
`

func writeFile(t *testing.T, path string, body string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write failed: %v", err)
	}
}

func TestCanLoad(t *testing.T) {
	r := NewArmatureRepository()
	cases := map[string]bool{
		"figure.yaml":     true,
		"figure.YML":      true,
		"figure.json":     true,
		"figure.json.zst": true,
		"figure.zst":      false,
		"figure.vrm":      false,
		"":                false,
	}
	for path, want := range cases {
		if got := r.CanLoad(path); got != want {
			t.Fatalf("%q: got=%v want=%v", path, got, want)
		}
	}
}

func TestLoadYamlAppliesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "figure.yaml")
	writeFile(t, path, minimalSkeleton)

	rig, err := NewArmatureRepository().Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if rig.Name != "Figure" || !rig.IsArmature() {
		t.Fatalf("unexpected rig header: name=%s type=%s", rig.Name, rig.ObjectType)
	}
	if rig.Bones.Len() != 2 {
		t.Fatalf("bone count: %d", rig.Bones.Len())
	}
	hip, err := rig.Bone("Hip")
	if err != nil {
		t.Fatalf("hip missing: %v", err)
	}
	if hip.ParentName != "Body" || !hip.Connected || !hip.Deform {
		t.Fatalf("unexpected hip: %+v", hip)
	}
	if !hip.Head.NearEquals(mmath.NewVec3(0, 0, 1), 1e-9) {
		t.Fatalf("unexpected head: %v", hip.Head)
	}
	if hip.AxisZ.IsZero() || hip.RotationMode != model.ROTATION_QUATERNION {
		t.Fatalf("defaults not applied: axis=%v mode=%s", hip.AxisZ, hip.RotationMode)
	}
	if !rig.Transform.Scale.NearEquals(mmath.NewVec3(1, 1, 1), 1e-9) {
		t.Fatalf("unexpected scale: %v", rig.Transform.Scale)
	}
}

func TestLoadUsesFileNameWhenUnnamed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "unnamed.yaml")
	writeFile(t, path, "bones:\n  - name: Body\n    head: [0, 0, 0]\n    tail: [0, 0, 1]\n")
	rig, err := NewArmatureRepository().Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if rig.Name != "unnamed" {
		t.Fatalf("unexpected name: %s", rig.Name)
	}
}

func TestLoadErrors(t *testing.T) {
	dir := t.TempDir()
	r := NewArmatureRepository()

	if _, err := r.Load(filepath.Join(dir, "missing.yaml")); !merrors.IsIoFileNotFound(err) {
		t.Fatalf("expected file not found, got %v", err)
	}
	if _, err := r.Load(filepath.Join(dir, "figure.vrm")); merrors.ExtractErrorID(err) != merrors.ErrorIDIoExtInvalid {
		t.Fatalf("expected ext invalid, got %v", err)
	}

	broken := filepath.Join(dir, "broken.json")
	writeFile(t, broken, "{")
	if _, err := r.Load(broken); merrors.ExtractErrorID(err) != merrors.ErrorIDIoParseFailed {
		t.Fatalf("expected parse failure, got %v", err)
	}

	orphan := filepath.Join(dir, "orphan.yaml")
	writeFile(t, orphan, "bones:\n  - name: Hip\n    parent: Body\n")
	if _, err := r.Load(orphan); !merrors.IsBoneNotFoundError(err) {
		t.Fatalf("expected bone not found, got %v", err)
	}

	duplicate := filepath.Join(dir, "duplicate.yaml")
	writeFile(t, duplicate, "bones:\n  - name: Hip\n  - name: Hip\n")
	if _, err := r.Load(duplicate); !merrors.IsNameConflictError(err) {
		t.Fatalf("expected name conflict, got %v", err)
	}
}

func TestSaveCompressedJsonThenLoad(t *testing.T) {
	rig := model.NewRig("Figure")
	root := model.NewBone("root", mmath.ZERO_VEC3, mmath.NewVec3(0, 0.5, 0))
	hand := model.NewBone("CTRL-IK-Hand.L", mmath.NewVec3(0.6, 0, 1.38), mmath.NewVec3(0.68, 0, 1.38))
	hand.ParentName = "root"
	hand.CustomShape = "WGT_Figure_CTRL-IK-Hand.L"
	c := model.NewConstraint(model.CONSTRAINT_IK, "")
	c.Target = "root"
	c.IK.ChainCount = 2
	hand.AddConstraint(c)
	for _, bone := range []*model.Bone{root, hand} {
		if err := rig.Bones.Append(bone); err != nil {
			t.Fatalf("append failed: %v", err)
		}
	}
	if _, err := rig.Collections.Ensure("Root", ""); err != nil {
		t.Fatalf("ensure failed: %v", err)
	}

	dir := t.TempDir()
	path := filepath.Join(dir, "out", "figure_rig.json")
	r := NewArmatureRepository()
	if err := r.Save(path, rig, moutput.SaveOptions{Compress: true}); err != nil {
		t.Fatalf("save failed: %v", err)
	}
	if _, err := os.Stat(path + compressedExt); err != nil {
		t.Fatalf("compressed file missing: %v", err)
	}

	loaded, err := r.Load(path + compressedExt)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	got, err := loaded.Bone("CTRL-IK-Hand.L")
	if err != nil {
		t.Fatalf("bone missing: %v", err)
	}
	if got.CustomShape != hand.CustomShape || got.ParentName != "root" {
		t.Fatalf("unexpected bone: %+v", got)
	}
	ik := got.FindConstraint("IK")
	if ik == nil || ik.IK == nil || ik.IK.ChainCount != 2 || ik.Target != "root" {
		t.Fatalf("constraint not preserved: %+v", ik)
	}
	if !loaded.Collections.Contains("Root") {
		t.Fatalf("collections not preserved")
	}
}

func TestSaveRejectsUnknownExtension(t *testing.T) {
	err := NewArmatureRepository().Save(filepath.Join(t.TempDir(), "figure.pmx"), model.NewRig("Figure"), moutput.SaveOptions{})
	if merrors.ExtractErrorID(err) != merrors.ErrorIDIoExtInvalid {
		t.Fatalf("expected ext invalid, got %v", err)
	}
}
