// 指示: miu200521358
package minteractor

import (
	"testing"

	"github.com/miu200521358/mu_poser2rig/pkg/domain/mmath"
	"github.com/miu200521358/mu_poser2rig/pkg/domain/model"
	"gonum.org/v1/gonum/floats/scalar"
)

func newMirrorTestRig(t *testing.T) *model.Rig {
	t.Helper()
	rig := model.NewRig(testRigName)
	root := model.NewBone("root", mmath.ZERO_VEC3, mmath.NewVec3(0, 0.5, 0))
	upper := model.NewBone("Upper.L", mmath.NewVec3(0.1, 0, 1), mmath.NewVec3(0.3, 0, 1))
	upper.ParentName = "root"
	lower := model.NewBone("Lower.L", mmath.NewVec3(0.3, 0, 1), mmath.NewVec3(0.5, -0.1, 1))
	lower.ParentName = "Upper.L"
	lower.Connected = true
	center := model.NewBone("Center", mmath.NewVec3(0, 0, 1), mmath.NewVec3(0, 0, 1.2))
	center.ParentName = "root"
	stale := model.NewBone("Lower.R", mmath.NewVec3(-1, 0, 0), mmath.NewVec3(-1, 0, 1))
	stale.ParentName = "root"
	for _, bone := range []*model.Bone{root, upper, lower, center, stale} {
		if err := rig.Bones.Append(bone); err != nil {
			t.Fatalf("append failed: %v", err)
		}
	}

	limit := model.NewConstraint(model.CONSTRAINT_LIMIT_ROTATION, "")
	limit.Limits[0] = model.AxisLimit{UseMin: true, UseMax: true, Min: -0.1, Max: 0.2}
	limit.Limits[1] = model.AxisLimit{UseMin: true, Min: -0.3, Max: 0.4}
	limit.Limits[2] = model.AxisLimit{UseMax: true, Min: -0.5, Max: 0.6}
	lower.AddConstraint(limit)

	track := model.NewConstraint(model.CONSTRAINT_DAMPED_TRACK, "")
	track.Target = "Center"
	lower.AddConstraint(track)

	copyRot := model.NewConstraint(model.CONSTRAINT_COPY_ROTATION, "")
	copyRot.Target = "Upper.L"
	lower.AddConstraint(copyRot)

	transform := model.NewConstraint(model.CONSTRAINT_TRANSFORM, "")
	transform.Target = "Upper.L"
	transform.Transform.MapFrom = model.MAP_LOCATION
	transform.Transform.MapTo = model.MAP_ROTATION
	transform.Transform.FromMin = [3]float64{-1, 0, 0}
	transform.Transform.FromMax = [3]float64{2, 0, 0}
	transform.Transform.ToMin = [3]float64{0.1, 0.2, 0.3}
	transform.Transform.ToMax = [3]float64{0.4, 0.5, 0.6}
	upper.AddConstraint(transform)
	return rig
}

func TestMirrorRigCreatesRightSide(t *testing.T) {
	rig := newMirrorTestRig(t)
	mirrored, err := MirrorRig(rig)
	if err != nil {
		t.Fatalf("mirror failed: %v", err)
	}

	if rig.Bones.Contains("Upper.R") {
		t.Fatalf("input mutated")
	}
	if stale := mustGetBone(t, rig, "Lower.R"); stale.ParentName != "root" || stale.Head.X != -1 {
		t.Fatalf("input right bone mutated: %+v", stale)
	}

	upper := mustGetBone(t, mirrored, "Upper.R")
	if !upper.Head.NearEquals(mmath.NewVec3(-0.1, 0, 1), 1e-9) || !upper.Tail.NearEquals(mmath.NewVec3(-0.3, 0, 1), 1e-9) {
		t.Fatalf("unexpected mirrored geometry: %v/%v", upper.Head, upper.Tail)
	}
	if upper.ParentName != "root" {
		t.Fatalf("unexpected parent: %s", upper.ParentName)
	}

	lower := mustGetBone(t, mirrored, "Lower.R")
	if lower.ParentName != "Upper.R" || !lower.Connected {
		t.Fatalf("existing right bone not overwritten: parent=%s connected=%v", lower.ParentName, lower.Connected)
	}
	if !lower.Tail.NearEquals(mmath.NewVec3(-0.5, -0.1, 1), 1e-9) {
		t.Fatalf("unexpected tail: %v", lower.Tail)
	}
	if count := mirrored.Bones.Len(); count != 6 {
		t.Fatalf("bone count: got=%d want=6", count)
	}
	if err := mirrored.ValidateTree(); err != nil {
		t.Fatalf("invalid tree: %v", err)
	}
}

func TestMirrorRigFlipsConstraints(t *testing.T) {
	mirrored, err := MirrorRig(newMirrorTestRig(t))
	if err != nil {
		t.Fatalf("mirror failed: %v", err)
	}
	lower := mustGetBone(t, mirrored, "Lower.R")

	limits := lower.ConstraintsByType(model.CONSTRAINT_LIMIT_ROTATION)
	if len(limits) != 1 {
		t.Fatalf("limit count: %d", len(limits))
	}
	x, y, z := limits[0].Limits[0], limits[0].Limits[1], limits[0].Limits[2]
	if x.Min != -0.1 || x.Max != 0.2 || !x.UseMin || !x.UseMax {
		t.Fatalf("x limit must stay: %+v", x)
	}
	if !scalar.EqualWithinAbs(y.Min, -0.4, 1e-12) || !scalar.EqualWithinAbs(y.Max, 0.3, 1e-12) || y.UseMin || !y.UseMax {
		t.Fatalf("unexpected y limit: %+v", y)
	}
	if !scalar.EqualWithinAbs(z.Min, -0.6, 1e-12) || !scalar.EqualWithinAbs(z.Max, 0.5, 1e-12) || !z.UseMin || z.UseMax {
		t.Fatalf("unexpected z limit: %+v", z)
	}

	if track := lower.ConstraintsByType(model.CONSTRAINT_DAMPED_TRACK); len(track) != 1 || track[0].Target != "Center" {
		t.Fatalf("center target must stay: %+v", track)
	}
	if copies := lower.ConstraintsByType(model.CONSTRAINT_COPY_ROTATION); len(copies) != 1 || copies[0].Target != "Upper.R" {
		t.Fatalf("side target not flipped: %+v", copies)
	}

	transforms := mustGetBone(t, mirrored, "Upper.R").ConstraintsByType(model.CONSTRAINT_TRANSFORM)
	if len(transforms) != 1 {
		t.Fatalf("transform count: %d", len(transforms))
	}
	tr := transforms[0].Transform
	if tr.FromMin != [3]float64{1, 0, 0} || tr.FromMax != [3]float64{-2, 0, 0} {
		t.Fatalf("unexpected from range: %v/%v", tr.FromMin, tr.FromMax)
	}
	if tr.ToMin != [3]float64{0.1, -0.2, -0.3} || tr.ToMax != [3]float64{0.4, -0.5, -0.6} {
		t.Fatalf("unexpected to range: %v/%v", tr.ToMin, tr.ToMax)
	}

	left := mustGetBone(t, mirrored, "Upper.L").ConstraintsByType(model.CONSTRAINT_TRANSFORM)[0]
	if left.Transform.FromMin != [3]float64{-1, 0, 0} {
		t.Fatalf("left constraint mutated: %v", left.Transform.FromMin)
	}
}

func TestMirrorRigKeepsUnmatchedReferences(t *testing.T) {
	rig := newMirrorTestRig(t)
	upper := mustGetBone(t, rig, "Upper.L")
	upper.CustomShape = "WGT_Figure_Upper.L"
	rig.Widgets = []string{"WGT_Figure_Upper.L"}

	mirrored, err := MirrorRig(rig)
	if err != nil {
		t.Fatalf("mirror failed: %v", err)
	}
	if got := mustGetBone(t, mirrored, "Upper.R").CustomShape; got != "WGT_Figure_Upper.L" {
		t.Fatalf("widget without right variant must be reused: %s", got)
	}

	rig.Widgets = append(rig.Widgets, "WGT_Figure_Upper.R")
	mirrored, err = MirrorRig(rig)
	if err != nil {
		t.Fatalf("mirror failed: %v", err)
	}
	if got := mustGetBone(t, mirrored, "Upper.R").CustomShape; got != "WGT_Figure_Upper.R" {
		t.Fatalf("right widget not used: %s", got)
	}
}

func TestMirrorRigMirrorsDrivers(t *testing.T) {
	rig := newMirrorTestRig(t)
	rig.AddDriver(&model.Driver{
		BoneName:       "Lower.L",
		ConstraintName: "Copy Rotation",
		Property:       model.DRIVER_PROPERTY_INFLUENCE,
		Type:           model.DRIVER_SCRIPTED,
		Expression:     "1",
	})
	mirrored, err := MirrorRig(rig)
	if err != nil {
		t.Fatalf("mirror failed: %v", err)
	}
	if mirrored.FindDriver("Lower.R", "Copy Rotation", model.DRIVER_PROPERTY_INFLUENCE) == nil {
		t.Fatalf("driver not mirrored")
	}
	if mirrored.FindDriver("Lower.L", "Copy Rotation", model.DRIVER_PROPERTY_INFLUENCE) == nil {
		t.Fatalf("left driver lost")
	}
}
