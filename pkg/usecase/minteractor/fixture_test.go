// 指示: miu200521358
package minteractor

import (
	"context"
	"testing"
	"time"

	"github.com/miu200521358/mu_poser2rig/pkg/domain/mmath"
	"github.com/miu200521358/mu_poser2rig/pkg/domain/model"
	"github.com/miu200521358/mu_poser2rig/pkg/usecase/port/moutput"
)

const testRigName = "Figure"

// sourceBone はテスト用スケルトンの1ボーン分の定義を表す。
type sourceBone struct {
	Name      string
	Head      mmath.Vec3
	Tail      mmath.Vec3
	Parent    string
	Connected bool
}

// newPoserSkeleton はPoserから読み込んだ直後を模したスケルトンを生成する。
func newPoserSkeleton(t *testing.T) *model.Rig {
	t.Helper()
	rig := model.NewRig(testRigName)
	for _, bone := range poserSourceBones() {
		appendSourceBone(t, rig, bone)
	}
	return rig
}

// newPoserSkeletonWithout は指定ボーンを除いたスケルトンを生成する。子ボーンは親なしにせず祖父母へ付け替える。
func newPoserSkeletonWithout(t *testing.T, excluded string) *model.Rig {
	t.Helper()
	rig := model.NewRig(testRigName)
	bones := poserSourceBones()
	parentOf := make(map[string]string, len(bones))
	for _, bone := range bones {
		parentOf[bone.Name] = bone.Parent
	}
	for _, bone := range bones {
		if bone.Name == excluded {
			continue
		}
		if bone.Parent == excluded {
			bone.Parent = parentOf[excluded]
			bone.Connected = false
		}
		appendSourceBone(t, rig, bone)
	}
	return rig
}

func appendSourceBone(t *testing.T, rig *model.Rig, bone sourceBone) {
	t.Helper()
	b := model.NewBone(bone.Name, bone.Head, bone.Tail)
	b.ParentName = bone.Parent
	b.Connected = bone.Connected
	b.Deform = true
	if err := rig.Bones.Append(b); err != nil {
		t.Fatalf("append %s failed: %v", bone.Name, err)
	}
}

func poserSourceBones() []sourceBone {
	v := mmath.NewVec3
	bones := []sourceBone{
		{Name: "Body", Head: v(0, 0, 0.9), Tail: v(0, 0, 1.0)},
		{Name: "Hip", Head: v(0, 0, 1.0), Tail: v(0, 0, 1.05), Parent: "Body", Connected: true},
		{Name: "Abdomen", Head: v(0, 0, 1.1), Tail: v(0, 0, 1.2), Parent: "Hip"},
		{Name: "Chest", Head: v(0, 0, 1.2), Tail: v(0, 0, 1.4), Parent: "Abdomen", Connected: true},
		{Name: "Neck", Head: v(0, 0, 1.42), Tail: v(0, 0, 1.5), Parent: "Chest"},
		{Name: "Head", Head: v(0, 0, 1.5), Tail: v(0, 0, 1.7), Parent: "Neck", Connected: true},
	}
	for _, side := range []struct {
		prefix string
		sign   float64
	}{{prefix: "Left_", sign: 1}, {prefix: "Right_", sign: -1}} {
		x := func(value float64) float64 { return value * side.sign }
		name := func(role string) string { return side.prefix + role }
		bones = append(bones,
			sourceBone{Name: name("Collar"), Head: v(x(0.02), 0, 1.38), Tail: v(x(0.1), 0, 1.38), Parent: "Chest"},
			sourceBone{Name: name("Shoulder"), Head: v(x(0.1), 0, 1.38), Tail: v(x(0.35), 0, 1.38), Parent: name("Collar"), Connected: true},
			sourceBone{Name: name("Forearm"), Head: v(x(0.35), 0, 1.38), Tail: v(x(0.6), 0, 1.38), Parent: name("Shoulder"), Connected: true},
			sourceBone{Name: name("Hand"), Head: v(x(0.6), 0, 1.38), Tail: v(x(0.68), 0, 1.38), Parent: name("Forearm"), Connected: true},
			sourceBone{Name: name("Thumb_1"), Head: v(x(0.62), -0.02, 1.37), Tail: v(x(0.65), -0.04, 1.37), Parent: name("Hand")},
			sourceBone{Name: name("Thumb_2"), Head: v(x(0.65), -0.04, 1.37), Tail: v(x(0.67), -0.05, 1.37), Parent: name("Thumb_1"), Connected: true},
			sourceBone{Name: name("Thumb_3"), Head: v(x(0.67), -0.05, 1.37), Tail: v(x(0.69), -0.06, 1.37), Parent: name("Thumb_2"), Connected: true},
		)
		for i, finger := range []string{"Index", "Mid", "Ring", "Pinky"} {
			y := -0.015 + float64(i)*0.01
			bones = append(bones,
				sourceBone{Name: name(finger + "_1"), Head: v(x(0.68), y, 1.38), Tail: v(x(0.71), y, 1.38), Parent: name("Hand")},
				sourceBone{Name: name(finger + "_2"), Head: v(x(0.71), y, 1.38), Tail: v(x(0.73), y, 1.38), Parent: name(finger + "_1"), Connected: true},
				sourceBone{Name: name(finger + "_3"), Head: v(x(0.73), y, 1.38), Tail: v(x(0.75), y, 1.38), Parent: name(finger + "_2"), Connected: true},
			)
		}
		bones = append(bones,
			sourceBone{Name: name("Buttock"), Head: v(x(0.1), 0, 1.0), Tail: v(x(0.1), 0, 0.95), Parent: "Hip"},
			sourceBone{Name: name("Thigh"), Head: v(x(0.1), 0, 0.95), Tail: v(x(0.1), 0, 0.5), Parent: name("Buttock"), Connected: true},
			sourceBone{Name: name("Shin"), Head: v(x(0.1), 0, 0.5), Tail: v(x(0.1), 0, 0.08), Parent: name("Thigh"), Connected: true},
			sourceBone{Name: name("Foot"), Head: v(x(0.1), 0, 0.08), Tail: v(x(0.1), -0.1, 0.02), Parent: name("Shin"), Connected: true},
			sourceBone{Name: name("Toe"), Head: v(x(0.1), -0.1, 0.02), Tail: v(x(0.1), -0.15, 0.02), Parent: name("Foot"), Connected: true},
			sourceBone{Name: name("Eye"), Head: v(x(0.03), -0.08, 1.6), Tail: v(x(0.03), -0.1, 1.6), Parent: "Head"},
		)
	}
	return bones
}

// mustBuildRig はテスト用スケルトンからリグを生成する。
func mustBuildRig(t *testing.T, widgets []string) *model.Rig {
	t.Helper()
	built, err := BuildRig(newPoserSkeleton(t), widgets, nil, nil)
	if err != nil {
		t.Fatalf("build failed: %v", err)
	}
	return built
}

func mustGetBone(t *testing.T, rig *model.Rig, name string) *model.Bone {
	t.Helper()
	bone, err := rig.Bone(name)
	if err != nil {
		t.Fatalf("bone %s not found: %v", name, err)
	}
	return bone
}

func mustGetConstraint(t *testing.T, bone *model.Bone, name string) *model.Constraint {
	t.Helper()
	c := bone.FindConstraint(name)
	if c == nil {
		t.Fatalf("constraint %s not found on %s", name, bone.Name)
	}
	return c
}

type recordingReporter struct {
	events []BuildProgressEvent
}

func (r *recordingReporter) ReportBuildProgress(event BuildProgressEvent) {
	r.events = append(r.events, event)
}

type recordingMetrics struct {
	phases []string
	builds []string
}

func (m *recordingMetrics) ObservePhase(phase string, elapsed time.Duration) {
	m.phases = append(m.phases, phase)
}

func (m *recordingMetrics) ObserveBuild(status string) {
	m.builds = append(m.builds, status)
}

type recordingRecorder struct {
	records []moutput.BuildRecord
}

func (r *recordingRecorder) Record(ctx context.Context, record moutput.BuildRecord) error {
	r.records = append(r.records, record)
	return nil
}

type stubRigReader struct {
	rig  *model.Rig
	path string
}

func (r *stubRigReader) CanLoad(path string) bool {
	return path != ""
}

func (r *stubRigReader) Load(path string) (*model.Rig, error) {
	r.path = path
	return r.rig, nil
}

type capturingRigWriter struct {
	path string
	rig  *model.Rig
	opts moutput.SaveOptions
}

func (w *capturingRigWriter) Save(path string, rig *model.Rig, opts moutput.SaveOptions) error {
	w.path = path
	w.rig = rig
	w.opts = opts
	return nil
}
