// 指示: miu200521358
package minteractor

import (
	"path/filepath"
	"testing"

	"github.com/miu200521358/mu_poser2rig/pkg/domain/model/merrors"
)

func TestConvertLoadsBuildsAndSaves(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "figure.yaml")
	reader := &stubRigReader{rig: newPoserSkeleton(t)}
	writer := &capturingRigWriter{}
	recorder := &recordingRecorder{}
	metrics := &recordingMetrics{}
	reporter := &recordingReporter{}
	uc := NewPoser2RigUsecase(Poser2RigUsecaseDeps{
		RigReader: reader,
		RigWriter: writer,
		Recorder:  recorder,
		Metrics:   metrics,
	})

	result, err := uc.Convert(ConvertRequest{
		InputPath:        input,
		Widgets:          []string{"WGT_Armature_CTRL-IK-Hand.L"},
		ProgressReporter: reporter,
	})
	if err != nil {
		t.Fatalf("convert failed: %v", err)
	}
	if reader.path != input {
		t.Fatalf("reader path: got=%s want=%s", reader.path, input)
	}
	want := filepath.Join(dir, "figure_rig.yaml")
	if result.OutputPath != want || writer.path != want {
		t.Fatalf("output path: result=%s writer=%s want=%s", result.OutputPath, writer.path, want)
	}
	if writer.rig != result.Rig {
		t.Fatalf("writer received a different rig")
	}
	if result.BuildID == "" {
		t.Fatalf("build id is empty")
	}
	if len(result.Warnings) != len(result.Rig.Warnings) {
		t.Fatalf("warnings not copied: %d/%d", len(result.Warnings), len(result.Rig.Warnings))
	}

	if len(recorder.records) != 1 {
		t.Fatalf("record count: %d", len(recorder.records))
	}
	record := recorder.records[0]
	if record.ID != result.BuildID || record.Status != BuildStatusSuccess || record.OutputPath != want {
		t.Fatalf("unexpected record: %+v", record)
	}
	if record.BoneCount != result.Rig.Bones.Len() || record.RigName != testRigName {
		t.Fatalf("unexpected record counts: %+v", record)
	}
	if len(metrics.builds) != 1 || metrics.builds[0] != BuildStatusSuccess {
		t.Fatalf("unexpected build metrics: %v", metrics.builds)
	}

	if len(reporter.events) < 4 {
		t.Fatalf("too few progress events: %d", len(reporter.events))
	}
	if reporter.events[0].Type != BuildProgressEventTypeInputValidated {
		t.Fatalf("first event: %s", reporter.events[0].Type)
	}
	if last := reporter.events[len(reporter.events)-1]; last.Type != BuildProgressEventTypeRigSaved {
		t.Fatalf("last event: %s", last.Type)
	}
}

func TestConvertRecordsFailure(t *testing.T) {
	writer := &capturingRigWriter{}
	recorder := &recordingRecorder{}
	metrics := &recordingMetrics{}
	uc := NewPoser2RigUsecase(Poser2RigUsecaseDeps{
		RigWriter: writer,
		Recorder:  recorder,
		Metrics:   metrics,
	})

	_, err := uc.Convert(ConvertRequest{
		RigData:    newPoserSkeletonWithout(t, "Head"),
		OutputPath: filepath.Join(t.TempDir(), "out.yaml"),
	})
	if !merrors.IsMissingRequiredBonesError(err) {
		t.Fatalf("expected missing bones, got %v", err)
	}
	if writer.path != "" {
		t.Fatalf("failed build must not be saved")
	}
	if len(recorder.records) != 1 || recorder.records[0].Status != BuildStatusFailure || recorder.records[0].Message == "" {
		t.Fatalf("unexpected records: %+v", recorder.records)
	}
	if len(metrics.builds) != 1 || metrics.builds[0] != BuildStatusFailure {
		t.Fatalf("unexpected build metrics: %v", metrics.builds)
	}
}

func TestConvertInMemoryWithoutOutput(t *testing.T) {
	uc := NewPoser2RigUsecase(Poser2RigUsecaseDeps{})
	result, err := uc.Convert(ConvertRequest{RigData: newPoserSkeleton(t)})
	if err != nil {
		t.Fatalf("convert failed: %v", err)
	}
	if result.OutputPath != "" {
		t.Fatalf("unexpected output path: %s", result.OutputPath)
	}
	if !result.Rig.Bones.Contains("root") {
		t.Fatalf("rig not built")
	}
}

func TestConvertRequiresInput(t *testing.T) {
	uc := NewPoser2RigUsecase(Poser2RigUsecaseDeps{RigReader: &stubRigReader{}})
	if _, err := uc.Convert(ConvertRequest{}); err == nil {
		t.Fatalf("expected error for empty input")
	}
}

func TestDefaultOutputPath(t *testing.T) {
	dir := filepath.Join("work", "figures")
	cases := []struct {
		name     string
		input    string
		compress bool
		want     string
	}{
		{name: "yaml", input: filepath.Join(dir, "figure.yaml"), want: filepath.Join(dir, "figure_rig.yaml")},
		{name: "json", input: filepath.Join(dir, "figure.json"), want: filepath.Join(dir, "figure_rig.json")},
		{name: "compressed input", input: filepath.Join(dir, "figure.json.zst"), want: filepath.Join(dir, "figure_rig.json")},
		{name: "compress output", input: filepath.Join(dir, "figure.yaml"), compress: true, want: filepath.Join(dir, "figure_rig.yaml.zst")},
		{name: "no extension", input: filepath.Join(dir, "figure"), want: filepath.Join(dir, "figure_rig.yaml")},
		{name: "empty", input: "", want: ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := defaultOutputPath(tc.input, tc.compress); got != tc.want {
				t.Fatalf("got=%s want=%s", got, tc.want)
			}
		})
	}
}
