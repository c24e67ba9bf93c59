// 指示: miu200521358
package widget

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/miu200521358/mu_poser2rig/pkg/domain/model/merrors"
)

func TestLoadWidgetsFromMapping(t *testing.T) {
	path := filepath.Join(t.TempDir(), "widgets.yaml")
	body := "widgets:\n  - WGT_Armature_CTRL-IK-Hand.L\n  - ' WGT_Armature_root '\n  - ''\n  - WGT_Armature_CTRL-IK-Hand.L\n"
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write failed: %v", err)
	}

	widgets, err := NewWidgetRepository().LoadWidgets(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	want := []string{"WGT_Armature_CTRL-IK-Hand.L", "WGT_Armature_root"}
	if len(widgets) != len(want) {
		t.Fatalf("widget count: got=%v want=%v", widgets, want)
	}
	for i := range want {
		if widgets[i] != want[i] {
			t.Fatalf("widget %d: got=%s want=%s", i, widgets[i], want[i])
		}
	}
}

func TestLoadWidgetsFromJsonArray(t *testing.T) {
	path := filepath.Join(t.TempDir(), "widgets.json")
	if err := os.WriteFile(path, []byte(`["WGT_Armature_CTRL-Torso", "WGT_Armature_PROPERTIES"]`), 0o644); err != nil {
		t.Fatalf("write failed: %v", err)
	}
	widgets, err := NewWidgetRepository().LoadWidgets(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if len(widgets) != 2 || widgets[1] != "WGT_Armature_PROPERTIES" {
		t.Fatalf("unexpected widgets: %v", widgets)
	}
}

func TestLoadWidgetsErrors(t *testing.T) {
	r := NewWidgetRepository()
	if _, err := r.LoadWidgets(filepath.Join(t.TempDir(), "missing.yaml")); !merrors.IsIoFileNotFound(err) {
		t.Fatalf("expected file not found, got %v", err)
	}
	if _, err := r.LoadWidgets("widgets.blend"); merrors.ExtractErrorID(err) != merrors.ErrorIDIoExtInvalid {
		t.Fatalf("expected ext invalid, got %v", err)
	}
}
