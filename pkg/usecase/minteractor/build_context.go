// 指示: miu200521358
package minteractor

import (
	"github.com/miu200521358/mu_poser2rig/pkg/domain/model"
	"github.com/miu200521358/mu_poser2rig/pkg/domain/model/merrors"
)

// BuildPhase はリグ生成工程を表す。
type BuildPhase int

const (
	PHASE_IDLE BuildPhase = iota
	PHASE_VALIDATE
	PHASE_NORMALIZE_TRANSFORMS
	PHASE_REPAIR
	PHASE_RENAME
	PHASE_CHAINS
	PHASE_CONTROLS
	PHASE_CLEANUP
	PHASE_ROTATION_MODES
	PHASE_SHAPES
	PHASE_CONSTRAINTS
	PHASE_MIRROR
	PHASE_DRIVERS
	PHASE_FINALIZE
	PHASE_DONE
)

var buildPhaseNames = map[BuildPhase]string{
	PHASE_IDLE:                 "idle",
	PHASE_VALIDATE:             "validate",
	PHASE_NORMALIZE_TRANSFORMS: "normalize_transforms",
	PHASE_REPAIR:               "repair",
	PHASE_RENAME:               "rename",
	PHASE_CHAINS:               "chains",
	PHASE_CONTROLS:             "controls",
	PHASE_CLEANUP:              "cleanup",
	PHASE_ROTATION_MODES:       "rotation_modes",
	PHASE_SHAPES:               "shapes",
	PHASE_CONSTRAINTS:          "constraints",
	PHASE_MIRROR:               "mirror",
	PHASE_DRIVERS:              "drivers",
	PHASE_FINALIZE:             "finalize",
	PHASE_DONE:                 "done",
}

// String は工程名を返す。
func (p BuildPhase) String() string {
	if name, ok := buildPhaseNames[p]; ok {
		return name
	}
	return "unknown"
}

// EditMode はアーマチュアの編集モードを表す。
type EditMode string

const (
	MODE_OBJECT EditMode = "OBJECT"
	MODE_EDIT   EditMode = "EDIT"
	MODE_POSE   EditMode = "POSE"
)

// modeEdges は許可されたモード遷移。
var modeEdges = map[EditMode]map[EditMode]struct{}{
	MODE_OBJECT: {MODE_EDIT: {}, MODE_POSE: {}},
	MODE_EDIT:   {MODE_OBJECT: {}, MODE_POSE: {}},
	MODE_POSE:   {MODE_OBJECT: {}, MODE_EDIT: {}},
}

// RigBuildContext はリグ生成中の文書・工程・モードを保持する。
type RigBuildContext struct {
	rig    *model.Rig
	phase  BuildPhase
	mode   EditMode
	chains *ChainRegistry
}

// NewRigBuildContext はオブジェクトモードの生成コンテキストを作る。
func NewRigBuildContext(rig *model.Rig) *RigBuildContext {
	return &RigBuildContext{
		rig:    rig,
		phase:  PHASE_IDLE,
		mode:   MODE_OBJECT,
		chains: NewChainRegistry(),
	}
}

// Rig は生成中のリグを返す。
func (c *RigBuildContext) Rig() *model.Rig {
	return c.rig
}

// Phase は現在の工程を返す。
func (c *RigBuildContext) Phase() BuildPhase {
	return c.phase
}

// Mode は現在のモードを返す。
func (c *RigBuildContext) Mode() EditMode {
	return c.mode
}

// Chains はチェーン登録簿を返す。
func (c *RigBuildContext) Chains() *ChainRegistry {
	return c.chains
}

// Advance は次の工程へ進む。順序を飛ばす遷移は拒否する。
func (c *RigBuildContext) Advance(next BuildPhase) error {
	if next != c.phase+1 {
		return merrors.NewPhaseOrderError(c.phase.String(), next.String())
	}
	c.phase = next
	return nil
}

// SetMode はモードを切り替える。同一モードへの切り替えと未定義の遷移は拒否する。
func (c *RigBuildContext) SetMode(mode EditMode) error {
	edges, ok := modeEdges[c.mode]
	if !ok {
		return merrors.NewModeMismatchError(string(mode), string(c.mode))
	}
	if _, ok := edges[mode]; !ok {
		return merrors.NewModeMismatchError(string(mode), string(c.mode))
	}
	c.mode = mode
	return nil
}

// requireMode は現在のモードが期待通りか検証する。
func (c *RigBuildContext) requireMode(mode EditMode) error {
	if c.mode != mode {
		return merrors.NewModeMismatchError(string(mode), string(c.mode))
	}
	return nil
}

// bone は名前でボーンを取得する。
func (c *RigBuildContext) bone(name string) (*model.Bone, error) {
	return c.rig.Bones.GetByName(name)
}

// warn は警告をリグへ記録し、ログへ出力する。
func (c *RigBuildContext) warn(id string, format string, params ...any) {
	c.rig.AddWarning(id, format, params...)
	logRigDebug("[%s] "+format, append([]any{id}, params...)...)
}
