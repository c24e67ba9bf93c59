// 指示: miu200521358
package model

import "strings"

// ConstraintType はコンストレイントの種類を表す。
type ConstraintType string

const (
	CONSTRAINT_DAMPED_TRACK    ConstraintType = "DAMPED_TRACK"
	CONSTRAINT_COPY_LOCATION   ConstraintType = "COPY_LOCATION"
	CONSTRAINT_COPY_ROTATION   ConstraintType = "COPY_ROTATION"
	CONSTRAINT_COPY_TRANSFORMS ConstraintType = "COPY_TRANSFORMS"
	CONSTRAINT_LIMIT_ROTATION  ConstraintType = "LIMIT_ROTATION"
	CONSTRAINT_LIMIT_SCALE     ConstraintType = "LIMIT_SCALE"
	CONSTRAINT_TRANSFORM       ConstraintType = "TRANSFORM"
	CONSTRAINT_IK              ConstraintType = "IK"
)

// defaultConstraintNames は種類ごとの既定コンストレイント名。
var defaultConstraintNames = map[ConstraintType]string{
	CONSTRAINT_DAMPED_TRACK:    "Damped Track",
	CONSTRAINT_COPY_LOCATION:   "Copy Location",
	CONSTRAINT_COPY_ROTATION:   "Copy Rotation",
	CONSTRAINT_COPY_TRANSFORMS: "Copy Transforms",
	CONSTRAINT_LIMIT_ROTATION:  "Limit Rotation",
	CONSTRAINT_LIMIT_SCALE:     "Limit Scale",
	CONSTRAINT_TRANSFORM:       "Transformation",
	CONSTRAINT_IK:              "IK",
}

// ConstraintSpace は評価空間を表す。
type ConstraintSpace string

const (
	SPACE_WORLD ConstraintSpace = "WORLD"
	SPACE_LOCAL ConstraintSpace = "LOCAL"
)

// MixMode は合成方法を表す。
type MixMode string

const (
	MIX_REPLACE MixMode = "REPLACE"
	MIX_ADD     MixMode = "ADD"
)

// TrackAxis は追従軸を表す。
type TrackAxis string

const (
	TRACK_Y TrackAxis = "TRACK_Y"
)

// Axis は座標軸を表す。
type Axis string

const (
	AXIS_X Axis = "X"
	AXIS_Y Axis = "Y"
	AXIS_Z Axis = "Z"
)

// TransformMap はトランスフォームの種別を表す。
type TransformMap string

const (
	MAP_LOCATION TransformMap = "LOCATION"
	MAP_ROTATION TransformMap = "ROTATION"
	MAP_SCALE    TransformMap = "SCALE"
)

// AxisLimit は1軸分の制限範囲を表す。回転はラジアンで保持する。
type AxisLimit struct {
	UseMin bool    `json:"use_min,omitempty" yaml:"use_min,omitempty"`
	UseMax bool    `json:"use_max,omitempty" yaml:"use_max,omitempty"`
	Min    float64 `json:"min" yaml:"min"`
	Max    float64 `json:"max" yaml:"max"`
}

// IKSettings はIKソルバーの設定を表す。
type IKSettings struct {
	PoleTarget string  `json:"pole_target,omitempty" yaml:"pole_target,omitempty"`
	PoleAngle  float64 `json:"pole_angle" yaml:"pole_angle"`
	ChainCount int     `json:"chain_count" yaml:"chain_count"`
}

// TransformSettings はトランスフォーム変換コンストレイントの範囲を表す。回転はラジアンで保持する。
type TransformSettings struct {
	MapFrom   TransformMap `json:"map_from" yaml:"map_from"`
	MapTo     TransformMap `json:"map_to" yaml:"map_to"`
	FromMin   [3]float64   `json:"from_min" yaml:"from_min"`
	FromMax   [3]float64   `json:"from_max" yaml:"from_max"`
	ToMin     [3]float64   `json:"to_min" yaml:"to_min"`
	ToMax     [3]float64   `json:"to_max" yaml:"to_max"`
	MapToFrom [3]Axis      `json:"map_to_from" yaml:"map_to_from"`
	MixMode   MixMode      `json:"mix_mode" yaml:"mix_mode"`
}

// Constraint はボーンへ付与するコンストレイントを表す。ターゲットは同一アーマチュア内のボーン名で参照する。
type Constraint struct {
	Name        string             `json:"name" yaml:"name"`
	Type        ConstraintType     `json:"type" yaml:"type"`
	Target      string             `json:"target,omitempty" yaml:"target,omitempty"`
	Influence   float64            `json:"influence" yaml:"influence"`
	Enabled     bool               `json:"enabled" yaml:"enabled"`
	OwnerSpace  ConstraintSpace    `json:"owner_space" yaml:"owner_space"`
	TargetSpace ConstraintSpace    `json:"target_space" yaml:"target_space"`
	UseAxis     [3]bool            `json:"use_axis" yaml:"use_axis"`
	InvertAxis  [3]bool            `json:"invert_axis" yaml:"invert_axis"`
	MixMode     MixMode            `json:"mix_mode,omitempty" yaml:"mix_mode,omitempty"`
	UseOffset   bool               `json:"use_offset,omitempty" yaml:"use_offset,omitempty"`
	HeadTail    float64            `json:"head_tail,omitempty" yaml:"head_tail,omitempty"`
	TrackAxis   TrackAxis          `json:"track_axis,omitempty" yaml:"track_axis,omitempty"`
	Limits      [3]AxisLimit       `json:"limits" yaml:"limits"`
	IK          *IKSettings        `json:"ik,omitempty" yaml:"ik,omitempty"`
	Transform   *TransformSettings `json:"transform,omitempty" yaml:"transform,omitempty"`
}

// NewConstraint は既定値を持つコンストレイントを生成する。名前が空の場合は種類の既定名を使う。
func NewConstraint(constraintType ConstraintType, name string) *Constraint {
	if name == "" {
		name = defaultConstraintNames[constraintType]
	}
	c := &Constraint{
		Name:        name,
		Type:        constraintType,
		Influence:   1.0,
		Enabled:     true,
		OwnerSpace:  SPACE_WORLD,
		TargetSpace: SPACE_WORLD,
		UseAxis:     [3]bool{true, true, true},
		MixMode:     MIX_REPLACE,
	}
	switch constraintType {
	case CONSTRAINT_DAMPED_TRACK:
		c.TrackAxis = TRACK_Y
	case CONSTRAINT_LIMIT_SCALE:
		for i := range c.Limits {
			c.Limits[i] = AxisLimit{Min: 1, Max: 1}
		}
	case CONSTRAINT_IK:
		c.IK = &IKSettings{}
	case CONSTRAINT_TRANSFORM:
		c.Transform = &TransformSettings{
			MapFrom:   MAP_LOCATION,
			MapTo:     MAP_LOCATION,
			MapToFrom: [3]Axis{AXIS_X, AXIS_Y, AXIS_Z},
			MixMode:   MIX_ADD,
		}
	}
	return c
}

// IsLayerCopy はFK/IKブレンド対象となるIK由来の全トランスフォームコピーか判定する。
func (c *Constraint) IsLayerCopy() bool {
	if c == nil {
		return false
	}
	return c.Type == CONSTRAINT_COPY_TRANSFORMS && strings.Contains(c.Name, LAYER_IK.Token())
}

// References はコンストレイントが参照するボーン名を返す。
func (c *Constraint) References() []string {
	if c == nil {
		return nil
	}
	names := make([]string, 0, 2)
	if c.Target != "" {
		names = append(names, c.Target)
	}
	if c.IK != nil && c.IK.PoleTarget != "" {
		names = append(names, c.IK.PoleTarget)
	}
	return names
}

// renameReference は参照ボーン名を置き換える。
func (c *Constraint) renameReference(oldName string, newName string) {
	if c.Target == oldName {
		c.Target = newName
	}
	if c.IK != nil && c.IK.PoleTarget == oldName {
		c.IK.PoleTarget = newName
	}
}
