// 指示: miu200521358
package model

import (
	"fmt"

	"github.com/miu200521358/mu_poser2rig/pkg/domain/mmath"
)

// PropertyKind はカスタムプロパティの値種別を表す。
type PropertyKind string

const (
	PROPERTY_BOOL        PropertyKind = "BOOL"
	PROPERTY_FLOAT       PropertyKind = "FLOAT"
	PROPERTY_FLOAT_ARRAY PropertyKind = "FLOAT_ARRAY"
)

// CustomProperty はPROPERTIESボーンに保持するスライダー値を表す。
type CustomProperty struct {
	Name        string       `json:"name" yaml:"name"`
	Kind        PropertyKind `json:"kind" yaml:"kind"`
	Values      []float64    `json:"values" yaml:"values"`
	Min         float64      `json:"min" yaml:"min"`
	Max         float64      `json:"max" yaml:"max"`
	Overridable bool         `json:"overridable" yaml:"overridable"`
}

// NewBoolProperty は真偽値プロパティを生成する。
func NewBoolProperty(name string, value bool) *CustomProperty {
	v := 0.0
	if value {
		v = 1.0
	}
	return &CustomProperty{Name: name, Kind: PROPERTY_BOOL, Values: []float64{v}, Min: 0, Max: 1, Overridable: true}
}

// NewFloatProperty はスカラー値プロパティを生成する。
func NewFloatProperty(name string, value float64, min float64, max float64) *CustomProperty {
	return &CustomProperty{
		Name:        name,
		Kind:        PROPERTY_FLOAT,
		Values:      []float64{mmath.Clamp(value, min, max)},
		Min:         min,
		Max:         max,
		Overridable: true,
	}
}

// NewFloatArrayProperty は固定長配列プロパティを生成する。
func NewFloatArrayProperty(name string, size int, value float64, min float64, max float64) *CustomProperty {
	values := make([]float64, size)
	for i := range values {
		values[i] = mmath.Clamp(value, min, max)
	}
	return &CustomProperty{Name: name, Kind: PROPERTY_FLOAT_ARRAY, Values: values, Min: min, Max: max, Overridable: true}
}

// IsArray は配列プロパティか判定する。
func (p *CustomProperty) IsArray() bool {
	return p != nil && p.Kind == PROPERTY_FLOAT_ARRAY
}

// Value は添字の値を返す。スカラーは添字-1で参照する。
func (p *CustomProperty) Value(index int) (float64, error) {
	i, err := p.resolveIndex(index)
	if err != nil {
		return 0, err
	}
	return p.Values[i], nil
}

// SetValue は範囲内へ丸めて値を書き込む。
func (p *CustomProperty) SetValue(index int, value float64) error {
	i, err := p.resolveIndex(index)
	if err != nil {
		return err
	}
	if p.Kind == PROPERTY_BOOL {
		if value != 0 {
			value = 1
		}
	}
	p.Values[i] = mmath.Clamp(value, p.Min, p.Max)
	return nil
}

func (p *CustomProperty) resolveIndex(index int) (int, error) {
	if p == nil || len(p.Values) == 0 {
		return 0, fmt.Errorf("カスタムプロパティが空です")
	}
	if !p.IsArray() {
		if index > 0 {
			return 0, fmt.Errorf("スカラープロパティに添字は指定できません: %s[%d]", p.Name, index)
		}
		return 0, nil
	}
	if index < 0 || index >= len(p.Values) {
		return 0, fmt.Errorf("プロパティ添字が範囲外です: %s[%d] size=%d", p.Name, index, len(p.Values))
	}
	return index, nil
}
