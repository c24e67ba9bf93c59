// 指示: miu200521358
package model

import (
	"fmt"
	"regexp"
	"strconv"

	"github.com/miu200521358/mu_poser2rig/pkg/domain/mmath"
	"github.com/miu200521358/mu_poser2rig/pkg/domain/model/merrors"
	"gopkg.in/Knetic/govaluate.v3"
)

const (
	// DRIVER_SCRIPTED はスクリプト式ドライバー。
	DRIVER_SCRIPTED = "SCRIPTED"
	// DRIVER_VAR_SINGLE_PROP は単一プロパティ参照の変数種別。
	DRIVER_VAR_SINGLE_PROP = "SINGLE_PROP"
	// DRIVER_PROPERTY_INFLUENCE はコンストレイント影響度を表すプロパティ名。
	DRIVER_PROPERTY_INFLUENCE = "influence"
)

// dataPathPattern は pose.bones["BONE"]["prop"][i] 形式のデータパスを解析する。
var dataPathPattern = regexp.MustCompile(`^pose\.bones\["([^"]+)"\]\["([^"]+)"\](?:\[(\d+)\])?$`)

// DriverVariable はドライバー式の入力変数を表す。
type DriverVariable struct {
	Name     string `json:"name" yaml:"name"`
	Type     string `json:"type" yaml:"type"`
	IDType   string `json:"id_type" yaml:"id_type"`
	ID       string `json:"id" yaml:"id"`
	DataPath string `json:"data_path" yaml:"data_path"`
}

// Driver はコンストレイントの数値プロパティへ結びつけたスクリプト式を表す。
type Driver struct {
	BoneName       string           `json:"bone" yaml:"bone"`
	ConstraintName string           `json:"constraint" yaml:"constraint"`
	Property       string           `json:"property" yaml:"property"`
	Type           string           `json:"type" yaml:"type"`
	Expression     string           `json:"expression" yaml:"expression"`
	Variables      []DriverVariable `json:"variables" yaml:"variables"`
}

// PropertyDataPath はPROPERTIESボーンのプロパティへのデータパスを組み立てる。添字が負の場合は添字なし。
func PropertyDataPath(propertyName string, index int) string {
	path := fmt.Sprintf(`%s["%s"]`, propertyBonePath(ROLE_PROPERTIES.String()), propertyName)
	if index >= 0 {
		path += fmt.Sprintf("[%d]", index)
	}
	return path
}

func propertyBonePath(boneName string) string {
	return fmt.Sprintf(`pose.bones["%s"]`, boneName)
}

// ParsePropertyDataPath はデータパスをボーン名・プロパティ名・添字へ分解する。添字なしは-1。
func ParsePropertyDataPath(path string) (string, string, int, error) {
	matches := dataPathPattern.FindStringSubmatch(path)
	if matches == nil {
		return "", "", 0, fmt.Errorf("データパスの形式が不正です: %s", path)
	}
	index := -1
	if matches[3] != "" {
		parsed, err := strconv.Atoi(matches[3])
		if err != nil {
			return "", "", 0, fmt.Errorf("データパスの添字が不正です: %s: %w", path, err)
		}
		index = parsed
	}
	return matches[1], matches[2], index, nil
}

// AddDriver はドライバーを登録する。同じコンストレイントのプロパティに既存がある場合は置き換える。
func (r *Rig) AddDriver(driver *Driver) {
	if driver == nil {
		return
	}
	for i, d := range r.Drivers {
		if d != nil && d.BoneName == driver.BoneName && d.ConstraintName == driver.ConstraintName && d.Property == driver.Property {
			r.Drivers[i] = driver
			return
		}
	}
	r.Drivers = append(r.Drivers, driver)
}

// FindDriver はコンストレイントのプロパティに結びついたドライバーを探す。
func (r *Rig) FindDriver(boneName string, constraintName string, property string) *Driver {
	for _, d := range r.Drivers {
		if d != nil && d.BoneName == boneName && d.ConstraintName == constraintName && d.Property == property {
			return d
		}
	}
	return nil
}

// EvaluateDrivers は全ドライバーを評価し、結果を対象コンストレイントへ書き込む。
func (r *Rig) EvaluateDrivers() error {
	for _, d := range r.Drivers {
		if d == nil {
			continue
		}
		if err := r.evaluateDriver(d); err != nil {
			return merrors.NewDriverEvaluationError(d.BoneName+"/"+d.ConstraintName, err)
		}
	}
	return nil
}

func (r *Rig) evaluateDriver(d *Driver) error {
	bone, err := r.Bones.GetByName(d.BoneName)
	if err != nil {
		return err
	}
	constraint := bone.FindConstraint(d.ConstraintName)
	if constraint == nil {
		return fmt.Errorf("コンストレイントが見つかりません: %s", d.ConstraintName)
	}
	if d.Property != DRIVER_PROPERTY_INFLUENCE {
		return fmt.Errorf("未対応のドライバー対象プロパティです: %s", d.Property)
	}

	parameters := make(map[string]interface{}, len(d.Variables))
	for _, v := range d.Variables {
		value, err := r.resolveVariable(v)
		if err != nil {
			return err
		}
		parameters[v.Name] = value
	}

	expression, err := govaluate.NewEvaluableExpression(d.Expression)
	if err != nil {
		return fmt.Errorf("ドライバー式の解析に失敗しました: %s: %w", d.Expression, err)
	}
	result, err := expression.Evaluate(parameters)
	if err != nil {
		return fmt.Errorf("ドライバー式の評価に失敗しました: %s: %w", d.Expression, err)
	}
	value, err := toFloat(result)
	if err != nil {
		return err
	}
	constraint.Influence = mmath.Clamp(value, 0, 1)
	return nil
}

func (r *Rig) resolveVariable(v DriverVariable) (float64, error) {
	if v.Type != DRIVER_VAR_SINGLE_PROP {
		return 0, fmt.Errorf("未対応のドライバー変数種別です: %s", v.Type)
	}
	boneName, propertyName, index, err := ParsePropertyDataPath(v.DataPath)
	if err != nil {
		return 0, err
	}
	property, err := r.customProperty(boneName, propertyName)
	if err != nil {
		return 0, err
	}
	return property.Value(index)
}

func toFloat(value interface{}) (float64, error) {
	switch v := value.(type) {
	case float64:
		return v, nil
	case bool:
		if v {
			return 1, nil
		}
		return 0, nil
	default:
		return 0, fmt.Errorf("ドライバー式の結果が数値ではありません: %v", value)
	}
}
