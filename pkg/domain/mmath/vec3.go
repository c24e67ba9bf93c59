// 指示: miu200521358
package mmath

import (
	"encoding/json"
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats/scalar"
	"gonum.org/v1/gonum/spatial/r3"
)

const (
	// VectorEpsilon はゼロベクトル判定の閾値。
	VectorEpsilon = 1e-10
)

// Vec3 は3次元ベクトルを表す。
type Vec3 struct {
	r3.Vec
}

var (
	// ZERO_VEC3 はゼロベクトル。
	ZERO_VEC3 = Vec3{}
	// UNIT_X_VEC3 はX軸単位ベクトル。
	UNIT_X_VEC3 = Vec3{Vec: r3.Vec{X: 1}}
	// UNIT_Y_VEC3 はY軸単位ベクトル。
	UNIT_Y_VEC3 = Vec3{Vec: r3.Vec{Y: 1}}
	// UNIT_Z_VEC3 はZ軸単位ベクトル。
	UNIT_Z_VEC3 = Vec3{Vec: r3.Vec{Z: 1}}
	// UNIT_Y_NEG_VEC3 はY軸負方向単位ベクトル。
	UNIT_Y_NEG_VEC3 = Vec3{Vec: r3.Vec{Y: -1}}
)

// NewVec3 は成分からベクトルを生成する。
func NewVec3(x, y, z float64) Vec3 {
	return Vec3{Vec: r3.Vec{X: x, Y: y, Z: z}}
}

// NewVec3FromSlice はスライスからベクトルを生成する。
func NewVec3FromSlice(values []float64) (Vec3, error) {
	if len(values) != 3 {
		return ZERO_VEC3, fmt.Errorf("ベクトルの要素数が3ではありません: %d", len(values))
	}
	return NewVec3(values[0], values[1], values[2]), nil
}

// Added は加算結果を返す。
func (v Vec3) Added(other Vec3) Vec3 {
	return Vec3{Vec: r3.Add(v.Vec, other.Vec)}
}

// Subed は減算結果を返す。
func (v Vec3) Subed(other Vec3) Vec3 {
	return Vec3{Vec: r3.Sub(v.Vec, other.Vec)}
}

// MuledScalar はスカラー倍した結果を返す。
func (v Vec3) MuledScalar(s float64) Vec3 {
	return Vec3{Vec: r3.Scale(s, v.Vec)}
}

// Dot は内積を返す。
func (v Vec3) Dot(other Vec3) float64 {
	return r3.Dot(v.Vec, other.Vec)
}

// Cross は外積を返す。
func (v Vec3) Cross(other Vec3) Vec3 {
	return Vec3{Vec: r3.Cross(v.Vec, other.Vec)}
}

// Length は長さを返す。
func (v Vec3) Length() float64 {
	return r3.Norm(v.Vec)
}

// IsZero はゼロベクトルとみなせるか判定する。
func (v Vec3) IsZero() bool {
	return v.Length() <= VectorEpsilon
}

// Normalized は正規化したベクトルを返す。ゼロベクトルはそのまま返す。
func (v Vec3) Normalized() Vec3 {
	if v.IsZero() {
		return ZERO_VEC3
	}
	return Vec3{Vec: r3.Unit(v.Vec)}
}

// MirroredX はX成分を反転したベクトルを返す。
func (v Vec3) MirroredX() Vec3 {
	return NewVec3(-v.X, v.Y, v.Z)
}

// NearEquals は許容誤差内で一致するか判定する。
func (v Vec3) NearEquals(other Vec3, epsilon float64) bool {
	return scalar.EqualWithinAbs(v.X, other.X, epsilon) &&
		scalar.EqualWithinAbs(v.Y, other.Y, epsilon) &&
		scalar.EqualWithinAbs(v.Z, other.Z, epsilon)
}

// Slice は成分をスライスで返す。
func (v Vec3) Slice() []float64 {
	return []float64{v.X, v.Y, v.Z}
}

// String は表示用文字列を返す。
func (v Vec3) String() string {
	return fmt.Sprintf("[%.5f, %.5f, %.5f]", v.X, v.Y, v.Z)
}

// MarshalJSON は [x, y, z] 形式で出力する。
func (v Vec3) MarshalJSON() ([]byte, error) {
	return json.Marshal(v.Slice())
}

// UnmarshalJSON は [x, y, z] 形式を読み込む。
func (v *Vec3) UnmarshalJSON(data []byte) error {
	var values []float64
	if err := json.Unmarshal(data, &values); err != nil {
		return err
	}
	parsed, err := NewVec3FromSlice(values)
	if err != nil {
		return err
	}
	*v = parsed
	return nil
}

// MarshalYAML は [x, y, z] 形式で出力する。
func (v Vec3) MarshalYAML() (any, error) {
	return v.Slice(), nil
}

// UnmarshalYAML は [x, y, z] 形式を読み込む。
func (v *Vec3) UnmarshalYAML(unmarshal func(any) error) error {
	var values []float64
	if err := unmarshal(&values); err != nil {
		return err
	}
	parsed, err := NewVec3FromSlice(values)
	if err != nil {
		return err
	}
	*v = parsed
	return nil
}

// IsFinite は全成分が有限値か判定する。
func (v Vec3) IsFinite() bool {
	for _, c := range v.Slice() {
		if math.IsNaN(c) || math.IsInf(c, 0) {
			return false
		}
	}
	return true
}
