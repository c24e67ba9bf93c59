// 指示: miu200521358
package mmath

import (
	"github.com/go-gl/mathgl/mgl64"
)

// Quaternion は回転を表すクォータニオン。
type Quaternion struct {
	q mgl64.Quat
}

// NewQuaternion は単位クォータニオンを生成する。
func NewQuaternion() Quaternion {
	return Quaternion{q: mgl64.QuatIdent()}
}

// NewQuaternionFromAxisAngle は軸と角度(ラジアン)から回転を生成する。
func NewQuaternionFromAxisAngle(axis Vec3, radians float64) Quaternion {
	normalized := axis.Normalized()
	if normalized.IsZero() {
		return NewQuaternion()
	}
	return Quaternion{q: mgl64.QuatRotate(radians, toMgl(normalized))}
}

// NewQuaternionFromDegrees はXYZオイラー角(度)から回転を生成する。
func NewQuaternionFromDegrees(x, y, z float64) Quaternion {
	return Quaternion{q: mgl64.AnglesToQuat(DegToRad(x), DegToRad(y), DegToRad(z), mgl64.XYZ)}
}

// NewQuaternionBetween は from 方向を to 方向へ向ける最小回転を生成する。
func NewQuaternionBetween(from Vec3, to Vec3) Quaternion {
	if from.IsZero() || to.IsZero() {
		return NewQuaternion()
	}
	return Quaternion{q: mgl64.QuatBetweenVectors(toMgl(from.Normalized()), toMgl(to.Normalized()))}
}

// Muled は q * other の合成回転を返す。
func (q Quaternion) Muled(other Quaternion) Quaternion {
	return Quaternion{q: q.q.Mul(other.q).Normalize()}
}

// MulVec3 はベクトルを回転させる。
func (q Quaternion) MulVec3(v Vec3) Vec3 {
	return fromMgl(q.q.Rotate(toMgl(v)))
}

// Inverted は逆回転を返す。
func (q Quaternion) Inverted() Quaternion {
	return Quaternion{q: q.q.Inverse()}
}

// NearEquals は許容誤差内で同じ回転か判定する。
func (q Quaternion) NearEquals(other Quaternion, epsilon float64) bool {
	return q.q.ApproxEqualThreshold(other.q, epsilon) ||
		q.q.ApproxEqualThreshold(other.q.Scale(-1), epsilon)
}

func toMgl(v Vec3) mgl64.Vec3 {
	return mgl64.Vec3{v.X, v.Y, v.Z}
}

func fromMgl(v mgl64.Vec3) Vec3 {
	return NewVec3(v[0], v[1], v[2])
}
