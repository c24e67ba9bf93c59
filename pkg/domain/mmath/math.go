// 指示: miu200521358
package mmath

import "math"

// DegToRad は度をラジアンへ変換する。
func DegToRad(degrees float64) float64 {
	return degrees * math.Pi / 180.0
}

// RadToDeg はラジアンを度へ変換する。
func RadToDeg(radians float64) float64 {
	return radians * 180.0 / math.Pi
}

// Clamp は値を min-max に収める。
func Clamp(value float64, min float64, max float64) float64 {
	if value < min {
		return min
	}
	if value > max {
		return max
	}
	return value
}

// HsvToRgb はHSV(各0-1)をRGB(各0-1)へ変換する。
func HsvToRgb(h, s, v float64) (float64, float64, float64) {
	if s == 0.0 {
		return v, v, v
	}
	i := math.Floor(h * 6.0)
	f := h*6.0 - i
	p := v * (1.0 - s)
	q := v * (1.0 - s*f)
	t := v * (1.0 - s*(1.0-f))
	switch int(i) % 6 {
	case 0:
		return v, t, p
	case 1:
		return q, v, p
	case 2:
		return p, v, t
	case 3:
		return p, q, v
	case 4:
		return t, p, v
	default:
		return v, p, q
	}
}
