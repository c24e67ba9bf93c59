// 指示: miu200521358
package model

import "github.com/miu200521358/mu_poser2rig/pkg/domain/mmath"

// ColorPalette はボーン色のテーマを表す。
type ColorPalette string

const (
	PALETTE_DEFAULT ColorPalette = "DEFAULT"
	PALETTE_THEME01 ColorPalette = "THEME01"
	PALETTE_THEME03 ColorPalette = "THEME03"
	PALETTE_THEME04 ColorPalette = "THEME04"
	PALETTE_THEME09 ColorPalette = "THEME09"
	PALETTE_CUSTOM  ColorPalette = "CUSTOM"
)

// RGB は0..1の色成分を表す。
type RGB [3]float64

// CustomColor はカスタム色の通常/選択/アクティブ色を表す。
type CustomColor struct {
	Normal RGB `json:"normal" yaml:"normal"`
	Select RGB `json:"select" yaml:"select"`
	Active RGB `json:"active" yaml:"active"`
}

// BoneColor はボーンの表示色を表す。
type BoneColor struct {
	Palette ColorPalette `json:"palette" yaml:"palette"`
	Custom  *CustomColor `json:"custom,omitempty" yaml:"custom,omitempty"`
}

// PaletteColor はテーマ色を生成する。
func PaletteColor(palette ColorPalette) BoneColor {
	return BoneColor{Palette: palette}
}

// newBrightColor は色相から鮮やかなカスタム色を生成する。
func newBrightColor(hue float64, activeSaturation float64) BoneColor {
	full := hsv(hue, 1)
	return BoneColor{
		Palette: PALETTE_CUSTOM,
		Custom: &CustomColor{
			Normal: full,
			Select: full,
			Active: hsv(hue, activeSaturation),
		},
	}
}

func hsv(hue float64, saturation float64) RGB {
	r, g, b := mmath.HsvToRgb(hue, saturation, 1)
	return RGB{r, g, b}
}

// BrightRed は赤のカスタム色を返す。
func BrightRed() BoneColor { return newBrightColor(0.0, 0.25) }

// BrightOrange は橙のカスタム色を返す。
func BrightOrange() BoneColor { return newBrightColor(0.0875, 0.25) }

// BrightYellow は黄のカスタム色を返す。
func BrightYellow() BoneColor { return newBrightColor(0.167, 0.25) }

// BrightGreen は緑のカスタム色を返す。
func BrightGreen() BoneColor { return newBrightColor(0.25, 0.25) }

// BrightBlue は青のカスタム色を返す。アクティブ色のみ彩度が高い。
func BrightBlue() BoneColor { return newBrightColor(0.625, 0.625) }
