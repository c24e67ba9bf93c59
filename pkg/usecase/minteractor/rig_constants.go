// 指示: miu200521358
package minteractor

// ボーン断面サイズ。
const (
	boneSizeDef  = 0.001
	boneSizeIK   = 0.004
	boneSizeFK   = 0.002
	boneSizeCtrl = 0.01
	boneSizePole = 0.002
)

const (
	// tipExtension は目とつま先の先端を延長する量。
	tipExtension = 0.1
	// rootTailY はrootボーンのテールY座標。
	rootTailY = 0.5
	// propertiesTailY はPROPERTIESボーンのテールY座標。
	propertiesTailY = 0.25
	// ikControlShrink はIKコントロールを元ボーンより短くする量。
	ikControlShrink = 0.01
	// poleDepth はポールボーンの長さ。
	poleDepth = 0.125
	// fingerCtrlLength は指カールコントロールの長さ。
	fingerCtrlLength = 0.025
	// fingerCtrlSizeMultiplier は指カールコントロールの断面倍率。
	fingerCtrlSizeMultiplier = 3.0
	// fingersCtrlLength は手ごとの指コントロール親の長さ。
	fingersCtrlLength = 0.05
	// fingerNudge はIK指の第2関節を曲げ方向へずらす量。
	fingerNudge = 0.005
)
