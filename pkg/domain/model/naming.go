// 指示: miu200521358
package model

import (
	"strconv"
	"strings"
)

// Side はボーン名末尾の左右サフィックスを表す。
type Side string

const (
	// SIDE_NONE は左右なし。
	SIDE_NONE Side = ""
	// SIDE_LEFT は左側。
	SIDE_LEFT Side = ".L"
	// SIDE_RIGHT は右側。
	SIDE_RIGHT Side = ".R"
)

// String はサフィックス文字列を返す。
func (s Side) String() string {
	return string(s)
}

// Opposite は反対側を返す。
func (s Side) Opposite() Side {
	switch s {
	case SIDE_LEFT:
		return SIDE_RIGHT
	case SIDE_RIGHT:
		return SIDE_LEFT
	default:
		return SIDE_NONE
	}
}

// Index は左右別配列プロパティの添字を返す。左は0、右は1。
func (s Side) Index() int {
	if s == SIDE_RIGHT {
		return 1
	}
	return 0
}

// SideOf はボーン名末尾から左右を判定する。
func SideOf(name string) Side {
	switch {
	case strings.HasSuffix(name, string(SIDE_LEFT)):
		return SIDE_LEFT
	case strings.HasSuffix(name, string(SIDE_RIGHT)):
		return SIDE_RIGHT
	default:
		return SIDE_NONE
	}
}

// MirrorName は末尾の左右サフィックスを入れ替えた名前を返す。左右なしの場合はそのまま返す。
func MirrorName(name string) string {
	side := SideOf(name)
	if side == SIDE_NONE {
		return name
	}
	return strings.TrimSuffix(name, string(side)) + string(side.Opposite())
}

// Layer はボーンの層を表す名前プレフィックス。
type Layer string

const (
	// LAYER_SOURCE は読み込み直後の未加工ボーン。
	LAYER_SOURCE Layer = ""
	// LAYER_DEF は変形層。
	LAYER_DEF Layer = "DEF-"
	// LAYER_FK はFK層。
	LAYER_FK Layer = "FK-"
	// LAYER_IK はIK層。
	LAYER_IK Layer = "IK-"
	// LAYER_CTRL は操作用コントロール層。
	LAYER_CTRL Layer = "CTRL-"
	// LAYER_MCH は機構用中間層。
	LAYER_MCH Layer = "MCH-"
)

// Prefix は名前プレフィックスを返す。
func (l Layer) Prefix() string {
	return string(l)
}

// Token はプレフィックスからハイフンを除いた層名を返す。
func (l Layer) Token() string {
	return strings.TrimSuffix(string(l), "-")
}

// Name は役割と左右から層のボーン名を組み立てる。
func (l Layer) Name(role Role, side Side) string {
	return string(l) + string(role) + string(side)
}

// Swap は名前先頭の層プレフィックスを別の層へ置き換える。先頭が一致しない場合は空文字を返す。
func (l Layer) Swap(name string, to Layer) string {
	if l == LAYER_SOURCE || !strings.HasPrefix(name, string(l)) {
		return ""
	}
	return string(to) + strings.TrimPrefix(name, string(l))
}

// Role はボーンの論理的な役割名を表す。
type Role string

const (
	ROLE_ROOT          Role = "root"
	ROLE_PROPERTIES    Role = "PROPERTIES"
	ROLE_BODY          Role = "Body"
	ROLE_HIP           Role = "Hip"
	ROLE_LOWER_ABDOMEN Role = "LowerAbdomen"
	ROLE_ABDOMEN       Role = "Abdomen"
	ROLE_CHEST         Role = "Chest"
	ROLE_NECK          Role = "Neck"
	ROLE_HEAD          Role = "Head"
	ROLE_EYE           Role = "Eye"
	ROLE_COLLAR        Role = "Collar"
	ROLE_SHOULDER      Role = "Shoulder"
	ROLE_FOREARM       Role = "Forearm"
	ROLE_HAND          Role = "Hand"
	ROLE_BUTTOCK       Role = "Buttock"
	ROLE_THIGH         Role = "Thigh"
	ROLE_SHIN          Role = "Shin"
	ROLE_FOOT          Role = "Foot"
	ROLE_TOE           Role = "Toe"
)

// String は役割名を返す。
func (r Role) String() string {
	return string(r)
}

// Left は左側の名前を返す。
func (r Role) Left() string {
	return string(r) + string(SIDE_LEFT)
}

// Right は右側の名前を返す。
func (r Role) Right() string {
	return string(r) + string(SIDE_RIGHT)
}

// SourceLeft は読み込み元の左側ボーン名を返す。
func (r Role) SourceLeft() string {
	return "Left_" + string(r)
}

// SourceRight は読み込み元の右側ボーン名を返す。
func (r Role) SourceRight() string {
	return "Right_" + string(r)
}

// Finger は指の種類を表す。
type Finger string

const (
	FINGER_THUMB Finger = "Thumb"
	FINGER_INDEX Finger = "Index"
	FINGER_MID   Finger = "Mid"
	FINGER_RING  Finger = "Ring"
	FINGER_PINKY Finger = "Pinky"
)

// Fingers は親指から小指までの順序を保持する。
var Fingers = []Finger{FINGER_THUMB, FINGER_INDEX, FINGER_MID, FINGER_RING, FINGER_PINKY}

// FingerJointCount は指1本あたりの関節数。
const FingerJointCount = 3

// Index は指プロパティ配列の添字を返す。親指が0、小指が4。
func (f Finger) Index() int {
	for i, finger := range Fingers {
		if finger == f {
			return i
		}
	}
	return -1
}

// Joint は1始まりの関節番号の役割名を返す。
func (f Finger) Joint(number int) Role {
	return Role(string(f) + "_" + strconv.Itoa(number))
}

// Chain は指の関節役割を根元から順に返す。
func (f Finger) Chain() []Role {
	roles := make([]Role, 0, FingerJointCount)
	for i := 1; i <= FingerJointCount; i++ {
		roles = append(roles, f.Joint(i))
	}
	return roles
}

// Role は指全体を表す役割名を返す。
func (f Finger) Role() Role {
	return Role(f)
}

// ChainKind は論理チェーンの種類を表す。
type ChainKind string

const (
	CHAIN_SPINE  ChainKind = "spine"
	CHAIN_ARM    ChainKind = "arm"
	CHAIN_LEG    ChainKind = "leg"
	CHAIN_FINGER ChainKind = "finger"
)

var (
	// SpineChain は背骨の論理チェーン。
	SpineChain = []Role{ROLE_HIP, ROLE_LOWER_ABDOMEN, ROLE_ABDOMEN, ROLE_CHEST, ROLE_NECK, ROLE_HEAD}
	// ArmChain は腕の論理チェーン。
	ArmChain = []Role{ROLE_COLLAR, ROLE_SHOULDER, ROLE_FOREARM, ROLE_HAND}
	// LegChain は脚の論理チェーン。
	LegChain = []Role{ROLE_BUTTOCK, ROLE_THIGH, ROLE_SHIN, ROLE_FOOT, ROLE_TOE}
)

// RequiredSourceBones はリグ生成に必須の読み込み元ボーン名。
var RequiredSourceBones = []string{
	ROLE_BODY.String(),
	ROLE_HIP.String(),
	ROLE_CHEST.String(),
	ROLE_HEAD.String(),
	ROLE_NECK.String(),
}
