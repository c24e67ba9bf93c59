// 指示: miu200521358
// Package merrors はリグ生成で発生するエラーを識別IDつきで提供する。
package merrors

import (
	"errors"
	"fmt"
	"strings"
)

// エラーID一覧。
const (
	ErrorIDNotArmature          = "21101"
	ErrorIDMissingRequiredBones = "21102"
	ErrorIDAlreadyRigged        = "21103"
	ErrorIDBoneNotFound         = "21201"
	ErrorIDNameConflict         = "21202"
	ErrorIDParentCycle          = "21203"
	ErrorIDCollectionNotFound   = "21204"
	ErrorIDModeMismatch         = "21301"
	ErrorIDPhaseOrder           = "21302"
	ErrorIDPropertyNotFound     = "21401"
	ErrorIDDriverEvaluation     = "21402"
	ErrorIDIoFileNotFound       = "22101"
	ErrorIDIoExtInvalid         = "22102"
	ErrorIDIoParseFailed        = "22103"
	ErrorIDIoSaveFailed         = "22104"
)

// RigError は識別IDつきのリグ生成エラーを表す。
type RigError struct {
	ID      string
	Message string
	Names   []string
	Cause   error
}

// Error はエラーメッセージを返す。
func (e *RigError) Error() string {
	if e == nil {
		return ""
	}
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

// Unwrap は原因エラーを返す。
func (e *RigError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Cause
}

// ExtractErrorID はエラー連鎖からRigErrorのIDを取り出す。
func ExtractErrorID(err error) string {
	var rigErr *RigError
	if errors.As(err, &rigErr) {
		return rigErr.ID
	}
	return ""
}

// hasID はエラー連鎖に指定IDのRigErrorが含まれるか判定する。
func hasID(err error, id string) bool {
	return err != nil && ExtractErrorID(err) == id
}

// NewNotArmatureError は対象がアーマチュアでない場合のエラーを生成する。
func NewNotArmatureError(objectType string) error {
	return &RigError{
		ID:      ErrorIDNotArmature,
		Message: fmt.Sprintf("アーマチュアが選択されていません: type=%s", objectType),
	}
}

// NewMissingRequiredBonesError は必須ボーン不足エラーを生成する。
func NewMissingRequiredBonesError(names []string) error {
	return &RigError{
		ID: ErrorIDMissingRequiredBones,
		Message: fmt.Sprintf(
			"必須ボーンが不足しています: %s (Poserから読み込んだアーマチュアか確認してください)",
			strings.Join(names, ", "),
		),
		Names: append([]string(nil), names...),
	}
}

// NewAlreadyRiggedError はリグ生成済みアーマチュアへの再実行エラーを生成する。
func NewAlreadyRiggedError(marker string) error {
	return &RigError{
		ID:      ErrorIDAlreadyRigged,
		Message: fmt.Sprintf("リグ生成済みのアーマチュアです: %s が存在します", marker),
		Names:   []string{marker},
	}
}

// NewBoneNotFoundError はボーン未検出エラーを生成する。
func NewBoneNotFoundError(name string) error {
	return &RigError{
		ID:      ErrorIDBoneNotFound,
		Message: fmt.Sprintf("ボーンが見つかりません: %s", name),
		Names:   []string{name},
	}
}

// NewNameConflictError はボーン名重複エラーを生成する。
func NewNameConflictError(name string) error {
	return &RigError{
		ID:      ErrorIDNameConflict,
		Message: fmt.Sprintf("ボーン名が重複しています: %s", name),
		Names:   []string{name},
	}
}

// NewParentCycleError は親子関係の循環エラーを生成する。
func NewParentCycleError(name string, parentName string) error {
	return &RigError{
		ID:      ErrorIDParentCycle,
		Message: fmt.Sprintf("親子関係が循環します: bone=%s parent=%s", name, parentName),
		Names:   []string{name, parentName},
	}
}

// NewCollectionNotFoundError はボーンコレクション未検出エラーを生成する。
func NewCollectionNotFoundError(name string) error {
	return &RigError{
		ID:      ErrorIDCollectionNotFound,
		Message: fmt.Sprintf("ボーンコレクションが見つかりません: %s", name),
		Names:   []string{name},
	}
}

// NewModeMismatchError は編集モード不一致エラーを生成する。
func NewModeMismatchError(want string, got string) error {
	return &RigError{
		ID:      ErrorIDModeMismatch,
		Message: fmt.Sprintf("モードが不正です: want=%s got=%s", want, got),
	}
}

// NewPhaseOrderError は工程順序違反エラーを生成する。
func NewPhaseOrderError(from string, to string) error {
	return &RigError{
		ID:      ErrorIDPhaseOrder,
		Message: fmt.Sprintf("工程の遷移が不正です: %s -> %s", from, to),
	}
}

// NewPropertyNotFoundError はカスタムプロパティ未検出エラーを生成する。
func NewPropertyNotFoundError(name string) error {
	return &RigError{
		ID:      ErrorIDPropertyNotFound,
		Message: fmt.Sprintf("カスタムプロパティが見つかりません: %s", name),
		Names:   []string{name},
	}
}

// NewDriverEvaluationError はドライバー評価エラーを生成する。
func NewDriverEvaluationError(target string, cause error) error {
	return &RigError{
		ID:      ErrorIDDriverEvaluation,
		Message: fmt.Sprintf("ドライバーの評価に失敗しました: %s", target),
		Cause:   cause,
	}
}

// IsMissingRequiredBonesError は必須ボーン不足エラーか判定する。
func IsMissingRequiredBonesError(err error) bool {
	return hasID(err, ErrorIDMissingRequiredBones)
}

// IsBoneNotFoundError はボーン未検出エラーか判定する。
func IsBoneNotFoundError(err error) bool {
	return hasID(err, ErrorIDBoneNotFound)
}

// IsNameConflictError はボーン名重複エラーか判定する。
func IsNameConflictError(err error) bool {
	return hasID(err, ErrorIDNameConflict)
}

// IsAlreadyRiggedError はリグ生成済みエラーか判定する。
func IsAlreadyRiggedError(err error) bool {
	return hasID(err, ErrorIDAlreadyRigged)
}

// NewIoFileNotFound は入力ファイルが存在しない場合のエラーを生成する。
func NewIoFileNotFound(path string, cause error) error {
	return &RigError{
		ID:      ErrorIDIoFileNotFound,
		Message: fmt.Sprintf("ファイルが見つかりません: %s", path),
		Names:   []string{path},
		Cause:   cause,
	}
}

// NewIoExtInvalid は未対応の拡張子のエラーを生成する。
func NewIoExtInvalid(path string, cause error) error {
	return &RigError{
		ID:      ErrorIDIoExtInvalid,
		Message: fmt.Sprintf("未対応の拡張子です: %s", path),
		Names:   []string{path},
		Cause:   cause,
	}
}

// NewIoParseFailed は文書の解析失敗エラーを生成する。
func NewIoParseFailed(message string, cause error) error {
	return &RigError{
		ID:      ErrorIDIoParseFailed,
		Message: message,
		Cause:   cause,
	}
}

// NewIoSaveFailed は文書の保存失敗エラーを生成する。
func NewIoSaveFailed(message string, cause error) error {
	return &RigError{
		ID:      ErrorIDIoSaveFailed,
		Message: message,
		Cause:   cause,
	}
}

// IsIoFileNotFound はファイル未検出エラーか判定する。
func IsIoFileNotFound(err error) bool {
	return hasID(err, ErrorIDIoFileNotFound)
}
