// 指示: miu200521358
package minteractor

import (
	"fmt"
	"strings"

	"github.com/miu200521358/mu_poser2rig/pkg/domain/model"
	"github.com/miu200521358/mu_poser2rig/pkg/usecase/port/moutput"
)

// SaveRig はリグ文書を保存する。
func (uc *Poser2RigUsecase) SaveRig(rep moutput.IRigWriter, path string, rig *model.Rig, opts SaveOptions) error {
	writer := rep
	if writer == nil {
		writer = uc.rigWriter
	}
	if writer == nil {
		return fmt.Errorf("リグ保存リポジトリが設定されていません")
	}
	if strings.TrimSpace(path) == "" {
		return fmt.Errorf("保存先パスが未指定です")
	}
	if rig == nil {
		return fmt.Errorf("保存対象リグが未設定です")
	}
	return writer.Save(path, rig, opts)
}
