// 指示: miu200521358
package minteractor

import (
	"fmt"
	"strings"

	"github.com/miu200521358/mu_poser2rig/pkg/domain/model"
	"github.com/miu200521358/mu_poser2rig/pkg/usecase/port/moutput"
)

// LoadRig はスケルトン文書を読み込む。
func (uc *Poser2RigUsecase) LoadRig(rep moutput.IRigReader, path string) (*model.Rig, error) {
	repo := rep
	if repo == nil {
		repo = uc.rigReader
	}
	if repo == nil {
		return nil, fmt.Errorf("スケルトン読み込みリポジトリが設定されていません")
	}
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("入力スケルトンパスが未指定です")
	}
	if !repo.CanLoad(path) {
		return nil, fmt.Errorf("読み込めないスケルトン形式です: %s", path)
	}
	rig, err := repo.Load(path)
	if err != nil {
		return nil, fmt.Errorf("スケルトンの読み込みに失敗しました: %w", err)
	}
	if rig == nil {
		return nil, fmt.Errorf("スケルトン読み込み結果が空です")
	}
	return rig, nil
}

// LoadWidgets はカスタムシェイプ一覧を読み込む。パス未指定の場合は空を返す。
func (uc *Poser2RigUsecase) LoadWidgets(path string) ([]string, error) {
	if strings.TrimSpace(path) == "" {
		return nil, nil
	}
	if uc.widgetReader == nil {
		return nil, fmt.Errorf("ウィジェット読み込みリポジトリが設定されていません")
	}
	widgets, err := uc.widgetReader.LoadWidgets(path)
	if err != nil {
		return nil, fmt.Errorf("ウィジェットの読み込みに失敗しました: %w", err)
	}
	return widgets, nil
}
