// 指示: miu200521358
// Package widget はカスタムシェイプ(ウィジェット)ライブラリの読み込みを提供する。
package widget

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/miu200521358/mu_poser2rig/pkg/domain/model/merrors"
	"github.com/miu200521358/mu_poser2rig/pkg/shared/base/logging"
	"gopkg.in/yaml.v3"
)

// libraryDocument はウィジェットライブラリ文書を表す。
type libraryDocument struct {
	Widgets []string `yaml:"widgets"`
}

// WidgetRepository はウィジェット名一覧の読み込み契約を実装する。
type WidgetRepository struct{}

// NewWidgetRepository はWidgetRepositoryを生成する。
func NewWidgetRepository() *WidgetRepository {
	return &WidgetRepository{}
}

// CanLoad は拡張子に応じて読み込み可否を判定する。
func (r *WidgetRepository) CanLoad(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml", ".json":
		return true
	default:
		return false
	}
}

// LoadWidgets はライブラリ文書からウィジェット名一覧を読み込む。
// `widgets:` キーの配列と、トップレベルの配列のどちらも受け付ける。重複と空名は除く。
func (r *WidgetRepository) LoadWidgets(path string) ([]string, error) {
	if !r.CanLoad(path) {
		return nil, merrors.NewIoExtInvalid(path, nil)
	}
	b, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, merrors.NewIoFileNotFound(path, err)
		}
		return nil, merrors.NewIoParseFailed("ウィジェットライブラリの読み取りに失敗しました", err)
	}

	var node yaml.Node
	if err := yaml.Unmarshal(b, &node); err != nil {
		return nil, merrors.NewIoParseFailed("ウィジェットライブラリの解析に失敗しました", err)
	}
	var names []string
	if len(node.Content) > 0 {
		root := node.Content[0]
		if root.Kind == yaml.SequenceNode {
			err = root.Decode(&names)
		} else {
			doc := libraryDocument{}
			err = root.Decode(&doc)
			names = doc.Widgets
		}
	}
	if err != nil {
		return nil, merrors.NewIoParseFailed("ウィジェットライブラリの解析に失敗しました", err)
	}

	widgets := uniqueNames(names)
	if logger := logging.DefaultLogger(); logger != nil {
		logger.Info("ウィジェット読込完了: file=%s count=%d", filepath.Base(path), len(widgets))
	}
	return widgets, nil
}

// uniqueNames は前後の空白を除き、空名と重複を取り除いて順序を保つ。
func uniqueNames(names []string) []string {
	seen := make(map[string]struct{}, len(names))
	unique := make([]string, 0, len(names))
	for _, name := range names {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		if _, ok := seen[name]; ok {
			continue
		}
		seen[name] = struct{}{}
		unique = append(unique, name)
	}
	return unique
}
