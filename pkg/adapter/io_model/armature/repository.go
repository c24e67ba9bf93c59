// 指示: miu200521358
// Package armature はスケルトン文書(YAML/JSON、zstd圧縮可)の読み書きを提供する。
package armature

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/klauspost/compress/zstd"
	"github.com/miu200521358/mu_poser2rig/pkg/domain/model"
	"github.com/miu200521358/mu_poser2rig/pkg/domain/model/merrors"
	"github.com/miu200521358/mu_poser2rig/pkg/usecase/port/moutput"
	"gopkg.in/yaml.v3"
)

// documentFormat はスケルトン文書の形式を表す。
type documentFormat string

const (
	formatYAML documentFormat = "yaml"
	formatJSON documentFormat = "json"

	compressedExt = ".zst"
	outputDirMode = 0o755
	outputMode    = 0o644
)

// ArmatureRepository はスケルトン文書の読み書き契約を実装する。
type ArmatureRepository struct{}

// NewArmatureRepository はArmatureRepositoryを生成する。
func NewArmatureRepository() *ArmatureRepository {
	return &ArmatureRepository{}
}

// resolveFormat はパスの拡張子から文書形式と圧縮有無を判定する。
func resolveFormat(path string) (documentFormat, bool, bool) {
	base := strings.ToLower(filepath.Base(path))
	compressed := false
	if strings.HasSuffix(base, compressedExt) {
		compressed = true
		base = strings.TrimSuffix(base, compressedExt)
	}
	switch filepath.Ext(base) {
	case ".yaml", ".yml":
		return formatYAML, compressed, true
	case ".json":
		return formatJSON, compressed, true
	default:
		return "", compressed, false
	}
}

// CanLoad は拡張子に応じて読み込み可否を判定する。
func (r *ArmatureRepository) CanLoad(path string) bool {
	_, _, ok := resolveFormat(path)
	return ok
}

// InferName はパスから表示名を推定する。
func (r *ArmatureRepository) InferName(path string) string {
	base := filepath.Base(path)
	if strings.EqualFold(filepath.Ext(base), compressedExt) {
		base = strings.TrimSuffix(base, filepath.Ext(base))
	}
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// Load はスケルトン文書を読み込む。
func (r *ArmatureRepository) Load(path string) (*model.Rig, error) {
	format, compressed, ok := resolveFormat(path)
	if !ok {
		return nil, merrors.NewIoExtInvalid(path, nil)
	}
	logArmatureInfo("スケルトン読込開始: file=%s", filepath.Base(path))

	b, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, merrors.NewIoFileNotFound(path, err)
		}
		return nil, merrors.NewIoParseFailed("スケルトンファイルの読み取りに失敗しました", err)
	}
	if compressed {
		b, err = decompress(b)
		if err != nil {
			return nil, merrors.NewIoParseFailed("スケルトンファイルの展開に失敗しました", err)
		}
	}

	doc := armatureDocument{}
	switch format {
	case formatJSON:
		err = json.Unmarshal(b, &doc)
	default:
		err = yaml.Unmarshal(b, &doc)
	}
	if err != nil {
		return nil, merrors.NewIoParseFailed("スケルトン文書の解析に失敗しました", err)
	}

	rig, err := doc.toRig(r.InferName(path))
	if err != nil {
		return nil, err
	}
	logArmatureInfo("スケルトン読込完了: name=%s bones=%d", rig.Name, rig.Bones.Len())
	return rig, nil
}

// Save はリグ文書を保存する。拡張子が.zstの場合またはCompress指定時はzstd圧縮する。
func (r *ArmatureRepository) Save(path string, rig *model.Rig, opts moutput.SaveOptions) error {
	if rig == nil {
		return merrors.NewIoSaveFailed("保存対象リグが未設定です", nil)
	}
	format, compressed, ok := resolveFormat(path)
	if !ok {
		return merrors.NewIoExtInvalid(path, nil)
	}
	if opts.Compress && !compressed {
		path += compressedExt
		compressed = true
	}

	b, err := encode(format, newArmatureDocument(rig))
	if err != nil {
		return merrors.NewIoSaveFailed("リグ文書の書き出しに失敗しました", err)
	}
	if compressed {
		b, err = compress(b)
		if err != nil {
			return merrors.NewIoSaveFailed("リグ文書の圧縮に失敗しました", err)
		}
	}

	if dir := filepath.Dir(path); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, outputDirMode); err != nil {
			return merrors.NewIoSaveFailed("出力先ディレクトリの作成に失敗しました", err)
		}
	}
	if err := os.WriteFile(path, b, outputMode); err != nil {
		return merrors.NewIoSaveFailed("リグ文書の保存に失敗しました", err)
	}
	logArmatureInfo("リグ保存完了: file=%s bytes=%d", filepath.Base(path), len(b))
	return nil
}

// encode は文書を指定形式で書き出す。
func encode(format documentFormat, doc armatureDocument) ([]byte, error) {
	if format == formatJSON {
		return json.MarshalIndent(doc, "", "  ")
	}
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return nil, err
	}
	if err := enc.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// compress はzstdで圧縮する。
func compress(b []byte) ([]byte, error) {
	encoder, err := zstd.NewWriter(nil)
	if err != nil {
		return nil, err
	}
	defer encoder.Close()
	return encoder.EncodeAll(b, make([]byte, 0, len(b)/2)), nil
}

// decompress はzstdで展開する。
func decompress(b []byte) ([]byte, error) {
	decoder, err := zstd.NewReader(nil)
	if err != nil {
		return nil, err
	}
	defer decoder.Close()
	return decoder.DecodeAll(b, nil)
}
