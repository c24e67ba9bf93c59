// 指示: miu200521358
package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"strings"
	"time"

	"github.com/miu200521358/mu_poser2rig/pkg/adapter/io_model/armature"
	"github.com/miu200521358/mu_poser2rig/pkg/adapter/io_model/widget"
	"github.com/miu200521358/mu_poser2rig/pkg/usecase/minteractor"
	"github.com/spf13/pflag"
)

const (
	batchOutputDirMode = 0o755
)

// batchConfig は一括生成の実行設定を表す。
type batchConfig struct {
	InputRoot  string
	OutputRoot string
	WidgetPath string
	Compress   bool
	DryRun     bool
	FailFast   bool
}

// buildEntry は1スケルトン分の生成入力情報を表す。
type buildEntry struct {
	Index      int
	SourcePath string
	RigName    string
	CaseDir    string
	OutputPath string
}

// buildResult は1スケルトン分の生成結果を表す。
type buildResult struct {
	Entry     buildEntry
	Status    string
	Duration  time.Duration
	Err       error
	PhaseInfo string
}

// phaseCollector はリグ生成の工程完了イベントを収集する。
type phaseCollector struct {
	phases    []string
	boneCount int
}

// main は検証用スケルトンの一括リグ生成を実行する。
func main() {
	os.Exit(run())
}

// run は実行設定を解決して一括生成を実行し、終了コードを返す。
func run() int {
	config, err := parseBatchConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "設定解析に失敗しました: %v\n", err)
		return 2
	}
	entries, err := collectBuildEntries(config.InputRoot, config.OutputRoot)
	if err != nil {
		fmt.Fprintf(os.Stderr, "入力探索に失敗しました: %v\n", err)
		return 2
	}
	if len(entries) == 0 {
		fmt.Fprintln(os.Stderr, "生成対象スケルトンがありません")
		return 2
	}

	results := executeBatchBuild(config, entries)
	printBatchSummary(results)

	for _, result := range results {
		if result.Status == "failed" {
			return 1
		}
	}
	return 0
}

// parseBatchConfig はコマンドライン引数から実行設定を構築する。
func parseBatchConfig() (batchConfig, error) {
	defaultInputRoot, defaultOutputRoot, defaultWidgetPath, err := resolveDefaultPaths()
	if err != nil {
		return batchConfig{}, err
	}
	flags := pflag.NewFlagSet("integration_test", pflag.ContinueOnError)
	inputRoot := flags.String("input-root", defaultInputRoot, "スケルトン文書の探索ルートディレクトリ")
	outputRoot := flags.String("output-root", defaultOutputRoot, "生成結果の出力ルートディレクトリ")
	widgetPath := flags.String("widgets", defaultWidgetPath, "ウィジェットライブラリパス")
	compress := flags.Bool("compress", false, "出力をzstd圧縮する")
	dryRun := flags.Bool("dry-run", false, "実生成せず、入力解決と出力先計画のみ表示する")
	failFast := flags.Bool("fail-fast", false, "失敗時に即時終了する")
	if err := flags.Parse(os.Args[1:]); err != nil {
		return batchConfig{}, err
	}

	trimmedInputRoot := strings.TrimSpace(*inputRoot)
	if trimmedInputRoot == "" {
		return batchConfig{}, errors.New("input-root が空です")
	}
	trimmedOutputRoot := strings.TrimSpace(*outputRoot)
	if trimmedOutputRoot == "" {
		return batchConfig{}, errors.New("output-root が空です")
	}
	return batchConfig{
		InputRoot:  filepath.Clean(trimmedInputRoot),
		OutputRoot: filepath.Clean(trimmedOutputRoot),
		WidgetPath: strings.TrimSpace(*widgetPath),
		Compress:   *compress,
		DryRun:     *dryRun,
		FailFast:   *failFast,
	}, nil
}

// resolveDefaultPaths はスクリプト配置ディレクトリ基準の既定入出力先を返す。
func resolveDefaultPaths() (string, string, string, error) {
	_, currentFilePath, _, ok := runtime.Caller(0)
	if !ok {
		return "", "", "", errors.New("実行ファイル位置を取得できません")
	}
	currentDir := filepath.Dir(currentFilePath)
	resourceDir := filepath.Join(currentDir, "..", "test_resources")
	return resourceDir, filepath.Join(currentDir, "output"), filepath.Join(resourceDir, "widgets.yaml"), nil
}

// collectBuildEntries は入力ルート配下のスケルトン文書から生成対象エントリを作る。
func collectBuildEntries(inputRoot string, outputRoot string) ([]buildEntry, error) {
	reader := armature.NewArmatureRepository()
	paths := make([]string, 0)
	err := filepath.WalkDir(inputRoot, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if path != inputRoot && filepath.Clean(path) == filepath.Clean(outputRoot) {
				return filepath.SkipDir
			}
			return nil
		}
		if !reader.CanLoad(path) || isWidgetLibrary(path) {
			return nil
		}
		paths = append(paths, path)
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.Strings(paths)

	entries := make([]buildEntry, 0, len(paths))
	for i, path := range paths {
		rigName := sanitizePathComponent(reader.InferName(path))
		caseDir := filepath.Join(outputRoot, fmt.Sprintf("%03d_%s", i+1, rigName))
		entries = append(entries, buildEntry{
			Index:      i + 1,
			SourcePath: path,
			RigName:    rigName,
			CaseDir:    caseDir,
			OutputPath: filepath.Join(caseDir, rigName+"_rig.yaml"),
		})
	}
	return entries, nil
}

// isWidgetLibrary はウィジェットライブラリ文書か判定する。
func isWidgetLibrary(path string) bool {
	return strings.HasPrefix(strings.ToLower(filepath.Base(path)), "widgets")
}

// executeBatchBuild は全スケルトンのリグ生成を順次実行する。
func executeBatchBuild(config batchConfig, entries []buildEntry) []buildResult {
	results := make([]buildResult, 0, len(entries))
	usecase := minteractor.NewPoser2RigUsecase(minteractor.Poser2RigUsecaseDeps{
		RigReader:    armature.NewArmatureRepository(),
		RigWriter:    armature.NewArmatureRepository(),
		WidgetReader: widget.NewWidgetRepository(),
	})

	total := len(entries)
	for _, entry := range entries {
		fmt.Printf("[%d/%d] 生成開始: rig=%s\n", entry.Index, total, entry.RigName)
		result := buildRigEntry(usecase, config, entry)
		results = append(results, result)
		switch result.Status {
		case "succeeded":
			fmt.Printf("[%d/%d] 生成成功: rig=%s output=%s elapsed=%s\n", entry.Index, total, entry.RigName, entry.OutputPath, result.Duration.Round(time.Millisecond))
			if strings.TrimSpace(result.PhaseInfo) != "" {
				fmt.Printf("[%d/%d] 工程: %s\n", entry.Index, total, result.PhaseInfo)
			}
		case "dry_run":
			fmt.Printf("[%d/%d] DRY-RUN: rig=%s input=%s output=%s\n", entry.Index, total, entry.RigName, entry.SourcePath, entry.OutputPath)
		default:
			fmt.Printf("[%d/%d] 生成失敗: rig=%s reason=%v\n", entry.Index, total, entry.RigName, result.Err)
			if config.FailFast {
				return results
			}
		}
	}
	return results
}

// buildRigEntry は1スケルトン分のリグ生成を実行する。
func buildRigEntry(usecase *minteractor.Poser2RigUsecase, config batchConfig, entry buildEntry) buildResult {
	result := buildResult{
		Entry:  entry,
		Status: "failed",
	}
	if config.DryRun {
		result.Status = "dry_run"
		return result
	}
	if err := os.MkdirAll(entry.CaseDir, batchOutputDirMode); err != nil {
		result.Err = fmt.Errorf("出力ディレクトリ作成に失敗しました: %w", err)
		return result
	}

	startedAt := time.Now()
	collector := &phaseCollector{}
	converted, err := usecase.Convert(minteractor.ConvertRequest{
		InputPath:        entry.SourcePath,
		OutputPath:       entry.OutputPath,
		WidgetPath:       config.WidgetPath,
		SaveOptions:      minteractor.SaveOptions{Compress: config.Compress},
		ProgressReporter: collector,
	})
	if err != nil {
		result.Err = err
		return result
	}
	if converted == nil || converted.Rig == nil {
		result.Err = errors.New("リグ生成結果が空です")
		return result
	}

	result.Status = "succeeded"
	result.Entry.OutputPath = converted.OutputPath
	result.Duration = time.Since(startedAt)
	result.PhaseInfo = collector.Summary()
	return result
}

// printBatchSummary は生成結果の集計を標準出力へ表示する。
func printBatchSummary(results []buildResult) {
	succeeded := 0
	failed := 0
	dryRun := 0
	for _, result := range results {
		switch result.Status {
		case "succeeded":
			succeeded++
		case "dry_run":
			dryRun++
		default:
			failed++
		}
	}
	fmt.Printf(
		"一括生成サマリ: total=%d succeeded=%d failed=%d dry_run=%d\n",
		len(results),
		succeeded,
		failed,
		dryRun,
	)
}

// sanitizePathComponent は出力ディレクトリ/ファイル名に使えない文字を置換する。
func sanitizePathComponent(name string) string {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return "rig"
	}
	replaced := strings.Map(func(r rune) rune {
		switch r {
		case '<', '>', ':', '"', '/', '\\', '|', '?', '*':
			return '_'
		default:
			if r < 0x20 {
				return '_'
			}
			return r
		}
	}, trimmed)
	replaced = strings.Trim(replaced, " .")
	if replaced == "" {
		return "rig"
	}
	return replaced
}

// ReportBuildProgress は工程完了イベントを収集する。
func (collector *phaseCollector) ReportBuildProgress(event minteractor.BuildProgressEvent) {
	if collector == nil || event.Type != minteractor.BuildProgressEventTypePhaseCompleted {
		return
	}
	collector.phases = append(collector.phases, event.Phase.String())
	collector.boneCount = event.BoneCount
}

// Summary は収集した工程の要約文字列を返す。
func (collector *phaseCollector) Summary() string {
	if collector == nil || len(collector.phases) == 0 {
		return ""
	}
	return fmt.Sprintf("phases=%d bones=%d last=%s", len(collector.phases), collector.boneCount, collector.phases[len(collector.phases)-1])
}
