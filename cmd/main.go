// 指示: miu200521358
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/miu200521358/mu_poser2rig/pkg/adapter/io_model/armature"
	"github.com/miu200521358/mu_poser2rig/pkg/adapter/io_model/widget"
	"github.com/miu200521358/mu_poser2rig/pkg/adapter/mpresenter/messages"
	"github.com/miu200521358/mu_poser2rig/pkg/infra/base/mlogging"
	"github.com/miu200521358/mu_poser2rig/pkg/infra/config"
	"github.com/miu200521358/mu_poser2rig/pkg/infra/history"
	"github.com/miu200521358/mu_poser2rig/pkg/infra/metrics"
	"github.com/miu200521358/mu_poser2rig/pkg/shared/base/logging"
	"github.com/miu200521358/mu_poser2rig/pkg/usecase/minteractor"
	"github.com/miu200521358/mu_poser2rig/pkg/usecase/port/moutput"
	"github.com/spf13/cobra"
)

// buildFlagBindings は設定キーとbuildサブコマンドのフラグ名の対応を表す。
var buildFlagBindings = map[string]string{
	config.KeyInput:           "in",
	config.KeyOutputPath:      "out",
	config.KeyWidgets:         "widgets",
	config.KeyOutputCompress:  "compress",
	config.KeyHistoryPath:     "history",
	config.KeyMetricsTextfile: "metrics",
	config.KeyLogLevel:        "log-level",
	config.KeyLogFormat:       "log-format",
}

// historyFlagBindings は設定キーとhistoryサブコマンドのフラグ名の対応を表す。
var historyFlagBindings = map[string]string{
	config.KeyHistoryPath: "history",
	config.KeyLogLevel:    "log-level",
	config.KeyLogFormat:   "log-format",
}

// main はCLIを実行する。
func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// run はCLI処理全体を実行する。
func run(args []string, out io.Writer, errOut io.Writer) error {
	root := newRootCommand(out, errOut)
	root.SetArgs(args)
	return root.Execute()
}

// newRootCommand はサブコマンドを登録したルートコマンドを生成する。
func newRootCommand(out io.Writer, errOut io.Writer) *cobra.Command {
	root := &cobra.Command{
		Use:           messages.AppName,
		Short:         messages.HelpRootShort,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.SetOut(out)
	root.SetErr(errOut)
	root.PersistentFlags().String("config", "", messages.FlagConfig)
	root.PersistentFlags().String("log-level", "", messages.FlagLogLevel)
	root.PersistentFlags().String("log-format", "", messages.FlagLogFormat)
	root.PersistentFlags().String("history", "", messages.FlagHistory)

	root.AddCommand(newBuildCommand(out, errOut), newHistoryCommand(out, errOut))
	return root
}

// newBuildCommand はbuildサブコマンドを生成する。位置引数は [入力 [出力]] として扱う。
func newBuildCommand(out io.Writer, errOut io.Writer) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "build [input] [output]",
		Short: messages.HelpBuildShort,
		Args:  cobra.MaximumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd, buildFlagBindings)
			if err != nil {
				return err
			}
			if cfg.Input == "" && len(args) > 0 {
				cfg.Input = args[0]
			}
			if cfg.Output.Path == "" && len(args) > 1 {
				cfg.Output.Path = args[1]
			}
			if noHistory, _ := cmd.Flags().GetBool("no-history"); noHistory {
				cfg.History.Enabled = false
			}
			configureLogger(cfg, errOut)
			return runBuild(cmd.Context(), cfg, out)
		},
	}
	cmd.Flags().String("in", "", messages.FlagIn)
	cmd.Flags().String("out", "", messages.FlagOut)
	cmd.Flags().String("widgets", "", messages.FlagWidgets)
	cmd.Flags().Bool("compress", false, messages.FlagCompress)
	cmd.Flags().Bool("no-history", false, messages.FlagNoHistory)
	cmd.Flags().String("metrics", "", messages.FlagMetrics)
	return cmd
}

// newHistoryCommand はhistoryサブコマンドを生成する。
func newHistoryCommand(out io.Writer, errOut io.Writer) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history",
		Short: messages.HelpHistoryShort,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd, historyFlagBindings)
			if err != nil {
				return err
			}
			configureLogger(cfg, errOut)
			limit, _ := cmd.Flags().GetInt("limit")
			return runHistory(cmd.Context(), cfg, limit, out)
		},
	}
	cmd.Flags().Int("limit", history.DefaultListLimit, messages.FlagLimit)
	return cmd
}

// loadConfig は設定ファイルとフラグから設定を読み込む。
func loadConfig(cmd *cobra.Command, bindings map[string]string) (*config.Config, error) {
	configPath, _ := cmd.Flags().GetString("config")
	return config.Load(configPath, cmd.Flags(), bindings)
}

// configureLogger は設定に従って既定ロガーを差し替える。
func configureLogger(cfg *config.Config, errOut io.Writer) {
	logger := mlogging.NewLoggerWithFormat(errOut, cfg.Log.Format, logging.ParseLogLevel(cfg.Log.Level))
	logging.SetDefaultLogger(logger)
}

// runBuild はリグを生成して保存し、履歴と計測値を出力する。
func runBuild(ctx context.Context, cfg *config.Config, out io.Writer) (retErr error) {
	if strings.TrimSpace(cfg.Input) == "" {
		return errors.New(messages.MessageInputRequired)
	}
	if ctx == nil {
		ctx = context.Background()
	}

	buildMetrics := metrics.NewBuildMetrics()
	defer func() {
		if err := buildMetrics.WriteTextfile(cfg.Metrics.Textfile); err != nil && retErr == nil {
			retErr = fmt.Errorf("%s: %w", messages.MessageMetricsFailed, err)
		}
	}()

	var recorder moutput.IBuildRecorder
	if cfg.History.Enabled {
		store, err := history.Open(cfg.History.Path)
		if err != nil {
			return fmt.Errorf("%s: %w", messages.MessageHistoryOpenErr, err)
		}
		defer store.Close()
		recorder = store
	}

	repository := armature.NewArmatureRepository()
	uc := minteractor.NewPoser2RigUsecase(minteractor.Poser2RigUsecaseDeps{
		RigReader:    repository,
		RigWriter:    repository,
		WidgetReader: widget.NewWidgetRepository(),
		Recorder:     recorder,
		Metrics:      buildMetrics,
	})

	fmt.Fprintf(out, messages.LogLoadStarted+"\n", cfg.Input)
	result, err := uc.Convert(minteractor.ConvertRequest{
		InputPath:        cfg.Input,
		OutputPath:       cfg.Output.Path,
		WidgetPath:       cfg.Widgets,
		SaveOptions:      minteractor.SaveOptions{Compress: cfg.Output.Compress},
		ProgressReporter: &cliProgressReporter{out: out},
	})
	if err != nil {
		return fmt.Errorf("%s: %w", messages.MessageBuildFailed, err)
	}

	for _, warning := range result.Warnings {
		fmt.Fprintf(out, messages.LogWarning+"\n", warning.ID, warning.Detail)
	}
	if result.OutputPath == "" {
		fmt.Fprintf(out, messages.LogBuildInMemory+"\n", result.Rig.Bones.Len(), len(result.Warnings))
		return nil
	}
	fmt.Fprintf(out, messages.LogBuildSuccess+"\n", result.OutputPath, result.Rig.Bones.Len(), len(result.Warnings))
	return nil
}

// runHistory は新しい順に生成履歴を表示する。
func runHistory(ctx context.Context, cfg *config.Config, limit int, out io.Writer) error {
	if ctx == nil {
		ctx = context.Background()
	}
	store, err := history.Open(cfg.History.Path)
	if err != nil {
		return fmt.Errorf("%s: %w", messages.MessageHistoryOpenErr, err)
	}
	defer store.Close()

	records, err := store.List(ctx, limit)
	if err != nil {
		return fmt.Errorf("%s: %w", messages.MessageHistoryFailed, err)
	}
	if len(records) == 0 {
		fmt.Fprintln(out, messages.MessageHistoryEmpty)
		return nil
	}
	for _, record := range records {
		fmt.Fprintf(out, messages.LogHistoryRow+"\n",
			record.StartedAt.Format("2006-01-02 15:04:05"),
			record.ID,
			record.Status,
			record.BoneCount,
			record.InputPath,
			record.Message,
		)
	}
	return nil
}

// cliProgressReporter は工程完了を標準出力へ表示する。
type cliProgressReporter struct {
	out io.Writer
}

// ReportBuildProgress は工程完了イベントのみ表示する。
func (r *cliProgressReporter) ReportBuildProgress(event minteractor.BuildProgressEvent) {
	if event.Type != minteractor.BuildProgressEventTypePhaseCompleted {
		return
	}
	fmt.Fprintf(r.out, messages.LogPhaseDone+"\n", event.Phase, event.BoneCount)
}
