// 指示: miu200521358
// Package config は設定ファイル・環境変数・コマンドライン引数から実行設定を読み込む。
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/miu200521358/mu_poser2rig/pkg/infra/history"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	// ConfigName は設定ファイルの既定名(拡張子なし)。
	ConfigName = "mu_poser2rig"
	// EnvPrefix は環境変数の接頭辞。
	EnvPrefix = "MU_POSER2RIG"
)

// 設定キー一覧。
const (
	KeyInput           = "input"
	KeyWidgets         = "widgets"
	KeyOutputPath      = "output.path"
	KeyOutputCompress  = "output.compress"
	KeyHistoryPath     = "history.path"
	KeyHistoryEnabled  = "history.enabled"
	KeyMetricsTextfile = "metrics.textfile"
	KeyLogLevel        = "log.level"
	KeyLogFormat       = "log.format"
)

// OutputConfig は出力設定を表す。
type OutputConfig struct {
	Path     string `mapstructure:"path"`
	Compress bool   `mapstructure:"compress"`
}

// HistoryConfig は生成履歴の設定を表す。
type HistoryConfig struct {
	Path    string `mapstructure:"path"`
	Enabled bool   `mapstructure:"enabled"`
}

// MetricsConfig は計測出力の設定を表す。
type MetricsConfig struct {
	Textfile string `mapstructure:"textfile"`
}

// LogConfig はログ出力の設定を表す。
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// Config は実行設定を表す。
type Config struct {
	Input   string        `mapstructure:"input"`
	Widgets string        `mapstructure:"widgets"`
	Output  OutputConfig  `mapstructure:"output"`
	History HistoryConfig `mapstructure:"history"`
	Metrics MetricsConfig `mapstructure:"metrics"`
	Log     LogConfig     `mapstructure:"log"`
}

// setDefaults は既定値を設定する。
func setDefaults(v *viper.Viper) {
	v.SetDefault(KeyInput, "")
	v.SetDefault(KeyWidgets, "")
	v.SetDefault(KeyOutputPath, "")
	v.SetDefault(KeyOutputCompress, false)
	v.SetDefault(KeyHistoryPath, history.DefaultPath)
	v.SetDefault(KeyHistoryEnabled, true)
	v.SetDefault(KeyMetricsTextfile, "")
	v.SetDefault(KeyLogLevel, "info")
	v.SetDefault(KeyLogFormat, "text")
}

// Load は設定を読み込む。pathが空の場合はカレントディレクトリの mu_poser2rig.{yaml,toml,json} を探し、なければ既定値を使う。
// flagsに含まれるフラグのうち、明示指定されたものが設定ファイルと環境変数より優先される。
func Load(path string, flags *pflag.FlagSet, bindings map[string]string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if strings.TrimSpace(path) != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName(ConfigName)
		v.AddConfigPath(".")
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if strings.TrimSpace(path) != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("設定ファイルの読み込みに失敗しました: %w", err)
		}
	}

	if flags != nil {
		for key, name := range bindings {
			flag := flags.Lookup(name)
			if flag == nil {
				continue
			}
			if err := v.BindPFlag(key, flag); err != nil {
				return nil, fmt.Errorf("引数の割り当てに失敗しました: %s: %w", name, err)
			}
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("設定の解析に失敗しました: %w", err)
	}
	return cfg, nil
}
