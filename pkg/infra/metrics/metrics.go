// 指示: miu200521358
// Package metrics はリグ生成の工程時間と生成結果をPrometheus形式で計測する。
package metrics

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const (
	namespace = "mu_poser2rig"
	dirMode   = 0o755
)

// BuildMetrics はリグ生成の計測値を保持する。
type BuildMetrics struct {
	registry      *prometheus.Registry
	phaseDuration *prometheus.HistogramVec
	builds        *prometheus.CounterVec
}

// NewBuildMetrics は専用レジストリに計測値を登録して生成する。
func NewBuildMetrics() *BuildMetrics {
	registry := prometheus.NewRegistry()
	phaseDuration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "phase_duration_seconds",
		Help:      "Duration of each rig build phase.",
		Buckets:   prometheus.ExponentialBuckets(0.0005, 4, 8),
	}, []string{"phase"})
	builds := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "builds_total",
		Help:      "Number of rig builds by result.",
	}, []string{"status"})
	registry.MustRegister(phaseDuration, builds)
	return &BuildMetrics{
		registry:      registry,
		phaseDuration: phaseDuration,
		builds:        builds,
	}
}

// ObservePhase は工程の所要時間を記録する。
func (m *BuildMetrics) ObservePhase(phase string, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.phaseDuration.WithLabelValues(phase).Observe(elapsed.Seconds())
}

// ObserveBuild は生成結果を記録する。
func (m *BuildMetrics) ObserveBuild(status string) {
	if m == nil {
		return
	}
	m.builds.WithLabelValues(status).Inc()
}

// Registry は計測値のレジストリを返す。
func (m *BuildMetrics) Registry() *prometheus.Registry {
	return m.registry
}

// WriteTextfile はnode_exporterのtextfile collector形式で計測値を書き出す。パスが空の場合は何もしない。
func (m *BuildMetrics) WriteTextfile(path string) error {
	if m == nil || strings.TrimSpace(path) == "" {
		return nil
	}
	if dir := filepath.Dir(path); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, dirMode); err != nil {
			return fmt.Errorf("計測出力ディレクトリの作成に失敗しました: %w", err)
		}
	}
	if err := prometheus.WriteToTextfile(path, m.registry); err != nil {
		return fmt.Errorf("計測値の書き出しに失敗しました: %w", err)
	}
	return nil
}
