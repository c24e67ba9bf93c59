// 指示: miu200521358
package mlogging

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/miu200521358/mu_poser2rig/pkg/shared/base/logging"
)

func TestNewLoggerWithFormatJSON(t *testing.T) {
	buf := bytes.NewBuffer(nil)
	logger := NewLoggerWithFormat(buf, FormatJSON, logging.LOG_LEVEL_DEBUG)
	logger.Info("リグ生成開始: %s", "Figure")

	line := strings.TrimSpace(buf.String())
	record := map[string]any{}
	if err := json.Unmarshal([]byte(line), &record); err != nil {
		t.Fatalf("expected json line: %v (%s)", err, line)
	}
	if record["msg"] != "リグ生成開始: Figure" {
		t.Fatalf("msg mismatch: %v", record["msg"])
	}
	if record["app"] != "mu_poser2rig" {
		t.Fatalf("app attr mismatch: %v", record["app"])
	}
}

func TestNewLoggerDefaultsToText(t *testing.T) {
	buf := bytes.NewBuffer(nil)
	logger := NewLogger(buf)
	logger.Debug("hidden")
	logger.Info("visible")
	if strings.Contains(buf.String(), "hidden") || !strings.Contains(buf.String(), "msg=visible") {
		t.Fatalf("unexpected text output: %s", buf.String())
	}
}
