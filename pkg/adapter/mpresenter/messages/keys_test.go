// 指示: miu200521358
package messages

import (
	"strings"
	"testing"
)

func TestMessagesAreDefinedAndUnique(t *testing.T) {
	keys := []string{
		HelpRootShort,
		HelpBuildShort,
		HelpHistoryShort,
		FlagConfig,
		FlagIn,
		FlagOut,
		FlagWidgets,
		FlagCompress,
		FlagHistory,
		FlagNoHistory,
		FlagMetrics,
		FlagLogLevel,
		FlagLogFormat,
		FlagLimit,
		MessageInputRequired,
		MessageBuildFailed,
		MessageHistoryFailed,
		MessageMetricsFailed,
		MessageHistoryEmpty,
		MessageHistoryOpenErr,
		LogLoadStarted,
		LogPhaseDone,
		LogBuildSuccess,
		LogBuildInMemory,
		LogWarning,
		LogHistoryRow,
	}

	seen := map[string]struct{}{}
	for _, key := range keys {
		if key == "" {
			t.Fatalf("key should not be empty")
		}
		if _, exists := seen[key]; exists {
			t.Fatalf("key should be unique: %s", key)
		}
		seen[key] = struct{}{}
	}
}

func TestLogMessagesCarryAppPrefix(t *testing.T) {
	for _, key := range []string{LogLoadStarted, LogPhaseDone, LogBuildSuccess, LogBuildInMemory, LogWarning} {
		if !strings.HasPrefix(key, "["+AppName+"]") {
			t.Fatalf("missing app prefix: %s", key)
		}
	}
}
