// 指示: miu200521358
// Package history はリグ生成履歴をSQLiteへ記録する。
package history

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/miu200521358/mu_poser2rig/pkg/usecase/port/moutput"
	_ "modernc.org/sqlite"
)

const (
	// DefaultPath は履歴DBの既定パス。
	DefaultPath = "mu_poser2rig_history.db"
	// DefaultListLimit は一覧取得の既定件数。
	DefaultListLimit = 20

	dirMode = 0o755
)

var pragmas = []string{
	"PRAGMA journal_mode=WAL",
	"PRAGMA busy_timeout=5000",
}

const schema = `CREATE TABLE IF NOT EXISTS builds (
	id TEXT PRIMARY KEY,
	input_path TEXT NOT NULL,
	output_path TEXT NOT NULL,
	rig_name TEXT NOT NULL,
	status TEXT NOT NULL,
	message TEXT NOT NULL,
	bone_count INTEGER NOT NULL,
	warning_count INTEGER NOT NULL,
	started_at INTEGER NOT NULL,
	elapsed_ms INTEGER NOT NULL
)`

// BuildHistoryStore はリグ生成履歴の保存先を表す。
type BuildHistoryStore struct {
	db   *sql.DB
	path string
}

// Open は履歴DBを開き、テーブルがなければ作成する。パスが空の場合は既定パスを使う。
func Open(path string) (*BuildHistoryStore, error) {
	if strings.TrimSpace(path) == "" {
		path = DefaultPath
	}
	if dir := filepath.Dir(path); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, dirMode); err != nil {
			return nil, fmt.Errorf("履歴DBディレクトリの作成に失敗しました: %w", err)
		}
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("履歴DBを開けませんでした: %w", err)
	}
	for _, pragma := range pragmas {
		if _, err := db.Exec(pragma); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("履歴DBの設定に失敗しました: %w", err)
		}
	}
	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("履歴テーブルの作成に失敗しました: %w", err)
	}
	return &BuildHistoryStore{db: db, path: path}, nil
}

// Path は履歴DBのパスを返す。
func (s *BuildHistoryStore) Path() string {
	return s.path
}

// Record は履歴を1件記録する。同じIDがある場合は上書きする。
func (s *BuildHistoryStore) Record(ctx context.Context, record moutput.BuildRecord) error {
	if s == nil || s.db == nil {
		return fmt.Errorf("履歴DBが開かれていません")
	}
	if record.ID == "" {
		return fmt.Errorf("履歴IDが未指定です")
	}
	_, err := s.db.ExecContext(ctx, `INSERT OR REPLACE INTO builds
		(id, input_path, output_path, rig_name, status, message, bone_count, warning_count, started_at, elapsed_ms)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		record.ID,
		record.InputPath,
		record.OutputPath,
		record.RigName,
		record.Status,
		record.Message,
		record.BoneCount,
		record.WarningCount,
		record.StartedAt.UnixNano(),
		record.Elapsed.Milliseconds(),
	)
	if err != nil {
		return fmt.Errorf("履歴の記録に失敗しました: %w", err)
	}
	return nil
}

// List は新しい順に履歴を取得する。件数が0以下の場合は既定件数を使う。
func (s *BuildHistoryStore) List(ctx context.Context, limit int) ([]moutput.BuildRecord, error) {
	if s == nil || s.db == nil {
		return nil, fmt.Errorf("履歴DBが開かれていません")
	}
	if limit <= 0 {
		limit = DefaultListLimit
	}
	rows, err := s.db.QueryContext(ctx, `SELECT
		id, input_path, output_path, rig_name, status, message, bone_count, warning_count, started_at, elapsed_ms
		FROM builds ORDER BY started_at DESC, id LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("履歴の取得に失敗しました: %w", err)
	}
	defer func() { _ = rows.Close() }()

	records := make([]moutput.BuildRecord, 0)
	for rows.Next() {
		var (
			record    moutput.BuildRecord
			startedAt int64
			elapsedMs int64
		)
		if err := rows.Scan(
			&record.ID,
			&record.InputPath,
			&record.OutputPath,
			&record.RigName,
			&record.Status,
			&record.Message,
			&record.BoneCount,
			&record.WarningCount,
			&startedAt,
			&elapsedMs,
		); err != nil {
			return nil, fmt.Errorf("履歴の読み取りに失敗しました: %w", err)
		}
		record.StartedAt = time.Unix(0, startedAt)
		record.Elapsed = time.Duration(elapsedMs) * time.Millisecond
		records = append(records, record)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("履歴の読み取りに失敗しました: %w", err)
	}
	return records, nil
}

// Close は履歴DBを閉じる。
func (s *BuildHistoryStore) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}
