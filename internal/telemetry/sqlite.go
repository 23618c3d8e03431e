// Package telemetry 将使用事件记录到本地 SQLite 数据库
// 使用纯 Go 的 modernc.org/sqlite 驱动，不需要 CGO
package telemetry

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/oklog/ulid/v2"
	_ "modernc.org/sqlite" // 纯 Go SQLite 驱动

	"github.com/decker502/spider/pkg/game"
	"github.com/decker502/spider/pkg/logging"
)

// Store 是统计事件接收器。每次进程运行都有自己的会话ID，
// 便于按启动分组事件
type Store struct {
	db      *sql.DB
	session string
	now     func() time.Time
	log     *log.Logger
}

// Event 一条记录下来的事件
type Event struct {
	ID        string
	Session   string
	Kind      string
	Params    string
	CreatedAt time.Time
}

// Open 创建或打开 dbPath 处的数据库，
// 按需创建父目录和表结构
func Open(dbPath string) (*Store, error) {
	if dbPath != "" && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("telemetry: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("telemetry: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("telemetry: cannot open database: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("telemetry: cannot connect to database: %w", err)
	}

	s := &Store{
		db:      db,
		session: ulid.Make().String(),
		now:     time.Now,
		log:     logging.For("Telemetry"),
	}
	if err := s.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("telemetry: migration failed: %w", err)
	}
	return s, nil
}

func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS events (
			id TEXT PRIMARY KEY,
			session TEXT NOT NULL,
			kind TEXT NOT NULL,
			params TEXT NOT NULL DEFAULT '',
			created_at DATETIME NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_events_kind ON events(kind);
		CREATE INDEX IF NOT EXISTS idx_events_session ON events(session);
	`
	_, err := s.db.Exec(schema)
	return err
}

// Close 关闭数据库
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// SessionID 标识本次进程运行
func (s *Store) SessionID() string {
	return s.session
}

// Record 插入一条事件并返回其ID
func (s *Store) Record(kind string, params ...any) (string, error) {
	id := ulid.Make().String()
	_, err := s.db.Exec(
		"INSERT INTO events (id, session, kind, params, created_at) VALUES (?, ?, ?, ?, ?)",
		id, s.session, kind, formatParams(params), s.now().UTC(),
	)
	if err != nil {
		return "", fmt.Errorf("telemetry: cannot record %s: %w", kind, err)
	}
	return id, nil
}

// RegisterEvent 实现 game.Analytics 接口，错误只记录日志不返回
func (s *Store) RegisterEvent(kind game.EventType, params ...any) {
	if _, err := s.Record(kind.String(), params...); err != nil {
		s.log.Warn("event dropped", "kind", kind, "err", err)
		return
	}
	s.log.Debug("event", "kind", kind, "params", params)
}

// Count 返回所有会话中 kind 类型事件的数量
func (s *Store) Count(kind string) (int, error) {
	var n int
	err := s.db.QueryRow("SELECT COUNT(*) FROM events WHERE kind = ?", kind).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("telemetry: cannot count %s: %w", kind, err)
	}
	return n, nil
}

// Recent 按从新到旧返回最多 limit 条事件
func (s *Store) Recent(limit int) ([]Event, error) {
	rows, err := s.db.Query(
		"SELECT id, session, kind, params, created_at FROM events ORDER BY id DESC LIMIT ?",
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("telemetry: cannot query events: %w", err)
	}
	defer rows.Close()

	var events []Event
	for rows.Next() {
		var e Event
		if err := rows.Scan(&e.ID, &e.Session, &e.Kind, &e.Params, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("telemetry: cannot scan event: %w", err)
		}
		events = append(events, e)
	}
	return events, rows.Err()
}

func formatParams(params []any) string {
	parts := make([]string, len(params))
	for i, p := range params {
		parts[i] = fmt.Sprint(p)
	}
	return strings.Join(parts, ",")
}
