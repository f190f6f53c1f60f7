// Package sqlite is a SQLite-backed record store.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"

	"articlesum/internal/domain"
	"articlesum/internal/store"
)

type Storage struct {
	db  *sql.DB
	now func() time.Time
}

// Open opens (creating if needed) the database at path and applies the schema.
func Open(path string) (*Storage, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, err
		}
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	// one writer at a time; avoids SQLITE_BUSY under concurrent requests
	db.SetMaxOpenConns(1)

	s := &Storage{db: db, now: time.Now}
	if _, err := db.Exec(`PRAGMA journal_mode=WAL; PRAGMA synchronous=NORMAL;`); err != nil {
		_ = db.Close()
		return nil, err
	}
	if err := s.migrate(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migrate %s: %w", path, err)
	}
	return s, nil
}

func (s *Storage) Close() error { return s.db.Close() }

func (s *Storage) migrate() error {
	_, err := s.db.Exec(`
CREATE TABLE IF NOT EXISTS summaries (
  id              INTEGER PRIMARY KEY AUTOINCREMENT,
  source_type     TEXT NOT NULL,
  source_content  TEXT,
  summary         TEXT NOT NULL,
  word_count      INTEGER,
  original_length INTEGER,
  method          TEXT,
  created_at      INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS analytics (
  id        INTEGER PRIMARY KEY AUTOINCREMENT,
  endpoint  TEXT NOT NULL,
  timestamp INTEGER NOT NULL,
  success   INTEGER NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_summaries_created_at ON summaries(created_at DESC);
`)
	return err
}

func (s *Storage) SaveSummary(ctx context.Context, rec domain.SummaryRecord) (int64, error) {
	if rec.CreatedAt.IsZero() {
		rec.CreatedAt = s.now()
	}
	res, err := s.db.ExecContext(ctx, `
INSERT INTO summaries(source_type, source_content, summary, word_count, original_length, method, created_at)
VALUES(?, ?, ?, ?, ?, ?, ?)
`, rec.SourceType, domain.TruncateRunes(rec.SourceContent, domain.MaxSourceContentLen), rec.Summary,
		rec.WordCount, rec.OriginalLength, rec.Method, rec.CreatedAt.UnixMilli())
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

func (s *Storage) ListSummaries(ctx context.Context, limit int) ([]domain.SummaryRecord, error) {
	if limit <= 0 {
		limit = store.DefaultListLimit
	}

	rows, err := s.db.QueryContext(ctx, `
SELECT id, source_type, source_content, summary, word_count, original_length, method, created_at
FROM summaries
ORDER BY created_at DESC, id DESC
LIMIT ?
`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]domain.SummaryRecord, 0, limit)
	for rows.Next() {
		var rec domain.SummaryRecord
		var content, method sql.NullString
		var wordCount, origLen sql.NullInt64
		var createdAt int64
		if err := rows.Scan(&rec.ID, &rec.SourceType, &content, &rec.Summary, &wordCount, &origLen, &method, &createdAt); err != nil {
			return nil, err
		}
		rec.SourceContent = content.String
		rec.Method = method.String
		rec.WordCount = int(wordCount.Int64)
		rec.OriginalLength = int(origLen.Int64)
		rec.CreatedAt = time.UnixMilli(createdAt)
		out = append(out, rec)
	}
	return out, rows.Err()
}

func (s *Storage) DeleteSummary(ctx context.Context, id int64) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM summaries WHERE id = ?`, id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return store.ErrNotFound
	}
	return nil
}

func (s *Storage) LogCall(ctx context.Context, ev domain.CallEvent) error {
	if ev.Timestamp.IsZero() {
		ev.Timestamp = s.now()
	}
	_, err := s.db.ExecContext(ctx, `INSERT INTO analytics(endpoint, timestamp, success) VALUES(?, ?, ?)`,
		ev.Endpoint, ev.Timestamp.UnixMilli(), boolToInt(ev.Success))
	return err
}

func (s *Storage) Stats(ctx context.Context) (domain.Stats, error) {
	var st domain.Stats
	var successful sql.NullInt64
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*), SUM(success) FROM analytics`).Scan(&st.TotalCalls, &successful); err != nil {
		return st, err
	}
	st.SuccessfulCalls = int(successful.Int64)

	var avg sql.NullFloat64
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*), AVG(word_count) FROM summaries`).Scan(&st.TotalSummaries, &avg); err != nil {
		return st, err
	}
	st.AvgWordCount = avg.Float64
	return st, nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
