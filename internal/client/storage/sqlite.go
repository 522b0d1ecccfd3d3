package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"
	"sync"

	"github.com/Kisalay21/familytree/internal/common"
	"github.com/Kisalay21/familytree/internal/dbx"
	"github.com/Kisalay21/familytree/internal/logging"
)

// SQLiteAdapter persists records in a records(key, value) table.
type SQLiteAdapter struct {
	db     dbx.DBTX
	logger logging.Logger

	// maxValueBytes caps the marshalled size of a single record.
	// Zero means no cap; SQLITE_FULL is still mapped to ErrQuotaExceeded.
	maxValueBytes int64

	mu      sync.Mutex
	subs    map[string]map[int]func()
	nextSub int
}

func NewSQLiteAdapter(db dbx.DBTX, logger logging.Logger, maxValueBytes int64) *SQLiteAdapter {
	return &SQLiteAdapter{
		db:            db,
		logger:        logger.With("module", "storage"),
		maxValueBytes: maxValueBytes,
		subs:          make(map[string]map[int]func()),
	}
}

func (a *SQLiteAdapter) Load(ctx context.Context, key string, out any) error {
	var value []byte
	err := a.db.QueryRowContext(ctx, `SELECT value FROM records WHERE key = ?`, key).Scan(&value)
	if err == sql.ErrNoRows {
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to load record[%s]: %w", key, err)
	}

	if err := json.Unmarshal(value, out); err != nil {
		// A corrupt record must not break the app; the caller's default wins.
		a.logger.Warn(ctx, "corrupt record, falling back to defaults", "key", key, "error", err.Error())
		return nil
	}
	return nil
}

func (a *SQLiteAdapter) Save(ctx context.Context, key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to marshal record[%s]: %w", key, err)
	}

	if a.maxValueBytes > 0 && int64(len(data)) > a.maxValueBytes {
		return fmt.Errorf("record[%s] is %d bytes: %w", key, len(data), common.ErrQuotaExceeded)
	}

	_, err = a.db.ExecContext(ctx, `
		INSERT INTO records (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value
	`, key, data)
	if err != nil {
		if isDiskFull(err) {
			return fmt.Errorf("record[%s]: %w", key, common.ErrQuotaExceeded)
		}
		return fmt.Errorf("failed to save record[%s]: %w", key, err)
	}

	a.notify(key)
	return nil
}

func (a *SQLiteAdapter) Delete(ctx context.Context, key string) error {
	_, err := a.db.ExecContext(ctx, `DELETE FROM records WHERE key = ?`, key)
	if err != nil {
		return fmt.Errorf("failed to delete record[%s]: %w", key, err)
	}
	a.notify(key)
	return nil
}

func (a *SQLiteAdapter) Clear(ctx context.Context, keys ...string) error {
	for _, key := range keys {
		if err := a.Delete(ctx, key); err != nil {
			return err
		}
	}
	return nil
}

func (a *SQLiteAdapter) Subscribe(key string, fn func()) func() {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.subs[key] == nil {
		a.subs[key] = make(map[int]func())
	}
	id := a.nextSub
	a.nextSub++
	a.subs[key][id] = fn

	return func() {
		a.mu.Lock()
		defer a.mu.Unlock()
		delete(a.subs[key], id)
	}
}

func (a *SQLiteAdapter) notify(key string) {
	a.mu.Lock()
	fns := make([]func(), 0, len(a.subs[key]))
	for _, fn := range a.subs[key] {
		fns = append(fns, fn)
	}
	a.mu.Unlock()

	for _, fn := range fns {
		fn()
	}
}

// isDiskFull matches the SQLITE_FULL condition surfaced by the driver.
func isDiskFull(err error) bool {
	return err != nil && strings.Contains(err.Error(), "database or disk is full")
}
