package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/evanschultz/tasksboard/internal/domain"
	"github.com/google/uuid"
	_ "modernc.org/sqlite"
)

// driverName defines a package constant value.
const driverName = "sqlite"

// defaultListLimit caps ListChangeEvents when the caller passes no limit.
const defaultListLimit = 50

// Journal stores the change events of one session in a private in-memory database.
type Journal struct {
	db        *sql.DB
	sessionID string
}

// OpenInMemory opens a journal backed by a named in-memory database. Each call
// gets its own database, so two journals never see each other's events.
func OpenInMemory() (*Journal, error) {
	sessionID := uuid.NewString()
	dsn := fmt.Sprintf("file:tasksboard-%s?mode=memory&cache=shared", sessionID)
	db, err := sql.Open(driverName, dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite memory: %w", err)
	}
	// The memory database lives as long as one connection stays open.
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)
	journal := &Journal{db: db, sessionID: sessionID}
	if err := journal.migrate(context.Background()); err != nil {
		_ = db.Close()
		return nil, err
	}
	return journal, nil
}

// SessionID returns the id stamped on every event this journal records.
func (j *Journal) SessionID() string {
	return j.sessionID
}

// Close releases the database. The recorded events are gone afterwards.
func (j *Journal) Close() error {
	return j.db.Close()
}

// migrate creates the journal schema.
func (j *Journal) migrate(ctx context.Context) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS change_events (
			seq INTEGER PRIMARY KEY AUTOINCREMENT,
			id TEXT NOT NULL UNIQUE,
			session_id TEXT NOT NULL,
			operation TEXT NOT NULL,
			board_id INTEGER NOT NULL DEFAULT 0,
			list_id INTEGER NOT NULL DEFAULT 0,
			task_id INTEGER NOT NULL DEFAULT 0,
			title TEXT NOT NULL DEFAULT '',
			occurred_at TEXT NOT NULL
		);`,
		`CREATE INDEX IF NOT EXISTS idx_change_events_board ON change_events(board_id, seq);`,
	}
	for _, stmt := range stmts {
		if _, err := j.db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("migrate sqlite: %w", err)
		}
	}
	return nil
}

// RecordChangeEvent appends one event. Events without an id get a fresh one.
func (j *Journal) RecordChangeEvent(ctx context.Context, event domain.ChangeEvent) error {
	if strings.TrimSpace(string(event.Operation)) == "" {
		return errors.New("change event operation is required")
	}
	id := strings.TrimSpace(event.ID)
	if id == "" {
		id = uuid.NewString()
	}
	_, err := j.db.ExecContext(ctx, `
		INSERT INTO change_events(id, session_id, operation, board_id, list_id, task_id, title, occurred_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`,
		id,
		j.sessionID,
		string(event.Operation),
		int64(event.BoardID),
		int64(event.ListID),
		int64(event.TaskID),
		event.Title,
		ts(normalizeEventTS(event.OccurredAt)),
	)
	if err != nil {
		return fmt.Errorf("insert change event: %w", err)
	}
	return nil
}

// ListChangeEvents returns recent events, newest first by occurrence time.
// Events sharing a timestamp fall back to insertion order.
func (j *Journal) ListChangeEvents(ctx context.Context, limit int) ([]domain.ChangeEvent, error) {
	if limit <= 0 {
		limit = defaultListLimit
	}
	rows, err := j.db.QueryContext(ctx, `
		SELECT id, operation, board_id, list_id, task_id, title, occurred_at
		FROM change_events
		ORDER BY occurred_at DESC, seq DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("list change events: %w", err)
	}
	defer rows.Close()

	out := make([]domain.ChangeEvent, 0)
	for rows.Next() {
		var (
			event                   domain.ChangeEvent
			opRaw, occurredRaw      string
			boardID, listID, taskID int64
		)
		if err := rows.Scan(&event.ID, &opRaw, &boardID, &listID, &taskID, &event.Title, &occurredRaw); err != nil {
			return nil, err
		}
		event.Operation = domain.ChangeOperation(strings.TrimSpace(opRaw))
		event.BoardID = domain.ID(boardID)
		event.ListID = domain.ID(listID)
		event.TaskID = domain.ID(taskID)
		event.OccurredAt = parseTS(occurredRaw)
		out = append(out, event)
	}
	return out, rows.Err()
}

// normalizeEventTS ensures event timestamps are always populated and UTC-normalized.
func normalizeEventTS(in time.Time) time.Time {
	if in.IsZero() {
		return time.Now().UTC()
	}
	return in.UTC()
}

// tsLayout keeps a fixed number of fractional digits so stored timestamps sort as text.
const tsLayout = "2006-01-02T15:04:05.000000000Z07:00"

// ts formats a timestamp for the occurred_at column.
func ts(t time.Time) string {
	return t.UTC().Format(tsLayout)
}

// parseTS parses input into a normalized form.
func parseTS(v string) time.Time {
	parsed, err := time.Parse(time.RFC3339Nano, v)
	if err != nil {
		return time.Time{}
	}
	return parsed.UTC()
}
