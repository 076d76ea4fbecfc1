package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/gofrs/uuid/v5"
)

// Event is the durable record emitted after every successful module
// operation. Snapshot holds the operation-specific fields as JSON so the
// log stays queryable without one table per operation.
type Event struct {
	ID          string
	Category    string
	Operation   string
	Entity      string
	Subject     string
	Snapshot    string
	Amount      uint64
	TotalBurned uint64
	Timestamp   int64
}

var eventCols = []string{"event_id", "category", "operation", "entity", "subject", "snapshot", "amount", "total_burned", "timestamp", "created_at"}

func (s *SQLite3Store) writeEvent(ctx context.Context, tx *sql.Tx, e *Event) error {
	if e.ID == "" {
		e.ID = uuid.Must(uuid.NewV4()).String()
	}
	vals := []any{e.ID, e.Category, e.Operation, e.Entity, e.Subject, e.Snapshot, e.Amount, e.TotalBurned, e.Timestamp, time.Now().UTC()}
	err := s.execOne(ctx, tx, buildInsertionSQL("events", eventCols), vals...)
	if err != nil {
		return fmt.Errorf("INSERT events %v", err)
	}
	return nil
}

func (s *SQLite3Store) ListEvents(ctx context.Context, category string, limit int) ([]*Event, error) {
	query := "SELECT event_id,category,operation,entity,subject,snapshot,amount,total_burned,timestamp FROM events WHERE category=? ORDER BY timestamp DESC LIMIT ?"
	rows, err := s.db.QueryContext(ctx, query, category, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var events []*Event
	for rows.Next() {
		var e Event
		err = rows.Scan(&e.ID, &e.Category, &e.Operation, &e.Entity, &e.Subject, &e.Snapshot, &e.Amount, &e.TotalBurned, &e.Timestamp)
		if err != nil {
			return nil, err
		}
		events = append(events, &e)
	}
	return events, rows.Err()
}
