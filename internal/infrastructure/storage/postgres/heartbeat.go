package postgres

import (
	"context"
	"fmt"
	"time"

	"kahawa/internal/core/id"
)

// HeartbeatEntry is one keep-alive ping record.
type HeartbeatEntry struct {
	ID        id.ID     `db:"id"`
	Source    string    `db:"source"`
	CreatedAt time.Time `db:"created_at"`
}

// HeartbeatStore records external keep-alive pings. Hosting platforms that
// sleep idle services hit the heartbeat endpoint on a schedule; the log
// doubles as an uptime trail.
type HeartbeatStore struct {
	txManager *TxManager
	batch     *BatchExecutor
	retention time.Duration
}

// NewHeartbeatStore creates a new heartbeat store.
func NewHeartbeatStore(txManager *TxManager) *HeartbeatStore {
	return &HeartbeatStore{
		txManager: txManager,
		batch:     NewBatchExecutor(txManager),
		retention: 30 * 24 * time.Hour,
	}
}

// Record inserts a heartbeat row, prunes entries past retention, and
// returns the new entry. Insert and prune go out as one batch.
func (s *HeartbeatStore) Record(ctx context.Context, source string) (*HeartbeatEntry, error) {
	entry := HeartbeatEntry{
		ID:        id.New(),
		Source:    source,
		CreatedAt: time.Now().UTC(),
	}

	err := s.txManager.RunInTransaction(ctx, func(ctx context.Context) error {
		return s.batch.ExecuteBatch(ctx, []BatchQuery{
			{
				SQL:  "INSERT INTO heartbeat_logs (id, source, created_at) VALUES ($1, $2, $3)",
				Args: []any{entry.ID, entry.Source, entry.CreatedAt},
			},
			{
				SQL:  "DELETE FROM heartbeat_logs WHERE created_at < $1",
				Args: []any{time.Now().UTC().Add(-s.retention)},
			},
		})
	})
	if err != nil {
		return nil, fmt.Errorf("record heartbeat: %w", err)
	}

	return &entry, nil
}

// Recent returns the latest heartbeat entries, newest first.
func (s *HeartbeatStore) Recent(ctx context.Context, limit int) ([]HeartbeatEntry, error) {
	rows, err := s.txManager.GetQuerier(ctx).Query(ctx,
		"SELECT id, source, created_at FROM heartbeat_logs ORDER BY created_at DESC LIMIT $1",
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("query heartbeats: %w", err)
	}
	defer rows.Close()

	var entries []HeartbeatEntry
	for rows.Next() {
		var e HeartbeatEntry
		if err := rows.Scan(&e.ID, &e.Source, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan heartbeat: %w", err)
		}
		entries = append(entries, e)
	}

	return entries, rows.Err()
}
