package db

import (
	"fmt"
	"time"

	"github.com/avtools/tamscout/internal/models"
)

const timeLayout = "2006-01-02T15:04:05.000Z"

// InsertEvents stores a batch of event records in one transaction.
func (db *DB) InsertEvents(records []models.EventRecord) error {
	tx, err := db.conn.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.Prepare(insertEvent)
	if err != nil {
		return fmt.Errorf("failed to prepare statement: %w", err)
	}
	defer stmt.Close()

	for _, r := range records {
		_, err := stmt.Exec(
			r.ID,
			r.EventType,
			r.SourceID,
			r.FlowID,
			r.Timerange,
			r.ReceivedAt.UTC().Format(timeLayout),
			r.Payload,
		)
		if err != nil {
			return fmt.Errorf("failed to insert event %s: %w", r.ID, err)
		}
	}

	return tx.Commit()
}

// ListEvents returns the newest events first, up to limit rows.
func (db *DB) ListEvents(limit int) ([]models.EventRecord, error) {
	if limit <= 0 {
		limit = 100
	}

	rows, err := db.conn.Query(selectEvents, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query events: %w", err)
	}
	defer rows.Close()

	var records []models.EventRecord
	for rows.Next() {
		var r models.EventRecord
		var receivedAt string
		if err := rows.Scan(&r.ID, &r.EventType, &r.SourceID, &r.FlowID, &r.Timerange, &receivedAt, &r.Payload); err != nil {
			return nil, fmt.Errorf("failed to scan event row: %w", err)
		}
		if t, err := time.Parse(timeLayout, receivedAt); err == nil {
			r.ReceivedAt = t
		}
		records = append(records, r)
	}

	return records, rows.Err()
}

// CountEvents returns the total number of stored events.
func (db *DB) CountEvents() (int, error) {
	var n int
	if err := db.conn.QueryRow(countEvents).Scan(&n); err != nil {
		return 0, fmt.Errorf("failed to count events: %w", err)
	}
	return n, nil
}

// PruneEvents drops all but the newest keep rows.
func (db *DB) PruneEvents(keep int) error {
	if keep < 0 {
		keep = 0
	}
	if _, err := db.conn.Exec(pruneEvents, keep); err != nil {
		return fmt.Errorf("failed to prune events: %w", err)
	}
	return nil
}

// TouchEndpoint records a store URL as recently used for the connect screen.
func (db *DB) TouchEndpoint(url, label string) error {
	now := time.Now().UTC().Format(timeLayout)
	if _, err := db.conn.Exec(upsertEndpoint, url, label, now); err != nil {
		return fmt.Errorf("failed to record endpoint: %w", err)
	}
	return nil
}

// Endpoint is a recently used store URL.
type Endpoint struct {
	URL      string
	Label    string
	LastUsed time.Time
}

// RecentEndpoints returns up to limit endpoints, most recently used first.
func (db *DB) RecentEndpoints(limit int) ([]Endpoint, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := db.conn.Query(selectEndpoints, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query endpoints: %w", err)
	}
	defer rows.Close()

	var endpoints []Endpoint
	for rows.Next() {
		var e Endpoint
		var lastUsed string
		if err := rows.Scan(&e.URL, &e.Label, &lastUsed); err != nil {
			return nil, fmt.Errorf("failed to scan endpoint row: %w", err)
		}
		if t, err := time.Parse(timeLayout, lastUsed); err == nil {
			e.LastUsed = t
		}
		endpoints = append(endpoints, e)
	}

	return endpoints, rows.Err()
}
