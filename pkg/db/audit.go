package db

import (
	"context"
	"fmt"
	"time"

	"github.com/PaulaAdelKamal/samsung-smartthings-mcp/pkg/gateway"
)

var _ gateway.Auditor = (*DB)(nil)

// RecordCommand appends one command attempt to the audit trail.
func (db *DB) RecordCommand(ctx context.Context, rec gateway.CommandRecord) error {
	issuedAt := rec.IssuedAt
	if issuedAt.IsZero() {
		issuedAt = time.Now().UTC()
	}

	_, err := db.ExecContext(ctx, `
		INSERT INTO command_audit (issued_at, device_id, capability, command, arguments, status, error)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		issuedAt.Format(time.RFC3339Nano),
		rec.DeviceID,
		rec.Capability,
		rec.Command,
		rec.Arguments,
		rec.Status,
		rec.Error,
	)
	if err != nil {
		return fmt.Errorf("failed to record command: %w", err)
	}
	return nil
}

// RecentCommands returns the most recent audit entries, newest first.
func (db *DB) RecentCommands(ctx context.Context, limit int) ([]gateway.CommandRecord, error) {
	if limit <= 0 {
		limit = 50
	}

	rows, err := db.QueryContext(ctx, `
		SELECT issued_at, device_id, capability, command, arguments, status, error
		FROM command_audit
		ORDER BY id DESC
		LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query audit trail: %w", err)
	}
	defer rows.Close()

	var records []gateway.CommandRecord
	for rows.Next() {
		var rec gateway.CommandRecord
		var issuedAt string
		if err := rows.Scan(&issuedAt, &rec.DeviceID, &rec.Capability, &rec.Command, &rec.Arguments, &rec.Status, &rec.Error); err != nil {
			return nil, fmt.Errorf("failed to scan audit row: %w", err)
		}
		if ts, err := time.Parse(time.RFC3339Nano, issuedAt); err == nil {
			rec.IssuedAt = ts
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}
