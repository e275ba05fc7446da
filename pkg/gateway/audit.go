package gateway

import (
	"context"
	"time"
)

// CommandRecord is the audit trail entry for one issued command.
// It never contains the access token, and device descriptors are not
// persisted with it.
type CommandRecord struct {
	IssuedAt   time.Time
	DeviceID   string
	Capability string
	Command    string
	Arguments  string
	Status     string
	Error      string
}

// Auditor records command attempts. Audit failures must not fail the
// command itself; the gateway logs and moves on.
type Auditor interface {
	RecordCommand(ctx context.Context, rec CommandRecord) error
}
