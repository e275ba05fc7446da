package db

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/PaulaAdelKamal/samsung-smartthings-mcp/pkg/gateway"
)

func openTestDB(t *testing.T) *DB {
	t.Helper()

	database, err := Open(filepath.Join(t.TempDir(), "audit.db"))
	if err != nil {
		t.Fatalf("failed to open database: %v", err)
	}
	t.Cleanup(func() { _ = database.Close() })

	if err := database.Migrate(context.Background()); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}
	return database
}

func TestRecordAndRecentCommands(t *testing.T) {
	database := openTestDB(t)
	ctx := context.Background()

	records := []gateway.CommandRecord{
		{
			IssuedAt:   time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC),
			DeviceID:   "tv-1",
			Capability: "switch",
			Command:    "on",
			Arguments:  "[]",
			Status:     "ACCEPTED",
		},
		{
			IssuedAt:   time.Date(2026, 8, 1, 10, 1, 0, 0, time.UTC),
			DeviceID:   "tv-1",
			Capability: "audioVolume",
			Command:    "setVolume",
			Arguments:  "[30]",
			Status:     "",
			Error:      "network error",
		},
	}
	for _, rec := range records {
		if err := database.RecordCommand(ctx, rec); err != nil {
			t.Fatalf("failed to record command: %v", err)
		}
	}

	got, err := database.RecentCommands(ctx, 10)
	if err != nil {
		t.Fatalf("failed to read audit trail: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 records, got %d", len(got))
	}

	// Newest first
	if got[0].Command != "setVolume" {
		t.Errorf("expected newest record first, got command %q", got[0].Command)
	}
	if got[0].Error != "network error" {
		t.Errorf("expected error to round-trip, got %q", got[0].Error)
	}
	if got[1].Command != "on" {
		t.Errorf("expected oldest record last, got command %q", got[1].Command)
	}
	if !got[1].IssuedAt.Equal(records[0].IssuedAt) {
		t.Errorf("timestamp did not round-trip: %v != %v", got[1].IssuedAt, records[0].IssuedAt)
	}
}

func TestRecentCommands_Limit(t *testing.T) {
	database := openTestDB(t)
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		rec := gateway.CommandRecord{
			IssuedAt:   time.Now().UTC(),
			DeviceID:   "tv-1",
			Capability: "switch",
			Command:    "on",
		}
		if err := database.RecordCommand(ctx, rec); err != nil {
			t.Fatal(err)
		}
	}

	got, err := database.RecentCommands(ctx, 3)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 3 {
		t.Errorf("expected 3 records, got %d", len(got))
	}
}

func TestRecentCommands_Empty(t *testing.T) {
	database := openTestDB(t)

	got, err := database.RecentCommands(context.Background(), 10)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 0 {
		t.Errorf("expected no records, got %d", len(got))
	}
}
