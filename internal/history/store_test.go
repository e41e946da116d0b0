package history

import (
	"path/filepath"
	"testing"
	"time"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "history.db"))
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestAddAssignsIDAndTimestamps(t *testing.T) {
	s := openTestStore(t)

	e, err := s.Add(Entry{
		OrderID:  "jo-pick-1",
		Type:     "pick",
		Facility: "osr1",
		Status:   StatusSent,
		Payload:  "<host2osr/>",
	})
	if err != nil {
		t.Fatalf("Add() error = %v", err)
	}
	if e.ID == "" {
		t.Error("Add() left ID empty")
	}
	if e.Created.IsZero() || e.Updated.IsZero() {
		t.Error("Add() left timestamps zero")
	}

	got, err := s.Get(e.ID)
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if got.OrderID != "jo-pick-1" || got.Status != StatusSent || got.Payload != "<host2osr/>" {
		t.Errorf("Get() = %+v", got)
	}
}

func TestUpdateStatus(t *testing.T) {
	s := openTestStore(t)
	e, _ := s.Add(Entry{OrderID: "o1", Type: "pick", Facility: "osr1", Status: StatusSent})

	if err := s.UpdateStatus(e.ID, StatusCancelled); err != nil {
		t.Fatalf("UpdateStatus() error = %v", err)
	}
	got, _ := s.Get(e.ID)
	if got.Status != StatusCancelled {
		t.Errorf("status = %q, want cancelled", got.Status)
	}

	if err := s.UpdateStatus("no-such-id", StatusFailed); err == nil {
		t.Error("UpdateStatus() accepted an unknown id")
	}
}

func TestListForFiltersAndOrders(t *testing.T) {
	s := openTestStore(t)
	s.Add(Entry{OrderID: "a", Type: "pick", Facility: "osr1", Status: StatusSent})
	s.Add(Entry{OrderID: "b", Type: "pick", Facility: "osr2", Status: StatusSent})
	s.Add(Entry{OrderID: "c", Type: "inventory", Facility: "osr1", Status: StatusDryRun})

	entries, err := s.ListFor("osr1")
	if err != nil {
		t.Fatalf("ListFor() error = %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("ListFor(osr1) returned %d entries, want 2", len(entries))
	}
	for _, e := range entries {
		if e.Facility != "osr1" {
			t.Errorf("entry %s from facility %q leaked in", e.OrderID, e.Facility)
		}
	}
	if entries[0].Created.Before(entries[1].Created) {
		t.Error("entries not most-recent-first")
	}
}

func TestActiveForExcludesTerminalStatuses(t *testing.T) {
	s := openTestStore(t)
	for _, status := range []string{
		StatusSent, StatusDryRun, StatusPending, StatusProcessing,
		StatusCompleted, StatusFailed, StatusCancelled, StatusCancelledDryRun,
	} {
		s.Add(Entry{OrderID: "o-" + status, Type: "pick", Facility: "osr1", Status: status})
	}

	entries, err := s.ActiveFor("osr1")
	if err != nil {
		t.Fatalf("ActiveFor() error = %v", err)
	}
	if len(entries) != 4 {
		t.Fatalf("ActiveFor() returned %d entries, want 4", len(entries))
	}
	for _, e := range entries {
		if !e.Active() {
			t.Errorf("terminal entry %q returned as active", e.Status)
		}
	}
}

func TestCleanupRemovesOldEntries(t *testing.T) {
	s := openTestStore(t)
	e, _ := s.Add(Entry{OrderID: "old", Type: "pick", Facility: "osr1", Status: StatusSent})
	s.Add(Entry{OrderID: "new", Type: "pick", Facility: "osr1", Status: StatusSent})

	// Push one entry into the past.
	past := time.Now().UTC().Add(-48 * time.Hour).Format(time.RFC3339)
	if _, err := s.db.Exec(`UPDATE orders SET created_at = ? WHERE id = ?`, past, e.ID); err != nil {
		t.Fatal(err)
	}

	removed, err := s.Cleanup(time.Now().UTC().Add(-24 * time.Hour))
	if err != nil {
		t.Fatalf("Cleanup() error = %v", err)
	}
	if removed != 1 {
		t.Errorf("Cleanup() removed %d, want 1", removed)
	}
	entries, _ := s.ListFor("osr1")
	if len(entries) != 1 || entries[0].OrderID != "new" {
		t.Errorf("remaining entries = %+v, want only the new one", entries)
	}
}

func TestParseTimeframe(t *testing.T) {
	now := time.Date(2026, 8, 28, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		arg  string
		want time.Time
	}{
		{"all", now},
		{"1d", now.AddDate(0, 0, -1)},
		{"1w", now.AddDate(0, 0, -7)},
		{"2w", now.AddDate(0, 0, -14)},
		{"1m", now.AddDate(0, 0, -30)},
		{"2026-01-15", time.Date(2026, 1, 15, 0, 0, 0, 0, time.UTC)},
	}
	for _, tt := range tests {
		got, err := ParseTimeframe(tt.arg, now)
		if err != nil {
			t.Errorf("ParseTimeframe(%q) error = %v", tt.arg, err)
			continue
		}
		if !got.Equal(tt.want) {
			t.Errorf("ParseTimeframe(%q) = %v, want %v", tt.arg, got, tt.want)
		}
	}

	if _, err := ParseTimeframe("next tuesday", now); err == nil {
		t.Error("ParseTimeframe accepted garbage")
	}
}
