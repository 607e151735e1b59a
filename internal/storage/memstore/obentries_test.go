package memstore

import (
	"context"
	"fmt"
	"testing"
	"time"

	"policerecords/internal/models"
)

func TestCreateOBEntryDefaults(t *testing.T) {
	s := New()
	ctx := context.Background()

	e, err := s.CreateOBEntry(ctx, &models.OBEntry{Type: "complaint", Description: "Noise complaint"})
	if err != nil {
		t.Fatalf("CreateOBEntry err: %v", err)
	}
	want := fmt.Sprintf("OB/%d/0001", time.Now().Year())
	if e.OBNumber != want {
		t.Fatalf("obNumber = %q, want %q", e.OBNumber, want)
	}
	if e.Status != "recorded" {
		t.Fatalf("default status = %q", e.Status)
	}
	if e.DateTime.IsZero() {
		t.Fatalf("dateTime not defaulted")
	}
}

func TestCreateOBEntryKeepsExplicitDateTime(t *testing.T) {
	s := New()
	ctx := context.Background()

	when := time.Date(2026, 2, 14, 23, 30, 0, 0, time.UTC)
	e, err := s.CreateOBEntry(ctx, &models.OBEntry{Type: "arrest", DateTime: when})
	if err != nil {
		t.Fatalf("CreateOBEntry err: %v", err)
	}
	if !e.DateTime.Equal(when) {
		t.Fatalf("dateTime = %v, want %v", e.DateTime, when)
	}
}

func TestListOBEntriesNewestEventFirst(t *testing.T) {
	s := New()
	ctx := context.Background()

	early := time.Date(2026, 3, 1, 8, 0, 0, 0, time.UTC)
	late := time.Date(2026, 3, 1, 22, 0, 0, 0, time.UTC)

	// insertion order deliberately opposite to event order
	if _, err := s.CreateOBEntry(ctx, &models.OBEntry{Type: "a", DateTime: late}); err != nil {
		t.Fatalf("CreateOBEntry err: %v", err)
	}
	if _, err := s.CreateOBEntry(ctx, &models.OBEntry{Type: "b", DateTime: early}); err != nil {
		t.Fatalf("CreateOBEntry err: %v", err)
	}

	entries, err := s.ListOBEntries(ctx)
	if err != nil {
		t.Fatalf("ListOBEntries err: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("len = %d", len(entries))
	}
	if !entries[0].DateTime.Equal(late) || !entries[1].DateTime.Equal(early) {
		t.Fatalf("order: %v then %v", entries[0].DateTime, entries[1].DateTime)
	}
}
