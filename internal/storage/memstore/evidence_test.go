package memstore

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"policerecords/internal/common"
	"policerecords/internal/models"
)

func TestCreateEvidence(t *testing.T) {
	s := New()
	ctx := context.Background()

	e, err := s.CreateEvidence(ctx, &models.Evidence{Type: "physical", Description: "Recovered laptop"})
	if err != nil {
		t.Fatalf("CreateEvidence err: %v", err)
	}
	want := fmt.Sprintf("EV-%d-0001", time.Now().Year())
	if e.EvidenceNumber != want {
		t.Fatalf("evidenceNumber = %q, want %q", e.EvidenceNumber, want)
	}
	if e.CollectedBy != "1" {
		t.Fatalf("default collectedBy = %q", e.CollectedBy)
	}
}

func TestGetEvidenceByNumber(t *testing.T) {
	s := New()
	ctx := context.Background()

	created, err := s.CreateEvidence(ctx, &models.Evidence{Type: "digital"})
	if err != nil {
		t.Fatalf("CreateEvidence err: %v", err)
	}

	e, err := s.GetEvidenceByNumber(ctx, created.EvidenceNumber)
	if err != nil {
		t.Fatalf("GetEvidenceByNumber err: %v", err)
	}
	if e.ID != created.ID {
		t.Fatalf("id = %q, want %q", e.ID, created.ID)
	}

	if _, err := s.GetEvidenceByNumber(ctx, "EV-0000-0000"); !errors.Is(err, common.ErrorNotFound) {
		t.Fatalf("missing number: got %v", err)
	}
}

func TestUpdateEvidence(t *testing.T) {
	s := New()
	ctx := context.Background()

	created, err := s.CreateEvidence(ctx, &models.Evidence{Type: "physical", Status: "collected"})
	if err != nil {
		t.Fatalf("CreateEvidence err: %v", err)
	}

	loc := "Locker B-17"
	e, err := s.UpdateEvidence(ctx, created.ID, &models.EvidenceUpdate{StorageLocation: &loc})
	if err != nil {
		t.Fatalf("UpdateEvidence err: %v", err)
	}
	if e.StorageLocation != "Locker B-17" {
		t.Fatalf("storageLocation = %q", e.StorageLocation)
	}
	if e.Status != "collected" {
		t.Fatalf("untouched status changed: %q", e.Status)
	}
}
