package memstore

import (
	"context"
	"fmt"
	"testing"
	"time"

	"policerecords/internal/models"
)

func TestCreateReport(t *testing.T) {
	s := New()
	ctx := context.Background()

	r, err := s.CreateReport(ctx, &models.Report{Title: "Monthly incident summary", Type: "summary"})
	if err != nil {
		t.Fatalf("CreateReport err: %v", err)
	}
	want := fmt.Sprintf("RPT-%d-0001", time.Now().Year())
	if r.ReportNumber != want {
		t.Fatalf("reportNumber = %q, want %q", r.ReportNumber, want)
	}
	if r.RequestedBy != "1" {
		t.Fatalf("default requestedBy = %q", r.RequestedBy)
	}

	got, err := s.GetReportByNumber(ctx, r.ReportNumber)
	if err != nil {
		t.Fatalf("GetReportByNumber err: %v", err)
	}
	if got.ID != r.ID {
		t.Fatalf("id = %q, want %q", got.ID, r.ID)
	}
}

func TestUpdateReportDateRange(t *testing.T) {
	s := New()
	ctx := context.Background()

	r, err := s.CreateReport(ctx, &models.Report{Title: "Range report"})
	if err != nil {
		t.Fatalf("CreateReport err: %v", err)
	}

	from := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2026, 1, 31, 0, 0, 0, 0, time.UTC)
	updated, err := s.UpdateReport(ctx, r.ID, &models.ReportUpdate{DateFrom: &from, DateTo: &to})
	if err != nil {
		t.Fatalf("UpdateReport err: %v", err)
	}
	if updated.DateFrom == nil || !updated.DateFrom.Equal(from) {
		t.Fatalf("dateFrom = %v", updated.DateFrom)
	}
	if updated.DateTo == nil || !updated.DateTo.Equal(to) {
		t.Fatalf("dateTo = %v", updated.DateTo)
	}
}
