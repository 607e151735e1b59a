package mongostore

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"testing"
	"time"

	"policerecords/internal/common"
	"policerecords/internal/logging"
	"policerecords/internal/models"
)

func newUnconnected() *Store {
	sl := slog.New(slog.NewTextHandler(os.Stderr, nil))
	return New("police_management_test", logging.NewSlogLogger(sl))
}

func TestOperationsBeforeConnect(t *testing.T) {
	s := newUnconnected()
	ctx := context.Background()

	if _, err := s.GetUser(ctx, "1"); !errors.Is(err, common.ErrorNotConnected) {
		t.Fatalf("GetUser: got %v, want ErrorNotConnected", err)
	}
	if _, err := s.CreateCase(ctx, &models.Case{Title: "x"}); !errors.Is(err, common.ErrorNotConnected) {
		t.Fatalf("CreateCase: got %v", err)
	}
	if _, err := s.ListGeofiles(ctx, models.GeofileFilter{}); !errors.Is(err, common.ErrorNotConnected) {
		t.Fatalf("ListGeofiles: got %v", err)
	}
	if err := s.DeleteReport(ctx, "1"); !errors.Is(err, common.ErrorNotConnected) {
		t.Fatalf("DeleteReport: got %v", err)
	}
}

func TestDisconnectWithoutConnect(t *testing.T) {
	s := newUnconnected()
	if err := s.Disconnect(context.Background()); err != nil {
		t.Fatalf("Disconnect err: %v", err)
	}
}

func TestConnectUnreachable(t *testing.T) {
	if testing.Short() {
		t.Skip("dials a socket")
	}

	s := newUnconnected()
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	if err := s.Connect(ctx, "mongodb://127.0.0.1:1"); err == nil {
		t.Fatalf("expected connect error")
	}
	// the store stays unusable after a failed connect
	if _, err := s.GetUser(context.Background(), "1"); !errors.Is(err, common.ErrorNotConnected) {
		t.Fatalf("got %v, want ErrorNotConnected", err)
	}
}
