package memstore

import (
	"context"
	"errors"
	"testing"
	"time"

	"policerecords/internal/common"
	"policerecords/internal/models"
)

func TestPasswordResetTokenLifecycle(t *testing.T) {
	s := New()
	ctx := context.Background()

	if err := s.CreatePasswordResetToken(ctx, "1", "tok-1"); err != nil {
		t.Fatalf("CreatePasswordResetToken err: %v", err)
	}
	if err := s.CreatePasswordResetToken(ctx, "1", "tok-1"); !errors.Is(err, common.ErrorAlreadyExists) {
		t.Fatalf("duplicate token: got %v", err)
	}

	rec, err := s.GetPasswordResetToken(ctx, "tok-1")
	if err != nil {
		t.Fatalf("GetPasswordResetToken err: %v", err)
	}
	if rec.UserID != "1" {
		t.Fatalf("userId = %q", rec.UserID)
	}
	if got := rec.ExpiresAt.Sub(rec.CreatedAt); got != models.PasswordResetTokenTTL {
		t.Fatalf("ttl = %v, want %v", got, models.PasswordResetTokenTTL)
	}

	if err := s.DeletePasswordResetToken(ctx, "tok-1"); err != nil {
		t.Fatalf("DeletePasswordResetToken err: %v", err)
	}
	if _, err := s.GetPasswordResetToken(ctx, "tok-1"); !errors.Is(err, common.ErrorNotFound) {
		t.Fatalf("deleted token still readable: %v", err)
	}
}

func TestPasswordResetTokenExpiry(t *testing.T) {
	s := New()
	ctx := context.Background()

	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	s.now = func() time.Time { return base }

	if err := s.CreatePasswordResetToken(ctx, "1", "tok-exp"); err != nil {
		t.Fatalf("CreatePasswordResetToken err: %v", err)
	}

	// one second before expiry the token is still valid
	s.now = func() time.Time { return base.Add(models.PasswordResetTokenTTL - time.Second) }
	if _, err := s.GetPasswordResetToken(ctx, "tok-exp"); err != nil {
		t.Fatalf("token expired early: %v", err)
	}

	// at the expiry instant it reads as absent and is evicted
	s.now = func() time.Time { return base.Add(models.PasswordResetTokenTTL) }
	if _, err := s.GetPasswordResetToken(ctx, "tok-exp"); !errors.Is(err, common.ErrorNotFound) {
		t.Fatalf("expired token: got %v", err)
	}
	if err := s.DeletePasswordResetToken(ctx, "tok-exp"); !errors.Is(err, common.ErrorNotFound) {
		t.Fatalf("evicted token still deletable: %v", err)
	}
}

func TestPasswordResetTokenEmpty(t *testing.T) {
	s := New()
	ctx := context.Background()

	if err := s.CreatePasswordResetToken(ctx, "1", ""); !errors.Is(err, common.ErrorValidation) {
		t.Fatalf("empty token: got %v", err)
	}
}
