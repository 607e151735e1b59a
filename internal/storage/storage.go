// Package storage defines the operation contract shared by the two
// interchangeable backends (in-memory and MongoDB) and selects one of
// them at startup.
//
// Callers hold a Storage value and never know which backend is active.
// Identifiers cross the contract as strings; each backend translates
// them into its native key type and rejects malformed input with
// common.ErrorInvalidID. Business numbers (case/OB/evidence/report) are
// backend-specific in format; only validity and uniqueness are promised.
package storage

import (
	"context"

	"policerecords/internal/models"
)

type UserStorage interface {
	CreateUser(ctx context.Context, u *models.User) (*models.User, error)
	GetUser(ctx context.Context, id string) (*models.User, error)
	GetUserByUsername(ctx context.Context, username string) (*models.User, error)
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
	ListUsers(ctx context.Context) ([]*models.User, error)
	UpdateUser(ctx context.Context, id string, upd *models.UserUpdate) (*models.User, error)
	UpdateLastLogin(ctx context.Context, id string) error
	UpdateUserPassword(ctx context.Context, id string, password string) error
	DeleteUser(ctx context.Context, id string) error
}

type TokenStorage interface {
	CreatePasswordResetToken(ctx context.Context, userID, token string) error
	// GetPasswordResetToken returns the token record only while it is
	// still valid; an expired token reads as not found.
	GetPasswordResetToken(ctx context.Context, token string) (*models.PasswordResetToken, error)
	DeletePasswordResetToken(ctx context.Context, token string) error
}

type CaseStorage interface {
	CreateCase(ctx context.Context, c *models.Case) (*models.Case, error)
	GetCase(ctx context.Context, id string) (*models.Case, error)
	// ListCases returns cases newest-first by creation time.
	ListCases(ctx context.Context) ([]*models.Case, error)
	UpdateCase(ctx context.Context, id string, upd *models.CaseUpdate) (*models.Case, error)
	DeleteCase(ctx context.Context, id string) error
}

type OBEntryStorage interface {
	CreateOBEntry(ctx context.Context, e *models.OBEntry) (*models.OBEntry, error)
	GetOBEntry(ctx context.Context, id string) (*models.OBEntry, error)
	// ListOBEntries returns entries newest-first by event time.
	ListOBEntries(ctx context.Context) ([]*models.OBEntry, error)
	UpdateOBEntry(ctx context.Context, id string, upd *models.OBEntryUpdate) (*models.OBEntry, error)
	DeleteOBEntry(ctx context.Context, id string) error
}

type LicensePlateStorage interface {
	CreateLicensePlate(ctx context.Context, p *models.LicensePlate) (*models.LicensePlate, error)
	GetLicensePlate(ctx context.Context, id string) (*models.LicensePlate, error)
	GetLicensePlateByNumber(ctx context.Context, plateNumber string) (*models.LicensePlate, error)
	ListLicensePlates(ctx context.Context) ([]*models.LicensePlate, error)
	UpdateLicensePlate(ctx context.Context, id string, upd *models.LicensePlateUpdate) (*models.LicensePlate, error)
	DeleteLicensePlate(ctx context.Context, id string) error
}

type EvidenceStorage interface {
	CreateEvidence(ctx context.Context, e *models.Evidence) (*models.Evidence, error)
	GetEvidence(ctx context.Context, id string) (*models.Evidence, error)
	GetEvidenceByNumber(ctx context.Context, evidenceNumber string) (*models.Evidence, error)
	ListEvidence(ctx context.Context) ([]*models.Evidence, error)
	UpdateEvidence(ctx context.Context, id string, upd *models.EvidenceUpdate) (*models.Evidence, error)
	DeleteEvidence(ctx context.Context, id string) error
}

type GeofileStorage interface {
	CreateGeofile(ctx context.Context, g *models.Geofile) (*models.Geofile, error)
	GetGeofile(ctx context.Context, id string) (*models.Geofile, error)
	// ListGeofiles applies the filter (AND-combined, omitted fields are
	// no-ops) and returns matches newest-first by creation time.
	ListGeofiles(ctx context.Context, filter models.GeofileFilter) ([]*models.Geofile, error)
	// SearchGeofilesByLocation returns geofiles whose stored coordinate
	// lies within radiusMeters of (lat, lng). Records with missing or
	// malformed coordinates are excluded, not errors.
	SearchGeofilesByLocation(ctx context.Context, lat, lng, radiusMeters float64) ([]*models.Geofile, error)
	UpdateGeofile(ctx context.Context, id string, upd *models.GeofileUpdate) (*models.Geofile, error)
	LinkGeofileToCase(ctx context.Context, geofileID, caseID string) error
	// AddGeofileTags unions the given tags into the stored tag list;
	// repeated application of the same set is idempotent.
	AddGeofileTags(ctx context.Context, geofileID string, tags []string) error
	// IncrementGeofileDownload and TouchGeofileAccess are no-ops when the
	// geofile does not exist.
	IncrementGeofileDownload(ctx context.Context, id string) error
	TouchGeofileAccess(ctx context.Context, id string) error
	DeleteGeofile(ctx context.Context, id string) error
}

type ReportStorage interface {
	CreateReport(ctx context.Context, r *models.Report) (*models.Report, error)
	GetReport(ctx context.Context, id string) (*models.Report, error)
	GetReportByNumber(ctx context.Context, reportNumber string) (*models.Report, error)
	ListReports(ctx context.Context) ([]*models.Report, error)
	UpdateReport(ctx context.Context, id string, upd *models.ReportUpdate) (*models.Report, error)
	DeleteReport(ctx context.Context, id string) error
}

type VehicleStorage interface {
	CreatePoliceVehicle(ctx context.Context, v *models.PoliceVehicle) (*models.PoliceVehicle, error)
	GetPoliceVehicle(ctx context.Context, id string) (*models.PoliceVehicle, error)
	GetPoliceVehicleByLicensePlate(ctx context.Context, licensePlate string) (*models.PoliceVehicle, error)
	ListPoliceVehicles(ctx context.Context) ([]*models.PoliceVehicle, error)
	UpdatePoliceVehicle(ctx context.Context, id string, upd *models.PoliceVehicleUpdate) (*models.PoliceVehicle, error)
	// UpdateVehicleLocation replaces the serialized current-location
	// point; UpdateVehicleStatus replaces the fleet status. Both refresh
	// lastUpdate and updatedAt.
	UpdateVehicleLocation(ctx context.Context, id string, location string) (*models.PoliceVehicle, error)
	UpdateVehicleStatus(ctx context.Context, id string, status string) (*models.PoliceVehicle, error)
	DeletePoliceVehicle(ctx context.Context, id string) error
}

// Storage is the full backend contract. Exactly one implementation is
// selected per process lifetime by Open.
type Storage interface {
	UserStorage
	TokenStorage
	CaseStorage
	OBEntryStorage
	LicensePlateStorage
	EvidenceStorage
	GeofileStorage
	ReportStorage
	VehicleStorage
}
