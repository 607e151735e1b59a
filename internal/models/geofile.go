package models

import (
	"encoding/json"
	"time"
)

// Geofile access levels, from most to least restricted.
const (
	AccessLevelInternal   = "internal"
	AccessLevelDepartment = "department"
	AccessLevelPublic     = "public"
)

// Geofile is a stored geographic data file (route, boundary, point set)
// with metadata and access control. Coordinates, BoundingBox, Metadata,
// Tags, PatrolArea and IncidentMarkers hold serialized JSON text that the
// HTTP layer passes through verbatim.
type Geofile struct {
	ID              string     `json:"id" bson:"_id,omitempty"`
	Filename        string     `json:"filename" bson:"filename"`
	Filepath        string     `json:"filepath" bson:"filepath"`
	FileURL         *string    `json:"fileUrl" bson:"fileUrl"`
	FileType        string     `json:"fileType" bson:"fileType"`
	FileSize        int64      `json:"fileSize" bson:"fileSize"`
	Coordinates     string     `json:"coordinates" bson:"coordinates"`
	BoundingBox     string     `json:"boundingBox" bson:"boundingBox"`
	Address         string     `json:"address" bson:"address"`
	LocationName    string     `json:"locationName" bson:"locationName"`
	Description     string     `json:"description" bson:"description"`
	Metadata        string     `json:"metadata" bson:"metadata"`
	Tags            string     `json:"tags" bson:"tags"`
	IsPublic        bool       `json:"isPublic" bson:"isPublic"`
	AccessLevel     string     `json:"accessLevel" bson:"accessLevel"`
	PatrolArea      string     `json:"patrolArea" bson:"patrolArea"`
	IncidentMarkers string     `json:"incidentMarkers" bson:"incidentMarkers"`
	CaseID          *string    `json:"caseId" bson:"caseId"`
	OBID            *string    `json:"obId" bson:"obId"`
	EvidenceID      *string    `json:"evidenceId" bson:"evidenceId"`
	UploadedBy      string     `json:"uploadedBy" bson:"uploadedBy"`
	DownloadCount   int64      `json:"downloadCount" bson:"downloadCount"`
	LastAccessedAt  *time.Time `json:"lastAccessedAt" bson:"lastAccessedAt"`
	CreatedAt       time.Time  `json:"createdAt" bson:"createdAt"`
	UpdatedAt       time.Time  `json:"updatedAt" bson:"updatedAt"`
}

type GeofileUpdate struct {
	Filename        *string `json:"filename"`
	Filepath        *string `json:"filepath"`
	FileURL         *string `json:"fileUrl"`
	FileType        *string `json:"fileType"`
	FileSize        *int64  `json:"fileSize"`
	Coordinates     *string `json:"coordinates"`
	BoundingBox     *string `json:"boundingBox"`
	Address         *string `json:"address"`
	LocationName    *string `json:"locationName"`
	Description     *string `json:"description"`
	Metadata        *string `json:"metadata"`
	Tags            *string `json:"tags"`
	IsPublic        *bool   `json:"isPublic"`
	AccessLevel     *string `json:"accessLevel"`
	PatrolArea      *string `json:"patrolArea"`
	IncidentMarkers *string `json:"incidentMarkers"`
	CaseID          *string `json:"caseId"`
	OBID            *string `json:"obId"`
	EvidenceID      *string `json:"evidenceId"`
}

// GeofileFilter selects geofiles on listing. Zero-valued fields are
// no-ops; active filters are AND-combined.
type GeofileFilter struct {
	// Search is a case-insensitive substring matched against filename,
	// description, address and location name (OR-combined).
	Search string
	// FileType matches exactly, case-insensitively.
	FileType string
	// AccessLevel matches exactly.
	AccessLevel string
	// Tags matches geofiles whose decoded tag list intersects this set.
	Tags []string
	// DateFrom/DateTo bound createdAt inclusively.
	DateFrom *time.Time
	DateTo   *time.Time
}

// DecodeTags parses a serialized tag list. Malformed or empty input
// decodes to nil rather than an error; a record with unreadable tags
// simply matches no tag filter.
func DecodeTags(s string) []string {
	if s == "" {
		return nil
	}
	var tags []string
	if err := json.Unmarshal([]byte(s), &tags); err != nil {
		return nil
	}
	return tags
}

// EncodeTags serializes a tag list. A nil or empty list encodes as "[]".
func EncodeTags(tags []string) string {
	if len(tags) == 0 {
		return "[]"
	}
	b, _ := json.Marshal(tags)
	return string(b)
}
