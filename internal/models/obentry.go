package models

import "time"

// OBEntry is an occurrence-book record: a timestamped incident log entry
// distinct from a formal case.
type OBEntry struct {
	ID           string    `json:"id" bson:"_id,omitempty"`
	OBNumber     string    `json:"obNumber" bson:"obNumber"`
	Type         string    `json:"type" bson:"type"`
	Description  string    `json:"description" bson:"description"`
	Location     string    `json:"location" bson:"location"`
	ReportedBy   string    `json:"reportedBy" bson:"reportedBy"`
	RecordedByID string    `json:"recordedById" bson:"recordedById"`
	Status       string    `json:"status" bson:"status"`
	DateTime     time.Time `json:"dateTime" bson:"dateTime"`
	CreatedAt    time.Time `json:"createdAt" bson:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt" bson:"updatedAt"`
}

type OBEntryUpdate struct {
	Type        *string    `json:"type"`
	Description *string    `json:"description"`
	Location    *string    `json:"location"`
	ReportedBy  *string    `json:"reportedBy"`
	Status      *string    `json:"status"`
	DateTime    *time.Time `json:"dateTime"`
}
