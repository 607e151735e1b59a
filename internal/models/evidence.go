package models

import "time"

type Evidence struct {
	ID              string    `json:"id" bson:"_id,omitempty"`
	EvidenceNumber  string    `json:"evidenceNumber" bson:"evidenceNumber"`
	CaseID          string    `json:"caseId" bson:"caseId"`
	Type            string    `json:"type" bson:"type"`
	Description     string    `json:"description" bson:"description"`
	StorageLocation string    `json:"storageLocation" bson:"storageLocation"`
	Status          string    `json:"status" bson:"status"`
	CollectedBy     string    `json:"collectedBy" bson:"collectedBy"`
	CreatedAt       time.Time `json:"createdAt" bson:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt" bson:"updatedAt"`
}

type EvidenceUpdate struct {
	CaseID          *string `json:"caseId"`
	Type            *string `json:"type"`
	Description     *string `json:"description"`
	StorageLocation *string `json:"storageLocation"`
	Status          *string `json:"status"`
	CollectedBy     *string `json:"collectedBy"`
}
