package models

import "time"

const (
	CaseStatusOpen       = "open"
	CaseStatusInProgress = "in_progress"
	CaseStatusClosed     = "closed"
)

const (
	PriorityLow      = "low"
	PriorityMedium   = "medium"
	PriorityHigh     = "high"
	PriorityCritical = "critical"
)

type Case struct {
	ID                string     `json:"id" bson:"_id,omitempty"`
	CaseNumber        string     `json:"caseNumber" bson:"caseNumber"`
	Title             string     `json:"title" bson:"title"`
	Description       string     `json:"description" bson:"description"`
	Type              string     `json:"type" bson:"type"`
	Priority          string     `json:"priority" bson:"priority"`
	Status            string     `json:"status" bson:"status"`
	IncidentDate      *time.Time `json:"incidentDate" bson:"incidentDate"`
	Location          string     `json:"location" bson:"location"`
	AssignedOfficer   string     `json:"assignedOfficer" bson:"assignedOfficer"`
	AssignedOfficerID *string    `json:"assignedOfficerId" bson:"assignedOfficerId"`
	CreatedByID       string     `json:"createdById" bson:"createdById"`
	CreatedAt         time.Time  `json:"createdAt" bson:"createdAt"`
	UpdatedAt         time.Time  `json:"updatedAt" bson:"updatedAt"`
}

type CaseUpdate struct {
	Title             *string    `json:"title"`
	Description       *string    `json:"description"`
	Type              *string    `json:"type"`
	Priority          *string    `json:"priority"`
	Status            *string    `json:"status"`
	IncidentDate      *time.Time `json:"incidentDate"`
	Location          *string    `json:"location"`
	AssignedOfficer   *string    `json:"assignedOfficer"`
	AssignedOfficerID *string    `json:"assignedOfficerId"`
}
