package models

import "time"

type Report struct {
	ID           string     `json:"id" bson:"_id,omitempty"`
	ReportNumber string     `json:"reportNumber" bson:"reportNumber"`
	Title        string     `json:"title" bson:"title"`
	Type         string     `json:"type" bson:"type"`
	Status       string     `json:"status" bson:"status"`
	DateFrom     *time.Time `json:"dateFrom" bson:"dateFrom"`
	DateTo       *time.Time `json:"dateTo" bson:"dateTo"`
	RequestedBy  string     `json:"requestedBy" bson:"requestedBy"`
	CreatedAt    time.Time  `json:"createdAt" bson:"createdAt"`
	UpdatedAt    time.Time  `json:"updatedAt" bson:"updatedAt"`
}

type ReportUpdate struct {
	Title    *string    `json:"title"`
	Type     *string    `json:"type"`
	Status   *string    `json:"status"`
	DateFrom *time.Time `json:"dateFrom"`
	DateTo   *time.Time `json:"dateTo"`
}
