package models

import "time"

// Police vehicle fleet statuses.
const (
	VehicleStatusAvailable    = "available"
	VehicleStatusOnPatrol     = "on_patrol"
	VehicleStatusResponding   = "responding"
	VehicleStatusOutOfService = "out_of_service"
)

// PoliceVehicle is a fleet unit. CurrentLocation holds a serialized point
// and AssignedArea a serialized patrol polygon.
type PoliceVehicle struct {
	ID                string    `json:"id" bson:"_id,omitempty"`
	VehicleID         string    `json:"vehicleId" bson:"vehicleId"`
	LicensePlate      string    `json:"licensePlate" bson:"licensePlate"`
	VehicleType       string    `json:"vehicleType" bson:"vehicleType"`
	Make              string    `json:"make" bson:"make"`
	Model             string    `json:"model" bson:"model"`
	Year              int       `json:"year" bson:"year"`
	CurrentLocation   string    `json:"currentLocation" bson:"currentLocation"`
	AssignedArea      string    `json:"assignedArea" bson:"assignedArea"`
	Status            string    `json:"status" bson:"status"`
	AssignedOfficerID *string   `json:"assignedOfficerId" bson:"assignedOfficerId"`
	LastUpdate        time.Time `json:"lastUpdate" bson:"lastUpdate"`
	CreatedAt         time.Time `json:"createdAt" bson:"createdAt"`
	UpdatedAt         time.Time `json:"updatedAt" bson:"updatedAt"`
}

type PoliceVehicleUpdate struct {
	VehicleType       *string `json:"vehicleType"`
	Make              *string `json:"make"`
	Model             *string `json:"model"`
	Year              *int    `json:"year"`
	CurrentLocation   *string `json:"currentLocation"`
	AssignedArea      *string `json:"assignedArea"`
	Status            *string `json:"status"`
	AssignedOfficerID *string `json:"assignedOfficerId"`
}
