package models

import "time"

type LicensePlate struct {
	ID           string    `json:"id" bson:"_id,omitempty"`
	PlateNumber  string    `json:"plateNumber" bson:"plateNumber"`
	OwnerName    string    `json:"ownerName" bson:"ownerName"`
	OwnerPhone   string    `json:"ownerPhone" bson:"ownerPhone"`
	OwnerImage   *string   `json:"ownerImage" bson:"ownerImage"`
	VehicleMake  string    `json:"vehicleMake" bson:"vehicleMake"`
	VehicleModel string    `json:"vehicleModel" bson:"vehicleModel"`
	VehicleColor string    `json:"vehicleColor" bson:"vehicleColor"`
	Status       string    `json:"status" bson:"status"`
	CreatedAt    time.Time `json:"createdAt" bson:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt" bson:"updatedAt"`
}

type LicensePlateUpdate struct {
	OwnerName    *string `json:"ownerName"`
	OwnerPhone   *string `json:"ownerPhone"`
	OwnerImage   *string `json:"ownerImage"`
	VehicleMake  *string `json:"vehicleMake"`
	VehicleModel *string `json:"vehicleModel"`
	VehicleColor *string `json:"vehicleColor"`
	Status       *string `json:"status"`
}
