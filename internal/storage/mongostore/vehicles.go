package mongostore

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"policerecords/internal/common"
	"policerecords/internal/models"
)

func (s *Store) CreatePoliceVehicle(ctx context.Context, v *models.PoliceVehicle) (*models.PoliceVehicle, error) {
	if err := s.connected(); err != nil {
		return nil, err
	}
	if v.VehicleID == "" || v.LicensePlate == "" {
		return nil, common.ErrorValidation
	}

	now := s.now()
	rec := *v
	rec.ID = ""
	if rec.Status == "" {
		rec.Status = models.VehicleStatusAvailable
	}
	rec.LastUpdate = now
	rec.CreatedAt = now
	rec.UpdatedAt = now

	res, err := s.coll("policeVehicles").InsertOne(ctx, &rec)
	if err != nil {
		return nil, writeErr(err)
	}
	rec.ID = res.InsertedID.(primitive.ObjectID).Hex()
	return &rec, nil
}

func (s *Store) GetPoliceVehicle(ctx context.Context, id string) (*models.PoliceVehicle, error) {
	if err := s.connected(); err != nil {
		return nil, err
	}
	return findByID[models.PoliceVehicle](ctx, s.coll("policeVehicles"), id)
}

func (s *Store) GetPoliceVehicleByLicensePlate(ctx context.Context, licensePlate string) (*models.PoliceVehicle, error) {
	if err := s.connected(); err != nil {
		return nil, err
	}
	return findOne[models.PoliceVehicle](ctx, s.coll("policeVehicles"), bson.M{"licensePlate": licensePlate})
}

func (s *Store) ListPoliceVehicles(ctx context.Context) ([]*models.PoliceVehicle, error) {
	if err := s.connected(); err != nil {
		return nil, err
	}
	return findAll[models.PoliceVehicle](ctx, s.coll("policeVehicles"), bson.M{}, nil)
}

func (s *Store) UpdatePoliceVehicle(ctx context.Context, id string, upd *models.PoliceVehicleUpdate) (*models.PoliceVehicle, error) {
	if err := s.connected(); err != nil {
		return nil, err
	}

	now := s.now()
	set := bson.M{"lastUpdate": now, "updatedAt": now}
	if upd.VehicleType != nil {
		set["vehicleType"] = *upd.VehicleType
	}
	if upd.Make != nil {
		set["make"] = *upd.Make
	}
	if upd.Model != nil {
		set["model"] = *upd.Model
	}
	if upd.Year != nil {
		set["year"] = *upd.Year
	}
	if upd.CurrentLocation != nil {
		set["currentLocation"] = *upd.CurrentLocation
	}
	if upd.AssignedArea != nil {
		set["assignedArea"] = *upd.AssignedArea
	}
	if upd.Status != nil {
		set["status"] = *upd.Status
	}
	if upd.AssignedOfficerID != nil {
		set["assignedOfficerId"] = *upd.AssignedOfficerID
	}

	return updateByID[models.PoliceVehicle](ctx, s.coll("policeVehicles"), id, bson.M{"$set": set})
}

func (s *Store) UpdateVehicleLocation(ctx context.Context, id string, location string) (*models.PoliceVehicle, error) {
	if err := s.connected(); err != nil {
		return nil, err
	}
	now := s.now()
	return updateByID[models.PoliceVehicle](ctx, s.coll("policeVehicles"), id, bson.M{"$set": bson.M{
		"currentLocation": location,
		"lastUpdate":      now,
		"updatedAt":       now,
	}})
}

func (s *Store) UpdateVehicleStatus(ctx context.Context, id string, status string) (*models.PoliceVehicle, error) {
	if err := s.connected(); err != nil {
		return nil, err
	}
	now := s.now()
	return updateByID[models.PoliceVehicle](ctx, s.coll("policeVehicles"), id, bson.M{"$set": bson.M{
		"status":     status,
		"lastUpdate": now,
		"updatedAt":  now,
	}})
}

func (s *Store) DeletePoliceVehicle(ctx context.Context, id string) error {
	if err := s.connected(); err != nil {
		return err
	}
	return deleteByID(ctx, s.coll("policeVehicles"), id)
}
