package mongostore

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"policerecords/internal/common"
	"policerecords/internal/models"
)

func (s *Store) CreateLicensePlate(ctx context.Context, p *models.LicensePlate) (*models.LicensePlate, error) {
	if err := s.connected(); err != nil {
		return nil, err
	}
	if p.PlateNumber == "" {
		return nil, common.ErrorValidation
	}

	now := s.now()
	rec := *p
	rec.ID = ""
	rec.OwnerImage = nil
	rec.CreatedAt = now
	rec.UpdatedAt = now

	res, err := s.coll("licensePlates").InsertOne(ctx, &rec)
	if err != nil {
		return nil, writeErr(err)
	}
	rec.ID = res.InsertedID.(primitive.ObjectID).Hex()
	return &rec, nil
}

func (s *Store) GetLicensePlate(ctx context.Context, id string) (*models.LicensePlate, error) {
	if err := s.connected(); err != nil {
		return nil, err
	}
	return findByID[models.LicensePlate](ctx, s.coll("licensePlates"), id)
}

func (s *Store) GetLicensePlateByNumber(ctx context.Context, plateNumber string) (*models.LicensePlate, error) {
	if err := s.connected(); err != nil {
		return nil, err
	}
	return findOne[models.LicensePlate](ctx, s.coll("licensePlates"), bson.M{"plateNumber": plateNumber})
}

func (s *Store) ListLicensePlates(ctx context.Context) ([]*models.LicensePlate, error) {
	if err := s.connected(); err != nil {
		return nil, err
	}
	return findAll[models.LicensePlate](ctx, s.coll("licensePlates"), bson.M{}, nil)
}

func (s *Store) UpdateLicensePlate(ctx context.Context, id string, upd *models.LicensePlateUpdate) (*models.LicensePlate, error) {
	if err := s.connected(); err != nil {
		return nil, err
	}

	set := bson.M{"updatedAt": s.now()}
	if upd.OwnerName != nil {
		set["ownerName"] = *upd.OwnerName
	}
	if upd.OwnerPhone != nil {
		set["ownerPhone"] = *upd.OwnerPhone
	}
	if upd.OwnerImage != nil {
		set["ownerImage"] = *upd.OwnerImage
	}
	if upd.VehicleMake != nil {
		set["vehicleMake"] = *upd.VehicleMake
	}
	if upd.VehicleModel != nil {
		set["vehicleModel"] = *upd.VehicleModel
	}
	if upd.VehicleColor != nil {
		set["vehicleColor"] = *upd.VehicleColor
	}
	if upd.Status != nil {
		set["status"] = *upd.Status
	}

	return updateByID[models.LicensePlate](ctx, s.coll("licensePlates"), id, bson.M{"$set": set})
}

func (s *Store) DeleteLicensePlate(ctx context.Context, id string) error {
	if err := s.connected(); err != nil {
		return err
	}
	return deleteByID(ctx, s.coll("licensePlates"), id)
}
