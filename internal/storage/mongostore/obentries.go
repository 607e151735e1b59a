package mongostore

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"policerecords/internal/models"
)

func (s *Store) CreateOBEntry(ctx context.Context, e *models.OBEntry) (*models.OBEntry, error) {
	if err := s.connected(); err != nil {
		return nil, err
	}

	now := s.now()
	rec := *e
	rec.ID = ""
	rec.OBNumber = businessNumber("OB", now.Year())
	if rec.DateTime.IsZero() {
		rec.DateTime = now
	}
	if rec.Status == "" {
		rec.Status = "recorded"
	}
	rec.CreatedAt = now
	rec.UpdatedAt = now

	res, err := s.coll("obEntries").InsertOne(ctx, &rec)
	if err != nil {
		return nil, writeErr(err)
	}
	rec.ID = res.InsertedID.(primitive.ObjectID).Hex()
	return &rec, nil
}

func (s *Store) GetOBEntry(ctx context.Context, id string) (*models.OBEntry, error) {
	if err := s.connected(); err != nil {
		return nil, err
	}
	return findByID[models.OBEntry](ctx, s.coll("obEntries"), id)
}

func (s *Store) ListOBEntries(ctx context.Context) ([]*models.OBEntry, error) {
	if err := s.connected(); err != nil {
		return nil, err
	}
	return findAll[models.OBEntry](ctx, s.coll("obEntries"), bson.M{},
		bson.D{{Key: "dateTime", Value: -1}})
}

func (s *Store) UpdateOBEntry(ctx context.Context, id string, upd *models.OBEntryUpdate) (*models.OBEntry, error) {
	if err := s.connected(); err != nil {
		return nil, err
	}

	set := bson.M{"updatedAt": s.now()}
	if upd.Type != nil {
		set["type"] = *upd.Type
	}
	if upd.Description != nil {
		set["description"] = *upd.Description
	}
	if upd.Location != nil {
		set["location"] = *upd.Location
	}
	if upd.ReportedBy != nil {
		set["reportedBy"] = *upd.ReportedBy
	}
	if upd.Status != nil {
		set["status"] = *upd.Status
	}
	if upd.DateTime != nil {
		set["dateTime"] = *upd.DateTime
	}

	return updateByID[models.OBEntry](ctx, s.coll("obEntries"), id, bson.M{"$set": set})
}

func (s *Store) DeleteOBEntry(ctx context.Context, id string) error {
	if err := s.connected(); err != nil {
		return err
	}
	return deleteByID(ctx, s.coll("obEntries"), id)
}
