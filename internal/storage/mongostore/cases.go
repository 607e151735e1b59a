package mongostore

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"policerecords/internal/common"
	"policerecords/internal/models"
)

func (s *Store) CreateCase(ctx context.Context, c *models.Case) (*models.Case, error) {
	if err := s.connected(); err != nil {
		return nil, err
	}
	if c.Title == "" {
		return nil, common.ErrorValidation
	}

	now := s.now()
	rec := *c
	rec.ID = ""
	rec.CaseNumber = businessNumber("CASE", now.Year())
	if rec.Status == "" {
		rec.Status = models.CaseStatusOpen
	}
	rec.CreatedAt = now
	rec.UpdatedAt = now

	res, err := s.coll("cases").InsertOne(ctx, &rec)
	if err != nil {
		return nil, writeErr(err)
	}
	rec.ID = res.InsertedID.(primitive.ObjectID).Hex()
	return &rec, nil
}

func (s *Store) GetCase(ctx context.Context, id string) (*models.Case, error) {
	if err := s.connected(); err != nil {
		return nil, err
	}
	return findByID[models.Case](ctx, s.coll("cases"), id)
}

func (s *Store) ListCases(ctx context.Context) ([]*models.Case, error) {
	if err := s.connected(); err != nil {
		return nil, err
	}
	return findAll[models.Case](ctx, s.coll("cases"), bson.M{},
		bson.D{{Key: "createdAt", Value: -1}})
}

func (s *Store) UpdateCase(ctx context.Context, id string, upd *models.CaseUpdate) (*models.Case, error) {
	if err := s.connected(); err != nil {
		return nil, err
	}

	set := bson.M{"updatedAt": s.now()}
	if upd.Title != nil {
		set["title"] = *upd.Title
	}
	if upd.Description != nil {
		set["description"] = *upd.Description
	}
	if upd.Type != nil {
		set["type"] = *upd.Type
	}
	if upd.Priority != nil {
		set["priority"] = *upd.Priority
	}
	if upd.Status != nil {
		set["status"] = *upd.Status
	}
	if upd.IncidentDate != nil {
		set["incidentDate"] = *upd.IncidentDate
	}
	if upd.Location != nil {
		set["location"] = *upd.Location
	}
	if upd.AssignedOfficer != nil {
		set["assignedOfficer"] = *upd.AssignedOfficer
	}
	if upd.AssignedOfficerID != nil {
		set["assignedOfficerId"] = *upd.AssignedOfficerID
	}

	return updateByID[models.Case](ctx, s.coll("cases"), id, bson.M{"$set": set})
}

func (s *Store) DeleteCase(ctx context.Context, id string) error {
	if err := s.connected(); err != nil {
		return err
	}
	return deleteByID(ctx, s.coll("cases"), id)
}
