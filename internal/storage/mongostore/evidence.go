package mongostore

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"policerecords/internal/models"
)

func (s *Store) CreateEvidence(ctx context.Context, e *models.Evidence) (*models.Evidence, error) {
	if err := s.connected(); err != nil {
		return nil, err
	}

	now := s.now()
	rec := *e
	rec.ID = ""
	rec.EvidenceNumber = businessNumber("EV", now.Year())
	rec.CreatedAt = now
	rec.UpdatedAt = now

	res, err := s.coll("evidence").InsertOne(ctx, &rec)
	if err != nil {
		return nil, writeErr(err)
	}
	rec.ID = res.InsertedID.(primitive.ObjectID).Hex()
	return &rec, nil
}

func (s *Store) GetEvidence(ctx context.Context, id string) (*models.Evidence, error) {
	if err := s.connected(); err != nil {
		return nil, err
	}
	return findByID[models.Evidence](ctx, s.coll("evidence"), id)
}

func (s *Store) GetEvidenceByNumber(ctx context.Context, evidenceNumber string) (*models.Evidence, error) {
	if err := s.connected(); err != nil {
		return nil, err
	}
	return findOne[models.Evidence](ctx, s.coll("evidence"), bson.M{"evidenceNumber": evidenceNumber})
}

func (s *Store) ListEvidence(ctx context.Context) ([]*models.Evidence, error) {
	if err := s.connected(); err != nil {
		return nil, err
	}
	return findAll[models.Evidence](ctx, s.coll("evidence"), bson.M{}, nil)
}

func (s *Store) UpdateEvidence(ctx context.Context, id string, upd *models.EvidenceUpdate) (*models.Evidence, error) {
	if err := s.connected(); err != nil {
		return nil, err
	}

	set := bson.M{"updatedAt": s.now()}
	if upd.CaseID != nil {
		set["caseId"] = *upd.CaseID
	}
	if upd.Type != nil {
		set["type"] = *upd.Type
	}
	if upd.Description != nil {
		set["description"] = *upd.Description
	}
	if upd.StorageLocation != nil {
		set["storageLocation"] = *upd.StorageLocation
	}
	if upd.Status != nil {
		set["status"] = *upd.Status
	}
	if upd.CollectedBy != nil {
		set["collectedBy"] = *upd.CollectedBy
	}

	return updateByID[models.Evidence](ctx, s.coll("evidence"), id, bson.M{"$set": set})
}

func (s *Store) DeleteEvidence(ctx context.Context, id string) error {
	if err := s.connected(); err != nil {
		return err
	}
	return deleteByID(ctx, s.coll("evidence"), id)
}
