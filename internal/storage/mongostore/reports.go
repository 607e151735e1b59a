package mongostore

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"policerecords/internal/models"
)

func (s *Store) CreateReport(ctx context.Context, r *models.Report) (*models.Report, error) {
	if err := s.connected(); err != nil {
		return nil, err
	}

	now := s.now()
	rec := *r
	rec.ID = ""
	rec.ReportNumber = businessNumber("RPT", now.Year())
	if rec.RequestedBy == "" {
		rec.RequestedBy = "1"
	}
	rec.CreatedAt = now
	rec.UpdatedAt = now

	res, err := s.coll("reports").InsertOne(ctx, &rec)
	if err != nil {
		return nil, writeErr(err)
	}
	rec.ID = res.InsertedID.(primitive.ObjectID).Hex()
	return &rec, nil
}

func (s *Store) GetReport(ctx context.Context, id string) (*models.Report, error) {
	if err := s.connected(); err != nil {
		return nil, err
	}
	return findByID[models.Report](ctx, s.coll("reports"), id)
}

func (s *Store) GetReportByNumber(ctx context.Context, reportNumber string) (*models.Report, error) {
	if err := s.connected(); err != nil {
		return nil, err
	}
	return findOne[models.Report](ctx, s.coll("reports"), bson.M{"reportNumber": reportNumber})
}

func (s *Store) ListReports(ctx context.Context) ([]*models.Report, error) {
	if err := s.connected(); err != nil {
		return nil, err
	}
	return findAll[models.Report](ctx, s.coll("reports"), bson.M{}, nil)
}

func (s *Store) UpdateReport(ctx context.Context, id string, upd *models.ReportUpdate) (*models.Report, error) {
	if err := s.connected(); err != nil {
		return nil, err
	}

	set := bson.M{"updatedAt": s.now()}
	if upd.Title != nil {
		set["title"] = *upd.Title
	}
	if upd.Type != nil {
		set["type"] = *upd.Type
	}
	if upd.Status != nil {
		set["status"] = *upd.Status
	}
	if upd.DateFrom != nil {
		set["dateFrom"] = *upd.DateFrom
	}
	if upd.DateTo != nil {
		set["dateTo"] = *upd.DateTo
	}

	return updateByID[models.Report](ctx, s.coll("reports"), id, bson.M{"$set": set})
}

func (s *Store) DeleteReport(ctx context.Context, id string) error {
	if err := s.connected(); err != nil {
		return err
	}
	return deleteByID(ctx, s.coll("reports"), id)
}
