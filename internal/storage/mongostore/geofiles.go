package mongostore

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"policerecords/internal/common"
	"policerecords/internal/geo"
	"policerecords/internal/models"
)

func (s *Store) CreateGeofile(ctx context.Context, g *models.Geofile) (*models.Geofile, error) {
	if err := s.connected(); err != nil {
		return nil, err
	}
	if g.Filename == "" {
		return nil, common.ErrorValidation
	}

	now := s.now()
	rec := *g
	rec.ID = ""
	if rec.UploadedBy == "" {
		rec.UploadedBy = "1"
	}
	if rec.AccessLevel == "" {
		rec.AccessLevel = models.AccessLevelInternal
	}
	if rec.Tags == "" {
		rec.Tags = "[]"
	}
	if rec.Metadata == "" {
		rec.Metadata = "{}"
	}
	rec.DownloadCount = 0
	rec.LastAccessedAt = &now
	rec.CreatedAt = now
	rec.UpdatedAt = now

	res, err := s.coll("geofiles").InsertOne(ctx, &rec)
	if err != nil {
		return nil, writeErr(err)
	}
	rec.ID = res.InsertedID.(primitive.ObjectID).Hex()
	return &rec, nil
}

func (s *Store) GetGeofile(ctx context.Context, id string) (*models.Geofile, error) {
	if err := s.connected(); err != nil {
		return nil, err
	}
	return findByID[models.Geofile](ctx, s.coll("geofiles"), id)
}

// buildGeofileQuery translates the pushdown-capable part of the filter
// (search, file type, access level) into a store-side query. Tag and
// date-range filters act on serialized fields the store cannot index, so
// they are applied in-process afterwards.
func buildGeofileQuery(f models.GeofileFilter) bson.M {
	query := bson.M{}
	if f.Search != "" {
		regex := bson.M{"$regex": f.Search, "$options": "i"}
		query["$or"] = bson.A{
			bson.M{"filename": regex},
			bson.M{"description": regex},
			bson.M{"address": regex},
			bson.M{"locationName": regex},
		}
	}
	if f.FileType != "" {
		query["fileType"] = bson.M{"$regex": "^" + f.FileType + "$", "$options": "i"}
	}
	if f.AccessLevel != "" {
		query["accessLevel"] = f.AccessLevel
	}
	return query
}

func (s *Store) ListGeofiles(ctx context.Context, filter models.GeofileFilter) ([]*models.Geofile, error) {
	if err := s.connected(); err != nil {
		return nil, err
	}

	found, err := findAll[models.Geofile](ctx, s.coll("geofiles"), buildGeofileQuery(filter),
		bson.D{{Key: "createdAt", Value: -1}})
	if err != nil {
		return nil, err
	}

	if len(filter.Tags) == 0 && filter.DateFrom == nil && filter.DateTo == nil {
		return found, nil
	}

	out := found[:0]
	for _, g := range found {
		if len(filter.Tags) > 0 && !tagsIntersect(models.DecodeTags(g.Tags), filter.Tags) {
			continue
		}
		if filter.DateFrom != nil && g.CreatedAt.Before(*filter.DateFrom) {
			continue
		}
		if filter.DateTo != nil && g.CreatedAt.After(*filter.DateTo) {
			continue
		}
		out = append(out, g)
	}
	return out, nil
}

func tagsIntersect(stored, wanted []string) bool {
	set := make(map[string]struct{}, len(stored))
	for _, t := range stored {
		set[t] = struct{}{}
	}
	for _, t := range wanted {
		if _, ok := set[t]; ok {
			return true
		}
	}
	return false
}

// SearchGeofilesByLocation measures the great-circle distance in-process;
// stored coordinates are opaque serialized text the store cannot index.
func (s *Store) SearchGeofilesByLocation(ctx context.Context, lat, lng, radiusMeters float64) ([]*models.Geofile, error) {
	if err := s.connected(); err != nil {
		return nil, err
	}

	all, err := findAll[models.Geofile](ctx, s.coll("geofiles"), bson.M{}, nil)
	if err != nil {
		return nil, err
	}

	center := geo.Point{Lng: lng, Lat: lat}
	var out []*models.Geofile
	for _, g := range all {
		p, err := geo.DecodePoint(g.Coordinates)
		if err != nil {
			continue
		}
		if geo.Distance(center, p) <= radiusMeters {
			out = append(out, g)
		}
	}
	return out, nil
}

func (s *Store) UpdateGeofile(ctx context.Context, id string, upd *models.GeofileUpdate) (*models.Geofile, error) {
	if err := s.connected(); err != nil {
		return nil, err
	}

	set := bson.M{"updatedAt": s.now()}
	if upd.Filename != nil {
		set["filename"] = *upd.Filename
	}
	if upd.Filepath != nil {
		set["filepath"] = *upd.Filepath
	}
	if upd.FileURL != nil {
		set["fileUrl"] = *upd.FileURL
	}
	if upd.FileType != nil {
		set["fileType"] = *upd.FileType
	}
	if upd.FileSize != nil {
		set["fileSize"] = *upd.FileSize
	}
	if upd.Coordinates != nil {
		set["coordinates"] = *upd.Coordinates
	}
	if upd.BoundingBox != nil {
		set["boundingBox"] = *upd.BoundingBox
	}
	if upd.Address != nil {
		set["address"] = *upd.Address
	}
	if upd.LocationName != nil {
		set["locationName"] = *upd.LocationName
	}
	if upd.Description != nil {
		set["description"] = *upd.Description
	}
	if upd.Metadata != nil {
		set["metadata"] = *upd.Metadata
	}
	if upd.Tags != nil {
		set["tags"] = *upd.Tags
	}
	if upd.IsPublic != nil {
		set["isPublic"] = *upd.IsPublic
	}
	if upd.AccessLevel != nil {
		set["accessLevel"] = *upd.AccessLevel
	}
	if upd.PatrolArea != nil {
		set["patrolArea"] = *upd.PatrolArea
	}
	if upd.IncidentMarkers != nil {
		set["incidentMarkers"] = *upd.IncidentMarkers
	}
	if upd.CaseID != nil {
		set["caseId"] = *upd.CaseID
	}
	if upd.OBID != nil {
		set["obId"] = *upd.OBID
	}
	if upd.EvidenceID != nil {
		set["evidenceId"] = *upd.EvidenceID
	}

	return updateByID[models.Geofile](ctx, s.coll("geofiles"), id, bson.M{"$set": set})
}

// LinkGeofileToCase verifies both sides, then writes the foreign key.
// There is no multi-document transaction; a failure between the two
// steps leaves the link unset.
func (s *Store) LinkGeofileToCase(ctx context.Context, geofileID, caseID string) error {
	if err := s.connected(); err != nil {
		return err
	}

	caseOID, err := objectID(caseID)
	if err != nil {
		return err
	}
	if err := s.coll("cases").FindOne(ctx, bson.M{"_id": caseOID}).Err(); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return common.ErrorNotFound
		}
		return err
	}

	_, err = updateByID[models.Geofile](ctx, s.coll("geofiles"), geofileID,
		bson.M{"$set": bson.M{"caseId": caseID, "updatedAt": s.now()}})
	return err
}

func (s *Store) AddGeofileTags(ctx context.Context, geofileID string, tags []string) error {
	if err := s.connected(); err != nil {
		return err
	}

	g, err := findByID[models.Geofile](ctx, s.coll("geofiles"), geofileID)
	if err != nil {
		return err
	}

	existing := models.DecodeTags(g.Tags)
	seen := make(map[string]struct{}, len(existing)+len(tags))
	merged := make([]string, 0, len(existing)+len(tags))
	for _, t := range append(existing, tags...) {
		if _, ok := seen[t]; ok {
			continue
		}
		seen[t] = struct{}{}
		merged = append(merged, t)
	}

	_, err = updateByID[models.Geofile](ctx, s.coll("geofiles"), geofileID,
		bson.M{"$set": bson.M{"tags": models.EncodeTags(merged), "updatedAt": s.now()}})
	return err
}

// IncrementGeofileDownload and TouchGeofileAccess are no-ops when the
// geofile does not exist, matching the in-memory backend.

func (s *Store) IncrementGeofileDownload(ctx context.Context, id string) error {
	if err := s.connected(); err != nil {
		return err
	}
	oid, err := objectID(id)
	if err != nil {
		return err
	}
	_, err = s.coll("geofiles").UpdateOne(ctx, bson.M{"_id": oid}, bson.M{
		"$inc": bson.M{"downloadCount": 1},
		"$set": bson.M{"lastAccessedAt": s.now()},
	})
	return err
}

func (s *Store) TouchGeofileAccess(ctx context.Context, id string) error {
	if err := s.connected(); err != nil {
		return err
	}
	oid, err := objectID(id)
	if err != nil {
		return err
	}
	_, err = s.coll("geofiles").UpdateOne(ctx, bson.M{"_id": oid},
		bson.M{"$set": bson.M{"lastAccessedAt": s.now()}})
	return err
}

func (s *Store) DeleteGeofile(ctx context.Context, id string) error {
	if err := s.connected(); err != nil {
		return err
	}
	return deleteByID(ctx, s.coll("geofiles"), id)
}
