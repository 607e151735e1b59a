package memstore

import (
	"context"
	"sort"
	"strings"

	"policerecords/internal/common"
	"policerecords/internal/geo"
	"policerecords/internal/models"
)

func (s *Store) CreateGeofile(ctx context.Context, g *models.Geofile) (*models.Geofile, error) {
	if g.Filename == "" {
		return nil, common.ErrorValidation
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.nextGeofileID
	s.nextGeofileID++

	now := s.now()
	rec := *g
	rec.ID = formatID(id)
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

	s.geofiles[id] = &rec
	out := rec
	return &out, nil
}

func (s *Store) GetGeofile(ctx context.Context, id string) (*models.Geofile, error) {
	key, err := parseID(id)
	if err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	g, ok := s.geofiles[key]
	if !ok {
		return nil, common.ErrorNotFound
	}
	out := *g
	return &out, nil
}

func (s *Store) ListGeofiles(ctx context.Context, filter models.GeofileFilter) ([]*models.Geofile, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*models.Geofile, 0, len(s.geofiles))
	for _, k := range sortedKeys(s.geofiles) {
		g := s.geofiles[k]
		if !matchesGeofile(g, filter) {
			continue
		}
		cp := *g
		out = append(out, &cp)
	}
	sort.SliceStable(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.After(out[j].CreatedAt)
		}
		return out[i].ID > out[j].ID
	})
	return out, nil
}

// matchesGeofile evaluates the AND of all active filters.
func matchesGeofile(g *models.Geofile, f models.GeofileFilter) bool {
	if f.Search != "" {
		needle := strings.ToLower(f.Search)
		if !strings.Contains(strings.ToLower(g.Filename), needle) &&
			!strings.Contains(strings.ToLower(g.Description), needle) &&
			!strings.Contains(strings.ToLower(g.Address), needle) &&
			!strings.Contains(strings.ToLower(g.LocationName), needle) {
			return false
		}
	}
	if f.FileType != "" && !strings.EqualFold(g.FileType, f.FileType) {
		return false
	}
	if f.AccessLevel != "" && g.AccessLevel != f.AccessLevel {
		return false
	}
	if len(f.Tags) > 0 {
		stored := models.DecodeTags(g.Tags)
		if !intersects(stored, f.Tags) {
			return false
		}
	}
	if f.DateFrom != nil && g.CreatedAt.Before(*f.DateFrom) {
		return false
	}
	if f.DateTo != nil && g.CreatedAt.After(*f.DateTo) {
		return false
	}
	return true
}

func intersects(a, b []string) bool {
	set := make(map[string]struct{}, len(a))
	for _, t := range a {
		set[t] = struct{}{}
	}
	for _, t := range b {
		if _, ok := set[t]; ok {
			return true
		}
	}
	return false
}

func (s *Store) SearchGeofilesByLocation(ctx context.Context, lat, lng, radiusMeters float64) ([]*models.Geofile, error) {
	center := geo.Point{Lng: lng, Lat: lat}

	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []*models.Geofile
	for _, k := range sortedKeys(s.geofiles) {
		g := s.geofiles[k]
		p, err := geo.DecodePoint(g.Coordinates)
		if err != nil {
			// Missing or malformed coordinates are non-matching, not errors.
			continue
		}
		if geo.Distance(center, p) <= radiusMeters {
			cp := *g
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (s *Store) UpdateGeofile(ctx context.Context, id string, upd *models.GeofileUpdate) (*models.Geofile, error) {
	key, err := parseID(id)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	g, ok := s.geofiles[key]
	if !ok {
		return nil, common.ErrorNotFound
	}

	if upd.Filename != nil {
		g.Filename = *upd.Filename
	}
	if upd.Filepath != nil {
		g.Filepath = *upd.Filepath
	}
	if upd.FileURL != nil {
		g.FileURL = upd.FileURL
	}
	if upd.FileType != nil {
		g.FileType = *upd.FileType
	}
	if upd.FileSize != nil {
		g.FileSize = *upd.FileSize
	}
	if upd.Coordinates != nil {
		g.Coordinates = *upd.Coordinates
	}
	if upd.BoundingBox != nil {
		g.BoundingBox = *upd.BoundingBox
	}
	if upd.Address != nil {
		g.Address = *upd.Address
	}
	if upd.LocationName != nil {
		g.LocationName = *upd.LocationName
	}
	if upd.Description != nil {
		g.Description = *upd.Description
	}
	if upd.Metadata != nil {
		g.Metadata = *upd.Metadata
	}
	if upd.Tags != nil {
		g.Tags = *upd.Tags
	}
	if upd.IsPublic != nil {
		g.IsPublic = *upd.IsPublic
	}
	if upd.AccessLevel != nil {
		g.AccessLevel = *upd.AccessLevel
	}
	if upd.PatrolArea != nil {
		g.PatrolArea = *upd.PatrolArea
	}
	if upd.IncidentMarkers != nil {
		g.IncidentMarkers = *upd.IncidentMarkers
	}
	if upd.CaseID != nil {
		g.CaseID = upd.CaseID
	}
	if upd.OBID != nil {
		g.OBID = upd.OBID
	}
	if upd.EvidenceID != nil {
		g.EvidenceID = upd.EvidenceID
	}
	g.UpdatedAt = s.touch(g.UpdatedAt)

	out := *g
	return &out, nil
}

func (s *Store) LinkGeofileToCase(ctx context.Context, geofileID, caseID string) error {
	gKey, err := parseID(geofileID)
	if err != nil {
		return err
	}
	cKey, err := parseID(caseID)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	g, ok := s.geofiles[gKey]
	if !ok {
		return common.ErrorNotFound
	}
	if _, ok := s.cases[cKey]; !ok {
		return common.ErrorNotFound
	}

	id := formatID(cKey)
	g.CaseID = &id
	g.UpdatedAt = s.touch(g.UpdatedAt)
	return nil
}

func (s *Store) AddGeofileTags(ctx context.Context, geofileID string, tags []string) error {
	key, err := parseID(geofileID)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	g, ok := s.geofiles[key]
	if !ok {
		return common.ErrorNotFound
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

	g.Tags = models.EncodeTags(merged)
	g.UpdatedAt = s.touch(g.UpdatedAt)
	return nil
}

// IncrementGeofileDownload bumps the counter and refreshes the
// last-accessed timestamp. A missing geofile is a no-op.
func (s *Store) IncrementGeofileDownload(ctx context.Context, id string) error {
	key, err := parseID(id)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if g, ok := s.geofiles[key]; ok {
		g.DownloadCount++
		t := s.now()
		g.LastAccessedAt = &t
	}
	return nil
}

// TouchGeofileAccess refreshes the last-accessed timestamp. A missing
// geofile is a no-op.
func (s *Store) TouchGeofileAccess(ctx context.Context, id string) error {
	key, err := parseID(id)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if g, ok := s.geofiles[key]; ok {
		t := s.now()
		g.LastAccessedAt = &t
	}
	return nil
}

func (s *Store) DeleteGeofile(ctx context.Context, id string) error {
	key, err := parseID(id)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.geofiles[key]; !ok {
		return common.ErrorNotFound
	}
	delete(s.geofiles, key)
	return nil
}
