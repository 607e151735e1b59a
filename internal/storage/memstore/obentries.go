package memstore

import (
	"context"
	"sort"

	"policerecords/internal/common"
	"policerecords/internal/models"
)

func (s *Store) CreateOBEntry(ctx context.Context, e *models.OBEntry) (*models.OBEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.nextOBID
	s.nextOBID++

	now := s.now()
	rec := *e
	rec.ID = formatID(id)
	rec.OBNumber = obNumber(now.Year(), id)
	if rec.DateTime.IsZero() {
		rec.DateTime = now
	}
	if rec.Status == "" {
		rec.Status = "recorded"
	}
	rec.CreatedAt = now
	rec.UpdatedAt = now

	s.obs[id] = &rec
	out := rec
	return &out, nil
}

func (s *Store) GetOBEntry(ctx context.Context, id string) (*models.OBEntry, error) {
	key, err := parseID(id)
	if err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	e, ok := s.obs[key]
	if !ok {
		return nil, common.ErrorNotFound
	}
	out := *e
	return &out, nil
}

func (s *Store) ListOBEntries(ctx context.Context) ([]*models.OBEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*models.OBEntry, 0, len(s.obs))
	for _, k := range sortedKeys(s.obs) {
		e := *s.obs[k]
		out = append(out, &e)
	}
	// Newest event first.
	sort.SliceStable(out, func(i, j int) bool {
		if !out[i].DateTime.Equal(out[j].DateTime) {
			return out[i].DateTime.After(out[j].DateTime)
		}
		return out[i].ID > out[j].ID
	})
	return out, nil
}

func (s *Store) UpdateOBEntry(ctx context.Context, id string, upd *models.OBEntryUpdate) (*models.OBEntry, error) {
	key, err := parseID(id)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.obs[key]
	if !ok {
		return nil, common.ErrorNotFound
	}

	if upd.Type != nil {
		e.Type = *upd.Type
	}
	if upd.Description != nil {
		e.Description = *upd.Description
	}
	if upd.Location != nil {
		e.Location = *upd.Location
	}
	if upd.ReportedBy != nil {
		e.ReportedBy = *upd.ReportedBy
	}
	if upd.Status != nil {
		e.Status = *upd.Status
	}
	if upd.DateTime != nil {
		e.DateTime = *upd.DateTime
	}
	e.UpdatedAt = s.touch(e.UpdatedAt)

	out := *e
	return &out, nil
}

func (s *Store) DeleteOBEntry(ctx context.Context, id string) error {
	key, err := parseID(id)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.obs[key]; !ok {
		return common.ErrorNotFound
	}
	delete(s.obs, key)
	return nil
}
