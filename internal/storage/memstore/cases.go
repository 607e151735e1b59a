package memstore

import (
	"context"
	"sort"

	"policerecords/internal/common"
	"policerecords/internal/models"
)

func (s *Store) CreateCase(ctx context.Context, c *models.Case) (*models.Case, error) {
	if c.Title == "" {
		return nil, common.ErrorValidation
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.nextCaseID
	s.nextCaseID++

	now := s.now()
	rec := *c
	rec.ID = formatID(id)
	rec.CaseNumber = caseNumber(now.Year(), id)
	if rec.Status == "" {
		rec.Status = models.CaseStatusOpen
	}
	rec.CreatedAt = now
	rec.UpdatedAt = now

	s.cases[id] = &rec
	out := rec
	return &out, nil
}

func (s *Store) GetCase(ctx context.Context, id string) (*models.Case, error) {
	key, err := parseID(id)
	if err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	c, ok := s.cases[key]
	if !ok {
		return nil, common.ErrorNotFound
	}
	out := *c
	return &out, nil
}

func (s *Store) ListCases(ctx context.Context) ([]*models.Case, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*models.Case, 0, len(s.cases))
	for _, k := range sortedKeys(s.cases) {
		c := *s.cases[k]
		out = append(out, &c)
	}
	// Newest first; ties broken by id so the order is stable.
	sort.SliceStable(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.After(out[j].CreatedAt)
		}
		return out[i].ID > out[j].ID
	})
	return out, nil
}

func (s *Store) UpdateCase(ctx context.Context, id string, upd *models.CaseUpdate) (*models.Case, error) {
	key, err := parseID(id)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	c, ok := s.cases[key]
	if !ok {
		return nil, common.ErrorNotFound
	}

	if upd.Title != nil {
		c.Title = *upd.Title
	}
	if upd.Description != nil {
		c.Description = *upd.Description
	}
	if upd.Type != nil {
		c.Type = *upd.Type
	}
	if upd.Priority != nil {
		c.Priority = *upd.Priority
	}
	if upd.Status != nil {
		c.Status = *upd.Status
	}
	if upd.IncidentDate != nil {
		c.IncidentDate = upd.IncidentDate
	}
	if upd.Location != nil {
		c.Location = *upd.Location
	}
	if upd.AssignedOfficer != nil {
		c.AssignedOfficer = *upd.AssignedOfficer
	}
	if upd.AssignedOfficerID != nil {
		c.AssignedOfficerID = upd.AssignedOfficerID
	}
	c.UpdatedAt = s.touch(c.UpdatedAt)

	out := *c
	return &out, nil
}

func (s *Store) DeleteCase(ctx context.Context, id string) error {
	key, err := parseID(id)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.cases[key]; !ok {
		return common.ErrorNotFound
	}
	delete(s.cases, key)
	return nil
}
