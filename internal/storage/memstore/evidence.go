package memstore

import (
	"context"

	"policerecords/internal/common"
	"policerecords/internal/models"
)

func (s *Store) CreateEvidence(ctx context.Context, e *models.Evidence) (*models.Evidence, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.nextEvidenceID
	s.nextEvidenceID++

	now := s.now()
	rec := *e
	rec.ID = formatID(id)
	rec.EvidenceNumber = evidenceNumber(now.Year(), id)
	if rec.CollectedBy == "" {
		rec.CollectedBy = "1"
	}
	rec.CreatedAt = now
	rec.UpdatedAt = now

	s.evidence[id] = &rec
	out := rec
	return &out, nil
}

func (s *Store) GetEvidence(ctx context.Context, id string) (*models.Evidence, error) {
	key, err := parseID(id)
	if err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	e, ok := s.evidence[key]
	if !ok {
		return nil, common.ErrorNotFound
	}
	out := *e
	return &out, nil
}

func (s *Store) GetEvidenceByNumber(ctx context.Context, evidenceNumber string) (*models.Evidence, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, k := range sortedKeys(s.evidence) {
		if s.evidence[k].EvidenceNumber == evidenceNumber {
			out := *s.evidence[k]
			return &out, nil
		}
	}
	return nil, common.ErrorNotFound
}

func (s *Store) ListEvidence(ctx context.Context) ([]*models.Evidence, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*models.Evidence, 0, len(s.evidence))
	for _, k := range sortedKeys(s.evidence) {
		e := *s.evidence[k]
		out = append(out, &e)
	}
	return out, nil
}

func (s *Store) UpdateEvidence(ctx context.Context, id string, upd *models.EvidenceUpdate) (*models.Evidence, error) {
	key, err := parseID(id)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.evidence[key]
	if !ok {
		return nil, common.ErrorNotFound
	}

	if upd.CaseID != nil {
		e.CaseID = *upd.CaseID
	}
	if upd.Type != nil {
		e.Type = *upd.Type
	}
	if upd.Description != nil {
		e.Description = *upd.Description
	}
	if upd.StorageLocation != nil {
		e.StorageLocation = *upd.StorageLocation
	}
	if upd.Status != nil {
		e.Status = *upd.Status
	}
	if upd.CollectedBy != nil {
		e.CollectedBy = *upd.CollectedBy
	}
	e.UpdatedAt = s.touch(e.UpdatedAt)

	out := *e
	return &out, nil
}

func (s *Store) DeleteEvidence(ctx context.Context, id string) error {
	key, err := parseID(id)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.evidence[key]; !ok {
		return common.ErrorNotFound
	}
	delete(s.evidence, key)
	return nil
}
