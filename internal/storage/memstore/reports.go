package memstore

import (
	"context"

	"policerecords/internal/common"
	"policerecords/internal/models"
)

func (s *Store) CreateReport(ctx context.Context, r *models.Report) (*models.Report, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.nextReportID
	s.nextReportID++

	now := s.now()
	rec := *r
	rec.ID = formatID(id)
	rec.ReportNumber = reportNumber(now.Year(), id)
	if rec.RequestedBy == "" {
		rec.RequestedBy = "1"
	}
	rec.CreatedAt = now
	rec.UpdatedAt = now

	s.reports[id] = &rec
	out := rec
	return &out, nil
}

func (s *Store) GetReport(ctx context.Context, id string) (*models.Report, error) {
	key, err := parseID(id)
	if err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	r, ok := s.reports[key]
	if !ok {
		return nil, common.ErrorNotFound
	}
	out := *r
	return &out, nil
}

func (s *Store) GetReportByNumber(ctx context.Context, reportNumber string) (*models.Report, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, k := range sortedKeys(s.reports) {
		if s.reports[k].ReportNumber == reportNumber {
			out := *s.reports[k]
			return &out, nil
		}
	}
	return nil, common.ErrorNotFound
}

func (s *Store) ListReports(ctx context.Context) ([]*models.Report, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*models.Report, 0, len(s.reports))
	for _, k := range sortedKeys(s.reports) {
		r := *s.reports[k]
		out = append(out, &r)
	}
	return out, nil
}

func (s *Store) UpdateReport(ctx context.Context, id string, upd *models.ReportUpdate) (*models.Report, error) {
	key, err := parseID(id)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	r, ok := s.reports[key]
	if !ok {
		return nil, common.ErrorNotFound
	}

	if upd.Title != nil {
		r.Title = *upd.Title
	}
	if upd.Type != nil {
		r.Type = *upd.Type
	}
	if upd.Status != nil {
		r.Status = *upd.Status
	}
	if upd.DateFrom != nil {
		r.DateFrom = upd.DateFrom
	}
	if upd.DateTo != nil {
		r.DateTo = upd.DateTo
	}
	r.UpdatedAt = s.touch(r.UpdatedAt)

	out := *r
	return &out, nil
}

func (s *Store) DeleteReport(ctx context.Context, id string) error {
	key, err := parseID(id)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.reports[key]; !ok {
		return common.ErrorNotFound
	}
	delete(s.reports, key)
	return nil
}
