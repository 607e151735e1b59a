package memstore

import (
	"context"

	"policerecords/internal/common"
	"policerecords/internal/models"
)

func (s *Store) CreateLicensePlate(ctx context.Context, p *models.LicensePlate) (*models.LicensePlate, error) {
	if p.PlateNumber == "" {
		return nil, common.ErrorValidation
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, existing := range s.plates {
		if existing.PlateNumber == p.PlateNumber {
			return nil, common.ErrorAlreadyExists
		}
	}

	id := s.nextPlateID
	s.nextPlateID++

	now := s.now()
	rec := *p
	rec.ID = formatID(id)
	rec.OwnerImage = nil
	rec.CreatedAt = now
	rec.UpdatedAt = now

	s.plates[id] = &rec
	out := rec
	return &out, nil
}

func (s *Store) GetLicensePlate(ctx context.Context, id string) (*models.LicensePlate, error) {
	key, err := parseID(id)
	if err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	p, ok := s.plates[key]
	if !ok {
		return nil, common.ErrorNotFound
	}
	out := *p
	return &out, nil
}

func (s *Store) GetLicensePlateByNumber(ctx context.Context, plateNumber string) (*models.LicensePlate, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, k := range sortedKeys(s.plates) {
		if s.plates[k].PlateNumber == plateNumber {
			out := *s.plates[k]
			return &out, nil
		}
	}
	return nil, common.ErrorNotFound
}

func (s *Store) ListLicensePlates(ctx context.Context) ([]*models.LicensePlate, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*models.LicensePlate, 0, len(s.plates))
	for _, k := range sortedKeys(s.plates) {
		p := *s.plates[k]
		out = append(out, &p)
	}
	return out, nil
}

func (s *Store) UpdateLicensePlate(ctx context.Context, id string, upd *models.LicensePlateUpdate) (*models.LicensePlate, error) {
	key, err := parseID(id)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.plates[key]
	if !ok {
		return nil, common.ErrorNotFound
	}

	if upd.OwnerName != nil {
		p.OwnerName = *upd.OwnerName
	}
	if upd.OwnerPhone != nil {
		p.OwnerPhone = *upd.OwnerPhone
	}
	if upd.OwnerImage != nil {
		p.OwnerImage = upd.OwnerImage
	}
	if upd.VehicleMake != nil {
		p.VehicleMake = *upd.VehicleMake
	}
	if upd.VehicleModel != nil {
		p.VehicleModel = *upd.VehicleModel
	}
	if upd.VehicleColor != nil {
		p.VehicleColor = *upd.VehicleColor
	}
	if upd.Status != nil {
		p.Status = *upd.Status
	}
	p.UpdatedAt = s.touch(p.UpdatedAt)

	out := *p
	return &out, nil
}

func (s *Store) DeleteLicensePlate(ctx context.Context, id string) error {
	key, err := parseID(id)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.plates[key]; !ok {
		return common.ErrorNotFound
	}
	delete(s.plates, key)
	return nil
}
