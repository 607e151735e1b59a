package memstore

import (
	"context"

	"policerecords/internal/common"
	"policerecords/internal/models"
)

func (s *Store) CreatePoliceVehicle(ctx context.Context, v *models.PoliceVehicle) (*models.PoliceVehicle, error) {
	if v.VehicleID == "" || v.LicensePlate == "" {
		return nil, common.ErrorValidation
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, existing := range s.vehicles {
		if existing.VehicleID == v.VehicleID || existing.LicensePlate == v.LicensePlate {
			return nil, common.ErrorAlreadyExists
		}
	}

	id := s.nextVehicleID
	s.nextVehicleID++

	now := s.now()
	rec := *v
	rec.ID = formatID(id)
	if rec.Status == "" {
		rec.Status = models.VehicleStatusAvailable
	}
	rec.LastUpdate = now
	rec.CreatedAt = now
	rec.UpdatedAt = now

	s.vehicles[id] = &rec
	out := rec
	return &out, nil
}

func (s *Store) GetPoliceVehicle(ctx context.Context, id string) (*models.PoliceVehicle, error) {
	key, err := parseID(id)
	if err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	v, ok := s.vehicles[key]
	if !ok {
		return nil, common.ErrorNotFound
	}
	out := *v
	return &out, nil
}

func (s *Store) GetPoliceVehicleByLicensePlate(ctx context.Context, licensePlate string) (*models.PoliceVehicle, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, k := range sortedKeys(s.vehicles) {
		if s.vehicles[k].LicensePlate == licensePlate {
			out := *s.vehicles[k]
			return &out, nil
		}
	}
	return nil, common.ErrorNotFound
}

func (s *Store) ListPoliceVehicles(ctx context.Context) ([]*models.PoliceVehicle, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*models.PoliceVehicle, 0, len(s.vehicles))
	for _, k := range sortedKeys(s.vehicles) {
		v := *s.vehicles[k]
		out = append(out, &v)
	}
	return out, nil
}

func (s *Store) UpdatePoliceVehicle(ctx context.Context, id string, upd *models.PoliceVehicleUpdate) (*models.PoliceVehicle, error) {
	key, err := parseID(id)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	v, ok := s.vehicles[key]
	if !ok {
		return nil, common.ErrorNotFound
	}

	if upd.VehicleType != nil {
		v.VehicleType = *upd.VehicleType
	}
	if upd.Make != nil {
		v.Make = *upd.Make
	}
	if upd.Model != nil {
		v.Model = *upd.Model
	}
	if upd.Year != nil {
		v.Year = *upd.Year
	}
	if upd.CurrentLocation != nil {
		v.CurrentLocation = *upd.CurrentLocation
	}
	if upd.AssignedArea != nil {
		v.AssignedArea = *upd.AssignedArea
	}
	if upd.Status != nil {
		v.Status = *upd.Status
	}
	if upd.AssignedOfficerID != nil {
		v.AssignedOfficerID = upd.AssignedOfficerID
	}
	v.LastUpdate = s.now()
	v.UpdatedAt = s.touch(v.UpdatedAt)

	out := *v
	return &out, nil
}

func (s *Store) UpdateVehicleLocation(ctx context.Context, id string, location string) (*models.PoliceVehicle, error) {
	key, err := parseID(id)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	v, ok := s.vehicles[key]
	if !ok {
		return nil, common.ErrorNotFound
	}
	v.CurrentLocation = location
	v.LastUpdate = s.now()
	v.UpdatedAt = s.touch(v.UpdatedAt)

	out := *v
	return &out, nil
}

func (s *Store) UpdateVehicleStatus(ctx context.Context, id string, status string) (*models.PoliceVehicle, error) {
	key, err := parseID(id)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	v, ok := s.vehicles[key]
	if !ok {
		return nil, common.ErrorNotFound
	}
	v.Status = status
	v.LastUpdate = s.now()
	v.UpdatedAt = s.touch(v.UpdatedAt)

	out := *v
	return &out, nil
}

func (s *Store) DeletePoliceVehicle(ctx context.Context, id string) error {
	key, err := parseID(id)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.vehicles[key]; !ok {
		return common.ErrorNotFound
	}
	delete(s.vehicles, key)
	return nil
}
