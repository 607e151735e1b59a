package memstore

import (
	"context"

	"policerecords/internal/common"
	"policerecords/internal/models"
)

func (s *Store) CreateUser(ctx context.Context, u *models.User) (*models.User, error) {
	if u.Username == "" || u.Email == "" {
		return nil, common.ErrorValidation
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, existing := range s.users {
		if existing.Username == u.Username || existing.Email == u.Email {
			return nil, common.ErrorAlreadyExists
		}
	}

	id := s.nextUserID
	s.nextUserID++

	now := s.now()
	rec := *u
	rec.ID = formatID(id)
	if rec.Role == "" {
		rec.Role = models.RoleUser
	}
	rec.IsActive = true
	rec.LastLoginAt = nil
	rec.CreatedAt = now
	rec.UpdatedAt = now

	s.users[id] = &rec
	out := rec
	return &out, nil
}

func (s *Store) GetUser(ctx context.Context, id string) (*models.User, error) {
	key, err := parseID(id)
	if err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	u, ok := s.users[key]
	if !ok {
		return nil, common.ErrorNotFound
	}
	out := *u
	return &out, nil
}

func (s *Store) GetUserByUsername(ctx context.Context, username string) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, k := range sortedKeys(s.users) {
		if s.users[k].Username == username {
			out := *s.users[k]
			return &out, nil
		}
	}
	return nil, common.ErrorNotFound
}

func (s *Store) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, k := range sortedKeys(s.users) {
		if s.users[k].Email == email {
			out := *s.users[k]
			return &out, nil
		}
	}
	return nil, common.ErrorNotFound
}

func (s *Store) ListUsers(ctx context.Context) ([]*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*models.User, 0, len(s.users))
	for _, k := range sortedKeys(s.users) {
		u := *s.users[k]
		out = append(out, &u)
	}
	return out, nil
}

func (s *Store) UpdateUser(ctx context.Context, id string, upd *models.UserUpdate) (*models.User, error) {
	key, err := parseID(id)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	u, ok := s.users[key]
	if !ok {
		return nil, common.ErrorNotFound
	}

	if upd.Username != nil {
		u.Username = *upd.Username
	}
	if upd.Email != nil {
		u.Email = *upd.Email
	}
	if upd.FirstName != nil {
		u.FirstName = *upd.FirstName
	}
	if upd.LastName != nil {
		u.LastName = *upd.LastName
	}
	if upd.Role != nil {
		u.Role = *upd.Role
	}
	if upd.BadgeNumber != nil {
		u.BadgeNumber = *upd.BadgeNumber
	}
	if upd.Department != nil {
		u.Department = *upd.Department
	}
	if upd.Position != nil {
		u.Position = *upd.Position
	}
	if upd.Phone != nil {
		u.Phone = *upd.Phone
	}
	if upd.ProfileImage != nil {
		u.ProfileImage = upd.ProfileImage
	}
	if upd.IsActive != nil {
		u.IsActive = *upd.IsActive
	}
	u.UpdatedAt = s.touch(u.UpdatedAt)

	out := *u
	return &out, nil
}

func (s *Store) UpdateLastLogin(ctx context.Context, id string) error {
	key, err := parseID(id)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	u, ok := s.users[key]
	if !ok {
		return common.ErrorNotFound
	}
	t := s.now()
	u.LastLoginAt = &t
	return nil
}

func (s *Store) UpdateUserPassword(ctx context.Context, id string, password string) error {
	key, err := parseID(id)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	u, ok := s.users[key]
	if !ok {
		return common.ErrorNotFound
	}
	u.Password = password
	u.UpdatedAt = s.touch(u.UpdatedAt)
	return nil
}

func (s *Store) DeleteUser(ctx context.Context, id string) error {
	key, err := parseID(id)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.users[key]; !ok {
		return common.ErrorNotFound
	}
	delete(s.users, key)
	return nil
}
