package mongostore

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"policerecords/internal/common"
	"policerecords/internal/models"
)

func (s *Store) CreateUser(ctx context.Context, u *models.User) (*models.User, error) {
	if err := s.connected(); err != nil {
		return nil, err
	}
	if u.Username == "" || u.Email == "" {
		return nil, common.ErrorValidation
	}

	now := s.now()
	rec := *u
	rec.ID = ""
	if rec.Role == "" {
		rec.Role = models.RoleUser
	}
	rec.IsActive = true
	rec.LastLoginAt = nil
	rec.CreatedAt = now
	rec.UpdatedAt = now

	res, err := s.coll("users").InsertOne(ctx, &rec)
	if err != nil {
		return nil, writeErr(err)
	}
	rec.ID = res.InsertedID.(primitive.ObjectID).Hex()
	return &rec, nil
}

func (s *Store) GetUser(ctx context.Context, id string) (*models.User, error) {
	if err := s.connected(); err != nil {
		return nil, err
	}
	return findByID[models.User](ctx, s.coll("users"), id)
}

func (s *Store) GetUserByUsername(ctx context.Context, username string) (*models.User, error) {
	if err := s.connected(); err != nil {
		return nil, err
	}
	return findOne[models.User](ctx, s.coll("users"), bson.M{"username": username})
}

func (s *Store) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	if err := s.connected(); err != nil {
		return nil, err
	}
	return findOne[models.User](ctx, s.coll("users"), bson.M{"email": email})
}

func (s *Store) ListUsers(ctx context.Context) ([]*models.User, error) {
	if err := s.connected(); err != nil {
		return nil, err
	}
	return findAll[models.User](ctx, s.coll("users"), bson.M{}, nil)
}

func (s *Store) UpdateUser(ctx context.Context, id string, upd *models.UserUpdate) (*models.User, error) {
	if err := s.connected(); err != nil {
		return nil, err
	}

	set := bson.M{"updatedAt": s.now()}
	if upd.Username != nil {
		set["username"] = *upd.Username
	}
	if upd.Email != nil {
		set["email"] = *upd.Email
	}
	if upd.FirstName != nil {
		set["firstName"] = *upd.FirstName
	}
	if upd.LastName != nil {
		set["lastName"] = *upd.LastName
	}
	if upd.Role != nil {
		set["role"] = *upd.Role
	}
	if upd.BadgeNumber != nil {
		set["badgeNumber"] = *upd.BadgeNumber
	}
	if upd.Department != nil {
		set["department"] = *upd.Department
	}
	if upd.Position != nil {
		set["position"] = *upd.Position
	}
	if upd.Phone != nil {
		set["phone"] = *upd.Phone
	}
	if upd.ProfileImage != nil {
		set["profileImage"] = *upd.ProfileImage
	}
	if upd.IsActive != nil {
		set["isActive"] = *upd.IsActive
	}

	return updateByID[models.User](ctx, s.coll("users"), id, bson.M{"$set": set})
}

func (s *Store) UpdateLastLogin(ctx context.Context, id string) error {
	if err := s.connected(); err != nil {
		return err
	}
	_, err := updateByID[models.User](ctx, s.coll("users"), id,
		bson.M{"$set": bson.M{"lastLoginAt": s.now()}})
	return err
}

func (s *Store) UpdateUserPassword(ctx context.Context, id string, password string) error {
	if err := s.connected(); err != nil {
		return err
	}
	_, err := updateByID[models.User](ctx, s.coll("users"), id,
		bson.M{"$set": bson.M{"password": password, "updatedAt": s.now()}})
	return err
}

func (s *Store) DeleteUser(ctx context.Context, id string) error {
	if err := s.connected(); err != nil {
		return err
	}
	return deleteByID(ctx, s.coll("users"), id)
}
