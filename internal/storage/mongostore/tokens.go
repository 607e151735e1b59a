package mongostore

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"

	"policerecords/internal/common"
	"policerecords/internal/models"
)

func (s *Store) CreatePasswordResetToken(ctx context.Context, userID, token string) error {
	if err := s.connected(); err != nil {
		return err
	}
	if token == "" {
		return common.ErrorValidation
	}

	now := s.now()
	rec := models.PasswordResetToken{
		Token:     token,
		UserID:    userID,
		ExpiresAt: now.Add(models.PasswordResetTokenTTL),
		CreatedAt: now,
	}
	if _, err := s.coll("passwordResetTokens").InsertOne(ctx, &rec); err != nil {
		return writeErr(err)
	}
	return nil
}

// GetPasswordResetToken filters on expiry store-side; an expired token
// reads as not found.
func (s *Store) GetPasswordResetToken(ctx context.Context, token string) (*models.PasswordResetToken, error) {
	if err := s.connected(); err != nil {
		return nil, err
	}
	return findOne[models.PasswordResetToken](ctx, s.coll("passwordResetTokens"), bson.M{
		"token":     token,
		"expiresAt": bson.M{"$gt": s.now()},
	})
}

func (s *Store) DeletePasswordResetToken(ctx context.Context, token string) error {
	if err := s.connected(); err != nil {
		return err
	}
	res, err := s.coll("passwordResetTokens").DeleteOne(ctx, bson.M{"token": token})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return common.ErrorNotFound
	}
	return nil
}
