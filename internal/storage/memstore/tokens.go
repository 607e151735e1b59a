package memstore

import (
	"context"

	"policerecords/internal/common"
	"policerecords/internal/models"
)

func (s *Store) CreatePasswordResetToken(ctx context.Context, userID, token string) error {
	if token == "" {
		return common.ErrorValidation
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.tokens[token]; ok {
		return common.ErrorAlreadyExists
	}

	now := s.now()
	s.tokens[token] = &models.PasswordResetToken{
		Token:     token,
		UserID:    userID,
		ExpiresAt: now.Add(models.PasswordResetTokenTTL),
		CreatedAt: now,
	}
	return nil
}

// GetPasswordResetToken treats an expired token as absent and evicts it
// on lookup. There is no background sweep; expiry is checked lazily.
func (s *Store) GetPasswordResetToken(ctx context.Context, token string) (*models.PasswordResetToken, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec, ok := s.tokens[token]
	if !ok {
		return nil, common.ErrorNotFound
	}
	if !rec.ExpiresAt.After(s.now()) {
		delete(s.tokens, token)
		return nil, common.ErrorNotFound
	}
	out := *rec
	return &out, nil
}

func (s *Store) DeletePasswordResetToken(ctx context.Context, token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.tokens[token]; !ok {
		return common.ErrorNotFound
	}
	delete(s.tokens, token)
	return nil
}
