package gormstore

import (
	"context"

	"therapyhq/practice-api/model"
	"therapyhq/practice-api/store"

	"github.com/google/uuid"
)

func (s *Store) CreateUser(ctx context.Context, u model.User) (model.User, error) {
	if u.ID == "" {
		u.ID = uuid.NewString()
	}

	if u.Locale == "" {
		u.Locale = "en"
	}

	if err := s.db.WithContext(ctx).Create(&u).Error; err != nil {
		return model.User{}, translate(err)
	}

	return u, nil
}

// CreateUserWithPassword is the administrative creation path. Unlike
// self-registration the user comes out verified and with no pending
// verification token.
func (s *Store) CreateUserWithPassword(ctx context.Context, u model.User, password string) (model.User, error) {
	hash, err := s.argon.GenerateFromPassword(password)
	if err != nil {
		return model.User{}, err
	}

	u.PasswordHash = hash
	u.Verified = true
	u.VerificationToken = nil

	return s.CreateUser(ctx, u)
}

func (s *Store) GetUser(ctx context.Context, id string) (model.User, error) {
	var u model.User

	err := s.db.WithContext(ctx).Where("id = ?", id).First(&u).Error
	if err != nil {
		return model.User{}, translate(err)
	}

	return u, nil
}

func (s *Store) GetUserByEmail(ctx context.Context, email string) (model.User, error) {
	var u model.User

	err := s.db.WithContext(ctx).Where("email = ?", email).First(&u).Error
	if err != nil {
		return model.User{}, translate(err)
	}

	return u, nil
}

func (s *Store) GetUserByVerificationToken(ctx context.Context, token string) (model.User, error) {
	var u model.User

	err := s.db.WithContext(ctx).Where("verification_token = ?", token).First(&u).Error
	if err != nil {
		return model.User{}, translate(err)
	}

	return u, nil
}

func (s *Store) ListUsers(ctx context.Context, tenantID string, offset, limit int) ([]model.User, error) {
	offset, limit = store.ClampPage(offset, limit)

	users := []model.User{}

	err := s.db.WithContext(ctx).
		Where("tenant_id = ?", tenantID).
		Order("created_at").
		Offset(offset).
		Limit(limit).
		Find(&users).
		Error
	if err != nil {
		return nil, translate(err)
	}

	return users, nil
}

// UpdateUserVerification flips the verified flag and swaps or clears the
// verification token in one write. A nil token clears the column.
func (s *Store) UpdateUserVerification(ctx context.Context, id string, verified bool, token *string) (model.User, error) {
	r := s.db.WithContext(ctx).
		Model(model.User{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"verified":           verified,
			"verification_token": token,
		})
	if r.Error != nil {
		return model.User{}, translate(r.Error)
	}

	if r.RowsAffected == 0 {
		return model.User{}, store.ErrNotFound
	}

	return s.GetUser(ctx, id)
}
