package gormstore

import (
	"context"

	"therapyhq/practice-api/model"
	"therapyhq/practice-api/store"

	"github.com/google/uuid"
)

func (s *Store) CreateClient(ctx context.Context, cl model.Client) (model.Client, error) {
	if cl.ID == "" {
		cl.ID = uuid.NewString()
	}

	if err := s.db.WithContext(ctx).Create(&cl).Error; err != nil {
		return model.Client{}, translate(err)
	}

	return cl, nil
}

func (s *Store) GetClient(ctx context.Context, id string) (model.Client, error) {
	var cl model.Client

	err := s.db.WithContext(ctx).Where("id = ?", id).First(&cl).Error
	if err != nil {
		return model.Client{}, translate(err)
	}

	return cl, nil
}

func (s *Store) ListClients(ctx context.Context, tenantID string, offset, limit int) ([]model.Client, error) {
	offset, limit = store.ClampPage(offset, limit)

	clients := []model.Client{}

	err := s.db.WithContext(ctx).
		Where("tenant_id = ?", tenantID).
		Order("created_at").
		Offset(offset).
		Limit(limit).
		Find(&clients).
		Error
	if err != nil {
		return nil, translate(err)
	}

	return clients, nil
}

func (s *Store) UpdateClient(ctx context.Context, cl model.Client) (model.Client, error) {
	existing, err := s.GetClient(ctx, cl.ID)
	if err != nil {
		return model.Client{}, err
	}

	existing.FullName = cl.FullName
	existing.Birthday = cl.Birthday
	existing.Tags = cl.Tags

	if err := s.db.WithContext(ctx).Save(&existing).Error; err != nil {
		return model.Client{}, translate(err)
	}

	return existing, nil
}

func (s *Store) DeleteClient(ctx context.Context, id string) error {
	r := s.db.WithContext(ctx).Where("id = ?", id).Delete(model.Client{})
	if r.Error != nil {
		return translate(r.Error)
	}

	if r.RowsAffected == 0 {
		return store.ErrNotFound
	}

	return nil
}
