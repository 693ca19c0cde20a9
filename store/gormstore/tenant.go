package gormstore

import (
	"context"

	"therapyhq/practice-api/model"
	"therapyhq/practice-api/store"

	"github.com/google/uuid"
)

func (s *Store) CreateTenant(ctx context.Context, t model.Tenant) (model.Tenant, error) {
	if t.ID == "" {
		t.ID = uuid.NewString()
	}

	if t.Plan == "" {
		t.Plan = model.PlanFree
	}

	if err := s.db.WithContext(ctx).Create(&t).Error; err != nil {
		return model.Tenant{}, translate(err)
	}

	return t, nil
}

func (s *Store) GetTenant(ctx context.Context, id string) (model.Tenant, error) {
	var t model.Tenant

	err := s.db.WithContext(ctx).Where("id = ?", id).First(&t).Error
	if err != nil {
		return model.Tenant{}, translate(err)
	}

	return t, nil
}

func (s *Store) ListTenants(ctx context.Context, offset, limit int) ([]model.Tenant, error) {
	offset, limit = store.ClampPage(offset, limit)

	tenants := []model.Tenant{}

	err := s.db.WithContext(ctx).
		Order("created_at").
		Offset(offset).
		Limit(limit).
		Find(&tenants).
		Error
	if err != nil {
		return nil, translate(err)
	}

	return tenants, nil
}
