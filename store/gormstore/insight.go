package gormstore

import (
	"context"

	"therapyhq/practice-api/model"
	"therapyhq/practice-api/store"

	"github.com/google/uuid"
)

func (s *Store) CreateInsight(ctx context.Context, i model.AIInsight) (model.AIInsight, error) {
	if i.ID == "" {
		i.ID = uuid.NewString()
	}

	if err := s.db.WithContext(ctx).Create(&i).Error; err != nil {
		return model.AIInsight{}, translate(err)
	}

	return i, nil
}

func (s *Store) GetInsight(ctx context.Context, id string) (model.AIInsight, error) {
	var i model.AIInsight

	err := s.db.WithContext(ctx).Where("id = ?", id).First(&i).Error
	if err != nil {
		return model.AIInsight{}, translate(err)
	}

	return i, nil
}

func (s *Store) ListInsights(ctx context.Context, sessionID string, offset, limit int) ([]model.AIInsight, error) {
	offset, limit = store.ClampPage(offset, limit)

	insights := []model.AIInsight{}

	err := s.db.WithContext(ctx).
		Where("session_id = ?", sessionID).
		Order("created_at").
		Offset(offset).
		Limit(limit).
		Find(&insights).
		Error
	if err != nil {
		return nil, translate(err)
	}

	return insights, nil
}

func (s *Store) UpdateInsight(ctx context.Context, i model.AIInsight) (model.AIInsight, error) {
	existing, err := s.GetInsight(ctx, i.ID)
	if err != nil {
		return model.AIInsight{}, err
	}

	existing.Kind = i.Kind
	existing.Content = i.Content

	if err := s.db.WithContext(ctx).Save(&existing).Error; err != nil {
		return model.AIInsight{}, translate(err)
	}

	return existing, nil
}

func (s *Store) DeleteInsight(ctx context.Context, id string) error {
	r := s.db.WithContext(ctx).Where("id = ?", id).Delete(model.AIInsight{})
	if r.Error != nil {
		return translate(r.Error)
	}

	if r.RowsAffected == 0 {
		return store.ErrNotFound
	}

	return nil
}
