package gormstore

import (
	"context"

	"therapyhq/practice-api/model"
	"therapyhq/practice-api/store"

	"github.com/google/uuid"
)

func (s *Store) CreateMedia(ctx context.Context, m model.Media) (model.Media, error) {
	if m.ID == "" {
		m.ID = uuid.NewString()
	}

	if err := s.db.WithContext(ctx).Create(&m).Error; err != nil {
		return model.Media{}, translate(err)
	}

	return m, nil
}

func (s *Store) GetMedia(ctx context.Context, id string) (model.Media, error) {
	var m model.Media

	err := s.db.WithContext(ctx).Where("id = ?", id).First(&m).Error
	if err != nil {
		return model.Media{}, translate(err)
	}

	return m, nil
}

func (s *Store) ListMedia(ctx context.Context, sessionID string, offset, limit int) ([]model.Media, error) {
	offset, limit = store.ClampPage(offset, limit)

	media := []model.Media{}

	err := s.db.WithContext(ctx).
		Where("session_id = ?", sessionID).
		Order("created_at").
		Offset(offset).
		Limit(limit).
		Find(&media).
		Error
	if err != nil {
		return nil, translate(err)
	}

	return media, nil
}

func (s *Store) UpdateMedia(ctx context.Context, m model.Media) (model.Media, error) {
	existing, err := s.GetMedia(ctx, m.ID)
	if err != nil {
		return model.Media{}, err
	}

	existing.Type = m.Type
	existing.URL = m.URL
	existing.Transcription = m.Transcription

	if err := s.db.WithContext(ctx).Save(&existing).Error; err != nil {
		return model.Media{}, translate(err)
	}

	return existing, nil
}

func (s *Store) DeleteMedia(ctx context.Context, id string) error {
	r := s.db.WithContext(ctx).Where("id = ?", id).Delete(model.Media{})
	if r.Error != nil {
		return translate(r.Error)
	}

	if r.RowsAffected == 0 {
		return store.ErrNotFound
	}

	return nil
}
