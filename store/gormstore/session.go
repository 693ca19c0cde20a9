package gormstore

import (
	"context"

	"therapyhq/practice-api/model"
	"therapyhq/practice-api/store"

	"github.com/google/uuid"
)

func (s *Store) CreateSession(ctx context.Context, sess model.Session) (model.Session, error) {
	if sess.ID == "" {
		sess.ID = uuid.NewString()
	}

	if sess.Status == "" {
		sess.Status = model.SessionPlanned
	}

	if err := s.db.WithContext(ctx).Create(&sess).Error; err != nil {
		return model.Session{}, translate(err)
	}

	return sess, nil
}

func (s *Store) GetSession(ctx context.Context, id string) (model.Session, error) {
	var sess model.Session

	err := s.db.WithContext(ctx).Where("id = ?", id).First(&sess).Error
	if err != nil {
		return model.Session{}, translate(err)
	}

	return sess, nil
}

func (s *Store) ListSessions(ctx context.Context, clientID string, offset, limit int) ([]model.Session, error) {
	offset, limit = store.ClampPage(offset, limit)

	sessions := []model.Session{}

	err := s.db.WithContext(ctx).
		Where("client_id = ?", clientID).
		Order("scheduled_at").
		Offset(offset).
		Limit(limit).
		Find(&sessions).
		Error
	if err != nil {
		return nil, translate(err)
	}

	return sessions, nil
}

func (s *Store) UpdateSession(ctx context.Context, sess model.Session) (model.Session, error) {
	existing, err := s.GetSession(ctx, sess.ID)
	if err != nil {
		return model.Session{}, err
	}

	existing.ScheduledAt = sess.ScheduledAt
	existing.DurationMin = sess.DurationMin
	existing.Status = sess.Status

	if err := s.db.WithContext(ctx).Save(&existing).Error; err != nil {
		return model.Session{}, translate(err)
	}

	return existing, nil
}

func (s *Store) DeleteSession(ctx context.Context, id string) error {
	r := s.db.WithContext(ctx).Where("id = ?", id).Delete(model.Session{})
	if r.Error != nil {
		return translate(r.Error)
	}

	if r.RowsAffected == 0 {
		return store.ErrNotFound
	}

	return nil
}
