package gormstore

import (
	"context"

	"therapyhq/practice-api/model"
	"therapyhq/practice-api/store"

	"github.com/google/uuid"
)

func (s *Store) CreateNote(ctx context.Context, n model.Note) (model.Note, error) {
	if n.ID == "" {
		n.ID = uuid.NewString()
	}

	if err := s.db.WithContext(ctx).Create(&n).Error; err != nil {
		return model.Note{}, translate(err)
	}

	return n, nil
}

func (s *Store) GetNote(ctx context.Context, id string) (model.Note, error) {
	var n model.Note

	err := s.db.WithContext(ctx).Where("id = ?", id).First(&n).Error
	if err != nil {
		return model.Note{}, translate(err)
	}

	return n, nil
}

// ListNotes filters by session and/or author, empty values skip the filter
func (s *Store) ListNotes(ctx context.Context, sessionID, authorID string, offset, limit int) ([]model.Note, error) {
	offset, limit = store.ClampPage(offset, limit)

	q := s.db.WithContext(ctx).Model(model.Note{})

	if sessionID != "" {
		q = q.Where("session_id = ?", sessionID)
	}

	if authorID != "" {
		q = q.Where("author_id = ?", authorID)
	}

	notes := []model.Note{}

	err := q.Order("created_at").Offset(offset).Limit(limit).Find(&notes).Error
	if err != nil {
		return nil, translate(err)
	}

	return notes, nil
}

func (s *Store) UpdateNote(ctx context.Context, n model.Note) (model.Note, error) {
	existing, err := s.GetNote(ctx, n.ID)
	if err != nil {
		return model.Note{}, err
	}

	existing.BodyMD = n.BodyMD
	existing.SessionID = n.SessionID

	if err := s.db.WithContext(ctx).Save(&existing).Error; err != nil {
		return model.Note{}, translate(err)
	}

	return existing, nil
}

func (s *Store) DeleteNote(ctx context.Context, id string) error {
	r := s.db.WithContext(ctx).Where("id = ?", id).Delete(model.Note{})
	if r.Error != nil {
		return translate(r.Error)
	}

	if r.RowsAffected == 0 {
		return store.ErrNotFound
	}

	return nil
}
