package memstore

import (
	"context"
	"time"

	"therapyhq/practice-api/model"
	"therapyhq/practice-api/store"

	"github.com/google/uuid"
)

// Clients

func (s *Store) CreateClient(_ context.Context, cl model.Client) (model.Client, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if cl.ID == "" {
		cl.ID = uuid.NewString()
	}

	now := time.Now().UTC()
	cl.CreatedAt = now
	cl.UpdatedAt = now

	s.clients[cl.ID] = cl
	s.clientOrder = append(s.clientOrder, cl.ID)

	return cl, nil
}

func (s *Store) GetClient(_ context.Context, id string) (model.Client, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cl, ok := s.clients[id]
	if !ok {
		return model.Client{}, store.ErrNotFound
	}

	return cl, nil
}

func (s *Store) ListClients(_ context.Context, tenantID string, offset, limit int) ([]model.Client, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return page(s.clientOrder, s.clients, func(cl model.Client) bool { return cl.TenantID == tenantID }, offset, limit), nil
}

func (s *Store) UpdateClient(_ context.Context, cl model.Client) (model.Client, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	existing, ok := s.clients[cl.ID]
	if !ok {
		return model.Client{}, store.ErrNotFound
	}

	existing.FullName = cl.FullName
	existing.Birthday = cl.Birthday
	existing.Tags = cl.Tags
	existing.UpdatedAt = time.Now().UTC()

	s.clients[cl.ID] = existing

	return existing, nil
}

func (s *Store) DeleteClient(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.clients[id]; !ok {
		return store.ErrNotFound
	}

	delete(s.clients, id)

	return nil
}

// Sessions

func (s *Store) CreateSession(_ context.Context, sess model.Session) (model.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if sess.ID == "" {
		sess.ID = uuid.NewString()
	}

	if sess.Status == "" {
		sess.Status = model.SessionPlanned
	}

	now := time.Now().UTC()
	sess.CreatedAt = now
	sess.UpdatedAt = now

	s.sessions[sess.ID] = sess
	s.sessionOrder = append(s.sessionOrder, sess.ID)

	return sess, nil
}

func (s *Store) GetSession(_ context.Context, id string) (model.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[id]
	if !ok {
		return model.Session{}, store.ErrNotFound
	}

	return sess, nil
}

func (s *Store) ListSessions(_ context.Context, clientID string, offset, limit int) ([]model.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return page(s.sessionOrder, s.sessions, func(sess model.Session) bool { return sess.ClientID == clientID }, offset, limit), nil
}

func (s *Store) UpdateSession(_ context.Context, sess model.Session) (model.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	existing, ok := s.sessions[sess.ID]
	if !ok {
		return model.Session{}, store.ErrNotFound
	}

	existing.ScheduledAt = sess.ScheduledAt
	existing.DurationMin = sess.DurationMin
	existing.Status = sess.Status
	existing.UpdatedAt = time.Now().UTC()

	s.sessions[sess.ID] = existing

	return existing, nil
}

func (s *Store) DeleteSession(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.sessions[id]; !ok {
		return store.ErrNotFound
	}

	delete(s.sessions, id)

	return nil
}

// Notes

func (s *Store) CreateNote(_ context.Context, n model.Note) (model.Note, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if n.ID == "" {
		n.ID = uuid.NewString()
	}

	now := time.Now().UTC()
	n.CreatedAt = now
	n.UpdatedAt = now

	s.notes[n.ID] = n
	s.noteOrder = append(s.noteOrder, n.ID)

	return n, nil
}

func (s *Store) GetNote(_ context.Context, id string) (model.Note, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	n, ok := s.notes[id]
	if !ok {
		return model.Note{}, store.ErrNotFound
	}

	return n, nil
}

func (s *Store) ListNotes(_ context.Context, sessionID, authorID string, offset, limit int) ([]model.Note, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	keep := func(n model.Note) bool {
		if sessionID != "" && (n.SessionID == nil || *n.SessionID != sessionID) {
			return false
		}

		if authorID != "" && n.AuthorID != authorID {
			return false
		}

		return true
	}

	return page(s.noteOrder, s.notes, keep, offset, limit), nil
}

func (s *Store) UpdateNote(_ context.Context, n model.Note) (model.Note, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	existing, ok := s.notes[n.ID]
	if !ok {
		return model.Note{}, store.ErrNotFound
	}

	existing.BodyMD = n.BodyMD
	existing.SessionID = n.SessionID
	existing.UpdatedAt = time.Now().UTC()

	s.notes[n.ID] = existing

	return existing, nil
}

func (s *Store) DeleteNote(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.notes[id]; !ok {
		return store.ErrNotFound
	}

	delete(s.notes, id)

	return nil
}

// Media

func (s *Store) CreateMedia(_ context.Context, m model.Media) (model.Media, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if m.ID == "" {
		m.ID = uuid.NewString()
	}

	now := time.Now().UTC()
	m.CreatedAt = now
	m.UpdatedAt = now

	s.media[m.ID] = m
	s.mediaOrder = append(s.mediaOrder, m.ID)

	return m, nil
}

func (s *Store) GetMedia(_ context.Context, id string) (model.Media, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	m, ok := s.media[id]
	if !ok {
		return model.Media{}, store.ErrNotFound
	}

	return m, nil
}

func (s *Store) ListMedia(_ context.Context, sessionID string, offset, limit int) ([]model.Media, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return page(s.mediaOrder, s.media, func(m model.Media) bool { return m.SessionID == sessionID }, offset, limit), nil
}

func (s *Store) UpdateMedia(_ context.Context, m model.Media) (model.Media, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	existing, ok := s.media[m.ID]
	if !ok {
		return model.Media{}, store.ErrNotFound
	}

	existing.Type = m.Type
	existing.URL = m.URL
	existing.Transcription = m.Transcription
	existing.UpdatedAt = time.Now().UTC()

	s.media[m.ID] = existing

	return existing, nil
}

func (s *Store) DeleteMedia(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.media[id]; !ok {
		return store.ErrNotFound
	}

	delete(s.media, id)

	return nil
}

// AI insights

func (s *Store) CreateInsight(_ context.Context, i model.AIInsight) (model.AIInsight, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if i.ID == "" {
		i.ID = uuid.NewString()
	}

	now := time.Now().UTC()
	i.CreatedAt = now
	i.UpdatedAt = now

	s.insights[i.ID] = i
	s.insightOrder = append(s.insightOrder, i.ID)

	return i, nil
}

func (s *Store) GetInsight(_ context.Context, id string) (model.AIInsight, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i, ok := s.insights[id]
	if !ok {
		return model.AIInsight{}, store.ErrNotFound
	}

	return i, nil
}

func (s *Store) ListInsights(_ context.Context, sessionID string, offset, limit int) ([]model.AIInsight, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return page(s.insightOrder, s.insights, func(i model.AIInsight) bool { return i.SessionID == sessionID }, offset, limit), nil
}

func (s *Store) UpdateInsight(_ context.Context, i model.AIInsight) (model.AIInsight, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	existing, ok := s.insights[i.ID]
	if !ok {
		return model.AIInsight{}, store.ErrNotFound
	}

	existing.Kind = i.Kind
	existing.Content = i.Content
	existing.UpdatedAt = time.Now().UTC()

	s.insights[i.ID] = existing

	return existing, nil
}

func (s *Store) DeleteInsight(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.insights[id]; !ok {
		return store.ErrNotFound
	}

	delete(s.insights, id)

	return nil
}
