// Package memstore is the volatile Store implementation used in tests.
// Records live in maps keyed by id, with secondary indexes for the email
// and verification-token lookups kept consistent on every mutation.
//
// The store is meant for single-writer test scenarios, the mutex only
// guards against accidental overlap.
package memstore

import (
	"context"
	"sync"
	"time"

	"therapyhq/practice-api/model"
	"therapyhq/practice-api/pkg/security"
	"therapyhq/practice-api/store"

	"github.com/google/uuid"
)

type Store struct {
	mu sync.Mutex

	tenants  map[string]model.Tenant
	users    map[string]model.User
	clients  map[string]model.Client
	sessions map[string]model.Session
	notes    map[string]model.Note
	media    map[string]model.Media
	insights map[string]model.AIInsight

	// insertion order per map, so lists are deterministic
	tenantOrder  []string
	userOrder    []string
	clientOrder  []string
	sessionOrder []string
	noteOrder    []string
	mediaOrder   []string
	insightOrder []string

	emailIndex map[string]string // email -> user id
	tokenIndex map[string]string // verification token -> user id

	argon *security.ArgonHash
}

func New(argon *security.ArgonHash) *Store {
	if argon == nil {
		argon = security.New()
	}

	return &Store{
		tenants:    map[string]model.Tenant{},
		users:      map[string]model.User{},
		clients:    map[string]model.Client{},
		sessions:   map[string]model.Session{},
		notes:      map[string]model.Note{},
		media:      map[string]model.Media{},
		insights:   map[string]model.AIInsight{},
		emailIndex: map[string]string{},
		tokenIndex: map[string]string{},
		argon:      argon,
	}
}

func page[T any](ids []string, byID map[string]T, keep func(T) bool, offset, limit int) []T {
	offset, limit = store.ClampPage(offset, limit)

	out := []T{}
	for _, id := range ids {
		v, ok := byID[id]
		if !ok || !keep(v) {
			continue
		}

		out = append(out, v)
	}

	if offset >= len(out) {
		return []T{}
	}

	end := offset + limit
	if end > len(out) {
		end = len(out)
	}

	return out[offset:end]
}

func (s *Store) CreateTenant(_ context.Context, t model.Tenant) (model.Tenant, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if t.ID == "" {
		t.ID = uuid.NewString()
	}

	if t.Plan == "" {
		t.Plan = model.PlanFree
	}

	now := time.Now().UTC()
	t.CreatedAt = now
	t.UpdatedAt = now

	s.tenants[t.ID] = t
	s.tenantOrder = append(s.tenantOrder, t.ID)

	return t, nil
}

func (s *Store) GetTenant(_ context.Context, id string) (model.Tenant, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	t, ok := s.tenants[id]
	if !ok {
		return model.Tenant{}, store.ErrNotFound
	}

	return t, nil
}

func (s *Store) ListTenants(_ context.Context, offset, limit int) ([]model.Tenant, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return page(s.tenantOrder, s.tenants, func(model.Tenant) bool { return true }, offset, limit), nil
}

func (s *Store) CreateUser(_ context.Context, u model.User) (model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, taken := s.emailIndex[u.Email]; taken {
		return model.User{}, store.ErrConflict
	}

	if u.VerificationToken != nil {
		if _, taken := s.tokenIndex[*u.VerificationToken]; taken {
			return model.User{}, store.ErrConflict
		}
	}

	if u.ID == "" {
		u.ID = uuid.NewString()
	}

	if u.Locale == "" {
		u.Locale = "en"
	}

	now := time.Now().UTC()
	u.CreatedAt = now
	u.UpdatedAt = now

	s.users[u.ID] = u
	s.userOrder = append(s.userOrder, u.ID)
	s.emailIndex[u.Email] = u.ID

	if u.VerificationToken != nil {
		s.tokenIndex[*u.VerificationToken] = u.ID
	}

	return u, nil
}

// CreateUserWithPassword mirrors the administrative creation path of the
// durable store: the password gets hashed and the user comes out verified.
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

func (s *Store) GetUser(_ context.Context, id string) (model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	u, ok := s.users[id]
	if !ok {
		return model.User{}, store.ErrNotFound
	}

	return u, nil
}

func (s *Store) GetUserByEmail(_ context.Context, email string) (model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id, ok := s.emailIndex[email]
	if !ok {
		return model.User{}, store.ErrNotFound
	}

	return s.users[id], nil
}

func (s *Store) GetUserByVerificationToken(_ context.Context, token string) (model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id, ok := s.tokenIndex[token]
	if !ok {
		return model.User{}, store.ErrNotFound
	}

	return s.users[id], nil
}

func (s *Store) ListUsers(_ context.Context, tenantID string, offset, limit int) ([]model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return page(s.userOrder, s.users, func(u model.User) bool { return u.TenantID == tenantID }, offset, limit), nil
}

func (s *Store) UpdateUserVerification(_ context.Context, id string, verified bool, token *string) (model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	u, ok := s.users[id]
	if !ok {
		return model.User{}, store.ErrNotFound
	}

	if token != nil {
		if owner, taken := s.tokenIndex[*token]; taken && owner != id {
			return model.User{}, store.ErrConflict
		}
	}

	if u.VerificationToken != nil {
		delete(s.tokenIndex, *u.VerificationToken)
	}

	if token != nil {
		s.tokenIndex[*token] = id
	}

	u.Verified = verified
	u.VerificationToken = token
	u.UpdatedAt = time.Now().UTC()

	s.users[id] = u

	return u, nil
}
