// Package store defines the persistence operations the API needs,
// independent of the concrete backing store.
package store

import (
	"context"
	"errors"

	"therapyhq/practice-api/model"
)

var (
	// ErrNotFound means the query matched nothing
	ErrNotFound = errors.New("record not found")

	// ErrConflict means a write was rejected by a uniqueness constraint
	ErrConflict = errors.New("record already exists")
)

// DefaultLimit caps list queries that don't pick a page size
const DefaultLimit = 100

// Store is implemented by the durable database-backed store and by the
// volatile in-memory one used in tests. All methods return plain record
// copies, callers can't reach storage state behind them.
type Store interface {
	// Tenants
	CreateTenant(ctx context.Context, t model.Tenant) (model.Tenant, error)
	GetTenant(ctx context.Context, id string) (model.Tenant, error)
	ListTenants(ctx context.Context, offset, limit int) ([]model.Tenant, error)

	// Users
	CreateUser(ctx context.Context, u model.User) (model.User, error)
	CreateUserWithPassword(ctx context.Context, u model.User, password string) (model.User, error)
	GetUser(ctx context.Context, id string) (model.User, error)
	GetUserByEmail(ctx context.Context, email string) (model.User, error)
	GetUserByVerificationToken(ctx context.Context, token string) (model.User, error)
	ListUsers(ctx context.Context, tenantID string, offset, limit int) ([]model.User, error)
	UpdateUserVerification(ctx context.Context, id string, verified bool, token *string) (model.User, error)

	// Clients
	CreateClient(ctx context.Context, cl model.Client) (model.Client, error)
	GetClient(ctx context.Context, id string) (model.Client, error)
	ListClients(ctx context.Context, tenantID string, offset, limit int) ([]model.Client, error)
	UpdateClient(ctx context.Context, cl model.Client) (model.Client, error)
	DeleteClient(ctx context.Context, id string) error

	// Sessions
	CreateSession(ctx context.Context, s model.Session) (model.Session, error)
	GetSession(ctx context.Context, id string) (model.Session, error)
	ListSessions(ctx context.Context, clientID string, offset, limit int) ([]model.Session, error)
	UpdateSession(ctx context.Context, s model.Session) (model.Session, error)
	DeleteSession(ctx context.Context, id string) error

	// Notes
	CreateNote(ctx context.Context, n model.Note) (model.Note, error)
	GetNote(ctx context.Context, id string) (model.Note, error)
	ListNotes(ctx context.Context, sessionID, authorID string, offset, limit int) ([]model.Note, error)
	UpdateNote(ctx context.Context, n model.Note) (model.Note, error)
	DeleteNote(ctx context.Context, id string) error

	// Media
	CreateMedia(ctx context.Context, m model.Media) (model.Media, error)
	GetMedia(ctx context.Context, id string) (model.Media, error)
	ListMedia(ctx context.Context, sessionID string, offset, limit int) ([]model.Media, error)
	UpdateMedia(ctx context.Context, m model.Media) (model.Media, error)
	DeleteMedia(ctx context.Context, id string) error

	// AI insights
	CreateInsight(ctx context.Context, i model.AIInsight) (model.AIInsight, error)
	GetInsight(ctx context.Context, id string) (model.AIInsight, error)
	ListInsights(ctx context.Context, sessionID string, offset, limit int) ([]model.AIInsight, error)
	UpdateInsight(ctx context.Context, i model.AIInsight) (model.AIInsight, error)
	DeleteInsight(ctx context.Context, id string) error
}

// ClampPage normalizes a skip/limit pair the way list endpoints expect
func ClampPage(offset, limit int) (int, int) {
	if offset < 0 {
		offset = 0
	}

	if limit <= 0 || limit > DefaultLimit {
		limit = DefaultLimit
	}

	return offset, limit
}
