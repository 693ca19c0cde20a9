package memstore

import (
	"testing"

	"therapyhq/practice-api/model"
	"therapyhq/practice-api/pkg/security"
	"therapyhq/practice-api/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr(s string) *string { return &s }

func TestCreateUserIndexes(t *testing.T) {
	s := New(nil)
	ctx := t.Context()

	u, err := s.CreateUser(ctx, model.User{
		Email:             "a@example.com",
		VerificationToken: ptr("tok-1"),
	})
	require.NoError(t, err)
	assert.NotEmpty(t, u.ID)
	assert.Equal(t, "en", u.Locale)

	byEmail, err := s.GetUserByEmail(ctx, "a@example.com")
	require.NoError(t, err)
	assert.Equal(t, u.ID, byEmail.ID)

	byToken, err := s.GetUserByVerificationToken(ctx, "tok-1")
	require.NoError(t, err)
	assert.Equal(t, u.ID, byToken.ID)
}

func TestCreateUserConflicts(t *testing.T) {
	s := New(nil)
	ctx := t.Context()

	_, err := s.CreateUser(ctx, model.User{Email: "a@example.com", VerificationToken: ptr("tok-1")})
	require.NoError(t, err)

	_, err = s.CreateUser(ctx, model.User{Email: "a@example.com", VerificationToken: ptr("tok-2")})
	assert.ErrorIs(t, err, store.ErrConflict)

	_, err = s.CreateUser(ctx, model.User{Email: "b@example.com", VerificationToken: ptr("tok-1")})
	assert.ErrorIs(t, err, store.ErrConflict)
}

func TestCreateUserWithPassword(t *testing.T) {
	argon := security.New()
	s := New(argon)
	ctx := t.Context()

	u, err := s.CreateUserWithPassword(ctx, model.User{Email: "admin@example.com"}, "s3cret-pass")
	require.NoError(t, err)

	assert.True(t, u.Verified)
	assert.Nil(t, u.VerificationToken)

	ok, err := argon.VerifyPasswd("s3cret-pass", u.PasswordHash)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestUpdateUserVerification(t *testing.T) {
	s := New(nil)
	ctx := t.Context()

	u, err := s.CreateUser(ctx, model.User{Email: "a@example.com", VerificationToken: ptr("tok-1")})
	require.NoError(t, err)

	// verify drops the token and frees the index slot
	verified, err := s.UpdateUserVerification(ctx, u.ID, true, nil)
	require.NoError(t, err)
	assert.True(t, verified.Verified)
	assert.Nil(t, verified.VerificationToken)

	_, err = s.GetUserByVerificationToken(ctx, "tok-1")
	assert.ErrorIs(t, err, store.ErrNotFound)

	// the freed token can now be claimed by another user
	_, err = s.CreateUser(ctx, model.User{Email: "b@example.com", VerificationToken: ptr("tok-1")})
	assert.NoError(t, err)
}

func TestUpdateUserVerificationRotation(t *testing.T) {
	s := New(nil)
	ctx := t.Context()

	u, err := s.CreateUser(ctx, model.User{Email: "a@example.com", VerificationToken: ptr("tok-old")})
	require.NoError(t, err)

	rotated, err := s.UpdateUserVerification(ctx, u.ID, false, ptr("tok-new"))
	require.NoError(t, err)
	assert.Equal(t, "tok-new", *rotated.VerificationToken)

	_, err = s.GetUserByVerificationToken(ctx, "tok-old")
	assert.ErrorIs(t, err, store.ErrNotFound)

	byToken, err := s.GetUserByVerificationToken(ctx, "tok-new")
	require.NoError(t, err)
	assert.Equal(t, u.ID, byToken.ID)
}

func TestUpdateUserVerificationTokenCollision(t *testing.T) {
	s := New(nil)
	ctx := t.Context()

	_, err := s.CreateUser(ctx, model.User{Email: "a@example.com", VerificationToken: ptr("tok-a")})
	require.NoError(t, err)

	b, err := s.CreateUser(ctx, model.User{Email: "b@example.com", VerificationToken: ptr("tok-b")})
	require.NoError(t, err)

	_, err = s.UpdateUserVerification(ctx, b.ID, false, ptr("tok-a"))
	assert.ErrorIs(t, err, store.ErrConflict)

	// failed rotation must not lose the previous token
	byToken, err := s.GetUserByVerificationToken(ctx, "tok-b")
	require.NoError(t, err)
	assert.Equal(t, b.ID, byToken.ID)
}

func TestListUsersFiltersByTenant(t *testing.T) {
	s := New(nil)
	ctx := t.Context()

	tenant, err := s.CreateTenant(ctx, model.Tenant{Name: "Practice A"})
	require.NoError(t, err)
	assert.Equal(t, model.PlanFree, tenant.Plan)

	other, err := s.CreateTenant(ctx, model.Tenant{Name: "Practice B"})
	require.NoError(t, err)

	for i, email := range []string{"a@x.com", "b@x.com", "c@x.com"} {
		tid := tenant.ID
		if i == 2 {
			tid = other.ID
		}

		_, err := s.CreateUser(ctx, model.User{Email: email, TenantID: tid})
		require.NoError(t, err)
	}

	users, err := s.ListUsers(ctx, tenant.ID, 0, 0)
	require.NoError(t, err)
	assert.Len(t, users, 2)

	users, err = s.ListUsers(ctx, tenant.ID, 1, 1)
	require.NoError(t, err)
	require.Len(t, users, 1)
	assert.Equal(t, "b@x.com", users[0].Email)
}

func TestPagingOutOfRange(t *testing.T) {
	s := New(nil)
	ctx := t.Context()

	tenant, err := s.CreateTenant(ctx, model.Tenant{Name: "Practice"})
	require.NoError(t, err)

	_, err = s.CreateClient(ctx, model.Client{TenantID: tenant.ID, FullName: "Jane Roe"})
	require.NoError(t, err)

	clients, err := s.ListClients(ctx, tenant.ID, 10, 5)
	require.NoError(t, err)
	assert.Empty(t, clients)

	clients, err = s.ListClients(ctx, tenant.ID, -3, -1)
	require.NoError(t, err)
	assert.Len(t, clients, 1)
}

func TestClientLifecycle(t *testing.T) {
	s := New(nil)
	ctx := t.Context()

	cl, err := s.CreateClient(ctx, model.Client{TenantID: "t1", FullName: "Jane Roe", Tags: model.StringSlice{"cbt"}})
	require.NoError(t, err)

	cl.FullName = "Jane R. Roe"
	updated, err := s.UpdateClient(ctx, cl)
	require.NoError(t, err)
	assert.Equal(t, "Jane R. Roe", updated.FullName)

	require.NoError(t, s.DeleteClient(ctx, cl.ID))

	_, err = s.GetClient(ctx, cl.ID)
	assert.ErrorIs(t, err, store.ErrNotFound)

	assert.ErrorIs(t, s.DeleteClient(ctx, cl.ID), store.ErrNotFound)
}

func TestNoteFilters(t *testing.T) {
	s := New(nil)
	ctx := t.Context()

	sess, err := s.CreateSession(ctx, model.Session{ClientID: "c1"})
	require.NoError(t, err)
	assert.Equal(t, model.SessionPlanned, sess.Status)

	_, err = s.CreateNote(ctx, model.Note{AuthorID: "u1", SessionID: &sess.ID, BodyMD: "first"})
	require.NoError(t, err)

	_, err = s.CreateNote(ctx, model.Note{AuthorID: "u2", BodyMD: "unattached"})
	require.NoError(t, err)

	notes, err := s.ListNotes(ctx, sess.ID, "", 0, 0)
	require.NoError(t, err)
	require.Len(t, notes, 1)
	assert.Equal(t, "first", notes[0].BodyMD)

	notes, err = s.ListNotes(ctx, "", "u2", 0, 0)
	require.NoError(t, err)
	require.Len(t, notes, 1)
	assert.Equal(t, "unattached", notes[0].BodyMD)

	notes, err = s.ListNotes(ctx, "", "", 0, 0)
	require.NoError(t, err)
	assert.Len(t, notes, 2)
}
