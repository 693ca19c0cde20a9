package user_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"therapyhq/practice-api/app/user"
	"therapyhq/practice-api/internal"
	"therapyhq/practice-api/model"
	"therapyhq/practice-api/pkg/middleware"
	"therapyhq/practice-api/pkg/security"
	"therapyhq/practice-api/store/memstore"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRouter(t *testing.T) (*gin.Engine, *internal.Deps) {
	t.Helper()

	gin.SetMode(gin.TestMode)

	d := &internal.Deps{
		Store: memstore.New(nil),
		Argon: security.New(),
	}

	r := gin.New()
	r.Use(middleware.NewRequestIDMiddleware())

	r.POST("/users", func(c *gin.Context) { user.UserCreate(c, d) })
	r.GET("/users", func(c *gin.Context) { user.UserFetchBulk(c, d) })
	r.GET("/users/:id", func(c *gin.Context) { user.UserFetch(c, d) })

	return r, d
}

func do(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestUserCreateComesOutVerified(t *testing.T) {
	r, d := newTestRouter(t)

	tenant, err := d.Store.CreateTenant(t.Context(), model.Tenant{Name: "Practice"})
	require.NoError(t, err)

	w := do(r, "POST", "/users?tenant_id="+tenant.ID, `{"email":"staff@example.com","password":"password123","role":"assistant"}`)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var created model.User
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	assert.True(t, created.Verified)
	assert.Equal(t, "assistant", created.Role)
	assert.NotContains(t, w.Body.String(), "password_hash")

	// duplicate email
	w = do(r, "POST", "/users?tenant_id="+tenant.ID, `{"email":"staff@example.com","password":"password123","role":"assistant"}`)
	require.Equal(t, http.StatusBadRequest, w.Code)

	var resp map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Email already registered", resp["error"])
}

func TestUserCreateUnknownTenant(t *testing.T) {
	r, _ := newTestRouter(t)

	w := do(r, "POST", "/users?tenant_id=nope", `{"email":"staff@example.com","password":"password123","role":"assistant"}`)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestUserFetchBulkNeedsTenant(t *testing.T) {
	r, d := newTestRouter(t)

	w := do(r, "GET", "/users", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)

	tenant, err := d.Store.CreateTenant(t.Context(), model.Tenant{Name: "Practice"})
	require.NoError(t, err)

	_, err = d.Store.CreateUser(t.Context(), model.User{TenantID: tenant.ID, Email: "a@example.com"})
	require.NoError(t, err)

	w = do(r, "GET", "/users?tenant_id="+tenant.ID, "")
	require.Equal(t, http.StatusOK, w.Code)

	var list []model.User
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))
	assert.Len(t, list, 1)
}

func TestUserFetch(t *testing.T) {
	r, d := newTestRouter(t)

	u, err := d.Store.CreateUser(t.Context(), model.User{Email: "a@example.com"})
	require.NoError(t, err)

	w := do(r, "GET", "/users/"+u.ID, "")
	require.Equal(t, http.StatusOK, w.Code)

	w = do(r, "GET", "/users/nope", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}
