package auth_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"therapyhq/practice-api/app/auth"
	"therapyhq/practice-api/internal"
	"therapyhq/practice-api/pkg/middleware"
	"therapyhq/practice-api/pkg/security"
	"therapyhq/practice-api/store/memstore"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeMailer records outgoing mail so tests can grab verification tokens
// without an SMTP server.
type fakeMailer struct {
	mu       sync.Mutex
	tokens   map[string]string // email -> last verification token
	welcomed []string
	fail     bool
}

func newFakeMailer() *fakeMailer {
	return &fakeMailer{tokens: map[string]string{}}
}

func (m *fakeMailer) SendVerification(email, token, _ string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.fail {
		return false
	}

	m.tokens[email] = token
	return true
}

func (m *fakeMailer) SendWelcome(email, _ string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.fail {
		return false
	}

	m.welcomed = append(m.welcomed, email)
	return true
}

func (m *fakeMailer) lastToken(email string) string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.tokens[email]
}

func newTestRouter(t *testing.T) (*gin.Engine, *internal.Deps, *fakeMailer) {
	t.Helper()

	gin.SetMode(gin.TestMode)
	viper.Set("jwt.secret", "test-secret")

	mailer := newFakeMailer()
	d := &internal.Deps{
		Store:  memstore.New(nil),
		Argon:  security.New(),
		Mailer: mailer,
	}

	r := gin.New()
	r.Use(middleware.NewRequestIDMiddleware())

	jwt := middleware.NewAuthMiddleware(d.Store)

	r.POST("/auth/register", func(c *gin.Context) { auth.Register(c, d) })
	r.POST("/auth/login", func(c *gin.Context) { auth.Login(c, d) })
	r.GET("/auth/verify", func(c *gin.Context) { auth.Verify(c, d) })
	r.POST("/auth/resend-verification", func(c *gin.Context) { auth.ResendVerification(c, d) })
	r.POST("/auth/logout", auth.Logout)
	r.GET("/auth/me", jwt, func(c *gin.Context) { auth.Me(c, d) })

	return r, d, mailer
}

func doJSON(r *gin.Engine, method, path, body string, header http.Header) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	for k, vs := range header {
		for _, v := range vs {
			req.Header.Add(k, v)
		}
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func parseBody(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()

	var out map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

const registerJSON = `{"email":"owner@example.com","password":"password123","tenant_name":"Sunrise Practice","role":"owner"}`

func TestRegisterVerifyLoginFlow(t *testing.T) {
	r, _, mailer := newTestRouter(t)

	// register
	w := doJSON(r, "POST", "/auth/register", registerJSON, nil)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	body := parseBody(t, w)
	assert.Equal(t, "owner@example.com", body["email"])
	assert.Equal(t, "owner", body["role"])
	assert.NotEmpty(t, body["user_id"])
	assert.NotEmpty(t, body["tenant_id"])
	assert.NotContains(t, w.Body.String(), "password")

	token := mailer.lastToken("owner@example.com")
	require.NotEmpty(t, token)

	// login before verification is refused with the distinct message
	w = doJSON(r, "POST", "/auth/login", `{"email":"owner@example.com","password":"password123"}`, nil)
	require.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "Email not verified. Please check your email and verify your account.", parseBody(t, w)["error"])

	// verify
	w = doJSON(r, "GET", "/auth/verify?token="+token, "", nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	// a consumed token can't be replayed
	w = doJSON(r, "GET", "/auth/verify?token="+token, "", nil)
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Invalid or expired verification token", parseBody(t, w)["error"])

	// login now succeeds and sets the session cookie
	w = doJSON(r, "POST", "/auth/login", `{"email":"owner@example.com","password":"password123"}`, nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var cookie string
	for _, c := range w.Result().Cookies() {
		if c.Name == middleware.SessionCookie {
			cookie = c.Value

			assert.True(t, c.HttpOnly)
			assert.Equal(t, int(security.LoginSessionTTL.Seconds()), c.MaxAge)
		}
	}
	require.NotEmpty(t, cookie)

	// cookie works on /auth/me
	req := httptest.NewRequest("GET", "/auth/me", nil)
	req.AddCookie(&http.Cookie{Name: middleware.SessionCookie, Value: cookie})

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	me := parseBody(t, rec)
	assert.Equal(t, "owner@example.com", me["email"])
	assert.Equal(t, true, me["is_verified"])
	assert.NotContains(t, rec.Body.String(), "password_hash")

	// bearer header works too
	h := http.Header{}
	h.Set("Authorization", "Bearer "+cookie)
	w = doJSON(r, "GET", "/auth/me", "", h)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRegisterValidation(t *testing.T) {
	r, _, _ := newTestRouter(t)

	cases := []struct {
		name string
		body string
		want string
	}{
		{"bad email", `{"email":"not-an-email","password":"password123","tenant_name":"X","role":"owner"}`, "invalid email address provided"},
		{"short password", `{"email":"a@example.com","password":"short","tenant_name":"X","role":"owner"}`, "password must be at least 8 characters long"},
		{"bad role", `{"email":"a@example.com","password":"password123","tenant_name":"X","role":"superadmin"}`, "invalid role provided"},
		{"no tenant name", `{"email":"a@example.com","password":"password123","role":"owner"}`, "Organization name must be between 1 and 120 characters"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := doJSON(r, "POST", "/auth/register", tc.body, nil)
			require.Equal(t, http.StatusBadRequest, w.Code)
			assert.Equal(t, tc.want, parseBody(t, w)["error"])
		})
	}
}

func TestRegisterDuplicateEmail(t *testing.T) {
	r, _, _ := newTestRouter(t)

	w := doJSON(r, "POST", "/auth/register", registerJSON, nil)
	require.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(r, "POST", "/auth/register", registerJSON, nil)
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Email already registered", parseBody(t, w)["error"])
}

func TestRegisterCreatesDistinctTenants(t *testing.T) {
	r, _, _ := newTestRouter(t)

	w := doJSON(r, "POST", "/auth/register", registerJSON, nil)
	require.Equal(t, http.StatusCreated, w.Code)
	first := parseBody(t, w)["tenant_id"]

	w = doJSON(r, "POST", "/auth/register", `{"email":"second@example.com","password":"password123","tenant_name":"Sunrise Practice","role":"owner"}`, nil)
	require.Equal(t, http.StatusCreated, w.Code)
	second := parseBody(t, w)["tenant_id"]

	// same display name, still a fresh tenant
	assert.NotEqual(t, first, second)
}

func TestRegisterSurvivesMailFailure(t *testing.T) {
	r, _, mailer := newTestRouter(t)
	mailer.fail = true

	w := doJSON(r, "POST", "/auth/register", registerJSON, nil)
	assert.Equal(t, http.StatusCreated, w.Code, w.Body.String())
}

func TestLoginBadCredentials(t *testing.T) {
	r, _, mailer := newTestRouter(t)

	w := doJSON(r, "POST", "/auth/register", registerJSON, nil)
	require.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(r, "GET", "/auth/verify?token="+mailer.lastToken("owner@example.com"), "", nil)
	require.Equal(t, http.StatusOK, w.Code)

	// unknown email and wrong password read identically
	w = doJSON(r, "POST", "/auth/login", `{"email":"ghost@example.com","password":"password123"}`, nil)
	require.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "Incorrect email or password", parseBody(t, w)["error"])

	w = doJSON(r, "POST", "/auth/login", `{"email":"owner@example.com","password":"wrong-password"}`, nil)
	require.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "Incorrect email or password", parseBody(t, w)["error"])

	w = doJSON(r, "POST", "/auth/login", `{"email":"","password":""}`, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestResendVerification(t *testing.T) {
	r, _, mailer := newTestRouter(t)

	w := doJSON(r, "POST", "/auth/register", registerJSON, nil)
	require.Equal(t, http.StatusCreated, w.Code)

	original := mailer.lastToken("owner@example.com")

	// unknown user
	w = doJSON(r, "POST", "/auth/resend-verification", `{"email":"ghost@example.com"}`, nil)
	require.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "User not found", parseBody(t, w)["error"])

	// resend rotates the token
	w = doJSON(r, "POST", "/auth/resend-verification", `{"email":"owner@example.com"}`, nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, "owner@example.com", parseBody(t, w)["email"])

	rotated := mailer.lastToken("owner@example.com")
	require.NotEmpty(t, rotated)
	assert.NotEqual(t, original, rotated)

	// the superseded token no longer verifies
	w = doJSON(r, "GET", "/auth/verify?token="+original, "", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(r, "GET", "/auth/verify?token="+rotated, "", nil)
	require.Equal(t, http.StatusOK, w.Code)

	// once verified, resending is refused
	w = doJSON(r, "POST", "/auth/resend-verification", `{"email":"owner@example.com"}`, nil)
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Email is already verified", parseBody(t, w)["error"])
}

func TestResendMailFailureRotatesAnyway(t *testing.T) {
	r, d, mailer := newTestRouter(t)

	w := doJSON(r, "POST", "/auth/register", registerJSON, nil)
	require.Equal(t, http.StatusCreated, w.Code)

	original := mailer.lastToken("owner@example.com")
	mailer.fail = true

	w = doJSON(r, "POST", "/auth/resend-verification", `{"email":"owner@example.com"}`, nil)
	require.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "Failed to send verification email", parseBody(t, w)["error"])

	// the rotation was persisted before the send, so the original token is dead
	_, err := d.Store.GetUserByVerificationToken(t.Context(), original)
	assert.Error(t, err)
}

func TestAuthMiddlewareRejections(t *testing.T) {
	r, _, mailer := newTestRouter(t)

	w := doJSON(r, "POST", "/auth/register", registerJSON, nil)
	require.Equal(t, http.StatusCreated, w.Code)
	userID := parseBody(t, w)["user_id"].(string)

	w = doJSON(r, "GET", "/auth/verify?token="+mailer.lastToken("owner@example.com"), "", nil)
	require.Equal(t, http.StatusOK, w.Code)

	expired, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": userID,
		"iat": time.Now().Add(-time.Hour).Unix(),
		"exp": time.Now().Add(-time.Minute).Unix(),
	}).SignedString([]byte(viper.GetString("jwt.secret")))
	require.NoError(t, err)

	ghost, err := security.IssueSessionToken("no-such-user", security.DefaultSessionTTL)
	require.NoError(t, err)

	cases := []struct {
		name  string
		token string
	}{
		{"no token", ""},
		{"garbage token", "Bearer not.a.jwt"},
		{"expired token", "Bearer " + expired},
		{"deleted subject", "Bearer " + ghost},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			h := http.Header{}
			if tc.token != "" {
				h.Set("Authorization", tc.token)
			}

			w := doJSON(r, "GET", "/auth/me", "", h)
			require.Equal(t, http.StatusUnauthorized, w.Code)
			assert.Equal(t, "Could not validate credentials", parseBody(t, w)["error"])
		})
	}
}

func TestBearerHeaderBeatsCookie(t *testing.T) {
	r, _, mailer := newTestRouter(t)

	w := doJSON(r, "POST", "/auth/register", registerJSON, nil)
	require.Equal(t, http.StatusCreated, w.Code)
	userID := parseBody(t, w)["user_id"].(string)

	w = doJSON(r, "GET", "/auth/verify?token="+mailer.lastToken("owner@example.com"), "", nil)
	require.Equal(t, http.StatusOK, w.Code)

	valid, err := security.IssueSessionToken(userID, security.DefaultSessionTTL)
	require.NoError(t, err)

	// a garbage header must not fall back to the valid cookie
	req := httptest.NewRequest("GET", "/auth/me", nil)
	req.Header.Set("Authorization", "Bearer garbage")
	req.AddCookie(&http.Cookie{Name: middleware.SessionCookie, Value: valid})

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestLogoutClearsCookie(t *testing.T) {
	r, _, _ := newTestRouter(t)

	w := doJSON(r, "POST", "/auth/logout", "", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var found bool
	for _, c := range w.Result().Cookies() {
		if c.Name == middleware.SessionCookie {
			found = true
			assert.Empty(t, c.Value)
			assert.Equal(t, -1, c.MaxAge)
		}
	}
	assert.True(t, found)
}
