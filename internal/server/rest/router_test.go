package rest

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/dmitrijs2005/passvault/internal/logging"
	"github.com/dmitrijs2005/passvault/internal/server/auth"
	"github.com/dmitrijs2005/passvault/internal/server/metrics"
	"github.com/dmitrijs2005/passvault/internal/server/models"
	"github.com/dmitrijs2005/passvault/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/passvault/internal/server/services"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// --- helpers ---

type apiResponse struct {
	Success      bool         `json:"success"`
	Message      string       `json:"message"`
	SessionToken string       `json:"sessionToken"`
	Username     string       `json:"username"`
	Passwords    []recordJSON `json:"passwords"`
	Password     *recordJSON  `json:"password"`
	Status       string       `json:"status"`
}

type client struct {
	t       *testing.T
	handler http.Handler
	token   string
	user    string
}

func newTestRouter(t *testing.T) (http.Handler, *metrics.Metrics) {
	t.Helper()
	m := metrics.New()
	rm := repomanager.NewInMemoryRepositoryManager(auth.OpaqueTokenGenerator{}, 0)
	svc := services.NewVaultService(rm, auth.SHA256Hasher{}, logging.Nop{}, m)
	return NewRouter(svc, logging.Nop{}, RouterOptions{Observer: m, Metrics: m.Handler()}), m
}

func (c *client) do(method, path string, body any) (int, apiResponse) {
	c.t.Helper()

	var buf bytes.Buffer
	if s, ok := body.(string); ok {
		buf.WriteString(s)
	} else if body != nil {
		require.NoError(c.t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", c.token)
	}
	if c.user != "" {
		req.Header.Set("X-Username", c.user)
	}

	rec := httptest.NewRecorder()
	c.handler.ServeHTTP(rec, req)

	var out apiResponse
	if strings.HasPrefix(rec.Header().Get("Content-Type"), "application/json") {
		require.NoError(c.t, json.Unmarshal(rec.Body.Bytes(), &out))
	}
	return rec.Code, out
}

// --- tests ---

func TestHealth(t *testing.T) {
	h, _ := newTestRouter(t)
	c := &client{t: t, handler: h}

	code, out := c.do(http.MethodGet, "/api/health", nil)
	assert.Equal(t, http.StatusOK, code)
	assert.True(t, out.Success)
	assert.Equal(t, "ok", out.Status)
}

func TestUnknownRoute(t *testing.T) {
	h, _ := newTestRouter(t)
	c := &client{t: t, handler: h}

	code, out := c.do(http.MethodGet, "/api/nope", nil)
	assert.Equal(t, http.StatusNotFound, code)
	assert.False(t, out.Success)
	assert.Equal(t, "Not found", out.Message)
}

func TestRegisterAndLogin(t *testing.T) {
	h, _ := newTestRouter(t)
	c := &client{t: t, handler: h}

	code, out := c.do(http.MethodPost, "/api/register", credentialsRequest{"alice", "Secr3t!"})
	require.Equal(t, http.StatusOK, code)
	assert.True(t, out.Success)
	assert.Equal(t, "alice", out.Username)
	assert.Len(t, out.SessionToken, 64)

	code, out = c.do(http.MethodPost, "/api/register", credentialsRequest{"alice", "other"})
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, "Username already exists", out.Message)

	code, out = c.do(http.MethodPost, "/api/login", credentialsRequest{"alice", "wrong"})
	assert.Equal(t, http.StatusUnauthorized, code)
	assert.Equal(t, "Invalid credentials", out.Message)

	code, out = c.do(http.MethodPost, "/api/login", credentialsRequest{"nobody", "Secr3t!"})
	assert.Equal(t, http.StatusUnauthorized, code)
	assert.Equal(t, "Invalid credentials", out.Message)

	code, out = c.do(http.MethodPost, "/api/login", credentialsRequest{"alice", "Secr3t!"})
	assert.Equal(t, http.StatusOK, code)
	assert.True(t, out.Success)
}

func TestRegister_BadInput(t *testing.T) {
	h, _ := newTestRouter(t)
	c := &client{t: t, handler: h}

	code, out := c.do(http.MethodPost, "/api/register", "{not json")
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, "Invalid JSON", out.Message)

	code, out = c.do(http.MethodPost, "/api/register", "")
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, "username is required", out.Message)

	code, _ = c.do(http.MethodPost, "/api/register", credentialsRequest{"alice", ""})
	assert.Equal(t, http.StatusBadRequest, code)
}

func TestProtectedRoutes_RequireSession(t *testing.T) {
	h, _ := newTestRouter(t)
	c := &client{t: t, handler: h}
	c.do(http.MethodPost, "/api/register", credentialsRequest{"alice", "pw"})

	bad := []*client{
		{t: t, handler: h},
		{t: t, handler: h, token: "deadbeef", user: "alice"},
	}
	for _, bc := range bad {
		code, out := bc.do(http.MethodGet, "/api/passwords", nil)
		assert.Equal(t, http.StatusUnauthorized, code)
		assert.Equal(t, "Unauthorized", out.Message)

		code, _ = bc.do(http.MethodPost, "/api/passwords", addRecordRequest{Site: "s", Password: "p"})
		assert.Equal(t, http.StatusUnauthorized, code)
		code, _ = bc.do(http.MethodPut, "/api/passwords/x", map[string]string{"notes": "n"})
		assert.Equal(t, http.StatusUnauthorized, code)
		code, _ = bc.do(http.MethodDelete, "/api/passwords/x", nil)
		assert.Equal(t, http.StatusUnauthorized, code)
	}
}

func TestBearerPrefixAccepted(t *testing.T) {
	h, _ := newTestRouter(t)
	c := &client{t: t, handler: h}
	_, reg := c.do(http.MethodPost, "/api/register", credentialsRequest{"alice", "pw"})

	c.token, c.user = "Bearer "+reg.SessionToken, "alice"
	code, _ := c.do(http.MethodGet, "/api/passwords", nil)
	assert.Equal(t, http.StatusOK, code)
}

func TestAddPassword_Validation(t *testing.T) {
	h, _ := newTestRouter(t)
	c := &client{t: t, handler: h}
	_, reg := c.do(http.MethodPost, "/api/register", credentialsRequest{"alice", "pw"})
	c.token, c.user = reg.SessionToken, "alice"

	code, out := c.do(http.MethodPost, "/api/passwords", addRecordRequest{Password: "p"})
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, "site is required", out.Message)

	code, _ = c.do(http.MethodPost, "/api/passwords", addRecordRequest{Site: "Gmail"})
	assert.Equal(t, http.StatusBadRequest, code)
}

func TestSearchBySite(t *testing.T) {
	h, _ := newTestRouter(t)
	c := &client{t: t, handler: h}
	_, reg := c.do(http.MethodPost, "/api/register", credentialsRequest{"alice", "pw"})
	c.token, c.user = reg.SessionToken, "alice"

	c.do(http.MethodPost, "/api/passwords", addRecordRequest{Site: "GitHub", Password: "1"})
	c.do(http.MethodPost, "/api/passwords", addRecordRequest{Site: "Gmail", Password: "2"})

	code, out := c.do(http.MethodGet, "/api/passwords?site=github", nil)
	require.Equal(t, http.StatusOK, code)
	require.Len(t, out.Passwords, 1)
	assert.Equal(t, "GitHub", out.Passwords[0].Site)

	code, _ = c.do(http.MethodGet, "/api/passwords?site=", nil)
	assert.Equal(t, http.StatusBadRequest, code)
}

func TestLogout(t *testing.T) {
	h, _ := newTestRouter(t)
	c := &client{t: t, handler: h}
	_, reg := c.do(http.MethodPost, "/api/register", credentialsRequest{"alice", "pw"})
	c.token, c.user = reg.SessionToken, "alice"

	code, _ := c.do(http.MethodPost, "/api/logout", nil)
	require.Equal(t, http.StatusOK, code)

	code, _ = c.do(http.MethodGet, "/api/passwords", nil)
	assert.Equal(t, http.StatusUnauthorized, code)
}

func TestCORSPreflight(t *testing.T) {
	h, _ := newTestRouter(t)

	req := httptest.NewRequest(http.MethodOptions, "/api/passwords", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	req.Header.Set("Access-Control-Request-Headers", "X-Username")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Less(t, rec.Code, 300)
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestMetricsEndpoint(t *testing.T) {
	h, m := newTestRouter(t)
	c := &client{t: t, handler: h}
	c.do(http.MethodPost, "/api/register", credentialsRequest{"alice", "pw"})
	c.do(http.MethodPost, "/api/register", credentialsRequest{"alice", "pw"})

	assert.Equal(t, 1.0, testutil.ToFloat64(m.Operations().WithLabelValues("register", metrics.OutcomeOK)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Operations().WithLabelValues("register", metrics.OutcomeExists)))

	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `route="/api/register"`)
}

func TestEndToEnd_Alice(t *testing.T) {
	h, _ := newTestRouter(t)
	c := &client{t: t, handler: h}

	code, reg := c.do(http.MethodPost, "/api/register", credentialsRequest{"alice", "Secr3t!"})
	require.Equal(t, http.StatusOK, code)
	t1 := reg.SessionToken

	code, login := c.do(http.MethodPost, "/api/login", credentialsRequest{"alice", "Secr3t!"})
	require.Equal(t, http.StatusOK, code)
	t2 := login.SessionToken
	require.NotEqual(t, t1, t2)

	c.user = "alice"
	c.token = t1
	code, _ = c.do(http.MethodGet, "/api/passwords", nil)
	require.Equal(t, http.StatusUnauthorized, code)

	c.token = t2
	code, added := c.do(http.MethodPost, "/api/passwords", addRecordRequest{Site: "Gmail", Password: "pw1"})
	require.Equal(t, http.StatusOK, code)
	require.NotNil(t, added.Password)
	r1 := added.Password.ID
	require.NotEmpty(t, r1)
	assert.False(t, added.Password.CreatedAt.IsZero())

	code, list := c.do(http.MethodGet, "/api/passwords", nil)
	require.Equal(t, http.StatusOK, code)
	require.Len(t, list.Passwords, 1)
	assert.Equal(t, r1, list.Passwords[0].ID)

	code, upd := c.do(http.MethodPut, "/api/passwords/"+r1, map[string]string{"password": "pw2"})
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, "pw2", upd.Password.Password)
	assert.Equal(t, "Gmail", upd.Password.Site)

	code, out := c.do(http.MethodDelete, "/api/passwords/"+r1, nil)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, "Password deleted successfully", out.Message)

	code, out = c.do(http.MethodDelete, "/api/passwords/"+r1, nil)
	assert.Equal(t, http.StatusNotFound, code)
	assert.Equal(t, "Password not found", out.Message)

	code, list = c.do(http.MethodGet, "/api/passwords", nil)
	require.Equal(t, http.StatusOK, code)
	assert.NotNil(t, list.Passwords)
	assert.Empty(t, list.Passwords)
}

// panicking service exercises the recovery middleware
type panicService struct{ VaultService }

func (panicService) ListPasswords(context.Context, string, string) ([]models.Record, error) {
	panic("boom")
}

func TestRecovery(t *testing.T) {
	h := NewRouter(panicService{}, logging.Nop{}, RouterOptions{})
	c := &client{t: t, handler: h, token: "t", user: "u"}

	code, out := c.do(http.MethodGet, "/api/passwords", nil)
	assert.Equal(t, http.StatusInternalServerError, code)
	assert.False(t, out.Success)
}
