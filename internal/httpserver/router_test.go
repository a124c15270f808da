package httpserver_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"megacart/internal/config"
	"megacart/internal/domain"
	"megacart/internal/httpserver"
	"megacart/internal/security"
	"megacart/internal/store"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()

	cfg := &config.Config{
		AppName:            "MegaCart API",
		Env:                "test",
		JWTSecret:          "test-secret",
		AccessTokenMinutes: 30,
		CORSOrigins:        []string{"http://localhost:3000"},
	}
	tokenSvc := security.NewTokenService(cfg.JWTSecret, time.Duration(cfg.AccessTokenMinutes)*time.Minute)
	hasher := security.NewPasswordHasher(4)

	router := httpserver.NewRouter(cfg, store.NewMemory(), tokenSvc, hasher)
	srv := httptest.NewServer(router)
	t.Cleanup(srv.Close)
	return srv
}

func decodeBody(t *testing.T, resp *http.Response, v any) {
	t.Helper()
	defer resp.Body.Close()
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(v))
}

func postJSON(t *testing.T, url string, body any) *http.Response {
	t.Helper()
	b, err := json.Marshal(body)
	assert.NoError(t, err)
	resp, err := http.Post(url, "application/json", bytes.NewReader(b))
	assert.NoError(t, err)
	return resp
}

func TestRootAndHealth(t *testing.T) {
	srv := newTestServer(t)

	resp, err := http.Get(srv.URL + "/")
	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	var banner map[string]string
	decodeBody(t, resp, &banner)
	assert.Equal(t, "success", banner["status"])

	resp, err = http.Get(srv.URL + "/health")
	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	var health map[string]string
	decodeBody(t, resp, &health)
	assert.Equal(t, "healthy", health["status"])
	assert.Equal(t, "memory", health["store"])
}

func TestProductEndpoints(t *testing.T) {
	srv := newTestServer(t)

	t.Run("ListAll", func(t *testing.T) {
		resp, err := http.Get(srv.URL + "/api/products/")
		assert.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		var products []domain.Product
		decodeBody(t, resp, &products)
		assert.Len(t, products, 15)
		assert.Equal(t, int64(1), products[0].ID)
	})

	t.Run("ListFiltered", func(t *testing.T) {
		resp, err := http.Get(srv.URL + "/api/products/?category=Sports")
		assert.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		var products []domain.Product
		decodeBody(t, resp, &products)
		assert.Len(t, products, 2)
	})

	t.Run("GetByID", func(t *testing.T) {
		resp, err := http.Get(srv.URL + "/api/products/4")
		assert.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		var p domain.Product
		decodeBody(t, resp, &p)
		assert.Equal(t, "MacBook Pro M3", p.Name)
	})

	t.Run("NotFound", func(t *testing.T) {
		resp, err := http.Get(srv.URL + "/api/products/999")
		assert.NoError(t, err)
		resp.Body.Close()
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})

	t.Run("InvalidID", func(t *testing.T) {
		resp, err := http.Get(srv.URL + "/api/products/abc")
		assert.NoError(t, err)
		resp.Body.Close()
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})

	t.Run("Categories", func(t *testing.T) {
		resp, err := http.Get(srv.URL + "/api/categories/")
		assert.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		var categories []string
		decodeBody(t, resp, &categories)
		assert.Len(t, categories, 6)
		assert.Contains(t, categories, "Electronics")
	})
}

func TestAuthFlow(t *testing.T) {
	srv := newTestServer(t)

	register := map[string]string{
		"name":     "Test User",
		"email":    "test@example.com",
		"password": "Password1!",
	}

	resp := postJSON(t, srv.URL+"/auth/register", register)
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	var created struct {
		AccessToken string      `json:"access_token"`
		TokenType   string      `json:"token_type"`
		User        domain.User `json:"user"`
	}
	decodeBody(t, resp, &created)
	assert.NotEmpty(t, created.AccessToken)
	assert.Equal(t, "bearer", created.TokenType)
	assert.Equal(t, "test@example.com", created.User.Email)
	assert.NotEmpty(t, created.User.ID)

	t.Run("DuplicateEmail", func(t *testing.T) {
		resp := postJSON(t, srv.URL+"/auth/register", register)
		resp.Body.Close()
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})

	t.Run("Login", func(t *testing.T) {
		resp := postJSON(t, srv.URL+"/auth/login", map[string]string{
			"email":    "test@example.com",
			"password": "Password1!",
		})
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		var token struct {
			AccessToken string `json:"access_token"`
		}
		decodeBody(t, resp, &token)
		assert.NotEmpty(t, token.AccessToken)
	})

	t.Run("LoginWrongPassword", func(t *testing.T) {
		resp := postJSON(t, srv.URL+"/auth/login", map[string]string{
			"email":    "test@example.com",
			"password": "wrong-password",
		})
		resp.Body.Close()
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	})

	t.Run("Me", func(t *testing.T) {
		req, err := http.NewRequest(http.MethodGet, srv.URL+"/auth/me", nil)
		assert.NoError(t, err)
		req.Header.Set("Authorization", "Bearer "+created.AccessToken)

		resp, err := http.DefaultClient.Do(req)
		assert.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		var me domain.User
		decodeBody(t, resp, &me)
		assert.Equal(t, "test@example.com", me.Email)
		assert.Equal(t, created.User.ID, me.ID)
	})

	t.Run("MeWithoutToken", func(t *testing.T) {
		resp, err := http.Get(srv.URL + "/auth/me")
		assert.NoError(t, err)
		resp.Body.Close()
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	})

	t.Run("MeWithBadToken", func(t *testing.T) {
		req, err := http.NewRequest(http.MethodGet, srv.URL+"/auth/me", nil)
		assert.NoError(t, err)
		req.Header.Set("Authorization", "Bearer garbage")

		resp, err := http.DefaultClient.Do(req)
		assert.NoError(t, err)
		resp.Body.Close()
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	})
}
