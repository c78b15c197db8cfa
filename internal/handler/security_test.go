package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/harvesthub/storefront/internal/domain/auth"
)

type mockAPIKeys struct {
	byHash map[string]*auth.APIKeyInfo
}

func (m *mockAPIKeys) FindByHash(_ context.Context, hash string) (*auth.APIKeyInfo, error) {
	info, ok := m.byHash[hash]
	if !ok {
		return nil, auth.ErrKeyNotFound
	}
	return info, nil
}

func newGuardServer(t *testing.T, keys ...*auth.APIKeyInfo) *httptest.Server {
	t.Helper()

	byHash := make(map[string]*auth.APIKeyInfo, len(keys))
	for _, k := range keys {
		byHash[k.KeyHash] = k
	}
	guard := NewAPIKeyGuard(&mockAPIKeys{byHash: byHash}, "pepper")

	ok := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	srv := httptest.NewServer(guard.Wrap(ok))
	t.Cleanup(srv.Close)
	return srv
}

func get(t *testing.T, url, apiKey string) *http.Response {
	t.Helper()
	req, err := http.NewRequest(http.MethodGet, url, nil)
	require.NoError(t, err)
	if apiKey != "" {
		req.Header.Set(APIKeyHeader, apiKey)
	}
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	t.Cleanup(func() { _ = resp.Body.Close() })
	return resp
}

func TestAPIKeyGuard_MissingKey(t *testing.T) {
	srv := newGuardServer(t)

	resp := get(t, srv.URL, "")
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestAPIKeyGuard_UnknownKey(t *testing.T) {
	srv := newGuardServer(t)

	resp := get(t, srv.URL, "not-a-key")
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestAPIKeyGuard_ValidKey(t *testing.T) {
	srv := newGuardServer(t, &auth.APIKeyInfo{
		ID:      "k1",
		KeyHash: auth.HashKey("pepper", "secret"),
		Name:    "ops",
		Scopes:  []string{auth.ScopeAdmin},
	})

	resp := get(t, srv.URL, "secret")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestAPIKeyGuard_MissingScope(t *testing.T) {
	srv := newGuardServer(t, &auth.APIKeyInfo{
		ID:      "k1",
		KeyHash: auth.HashKey("pepper", "secret"),
		Name:    "reporting",
		Scopes:  []string{"read_reports"},
	})

	resp := get(t, srv.URL, "secret")
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}

func TestHashKey_Deterministic(t *testing.T) {
	assert.Equal(t, auth.HashKey("pepper", "secret"), auth.HashKey("pepper", "secret"))
	assert.NotEqual(t, auth.HashKey("pepper", "secret"), auth.HashKey("other", "secret"))
	assert.NotEqual(t, auth.HashKey("pepper", "secret"), auth.HashKey("pepper", "other"))
	assert.Len(t, auth.HashKey("pepper", "secret"), 64)
}
