package handler

import (
	"crypto/subtle"
	"encoding/hex"
	"net/http"

	"github.com/harvesthub/storefront/internal/domain/auth"
)

// APIKeyHeader carries the admin API key.
const APIKeyHeader = "api_key"

// APIKeyGuard authenticates admin requests via HMAC-SHA256 hashed API keys:
// the presented key is hashed under the server pepper, looked up, and the
// stored hash is compared in constant time.
type APIKeyGuard struct {
	apikeys auth.Repository
	pepper  string
}

// NewAPIKeyGuard creates an APIKeyGuard with the given key repository and
// HMAC pepper.
func NewAPIKeyGuard(apikeys auth.Repository, pepper string) *APIKeyGuard {
	return &APIKeyGuard{apikeys: apikeys, pepper: pepper}
}

// Wrap returns next behind the API-key check. Requests without a valid key
// carrying the admin scope get 401.
func (g *APIKeyGuard) Wrap(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rawKey := r.Header.Get(APIKeyHeader)
		if rawKey == "" {
			writeError(w, r, http.StatusUnauthorized, "missing api key")
			return
		}

		hash := auth.HashKey(g.pepper, rawKey)
		info, err := g.apikeys.FindByHash(r.Context(), hash)
		if err != nil {
			writeError(w, r, http.StatusUnauthorized, "unauthorized")
			return
		}

		// Constant-time comparison guards against timing side-channels even
		// though the lookup already succeeded.
		computed, err1 := hex.DecodeString(hash)
		stored, err2 := hex.DecodeString(info.KeyHash)
		if err1 != nil || err2 != nil || subtle.ConstantTimeCompare(computed, stored) != 1 {
			writeError(w, r, http.StatusUnauthorized, "unauthorized")
			return
		}

		if !info.HasScope(auth.ScopeAdmin) {
			writeError(w, r, http.StatusForbidden, "insufficient scope")
			return
		}

		next.ServeHTTP(w, r)
	})
}
