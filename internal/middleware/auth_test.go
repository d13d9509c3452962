package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vaultpass/vaultpass-web/internal/apiclient"
	"github.com/vaultpass/vaultpass-web/internal/crypto"
	"github.com/vaultpass/vaultpass-web/internal/session"
)

const testSecret = "test-secret"

func newProtected(t *testing.T) (http.Handler, *session.Store) {
	t.Helper()
	store := session.NewStore(apiclient.NewLogoutBus(), "http://upstream.test/api", time.Hour)
	t.Cleanup(store.Close)

	h := SessionAuth(testSecret, store)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sess, ok := SessionFromContext(r.Context())
		if !ok {
			w.WriteHeader(http.StatusTeapot)
			return
		}
		w.Write([]byte(sess.ID))
	}))
	return h, store
}

func TestSessionAuthCookie(t *testing.T) {
	h, store := newProtected(t)
	sess, err := store.Create()
	require.NoError(t, err)
	token, err := crypto.GenerateToken(sess.ID, testSecret, time.Hour)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/items", nil)
	req.AddCookie(&http.Cookie{Name: SessionCookie, Value: token})
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, sess.ID, rec.Body.String())
}

func TestSessionAuthBearer(t *testing.T) {
	h, store := newProtected(t)
	sess, err := store.Create()
	require.NoError(t, err)
	token, err := crypto.GenerateToken(sess.ID, testSecret, time.Hour)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/items", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestSessionAuthRejects(t *testing.T) {
	h, store := newProtected(t)
	gone, err := store.Create()
	require.NoError(t, err)
	goneToken, err := crypto.GenerateToken(gone.ID, testSecret, time.Hour)
	require.NoError(t, err)
	store.Delete(gone.ID)

	tests := []struct {
		name  string
		setup func(r *http.Request)
	}{
		{"no credentials", func(r *http.Request) {}},
		{"malformed header", func(r *http.Request) { r.Header.Set("Authorization", "Token abc") }},
		{"garbage token", func(r *http.Request) { r.AddCookie(&http.Cookie{Name: SessionCookie, Value: "garbage"}) }},
		{"ended session", func(r *http.Request) { r.AddCookie(&http.Cookie{Name: SessionCookie, Value: goneToken}) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/api/v1/items", nil)
			tt.setup(req)
			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, req)

			assert.Equal(t, http.StatusUnauthorized, rec.Code)
			assert.Contains(t, rec.Header().Get("Content-Type"), "application/json")
		})
	}
}
