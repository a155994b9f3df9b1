package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/expenseflow/expense-backend-go/internal/domain/auth"
	"github.com/expenseflow/expense-backend-go/internal/domain/user"
)

func identityCapture(captured *auth.Identity) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if identity, ok := auth.FromContext(r.Context()); ok {
			*captured = identity
		}
		w.WriteHeader(http.StatusOK)
	})
}

func TestMockAuth_NoCookieFallsBackToDefault(t *testing.T) {
	var captured auth.Identity
	handler := MockAuth(identityCapture(&captured))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest("GET", "/api/expenses", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, auth.DefaultUserID, captured.UserID)
	assert.Equal(t, user.RoleEmployee, captured.Role)
}

func TestMockAuth_CookieSelectsIdentity(t *testing.T) {
	var captured auth.Identity
	handler := MockAuth(identityCapture(&captured))

	r := httptest.NewRequest("GET", "/api/expenses", nil)
	r.AddCookie(&http.Cookie{Name: auth.CookieName, Value: "2"})
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, r)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, int64(2), captured.UserID)
	assert.Equal(t, user.RoleManager, captured.Role)
}

func TestMockAuth_UnknownUserRejected(t *testing.T) {
	handler := MockAuth(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler must not run for an unknown identity")
	}))

	r := httptest.NewRequest("GET", "/api/approvals", nil)
	r.AddCookie(&http.Cookie{Name: auth.CookieName, Value: "999"})
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, r)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestMockAuth_MalformedCookieRejected(t *testing.T) {
	handler := MockAuth(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler must not run for a malformed cookie")
	}))

	r := httptest.NewRequest("GET", "/api/approvals", nil)
	r.AddCookie(&http.Cookie{Name: auth.CookieName, Value: "abc"})
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, r)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRequireAuth(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	t.Run("without identity", func(t *testing.T) {
		rec := httptest.NewRecorder()
		RequireAuth(next).ServeHTTP(rec, httptest.NewRequest("GET", "/api/approvals", nil))
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("with identity", func(t *testing.T) {
		identity, ok := auth.Lookup(1)
		require.True(t, ok)
		r := httptest.NewRequest("GET", "/api/approvals", nil)
		r = r.WithContext(auth.WithIdentity(r.Context(), identity))
		rec := httptest.NewRecorder()
		RequireAuth(next).ServeHTTP(rec, r)
		assert.Equal(t, http.StatusOK, rec.Code)
	})
}
