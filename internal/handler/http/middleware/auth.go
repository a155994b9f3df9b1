package middleware

import (
	"net/http"
	"strconv"

	"github.com/expenseflow/expense-backend-go/internal/domain/auth"
	"github.com/expenseflow/expense-backend-go/internal/handler/http/response"
)

// MockAuth resolves the demo identity cookie and attaches the identity to the
// request context. No cookie falls back to the default demo employee; a cookie
// naming an unknown user is rejected outright.
func MockAuth(next http.Handler) http.Handler {
	hfn := func(w http.ResponseWriter, r *http.Request) {
		userID := auth.DefaultUserID
		if cookie, err := r.Cookie(auth.CookieName); err == nil {
			parsed, err := strconv.ParseInt(cookie.Value, 10, 64)
			if err != nil {
				response.HandleError(w, auth.ErrAuthenticationRequired)
				return
			}
			userID = parsed
		}

		identity, ok := auth.Lookup(userID)
		if !ok {
			response.HandleError(w, auth.ErrAuthenticationRequired)
			return
		}

		next.ServeHTTP(w, r.WithContext(auth.WithIdentity(r.Context(), identity)))
	}
	return http.HandlerFunc(hfn)
}

// RequireAuth guards routes that must not run without a resolved identity.
func RequireAuth(next http.Handler) http.Handler {
	hfn := func(w http.ResponseWriter, r *http.Request) {
		if _, ok := auth.FromContext(r.Context()); !ok {
			response.HandleError(w, auth.ErrAuthenticationRequired)
			return
		}
		next.ServeHTTP(w, r)
	}
	return http.HandlerFunc(hfn)
}
