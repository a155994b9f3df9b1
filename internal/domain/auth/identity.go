// Package auth carries the mocked request identity. There is no real
// credential system: a plaintext user-id cookie selects one of four demo
// identities, and handlers receive the resolved Identity through the request
// context instead of reading the cookie themselves.
package auth

import (
	"context"

	"github.com/expenseflow/expense-backend-go/internal/domain/user"
)

// CookieName is the demo cookie holding a numeric user id.
const CookieName = "mock_user_id"

type Identity struct {
	UserID    int64
	Name      string
	Email     string
	Role      user.Role
	CompanyID int64
	ManagerID *int64
}

// DefaultUserID is the identity assumed when no cookie is present.
const DefaultUserID int64 = 4

var demoManagerID int64 = 2

var demoIdentities = map[int64]Identity{
	1: {UserID: 1, Name: "John Admin", Email: "admin@acme.com", Role: user.RoleAdmin, CompanyID: 1},
	2: {UserID: 2, Name: "Sarah Manager", Email: "manager1@acme.com", Role: user.RoleManager, CompanyID: 1},
	3: {UserID: 3, Name: "Mike Manager", Email: "manager2@acme.com", Role: user.RoleManager, CompanyID: 1},
	4: {UserID: 4, Name: "Alice Employee", Email: "employee1@acme.com", Role: user.RoleEmployee, CompanyID: 1, ManagerID: &demoManagerID},
}

// Lookup resolves a demo identity by user id.
func Lookup(userID int64) (Identity, bool) {
	identity, ok := demoIdentities[userID]
	return identity, ok
}

type contextKey struct{}

// WithIdentity returns a context carrying the resolved identity.
func WithIdentity(ctx context.Context, identity Identity) context.Context {
	return context.WithValue(ctx, contextKey{}, identity)
}

// FromContext returns the identity attached by the auth middleware.
func FromContext(ctx context.Context) (Identity, bool) {
	identity, ok := ctx.Value(contextKey{}).(Identity)
	return identity, ok
}
