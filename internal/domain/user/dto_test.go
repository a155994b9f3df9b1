package user

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/expenseflow/expense-backend-go/internal/pkg/validator"
)

func firstCode(t *testing.T, err error) string {
	t.Helper()
	var errs validator.ValidationErrors
	require.True(t, errors.As(err, &errs))
	return errs.First().Code
}

func validCreateRequest() CreateUserRequest {
	return CreateUserRequest{
		Name:         "Alice Employee",
		Email:        "alice@acme.com",
		PasswordHash: "$2a$10$abcdefghijklmnopqrstuv",
		Role:         RoleEmployee,
		CompanyID:    1,
	}
}

func TestCreateUserRequest_Validate(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		req := validCreateRequest()
		assert.NoError(t, req.Validate())
	})

	t.Run("name too short", func(t *testing.T) {
		req := validCreateRequest()
		req.Name = "A"
		assert.Equal(t, "INVALID_NAME", firstCode(t, req.Validate()))
	})

	t.Run("invalid email", func(t *testing.T) {
		req := validCreateRequest()
		req.Email = "not-an-email"
		assert.Equal(t, "INVALID_EMAIL", firstCode(t, req.Validate()))
	})

	t.Run("missing password hash", func(t *testing.T) {
		req := validCreateRequest()
		req.PasswordHash = ""
		assert.Equal(t, "MISSING_PASSWORD_HASH", firstCode(t, req.Validate()))
	})

	t.Run("invalid role", func(t *testing.T) {
		req := validCreateRequest()
		req.Role = "SUPERVISOR"
		assert.Equal(t, "INVALID_ROLE", firstCode(t, req.Validate()))
	})

	t.Run("missing company id", func(t *testing.T) {
		req := validCreateRequest()
		req.CompanyID = 0
		assert.Equal(t, "MISSING_COMPANY_ID", firstCode(t, req.Validate()))
	})
}

func TestCreateUserRequest_NewUser(t *testing.T) {
	req := validCreateRequest()
	req.Name = "  Alice Employee  "
	req.Email = "Alice@Acme.COM"

	u := req.NewUser()
	assert.Equal(t, "Alice Employee", u.Name)
	assert.Equal(t, "alice@acme.com", u.Email)
	assert.True(t, u.IsActive)

	inactive := false
	req.IsActive = &inactive
	assert.False(t, req.NewUser().IsActive)
}

func TestUpdateUserRequest_ManagerIDNull(t *testing.T) {
	// An explicit null clears the manager; an absent field leaves it alone.
	var withNull UpdateUserRequest
	require.NoError(t, json.Unmarshal([]byte(`{"managerId": null}`), &withNull))
	assert.True(t, withNull.ManagerID.Set)
	assert.Nil(t, withNull.ManagerID.Value)

	var absent UpdateUserRequest
	require.NoError(t, json.Unmarshal([]byte(`{"name": "Bob"}`), &absent))
	assert.False(t, absent.ManagerID.Set)

	var withValue UpdateUserRequest
	require.NoError(t, json.Unmarshal([]byte(`{"managerId": 2}`), &withValue))
	assert.True(t, withValue.ManagerID.Set)
	require.NotNil(t, withValue.ManagerID.Value)
	assert.Equal(t, int64(2), *withValue.ManagerID.Value)
}

func TestRole_CanReportTo(t *testing.T) {
	cases := []struct {
		role    Role
		manager Role
		want    bool
	}{
		{RoleEmployee, RoleManager, true},
		{RoleEmployee, RoleAdmin, true},
		{RoleEmployee, RoleEmployee, true},
		{RoleManager, RoleAdmin, true},
		{RoleManager, RoleManager, true},
		{RoleManager, RoleEmployee, false},
		{RoleAdmin, RoleManager, false},
		{RoleAdmin, RoleAdmin, true},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, c.role.CanReportTo(c.manager), "%s reporting to %s", c.role, c.manager)
	}
}
