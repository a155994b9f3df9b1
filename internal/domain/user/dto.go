package user

import (
	"strings"
	"time"

	"github.com/expenseflow/expense-backend-go/internal/pkg/jsonutil"
	"github.com/expenseflow/expense-backend-go/internal/pkg/validator"
)

type UserResponse struct {
	ID        int64     `json:"id"`
	CompanyID int64     `json:"companyId"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Role      Role      `json:"role"`
	ManagerID *int64    `json:"managerId"`
	IsActive  bool      `json:"isActive"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func ToResponse(u User) UserResponse {
	return UserResponse{
		ID:        u.ID,
		CompanyID: u.CompanyID,
		Name:      u.Name,
		Email:     u.Email,
		Role:      u.Role,
		ManagerID: u.ManagerID,
		IsActive:  u.IsActive,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}

func ToResponseList(users []User) []UserResponse {
	out := make([]UserResponse, 0, len(users))
	for _, u := range users {
		out = append(out, ToResponse(u))
	}
	return out
}

type CreateUserRequest struct {
	Name         string `json:"name"`
	Email        string `json:"email"`
	PasswordHash string `json:"passwordHash"`
	Role         Role   `json:"role"`
	CompanyID    int64  `json:"companyId"`
	ManagerID    *int64 `json:"managerId,omitempty"`
	IsActive     *bool  `json:"isActive,omitempty"`
}

func (r *CreateUserRequest) Validate() error {
	var errs validator.ValidationErrors

	if len(strings.TrimSpace(r.Name)) < 2 {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Code:    "INVALID_NAME",
			Message: "Name is required and must be at least 2 characters",
		})
	}
	if !validator.IsValidEmail(r.Email) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Code:    "INVALID_EMAIL",
			Message: "Valid email is required",
		})
	}
	if r.PasswordHash == "" {
		errs = append(errs, validator.ValidationError{
			Field:   "passwordHash",
			Code:    "MISSING_PASSWORD_HASH",
			Message: "Password hash is required",
		})
	}
	if !r.Role.IsValid() {
		errs = append(errs, validator.ValidationError{
			Field:   "role",
			Code:    "INVALID_ROLE",
			Message: "Role must be ADMIN, MANAGER, or EMPLOYEE",
		})
	}
	if r.CompanyID == 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "companyId",
			Code:    "MISSING_COMPANY_ID",
			Message: "Company ID is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// NewUser builds the entity to persist: trimmed name, lowercased email,
// is_active defaulting to true.
func (r *CreateUserRequest) NewUser() User {
	isActive := true
	if r.IsActive != nil {
		isActive = *r.IsActive
	}
	return User{
		CompanyID:    r.CompanyID,
		Name:         strings.TrimSpace(r.Name),
		Email:        strings.ToLower(r.Email),
		PasswordHash: r.PasswordHash,
		Role:         r.Role,
		ManagerID:    r.ManagerID,
		IsActive:     isActive,
	}
}

// UpdateUserRequest distinguishes absent fields from explicit nulls: ManagerID
// decodes through jsonutil.Nullable so `"managerId": null` clears the manager.
type UpdateUserRequest struct {
	Name      *string                  `json:"name,omitempty"`
	Email     *string                  `json:"email,omitempty"`
	Role      *Role                    `json:"role,omitempty"`
	CompanyID *int64                   `json:"companyId,omitempty"`
	ManagerID jsonutil.Nullable[int64] `json:"managerId"`
	IsActive  *bool                    `json:"isActive,omitempty"`
}

func (r *UpdateUserRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Name != nil && len(strings.TrimSpace(*r.Name)) < 2 {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Code:    "INVALID_NAME",
			Message: "Name must be at least 2 characters",
		})
	}
	if r.Email != nil && !validator.IsValidEmail(*r.Email) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Code:    "INVALID_EMAIL",
			Message: "Valid email is required",
		})
	}
	if r.Role != nil && !r.Role.IsValid() {
		errs = append(errs, validator.ValidationError{
			Field:   "role",
			Code:    "INVALID_ROLE",
			Message: "Role must be ADMIN, MANAGER, or EMPLOYEE",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type ListFilter struct {
	Search    string
	CompanyID *int64
	Role      string
	IsActive  *bool
	Sort      string
	Order     string
	Limit     int
	Offset    int
}

type DeleteUserResponse struct {
	Message string       `json:"message"`
	User    UserResponse `json:"user"`
}
