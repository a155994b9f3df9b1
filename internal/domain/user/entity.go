package user

import "time"

type Role string

const (
	RoleAdmin    Role = "ADMIN"
	RoleManager  Role = "MANAGER"
	RoleEmployee Role = "EMPLOYEE"
)

func (r Role) IsValid() bool {
	switch r {
	case RoleAdmin, RoleManager, RoleEmployee:
		return true
	}
	return false
}

// seniority orders roles for the hierarchy invariant: a user's manager must
// hold an equal-or-more-senior role.
func (r Role) seniority() int {
	switch r {
	case RoleAdmin:
		return 3
	case RoleManager:
		return 2
	case RoleEmployee:
		return 1
	}
	return 0
}

// CanReportTo reports whether a user with role r may have a manager with
// managerRole.
func (r Role) CanReportTo(managerRole Role) bool {
	return managerRole.seniority() >= r.seniority()
}

type User struct {
	ID           int64
	CompanyID    int64
	Name         string
	Email        string
	PasswordHash string
	Role         Role
	ManagerID    *int64
	IsActive     bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
