package user

import "errors"

var (
	ErrUserNotFound = errors.New("user not found")

	// Foreign-reference failures on create/update. These surface as 400s with
	// their own codes, unlike the 404 for a missing addressed user.
	ErrCompanyNotFound  = errors.New("referenced company not found")
	ErrManagerNotFound  = errors.New("referenced manager not found")
	ErrInvalidHierarchy = errors.New("manager role below user role")
	ErrEmailExists      = errors.New("email already exists")
)
