package expense

import "errors"

var (
	ErrExpenseNotFound = errors.New("expense not found")

	// ErrUserNotFound covers the owner reference on create; a 400, not a 404.
	ErrUserNotFound = errors.New("referenced user not found")

	// Only PENDING expenses may be mutated or deleted.
	ErrUpdateNotAllowed = errors.New("only pending expenses can be updated")
	ErrDeleteNotAllowed = errors.New("only pending expenses can be deleted")
)
