package auth

import "errors"

var (
	ErrAuthenticationRequired = errors.New("authentication required")
)
