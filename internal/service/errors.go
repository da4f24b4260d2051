package service

import "errors"

// Sentinel errors the controllers translate into envelope error codes.
var (
	ErrNotFound            = errors.New("resource not found")
	ErrInvalidCredentials  = errors.New("invalid credentials")
	ErrAccountInactive     = errors.New("account is inactive")
	ErrInvalidRefreshToken = errors.New("invalid or expired refresh token")
	ErrUsernameTaken       = errors.New("username already exists")
	ErrEmailTaken          = errors.New("email already exists")
	ErrProjectCodeTaken    = errors.New("project code already exists")
)
