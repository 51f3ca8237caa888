package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")
	ErrShortPassword       = errors.New("password is too short")
	ErrWrongCredentials    = errors.New("unable to authenticate with provided credentials")
	ErrInactiveUser        = errors.New("user account is disabled")

	ErrTokenCreationFailed     = errors.New("token creation failed")
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")
)
