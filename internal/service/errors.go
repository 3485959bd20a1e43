package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")
	ErrWrongPassword       = errors.New("wrong password")

	// ErrTokenIsExpiredOrInvalid is the single failure mode of token
	// validation: missing, malformed, tampered and expired tokens are all
	// normalised to it so callers treat every case as "no session".
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")

	ErrTokenCreationFailed = errors.New("token creation failed")

	// ErrNotOwner is returned when the acting user is neither the stored
	// owner of the record nor an administrator.
	ErrNotOwner = errors.New("acting user is not the owner")
)
