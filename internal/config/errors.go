package config

import "errors"

var (
	errNoTokenSignKey    = errors.New("token sign key is not configured")
	errNoPasswordHashKey = errors.New("password hash key is not configured")
)
