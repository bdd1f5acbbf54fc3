package constants

import "errors"

// Configuration errors.
var (
	ErrNoAPIKey          = errors.New("no API key configured, use 'rtr login' or set RTR_API_KEY")
	ErrNoCustomer        = errors.New("no customer handle configured, use --customer or set RTR_CUSTOMER")
	ErrUnknownConfigKey  = errors.New("unknown configuration key")
	ErrEmptyAPIKey       = errors.New("API key must not be empty")
	ErrInvalidOutput     = errors.New("invalid output format")
	ErrInvalidFilterFlag = errors.New("invalid --filter value, expected field[:matcher]=value")
)
