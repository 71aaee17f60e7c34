package types

import "github.com/m-mizutani/goerr/v2"

var (
	ErrInvalidOption    = goerr.New("invalid option")
	ErrValidationFailed = goerr.New("validation failed")
	ErrUnauthenticated  = goerr.New("unauthenticated")
	ErrNotFound         = goerr.New("not found")
)
