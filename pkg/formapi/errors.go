package formapi

import "errors"

var (
	ErrInvalidBody  = errors.New("formapi: invalid request body")
	ErrRateLimited  = errors.New("formapi: too many draft writes")
	ErrMissingStore = errors.New("formapi: draft store is required")
)
