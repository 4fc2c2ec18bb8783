package page

import "errors"

var (
	ErrNilRoot              = errors.New("page: nil document root")
	ErrRateLimitersDisabled = errors.New("page: rate limiters are disabled")
	ErrAutosave             = errors.New("page: autosave failed")
	ErrInvalidLanguage      = errors.New("page: invalid language tag")
	ErrCatalog              = errors.New("page: invalid message catalog")
)
