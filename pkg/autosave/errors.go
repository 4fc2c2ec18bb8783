package autosave

import "errors"

var (
	ErrDraftNotFound = errors.New("autosave: draft not found")
	ErrEmptyFormID   = errors.New("autosave: empty form id")
	ErrStorage       = errors.New("autosave: storage failure")
	ErrInvalidDraft  = errors.New("autosave: invalid draft payload")
)
