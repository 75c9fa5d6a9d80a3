package board

import "errors"

var (
	ErrColumnNotFound = errors.New("column not found")
	ErrCardNotFound   = errors.New("card not found")
	ErrEmptyTitle     = errors.New("card title cannot be empty")
	ErrTitleUnchanged = errors.New("card title is unchanged")
	ErrDuplicateCard  = errors.New("card id already exists on the board")
)

// Validation errors
var (
	ErrEmptyColumnID    = errors.New("column id cannot be empty")
	ErrDuplicateColumn  = errors.New("duplicate column id")
	ErrEmptyCardID      = errors.New("card id cannot be empty")
	ErrCardInTwoColumns = errors.New("card appears more than once")
)
