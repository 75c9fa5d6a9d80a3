package seed

import "errors"

var (
	ErrUnsupportedFormat = errors.New("unsupported seed file format")
	ErrCardOutsideColumn = errors.New("card listed before any column header")
)
