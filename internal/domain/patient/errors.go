package patient

import "errors"

var (
	ErrNotFound        = errors.New("patient not found")
	ErrContactNotFound = errors.New("emergency contact not found")
)
