package common

import "errors"

// Error kinds returned by the service layer. Services wrap these with
// fmt.Errorf("%w: ...") so handlers can map them to response codes with
// errors.Is while the message keeps the operation context.
var (
	ErrValidation   = errors.New("validation failed")
	ErrUnauthorized = errors.New("not permitted")
	ErrNotFound     = errors.New("not found")
	ErrConflict     = errors.New("conflict")
)
