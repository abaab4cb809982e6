package sweep_expired

import "errors"

var (
	ErrInvalidInput = errors.New("invalid input data")
	ErrInternal     = errors.New("internal error")
)
