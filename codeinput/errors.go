package codeinput

import "errors"

var (
	// ErrFieldOutOfRange is returned when focusing a box index that does not
	// exist.
	ErrFieldOutOfRange = errors.New("codeinput: field index out of range")

	// ErrInvalidConfig is returned by Config.Validate.
	ErrInvalidConfig = errors.New("codeinput: invalid config")
)
