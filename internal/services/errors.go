package services

import "errors"

// Standard service errors
var (
	// Resource catalog errors
	ErrResourceNotFound  = errors.New("resource not found")
	ErrInvalidResourceID = errors.New("invalid resource ID")

	// Configuration errors
	ErrInvalidConfig = errors.New("invalid configuration")
)

// IsPermanentError determines if an error is permanent and retrying the same
// lookup will not help
func IsPermanentError(err error) bool {
	return errors.Is(err, ErrResourceNotFound) ||
		errors.Is(err, ErrInvalidResourceID) ||
		errors.Is(err, ErrInvalidConfig)
}
