package schedule

import (
	"errors"
	"fmt"
)

// InvalidInputError signals a malformed candidate time or duration. It is
// always a caller contract violation; malformed existing items are skipped
// silently and never produce this error.
type InvalidInputError struct {
	Code    string
	Message string
}

func (e *InvalidInputError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func NewInvalidInputError(msg string) error {
	return &InvalidInputError{
		Code:    "invalidInput",
		Message: msg,
	}
}

// IsInvalidInput reports whether err is an InvalidInputError.
func IsInvalidInput(err error) bool {
	var iie *InvalidInputError
	return errors.As(err, &iie)
}
