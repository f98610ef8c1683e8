package cipher

import (
	"errors"
	"fmt"
)

// InputErrorCode categorizes input validation failures.
type InputErrorCode string

const (
	// ErrCodeWrongLength indicates the input is not exactly six characters.
	ErrCodeWrongLength InputErrorCode = "WRONG_LENGTH"

	// ErrCodeNonDigit indicates the input contains a non-digit character.
	// Only ASCII '0'–'9' are accepted; Unicode digit classes are not.
	ErrCodeNonDigit InputErrorCode = "NON_DIGIT"
)

// InvalidInputError is returned when an argument to Encode or Decode is
// not exactly six decimal digits. It is the only failure mode of this
// package.
type InvalidInputError struct {
	// Code identifies the violation category.
	Code InputErrorCode

	// Input is the rejected argument, verbatim.
	Input string

	// Position is the zero-based index of the first offending character
	// for ErrCodeNonDigit; -1 otherwise.
	Position int
}

// Error implements the error interface.
func (e *InvalidInputError) Error() string {
	switch e.Code {
	case ErrCodeWrongLength:
		return fmt.Sprintf("%s: input must be exactly 6 digits, got %d characters", e.Code, len(e.Input))
	case ErrCodeNonDigit:
		return fmt.Sprintf("%s: input must contain only digits 0-9 (position %d)", e.Code, e.Position)
	}
	return fmt.Sprintf("%s: invalid input", e.Code)
}

// IsInvalidInput reports whether err is an input validation failure.
// Uses errors.As to handle wrapped errors.
func IsInvalidInput(err error) bool {
	var ie *InvalidInputError
	return errors.As(err, &ie)
}

func newWrongLengthError(input string) *InvalidInputError {
	return &InvalidInputError{Code: ErrCodeWrongLength, Input: input, Position: -1}
}

func newNonDigitError(input string, pos int) *InvalidInputError {
	return &InvalidInputError{Code: ErrCodeNonDigit, Input: input, Position: pos}
}
