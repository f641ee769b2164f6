package infra

import (
	"errors"
	"fmt"

	"github.com/giovaniif/hotel/domain/reservation"
)

var ErrUnexpected = errors.New("unexpected error")

func NewUnexpectedError(details string) error {
	return fmt.Errorf("%w: %s", ErrUnexpected, details)
}

// IsValidation returns true for the expected, recoverable reservation failures.
func IsValidation(err error) bool {
	return errors.Is(err, reservation.ErrDuplicateIdentifier) ||
		errors.Is(err, reservation.ErrClientAlreadyReserved) ||
		errors.Is(err, reservation.ErrReservationNotFound)
}

// Recover turns a panic into ErrUnexpected stored in *err. Use with defer.
func Recover(err *error) {
	if r := recover(); r != nil {
		*err = NewUnexpectedError(fmt.Sprint(r))
	}
}
