package reservation

import "errors"

var (
	ErrDuplicateIdentifier   = errors.New("reservation id already exists")
	ErrClientAlreadyReserved = errors.New("client already has a reservation")
	ErrReservationNotFound   = errors.New("reservation not found")
)
