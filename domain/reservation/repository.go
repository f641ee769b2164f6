package reservation

type Repository interface {
	// Add appends the reservation after checking, in order, that its id and
	// its clients are not already live. Returns the number of live
	// reservations after the append.
	Add(reservation Reservation) (int, error)
	Remove(reservationId string) error
	List() []Reservation
}
