package reservation

type EventKind int

const (
	ReservationAdded EventKind = iota
	DuplicateIdentifier
	ClientAlreadyReserved
	ReservationCancelled
	ReservationNotFound
	UnexpectedError
)

var eventNames = map[EventKind]string{
	ReservationAdded:      "reservation_added",
	DuplicateIdentifier:   "duplicate_identifier",
	ClientAlreadyReserved: "client_already_reserved",
	ReservationCancelled:  "reservation_cancelled",
	ReservationNotFound:   "reservation_not_found",
	UnexpectedError:       "unexpected_error",
}

func (k EventKind) String() string {
	if name, ok := eventNames[k]; ok {
		return name
	}
	return "unknown"
}

// Failed reports whether the event describes a rejected operation.
func (k EventKind) Failed() bool {
	return k != ReservationAdded && k != ReservationCancelled
}

type Event struct {
	Kind          EventKind
	ReservationId string
	// Count is the number of live reservations after a successful create.
	Count int
	Err   error
}
