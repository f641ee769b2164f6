package reservation

const DefaultHotelName = "Kame House"

type Client struct {
	Name   string
	Age    int
	Height float64
}

type Reservation struct {
	Id           string
	Name         string
	Clients      []Client
	Time         int
	Price        float64
	HasBreakfast bool
}

// Includes reports whether any of the given clients is part of the reservation.
func (r Reservation) Includes(clients []Client) bool {
	for _, client := range clients {
		for _, existing := range r.Clients {
			if client == existing {
				return true
			}
		}
	}
	return false
}

// Copy returns a reservation that shares no memory with r.
func (r Reservation) Copy() Reservation {
	clients := make([]Client, len(r.Clients))
	copy(clients, r.Clients)
	r.Clients = clients
	return r
}
