package repositories

import (
	"fmt"
	"sync"

	"github.com/giovaniif/hotel/domain/reservation"
)

type ReservationRepositoryMemory struct {
	mutex        sync.RWMutex
	reservations []reservation.Reservation
}

func NewReservationRepositoryMemory() *ReservationRepositoryMemory {
	return &ReservationRepositoryMemory{
		reservations: make([]reservation.Reservation, 0),
	}
}

func (r *ReservationRepositoryMemory) Add(newReservation reservation.Reservation) (int, error) {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	if r.containsId(newReservation.Id) {
		return len(r.reservations), fmt.Errorf("%w: %s", reservation.ErrDuplicateIdentifier, newReservation.Id)
	}
	for _, existing := range r.reservations {
		if existing.Includes(newReservation.Clients) {
			return len(r.reservations), fmt.Errorf("%w: held by %s", reservation.ErrClientAlreadyReserved, existing.Id)
		}
	}

	r.reservations = append(r.reservations, newReservation.Copy())
	return len(r.reservations), nil
}

func (r *ReservationRepositoryMemory) Remove(reservationId string) error {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	if !r.containsId(reservationId) {
		return fmt.Errorf("%w: %s", reservation.ErrReservationNotFound, reservationId)
	}
	kept := r.reservations[:0]
	for _, existing := range r.reservations {
		if existing.Id != reservationId {
			kept = append(kept, existing)
		}
	}
	clear(r.reservations[len(kept):])
	r.reservations = kept
	return nil
}

func (r *ReservationRepositoryMemory) List() []reservation.Reservation {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	snapshot := make([]reservation.Reservation, len(r.reservations))
	for i, existing := range r.reservations {
		snapshot[i] = existing.Copy()
	}
	return snapshot
}

func (r *ReservationRepositoryMemory) containsId(reservationId string) bool {
	for _, existing := range r.reservations {
		if existing.Id == reservationId {
			return true
		}
	}
	return false
}
