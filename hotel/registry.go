// Package hotel exposes the reservation ledger of a single hotel.
//
// A Registry is constructed explicitly and owns its reservation collection;
// there is no package level instance.
package hotel

import (
	"context"

	"github.com/giovaniif/hotel/domain/reservation"
	"github.com/giovaniif/hotel/protocols"
	"github.com/giovaniif/hotel/use_cases/cancel"
	"github.com/giovaniif/hotel/use_cases/create"
	"github.com/giovaniif/hotel/use_cases/list"
)

type Registry struct {
	createUseCase *create.Create
	cancelUseCase *cancel.Cancel
	listUseCase   *list.List
}

type Options struct {
	HotelName string
	BasePrice float64
}

func (o Options) withDefaults() Options {
	if o.HotelName == "" {
		o.HotelName = reservation.DefaultHotelName
	}
	if o.BasePrice <= 0 {
		o.BasePrice = reservation.DefaultBasePrice
	}
	return o
}

func NewRegistry(repository reservation.Repository, generator protocols.IdentifierGenerator, reporter protocols.OutcomeReporter, opts Options) *Registry {
	opts = opts.withDefaults()
	return &Registry{
		createUseCase: create.NewCreate(repository, generator, reporter, opts.HotelName, opts.BasePrice),
		cancelUseCase: cancel.NewCancel(repository, reporter),
		listUseCase:   list.NewList(repository),
	}
}

// CreateReservation books clients for time units. Rejections are reported,
// never returned as errors; the returned event tells which outcome happened.
func (r *Registry) CreateReservation(ctx context.Context, clients []reservation.Client, time int, hasBreakfast bool) reservation.Event {
	return r.createUseCase.Create(ctx, create.Input{Clients: clients, Time: time, HasBreakfast: hasBreakfast})
}

// CancelReservation returns an error wrapping reservation.ErrReservationNotFound
// when no live reservation has the id.
func (r *Registry) CancelReservation(ctx context.Context, reservationId string) error {
	return r.cancelUseCase.Cancel(ctx, cancel.Input{ReservationId: reservationId})
}

func (r *Registry) ListReservations(ctx context.Context) []reservation.Reservation {
	return r.listUseCase.List(ctx).Reservations
}
