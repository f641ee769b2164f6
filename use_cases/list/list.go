package list

import (
	"context"

	"go.opentelemetry.io/otel/attribute"

	"github.com/giovaniif/hotel/domain/reservation"
	"github.com/giovaniif/hotel/infra/tracing"
)

type List struct {
	reservationRepository reservation.Repository
}

func NewList(reservationRepository reservation.Repository) *List {
	return &List{
		reservationRepository: reservationRepository,
	}
}

// List returns a snapshot in insertion order. Later creates and cancels are
// not reflected in it.
func (l *List) List(ctx context.Context) Output {
	_, span := tracing.Start(ctx, "list")
	defer span.End()

	reservations := l.reservationRepository.List()
	span.SetAttributes(attribute.Int("reservation.count", len(reservations)))
	return Output{Reservations: reservations}
}

type Output struct {
	Reservations []reservation.Reservation
}
