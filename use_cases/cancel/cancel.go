package cancel

import (
	"context"
	"errors"

	"github.com/giovaniif/hotel/domain/reservation"
	"github.com/giovaniif/hotel/infra"
	"github.com/giovaniif/hotel/infra/tracing"
	"github.com/giovaniif/hotel/protocols"
)

type Cancel struct {
	reservationRepository reservation.Repository
	outcomeReporter       protocols.OutcomeReporter
}

func NewCancel(reservationRepository reservation.Repository, outcomeReporter protocols.OutcomeReporter) *Cancel {
	return &Cancel{
		reservationRepository: reservationRepository,
		outcomeReporter:       outcomeReporter,
	}
}

func (c *Cancel) Cancel(ctx context.Context, input Input) error {
	ctx, span := tracing.Start(ctx, "cancel")

	err := c.remove(input.ReservationId)

	event := reservation.Event{Kind: reservation.ReservationCancelled, ReservationId: input.ReservationId}
	if err != nil {
		event.Kind = reservation.UnexpectedError
		if errors.Is(err, reservation.ErrReservationNotFound) {
			event.Kind = reservation.ReservationNotFound
		}
		event.Err = err
	}
	tracing.End(span, event)
	c.outcomeReporter.Report(ctx, event)
	return err
}

func (c *Cancel) remove(reservationId string) (err error) {
	defer infra.Recover(&err)
	return c.reservationRepository.Remove(reservationId)
}

type Input struct {
	ReservationId string
}
