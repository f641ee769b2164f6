package create

import (
	"context"
	"errors"

	"github.com/giovaniif/hotel/domain/reservation"
	"github.com/giovaniif/hotel/infra"
	"github.com/giovaniif/hotel/infra/tracing"
	"github.com/giovaniif/hotel/protocols"
)

type Create struct {
	reservationRepository reservation.Repository
	identifierGenerator   protocols.IdentifierGenerator
	outcomeReporter       protocols.OutcomeReporter
	hotelName             string
	basePrice             float64
}

func NewCreate(reservationRepository reservation.Repository, identifierGenerator protocols.IdentifierGenerator, outcomeReporter protocols.OutcomeReporter, hotelName string, basePrice float64) *Create {
	return &Create{
		reservationRepository: reservationRepository,
		identifierGenerator:   identifierGenerator,
		outcomeReporter:       outcomeReporter,
		hotelName:             hotelName,
		basePrice:             basePrice,
	}
}

// Create never returns an error: every outcome, including rejections, is
// reported and returned as an event.
func (c *Create) Create(ctx context.Context, input Input) reservation.Event {
	ctx, span := tracing.Start(ctx, "create")

	event := c.create(input)

	tracing.End(span, event)
	c.outcomeReporter.Report(ctx, event)
	return event
}

func (c *Create) create(input Input) (event reservation.Event) {
	var err error
	defer func() {
		if err != nil {
			event = reservation.Event{Kind: kindOf(err), ReservationId: event.ReservationId, Err: err}
		}
	}()
	defer infra.Recover(&err)

	price := reservation.CalculatePrice(len(input.Clients), input.Time, input.HasBreakfast, c.basePrice)
	id := c.identifierGenerator.Generate()
	event.ReservationId = id

	count, err := c.reservationRepository.Add(reservation.Reservation{
		Id:           id,
		Name:         c.hotelName,
		Clients:      input.Clients,
		Time:         input.Time,
		Price:        price,
		HasBreakfast: input.HasBreakfast,
	})
	if err != nil {
		return event
	}

	return reservation.Event{Kind: reservation.ReservationAdded, ReservationId: id, Count: count}
}

func kindOf(err error) reservation.EventKind {
	switch {
	case errors.Is(err, reservation.ErrDuplicateIdentifier):
		return reservation.DuplicateIdentifier
	case errors.Is(err, reservation.ErrClientAlreadyReserved):
		return reservation.ClientAlreadyReserved
	default:
		return reservation.UnexpectedError
	}
}

type Input struct {
	Clients []reservation.Client
	Time    int
	// Omitted and explicit false are the same request.
	HasBreakfast bool
}
