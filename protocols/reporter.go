package protocols

import (
	"context"

	"github.com/giovaniif/hotel/domain/reservation"
)

type OutcomeReporter interface {
	Report(ctx context.Context, event reservation.Event)
}
