package metrics

import (
	"context"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/giovaniif/hotel/domain/reservation"
)

type Reporter struct {
	EventsTotal      *prometheus.CounterVec
	LiveReservations prometheus.Gauge
}

// NewReporter registers the reservation collectors on reg. A nil reg uses
// the default prometheus registerer.
func NewReporter(reg prometheus.Registerer) *Reporter {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	factory := promauto.With(reg)
	return &Reporter{
		EventsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "hotel_reservation_events_total",
				Help: "Total number of reservation outcomes by event",
			},
			[]string{"event"},
		),
		LiveReservations: factory.NewGauge(
			prometheus.GaugeOpts{
				Name: "hotel_live_reservations",
				Help: "Number of live reservations",
			},
		),
	}
}

func (r *Reporter) Report(ctx context.Context, event reservation.Event) {
	r.EventsTotal.WithLabelValues(event.Kind.String()).Inc()
	switch event.Kind {
	case reservation.ReservationAdded:
		r.LiveReservations.Set(float64(event.Count))
	case reservation.ReservationCancelled:
		r.LiveReservations.Dec()
	}
}
