package gateways

import (
	"context"
	"log/slog"

	"github.com/giovaniif/hotel/domain/reservation"
	"github.com/giovaniif/hotel/infra"
)

type LogReporter struct {
	logger *slog.Logger
}

func NewLogReporter(logger *slog.Logger) *LogReporter {
	if logger == nil {
		logger = slog.Default()
	}
	return &LogReporter{logger: logger}
}

func (r *LogReporter) Report(ctx context.Context, event reservation.Event) {
	attrs := []slog.Attr{slog.String("event", event.Kind.String())}
	if event.ReservationId != "" {
		attrs = append(attrs, slog.String("reservation_id", event.ReservationId))
	}

	level := slog.LevelInfo
	msg := "reservation rejected"
	switch {
	case event.Kind == reservation.ReservationAdded:
		attrs = append(attrs, slog.Int("count", event.Count))
		msg = "reservation added"
	case event.Kind == reservation.ReservationCancelled:
		msg = "reservation cancelled"
	case infra.IsValidation(event.Err):
		level = slog.LevelWarn
	default:
		level = slog.LevelError
		msg = "unexpected reservation error"
	}
	if event.Err != nil {
		attrs = append(attrs, slog.String("error", event.Err.Error()))
	}

	r.logger.LogAttrs(ctx, level, msg, attrs...)
}
