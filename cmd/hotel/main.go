package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/giovaniif/hotel/config"
	"github.com/giovaniif/hotel/domain/reservation"
	"github.com/giovaniif/hotel/hotel"
	"github.com/giovaniif/hotel/infra/gateways"
	"github.com/giovaniif/hotel/infra/loki"
	"github.com/giovaniif/hotel/infra/metrics"
	"github.com/giovaniif/hotel/infra/repositories"
	"github.com/giovaniif/hotel/infra/tracing"
	"github.com/giovaniif/hotel/protocols"
)

func main() {
	if err := run(context.Background(), os.Stderr, config.Load()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// run builds one registry and replays the reservation checks against it.
func run(ctx context.Context, logOut io.Writer, cfg *config.Config) error {
	if w := loki.NewWriter(cfg.LokiURL, map[string]string{"service": cfg.ServiceName}); w != nil {
		defer w.Close()
		logOut = io.MultiWriter(logOut, w)
	}
	logger := slog.New(slog.NewJSONHandler(logOut, &slog.HandlerOptions{Level: cfg.LogLevel}))

	if shutdown := tracing.Init(cfg.ServiceName, cfg.OTLPEndpoint); shutdown != nil {
		defer shutdown()
	}

	registerer := prometheus.NewRegistry()
	reporter := gateways.NewMultiReporter(gateways.NewLogReporter(logger), metrics.NewReporter(registerer))

	registry := hotel.NewRegistry(
		repositories.NewReservationRepositoryMemory(),
		newGenerator(cfg.IdGenerator),
		reporter,
		hotel.Options{HotelName: cfg.HotelName, BasePrice: cfg.BasePrice},
	)

	checks := []struct {
		name string
		fn   func(context.Context, *hotel.Registry) error
	}{
		{"add reservation", checkAddReservation},
		{"cancel reservation", checkCancelReservation},
		{"reservation price", checkReservationPrice},
	}
	var errs []error
	for _, check := range checks {
		if err := check.fn(ctx, registry); err != nil {
			logger.Error("check failed", slog.String("check", check.name), slog.String("error", err.Error()))
			errs = append(errs, fmt.Errorf("%s: %w", check.name, err))
			continue
		}
		logger.Info("check passed", slog.String("check", check.name))
	}

	for _, r := range registry.ListReservations(ctx) {
		logger.Info("live reservation",
			slog.String("reservation_id", r.Id),
			slog.String("hotel", r.Name),
			slog.Int("clients", len(r.Clients)),
			slog.Float64("price", r.Price),
		)
	}
	if err := logMetrics(logger, registerer); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

// logMetrics writes one record per gathered series.
func logMetrics(logger *slog.Logger, gatherer prometheus.Gatherer) error {
	families, err := gatherer.Gather()
	if err != nil {
		return fmt.Errorf("gather metrics: %w", err)
	}
	for _, family := range families {
		for _, m := range family.GetMetric() {
			attrs := []slog.Attr{slog.String("name", family.GetName())}
			for _, label := range m.GetLabel() {
				attrs = append(attrs, slog.String(label.GetName(), label.GetValue()))
			}
			value := m.GetGauge().GetValue()
			if m.GetCounter() != nil {
				value = m.GetCounter().GetValue()
			}
			attrs = append(attrs, slog.Float64("value", value))
			logger.LogAttrs(context.Background(), slog.LevelInfo, "metric", attrs...)
		}
	}
	return nil
}

func newGenerator(kind string) protocols.IdentifierGenerator {
	if kind == config.GeneratorHex {
		return gateways.NewHexGenerator()
	}
	return gateways.NewUUIDGenerator()
}

var (
	marcos  = reservation.Client{Name: "Marcos", Age: 28, Height: 12}
	marcos2 = reservation.Client{Name: "Marcos2", Age: 24, Height: 12}
)

func checkAddReservation(ctx context.Context, registry *hotel.Registry) error {
	clients := []reservation.Client{marcos, marcos2}

	before := len(registry.ListReservations(ctx))
	if event := registry.CreateReservation(ctx, clients, 5, true); event.Kind != reservation.ReservationAdded {
		return fmt.Errorf("expected %s, got %s", reservation.ReservationAdded, event.Kind)
	}
	if got := len(registry.ListReservations(ctx)); got != before+1 {
		return fmt.Errorf("expected %d reservations, got %d", before+1, got)
	}

	if event := registry.CreateReservation(ctx, clients, 5, true); event.Kind != reservation.ClientAlreadyReserved {
		return fmt.Errorf("expected %s, got %s", reservation.ClientAlreadyReserved, event.Kind)
	}
	if got := len(registry.ListReservations(ctx)); got != before+1 {
		return fmt.Errorf("duplicate clients were booked: %d reservations", got)
	}
	return nil
}

func checkCancelReservation(ctx context.Context, registry *hotel.Registry) error {
	if len(registry.ListReservations(ctx)) == 0 {
		registry.CreateReservation(ctx, []reservation.Client{marcos, marcos2}, 5, true)
	}
	list := registry.ListReservations(ctx)
	if len(list) == 0 {
		return errors.New("no reservation to cancel")
	}
	id := list[0].Id

	if err := registry.CancelReservation(ctx, id); err != nil {
		return err
	}
	if err := registry.CancelReservation(ctx, id); !errors.Is(err, reservation.ErrReservationNotFound) {
		return fmt.Errorf("expected %v on second cancel, got %v", reservation.ErrReservationNotFound, err)
	}
	return nil
}

func checkReservationPrice(ctx context.Context, registry *hotel.Registry) error {
	first := registry.CreateReservation(ctx, []reservation.Client{marcos}, 5, true)
	second := registry.CreateReservation(ctx, []reservation.Client{marcos2}, 5, true)
	if first.Kind != reservation.ReservationAdded || second.Kind != reservation.ReservationAdded {
		return fmt.Errorf("expected both reservations added, got %s and %s", first.Kind, second.Kind)
	}

	prices := map[string]float64{}
	for _, r := range registry.ListReservations(ctx) {
		prices[r.Id] = r.Price
	}
	if prices[first.ReservationId] != prices[second.ReservationId] {
		return fmt.Errorf("expected equal prices, got %v and %v", prices[first.ReservationId], prices[second.ReservationId])
	}
	return nil
}
