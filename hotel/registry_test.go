package hotel

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/giovaniif/hotel/domain/reservation"
	"github.com/giovaniif/hotel/infra/gateways"
	"github.com/giovaniif/hotel/infra/repositories"
)

type sequenceGenerator struct {
	ids  []string
	next int
}

func (g *sequenceGenerator) Generate() string {
	if g.next >= len(g.ids) {
		g.next++
		return fmt.Sprintf("generated-%d", g.next)
	}
	id := g.ids[g.next]
	g.next++
	return id
}

var (
	marcos  = reservation.Client{Name: "Marcos", Age: 28, Height: 12}
	marcos2 = reservation.Client{Name: "Marcos2", Age: 24, Height: 12}
)

func newRegistry(generator *sequenceGenerator) (*Registry, *gateways.RecordingReporter) {
	reporter := gateways.NewRecordingReporter()
	registry := NewRegistry(repositories.NewReservationRepositoryMemory(), generator, reporter, Options{})
	return registry, reporter
}

func TestScenario(t *testing.T) {
	ctx := context.Background()
	registry, reporter := newRegistry(&sequenceGenerator{ids: []string{"r1", "r2"}})

	event := registry.CreateReservation(ctx, []reservation.Client{marcos, marcos2}, 5, true)
	require.Equal(t, reservation.ReservationAdded, event.Kind)
	require.Equal(t, 1, event.Count)

	list := registry.ListReservations(ctx)
	require.Len(t, list, 1)
	require.Equal(t, 250.0, list[0].Price)
	require.Equal(t, "Kame House", list[0].Name)

	event = registry.CreateReservation(ctx, []reservation.Client{marcos, marcos2}, 5, true)
	require.Equal(t, reservation.ClientAlreadyReserved, event.Kind)
	require.Len(t, registry.ListReservations(ctx), 1)

	require.NoError(t, registry.CancelReservation(ctx, "r1"))
	require.Empty(t, registry.ListReservations(ctx))

	err := registry.CancelReservation(ctx, "r1")
	require.ErrorIs(t, err, reservation.ErrReservationNotFound)
	require.Empty(t, registry.ListReservations(ctx))

	events := reporter.Events()
	kinds := make([]reservation.EventKind, len(events))
	for i, e := range events {
		kinds[i] = e.Kind
	}
	require.Equal(t, []reservation.EventKind{
		reservation.ReservationAdded,
		reservation.ClientAlreadyReserved,
		reservation.ReservationCancelled,
		reservation.ReservationNotFound,
	}, kinds)
}

func TestPricingEquivalence(t *testing.T) {
	ctx := context.Background()
	registry, _ := newRegistry(&sequenceGenerator{})

	registry.CreateReservation(ctx, []reservation.Client{marcos}, 5, true)
	registry.CreateReservation(ctx, []reservation.Client{marcos2}, 5, true)

	list := registry.ListReservations(ctx)
	require.Len(t, list, 2)
	require.Equal(t, list[0].Price, list[1].Price)
	require.Equal(t, 125.0, list[0].Price)
}

func TestDuplicateIdentifierLeavesStateUnchanged(t *testing.T) {
	ctx := context.Background()
	registry, reporter := newRegistry(&sequenceGenerator{ids: []string{"same", "same"}})

	registry.CreateReservation(ctx, []reservation.Client{marcos}, 2, false)
	event := registry.CreateReservation(ctx, []reservation.Client{marcos2}, 2, false)

	require.Equal(t, reservation.DuplicateIdentifier, event.Kind)
	require.Len(t, registry.ListReservations(ctx), 1)
	last, _ := reporter.Last()
	require.Equal(t, reservation.DuplicateIdentifier, last.Kind)
}

func TestOverlappingClientSetsAreRejected(t *testing.T) {
	ctx := context.Background()
	registry, _ := newRegistry(&sequenceGenerator{})
	goku := reservation.Client{Name: "Goku", Age: 30, Height: 175}

	registry.CreateReservation(ctx, []reservation.Client{marcos, marcos2}, 1, false)
	event := registry.CreateReservation(ctx, []reservation.Client{goku, marcos2}, 1, false)

	require.Equal(t, reservation.ClientAlreadyReserved, event.Kind)
	require.Len(t, registry.ListReservations(ctx), 1)
}

func TestCancelUnknownIdNeverMutates(t *testing.T) {
	ctx := context.Background()
	registry, _ := newRegistry(&sequenceGenerator{ids: []string{"r1"}})
	registry.CreateReservation(ctx, []reservation.Client{marcos}, 1, false)

	err := registry.CancelReservation(ctx, "missing")
	require.ErrorIs(t, err, reservation.ErrReservationNotFound)
	require.Len(t, registry.ListReservations(ctx), 1)
}

func TestListIsSnapshot(t *testing.T) {
	ctx := context.Background()
	registry, _ := newRegistry(&sequenceGenerator{ids: []string{"r1", "r2"}})
	registry.CreateReservation(ctx, []reservation.Client{marcos}, 1, false)

	snapshot := registry.ListReservations(ctx)
	registry.CreateReservation(ctx, []reservation.Client{marcos2}, 1, false)
	snapshot[0].Id = "changed"

	require.Len(t, snapshot, 1)
	current := registry.ListReservations(ctx)
	require.Len(t, current, 2)
	require.Equal(t, "r1", current[0].Id)
}

func TestOptionsOverrideDefaults(t *testing.T) {
	ctx := context.Background()
	registry := NewRegistry(repositories.NewReservationRepositoryMemory(), &sequenceGenerator{}, gateways.NewRecordingReporter(), Options{HotelName: "Capsule Corp", BasePrice: 10})

	registry.CreateReservation(ctx, []reservation.Client{marcos}, 3, false)

	list := registry.ListReservations(ctx)
	require.Equal(t, "Capsule Corp", list[0].Name)
	require.Equal(t, 30.0, list[0].Price)
}
