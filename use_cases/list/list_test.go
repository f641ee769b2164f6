package list

import (
	"context"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/giovaniif/hotel/domain/reservation"
)

type mockRepository struct {
	listResult []reservation.Reservation
	listCalled int
}

func (m *mockRepository) Add(r reservation.Reservation) (int, error) { return 0, nil }
func (m *mockRepository) Remove(reservationId string) error          { return nil }
func (m *mockRepository) List() []reservation.Reservation {
	m.listCalled++
	return m.listResult
}

func TestList(t *testing.T) {
	want := []reservation.Reservation{
		{Id: "b", Name: "Kame House", Clients: []reservation.Client{{Name: "Marcos", Age: 28, Height: 12}}, Time: 5, Price: 125, HasBreakfast: true},
		{Id: "a", Name: "Kame House", Time: 1, Price: 0},
	}
	repo := &mockRepository{listResult: want}
	uc := NewList(repo)

	out := uc.List(context.Background())
	if repo.listCalled != 1 {
		t.Fatalf("expected List to be called once, got %d", repo.listCalled)
	}
	if diff := cmp.Diff(want, out.Reservations); diff != "" {
		t.Fatalf("List() mismatch (-want +got):\n%s", diff)
	}
}
