package gateways

import (
	"context"
	"sync"

	"github.com/giovaniif/hotel/domain/reservation"
	"github.com/giovaniif/hotel/protocols"
)

type MultiReporter struct {
	reporters []protocols.OutcomeReporter
}

func NewMultiReporter(reporters ...protocols.OutcomeReporter) *MultiReporter {
	return &MultiReporter{reporters: reporters}
}

func (m *MultiReporter) Report(ctx context.Context, event reservation.Event) {
	for _, reporter := range m.reporters {
		if reporter != nil {
			reporter.Report(ctx, event)
		}
	}
}

// RecordingReporter keeps every event in memory. Useful for callers that want
// to inspect outcomes after the fact. Safe for concurrent use.
type RecordingReporter struct {
	mutex  sync.Mutex
	events []reservation.Event
}

func NewRecordingReporter() *RecordingReporter {
	return &RecordingReporter{}
}

func (r *RecordingReporter) Report(ctx context.Context, event reservation.Event) {
	r.mutex.Lock()
	defer r.mutex.Unlock()
	r.events = append(r.events, event)
}

// Events returns a copy of the recorded events in report order.
func (r *RecordingReporter) Events() []reservation.Event {
	r.mutex.Lock()
	defer r.mutex.Unlock()
	return append([]reservation.Event(nil), r.events...)
}

func (r *RecordingReporter) Last() (reservation.Event, bool) {
	r.mutex.Lock()
	defer r.mutex.Unlock()
	if len(r.events) == 0 {
		return reservation.Event{}, false
	}
	return r.events[len(r.events)-1], true
}
