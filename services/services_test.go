package services

import (
	"context"
	"errors"
	"sync"

	"brickscapital/types"
)

// recordingPublisher captures published events.
type recordingPublisher struct {
	mu     sync.Mutex
	events []types.SiteEvent
	err    error
	closed bool
}

func (r *recordingPublisher) Publish(_ context.Context, event types.SiteEvent) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return r.err
	}
	r.events = append(r.events, event)
	return nil
}

func (r *recordingPublisher) Close() {
	r.closed = true
}

func (r *recordingPublisher) Events() []types.SiteEvent {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]types.SiteEvent(nil), r.events...)
}

type failingEnquiryStore struct{}

func (failingEnquiryStore) Save(context.Context, types.Enquiry) error {
	return errors.New("store unavailable")
}

func (failingEnquiryStore) List(context.Context) ([]types.Enquiry, error) {
	return nil, errors.New("store unavailable")
}

type failingCalculatorStore struct{}

func (failingCalculatorStore) Load(context.Context, string) (types.CalculatorState, bool, error) {
	return types.CalculatorState{}, false, errors.New("redis down")
}

func (failingCalculatorStore) Save(context.Context, string, types.CalculatorState) error {
	return errors.New("redis down")
}
