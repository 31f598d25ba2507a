package services

import (
	"context"
	"errors"
	"time"

	"brickscapital/types"

	"github.com/getsentry/sentry-go"
	"go.uber.org/zap"
)

// EventPublisher delivers site events to a broker.
type EventPublisher interface {
	Publish(ctx context.Context, event types.SiteEvent) error
	Close()
}

// NewEvent stamps an event with the current time.
func NewEvent(eventType, visitorID, lang string, payload map[string]any) types.SiteEvent {
	return types.SiteEvent{
		Type:      eventType,
		VisitorID: visitorID,
		Language:  lang,
		Payload:   payload,
		CreatedAt: time.Now().UTC(),
	}
}

type logPublisher struct{}

// NewLogPublisher is used when no broker is configured.
func NewLogPublisher() EventPublisher {
	return logPublisher{}
}

func (logPublisher) Publish(_ context.Context, event types.SiteEvent) error {
	zap.L().Info("Site event", zap.String("type", event.Type), zap.String("visitor", event.VisitorID), zap.Any("payload", event.Payload))
	return nil
}

func (logPublisher) Close() {}

type fanoutPublisher struct {
	publishers []EventPublisher
}

// NewFanoutPublisher publishes every event to all publishers. With a single
// publisher it is returned as is.
func NewFanoutPublisher(publishers ...EventPublisher) EventPublisher {
	if len(publishers) == 0 {
		return NewLogPublisher()
	}
	if len(publishers) == 1 {
		return publishers[0]
	}
	return &fanoutPublisher{publishers: publishers}
}

func (f *fanoutPublisher) Publish(ctx context.Context, event types.SiteEvent) error {
	var errs []error
	for _, p := range f.publishers {
		if err := p.Publish(ctx, event); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func (f *fanoutPublisher) Close() {
	for _, p := range f.publishers {
		p.Close()
	}
}

// publishEvent never fails the caller: broker errors are logged and reported.
func publishEvent(ctx context.Context, publisher EventPublisher, event types.SiteEvent) {
	span := sentry.StartSpan(ctx, "[MQ] Publish "+event.Type)
	defer span.Finish()

	if err := publisher.Publish(span.Context(), event); err != nil {
		span.Status = sentry.SpanStatusInternalError
		sentry.CaptureException(err)
		zap.L().Error("Error publishing site event", zap.String("type", event.Type), zap.Error(err))
		return
	}
	span.Status = sentry.SpanStatusOK
}
