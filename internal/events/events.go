// Package events publishes request lifecycle notifications to the
// message broker so downstream consumers (CRM sync, analytics) can react
// without coupling to the HTTP layer. Publishing is best effort and must
// never fail the originating operation.
package events

//go:generate go run go.uber.org/mock/mockgen -source=./events.go -destination=./mocks/events_mock.go -package=mocks

import (
	"context"
	"jumatrek/config"
	"jumatrek/infras/kafka"
	"jumatrek/infras/otel"
	"jumatrek/shared/constant"
	"jumatrek/shared/timezone"
	"time"

	"github.com/rs/zerolog/log"
)

type Type string

const (
	TypeTripRequested        Type = "custom_trip.requested"
	TypeTripStatusChanged    Type = "custom_trip.status_changed"
	TypeTripReplied          Type = "custom_trip.replied"
	TypeTripDeleted          Type = "custom_trip.deleted"
	TypeInquiryReceived      Type = "inquiry.received"
	TypeInquiryStatusChanged Type = "inquiry.status_changed"
	TypeInquiryReplied       Type = "inquiry.replied"
	TypeInquiryDeleted       Type = "inquiry.deleted"
)

// RequestEvent is the broker payload for a lifecycle transition on a
// custom trip request or an inquiry.
type RequestEvent struct {
	Type       Type      `json:"type"`
	RequestID  string    `json:"request_id"`
	UserID     string    `json:"user_id,omitempty"`
	Status     string    `json:"status,omitempty"`
	ActorEmail string    `json:"actor_email,omitempty"`
	OccurredAt time.Time `json:"occurred_at"`
}

type Publisher interface {
	Publish(ctx context.Context, event RequestEvent)
}

type kafkaPublisher struct {
	config *config.Config
	client kafka.Client
	otel   otel.Otel
}

func NewPublisher(config *config.Config, client kafka.Client, otel otel.Otel) Publisher {
	return &kafkaPublisher{
		config: config,
		client: client,
		otel:   otel,
	}
}

func (p *kafkaPublisher) Publish(ctx context.Context, event RequestEvent) {
	ctx, scope := p.otel.NewScope(ctx, constant.OtelEventScopeName, constant.OtelEventScopeName+".Publish")
	defer scope.End()

	if event.OccurredAt.IsZero() {
		event.OccurredAt = timezone.Now()
	}

	err := p.client.SendMessages(ctx, p.config.Kafka.Topics.RequestEvents, kafka.Message{
		Key:   event.RequestID,
		Value: event,
	})
	if err != nil {
		scope.TraceIfError(err)
		log.Error().Err(err).Str("type", string(event.Type)).Str("requestID", event.RequestID).
			Msg("[Events - Publish] Failed to publish request event")
	}
}
