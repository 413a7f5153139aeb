package gateway_nats

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/fitlink/fitlink/internal/pkg/constants"
	"github.com/fitlink/fitlink/internal/pkg/logger"
	"github.com/fitlink/fitlink/internal/pkg/models"
	natspkg "github.com/fitlink/fitlink/internal/pkg/nats"
	"github.com/fitlink/fitlink/internal/pkg/retry"
)

// NATSGateway implements the event publishing operations for the onboarding
// service. Publishes are retried with backoff; the broker drops the message
// on sustained failure and the caller decides whether that matters.
type NATSGateway struct {
	client  *natspkg.Client
	retrier *retry.Retrier
}

// NewNATSGateway creates a new NATS gateway
func NewNATSGateway(client *natspkg.Client) *NATSGateway {
	return &NATSGateway{
		client:  client,
		retrier: retry.NewWithDefaults(),
	}
}

func (g *NATSGateway) publish(ctx context.Context, subject string, payload interface{}) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal event for %s: %w", subject, err)
	}

	err = g.retrier.Execute(ctx, func(ctx context.Context) error {
		return g.client.Publish(subject, data)
	})
	if err != nil {
		logger.Error("Failed to publish event",
			logger.String("subject", subject),
			logger.Err(err))
		return fmt.Errorf("failed to publish event to %s: %w", subject, err)
	}

	return nil
}

// PublishTrainerRegistered announces a newly registered trainer awaiting approval
func (g *NATSGateway) PublishTrainerRegistered(ctx context.Context, trainer *models.Trainer) error {
	return g.publish(ctx, constants.SubjectTrainerRegistered, trainer)
}

// PublishClientRegistered announces a newly registered client
func (g *NATSGateway) PublishClientRegistered(ctx context.Context, client *models.Client) error {
	return g.publish(ctx, constants.SubjectClientRegistered, client)
}

// PublishHabitLogged announces a habit entry so trainer-facing surfaces can react
func (g *NATSGateway) PublishHabitLogged(ctx context.Context, entry *models.HabitEntry) error {
	return g.publish(ctx, constants.SubjectHabitLogged, entry)
}
