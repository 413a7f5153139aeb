package gateway

import (
	"context"

	"github.com/fitlink/fitlink/internal/pkg/models"
)

// SendFlowMessage forwards to the WhatsApp gateway implementation
func (g *OnboardingGW) SendFlowMessage(ctx context.Context, msg *models.FlowMessage) error {
	return g.whatsappGateway.SendFlowMessage(ctx, msg)
}

// SendTextMessage forwards to the WhatsApp gateway implementation
func (g *OnboardingGW) SendTextMessage(ctx context.Context, to, text string) error {
	return g.whatsappGateway.SendTextMessage(ctx, to, text)
}

// PublishTrainerRegistered forwards to the NATS gateway implementation
func (g *OnboardingGW) PublishTrainerRegistered(ctx context.Context, trainer *models.Trainer) error {
	return g.natsGateway.PublishTrainerRegistered(ctx, trainer)
}

// PublishClientRegistered forwards to the NATS gateway implementation
func (g *OnboardingGW) PublishClientRegistered(ctx context.Context, client *models.Client) error {
	return g.natsGateway.PublishClientRegistered(ctx, client)
}

// PublishHabitLogged forwards to the NATS gateway implementation
func (g *OnboardingGW) PublishHabitLogged(ctx context.Context, entry *models.HabitEntry) error {
	return g.natsGateway.PublishHabitLogged(ctx, entry)
}
