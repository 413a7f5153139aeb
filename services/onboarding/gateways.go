package onboarding

import (
	"context"

	"github.com/fitlink/fitlink/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_gateway.go -package=mocks github.com/fitlink/fitlink/services/onboarding OnboardingGW

// OnboardingGW defines the onboarding gateway interface
type OnboardingGW interface {
	// WhatsApp Gateway
	SendFlowMessage(ctx context.Context, msg *models.FlowMessage) error
	SendTextMessage(ctx context.Context, to, text string) error

	// NATS Gateway
	PublishTrainerRegistered(ctx context.Context, trainer *models.Trainer) error
	PublishClientRegistered(ctx context.Context, client *models.Client) error
	PublishHabitLogged(ctx context.Context, entry *models.HabitEntry) error
}
