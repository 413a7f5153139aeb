package gateway

import (
	"github.com/fitlink/fitlink/internal/pkg/models"
	natspkg "github.com/fitlink/fitlink/internal/pkg/nats"
	gateway_nats "github.com/fitlink/fitlink/services/onboarding/gateway/nats"
	gateway_whatsapp "github.com/fitlink/fitlink/services/onboarding/gateway/whatsapp"
)

// OnboardingGW aggregates the protocol-specific gateways behind the single
// interface the usecase depends on
type OnboardingGW struct {
	whatsappGateway *gateway_whatsapp.WhatsAppGateway
	natsGateway     *gateway_nats.NATSGateway
}

// NewOnboardingGW creates a new onboarding gateway
func NewOnboardingGW(cfg *models.Config, natsClient *natspkg.Client) *OnboardingGW {
	return &OnboardingGW{
		whatsappGateway: gateway_whatsapp.NewWhatsAppGateway(&cfg.WhatsApp),
		natsGateway:     gateway_nats.NewNATSGateway(natsClient),
	}
}
