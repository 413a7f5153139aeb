package usecase

import (
	"context"

	"github.com/fitlink/fitlink/internal/pkg/models"
	"github.com/fitlink/fitlink/services/onboarding"
)

// flowHandler interprets one flow type's completion payload. The token record
// supplies the context captured at send time.
type flowHandler func(ctx context.Context, payload models.RawFlowPayload, token *models.FlowToken) (*models.FlowCompletionResult, error)

// OnboardingUC implements the flow session orchestrator
type OnboardingUC struct {
	cfg    *models.Config
	labels *models.FlowLabelConfig
	repo   onboarding.OnboardingRepo
	gw     onboarding.OnboardingGW

	// handlers is the closed dispatch table keyed by flow type
	handlers map[models.FlowType]flowHandler
}

// NewOnboardingUC creates a new onboarding usecase instance
func NewOnboardingUC(
	cfg *models.Config,
	labels *models.FlowLabelConfig,
	repo onboarding.OnboardingRepo,
	gw onboarding.OnboardingGW,
) *OnboardingUC {
	uc := &OnboardingUC{
		cfg:    cfg,
		labels: labels,
		repo:   repo,
		gw:     gw,
	}

	uc.handlers = map[models.FlowType]flowHandler{
		models.FlowTrainerOnboarding:  uc.handleTrainerOnboarding,
		models.FlowClientOnboarding:   uc.handleClientOnboarding,
		models.FlowTrainerHabitSetup:  uc.handleTrainerHabitSetup,
		models.FlowClientHabitLogging: uc.handleClientHabitLogging,
		models.FlowHabitProgress:      uc.handleHabitProgress,
		models.FlowProfileEditTrainer: uc.handleProfileEditTrainer,
		models.FlowProfileEditClient:  uc.handleProfileEditClient,
	}

	return uc
}
