package onboarding

import (
	"context"

	"github.com/fitlink/fitlink/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/fitlink/fitlink/services/onboarding OnboardingUC

// OnboardingUC represents the flow session orchestrator interface
type OnboardingUC interface {
	// Entry points: deliver a flow, degrading per domain policy
	StartTrainerOnboarding(ctx context.Context, phoneNumber string) (*models.FlowSendResult, error)
	StartClientOnboarding(ctx context.Context, phoneNumber string) (*models.FlowSendResult, error)

	// Follow-up flows for registered users
	StartHabitSetupFlow(ctx context.Context, trainerPhone, clientPhone string) (*models.FlowSendResult, error)
	StartHabitLoggingFlow(ctx context.Context, clientPhone, habitID string) (*models.FlowSendResult, error)
	StartHabitProgressFlow(ctx context.Context, clientPhone string) (*models.FlowSendResult, error)
	StartProfileEditFlow(ctx context.Context, phoneNumber string, flowType models.FlowType) (*models.FlowSendResult, error)

	// Completion webhook dispatch
	HandleFlowCompletion(ctx context.Context, payload models.RawFlowPayload) (*models.FlowCompletionResult, error)
}
