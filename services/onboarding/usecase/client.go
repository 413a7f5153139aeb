package usecase

import (
	"context"

	"github.com/fitlink/fitlink/internal/pkg/apperrors"
	"github.com/fitlink/fitlink/internal/pkg/logger"
	"github.com/fitlink/fitlink/internal/pkg/models"
)

// handleClientOnboarding normalizes and persists a completed client
// onboarding form
func (u *OnboardingUC) handleClientOnboarding(ctx context.Context, payload models.RawFlowPayload, token *models.FlowToken) (*models.FlowCompletionResult, error) {
	if result := u.validateClientPayload(payload); !result.Valid {
		return nil, apperrors.NewValidationError(result)
	}

	client := &models.Client{
		PhoneNumber:      token.PhoneNumber,
		FullName:         payload.String("full_name"),
		Email:            payload.String("email"),
		FitnessGoals:     mapOptions(u.labels.FitnessGoals, payload.StringList("fitness_goals")),
		ActivityLevel:    mapOption(u.labels.ActivityLevels, payload.String("activity_level")),
		PreferredTimes:   payload.String("preferred_times"),
		TermsAccepted:    payload.Bool("terms_accepted"),
		MarketingConsent: payload.Bool("marketing_consent"),
		Status:           models.StatusPendingApproval,
	}

	if err := u.repo.CreateClient(ctx, client); err != nil {
		return nil, err
	}

	if err := u.gw.PublishClientRegistered(ctx, client); err != nil {
		logger.Warn("Failed to publish client registered event",
			logger.String("client_id", client.ID.String()),
			logger.Err(err))
	}

	logger.Info("Client onboarded",
		logger.String("client_id", client.ID.String()),
		logger.String("phone_number", client.PhoneNumber))

	return &models.FlowCompletionResult{
		FlowType: models.FlowClientOnboarding,
		RecordID: client.ID.String(),
		Message:  "Client registration received and pending approval",
	}, nil
}
