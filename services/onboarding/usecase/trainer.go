package usecase

import (
	"context"
	"strconv"

	"github.com/fitlink/fitlink/internal/pkg/apperrors"
	"github.com/fitlink/fitlink/internal/pkg/logger"
	"github.com/fitlink/fitlink/internal/pkg/models"
)

// handleTrainerOnboarding normalizes and persists a completed trainer
// onboarding form. A validation failure is returned as an error so the token
// survives for a corrected resubmission.
func (u *OnboardingUC) handleTrainerOnboarding(ctx context.Context, payload models.RawFlowPayload, token *models.FlowToken) (*models.FlowCompletionResult, error) {
	if result := u.validateTrainerPayload(payload); !result.Valid {
		return nil, apperrors.NewValidationError(result)
	}

	// ParseFloat cannot fail here; validation already checked it
	pricing, _ := strconv.ParseFloat(payload.String("pricing_per_session"), 64)

	trainer := &models.Trainer{
		PhoneNumber:        token.PhoneNumber,
		FullName:           payload.String("full_name"),
		Email:              payload.String("email"),
		Specializations:    mapOptions(u.labels.Specializations, payload.StringList("specializations")),
		ServicesOffered:    mapOptions(u.labels.ServicesOffered, payload.StringList("services_offered")),
		PricingPerSession:  pricing,
		PricingFlexibility: mapOption(u.labels.PricingOptions, payload.String("pricing_flexibility")),
		Availability:       payload.String("availability"),
		TermsAccepted:      payload.Bool("terms_accepted"),
		MarketingConsent:   payload.Bool("marketing_consent"),
		// Never honored from client input
		Status: models.StatusPendingApproval,
	}

	if err := u.repo.CreateTrainer(ctx, trainer); err != nil {
		return nil, err
	}

	// The record is committed; a failed publish only delays the approval
	// pipeline and must not fail the completion.
	if err := u.gw.PublishTrainerRegistered(ctx, trainer); err != nil {
		logger.Warn("Failed to publish trainer registered event",
			logger.String("trainer_id", trainer.ID.String()),
			logger.Err(err))
	}

	logger.Info("Trainer onboarded",
		logger.String("trainer_id", trainer.ID.String()),
		logger.String("phone_number", trainer.PhoneNumber))

	return &models.FlowCompletionResult{
		FlowType: models.FlowTrainerOnboarding,
		RecordID: trainer.ID.String(),
		Message:  "Trainer registration received and pending approval",
	}, nil
}
