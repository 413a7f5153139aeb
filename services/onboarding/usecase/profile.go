package usecase

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"github.com/fitlink/fitlink/internal/pkg/apperrors"
	"github.com/fitlink/fitlink/internal/pkg/logger"
	"github.com/fitlink/fitlink/internal/pkg/models"
)

// handleProfileEditTrainer applies a trainer's profile edit flow. Only the
// fields present in the payload are touched; everything else stays as is.
func (u *OnboardingUC) handleProfileEditTrainer(ctx context.Context, payload models.RawFlowPayload, token *models.FlowToken) (*models.FlowCompletionResult, error) {
	recordID, err := uuid.Parse(token.Payload["record_id"])
	if err != nil {
		return nil, apperrors.ErrInvalidOrExpiredToken
	}

	fields := map[string]interface{}{}
	if v := payload.String("full_name"); v != "" {
		fields["full_name"] = v
	}
	if v := payload.String("email"); v != "" {
		if !strings.Contains(v, "@") {
			result := models.ValidationResult{Valid: true}
			result.AddError("email", "email must be a valid address")
			return nil, apperrors.NewValidationError(result)
		}
		fields["email"] = v
	}
	if list := payload.StringList("specializations"); len(list) > 0 {
		fields["specializations"] = mapOptions(u.labels.Specializations, list)
	}
	if list := payload.StringList("services_offered"); len(list) > 0 {
		fields["services_offered"] = mapOptions(u.labels.ServicesOffered, list)
	}
	if raw := payload.String("pricing_per_session"); raw != "" {
		price, err := strconv.ParseFloat(raw, 64)
		if err != nil || price < u.cfg.Onboarding.PricingFloor {
			result := models.ValidationResult{Valid: true}
			result.AddError("pricing_per_session",
				fmt.Sprintf("pricing_per_session must be at least R%.0f", u.cfg.Onboarding.PricingFloor))
			return nil, apperrors.NewValidationError(result)
		}
		fields["pricing_per_session"] = price
	}
	if v := payload.String("pricing_flexibility"); v != "" {
		fields["pricing_flexibility"] = mapOption(u.labels.PricingOptions, v)
	}
	if list := payload.StringList("availability"); len(list) > 0 {
		fields["availability"] = strings.Join(list, ", ")
	}

	if len(fields) == 0 {
		return &models.FlowCompletionResult{
			FlowType: models.FlowProfileEditTrainer,
			RecordID: recordID.String(),
			Message:  "No changes submitted",
		}, nil
	}

	if err := u.repo.UpdateTrainerFields(ctx, recordID, fields); err != nil {
		return nil, err
	}

	logger.Info("Trainer profile updated",
		logger.String("trainer_id", recordID.String()),
		logger.Int("fields_changed", len(fields)))

	return &models.FlowCompletionResult{
		FlowType: models.FlowProfileEditTrainer,
		RecordID: recordID.String(),
		Message:  "Profile updated",
	}, nil
}

// handleProfileEditClient applies a client's profile edit flow
func (u *OnboardingUC) handleProfileEditClient(ctx context.Context, payload models.RawFlowPayload, token *models.FlowToken) (*models.FlowCompletionResult, error) {
	recordID, err := uuid.Parse(token.Payload["record_id"])
	if err != nil {
		return nil, apperrors.ErrInvalidOrExpiredToken
	}

	fields := map[string]interface{}{}
	if v := payload.String("full_name"); v != "" {
		fields["full_name"] = v
	}
	if v := payload.String("email"); v != "" {
		if !strings.Contains(v, "@") {
			result := models.ValidationResult{Valid: true}
			result.AddError("email", "email must be a valid address")
			return nil, apperrors.NewValidationError(result)
		}
		fields["email"] = v
	}
	if list := payload.StringList("fitness_goals"); len(list) > 0 {
		fields["fitness_goals"] = mapOptions(u.labels.FitnessGoals, list)
	}
	if v := payload.String("activity_level"); v != "" {
		fields["activity_level"] = mapOption(u.labels.ActivityLevels, v)
	}
	if list := payload.StringList("preferred_times"); len(list) > 0 {
		fields["preferred_times"] = strings.Join(list, ", ")
	}

	if len(fields) == 0 {
		return &models.FlowCompletionResult{
			FlowType: models.FlowProfileEditClient,
			RecordID: recordID.String(),
			Message:  "No changes submitted",
		}, nil
	}

	if err := u.repo.UpdateClientFields(ctx, recordID, fields); err != nil {
		return nil, err
	}

	logger.Info("Client profile updated",
		logger.String("client_id", recordID.String()),
		logger.Int("fields_changed", len(fields)))

	return &models.FlowCompletionResult{
		FlowType: models.FlowProfileEditClient,
		RecordID: recordID.String(),
		Message:  "Profile updated",
	}, nil
}
