package usecase

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/fitlink/fitlink/internal/pkg/models"
)

// validateTrainerPayload checks a raw trainer onboarding payload before any
// persistence attempt. It returns field-level messages, never an error.
func (u *OnboardingUC) validateTrainerPayload(payload models.RawFlowPayload) models.ValidationResult {
	result := models.ValidationResult{Valid: true}

	requireField(&result, payload, "full_name")
	requireField(&result, payload, "email")
	requireField(&result, payload, "specializations")
	requireField(&result, payload, "services_offered")

	if email := payload.String("email"); email != "" && !strings.Contains(email, "@") {
		result.AddError("email", "email address is not valid")
	}

	pricing := payload.String("pricing_per_session")
	if pricing == "" {
		result.AddError("pricing_per_session", "pricing_per_session is required")
	} else if amount, err := strconv.ParseFloat(pricing, 64); err != nil {
		result.AddError("pricing_per_session", "pricing_per_session must be a number")
	} else if amount < u.cfg.Onboarding.PricingFloor {
		result.AddError("pricing_per_session",
			fmt.Sprintf("pricing_per_session must be at least R%.0f", u.cfg.Onboarding.PricingFloor))
	}

	if !payload.Bool("terms_accepted") {
		result.AddError("terms_accepted", "terms must be explicitly accepted")
	}

	return result
}

// validateClientPayload checks a raw client onboarding payload
func (u *OnboardingUC) validateClientPayload(payload models.RawFlowPayload) models.ValidationResult {
	result := models.ValidationResult{Valid: true}

	requireField(&result, payload, "full_name")
	requireField(&result, payload, "email")
	requireField(&result, payload, "fitness_goals")

	if email := payload.String("email"); email != "" && !strings.Contains(email, "@") {
		result.AddError("email", "email address is not valid")
	}

	if !payload.Bool("terms_accepted") {
		result.AddError("terms_accepted", "terms must be explicitly accepted")
	}

	return result
}

func requireField(result *models.ValidationResult, payload models.RawFlowPayload, field string) {
	if strings.TrimSpace(payload.String(field)) == "" && len(payload.StringList(field)) == 0 {
		result.AddError(field, fmt.Sprintf("%s is required", field))
	}
}
