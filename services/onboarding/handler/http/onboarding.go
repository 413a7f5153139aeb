package http

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/fitlink/fitlink/internal/pkg/apperrors"
	"github.com/fitlink/fitlink/internal/pkg/logger"
	"github.com/fitlink/fitlink/internal/pkg/models"
	"github.com/fitlink/fitlink/internal/utils"
	"github.com/fitlink/fitlink/services/onboarding"
)

// OnboardingHandler handles HTTP requests that start flow conversations
type OnboardingHandler struct {
	onboardingUC onboarding.OnboardingUC
}

// NewOnboardingHandler creates a new onboarding handler
func NewOnboardingHandler(onboardingUC onboarding.OnboardingUC) *OnboardingHandler {
	return &OnboardingHandler{onboardingUC: onboardingUC}
}

type startFlowRequest struct {
	PhoneNumber string `json:"phone_number"`
	// ClientPhone targets habit setup at a specific client
	ClientPhone string `json:"client_phone,omitempty"`
	// HabitID targets habit logging at a specific plan
	HabitID string `json:"habit_id,omitempty"`
}

// StartTrainerOnboarding delivers the trainer onboarding flow
func (h *OnboardingHandler) StartTrainerOnboarding(c echo.Context) error {
	var req startFlowRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	result, err := h.onboardingUC.StartTrainerOnboarding(c.Request().Context(), req.PhoneNumber)
	return h.respond(c, "trainer onboarding", result, err)
}

// StartClientOnboarding delivers the client onboarding flow
func (h *OnboardingHandler) StartClientOnboarding(c echo.Context) error {
	var req startFlowRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	result, err := h.onboardingUC.StartClientOnboarding(c.Request().Context(), req.PhoneNumber)
	return h.respond(c, "client onboarding", result, err)
}

// StartHabitSetup delivers the habit setup flow to a trainer
func (h *OnboardingHandler) StartHabitSetup(c echo.Context) error {
	var req startFlowRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}
	if req.ClientPhone == "" {
		return utils.BadRequestResponse(c, "client_phone is required")
	}

	result, err := h.onboardingUC.StartHabitSetupFlow(c.Request().Context(), req.PhoneNumber, req.ClientPhone)
	return h.respond(c, "habit setup", result, err)
}

// StartHabitLogging delivers the habit logging flow to a client
func (h *OnboardingHandler) StartHabitLogging(c echo.Context) error {
	var req startFlowRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}
	if req.HabitID == "" {
		return utils.BadRequestResponse(c, "habit_id is required")
	}

	result, err := h.onboardingUC.StartHabitLoggingFlow(c.Request().Context(), req.PhoneNumber, req.HabitID)
	return h.respond(c, "habit logging", result, err)
}

// StartHabitProgress delivers the habit progress flow to a client
func (h *OnboardingHandler) StartHabitProgress(c echo.Context) error {
	var req startFlowRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	result, err := h.onboardingUC.StartHabitProgressFlow(c.Request().Context(), req.PhoneNumber)
	return h.respond(c, "habit progress", result, err)
}

// StartTrainerProfileEdit delivers the profile edit flow to a trainer
func (h *OnboardingHandler) StartTrainerProfileEdit(c echo.Context) error {
	var req startFlowRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	result, err := h.onboardingUC.StartProfileEditFlow(c.Request().Context(), req.PhoneNumber, models.FlowProfileEditTrainer)
	return h.respond(c, "trainer profile edit", result, err)
}

// StartClientProfileEdit delivers the profile edit flow to a client
func (h *OnboardingHandler) StartClientProfileEdit(c echo.Context) error {
	var req startFlowRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	result, err := h.onboardingUC.StartProfileEditFlow(c.Request().Context(), req.PhoneNumber, models.FlowProfileEditClient)
	return h.respond(c, "client profile edit", result, err)
}

// respond maps a flow send result onto the HTTP contract. The outcome is the
// discriminator; callers inspect it rather than the status line.
func (h *OnboardingHandler) respond(c echo.Context, operation string, result *models.FlowSendResult, err error) error {
	if err != nil {
		var vErr *apperrors.ValidationError
		switch {
		case errors.As(err, &vErr):
			return utils.ErrorResponseWithDetails(c, http.StatusBadRequest,
				"Invalid request", vErr.Fields)
		case errors.Is(err, apperrors.ErrStorageUnavailable):
			return utils.ServiceUnavailableResponse(c, "Storage is unavailable")
		case errors.Is(err, apperrors.ErrDuplicateRecord):
			return utils.ErrorResponseHandler(c, http.StatusConflict, "Record already exists")
		default:
			logger.Error("Failed to start flow",
				logger.String("operation", operation),
				logger.Err(err))
			return utils.InternalServerErrorResponse(c, "Failed to start flow")
		}
	}

	status := http.StatusOK
	if result.Outcome == models.OutcomeFlowSent || result.Outcome == models.OutcomeTextFallback {
		status = http.StatusCreated
	}
	return utils.SuccessResponse(c, status, "Flow delivery attempted", result)
}
