package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/fitlink/fitlink/internal/pkg/middleware"
	"github.com/fitlink/fitlink/internal/pkg/models"
	"github.com/fitlink/fitlink/services/onboarding/handler/http"
)

// Handler coordinates all protocol handlers for the onboarding service
type Handler struct {
	webhookHandler    *http.WebhookHandler
	onboardingHandler *http.OnboardingHandler
	cfg               *models.Config
}

// NewHandler creates and initializes all handlers
func NewHandler(
	webhookHandler *http.WebhookHandler,
	onboardingHandler *http.OnboardingHandler,
	cfg *models.Config,
) *Handler {
	return &Handler{
		webhookHandler:    webhookHandler,
		onboardingHandler: onboardingHandler,
		cfg:               cfg,
	}
}

// RegisterRoutes registers all protocol handlers and their routes
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	// Meta webhook surface. The POST leg is signature-checked; the GET leg is
	// the subscription handshake and carries no body to sign.
	e.GET("/webhook", h.webhookHandler.VerifyWebhook)
	e.POST("/webhook", h.webhookHandler.HandleWebhook,
		middleware.VerifyWebhookSignature(h.cfg.WhatsApp.AppSecret))

	// Internal flow entry points, called by back-office tooling and the
	// conversational engine
	flowGroup := e.Group("/flows")
	flowGroup.POST("/trainer-onboarding", h.onboardingHandler.StartTrainerOnboarding)
	flowGroup.POST("/client-onboarding", h.onboardingHandler.StartClientOnboarding)
	flowGroup.POST("/habit-setup", h.onboardingHandler.StartHabitSetup)
	flowGroup.POST("/habit-logging", h.onboardingHandler.StartHabitLogging)
	flowGroup.POST("/habit-progress", h.onboardingHandler.StartHabitProgress)
	flowGroup.POST("/trainer-profile-edit", h.onboardingHandler.StartTrainerProfileEdit)
	flowGroup.POST("/client-profile-edit", h.onboardingHandler.StartClientProfileEdit)
}
