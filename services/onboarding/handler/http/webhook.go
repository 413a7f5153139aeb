package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/fitlink/fitlink/internal/pkg/apperrors"
	"github.com/fitlink/fitlink/internal/pkg/logger"
	"github.com/fitlink/fitlink/internal/pkg/models"
	"github.com/fitlink/fitlink/internal/utils"
	"github.com/fitlink/fitlink/services/onboarding"
)

// FlowPayloadDecryptor turns the raw response document carried by a flow
// reply into the field map the orchestrator consumes. The Cloud API delivers
// flow responses either in the clear or encrypted per-business; the handler
// does not care which, it only holds the seam.
type FlowPayloadDecryptor interface {
	Decrypt(responseJSON string) (models.RawFlowPayload, error)
}

// PassthroughDecryptor handles unencrypted flow responses, which arrive as a
// plain JSON object in response_json.
type PassthroughDecryptor struct{}

func (PassthroughDecryptor) Decrypt(responseJSON string) (models.RawFlowPayload, error) {
	var payload models.RawFlowPayload
	if err := json.Unmarshal([]byte(responseJSON), &payload); err != nil {
		return nil, err
	}
	return payload, nil
}

// WebhookHandler handles the WhatsApp webhook surface: subscription
// verification and flow-completion callbacks.
type WebhookHandler struct {
	onboardingUC onboarding.OnboardingUC
	cfg          *models.Config
	decryptor    FlowPayloadDecryptor
}

// NewWebhookHandler creates a new webhook handler
func NewWebhookHandler(
	onboardingUC onboarding.OnboardingUC,
	cfg *models.Config,
	decryptor FlowPayloadDecryptor,
) *WebhookHandler {
	if decryptor == nil {
		decryptor = PassthroughDecryptor{}
	}
	return &WebhookHandler{
		onboardingUC: onboardingUC,
		cfg:          cfg,
		decryptor:    decryptor,
	}
}

// Webhook envelope shapes, trimmed to the fields the orchestrator reads.
type webhookEnvelope struct {
	Object string         `json:"object"`
	Entry  []webhookEntry `json:"entry"`
}

type webhookEntry struct {
	ID      string          `json:"id"`
	Changes []webhookChange `json:"changes"`
}

type webhookChange struct {
	Field string       `json:"field"`
	Value webhookValue `json:"value"`
}

type webhookValue struct {
	Messages []webhookMessage `json:"messages"`
}

type webhookMessage struct {
	From        string              `json:"from"`
	Type        string              `json:"type"`
	Interactive *webhookInteractive `json:"interactive,omitempty"`
}

type webhookInteractive struct {
	Type     string           `json:"type"`
	NFMReply *webhookNFMReply `json:"nfm_reply,omitempty"`
}

type webhookNFMReply struct {
	Name         string `json:"name"`
	Body         string `json:"body"`
	ResponseJSON string `json:"response_json"`
}

// VerifyWebhook answers the Cloud API subscription handshake. Meta sends a
// GET with hub.mode, hub.verify_token and hub.challenge; the challenge must
// be echoed back verbatim on a match.
func (h *WebhookHandler) VerifyWebhook(c echo.Context) error {
	mode := c.QueryParam("hub.mode")
	token := c.QueryParam("hub.verify_token")
	challenge := c.QueryParam("hub.challenge")

	if mode != "subscribe" || token != h.cfg.WhatsApp.VerifyToken {
		logger.Warn("Webhook verification rejected",
			logger.String("mode", mode))
		return utils.ErrorResponseHandler(c, http.StatusForbidden, "Verification failed")
	}

	return c.String(http.StatusOK, challenge)
}

// HandleWebhook processes a webhook delivery. Flow replies are dispatched to
// the orchestrator; every other notification type is acknowledged and
// dropped so Meta does not retry it.
func (h *WebhookHandler) HandleWebhook(c echo.Context) error {
	var envelope webhookEnvelope
	if err := c.Bind(&envelope); err != nil {
		logger.Warn("Invalid webhook envelope",
			logger.Err(err))
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	reply := firstFlowReply(&envelope)
	if reply == nil {
		return utils.SuccessResponse(c, http.StatusOK, "Ignored", nil)
	}

	payload, err := h.decryptor.Decrypt(reply.ResponseJSON)
	if err != nil {
		logger.Warn("Failed to decode flow response",
			logger.Err(err))
		return utils.BadRequestResponse(c, "Invalid flow response payload")
	}

	result, err := h.onboardingUC.HandleFlowCompletion(c.Request().Context(), payload)
	if err != nil {
		return h.mapCompletionError(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, result.Message, result)
}

// mapCompletionError translates orchestrator errors onto the webhook's
// response contract
func (h *WebhookHandler) mapCompletionError(c echo.Context, err error) error {
	var vErr *apperrors.ValidationError
	switch {
	case errors.Is(err, apperrors.ErrMissingToken):
		return utils.BadRequestResponse(c, "Flow token is missing")
	case errors.Is(err, apperrors.ErrInvalidOrExpiredToken):
		return utils.NotFoundResponse(c, "Flow token is invalid or expired")
	case errors.As(err, &vErr):
		return utils.ErrorResponseWithDetails(c, http.StatusUnprocessableEntity,
			"Flow submission failed validation", vErr.Fields)
	case errors.Is(err, apperrors.ErrStorageUnavailable):
		return utils.ServiceUnavailableResponse(c, "Storage is unavailable")
	default:
		logger.Error("Flow completion failed",
			logger.Err(err))
		return utils.InternalServerErrorResponse(c, "Failed to process flow completion")
	}
}

// firstFlowReply walks the envelope for the first flow response. Deliveries
// batch multiple changes but flow replies arrive one per message in practice.
func firstFlowReply(envelope *webhookEnvelope) *webhookNFMReply {
	for _, entry := range envelope.Entry {
		for _, change := range entry.Changes {
			if change.Field != "messages" {
				continue
			}
			for _, msg := range change.Value.Messages {
				if msg.Interactive != nil && msg.Interactive.NFMReply != nil {
					return msg.Interactive.NFMReply
				}
			}
		}
	}
	return nil
}
