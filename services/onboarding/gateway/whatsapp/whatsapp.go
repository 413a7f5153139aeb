package gateway_whatsapp

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/fitlink/fitlink/internal/pkg/apperrors"
	"github.com/fitlink/fitlink/internal/pkg/logger"
	"github.com/fitlink/fitlink/internal/pkg/models"
)

// WhatsAppGateway sends messages through the WhatsApp Cloud API
type WhatsAppGateway struct {
	cfg        *models.WhatsAppConfig
	httpClient *http.Client
}

// NewWhatsAppGateway creates a new WhatsApp Cloud API gateway
func NewWhatsAppGateway(cfg *models.WhatsAppConfig) *WhatsAppGateway {
	return &WhatsAppGateway{
		cfg:        cfg,
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
}

// Cloud API request shapes. Only the fields the onboarding service sends.
type messageRequest struct {
	MessagingProduct string          `json:"messaging_product"`
	RecipientType    string          `json:"recipient_type"`
	To               string          `json:"to"`
	Type             string          `json:"type"`
	Text             *textBody       `json:"text,omitempty"`
	Interactive      *interactiveDoc `json:"interactive,omitempty"`
}

type textBody struct {
	Body string `json:"body"`
}

type interactiveDoc struct {
	Type   string            `json:"type"`
	Header *interactiveText  `json:"header,omitempty"`
	Body   interactiveText   `json:"body"`
	Footer *interactiveText  `json:"footer,omitempty"`
	Action interactiveAction `json:"action"`
}

type interactiveText struct {
	Type string `json:"type,omitempty"`
	Text string `json:"text"`
}

type interactiveAction struct {
	Name       string              `json:"name"`
	Parameters actionFlowParameter `json:"parameters"`
}

type actionFlowParameter struct {
	FlowMessageVersion string             `json:"flow_message_version"`
	FlowToken          string             `json:"flow_token"`
	FlowID             string             `json:"flow_id"`
	FlowCTA            string             `json:"flow_cta"`
	FlowAction         string             `json:"flow_action"`
	FlowActionPayload  *flowActionPayload `json:"flow_action_payload,omitempty"`
}

type flowActionPayload struct {
	Screen string `json:"screen"`
}

// SendFlowMessage delivers an interactive flow message
func (g *WhatsAppGateway) SendFlowMessage(ctx context.Context, msg *models.FlowMessage) error {
	doc := &interactiveDoc{
		Type: "flow",
		Body: interactiveText{Text: msg.BodyText},
		Action: interactiveAction{
			Name: "flow",
			Parameters: actionFlowParameter{
				FlowMessageVersion: "3",
				FlowToken:          msg.FlowToken,
				FlowID:             msg.FlowID,
				FlowCTA:            msg.CTAText,
				FlowAction:         "navigate",
			},
		},
	}
	if msg.HeaderText != "" {
		doc.Header = &interactiveText{Type: "text", Text: msg.HeaderText}
	}
	if msg.FooterText != "" {
		doc.Footer = &interactiveText{Text: msg.FooterText}
	}
	if msg.InitialScreen != "" {
		doc.Action.Parameters.FlowActionPayload = &flowActionPayload{Screen: msg.InitialScreen}
	}

	req := &messageRequest{
		MessagingProduct: "whatsapp",
		RecipientType:    "individual",
		To:               msg.To,
		Type:             "interactive",
		Interactive:      doc,
	}

	return g.send(ctx, req)
}

// SendTextMessage delivers a plain text message
func (g *WhatsAppGateway) SendTextMessage(ctx context.Context, to, text string) error {
	req := &messageRequest{
		MessagingProduct: "whatsapp",
		RecipientType:    "individual",
		To:               to,
		Type:             "text",
		Text:             &textBody{Body: text},
	}

	return g.send(ctx, req)
}

func (g *WhatsAppGateway) send(ctx context.Context, payload *messageRequest) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal message request: %w", err)
	}

	url := fmt.Sprintf("%s/%s/%s/messages",
		g.cfg.BaseURL, g.cfg.APIVersion, g.cfg.PhoneNumberID)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to build message request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+g.cfg.AccessToken)

	resp, err := g.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", apperrors.ErrGatewayDeliveryFailed, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		respBody, _ := io.ReadAll(io.LimitReader(resp.Body, 2048))
		logger.Warn("Cloud API rejected message",
			logger.Int("status", resp.StatusCode),
			logger.String("to", payload.To),
			logger.String("response", string(respBody)))
		return fmt.Errorf("%w: cloud api returned %d", apperrors.ErrGatewayDeliveryFailed, resp.StatusCode)
	}

	return nil
}
