package gateway_whatsapp

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fitlink/fitlink/internal/pkg/apperrors"
	"github.com/fitlink/fitlink/internal/pkg/models"
)

func setupGatewayTest(t *testing.T, handler http.HandlerFunc) *WhatsAppGateway {
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	return NewWhatsAppGateway(&models.WhatsAppConfig{
		BaseURL:       server.URL,
		APIVersion:    "v20.0",
		PhoneNumberID: "1234567890",
		AccessToken:   "test-access-token",
	})
}

func TestSendFlowMessage(t *testing.T) {
	var captured map[string]interface{}
	gw := setupGatewayTest(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v20.0/1234567890/messages", r.URL.Path)
		assert.Equal(t, "Bearer test-access-token", r.Header.Get("Authorization"))

		body, _ := io.ReadAll(r.Body)
		require.NoError(t, json.Unmarshal(body, &captured))

		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"messages":[{"id":"wamid.1"}]}`))
	})

	err := gw.SendFlowMessage(context.Background(), &models.FlowMessage{
		To:            "+27821234567",
		HeaderText:    "Become a FitLink Trainer",
		BodyText:      "Tell us about your coaching business.",
		FooterText:    "Takes about 3 minutes",
		CTAText:       "Start registration",
		FlowID:        "flow-1",
		FlowToken:     "token-1",
		InitialScreen: "TRAINER_DETAILS",
	})

	require.NoError(t, err)
	assert.Equal(t, "whatsapp", captured["messaging_product"])
	assert.Equal(t, "interactive", captured["type"])

	interactive := captured["interactive"].(map[string]interface{})
	assert.Equal(t, "flow", interactive["type"])

	params := interactive["action"].(map[string]interface{})["parameters"].(map[string]interface{})
	assert.Equal(t, "3", params["flow_message_version"])
	assert.Equal(t, "token-1", params["flow_token"])
	assert.Equal(t, "flow-1", params["flow_id"])
	assert.Equal(t, "Start registration", params["flow_cta"])
	assert.Equal(t, "navigate", params["flow_action"])
	assert.Equal(t, "TRAINER_DETAILS",
		params["flow_action_payload"].(map[string]interface{})["screen"])
}

func TestSendTextMessage(t *testing.T) {
	var captured map[string]interface{}
	gw := setupGatewayTest(t, func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		require.NoError(t, json.Unmarshal(body, &captured))
		w.WriteHeader(http.StatusOK)
	})

	err := gw.SendTextMessage(context.Background(), "+27731234567", "What is your full name?")

	require.NoError(t, err)
	assert.Equal(t, "text", captured["type"])
	assert.Equal(t, "+27731234567", captured["to"])
	assert.Equal(t, "What is your full name?",
		captured["text"].(map[string]interface{})["body"])
}

func TestSend_CloudAPIRejection(t *testing.T) {
	gw := setupGatewayTest(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"error":{"message":"Invalid OAuth access token"}}`))
	})

	err := gw.SendTextMessage(context.Background(), "+27731234567", "hello")

	assert.ErrorIs(t, err, apperrors.ErrGatewayDeliveryFailed)
}

func TestSend_ConnectionFailure(t *testing.T) {
	gw := NewWhatsAppGateway(&models.WhatsAppConfig{
		BaseURL:       "http://127.0.0.1:1",
		APIVersion:    "v20.0",
		PhoneNumberID: "1234567890",
	})

	err := gw.SendTextMessage(context.Background(), "+27731234567", "hello")

	assert.ErrorIs(t, err, apperrors.ErrGatewayDeliveryFailed)
}
