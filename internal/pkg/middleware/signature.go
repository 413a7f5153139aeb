package middleware

import (
	"bytes"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"io"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/fitlink/fitlink/internal/utils"
)

const (
	// SignatureHeader carries the webhook payload signature from the
	// WhatsApp Business Platform
	SignatureHeader = "X-Hub-Signature-256"

	signaturePrefix = "sha256="
)

// VerifyWebhookSignature validates the HMAC-SHA256 signature on inbound
// webhook deliveries against the configured app secret. The request body is
// re-buffered so downstream handlers can read it again.
func VerifyWebhookSignature(appSecret string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if appSecret == "" {
				// Verification disabled; local/dev setups only
				return next(c)
			}

			signature := c.Request().Header.Get(SignatureHeader)
			if !strings.HasPrefix(signature, signaturePrefix) {
				return utils.ErrorResponseHandler(c, http.StatusUnauthorized, "Missing payload signature")
			}

			body, err := io.ReadAll(c.Request().Body)
			if err != nil {
				return utils.BadRequestResponse(c, "Unable to read request body")
			}
			c.Request().Body = io.NopCloser(bytes.NewReader(body))

			mac := hmac.New(sha256.New, []byte(appSecret))
			mac.Write(body)
			expected := hex.EncodeToString(mac.Sum(nil))

			provided := strings.TrimPrefix(signature, signaturePrefix)
			if !hmac.Equal([]byte(expected), []byte(provided)) {
				return utils.ErrorResponseHandler(c, http.StatusUnauthorized, "Invalid payload signature")
			}

			return next(c)
		}
	}
}
