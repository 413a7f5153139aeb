package middleware

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func signBody(secret, body string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(body))
	return signaturePrefix + hex.EncodeToString(mac.Sum(nil))
}

func runSignatureMiddleware(t *testing.T, secret, body, signature string) (*httptest.ResponseRecorder, bool) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/webhook", strings.NewReader(body))
	if signature != "" {
		req.Header.Set(SignatureHeader, signature)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	reachedHandler := false
	handler := VerifyWebhookSignature(secret)(func(c echo.Context) error {
		reachedHandler = true
		// Downstream must still be able to read the body
		b, err := io.ReadAll(c.Request().Body)
		require.NoError(t, err)
		assert.Equal(t, body, string(b))
		return c.NoContent(http.StatusOK)
	})

	require.NoError(t, handler(c))
	return rec, reachedHandler
}

func TestVerifyWebhookSignature_Valid(t *testing.T) {
	body := `{"object":"whatsapp_business_account"}`

	rec, reached := runSignatureMiddleware(t, "app-secret", body, signBody("app-secret", body))

	assert.True(t, reached)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestVerifyWebhookSignature_WrongSecret(t *testing.T) {
	body := `{"object":"whatsapp_business_account"}`

	rec, reached := runSignatureMiddleware(t, "app-secret", body, signBody("other-secret", body))

	assert.False(t, reached)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestVerifyWebhookSignature_TamperedBody(t *testing.T) {
	signature := signBody("app-secret", `{"object":"whatsapp_business_account"}`)

	rec, reached := runSignatureMiddleware(t, "app-secret", `{"object":"tampered"}`, signature)

	assert.False(t, reached)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestVerifyWebhookSignature_MissingHeader(t *testing.T) {
	rec, reached := runSignatureMiddleware(t, "app-secret", `{}`, "")

	assert.False(t, reached)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestVerifyWebhookSignature_DisabledWithoutSecret(t *testing.T) {
	_, reached := runSignatureMiddleware(t, "", `{}`, "")

	assert.True(t, reached)
}
