package middleware

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
)

func setupProtectedApp(authToken string) *fiber.App {
	app := fiber.New()
	app.Post("/webhook/whatsapp", ValidateTwilioSignature(authToken), func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})
	return app
}

func webhookRequest(signature string) *http.Request {
	form := url.Values{
		"From":     {"whatsapp:+5511999999999"},
		"Body":     {"oi"},
		"NumMedia": {"0"},
	}
	req := httptest.NewRequest(http.MethodPost, "/webhook/whatsapp", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	if signature != "" {
		req.Header.Set("X-Twilio-Signature", signature)
	}
	return req
}

func TestMissingSignatureRejected(t *testing.T) {
	app := setupProtectedApp("secret")

	resp, err := app.Test(webhookRequest(""))

	assert.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestInvalidSignatureRejected(t *testing.T) {
	app := setupProtectedApp("secret")

	resp, err := app.Test(webhookRequest("not-a-real-signature"))

	assert.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestValidSignatureAccepted(t *testing.T) {
	app := setupProtectedApp("secret")

	params := map[string]string{
		"From":     "whatsapp:+5511999999999",
		"Body":     "oi",
		"NumMedia": "0",
	}
	signature := computeSignature("secret", "http://example.com/webhook/whatsapp", params)

	resp, err := app.Test(webhookRequest(signature))

	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}
