package customer

import (
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func postCart(t *testing.T, body string) (int, string) {
	t.Helper()
	app := fiber.New()
	app.Post("/customer/cart", AddToCart)

	req := httptest.NewRequest("POST", "/customer/cart", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	b, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, string(b)
}

// Game IDs repeat across providers, so an add without a provider scope must
// be rejected before any lookup happens.
func TestAddToCartRequiresProviderID(t *testing.T) {
	status, body := postCart(t, `{"game_id":42,"digits":"7","quantity":1}`)

	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.Contains(t, body, "PROVIDER_ID_REQUIRED")
}

func TestAddToCartValidatesInput(t *testing.T) {
	status, body := postCart(t, `{"provider_id":1,"digits":"7","quantity":1}`)
	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.Contains(t, body, "GAME_ID_REQUIRED")

	status, body = postCart(t, `{"provider_id":1,"game_id":42,"digits":"7","quantity":0}`)
	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.Contains(t, body, "QUANTITY_MUST_BE_AT_LEAST_1")

	status, body = postCart(t, `{"provider_id":1,"game_id":42,"digits":"7a","quantity":1}`)
	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.Contains(t, body, "INVALID_DIGITS")
}
