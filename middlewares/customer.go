package middlewares

import (
	"strings"
	"time"

	"playwin/database"
	"playwin/helpers"
	"playwin/models"

	"github.com/gofiber/fiber/v2"
)

func CustomerAuthMiddleware(c *fiber.Ctx) error {
	auth := c.Get("Authorization")
	if auth == "" || !strings.HasPrefix(auth, "Bearer ") {
		return helpers.JSONUnauthorized(c)
	}

	token := strings.TrimSpace(strings.TrimPrefix(auth, "Bearer "))
	if token == "" {
		return helpers.JSONUnauthorized(c)
	}

	var session models.Session
	if err := database.DB.Preload("Customer").Where("sid = ?", token).First(&session).Error; err != nil {
		return helpers.JSONUnauthorized(c)
	}

	if time.Now().After(session.ExpiresAt) {
		database.DB.Unscoped().Delete(&session)
		return helpers.JSONUnauthorized(c)
	}

	if !session.Customer.IsActive {
		return helpers.JSONUnauthorized(c)
	}

	c.Locals("customer", session.Customer)
	c.Locals("session", session)
	return c.Next()
}
