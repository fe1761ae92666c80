package customer

import (
	"os"
	"strconv"
	"time"

	"playwin/database"
	"playwin/helpers"
	"playwin/models"

	"github.com/gofiber/fiber/v2"
)

type LoginRequest struct {
	Phone    string `json:"phone"`
	Password string `json:"password"`
}

func Login(c *fiber.Ctx) error {
	var req LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return helpers.JSONError(c, "INVALID_JSON")
	}

	if req.Phone == "" || req.Password == "" {
		return helpers.JSONError(c, "PHONE_AND_PASSWORD_REQUIRED")
	}

	var cust models.Customer
	if err := database.DB.Where("phone = ? AND is_active = true", req.Phone).First(&cust).Error; err != nil {
		return helpers.JSONError(c, "INVALID_CREDENTIALS")
	}

	if !helpers.VerifyPassword(req.Password, cust.PasswordHash) {
		return helpers.JSONError(c, "INVALID_CREDENTIALS")
	}

	ttlHours, err := strconv.Atoi(os.Getenv("SESSION_TTL_HOURS"))
	if err != nil || ttlHours <= 0 {
		ttlHours = 72
	}

	session := models.Session{
		CustomerID: cust.ID,
		ExpiresAt:  time.Now().Add(time.Duration(ttlHours) * time.Hour),
	}
	if err := database.DB.Create(&session).Error; err != nil {
		return helpers.JSONError(c, "FAILED_TO_CREATE_SESSION")
	}

	return helpers.JSONSuccess(c, "Login successful", fiber.Map{
		"token": session.SID,
		"user": fiber.Map{
			"id":    cust.ID,
			"name":  cust.Name,
			"phone": cust.Phone,
		},
	})
}
