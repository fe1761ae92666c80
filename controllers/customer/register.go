package customer

import (
	"os"

	"playwin/database"
	"playwin/helpers"
	"playwin/models"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type RegisterRequest struct {
	Name     string `json:"name"`
	Phone    string `json:"phone"`
	Password string `json:"password"`
}

func Register(c *fiber.Ctx) error {
	var req RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return helpers.JSONError(c, "INVALID_JSON")
	}

	if req.Name == "" || req.Phone == "" || req.Password == "" {
		return helpers.JSONError(c, "NAME_PHONE_AND_PASSWORD_REQUIRED")
	}
	if len(req.Password) < 6 {
		return helpers.JSONError(c, "PASSWORD_TOO_SHORT")
	}

	var existing models.Customer
	if err := database.DB.Where("phone = ?", req.Phone).First(&existing).Error; err == nil {
		return helpers.JSONError(c, "PHONE_ALREADY_REGISTERED")
	} else if err != gorm.ErrRecordNotFound {
		return helpers.JSONError(c, "DB_ERROR")
	}

	signupBonus := decimal.Zero
	if v := os.Getenv("SIGNUP_BONUS"); v != "" {
		if b, err := decimal.NewFromString(v); err == nil && b.IsPositive() {
			signupBonus = b
		}
	}

	passwordHash, err := helpers.HashPassword(req.Password)
	if err != nil {
		return helpers.JSONError(c, "FAILED_TO_HASH_PASSWORD")
	}

	cust := models.Customer{
		Name:          req.Name,
		Phone:         req.Phone,
		PasswordHash:  passwordHash,
		WalletBalance: decimal.Zero,
		BonusBalance:  signupBonus,
	}
	if err := database.DB.Create(&cust).Error; err != nil {
		return helpers.JSONError(c, "FAILED_TO_CREATE_CUSTOMER")
	}

	return helpers.JSONSuccess(c, "Registration successful", fiber.Map{
		"id":            cust.ID,
		"name":          cust.Name,
		"phone":         cust.Phone,
		"bonus_balance": cust.BonusBalance,
	})
}
