package customer

import (
	"playwin/database"
	"playwin/helpers"
	"playwin/models"

	"github.com/gofiber/fiber/v2"
)

func PaymentHistory(c *fiber.Ctx) error {
	cust, ok := c.Locals("customer").(models.Customer)
	if !ok {
		return helpers.JSONUnauthorized(c)
	}

	var transactions []models.WalletTransaction
	if err := database.DB.
		Where("customer_id = ?", cust.ID).
		Order("created_at desc").
		Limit(200).
		Find(&transactions).Error; err != nil {
		return helpers.JSONError(c, "FAILED_TO_LOAD_TRANSACTIONS")
	}

	return helpers.JSONSuccess(c, "Payment history retrieved successfully", transactions)
}
