package customer

import (
	"playwin/helpers"
	"playwin/models"

	"github.com/gofiber/fiber/v2"
)

func Profile(c *fiber.Ctx) error {
	cust, ok := c.Locals("customer").(models.Customer)
	if !ok {
		return helpers.JSONUnauthorized(c)
	}

	return helpers.JSONSuccess(c, "Profile retrieved successfully", fiber.Map{
		"id":             cust.ID,
		"name":           cust.Name,
		"phone":          cust.Phone,
		"wallet_balance": cust.WalletBalance,
		"bonus_balance":  cust.BonusBalance,
		"member_since":   cust.CreatedAt,
	})
}
