package customer

import (
	"playwin/helpers"
	"playwin/models"
	"playwin/orders"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
)

type CheckWalletRequest struct {
	Price    decimal.Decimal `json:"price"`
	Quantity int             `json:"quantity"`
}

// CheckWallet answers whether the customer can fund a draft bet and how the
// amount would be split across bonus and wallet. The cart add runs the same
// split; this endpoint only previews it.
func CheckWallet(c *fiber.Ctx) error {
	var req CheckWalletRequest
	if err := c.BodyParser(&req); err != nil {
		return helpers.JSONError(c, "INVALID_JSON")
	}

	if req.Quantity < 1 {
		return helpers.JSONError(c, "QUANTITY_MUST_BE_AT_LEAST_1")
	}
	if !req.Price.IsPositive() {
		return helpers.JSONError(c, "PRICE_MUST_BE_POSITIVE")
	}

	cust, ok := c.Locals("customer").(models.Customer)
	if !ok {
		return helpers.JSONUnauthorized(c)
	}

	amount := req.Price.Mul(decimal.NewFromInt(int64(req.Quantity)))
	split := orders.SplitFunds(amount, cust.WalletBalance, cust.BonusBalance)

	return helpers.JSONSuccess(c, "Wallet check completed", split)
}

func WalletBonusBalance(c *fiber.Ctx) error {
	cust, ok := c.Locals("customer").(models.Customer)
	if !ok {
		return helpers.JSONUnauthorized(c)
	}

	return helpers.JSONSuccess(c, "Balance retrieved successfully", fiber.Map{
		"wallet_balance": cust.WalletBalance,
		"bonus_balance":  cust.BonusBalance,
	})
}
