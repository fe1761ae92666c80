package customer

import (
	"time"

	"playwin/cart"
	"playwin/database"
	"playwin/helpers"
	"playwin/models"
	"playwin/orders"
	"playwin/slots"

	"github.com/gofiber/fiber/v2"
)

type AddToCartRequest struct {
	ProviderID uint   `json:"provider_id"`
	GameID     uint   `json:"game_id"`
	Digits     string `json:"digits"`
	Quantity   int    `json:"quantity"`
}

func isNumeric(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return len(s) > 0
}

// AddToCart adds one bet line to the session cart. Pricing comes from the
// stored schedule, never from the request, and the add is gated on the slot
// still being open and the funds check passing. On any rejection the cart is
// untouched. Game IDs are only unique per provider, so the lookup is scoped
// by provider_id.
func AddToCart(c *fiber.Ctx) error {
	var req AddToCartRequest
	if err := c.BodyParser(&req); err != nil {
		return helpers.JSONError(c, "INVALID_JSON")
	}

	if req.ProviderID == 0 {
		return helpers.JSONError(c, "PROVIDER_ID_REQUIRED")
	}
	if req.GameID == 0 {
		return helpers.JSONError(c, "GAME_ID_REQUIRED")
	}
	if req.Quantity < 1 {
		return helpers.JSONError(c, "QUANTITY_MUST_BE_AT_LEAST_1")
	}
	if !isNumeric(req.Digits) {
		return helpers.JSONError(c, "INVALID_DIGITS")
	}

	cust, ok := c.Locals("customer").(models.Customer)
	if !ok {
		return helpers.JSONUnauthorized(c)
	}
	session, ok := c.Locals("session").(models.Session)
	if !ok {
		return helpers.JSONUnauthorized(c)
	}

	var gameSlot models.GameSlot
	if err := database.DB.
		Where("game_id = ? AND provider_id = ?", req.GameID, req.ProviderID).
		First(&gameSlot).Error; err != nil {
		return helpers.JSONError(c, "GAME_NOT_FOUND")
	}

	var provider models.Provider
	if err := database.DB.First(&provider, gameSlot.ProviderID).Error; err != nil {
		return helpers.JSONError(c, "PROVIDER_NOT_FOUND")
	}

	open, err := slots.IsOpen(gameSlot.SlotTime, provider.CloseMinutes, time.Now())
	if err != nil || !open {
		return helpers.JSONError(c, "SLOT_CLOSED")
	}

	item, split := orders.Default.GatedAdd(session.SID, cart.Item{
		GameID:     gameSlot.GameID,
		GameName:   gameSlot.GameName,
		Provider:   provider.Name,
		SlotTimeID: gameSlot.SlotTimeID,
		SlotTime:   gameSlot.SlotTime,
		Digits:     req.Digits,
		Price:      gameSlot.Price,
		Quantity:   req.Quantity,
		WinAmount:  gameSlot.WinAmount,
	}, cust.WalletBalance, cust.BonusBalance)
	if !split.Allowed {
		return helpers.JSONError(c, "INSUFFICIENT_WALLET_BALANCE")
	}

	return helpers.JSONSuccess(c, "Added to cart", fiber.Map{
		"item": item,
		"cart": cart.Sessions.Get(session.SID),
	})
}

func GetCart(c *fiber.Ctx) error {
	session, ok := c.Locals("session").(models.Session)
	if !ok {
		return helpers.JSONUnauthorized(c)
	}

	return helpers.JSONSuccess(c, "Cart retrieved successfully", cart.Sessions.Get(session.SID))
}

// RemoveFromCart deletes one line. Removing an unknown cart id is not an
// error; the current cart is returned either way.
func RemoveFromCart(c *fiber.Ctx) error {
	session, ok := c.Locals("session").(models.Session)
	if !ok {
		return helpers.JSONUnauthorized(c)
	}

	cartID := c.Params("cartId")
	cart.Sessions.Remove(session.SID, cartID)

	return helpers.JSONSuccess(c, "Item removed", cart.Sessions.Get(session.SID))
}

func ClearCart(c *fiber.Ctx) error {
	session, ok := c.Locals("session").(models.Session)
	if !ok {
		return helpers.JSONUnauthorized(c)
	}

	cart.Sessions.Clear(session.SID)
	return helpers.JSONSuccess(c, "Cart cleared", cart.Sessions.Get(session.SID))
}
