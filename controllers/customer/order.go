package customer

import (
	"errors"

	"playwin/cart"
	"playwin/database"
	"playwin/helpers"
	"playwin/models"
	"playwin/orders"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm/clause"
)

// PlaceOrder submits the whole session cart as one order. The balance
// deduction, order rows and wallet transaction commit together inside the
// checkout submit step; the reconciler clears the cart only when that step
// succeeds, so a failed checkout leaves every item in place for retry.
func PlaceOrder(c *fiber.Ctx) error {
	custLocal, ok := c.Locals("customer").(models.Customer)
	if !ok {
		return helpers.JSONUnauthorized(c)
	}
	session, ok := c.Locals("session").(models.Session)
	if !ok {
		return helpers.JSONUnauthorized(c)
	}

	var order models.Order
	var cust models.Customer

	err := orders.Default.Checkout(session.SID, func(snapshot cart.Cart) error {
		tx := database.DB.Begin()
		defer func() {
			if r := recover(); r != nil {
				tx.Rollback()
			}
		}()

		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&cust, custLocal.ID).Error; err != nil {
			tx.Rollback()
			return errors.New("CUSTOMER_NOT_FOUND")
		}
		if !cust.IsActive {
			tx.Rollback()
			return errors.New("CUSTOMER_INACTIVE")
		}

		split := orders.SplitFunds(snapshot.TotalAmount, cust.WalletBalance, cust.BonusBalance)
		if !split.Allowed {
			tx.Rollback()
			return errors.New("INSUFFICIENT_WALLET_BALANCE")
		}

		walletBefore := cust.WalletBalance
		bonusBefore := cust.BonusBalance
		cust.WalletBalance = cust.WalletBalance.Sub(split.RequiredWallet)
		cust.BonusBalance = cust.BonusBalance.Sub(split.RequiredBonus)

		if err := tx.Save(&cust).Error; err != nil {
			tx.Rollback()
			return errors.New("FAILED_TO_UPDATE_BALANCE")
		}

		order = models.Order{
			RefID:       uuid.New().String(),
			CustomerID:  cust.ID,
			TotalAmount: snapshot.TotalAmount,
			WalletPaid:  split.RequiredWallet,
			BonusPaid:   split.RequiredBonus,
			Status:      "placed",
		}
		if err := tx.Create(&order).Error; err != nil {
			tx.Rollback()
			return errors.New("FAILED_TO_CREATE_ORDER")
		}

		for _, it := range snapshot.Items {
			item := models.OrderItem{
				OrderID:    order.ID,
				GameID:     it.GameID,
				GameName:   it.GameName,
				Provider:   it.Provider,
				SlotTimeID: it.SlotTimeID,
				SlotTime:   it.SlotTime,
				Digits:     it.Digits,
				Price:      it.Price,
				Quantity:   it.Quantity,
				WinAmount:  it.WinAmount,
			}
			if err := tx.Create(&item).Error; err != nil {
				tx.Rollback()
				return errors.New("FAILED_TO_CREATE_ORDER_ITEMS")
			}
		}

		wtx := models.WalletTransaction{
			CustomerID:    cust.ID,
			TrxType:       "order",
			Amount:        snapshot.TotalAmount,
			BalanceBefore: walletBefore,
			BalanceAfter:  cust.WalletBalance,
			BonusBefore:   bonusBefore,
			BonusAfter:    cust.BonusBalance,
			Note:          "Order " + order.RefID,
			RefID:         order.RefID,
		}
		if err := tx.Create(&wtx).Error; err != nil {
			tx.Rollback()
			return errors.New("FAILED_TO_CREATE_TRANSACTION")
		}

		if err := tx.Commit().Error; err != nil {
			return errors.New("ORDER_FAILED")
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, orders.ErrCartEmpty) {
			return helpers.JSONError(c, "CART_EMPTY")
		}
		return helpers.JSONError(c, err.Error())
	}

	return helpers.JSONSuccess(c, "Order placed successfully", fiber.Map{
		"order_id":       order.RefID,
		"total_amount":   order.TotalAmount,
		"wallet_paid":    order.WalletPaid,
		"bonus_paid":     order.BonusPaid,
		"wallet_balance": cust.WalletBalance,
		"bonus_balance":  cust.BonusBalance,
	})
}

func OrdersHistory(c *fiber.Ctx) error {
	cust, ok := c.Locals("customer").(models.Customer)
	if !ok {
		return helpers.JSONUnauthorized(c)
	}

	var orderRows []models.Order
	if err := database.DB.
		Preload("Items").
		Where("customer_id = ?", cust.ID).
		Order("created_at desc").
		Limit(100).
		Find(&orderRows).Error; err != nil {
		return helpers.JSONError(c, "FAILED_TO_LOAD_ORDERS")
	}

	return helpers.JSONSuccess(c, "Orders retrieved successfully", orderRows)
}
