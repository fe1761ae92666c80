package customer

import (
	"os"

	"playwin/database"
	"playwin/helpers"
	"playwin/models"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm/clause"
)

type WithdrawRequest struct {
	Amount decimal.Decimal `json:"amount"`
}

func minWithdrawAmount() decimal.Decimal {
	if v := os.Getenv("MIN_WITHDRAW_AMOUNT"); v != "" {
		if m, err := decimal.NewFromString(v); err == nil && m.IsPositive() {
			return m
		}
	}
	return decimal.NewFromInt(500)
}

// Withdraw creates a pending withdrawal against the wallet balance only;
// bonus balance is never withdrawable. Requires bank details on file.
func Withdraw(c *fiber.Ctx) error {
	var req WithdrawRequest
	if err := c.BodyParser(&req); err != nil {
		return helpers.JSONError(c, "INVALID_JSON")
	}

	custLocal, ok := c.Locals("customer").(models.Customer)
	if !ok {
		return helpers.JSONUnauthorized(c)
	}

	if req.Amount.LessThan(minWithdrawAmount()) {
		return helpers.JSONError(c, "BELOW_MINIMUM_WITHDRAWAL")
	}

	var bank models.BankDetail
	if err := database.DB.Where("customer_id = ?", custLocal.ID).First(&bank).Error; err != nil {
		return helpers.JSONError(c, "BANK_DETAILS_REQUIRED")
	}

	tx := database.DB.Begin()
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
		}
	}()

	var cust models.Customer
	if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&cust, custLocal.ID).Error; err != nil {
		tx.Rollback()
		return helpers.JSONError(c, "CUSTOMER_NOT_FOUND")
	}

	if cust.WalletBalance.LessThan(req.Amount) {
		tx.Rollback()
		return helpers.JSONError(c, "INSUFFICIENT_WALLET_BALANCE")
	}

	walletBefore := cust.WalletBalance
	cust.WalletBalance = cust.WalletBalance.Sub(req.Amount)
	if err := tx.Save(&cust).Error; err != nil {
		tx.Rollback()
		return helpers.JSONError(c, "FAILED_TO_UPDATE_BALANCE")
	}

	refID := uuid.New().String()
	withdrawal := models.Withdrawal{
		CustomerID:   cust.ID,
		BankDetailID: bank.ID,
		Amount:       req.Amount,
		Status:       "pending",
		RefID:        refID,
	}
	if err := tx.Create(&withdrawal).Error; err != nil {
		tx.Rollback()
		return helpers.JSONError(c, "FAILED_TO_CREATE_WITHDRAWAL")
	}

	wtx := models.WalletTransaction{
		CustomerID:    cust.ID,
		TrxType:       "withdraw",
		Amount:        req.Amount,
		BalanceBefore: walletBefore,
		BalanceAfter:  cust.WalletBalance,
		BonusBefore:   cust.BonusBalance,
		BonusAfter:    cust.BonusBalance,
		Note:          "Withdrawal request",
		RefID:         refID,
	}
	if err := tx.Create(&wtx).Error; err != nil {
		tx.Rollback()
		return helpers.JSONError(c, "FAILED_TO_CREATE_TRANSACTION")
	}

	if err := tx.Commit().Error; err != nil {
		return helpers.JSONError(c, "WITHDRAWAL_FAILED")
	}

	return helpers.JSONSuccess(c, "Withdrawal requested", fiber.Map{
		"ref_id":         refID,
		"amount":         withdrawal.Amount,
		"status":         withdrawal.Status,
		"wallet_balance": cust.WalletBalance,
	})
}

func WithdrawHistory(c *fiber.Ctx) error {
	cust, ok := c.Locals("customer").(models.Customer)
	if !ok {
		return helpers.JSONUnauthorized(c)
	}

	var withdrawals []models.Withdrawal
	if err := database.DB.
		Where("customer_id = ?", cust.ID).
		Order("created_at desc").
		Limit(100).
		Find(&withdrawals).Error; err != nil {
		return helpers.JSONError(c, "FAILED_TO_LOAD_WITHDRAWALS")
	}

	return helpers.JSONSuccess(c, "Withdrawals retrieved successfully", withdrawals)
}
