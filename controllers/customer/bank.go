package customer

import (
	"playwin/database"
	"playwin/helpers"
	"playwin/models"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type BankDetailRequest struct {
	AccountHolder string `json:"account_holder"`
	AccountNumber string `json:"account_number"`
	BankName      string `json:"bank_name"`
	IFSC          string `json:"ifsc"`
}

// SaveBankDetails creates or replaces the customer's single bank detail row.
func SaveBankDetails(c *fiber.Ctx) error {
	var req BankDetailRequest
	if err := c.BodyParser(&req); err != nil {
		return helpers.JSONError(c, "INVALID_JSON")
	}

	if req.AccountHolder == "" || req.AccountNumber == "" || req.BankName == "" || req.IFSC == "" {
		return helpers.JSONError(c, "ALL_BANK_FIELDS_REQUIRED")
	}

	cust, ok := c.Locals("customer").(models.Customer)
	if !ok {
		return helpers.JSONUnauthorized(c)
	}

	var bank models.BankDetail
	err := database.DB.Where("customer_id = ?", cust.ID).First(&bank).Error
	if err != nil && err != gorm.ErrRecordNotFound {
		return helpers.JSONError(c, "DB_ERROR")
	}

	bank.CustomerID = cust.ID
	bank.AccountHolder = req.AccountHolder
	bank.AccountNumber = req.AccountNumber
	bank.BankName = req.BankName
	bank.IFSC = req.IFSC

	if err := database.DB.Save(&bank).Error; err != nil {
		return helpers.JSONError(c, "FAILED_TO_SAVE_BANK_DETAILS")
	}

	return helpers.JSONSuccess(c, "Bank details saved", bank)
}

func GetBankDetails(c *fiber.Ctx) error {
	cust, ok := c.Locals("customer").(models.Customer)
	if !ok {
		return helpers.JSONUnauthorized(c)
	}

	var bank models.BankDetail
	if err := database.DB.Where("customer_id = ?", cust.ID).First(&bank).Error; err != nil {
		return helpers.JSONError(c, "BANK_DETAILS_NOT_FOUND")
	}

	return helpers.JSONSuccess(c, "Bank details retrieved successfully", bank)
}
