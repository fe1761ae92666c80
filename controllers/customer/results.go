package customer

import (
	"time"

	"playwin/database"
	"playwin/helpers"
	"playwin/models"

	"github.com/gofiber/fiber/v2"
	"gorm.io/datatypes"
)

// Results lists draw results, newest first. Optional filters:
// ?date=YYYY-MM-DD and ?provider_id=N.
func Results(c *fiber.Ctx) error {
	query := database.DB.Model(&models.DrawResult{})

	if dateStr := c.Query("date"); dateStr != "" {
		d, err := time.Parse("2006-01-02", dateStr)
		if err != nil {
			return helpers.JSONError(c, "INVALID_DATE")
		}
		query = query.Where("game_date = ?", datatypes.Date(d))
	}

	if providerID := c.QueryInt("provider_id"); providerID > 0 {
		query = query.Where("provider_id = ?", providerID)
	}

	var results []models.DrawResult
	if err := query.
		Order("game_date desc, slot_time asc").
		Limit(200).
		Find(&results).Error; err != nil {
		return helpers.JSONError(c, "FAILED_TO_LOAD_RESULTS")
	}

	return helpers.JSONSuccess(c, "Results retrieved successfully", results)
}
