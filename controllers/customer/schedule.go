package customer

import (
	"playwin/database"
	"playwin/helpers"
	"playwin/models"

	"github.com/gofiber/fiber/v2"
)

// GameSchedule serves the home screen: active banners plus a featured-game
// strip (a few games per active provider).
func GameSchedule(c *fiber.Ctx) error {
	var banners []models.Banner
	if err := database.DB.
		Where("is_active = true").
		Order("position asc").
		Find(&banners).Error; err != nil {
		return helpers.JSONError(c, "FAILED_TO_LOAD_BANNERS")
	}

	var providers []models.Provider
	if err := database.DB.Where("is_active = true").Find(&providers).Error; err != nil {
		return helpers.JSONError(c, "FAILED_TO_LOAD_PROVIDERS")
	}

	featured := make([]fiber.Map, 0)
	for _, p := range providers {
		var gameSlots []models.GameSlot
		database.DB.
			Where("provider_id = ?", p.ID).
			Order("slot_time_id asc").
			Limit(4).
			Find(&gameSlots)

		for _, gs := range gameSlots {
			featured = append(featured, fiber.Map{
				"provider_id":   p.ID,
				"provider_name": p.Name,
				"game_id":       gs.GameID,
				"game_name":     gs.GameName,
				"price":         gs.Price,
				"win_amount":    gs.WinAmount,
			})
		}
	}

	return helpers.JSONSuccess(c, "Schedule retrieved successfully", fiber.Map{
		"banners":        banners,
		"featured_games": featured,
	})
}
