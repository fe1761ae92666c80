package customer

import (
	"errors"
	"time"

	"playwin/database"
	"playwin/games"
	"playwin/helpers"
	"playwin/models"
	"playwin/slots"

	"github.com/gofiber/fiber/v2"
)

func loadProvider(c *fiber.Ctx) (models.Provider, error) {
	providerID, err := c.ParamsInt("providerId")
	if err != nil || providerID <= 0 {
		return models.Provider{}, errors.New("INVALID_PROVIDER_ID")
	}

	var provider models.Provider
	if err := database.DB.Where("id = ? AND is_active = true", providerID).First(&provider).Error; err != nil {
		return models.Provider{}, errors.New("PROVIDER_NOT_FOUND")
	}
	return provider, nil
}

// ProviderSlots lists the provider's slot windows for today, with each
// window resolved to open or closed against the current clock.
func ProviderSlots(c *fiber.Ctx) error {
	provider, err := loadProvider(c)
	if err != nil {
		return helpers.JSONError(c, err.Error())
	}

	var gameSlots []models.GameSlot
	if err := database.DB.Where("provider_id = ?", provider.ID).Find(&gameSlots).Error; err != nil {
		return helpers.JSONError(c, "FAILED_TO_LOAD_SCHEDULE")
	}

	raw := make(map[string][]slots.Entry)
	for _, gs := range gameSlots {
		raw[gs.GroupKey] = append(raw[gs.GroupKey], slots.Entry{
			SlotTimeID: gs.SlotTimeID,
			SlotTime:   gs.SlotTime,
		})
	}

	windows, err := slots.Resolve(raw, provider.CloseMinutes, time.Now())
	if err != nil {
		if errors.Is(err, slots.ErrNoSlotsAvailable) {
			return helpers.JSONError(c, "NO_SLOTS_AVAILABLE")
		}
		return helpers.JSONError(c, "FAILED_TO_RESOLVE_SLOTS")
	}

	return helpers.JSONSuccess(c, "Slots retrieved successfully", fiber.Map{
		"provider_id":   provider.ID,
		"provider_name": provider.Name,
		"close_minutes": provider.CloseMinutes,
		"slots":         windows,
	})
}

// SlotGames lists the games of one slot window, grouped by the upstream
// price/win-amount key.
func SlotGames(c *fiber.Ctx) error {
	provider, err := loadProvider(c)
	if err != nil {
		return helpers.JSONError(c, err.Error())
	}

	slotTimeID, err := c.ParamsInt("slotTimeId")
	if err != nil || slotTimeID <= 0 {
		return helpers.JSONError(c, "INVALID_SLOT_TIME_ID")
	}

	var gameSlots []models.GameSlot
	if err := database.DB.Where("provider_id = ?", provider.ID).Find(&gameSlots).Error; err != nil {
		return helpers.JSONError(c, "FAILED_TO_LOAD_SCHEDULE")
	}

	raw := make(map[string][]games.Entry)
	for _, gs := range gameSlots {
		raw[gs.GroupKey] = append(raw[gs.GroupKey], games.Entry{
			GameID:     gs.GameID,
			GameName:   gs.GameName,
			SlotTimeID: gs.SlotTimeID,
			SlotTime:   gs.SlotTime,
		})
	}

	groups := games.Group(raw, uint(slotTimeID), provider.Name)
	if len(groups) == 0 {
		return helpers.JSONError(c, "NO_GAMES_AVAILABLE")
	}

	return helpers.JSONSuccess(c, "Games retrieved successfully", fiber.Map{
		"provider_id":   provider.ID,
		"provider_name": provider.Name,
		"slot_time_id":  slotTimeID,
		"games":         groups,
	})
}
