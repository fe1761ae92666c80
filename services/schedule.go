package services

import (
	"fmt"
	"log"
	"time"

	"playwin/database"
	"playwin/games"
	"playwin/models"
	"playwin/providers"

	"gorm.io/datatypes"
)

// RefreshSchedules pulls today's schedule from every active provider with a
// registered fetcher and replaces that provider's GameSlot rows. The raw
// upstream payload is kept as a ScheduleSnapshot.
func RefreshSchedules() error {
	var providerRows []models.Provider
	if err := database.DB.Where("is_active = true").Find(&providerRows).Error; err != nil {
		return fmt.Errorf("failed to load providers: %w", err)
	}

	today := time.Now()
	var lastErr error

	for _, p := range providerRows {
		fetcher := providers.Get(p.Code)
		if fetcher == nil {
			continue
		}

		schedule, err := fetcher.FetchSchedule(today)
		if err != nil {
			log.Printf("❌ Failed to fetch schedule for %s: %v", p.Code, err)
			lastErr = err
			continue
		}

		rows := make([]models.GameSlot, 0)
		for key, entries := range schedule.Games {
			gk, err := games.DecodeKey(key)
			if err != nil {
				log.Printf("⚠️  Skipping group key %q from %s: %v", key, p.Code, err)
				continue
			}
			for _, e := range entries {
				rows = append(rows, models.GameSlot{
					ProviderID: p.ID,
					GroupKey:   key,
					GameID:     e.GameID,
					GameName:   e.GameName,
					SlotTimeID: e.SlotTimeID,
					SlotTime:   e.SlotTime,
					Price:      gk.Price,
					WinAmount:  gk.WinAmount,
					GameDate:   datatypes.Date(today),
				})
			}
		}

		tx := database.DB.Begin()
		if err := tx.Unscoped().Where("provider_id = ?", p.ID).Delete(&models.GameSlot{}).Error; err != nil {
			tx.Rollback()
			log.Printf("❌ Failed to clear schedule for %s: %v", p.Code, err)
			lastErr = err
			continue
		}
		if len(rows) > 0 {
			if err := tx.CreateInBatches(rows, 200).Error; err != nil {
				tx.Rollback()
				log.Printf("❌ Failed to store schedule for %s: %v", p.Code, err)
				lastErr = err
				continue
			}
		}
		if err := tx.Create(&models.ScheduleSnapshot{
			ProviderID: p.ID,
			Payload:    datatypes.JSON(schedule.Raw),
			FetchedAt:  time.Now(),
		}).Error; err != nil {
			tx.Rollback()
			lastErr = err
			continue
		}
		if err := tx.Commit().Error; err != nil {
			lastErr = err
			continue
		}

		log.Printf("✅ Refreshed %d game slots for %s", len(rows), p.Code)
	}

	return lastErr
}
