package services

import (
	"fmt"
	"log"
	"time"

	"playwin/database"
	"playwin/models"
	"playwin/providers"

	"gorm.io/datatypes"
	"gorm.io/gorm/clause"
)

// FetchDrawResults pulls today's declared results from every active
// provider. Results are append-only: a digit once declared is never
// rewritten, so conflicts are ignored.
func FetchDrawResults() error {
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

		entries, err := fetcher.FetchResults(today)
		if err != nil {
			log.Printf("❌ Failed to fetch results for %s: %v", p.Code, err)
			lastErr = err
			continue
		}

		stored := 0
		for _, e := range entries {
			if e.WinningDigits == "" {
				continue
			}
			result := models.DrawResult{
				ProviderID:    p.ID,
				SlotTimeID:    e.SlotTimeID,
				SlotTime:      e.SlotTime,
				GameDate:      datatypes.Date(today),
				WinningDigits: e.WinningDigits,
			}
			if err := database.DB.Clauses(clause.OnConflict{DoNothing: true}).
				Create(&result).Error; err != nil {
				log.Printf("❌ Failed to store result for %s slot %d: %v", p.Code, e.SlotTimeID, err)
				lastErr = err
				continue
			}
			stored++
		}

		if stored > 0 {
			log.Printf("✅ Stored %d draw results for %s", stored, p.Code)
		}
	}

	return lastErr
}
