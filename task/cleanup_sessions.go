package tasks

import (
	"log"
	"time"

	"playwin/database"
	"playwin/models"
)

func CleanupExpiredSessions() {
	result := database.DB.Unscoped().
		Where("expires_at < ?", time.Now()).
		Delete(&models.Session{})

	if result.Error != nil {
		log.Println("❌ Failed to delete expired sessions:", result.Error)
	} else if result.RowsAffected > 0 {
		log.Printf("✅ Deleted %d expired sessions\n", result.RowsAffected)
	}
}
