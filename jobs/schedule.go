package jobs

import (
	"log"
	"os"
	"strconv"
	"time"

	"playwin/services"
	tasks "playwin/task"
)

func intervalFromEnv(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if mins, err := strconv.Atoi(v); err == nil && mins > 0 {
			return time.Duration(mins) * time.Minute
		}
	}
	return fallback
}

func StartScheduleRefresher() {
	tickerSchedule := time.NewTicker(intervalFromEnv("SCHEDULE_REFRESH_MINUTES", 5*time.Minute))
	go func() {
		for {
			<-tickerSchedule.C
			if err := services.RefreshSchedules(); err != nil {
				log.Printf("❌ error refreshing schedules: %v", err)
			}
		}
	}()

	tickerResults := time.NewTicker(intervalFromEnv("RESULTS_FETCH_MINUTES", 2*time.Minute))
	go func() {
		for {
			<-tickerResults.C
			if err := services.FetchDrawResults(); err != nil {
				log.Printf("❌ error fetching draw results: %v", err)
			}
		}
	}()

	tickerCleanup := time.NewTicker(1 * time.Hour)
	go func() {
		for {
			<-tickerCleanup.C
			tasks.CleanupExpiredSessions()
		}
	}()
}
