package digits

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"time"

	"playwin/providers"
)

// GoldenLotto talks to the Golden Lotto operator API. Schedules come back
// already grouped by the "label_price_winAmount" key; results are flat.
type GoldenLotto struct {
	ApiURL string
	ApiKey string
}

func init() {
	if url := os.Getenv("GOLDENLOTTO_API_URL"); url != "" {
		providers.Register("goldenlotto", &GoldenLotto{
			ApiURL: url,
			ApiKey: os.Getenv("GOLDENLOTTO_API_KEY"),
		})
	}
}

func (p *GoldenLotto) Code() string {
	return "goldenlotto"
}

func (p *GoldenLotto) get(path string, date time.Time) ([]byte, error) {
	url := fmt.Sprintf("%s%s?date=%s", p.ApiURL, path, date.Format("2006-01-02"))

	req, err := http.NewRequest(http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("X-Api-Key", p.ApiKey)

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		log.Printf("❌ [GoldenLotto] HTTP request failed: %v", err)
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode != 200 {
		log.Printf("📥 [GoldenLotto] %s -> %s: %s", path, resp.Status, string(body))
		return nil, fmt.Errorf("goldenlotto %s returned status %s", path, resp.Status)
	}

	return body, nil
}

func (p *GoldenLotto) FetchSchedule(date time.Time) (*providers.Schedule, error) {
	body, err := p.get("/api/v1/schedule", date)
	if err != nil {
		return nil, err
	}

	var result struct {
		Success bool   `json:"success"`
		Message string `json:"message"`
		Data    struct {
			ProviderName string                               `json:"provider_name"`
			Games        map[string][]providers.ScheduleEntry `json:"games"`
		} `json:"data"`
	}
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, fmt.Errorf("failed to decode schedule: %w", err)
	}
	if !result.Success {
		return nil, fmt.Errorf("goldenlotto schedule rejected: %s", result.Message)
	}

	return &providers.Schedule{
		ProviderName: result.Data.ProviderName,
		Games:        result.Data.Games,
		Raw:          body,
	}, nil
}

func (p *GoldenLotto) FetchResults(date time.Time) ([]providers.ResultEntry, error) {
	body, err := p.get("/api/v1/results", date)
	if err != nil {
		return nil, err
	}

	var result struct {
		Success bool                    `json:"success"`
		Message string                  `json:"message"`
		Data    []providers.ResultEntry `json:"data"`
	}
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, fmt.Errorf("failed to decode results: %w", err)
	}
	if !result.Success {
		return nil, fmt.Errorf("goldenlotto results rejected: %s", result.Message)
	}

	return result.Data, nil
}
