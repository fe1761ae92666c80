package digits

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"time"

	"playwin/providers"
)

// Starline posts signed JSON requests instead of GETs; otherwise it serves
// the same schedule/results shapes as the other operators.
type Starline struct {
	ApiURL     string
	MerchantID string
	SecretKey  string
}

func init() {
	if url := os.Getenv("STARLINE_API_URL"); url != "" {
		providers.Register("starline", &Starline{
			ApiURL:     url,
			MerchantID: os.Getenv("STARLINE_MERCHANT_ID"),
			SecretKey:  os.Getenv("STARLINE_SECRET_KEY"),
		})
	}
}

func (p *Starline) Code() string {
	return "starline"
}

func (p *Starline) post(path string, date time.Time, out any) error {
	payload := map[string]string{
		"merchant_id": p.MerchantID,
		"secret_key":  p.SecretKey,
		"date":        date.Format("2006-01-02"),
	}

	jsonBody, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	resp, err := http.Post(p.ApiURL+path, "application/json", bytes.NewBuffer(jsonBody))
	if err != nil {
		log.Printf("❌ [Starline] HTTP request failed: %v", err)
		return err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	if resp.StatusCode != 200 {
		log.Printf("📥 [Starline] %s -> %s: %s", path, resp.Status, string(body))
		return fmt.Errorf("starline %s returned status %s", path, resp.Status)
	}

	return json.Unmarshal(body, out)
}

func (p *Starline) FetchSchedule(date time.Time) (*providers.Schedule, error) {
	var result struct {
		Success bool   `json:"success"`
		Message string `json:"message"`
		Data    struct {
			ProviderName string                               `json:"provider_name"`
			Games        map[string][]providers.ScheduleEntry `json:"games"`
		} `json:"data"`
	}
	if err := p.post("/merchant/schedule", date, &result); err != nil {
		return nil, err
	}
	if !result.Success {
		return nil, fmt.Errorf("starline schedule rejected: %s", result.Message)
	}

	raw, _ := json.Marshal(result.Data)
	return &providers.Schedule{
		ProviderName: result.Data.ProviderName,
		Games:        result.Data.Games,
		Raw:          raw,
	}, nil
}

func (p *Starline) FetchResults(date time.Time) ([]providers.ResultEntry, error) {
	var result struct {
		Success bool                    `json:"success"`
		Message string                  `json:"message"`
		Data    []providers.ResultEntry `json:"data"`
	}
	if err := p.post("/merchant/results", date, &result); err != nil {
		return nil, err
	}
	if !result.Success {
		return nil, fmt.Errorf("starline results rejected: %s", result.Message)
	}

	return result.Data, nil
}
