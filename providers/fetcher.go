package providers

import (
	"strings"
	"time"
)

// ScheduleEntry is one raw game row as sent by an upstream operator, listed
// under its "label_price_winAmount" group key.
type ScheduleEntry struct {
	GameID     uint   `json:"game_id"`
	GameName   string `json:"game_name"`
	SlotTimeID uint   `json:"slot_time_id"`
	SlotTime   string `json:"slot_time"`
}

// Schedule is an operator's full daily schedule plus the raw payload it was
// parsed from.
type Schedule struct {
	ProviderName string
	Games        map[string][]ScheduleEntry
	Raw          []byte
}

type ResultEntry struct {
	SlotTimeID    uint   `json:"slot_time_id"`
	SlotTime      string `json:"slot_time"`
	WinningDigits string `json:"winning_digits"`
}

// Fetcher pulls schedule and draw-result data from one upstream operator.
type Fetcher interface {
	Code() string
	FetchSchedule(date time.Time) (*Schedule, error)
	FetchResults(date time.Time) ([]ResultEntry, error)
}

var Fetchers = map[string]Fetcher{}

func Register(name string, f Fetcher) {
	Fetchers[strings.ToLower(name)] = f
}

func Get(name string) Fetcher {
	return Fetchers[strings.ToLower(name)]
}
