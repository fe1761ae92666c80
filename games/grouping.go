// Package games turns a provider's raw schedule, keyed by the upstream
// "label_price_winAmount" composite key, into per-price game groups for one
// slot window.
package games

import (
	"errors"
	"log"
	"sort"
	"strings"

	"github.com/shopspring/decimal"
)

const DefaultProviderName = "PROVIDER"

var (
	ErrKeyTooShort = errors.New("group key has fewer than 3 segments")
	ErrKeyNumeric  = errors.New("group key has a malformed numeric segment")
)

// Entry is one raw game row under a group key.
type Entry struct {
	GameID     uint   `json:"game_id"`
	GameName   string `json:"game_name"`
	SlotTimeID uint   `json:"slot_time_id"`
	SlotTime   string `json:"slot_time"`
}

type GroupKey struct {
	Label     string
	Price     decimal.Decimal
	WinAmount decimal.Decimal
}

type GameGroup struct {
	Key          string          `json:"key"`
	Label        string          `json:"label"`
	Price        decimal.Decimal `json:"price"`
	WinAmount    decimal.Decimal `json:"win_amount"`
	ProviderName string          `json:"provider_name"`
	Entries      []Entry         `json:"entries"`
}

// DecodeKey splits "{label}_{price}_{winAmount}". The label may contain
// underscores; the last two segments are always the numbers.
func DecodeKey(key string) (GroupKey, error) {
	parts := strings.Split(key, "_")
	if len(parts) < 3 {
		return GroupKey{}, ErrKeyTooShort
	}

	price, err := decimal.NewFromString(parts[len(parts)-2])
	if err != nil {
		return GroupKey{}, ErrKeyNumeric
	}
	win, err := decimal.NewFromString(parts[len(parts)-1])
	if err != nil {
		return GroupKey{}, ErrKeyNumeric
	}

	return GroupKey{
		Label:     strings.Join(parts[:len(parts)-2], "_"),
		Price:     price,
		WinAmount: win,
	}, nil
}

// Group builds one GameGroup per decodable key, keeping only entries for the
// requested slot window. Keys with fewer than 3 segments are discarded
// silently (upstream sends junk keys routinely); malformed numeric segments
// are discarded with a log line. Groups left empty after filtering are
// dropped.
func Group(raw map[string][]Entry, slotTimeID uint, providerName string) []GameGroup {
	if providerName == "" {
		providerName = DefaultProviderName
	}

	keys := make([]string, 0, len(raw))
	for k := range raw {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	groups := make([]GameGroup, 0, len(keys))
	for _, k := range keys {
		gk, err := DecodeKey(k)
		if err != nil {
			if errors.Is(err, ErrKeyNumeric) {
				log.Printf("⚠️  Dropping game group %q: %v", k, err)
			}
			continue
		}

		entries := make([]Entry, 0, len(raw[k]))
		for _, e := range raw[k] {
			if e.SlotTimeID == slotTimeID {
				entries = append(entries, e)
			}
		}
		if len(entries) == 0 {
			continue
		}

		groups = append(groups, GameGroup{
			Key:          k,
			Label:        gk.Label,
			Price:        gk.Price,
			WinAmount:    gk.WinAmount,
			ProviderName: providerName,
			Entries:      entries,
		})
	}

	return groups
}
