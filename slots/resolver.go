// Package slots computes which bet-taking time windows are still open for a
// provider's daily schedule.
package slots

import (
	"errors"
	"log"
	"sort"
	"strings"
	"time"
)

const (
	StatusOpen   = "open"
	StatusClosed = "closed"
)

var ErrNoSlotsAvailable = errors.New("no slots available")

// Entry is the minimal slice of a raw schedule row the resolver needs.
type Entry struct {
	SlotTimeID uint
	SlotTime   string
}

type Window struct {
	SlotTimeID uint   `json:"slot_time_id"`
	SlotTime   string `json:"slot_time"`
	Status     string `json:"status"`
}

var slotTimeLayouts = []string{
	"15:04:05",
	"15:04",
	"3:04 PM",
	"3:04:05 PM",
}

// ParseSlotTime accepts 24-hour ("HH:MM:SS") and 12-hour ("hh:mm AM/PM")
// slot times and anchors them to now's date in the server-local zone.
func ParseSlotTime(raw string, now time.Time) (time.Time, error) {
	s := strings.ToUpper(strings.TrimSpace(raw))

	for _, layout := range slotTimeLayouts {
		t, err := time.Parse(layout, s)
		if err != nil {
			continue
		}
		return time.Date(now.Year(), now.Month(), now.Day(),
			t.Hour(), t.Minute(), t.Second(), 0, now.Location()), nil
	}
	return time.Time{}, errors.New("unrecognized slot time: " + raw)
}

// Normalize returns the 24-hour "15:04:05" form of a slot time.
func Normalize(raw string, now time.Time) (string, error) {
	t, err := ParseSlotTime(raw, now)
	if err != nil {
		return "", err
	}
	return t.Format("15:04:05"), nil
}

// Resolve flattens a grouped schedule into unique slot windows. Duplicate
// SlotTimeIDs collapse to their first occurrence (group keys are walked in
// sorted order so the result is stable). A slot is open only while
// now < slotTime - closeMinutes; a slot exactly at the cutoff is closed.
func Resolve(raw map[string][]Entry, closeMinutes int, now time.Time) ([]Window, error) {
	keys := make([]string, 0, len(raw))
	for k := range raw {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	seen := make(map[uint]bool)
	windows := make([]Window, 0)

	for _, k := range keys {
		for _, e := range raw[k] {
			if seen[e.SlotTimeID] {
				continue
			}

			t, err := ParseSlotTime(e.SlotTime, now)
			if err != nil {
				log.Printf("⚠️  Skipping slot %d: %v", e.SlotTimeID, err)
				continue
			}
			seen[e.SlotTimeID] = true

			cutoff := t.Add(-time.Duration(closeMinutes) * time.Minute)
			status := StatusClosed
			if now.Before(cutoff) {
				status = StatusOpen
			}

			windows = append(windows, Window{
				SlotTimeID: e.SlotTimeID,
				SlotTime:   t.Format("15:04:05"),
				Status:     status,
			})
		}
	}

	if len(windows) == 0 {
		return nil, ErrNoSlotsAvailable
	}

	sort.Slice(windows, func(i, j int) bool {
		if windows[i].SlotTime != windows[j].SlotTime {
			return windows[i].SlotTime < windows[j].SlotTime
		}
		return windows[i].SlotTimeID < windows[j].SlotTimeID
	})

	return windows, nil
}

// IsOpen reports whether a single slot time still accepts bets.
func IsOpen(slotTime string, closeMinutes int, now time.Time) (bool, error) {
	t, err := ParseSlotTime(slotTime, now)
	if err != nil {
		return false, err
	}
	return now.Before(t.Add(-time.Duration(closeMinutes) * time.Minute)), nil
}
