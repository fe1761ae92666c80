package slots

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixedNow(t *testing.T, hhmmss string) time.Time {
	t.Helper()
	now, err := time.ParseInLocation("2006-01-02 15:04:05", "2026-09-01 "+hhmmss, time.Local)
	require.NoError(t, err)
	return now
}

func TestResolveCutoffIsStrict(t *testing.T) {
	now := fixedNow(t, "08:50:00")
	raw := map[string][]Entry{
		"MORNING_10_950": {{SlotTimeID: 1, SlotTime: "09:00:00"}},
	}

	// slotTime - 10min == now exactly: closed, not open
	windows, err := Resolve(raw, 10, now)
	require.NoError(t, err)
	require.Len(t, windows, 1)
	assert.Equal(t, StatusClosed, windows[0].Status)

	// one second earlier it is still open
	windows, err = Resolve(raw, 10, now.Add(-time.Second))
	require.NoError(t, err)
	assert.Equal(t, StatusOpen, windows[0].Status)
}

func TestResolveDeduplicatesAndSorts(t *testing.T) {
	now := fixedNow(t, "07:00:00")
	raw := map[string][]Entry{
		"A_10_950": {
			{SlotTimeID: 5, SlotTime: "14:00:00"},
			{SlotTimeID: 1, SlotTime: "09:00:00"},
		},
		"B_20_1900": {
			{SlotTimeID: 1, SlotTime: "09:00:00"},
		},
	}

	windows, err := Resolve(raw, 10, now)
	require.NoError(t, err)
	require.Len(t, windows, 2)
	assert.Equal(t, uint(1), windows[0].SlotTimeID)
	assert.Equal(t, "09:00:00", windows[0].SlotTime)
	assert.Equal(t, uint(5), windows[1].SlotTimeID)
	assert.Equal(t, "14:00:00", windows[1].SlotTime)
}

func TestResolveTwelveHourFormat(t *testing.T) {
	now := fixedNow(t, "07:00:00")
	raw := map[string][]Entry{
		"A_10_950": {
			{SlotTimeID: 1, SlotTime: "09:00 AM"},
			{SlotTimeID: 2, SlotTime: "02:30 PM"},
			{SlotTimeID: 3, SlotTime: "21:15:00"},
		},
	}

	windows, err := Resolve(raw, 10, now)
	require.NoError(t, err)
	require.Len(t, windows, 3)
	assert.Equal(t, "09:00:00", windows[0].SlotTime)
	assert.Equal(t, "14:30:00", windows[1].SlotTime)
	assert.Equal(t, "21:15:00", windows[2].SlotTime)
	for _, w := range windows {
		assert.Equal(t, StatusOpen, w.Status)
	}
}

func TestResolveSkipsUnparseableTimes(t *testing.T) {
	now := fixedNow(t, "07:00:00")
	raw := map[string][]Entry{
		"A_10_950": {
			{SlotTimeID: 1, SlotTime: "not-a-time"},
			{SlotTimeID: 2, SlotTime: "10:00:00"},
		},
	}

	windows, err := Resolve(raw, 10, now)
	require.NoError(t, err)
	require.Len(t, windows, 1)
	assert.Equal(t, uint(2), windows[0].SlotTimeID)
}

func TestResolveEmpty(t *testing.T) {
	now := fixedNow(t, "07:00:00")

	_, err := Resolve(map[string][]Entry{}, 10, now)
	assert.ErrorIs(t, err, ErrNoSlotsAvailable)

	_, err = Resolve(map[string][]Entry{"A_10_950": {}}, 10, now)
	assert.ErrorIs(t, err, ErrNoSlotsAvailable)

	// only unparseable entries also means no slots
	_, err = Resolve(map[string][]Entry{"A_10_950": {{SlotTimeID: 1, SlotTime: "??"}}}, 10, now)
	assert.ErrorIs(t, err, ErrNoSlotsAvailable)
}

func TestIsOpen(t *testing.T) {
	now := fixedNow(t, "08:00:00")

	open, err := IsOpen("09:00:00", 10, now)
	require.NoError(t, err)
	assert.True(t, open)

	open, err = IsOpen("08:05:00", 10, now)
	require.NoError(t, err)
	assert.False(t, open)

	_, err = IsOpen("garbage", 10, now)
	assert.Error(t, err)
}
