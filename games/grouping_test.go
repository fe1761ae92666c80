package games

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decimalFromString(t *testing.T, s string) decimal.Decimal {
	t.Helper()
	d, err := decimal.NewFromString(s)
	require.NoError(t, err)
	return d
}

func TestDecodeKey(t *testing.T) {
	gk, err := DecodeKey("A_10_500")
	require.NoError(t, err)
	assert.Equal(t, "A", gk.Label)
	assert.True(t, gk.Price.Equal(decimalFromString(t, "10")))
	assert.True(t, gk.WinAmount.Equal(decimalFromString(t, "500")))

	// label itself may carry underscores
	gk, err = DecodeKey("SINGLE_DIGIT_10_95.5")
	require.NoError(t, err)
	assert.Equal(t, "SINGLE_DIGIT", gk.Label)
	assert.True(t, gk.WinAmount.Equal(decimalFromString(t, "95.5")))

	_, err = DecodeKey("A_10")
	assert.ErrorIs(t, err, ErrKeyTooShort)

	_, err = DecodeKey("A_ten_500")
	assert.ErrorIs(t, err, ErrKeyNumeric)

	_, err = DecodeKey("A_10_fivehundred")
	assert.ErrorIs(t, err, ErrKeyNumeric)
}

func TestGroupDropsBadKeys(t *testing.T) {
	raw := map[string][]Entry{
		"A_10":        {{GameID: 1, SlotTimeID: 7}},
		"A_10_500":    {{GameID: 2, SlotTimeID: 7}},
		"B_oops_900":  {{GameID: 3, SlotTimeID: 7}},
		"C_20_1800":   {{GameID: 4, SlotTimeID: 7}},
		"D_5_450_bad": {{GameID: 5, SlotTimeID: 7}},
	}

	groups := Group(raw, 7, "KALYAN")
	require.Len(t, groups, 2)
	assert.Equal(t, "A_10_500", groups[0].Key)
	assert.Equal(t, "C_20_1800", groups[1].Key)
	for _, g := range groups {
		assert.Equal(t, "KALYAN", g.ProviderName)
	}
}

func TestGroupFiltersSlotAndDropsEmpty(t *testing.T) {
	raw := map[string][]Entry{
		"A_10_500": {
			{GameID: 1, SlotTimeID: 7},
			{GameID: 2, SlotTimeID: 8},
		},
		"B_20_900": {
			{GameID: 3, SlotTimeID: 8},
		},
	}

	groups := Group(raw, 7, "")
	require.Len(t, groups, 1)
	assert.Equal(t, "A_10_500", groups[0].Key)
	require.Len(t, groups[0].Entries, 1)
	assert.Equal(t, uint(1), groups[0].Entries[0].GameID)
	assert.Equal(t, DefaultProviderName, groups[0].ProviderName)
}

func TestGroupEmptyInput(t *testing.T) {
	assert.Empty(t, Group(map[string][]Entry{}, 1, "X"))
}
