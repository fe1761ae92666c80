package orders

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func d(s string) decimal.Decimal {
	v, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return v
}

func TestSplitFundsBonusFirst(t *testing.T) {
	split := SplitFunds(d("100"), d("500"), d("30"))

	assert.True(t, split.Allowed)
	assert.True(t, split.RequiredBonus.Equal(d("30")))
	assert.True(t, split.RequiredWallet.Equal(d("70")))
	assert.True(t, split.AvailableWallet.Equal(d("500")))
	assert.True(t, split.AvailableBonus.Equal(d("30")))
}

func TestSplitFundsBonusCoversAll(t *testing.T) {
	split := SplitFunds(d("25"), d("0"), d("100"))

	assert.True(t, split.Allowed)
	assert.True(t, split.RequiredBonus.Equal(d("25")))
	assert.True(t, split.RequiredWallet.IsZero())
}

func TestSplitFundsInsufficient(t *testing.T) {
	split := SplitFunds(d("100"), d("40"), d("30"))

	assert.False(t, split.Allowed)
	assert.True(t, split.RequiredWallet.Equal(d("70")))
}

func TestSplitFundsExactBoundary(t *testing.T) {
	// wallet exactly covers the remainder: allowed
	split := SplitFunds(d("100"), d("70"), d("30"))
	assert.True(t, split.Allowed)

	// one paisa short: rejected
	split = SplitFunds(d("100"), d("69.99"), d("30"))
	assert.False(t, split.Allowed)
}

func TestSplitFundsNonPositiveAmount(t *testing.T) {
	split := SplitFunds(d("0"), d("10"), d("10"))
	assert.False(t, split.Allowed)
	assert.True(t, split.RequiredWallet.IsZero())
	assert.True(t, split.RequiredBonus.IsZero())

	split = SplitFunds(d("-5"), d("10"), d("10"))
	assert.False(t, split.Allowed)
}

func TestSplitFundsNegativeBonusBalance(t *testing.T) {
	// a corrupted negative bonus must never reduce the wallet requirement
	split := SplitFunds(d("50"), d("100"), d("-10"))
	assert.True(t, split.Allowed)
	assert.True(t, split.RequiredBonus.IsZero())
	assert.True(t, split.RequiredWallet.Equal(d("50")))
}
