// Package orders holds the pure money arithmetic behind the wallet check
// and order placement: how a bet amount is split across the bonus and
// wallet balances.
package orders

import "github.com/shopspring/decimal"

// FundingSplit is the outcome of a sufficiency check for one amount. Bonus
// balance is consumed first; the remainder must be covered by the wallet.
type FundingSplit struct {
	Allowed         bool            `json:"allowed"`
	RequiredWallet  decimal.Decimal `json:"required_wallet"`
	RequiredBonus   decimal.Decimal `json:"required_bonus"`
	AvailableWallet decimal.Decimal `json:"available_wallet"`
	AvailableBonus  decimal.Decimal `json:"available_bonus"`
}

func SplitFunds(amount, wallet, bonus decimal.Decimal) FundingSplit {
	split := FundingSplit{
		AvailableWallet: wallet,
		AvailableBonus:  bonus,
	}

	if amount.LessThanOrEqual(decimal.Zero) {
		split.RequiredWallet = decimal.Zero
		split.RequiredBonus = decimal.Zero
		return split
	}

	split.RequiredBonus = decimal.Min(amount, bonus)
	if split.RequiredBonus.IsNegative() {
		split.RequiredBonus = decimal.Zero
	}
	split.RequiredWallet = amount.Sub(split.RequiredBonus)
	split.Allowed = wallet.GreaterThanOrEqual(split.RequiredWallet)
	return split
}
