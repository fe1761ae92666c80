package orders

import (
	"errors"

	"playwin/cart"

	"github.com/shopspring/decimal"
)

var ErrCartEmpty = errors.New("cart is empty")

// Reconciler sequences the cart store against the funds check and checkout:
// an item enters the cart only when its funding split allows it, and the
// cart is cleared only after a checkout submission has succeeded.
type Reconciler struct {
	Carts *cart.Store
}

// Default is the reconciler the HTTP handlers use, bound to the
// process-wide session carts.
var Default = &Reconciler{Carts: cart.Sessions}

// GatedAdd runs the funding split for the item and adds it to the session
// cart only when allowed. On rejection the cart is untouched and the zero
// Item is returned alongside the failed split.
func (r *Reconciler) GatedAdd(sid string, item cart.Item, wallet, bonus decimal.Decimal) (cart.Item, FundingSplit) {
	split := SplitFunds(item.Subtotal(), wallet, bonus)
	if !split.Allowed {
		return cart.Item{}, split
	}
	return r.Carts.Add(sid, item), split
}

// Checkout snapshots the session cart and hands it to submit. The cart is
// cleared only when submit returns nil; any error leaves every item in
// place for retry.
func (r *Reconciler) Checkout(sid string, submit func(cart.Cart) error) error {
	snapshot := r.Carts.Get(sid)
	if len(snapshot.Items) == 0 {
		return ErrCartEmpty
	}

	if err := submit(snapshot); err != nil {
		return err
	}

	r.Carts.Clear(sid)
	return nil
}
