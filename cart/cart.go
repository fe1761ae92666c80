// Package cart holds the per-session bet carts. Carts live only in memory:
// they belong to one login session and are gone after a restart, which is
// the intended lifecycle (unsubmitted bets are never durable).
package cart

import (
	"sync"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type Item struct {
	CartID     string          `json:"cart_id"`
	GameID     uint            `json:"game_id"`
	GameName   string          `json:"game_name"`
	Provider   string          `json:"provider"`
	SlotTimeID uint            `json:"slot_time_id"`
	SlotTime   string          `json:"slot_time"`
	Digits     string          `json:"digits"`
	Price      decimal.Decimal `json:"price"`
	Quantity   int             `json:"quantity"`
	WinAmount  decimal.Decimal `json:"win_amount"`
}

func (i Item) Subtotal() decimal.Decimal {
	return i.Price.Mul(decimal.NewFromInt(int64(i.Quantity)))
}

type Cart struct {
	Items       []Item          `json:"items"`
	TotalAmount decimal.Decimal `json:"total_amount"`
}

// Store keeps one cart per session SID. The ID generator is injectable so
// tests can assert against deterministic cart IDs.
type Store struct {
	mu    sync.Mutex
	carts map[string]*Cart
	newID func() string
}

func NewStore() *Store {
	return &Store{
		carts: make(map[string]*Cart),
		newID: uuid.NewString,
	}
}

func NewStoreWithIDs(newID func() string) *Store {
	s := NewStore()
	s.newID = newID
	return s
}

// Sessions is the process-wide store the HTTP handlers use.
var Sessions = NewStore()

// Add appends the item with a fresh CartID. Identical bets are kept as
// separate lines, each with its own ID.
func (s *Store) Add(sid string, item Item) Item {
	s.mu.Lock()
	defer s.mu.Unlock()

	c := s.carts[sid]
	if c == nil {
		c = &Cart{TotalAmount: decimal.Zero}
		s.carts[sid] = c
	}

	item.CartID = s.newID()
	c.Items = append(c.Items, item)
	c.TotalAmount = c.TotalAmount.Add(item.Subtotal())
	return item
}

// Remove deletes the item with the given CartID and returns whether it was
// present. An unknown ID is a no-op.
func (s *Store) Remove(sid, cartID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	c := s.carts[sid]
	if c == nil {
		return false
	}

	for i, item := range c.Items {
		if item.CartID == cartID {
			c.Items = append(c.Items[:i], c.Items[i+1:]...)
			c.TotalAmount = c.TotalAmount.Sub(item.Subtotal())
			return true
		}
	}
	return false
}

func (s *Store) Clear(sid string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.carts, sid)
}

// Get returns a copy of the session's cart.
func (s *Store) Get(sid string) Cart {
	s.mu.Lock()
	defer s.mu.Unlock()

	c := s.carts[sid]
	if c == nil {
		return Cart{Items: []Item{}, TotalAmount: decimal.Zero}
	}

	out := Cart{
		Items:       make([]Item, len(c.Items)),
		TotalAmount: c.TotalAmount,
	}
	copy(out.Items, c.Items)
	return out
}
