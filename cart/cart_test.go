package cart

import (
	"fmt"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testItem(price string, qty int) Item {
	p, _ := decimal.NewFromString(price)
	return Item{
		GameID:     42,
		GameName:   "Single Digit",
		Provider:   "KALYAN",
		SlotTimeID: 3,
		SlotTime:   "14:00:00",
		Digits:     "7",
		Price:      p,
		Quantity:   qty,
		WinAmount:  p.Mul(decimal.NewFromInt(95)),
	}
}

func recomputed(c Cart) decimal.Decimal {
	sum := decimal.Zero
	for _, it := range c.Items {
		sum = sum.Add(it.Subtotal())
	}
	return sum
}

func TestTotalNeverDrifts(t *testing.T) {
	s := NewStore()
	sid := "sess-1"

	var ids []string
	for i := 0; i < 20; i++ {
		it := s.Add(sid, testItem("10.50", i%3+1))
		ids = append(ids, it.CartID)

		c := s.Get(sid)
		assert.True(t, c.TotalAmount.Equal(recomputed(c)),
			"total %s != recomputed %s after add %d", c.TotalAmount, recomputed(c), i)
	}

	for i := 0; i < len(ids); i += 2 {
		s.Remove(sid, ids[i])
		c := s.Get(sid)
		assert.True(t, c.TotalAmount.Equal(recomputed(c)))
	}
}

func TestAddKeepsDuplicateLines(t *testing.T) {
	s := NewStore()
	sid := "sess-1"

	a := s.Add(sid, testItem("10", 1))
	b := s.Add(sid, testItem("10", 1))

	require.NotEqual(t, a.CartID, b.CartID)
	c := s.Get(sid)
	require.Len(t, c.Items, 2)
	assert.True(t, c.TotalAmount.Equal(decimal.NewFromInt(20)))
}

func TestRemoveUnknownIsNoOp(t *testing.T) {
	s := NewStore()
	sid := "sess-1"
	s.Add(sid, testItem("10", 2))

	before := s.Get(sid)
	assert.False(t, s.Remove(sid, "does-not-exist"))
	assert.False(t, s.Remove("other-session", "does-not-exist"))

	after := s.Get(sid)
	assert.Equal(t, before.Items, after.Items)
	assert.True(t, before.TotalAmount.Equal(after.TotalAmount))
}

func TestClear(t *testing.T) {
	s := NewStore()
	sid := "sess-1"
	s.Add(sid, testItem("10", 1))
	s.Add(sid, testItem("25", 4))

	s.Clear(sid)

	c := s.Get(sid)
	assert.Empty(t, c.Items)
	assert.True(t, c.TotalAmount.IsZero())

	// clearing an already-empty cart is fine
	s.Clear(sid)
	assert.True(t, s.Get(sid).TotalAmount.IsZero())
}

func TestSessionsAreIsolated(t *testing.T) {
	s := NewStoreWithIDs(func() func() string {
		n := 0
		return func() string { n++; return fmt.Sprintf("id-%d", n) }
	}())

	s.Add("a", testItem("10", 1))
	s.Add("b", testItem("99", 1))

	assert.True(t, s.Get("a").TotalAmount.Equal(decimal.NewFromInt(10)))
	assert.True(t, s.Get("b").TotalAmount.Equal(decimal.NewFromInt(99)))

	s.Clear("a")
	assert.Empty(t, s.Get("a").Items)
	require.Len(t, s.Get("b").Items, 1)
	assert.Equal(t, "id-2", s.Get("b").Items[0].CartID)
}
