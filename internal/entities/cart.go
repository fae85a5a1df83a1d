package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

type Cart struct {
	ID         int64
	CustomerID int64
	UpdatedAt  time.Time
}

// CartItem is one line of a cart. At most one line exists per
// (cart, product) pair; adding an existing product grows the quantity.
type CartItem struct {
	ID        int64
	CartID    int64
	ProductID int64
	Quantity  int
}

// CartLine is a cart item joined with the product data needed to render
// and validate it. Totals are always derived from lines, never stored.
type CartLine struct {
	ProductID   int64
	ProductName string
	UnitPrice   decimal.Decimal
	Quantity    int
}

func (l CartLine) Subtotal() decimal.Decimal {
	return l.UnitPrice.Mul(decimal.NewFromInt(int64(l.Quantity)))
}

type CartView struct {
	ID         int64
	CustomerID int64
	Lines      []CartLine
	UpdatedAt  time.Time
}

func (c CartView) TotalItems() int {
	var n int
	for _, l := range c.Lines {
		n += l.Quantity
	}
	return n
}

func (c CartView) TotalAmount() decimal.Decimal {
	total := decimal.Zero
	for _, l := range c.Lines {
		total = total.Add(l.Subtotal())
	}
	return total
}
