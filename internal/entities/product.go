package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

type Product struct {
	ID        int64
	Name      string
	Price     decimal.Decimal
	Stock     int
	MinStock  int
	Active    bool
	UpdatedAt time.Time
}

func (p Product) Available() bool { return p.Active && p.Stock > 0 }
