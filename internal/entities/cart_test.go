package entities_test

import (
	"testing"

	"github.com/petshop/checkout-service/internal/entities"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestCartView_Totals(t *testing.T) {
	view := entities.CartView{
		Lines: []entities.CartLine{
			{ProductID: 1, UnitPrice: decimal.NewFromFloat(10.50), Quantity: 2},
			{ProductID: 2, UnitPrice: decimal.NewFromFloat(3.25), Quantity: 4},
		},
	}

	assert.Equal(t, 6, view.TotalItems())
	assert.True(t, view.TotalAmount().Equal(decimal.NewFromFloat(34)))
}

func TestCartView_EmptyTotals(t *testing.T) {
	var view entities.CartView

	assert.Equal(t, 0, view.TotalItems())
	assert.True(t, view.TotalAmount().IsZero())
}
