package entities

import (
	"errors"
	"fmt"
)

var (
	ErrUnauthenticated = errors.New("not authenticated")
	ErrAccessDenied    = errors.New("access denied")

	ErrProductNotFound    = errors.New("product not found")
	ErrProductUnavailable = errors.New("product is not available")
	ErrOutOfStock         = errors.New("product is out of stock")
	ErrInsufficientStock  = errors.New("insufficient stock")
	ErrInvalidQuantity    = errors.New("quantity must be greater than zero")

	ErrCartNotFound = errors.New("cart not found")
	ErrItemNotFound = errors.New("item not found in cart")
	ErrEmptyCart    = errors.New("cart is empty")

	ErrInvalidAddress  = errors.New("invalid shipping address")
	ErrAddressNotFound = errors.New("address not found")

	ErrOrderNotFound     = errors.New("order not found")
	ErrSaleNotFound      = errors.New("sale not found")
	ErrAlreadyCancelled  = errors.New("order is already cancelled")
	ErrAlreadyShipped    = errors.New("order has already been shipped")
	ErrInvalidTransition = errors.New("invalid status transition")
	ErrSaleClosed        = errors.New("sale is in a terminal state")
)

// InsufficientStockError names the product and both quantities so the
// caller can tell the customer exactly what did not fit.
type InsufficientStockError struct {
	ProductID   int64
	ProductName string
	Available   int
	Requested   int
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("insufficient stock for %s: available %d, requested %d",
		e.ProductName, e.Available, e.Requested)
}

func (e *InsufficientStockError) Unwrap() error { return ErrInsufficientStock }

type InvalidTransitionError struct {
	From SaleStatus
	To   SaleStatus
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("invalid status transition from %s to %s", e.From, e.To)
}

func (e *InvalidTransitionError) Unwrap() error { return ErrInvalidTransition }
