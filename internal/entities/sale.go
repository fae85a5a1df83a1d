package entities

import (
	"bytes"
	"encoding/gob"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

type SaleStatus string

const (
	SalePending   SaleStatus = "PENDING"
	SaleConfirmed SaleStatus = "CONFIRMED"
	SalePaid      SaleStatus = "PAID"
	SaleShipped   SaleStatus = "SHIPPED"
	SaleDelivered SaleStatus = "DELIVERED"
	SaleCancelled SaleStatus = "CANCELLED"
)

func (s SaleStatus) Valid() bool {
	_, ok := saleTransitions[s]
	return ok
}

// Terminal states admit no outgoing transitions at all.
func (s SaleStatus) Terminal() bool {
	return s == SaleDelivered || s == SaleCancelled
}

var saleTransitions = map[SaleStatus][]SaleStatus{
	SalePending:   {SaleConfirmed, SaleCancelled},
	SaleConfirmed: {SalePending, SalePaid, SaleCancelled},
	SalePaid:      {SaleShipped, SaleCancelled},
	SaleShipped:   {SaleDelivered, SaleCancelled},
	SaleDelivered: {},
	SaleCancelled: {},
}

// ValidateTransition enforces the sale lifecycle. A terminal current
// status fails with ErrSaleClosed before any per-target check.
func (s SaleStatus) ValidateTransition(to SaleStatus) error {
	if s.Terminal() {
		return fmt.Errorf("sale is %s: %w", s, ErrSaleClosed)
	}
	for _, next := range saleTransitions[s] {
		if next == to {
			return nil
		}
	}
	return &InvalidTransitionError{From: s, To: to}
}

type PaymentMethod string

const (
	PaymentCashOnDelivery PaymentMethod = "CASH_ON_DELIVERY"
	PaymentCard           PaymentMethod = "CARD"
	PaymentMercadoPago    PaymentMethod = "MERCADO_PAGO"
)

func (m PaymentMethod) Valid() bool {
	switch m {
	case PaymentCashOnDelivery, PaymentCard, PaymentMercadoPago:
		return true
	}
	return false
}

type DeliveryMethod string

const (
	DeliveryHome   DeliveryMethod = "HOME_DELIVERY"
	DeliveryPickup DeliveryMethod = "PICKUP"
)

func (m DeliveryMethod) Valid() bool {
	return m == DeliveryHome || m == DeliveryPickup
}

// SaleItem captures the unit price at sale creation; later product price
// changes never touch it.
type SaleItem struct {
	ID          int64
	SaleID      int64
	ProductID   int64
	ProductName string
	Quantity    int
	UnitPrice   decimal.Decimal
}

func (i SaleItem) Subtotal() decimal.Decimal {
	return i.UnitPrice.Mul(decimal.NewFromInt(int64(i.Quantity)))
}

// Sale is the immutable-after-creation record of a checkout. Only Status,
// UpdatedAt and the associated Payment mutate once it exists.
type Sale struct {
	ID                   int64
	InvoiceNumber        string
	CustomerID           int64
	ShippingAddressID    int64
	TotalAmount          decimal.Decimal
	Status               SaleStatus
	PaymentMethod        PaymentMethod
	DeliveryMethod       DeliveryMethod
	DeliveryInstructions string
	CreatedAt            time.Time
	UpdatedAt            time.Time

	Items           []SaleItem
	ShippingAddress *Address
	Payment         *Payment
}

// NewInvoiceNumber generates the human-facing sale identifier. Global
// uniqueness is backed by the unique column; a same-millisecond collision
// for one customer fails the insert instead of duplicating.
func NewInvoiceNumber(customerID int64, now time.Time) string {
	return fmt.Sprintf("INV-%d-%d", now.UnixMilli(), customerID)
}

func (s *Sale) Marshal() ([]byte, error) {
	var buf bytes.Buffer
	if err := gob.NewEncoder(&buf).Encode(s); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (s *Sale) Unmarshal(data []byte) error {
	return gob.NewDecoder(bytes.NewBuffer(data)).Decode(s)
}

func init() {
	gob.Register(Sale{})
	gob.Register(SaleItem{})
	gob.Register(Payment{})
	gob.Register(Address{})
}
