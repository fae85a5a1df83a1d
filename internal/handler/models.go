package handler

import (
	"time"

	"github.com/petshop/checkout-service/internal/entities"

	"github.com/shopspring/decimal"
)

// AddToCartRequest adds quantity of a product to the cart
type AddToCartRequest struct {
	ProductID int64 `json:"product_id" validate:"required,gt=0"`
	Quantity  int   `json:"quantity" validate:"required"`
}

// UpdateCartItemRequest overwrites the quantity of a cart line
type UpdateCartItemRequest struct {
	Quantity int `json:"quantity" validate:"required"`
}

// CreateOrderRequest is the checkout payload
type CreateOrderRequest struct {
	AddressID            int64  `json:"address_id" validate:"required,gt=0"`
	PaymentMethod        string `json:"payment_method" validate:"required,oneof=CASH_ON_DELIVERY CARD MERCADO_PAGO"`
	DeliveryMethod       string `json:"delivery_method" validate:"required,oneof=HOME_DELIVERY PICKUP"`
	DeliveryInstructions string `json:"delivery_instructions,omitempty" validate:"max=500"`
}

// UpdateSaleStatusRequest requests one status transition
type UpdateSaleStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=PENDING CONFIRMED PAID SHIPPED DELIVERED CANCELLED"`
}

// AddressRequest creates or replaces a shipping address
type AddressRequest struct {
	AddressLine1 string `json:"address_line1" validate:"required"`
	AddressLine2 string `json:"address_line2,omitempty"`
	Landmark     string `json:"landmark,omitempty"`
	City         string `json:"city" validate:"required"`
	Department   string `json:"department" validate:"required"`
	Country      string `json:"country" validate:"required"`
	ZipCode      string `json:"zip_code" validate:"required"`
}

type CartItemResponse struct {
	ProductID   int64           `json:"product_id"`
	ProductName string          `json:"product_name"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	Quantity    int             `json:"quantity"`
	Subtotal    decimal.Decimal `json:"subtotal"`
}

type CartResponse struct {
	ID          int64              `json:"id"`
	CustomerID  int64              `json:"customer_id"`
	Items       []CartItemResponse `json:"items"`
	TotalItems  int                `json:"total_items"`
	TotalAmount decimal.Decimal    `json:"total_amount"`
	UpdatedAt   time.Time          `json:"updated_at"`
}

type CartCountResponse struct {
	Count int `json:"count"`
}

type SaleItemResponse struct {
	ProductID   int64           `json:"product_id"`
	ProductName string          `json:"product_name"`
	Quantity    int             `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	Subtotal    decimal.Decimal `json:"subtotal"`
}

type PaymentResponse struct {
	ID                int64           `json:"id"`
	Method            string          `json:"method"`
	Status            string          `json:"status"`
	Amount            decimal.Decimal `json:"amount"`
	PaymentURL        string          `json:"payment_url,omitempty"`
	ExternalReference string          `json:"external_reference,omitempty"`
	CardLastFour      string          `json:"card_last_four,omitempty"`
	Installments      int             `json:"installments,omitempty"`
	CreatedAt         time.Time       `json:"created_at"`
	PaidAt            *time.Time      `json:"paid_at,omitempty"`
}

type AddressResponse struct {
	ID           int64     `json:"id"`
	AddressLine1 string    `json:"address_line1"`
	AddressLine2 string    `json:"address_line2,omitempty"`
	Landmark     string    `json:"landmark,omitempty"`
	City         string    `json:"city"`
	Department   string    `json:"department"`
	Country      string    `json:"country"`
	ZipCode      string    `json:"zip_code"`
	Primary      bool      `json:"is_primary"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

type SaleResponse struct {
	ID                   int64              `json:"id"`
	InvoiceNumber        string             `json:"invoice_number"`
	CustomerID           int64              `json:"customer_id"`
	TotalAmount          decimal.Decimal    `json:"total_amount"`
	Status               string             `json:"status"`
	PaymentMethod        string             `json:"payment_method"`
	DeliveryMethod       string             `json:"delivery_method"`
	DeliveryInstructions string             `json:"delivery_instructions,omitempty"`
	Items                []SaleItemResponse `json:"items"`
	ShippingAddress      *AddressResponse   `json:"shipping_address,omitempty"`
	Payment              *PaymentResponse   `json:"payment,omitempty"`
	CreatedAt            time.Time          `json:"created_at"`
	UpdatedAt            time.Time          `json:"updated_at"`
}

type OrderStatsResponse struct {
	TotalOrders     int `json:"total_orders"`
	PendingOrders   int `json:"pending_orders"`
	DeliveredOrders int `json:"delivered_orders"`
	CancelledOrders int `json:"cancelled_orders"`
}

type SalesStatsResponse struct {
	TotalSales     int `json:"total_sales"`
	PendingSales   int `json:"pending_sales"`
	ConfirmedSales int `json:"confirmed_sales"`
	PaidSales      int `json:"paid_sales"`
	ShippedSales   int `json:"shipped_sales"`
	DeliveredSales int `json:"delivered_sales"`
	CancelledSales int `json:"cancelled_sales"`
}

func CartViewToJSON(v entities.CartView) CartResponse {
	items := make([]CartItemResponse, 0, len(v.Lines))
	for _, l := range v.Lines {
		items = append(items, CartItemResponse{
			ProductID:   l.ProductID,
			ProductName: l.ProductName,
			UnitPrice:   l.UnitPrice,
			Quantity:    l.Quantity,
			Subtotal:    l.Subtotal(),
		})
	}

	return CartResponse{
		ID:          v.ID,
		CustomerID:  v.CustomerID,
		Items:       items,
		TotalItems:  v.TotalItems(),
		TotalAmount: v.TotalAmount(),
		UpdatedAt:   v.UpdatedAt,
	}
}

func AddressEntityToJSON(a entities.Address) AddressResponse {
	return AddressResponse{
		ID:           a.ID,
		AddressLine1: a.AddressLine1,
		AddressLine2: a.AddressLine2,
		Landmark:     a.Landmark,
		City:         a.City,
		Department:   a.Department,
		Country:      a.Country,
		ZipCode:      a.ZipCode,
		Primary:      a.Primary,
		CreatedAt:    a.CreatedAt,
		UpdatedAt:    a.UpdatedAt,
	}
}

func AddressJSONToEntity(r AddressRequest) entities.Address {
	return entities.Address{
		AddressLine1: r.AddressLine1,
		AddressLine2: r.AddressLine2,
		Landmark:     r.Landmark,
		City:         r.City,
		Department:   r.Department,
		Country:      r.Country,
		ZipCode:      r.ZipCode,
	}
}

func PaymentEntityToJSON(p entities.Payment) PaymentResponse {
	return PaymentResponse{
		ID:                p.ID,
		Method:            string(p.Method),
		Status:            string(p.Status),
		Amount:            p.Amount,
		PaymentURL:        p.PaymentURL,
		ExternalReference: p.ExternalReference,
		CardLastFour:      p.CardLastFour,
		Installments:      p.Installments,
		CreatedAt:         p.CreatedAt,
		PaidAt:            p.PaidAt,
	}
}

func SaleEntityToJSON(s entities.Sale) SaleResponse {
	items := make([]SaleItemResponse, 0, len(s.Items))
	for _, it := range s.Items {
		items = append(items, SaleItemResponse{
			ProductID:   it.ProductID,
			ProductName: it.ProductName,
			Quantity:    it.Quantity,
			UnitPrice:   it.UnitPrice,
			Subtotal:    it.Subtotal(),
		})
	}

	res := SaleResponse{
		ID:                   s.ID,
		InvoiceNumber:        s.InvoiceNumber,
		CustomerID:           s.CustomerID,
		TotalAmount:          s.TotalAmount,
		Status:               string(s.Status),
		PaymentMethod:        string(s.PaymentMethod),
		DeliveryMethod:       string(s.DeliveryMethod),
		DeliveryInstructions: s.DeliveryInstructions,
		Items:                items,
		CreatedAt:            s.CreatedAt,
		UpdatedAt:            s.UpdatedAt,
	}

	if s.ShippingAddress != nil {
		addr := AddressEntityToJSON(*s.ShippingAddress)
		res.ShippingAddress = &addr
	}
	if s.Payment != nil {
		payment := PaymentEntityToJSON(*s.Payment)
		res.Payment = &payment
	}
	return res
}

func OrderStatsToJSON(s entities.OrderStats) OrderStatsResponse {
	return OrderStatsResponse{
		TotalOrders:     s.Total,
		PendingOrders:   s.Pending,
		DeliveredOrders: s.Delivered,
		CancelledOrders: s.Cancelled,
	}
}

func SalesStatsToJSON(s entities.SalesStats) SalesStatsResponse {
	return SalesStatsResponse{
		TotalSales:     s.Total,
		PendingSales:   s.Pending,
		ConfirmedSales: s.Confirmed,
		PaidSales:      s.Paid,
		ShippedSales:   s.Shipped,
		DeliveredSales: s.Delivered,
		CancelledSales: s.Cancelled,
	}
}
