package repo

import (
	"database/sql"
	"time"

	"github.com/petshop/checkout-service/internal/entities"

	"github.com/shopspring/decimal"
)

type Product struct {
	ID        int64           `db:"id"`
	Name      string          `db:"name"`
	Price     decimal.Decimal `db:"price"`
	Stock     int             `db:"stock"`
	MinStock  int             `db:"min_stock"`
	Active    bool            `db:"active"`
	UpdatedAt time.Time       `db:"updated_at"`
}

type Cart struct {
	ID         int64     `db:"id"`
	CustomerID int64     `db:"customer_id"`
	UpdatedAt  time.Time `db:"updated_at"`
}

type CartItem struct {
	ID        int64 `db:"id"`
	CartID    int64 `db:"cart_id"`
	ProductID int64 `db:"product_id"`
	Quantity  int   `db:"quantity"`
}

type CartLine struct {
	ProductID   int64           `db:"product_id"`
	ProductName string          `db:"product_name"`
	UnitPrice   decimal.Decimal `db:"unit_price"`
	Quantity    int             `db:"quantity"`
}

type Address struct {
	ID           int64          `db:"id"`
	CustomerID   int64          `db:"customer_id"`
	AddressLine1 string         `db:"address_line1"`
	AddressLine2 sql.NullString `db:"address_line2"`
	Landmark     sql.NullString `db:"landmark"`
	City         string         `db:"city"`
	Department   string         `db:"department"`
	Country      string         `db:"country"`
	ZipCode      string         `db:"zip_code"`
	IsPrimary    bool           `db:"is_primary"`
	IsActive     bool           `db:"is_active"`
	CreatedAt    time.Time      `db:"created_at"`
	UpdatedAt    time.Time      `db:"updated_at"`
}

type Sale struct {
	ID                   int64           `db:"id"`
	InvoiceNumber        string          `db:"invoice_number"`
	CustomerID           int64           `db:"customer_id"`
	ShippingAddressID    int64           `db:"shipping_address_id"`
	TotalAmount          decimal.Decimal `db:"total_amount"`
	Status               string          `db:"status"`
	PaymentMethod        string          `db:"payment_method"`
	DeliveryMethod       string          `db:"delivery_method"`
	DeliveryInstructions sql.NullString  `db:"delivery_instructions"`
	CreatedAt            time.Time       `db:"created_at"`
	UpdatedAt            time.Time       `db:"updated_at"`
}

type SaleItem struct {
	ID          int64           `db:"id"`
	SaleID      int64           `db:"sale_id"`
	ProductID   int64           `db:"product_id"`
	ProductName string          `db:"product_name"`
	Quantity    int             `db:"quantity"`
	UnitPrice   decimal.Decimal `db:"unit_price"`
}

type Payment struct {
	ID                int64           `db:"id"`
	SaleID            int64           `db:"sale_id"`
	Method            string          `db:"method"`
	Status            string          `db:"status"`
	Amount            decimal.Decimal `db:"amount"`
	PaymentURL        sql.NullString  `db:"payment_url"`
	ExternalReference sql.NullString  `db:"external_reference"`
	CardLastFour      sql.NullString  `db:"card_last_four"`
	Installments      sql.NullInt32   `db:"installments"`
	CreatedAt         time.Time       `db:"created_at"`
	PaidAt            sql.NullTime    `db:"paid_at"`
}

func ProductToEntity(p Product) entities.Product {
	return entities.Product{
		ID:        p.ID,
		Name:      p.Name,
		Price:     p.Price,
		Stock:     p.Stock,
		MinStock:  p.MinStock,
		Active:    p.Active,
		UpdatedAt: p.UpdatedAt,
	}
}

func CartToEntity(c Cart) entities.Cart {
	return entities.Cart{
		ID:         c.ID,
		CustomerID: c.CustomerID,
		UpdatedAt:  c.UpdatedAt,
	}
}

func CartItemToEntity(i CartItem) entities.CartItem {
	return entities.CartItem{
		ID:        i.ID,
		CartID:    i.CartID,
		ProductID: i.ProductID,
		Quantity:  i.Quantity,
	}
}

func CartLineToEntity(l CartLine) entities.CartLine {
	return entities.CartLine{
		ProductID:   l.ProductID,
		ProductName: l.ProductName,
		UnitPrice:   l.UnitPrice,
		Quantity:    l.Quantity,
	}
}

func AddressToEntity(a Address) entities.Address {
	return entities.Address{
		ID:           a.ID,
		CustomerID:   a.CustomerID,
		AddressLine1: a.AddressLine1,
		AddressLine2: nullStringToString(a.AddressLine2),
		Landmark:     nullStringToString(a.Landmark),
		City:         a.City,
		Department:   a.Department,
		Country:      a.Country,
		ZipCode:      a.ZipCode,
		Primary:      a.IsPrimary,
		Active:       a.IsActive,
		CreatedAt:    a.CreatedAt,
		UpdatedAt:    a.UpdatedAt,
	}
}

func SaleItemToEntity(i SaleItem) entities.SaleItem {
	return entities.SaleItem{
		ID:          i.ID,
		SaleID:      i.SaleID,
		ProductID:   i.ProductID,
		ProductName: i.ProductName,
		Quantity:    i.Quantity,
		UnitPrice:   i.UnitPrice,
	}
}

func PaymentToEntity(p Payment) entities.Payment {
	out := entities.Payment{
		ID:                p.ID,
		SaleID:            p.SaleID,
		Method:            entities.PaymentMethod(p.Method),
		Status:            entities.PaymentStatus(p.Status),
		Amount:            p.Amount,
		PaymentURL:        nullStringToString(p.PaymentURL),
		ExternalReference: nullStringToString(p.ExternalReference),
		CardLastFour:      nullStringToString(p.CardLastFour),
		Installments:      nullInt32ToInt(p.Installments),
		CreatedAt:         p.CreatedAt,
	}
	if p.PaidAt.Valid {
		t := p.PaidAt.Time
		out.PaidAt = &t
	}
	return out
}

// SaleToEntity assembles a fully loaded sale from its relational parts so
// no caller ever sees a half-populated aggregate.
func SaleToEntity(s Sale, items []SaleItem, payment *Payment, address *Address) entities.Sale {
	sale := entities.Sale{
		ID:                   s.ID,
		InvoiceNumber:        s.InvoiceNumber,
		CustomerID:           s.CustomerID,
		ShippingAddressID:    s.ShippingAddressID,
		TotalAmount:          s.TotalAmount,
		Status:               entities.SaleStatus(s.Status),
		PaymentMethod:        entities.PaymentMethod(s.PaymentMethod),
		DeliveryMethod:       entities.DeliveryMethod(s.DeliveryMethod),
		DeliveryInstructions: nullStringToString(s.DeliveryInstructions),
		CreatedAt:            s.CreatedAt,
		UpdatedAt:            s.UpdatedAt,
	}

	if len(items) > 0 {
		sale.Items = make([]entities.SaleItem, 0, len(items))
		for _, it := range items {
			sale.Items = append(sale.Items, SaleItemToEntity(it))
		}
	}

	if payment != nil {
		p := PaymentToEntity(*payment)
		sale.Payment = &p
	}

	if address != nil {
		a := AddressToEntity(*address)
		sale.ShippingAddress = &a
	}

	return sale
}

func nullStringToString(ns sql.NullString) string {
	if ns.Valid {
		return ns.String
	}
	return ""
}

func nullInt32ToInt(ni sql.NullInt32) int {
	if ni.Valid {
		return int(ni.Int32)
	}
	return 0
}

func nullString(s string) sql.NullString {
	if s == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: s, Valid: true}
}

func nullInt32(i int) sql.NullInt32 {
	if i == 0 {
		return sql.NullInt32{}
	}
	return sql.NullInt32{Int32: int32(i), Valid: true}
}
