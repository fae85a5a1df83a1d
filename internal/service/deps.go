package service

import (
	"context"

	"github.com/petshop/checkout-service/internal/entities"
	"github.com/petshop/checkout-service/internal/events"
)

// Repository interfaces are declared on the consumer side; the postgres
// implementations in internal/repo satisfy them.

type ProductRepo interface {
	GetProduct(ctx context.Context, productID int64) (entities.Product, error)
	ReserveStock(ctx context.Context, productID int64, quantity int) error
	RestoreStock(ctx context.Context, productID int64, quantity int) error
}

type CartRepo interface {
	GetCartByCustomer(ctx context.Context, customerID int64) (entities.Cart, error)
	CreateCart(ctx context.Context, customerID int64) (entities.Cart, error)
	ListItems(ctx context.Context, cartID int64) ([]entities.CartItem, error)
	ListLines(ctx context.Context, cartID int64) ([]entities.CartLine, error)
	GetItem(ctx context.Context, cartID, productID int64) (entities.CartItem, error)
	InsertItem(ctx context.Context, cartID, productID int64, quantity int) error
	UpdateItemQuantity(ctx context.Context, cartID, productID int64, quantity int) error
	DeleteItem(ctx context.Context, cartID, productID int64) error
	ClearItems(ctx context.Context, cartID int64) error
	CountItems(ctx context.Context, cartID int64) (int, error)
	Touch(ctx context.Context, cartID int64) error
}

type AddressRepo interface {
	GetByIDAndCustomer(ctx context.Context, addressID, customerID int64) (entities.Address, error)
	ListByCustomer(ctx context.Context, customerID int64) ([]entities.Address, error)
	CountActive(ctx context.Context, customerID int64) (int, error)
	Create(ctx context.Context, a entities.Address) (entities.Address, error)
	Update(ctx context.Context, a entities.Address) error
	SoftDelete(ctx context.Context, addressID, customerID int64) error
	UnsetPrimary(ctx context.Context, customerID int64) error
	SetPrimary(ctx context.Context, addressID, customerID int64) error
}

type SaleRepo interface {
	CreateSale(ctx context.Context, s entities.Sale) (entities.Sale, error)
	CreateSaleItems(ctx context.Context, saleID int64, items []entities.SaleItem) ([]entities.SaleItem, error)
	CreatePayment(ctx context.Context, p entities.Payment) (entities.Payment, error)
	GetSale(ctx context.Context, saleID int64) (entities.Sale, error)
	GetSaleForCustomer(ctx context.Context, saleID, customerID int64) (entities.Sale, error)
	GetSaleByInvoice(ctx context.Context, invoiceNumber string) (entities.Sale, error)
	GetSaleByInvoiceForCustomer(ctx context.Context, invoiceNumber string, customerID int64) (entities.Sale, error)
	ListByCustomer(ctx context.Context, customerID int64) ([]entities.Sale, error)
	ListAll(ctx context.Context, status *entities.SaleStatus, limit uint64) ([]entities.Sale, error)
	UpdateStatus(ctx context.Context, saleID int64, status entities.SaleStatus) error
	CountByStatus(ctx context.Context, customerID *int64) (map[entities.SaleStatus]int, error)
}

type EventPublisher interface {
	PublishOrderEvent(ctx context.Context, event events.OrderEvent) error
}

type Cache interface {
	Get(key string) ([]byte, bool)
	Set(key string, value []byte)
	Delete(key string)
}

func requireCustomer(actor entities.User) error {
	if !actor.IsCustomer() {
		return entities.ErrAccessDenied
	}
	return nil
}

func requireSalesAdmin(actor entities.User) error {
	if !actor.CanManageSales() {
		return entities.ErrAccessDenied
	}
	return nil
}
