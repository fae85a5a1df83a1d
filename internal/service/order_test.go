package service_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/petshop/checkout-service/internal/entities"
	"github.com/petshop/checkout-service/internal/events"
	"github.com/petshop/checkout-service/internal/service"
	mocks "github.com/petshop/checkout-service/internal/service/mocks"
	txMocks "github.com/petshop/checkout-service/pkg/trm/mocks"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type orderMocks struct {
	carts     *mocks.MockCartRepo
	products  *mocks.MockProductRepo
	addresses *mocks.MockAddressRepo
	sales     *mocks.MockSaleRepo
	publisher *mocks.MockEventPublisher
	cache     *mocks.MockCache
	tx        *txMocks.MockManager
}

func newOrderMocks(t *testing.T) orderMocks {
	m := orderMocks{
		carts:     mocks.NewMockCartRepo(t),
		products:  mocks.NewMockProductRepo(t),
		addresses: mocks.NewMockAddressRepo(t),
		sales:     mocks.NewMockSaleRepo(t),
		publisher: mocks.NewMockEventPublisher(t),
		cache:     mocks.NewMockCache(t),
		tx:        txMocks.NewMockManager(t),
	}
	txPassthrough(m.tx)
	return m
}

type orderSvc interface {
	CreateOrderFromCart(ctx context.Context, actor entities.User, input service.CreateOrderInput) (entities.Sale, error)
	CancelOrder(ctx context.Context, actor entities.User, saleID int64) error
	ListOrders(ctx context.Context, actor entities.User) ([]entities.Sale, error)
	GetOrder(ctx context.Context, actor entities.User, saleID int64) (entities.Sale, error)
	GetOrderByInvoice(ctx context.Context, actor entities.User, invoiceNumber string) (entities.Sale, error)
	OrderStats(ctx context.Context, actor entities.User) (entities.OrderStats, error)
}

func (m orderMocks) newService() orderSvc {
	return service.NewOrderService(newTestLogger(), m.tx, m.carts, m.products, m.addresses, m.sales, m.publisher, m.cache)
}

var validInput = service.CreateOrderInput{
	AddressID:      5,
	PaymentMethod:  entities.PaymentMercadoPago,
	DeliveryMethod: entities.DeliveryHome,
}

func TestOrderService_CreateOrderFromCart(t *testing.T) {
	cart := entities.Cart{ID: 1, CustomerID: customer.ID}
	address := entities.Address{ID: 5, CustomerID: customer.ID, City: "Montevideo"}
	dogFood := entities.Product{ID: 10, Name: "Dog food 5kg", Price: decimal.NewFromFloat(49.95), Stock: 5, Active: true}
	toy := entities.Product{ID: 11, Name: "Chew toy", Price: decimal.NewFromInt(12), Stock: 3, Active: true}
	cartItems := []entities.CartItem{
		{CartID: 1, ProductID: 10, Quantity: 2},
		{CartID: 1, ProductID: 11, Quantity: 1},
	}
	wantTotal := decimal.NewFromFloat(111.90)

	t.Run("happy path", func(t *testing.T) {
		m := newOrderMocks(t)

		m.carts.EXPECT().GetCartByCustomer(mock.Anything, customer.ID).Return(cart, nil)
		m.carts.EXPECT().ListItems(mock.Anything, cart.ID).Return(cartItems, nil)
		m.addresses.EXPECT().GetByIDAndCustomer(mock.Anything, address.ID, customer.ID).Return(address, nil)
		m.products.EXPECT().GetProduct(mock.Anything, dogFood.ID).Return(dogFood, nil)
		m.products.EXPECT().GetProduct(mock.Anything, toy.ID).Return(toy, nil)

		m.sales.EXPECT().CreateSale(mock.Anything, mock.Anything).
			RunAndReturn(func(_ context.Context, s entities.Sale) (entities.Sale, error) {
				assert.Equal(t, entities.SalePending, s.Status)
				assert.Equal(t, customer.ID, s.CustomerID)
				assert.Equal(t, address.ID, s.ShippingAddressID)
				assert.True(t, s.TotalAmount.Equal(wantTotal), "total %s", s.TotalAmount)
				assert.True(t, strings.HasPrefix(s.InvoiceNumber, "INV-"))
				assert.True(t, strings.HasSuffix(s.InvoiceNumber, "-42"))
				s.ID = 100
				return s, nil
			})
		m.sales.EXPECT().CreateSaleItems(mock.Anything, int64(100), mock.Anything).
			RunAndReturn(func(_ context.Context, saleID int64, items []entities.SaleItem) ([]entities.SaleItem, error) {
				require.Len(t, items, 2)
				// Unit prices are captured from the product at checkout time.
				assert.True(t, items[0].UnitPrice.Equal(dogFood.Price))
				assert.Equal(t, dogFood.Name, items[0].ProductName)
				assert.True(t, items[1].UnitPrice.Equal(toy.Price))
				return items, nil
			})
		m.products.EXPECT().ReserveStock(mock.Anything, dogFood.ID, 2).Return(nil)
		m.products.EXPECT().ReserveStock(mock.Anything, toy.ID, 1).Return(nil)
		m.sales.EXPECT().CreatePayment(mock.Anything, mock.Anything).
			RunAndReturn(func(_ context.Context, p entities.Payment) (entities.Payment, error) {
				assert.Equal(t, int64(100), p.SaleID)
				assert.Equal(t, entities.PaymentPending, p.Status)
				assert.True(t, p.Amount.Equal(wantTotal))
				assert.NotEmpty(t, p.ExternalReference)
				assert.Contains(t, p.PaymentURL, "mercadopago.com/checkout/")
				return p, nil
			})
		m.carts.EXPECT().ClearItems(mock.Anything, cart.ID).Return(nil)
		m.carts.EXPECT().Touch(mock.Anything, cart.ID).Return(nil)
		m.publisher.EXPECT().PublishOrderEvent(mock.Anything, mock.Anything).
			RunAndReturn(func(_ context.Context, e events.OrderEvent) error {
				assert.Equal(t, events.OrderCreated, e.Type)
				assert.Equal(t, customer.ID, e.CustomerID)
				return nil
			})

		sale, err := m.newService().CreateOrderFromCart(context.Background(), customer, validInput)
		require.NoError(t, err)

		assert.Equal(t, int64(100), sale.ID)
		assert.Len(t, sale.Items, 2)
		require.NotNil(t, sale.Payment)
		require.NotNil(t, sale.ShippingAddress)
		assert.Equal(t, address.ID, sale.ShippingAddress.ID)
	})

	t.Run("empty cart", func(t *testing.T) {
		m := newOrderMocks(t)

		m.carts.EXPECT().GetCartByCustomer(mock.Anything, customer.ID).Return(cart, nil)
		m.carts.EXPECT().ListItems(mock.Anything, cart.ID).Return(nil, nil)

		_, err := m.newService().CreateOrderFromCart(context.Background(), customer, validInput)
		assert.ErrorIs(t, err, entities.ErrEmptyCart)
	})

	t.Run("no cart at all", func(t *testing.T) {
		m := newOrderMocks(t)

		m.carts.EXPECT().GetCartByCustomer(mock.Anything, customer.ID).
			Return(entities.Cart{}, entities.ErrCartNotFound)

		_, err := m.newService().CreateOrderFromCart(context.Background(), customer, validInput)
		assert.ErrorIs(t, err, entities.ErrEmptyCart)
	})

	t.Run("address belongs to someone else", func(t *testing.T) {
		m := newOrderMocks(t)

		m.carts.EXPECT().GetCartByCustomer(mock.Anything, customer.ID).Return(cart, nil)
		m.carts.EXPECT().ListItems(mock.Anything, cart.ID).Return(cartItems, nil)
		m.addresses.EXPECT().GetByIDAndCustomer(mock.Anything, address.ID, customer.ID).
			Return(entities.Address{}, entities.ErrAddressNotFound)

		_, err := m.newService().CreateOrderFromCart(context.Background(), customer, validInput)
		assert.ErrorIs(t, err, entities.ErrInvalidAddress)
	})

	t.Run("insufficient stock aborts before any write", func(t *testing.T) {
		m := newOrderMocks(t)

		short := dogFood
		short.Stock = 1
		m.carts.EXPECT().GetCartByCustomer(mock.Anything, customer.ID).Return(cart, nil)
		m.carts.EXPECT().ListItems(mock.Anything, cart.ID).Return(cartItems, nil)
		m.addresses.EXPECT().GetByIDAndCustomer(mock.Anything, address.ID, customer.ID).Return(address, nil)
		m.products.EXPECT().GetProduct(mock.Anything, dogFood.ID).Return(short, nil)

		_, err := m.newService().CreateOrderFromCart(context.Background(), customer, validInput)

		var stockErr *entities.InsufficientStockError
		require.ErrorAs(t, err, &stockErr)
		assert.Equal(t, 1, stockErr.Available)
		assert.Equal(t, 2, stockErr.Requested)
		m.sales.AssertNotCalled(t, "CreateSale", mock.Anything, mock.Anything)
	})

	t.Run("deactivated product aborts checkout", func(t *testing.T) {
		m := newOrderMocks(t)

		inactive := dogFood
		inactive.Active = false
		m.carts.EXPECT().GetCartByCustomer(mock.Anything, customer.ID).Return(cart, nil)
		m.carts.EXPECT().ListItems(mock.Anything, cart.ID).Return(cartItems, nil)
		m.addresses.EXPECT().GetByIDAndCustomer(mock.Anything, address.ID, customer.ID).Return(address, nil)
		m.products.EXPECT().GetProduct(mock.Anything, dogFood.ID).Return(inactive, nil)

		_, err := m.newService().CreateOrderFromCart(context.Background(), customer, validInput)
		assert.ErrorIs(t, err, entities.ErrProductUnavailable)
	})

	t.Run("reserve race loses", func(t *testing.T) {
		m := newOrderMocks(t)

		m.carts.EXPECT().GetCartByCustomer(mock.Anything, customer.ID).Return(cart, nil)
		m.carts.EXPECT().ListItems(mock.Anything, cart.ID).Return(cartItems, nil)
		m.addresses.EXPECT().GetByIDAndCustomer(mock.Anything, address.ID, customer.ID).Return(address, nil)
		m.products.EXPECT().GetProduct(mock.Anything, dogFood.ID).Return(dogFood, nil)
		m.products.EXPECT().GetProduct(mock.Anything, toy.ID).Return(toy, nil)
		m.sales.EXPECT().CreateSale(mock.Anything, mock.Anything).
			RunAndReturn(func(_ context.Context, s entities.Sale) (entities.Sale, error) {
				s.ID = 100
				return s, nil
			})
		m.sales.EXPECT().CreateSaleItems(mock.Anything, int64(100), mock.Anything).
			RunAndReturn(func(_ context.Context, _ int64, items []entities.SaleItem) ([]entities.SaleItem, error) {
				return items, nil
			})
		// A concurrent checkout grabbed the stock between validation and
		// the conditional decrement.
		m.products.EXPECT().ReserveStock(mock.Anything, dogFood.ID, 2).
			Return(&entities.InsufficientStockError{ProductID: dogFood.ID, Available: 0, Requested: 2})

		_, err := m.newService().CreateOrderFromCart(context.Background(), customer, validInput)
		assert.ErrorIs(t, err, entities.ErrInsufficientStock)
	})

	t.Run("actor is not a customer", func(t *testing.T) {
		m := newOrderMocks(t)

		_, err := m.newService().CreateOrderFromCart(context.Background(), manager, validInput)
		assert.ErrorIs(t, err, entities.ErrAccessDenied)
	})

	t.Run("broker outage does not fail the order", func(t *testing.T) {
		m := newOrderMocks(t)

		soloItems := cartItems[:1]
		m.carts.EXPECT().GetCartByCustomer(mock.Anything, customer.ID).Return(cart, nil)
		m.carts.EXPECT().ListItems(mock.Anything, cart.ID).Return(soloItems, nil)
		m.addresses.EXPECT().GetByIDAndCustomer(mock.Anything, address.ID, customer.ID).Return(address, nil)
		m.products.EXPECT().GetProduct(mock.Anything, dogFood.ID).Return(dogFood, nil)
		m.sales.EXPECT().CreateSale(mock.Anything, mock.Anything).
			RunAndReturn(func(_ context.Context, s entities.Sale) (entities.Sale, error) {
				s.ID = 100
				return s, nil
			})
		m.sales.EXPECT().CreateSaleItems(mock.Anything, int64(100), mock.Anything).
			RunAndReturn(func(_ context.Context, _ int64, items []entities.SaleItem) ([]entities.SaleItem, error) {
				return items, nil
			})
		m.products.EXPECT().ReserveStock(mock.Anything, dogFood.ID, 2).Return(nil)
		m.sales.EXPECT().CreatePayment(mock.Anything, mock.Anything).
			RunAndReturn(func(_ context.Context, p entities.Payment) (entities.Payment, error) {
				return p, nil
			})
		m.carts.EXPECT().ClearItems(mock.Anything, cart.ID).Return(nil)
		m.carts.EXPECT().Touch(mock.Anything, cart.ID).Return(nil)
		m.publisher.EXPECT().PublishOrderEvent(mock.Anything, mock.Anything).
			Return(errors.New("broker down")).Times(3)

		_, err := m.newService().CreateOrderFromCart(context.Background(), customer, validInput)
		assert.NoError(t, err)
	})
}

func TestOrderService_CancelOrder(t *testing.T) {
	sale := entities.Sale{
		ID:            100,
		InvoiceNumber: "INV-1724800000000-42",
		CustomerID:    customer.ID,
		Status:        entities.SalePending,
		TotalAmount:   decimal.NewFromInt(50),
		Items: []entities.SaleItem{
			{ProductID: 10, Quantity: 2},
			{ProductID: 11, Quantity: 1},
		},
	}

	t.Run("restores stock and cancels", func(t *testing.T) {
		m := newOrderMocks(t)

		m.sales.EXPECT().GetSaleForCustomer(mock.Anything, sale.ID, customer.ID).Return(sale, nil)
		m.products.EXPECT().RestoreStock(mock.Anything, int64(10), 2).Return(nil)
		m.products.EXPECT().RestoreStock(mock.Anything, int64(11), 1).Return(nil)
		m.sales.EXPECT().UpdateStatus(mock.Anything, sale.ID, entities.SaleCancelled).Return(nil)
		m.cache.EXPECT().Delete("sale:" + sale.InvoiceNumber).Return()
		m.publisher.EXPECT().PublishOrderEvent(mock.Anything, mock.Anything).
			RunAndReturn(func(_ context.Context, e events.OrderEvent) error {
				assert.Equal(t, events.OrderCancelled, e.Type)
				assert.Equal(t, string(entities.SaleCancelled), e.Status)
				return nil
			})

		assert.NoError(t, m.newService().CancelOrder(context.Background(), customer, sale.ID))
	})

	t.Run("shipped order cannot be cancelled by the customer", func(t *testing.T) {
		m := newOrderMocks(t)

		shipped := sale
		shipped.Status = entities.SaleShipped
		m.sales.EXPECT().GetSaleForCustomer(mock.Anything, sale.ID, customer.ID).Return(shipped, nil)

		err := m.newService().CancelOrder(context.Background(), customer, sale.ID)
		assert.ErrorIs(t, err, entities.ErrAlreadyShipped)
	})

	t.Run("already cancelled", func(t *testing.T) {
		m := newOrderMocks(t)

		cancelled := sale
		cancelled.Status = entities.SaleCancelled
		m.sales.EXPECT().GetSaleForCustomer(mock.Anything, sale.ID, customer.ID).Return(cancelled, nil)

		err := m.newService().CancelOrder(context.Background(), customer, sale.ID)
		assert.ErrorIs(t, err, entities.ErrAlreadyCancelled)
	})

	t.Run("someone else's order reads as missing", func(t *testing.T) {
		m := newOrderMocks(t)

		m.sales.EXPECT().GetSaleForCustomer(mock.Anything, sale.ID, customer.ID).
			Return(entities.Sale{}, entities.ErrSaleNotFound)

		err := m.newService().CancelOrder(context.Background(), customer, sale.ID)
		assert.ErrorIs(t, err, entities.ErrOrderNotFound)
	})
}

func TestOrderService_OrderStats(t *testing.T) {
	m := newOrderMocks(t)

	m.sales.EXPECT().CountByStatus(mock.Anything, mock.Anything).
		Return(map[entities.SaleStatus]int{
			entities.SalePending:   2,
			entities.SaleConfirmed: 1,
			entities.SaleDelivered: 4,
			entities.SaleCancelled: 3,
		}, nil)

	stats, err := m.newService().OrderStats(context.Background(), customer)
	require.NoError(t, err)

	assert.Equal(t, 10, stats.Total)
	// Pending groups everything not yet handed to fulfilment.
	assert.Equal(t, 3, stats.Pending)
	assert.Equal(t, 4, stats.Delivered)
	assert.Equal(t, 3, stats.Cancelled)
}

func TestOrderService_GetOrder(t *testing.T) {
	t.Run("maps sale-not-found to order-not-found", func(t *testing.T) {
		m := newOrderMocks(t)

		m.sales.EXPECT().GetSaleForCustomer(mock.Anything, int64(9), customer.ID).
			Return(entities.Sale{}, entities.ErrSaleNotFound)

		_, err := m.newService().GetOrder(context.Background(), customer, 9)
		assert.ErrorIs(t, err, entities.ErrOrderNotFound)
	})

	t.Run("denied for admins", func(t *testing.T) {
		m := newOrderMocks(t)

		_, err := m.newService().GetOrder(context.Background(), manager, 9)
		assert.ErrorIs(t, err, entities.ErrAccessDenied)
	})
}
