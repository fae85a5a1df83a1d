package service_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/petshop/checkout-service/internal/entities"
	"github.com/petshop/checkout-service/internal/service"
	mocks "github.com/petshop/checkout-service/internal/service/mocks"
	txMocks "github.com/petshop/checkout-service/pkg/trm/mocks"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var (
	customer = entities.User{ID: 42, Email: "buyer@example.com", Role: entities.RoleCustomer}
	manager  = entities.User{ID: 7, Email: "manager@example.com", Role: entities.RoleManager}
)

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// txPassthrough makes the mocked transaction manager run callbacks inline.
func txPassthrough(tx *txMocks.MockManager) {
	tx.EXPECT().
		Do(mock.Anything, mock.Anything).
		RunAndReturn(func(ctx context.Context, cb func(ctx context.Context) error) error {
			return cb(ctx)
		}).Maybe()
}

func TestCartService_AddItem(t *testing.T) {
	type MockBehavior func(carts *mocks.MockCartRepo, products *mocks.MockProductRepo)

	cart := entities.Cart{ID: 1, CustomerID: customer.ID}
	dogFood := entities.Product{
		ID:     10,
		Name:   "Dog food 5kg",
		Price:  decimal.NewFromFloat(49.95),
		Stock:  5,
		Active: true,
	}
	lines := []entities.CartLine{
		{ProductID: 10, ProductName: "Dog food 5kg", UnitPrice: dogFood.Price, Quantity: 2},
	}

	testCases := []struct {
		name         string
		actor        entities.User
		quantity     int
		mockBehavior MockBehavior
		wantErr      error
	}{
		{
			name:     "new line",
			actor:    customer,
			quantity: 2,
			mockBehavior: func(carts *mocks.MockCartRepo, products *mocks.MockProductRepo) {
				carts.EXPECT().GetCartByCustomer(mock.Anything, customer.ID).Return(cart, nil)
				products.EXPECT().GetProduct(mock.Anything, dogFood.ID).Return(dogFood, nil)
				carts.EXPECT().GetItem(mock.Anything, cart.ID, dogFood.ID).
					Return(entities.CartItem{}, entities.ErrItemNotFound)
				carts.EXPECT().InsertItem(mock.Anything, cart.ID, dogFood.ID, 2).Return(nil)
				carts.EXPECT().Touch(mock.Anything, cart.ID).Return(nil)
				carts.EXPECT().ListLines(mock.Anything, cart.ID).Return(lines, nil)
			},
		},
		{
			name:     "same product grows the line",
			actor:    customer,
			quantity: 2,
			mockBehavior: func(carts *mocks.MockCartRepo, products *mocks.MockProductRepo) {
				carts.EXPECT().GetCartByCustomer(mock.Anything, customer.ID).Return(cart, nil)
				products.EXPECT().GetProduct(mock.Anything, dogFood.ID).Return(dogFood, nil)
				carts.EXPECT().GetItem(mock.Anything, cart.ID, dogFood.ID).
					Return(entities.CartItem{CartID: cart.ID, ProductID: dogFood.ID, Quantity: 3}, nil)
				carts.EXPECT().UpdateItemQuantity(mock.Anything, cart.ID, dogFood.ID, 5).Return(nil)
				carts.EXPECT().Touch(mock.Anything, cart.ID).Return(nil)
				carts.EXPECT().ListLines(mock.Anything, cart.ID).Return(lines, nil)
			},
		},
		{
			name:     "combined quantity exceeds stock",
			actor:    customer,
			quantity: 3,
			mockBehavior: func(carts *mocks.MockCartRepo, products *mocks.MockProductRepo) {
				carts.EXPECT().GetCartByCustomer(mock.Anything, customer.ID).Return(cart, nil)
				products.EXPECT().GetProduct(mock.Anything, dogFood.ID).Return(dogFood, nil)
				carts.EXPECT().GetItem(mock.Anything, cart.ID, dogFood.ID).
					Return(entities.CartItem{CartID: cart.ID, ProductID: dogFood.ID, Quantity: 3}, nil)
			},
			wantErr: entities.ErrInsufficientStock,
		},
		{
			name:     "cart created on first add",
			actor:    customer,
			quantity: 1,
			mockBehavior: func(carts *mocks.MockCartRepo, products *mocks.MockProductRepo) {
				carts.EXPECT().GetCartByCustomer(mock.Anything, customer.ID).
					Return(entities.Cart{}, entities.ErrCartNotFound)
				carts.EXPECT().CreateCart(mock.Anything, customer.ID).Return(cart, nil)
				products.EXPECT().GetProduct(mock.Anything, dogFood.ID).Return(dogFood, nil)
				carts.EXPECT().GetItem(mock.Anything, cart.ID, dogFood.ID).
					Return(entities.CartItem{}, entities.ErrItemNotFound)
				carts.EXPECT().InsertItem(mock.Anything, cart.ID, dogFood.ID, 1).Return(nil)
				carts.EXPECT().Touch(mock.Anything, cart.ID).Return(nil)
				carts.EXPECT().ListLines(mock.Anything, cart.ID).Return(lines, nil)
			},
		},
		{
			name:     "inactive product",
			actor:    customer,
			quantity: 1,
			mockBehavior: func(carts *mocks.MockCartRepo, products *mocks.MockProductRepo) {
				inactive := dogFood
				inactive.Active = false
				carts.EXPECT().GetCartByCustomer(mock.Anything, customer.ID).Return(cart, nil)
				products.EXPECT().GetProduct(mock.Anything, dogFood.ID).Return(inactive, nil)
			},
			wantErr: entities.ErrProductUnavailable,
		},
		{
			name:     "product out of stock",
			actor:    customer,
			quantity: 1,
			mockBehavior: func(carts *mocks.MockCartRepo, products *mocks.MockProductRepo) {
				gone := dogFood
				gone.Stock = 0
				carts.EXPECT().GetCartByCustomer(mock.Anything, customer.ID).Return(cart, nil)
				products.EXPECT().GetProduct(mock.Anything, dogFood.ID).Return(gone, nil)
			},
			wantErr: entities.ErrOutOfStock,
		},
		{
			name:         "non-positive quantity",
			actor:        customer,
			quantity:     0,
			mockBehavior: func(carts *mocks.MockCartRepo, products *mocks.MockProductRepo) {},
			wantErr:      entities.ErrInvalidQuantity,
		},
		{
			name:         "non-customer actor",
			actor:        manager,
			quantity:     1,
			mockBehavior: func(carts *mocks.MockCartRepo, products *mocks.MockProductRepo) {},
			wantErr:      entities.ErrAccessDenied,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			carts := mocks.NewMockCartRepo(t)
			products := mocks.NewMockProductRepo(t)
			tx := txMocks.NewMockManager(t)
			txPassthrough(tx)

			tc.mockBehavior(carts, products)

			svc := service.NewCartService(newTestLogger(), tx, carts, products)

			view, err := svc.AddItem(context.Background(), tc.actor, dogFood.ID, tc.quantity)
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, cart.ID, view.ID)
			assert.Equal(t, lines, view.Lines)
		})
	}
}

func TestCartService_AddItem_InsufficientStockDetail(t *testing.T) {
	carts := mocks.NewMockCartRepo(t)
	products := mocks.NewMockProductRepo(t)
	tx := txMocks.NewMockManager(t)
	txPassthrough(tx)

	cart := entities.Cart{ID: 1, CustomerID: customer.ID}
	toy := entities.Product{ID: 3, Name: "Chew toy", Price: decimal.NewFromInt(12), Stock: 2, Active: true}

	carts.EXPECT().GetCartByCustomer(mock.Anything, customer.ID).Return(cart, nil)
	products.EXPECT().GetProduct(mock.Anything, toy.ID).Return(toy, nil)
	carts.EXPECT().GetItem(mock.Anything, cart.ID, toy.ID).
		Return(entities.CartItem{}, entities.ErrItemNotFound)

	svc := service.NewCartService(newTestLogger(), tx, carts, products)

	_, err := svc.AddItem(context.Background(), customer, toy.ID, 5)

	var stockErr *entities.InsufficientStockError
	require.ErrorAs(t, err, &stockErr)
	assert.Equal(t, toy.ID, stockErr.ProductID)
	assert.Equal(t, 2, stockErr.Available)
	assert.Equal(t, 5, stockErr.Requested)
}

func TestCartService_UpdateItem(t *testing.T) {
	cart := entities.Cart{ID: 1, CustomerID: customer.ID}
	toy := entities.Product{ID: 3, Name: "Chew toy", Price: decimal.NewFromInt(12), Stock: 10, Active: true}

	t.Run("overwrites quantity", func(t *testing.T) {
		carts := mocks.NewMockCartRepo(t)
		products := mocks.NewMockProductRepo(t)
		tx := txMocks.NewMockManager(t)
		txPassthrough(tx)

		carts.EXPECT().GetCartByCustomer(mock.Anything, customer.ID).Return(cart, nil)
		products.EXPECT().GetProduct(mock.Anything, toy.ID).Return(toy, nil)
		carts.EXPECT().UpdateItemQuantity(mock.Anything, cart.ID, toy.ID, 4).Return(nil)
		carts.EXPECT().Touch(mock.Anything, cart.ID).Return(nil)
		carts.EXPECT().ListLines(mock.Anything, cart.ID).Return(nil, nil)

		svc := service.NewCartService(newTestLogger(), tx, carts, products)

		_, err := svc.UpdateItem(context.Background(), customer, toy.ID, 4)
		assert.NoError(t, err)
	})

	t.Run("zero quantity removes the line", func(t *testing.T) {
		carts := mocks.NewMockCartRepo(t)
		products := mocks.NewMockProductRepo(t)
		tx := txMocks.NewMockManager(t)
		txPassthrough(tx)

		carts.EXPECT().GetCartByCustomer(mock.Anything, customer.ID).Return(cart, nil)
		carts.EXPECT().DeleteItem(mock.Anything, cart.ID, toy.ID).Return(nil)
		carts.EXPECT().Touch(mock.Anything, cart.ID).Return(nil)
		carts.EXPECT().ListLines(mock.Anything, cart.ID).Return(nil, nil)

		svc := service.NewCartService(newTestLogger(), tx, carts, products)

		_, err := svc.UpdateItem(context.Background(), customer, toy.ID, 0)
		assert.NoError(t, err)
	})

	t.Run("no cart means no item", func(t *testing.T) {
		carts := mocks.NewMockCartRepo(t)
		products := mocks.NewMockProductRepo(t)
		tx := txMocks.NewMockManager(t)
		txPassthrough(tx)

		carts.EXPECT().GetCartByCustomer(mock.Anything, customer.ID).
			Return(entities.Cart{}, entities.ErrCartNotFound)

		svc := service.NewCartService(newTestLogger(), tx, carts, products)

		_, err := svc.UpdateItem(context.Background(), customer, toy.ID, 4)
		assert.ErrorIs(t, err, entities.ErrItemNotFound)
	})
}

func TestCartService_Clear(t *testing.T) {
	t.Run("clears existing cart", func(t *testing.T) {
		carts := mocks.NewMockCartRepo(t)
		products := mocks.NewMockProductRepo(t)
		tx := txMocks.NewMockManager(t)
		txPassthrough(tx)

		cart := entities.Cart{ID: 1, CustomerID: customer.ID}
		carts.EXPECT().GetCartByCustomer(mock.Anything, customer.ID).Return(cart, nil)
		carts.EXPECT().ClearItems(mock.Anything, cart.ID).Return(nil)
		carts.EXPECT().Touch(mock.Anything, cart.ID).Return(nil)

		svc := service.NewCartService(newTestLogger(), tx, carts, products)

		assert.NoError(t, svc.Clear(context.Background(), customer))
	})

	t.Run("missing cart is a no-op", func(t *testing.T) {
		carts := mocks.NewMockCartRepo(t)
		products := mocks.NewMockProductRepo(t)
		tx := txMocks.NewMockManager(t)
		txPassthrough(tx)

		carts.EXPECT().GetCartByCustomer(mock.Anything, customer.ID).
			Return(entities.Cart{}, entities.ErrCartNotFound)

		svc := service.NewCartService(newTestLogger(), tx, carts, products)

		assert.NoError(t, svc.Clear(context.Background(), customer))
	})
}

func TestCartService_ItemCount(t *testing.T) {
	t.Run("sums quantities", func(t *testing.T) {
		carts := mocks.NewMockCartRepo(t)
		products := mocks.NewMockProductRepo(t)
		tx := txMocks.NewMockManager(t)
		txPassthrough(tx)

		cart := entities.Cart{ID: 1, CustomerID: customer.ID}
		carts.EXPECT().GetCartByCustomer(mock.Anything, customer.ID).Return(cart, nil)
		carts.EXPECT().CountItems(mock.Anything, cart.ID).Return(6, nil)

		svc := service.NewCartService(newTestLogger(), tx, carts, products)

		count, err := svc.ItemCount(context.Background(), customer)
		require.NoError(t, err)
		assert.Equal(t, 6, count)
	})

	t.Run("no cart counts as zero", func(t *testing.T) {
		carts := mocks.NewMockCartRepo(t)
		products := mocks.NewMockProductRepo(t)
		tx := txMocks.NewMockManager(t)
		txPassthrough(tx)

		carts.EXPECT().GetCartByCustomer(mock.Anything, customer.ID).
			Return(entities.Cart{}, entities.ErrCartNotFound)

		svc := service.NewCartService(newTestLogger(), tx, carts, products)

		count, err := svc.ItemCount(context.Background(), customer)
		require.NoError(t, err)
		assert.Equal(t, 0, count)
	})
}

func TestCartService_GetCart_PropagatesRepoError(t *testing.T) {
	carts := mocks.NewMockCartRepo(t)
	products := mocks.NewMockProductRepo(t)
	tx := txMocks.NewMockManager(t)
	txPassthrough(tx)

	dbErr := errors.New("db error")
	carts.EXPECT().GetCartByCustomer(mock.Anything, customer.ID).Return(entities.Cart{}, dbErr)

	svc := service.NewCartService(newTestLogger(), tx, carts, products)

	_, err := svc.GetCart(context.Background(), customer)
	assert.ErrorIs(t, err, dbErr)
}
